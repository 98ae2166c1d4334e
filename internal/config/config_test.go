package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchCode(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if cfg != DefaultForgeConfig() {
		t.Errorf("embedded YAML and DefaultForgeConfig differ:\n%+v\n%+v", cfg, DefaultForgeConfig())
	}
}

func TestParsePartialOverride(t *testing.T) {
	cfg, err := Parse([]byte("economy:\n  starting_money: 999\nanvil:\n  spawn_interval: 0\n"))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if cfg.Economy.StartingMoney != 999 {
		t.Errorf("StartingMoney = %d, expected 999", cfg.Economy.StartingMoney)
	}
	if cfg.Economy.StorageSpace != 6 {
		t.Errorf("StorageSpace = %d, expected default 6", cfg.Economy.StorageSpace)
	}
	if cfg.Anvil.SpawnInterval != 15 {
		t.Errorf("SpawnInterval = %d, expected sanitized default 15", cfg.Anvil.SpawnInterval)
	}
}

func TestLoadForgeCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "forge.yaml")
	if err := os.WriteFile(path, []byte("calendar:\n  days: 2\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadForge(path)
	if err != nil {
		t.Fatalf("LoadForge() failed: %v", err)
	}
	if cfg.Calendar.Days != 2 {
		t.Errorf("Days = %d, expected 2", cfg.Calendar.Days)
	}

	if _, err := LoadForge(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadForge() with a missing custom path should fail")
	}
}

func TestLoadForgeBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "forge.yaml")
	if err := os.WriteFile(path, []byte("economy: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadForge(path); err == nil {
		t.Error("LoadForge() should reject malformed YAML")
	}
}

func TestDifficultyLevel(t *testing.T) {
	cfg := DefaultForgeConfig().Difficulty

	dm := NewDifficultyManager(cfg)
	if dm.IsEnabled() {
		t.Fatal("default difficulty should be fixed")
	}
	if got := dm.NoteSpeed(5, 4); got != 5 {
		t.Errorf("fixed NoteSpeed = %d, expected 5", got)
	}

	cfg.Enabled = true
	dm = NewDifficultyManager(cfg)
	if got := dm.Level(0); got != 0 {
		t.Errorf("Level(0) = %f, expected 0", got)
	}
	if got := dm.Level(10); got != 1 {
		t.Errorf("Level(10) = %f, expected 1", got)
	}
	// 5 * (1 + 1*0.6) = 8
	if got := dm.NoteSpeed(5, 5); got != 8 {
		t.Errorf("NoteSpeed at max = %d, expected 8", got)
	}
}

func TestApplyForgePreset(t *testing.T) {
	cfg := DefaultForgeConfig()
	ApplyForgePreset(&cfg, DifficultyHard)
	if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0.4 || cfg.Anvil.SpawnInterval != 12 {
		t.Errorf("hard preset not applied: %+v", cfg)
	}

	cfg = DefaultForgeConfig()
	ApplyForgePreset(&cfg, DifficultyEasy)
	if cfg.Difficulty.Enabled || cfg.Economy.StartingMoney != 300 {
		t.Errorf("easy preset not applied: %+v", cfg)
	}

	cfg = DefaultForgeConfig()
	ApplyForgePreset(&cfg, "")
	if cfg != DefaultForgeConfig() {
		t.Error("empty preset should leave config unchanged")
	}
}
