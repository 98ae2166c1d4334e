package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadForge loads the forge configuration.
// Search order: customPath -> ~/.forge/configs/forge.yaml -> ./configs/forge.yaml -> embedded default
func LoadForge(customPath string) (ForgeConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return ForgeConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return ForgeConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath("forge.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", "forge.yaml")); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := Parse(defaultForgeYAML)
	if err != nil {
		return DefaultForgeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the built-in defaults, so partial files only
// override what they mention. Nonsensical values are replaced by defaults.
func Parse(data []byte) (ForgeConfig, error) {
	cfg := DefaultForgeConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ForgeConfig{}, err
	}
	cfg.sanitize()
	return cfg, nil
}

func (c *ForgeConfig) sanitize() {
	def := DefaultForgeConfig()
	if c.Economy.StartingMoney < 0 {
		c.Economy.StartingMoney = def.Economy.StartingMoney
	}
	if c.Economy.ForgeSpace < 1 {
		c.Economy.ForgeSpace = def.Economy.ForgeSpace
	}
	if c.Economy.StorageSpace < 1 {
		c.Economy.StorageSpace = def.Economy.StorageSpace
	}
	if c.Calendar.FramesPerDay < 1 {
		c.Calendar.FramesPerDay = def.Calendar.FramesPerDay
	}
	if c.Calendar.Days < 1 {
		c.Calendar.Days = def.Calendar.Days
	}
	if c.Calendar.HammerFrames < 0 {
		c.Calendar.HammerFrames = def.Calendar.HammerFrames
	}
	if c.Player.Step < 1 {
		c.Player.Step = def.Player.Step
	}
	if c.Anvil.NoteSpeed < 1 {
		c.Anvil.NoteSpeed = def.Anvil.NoteSpeed
	}
	if c.Anvil.SpawnInterval < 1 {
		c.Anvil.SpawnInterval = def.Anvil.SpawnInterval
	}
	if c.Anvil.DwellTicks < 0 {
		c.Anvil.DwellTicks = def.Anvil.DwellTicks
	}
	if c.Messages.DwellTicks < 1 {
		c.Messages.DwellTicks = def.Messages.DwellTicks
	}
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".forge", "configs", filename)
}

// ApplyForgePreset modifies the config based on a difficulty preset.
func ApplyForgePreset(cfg *ForgeConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	case DifficultyEasy:
		cfg.Difficulty.Enabled = false
		cfg.Economy.StartingMoney = 300
		cfg.Anvil.SpawnInterval = 20
	case DifficultyNormal:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	case DifficultyHard:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
		cfg.Anvil.SpawnInterval = 12
	}
}
