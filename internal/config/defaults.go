package config

import (
	_ "embed"
)

//go:embed defaults/forge.yaml
var defaultForgeYAML []byte

// DefaultForgeConfig returns the built-in tuning. It matches the embedded
// YAML and is used when that cannot be parsed.
func DefaultForgeConfig() ForgeConfig {
	return ForgeConfig{
		Economy: Economy{
			StartingMoney: 100,
			ForgeSpace:    2,
			StorageSpace:  6,
		},
		Calendar: Calendar{
			FramesPerDay: 3600,
			Days:         5,
			HammerFrames: 1200,
		},
		Player: Player{
			Step: 7,
		},
		Anvil: Anvil{
			NoteSpeed:     5,
			SpawnInterval: 15,
			DwellTicks:    60,
		},
		Messages: Messages{
			DwellTicks: 60,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "day",
				MaxAt: 5,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.6,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultForgeYAML
}
