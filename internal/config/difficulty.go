package config

import "math"

// DifficultyManager scales the anvil as the days go by.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the difficulty level (0.0 to 1.0) on the given day (0-based).
func (d *DifficultyManager) Level(day int) float64 {
	if !d.IsEnabled() || d.cfg.Progression.Type != "day" {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1
	}
	progress := clampF(float64(day)/maxAt, 0.0, 1.0)

	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// NoteSpeed returns the note fall speed for the given day.
func (d *DifficultyManager) NoteSpeed(base int, day int) int {
	level := d.Level(day)
	speed := int(math.Round(float64(base) * (1.0 + level*d.cfg.Scaling.SpeedMultiplier)))
	if speed < 1 {
		speed = 1
	}
	return speed
}

func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
