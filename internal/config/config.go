// Package config provides YAML-based tuning for the forge games and
// difficulty presets.
package config

// ForgeConfig contains every tunable of a forge run.
type ForgeConfig struct {
	Economy    Economy          `yaml:"economy"`
	Calendar   Calendar         `yaml:"calendar"`
	Player     Player           `yaml:"player"`
	Anvil      Anvil            `yaml:"anvil"`
	Messages   Messages         `yaml:"messages"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// Economy defines the starting purse and workshop capacities.
type Economy struct {
	StartingMoney int `yaml:"starting_money"`
	ForgeSpace    int `yaml:"forge_space"`
	StorageSpace  int `yaml:"storage_space"`
}

// Calendar defines how frames turn into days.
type Calendar struct {
	FramesPerDay int `yaml:"frames_per_day"`
	Days         int `yaml:"days"`          // campaign length
	HammerFrames int `yaml:"hammer_frames"` // clock cost of one anvil round
}

// Player defines movement.
type Player struct {
	Step int `yaml:"step"`
}

// Anvil defines the hammering minigame.
type Anvil struct {
	NoteSpeed     int `yaml:"note_speed"`
	SpawnInterval int `yaml:"spawn_interval"`
	DwellTicks    int `yaml:"dwell_ticks"`
}

// Messages defines pop-up behaviour.
type Messages struct {
	DwellTicks int `yaml:"dwell_ticks"`
}

// DifficultyConfig defines how the anvil speeds up over the run.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines what drives the difficulty level.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "day" or "none"
	MaxAt int    `yaml:"max_at"` // day at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // added to note speed factor at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.0
	case DifficultyHard:
		return 0.4
	default:
		return 0.0
	}
}
