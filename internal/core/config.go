package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is the status a game reports to the platform after each tick.
type GameState struct {
	Score    int  // Current score (money for the forge games)
	GameOver bool // Whether the session has ended
}

// EventKind identifies something notable that happened during a tick.
type EventKind string

const (
	EventPurchase EventKind = "purchase"
	EventSale     EventKind = "sale"
	EventCraft    EventKind = "craft"
	EventDay      EventKind = "day"
	EventGameOver EventKind = "game_over"
)

// Event is reported by a game so the platform can log or persist it.
type Event struct {
	Kind   EventKind
	Label  string // e.g. "Iron Sword"
	Points int    // raw points for crafts
	Value  int    // money involved
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
}
