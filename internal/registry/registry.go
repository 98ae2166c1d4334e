// Package registry provides a global registry for game factories.
// Game modes register themselves in init() functions so the platform can
// discover and instantiate them by ID.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-forge/internal/core"
)

// Game is the interface every playable mode implements.
// Implementations hold pure simulation state and never import Bubble Tea;
// the platform owns input mapping and frame pacing.
type Game interface {
	// ID returns a unique identifier (e.g., "forge", "forge_endless").
	// Used for CLI commands and run storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset starts a fresh campaign.
	// Called once at start and again when restarting after game over.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one frame.
	// The result carries the state plus any events raised this frame.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns the current money and game-over flag.
	State() core.GameState
}

// GameInfo describes a registered game mode.
type GameInfo struct {
	ID      string
	Title   string // filled from the game when left empty
	Summary string // one line for menus and `forge list`
	Order   int    // listing position; the lowest is the default mode
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]GameInfo)
	mu        sync.RWMutex
)

// Register adds a game mode to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(info GameInfo, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[info.ID]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", info.ID))
	}

	if info.Title == "" {
		info.Title = f().Title()
	}
	factories[info.ID] = f
	infos[info.ID] = info
}

// List returns all registered modes by Order, then ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Order != result[j].Order {
			return result[i].Order < result[j].Order
		}
		return result[i].ID < result[j].ID
	})

	return result
}

// Default returns the ID of the first listed mode, or "" when none is
// registered.
func Default() string {
	list := List()
	if len(list) == 0 {
		return ""
	}
	return list[0].ID
}

// Info returns the metadata of a registered mode.
func Info(id string) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	info, ok := infos[id]
	return info, ok
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
