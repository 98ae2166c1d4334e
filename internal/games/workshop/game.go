// Package workshop implements the blacksmith's workshop: the smith walks
// between the desk, the forge and the anvil, buys stock, heats it, hammers it
// into goods and sells them before the days run out.
package workshop

import (
	"math/rand"

	"github.com/vovakirdan/tui-forge/internal/anvil"
	"github.com/vovakirdan/tui-forge/internal/config"
	"github.com/vovakirdan/tui-forge/internal/core"
	"github.com/vovakirdan/tui-forge/internal/registry"
	"github.com/vovakirdan/tui-forge/internal/smithy"
)

// GameMode represents the game mode.
type GameMode int

const (
	ModeCampaign GameMode = iota // The run ends after a fixed number of days
	ModeEndless                  // The calendar never ends the run
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = ""
	}
}

// Game implements the forge workshop.
type Game struct {
	mode GameMode

	// Configuration
	runtime    core.RuntimeConfig
	cfg        config.ForgeConfig
	override   *config.ForgeConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand

	// World state
	smith   *smithy.GameState
	player  core.Rect
	tick    uint64
	frame   int // frames into the current day
	day     int // completed days
	crafted int

	// Mode stack; the workshop floor is active when it is empty.
	modes    []mode
	gameOver bool
	endLines []string

	events []core.Event
}

// New creates a campaign forge game.
func New() *Game {
	return &Game{mode: ModeCampaign}
}

// NewEndless creates a forge game without a calendar limit.
func NewEndless() *Game {
	return &Game{mode: ModeEndless}
}

// WithConfig pins the tunables, bypassing the config file search.
func (g *Game) WithConfig(cfg config.ForgeConfig) *Game {
	g.override = &cfg
	return g
}

func init() {
	registry.Register(registry.GameInfo{
		ID:      "forge",
		Summary: "Five days to make your fortune",
		Order:   0,
	}, func() registry.Game {
		return New()
	})
	registry.Register(registry.GameInfo{
		ID:      "forge_endless",
		Summary: "The workshop never closes",
		Order:   1,
	}, func() registry.Game {
		return NewEndless()
	})
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "forge_endless"
	}
	return "forge"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Forge (Endless)"
	}
	return "Forge"
}

// Reset starts a new run.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	var cfg config.ForgeConfig
	if g.override != nil {
		cfg = *g.override
	} else {
		loaded, err := config.LoadForge(configPath)
		if err != nil {
			loaded = config.DefaultForgeConfig()
		}
		if difficultyPreset != "" {
			config.ApplyForgePreset(&loaded, difficultyPreset)
		}
		cfg = loaded
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.rng = rand.New(rand.NewSource(runtime.Seed))

	g.smith = smithy.NewGameState(cfg.Economy.StartingMoney, smithy.Upgrades{
		ForgeSpace:   cfg.Economy.ForgeSpace,
		StorageSpace: cfg.Economy.StorageSpace,
	})
	g.player = core.NewRect(playerStartX, playerStartY, playerSize, playerSize)
	g.tick = 0
	g.frame = 0
	g.day = 0
	g.crafted = 0
	g.modes = nil
	g.gameOver = false
	g.endLines = nil
	g.events = nil
}

// Step advances the run by one frame. Only the top of the mode stack sees
// the input; the world clock runs only while no mode is open.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = g.events[:0]

	if !g.gameOver {
		g.tick++
		if top := g.top(); top != nil {
			top.step(g, in)
		} else {
			g.stepWorld(in)
		}
	}

	return core.StepResult{
		State:  g.State(),
		Events: append([]core.Event(nil), g.events...),
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	state := core.GameState{GameOver: g.gameOver}
	if g.smith != nil {
		state.Score = g.smith.Money
	}
	return state
}

// Smith exposes the run's smithy state.
func (g *Game) Smith() *smithy.GameState {
	return g.smith
}

// Day returns the number of completed days.
func (g *Game) Day() int {
	return g.day
}

// anvilConfig returns the round tunables for today.
func (g *Game) anvilConfig() anvil.Config {
	cfg := anvil.DefaultConfig()
	cfg.NoteSpeed = g.difficulty.NoteSpeed(g.cfg.Anvil.NoteSpeed, g.day)
	cfg.SpawnInterval = g.cfg.Anvil.SpawnInterval
	cfg.DwellTicks = g.cfg.Anvil.DwellTicks
	return cfg
}

func (g *Game) emit(e core.Event) {
	g.events = append(g.events, e)
}
