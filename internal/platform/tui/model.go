package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-forge/internal/core"
	"github.com/vovakirdan/tui-forge/internal/registry"
	"github.com/vovakirdan/tui-forge/internal/storage"
)

// Model is the Bubble Tea model for running a forge game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	player     string
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool

	// Set when the game ends and the player backs out; SessionModel
	// returns to its menu, a standalone program quits.
	backToMenu bool
	embedded   bool

	// Per-run bookkeeping for the runs table
	days     int
	crafted  int
	runSaved bool
}

// NewModel creates a new Bubble Tea model for the given game.
// A nil logger discards all output.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = DiscardLogger()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     logger,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
}

// WithPlayer tags persisted runs and crafts with a player name.
func (m Model) WithPlayer(name string) Model {
	m.player = name
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("run started", "game", m.game.ID(), "seed", m.config.Seed)

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	if m.gameState.GameOver && m.inputFrame.Has(core.ActionBack) {
		m.backToMenu = true
		if !m.embedded {
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user left the finished run.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// handleResize processes window resize events. The world is projected at
// render time, so the run keeps going.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// Check for restart
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.days = 0
		m.crafted = 0
		m.runSaved = false
		m.inputFrame.Clear()
		m.logger.Info("run restarted", "game", m.game.ID(), "seed", m.config.Seed)
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	for _, ev := range result.Events {
		m.handleEvent(ev)
	}

	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// handleEvent logs a game event and persists the ones worth keeping.
// Storage failures are logged and never interrupt play.
func (m *Model) handleEvent(ev core.Event) {
	switch ev.Kind {
	case core.EventPurchase, core.EventSale:
		m.logger.Debug(string(ev.Kind), "item", ev.Label, "value", ev.Value, "money", m.gameState.Score)

	case core.EventDay:
		m.days = ev.Value
		m.logger.Info("day passed", "day", ev.Value, "money", m.gameState.Score)

	case core.EventCraft:
		m.crafted++
		m.logger.Info("crafted", "item", ev.Label, "points", ev.Points, "value", ev.Value)
		if m.store != nil {
			if _, err := m.store.SaveCraft(storage.CraftEntry{
				GameID: m.game.ID(),
				Player: m.player,
				Item:   ev.Label,
				Points: ev.Points,
				Value:  ev.Value,
			}); err != nil {
				m.logger.Warn("cannot save craft", "err", err)
			}
		}

	case core.EventGameOver:
		m.logger.Info("run over", "game", m.game.ID(), "money", ev.Value, "days", m.days, "crafted", m.crafted)
		if m.store != nil && !m.runSaved {
			if _, err := m.store.SaveRun(storage.RunEntry{
				GameID:  m.game.ID(),
				Player:  m.player,
				Money:   ev.Value,
				Days:    m.days,
				Crafted: m.crafted,
			}); err != nil {
				m.logger.Warn("cannot save run", "err", err)
			}
		}
		m.runSaved = true
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".forge", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot create screenshot dir", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}
	m.logger.Debug("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, store, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
