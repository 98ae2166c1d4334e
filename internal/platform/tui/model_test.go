package tui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-forge/internal/core"
	"github.com/vovakirdan/tui-forge/internal/storage"
)

// scriptedGame replays a fixed list of events, one batch per tick.
type scriptedGame struct {
	script [][]core.Event
	tick   int
	money  int
	over   bool
	resets int
}

func (g *scriptedGame) ID() string    { return "scripted" }
func (g *scriptedGame) Title() string { return "Scripted" }

func (g *scriptedGame) Reset(core.RuntimeConfig) {
	g.tick = 0
	g.money = 0
	g.over = false
	g.resets++
}

func (g *scriptedGame) Step(core.InputFrame) core.StepResult {
	var events []core.Event
	if g.tick < len(g.script) {
		events = g.script[g.tick]
	}
	g.tick++
	for _, ev := range events {
		if ev.Kind == core.EventGameOver {
			g.over = true
			g.money = ev.Value
		}
	}
	return core.StepResult{State: g.State(), Events: events}
}

func (g *scriptedGame) Render(dst *core.Screen) { dst.Clear() }

func (g *scriptedGame) State() core.GameState {
	return core.GameState{Score: g.money, GameOver: g.over}
}

func testModel(t *testing.T, g *scriptedGame) (Model, *storage.Store) {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "forge.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	cfg := core.DefaultConfig()
	cfg.Seed = 7
	m := NewModel(g, store, cfg, nil).WithPlayer("tester")
	m.Init()
	return m, store
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	next, _ := m.Update(TickMsg(time.Now()))
	return next.(Model)
}

func TestModelPersistsCraftsAndRun(t *testing.T) {
	g := &scriptedGame{script: [][]core.Event{
		{{Kind: core.EventCraft, Label: "Iron Sword", Points: 12, Value: 150}},
		{{Kind: core.EventDay, Value: 1}},
		{{Kind: core.EventGameOver, Value: 320}},
		{{Kind: core.EventGameOver, Value: 320}},
	}}
	m, store := testModel(t, g)

	for range g.script {
		m = tick(t, m)
	}

	crafts, err := store.RecentCrafts(0)
	if err != nil {
		t.Fatalf("RecentCrafts: %v", err)
	}
	if len(crafts) != 1 {
		t.Fatalf("crafts = %d, want 1", len(crafts))
	}
	c := crafts[0]
	if c.Item != "Iron Sword" || c.Points != 12 || c.Value != 150 || c.Player != "tester" {
		t.Errorf("craft = %+v", c)
	}

	runs, err := store.TopRuns("scripted", 0)
	if err != nil {
		t.Fatalf("TopRuns: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("runs = %d, want exactly 1", len(runs))
	}
	r := runs[0]
	if r.Money != 320 || r.Days != 1 || r.Crafted != 1 {
		t.Errorf("run = %+v", r)
	}
}

func TestModelBackAtGameOverLeaves(t *testing.T) {
	g := &scriptedGame{script: [][]core.Event{{{Kind: core.EventGameOver, Value: 0}}}}
	m, _ := testModel(t, g)
	m = tick(t, m)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(Model)
	if !m.BackToMenu() {
		t.Error("expected BackToMenu after esc on game over")
	}
	if cmd == nil {
		t.Error("standalone model should quit")
	}
}

func TestModelRestartResetsRun(t *testing.T) {
	g := &scriptedGame{script: [][]core.Event{{{Kind: core.EventGameOver, Value: 50}}}}
	m, _ := testModel(t, g)
	m = tick(t, m)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	m = tick(t, next.(Model))

	if g.resets != 2 {
		t.Errorf("resets = %d, want 2", g.resets)
	}
	if m.gameState.GameOver {
		t.Error("restarted run should not be over")
	}
	if m.runSaved {
		t.Error("restart should clear the saved flag")
	}
}

func TestModelResizeKeepsRun(t *testing.T) {
	g := &scriptedGame{}
	m, _ := testModel(t, g)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(Model)
	if g.resets != 1 {
		t.Errorf("resize reset the game")
	}
	if m.screen.Width() != 120 || m.screen.Height() != 40 {
		t.Errorf("screen = %dx%d", m.screen.Width(), m.screen.Height())
	}
}
