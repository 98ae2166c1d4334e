package workshop

// Snapshot captures the run state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Mode      string // "campaign" or "endless"
	Screen    string // top of the mode stack, "workshop" or "game_over"
	Day       int
	Frame     int
	Money     int
	PlayerX   int
	PlayerY   int
	Items     int
	InForge   int
	Crafted   int
	GameOver  bool
	ModeDepth int
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	mode := "campaign"
	if g.mode == ModeEndless {
		mode = "endless"
	}

	screen := "workshop"
	switch {
	case g.gameOver:
		screen = "game_over"
	case g.top() != nil:
		screen = g.top().name()
	}

	return Snapshot{
		Tick:      g.tick,
		Mode:      mode,
		Screen:    screen,
		Day:       g.day,
		Frame:     g.frame,
		Money:     g.smith.Money,
		PlayerX:   g.player.X,
		PlayerY:   g.player.Y,
		Items:     len(g.smith.Inventory),
		InForge:   g.smith.ForgeCount(),
		Crafted:   g.crafted,
		GameOver:  g.gameOver,
		ModeDepth: len(g.modes),
	}
}
