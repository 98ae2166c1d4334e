package workshop

import (
	"fmt"

	"github.com/vovakirdan/tui-forge/internal/core"
)

// World geometry in logical units.
const (
	WorldW = 600
	WorldH = 480

	playerSize   = 120
	playerStartX = 224
	playerStartY = 178
	playerMinX   = 0
	playerMaxX   = 560
	playerMinY   = 60
	playerMaxY   = 440
)

// Zone is an interactive area of the workshop floor.
type Zone int

const (
	ZoneNone Zone = iota
	ZoneAnvil
	ZoneDesk
	ZoneForge
)

func (z Zone) String() string {
	switch z {
	case ZoneAnvil:
		return "Anvil"
	case ZoneDesk:
		return "Desk"
	case ZoneForge:
		return "Forge"
	default:
		return ""
	}
}

var (
	anvilRect = core.NewRect(389, 288, 120, 120)
	forgeRect = core.NewRect(319, -59, 201, 219)
	deskRect  = core.NewRect(69, 152, 125, 250)
)

// zoneAt returns the zone the player box overlaps, by priority.
func zoneAt(player core.Rect) Zone {
	switch {
	case player.Intersects(anvilRect):
		return ZoneAnvil
	case player.Intersects(deskRect):
		return ZoneDesk
	case player.Intersects(forgeRect):
		return ZoneForge
	default:
		return ZoneNone
	}
}

// stepWorld runs one frame on the workshop floor.
func (g *Game) stepWorld(in core.InputFrame) {
	rolled := g.advanceClock()
	if g.gameOver {
		return
	}

	g.movePlayer(in)
	g.smith.Heat()
	if rolled {
		return
	}

	switch {
	case in.Has(core.ActionConfirm):
		g.interact()
	case in.Has(core.ActionBack):
		g.endRun([]string{"The workshop is closed", fmt.Sprintf("You made %d$", g.smith.Money)})
	}
}

// advanceClock counts the frame and rolls the day over. Reports whether a
// day passed; the rollover frame takes no interaction.
func (g *Game) advanceClock() bool {
	g.frame++
	if g.frame < g.cfg.Calendar.FramesPerDay {
		return false
	}
	g.frame = 0
	g.day++
	g.emit(core.Event{Kind: core.EventDay, Value: g.day})

	if g.mode == ModeCampaign && g.day >= g.cfg.Calendar.Days {
		g.endRun([]string{
			fmt.Sprintf("%s days have passed", spellDays(g.day)),
			fmt.Sprintf("You made %d$", g.smith.Money),
		})
		return true
	}

	g.notify("A day has passed")
	return true
}

// spendFrames charges work time to the clock. Time past the end of the day
// is lost at the next rollover.
func (g *Game) spendFrames(n int) {
	g.frame += n
}

func (g *Game) movePlayer(in core.InputFrame) {
	step := g.cfg.Player.Step
	dx, dy := 0, 0
	if in.Has(core.ActionUp) {
		dy -= step
	}
	if in.Has(core.ActionDown) {
		dy += step
	}
	if in.Has(core.ActionLeft) {
		dx -= step
	}
	if in.Has(core.ActionRight) {
		dx += step
	}

	p := g.player.Moved(dx, dy)
	p.X = core.Clamp(p.X, playerMinX, playerMaxX)
	p.Y = core.Clamp(p.Y, playerMinY, playerMaxY)
	g.player = p
}

func (g *Game) interact() {
	switch zoneAt(g.player) {
	case ZoneAnvil:
		g.openAnvil()
	case ZoneDesk:
		g.push(newShop())
	case ZoneForge:
		g.openForge()
	}
}

func (g *Game) endRun(lines []string) {
	g.gameOver = true
	g.endLines = lines
	g.modes = nil
	g.emit(core.Event{Kind: core.EventGameOver, Value: g.smith.Money})
}

var dayWords = []string{"Zero", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine", "Ten"}

func spellDays(n int) string {
	if n >= 0 && n < len(dayWords) {
		return dayWords[n]
	}
	return fmt.Sprint(n)
}
