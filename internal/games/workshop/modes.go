package workshop

import (
	"errors"

	"github.com/vovakirdan/tui-forge/internal/anvil"
	"github.com/vovakirdan/tui-forge/internal/core"
	"github.com/vovakirdan/tui-forge/internal/smithy"
)

// mode is a modal screen on top of the workshop floor.
type mode interface {
	name() string
	step(g *Game, in core.InputFrame)
	render(g *Game, dst *core.Screen)
}

func (g *Game) push(m mode) {
	g.modes = append(g.modes, m)
}

func (g *Game) pop() {
	if len(g.modes) > 0 {
		g.modes = g.modes[:len(g.modes)-1]
	}
}

// replace swaps the top mode.
func (g *Game) replace(m mode) {
	g.pop()
	g.push(m)
}

func (g *Game) top() mode {
	if len(g.modes) == 0 {
		return nil
	}
	return g.modes[len(g.modes)-1]
}

// notify shows a message pop-up.
func (g *Game) notify(lines ...string) {
	g.push(&messageMode{lines: lines, dwell: g.cfg.Messages.DwellTicks})
}

// notifyErr maps a domain rejection to pop-up text.
func (g *Game) notifyErr(err error) {
	switch {
	case errors.Is(err, smithy.ErrInsufficientFunds):
		g.notify("Not enough money")
	case errors.Is(err, smithy.ErrStorageFull):
		g.notify("Not enough storage space")
	case errors.Is(err, smithy.ErrForgeFull):
		g.notify("Not enough furnace space")
	case errors.Is(err, anvil.ErrNotHotEnough):
		g.notify("Item not hot enough")
	default:
		g.notify(err.Error())
	}
}

// messageMode shows a few lines for a fixed time.
type messageMode struct {
	lines []string
	dwell int
}

func (m *messageMode) name() string { return "message" }

func (m *messageMode) step(g *Game, in core.InputFrame) {
	m.dwell--
	if m.dwell <= 0 || in.Has(core.ActionConfirm) || in.Has(core.ActionBack) {
		g.pop()
	}
}

// Inventory tabs.
const (
	tabInventory = iota
	tabBuy
)

// inventoryMode is the desk screen. In shop mode it buys and sells; in
// select mode it hands the chosen index to onSelect.
type inventoryMode struct {
	shop     bool
	title    string
	tab      int
	cursor   [2]int
	onSelect func(g *Game, index int)
	onCancel func(g *Game)
}

func newShop() *inventoryMode {
	return &inventoryMode{shop: true, title: "Desk"}
}

func newPicker(title string, onSelect func(g *Game, index int)) *inventoryMode {
	return &inventoryMode{title: title, onSelect: onSelect}
}

func (m *inventoryMode) name() string {
	if m.shop {
		return "shop"
	}
	return "select"
}

func (m *inventoryMode) rows(g *Game) int {
	if m.tab == tabBuy {
		return len(smithy.Materials)
	}
	return len(g.smith.Inventory)
}

func (m *inventoryMode) step(g *Game, in core.InputFrame) {
	switch {
	case in.Has(core.ActionBack):
		g.pop()
		if m.onCancel != nil {
			m.onCancel(g)
		}
		return
	case in.Has(core.ActionSwitch) && m.shop:
		m.tab = 1 - m.tab
		return
	case in.Has(core.ActionUp):
		m.cursor[m.tab]--
	case in.Has(core.ActionDown):
		m.cursor[m.tab]++
	}
	m.clampCursor(g)

	if !in.Has(core.ActionConfirm) {
		return
	}
	n := m.rows(g)
	if n == 0 {
		return
	}
	i := m.cursor[m.tab]

	switch {
	case m.tab == tabBuy:
		p, err := g.smith.Buy(smithy.Materials[i])
		if err != nil {
			g.notifyErr(err)
			return
		}
		g.emit(core.Event{Kind: core.EventPurchase, Label: p.Name(), Value: p.Value})
	case m.shop:
		p, err := g.smith.Sell(i)
		if err != nil {
			g.notifyErr(err)
			return
		}
		g.emit(core.Event{Kind: core.EventSale, Label: p.Name(), Value: p.Value})
		m.clampCursor(g)
	default:
		g.pop()
		m.onSelect(g, i)
	}
}

func (m *inventoryMode) clampCursor(g *Game) {
	n := m.rows(g)
	if n == 0 {
		m.cursor[m.tab] = 0
		return
	}
	m.cursor[m.tab] = core.Clamp(m.cursor[m.tab], 0, n-1)
}

// openForge starts the move-to-forge flow.
func (g *Game) openForge() {
	if g.smith.ForgeFull() {
		g.notify("Not enough furnace space")
		return
	}
	g.push(newPicker("Put in the forge", func(g *Game, i int) {
		item, err := g.smith.Item(i)
		if err != nil {
			g.notifyErr(err)
			return
		}
		if item.Location == smithy.Forge {
			err = g.smith.TakeFromForge(i)
		} else {
			err = g.smith.MoveToForge(i)
		}
		if err != nil {
			g.notifyErr(err)
		}
	}))
}

// openAnvil starts the hammering flow: pick an item, pick a form, play.
func (g *Game) openAnvil() {
	g.push(newPicker("Put on the anvil", func(g *Game, i int) {
		item, err := g.smith.Item(i)
		if err != nil {
			g.notifyErr(err)
			return
		}
		session := anvil.NewSession(g.anvilConfig(), g.rng)
		if err := session.SelectItem(item); err != nil {
			g.notifyErr(err)
			return
		}
		g.push(&formMode{session: session})
	}))
}

// formMode picks the shape to hammer the item into.
type formMode struct {
	session *anvil.Session
	cursor  int
}

func (m *formMode) name() string { return "form" }

func (m *formMode) step(g *Game, in core.InputFrame) {
	switch {
	case in.Has(core.ActionBack):
		m.session.Cancel()
		g.pop()
	case in.Has(core.ActionUp):
		m.cursor = core.Clamp(m.cursor-1, 0, len(smithy.WorkedForms)-1)
	case in.Has(core.ActionDown):
		m.cursor = core.Clamp(m.cursor+1, 0, len(smithy.WorkedForms)-1)
	case in.Has(core.ActionConfirm):
		if err := m.session.SelectForm(smithy.WorkedForms[m.cursor]); err != nil {
			g.notifyErr(err)
			return
		}
		if err := m.session.Start(); err != nil {
			g.notifyErr(err)
			return
		}
		g.replace(&anvilMode{session: m.session})
	}
}

// anvilMode runs the rhythm round.
type anvilMode struct {
	session *anvil.Session
}

func (m *anvilMode) name() string { return "anvil" }

func (m *anvilMode) step(g *Game, in core.InputFrame) {
	var presses anvil.Presses
	presses[anvil.LaneLeft] = in.Has(core.ActionLeft)
	presses[anvil.LaneUp] = in.Has(core.ActionUp)
	presses[anvil.LaneDown] = in.Has(core.ActionDown)
	presses[anvil.LaneRight] = in.Has(core.ActionRight)

	m.session.Step(presses, in.Has(core.ActionBack))
	if m.session.Phase() != anvil.PhaseDone {
		return
	}

	g.pop()
	g.crafted++
	g.spendFrames(g.cfg.Calendar.HammerFrames)
	item := m.session.Item()
	g.emit(core.Event{
		Kind:   core.EventCraft,
		Label:  item.Name(),
		Points: m.session.Points(),
		Value:  item.Value,
	})
}
