package workshop

import (
	"fmt"

	"github.com/vovakirdan/tui-forge/internal/anvil"
	"github.com/vovakirdan/tui-forge/internal/core"
	"github.com/vovakirdan/tui-forge/internal/smithy"
)

const (
	minScreenW = 40
	minScreenH = 16
	hudRows    = 1
)

// Render draws the current frame.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small", core.ColorRed)
		return
	}
	if g.smith == nil {
		return
	}

	if g.gameOver {
		g.renderGameOver(dst)
		return
	}

	top := g.top()
	switch top.(type) {
	case *anvilMode, *inventoryMode, *formMode:
		top.render(g, dst)
	default:
		g.renderFloor(dst)
		if top != nil {
			top.render(g, dst)
		}
	}
}

func (g *Game) viewport(dst *core.Screen) core.Viewport {
	return core.Viewport{
		WorldW:  WorldW,
		WorldH:  WorldH,
		ScreenW: dst.Width(),
		ScreenH: dst.Height() - 1,
		OffsetY: hudRows,
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	day := fmt.Sprintf("Day %d", g.day+1)
	if g.mode == ModeCampaign {
		day = fmt.Sprintf("Day %d/%d", g.day+1, g.cfg.Calendar.Days)
	}
	hud := fmt.Sprintf("%s  Money: %d$  Forge %d/%d  Storage %d/%d",
		day, g.smith.Money,
		g.smith.ForgeCount(), g.smith.Upgrades.ForgeSpace,
		len(g.smith.Inventory), g.smith.Upgrades.StorageSpace)
	dst.DrawText(1, 0, hud, core.ColorWhite)

	// Daylight bar on the right edge of the HUD
	const barW = 10
	filled := 0
	if g.cfg.Calendar.FramesPerDay > 0 {
		filled = core.Clamp(g.frame*barW/g.cfg.Calendar.FramesPerDay, 0, barW)
	}
	x := dst.Width() - barW - 2
	dst.DrawHLine(x, 0, filled, '▓', core.ColorYellow)
	dst.DrawHLine(x+filled, 0, barW-filled, '░', core.ColorGray)
}

func (g *Game) renderFloor(dst *core.Screen) {
	vp := g.viewport(dst)

	g.drawZone(dst, vp, forgeRect, "Forge", core.ColorOrange)
	g.drawZone(dst, vp, deskRect, "Desk", core.ColorBrown)
	g.drawZone(dst, vp, anvilRect, "Anvil", core.ColorGray)

	p := vp.Project(g.player)
	dst.FillRect(p, '▒', core.ColorCyan)
	cx, cy := p.Center()
	dst.SetColored(cx, cy, '@', core.ColorWhite)

	hint := "Arrows: move  Enter: use  Esc: close workshop  Q: quit"
	if z := zoneAt(g.player); z != ZoneNone {
		hint = fmt.Sprintf("Enter: use %s", z)
	}
	dst.DrawText(1, dst.Height()-1, hint, core.ColorGray)

	// HUD last so the forge never covers it
	dst.DrawHLine(0, 0, dst.Width(), ' ', core.ColorDefault)
	g.renderHUD(dst)
}

func (g *Game) drawZone(dst *core.Screen, vp core.Viewport, r core.Rect, label string, c core.Color) {
	cells := vp.Project(r)
	dst.DrawBox(cells, c)
	lx := cells.X + (cells.W-len(label))/2
	_, ly := cells.Center()
	dst.DrawText(lx, ly, label, c)

	// Show what is heating inside the forge.
	if label == "Forge" {
		row := ly + 1
		for _, p := range g.smith.Inventory {
			if p.Location != smithy.Forge {
				continue
			}
			dst.DrawText(cells.X+1, row, fmt.Sprintf("%s %d°", p.Material, p.Temp), bandColor(p.Band()))
			row++
		}
	}
}

func (g *Game) renderGameOver(dst *core.Screen) {
	y := dst.Height()/2 - len(g.endLines)
	for i, line := range g.endLines {
		color := core.ColorWhite
		if i == 0 {
			color = core.ColorYellow
		}
		dst.DrawTextCentered(y+i*2, line, color)
	}
	dst.DrawTextCentered(dst.Height()-3, "R: restart  Q: quit", core.ColorGray)
}

// panel draws a centered framed area and returns its inner rectangle.
func panel(dst *core.Screen, w, h int, title string) core.Rect {
	w = core.Clamp(w, 10, dst.Width())
	h = core.Clamp(h, 3, dst.Height())
	r := core.NewRect((dst.Width()-w)/2, (dst.Height()-h)/2, w, h)
	dst.FillRect(r, ' ', core.ColorDefault)
	dst.DrawBox(r, core.ColorWhite)
	if title != "" {
		dst.DrawText(r.X+2, r.Y, " "+title+" ", core.ColorYellow)
	}
	return core.NewRect(r.X+2, r.Y+1, r.W-4, r.H-2)
}

func (m *messageMode) render(_ *Game, dst *core.Screen) {
	w := 0
	for _, l := range m.lines {
		w = max(w, len([]rune(l)))
	}
	inner := panel(dst, w+6, len(m.lines)+2, "")
	for i, l := range m.lines {
		dst.DrawText(inner.X+(inner.W-len([]rune(l)))/2, inner.Y+i, l, core.ColorWhite)
	}
}

func (m *inventoryMode) render(g *Game, dst *core.Screen) {
	g.renderHUD(dst)
	inner := panel(dst, dst.Width()-4, dst.Height()-3, m.title)

	// Tabs
	tabs := []string{"Inventory", "Buy"}
	x := inner.X
	for i, t := range tabs {
		if i == tabBuy && !m.shop {
			break
		}
		color := core.ColorGray
		if i == m.tab {
			color = core.ColorHighlight
		}
		dst.DrawText(x, inner.Y, " "+t+" ", color)
		x += len(t) + 3
	}

	y := inner.Y + 2
	if m.tab == tabBuy {
		for i, p := range smithy.Catalog() {
			line := fmt.Sprintf("%-8s %4d$", p.Material, p.Value)
			m.drawRow(dst, inner.X, y+i, i, line, core.ColorWhite)
		}
	} else {
		if len(g.smith.Inventory) == 0 {
			dst.DrawText(inner.X, y, "(empty)", core.ColorGray)
		}
		for i, p := range g.smith.Inventory {
			line := fmt.Sprintf("%-28s %5d°", p.String(), p.Temp)
			m.drawRow(dst, inner.X, y+i, i, line, bandColor(p.Band()))
		}
	}

	help := "Enter: select  Esc: back"
	if m.shop {
		help = "Enter: sell  Tab: switch  Esc: back"
		if m.tab == tabBuy {
			help = "Enter: buy  Tab: switch  Esc: back"
		}
	}
	dst.DrawText(inner.X, inner.Bottom()-1, help, core.ColorGray)
}

func (m *inventoryMode) drawRow(dst *core.Screen, x, y, i int, line string, c core.Color) {
	if i == m.cursor[m.tab] {
		dst.DrawText(x, y, "> "+line, core.ColorHighlight)
		return
	}
	dst.DrawText(x, y, "  "+line, c)
}

func (m *formMode) render(g *Game, dst *core.Screen) {
	g.renderHUD(dst)
	inner := panel(dst, 30, len(smithy.WorkedForms)+6, "Forge into")
	item := m.session.Item()
	dst.DrawText(inner.X, inner.Y, item.Name(), bandColor(item.Band()))
	for i, f := range smithy.WorkedForms {
		if i == m.cursor {
			dst.DrawText(inner.X, inner.Y+2+i, "> "+f.String(), core.ColorHighlight)
			continue
		}
		dst.DrawText(inner.X, inner.Y+2+i, "  "+f.String(), core.ColorWhite)
	}
}

var laneGlyphs = [anvil.LaneCount]string{"←", "↑", "↓", "→"}

func (m *anvilMode) render(g *Game, dst *core.Screen) {
	s := m.session
	vp := core.Viewport{
		WorldW:  anvil.FieldW,
		WorldH:  anvil.FieldH,
		ScreenW: dst.Width(),
		ScreenH: dst.Height(),
		OffsetY: hudRows,
	}

	if s.Phase() == anvil.PhaseExiting || s.Phase() == anvil.PhaseDone {
		mid := dst.Height() / 3
		dst.DrawTextCentered(mid, "You scored:", core.ColorWhite)
		dst.DrawTextCentered(mid*2, fmt.Sprint(s.Points()), core.ColorYellow)
		dst.DrawTextCentered(mid*2+2, fmt.Sprintf("%s is worth %d$", s.Item().Name(), s.Payout()), core.ColorGray)
		return
	}

	round := s.Round()
	hits := 0
	if round != nil {
		hits = round.Hits()
	}
	dst.DrawText(1, 0, fmt.Sprintf("%s -> %s  x%.1f  Points: %d  Hits: %d",
		s.Item().Name(), s.Form(), s.Multiplier(), s.Points(), hits), core.ColorWhite)

	for l := anvil.Lane(0); l < anvil.LaneCount; l++ {
		r := vp.Project(anvil.Receptacle(l))
		dst.DrawBox(r, core.ColorWhite)
		cx, cy := r.Center()
		dst.DrawText(cx, cy, laneGlyphs[l], core.ColorWhite)
	}

	if round == nil {
		return
	}
	for _, n := range round.Notes() {
		r := vp.Project(n.Rect())
		if r.Y < hudRows {
			r.H -= hudRows - r.Y
			r.Y = hudRows
		}
		dst.FillRect(r, '█', variantColor(n.Variant))
	}
}

func bandColor(b smithy.Band) core.Color {
	switch b {
	case smithy.Perfect:
		return core.ColorYellow
	case smithy.Over:
		return core.ColorRed
	default:
		return core.ColorBlue
	}
}

func variantColor(v anvil.Variant) core.Color {
	switch v {
	case anvil.Red:
		return core.ColorRed
	case anvil.Blue:
		return core.ColorBlue
	case anvil.Yellow:
		return core.ColorYellow
	default:
		return core.ColorMagenta
	}
}
