package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-forge/internal/registry"
	"github.com/vovakirdan/tui-forge/internal/storage"
)

// Ledger layout constants
const (
	minWidthForSidebar = 80  // Minimum width to show page list sidebar
	sidebarWidth       = 22  // Width of page list sidebar
	maxEntries         = 100 // Max rows to load
)

// LedgerKeyMap defines the key bindings for the ledger.
type LedgerKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextPage key.Binding
	PrevPage key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k LedgerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextPage, k.PrevPage, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k LedgerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextPage, k.PrevPage},
		{k.Back, k.Quit},
	}
}

// DefaultLedgerKeyMap returns default key bindings.
func DefaultLedgerKeyMap() LedgerKeyMap {
	return LedgerKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next page"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev page"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ledgerPage is one view of the ledger: the runs of a game, or the crafts.
type ledgerPage struct {
	title  string
	gameID string // empty for the crafts page
}

// LedgerModel is the Bubble Tea model for the runs and crafts screen.
type LedgerModel struct {
	pages       []ledgerPage
	pageCursor  int
	store       *storage.Store
	rows        []table.Row
	table       table.Model
	help        help.Model
	keys        LedgerKeyMap
	width       int
	height      int
	quitting    bool
	goingBack   bool // True if user pressed back (not quit)
	showSidebar bool
}

// NewLedgerModel creates a new ledger model.
func NewLedgerModel(store *storage.Store, width, height int) LedgerModel {
	games := registry.List()
	pages := make([]ledgerPage, 0, len(games)+1)
	for _, g := range games {
		pages = append(pages, ledgerPage{title: g.Title, gameID: g.ID})
	}
	pages = append(pages, ledgerPage{title: "Crafted goods"})

	h := help.New()
	h.ShowAll = false

	m := LedgerModel{
		pages:       pages,
		store:       store,
		keys:        DefaultLedgerKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	m.load()

	return m
}

func (m *LedgerModel) page() ledgerPage {
	return m.pages[m.pageCursor]
}

func (m *LedgerModel) columns() []table.Column {
	tableWidth := m.width - 4 // Margins
	if m.showSidebar {
		tableWidth -= sidebarWidth + 3 // Sidebar + border + gap
	}
	dateW := 16
	if tableWidth < 56 {
		dateW = 12
	}

	if m.page().gameID == "" {
		return []table.Column{
			{Title: "Item", Width: 16},
			{Title: "Points", Width: 8},
			{Title: "Value", Width: 8},
			{Title: "Smith", Width: 10},
			{Title: "Date", Width: dateW},
		}
	}
	return []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Money", Width: 8},
		{Title: "Days", Width: 5},
		{Title: "Crafted", Width: 8},
		{Title: "Smith", Width: 10},
		{Title: "Date", Width: dateW},
	}
}

// createTable creates a table with the columns of the current page.
func (m *LedgerModel) createTable() table.Model {
	t := table.New(
		table.WithColumns(m.columns()),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for header, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("130")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load reads the rows of the current page from storage.
func (m *LedgerModel) load() {
	m.table = m.createTable()
	m.rows = nil

	if m.store != nil {
		if p := m.page(); p.gameID != "" {
			if runs, err := m.store.TopRuns(p.gameID, maxEntries); err == nil {
				for i, r := range runs {
					m.rows = append(m.rows, table.Row{
						fmt.Sprintf("#%d", i+1),
						fmt.Sprintf("%d$", r.Money),
						fmt.Sprintf("%d", r.Days),
						fmt.Sprintf("%d", r.Crafted),
						r.Player,
						r.CreatedAt.Format("Jan 02 15:04"),
					})
				}
			}
		} else if crafts, err := m.store.RecentCrafts(maxEntries); err == nil {
			for _, c := range crafts {
				m.rows = append(m.rows, table.Row{
					c.Item,
					fmt.Sprintf("%d", c.Points),
					fmt.Sprintf("%d$", c.Value),
					c.Player,
					c.CreatedAt.Format("Jan 02 15:04"),
				})
			}
		}
	}

	m.table.SetRows(m.rows)
	m.table.GotoTop()
}

// Init initializes the ledger model.
func (m LedgerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the ledger.
func (m LedgerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextPage):
			m.pageCursor = (m.pageCursor + 1) % len(m.pages)
			m.load()
			return m, nil

		case key.Matches(msg, m.keys.PrevPage):
			m.pageCursor = (m.pageCursor + len(m.pages) - 1) % len(m.pages)
			m.load()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.help.Width = msg.Width
		m.load()
		return m, nil
	}

	// Scrolling and everything else goes to the table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the ledger.
func (m LedgerModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("214")).
		MarginBottom(1)

	title := fmt.Sprintf("LEDGER - %s", m.pages[m.pageCursor].title)
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	if m.showSidebar {
		b.WriteString(m.renderWideLayout())
	} else {
		b.WriteString(m.renderNarrowLayout())
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderWideLayout renders the ledger with a page list sidebar.
func (m LedgerModel) renderWideLayout() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sidebar strings.Builder
	sidebar.WriteString("Pages\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, p := range m.pages {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.pageCursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("214"))
		}

		name := p.title
		maxLen := sidebarWidth - 6
		if len(name) > maxLen {
			name = name[:maxLen-1] + "."
		}
		sidebar.WriteString(style.Render(cursor + name))
		sidebar.WriteString("\n")
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		sidebarStyle.Render(sidebar.String()),
		"  ",
		tableStyle.Render(m.renderTableContent()),
	)
}

// renderNarrowLayout renders the ledger with the page name above the table.
func (m LedgerModel) renderNarrowLayout() string {
	var b strings.Builder

	b.WriteString(centerText(fmt.Sprintf("< %s >", m.pages[m.pageCursor].title), m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	b.WriteString(tableStyle.Render(m.renderTableContent()))

	return b.String()
}

// renderTableContent renders the table or empty message.
func (m LedgerModel) renderTableContent() string {
	if len(m.rows) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		if m.pages[m.pageCursor].gameID == "" {
			return emptyStyle.Render("Nothing has left the anvil yet.")
		}
		return emptyStyle.Render("No runs recorded yet.\nFinish a run to open the books!")
	}

	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m LedgerModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m LedgerModel) IsQuitting() bool {
	return m.quitting
}

// RunLedger runs the ledger screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunLedger(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(
		NewLedgerModel(store, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(LedgerModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
