package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/seedart/internal/registry"
	"github.com/vovakirdan/seedart/internal/storage"
)

// History layout constants
const (
	minWidthForSidebar = 80  // Minimum width to show artwork sidebar
	sidebarWidth       = 24  // Width of artwork sidebar
	maxRenders         = 200 // Max renders to load
)

// allArtworks is the sidebar entry that disables filtering.
const allArtworks = ""

// HistoryKeyMap defines the key bindings for the history view.
type HistoryKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Next    key.Binding
	Prev    key.Binding
	Refresh key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Next, k.Prev, k.Refresh, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Next, k.Prev},
		{k.Refresh, k.Back, k.Quit},
	}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next artwork"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev artwork"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
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

// HistoryModel is the Bubble Tea model for the render history table.
type HistoryModel struct {
	filters     []registry.ArtworkInfo // allArtworks first, then registered artworks
	cursor      int
	store       *storage.Store
	renders     []storage.RenderEntry
	counts      map[string]int
	loadErr     error
	table       table.Model
	help        help.Model
	keys        HistoryKeyMap
	width       int
	height      int
	quitting    bool
	goingBack   bool
	showSidebar bool
}

// NewHistoryModel creates a new history model.
func NewHistoryModel(store *storage.Store, width, height int) HistoryModel {
	filters := append([]registry.ArtworkInfo{{ID: allArtworks, Title: "All artworks"}}, registry.List()...)

	m := HistoryModel{
		filters:     filters,
		store:       store,
		keys:        DefaultHistoryKeyMap(),
		help:        help.New(),
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	m.table = m.createTable()
	m.load()
	return m
}

// createTable creates a new table with appropriate columns.
func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "ID", Width: 8},
		{Title: "Artwork", Width: 12},
		{Title: "Seed", Width: 12},
		{Title: "Bytes", Width: 8},
		{Title: "Date", Width: 14},
	}

	tableWidth := m.width - 4 // Margins
	if m.showSidebar {
		tableWidth -= sidebarWidth + 3 // Sidebar + border + gap
	}
	// Give spare width to the seed column, which holds four-register seeds.
	if extra := tableWidth - 64; extra > 0 {
		columns[2].Width += min(extra, 30)
	}

	t := table.New(
		table.WithColumns(columns),
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
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load reads recent renders and counts from the store.
func (m *HistoryModel) load() {
	m.renders, m.counts, m.loadErr = nil, nil, nil
	if m.store != nil {
		m.renders, m.loadErr = m.store.RecentRenders(maxRenders)
		if m.loadErr == nil {
			m.counts, m.loadErr = m.store.RenderCounts()
		}
	}
	m.updateTableRows()
}

// Visible returns the renders matching the selected artwork filter.
func (m HistoryModel) Visible() []storage.RenderEntry {
	filter := m.filters[m.cursor].ID
	if filter == allArtworks {
		return m.renders
	}
	var out []storage.RenderEntry
	for _, r := range m.renders {
		if r.Artwork == filter {
			out = append(out, r)
		}
	}
	return out
}

// updateTableRows updates the table with the visible renders.
func (m *HistoryModel) updateTableRows() {
	visible := m.Visible()
	rows := make([]table.Row, len(visible))
	for i, r := range visible {
		rows[i] = table.Row{
			shortID(r.ID),
			r.Artwork,
			r.Seed.String(),
			fmt.Sprintf("%d", r.Bytes),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history view.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, nil

		case key.Matches(msg, m.keys.Next):
			m.cursor = (m.cursor + 1) % len(m.filters)
			m.updateTableRows()
			return m, nil

		case key.Matches(msg, m.keys.Prev):
			m.cursor = (m.cursor - 1 + len(m.filters)) % len(m.filters)
			m.updateTableRows()
			return m, nil

		case key.Matches(msg, m.keys.Refresh):
			m.load()
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history view.
func (m HistoryModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := fmt.Sprintf("RENDER HISTORY - %s", m.filters[m.cursor].Title)
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

// renderWideLayout renders the table with an artwork sidebar.
func (m HistoryModel) renderWideLayout() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sidebar strings.Builder
	sidebar.WriteString("Artworks\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, f := range m.filters {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.cursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}

		name := f.Title
		if f.ID != allArtworks {
			name = fmt.Sprintf("%s (%d)", f.ID, m.counts[f.ID])
		}
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
		sidebarStyle.Render(sidebar.String()), "  ", tableStyle.Render(m.renderTableContent()))
}

// renderNarrowLayout renders the current filter above the table.
func (m HistoryModel) renderNarrowLayout() string {
	var b strings.Builder

	tabLine := fmt.Sprintf("< %s >", m.filters[m.cursor].Title)
	b.WriteString(centerText(tabLine, m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	b.WriteString(tableStyle.Render(m.renderTableContent()))
	return b.String()
}

// renderTableContent renders the table or an empty message.
func (m HistoryModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	if m.loadErr != nil {
		return emptyStyle.Render("Could not load history:\n" + m.loadErr.Error())
	}
	if len(m.Visible()) == 0 {
		return emptyStyle.Render("No renders recorded yet.\nSave an artwork to start the history!")
	}
	return m.table.View()
}

// IsGoingBack returns true if user wants to go back.
func (m HistoryModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m HistoryModel) IsQuitting() bool {
	return m.quitting
}

// RunHistory runs the history view on its own.
func RunHistory(store *storage.Store, width, height int) error {
	p := tea.NewProgram(
		standaloneHistory{NewHistoryModel(store, width, height)},
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}

// standaloneHistory quits the program on back instead of returning to a parent.
type standaloneHistory struct {
	HistoryModel
}

func (s standaloneHistory) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := s.HistoryModel.Update(msg)
	h := next.(HistoryModel)
	if h.IsGoingBack() {
		return standaloneHistory{h}, tea.Quit
	}
	return standaloneHistory{h}, cmd
}
