package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/aztec-shuffle/internal/core"
	"github.com/vovakirdan/aztec-shuffle/internal/storage"
)

// Runs browser layout constants
const (
	minWidthForStats = 80  // Minimum width to show the stats sidebar
	statsWidth       = 24  // Width of stats sidebar
	maxRuns          = 200 // Max runs to load
)

// RunsKeyMap defines the key bindings for the saved-runs browser.
type RunsKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Open   key.Binding
	Delete key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k RunsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Open, k.Delete, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k RunsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Open, k.Delete},
		{k.Back, k.Quit},
	}
}

// DefaultRunsKeyMap returns default key bindings.
func DefaultRunsKeyMap() RunsKeyMap {
	return RunsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "view"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "delete"),
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

// RunsModel is the Bubble Tea model for browsing saved runs.
type RunsModel struct {
	store     *storage.Store
	runs      []storage.Run
	stats     *storage.Stats
	loadErr   error
	table     table.Model
	help      help.Model
	keys      RunsKeyMap
	width     int
	height    int
	selected  int64 // Run chosen with Open; 0 when none
	quitting  bool
	goingBack bool
	child     bool // Embedded in a session; selection returns control instead of quitting
	showStats bool
}

// NewRunsModel creates a new saved-runs browser.
func NewRunsModel(store *storage.Store, width, height int) RunsModel {
	h := help.New()
	h.ShowAll = false

	m := RunsModel{
		store:     store,
		keys:      DefaultRunsKeyMap(),
		help:      h,
		width:     width,
		height:    height,
		showStats: width >= minWidthForStats,
	}
	m.table = m.createTable()
	m.loadRuns()

	return m
}

// createTable creates a new table with appropriate columns.
func (m *RunsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "ID", Width: 6},
		{Title: "Seed", Width: 10},
		{Title: "Order", Width: 6},
		{Title: "Dominoes", Width: 9},
		{Title: "Saved", Width: 14},
	}

	tableWidth := m.width - 4 // Margins
	if m.showStats {
		tableWidth -= statsWidth + 3 // Sidebar + border + gap
	}

	// Give spare width to the seed column; caller seeds can be long.
	if spare := tableWidth - 55; spare > 0 {
		columns[1].Width += core.Min(spare, 20)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(m.height-8), // Leave room for header, help, and margins
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

// loadRuns refreshes runs and stats from the store.
func (m *RunsModel) loadRuns() {
	m.runs, m.stats, m.loadErr = nil, nil, nil
	if m.store != nil {
		runs, err := m.store.RecentGenerations(maxRuns)
		if err != nil {
			m.loadErr = err
		} else {
			m.runs = runs
		}
		if stats, err := m.store.GetStats(); err == nil {
			m.stats = stats
		}
	}
	m.updateTableRows()
}

// updateTableRows updates the table with current runs.
func (m *RunsModel) updateTableRows() {
	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", r.ID),
			r.Seed,
			fmt.Sprintf("%d", r.Size),
			fmt.Sprintf("%d", r.Alive()),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the runs browser.
func (m RunsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the runs browser.
func (m RunsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, m.exit()

		case key.Matches(msg, m.keys.Open):
			if len(m.runs) > 0 {
				m.selected = m.runs[m.table.Cursor()].ID
				return m, m.exit()
			}
			return m, nil

		case key.Matches(msg, m.keys.Delete):
			if len(m.runs) > 0 && m.store != nil {
				if err := m.store.DeleteGeneration(m.runs[m.table.Cursor()].ID); err != nil {
					m.loadErr = err
				}
				m.loadRuns()
			}
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showStats = m.width >= minWidthForStats
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// exit quits a standalone program; embedded browsers hand control back.
func (m RunsModel) exit() tea.Cmd {
	if m.child {
		return nil
	}
	return tea.Quit
}

// View renders the runs browser.
func (m RunsModel) View() string {
	if m.quitting || (!m.child && (m.goingBack || m.selected != 0)) {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	b.WriteString(titleStyle.Render(centerText("SAVED RUNS", m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	tableRendered := tableStyle.Render(m.renderTableContent())

	if m.showStats {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.renderStats(), "  ", tableRendered))
	} else {
		b.WriteString(centerText(tableRendered, m.width))
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderStats renders the aggregate sidebar.
func (m RunsModel) renderStats() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(statsWidth).
		Padding(0, 1)

	var sb strings.Builder
	sb.WriteString("Stats\n")
	sb.WriteString(strings.Repeat("-", statsWidth-4))
	sb.WriteString("\n")

	if m.stats == nil {
		sb.WriteString("unavailable")
		return sidebarStyle.Render(sb.String())
	}

	fmt.Fprintf(&sb, "Runs:      %d\n", m.stats.Runs)
	fmt.Fprintf(&sb, "Seeds:     %d\n", m.stats.Seeds)
	fmt.Fprintf(&sb, "Max order: %d\n", m.stats.MaxSize)
	fmt.Fprintf(&sb, "Steps:     %d\n", m.stats.TotalSteps)
	if !m.stats.LastSaved.IsZero() {
		fmt.Fprintf(&sb, "Last:      %s", m.stats.LastSaved.Format("Jan 02 15:04"))
	}
	return sidebarStyle.Render(sb.String())
}

// renderTableContent renders the table or empty message.
func (m RunsModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	if m.store == nil {
		return emptyStyle.Render("No database available.")
	}
	if m.loadErr != nil {
		return emptyStyle.Render("Could not load runs:\n" + m.loadErr.Error())
	}
	if len(m.runs) == 0 {
		return emptyStyle.Render("No runs saved yet.\nGenerate one with 'aztec generate --save'.")
	}

	return m.table.View()
}

// Selected returns the chosen run id, or 0 if none.
func (m RunsModel) Selected() int64 {
	return m.selected
}

// IsGoingBack returns true if user wants to go back.
func (m RunsModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m RunsModel) IsQuitting() bool {
	return m.quitting
}

// RunRunsBrowser runs the saved-runs browser.
// Returns the selected run id, or 0 if the user left without choosing.
func RunRunsBrowser(store *storage.Store, width, height int) (int64, error) {
	model := NewRunsModel(store, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return 0, err
	}

	m, ok := finalModel.(RunsModel)
	if !ok {
		return 0, nil
	}

	return m.Selected(), nil
}
