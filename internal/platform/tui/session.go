package tui

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/aztec-shuffle/internal/core"
	"github.com/vovakirdan/aztec-shuffle/internal/storage"
)

// sessionScreen identifies the active sub-model of a session.
type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenViewer
	screenRuns
)

// SessionModel manages the full flow: menu -> viewer or runs -> menu.
// It is the top-level model for SSH sessions and `aztec menu`.
type SessionModel struct {
	store    *storage.Store
	config   core.RuntimeConfig
	palette  Palette
	logger   *log.Logger
	maxOrder int
	active   sessionScreen
	menu     MenuModel
	viewer   Model
	runs     RunsModel
	errMsg   string
	quitting bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(store *storage.Store, cfg core.RuntimeConfig, maxOrder int, palette Palette, logger *log.Logger) SessionModel {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if palette == nil {
		palette = DefaultPalette()
	}
	return SessionModel{
		store:    store,
		config:   cfg,
		palette:  palette,
		logger:   logger,
		maxOrder: maxOrder,
		menu:     NewMenuModel(cfg, maxOrder),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.active {
	case screenViewer:
		return m.updateViewer(msg)
	case screenRuns:
		return m.updateRuns(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	switch m.menu.Choice() {
	case MenuChoiceQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuChoiceGenerate:
		cfg := m.config
		cfg.Order = m.menu.Order()
		cfg.Seed = ""
		viewer, err := NewModel(cfg,
			WithStore(m.store), WithPalette(m.palette), WithLogger(m.logger), asChild())
		return m.openViewer(viewer, err)

	case MenuChoiceRuns:
		m.runs = NewRunsModel(m.store, m.config.ScreenW, m.config.ScreenH)
		m.runs.child = true
		m.active = screenRuns
		return m, m.runs.Init()
	}

	return m, cmd
}

// openViewer switches to the viewer, or back to the menu with an error.
func (m SessionModel) openViewer(viewer Model, err error) (tea.Model, tea.Cmd) {
	if err != nil {
		m.logger.Error("cannot open viewer", "error", err)
		m.errMsg = err.Error()
		return m.toMenu()
	}
	m.errMsg = ""
	m.viewer = viewer
	m.active = screenViewer
	return m, m.viewer.Init()
}

// toMenu resets the menu and makes it active.
func (m SessionModel) toMenu() (tea.Model, tea.Cmd) {
	order := m.menu.Order()
	cfg := m.config
	cfg.Order = order
	m.menu = NewMenuModel(cfg, m.maxOrder)
	m.active = screenMenu
	return m, m.menu.Init()
}

// updateViewer handles updates when a run is on screen.
func (m SessionModel) updateViewer(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.viewer.Update(msg)
	if viewer, ok := newModel.(Model); ok {
		m.viewer = viewer
	}

	if m.viewer.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.viewer.BackToMenu() {
		return m.toMenu()
	}

	return m, cmd
}

// updateRuns handles updates in the saved-runs browser.
func (m SessionModel) updateRuns(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.runs.Update(msg)
	if runs, ok := newModel.(RunsModel); ok {
		m.runs = runs
	}

	switch {
	case m.runs.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.runs.IsGoingBack():
		return m.toMenu()

	case m.runs.Selected() != 0:
		run, err := m.store.GenerationByID(m.runs.Selected())
		if err != nil {
			return m.openViewer(Model{}, err)
		}
		viewer, err := NewModel(m.config,
			WithRecord(run.Record), WithPalette(m.palette), WithLogger(m.logger), asChild())
		return m.openViewer(viewer, err)
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.active {
	case screenViewer:
		return m.viewer.View()
	case screenRuns:
		return m.runs.View()
	}

	view := m.menu.View()
	if m.errMsg != "" {
		view += "\n" + centerText(m.palette[core.ColorDown].Render(fmt.Sprintf("error: %s", m.errMsg)), m.config.ScreenW)
	}
	return view
}

// RunSession runs the interactive session in the local terminal.
func RunSession(store *storage.Store, cfg core.RuntimeConfig, maxOrder int, palette Palette, logger *log.Logger) error {
	model := NewSessionModel(store, cfg, maxOrder, palette, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
