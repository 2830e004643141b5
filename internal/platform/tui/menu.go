package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/aztec-shuffle/internal/core"
)

// MenuChoice is what the user picked in the session menu.
type MenuChoice int

const (
	MenuChoiceNone MenuChoice = iota
	MenuChoiceGenerate
	MenuChoiceRuns
	MenuChoiceQuit
)

// menuItems lists the menu entries in display order.
var menuItems = []MenuChoice{MenuChoiceGenerate, MenuChoiceRuns, MenuChoiceQuit}

// MenuModel is the Bubble Tea model for the session start menu.
type MenuModel struct {
	cursor    int
	order     int
	maxOrder  int
	width     int
	height    int
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	choice    MenuChoice
}

// NewMenuModel creates a new menu model. The order picker starts at
// cfg.Order and is capped at maxOrder.
func NewMenuModel(cfg core.RuntimeConfig, maxOrder int) MenuModel {
	if maxOrder <= 0 {
		maxOrder = 1
	}
	return MenuModel{
		order:     core.Clamp(cfg.Order, 1, maxOrder),
		maxOrder:  maxOrder,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.choice = MenuChoiceQuit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(menuItems)-1 {
			m.cursor++
		}

	case MenuActionLeft:
		if menuItems[m.cursor] == MenuChoiceGenerate {
			m.order = core.Clamp(m.order-1, 1, m.maxOrder)
		}

	case MenuActionRight:
		if menuItems[m.cursor] == MenuChoiceGenerate {
			m.order = core.Clamp(m.order+1, 1, m.maxOrder)
		}

	case MenuActionSelect:
		m.choice = menuItems[m.cursor]
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("  A Z T E C   D I A M O N D  "), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(dimStyle.Render("Random domino tilings by shuffling"), m.width))
	b.WriteString("\n\n")

	for i, item := range menuItems {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		var label string
		switch item {
		case MenuChoiceGenerate:
			label = fmt.Sprintf("New diamond   < order %d >", m.order)
		case MenuChoiceRuns:
			label = "Saved runs"
		case MenuChoiceQuit:
			label = "Quit"
		}

		b.WriteString(centerText(cursor+label, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Left/Right: Order  |  Enter: Select  |  Q: Quit"
	b.WriteString(centerText(dimStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Choice returns what the user selected, or MenuChoiceNone.
func (m MenuModel) Choice() MenuChoice {
	return m.choice
}

// Order returns the order picked for a new diamond.
func (m MenuModel) Order() int {
	return m.order
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}
