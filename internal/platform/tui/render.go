package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/aztec-shuffle/internal/config"
	"github.com/vovakirdan/aztec-shuffle/internal/core"
)

// Palette maps color roles to lipgloss styles.
type Palette map[core.Color]lipgloss.Style

// NewPalette builds a palette from configured ANSI color codes.
func NewPalette(c config.ColorConfig) Palette {
	fg := func(code string) lipgloss.Style {
		if code == "" {
			return lipgloss.NewStyle()
		}
		return lipgloss.NewStyle().Foreground(lipgloss.Color(code))
	}
	return Palette{
		core.ColorDefault: lipgloss.NewStyle(),
		core.ColorUp:      fg(c.Up),
		core.ColorRight:   fg(c.Right),
		core.ColorDown:    fg(c.Down),
		core.ColorLeft:    fg(c.Left),
		core.ColorEmpty:   fg(c.Empty),
		core.ColorFrame:   fg("240"),
		core.ColorAccent:  fg("229").Bold(true),
		core.ColorMuted:   fg("241"),
	}
}

// DefaultPalette returns the palette for the built-in color configuration.
func DefaultPalette() Palette {
	return NewPalette(config.DefaultConfig().Viewer.Colors)
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, p Palette) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := p[startColor]
			if !ok {
				style = p[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}
