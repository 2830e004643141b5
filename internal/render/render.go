// Package render draws aztec grids. Draw paints a grid snapshot with a status
// header into a core.Screen for the interactive viewer; RenderASCII produces a
// plain string for terminals, logs and tests.
package render

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/aztec-shuffle/internal/aztec"
	"github.com/vovakirdan/aztec-shuffle/internal/core"
)

// CellWidth is the number of screen columns used per lattice cell, which
// keeps the diamond roughly square in a terminal.
const CellWidth = 2

// headerRows is the space reserved above the board.
const headerRows = 2

// Frame describes the run state shown in the header.
type Frame struct {
	Seed       string
	Iteration  int // zero-based index of the displayed iteration
	Iterations int
	Playing    bool
	FPS        int
}

// Options configures drawing behavior.
type Options struct {
	ShowIDs bool // Label halves with the last two digits of their id
}

// glyphs per slide direction.
var glyphs = map[aztec.Dir]rune{
	aztec.DirUp:    '▲',
	aztec.DirRight: '▶',
	aztec.DirDown:  '▼',
	aztec.DirLeft:  '◀',
}

var colors = map[aztec.Dir]core.Color{
	aztec.DirUp:    core.ColorUp,
	aztec.DirRight: core.ColorRight,
	aztec.DirDown:  core.ColorDown,
	aztec.DirLeft:  core.ColorLeft,
}

// ColorFor returns the color role for a slide direction.
func ColorFor(d aztec.Dir) core.Color {
	return colors[d]
}

// Fits reports whether a grid of the given side fits on the screen.
func Fits(dst *core.Screen, size int) bool {
	return size*CellWidth <= dst.Width() && size+headerRows <= dst.Height()
}

// Draw renders the grid and header into dst.
func Draw(dst *core.Screen, g *aztec.Grid, f Frame, opt Options) {
	dst.Clear()
	drawHeader(dst, g, f)

	if g == nil {
		drawOverlay(dst, "No iterations", "Nothing to show")
		return
	}
	if !Fits(dst, g.Size) {
		drawOverlay(dst, "Window too small",
			fmt.Sprintf("Need %dx%d", g.Size*CellWidth, g.Size+headerRows))
		return
	}

	area := core.NewRect(0, headerRows, dst.Width(), dst.Height()-headerRows)
	board := area.CenterIn(g.Size*CellWidth, g.Size)

	for y := 0; y < g.Size; y++ {
		for x := 0; x < g.Size; x++ {
			sx := board.X + x*CellWidth
			sy := board.Y + y
			drawCell(dst, sx, sy, g.Get(aztec.C(x, y)), opt)
		}
	}
}

func drawCell(dst *core.Screen, sx, sy int, cell aztec.Cell, opt Options) {
	switch cell.Kind {
	case aztec.CellEmpty:
		dst.SetCell(sx, sy, '·', core.ColorEmpty)
		dst.SetCell(sx+1, sy, ' ', core.ColorEmpty)
	case aztec.CellDomino:
		c := colors[cell.Dir]
		if opt.ShowIDs {
			dst.DrawTextColor(sx, sy, fmt.Sprintf("%02d", cell.ID%100), c)
			return
		}
		g := glyphs[cell.Dir]
		dst.SetCell(sx, sy, g, c)
		dst.SetCell(sx+1, sy, g, c)
	}
}

// drawHeader draws the top status bar.
func drawHeader(dst *core.Screen, g *aztec.Grid, f Frame) {
	state := "paused"
	if f.Playing {
		state = fmt.Sprintf("playing %d fps", f.FPS)
	}

	dominoes := 0
	if g != nil {
		dominoes = g.DominoCount()
	}

	hud := fmt.Sprintf(" Aztec diamond  seed %s  order %d/%d  dominoes %d  %s",
		f.Seed, f.Iteration+1, f.Iterations, dominoes, state)
	dst.DrawTextColor(0, 0, hud, core.ColorAccent)
	dst.DrawHLine(0, 1, dst.Width(), '─', core.ColorFrame)
}

// drawOverlay draws a centered two-line message box.
func drawOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := core.Max(len(line1), len(line2))
	box := dst.Bounds().CenterIn(maxLen+4, 4)

	for y := box.Y; y < box.Bottom(); y++ {
		dst.DrawHLine(box.X, y, box.W, ' ', core.ColorDefault)
	}
	dst.DrawBox(box, core.ColorFrame)
	dst.DrawTextCentered(box.Y+1, line1, core.ColorAccent)
	dst.DrawTextCentered(box.Y+2, line2, core.ColorMuted)
}

// ASCII characters used by RenderASCII.
var asciiGlyphs = map[aztec.Dir]byte{
	aztec.DirUp:    '^',
	aztec.DirRight: '>',
	aztec.DirDown:  'v',
	aztec.DirLeft:  '<',
}

// RenderASCII converts a grid to one line per row: direction arrows for
// domino halves, '.' for empty cells and ' ' outside the diamond.
// Trailing spaces are trimmed.
func RenderASCII(g *aztec.Grid) string {
	var sb strings.Builder
	line := make([]byte, g.Size)
	for y := 0; y < g.Size; y++ {
		for x := 0; x < g.Size; x++ {
			cell := g.Get(aztec.C(x, y))
			switch cell.Kind {
			case aztec.CellDomino:
				line[x] = asciiGlyphs[cell.Dir]
			case aztec.CellEmpty:
				line[x] = '.'
			default:
				line[x] = ' '
			}
		}
		sb.WriteString(strings.TrimRight(string(line), " "))
		sb.WriteByte('\n')
	}
	return sb.String()
}
