package aztec

// Grid is the square lattice holding the current tiling.
// Cells are stored in row-major order: index = y*Size + x.
// A grid of order n has side 2n; order 0 is the empty grid.
type Grid struct {
	Size  int    // Side length, always even
	Cells []Cell // Flat array of cells, length Size*Size
}

// NewGrid creates a grid of the given side with every cell Outside.
func NewGrid(size int) *Grid {
	return &Grid{
		Size:  size,
		Cells: make([]Cell, size*size), // zero Cell is Outside
	}
}

// NewDiamond creates an untiled diamond of the given order: cells inside the
// boundary are Empty, the rest Outside.
func NewDiamond(order int) *Grid {
	g := NewGrid(2 * order)
	for y := 0; y < g.Size; y++ {
		for x := 0; x < g.Size; x++ {
			if InDiamond(g.Size, x, y) {
				g.Cells[g.index(C(x, y))] = Empty()
			}
		}
	}
	return g
}

// Order returns the diamond order this grid represents.
func (g *Grid) Order() int {
	return g.Size / 2
}

// index converts a coordinate to a flat array index.
func (g *Grid) index(c Coord) int {
	return c.Y*g.Size + c.X
}

// InBounds returns true if the coordinate is within the grid boundaries.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.Size && c.Y >= 0 && c.Y < g.Size
}

// Get returns the cell at the given coordinate.
// Returns an Outside cell if out of bounds.
func (g *Grid) Get(c Coord) Cell {
	if !g.InBounds(c) {
		return Outside()
	}
	return g.Cells[g.index(c)]
}

// Set sets the cell at the given coordinate.
func (g *Grid) Set(c Coord, cell Cell) {
	if g.InBounds(c) {
		g.Cells[g.index(c)] = cell
	}
}

// Center returns the lattice point the log coordinates are relative to.
func (g *Grid) Center() Coord {
	return C(g.Size/2, g.Size/2)
}

// Relative converts an absolute grid coordinate to one relative to the center.
func (g *Grid) Relative(c Coord) Coord {
	o := g.Center()
	return C(c.X-o.X, c.Y-o.Y)
}

// Absolute converts a center-relative coordinate back to a grid coordinate.
func (g *Grid) Absolute(c Coord) Coord {
	return c.AddCoord(g.Center())
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.Cells))
	copy(cells, g.Cells)
	return &Grid{
		Size:  g.Size,
		Cells: cells,
	}
}

// Grow returns a new grid one order larger. The old contents shift by one
// ring so the diamond stays centered, and every Outside cell that falls inside
// the larger diamond becomes Empty. Occupied cells are never touched.
func (g *Grid) Grow() *Grid {
	next := NewGrid(g.Size + 2)
	for y := 0; y < g.Size; y++ {
		for x := 0; x < g.Size; x++ {
			next.Cells[next.index(C(x+1, y+1))] = g.Cells[g.index(C(x, y))]
		}
	}
	for y := 0; y < next.Size; y++ {
		for x := 0; x < next.Size; x++ {
			i := next.index(C(x, y))
			if next.Cells[i].Kind == CellOutside && InDiamond(next.Size, x, y) {
				next.Cells[i] = Empty()
			}
		}
	}
	return next
}

// InDiamond reports whether (x, y) lies inside the Aztec diamond drawn on a
// grid of the given side. Each axis contributes ceil(|a + 1/2 - side/2|),
// and the cell is inside when the sum minus one is at most side/2.
func InDiamond(size, x, y int) bool {
	if x < 0 || y < 0 || x >= size || y >= size {
		return false
	}
	half := size / 2
	return axisDistance(x, half)+axisDistance(y, half)-1 <= half
}

// axisDistance is ceil(|a + 0.5 - half|) in integer arithmetic.
func axisDistance(a, half int) int {
	if a < half {
		return half - a
	}
	return a - half + 1
}

// DominoCount returns the number of dominoes currently placed.
func (g *Grid) DominoCount() int {
	halves := 0
	for _, cell := range g.Cells {
		if cell.IsDomino() {
			halves++
		}
	}
	return halves / 2
}

// EmptyCount returns the number of unoccupied cells inside the diamond.
func (g *Grid) EmptyCount() int {
	count := 0
	for _, cell := range g.Cells {
		if cell.IsEmpty() {
			count++
		}
	}
	return count
}

// Occupied returns every domino half keyed by its absolute coordinate.
func (g *Grid) Occupied() map[Coord]Cell {
	out := make(map[Coord]Cell)
	for y := 0; y < g.Size; y++ {
		for x := 0; x < g.Size; x++ {
			c := C(x, y)
			if cell := g.Get(c); cell.IsDomino() {
				out[c] = cell
			}
		}
	}
	return out
}

// Equal returns true if two grids have the same dimensions and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.Size != other.Size {
		return false
	}
	for i, cell := range g.Cells {
		if cell != other.Cells[i] {
			return false
		}
	}
	return true
}
