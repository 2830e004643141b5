package aztec

// Validate checks that g is a sound partial tiling: every domino has exactly
// two halves that point at each other as partners and agree on id and
// direction, and the non-Outside cells form exactly the diamond for the
// grid's order.
func Validate(g *Grid) error {
	halves := make(map[int]int)
	for y := 0; y < g.Size; y++ {
		for x := 0; x < g.Size; x++ {
			c := C(x, y)
			cell := g.Get(c)

			if inside := InDiamond(g.Size, x, y); inside == (cell.Kind == CellOutside) {
				return violation("validate", "cell %v is %s but inside=%v", c, cell.Kind, inside)
			}
			if !cell.IsDomino() {
				continue
			}

			if cell.Dir > DirLeft {
				return violation("validate", "domino %d at %v has direction %d", cell.ID, c, cell.Dir)
			}
			if !adjacent(C(0, 0), cell.Partner) {
				return violation("validate", "domino %d at %v has partner offset %v", cell.ID, c, cell.Partner)
			}
			sibling := g.Get(c.AddCoord(cell.Partner))
			if !sibling.IsDomino() || sibling.ID != cell.ID || sibling.Dir != cell.Dir ||
				sibling.Partner != C(-cell.Partner.X, -cell.Partner.Y) {
				return violation("validate", "domino %d at %v has no matching sibling", cell.ID, c)
			}
			halves[cell.ID]++
		}
	}
	for id, n := range halves {
		if n != 2 {
			return violation("validate", "domino %d has %d halves", id, n)
		}
	}
	return nil
}

// FacingPairs counts pairs of dominoes that point into each other. The
// destroy phase removes exactly these.
func FacingPairs(g *Grid) int {
	type pair struct{ lo, hi int }
	seen := make(map[pair]struct{})
	for y := 0; y < g.Size; y++ {
		for x := 0; x < g.Size; x++ {
			c := C(x, y)
			cell := g.Get(c)
			if !cell.IsDomino() {
				continue
			}
			other := g.Get(c.Step(cell.Dir))
			if !other.IsDomino() || other.Dir != cell.Dir.Opposite() {
				continue
			}
			p := pair{lo: min(cell.ID, other.ID), hi: max(cell.ID, other.ID)}
			seen[p] = struct{}{}
		}
	}
	return len(seen)
}

// IsComplete reports whether every cell of the diamond is covered.
func IsComplete(g *Grid) bool {
	return g.EmptyCount() == 0
}
