package aztec

// The four phases of a shuffle step. Each scans the grid row by row, left to
// right, which together with the seeded stream makes a run reproducible.

// destroy removes every pair of dominoes that point into each other.
func destroy(g *Grid) []DestroyedPair {
	removed := []DestroyedPair{}
	for y := 0; y < g.Size; y++ {
		for x := 0; x < g.Size; x++ {
			p := C(x, y)
			cell := g.Get(p)
			if !cell.IsDomino() {
				continue
			}
			q := p.Step(cell.Dir)
			other := g.Get(q)
			if !other.IsDomino() || other.Dir != cell.Dir.Opposite() {
				continue
			}
			removed = append(removed, DestroyedPair{A: cell.ID, B: other.ID})
			g.Set(p, Empty())
			g.Set(p.AddCoord(cell.Partner), Empty())
			g.Set(q, Empty())
			g.Set(q.AddCoord(other.Partner), Empty())
		}
	}
	return removed
}

// move slides every surviving domino one cell along its direction. The
// result is written into a fresh grid so the scan never reads a cell that
// has already been rewritten.
func move(g *Grid) (*Grid, []MovedDomino, error) {
	next := NewGrid(g.Size)
	for i, cell := range g.Cells {
		if cell.Kind != CellOutside {
			next.Cells[i] = Empty()
		}
	}

	moved := []MovedDomino{}
	done := make(map[int]struct{})
	for y := 0; y < g.Size; y++ {
		for x := 0; x < g.Size; x++ {
			p := C(x, y)
			cell := g.Get(p)
			if !cell.IsDomino() {
				continue
			}
			if _, ok := done[cell.ID]; ok {
				continue
			}
			sibling := p.AddCoord(cell.Partner)
			for _, from := range []Coord{p, sibling} {
				half := g.Get(from)
				to := from.Step(cell.Dir)
				if !next.Get(to).IsEmpty() {
					return nil, nil, violation("move", "domino %d cannot slide %s from %v onto %s cell %v",
						cell.ID, cell.Dir, from, next.Get(to).Kind, to)
				}
				next.Set(to, half)
			}
			done[cell.ID] = struct{}{}
			moved = append(moved, MovedDomino{ID: cell.ID, Dir: cell.Dir.Vec()})
		}
	}
	return next, moved, nil
}

// create fills every empty 2x2 block with a fresh pair of dominoes. A block
// filled earlier in the scan is no longer empty, so overlapping blocks are
// skipped.
func create(g *Grid, nextID *int, s *Stream) []CreatedPair {
	created := []CreatedPair{}
	for y := 0; y+1 < g.Size; y++ {
		for x := 0; x+1 < g.Size; x++ {
			tl, tr := C(x, y), C(x+1, y)
			bl, br := C(x, y+1), C(x+1, y+1)
			if !g.Get(tl).IsEmpty() || !g.Get(tr).IsEmpty() ||
				!g.Get(bl).IsEmpty() || !g.Get(br).IsEmpty() {
				continue
			}

			first, second := *nextID, *nextID+1
			*nextID += 2

			var pair CreatedPair
			if s.Flip() {
				// Vertical: top row slides up, bottom row slides down.
				pair[0] = place(g, first, DirUp, tl, tr)
				pair[1] = place(g, second, DirDown, bl, br)
			} else {
				// Horizontal: left column slides left, right column right.
				pair[0] = place(g, first, DirLeft, tl, bl)
				pair[1] = place(g, second, DirRight, tr, br)
			}
			created = append(created, pair)
		}
	}
	return created
}

// place writes one domino over two adjacent cells and describes it for the log.
func place(g *Grid, id int, dir Dir, a, b Coord) CreatedDomino {
	g.Set(a, Half(id, dir, C(b.X-a.X, b.Y-a.Y)))
	g.Set(b, Half(id, dir, C(a.X-b.X, a.Y-b.Y)))
	return CreatedDomino{
		ID:    id,
		Cells: [2]Coord{g.Relative(a), g.Relative(b)},
		Dir:   dir.Vec(),
	}
}
