package aztec

import "fmt"

// Replayer rebuilds the tiling from an event log, one iteration at a time,
// without consulting any random stream. Every logged event is checked against
// the grid it applies to, so a corrupted or foreign log fails loudly.
type Replayer struct {
	grid   *Grid
	nextID int
	next   int
}

// NewReplayer starts from the empty grid every generation starts from.
func NewReplayer() *Replayer {
	return &Replayer{grid: NewGrid(0)}
}

// Grid returns a copy of the replayed tiling.
func (r *Replayer) Grid() *Grid {
	return r.grid.Clone()
}

// Iteration returns the number of iterations applied so far.
func (r *Replayer) Iteration() int {
	return r.next
}

// Apply replays one iteration: grow, then the logged destroy, move and create
// events in order.
func (r *Replayer) Apply(it IterationRecord) error {
	if it.Index != r.next {
		return violation("replay", "expected iteration %d, got %d", r.next, it.Index)
	}
	g := r.grid.Grow()

	if err := replayDestroy(g, it.DestroyedPairs); err != nil {
		return fmt.Errorf("iteration %d: %w", it.Index, err)
	}
	g, err := replayMove(g, it.MovedDominoes)
	if err != nil {
		return fmt.Errorf("iteration %d: %w", it.Index, err)
	}
	nextID, err := replayCreate(g, r.nextID, it.CreatedPairs)
	if err != nil {
		return fmt.Errorf("iteration %d: %w", it.Index, err)
	}

	r.grid = g
	r.nextID = nextID
	r.next++
	return nil
}

func replayDestroy(g *Grid, pairs []DestroyedPair) error {
	cells := dominoCells(g)
	for _, p := range pairs {
		a, okA := cells[p.A]
		b, okB := cells[p.B]
		if !okA || !okB {
			return violation("replay destroy", "pair (%d,%d) references a missing domino", p.A, p.B)
		}
		if !facing(g, a[0], p.B) && !facing(g, a[1], p.B) {
			return violation("replay destroy", "dominoes %d and %d do not face each other", p.A, p.B)
		}
		for _, c := range append(a[:], b[:]...) {
			g.Set(c, Empty())
		}
	}
	if n := FacingPairs(g); n > 0 {
		return violation("replay destroy", "%d facing pairs left after destroy", n)
	}
	return nil
}

// facing reports whether the half at c points into domino id pointing back.
func facing(g *Grid, c Coord, id int) bool {
	cell := g.Get(c)
	other := g.Get(c.Step(cell.Dir))
	return other.IsDomino() && other.ID == id && other.Dir == cell.Dir.Opposite()
}

func replayMove(g *Grid, moves []MovedDomino) (*Grid, error) {
	next := NewGrid(g.Size)
	for i, cell := range g.Cells {
		if cell.Kind != CellOutside {
			next.Cells[i] = Empty()
		}
	}

	cells := dominoCells(g)
	seen := make(map[int]struct{}, len(moves))
	for _, m := range moves {
		if _, dup := seen[m.ID]; dup {
			return nil, violation("replay move", "domino %d moved twice", m.ID)
		}
		seen[m.ID] = struct{}{}

		dir, err := DirFromVec(m.Dir)
		if err != nil {
			return nil, err
		}
		halves, ok := cells[m.ID]
		if !ok {
			return nil, violation("replay move", "domino %d does not exist", m.ID)
		}
		for _, from := range halves {
			half := g.Get(from)
			if half.Dir != dir {
				return nil, violation("replay move", "domino %d points %s but was logged moving %s", m.ID, half.Dir, dir)
			}
			to := from.Step(dir)
			if !next.Get(to).IsEmpty() {
				return nil, violation("replay move", "domino %d cannot land on %v", m.ID, to)
			}
			next.Set(to, half)
		}
	}
	if len(seen) != len(cells) {
		return nil, violation("replay move", "%d dominoes survived but %d moves were logged", len(cells), len(seen))
	}
	return next, nil
}

// replayCreate places the logged pairs on g, starting from id nextID, and
// returns the id counter after the last placed domino.
func replayCreate(g *Grid, nextID int, pairs []CreatedPair) (int, error) {
	for _, pair := range pairs {
		for _, d := range pair {
			if d.ID != nextID {
				return 0, violation("replay create", "expected id %d, got %d", nextID, d.ID)
			}
			dir, err := DirFromVec(d.Dir)
			if err != nil {
				return 0, err
			}
			a, b := g.Absolute(d.Cells[0]), g.Absolute(d.Cells[1])
			if !g.Get(a).IsEmpty() || !g.Get(b).IsEmpty() {
				return 0, violation("replay create", "domino %d placed on a non-empty cell", d.ID)
			}
			if !adjacent(a, b) {
				return 0, violation("replay create", "domino %d cells %v and %v are not adjacent", d.ID, a, b)
			}
			g.Set(a, Half(d.ID, dir, C(b.X-a.X, b.Y-a.Y)))
			g.Set(b, Half(d.ID, dir, C(a.X-b.X, a.Y-b.Y)))
			nextID++
		}
	}
	return nextID, nil
}

// Replay rebuilds the final tiling of a record.
func Replay(rec *GenerationRecord) (*Grid, error) {
	if rec.Size != len(rec.Iterations) {
		return nil, violation("replay", "record size %d but %d iterations", rec.Size, len(rec.Iterations))
	}
	r := NewReplayer()
	for _, it := range rec.Iterations {
		if err := r.Apply(it); err != nil {
			return nil, err
		}
	}
	return r.Grid(), nil
}

// Frames replays a record and returns the tiling after every iteration.
func Frames(rec *GenerationRecord) ([]*Grid, error) {
	r := NewReplayer()
	frames := make([]*Grid, 0, len(rec.Iterations))
	for _, it := range rec.Iterations {
		if err := r.Apply(it); err != nil {
			return nil, err
		}
		frames = append(frames, r.Grid())
	}
	return frames, nil
}

// dominoCells maps every domino id to the coordinates of its two halves.
func dominoCells(g *Grid) map[int][2]Coord {
	out := make(map[int][2]Coord)
	for y := 0; y < g.Size; y++ {
		for x := 0; x < g.Size; x++ {
			c := C(x, y)
			cell := g.Get(c)
			if !cell.IsDomino() {
				continue
			}
			if _, ok := out[cell.ID]; ok {
				continue
			}
			out[cell.ID] = [2]Coord{c, c.AddCoord(cell.Partner)}
		}
	}
	return out
}

func adjacent(a, b Coord) bool {
	dx, dy := a.X-b.X, a.Y-b.Y
	return dx*dx+dy*dy == 1
}
