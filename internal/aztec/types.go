// Package aztec grows random domino tilings of the Aztec diamond by domino
// shuffling and records every structural change as a replayable event log.
// This package is UI-agnostic and deterministic for a given seed.
package aztec

import "fmt"

// Dir is the direction a domino slides in.
type Dir uint8

const (
	DirUp Dir = iota
	DirRight
	DirDown
	DirLeft
)

// String returns the string representation of a direction.
func (d Dir) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirRight:
		return "Right"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	default:
		return "Unknown"
	}
}

// Delta returns the (dx, dy) offset for moving one step in this direction.
// Up decreases Y, Down increases Y (screen coordinates).
func (d Dir) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirRight:
		return 1, 0
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the opposite direction.
func (d Dir) Opposite() Dir {
	switch d {
	case DirUp:
		return DirDown
	case DirRight:
		return DirLeft
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return d
	}
}

// Vec returns the direction as a unit vector.
func (d Dir) Vec() Vec {
	dx, dy := d.Delta()
	return Vec{DX: dx, DY: dy}
}

// Vec is a direction vector as it appears in the event log.
type Vec struct {
	DX int
	DY int
}

// String returns a string representation of the vector.
func (v Vec) String() string {
	return fmt.Sprintf("(%d,%d)", v.DX, v.DY)
}

// DirFromVec maps a unit cardinal vector back to its direction.
// Any other vector means a bug upstream and yields an InvariantViolation.
func DirFromVec(v Vec) (Dir, error) {
	switch v {
	case Vec{0, -1}:
		return DirUp, nil
	case Vec{1, 0}:
		return DirRight, nil
	case Vec{0, 1}:
		return DirDown, nil
	case Vec{-1, 0}:
		return DirLeft, nil
	}
	return 0, violation("direction", "malformed direction vector %v", v)
}

// Coord represents a 2D coordinate on the lattice.
// X increases to the right, Y increases downward.
type Coord struct {
	X int
	Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns a new Coord offset by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// AddCoord returns the sum of two coordinates.
func (c Coord) AddCoord(other Coord) Coord {
	return Coord{X: c.X + other.X, Y: c.Y + other.Y}
}

// Step returns a new Coord one step in the given direction.
func (c Coord) Step(d Dir) Coord {
	dx, dy := d.Delta()
	return c.Add(dx, dy)
}

// CellKind tags which variant a Cell holds.
type CellKind uint8

const (
	CellOutside CellKind = iota // not yet part of the diamond
	CellEmpty                   // inside the diamond, unoccupied
	CellDomino                  // one half of a domino
)

// String returns the string representation of a cell kind.
func (k CellKind) String() string {
	switch k {
	case CellOutside:
		return "Outside"
	case CellEmpty:
		return "Empty"
	case CellDomino:
		return "Domino"
	default:
		return "Unknown"
	}
}

// Cell is a single lattice position. ID, Dir and Partner are meaningful
// only when Kind is CellDomino.
type Cell struct {
	Kind    CellKind
	ID      int   // shared by both halves of a domino
	Dir     Dir   // where the domino slides next
	Partner Coord // offset from this half to its sibling half
}

// Outside returns a cell that lies beyond the diamond.
func Outside() Cell {
	return Cell{Kind: CellOutside}
}

// Empty returns an unoccupied cell inside the diamond.
func Empty() Cell {
	return Cell{Kind: CellEmpty}
}

// Half returns one half of a domino.
func Half(id int, dir Dir, partner Coord) Cell {
	return Cell{Kind: CellDomino, ID: id, Dir: dir, Partner: partner}
}

// IsDomino reports whether the cell holds a domino half.
func (c Cell) IsDomino() bool {
	return c.Kind == CellDomino
}

// IsEmpty reports whether the cell is inside the diamond and unoccupied.
func (c Cell) IsEmpty() bool {
	return c.Kind == CellEmpty
}
