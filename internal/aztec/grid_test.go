package aztec_test

import (
	"testing"

	"github.com/vovakirdan/aztec-shuffle/internal/aztec"
)

func TestInDiamondOrderOne(t *testing.T) {
	// Order 1 is the single 2x2 block.
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if !aztec.InDiamond(2, x, y) {
				t.Errorf("InDiamond(2, %d, %d) = false, expected true", x, y)
			}
		}
	}
}

func TestInDiamondOrderTwo(t *testing.T) {
	// Rows of the order-2 diamond are 2, 4, 4, 2 cells wide.
	expected := []string{
		".##.",
		"####",
		"####",
		".##.",
	}
	for y, row := range expected {
		for x, ch := range row {
			want := ch == '#'
			if got := aztec.InDiamond(4, x, y); got != want {
				t.Errorf("InDiamond(4, %d, %d) = %v, expected %v", x, y, got, want)
			}
		}
	}
}

func TestInDiamondCellCount(t *testing.T) {
	// An Aztec diamond of order n has 2n(n+1) cells.
	for order := 1; order <= 12; order++ {
		size := 2 * order
		count := 0
		for y := 0; y < size; y++ {
			for x := 0; x < size; x++ {
				if aztec.InDiamond(size, x, y) {
					count++
				}
			}
		}
		if want := 2 * order * (order + 1); count != want {
			t.Errorf("order %d: %d cells, expected %d", order, count, want)
		}
	}
}

func TestInDiamondOutOfBounds(t *testing.T) {
	testCases := []struct {
		x, y int
	}{
		{-1, 2}, {2, -1}, {6, 2}, {2, 6},
	}
	for _, tc := range testCases {
		if aztec.InDiamond(6, tc.x, tc.y) {
			t.Errorf("InDiamond(6, %d, %d) should be false", tc.x, tc.y)
		}
	}
}

func TestGridGrowFromEmpty(t *testing.T) {
	g := aztec.NewGrid(0)
	g = g.Grow()

	if g.Size != 2 {
		t.Fatalf("expected size 2, got %d", g.Size)
	}
	if g.EmptyCount() != 4 {
		t.Errorf("expected 4 empty cells, got %d", g.EmptyCount())
	}
}

func TestGridGrowPreservesContents(t *testing.T) {
	g := aztec.NewDiamond(1)
	g.Set(aztec.C(0, 0), aztec.Half(7, aztec.DirUp, aztec.C(1, 0)))
	g.Set(aztec.C(1, 0), aztec.Half(7, aztec.DirUp, aztec.C(-1, 0)))

	grown := g.Grow()

	if grown.Size != 4 {
		t.Fatalf("expected size 4, got %d", grown.Size)
	}
	cell := grown.Get(aztec.C(1, 1))
	if !cell.IsDomino() || cell.ID != 7 || cell.Dir != aztec.DirUp {
		t.Errorf("expected domino 7 shifted to (1,1), got %+v", cell)
	}
	if grown.Get(aztec.C(2, 1)).ID != 7 {
		t.Error("expected sibling half shifted to (2,1)")
	}
	// Corners stay outside the order-2 diamond.
	if grown.Get(aztec.C(0, 0)).Kind != aztec.CellOutside {
		t.Error("corner (0,0) should remain outside")
	}
	// The original grid is not modified.
	if g.Size != 2 {
		t.Error("Grow should not resize the receiver")
	}
}

func TestGridGetOutOfBounds(t *testing.T) {
	g := aztec.NewDiamond(2)
	if g.Get(aztec.C(-1, 0)).Kind != aztec.CellOutside {
		t.Error("out-of-bounds Get should return an Outside cell")
	}
	// Set out of bounds is ignored.
	g.Set(aztec.C(10, 10), aztec.Empty())
}

func TestGridRelativeAbsolute(t *testing.T) {
	g := aztec.NewDiamond(3)
	c := aztec.C(1, 4)

	rel := g.Relative(c)
	if rel != aztec.C(-2, 1) {
		t.Errorf("Relative(%v) = %v, expected (-2,1)", c, rel)
	}
	if back := g.Absolute(rel); back != c {
		t.Errorf("Absolute(Relative(%v)) = %v", c, back)
	}
	if center := g.Center(); center != aztec.C(3, 3) || g.Absolute(aztec.C(0, 0)) != center {
		t.Errorf("Center() = %v, expected (3,3)", center)
	}
}

func TestGridClone(t *testing.T) {
	g := aztec.NewDiamond(2)
	clone := g.Clone()

	if !g.Equal(clone) {
		t.Error("clone should be equal to original")
	}

	g.Set(aztec.C(1, 1), aztec.Outside())
	if clone.Get(aztec.C(1, 1)).Kind != aztec.CellEmpty {
		t.Error("clone should not be affected by original modification")
	}
}

func TestDirOppositeAndVec(t *testing.T) {
	testCases := []struct {
		dir      aztec.Dir
		opposite aztec.Dir
		vec      aztec.Vec
	}{
		{aztec.DirUp, aztec.DirDown, aztec.Vec{DX: 0, DY: -1}},
		{aztec.DirRight, aztec.DirLeft, aztec.Vec{DX: 1, DY: 0}},
		{aztec.DirDown, aztec.DirUp, aztec.Vec{DX: 0, DY: 1}},
		{aztec.DirLeft, aztec.DirRight, aztec.Vec{DX: -1, DY: 0}},
	}

	for _, tc := range testCases {
		if tc.dir.Opposite() != tc.opposite {
			t.Errorf("%v.Opposite() = %v, expected %v", tc.dir, tc.dir.Opposite(), tc.opposite)
		}
		if tc.dir.Vec() != tc.vec {
			t.Errorf("%v.Vec() = %v, expected %v", tc.dir, tc.dir.Vec(), tc.vec)
		}
		back, err := aztec.DirFromVec(tc.vec)
		if err != nil || back != tc.dir {
			t.Errorf("DirFromVec(%v) = %v, %v", tc.vec, back, err)
		}
	}
}
