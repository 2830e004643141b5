package aztec_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/aztec-shuffle/internal/aztec"
)

func TestGenerateScenario(t *testing.T) {
	rec, err := aztec.Generate("HD7XEC", 5)
	require.NoError(t, err)

	assert.Equal(t, "HD7XEC", rec.Seed)
	assert.Equal(t, 5, rec.Size)
	require.Len(t, rec.Iterations, 5)

	first := rec.Iterations[0]
	assert.Equal(t, 0, first.Index)
	assert.Empty(t, first.DestroyedPairs)
	assert.Empty(t, first.MovedDominoes)
	require.Len(t, first.CreatedPairs, 1)

	pair := first.CreatedPairs[0]
	assert.Equal(t, 0, pair[0].ID)
	assert.Equal(t, 1, pair[1].ID)

	// The only block of the order-1 diamond spans (-1,-1)..(0,0).
	cells := map[aztec.Coord]bool{}
	for _, d := range pair {
		for _, c := range d.Cells {
			cells[c] = true
		}
	}
	assert.Equal(t, map[aztec.Coord]bool{
		aztec.C(-1, -1): true, aztec.C(0, -1): true,
		aztec.C(-1, 0): true, aztec.C(0, 0): true,
	}, cells)
	assert.Equal(t, pair[0].Dir, aztec.Vec{DX: -pair[1].Dir.DX, DY: -pair[1].Dir.DY},
		"siblings slide apart")
}

func TestGenerateDeterministic(t *testing.T) {
	for _, seed := range []string{"HD7XEC", "000000", "any string at all", "ÿ"} {
		a, err := aztec.Generate(seed, 12)
		require.NoError(t, err)
		b, err := aztec.Generate(seed, 12)
		require.NoError(t, err)

		aj, err := json.Marshal(a)
		require.NoError(t, err)
		bj, err := json.Marshal(b)
		require.NoError(t, err)
		assert.Equal(t, string(aj), string(bj), "seed %q", seed)
	}
}

func TestGenerateSeedsDiffer(t *testing.T) {
	a, err := aztec.Generate("AAAAAA", 10)
	require.NoError(t, err)
	b, err := aztec.Generate("AAAAAB", 10)
	require.NoError(t, err)

	aj, _ := json.Marshal(a)
	bj, _ := json.Marshal(b)
	assert.NotEqual(t, string(aj), string(bj))
}

func TestGenerateRejectsNonPositiveSize(t *testing.T) {
	for _, n := range []int{0, -1} {
		_, err := aztec.Generate("HD7XEC", n)
		require.Error(t, err)
		assert.True(t, errors.Is(err, aztec.ErrInvalidArgument))
	}
}

func TestGenerateAutoSeed(t *testing.T) {
	fixed := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	rec, err := aztec.Generate("", 3, aztec.WithClock(func() time.Time { return fixed }))
	require.NoError(t, err)

	assert.True(t, aztec.IsGeneratedSeed(rec.Seed), "seed %q", rec.Seed)

	again, err := aztec.Generate("", 3, aztec.WithClock(func() time.Time { return fixed }))
	require.NoError(t, err)
	assert.Equal(t, rec.Seed, again.Seed, "same instant yields same seed")
}

func TestIDMonotonicity(t *testing.T) {
	rec, err := aztec.Generate("MONOTONE", 20)
	require.NoError(t, err)

	alive := map[int]bool{}
	nextID := 0
	for _, it := range rec.Iterations {
		for _, p := range it.DestroyedPairs {
			require.True(t, alive[p.A], "iteration %d destroys unknown %d", it.Index, p.A)
			require.True(t, alive[p.B], "iteration %d destroys unknown %d", it.Index, p.B)
			delete(alive, p.A)
			delete(alive, p.B)
		}

		moved := map[int]bool{}
		for _, m := range it.MovedDominoes {
			require.True(t, alive[m.ID], "iteration %d moves unknown %d", it.Index, m.ID)
			require.False(t, moved[m.ID], "domino %d moved twice", m.ID)
			moved[m.ID] = true
		}
		require.Len(t, moved, len(alive), "every survivor moves exactly once")

		for _, pair := range it.CreatedPairs {
			for _, d := range pair {
				require.Equal(t, nextID, d.ID)
				alive[d.ID] = true
				nextID++
			}
		}
	}
}

func TestEngineTilingAfterEveryStep(t *testing.T) {
	e := aztec.NewEngine("TILING")
	for i := 0; i < 25; i++ {
		_, err := e.Step()
		require.NoError(t, err)

		g := e.Grid()
		require.Equal(t, 2*(i+1), g.Size)
		require.NoError(t, aztec.Validate(g), "iteration %d", i)
		assert.True(t, aztec.IsComplete(g), "iteration %d leaves holes", i)

		// A complete tiling of order n uses n(n+1) dominoes.
		order := i + 1
		assert.Equal(t, order*(order+1), g.DominoCount())
	}
}

func TestBoundaryGrowth(t *testing.T) {
	e := aztec.NewEngine("BOUNDS")
	var prev *aztec.Grid
	for i := 0; i < 8; i++ {
		_, err := e.Step()
		require.NoError(t, err)
		g := e.Grid()

		for y := 0; y < g.Size; y++ {
			for x := 0; x < g.Size; x++ {
				inside := g.Get(aztec.C(x, y)).Kind != aztec.CellOutside
				require.Equal(t, aztec.InDiamond(g.Size, x, y), inside)
			}
		}
		if prev != nil {
			// Every inside cell of the previous order is still inside once
			// shifted by the new ring.
			for y := 0; y < prev.Size; y++ {
				for x := 0; x < prev.Size; x++ {
					if prev.Get(aztec.C(x, y)).Kind != aztec.CellOutside {
						require.NotEqual(t, aztec.CellOutside, g.Get(aztec.C(x+1, y+1)).Kind)
					}
				}
			}
		}
		prev = g
	}
}

func TestReplayReproducesEngineGrid(t *testing.T) {
	e := aztec.NewEngine("REPLAY")
	for i := 0; i < 15; i++ {
		_, err := e.Step()
		require.NoError(t, err)
	}

	replayed, err := aztec.Replay(e.Record())
	require.NoError(t, err)

	assert.Equal(t, e.Grid().Occupied(), replayed.Occupied())
	assert.True(t, e.Grid().Equal(replayed))
}

func TestFramesMatchSteps(t *testing.T) {
	e := aztec.NewEngine("FRAMES")
	var grids []*aztec.Grid
	for i := 0; i < 6; i++ {
		_, err := e.Step()
		require.NoError(t, err)
		grids = append(grids, e.Grid())
	}

	frames, err := aztec.Frames(e.Record())
	require.NoError(t, err)
	require.Len(t, frames, len(grids))
	for i := range frames {
		assert.True(t, frames[i].Equal(grids[i]), "frame %d", i)
	}
}

func TestReplayRejectsTamperedLog(t *testing.T) {
	rec, err := aztec.Generate("TAMPER", 6)
	require.NoError(t, err)

	// Pick an iteration that moves at least two dominoes.
	target := -1
	for i, it := range rec.Iterations {
		if len(it.MovedDominoes) >= 2 {
			target = i
			break
		}
	}
	require.NotEqual(t, -1, target)

	t.Run("bad direction", func(t *testing.T) {
		bad := *rec
		bad.Iterations = append([]aztec.IterationRecord(nil), rec.Iterations...)
		it := bad.Iterations[target]
		it.MovedDominoes = append([]aztec.MovedDomino(nil), it.MovedDominoes...)
		it.MovedDominoes[0].Dir = aztec.Vec{DX: 1, DY: 1}
		bad.Iterations[target] = it

		_, err := aztec.Replay(&bad)
		require.Error(t, err)
		assert.True(t, errors.Is(err, aztec.ErrInvariant))
	})

	t.Run("missing move", func(t *testing.T) {
		bad := *rec
		bad.Iterations = append([]aztec.IterationRecord(nil), rec.Iterations...)
		it := bad.Iterations[target]
		it.MovedDominoes = append([]aztec.MovedDomino(nil), it.MovedDominoes[1:]...)
		bad.Iterations[target] = it

		_, err := aztec.Replay(&bad)
		assert.ErrorIs(t, err, aztec.ErrInvariant)
	})

	t.Run("size mismatch", func(t *testing.T) {
		bad := *rec
		bad.Size = rec.Size + 1
		_, err := aztec.Replay(&bad)
		assert.ErrorIs(t, err, aztec.ErrInvariant)
	})
}

func TestRecordJSONShape(t *testing.T) {
	rec, err := aztec.Generate("HD7XEC", 2)
	require.NoError(t, err)

	data, err := json.Marshal(rec)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	its := raw["iterations"].([]any)
	first := its[0].(map[string]any)

	// Empty event lists are [] rather than null.
	assert.Equal(t, []any{}, first["destroyedPairs"])
	assert.Equal(t, []any{}, first["movedDominoes"])

	var back aztec.GenerationRecord
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, *rec, back)
}

func TestRecordIsIndependentCopy(t *testing.T) {
	e := aztec.NewEngine("COPY")
	_, err := e.Step()
	require.NoError(t, err)

	rec := e.Record()
	rec.Iterations[0].CreatedPairs = nil

	again := e.Record()
	assert.Len(t, again.Iterations[0].CreatedPairs, 1)
}

func TestEngineCounters(t *testing.T) {
	e := aztec.NewEngine("COUNTERS")
	assert.Equal(t, 0, e.Iteration())
	assert.Equal(t, 0, e.NextID())

	for i := 0; i < 4; i++ {
		_, err := e.Step()
		require.NoError(t, err)
	}

	rec := e.Record()
	assert.Equal(t, 4, e.Iteration())
	assert.Equal(t, rec.DominoesCreated(), e.NextID())
}

func TestReplayerFailedApplyKeepsState(t *testing.T) {
	rec, err := aztec.Generate("ROLLBACK", 3)
	require.NoError(t, err)
	require.NotEmpty(t, rec.Iterations[1].CreatedPairs)

	r := aztec.NewReplayer()
	require.NoError(t, r.Apply(rec.Iterations[0]))
	before := r.Grid()

	// Break the last created domino so earlier ones in the iteration are placed first.
	bad := rec.Iterations[1]
	bad.CreatedPairs = append([]aztec.CreatedPair(nil), bad.CreatedPairs...)
	last := len(bad.CreatedPairs) - 1
	bad.CreatedPairs[last][1].ID += 100

	require.ErrorIs(t, r.Apply(bad), aztec.ErrInvariant)
	assert.Equal(t, 1, r.Iteration())
	assert.True(t, r.Grid().Equal(before), "failed apply changed the grid")

	// The id counter was not advanced, so the genuine iteration still applies.
	require.NoError(t, r.Apply(rec.Iterations[1]))
	require.NoError(t, r.Apply(rec.Iterations[2]))
	assert.Equal(t, 3, r.Iteration())

	want, err := aztec.Replay(rec)
	require.NoError(t, err)
	assert.True(t, r.Grid().Equal(want))
}

func TestGenerateLogsOnlyAtDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.InfoLevel})

	_, err := aztec.Generate("QUIET", 4, aztec.WithLogger(logger))
	require.NoError(t, err)
	assert.Empty(t, buf.String())

	logger.SetLevel(log.DebugLevel)
	_, err = aztec.Generate("QUIET", 4, aztec.WithLogger(logger))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "generation complete")
	assert.Contains(t, buf.String(), "iteration complete")
}
