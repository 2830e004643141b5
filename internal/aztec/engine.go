package aztec

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// Engine runs domino shuffling for one generation. It exclusively owns the
// current grid, the id counter and the random stream; it is not safe for
// concurrent use.
type Engine struct {
	seed      string
	grid      *Grid
	nextID    int
	iteration int
	stream    *Stream
	builder   *Builder
	logger    *log.Logger
}

// Option configures an Engine.
type Option func(*options)

type options struct {
	logger *log.Logger
	now    func() time.Time
}

// WithLogger sets the logger used for per-iteration debug output.
func WithLogger(l *log.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithClock sets the time source used to derive a seed when none is given.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// NewEngine prepares a run. An empty seedMaterial draws a random
// 6-character seed.
func NewEngine(seedMaterial string, opts ...Option) *Engine {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = log.New(io.Discard)
	}

	seed, stream := Initialize(seedMaterial, o.now)
	return &Engine{
		seed:    seed,
		grid:    NewGrid(0),
		stream:  stream,
		builder: NewBuilder(seed),
		logger:  o.logger.With("seed", seed),
	}
}

// Seed returns the resolved seed string.
func (e *Engine) Seed() string {
	return e.seed
}

// Grid returns a copy of the current tiling.
func (e *Engine) Grid() *Grid {
	return e.grid.Clone()
}

// Iteration returns the number of completed steps.
func (e *Engine) Iteration() int {
	return e.iteration
}

// NextID returns the id the next created domino will receive.
func (e *Engine) NextID() int {
	return e.nextID
}

// Step advances the tiling by one order: grow, destroy, move, create, in that
// order. The returned record is also appended to the engine's log.
func (e *Engine) Step() (IterationRecord, error) {
	rec := newIterationRecord(e.iteration)

	grown := e.grid.Grow()
	rec.DestroyedPairs = destroy(grown)

	next, moved, err := move(grown)
	if err != nil {
		return IterationRecord{}, fmt.Errorf("iteration %d: %w", e.iteration, err)
	}
	rec.MovedDominoes = moved

	nextID := e.nextID
	rec.CreatedPairs = create(next, &nextID, e.stream)

	if err := e.builder.Append(rec); err != nil {
		return IterationRecord{}, err
	}
	e.grid = next
	e.nextID = nextID
	e.logger.Debug("iteration complete",
		"index", e.iteration,
		"order", e.grid.Order(),
		"destroyed", len(rec.DestroyedPairs),
		"moved", len(rec.MovedDominoes),
		"created", len(rec.CreatedPairs),
	)
	e.iteration++
	return rec, nil
}

// Record returns the log accumulated so far.
func (e *Engine) Record() *GenerationRecord {
	return e.builder.Record()
}

// Generate runs n shuffle steps from an empty grid and returns the full log.
// An empty seedMaterial draws a random seed; n must be positive.
func Generate(seedMaterial string, n int, opts ...Option) (*GenerationRecord, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: iteration count must be positive, got %d", ErrInvalidArgument, n)
	}
	e := NewEngine(seedMaterial, opts...)
	for i := 0; i < n; i++ {
		if _, err := e.Step(); err != nil {
			return nil, err
		}
	}
	e.logger.Debug("generation complete",
		"size", e.Iteration(),
		"dominoes", e.grid.DominoCount(),
		"next_id", e.NextID(),
	)
	return e.Record(), nil
}
