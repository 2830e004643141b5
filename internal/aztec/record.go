package aztec

import (
	"encoding/json"
	"fmt"
)

// GenerationRecord is the complete, replayable output of one run.
type GenerationRecord struct {
	Seed       string            `json:"seed" yaml:"seed"`
	Size       int               `json:"size" yaml:"size"`
	Iterations []IterationRecord `json:"iterations" yaml:"iterations"`
}

// IterationRecord is the structural delta of a single shuffle step.
type IterationRecord struct {
	Index          int             `json:"index" yaml:"index"`
	DestroyedPairs []DestroyedPair `json:"destroyedPairs" yaml:"destroyed_pairs"`
	MovedDominoes  []MovedDomino   `json:"movedDominoes" yaml:"moved_dominoes"`
	CreatedPairs   []CreatedPair   `json:"createdPairs" yaml:"created_pairs"`
}

// DestroyedPair names the two dominoes removed by one collision.
type DestroyedPair struct {
	A int
	B int
}

// MovedDomino records one domino sliding one cell.
type MovedDomino struct {
	ID  int `json:"id" yaml:"id"`
	Dir Vec `json:"dir" yaml:"dir"`
}

// CreatedDomino describes a freshly placed domino. Cells are relative to the
// diamond center at the iteration that created it and are encoded as
// [x, y] = [column, row], with y growing downward. Dir uses the same axes,
// so up is [0, -1] and right is [1, 0].
type CreatedDomino struct {
	ID    int      `json:"id" yaml:"id"`
	Cells [2]Coord `json:"cells" yaml:"cells"`
	Dir   Vec      `json:"dir" yaml:"dir"`
}

// CreatedPair holds the two sibling dominoes spawned from one 2x2 block.
type CreatedPair [2]CreatedDomino

// Builder accumulates iteration records into a GenerationRecord.
// It is append-only; Record hands out an independent copy.
type Builder struct {
	seed       string
	iterations []IterationRecord
}

// NewBuilder starts a log for the given seed.
func NewBuilder(seed string) *Builder {
	return &Builder{seed: seed}
}

// Append adds the next iteration. Its index must follow the previous one.
func (b *Builder) Append(it IterationRecord) error {
	if it.Index != len(b.iterations) {
		return violation("log", "iteration %d appended at position %d", it.Index, len(b.iterations))
	}
	b.iterations = append(b.iterations, it.clone())
	return nil
}

// Len returns the number of iterations recorded so far.
func (b *Builder) Len() int {
	return len(b.iterations)
}

// Record returns the finished record.
func (b *Builder) Record() *GenerationRecord {
	its := make([]IterationRecord, len(b.iterations))
	for i, it := range b.iterations {
		its[i] = it.clone()
	}
	return &GenerationRecord{
		Seed:       b.seed,
		Size:       len(its),
		Iterations: its,
	}
}

// DominoesCreated returns the total number of dominoes the record creates.
func (r *GenerationRecord) DominoesCreated() int {
	total := 0
	for _, it := range r.Iterations {
		total += 2 * len(it.CreatedPairs)
	}
	return total
}

// DominoesDestroyed returns the total number of dominoes the record destroys.
func (r *GenerationRecord) DominoesDestroyed() int {
	total := 0
	for _, it := range r.Iterations {
		total += 2 * len(it.DestroyedPairs)
	}
	return total
}

// Normalize replaces nil event lists with empty ones so encoders emit [].
func (r *GenerationRecord) Normalize() {
	for i := range r.Iterations {
		r.Iterations[i] = r.Iterations[i].clone()
	}
}

func newIterationRecord(index int) IterationRecord {
	return IterationRecord{
		Index:          index,
		DestroyedPairs: []DestroyedPair{},
		MovedDominoes:  []MovedDomino{},
		CreatedPairs:   []CreatedPair{},
	}
}

func (it IterationRecord) clone() IterationRecord {
	out := newIterationRecord(it.Index)
	out.DestroyedPairs = append(out.DestroyedPairs, it.DestroyedPairs...)
	out.MovedDominoes = append(out.MovedDominoes, it.MovedDominoes...)
	out.CreatedPairs = append(out.CreatedPairs, it.CreatedPairs...)
	return out
}

// Pairs, coordinates and vectors travel as two-element arrays.

// MarshalJSON encodes the pair as [a, b].
func (p DestroyedPair) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{p.A, p.B})
}

// UnmarshalJSON decodes [a, b].
func (p *DestroyedPair) UnmarshalJSON(data []byte) error {
	var v [2]int
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("destroyed pair: %w", err)
	}
	p.A, p.B = v[0], v[1]
	return nil
}

// MarshalYAML encodes the pair as a flow sequence.
func (p DestroyedPair) MarshalYAML() (any, error) {
	return []int{p.A, p.B}, nil
}

// UnmarshalYAML decodes a two-element sequence.
func (p *DestroyedPair) UnmarshalYAML(unmarshal func(any) error) error {
	a, b, err := unmarshalPairYAML(unmarshal, "destroyed pair")
	if err != nil {
		return err
	}
	p.A, p.B = a, b
	return nil
}

// MarshalJSON encodes the coordinate as [x, y].
func (c Coord) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{c.X, c.Y})
}

// UnmarshalJSON decodes [x, y].
func (c *Coord) UnmarshalJSON(data []byte) error {
	var v [2]int
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("coord: %w", err)
	}
	c.X, c.Y = v[0], v[1]
	return nil
}

// MarshalYAML encodes the coordinate as a sequence.
func (c Coord) MarshalYAML() (any, error) {
	return []int{c.X, c.Y}, nil
}

// UnmarshalYAML decodes a two-element sequence.
func (c *Coord) UnmarshalYAML(unmarshal func(any) error) error {
	x, y, err := unmarshalPairYAML(unmarshal, "coord")
	if err != nil {
		return err
	}
	c.X, c.Y = x, y
	return nil
}

// MarshalJSON encodes the vector as [dx, dy].
func (v Vec) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{v.DX, v.DY})
}

// UnmarshalJSON decodes [dx, dy].
func (v *Vec) UnmarshalJSON(data []byte) error {
	var raw [2]int
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("vec: %w", err)
	}
	v.DX, v.DY = raw[0], raw[1]
	return nil
}

// MarshalYAML encodes the vector as a sequence.
func (v Vec) MarshalYAML() (any, error) {
	return []int{v.DX, v.DY}, nil
}

// UnmarshalYAML decodes a two-element sequence.
func (v *Vec) UnmarshalYAML(unmarshal func(any) error) error {
	dx, dy, err := unmarshalPairYAML(unmarshal, "vec")
	if err != nil {
		return err
	}
	v.DX, v.DY = dx, dy
	return nil
}

func unmarshalPairYAML(unmarshal func(any) error, what string) (int, int, error) {
	var raw []int
	if err := unmarshal(&raw); err != nil {
		return 0, 0, fmt.Errorf("%s: %w", what, err)
	}
	if len(raw) != 2 {
		return 0, 0, fmt.Errorf("%s: expected 2 elements, got %d", what, len(raw))
	}
	return raw[0], raw[1], nil
}
