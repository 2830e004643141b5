package codec

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/vovakirdan/aztec-shuffle/internal/aztec"
	"github.com/vovakirdan/aztec-shuffle/internal/registry"
)

func init() {
	registry.Register("json", func() registry.Codec { return JSON{Indent: "  "} })
}

// JSON is the renderer-facing wire format.
type JSON struct {
	Indent string // empty writes compact output
}

func (JSON) ID() string           { return "json" }
func (JSON) Title() string        { return "JSON event log" }
func (JSON) Extensions() []string { return []string{".json"} }

// Encode writes the record as JSON.
func (c JSON) Encode(w io.Writer, rec *aztec.GenerationRecord) error {
	enc := json.NewEncoder(w)
	if c.Indent != "" {
		enc.SetIndent("", c.Indent)
	}
	return enc.Encode(rec)
}

// Decode reads a JSON record.
func (JSON) Decode(r io.Reader) (*aztec.GenerationRecord, error) {
	var rec aztec.GenerationRecord
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&rec); err != nil {
		return nil, fmt.Errorf("json: %w", err)
	}
	if err := checkSize(&rec); err != nil {
		return nil, fmt.Errorf("json: %w", err)
	}
	rec.Normalize()
	return &rec, nil
}
