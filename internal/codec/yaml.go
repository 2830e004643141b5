package codec

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/aztec-shuffle/internal/aztec"
	"github.com/vovakirdan/aztec-shuffle/internal/registry"
)

func init() {
	registry.Register("yaml", func() registry.Codec { return YAML{} })
}

// YAML is a human-editable form of the event log.
type YAML struct{}

func (YAML) ID() string           { return "yaml" }
func (YAML) Title() string        { return "YAML event log" }
func (YAML) Extensions() []string { return []string{".yaml", ".yml"} }

// Encode writes the record as YAML.
func (YAML) Encode(w io.Writer, rec *aztec.GenerationRecord) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(rec); err != nil {
		return fmt.Errorf("yaml encode: %w", err)
	}
	return enc.Close()
}

// Decode reads a YAML record.
func (YAML) Decode(r io.Reader) (*aztec.GenerationRecord, error) {
	var rec aztec.GenerationRecord
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&rec); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if err := checkSize(&rec); err != nil {
		return nil, fmt.Errorf("yaml: %w", err)
	}
	rec.Normalize()
	return &rec, nil
}
