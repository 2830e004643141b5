// Package codec provides the record formats shipped with aztec. Each format
// registers itself with the registry in init(); importing this package for
// side effects makes them available to the CLI.
package codec

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vovakirdan/aztec-shuffle/internal/aztec"
	"github.com/vovakirdan/aztec-shuffle/internal/registry"
)

// Load reads a record from a file, choosing the format by extension.
func Load(path string) (*aztec.GenerationRecord, error) {
	c, err := registry.ForExtension(strings.ToLower(filepath.Ext(path)))
	if err != nil {
		return nil, fmt.Errorf("codec: %s: %w", path, err)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("codec: cannot open %s: %w", path, err)
	}
	defer f.Close()

	rec, err := c.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("codec: cannot decode %s: %w", path, err)
	}
	return rec, nil
}

// Save writes a record to a file in the given format. An empty format is
// inferred from the file extension.
func Save(path, format string, rec *aztec.GenerationRecord) error {
	var (
		c   registry.Codec
		err error
	)
	if format == "" {
		c, err = registry.ForExtension(strings.ToLower(filepath.Ext(path)))
	} else {
		c, err = registry.Create(format)
	}
	if err != nil {
		return fmt.Errorf("codec: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("codec: cannot create directory %s: %w", dir, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("codec: cannot create %s: %w", path, err)
	}
	if err := c.Encode(f, rec); err != nil {
		f.Close()
		return fmt.Errorf("codec: cannot encode %s: %w", path, err)
	}
	return f.Close()
}

// checkSize rejects records whose declared size disagrees with their log.
func checkSize(rec *aztec.GenerationRecord) error {
	if rec.Size != len(rec.Iterations) {
		return fmt.Errorf("record declares size %d but holds %d iterations", rec.Size, len(rec.Iterations))
	}
	for i, it := range rec.Iterations {
		if it.Index != i {
			return fmt.Errorf("iteration at position %d has index %d", i, it.Index)
		}
	}
	return nil
}
