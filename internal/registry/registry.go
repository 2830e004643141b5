// Package registry provides a global registry for record codec factories.
// Codecs register themselves in init() functions, allowing the CLI to
// discover output formats without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/vovakirdan/aztec-shuffle/internal/aztec"
)

// Codec converts generation records to and from a byte format.
// Codecs contain no engine logic; they only serialize what the engine logged.
type Codec interface {
	// ID returns a unique identifier for this format (e.g., "json", "yaml").
	// Used for the --format flag and file extension lookup.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Extensions lists file extensions handled by this codec, with the dot.
	Extensions() []string

	// Encode writes the record to w.
	Encode(w io.Writer, rec *aztec.GenerationRecord) error

	// Decode reads a record from r. Codecs that cannot be read back
	// return ErrNotDecodable.
	Decode(r io.Reader) (*aztec.GenerationRecord, error)
}

// ErrNotDecodable is returned by write-only codecs.
var ErrNotDecodable = errors.New("registry: format cannot be decoded")

// CodecInfo contains metadata about a registered codec.
type CodecInfo struct {
	ID         string
	Title      string
	Extensions []string
}

// Factory is a function that creates a new instance of a codec.
type Factory func() Codec

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]CodecInfo)
	mu        sync.RWMutex
)

// Register adds a codec factory to the registry.
// Typically called from a codec's init() function.
// Panics if a codec with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: codec %q already registered", id))
	}

	factories[id] = f

	c := f()
	infos[id] = CodecInfo{
		ID:         id,
		Title:      c.Title(),
		Extensions: c.Extensions(),
	}
}

// List returns information about all registered codecs, sorted by ID.
func List() []CodecInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]CodecInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a codec by its ID.
// Returns an error if the ID is not registered.
func Create(id string) (Codec, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown format %q", id)
	}

	return f(), nil
}

// ForExtension finds the codec that handles a file extension such as ".json".
func ForExtension(ext string) (Codec, error) {
	mu.RLock()
	defer mu.RUnlock()

	ids := make([]string, 0, len(infos))
	for id := range infos {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		for _, e := range infos[id].Extensions {
			if e == ext {
				return factories[id](), nil
			}
		}
	}
	return nil, fmt.Errorf("registry: no format for extension %q", ext)
}

// Exists checks if a codec with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
