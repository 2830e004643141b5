package codec

import (
	"fmt"
	"io"
	"strings"

	"github.com/vovakirdan/aztec-shuffle/internal/aztec"
	"github.com/vovakirdan/aztec-shuffle/internal/registry"
)

func init() {
	registry.Register("text", func() registry.Codec { return Text{} })
}

// Text is a write-only, line-per-iteration summary for terminals.
type Text struct{}

func (Text) ID() string           { return "text" }
func (Text) Title() string        { return "Plain-text summary" }
func (Text) Extensions() []string { return []string{".txt"} }

// Encode writes one summary line per iteration plus totals.
func (Text) Encode(w io.Writer, rec *aztec.GenerationRecord) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "seed %s, %d iterations\n", rec.Seed, rec.Size)

	for _, it := range rec.Iterations {
		fmt.Fprintf(&sb, "  #%-3d destroyed %-4d moved %-5d created %-4d",
			it.Index, 2*len(it.DestroyedPairs), len(it.MovedDominoes), 2*len(it.CreatedPairs))
		if n := len(it.CreatedPairs); n > 0 {
			fmt.Fprintf(&sb, " ids %d-%d", it.CreatedPairs[0][0].ID, it.CreatedPairs[n-1][1].ID)
		}
		sb.WriteByte('\n')
	}

	created, destroyed := rec.DominoesCreated(), rec.DominoesDestroyed()
	fmt.Fprintf(&sb, "created %d, destroyed %d, alive %d\n", created, destroyed, created-destroyed)

	_, err := io.WriteString(w, sb.String())
	return err
}

// Decode is not supported for summaries.
func (Text) Decode(io.Reader) (*aztec.GenerationRecord, error) {
	return nil, registry.ErrNotDecodable
}
