package codec_test

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/aztec-shuffle/internal/aztec"
	"github.com/vovakirdan/aztec-shuffle/internal/codec"
	"github.com/vovakirdan/aztec-shuffle/internal/registry"
)

func generate(t *testing.T, n int) *aztec.GenerationRecord {
	t.Helper()
	rec, err := aztec.Generate("CODEC1", n)
	require.NoError(t, err)
	return rec
}

func TestRegisteredFormats(t *testing.T) {
	ids := []string{}
	for _, info := range registry.List() {
		ids = append(ids, info.ID)
	}
	assert.Equal(t, []string{"json", "text", "yaml"}, ids)
}

func TestRoundTripThroughFiles(t *testing.T) {
	rec := generate(t, 8)
	dir := t.TempDir()

	for _, name := range []string{"run.json", "run.yaml", "nested/run.yml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			require.NoError(t, codec.Save(path, "", rec))

			back, err := codec.Load(path)
			require.NoError(t, err)
			assert.Equal(t, rec, back)

			// A decoded log still replays to a sound tiling.
			g, err := aztec.Replay(back)
			require.NoError(t, err)
			assert.NoError(t, aztec.Validate(g))
		})
	}
}

func TestJSONFirstIterationShape(t *testing.T) {
	rec := generate(t, 1)

	var buf bytes.Buffer
	require.NoError(t, codec.JSON{}.Encode(&buf, rec))

	out := buf.String()
	assert.Contains(t, out, `"seed":"CODEC1"`)
	assert.Contains(t, out, `"destroyedPairs":[]`)
	assert.Contains(t, out, `"movedDominoes":[]`)
	assert.Contains(t, out, `[-1,-1]`)
}

func TestJSONRejectsSizeMismatch(t *testing.T) {
	_, err := codec.JSON{}.Decode(strings.NewReader(`{"seed":"X","size":2,"iterations":[]}`))
	assert.Error(t, err)
}

func TestJSONRejectsUnknownFields(t *testing.T) {
	_, err := codec.JSON{}.Decode(strings.NewReader(`{"seed":"X","size":0,"iterations":[],"extra":1}`))
	assert.Error(t, err)
}

func TestTextSummary(t *testing.T) {
	rec := generate(t, 3)

	var buf bytes.Buffer
	require.NoError(t, codec.Text{}.Encode(&buf, rec))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "seed CODEC1, 3 iterations", lines[0])
	assert.Contains(t, lines[1], "ids 0-1")
	assert.Contains(t, lines[4], "alive 12")

	_, err := codec.Text{}.Decode(strings.NewReader(buf.String()))
	assert.True(t, errors.Is(err, registry.ErrNotDecodable))
}

func TestLoadUnknownExtension(t *testing.T) {
	_, err := codec.Load(filepath.Join(t.TempDir(), "run.bin"))
	assert.Error(t, err)
}
