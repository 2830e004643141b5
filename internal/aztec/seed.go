package aztec

import (
	"math/rand/v2"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
)

const (
	// SeedLength is the length of an auto-generated seed string.
	SeedLength = 6

	seedAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

	// seedSpace is 36^6, the number of distinct generated seeds.
	seedSpace = 2176782336

	// streamSalt decorrelates the second PCG word from the first.
	streamSalt = 0x9e3779b97f4a7c15
)

// Stream is the single source of randomness of a run. It wraps a PCG
// generator seeded from the seed string, so identical seeds produce identical
// coin flips.
type Stream struct {
	r     *rand.Rand
	flips int
}

// NewStream creates a deterministic stream for the given seed string.
func NewStream(seed string) *Stream {
	h := xxhash.Sum64String(seed)
	return &Stream{r: rand.New(rand.NewPCG(h, h^streamSalt))}
}

// Flip returns one fair coin flip. Heads (true) creates a vertical pair.
func (s *Stream) Flip() bool {
	s.flips++
	return s.r.Float64() >= 0.5
}

// Flips returns how many coin flips have been drawn so far.
func (s *Stream) Flips() int {
	return s.flips
}

// Initialize resolves the seed of a run and opens its stream. An empty
// seedMaterial means none was supplied; a shareable seed is then drawn from
// time-derived entropy. Any non-empty string is accepted verbatim.
func Initialize(seedMaterial string, now func() time.Time) (string, *Stream) {
	seed := seedMaterial
	if seed == "" {
		if now == nil {
			now = time.Now
		}
		seed = RandomSeed(now())
	}
	return seed, NewStream(seed)
}

// RandomSeed draws a 6-character base-36 seed from the given instant.
func RandomSeed(t time.Time) string {
	ns := uint64(t.UnixNano())
	r := rand.New(rand.NewPCG(ns, ns^streamSalt))
	return FormatSeed(r.Uint64N(seedSpace))
}

// FormatSeed renders v in base 36 over 0-9A-Z, left-padded with '0' to
// SeedLength characters. Values at or above 36^6 are reduced modulo 36^6.
func FormatSeed(v uint64) string {
	v %= seedSpace
	buf := make([]byte, SeedLength)
	for i := SeedLength - 1; i >= 0; i-- {
		buf[i] = seedAlphabet[v%36]
		v /= 36
	}
	return string(buf)
}

// IsGeneratedSeed reports whether s has the shape of an auto-generated seed.
func IsGeneratedSeed(s string) bool {
	if len(s) != SeedLength {
		return false
	}
	for _, r := range s {
		if !strings.ContainsRune(seedAlphabet, r) {
			return false
		}
	}
	return true
}
