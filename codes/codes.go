// Package codes generates short random reference codes and unique IDs.
package codes

import (
	"math/rand/v2"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.trai.ch/zerr"
)

const (
	// DefaultLength is the number of random characters appended to a prefix.
	DefaultLength = 7

	// DefaultAlphabet holds upper-case letters and digits.
	DefaultAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// Option configures a Generator.
type Option func(*Generator)

// WithAlphabet sets the characters codes are drawn from.
// An empty alphabet keeps DefaultAlphabet.
func WithAlphabet(alphabet string) Option {
	return func(g *Generator) {
		if alphabet != "" {
			g.alphabet = []rune(alphabet)
		}
	}
}

// WithSource makes the generator draw from src, e.g. a seeded source in tests.
func WithSource(src rand.Source) Option {
	return func(g *Generator) {
		g.rng = rand.New(src) //nolint:gosec // codes are identifiers, not secrets
	}
}

// Generator produces random codes. It is safe for concurrent use.
type Generator struct {
	alphabet []rune

	mu  sync.Mutex
	rng *rand.Rand
}

// NewGenerator returns a Generator using DefaultAlphabet and the global
// random source unless overridden.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{alphabet: []rune(DefaultAlphabet)}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate returns prefix followed by length random alphabet characters.
// A length of zero or less selects DefaultLength.
func (g *Generator) Generate(prefix string, length int) string {
	if length <= 0 {
		length = DefaultLength
	}

	var b strings.Builder
	b.Grow(len(prefix) + length)
	b.WriteString(prefix)
	for range length {
		b.WriteRune(g.alphabet[g.intN(len(g.alphabet))])
	}
	return b.String()
}

func (g *Generator) intN(n int) int {
	if g.rng == nil {
		return rand.IntN(n) //nolint:gosec // codes are identifiers, not secrets
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rng.IntN(n)
}

var defaultGenerator = NewGenerator()

// Generate returns prefix followed by length random characters from
// DefaultAlphabet.
func Generate(prefix string, length int) string {
	return defaultGenerator.Generate(prefix, length)
}

// NewID returns a time-ordered UUID (version 7) string.
func NewID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", zerr.Wrap(err, "failed to generate id")
	}
	return id.String(), nil
}
