package auth

import (
	"math/rand/v2"
	"strings"

	"authapi/internal/domain/service"
)

// saltAlphabet holds the printable-ASCII characters a salt may contain. The
// record delimiter '$' and whitespace are excluded so encoded records survive
// textual config formats untouched.
const saltAlphabet = "!\"#%&'()*-./0123456789:;<=>?@" +
	"ABCDEFGHIJKLMNOPQRSTUVWXYZ[\\]^_`" +
	"abcdefghijklmnopqrstuvwxyz{|}~"

// saltGenerator draws salt characters from a fast non-cryptographic PRNG.
type saltGenerator struct{}

// NewSaltGenerator is the constructor for saltGenerator.
func NewSaltGenerator() service.SaltGenerator {
	return &saltGenerator{}
}

// Generate returns a salt of exactly length characters, each picked uniformly
// from saltAlphabet. A non-positive length yields the empty string.
func (g *saltGenerator) Generate(length int) string {
	if length <= 0 {
		return ""
	}

	var builder strings.Builder
	builder.Grow(length)
	for range length {
		builder.WriteByte(saltAlphabet[rand.IntN(len(saltAlphabet))])
	}

	return builder.String()
}
