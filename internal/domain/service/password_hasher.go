// Package service defines the domain service interfaces. Implementations
// live under internal/infra/auth.
package service

// SaltGenerator produces random salt strings for new password records.
type SaltGenerator interface {
	// Generate returns a salt of exactly length characters drawn from the
	// printable-ASCII salt alphabet. A non-positive length yields "".
	Generate(length int) string
}

// PasswordHasher hashes plaintext passwords into self-describing encoded
// records and verifies candidates against them.
type PasswordHasher interface {
	// HashNew hashes a plaintext password with a fresh salt and the
	// configured algorithm, rounds and pepper, returning the encoded
	// record algo$rounds$saltLen$salt$digest.
	HashNew(raw string) (string, error)

	// Verify re-derives the digest of raw against the parameters embedded
	// in the encoded record and reports whether it matches. A decode
	// failure is an error, not a mismatch.
	Verify(raw, encoded string) (bool, error)
}
