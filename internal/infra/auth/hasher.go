package auth

import (
	"crypto/subtle"

	"authapi/config"
	"authapi/internal/domain/service"
	"authapi/internal/errors"
)

// HashPassword derives the digest of a password. It concatenates raw, salt
// and pepper without separators, then applies the algorithm's digest function
// rounds times, feeding each round the lowercase-hex output of the previous
// one. Zero rounds returns the bare concatenation.
func HashPassword(raw, salt, pepper string, algo HashAlgorithm, rounds uint32) string {
	acc := raw + salt + pepper
	for range rounds {
		acc = algo.digest(acc)
	}

	return acc
}

// roundHasher is a concrete implementation of the PasswordHasher interface
// using the multi-round peppered scheme above.
type roundHasher struct {
	algorithm  HashAlgorithm         // Digest function for new records.
	rounds     uint32                // Round count for new records.
	saltLength int                   // Salt length for new records.
	pepper     string                // Server-side secret; never stored in records.
	salts      service.SaltGenerator // Source of fresh salts.
}

// NewRoundHasher is the constructor for roundHasher. It rejects a
// configuration naming an unknown algorithm.
func NewRoundHasher(cfg *config.Config, salts service.SaltGenerator) (service.PasswordHasher, error) {
	algo, err := ParseHashAlgorithm(cfg.Auth.HashAlgorithm)
	if err != nil {
		return nil, err
	}

	return &roundHasher{
		algorithm:  algo,
		rounds:     cfg.Auth.HashRounds,
		saltLength: cfg.Auth.SaltLength,
		pepper:     cfg.Auth.Pepper,
		salts:      salts,
	}, nil
}

// HashNew hashes a plaintext password with a fresh salt and returns the
// encoded record.
func (h *roundHasher) HashNew(raw string) (string, error) {
	salt := h.salts.Generate(h.saltLength)
	digest := HashPassword(raw, salt, h.pepper, h.algorithm, h.rounds)

	record := PasswordRecord{
		Algorithm:  h.algorithm,
		Rounds:     h.rounds,
		SaltLength: h.saltLength,
		Salt:       salt,
		Digest:     digest,
	}

	encoded, err := record.Encode()
	if err != nil {
		return "", errors.Wrap(err, "encode new password record")
	}

	return encoded, nil
}

// Verify recomputes the digest of raw using the parameters stored in the
// encoded record and the currently configured pepper. Records hashed under a
// previous pepper never verify; that is the cost of not storing the pepper.
func (h *roundHasher) Verify(raw, encoded string) (bool, error) {
	record, err := DecodePasswordRecord(encoded)
	if err != nil {
		return false, err
	}

	recomputed := HashPassword(raw, record.Salt, h.pepper, record.Algorithm, record.Rounds)

	return subtle.ConstantTimeCompare([]byte(record.Digest), []byte(recomputed)) == 1, nil
}
