// Package auth provides concrete implementations for authentication-related
// domain services: the password hashing scheme, the credential authenticator
// and the JWT token service.
package auth

import (
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"

	"authapi/internal/errors"
)

// HashAlgorithm selects the digest function of a password record. The set is
// closed; unknown names fail to parse.
type HashAlgorithm int

const (
	SHA224 HashAlgorithm = iota
	SHA256
	SHA384
	SHA512
	SHA512x224
	SHA512x256
)

// algorithmNames maps each variant to the canonical name used in
// configuration and in the serialized record.
var algorithmNames = map[HashAlgorithm]string{
	SHA224:     "SHA-224",
	SHA256:     "SHA-256",
	SHA384:     "SHA-384",
	SHA512:     "SHA-512",
	SHA512x224: "SHA-512/224",
	SHA512x256: "SHA-512/256",
}

var algorithmsByName = func() map[string]HashAlgorithm {
	byName := make(map[string]HashAlgorithm, len(algorithmNames))
	for algo, name := range algorithmNames {
		byName[name] = algo
	}

	return byName
}()

// ParseHashAlgorithm resolves a canonical algorithm name. Unknown names are
// rejected rather than falling back to a default.
func ParseHashAlgorithm(name string) (HashAlgorithm, error) {
	algo, ok := algorithmsByName[name]
	if !ok {
		return 0, errors.Errorf("unknown hash algorithm: %q", name)
	}

	return algo, nil
}

// String returns the canonical algorithm name.
func (a HashAlgorithm) String() string {
	return algorithmNames[a]
}

// digest hashes target once and renders the result as lowercase hexadecimal.
func (a HashAlgorithm) digest(target string) string {
	data := []byte(target)
	switch a {
	case SHA224:
		sum := sha256.Sum224(data)
		return hex.EncodeToString(sum[:])
	case SHA256:
		sum := sha256.Sum256(data)
		return hex.EncodeToString(sum[:])
	case SHA384:
		sum := sha512.Sum384(data)
		return hex.EncodeToString(sum[:])
	case SHA512:
		sum := sha512.Sum512(data)
		return hex.EncodeToString(sum[:])
	case SHA512x224:
		sum := sha512.Sum512_224(data)
		return hex.EncodeToString(sum[:])
	case SHA512x256:
		sum := sha512.Sum512_256(data)
		return hex.EncodeToString(sum[:])
	}

	// Unreachable: the constructor and the codec only hand out known variants.
	return ""
}
