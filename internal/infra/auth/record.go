package auth

import (
	"fmt"
	"strconv"
	"strings"

	"authapi/internal/errors"
)

// Decode failure modes. A decode failure on a stored record indicates data
// corruption, not bad user input; callers treat these as internal errors.
var (
	ErrMissingAlgorithm  = errors.New("password record: missing algorithm")
	ErrUnknownAlgorithm  = errors.New("password record: unknown algorithm")
	ErrMissingRounds     = errors.New("password record: missing rounds")
	ErrInvalidRounds     = errors.New("password record: invalid rounds")
	ErrMissingSaltLength = errors.New("password record: missing salt length")
	ErrInvalidSaltLength = errors.New("password record: invalid salt length")
	ErrSaltTooShort      = errors.New("password record: salt shorter than declared length")
	ErrSaltHasDelimiter  = errors.New("password record: salt contains the delimiter")
)

// PasswordRecord is the decoded form of a stored password hash.
type PasswordRecord struct {
	Algorithm  HashAlgorithm // The digest function used for every round.
	Rounds     uint32        // How many times the digest was applied.
	SaltLength int           // Declared salt length; drives decoding.
	Salt       string        // The per-password random salt.
	Digest     string        // The final round output, lowercase hex.
}

// Encode formats the record as algo$rounds$saltLen$salt$digest. The salt must
// not contain the delimiter and must match its declared length, otherwise the
// record would not decode back to the same fields.
func (r PasswordRecord) Encode() (string, error) {
	if strings.ContainsRune(r.Salt, '$') {
		return "", errors.WithStack(ErrSaltHasDelimiter)
	}
	if len(r.Salt) != r.SaltLength {
		return "", errors.Errorf("password record: salt length %d does not match declared %d", len(r.Salt), r.SaltLength)
	}

	return fmt.Sprintf("%s$%d$%d$%s$%s", r.Algorithm, r.Rounds, r.SaltLength, r.Salt, r.Digest), nil
}

// DecodePasswordRecord parses an encoded record. The first three fields are
// delimited by '$'; the salt is then taken by its declared length rather than
// by delimiter scan, and the digest is the verbatim remainder after skipping
// one delimiter character. The digest may itself contain '$'.
func DecodePasswordRecord(text string) (PasswordRecord, error) {
	name, rest, found := strings.Cut(text, "$")
	if !found {
		return PasswordRecord{}, errors.WithStack(ErrMissingAlgorithm)
	}
	algo, err := ParseHashAlgorithm(name)
	if err != nil {
		return PasswordRecord{}, errors.Wrap(ErrUnknownAlgorithm, name)
	}

	roundsText, rest, found := strings.Cut(rest, "$")
	if !found {
		return PasswordRecord{}, errors.WithStack(ErrMissingRounds)
	}
	rounds, err := strconv.ParseUint(roundsText, 10, 32)
	if err != nil {
		return PasswordRecord{}, errors.Wrap(ErrInvalidRounds, roundsText)
	}

	lengthText, rest, found := strings.Cut(rest, "$")
	if !found {
		return PasswordRecord{}, errors.WithStack(ErrMissingSaltLength)
	}
	saltLength, err := strconv.Atoi(lengthText)
	if err != nil || saltLength < 0 {
		return PasswordRecord{}, errors.Wrap(ErrInvalidSaltLength, lengthText)
	}

	if len(rest) < saltLength {
		return PasswordRecord{}, errors.WithStack(ErrSaltTooShort)
	}
	salt := rest[:saltLength]

	// Everything past the salt and its trailing delimiter is the digest,
	// taken verbatim even if it contains further '$' characters. A record
	// ending at the salt has an empty digest.
	digest := ""
	if len(rest) > saltLength {
		digest = rest[saltLength+1:]
	}

	return PasswordRecord{
		Algorithm:  algo,
		Rounds:     uint32(rounds),
		SaltLength: saltLength,
		Salt:       salt,
		Digest:     digest,
	}, nil
}
