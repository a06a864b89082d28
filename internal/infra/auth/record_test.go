package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordRecord_EncodeDecodeRoundTrip(t *testing.T) {
	record := PasswordRecord{
		Algorithm:  SHA256,
		Rounds:     10,
		SaltLength: 13,
		Salt:       "this-is-salt!",
		Digest:     "this-is-hashed-password",
	}

	encoded, err := record.Encode()
	require.NoError(t, err)
	assert.Equal(t, "SHA-256$10$13$this-is-salt!$this-is-hashed-password", encoded)

	decoded, err := DecodePasswordRecord(encoded)
	require.NoError(t, err)
	assert.Equal(t, record, decoded)
}

func TestPasswordRecord_Encode_RejectsBadSalt(t *testing.T) {
	_, err := PasswordRecord{Algorithm: SHA256, SaltLength: 4, Salt: "ab$d"}.Encode()
	assert.ErrorIs(t, err, ErrSaltHasDelimiter)

	_, err = PasswordRecord{Algorithm: SHA256, SaltLength: 8, Salt: "abcd"}.Encode()
	assert.Error(t, err)
}

func TestDecodePasswordRecord_Failures(t *testing.T) {
	tests := []struct {
		name string
		text string
		want error
	}{
		{name: "empty input", text: "", want: ErrMissingAlgorithm},
		{name: "no delimiter", text: "SHA-256", want: ErrMissingAlgorithm},
		{name: "unknown algorithm", text: "BOGUS$1$4$abcd$hash", want: ErrUnknownAlgorithm},
		{name: "missing rounds", text: "SHA-256$", want: ErrMissingRounds},
		{name: "non-numeric rounds", text: "SHA-256$notanumber$4$abcd$hash", want: ErrInvalidRounds},
		{name: "negative rounds", text: "SHA-256$-1$4$abcd$hash", want: ErrInvalidRounds},
		{name: "rounds overflow u32", text: "SHA-256$4294967296$4$abcd$hash", want: ErrInvalidRounds},
		{name: "missing salt length", text: "SHA-256$1$4", want: ErrMissingSaltLength},
		{name: "non-numeric salt length", text: "SHA-256$1$four$abcd$hash", want: ErrInvalidSaltLength},
		{name: "negative salt length", text: "SHA-256$1$-4$abcd$hash", want: ErrInvalidSaltLength},
		{name: "salt shorter than declared", text: "SHA-256$1$100$short$hash", want: ErrSaltTooShort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodePasswordRecord(tt.text)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestDecodePasswordRecord_DigestIsTakenVerbatim(t *testing.T) {
	// The digest is the trailing field; embedded '$' characters belong to it.
	decoded, err := DecodePasswordRecord("SHA-512$3$4$abcd$di$ge$st")
	require.NoError(t, err)
	assert.Equal(t, "abcd", decoded.Salt)
	assert.Equal(t, "di$ge$st", decoded.Digest)
}

func TestDecodePasswordRecord_SaltExtractedByLengthNotDelimiter(t *testing.T) {
	// The declared length wins even when the salt contains no delimiter
	// before the digest starts.
	decoded, err := DecodePasswordRecord("SHA-256$1$2$abcdef")
	require.NoError(t, err)
	assert.Equal(t, "ab", decoded.Salt)
	assert.Equal(t, "def", decoded.Digest)
}

func TestDecodePasswordRecord_EmptyDigest(t *testing.T) {
	decoded, err := DecodePasswordRecord("SHA-256$1$4$abcd")
	require.NoError(t, err)
	assert.Equal(t, "abcd", decoded.Salt)
	assert.Empty(t, decoded.Digest)

	decoded, err = DecodePasswordRecord("SHA-256$1$4$abcd$")
	require.NoError(t, err)
	assert.Empty(t, decoded.Digest)
}

func TestDecodePasswordRecord_ZeroLengthSalt(t *testing.T) {
	decoded, err := DecodePasswordRecord("SHA-256$1$0$$digest")
	require.NoError(t, err)
	assert.Empty(t, decoded.Salt)
	assert.Equal(t, "digest", decoded.Digest)
}
