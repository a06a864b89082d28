package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHashAlgorithm_RoundTrip(t *testing.T) {
	names := []string{"SHA-224", "SHA-256", "SHA-384", "SHA-512", "SHA-512/224", "SHA-512/256"}

	for _, name := range names {
		algo, err := ParseHashAlgorithm(name)
		require.NoError(t, err)
		assert.Equal(t, name, algo.String())
	}
}

func TestParseHashAlgorithm_RejectsUnknownNames(t *testing.T) {
	for _, name := range []string{"", "sha-256", "SHA256", "SHA-1", "MD5"} {
		_, err := ParseHashAlgorithm(name)
		assert.Error(t, err, "name %q should not parse", name)
	}
}

// Known-answer vectors for the message "abc" (FIPS 180-4 examples).
func TestHashAlgorithm_Digest(t *testing.T) {
	tests := []struct {
		algo HashAlgorithm
		want string
	}{
		{algo: SHA224, want: "23097d223405d8228642a477bda255b32aadbce4bda0b3f7e36c9da7"},
		{algo: SHA256, want: "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
		{algo: SHA384, want: "cb00753f45a35e8bb5a03d699ac65007272c32ab0eded1631a8b605a43ff5bed8086072ba1e7cc2358baeca134c825a7"},
		{algo: SHA512, want: "ddaf35a193617abacc417349ae20413112e6fa4e89a97ea20a9eeee64b55d39a2192992a274fc1a836ba3c23a3feebbd454d4423643ce80e2a9ac94fa54ca49f"},
		{algo: SHA512x224, want: "4634270f707b6a54daae7533601842c3b4f73c3e8be9f2f0d7cf3a6e"},
		{algo: SHA512x256, want: "53048e2681941ef99b2e29b76b4c7dabe4c2d0c634fc6d46e0e2f13107e7af23"},
	}

	for _, tt := range tests {
		t.Run(tt.algo.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.algo.digest("abc"))
		})
	}
}
