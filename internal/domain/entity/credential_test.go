package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	email, err := NewEmail("user@example.com")
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", email.String())

	_, err = NewEmail("@example.com")
	assert.Error(t, err)

	_, err = NewEmail("")
	assert.Error(t, err)
}

func TestNewRawPassword(t *testing.T) {
	password, err := NewRawPassword("01abCD#$")
	require.NoError(t, err)
	assert.Equal(t, "01abCD#$", password.String())

	tests := []struct {
		name  string
		value string
	}{
		{name: "too short", value: "01abCD#"},
		{name: "no letters", value: "012345#$"},
		{name: "no uppercase", value: "01abcd#$"},
		{name: "no lowercase", value: "01ABCD#$"},
		{name: "no digits", value: "abcdEF#$"},
		{name: "no symbols", value: "01abCDef"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRawPassword(tt.value)
			assert.Error(t, err)
		})
	}
}

func TestNewAccountName(t *testing.T) {
	name, err := NewAccountName("ab")
	require.NoError(t, err)
	assert.Equal(t, "ab", name.String())

	_, err = NewAccountName("a")
	assert.Error(t, err)

	_, err = NewAccountName("aaaaaaaaaaaaaaaaaaaaa") // 21 chars
	assert.Error(t, err)
}
