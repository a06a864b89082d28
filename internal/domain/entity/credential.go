package entity

import (
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

const (
	accountNameMinLength = 2
	accountNameMaxLength = 20

	rawPasswordMinLength = 8
	// Symbols accepted as the "special character" class of a password.
	rawPasswordSigns = ` !"#$%&'()*+,-./:;<=>?@[\]^_` + "`{|}~"
)

var validate = validator.New()

// Email is a validated email address used as the login identifier.
type Email struct {
	value string
}

// NewEmail validates and wraps an email address.
func NewEmail(value string) (Email, error) {
	if err := validate.Var(value, "required,email"); err != nil {
		return Email{}, errors.Errorf("invalid email address: %s", value)
	}

	return Email{value: value}, nil
}

func (e Email) String() string {
	return e.value
}

// RawPassword is a validated plaintext password. It exists only transiently
// for hashing and verification; it is never persisted and must never be
// logged.
type RawPassword struct {
	value string
}

// NewRawPassword validates a plaintext password: at least 8 characters,
// containing a lowercase letter, an uppercase letter, a digit and a symbol.
func NewRawPassword(value string) (RawPassword, error) {
	if len(value) < rawPasswordMinLength {
		return RawPassword{}, errors.Errorf("password must be at least %d characters", rawPasswordMinLength)
	}
	if !strings.ContainsFunc(value, unicode.IsLower) {
		return RawPassword{}, errors.New("password must contain a lowercase letter")
	}
	if !strings.ContainsFunc(value, unicode.IsUpper) {
		return RawPassword{}, errors.New("password must contain an uppercase letter")
	}
	if !strings.ContainsFunc(value, unicode.IsDigit) {
		return RawPassword{}, errors.New("password must contain a digit")
	}
	if !strings.ContainsAny(value, rawPasswordSigns) {
		return RawPassword{}, errors.New("password must contain a symbol")
	}

	return RawPassword{value: value}, nil
}

func (p RawPassword) String() string {
	return p.value
}

// AccountName is a validated display name, 2 to 20 characters.
type AccountName struct {
	value string
}

// NewAccountName validates and wraps a display name.
func NewAccountName(value string) (AccountName, error) {
	if err := validate.Var(value, "required,min=2,max=20"); err != nil {
		return AccountName{}, errors.Errorf("account name must be %d to %d characters", accountNameMinLength, accountNameMaxLength)
	}

	return AccountName{value: value}, nil
}

func (n AccountName) String() string {
	return n.value
}
