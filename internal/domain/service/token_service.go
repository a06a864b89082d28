package service

import (
	"time"

	"github.com/google/uuid"

	"authapi/internal/domain/entity"
	"authapi/internal/errors"
)

var (
	// ErrSigningFailed indicates the token could not be signed.
	ErrSigningFailed = errors.New("token signing failed")
	// ErrInvalidSignature indicates the token signature did not verify.
	ErrInvalidSignature = errors.New("invalid token signature")
	// ErrMalformedClaims indicates the token or its claims could not be parsed.
	ErrMalformedClaims = errors.New("malformed token claims")
	// ErrTokenExpired indicates the token's expiry is not in the future.
	ErrTokenExpired = errors.New("token expired")
)

// TokenClaims is the verified content of a token.
type TokenClaims struct {
	AccountID string    // The subject claim.
	ExpiresAt time.Time // The expiry claim.
}

// TokenService issues and verifies signed access/refresh token pairs.
type TokenService interface {
	// IssuePair signs a new access/refresh pair for the account. Both
	// tokens carry the account id as subject and differ only in lifetime.
	IssuePair(accountID uuid.UUID) (*entity.TokenPair, error)

	// Verify checks the token's signature and expiry and returns its
	// claims. A token whose expiry equals the current instant is already
	// expired.
	Verify(token string) (*TokenClaims, error)
}
