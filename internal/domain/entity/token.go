package entity

import (
	"time"

	"github.com/google/uuid"
)

// TokenPair represents an issued access/refresh token pair bound to an
// account. Pairs are created at authentication time, persisted by the token
// store and never mutated afterwards.
type TokenPair struct {
	ID               uuid.UUID // The unique identifier for this pair.
	AccountID        uuid.UUID // The account the tokens were issued to.
	AccessToken      string    // Signed access token carrying {sub, exp}.
	AccessExpiresAt  time.Time // Expiry of the access token.
	RefreshToken     string    // Signed refresh token carrying {sub, exp}.
	RefreshExpiresAt time.Time // Expiry of the refresh token.
	CreatedAt        time.Time // Timestamp of issuance.
}
