package repository

import (
	"context"

	"github.com/google/uuid"

	"authapi/internal/domain/entity"
	"authapi/internal/errors"
)

// ErrTokenPairNotFound is returned by lookups when no token pair matches.
var ErrTokenPairNotFound = errors.New("token pair not found")

// TokenRepository manages issued token pairs.
type TokenRepository interface {
	// Insert persists a freshly issued token pair.
	Insert(ctx context.Context, pair *entity.TokenPair) error

	// FindByID retrieves a token pair by its identifier.
	// Returns ErrTokenPairNotFound if no pair matches.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.TokenPair, error)

	// FindByAccessToken retrieves the pair holding the given access token.
	// Returns ErrTokenPairNotFound if no pair matches.
	FindByAccessToken(ctx context.Context, token string) (*entity.TokenPair, error)

	// FindByRefreshToken retrieves the pair holding the given refresh token.
	// Returns ErrTokenPairNotFound if no pair matches.
	FindByRefreshToken(ctx context.Context, token string) (*entity.TokenPair, error)

	// DeleteByAccountID removes every pair issued to the given account and
	// reports how many were removed.
	DeleteByAccountID(ctx context.Context, accountID uuid.UUID) (int, error)
}
