// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"authapi/internal/domain/entity"
)

// --- Input DTOs ---

// LoginInput defines the data required to authenticate an account.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// LoginOutput returns the issued tokens after a successful login.
type LoginOutput struct {
	Account   *entity.Account
	TokenPair *entity.TokenPair
}

// VerifyTokenOutput returns the verified claims of an access token.
type VerifyTokenOutput struct {
	AccountID uuid.UUID
	ExpiresAt time.Time
}

// AuthUsecase defines the interface for authentication business operations.
// This is the contract that the delivery layer will depend on.
type AuthUsecase interface {
	// Login authenticates a credential pair and issues a token pair.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// VerifyAccessToken checks an access token's signature, expiry and
	// registration in the token store.
	VerifyAccessToken(ctx context.Context, token string) (*VerifyTokenOutput, error)

	// Logout revokes every token pair issued to the account.
	Logout(ctx context.Context, accountID uuid.UUID) error
}
