package usecase

import (
	"context"

	"github.com/google/uuid"

	"authapi/internal/domain/entity"
)

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// ChangePasswordInput defines the data required to change a password.
type ChangePasswordInput struct {
	AccountID       uuid.UUID
	CurrentPassword string
	NewPassword     string
}

// AccountUsecase defines the interface for account management operations.
type AccountUsecase interface {
	// Register validates the input and creates a new account with a
	// hashed password record.
	Register(ctx context.Context, input *RegisterInput) (*entity.Account, error)

	// FindByID retrieves a single account.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// List retrieves all accounts.
	List(ctx context.Context) ([]*entity.Account, error)

	// ChangePassword re-hashes the password after verifying the current
	// one, and revokes the account's issued tokens.
	ChangePassword(ctx context.Context, input *ChangePasswordInput) error

	// Delete removes an account and its issued tokens.
	Delete(ctx context.Context, id uuid.UUID) error
}
