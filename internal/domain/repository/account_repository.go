// Package repository defines the persistence interfaces of the domain.
// Implementations live under internal/infra/persistence.
package repository

import (
	"context"

	"github.com/google/uuid"

	"authapi/internal/domain/entity"
	"authapi/internal/errors"
)

// ErrAccountNotFound is returned by lookups when no account matches.
var ErrAccountNotFound = errors.New("account not found")

// AccountRepository manages the account store.
type AccountRepository interface {
	// FindByID retrieves an account by its unique identifier.
	// Returns ErrAccountNotFound if no account matches.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByEmail retrieves an account by its login email.
	// Returns ErrAccountNotFound if no account matches.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// List returns all stored accounts.
	List(ctx context.Context) ([]*entity.Account, error)

	// Create persists a new account.
	Create(ctx context.Context, account *entity.Account) error

	// Update overwrites an existing account.
	// Returns ErrAccountNotFound if no account matches.
	Update(ctx context.Context, account *entity.Account) error

	// UpdatePasswordHash replaces the stored password record of the given
	// account. The returned bool reports whether the account existed.
	UpdatePasswordHash(ctx context.Context, id uuid.UUID, record string) (bool, error)

	// Delete removes an account by its identifier.
	// Returns ErrAccountNotFound if no account matches.
	Delete(ctx context.Context, id uuid.UUID) error
}
