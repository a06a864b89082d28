package service

import (
	"context"

	"authapi/internal/domain/entity"
	"authapi/internal/domain/repository"
)

// Authenticator checks a credential pair against the account store.
type Authenticator interface {
	// Authenticate looks up the account by email and verifies the password
	// against its stored record. It returns the account on success and
	// (nil, nil) when no active account matches or the password is wrong;
	// the two cases are indistinguishable to the caller. Errors are
	// reserved for infrastructure failures.
	Authenticate(ctx context.Context, accounts repository.AccountRepository, email, password string) (*entity.Account, error)
}
