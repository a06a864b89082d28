package auth

import (
	"context"

	"authapi/internal/domain/entity"
	"authapi/internal/domain/repository"
	"authapi/internal/domain/service"
	"authapi/internal/errors"
)

// credentialAuthenticator is a concrete implementation of the Authenticator
// interface built on the password hashing scheme of this package.
type credentialAuthenticator struct {
	hasher service.PasswordHasher
}

// NewAuthenticator is the constructor for credentialAuthenticator.
func NewAuthenticator(hasher service.PasswordHasher) service.Authenticator {
	return &credentialAuthenticator{hasher: hasher}
}

// Authenticate resolves a credential pair to an account. Not-found, inactive
// and wrong-password all collapse to (nil, nil) so callers cannot probe which
// emails are registered. A stored record that fails to decode is surfaced as
// an error since it means the store is corrupted.
func (a *credentialAuthenticator) Authenticate(
	ctx context.Context,
	accounts repository.AccountRepository,
	email, password string,
) (*entity.Account, error) {
	account, err := accounts.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "look up account by email")
	}

	if !account.Active {
		return nil, nil
	}

	matched, err := a.hasher.Verify(password, account.PasswordHash)
	if err != nil {
		return nil, errors.Wrap(err, "verify password against stored record")
	}
	if !matched {
		return nil, nil
	}

	return account, nil
}
