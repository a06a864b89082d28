// Package memory provides in-memory implementations of the repository
// interfaces. They back the service in tests and single-process deployments;
// a database-backed implementation can replace them without touching the use
// cases.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"authapi/internal/domain/entity"
	"authapi/internal/domain/repository"
	"authapi/internal/errors"
)

// accountRepository stores accounts in a mutex-guarded map keyed by id.
type accountRepository struct {
	mu       sync.RWMutex
	accounts map[uuid.UUID]*entity.Account
	byEmail  map[string]uuid.UUID
}

// NewAccountRepository is the constructor for the in-memory account store.
func NewAccountRepository() repository.AccountRepository {
	return &accountRepository{
		accounts: make(map[uuid.UUID]*entity.Account),
		byEmail:  make(map[string]uuid.UUID),
	}
}

func (r *accountRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.accounts[id]
	if !ok {
		return nil, errors.WithStack(repository.ErrAccountNotFound)
	}

	return cloneAccount(account), nil
}

func (r *accountRepository) FindByEmail(_ context.Context, email string) (*entity.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email]
	if !ok {
		return nil, errors.WithStack(repository.ErrAccountNotFound)
	}

	return cloneAccount(r.accounts[id]), nil
}

func (r *accountRepository) List(_ context.Context) ([]*entity.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	accounts := make([]*entity.Account, 0, len(r.accounts))
	for _, account := range r.accounts {
		accounts = append(accounts, cloneAccount(account))
	}

	return accounts, nil
}

func (r *accountRepository) Create(_ context.Context, account *entity.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[account.Email]; exists {
		return errors.Errorf("account with email %s already exists", account.Email)
	}

	r.accounts[account.ID] = cloneAccount(account)
	r.byEmail[account.Email] = account.ID

	return nil
}

func (r *accountRepository) Update(_ context.Context, account *entity.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.accounts[account.ID]
	if !ok {
		return errors.WithStack(repository.ErrAccountNotFound)
	}

	if current.Email != account.Email {
		delete(r.byEmail, current.Email)
		r.byEmail[account.Email] = account.ID
	}
	r.accounts[account.ID] = cloneAccount(account)

	return nil
}

func (r *accountRepository) UpdatePasswordHash(_ context.Context, id uuid.UUID, record string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.accounts[id]
	if !ok {
		return false, nil
	}
	account.PasswordHash = record

	return true, nil
}

func (r *accountRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.accounts[id]
	if !ok {
		return errors.WithStack(repository.ErrAccountNotFound)
	}

	delete(r.byEmail, account.Email)
	delete(r.accounts, id)

	return nil
}

// cloneAccount copies an account so callers never share the stored value.
func cloneAccount(account *entity.Account) *entity.Account {
	clone := *account
	return &clone
}
