package memory

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"authapi/internal/domain/entity"
	"authapi/internal/domain/repository"
	"authapi/internal/errors"
)

func newAccount(email string) *entity.Account {
	now := time.Now()
	return &entity.Account{
		ID:           uuid.New(),
		Email:        email,
		Name:         "tester",
		PasswordHash: "SHA-256$10$8$NaCl!x~7$digest",
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestAccountRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewAccountRepository()
	account := newAccount("user@example.com")

	require.NoError(t, repo.Create(ctx, account))

	byID, err := repo.FindByID(ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, account.Email, byID.Email)

	byEmail, err := repo.FindByEmail(ctx, "user@example.com")
	require.NoError(t, err)
	assert.Equal(t, account.ID, byEmail.ID)

	// Mutating a returned value must not leak into the store.
	byID.Email = "mutated@example.com"
	again, err := repo.FindByID(ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", again.Email)
}

func TestAccountRepository_CreateRejectsDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewAccountRepository()

	require.NoError(t, repo.Create(ctx, newAccount("user@example.com")))
	assert.Error(t, repo.Create(ctx, newAccount("user@example.com")))
}

func TestAccountRepository_FindMissing(t *testing.T) {
	ctx := context.Background()
	repo := NewAccountRepository()

	_, err := repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrAccountNotFound)

	_, err = repo.FindByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, repository.ErrAccountNotFound)
}

func TestAccountRepository_List(t *testing.T) {
	ctx := context.Background()
	repo := NewAccountRepository()

	require.NoError(t, repo.Create(ctx, newAccount("a@example.com")))
	require.NoError(t, repo.Create(ctx, newAccount("b@example.com")))

	accounts, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, accounts, 2)
}

func TestAccountRepository_Update(t *testing.T) {
	ctx := context.Background()
	repo := NewAccountRepository()
	account := newAccount("user@example.com")
	require.NoError(t, repo.Create(ctx, account))

	account.Email = "renamed@example.com"
	account.Active = false
	require.NoError(t, repo.Update(ctx, account))

	updated, err := repo.FindByEmail(ctx, "renamed@example.com")
	require.NoError(t, err)
	assert.False(t, updated.Active)

	_, err = repo.FindByEmail(ctx, "user@example.com")
	assert.ErrorIs(t, err, repository.ErrAccountNotFound)

	assert.ErrorIs(t, repo.Update(ctx, newAccount("ghost@example.com")), repository.ErrAccountNotFound)
}

func TestAccountRepository_UpdatePasswordHash(t *testing.T) {
	ctx := context.Background()
	repo := NewAccountRepository()
	account := newAccount("user@example.com")
	require.NoError(t, repo.Create(ctx, account))

	found, err := repo.UpdatePasswordHash(ctx, account.ID, "SHA-512$3$4$abcd$newdigest")
	require.NoError(t, err)
	assert.True(t, found)

	updated, err := repo.FindByID(ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, "SHA-512$3$4$abcd$newdigest", updated.PasswordHash)

	found, err = repo.UpdatePasswordHash(ctx, uuid.New(), "whatever")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestAccountRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := NewAccountRepository()
	account := newAccount("user@example.com")
	require.NoError(t, repo.Create(ctx, account))

	require.NoError(t, repo.Delete(ctx, account.ID))
	_, err := repo.FindByID(ctx, account.ID)
	assert.ErrorIs(t, err, repository.ErrAccountNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, account.ID), repository.ErrAccountNotFound)
}

func newPair(accountID uuid.UUID, suffix string) *entity.TokenPair {
	now := time.Now()
	return &entity.TokenPair{
		ID:               uuid.New(),
		AccountID:        accountID,
		AccessToken:      "access-" + suffix,
		AccessExpiresAt:  now.Add(15 * time.Minute),
		RefreshToken:     "refresh-" + suffix,
		RefreshExpiresAt: now.Add(7 * 24 * time.Hour),
		CreatedAt:        now,
	}
}

func TestTokenRepository_InsertAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewTokenRepository()
	accountID := uuid.New()
	pair := newPair(accountID, "1")

	require.NoError(t, repo.Insert(ctx, pair))
	assert.Error(t, repo.Insert(ctx, pair))

	byID, err := repo.FindByID(ctx, pair.ID)
	require.NoError(t, err)
	assert.Equal(t, pair.AccessToken, byID.AccessToken)

	byAccess, err := repo.FindByAccessToken(ctx, "access-1")
	require.NoError(t, err)
	assert.Equal(t, pair.ID, byAccess.ID)

	byRefresh, err := repo.FindByRefreshToken(ctx, "refresh-1")
	require.NoError(t, err)
	assert.Equal(t, pair.ID, byRefresh.ID)

	_, err = repo.FindByAccessToken(ctx, "access-unknown")
	assert.ErrorIs(t, err, repository.ErrTokenPairNotFound)
}

func TestTokenRepository_DeleteByAccountID(t *testing.T) {
	ctx := context.Background()
	repo := NewTokenRepository()
	accountID := uuid.New()

	require.NoError(t, repo.Insert(ctx, newPair(accountID, "1")))
	require.NoError(t, repo.Insert(ctx, newPair(accountID, "2")))
	require.NoError(t, repo.Insert(ctx, newPair(uuid.New(), "3")))

	deleted, err := repo.DeleteByAccountID(ctx, accountID)
	require.NoError(t, err)
	assert.Equal(t, 2, deleted)

	_, err = repo.FindByAccessToken(ctx, "access-1")
	assert.ErrorIs(t, err, repository.ErrTokenPairNotFound)
	_, err = repo.FindByAccessToken(ctx, "access-3")
	assert.NoError(t, err)
}

func TestTransactionManager_Execute(t *testing.T) {
	ctx := context.Background()
	accounts := NewAccountRepository()
	tokens := NewTokenRepository()
	manager := NewTransactionManager(accounts, tokens)

	account := newAccount("user@example.com")
	err := manager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		return factory.AccountRepo().Create(ctx, account)
	})
	require.NoError(t, err)

	_, err = accounts.FindByID(ctx, account.ID)
	assert.NoError(t, err)

	boom := errors.New("boom")
	err = manager.Execute(ctx, func(repository.RepositoryFactory) error { return boom })
	assert.ErrorIs(t, err, boom)
}

func TestTransactionManager_ExecuteHonorsContext(t *testing.T) {
	manager := NewTransactionManager(NewAccountRepository(), NewTokenRepository())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := manager.Execute(ctx, func(repository.RepositoryFactory) error { return nil })
	assert.ErrorIs(t, err, context.Canceled)
}
