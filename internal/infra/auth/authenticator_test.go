package auth

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"authapi/internal/domain/entity"
	"authapi/internal/domain/repository"
	"authapi/internal/errors"
	mockRepo "authapi/internal/mocks/repository"
	mockService "authapi/internal/mocks/service"
)

func TestAuthenticator_Authenticate_Success(t *testing.T) {
	ctx := context.Background()
	account := &entity.Account{
		ID:           uuid.New(),
		Email:        "user@example.com",
		PasswordHash: "SHA-256$10$8$NaCl!x~7$digest",
		Active:       true,
	}

	accounts := mockRepo.NewMockAccountRepository(t)
	accounts.EXPECT().FindByEmail(ctx, "user@example.com").Return(account, nil)

	hasher := mockService.NewMockPasswordHasher(t)
	hasher.EXPECT().Verify("Passw0rd!", account.PasswordHash).Return(true, nil)

	authenticated, err := NewAuthenticator(hasher).Authenticate(ctx, accounts, "user@example.com", "Passw0rd!")

	require.NoError(t, err)
	require.NotNil(t, authenticated)
	assert.Equal(t, account.ID, authenticated.ID)
}

// Not-found, inactive and wrong-password must be indistinguishable: every
// case yields (nil, nil).
func TestAuthenticator_Authenticate_Collapse(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		setup func(t *testing.T) (*mockRepo.MockAccountRepository, *mockService.MockPasswordHasher)
	}{
		{
			name: "no account with the email",
			setup: func(t *testing.T) (*mockRepo.MockAccountRepository, *mockService.MockPasswordHasher) {
				accounts := mockRepo.NewMockAccountRepository(t)
				accounts.EXPECT().FindByEmail(ctx, "user@example.com").Return(nil, repository.ErrAccountNotFound)

				return accounts, mockService.NewMockPasswordHasher(t)
			},
		},
		{
			name: "inactive account with correct password",
			setup: func(t *testing.T) (*mockRepo.MockAccountRepository, *mockService.MockPasswordHasher) {
				account := &entity.Account{ID: uuid.New(), Email: "user@example.com", Active: false}
				accounts := mockRepo.NewMockAccountRepository(t)
				accounts.EXPECT().FindByEmail(ctx, "user@example.com").Return(account, nil)

				// The hasher is never consulted for an inactive account.
				return accounts, mockService.NewMockPasswordHasher(t)
			},
		},
		{
			name: "active account with wrong password",
			setup: func(t *testing.T) (*mockRepo.MockAccountRepository, *mockService.MockPasswordHasher) {
				account := &entity.Account{ID: uuid.New(), Email: "user@example.com", PasswordHash: "record", Active: true}
				accounts := mockRepo.NewMockAccountRepository(t)
				accounts.EXPECT().FindByEmail(ctx, "user@example.com").Return(account, nil)

				hasher := mockService.NewMockPasswordHasher(t)
				hasher.EXPECT().Verify("Passw0rd!", "record").Return(false, nil)

				return accounts, hasher
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			accounts, hasher := tt.setup(t)

			authenticated, err := NewAuthenticator(hasher).Authenticate(ctx, accounts, "user@example.com", "Passw0rd!")

			assert.NoError(t, err)
			assert.Nil(t, authenticated)
		})
	}
}

func TestAuthenticator_Authenticate_CorruptRecordIsAnError(t *testing.T) {
	ctx := context.Background()
	account := &entity.Account{ID: uuid.New(), Email: "user@example.com", PasswordHash: "garbage", Active: true}

	accounts := mockRepo.NewMockAccountRepository(t)
	accounts.EXPECT().FindByEmail(ctx, "user@example.com").Return(account, nil)

	hasher := mockService.NewMockPasswordHasher(t)
	hasher.EXPECT().Verify("Passw0rd!", "garbage").Return(false, ErrMissingAlgorithm)

	authenticated, err := NewAuthenticator(hasher).Authenticate(ctx, accounts, "user@example.com", "Passw0rd!")

	assert.Nil(t, authenticated)
	assert.ErrorIs(t, err, ErrMissingAlgorithm)
}

func TestAuthenticator_Authenticate_StoreFailurePropagates(t *testing.T) {
	ctx := context.Background()
	storeErr := errors.New("connection reset")

	accounts := mockRepo.NewMockAccountRepository(t)
	accounts.EXPECT().FindByEmail(ctx, "user@example.com").Return(nil, storeErr)

	authenticated, err := NewAuthenticator(mockService.NewMockPasswordHasher(t)).
		Authenticate(ctx, accounts, "user@example.com", "Passw0rd!")

	assert.Nil(t, authenticated)
	assert.ErrorIs(t, err, storeErr)
}
