package impl

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	"authapi/internal/domain/entity"
	domainerrors "authapi/internal/domain/errors"
	"authapi/internal/domain/repository"
	"authapi/internal/domain/service"
	"authapi/internal/usecase"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager   repository.TransactionManager
	accountRepo repository.AccountRepository
	hasher      service.PasswordHasher
	logger      *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	AccountRepo repository.AccountRepository
	Hasher      service.PasswordHasher
	Logger      *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager:   params.TxManager,
		accountRepo: params.AccountRepo,
		hasher:      params.Hasher,
		logger:      params.Logger,
	}
}

// Register validates the input, hashes the password and creates the account.
// Validation failures return before any store access.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.Account, error) {
	srv.logger.Info("Starting registration", slog.String("email", input.Email))

	name, err := entity.NewAccountName(input.Name)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
	}
	email, err := entity.NewEmail(input.Email)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
	}
	password, err := entity.NewRawPassword(input.Password)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
	}

	record, err := srv.hasher.HashNew(password.String())
	if err != nil {
		srv.logger.Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	now := time.Now()
	account := &entity.Account{
		ID:           uuid.New(),
		Email:        email.String(),
		Name:         name.String(),
		PasswordHash: record,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		_, err := accountRepo.FindByEmail(ctx, account.Email)
		if err == nil {
			return errors.Wrap(domainerrors.ErrAccountAlreadyExists, "registration failed")
		}
		if !errors.Is(err, repository.ErrAccountNotFound) {
			return errors.Wrap(err, "failed to check email availability")
		}

		return accountRepo.Create(ctx, account)
	})
	if err != nil {
		srv.logger.Warn("Registration failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute registration transaction")
	}

	srv.logger.Debug("Registration completed", slog.Any("accountID", account.ID))

	return account, nil
}

// FindByID retrieves a single account.
func (srv *accountService) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	// Single query operation - use direct repository instance
	account, err := srv.accountRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, errors.Wrap(domainerrors.ErrAccountNotFound, "account lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find account by id")
	}

	return account, nil
}

// List retrieves all accounts.
func (srv *accountService) List(ctx context.Context) ([]*entity.Account, error) {
	// Single query operation - use direct repository instance
	accounts, err := srv.accountRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list accounts")
	}

	return accounts, nil
}

// ChangePassword verifies the current password, stores a freshly hashed
// record for the new one and revokes the account's token pairs, all in one
// transaction.
func (srv *accountService) ChangePassword(ctx context.Context, input *usecase.ChangePasswordInput) error {
	srv.logger.Info("Starting password change", slog.Any("accountID", input.AccountID))

	// Both passwords must be structurally valid before any store access; a
	// malformed current password is a validation failure, not a mismatch.
	currentPassword, err := entity.NewRawPassword(input.CurrentPassword)
	if err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
	}
	newPassword, err := entity.NewRawPassword(input.NewPassword)
	if err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		account, err := accountRepo.FindByID(ctx, input.AccountID)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return errors.Wrap(domainerrors.ErrAccountNotFound, "password change failed")
			}

			return errors.Wrap(err, "failed to find account by id")
		}

		matched, err := srv.hasher.Verify(currentPassword.String(), account.PasswordHash)
		if err != nil {
			return errors.Wrap(err, "failed to verify current password")
		}
		if !matched {
			return errors.Wrap(domainerrors.ErrWrongPassword, "password change failed")
		}

		record, err := srv.hasher.HashNew(newPassword.String())
		if err != nil {
			return errors.Wrap(err, "failed to hash new password")
		}

		found, err := accountRepo.UpdatePasswordHash(ctx, account.ID, record)
		if err != nil {
			return errors.Wrap(err, "failed to update password hash")
		}
		if !found {
			return errors.Wrap(domainerrors.ErrAccountNotFound, "password change failed")
		}

		// Old sessions must not survive a password change.
		if _, err := repoFactory.TokenRepo().DeleteByAccountID(ctx, account.ID); err != nil {
			return errors.Wrap(err, "failed to revoke token pairs")
		}

		return nil
	})
	if err != nil {
		srv.logger.Warn("Password change failed", slog.Any("accountID", input.AccountID), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute password change transaction")
	}

	srv.logger.Debug("Password changed", slog.Any("accountID", input.AccountID))

	return nil
}

// Delete removes an account together with its issued tokens.
func (srv *accountService) Delete(ctx context.Context, id uuid.UUID) error {
	srv.logger.Info("Deleting account", slog.Any("accountID", id))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.TokenRepo().DeleteByAccountID(ctx, id); err != nil {
			return errors.Wrap(err, "failed to revoke token pairs")
		}

		if err := repoFactory.AccountRepo().Delete(ctx, id); err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return errors.Wrap(domainerrors.ErrAccountNotFound, "account deletion failed")
			}

			return errors.Wrap(err, "failed to delete account")
		}

		return nil
	})
	if err != nil {
		srv.logger.Warn("Account deletion failed", slog.Any("accountID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute account deletion transaction")
	}

	return nil
}
