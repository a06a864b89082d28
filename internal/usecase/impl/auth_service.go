// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	"authapi/internal/domain/entity"
	domainerrors "authapi/internal/domain/errors"
	"authapi/internal/domain/repository"
	"authapi/internal/domain/service"
	"authapi/internal/usecase"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager     repository.TransactionManager
	tokenRepo     repository.TokenRepository
	authenticator service.Authenticator
	tokenService  service.TokenService
	logger        *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	TokenRepo     repository.TokenRepository
	Authenticator service.Authenticator
	TokenService  service.TokenService
	Logger        *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:     params.TxManager,
		tokenRepo:     params.TokenRepo,
		authenticator: params.Authenticator,
		tokenService:  params.TokenService,
		logger:        params.Logger,
	}
}

// Login authenticates the credential pair and issues a token pair inside a
// single transaction. Every authentication failure surfaces as
// ErrInvalidCredentials regardless of its cause.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.logger.Debug("Starting login", slog.String("email", input.Email))

	email, err := entity.NewEmail(input.Email)
	if err != nil {
		srv.logger.Warn("Login with malformed email", slog.String("email", input.Email))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	var output *usecase.LoginOutput
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		account, err := srv.authenticator.Authenticate(ctx, repoFactory.AccountRepo(), email.String(), input.Password)
		if err != nil {
			return errors.Wrap(err, "failed to authenticate credentials")
		}
		if account == nil {
			return errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		pair, err := srv.tokenService.IssuePair(account.ID)
		if err != nil {
			return errors.Wrap(err, "failed to issue token pair")
		}

		if err := repoFactory.TokenRepo().Insert(ctx, pair); err != nil {
			return errors.Wrap(err, "failed to store token pair")
		}

		output = &usecase.LoginOutput{Account: account, TokenPair: pair}

		return nil
	})
	if err != nil {
		srv.logger.Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute login transaction")
	}

	srv.logger.Debug("Login succeeded", slog.Any("accountID", output.Account.ID))

	return output, nil
}

// VerifyAccessToken checks the token cryptographically and then confirms it
// is still registered, so revoked tokens stop working before they expire.
func (srv *authService) VerifyAccessToken(ctx context.Context, token string) (*usecase.VerifyTokenOutput, error) {
	claims, err := srv.tokenService.Verify(token)
	if err != nil {
		return nil, errors.Wrap(err, "access token verification failed")
	}

	accountID, err := uuid.Parse(claims.AccountID)
	if err != nil {
		return nil, errors.Wrap(service.ErrMalformedClaims, "subject is not a valid account id")
	}

	// Single query operation - use direct repository instance
	if _, err := srv.tokenRepo.FindByAccessToken(ctx, token); err != nil {
		if errors.Is(err, repository.ErrTokenPairNotFound) {
			return nil, errors.Wrap(domainerrors.ErrTokenNotFound, "access token is not registered")
		}

		return nil, errors.Wrap(err, "failed to look up access token")
	}

	return &usecase.VerifyTokenOutput{
		AccountID: accountID,
		ExpiresAt: claims.ExpiresAt,
	}, nil
}

// Logout revokes every token pair issued to the account.
func (srv *authService) Logout(ctx context.Context, accountID uuid.UUID) error {
	srv.logger.Info("Logging out account", slog.Any("accountID", accountID))

	// Single operation - use direct repository instance
	deleted, err := srv.tokenRepo.DeleteByAccountID(ctx, accountID)
	if err != nil {
		srv.logger.Error("Failed to delete token pairs", slog.Any("accountID", accountID), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete token pairs")
	}

	srv.logger.Debug("Logged out", slog.Any("accountID", accountID), slog.Int("revoked", deleted))

	return nil
}
