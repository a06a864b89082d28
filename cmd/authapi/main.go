package main

import (
	"log/slog"

	"go.uber.org/fx"

	"authapi/config"
	"authapi/internal/infra/auth"
	logs "authapi/internal/infra/log"
	"authapi/internal/infra/persistence/memory"
	"authapi/internal/usecase"
	"authapi/internal/usecase/impl"
)

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		fx.Invoke(
			reportReady,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			memory.NewAccountRepository,
			memory.NewTokenRepository,
			memory.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewSaltGenerator,
			auth.NewRoundHasher,
			auth.NewAuthenticator,
			auth.NewJWTService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewAccountService,
		),
	)
}

func reportReady(cfg *config.Config, logger *slog.Logger, _ usecase.AuthUsecase, _ usecase.AccountUsecase) {
	logger.Info("auth services ready",
		slog.String("service", cfg.Env.ServiceName),
		slog.String("hashAlgorithm", cfg.Auth.HashAlgorithm),
		slog.Int("hashRounds", int(cfg.Auth.HashRounds)),
	)
}
