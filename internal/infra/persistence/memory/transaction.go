package memory

import (
	"context"

	"authapi/internal/domain/repository"
)

// transactionManager satisfies the TransactionManager interface for the
// in-memory stores. The stores have no transactional semantics, so Execute
// simply runs the function against a factory of the live repositories; a
// returned error aborts the caller's unit of work but does not undo
// completed mutations.
type transactionManager struct {
	factory repository.RepositoryFactory
}

// NewTransactionManager is the constructor for the in-memory transaction
// manager.
func NewTransactionManager(accounts repository.AccountRepository, tokens repository.TokenRepository) repository.TransactionManager {
	return &transactionManager{
		factory: &repositoryFactory{accounts: accounts, tokens: tokens},
	}
}

func (m *transactionManager) Execute(ctx context.Context, fn func(factory repository.RepositoryFactory) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return fn(m.factory)
}

// repositoryFactory hands out the shared in-memory repositories.
type repositoryFactory struct {
	accounts repository.AccountRepository
	tokens   repository.TokenRepository
}

func (f *repositoryFactory) AccountRepo() repository.AccountRepository {
	return f.accounts
}

func (f *repositoryFactory) TokenRepo() repository.TokenRepository {
	return f.tokens
}
