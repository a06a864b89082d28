package repository

import "context"

// RepositoryFactory hands out repositories bound to one transaction scope.
type RepositoryFactory interface {
	AccountRepo() AccountRepository
	TokenRepo() TokenRepository
}

// TransactionManager runs a function inside a transaction. Every repository
// obtained from the factory shares the same scope; returning an error rolls
// the whole unit back.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(factory RepositoryFactory) error) error
}
