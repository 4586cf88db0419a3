package repository

import "context"

// RepositoryFactory hands out repository instances bound to a single
// transaction.
type RepositoryFactory interface {
	UserRepo() UserRepository
	ProductRepo() ProductRepository
	OrderRepo() OrderRepository
}

// TransactionManager runs a unit of work within a single database
// transaction. If fn returns an error the transaction is rolled back.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}
