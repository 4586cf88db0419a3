package postgres

import (
	"context"

	"storefront/internal/domain/repository"
	"storefront/internal/errors"

	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface
// using GORM.
type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory hands out repository instances bound to one GORM
// transaction. In GORM, a transaction object is also a *gorm.DB.
type gormRepositoryFactory struct {
	tx *gorm.DB
}

func (f *gormRepositoryFactory) UserRepo() repository.UserRepository {
	return NewUserRepository(f.tx)
}

func (f *gormRepositoryFactory) ProductRepo() repository.ProductRepository {
	return NewProductRepository(f.tx)
}

func (f *gormRepositoryFactory) OrderRepo() repository.OrderRepository {
	return NewOrderRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs the given function within a single database transaction.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return errors.Wrap(tx.Error, "failed to begin transaction")
	}

	// Roll back on panic so a crashed callback never leaves a dangling
	// transaction open.
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	factory := &gormRepositoryFactory{tx: tx}

	if err := fn(factory); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			// Keep the original business error; the rollback failure is
			// secondary.
			return errors.Wrapf(err, "transaction rollback failed: %v (original error)", rbErr)
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return errors.Wrap(err, "failed to commit transaction")
	}

	return nil
}
