package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// ErrProductNotFound is returned when no product matches the lookup.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository handles persistence for Product entities.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	ListAll(ctx context.Context) ([]*entity.Product, error)

	// Update overwrites the stored product with the given entity.
	Update(ctx context.Context, product *entity.Product) error

	Delete(ctx context.Context, id uuid.UUID) error
}
