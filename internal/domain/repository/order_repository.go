package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when no order matches the lookup.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository handles persistence for Order entities and their lines.
type OrderRepository interface {
	// Create persists an order together with all of its lines. Callers that
	// need the all-or-nothing guarantee run this inside
	// TransactionManager.Execute.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves a single order with its lines.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// ListAll returns every order with its lines.
	ListAll(ctx context.Context) ([]*entity.Order, error)

	// UpdateStatus changes the status of an existing order.
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*entity.Order, error)
}
