// Package repository defines the persistence interfaces the domain depends
// on. Concrete implementations live under internal/infra/persistence.
package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// ErrUserNotFound is returned when no user matches the lookup.
var ErrUserNotFound = errors.New("user not found")

// UserRepository handles persistence for User entities.
type UserRepository interface {
	// Create persists a new user. The store enforces uniqueness on email
	// and username.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByEmailOrUsername retrieves a user matching either identifier.
	// Used for the pre-registration duplicate check.
	FindByEmailOrUsername(ctx context.Context, email, username string) (*entity.User, error)

	// ListAll returns every registered user.
	ListAll(ctx context.Context) ([]*entity.User, error)
}
