// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterUserInput defines the data required to register a new user.
type RegisterUserInput struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
	Username string `json:"username" form:"username"`
	Name     string `json:"name" form:"name"`
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// --- Output DTOs ---

// UserOutput is the public view of a user. It deliberately has no password
// field in any form.
type UserOutput struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// LoginOutput returns the bearer token issued for a successful login.
type LoginOutput struct {
	Token  string    `json:"token"`
	UserID uuid.UUID `json:"userId"`
}

// NewUserOutput maps a domain user to its public view.
func NewUserOutput(user *entity.User) *UserOutput {
	return &UserOutput{
		ID:        user.ID,
		Email:     user.Email,
		Username:  user.Username,
		Name:      user.Name,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer depends on.
type UserUsecase interface {
	// RegisterUser creates a new account. Duplicate email or username is a
	// conflict regardless of other field validity.
	RegisterUser(ctx context.Context, input *RegisterUserInput) (*UserOutput, error)

	// Login verifies credentials and issues a bearer token. Unknown email
	// and wrong password produce the same failure.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// ListUsers returns all registered users without password material.
	ListUsers(ctx context.Context) ([]*UserOutput, error)
}
