// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account. Email and Username are unique across
// the store; PasswordHash is never exposed through any API response.
type User struct {
	ID           uuid.UUID
	Email        string
	Username     string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
