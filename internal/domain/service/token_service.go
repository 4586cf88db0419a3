package service

import (
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// ErrInvalidToken is returned for any token that fails verification: absent,
// malformed, bad signature, or expired. It is a client error, never a server
// error.
var ErrInvalidToken = errors.New("invalid token")

// TokenService issues and verifies the signed bearer tokens used for request
// authentication. Tokens embed the user's unique id and a fixed expiration.
type TokenService interface {
	// Issue creates a signed token identifying the given user.
	Issue(userID uuid.UUID) (string, error)

	// Verify decodes a token string and returns the user id it identifies.
	// Any failure is reported as ErrInvalidToken.
	Verify(tokenString string) (uuid.UUID, error)
}
