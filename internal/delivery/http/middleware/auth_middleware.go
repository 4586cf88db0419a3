// Package middleware contains the HTTP middleware chain: request identity,
// rate limiting, bearer-token authentication, and error conversion.
package middleware

import (
	"strings"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware gates routes behind bearer-token authentication. It is
// purely a gate: no database access happens here.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate verifies the bearer token and attaches the decoded user id to
// the request context. A missing header is rejected as access denied (401);
// a present but unverifiable token as invalid (400).
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "ACCESS_DENIED", "Access denied, no token provided")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return response.BadRequest(c, "INVALID_TOKEN", "Invalid token")
		}

		userID, err := m.tokenSvc.Verify(tokenString)
		if err != nil {
			return response.BadRequest(c, "INVALID_TOKEN", "Invalid token")
		}

		// Make the identity available both to handlers and to the layers
		// below through the request context.
		c.Set("userID", userID)
		req := c.Request()
		c.SetRequest(req.WithContext(deliverycontext.WithUserID(req.Context(), userID)))

		return next(c)
	}
}
