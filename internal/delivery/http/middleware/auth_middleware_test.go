package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTokenService struct {
	userID uuid.UUID
}

func (s *stubTokenService) Issue(userID uuid.UUID) (string, error) {
	return "valid-token", nil
}

func (s *stubTokenService) Verify(tokenString string) (uuid.UUID, error) {
	if tokenString != "valid-token" {
		return uuid.Nil, service.ErrInvalidToken
	}

	return s.userID, nil
}

func invokeAuth(t *testing.T, authHeader string, tokenSvc service.TokenService) (*httptest.ResponseRecorder, echo.Context, bool) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/order", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handlerCalled := false
	handler := NewAuthMiddleware(tokenSvc).Authenticate(func(c echo.Context) error {
		handlerCalled = true

		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))

	return rec, c, handlerCalled
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	rec, _, handlerCalled := invokeAuth(t, "", &stubTokenService{})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Access denied, no token provided")
	assert.False(t, handlerCalled)
}

func TestAuthMiddleware_NotBearerScheme(t *testing.T) {
	rec, _, handlerCalled := invokeAuth(t, "Basic dXNlcjpwYXNz", &stubTokenService{})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid token")
	assert.False(t, handlerCalled)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	rec, _, handlerCalled := invokeAuth(t, "Bearer garbage", &stubTokenService{})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid token")
	assert.False(t, handlerCalled)
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	userID := uuid.New()
	rec, c, handlerCalled := invokeAuth(t, "Bearer valid-token", &stubTokenService{userID: userID})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, handlerCalled)

	// Identity is available both on the echo context and the request context.
	assert.Equal(t, userID, c.Get("userID"))
	ctxUserID, ok := deliverycontext.GetUserID(c.Request().Context())
	require.True(t, ok)
	assert.Equal(t, userID, ctxUserID)
}

type failingTokenService struct{}

func (s *failingTokenService) Issue(uuid.UUID) (string, error) {
	return "", errors.New("unreachable")
}

func (s *failingTokenService) Verify(string) (uuid.UUID, error) {
	return uuid.Nil, service.ErrInvalidToken
}

func TestAuthMiddleware_ExpiredTokenIsBadRequest(t *testing.T) {
	rec, _, handlerCalled := invokeAuth(t, "Bearer valid-token", &failingTokenService{})

	// Verification failures, expiry included, are client errors rather
	// than unauthorized.
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, handlerCalled)
}
