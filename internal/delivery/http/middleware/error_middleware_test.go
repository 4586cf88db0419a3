package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func handleError(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/product", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	mw.HandleHTTPError(err, c)

	return rec
}

func TestErrorMiddleware_AppError(t *testing.T) {
	rec := handleError(t, domainerrors.ErrProductNotFound)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "PRODUCT_NOT_FOUND")
	assert.Contains(t, body, "Product not found")
}

func TestErrorMiddleware_WrappedAppError(t *testing.T) {
	rec := handleError(t, domainerrors.ErrDuplicateUser.WrapMessage("registration rejected"))

	// The sentinel survives wrapping; the wrap context stays server-side.
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "DUPLICATE_USER")
	assert.NotContains(t, rec.Body.String(), "registration rejected")
}

func TestErrorMiddleware_ValidationError(t *testing.T) {
	rec := handleError(t, domainerrors.NewValidationError(
		domainerrors.FieldError{Field: "email", Message: "Please provide a valid email address"},
		domainerrors.FieldError{Field: "password", Message: "Password must contain a number"},
	))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "VALIDATION_FAILED")
	assert.Contains(t, body, "Please provide a valid email address")
	assert.Contains(t, body, "Password must contain a number")
}

func TestErrorMiddleware_DatabaseDetailStaysServerSide(t *testing.T) {
	rec := handleError(t, domainerrors.NewDatabaseExecuteError(
		errors.New(`pq: connection refused host=10.0.0.5`), "order insert failed"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Internal server error")
	assert.NotContains(t, body, "10.0.0.5")
	assert.NotContains(t, body, "connection refused")
}

func TestErrorMiddleware_EchoHTTPError(t *testing.T) {
	rec := handleError(t, echo.NewHTTPError(http.StatusRequestEntityTooLarge, "Request Entity Too Large"))

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Contains(t, rec.Body.String(), "HTTP_ERROR")
}

func TestErrorMiddleware_UnknownErrorIsGeneric500(t *testing.T) {
	rec := handleError(t, errors.New("nil pointer in some helper"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "INTERNAL_ERROR")
	assert.NotContains(t, body, "nil pointer")
}
