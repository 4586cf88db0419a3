package middleware

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/response"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"

	"github.com/labstack/echo/v4"
)

// ErrorMiddleware converts every error escaping a handler into the unified
// JSON envelope. Nothing propagates uncaught to the process boundary.
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{logger: logger}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	// Validation failures carry the full field-error list.
	var validationErr *domainerrors.ValidationError
	if errors.As(err, &validationErr) {
		_ = response.ValidationFailed(c, validationErr.Fields)

		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			// Upstream failures are logged with their detail but reported
			// generically.
			m.logger.Error("Upstream failure",
				slog.String("code", appErr.ErrorCode()),
				slog.String("details", appErr.Details()),
				slog.String("path", c.Request().URL.Path),
				slog.String("method", c.Request().Method),
			)
		}

		_ = c.JSON(appErr.HTTPCode(), response.Response{
			Success: false,
			Code:    appErr.HTTPCode(),
			Message: appErr.Message(),
			Error: &response.ErrorInfo{
				Code: appErr.ErrorCode(),
			},
		})

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if s, ok := httpErr.Message.(string); ok {
			message = s
		}
		_ = c.JSON(httpErr.Code, response.Response{
			Success: false,
			Code:    httpErr.Code,
			Message: message,
			Error: &response.ErrorInfo{
				Code: "HTTP_ERROR",
			},
		})

		return
	}

	// Anything else is an internal error; log the cause, leak nothing.
	m.logger.Error("Unhandled error",
		slog.String("error", err.Error()),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	_ = c.JSON(http.StatusInternalServerError, response.Response{
		Success: false,
		Code:    http.StatusInternalServerError,
		Message: "Internal server error",
		Error: &response.ErrorInfo{
			Code: "INTERNAL_ERROR",
		},
	})
}
