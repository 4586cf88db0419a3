// Package response defines the unified JSON envelope for the API.
package response

import (
	"net/http"

	domainerrors "storefront/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// Response unified API response structure
type Response struct {
	Success bool                      `json:"success"`
	Code    int                       `json:"code"`    // HTTP status code
	Message string                    `json:"message"` // User-friendly message
	Data    any                       `json:"data,omitempty"`
	Error   *ErrorInfo                `json:"error,omitempty"`
	Errors  []domainerrors.FieldError `json:"errors,omitempty"` // Field-level validation failures
}

// ErrorInfo detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Business error code, e.g., "PRODUCT_NOT_FOUND"
	Details string `json:"details,omitempty"` // Detailed error description
}

// Success successful response
func Success(c echo.Context, statusCode int, data any, message string) error {
	if message == "" {
		message = "Success"
	}

	return c.JSON(statusCode, Response{
		Success: true,
		Code:    statusCode,
		Message: message,
		Data:    data,
	})
}

// Created 201 response
func Created(c echo.Context, data any, message string) error {
	if message == "" {
		message = "Created"
	}

	return Success(c, http.StatusCreated, data, message)
}

// Error error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, Response{
		Success: false,
		Code:    statusCode,
		Message: message,
		Error: &ErrorInfo{
			Code:    errorCode,
			Details: details,
		},
	})
}

// BadRequest 400 error
func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, "")
}

// Unauthorized 401 error
func Unauthorized(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusUnauthorized, errorCode, message, "")
}

// NotFound 404 error
func NotFound(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusNotFound, errorCode, message, "")
}

// Conflict 409 error
func Conflict(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusConflict, errorCode, message, "")
}

// ValidationFailed 422 response carrying the per-field violation list.
func ValidationFailed(c echo.Context, fields []domainerrors.FieldError) error {
	return c.JSON(http.StatusUnprocessableEntity, Response{
		Success: false,
		Code:    http.StatusUnprocessableEntity,
		Message: "Validation failed",
		Error: &ErrorInfo{
			Code: "VALIDATION_FAILED",
		},
		Errors: fields,
	})
}

// TooManyRequests 429 error
func TooManyRequests(c echo.Context, message string) error {
	return Error(c, http.StatusTooManyRequests, "RATE_LIMITED", message, "")
}

// InternalServerError 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, "")
}
