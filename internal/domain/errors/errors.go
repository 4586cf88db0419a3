// Package errors defines the application error taxonomy. Every error that
// crosses a handler boundary is either one of these or gets converted to a
// generic internal error by the HTTP error handler.
package errors

import (
	"net/http"

	"storefront/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails returns a copy of the error carrying detailed information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Input errors
	ErrMissingFields = NewBaseError(
		http.StatusBadRequest,
		"MISSING_FIELDS",
		"All fields are required",
		"",
	)

	ErrInvalidInput = NewBaseError(
		http.StatusBadRequest,
		"INVALID_INPUT",
		"Invalid request data",
		"",
	)

	// User-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrDuplicateUser = NewBaseError(
		http.StatusConflict,
		"DUPLICATE_USER",
		"Email or username already exists",
		"",
	)

	// Authentication errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid credentials",
		"",
	)

	ErrAccessDenied = NewBaseError(
		http.StatusUnauthorized,
		"ACCESS_DENIED",
		"Access denied, no token provided",
		"",
	)

	ErrInvalidToken = NewBaseError(
		http.StatusBadRequest,
		"INVALID_TOKEN",
		"Invalid token",
		"",
	)

	// Catalog errors
	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"Product not found",
		"",
	)

	ErrImageUploadFailed = NewBaseError(
		http.StatusInternalServerError,
		"IMAGE_UPLOAD_FAILED",
		"Failed to upload image",
		"",
	)

	// Order errors
	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"Order not found",
		"",
	)

	ErrInvalidOrderData = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ORDER_DATA",
		"Invalid order data",
		"",
	)

	// Upstream errors. Details stay server-side; clients only see the message.
	ErrDatabase = NewBaseError(
		http.StatusInternalServerError,
		"DATABASE_ERROR",
		"Internal server error",
		"",
	)
)

// NewDatabaseExecuteError wraps an upstream database error so the original
// cause is logged server-side while the client sees a generic failure.
func NewDatabaseExecuteError(err error, message string) error {
	return errors.Wrap(ErrDatabase.WithDetails(err.Error()), message)
}
