package errors

import (
	"net/http"
	"strings"
)

// FieldError pairs a request field with the rule message it violated.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries the full list of field violations for a request.
// It maps to HTTP 422, distinct from missing-input (400), auth (401/400),
// and not-found (404) failures.
type ValidationError struct {
	Fields []FieldError
}

// NewValidationError creates a ValidationError from field violations.
func NewValidationError(fields ...FieldError) *ValidationError {
	return &ValidationError{Fields: fields}
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Field+": "+f.Message)
	}

	return "validation failed: " + strings.Join(msgs, "; ")
}

// HTTPCode returns the HTTP status code
func (e *ValidationError) HTTPCode() int {
	return http.StatusUnprocessableEntity
}

// ErrorCode returns the business error code
func (e *ValidationError) ErrorCode() string {
	return "VALIDATION_FAILED"
}

// Message returns the user-friendly error message
func (e *ValidationError) Message() string {
	return "Validation failed"
}

// Details returns detailed error information
func (e *ValidationError) Details() string {
	return e.Error()
}
