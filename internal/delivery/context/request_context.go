// Package context carries request-scoped values between middleware and the
// layers below: the request id, a request-scoped logger, and the
// authenticated user id.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	// KeyRequestID is the key for storing the request ID in context.
	KeyRequestID ContextKey = "request_id"

	// KeyLogger is the key for storing the request-scoped logger in context.
	KeyLogger ContextKey = "logger"

	// KeyUserID is the key for the authenticated user id set by the auth
	// middleware.
	KeyUserID ContextKey = "user_id"

	// HeaderXRequestID is the HTTP header name for the request ID.
	HeaderXRequestID = "X-Request-Id"
)

// WithRequestID returns a new context with the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// GetRequestID extracts the request ID from context. Returns empty string
// when absent.
func GetRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(KeyRequestID).(string); ok {
		return id
	}

	return ""
}

// WithLogger returns a new context with the logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}

// GetLoggerOrDefault extracts the request-scoped logger from the context.
// If not found, returns the provided fallback logger.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}

// WithUserID returns a new context carrying the authenticated user id.
func WithUserID(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, KeyUserID, userID)
}

// GetUserID extracts the authenticated user id from the context.
func GetUserID(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(KeyUserID).(uuid.UUID)

	return id, ok
}
