package middleware

import (
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequestID attaches a request id and a request-scoped logger to the
// request context so lower layers log with correlation.
func RequestID(baseLogger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := c.Request().Header.Get(deliverycontext.HeaderXRequestID)
			if requestID == "" {
				requestID = uuid.New().String()
			}
			c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

			scoped := baseLogger.With(slog.String("requestId", requestID))

			req := c.Request()
			ctx := deliverycontext.WithRequestID(req.Context(), requestID)
			ctx = deliverycontext.WithLogger(ctx, scoped)
			c.SetRequest(req.WithContext(ctx))

			return next(c)
		}
	}
}
