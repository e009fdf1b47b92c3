package middleware

import (
	"log/slog"
	"strings"

	"auroramart/internal/errors"
	"auroramart/internal/handlers"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// UserIDHeader carries the storefront customer id set by the session layer
	UserIDHeader = "X-User-ID"
)

// UserContext reads the customer id forwarded by the storefront and stores
// it under handlers.UserIDContextKey. A missing header means an anonymous
// shopper. A malformed one is rejected.
func UserContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := strings.TrimSpace(c.Request().Header.Get(UserIDHeader))
			if raw == "" {
				return next(c)
			}

			userID, err := uuid.Parse(raw)
			if err != nil {
				slog.Warn("Rejected malformed user id header",
					"event_type", "user_context_invalid",
					"trace_id", GetTraceID(c),
					"path", c.Request().URL.Path,
				)
				return handlers.SendError(c, errors.CustomerInvalidID)
			}

			c.Set(handlers.UserIDContextKey, userID)
			return next(c)
		}
	}
}
