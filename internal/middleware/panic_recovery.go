package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"auroramart/internal/errors"

	"github.com/labstack/echo/v4"
)

// PanicRecovery turns a handler panic into a SYSTEM_001 envelope. The panic
// value and stack only reach the log.
func PanicRecovery() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}

				traceID := GetTraceID(c)
				if traceID == "" {
					traceID = "unknown"
				}
				req := c.Request()
				slog.ErrorContext(req.Context(), "Panic recovered",
					slog.String("event_type", "panic_recovered"),
					slog.String("trace_id", traceID),
					slog.String("panic", fmt.Sprint(r)),
					slog.String("method", req.Method),
					slog.String("path", req.URL.Path),
					slog.String("stack_trace", string(debug.Stack())),
				)

				if c.Response().Committed {
					return
				}
				err = c.JSON(http.StatusInternalServerError, errors.NewErrorResponse(errors.SystemInternalError, traceID))
			}()

			return next(c)
		}
	}
}
