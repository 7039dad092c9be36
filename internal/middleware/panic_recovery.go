package middleware

import (
	"fmt"
	"log/slog"
	"runtime/debug"

	apperrors "personal-finance/internal/errors"
	"personal-finance/internal/handlers"

	"github.com/labstack/echo/v4"
)

// PanicRecovery turns a panicking handler into a SYSTEM_001 response and logs the stack
func PanicRecovery(logger *slog.Logger) echo.MiddlewareFunc {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}

				logger.Error("panic recovered",
					"trace_id", GetTraceID(c),
					"panic", fmt.Sprintf("%v", r),
					"stack_trace", string(debug.Stack()),
					"path", c.Request().URL.Path,
					"method", c.Request().Method,
				)

				if c.Response().Committed {
					return
				}
				if sendErr := handlers.SendError(c, apperrors.SystemInternalError); sendErr != nil {
					logger.Error("failed to send panic recovery response", "error", sendErr)
				}
				err = nil
			}()

			return next(c)
		}
	}
}
