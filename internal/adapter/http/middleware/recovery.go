package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// RecoveryConfig controls what the recovery middleware logs.
type RecoveryConfig struct {
	// DisablePrintStack omits the stack trace from the panic log entry.
	DisablePrintStack bool
}

// DefaultRecoveryConfig returns the default recovery configuration.
func DefaultRecoveryConfig() RecoveryConfig {
	return RecoveryConfig{
		DisablePrintStack: false,
	}
}

// Recover returns middleware that recovers from panics in the handler chain.
// It logs the panic with stack trace and returns a 500 Internal Server Error;
// the server keeps handling subsequent requests.
func Recover(log zerolog.Logger) echo.MiddlewareFunc {
	return RecoverWithConfig(log, DefaultRecoveryConfig())
}

// RecoverWithConfig returns recovery middleware with custom configuration.
func RecoverWithConfig(log zerolog.Logger, config RecoveryConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					reqID := GetRequestID(c)

					var panicMsg string
					if err, ok := r.(error); ok {
						panicMsg = err.Error()
					} else {
						panicMsg = fmt.Sprintf("%v", r)
					}

					event := log.Error().
						Str("request_id", reqID).
						Str("panic", panicMsg)

					if !config.DisablePrintStack {
						event = event.Str("stack", string(debug.Stack()))
					}

					event.Msg("Panic recovered")

					// Generic error body; internal details stay in the log.
					if !c.Response().Committed {
						c.JSON(http.StatusInternalServerError, map[string]string{
							"code":    "internal_error",
							"message": "An unexpected error occurred",
						})
					}
				}
			}()

			return next(c)
		}
	}
}
