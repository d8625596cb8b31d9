package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// RequestLogger returns middleware that logs HTTP requests on completion
// with method, path, status, duration, and client info. Log level follows
// the response status: 5xx at error, 4xx at warn, everything else at info.
func RequestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				// Let Echo's error handler process the error
				c.Error(err)
			}

			duration := time.Since(start)
			reqID := GetRequestID(c)

			req := c.Request()
			res := c.Response()

			var event *zerolog.Event
			status := res.Status
			switch {
			case status >= 500:
				event = log.Error()
			case status >= 400:
				event = log.Warn()
			default:
				event = log.Info()
			}

			event.
				Str("request_id", reqID).
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Str("query", req.URL.RawQuery).
				Int("status", status).
				Int64("duration_ms", duration.Milliseconds()).
				Int64("bytes_out", res.Size).
				Str("client_ip", c.RealIP()).
				Str("user_agent", req.UserAgent()).
				Msg("HTTP request")

			// Error already handled via c.Error above.
			return nil
		}
	}
}
