package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Setup registers all middleware on the Echo instance in the correct order:
//  1. RequestID first, so every later log line carries the ID
//  2. RequestLogger second, logging all requests with that ID
//  3. Recover third, catching handler panics
//
// Call before registering routes.
func Setup(e *echo.Echo, log zerolog.Logger) {
	e.Use(RequestID())
	e.Use(RequestLogger(log))
	e.Use(Recover(log))
}

// Chain returns the same middleware as a slice for use with route groups.
func Chain(log zerolog.Logger) []echo.MiddlewareFunc {
	return []echo.MiddlewareFunc{
		RequestID(),
		RequestLogger(log),
		Recover(log),
	}
}
