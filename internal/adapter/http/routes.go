package http

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers all decision-engine API routes.
// The health check stays at the root for load balancers; everything else is
// versioned under /api/v1.
func RegisterRoutes(e *echo.Echo, h *SearchHandler) {
	e.GET("/health", h.Health)

	api := e.Group("/api/v1")
	api.POST("/search", h.Search)
	api.POST("/explain", h.Explain)
	api.GET("/cache/stats", h.CacheStats)
}

// RegisterRoutesWithMiddleware registers routes with middleware applied to
// the versioned group only, leaving /health unwrapped.
func RegisterRoutesWithMiddleware(e *echo.Echo, h *SearchHandler, middleware ...echo.MiddlewareFunc) {
	e.GET("/health", h.Health)

	api := e.Group("/api/v1", middleware...)
	api.POST("/search", h.Search)
	api.POST("/explain", h.Explain)
	api.GET("/cache/stats", h.CacheStats)
}
