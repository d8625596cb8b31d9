// Package response provides standardized HTTP response builders for the
// travel decision API.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/skymind/travel-decision-engine/internal/domain"
)

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string            `json:"status"`
	Cache  domain.CacheStats `json:"cache"`
}

// Health writes a health check response including cache effectiveness.
func Health(c echo.Context, cache domain.CacheStats) error {
	return c.JSON(http.StatusOK, &HealthResponse{
		Status: "ok",
		Cache:  cache,
	})
}

// CacheHitHeader marks whether a search response was served from cache.
const CacheHitHeader = "X-Cache-Hit"

// SearchResults writes a 200 OK response with search results and sets the
// cache-hit header for monitoring.
func SearchResults(c echo.Context, result *domain.SearchResult) error {
	if result.Metadata.CacheHit {
		c.Response().Header().Set(CacheHitHeader, "true")
	} else {
		c.Response().Header().Set(CacheHitHeader, "false")
	}
	return c.JSON(http.StatusOK, result)
}
