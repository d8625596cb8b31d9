package http

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/skymind/travel-decision-engine/internal/adapter/http/response"
	"github.com/skymind/travel-decision-engine/internal/domain"
	"github.com/skymind/travel-decision-engine/internal/usecase"
)

// maxSearchResults caps the itineraries returned by the search endpoint.
// The full ranked batch still feeds explanations and the cache.
const maxSearchResults = 20

// SearchHandler handles HTTP requests for the decision pipeline endpoints.
type SearchHandler struct {
	useCase usecase.SearchUseCase
	cache   domain.Cache
}

// NewSearchHandler creates a SearchHandler. The cache may be nil; the cache
// stats endpoint then reports a disabled cache.
func NewSearchHandler(uc usecase.SearchUseCase, cache domain.Cache) *SearchHandler {
	return &SearchHandler{
		useCase: uc,
		cache:   cache,
	}
}

// Search handles POST /api/v1/search
//
// @Summary Search and rank itineraries
// @Description Runs the full decision pipeline: provider fan-out, normalization, deduplication, ranking, and price advisories
// @Tags search
// @Accept json
// @Produce json
// @Param request body SearchRequest true "Search intent"
// @Success 200 {object} domain.SearchResult
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 504 {object} response.ErrorDetail "Gateway timeout"
// @Router /api/v1/search [post]
func (h *SearchHandler) Search(c echo.Context) error {
	var req SearchRequest

	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	result, err := h.useCase.Search(c.Request().Context(), req.ToIntent())
	if err != nil {
		return h.handleError(c, err)
	}

	if len(result.Itineraries) > maxSearchResults {
		result.Itineraries = result.Itineraries[:maxSearchResults]
	}

	return response.SearchResults(c, result)
}

// Explain handles POST /api/v1/explain
//
// @Summary Explain the top ranked itineraries
// @Description Returns per-rank explanations with winner categories, tradeoff suggestions, and alternatives for the top 5 results
// @Tags search
// @Accept json
// @Produce json
// @Param request body SearchRequest true "Search intent"
// @Success 200 {array} Explanation
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Router /api/v1/explain [post]
func (h *SearchHandler) Explain(c echo.Context) error {
	var req SearchRequest

	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	result, err := h.useCase.Search(c.Request().Context(), req.ToIntent())
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, buildExplanations(result.Itineraries))
}

// CacheStats handles GET /api/v1/cache/stats
//
// @Summary Cache effectiveness statistics
// @Tags observability
// @Produce json
// @Success 200 {object} domain.CacheStats
// @Router /api/v1/cache/stats [get]
func (h *SearchHandler) CacheStats(c echo.Context) error {
	return response.OK(c, h.cacheStats())
}

// Health handles GET /health
//
// @Summary Health check
// @Tags observability
// @Produce json
// @Success 200 {object} response.HealthResponse
// @Router /health [get]
func (h *SearchHandler) Health(c echo.Context) error {
	return response.Health(c, h.cacheStats())
}

func (h *SearchHandler) cacheStats() domain.CacheStats {
	if h.cache == nil {
		return domain.CacheStats{}
	}
	return h.cache.Stats()
}

// handleValidationError handles validation errors and returns a 400 response.
func (h *SearchHandler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}

	// Fallback for non-structured validation errors
	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps pipeline errors to appropriate HTTP responses.
func (h *SearchHandler) handleError(c echo.Context, err error) error {
	if errors.Is(err, domain.ErrInvalidIntent) {
		return response.ValidationErrorWithMessage(c, err.Error())
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return response.GatewayTimeout(c)
	}

	if errors.Is(err, context.Canceled) {
		return response.RequestCancelled(c)
	}

	return response.InternalServerError(c)
}
