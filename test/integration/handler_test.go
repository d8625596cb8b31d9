package integration

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skymind/travel-decision-engine/internal/domain"
	"github.com/skymind/travel-decision-engine/test/mock"
)

// TestAPI_SearchEndToEnd drives the search endpoint through the real
// orchestrator with mock providers behind it.
func TestAPI_SearchEndToEnd(t *testing.T) {
	provider := mock.NewProvider("provider_a").
		WithItineraries(mock.SampleItineraries("provider_a", 3))
	ts := NewTestServer(NewOrchestrator([]domain.FlightProvider{provider}, nil), nil)

	resp := ts.SearchRequest(DefaultSearchBody())

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "false", resp.Headers.Get("X-Cache-Hit"))

	result, err := resp.ParseSearchResult()
	require.NoError(t, err)
	assert.Len(t, result.Itineraries, 3)
	assert.Equal(t, []string{"provider_a"}, result.Metadata.ProvidersQueried)

	for _, it := range result.Itineraries {
		assert.NotNil(t, it.Score)
		assert.NotEmpty(t, it.Explanation)
		assert.NotNil(t, it.PriceAdvisory)
	}
}

// TestAPI_SearchCacheHitHeader verifies the cache-hit header flips on the
// second identical request.
func TestAPI_SearchCacheHitHeader(t *testing.T) {
	provider := mock.NewProvider("provider_a").
		WithItineraries(mock.SampleItineraries("provider_a", 2))
	cache := mock.NewCache()
	ts := NewTestServer(NewOrchestrator([]domain.FlightProvider{provider}, cache), cache)

	first := ts.SearchRequest(DefaultSearchBody())
	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "false", first.Headers.Get("X-Cache-Hit"))

	second := ts.SearchRequest(DefaultSearchBody())
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, "true", second.Headers.Get("X-Cache-Hit"))
	assert.Equal(t, 1, provider.CallCount())
}

// TestAPI_SearchValidation verifies malformed intents are rejected before
// the pipeline runs.
func TestAPI_SearchValidation(t *testing.T) {
	provider := mock.NewProvider("provider_a")
	ts := NewTestServer(NewOrchestrator([]domain.FlightProvider{provider}, nil), nil)

	body := DefaultSearchBody()
	body.Origins = nil
	body.DepartureDate = "not-a-date"

	resp := ts.SearchRequest(body)

	require.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Zero(t, provider.CallCount())

	errResp, err := resp.ParseError()
	require.NoError(t, err)
	assert.Equal(t, "validation_error", errResp["code"])

	details, ok := errResp["details"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, details, "origins")
	assert.Contains(t, details, "departure_date")
}

// TestAPI_SearchFilters verifies constraints round-trip from the request
// body into the pipeline.
func TestAPI_SearchFilters(t *testing.T) {
	batch := mock.SampleItineraries("provider_a", 3) // 250, 300, 350
	provider := mock.NewProvider("provider_a").WithItineraries(batch)
	ts := NewTestServer(NewOrchestrator([]domain.FlightProvider{provider}, nil), nil)

	maxPrice := 300.0
	body := DefaultSearchBody()
	body.MaxPrice = &maxPrice
	body.Priority = "cheap"

	resp := ts.SearchRequest(body)

	require.Equal(t, http.StatusOK, resp.Code)
	result, err := resp.ParseSearchResult()
	require.NoError(t, err)

	require.Len(t, result.Itineraries, 1, "cap should drop everything priced above it")
	assert.Equal(t, "provider_a_1", result.Itineraries[0].ID)
}

// TestAPI_ExplainEndToEnd verifies the explain endpoint over real results.
func TestAPI_ExplainEndToEnd(t *testing.T) {
	provider := mock.NewProvider("provider_a").
		WithItineraries(mock.SampleItineraries("provider_a", 3))
	ts := NewTestServer(NewOrchestrator([]domain.FlightProvider{provider}, nil), nil)

	resp := ts.ExplainRequest(DefaultSearchBody())

	require.Equal(t, http.StatusOK, resp.Code)

	var explanations []map[string]interface{}
	require.NoError(t, json.Unmarshal(resp.Body, &explanations))
	require.Len(t, explanations, 3)

	first := explanations[0]
	assert.Equal(t, float64(1), first["rank"])
	assert.Equal(t, "best_overall", first["category"])
	assert.NotEmpty(t, first["explanation"])
	assert.Contains(t, first, "tradeoffs")
	assert.Contains(t, first, "alternatives")
}

// TestAPI_Health verifies the health endpoint reports cache state.
func TestAPI_Health(t *testing.T) {
	cache := mock.NewCache()
	provider := mock.NewProvider("provider_a")
	ts := NewTestServer(NewOrchestrator([]domain.FlightProvider{provider}, cache), cache)

	resp := ts.HealthRequest()

	require.Equal(t, http.StatusOK, resp.Code)

	var health map[string]interface{}
	require.NoError(t, json.Unmarshal(resp.Body, &health))
	assert.Equal(t, "ok", health["status"])

	cacheStats, ok := health["cache"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, true, cacheStats["enabled"])
}

// TestAPI_CacheStats verifies the stats endpoint reflects pipeline traffic.
func TestAPI_CacheStats(t *testing.T) {
	provider := mock.NewProvider("provider_a").
		WithItineraries(mock.SampleItineraries("provider_a", 1))
	cache := mock.NewCache()
	ts := NewTestServer(NewOrchestrator([]domain.FlightProvider{provider}, cache), cache)

	ts.SearchRequest(DefaultSearchBody()) // miss
	ts.SearchRequest(DefaultSearchBody()) // hit

	resp := ts.Do(Request{Method: http.MethodGet, Path: "/api/v1/cache/stats"})
	require.Equal(t, http.StatusOK, resp.Code)

	var stats domain.CacheStats
	require.NoError(t, json.Unmarshal(resp.Body, &stats))
	assert.True(t, stats.Enabled)
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
	assert.Equal(t, 50.0, stats.HitRate)
}
