package integration

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skymind/travel-decision-engine/internal/domain"
	"github.com/skymind/travel-decision-engine/test/mock"
	"github.com/skymind/travel-decision-engine/test/testutil"
)

// TestPipeline_EndToEnd runs the whole decision pipeline against two mock
// providers and verifies ranked, scored, deduplicated, advised output.
func TestPipeline_EndToEnd(t *testing.T) {
	providerA := mock.NewProvider("provider_a").
		WithItineraries(mock.SampleItineraries("provider_a", 3))
	providerB := mock.NewProvider("provider_b").
		WithItineraries([]domain.Itinerary{
			testutil.NewItinerary("b_1", testutil.WithPrice(199), testutil.WithStops(1)),
		})

	orch := NewOrchestrator([]domain.FlightProvider{providerA, providerB}, nil)

	result, err := orch.Search(context.Background(), testutil.NewIntent())
	require.NoError(t, err)

	require.Len(t, result.Itineraries, 4)
	assert.Equal(t, 4, result.Metadata.TotalResults)
	assert.False(t, result.Metadata.CacheHit)
	assert.ElementsMatch(t, []string{"provider_a", "provider_b"}, result.Metadata.ProvidersQueried)
	assert.Empty(t, result.Metadata.ProvidersFailed)

	for i, it := range result.Itineraries {
		require.NotNil(t, it.Score, "itinerary %d should be scored", i)
		require.NotNil(t, it.ScoreBreakdown, "itinerary %d should carry a breakdown", i)
		assert.NotEmpty(t, it.Explanation, "itinerary %d should be explained", i)
		require.NotNil(t, it.PriceAdvisory, "itinerary %d should carry an advisory", i)
		if i > 0 {
			assert.GreaterOrEqual(t, result.Itineraries[i-1].ScoreValue(), it.ScoreValue(),
				"batch should be ordered best first")
		}
	}
}

// TestPipeline_DeduplicatesAcrossProviders verifies that the same flights
// sold by two providers collapse to one result each.
func TestPipeline_DeduplicatesAcrossProviders(t *testing.T) {
	// Both providers sell the same two flights; only the IDs and prices differ.
	batchA := mock.SampleItineraries("provider_a", 2)
	batchB := mock.SampleItineraries("provider_b", 2)
	batchB[0].Price.Total = batchA[0].Price.Total + 25
	batchB[1].Price.Total = batchA[1].Price.Total - 25

	providerA := mock.NewProvider("provider_a").WithItineraries(batchA)
	providerB := mock.NewProvider("provider_b").WithItineraries(batchB)

	orch := NewOrchestrator([]domain.FlightProvider{providerA, providerB}, nil)

	result, err := orch.Search(context.Background(), testutil.NewIntent())
	require.NoError(t, err)

	require.Len(t, result.Itineraries, 2, "duplicate flights should collapse")

	ids := make(map[string]bool)
	for _, it := range result.Itineraries {
		ids[it.ID] = true
	}
	assert.True(t, ids["provider_a_1"], "cheaper copy of the first flight should win")
	assert.True(t, ids["provider_b_2"], "cheaper copy of the second flight should win")
}

// TestPipeline_CacheRoundTrip verifies the cache-first strategy: the second
// identical search is served from cache without touching providers.
func TestPipeline_CacheRoundTrip(t *testing.T) {
	provider := mock.NewProvider("provider_a").
		WithItineraries(mock.SampleItineraries("provider_a", 3))
	cache := mock.NewCache()

	orch := NewOrchestrator([]domain.FlightProvider{provider}, cache)
	intent := testutil.NewIntent()

	first, err := orch.Search(context.Background(), intent)
	require.NoError(t, err)
	assert.False(t, first.Metadata.CacheHit)
	assert.Equal(t, 1, provider.CallCount())

	second, err := orch.Search(context.Background(), intent)
	require.NoError(t, err)
	assert.True(t, second.Metadata.CacheHit)
	assert.Equal(t, 1, provider.CallCount(), "cached search should not hit providers")

	require.Len(t, second.Itineraries, len(first.Itineraries))
	for i := range first.Itineraries {
		assert.Equal(t, first.Itineraries[i].ID, second.Itineraries[i].ID)
	}

	stats := cache.Stats()
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
}

// TestPipeline_PartialProviderFailure verifies that one failing provider
// does not discard the others' results.
func TestPipeline_PartialProviderFailure(t *testing.T) {
	good := mock.NewProvider("good").
		WithItineraries(mock.SampleItineraries("good", 2))
	bad := mock.NewProvider("bad").
		WithError(domain.NewRetryableProviderError("bad", errors.New("connection refused")))

	orch := NewOrchestrator([]domain.FlightProvider{good, bad}, nil)

	result, err := orch.Search(context.Background(), testutil.NewIntent())
	require.NoError(t, err)

	assert.Len(t, result.Itineraries, 2)
	assert.ElementsMatch(t, []string{"good", "bad"}, result.Metadata.ProvidersQueried)
	assert.Equal(t, []string{"bad"}, result.Metadata.ProvidersFailed)
}

// TestPipeline_SlowProviderIsolated verifies the per-provider timeout.
func TestPipeline_SlowProviderIsolated(t *testing.T) {
	fast := mock.NewProvider("fast").
		WithItineraries(mock.SampleItineraries("fast", 2))
	slow := mock.NewProvider("slow").
		WithDelay(5 * time.Second).
		WithItineraries(mock.SampleItineraries("slow", 3))

	orch := NewOrchestrator([]domain.FlightProvider{fast, slow}, nil)

	start := time.Now()
	result, err := orch.Search(context.Background(), testutil.NewIntent())
	elapsed := time.Since(start)

	require.NoError(t, err)
	assert.Len(t, result.Itineraries, 2, "only the fast provider's batch survives")
	assert.Contains(t, result.Metadata.ProvidersFailed, "slow")
	assert.Less(t, elapsed, 3*time.Second, "slow provider must not stall the search")
}

// TestPipeline_IntentFiltersApplied verifies that hard constraints from the
// intent drop non-matching candidates before ranking.
func TestPipeline_IntentFiltersApplied(t *testing.T) {
	provider := mock.NewProvider("provider_a").WithItineraries([]domain.Itinerary{
		testutil.NewItinerary("direct_cheap", testutil.WithPrice(300)),
		testutil.NewItinerary("direct_expensive", testutil.WithPrice(900)),
		testutil.NewItinerary("connection", testutil.WithPrice(200), testutil.WithStops(1)),
	})

	orch := NewOrchestrator([]domain.FlightProvider{provider}, nil)

	intent := testutil.NewIntent()
	intent.NonstopOnly = true
	maxPrice := 500.0
	intent.MaxPrice = &maxPrice

	result, err := orch.Search(context.Background(), intent)
	require.NoError(t, err)

	require.Len(t, result.Itineraries, 1)
	assert.Equal(t, "direct_cheap", result.Itineraries[0].ID)
}

// TestPipeline_PriorityChangesOrder verifies that the ranking profile in the
// intent changes which candidate wins.
func TestPipeline_PriorityChangesOrder(t *testing.T) {
	provider := mock.NewProvider("provider_a").WithItineraries([]domain.Itinerary{
		testutil.NewItinerary("cheap_slow", testutil.WithPrice(150), testutil.WithStops(2)),
		testutil.NewItinerary("fast_pricey", testutil.WithPrice(600)),
	})

	orch := NewOrchestrator([]domain.FlightProvider{provider}, nil)

	cheapIntent := testutil.NewIntent()
	cheapIntent.Priority = domain.PriorityCheap
	cheapResult, err := orch.Search(context.Background(), cheapIntent)
	require.NoError(t, err)
	require.NotEmpty(t, cheapResult.Itineraries)
	assert.Equal(t, "cheap_slow", cheapResult.Itineraries[0].ID)

	fastIntent := testutil.NewIntent()
	fastIntent.Priority = domain.PriorityFast
	fastResult, err := orch.Search(context.Background(), fastIntent)
	require.NoError(t, err)
	require.NotEmpty(t, fastResult.Itineraries)
	assert.Equal(t, "fast_pricey", fastResult.Itineraries[0].ID)
}

// TestPipeline_InvalidIntent verifies validation happens before any
// provider is contacted.
func TestPipeline_InvalidIntent(t *testing.T) {
	provider := mock.NewProvider("provider_a").
		WithItineraries(mock.SampleItineraries("provider_a", 1))

	orch := NewOrchestrator([]domain.FlightProvider{provider}, nil)

	_, err := orch.Search(context.Background(), domain.SearchIntent{})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidIntent))
	assert.Zero(t, provider.CallCount())
}
