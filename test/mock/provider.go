// Package mock provides configurable test doubles for the decision pipeline.
// The gomock-generated mocks in internal/domain cover expectation-style
// testing; these doubles cover integration scenarios that need delays,
// errors, and canned itinerary batches.
package mock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/skymind/travel-decision-engine/internal/domain"
)

// Provider is a configurable implementation of domain.FlightProvider.
// It supports delays, errors, and fixed responses for testing timeouts
// and partial provider failures.
type Provider struct {
	name        string
	itineraries []domain.Itinerary
	err         error
	delay       time.Duration
	callCount   int
	mu          sync.Mutex
}

// NewProvider creates a mock provider with the given name, configured
// through the builder methods.
func NewProvider(name string) *Provider {
	return &Provider{name: name}
}

// WithItineraries configures the provider to return the given batch.
func (p *Provider) WithItineraries(itineraries []domain.Itinerary) *Provider {
	p.itineraries = itineraries
	return p
}

// WithError configures the provider to fail with the given error.
func (p *Provider) WithError(err error) *Provider {
	p.err = err
	return p
}

// WithDelay configures the provider to wait before responding.
// Useful for exercising per-provider timeout behavior.
func (p *Provider) WithDelay(d time.Duration) *Provider {
	p.delay = d
	return p
}

// Name returns the provider's unique identifier.
func (p *Provider) Name() string {
	return p.name
}

// Search implements domain.FlightProvider. It respects context
// cancellation, applies the configured delay, then returns the
// configured batch or error.
func (p *Provider) Search(ctx context.Context, intent domain.SearchIntent) ([]domain.Itinerary, error) {
	p.mu.Lock()
	p.callCount++
	p.mu.Unlock()

	if p.delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(p.delay):
		}
	}

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	if p.err != nil {
		return nil, p.err
	}

	return p.itineraries, nil
}

// CallCount returns the number of times Search was called.
func (p *Provider) CallCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.callCount
}

// Reset resets the call count to zero.
func (p *Provider) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.callCount = 0
}

// Ensure Provider implements domain.FlightProvider at compile time.
var _ domain.FlightProvider = (*Provider)(nil)

// Cache is an in-memory implementation of domain.Cache for integration
// tests, so they do not need a running Redis.
type Cache struct {
	mu      sync.Mutex
	entries map[string][]domain.Itinerary
	hits    int64
	misses  int64
}

// NewCache creates an empty in-memory cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[string][]domain.Itinerary)}
}

// Get implements domain.Cache.
func (c *Cache) Get(ctx context.Context, key string) ([]domain.Itinerary, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	itineraries, ok := c.entries[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return itineraries, ok
}

// Set implements domain.Cache. TTL is ignored; tests control lifetime
// by clearing the cache.
func (c *Cache) Set(ctx context.Context, key string, itineraries []domain.Itinerary, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = itineraries
}

// Delete implements domain.Cache.
func (c *Cache) Delete(ctx context.Context, key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// Stats implements domain.Cache.
func (c *Cache) Stats() domain.CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()

	var hitRate float64
	if total := c.hits + c.misses; total > 0 {
		hitRate = float64(c.hits) / float64(total) * 100
	}
	return domain.CacheStats{
		Enabled: true,
		Hits:    c.hits,
		Misses:  c.misses,
		HitRate: hitRate,
	}
}

// Len returns the number of stored entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Ensure Cache implements domain.Cache at compile time.
var _ domain.Cache = (*Cache)(nil)

// SampleItineraries returns count canonical itineraries attributed to the
// given provider. Prices step up by $50 and departures by two hours, so
// ranking and dedupe tests get a deterministic spread.
func SampleItineraries(provider string, count int) []domain.Itinerary {
	itineraries := make([]domain.Itinerary, count)

	baseTime := time.Date(2026, 9, 15, 8, 0, 0, 0, time.UTC)

	for i := 0; i < count; i++ {
		departure := baseTime.Add(time.Duration(i*2) * time.Hour)
		arrival := departure.Add(6 * time.Hour)
		total := 250.0 + float64(i*50)

		itineraries[i] = domain.Itinerary{
			ID: fmt.Sprintf("%s_%d", provider, i+1),
			Legs: []domain.Leg{
				{
					ID:              fmt.Sprintf("%s_%d-1", provider, i+1),
					Origin:          domain.Airport{Code: "JFK", City: "New York", Country: "US"},
					Destination:     domain.Airport{Code: "LAX", City: "Los Angeles", Country: "US"},
					DepartureTime:   departure,
					ArrivalTime:     arrival,
					DurationMinutes: 360,
					Airline:         "Delta Air Lines",
					AirlineCode:     "DL",
					FlightNumber:    fmt.Sprintf("DL%d", 100+i),
					CabinClass:      domain.CabinEconomy,
				},
			},
			NumStops:             0,
			TotalDurationMinutes: 360,
			IsDirect:             true,
			Price: domain.PriceBreakdown{
				BaseFare:     total * 0.8,
				Taxes:        total * 0.2,
				Total:        total,
				Currency:     "USD",
				NumTravelers: 1,
			},
			Baggage: []domain.Baggage{
				{Type: domain.BaggageCarryOn, Quantity: 1, Included: true},
			},
			Provider: domain.ProviderMetadata{
				Name:        provider,
				ProviderID:  fmt.Sprintf("%d", i+1),
				LastUpdated: baseTime,
				TrustScore:  0.9,
			},
		}
	}

	return itineraries
}
