package domain

import (
	"context"
	"time"
)

// FlightProvider is a source collaborator that returns zero or more canonical
// itineraries for a search intent. Implementations must never panic outward;
// any internal failure (auth, network, parse) should resolve to an empty
// slice or an error, logged by the adapter itself. A malformed individual
// record is skipped, not escalated.
type FlightProvider interface {
	// Name returns the provider's unique identifier.
	Name() string

	// Search fetches itineraries matching the intent. The context carries
	// the per-provider timeout; implementations should honor cancellation.
	Search(ctx context.Context, intent SearchIntent) ([]Itinerary, error)
}

// Cache is the key-value collaborator for ranked search results. All
// operations must be safe to no-op when the backing store is unreachable:
// Get degrades to a miss, Set and Delete do nothing. Implementations must
// be safe for concurrent use by multiple in-flight requests.
type Cache interface {
	// Get returns the cached ranked batch for key, and whether it was found.
	Get(ctx context.Context, key string) ([]Itinerary, bool)

	// Set stores the ranked batch under key with the given time-to-live.
	Set(ctx context.Context, key string, itineraries []Itinerary, ttl time.Duration)

	// Delete removes the entry for key.
	Delete(ctx context.Context, key string)

	// Stats reports hit/miss counters for observability.
	Stats() CacheStats
}

// CacheStats summarizes cache effectiveness.
type CacheStats struct {
	// Enabled is false when the cache is disabled or unreachable at startup
	Enabled bool `json:"enabled"`

	// Hits is the number of successful lookups
	Hits int64 `json:"hits"`

	// Misses is the number of lookups that found nothing
	Misses int64 `json:"misses"`

	// HitRate is hits / (hits + misses) as a percentage, 0 when unused
	HitRate float64 `json:"hit_rate"`
}
