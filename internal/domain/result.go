package domain

// SearchResult is the outcome of a full pipeline run: the ranked batch plus
// execution metadata. The transport layer consumes it as-is.
type SearchResult struct {
	// Itineraries is the ranked batch, best first
	Itineraries []Itinerary `json:"itineraries"`

	// Metadata describes how the search was executed
	Metadata SearchMetadata `json:"metadata"`
}

// SearchMetadata describes the execution of one search.
type SearchMetadata struct {
	// TotalResults is the number of itineraries returned
	TotalResults int `json:"total_results"`

	// CacheHit indicates the batch came from the cache
	CacheHit bool `json:"cache_hit"`

	// ProvidersQueried lists the providers that were asked
	ProvidersQueried []string `json:"providers_queried"`

	// ProvidersFailed lists the providers that errored or timed out
	ProvidersFailed []string `json:"providers_failed,omitempty"`

	// SearchTimeMs is the total pipeline duration in milliseconds
	SearchTimeMs int64 `json:"search_time_ms"`
}

// NewSearchResult builds a SearchResult, normalizing a nil batch to an
// empty slice so responses always carry an array.
func NewSearchResult(itineraries []Itinerary, metadata SearchMetadata) *SearchResult {
	if itineraries == nil {
		itineraries = []Itinerary{}
	}
	metadata.TotalResults = len(itineraries)
	return &SearchResult{
		Itineraries: itineraries,
		Metadata:    metadata,
	}
}
