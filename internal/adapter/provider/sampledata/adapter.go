// Package sampledata provides the fallback source collaborator used when no
// live provider is configured. It serves itineraries from a JSON file whose
// records conform exactly to the canonical Itinerary shape.
package sampledata

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/skymind/travel-decision-engine/internal/domain"
)

// ProviderName is the unique identifier for the sample data provider.
const ProviderName = "sample_data"

// Adapter serves canonical itineraries from a local JSON dataset.
type Adapter struct {
	filePath string
	log      zerolog.Logger
}

// NewAdapter creates an adapter reading from the given dataset file.
func NewAdapter(filePath string, log zerolog.Logger) *Adapter {
	return &Adapter{filePath: filePath, log: log}
}

// Name returns the provider's unique identifier.
func (a *Adapter) Name() string {
	return ProviderName
}

// Search loads the dataset and returns every parseable record. A record
// that fails to decode is skipped and logged; it never aborts the batch.
// Intent filtering happens downstream in the orchestrator.
func (a *Adapter) Search(ctx context.Context, intent domain.SearchIntent) ([]domain.Itinerary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(a.filePath)
	if err != nil {
		a.log.Error().Err(err).Str("path", a.filePath).Msg("Sample dataset unreadable")
		return nil, domain.NewProviderError(ProviderName, fmt.Errorf("read dataset: %w", err))
	}

	var records []json.RawMessage
	if err := json.Unmarshal(data, &records); err != nil {
		a.log.Error().Err(err).Str("path", a.filePath).Msg("Sample dataset is not a JSON array")
		return nil, domain.NewProviderError(ProviderName, fmt.Errorf("parse dataset: %w", err))
	}

	itineraries := make([]domain.Itinerary, 0, len(records))
	for i, record := range records {
		var it domain.Itinerary
		if err := json.Unmarshal(record, &it); err != nil {
			a.log.Warn().Err(err).Int("index", i).Msg("Skipping malformed dataset record")
			continue
		}
		itineraries = append(itineraries, it)
	}

	return itineraries, nil
}

// Ensure Adapter implements domain.FlightProvider at compile time.
var _ domain.FlightProvider = (*Adapter)(nil)
