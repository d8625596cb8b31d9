package sampledata

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skymind/travel-decision-engine/internal/domain"
	"github.com/skymind/travel-decision-engine/internal/infrastructure/logger"
)

func TestAdapter_Name(t *testing.T) {
	adapter := NewAdapter("", logger.Nop().Logger)
	assert.Equal(t, "sample_data", adapter.Name())
}

func TestAdapter_Search(t *testing.T) {
	tempDir := t.TempDir()

	validRecord := `{
		"id": "smp_test_1",
		"legs": [
			{
				"id": "smp_test_1-1",
				"origin": {"code": "JFK", "city": "New York", "country": "US"},
				"destination": {"code": "LAX", "city": "Los Angeles", "country": "US"},
				"departure_time": "2026-09-15T08:00:00Z",
				"arrival_time": "2026-09-15T14:00:00Z",
				"duration_minutes": 360,
				"airline": "Delta Air Lines",
				"airline_code": "DL",
				"flight_number": "DL423",
				"cabin_class": "economy"
			}
		],
		"total_duration_minutes": 360,
		"num_stops": 0,
		"is_direct": true,
		"price": {"base_fare": 312, "taxes": 78, "total": 390, "currency": "USD", "num_travelers": 1},
		"provider": {"name": "sample_data", "provider_id": "1", "trust_score": 0.9}
	}`

	tests := []struct {
		name        string
		jsonContent string
		wantCount   int
		wantErr     bool
		check       func(*testing.T, []domain.Itinerary)
	}{
		{
			name:        "valid dataset",
			jsonContent: "[" + validRecord + "]",
			wantCount:   1,
			check: func(t *testing.T, itineraries []domain.Itinerary) {
				it := itineraries[0]
				assert.Equal(t, "smp_test_1", it.ID)
				assert.Equal(t, "JFK", it.Legs[0].Origin.Code)
				assert.Equal(t, "LAX", it.Legs[0].Destination.Code)
				assert.Equal(t, 390.0, it.Price.Total)
				assert.Equal(t, "sample_data", it.Provider.Name)
			},
		},
		{
			name:        "empty array",
			jsonContent: "[]",
			wantCount:   0,
		},
		{
			name:        "malformed record is skipped",
			jsonContent: `[` + validRecord + `, "not an object"]`,
			wantCount:   1,
			check: func(t *testing.T, itineraries []domain.Itinerary) {
				assert.Equal(t, "smp_test_1", itineraries[0].ID)
			},
		},
		{
			name:        "not a JSON array",
			jsonContent: `{"itineraries": []}`,
			wantErr:     true,
		},
		{
			name:        "invalid JSON",
			jsonContent: `[{]`,
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(tempDir, tt.name+".json")
			require.NoError(t, os.WriteFile(path, []byte(tt.jsonContent), 0644))

			adapter := NewAdapter(path, logger.Nop().Logger)
			itineraries, err := adapter.Search(context.Background(), domain.SearchIntent{})

			if tt.wantErr {
				require.Error(t, err)
				var providerErr *domain.ProviderError
				require.ErrorAs(t, err, &providerErr)
				assert.Equal(t, ProviderName, providerErr.Provider)
				return
			}

			require.NoError(t, err)
			assert.Len(t, itineraries, tt.wantCount)
			if tt.check != nil {
				tt.check(t, itineraries)
			}
		})
	}
}

func TestAdapter_Search_FileNotFound(t *testing.T) {
	adapter := NewAdapter("/nonexistent/dataset.json", logger.Nop().Logger)

	itineraries, err := adapter.Search(context.Background(), domain.SearchIntent{})

	require.Error(t, err)
	assert.Empty(t, itineraries)

	var providerErr *domain.ProviderError
	require.ErrorAs(t, err, &providerErr)
	assert.Equal(t, ProviderName, providerErr.Provider)
}

func TestAdapter_Search_ContextCancellation(t *testing.T) {
	adapter := NewAdapter("", logger.Nop().Logger)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	itineraries, err := adapter.Search(ctx, domain.SearchIntent{})

	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Empty(t, itineraries)
}

func TestAdapter_Search_WithShippedDataset(t *testing.T) {
	datasetPath := "../../../../data/sample_itineraries.json"

	if _, err := os.Stat(datasetPath); os.IsNotExist(err) {
		t.Skip("shipped dataset not found, skipping")
	}

	adapter := NewAdapter(datasetPath, logger.Nop().Logger)
	itineraries, err := adapter.Search(context.Background(), domain.SearchIntent{})

	require.NoError(t, err)
	assert.NotEmpty(t, itineraries)

	for _, it := range itineraries {
		assert.NotEmpty(t, it.ID)
		assert.NotEmpty(t, it.Legs)
		assert.Greater(t, it.Price.Total, 0.0)
		assert.Equal(t, ProviderName, it.Provider.Name)
	}
}
