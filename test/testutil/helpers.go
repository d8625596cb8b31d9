// Package testutil provides fixture builders and helper functions shared by
// unit and integration tests.
package testutil

import (
	"fmt"
	"testing"
	"time"

	"github.com/skymind/travel-decision-engine/internal/domain"
)

// MustParseTime parses a time string in RFC3339 format.
// It fails the test if parsing fails.
func MustParseTime(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t.Fatalf("Failed to parse time %s: %v", value, err)
	}
	return parsed
}

// MustParseDate parses a date string in YYYY-MM-DD format.
// It fails the test if parsing fails.
func MustParseDate(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		t.Fatalf("Failed to parse date %s: %v", value, err)
	}
	return parsed
}

// Ptr returns a pointer to the given value.
// Useful for creating pointers to literals in tests.
func Ptr[T any](v T) *T {
	return &v
}

// FloatPtr returns a pointer to a float64.
func FloatPtr(f float64) *float64 {
	return &f
}

// IntPtr returns a pointer to an int.
func IntPtr(i int) *int {
	return &i
}

// ItineraryOption mutates a fixture itinerary in place.
type ItineraryOption func(*domain.Itinerary)

// NewItinerary builds a direct JFK-LAX economy itinerary with sensible
// defaults, then applies the given options.
func NewItinerary(id string, opts ...ItineraryOption) domain.Itinerary {
	departure := time.Date(2026, 9, 15, 8, 0, 0, 0, time.UTC)
	arrival := departure.Add(6 * time.Hour)

	it := domain.Itinerary{
		ID: id,
		Legs: []domain.Leg{
			{
				ID:              id + "-1",
				Origin:          domain.Airport{Code: "JFK", Name: "John F. Kennedy International", City: "New York", Country: "US"},
				Destination:     domain.Airport{Code: "LAX", Name: "Los Angeles International", City: "Los Angeles", Country: "US"},
				DepartureTime:   departure,
				ArrivalTime:     arrival,
				DurationMinutes: 360,
				Airline:         "Delta Air Lines",
				AirlineCode:     "DL",
				FlightNumber:    "100",
				CabinClass:      domain.CabinEconomy,
			},
		},
		NumStops:             0,
		TotalDurationMinutes: 360,
		IsDirect:             true,
		Price: domain.PriceBreakdown{
			BaseFare:     280,
			Taxes:        70,
			Total:        350,
			Currency:     "USD",
			NumTravelers: 1,
		},
		Baggage: []domain.Baggage{
			{Type: domain.BaggageCarryOn, Quantity: 1, Included: true},
		},
		Provider: domain.ProviderMetadata{
			Name:        "sample_data",
			ProviderID:  id,
			LastUpdated: departure.Add(-24 * time.Hour),
			TrustScore:  0.9,
		},
	}

	for _, opt := range opts {
		opt(&it)
	}
	return it
}

// WithPrice sets the total price, recomputing base fare and taxes with the
// default 80/20 split.
func WithPrice(total float64) ItineraryOption {
	return func(it *domain.Itinerary) {
		it.Price.BaseFare = total * 0.8
		it.Price.Taxes = total * 0.2
		it.Price.Total = total
	}
}

// WithDuration sets the total duration and stretches the final leg's
// arrival to match.
func WithDuration(minutes int) ItineraryOption {
	return func(it *domain.Itinerary) {
		it.TotalDurationMinutes = minutes
		if len(it.Legs) > 0 {
			first := &it.Legs[0]
			last := &it.Legs[len(it.Legs)-1]
			last.ArrivalTime = first.DepartureTime.Add(time.Duration(minutes) * time.Minute)
		}
	}
}

// WithStops inserts stop connecting legs and layovers at fixture hub
// airports, each layover 90 minutes.
func WithStops(stops int) ItineraryOption {
	return func(it *domain.Itinerary) {
		if stops <= 0 || len(it.Legs) == 0 {
			return
		}

		hubs := []domain.Airport{
			{Code: "ORD", Name: "O'Hare International", City: "Chicago", Country: "US"},
			{Code: "DEN", Name: "Denver International", City: "Denver", Country: "US"},
			{Code: "DFW", Name: "Dallas/Fort Worth International", City: "Dallas", Country: "US"},
		}

		base := it.Legs[0]
		segMinutes := it.TotalDurationMinutes / (stops + 1)

		legs := make([]domain.Leg, 0, stops+1)
		layovers := make([]domain.Layover, 0, stops)
		depart := base.DepartureTime
		origin := base.Origin

		for i := 0; i <= stops; i++ {
			dest := base.Destination
			if i < stops {
				dest = hubs[i%len(hubs)]
			}
			leg := base
			leg.ID = fmt.Sprintf("%s-%d", it.ID, i+1)
			leg.Origin = origin
			leg.Destination = dest
			leg.DepartureTime = depart
			leg.ArrivalTime = depart.Add(time.Duration(segMinutes) * time.Minute)
			leg.DurationMinutes = segMinutes
			legs = append(legs, leg)

			if i < stops {
				layovers = append(layovers, domain.Layover{
					Airport:         dest,
					DurationMinutes: 90,
				})
				depart = leg.ArrivalTime.Add(90 * time.Minute)
				origin = dest
			}
		}

		it.Legs = legs
		it.Layovers = layovers
		it.NumStops = stops
		it.IsDirect = false
		it.TotalDurationMinutes = it.TotalDurationMinutes + stops*90
	}
}

// WithLayover replaces the layovers with a single one of the given length.
func WithLayover(minutes int, overnight bool) ItineraryOption {
	return func(it *domain.Itinerary) {
		it.Layovers = []domain.Layover{
			{
				Airport:         domain.Airport{Code: "ORD", City: "Chicago", Country: "US"},
				DurationMinutes: minutes,
				Overnight:       overnight,
			},
		}
		if it.NumStops == 0 {
			it.NumStops = 1
			it.IsDirect = false
		}
	}
}

// WithCheckedBag adds an included checked bag allowance.
func WithCheckedBag() ItineraryOption {
	return func(it *domain.Itinerary) {
		it.Baggage = append(it.Baggage, domain.Baggage{
			Type:     domain.BaggageChecked,
			Quantity: 1,
			Included: true,
		})
	}
}

// WithRiskFlags sets the risk flags.
func WithRiskFlags(flags ...domain.RiskFlag) ItineraryOption {
	return func(it *domain.Itinerary) {
		it.RiskFlags = flags
	}
}

// WithProvider sets the provider attribution.
func WithProvider(name string, trustScore float64) ItineraryOption {
	return func(it *domain.Itinerary) {
		it.Provider.Name = name
		it.Provider.TrustScore = trustScore
	}
}

// WithDeparture shifts the itinerary so its first leg departs at the given
// time, preserving all leg and layover durations.
func WithDeparture(departure time.Time) ItineraryOption {
	return func(it *domain.Itinerary) {
		if len(it.Legs) == 0 {
			return
		}
		shift := departure.Sub(it.Legs[0].DepartureTime)
		for i := range it.Legs {
			it.Legs[i].DepartureTime = it.Legs[i].DepartureTime.Add(shift)
			it.Legs[i].ArrivalTime = it.Legs[i].ArrivalTime.Add(shift)
		}
	}
}

// NewIntent builds a valid one-way JFK to LAX search intent departing on the
// fixture date, with defaults applied.
func NewIntent() domain.SearchIntent {
	intent := domain.SearchIntent{
		Origins:       []string{"JFK"},
		Destinations:  []string{"LAX"},
		DepartureDate: time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
	}
	intent.SetDefaults()
	return intent
}
