package domain

import (
	"fmt"
	"regexp"
	"time"
)

// Priority selects the weight profile used to rank results.
type Priority string

// Named ranking priorities. Unrecognized values fall back to PriorityBalanced
// at ranking time rather than failing validation.
const (
	PriorityCheap    Priority = "cheap"
	PriorityFast     Priority = "fast"
	PriorityComfort  Priority = "comfort"
	PriorityBalanced Priority = "balanced"
)

// airportCodeRegex matches valid IATA airport codes (3 uppercase letters).
var airportCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)

// SearchIntent captures what the traveler is asking for: where, when, and
// under which constraints and preferences.
type SearchIntent struct {
	// Origins is the set of acceptable origin airport codes
	Origins []string `json:"origins"`

	// Destinations is the set of acceptable destination airport codes
	Destinations []string `json:"destinations"`

	// DepartureDate is the desired departure date
	DepartureDate time.Time `json:"departure_date"`

	// ReturnDate is the optional return date for round trips
	ReturnDate *time.Time `json:"return_date,omitempty"`

	// FlexibleDates allows searching adjacent dates
	FlexibleDates bool `json:"flexible_dates"`

	// DateFlexibilityDays is the +/- day window when dates are flexible (0-7)
	DateFlexibilityDays int `json:"date_flexibility_days"`

	// NearbyAirports allows including airports near the requested ones
	NearbyAirports bool `json:"nearby_airports"`

	// CabinClass is the requested cabin (default: economy)
	CabinClass CabinClass `json:"cabin_class"`

	// NumTravelers is the traveler count (1-9, default: 1)
	NumTravelers int `json:"num_travelers"`

	// MaxStops excludes itineraries with more stops than this value
	MaxStops *int `json:"max_stops,omitempty"`

	// NonstopOnly excludes anything that is not a direct flight
	NonstopOnly bool `json:"nonstop_only"`

	// MaxPrice excludes itineraries with a total above this amount
	MaxPrice *float64 `json:"max_price,omitempty"`

	// MaxDurationHours excludes itineraries longer than this
	MaxDurationHours *float64 `json:"max_duration_hours,omitempty"`

	// NoRedEyes excludes itineraries with any red-eye leg
	NoRedEyes bool `json:"no_red_eyes"`

	// NoOvernightLayovers excludes itineraries with any overnight layover
	NoOvernightLayovers bool `json:"no_overnight_layovers"`

	// Priority selects the ranking weight profile (cheap, fast, comfort, balanced)
	Priority Priority `json:"priority"`
}

// Validate checks the intent for structural correctness.
// Returns a wrapped ErrInvalidIntent error on the first violation found.
func (s *SearchIntent) Validate() error {
	if len(s.Origins) == 0 {
		return fmt.Errorf("%w: at least one origin is required", ErrInvalidIntent)
	}
	for _, code := range s.Origins {
		if !airportCodeRegex.MatchString(code) {
			return fmt.Errorf("%w: origin must be a valid 3-letter IATA code, got %q", ErrInvalidIntent, code)
		}
	}

	if len(s.Destinations) == 0 {
		return fmt.Errorf("%w: at least one destination is required", ErrInvalidIntent)
	}
	for _, code := range s.Destinations {
		if !airportCodeRegex.MatchString(code) {
			return fmt.Errorf("%w: destination must be a valid 3-letter IATA code, got %q", ErrInvalidIntent, code)
		}
	}

	if s.DepartureDate.IsZero() {
		return fmt.Errorf("%w: departure date is required", ErrInvalidIntent)
	}
	if s.ReturnDate != nil && s.ReturnDate.Before(s.DepartureDate) {
		return fmt.Errorf("%w: return date must not be before departure date", ErrInvalidIntent)
	}

	if s.CabinClass != "" && !s.CabinClass.IsValid() {
		return fmt.Errorf("%w: cabin class must be one of: economy, premium_economy, business, first; got %q", ErrInvalidIntent, s.CabinClass)
	}

	if s.NumTravelers < 1 {
		return fmt.Errorf("%w: number of travelers must be at least 1", ErrInvalidIntent)
	}
	if s.NumTravelers > 9 {
		return fmt.Errorf("%w: number of travelers cannot exceed 9", ErrInvalidIntent)
	}

	if s.DateFlexibilityDays < 0 || s.DateFlexibilityDays > 7 {
		return fmt.Errorf("%w: date flexibility must be between 0 and 7 days", ErrInvalidIntent)
	}

	if s.MaxStops != nil && *s.MaxStops < 0 {
		return fmt.Errorf("%w: max stops cannot be negative", ErrInvalidIntent)
	}
	if s.MaxPrice != nil && *s.MaxPrice <= 0 {
		return fmt.Errorf("%w: max price must be positive", ErrInvalidIntent)
	}
	if s.MaxDurationHours != nil && *s.MaxDurationHours <= 0 {
		return fmt.Errorf("%w: max duration must be positive", ErrInvalidIntent)
	}

	return nil
}

// SetDefaults applies default values to empty optional fields.
func (s *SearchIntent) SetDefaults() {
	if s.NumTravelers == 0 {
		s.NumTravelers = 1
	}
	if s.CabinClass == "" {
		s.CabinClass = CabinEconomy
	}
	if s.Priority == "" {
		s.Priority = PriorityBalanced
	}
}

// Matches reports whether an itinerary satisfies the intent's route and
// constraint filters. Origin membership is checked against the first leg,
// destination membership against the last leg.
func (s *SearchIntent) Matches(it Itinerary) bool {
	if len(it.Legs) == 0 {
		return false
	}

	if !containsCode(s.Origins, it.Legs[0].Origin.Code) {
		return false
	}
	if !containsCode(s.Destinations, it.Legs[len(it.Legs)-1].Destination.Code) {
		return false
	}

	if s.NonstopOnly && !it.IsDirect {
		return false
	}
	if s.MaxStops != nil && it.NumStops > *s.MaxStops {
		return false
	}
	if s.MaxPrice != nil && it.Price.Total > *s.MaxPrice {
		return false
	}
	if s.MaxDurationHours != nil && float64(it.TotalDurationMinutes) > *s.MaxDurationHours*60 {
		return false
	}

	if s.NoRedEyes {
		for _, leg := range it.Legs {
			if leg.DepartsRedEye() {
				return false
			}
		}
	}

	if s.NoOvernightLayovers {
		for _, layover := range it.Layovers {
			if layover.Overnight {
				return false
			}
		}
	}

	return true
}

func containsCode(codes []string, code string) bool {
	for _, c := range codes {
		if c == code {
			return true
		}
	}
	return false
}
