// Package http provides the HTTP handler layer for the travel decision API.
// It handles request parsing, validation, response formatting, and error mapping.
package http

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/skymind/travel-decision-engine/internal/domain"
	"github.com/skymind/travel-decision-engine/internal/infrastructure/timeutil"
)

// SearchRequest represents the request body for itinerary search.
type SearchRequest struct {
	// Origins is the list of acceptable origin IATA codes (e.g., ["JFK","EWR"])
	Origins []string `json:"origins"`

	// Destinations is the list of acceptable destination IATA codes
	Destinations []string `json:"destinations"`

	// DepartureDate is the desired departure date in YYYY-MM-DD format
	DepartureDate string `json:"departure_date"`

	// ReturnDate is the optional return date in YYYY-MM-DD format
	ReturnDate string `json:"return_date,omitempty"`

	// FlexibleDates allows searching adjacent dates
	FlexibleDates bool `json:"flexible_dates,omitempty"`

	// DateFlexibilityDays is the +/- day window when dates are flexible (0-7)
	DateFlexibilityDays int `json:"date_flexibility_days,omitempty"`

	// NearbyAirports allows including airports near the requested ones
	NearbyAirports bool `json:"nearby_airports,omitempty"`

	// CabinClass is the requested cabin: economy, premium_economy, business, first
	CabinClass string `json:"cabin_class,omitempty"`

	// NumTravelers is the traveler count (1-9, default 1)
	NumTravelers int `json:"num_travelers,omitempty"`

	// MaxStops excludes itineraries with more stops than this value
	MaxStops *int `json:"max_stops,omitempty" example:"1"`

	// NonstopOnly excludes anything that is not a direct flight
	NonstopOnly bool `json:"nonstop_only,omitempty"`

	// MaxPrice excludes itineraries with a total above this amount
	MaxPrice *float64 `json:"max_price,omitempty" example:"500"`

	// MaxDurationHours excludes itineraries longer than this
	MaxDurationHours *float64 `json:"max_duration_hours,omitempty" example:"12"`

	// NoRedEyes excludes itineraries with any red-eye leg
	NoRedEyes bool `json:"no_red_eyes,omitempty"`

	// NoOvernightLayovers excludes itineraries with any overnight layover
	NoOvernightLayovers bool `json:"no_overnight_layovers,omitempty"`

	// Priority selects the ranking profile: cheap, fast, comfort, balanced
	Priority string `json:"priority,omitempty"`
}

// Validation regex patterns.
var (
	airportCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)
	datePattern        = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// Valid cabin classes.
var validCabinClasses = map[string]bool{
	"economy":         true,
	"premium_economy": true,
	"business":        true,
	"first":           true,
	"":                true, // Empty is valid (defaults to economy)
}

// Valid ranking priorities.
var validPriorities = map[string]bool{
	"cheap":    true,
	"fast":     true,
	"comfort":  true,
	"balanced": true,
	"":         true, // Empty is valid (defaults to balanced)
}

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

// Validate validates the search request and returns any validation errors.
// Airport codes are normalized to uppercase in place.
func (r *SearchRequest) Validate() error {
	errs := &ValidationErrors{}

	r.validateAirportCodes("origins", r.Origins, errs)
	r.validateAirportCodes("destinations", r.Destinations, errs)
	r.validateDates(errs)
	r.validateTravelers(errs)
	r.validateCabinClass(errs)
	r.validatePriority(errs)
	r.validateConstraints(errs)

	if errs.HasErrors() {
		return errs
	}
	return nil
}

func (r *SearchRequest) validateAirportCodes(field string, codes []string, errs *ValidationErrors) {
	if len(codes) == 0 {
		errs.Add(field, fmt.Sprintf("at least one %s airport is required", strings.TrimSuffix(field, "s")))
		return
	}

	for i, code := range codes {
		normalized := strings.ToUpper(code)
		if !airportCodePattern.MatchString(normalized) {
			errs.Add(fmt.Sprintf("%s[%d]", field, i), "must be a valid 3-letter IATA airport code")
			continue
		}
		codes[i] = normalized
	}
}

func (r *SearchRequest) validateDates(errs *ValidationErrors) {
	if r.DepartureDate == "" {
		errs.Add("departure_date", "departure_date is required")
	} else if !datePattern.MatchString(r.DepartureDate) {
		errs.Add("departure_date", "departure_date must be in YYYY-MM-DD format")
	} else if _, err := timeutil.ParseDate(r.DepartureDate); err != nil {
		errs.Add("departure_date", "departure_date is not a valid date")
	}

	if r.ReturnDate == "" {
		return
	}
	if !datePattern.MatchString(r.ReturnDate) {
		errs.Add("return_date", "return_date must be in YYYY-MM-DD format")
		return
	}
	ret, err := timeutil.ParseDate(r.ReturnDate)
	if err != nil {
		errs.Add("return_date", "return_date is not a valid date")
		return
	}
	if dep, err := timeutil.ParseDate(r.DepartureDate); err == nil && ret.Before(dep) {
		errs.Add("return_date", "return_date must not be before departure_date")
	}
}

func (r *SearchRequest) validateTravelers(errs *ValidationErrors) {
	// Zero means "not provided" and defaults to 1 downstream.
	if r.NumTravelers < 0 {
		errs.Add("num_travelers", "num_travelers must be at least 1")
		return
	}
	if r.NumTravelers > 9 {
		errs.Add("num_travelers", "num_travelers cannot exceed 9")
	}
}

func (r *SearchRequest) validateCabinClass(errs *ValidationErrors) {
	if !validCabinClasses[strings.ToLower(r.CabinClass)] {
		errs.Add("cabin_class", "cabin_class must be one of: economy, premium_economy, business, first")
	}
}

func (r *SearchRequest) validatePriority(errs *ValidationErrors) {
	if !validPriorities[strings.ToLower(r.Priority)] {
		errs.Add("priority", "priority must be one of: cheap, fast, comfort, balanced")
	}
}

func (r *SearchRequest) validateConstraints(errs *ValidationErrors) {
	if r.MaxStops != nil && *r.MaxStops < 0 {
		errs.Add("max_stops", "max_stops must be a non-negative number")
	}
	if r.MaxPrice != nil && *r.MaxPrice <= 0 {
		errs.Add("max_price", "max_price must be a positive number")
	}
	if r.MaxDurationHours != nil && *r.MaxDurationHours <= 0 {
		errs.Add("max_duration_hours", "max_duration_hours must be a positive number")
	}
	if r.DateFlexibilityDays < 0 || r.DateFlexibilityDays > 7 {
		errs.Add("date_flexibility_days", "date_flexibility_days must be between 0 and 7")
	}
}

// ToIntent converts a validated request into a domain search intent.
// Call Validate first; date parsing here assumes well-formed input.
func (r *SearchRequest) ToIntent() domain.SearchIntent {
	departure, _ := timeutil.ParseDate(r.DepartureDate)

	var returnDate *time.Time
	if r.ReturnDate != "" {
		if ret, err := timeutil.ParseDate(r.ReturnDate); err == nil {
			returnDate = &ret
		}
	}

	return domain.SearchIntent{
		Origins:             r.Origins,
		Destinations:        r.Destinations,
		DepartureDate:       departure,
		ReturnDate:          returnDate,
		FlexibleDates:       r.FlexibleDates,
		DateFlexibilityDays: r.DateFlexibilityDays,
		NearbyAirports:      r.NearbyAirports,
		CabinClass:          domain.CabinClass(strings.ToLower(r.CabinClass)),
		NumTravelers:        r.NumTravelers,
		MaxStops:            r.MaxStops,
		NonstopOnly:         r.NonstopOnly,
		MaxPrice:            r.MaxPrice,
		MaxDurationHours:    r.MaxDurationHours,
		NoRedEyes:           r.NoRedEyes,
		NoOvernightLayovers: r.NoOvernightLayovers,
		Priority:            domain.Priority(strings.ToLower(r.Priority)),
	}
}
