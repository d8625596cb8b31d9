// Package domain contains the canonical data model for the travel decision engine.
// Every provider adapter maps its native offers into these types; every pipeline
// stage (normalization, deduplication, ranking, advisory) reads and writes them.
package domain

import (
	"slices"
	"time"
)

// CabinClass is the cabin of service for a leg or a search.
type CabinClass string

// Supported cabin classes.
const (
	CabinEconomy        CabinClass = "economy"
	CabinPremiumEconomy CabinClass = "premium_economy"
	CabinBusiness       CabinClass = "business"
	CabinFirst          CabinClass = "first"
)

// IsValid reports whether the cabin class is one of the supported values.
func (c CabinClass) IsValid() bool {
	switch c {
	case CabinEconomy, CabinPremiumEconomy, CabinBusiness, CabinFirst:
		return true
	default:
		return false
	}
}

// BaggageType identifies a kind of baggage allowance.
type BaggageType string

// Supported baggage types.
const (
	BaggageCarryOn      BaggageType = "carry_on"
	BaggageChecked      BaggageType = "checked"
	BaggagePersonalItem BaggageType = "personal_item"
)

// RiskFlag marks a traveler-facing risk detected on an itinerary.
// The set of flags is closed; the normalizer is the only producer.
type RiskFlag string

// Known risk flags.
const (
	// RiskSelfTransfer means the connection is not protected by a single ticket.
	RiskSelfTransfer RiskFlag = "self_transfer"

	// RiskTightConnection means a layover shorter than 90 minutes.
	RiskTightConnection RiskFlag = "tight_connection"

	// RiskOvernightLayover means a layover of 12 hours or more, or one
	// explicitly marked overnight by the provider.
	RiskOvernightLayover RiskFlag = "overnight_layover"

	// RiskSeparateTickets means multiple bookings are required.
	RiskSeparateTickets RiskFlag = "separate_tickets"

	// RiskAirportChange means the connection requires changing airports.
	RiskAirportChange RiskFlag = "airport_change"

	// RiskLongLayover means a layover between 6 and 12 hours.
	RiskLongLayover RiskFlag = "long_layover"

	// RiskRedEye means at least one leg departs between 22:00 and 05:00 local time.
	RiskRedEye RiskFlag = "red_eye"
)

// Airport is an immutable airport reference value.
type Airport struct {
	// Code is the 3-letter IATA airport code (e.g., "JFK")
	Code string `json:"code"`

	// Name is the full airport name
	Name string `json:"name"`

	// City is the city the airport serves
	City string `json:"city"`

	// Country is the country the airport is located in
	Country string `json:"country"`

	// Timezone is the optional IANA timezone identifier (e.g., "America/New_York")
	Timezone string `json:"timezone,omitempty"`
}

// Leg is a single flight segment between two airports.
type Leg struct {
	// ID uniquely identifies this leg within its itinerary
	ID string `json:"leg_id"`

	// Origin is the departure airport
	Origin Airport `json:"origin"`

	// Destination is the arrival airport
	Destination Airport `json:"destination"`

	// DepartureTime is the timezone-aware scheduled departure
	DepartureTime time.Time `json:"departure_time"`

	// ArrivalTime is the timezone-aware scheduled arrival; always after departure
	ArrivalTime time.Time `json:"arrival_time"`

	// DurationMinutes is the leg duration in minutes
	DurationMinutes int `json:"duration_minutes"`

	// Airline is the marketing airline name
	Airline string `json:"airline"`

	// AirlineCode is the IATA airline code (e.g., "AA")
	AirlineCode string `json:"airline_code"`

	// FlightNumber is the airline's flight number (e.g., "AA123")
	FlightNumber string `json:"flight_number"`

	// Aircraft is the optional equipment type
	Aircraft string `json:"aircraft,omitempty"`

	// CabinClass is the booked cabin for this leg
	CabinClass CabinClass `json:"cabin_class"`

	// OperatingAirline is the actual operator when the leg is a codeshare
	OperatingAirline string `json:"operating_airline,omitempty"`

	// OnTimePercent is the optional historical on-time performance in [0,100]
	OnTimePercent *float64 `json:"on_time_percent,omitempty"`
}

// DepartsRedEye reports whether the leg departs between 22:00 and 05:00
// in the departure timezone.
func (l Leg) DepartsRedEye() bool {
	hour := l.DepartureTime.Hour()
	return hour >= 22 || hour < 5
}

// Layover is the gap between two consecutive legs.
type Layover struct {
	// Airport is where the connection happens
	Airport Airport `json:"airport"`

	// DurationMinutes is the connection time in minutes
	DurationMinutes int `json:"duration_minutes"`

	// Overnight is set when the layover spans the night
	Overnight bool `json:"overnight"`

	// AirportChange is set when the traveler must change airports
	AirportChange bool `json:"airport_change"`

	// Notes holds free-text remarks about the connection
	Notes []string `json:"notes,omitempty"`
}

// PriceBreakdown is the itemized price of an itinerary. All amounts are in
// a single currency; multi-currency conversion happens upstream.
type PriceBreakdown struct {
	// BaseFare is the fare before taxes and fees
	BaseFare float64 `json:"base_fare"`

	// Taxes is the total tax amount
	Taxes float64 `json:"taxes"`

	// Fees is the total of carrier and booking fees
	Fees float64 `json:"fees"`

	// Total is base fare + taxes + fees; always strictly positive for a valid offer
	Total float64 `json:"total"`

	// Currency is the ISO 4217 currency code
	Currency string `json:"currency"`

	// PricePerTraveler is the optional per-traveler amount
	PricePerTraveler *float64 `json:"price_per_traveler,omitempty"`

	// NumTravelers is the number of travelers the total covers
	NumTravelers int `json:"num_travelers"`
}

// Baggage describes one baggage allowance entry.
type Baggage struct {
	// Type is the kind of baggage (carry_on, checked, personal_item)
	Type BaggageType `json:"type"`

	// Quantity is the number of pieces allowed
	Quantity int `json:"quantity"`

	// WeightKg is the optional weight limit in kilograms
	WeightKg *int `json:"weight_kg,omitempty"`

	// Included indicates the allowance is part of the fare
	Included bool `json:"included"`

	// ExtraCost is the optional additional cost when not included
	ExtraCost *float64 `json:"extra_cost,omitempty"`
}

// FareRules describes change and cancellation terms.
type FareRules struct {
	// Changeable indicates the ticket can be changed
	Changeable bool `json:"changeable"`

	// ChangeFee is the optional fee for a change
	ChangeFee *float64 `json:"change_fee,omitempty"`

	// Refundable indicates the ticket can be refunded
	Refundable bool `json:"refundable"`

	// CancellationFee is the optional fee for cancellation
	CancellationFee *float64 `json:"cancellation_fee,omitempty"`

	// Notes holds free-text fare remarks
	Notes []string `json:"notes,omitempty"`
}

// Signals carries optional quality signals used by the ranker.
type Signals struct {
	// OnTimeProxy is an aggregated on-time performance proxy in [0,1]
	OnTimeProxy *float64 `json:"on_time_proxy,omitempty"`

	// AirportQuality is an airport experience rating in [0,1]
	AirportQuality *float64 `json:"airport_quality,omitempty"`

	// SeatAvailability categorizes remaining seats (few, some, many)
	SeatAvailability string `json:"seat_availability,omitempty"`

	// Popularity reflects how often this route is booked
	Popularity *float64 `json:"popularity,omitempty"`
}

// Weights assigns a relative importance to each scoring dimension.
// A well-formed profile sums to 1.0.
type Weights struct {
	Price       float64 `json:"price"`
	Duration    float64 `json:"duration"`
	Stops       float64 `json:"stops"`
	Layover     float64 `json:"layover"`
	Baggage     float64 `json:"baggage"`
	Risk        float64 `json:"risk"`
	Reliability float64 `json:"reliability"`
}

// Sum returns the total of all dimension weights.
func (w Weights) Sum() float64 {
	return w.Price + w.Duration + w.Stops + w.Layover + w.Baggage + w.Risk + w.Reliability
}

// ScoreBreakdown holds the seven sub-scores (each in [0,100]) and the
// weight profile that combined them into the total score.
type ScoreBreakdown struct {
	PriceScore       float64 `json:"price_score"`
	DurationScore    float64 `json:"duration_score"`
	StopsScore       float64 `json:"stops_score"`
	LayoverScore     float64 `json:"layover_score"`
	BaggageScore     float64 `json:"baggage_score"`
	RiskScore        float64 `json:"risk_score"`
	ReliabilityScore float64 `json:"reliability_score"`

	// Weights is the profile used to combine the sub-scores
	Weights Weights `json:"weights"`
}

// ProviderMetadata identifies the source of an itinerary. It is treated as an
// immutable value; use WithNote to derive a copy with an extra note.
type ProviderMetadata struct {
	// Name is the provider's identifier (e.g., "amadeus")
	Name string `json:"provider_name"`

	// ProviderID is the itinerary's id in the provider's own system
	ProviderID string `json:"provider_id"`

	// Deeplink is the booking URL
	Deeplink string `json:"deeplink"`

	// LastUpdated is when the provider last refreshed this offer
	LastUpdated time.Time `json:"last_updated"`

	// TrustScore is the provider reliability score in [0,1]
	TrustScore float64 `json:"trust_score"`

	// Notes records merge annotations such as "Also available via: X"
	Notes []string `json:"notes,omitempty"`
}

// WithNote returns a copy of the metadata with note appended.
// Appending an already-present note is a no-op, which keeps the
// deduplicator idempotent across repeated merges.
func (m ProviderMetadata) WithNote(note string) ProviderMetadata {
	if slices.Contains(m.Notes, note) {
		return m
	}
	notes := make([]string, 0, len(m.Notes)+1)
	notes = append(notes, m.Notes...)
	notes = append(notes, note)
	m.Notes = notes
	return m
}

// Itinerary is one priced, bookable travel option composed of one or more legs.
// Instances are created fresh per search and never shared across requests.
type Itinerary struct {
	// ID uniquely identifies this itinerary
	ID string `json:"itinerary_id"`

	// Legs are the ordered flight segments; always at least one
	Legs []Leg `json:"legs"`

	// Layovers are the gaps between consecutive legs; count is len(legs)-1
	Layovers []Layover `json:"layovers,omitempty"`

	// NumStops is derived: len(legs) - 1
	NumStops int `json:"num_stops"`

	// TotalDurationMinutes is derived: last arrival minus first departure
	TotalDurationMinutes int `json:"total_duration_minutes"`

	// IsDirect is derived: NumStops == 0
	IsDirect bool `json:"is_direct"`

	// Price is the itemized price
	Price PriceBreakdown `json:"price"`

	// Baggage lists the baggage allowances
	Baggage []Baggage `json:"baggage,omitempty"`

	// FareRules describes change/cancellation terms
	FareRules FareRules `json:"fare_rules"`

	// RiskFlags is the detected risk set; unique values, sorted for
	// deterministic comparison
	RiskFlags []RiskFlag `json:"risk_flags,omitempty"`

	// Signals carries optional quality signals
	Signals Signals `json:"signals"`

	// Provider identifies the source of this offer
	Provider ProviderMetadata `json:"provider"`

	// Score is the ranking total in [0,100]; populated by the ranker
	Score *float64 `json:"score,omitempty"`

	// ScoreBreakdown details how the score was computed
	ScoreBreakdown *ScoreBreakdown `json:"score_breakdown,omitempty"`

	// Explanation is the human-readable ranking justification
	Explanation string `json:"explanation,omitempty"`

	// PriceAdvisory is the optional buy/wait/monitor guidance
	PriceAdvisory *PriceAdvisory `json:"price_advisory,omitempty"`
}

// HasRiskFlag reports whether the given flag is present on the itinerary.
func (it Itinerary) HasRiskFlag(flag RiskFlag) bool {
	return slices.Contains(it.RiskFlags, flag)
}

// ScoreValue returns the ranking score, or 0 when the itinerary has not
// been scored yet.
func (it Itinerary) ScoreValue() float64 {
	if it.Score == nil {
		return 0
	}
	return *it.Score
}

// IncludedBaggage reports whether any allowance of the given type is
// included in the fare.
func (it Itinerary) IncludedBaggage(t BaggageType) bool {
	for _, b := range it.Baggage {
		if b.Included && b.Type == t {
			return true
		}
	}
	return false
}
