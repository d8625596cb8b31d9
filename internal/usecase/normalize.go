// Package usecase contains the decision pipeline for the travel engine:
// normalization, deduplication, ranking, price advisory, and the orchestrator
// that sequences them with a cache-first strategy.
package usecase

import (
	"sort"

	"github.com/skymind/travel-decision-engine/internal/domain"
)

// Layover duration thresholds (minutes) for risk detection.
const (
	tightConnectionMaxMinutes  = 90
	longLayoverMinMinutes      = 360
	overnightLayoverMinMinutes = 720
)

// Normalizer recomputes derived fields and risk flags on a single candidate.
// Normalize is a pure, total function: malformed input is normalized
// best-effort, never rejected.
type Normalizer struct{}

// NewNormalizer creates a Normalizer.
func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// Normalize returns a copy of the itinerary with derived fields recomputed
// from its legs and the risk-flag set rebuilt from scratch.
func (n *Normalizer) Normalize(it domain.Itinerary) domain.Itinerary {
	if len(it.Legs) > 0 {
		it.NumStops = len(it.Legs) - 1
		it.IsDirect = it.NumStops == 0

		firstDeparture := it.Legs[0].DepartureTime
		lastArrival := it.Legs[len(it.Legs)-1].ArrivalTime
		it.TotalDurationMinutes = int(lastArrival.Sub(firstDeparture).Minutes())
	}

	it.RiskFlags = detectRiskFlags(it)
	return it
}

// detectRiskFlags rebuilds the risk-flag set for an itinerary.
// The result is unique and sorted so two normalizations of the same
// candidate compare equal.
func detectRiskFlags(it domain.Itinerary) []domain.RiskFlag {
	seen := make(map[domain.RiskFlag]struct{})

	for _, layover := range it.Layovers {
		d := layover.DurationMinutes

		if d < tightConnectionMaxMinutes {
			seen[domain.RiskTightConnection] = struct{}{}
		} else if d >= longLayoverMinMinutes && d < overnightLayoverMinMinutes {
			seen[domain.RiskLongLayover] = struct{}{}
		}

		if layover.Overnight || d >= overnightLayoverMinMinutes {
			seen[domain.RiskOvernightLayover] = struct{}{}
		}

		if layover.AirportChange {
			seen[domain.RiskAirportChange] = struct{}{}
		}
	}

	for _, leg := range it.Legs {
		if leg.DepartsRedEye() {
			seen[domain.RiskRedEye] = struct{}{}
			break
		}
	}

	if len(seen) == 0 {
		return nil
	}

	flags := make([]domain.RiskFlag, 0, len(seen))
	for flag := range seen {
		flags = append(flags, flag)
	}
	sort.Slice(flags, func(i, j int) bool { return flags[i] < flags[j] })
	return flags
}

// IsStructurallyValid reports whether the candidate is internally consistent:
// at least one leg, a strictly positive total price, legs in non-decreasing
// chronological order, and a layover per connection. The pipeline does not
// gate on this predicate; it is a data-quality signal for callers that want
// strict rejection.
func (n *Normalizer) IsStructurallyValid(it domain.Itinerary) bool {
	if len(it.Legs) == 0 {
		return false
	}

	if it.Price.Total <= 0 {
		return false
	}

	for i := 0; i < len(it.Legs)-1; i++ {
		if it.Legs[i].ArrivalTime.After(it.Legs[i+1].DepartureTime) {
			return false
		}
	}

	if len(it.Layovers) != len(it.Legs)-1 {
		return false
	}

	return true
}
