package usecase

import (
	"math"
	"time"

	"github.com/skymind/travel-decision-engine/internal/domain"
	"github.com/skymind/travel-decision-engine/internal/infrastructure/timeutil"
)

// maxAdvisoryConfidence caps the confidence of any advisory outcome.
const maxAdvisoryConfidence = 0.95

// PriceAdvisor produces buy-now/wait/monitor guidance per candidate from the
// search date context. The heuristic is an ordered rule cascade: later rules
// inspect the advice set by earlier rules and only override it under specific
// preconditions, so rule order is part of the contract.
type PriceAdvisor struct {
	clock timeutil.Clock
}

// NewPriceAdvisor creates a PriceAdvisor. A nil clock uses system time.
func NewPriceAdvisor(clock timeutil.Clock) *PriceAdvisor {
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	return &PriceAdvisor{clock: clock}
}

// advisoryState is the accumulator threaded through the rule cascade.
type advisoryState struct {
	advice          domain.Advice
	confidence      float64
	predictedChange float64
	factors         []string
}

// advisoryRule transforms the advisory state given the departure date.
type advisoryRule func(state advisoryState, departure time.Time) advisoryState

// Advise attaches a price advisory to the itinerary. The intent must carry a
// departure date; advising without one is undefined input and fails fast.
func (a *PriceAdvisor) Advise(it domain.Itinerary, intent domain.SearchIntent) (domain.Itinerary, error) {
	if intent.DepartureDate.IsZero() {
		return it, domain.ErrMissingDepartureDate
	}

	state := advisoryState{
		advice:     domain.AdviceMonitor,
		confidence: 0.5,
	}

	rules := []advisoryRule{
		a.advancePurchaseRule,
		weekdayRule,
		seasonalityRule,
	}
	for _, rule := range rules {
		state = rule(state, intent.DepartureDate)
	}

	factors := state.factors
	if factors == nil {
		factors = []string{}
	}

	it.PriceAdvisory = &domain.PriceAdvisory{
		Advice:          state.advice,
		Confidence:      math.Min(state.confidence, maxAdvisoryConfidence),
		PredictedChange: state.predictedChange,
		Factors:         factors,
	}
	return it, nil
}

// advancePurchaseRule sets the baseline advice from the booking window.
func (a *PriceAdvisor) advancePurchaseRule(state advisoryState, departure time.Time) advisoryState {
	days := daysUntil(a.clock.Now(), departure)

	switch {
	case days < 14:
		state.advice = domain.AdviceBuyNow
		state.confidence = 0.9
		state.predictedChange = 50
		state.factors = append(state.factors, "Last minute booking - prices rising daily")
	case days <= 21:
		state.advice = domain.AdviceBuyNow
		state.confidence = 0.8
		state.predictedChange = 20
		state.factors = append(state.factors, "Entering high-price window (< 21 days)")
	case days <= 60:
		state.advice = domain.AdviceMonitor
		state.confidence = 0.6
		state.factors = append(state.factors, "Standard booking window")
	case days > 90:
		state.advice = domain.AdviceWait
		state.confidence = 0.75
		state.predictedChange = -30
		state.factors = append(state.factors, "Booking too early - airlines drop prices ~60 days out")
	}
	// 61-90 days: keep the monitor default at 0.5 confidence.

	return state
}

// weekdayRule adjusts for departure day of week. It only overrides the
// advice when it is still "monitor" after the baseline rule.
func weekdayRule(state advisoryState, departure time.Time) advisoryState {
	switch departure.Weekday() {
	case time.Friday, time.Sunday:
		state.factors = append(state.factors, "Weekend departure premium applied")
		if state.advice == domain.AdviceMonitor {
			state.advice = domain.AdviceWait
			state.predictedChange -= 15
			state.factors = append(state.factors, "Flying Tue/Wed could save ~10%")
		}
	case time.Tuesday, time.Wednesday:
		state.factors = append(state.factors, "Mid-week savings detected")
		if state.advice == domain.AdviceMonitor {
			state.advice = domain.AdviceBuyNow
		}
	}

	return state
}

// seasonalityRule softens a "wait" during peak demand months, since waiting
// through high season risks missing the current fare entirely.
func seasonalityRule(state advisoryState, departure time.Time) advisoryState {
	switch departure.Month() {
	case time.June, time.July, time.August, time.December:
		state.factors = append(state.factors, "High season demand")
		if state.advice == domain.AdviceWait {
			state.advice = domain.AdviceMonitor
			state.predictedChange += 10
		}
	}

	return state
}

// daysUntil returns whole days from now to departure, rounding down so a
// departure later today counts as 0 days out.
func daysUntil(now, departure time.Time) int {
	return int(math.Floor(departure.Sub(now).Hours() / 24))
}
