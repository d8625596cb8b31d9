package http

import (
	"fmt"

	"github.com/skymind/travel-decision-engine/internal/domain"
	"github.com/skymind/travel-decision-engine/internal/usecase"
)

// Limits on the explanation payload.
const (
	maxExplanations = 5
	maxTradeoffs    = 3
	maxAlternatives = 2
)

// Explanation is the per-rank decision detail returned by the explain endpoint.
type Explanation struct {
	// ItineraryID identifies the explained itinerary
	ItineraryID string `json:"itinerary_id"`

	// Rank is the 1-based position in the ranked batch
	Rank int `json:"rank"`

	// Score is the ranking total in [0,100]
	Score float64 `json:"score"`

	// Category is the winner category, or "other"
	Category string `json:"category"`

	// Explanation is the ranked result's human-readable justification
	Explanation string `json:"explanation"`

	// Tradeoffs suggests cheaper-but-slower or faster-but-pricier swaps
	Tradeoffs []string `json:"tradeoffs"`

	// Alternatives points at concretely better options in the same batch
	Alternatives []Alternative `json:"alternatives"`
}

// Alternative is a pointer to a different itinerary worth considering.
type Alternative struct {
	Type        string `json:"type"`
	ItineraryID string `json:"itinerary_id"`
	Description string `json:"description"`
}

// buildExplanations composes the explain payload for the top of a ranked
// batch: category assignment, tradeoff suggestions, and alternatives.
func buildExplanations(ranked []domain.Itinerary) []Explanation {
	explanations := make([]Explanation, 0, maxExplanations)
	if len(ranked) == 0 {
		return explanations
	}

	winners := usecase.CategoryWinners(ranked)

	top := ranked
	if len(top) > maxExplanations {
		top = top[:maxExplanations]
	}

	for i, it := range top {
		explanation := it.Explanation
		if explanation == "" {
			explanation = "No explanation available"
		}

		explanations = append(explanations, Explanation{
			ItineraryID:  it.ID,
			Rank:         i + 1,
			Score:        it.ScoreValue(),
			Category:     categorize(it, winners),
			Explanation:  explanation,
			Tradeoffs:    buildTradeoffs(it, ranked),
			Alternatives: buildAlternatives(it, ranked),
		})
	}

	return explanations
}

// categorize names the first winner category the itinerary holds.
func categorize(it domain.Itinerary, winners usecase.Winners) string {
	switch {
	case winners.BestOverall != nil && winners.BestOverall.ID == it.ID:
		return "best_overall"
	case winners.Cheapest != nil && winners.Cheapest.ID == it.ID:
		return "cheapest"
	case winners.Fastest != nil && winners.Fastest.ID == it.ID:
		return "fastest"
	default:
		return "other"
	}
}

// buildTradeoffs suggests what the traveler gains by switching to the
// cheapest or fastest option in the batch.
func buildTradeoffs(it domain.Itinerary, all []domain.Itinerary) []string {
	tradeoffs := make([]string, 0, maxTradeoffs)

	var cheaper *domain.Itinerary
	for i := range all {
		if all[i].Price.Total < it.Price.Total {
			if cheaper == nil || all[i].Price.Total < cheaper.Price.Total {
				cheaper = &all[i]
			}
		}
	}
	if cheaper != nil {
		savings := it.Price.Total - cheaper.Price.Total
		extraTime := cheaper.TotalDurationMinutes - it.TotalDurationMinutes
		if extraTime > 0 {
			tradeoffs = append(tradeoffs, fmt.Sprintf("Save $%.0f by accepting %dh %dm longer travel time",
				savings, extraTime/60, extraTime%60))
		} else {
			tradeoffs = append(tradeoffs, fmt.Sprintf("Save $%.0f with similar travel time", savings))
		}
	}

	var faster *domain.Itinerary
	for i := range all {
		if all[i].TotalDurationMinutes < it.TotalDurationMinutes {
			if faster == nil || all[i].TotalDurationMinutes < faster.TotalDurationMinutes {
				faster = &all[i]
			}
		}
	}
	if faster != nil {
		timeSaved := it.TotalDurationMinutes - faster.TotalDurationMinutes
		extraCost := faster.Price.Total - it.Price.Total
		if extraCost > 0 {
			tradeoffs = append(tradeoffs, fmt.Sprintf("Save %dh %dm by paying $%.0f more",
				timeSaved/60, timeSaved%60, extraCost))
		} else {
			tradeoffs = append(tradeoffs, fmt.Sprintf("Save %dh %dm at similar price",
				timeSaved/60, timeSaved%60))
		}
	}

	if len(tradeoffs) > maxTradeoffs {
		tradeoffs = tradeoffs[:maxTradeoffs]
	}
	return tradeoffs
}

// buildAlternatives points at a direct flight when the itinerary has stops,
// and at an option with an included checked bag when this one lacks it.
func buildAlternatives(it domain.Itinerary, all []domain.Itinerary) []Alternative {
	alternatives := make([]Alternative, 0, maxAlternatives)

	if !it.IsDirect {
		var bestDirect *domain.Itinerary
		for i := range all {
			if !all[i].IsDirect {
				continue
			}
			if bestDirect == nil || all[i].Price.Total < bestDirect.Price.Total {
				bestDirect = &all[i]
			}
		}
		if bestDirect != nil {
			alternatives = append(alternatives, Alternative{
				Type:        "direct_flight",
				ItineraryID: bestDirect.ID,
				Description: fmt.Sprintf("Direct flight for $%.0f", bestDirect.Price.Total),
			})
		}
	}

	if !it.IncludedBaggage(domain.BaggageChecked) {
		var bestBaggage *domain.Itinerary
		for i := range all {
			if !all[i].IncludedBaggage(domain.BaggageChecked) {
				continue
			}
			if bestBaggage == nil || all[i].Price.Total < bestBaggage.Price.Total {
				bestBaggage = &all[i]
			}
		}
		if bestBaggage != nil {
			alternatives = append(alternatives, Alternative{
				Type:        "includes_baggage",
				ItineraryID: bestBaggage.ID,
				Description: fmt.Sprintf("Includes checked bag for $%.0f", bestBaggage.Price.Total),
			})
		}
	}

	if len(alternatives) > maxAlternatives {
		alternatives = alternatives[:maxAlternatives]
	}
	return alternatives
}
