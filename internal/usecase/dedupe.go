package usecase

import (
	"fmt"
	"sort"
	"strings"

	"github.com/skymind/travel-decision-engine/internal/domain"
)

// legSignatureSeparator joins per-leg signatures into an itinerary signature.
const legSignatureSeparator = "|"

// discrepancyThreshold is the minimum price spread (currency units) within a
// duplicate group before it is reported as a provider discrepancy.
const discrepancyThreshold = 5.0

// Deduplicator groups candidates that represent the same physical flights
// observed from multiple sources and keeps one winner per group.
type Deduplicator struct{}

// NewDeduplicator creates a Deduplicator.
func NewDeduplicator() *Deduplicator {
	return &Deduplicator{}
}

// Signature computes the identity key for an itinerary: the ordered
// concatenation of each leg's airline code, flight number, departure date,
// origin, and destination. Two candidates with identical signatures are the
// same physical itinerary regardless of which provider reported them.
func Signature(it domain.Itinerary) string {
	legSigs := make([]string, 0, len(it.Legs))
	for _, leg := range it.Legs {
		legSigs = append(legSigs, fmt.Sprintf("%s%s_%s_%s_%s",
			leg.AirlineCode,
			leg.FlightNumber,
			leg.DepartureTime.Format("20060102"),
			leg.Origin.Code,
			leg.Destination.Code,
		))
	}
	return strings.Join(legSigs, legSignatureSeparator)
}

// Deduplicate merges duplicate candidates, keeping the cheapest offer per
// signature (ties broken by higher provider trust). The winner's provider
// notes record which other providers carried the same itinerary; re-running
// Deduplicate on its own output changes nothing.
//
// Output preserves the input's first-occurrence order of signatures, and
// len(result) <= len(input).
func (d *Deduplicator) Deduplicate(itineraries []domain.Itinerary) []domain.Itinerary {
	if len(itineraries) <= 1 {
		return itineraries
	}

	signatures, groups := groupBySignature(itineraries)

	result := make([]domain.Itinerary, 0, len(signatures))
	for _, sig := range signatures {
		group := groups[sig]
		if len(group) == 1 {
			result = append(result, group[0])
			continue
		}
		result = append(result, selectWinner(group))
	}

	return result
}

// groupBySignature groups itineraries by signature, remembering the order in
// which signatures were first seen.
func groupBySignature(itineraries []domain.Itinerary) ([]string, map[string][]domain.Itinerary) {
	signatures := make([]string, 0, len(itineraries))
	groups := make(map[string][]domain.Itinerary, len(itineraries))

	for _, it := range itineraries {
		sig := Signature(it)
		if _, ok := groups[sig]; !ok {
			signatures = append(signatures, sig)
		}
		groups[sig] = append(groups[sig], it)
	}

	return signatures, groups
}

// selectWinner picks the best offer from a duplicate group: lowest total
// price first, then highest provider trust. The winner is annotated with the
// other providers that carried it.
func selectWinner(group []domain.Itinerary) domain.Itinerary {
	sorted := make([]domain.Itinerary, len(group))
	copy(sorted, group)

	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Price.Total != sorted[j].Price.Total {
			return sorted[i].Price.Total < sorted[j].Price.Total
		}
		return sorted[i].Provider.TrustScore > sorted[j].Provider.TrustScore
	})

	winner := sorted[0]

	var others []string
	for _, it := range group {
		if it.ID != winner.ID {
			others = append(others, it.Provider.Name)
		}
	}
	if len(others) > 0 {
		note := "Also available via: " + strings.Join(others, ", ")
		winner.Provider = winner.Provider.WithNote(note)
	}

	return winner
}

// PriceDiscrepancy reports a duplicate group whose providers disagree on
// price by more than the reporting threshold.
type PriceDiscrepancy struct {
	// Signature identifies the itinerary group
	Signature string `json:"signature"`

	// MinPrice and MaxPrice bound the observed totals
	MinPrice float64 `json:"min_price"`
	MaxPrice float64 `json:"max_price"`

	// Difference is MaxPrice - MinPrice
	Difference float64 `json:"difference"`

	// Providers lists each provider's quoted total
	Providers []ProviderPrice `json:"providers"`

	// Legs lists the flight identifiers (airline code + number) of the group
	Legs []string `json:"legs"`
}

// ProviderPrice is one provider's quote within a duplicate group.
type ProviderPrice struct {
	Provider string  `json:"provider"`
	Price    float64 `json:"price"`
}

// PriceDiscrepancies is a read-only diagnostic over a batch: for every
// duplicate group with a price spread above the threshold it emits a record
// of who quoted what. It takes no part in the merge decision.
func (d *Deduplicator) PriceDiscrepancies(itineraries []domain.Itinerary) []PriceDiscrepancy {
	signatures, groups := groupBySignature(itineraries)

	var discrepancies []PriceDiscrepancy
	for _, sig := range signatures {
		group := groups[sig]
		if len(group) <= 1 {
			continue
		}

		minPrice, maxPrice := group[0].Price.Total, group[0].Price.Total
		providers := make([]ProviderPrice, 0, len(group))
		for _, it := range group {
			if it.Price.Total < minPrice {
				minPrice = it.Price.Total
			}
			if it.Price.Total > maxPrice {
				maxPrice = it.Price.Total
			}
			providers = append(providers, ProviderPrice{
				Provider: it.Provider.Name,
				Price:    it.Price.Total,
			})
		}

		if maxPrice-minPrice <= discrepancyThreshold {
			continue
		}

		legs := make([]string, 0, len(group[0].Legs))
		for _, leg := range group[0].Legs {
			legs = append(legs, leg.AirlineCode+leg.FlightNumber)
		}

		discrepancies = append(discrepancies, PriceDiscrepancy{
			Signature:  sig,
			MinPrice:   minPrice,
			MaxPrice:   maxPrice,
			Difference: maxPrice - minPrice,
			Providers:  providers,
			Legs:       legs,
		})
	}

	return discrepancies
}
