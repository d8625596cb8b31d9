package usecase

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"unicode"

	"github.com/skymind/travel-decision-engine/internal/domain"
)

// RankerConfig is the explicit configuration for the ranker. Weight profiles
// and flag penalties are data, not constants, so deployments can tune them
// and tests can pin them.
type RankerConfig struct {
	// Profiles maps a search priority to its weight profile.
	// Every profile must sum to 1.0.
	Profiles map[domain.Priority]domain.Weights

	// RiskPenalties maps each risk flag to the points it subtracts from
	// the risk sub-score.
	RiskPenalties map[domain.RiskFlag]float64

	// UnknownRiskPenalty applies to flags absent from RiskPenalties.
	// With the closed flag set this should never fire; it exists so a
	// flag added without a penalty entry degrades instead of scoring free.
	UnknownRiskPenalty float64
}

// DefaultRankerConfig returns the standard weight profiles and penalties.
func DefaultRankerConfig() RankerConfig {
	return RankerConfig{
		Profiles: map[domain.Priority]domain.Weights{
			domain.PriorityCheap: {
				Price: 0.50, Duration: 0.15, Stops: 0.10, Layover: 0.05,
				Baggage: 0.05, Risk: 0.10, Reliability: 0.05,
			},
			domain.PriorityFast: {
				Price: 0.15, Duration: 0.45, Stops: 0.20, Layover: 0.10,
				Baggage: 0.02, Risk: 0.05, Reliability: 0.03,
			},
			domain.PriorityComfort: {
				Price: 0.20, Duration: 0.20, Stops: 0.15, Layover: 0.15,
				Baggage: 0.10, Risk: 0.15, Reliability: 0.05,
			},
			domain.PriorityBalanced: {
				Price: 0.25, Duration: 0.20, Stops: 0.15, Layover: 0.10,
				Baggage: 0.10, Risk: 0.15, Reliability: 0.05,
			},
		},
		RiskPenalties: map[domain.RiskFlag]float64{
			domain.RiskSelfTransfer:     40,
			domain.RiskTightConnection:  15,
			domain.RiskOvernightLayover: 10,
			domain.RiskSeparateTickets:  35,
			domain.RiskAirportChange:    20,
			domain.RiskLongLayover:      5,
			domain.RiskRedEye:           8,
		},
		UnknownRiskPenalty: 5,
	}
}

// Ranker computes a seven-dimension weighted score per candidate, orders the
// batch, and synthesizes a human-readable explanation for each result.
type Ranker struct {
	cfg RankerConfig
}

// NewRanker creates a Ranker from the given configuration. Missing profile
// or penalty tables fall back to the defaults.
func NewRanker(cfg RankerConfig) *Ranker {
	defaults := DefaultRankerConfig()
	if cfg.Profiles == nil {
		cfg.Profiles = defaults.Profiles
	}
	if cfg.RiskPenalties == nil {
		cfg.RiskPenalties = defaults.RiskPenalties
	}
	if cfg.UnknownRiskPenalty == 0 {
		cfg.UnknownRiskPenalty = defaults.UnknownRiskPenalty
	}
	return &Ranker{cfg: cfg}
}

// WeightsFor returns the weight profile for a priority, falling back to the
// balanced profile for unrecognized values.
func (r *Ranker) WeightsFor(priority domain.Priority) domain.Weights {
	if w, ok := r.cfg.Profiles[priority]; ok {
		return w
	}
	return r.cfg.Profiles[domain.PriorityBalanced]
}

// Rank scores every candidate against the batch, sorts descending by total
// score (ties broken by itinerary ID for determinism), and attaches an
// explanation to each ranked result. An empty batch ranks to an empty batch.
// The input slice is not mutated.
func (r *Ranker) Rank(itineraries []domain.Itinerary, priority domain.Priority) []domain.Itinerary {
	if len(itineraries) == 0 {
		return []domain.Itinerary{}
	}

	weights := r.WeightsFor(priority)

	ranked := make([]domain.Itinerary, len(itineraries))
	copy(ranked, itineraries)

	batch := batchContext(ranked)
	for i := range ranked {
		r.score(&ranked[i], batch, weights)
	}

	sort.Slice(ranked, func(i, j int) bool {
		si, sj := ranked[i].ScoreValue(), ranked[j].ScoreValue()
		if si != sj {
			return si > sj
		}
		return ranked[i].ID < ranked[j].ID
	})

	for i := range ranked {
		ranked[i].Explanation = r.explain(ranked[i], ranked)
	}

	return ranked
}

// batchStats holds the min/max comparison context shared by a ranking batch.
type batchStats struct {
	minPrice, maxPrice       float64
	minDuration, maxDuration int
}

func batchContext(itineraries []domain.Itinerary) batchStats {
	stats := batchStats{
		minPrice:    itineraries[0].Price.Total,
		maxPrice:    itineraries[0].Price.Total,
		minDuration: itineraries[0].TotalDurationMinutes,
		maxDuration: itineraries[0].TotalDurationMinutes,
	}
	for _, it := range itineraries[1:] {
		if it.Price.Total < stats.minPrice {
			stats.minPrice = it.Price.Total
		}
		if it.Price.Total > stats.maxPrice {
			stats.maxPrice = it.Price.Total
		}
		if it.TotalDurationMinutes < stats.minDuration {
			stats.minDuration = it.TotalDurationMinutes
		}
		if it.TotalDurationMinutes > stats.maxDuration {
			stats.maxDuration = it.TotalDurationMinutes
		}
	}
	return stats
}

// score computes the seven sub-scores and the weighted total for one
// candidate, storing the breakdown and weights alongside it.
func (r *Ranker) score(it *domain.Itinerary, batch batchStats, weights domain.Weights) {
	breakdown := domain.ScoreBreakdown{
		PriceScore:       scoreInverseNormalized(it.Price.Total, batch.minPrice, batch.maxPrice),
		DurationScore:    scoreInverseNormalized(float64(it.TotalDurationMinutes), float64(batch.minDuration), float64(batch.maxDuration)),
		StopsScore:       scoreStops(it.NumStops),
		LayoverScore:     scoreLayovers(it.Layovers),
		BaggageScore:     scoreBaggage(*it),
		RiskScore:        r.scoreRisk(it.RiskFlags),
		ReliabilityScore: scoreReliability(*it),
		Weights:          weights,
	}

	total := weights.Price*breakdown.PriceScore +
		weights.Duration*breakdown.DurationScore +
		weights.Stops*breakdown.StopsScore +
		weights.Layover*breakdown.LayoverScore +
		weights.Baggage*breakdown.BaggageScore +
		weights.Risk*breakdown.RiskScore +
		weights.Reliability*breakdown.ReliabilityScore

	score := round2(total)
	it.Score = &score
	it.ScoreBreakdown = &breakdown
}

// scoreInverseNormalized min-max normalizes a value so the batch minimum
// scores 100 and the maximum scores 0. A batch with no spread scores 100.
func scoreInverseNormalized(value, min, max float64) float64 {
	if max == min {
		return 100
	}
	return round2(100 * (1 - (value-min)/(max-min)))
}

// scoreStops scores the stop count: direct 100, one stop 70, two stops 40,
// anything more 10.
func scoreStops(numStops int) float64 {
	switch numStops {
	case 0:
		return 100
	case 1:
		return 70
	case 2:
		return 40
	default:
		return 10
	}
}

// scoreLayovers averages per-layover quality. The sweet spot is 90-180
// minutes; overnight and airport-change layovers are penalized
// multiplicatively on top of the duration bucket.
func scoreLayovers(layovers []domain.Layover) float64 {
	if len(layovers) == 0 {
		return 100
	}

	var sum float64
	for _, layover := range layovers {
		d := layover.DurationMinutes

		var score float64
		switch {
		case d >= 90 && d <= 180:
			score = 100
		case d >= 60 && d < 90:
			score = 80
		case d < 60:
			score = 30
		case d > 180 && d <= 360:
			score = 70
		default:
			score = 40
		}

		if layover.Overnight {
			score *= 0.5
		}
		if layover.AirportChange {
			score *= 0.6
		}

		sum += score
	}

	return round2(sum / float64(len(layovers)))
}

// scoreBaggage starts at 50 and rewards included carry-on and checked bags.
func scoreBaggage(it domain.Itinerary) float64 {
	score := 50.0
	if it.IncludedBaggage(domain.BaggageCarryOn) {
		score += 25
	}
	if it.IncludedBaggage(domain.BaggageChecked) {
		score += 25
	}
	return math.Min(score, 100)
}

// scoreRisk subtracts a fixed penalty per present flag from 100, floored at 0.
func (r *Ranker) scoreRisk(flags []domain.RiskFlag) float64 {
	score := 100.0
	for _, flag := range flags {
		penalty, ok := r.cfg.RiskPenalties[flag]
		if !ok {
			penalty = r.cfg.UnknownRiskPenalty
		}
		score -= penalty
	}
	return math.Max(score, 0)
}

// scoreReliability combines provider trust with the on-time proxy when present.
func scoreReliability(it domain.Itinerary) float64 {
	score := 50 + it.Provider.TrustScore*25
	if it.Signals.OnTimeProxy != nil {
		score += *it.Signals.OnTimeProxy * 25
	}
	return round2(math.Min(score, 100))
}

// explain composes the ordered sentence fragments for one ranked candidate:
// price delta vs the cheapest, stop count, layover quality, baggage
// inclusion, and a single critical-risk callout.
func (r *Ranker) explain(it domain.Itinerary, ranked []domain.Itinerary) string {
	var parts []string

	cheapest := ranked[0]
	for _, other := range ranked[1:] {
		if other.Price.Total < cheapest.Price.Total {
			cheapest = other
		}
	}

	if it.ID == cheapest.ID {
		parts = append(parts, "Cheapest option")
	} else {
		parts = append(parts, fmt.Sprintf("$%.0f more than cheapest", it.Price.Total-cheapest.Price.Total))
	}

	if it.IsDirect {
		parts = append(parts, "direct flight")
	} else {
		parts = append(parts, fmt.Sprintf("%d stop(s)", it.NumStops))
	}

	for _, layover := range it.Layovers {
		hours := float64(layover.DurationMinutes) / 60
		switch {
		case hours >= 1.5 && hours <= 3:
			parts = append(parts, fmt.Sprintf("%.1fh layover (comfortable)", hours))
		case hours < 1.5:
			parts = append(parts, fmt.Sprintf("%.1fh layover (tight)", hours))
		default:
			parts = append(parts, fmt.Sprintf("%.1fh layover (long)", hours))
		}
	}

	carryOn := it.IncludedBaggage(domain.BaggageCarryOn)
	checked := it.IncludedBaggage(domain.BaggageChecked)
	if carryOn && checked {
		parts = append(parts, "bags included")
	} else if carryOn {
		parts = append(parts, "carry-on included")
	}

	for _, flag := range it.RiskFlags {
		if flag == domain.RiskSelfTransfer || flag == domain.RiskSeparateTickets {
			parts = append(parts, "warning: "+strings.ReplaceAll(string(flag), "_", " "))
			break
		}
	}

	return capitalizeSentence(strings.Join(parts, ". ")) + "."
}

// capitalizeSentence upper-cases the first rune and lower-cases the rest.
func capitalizeSentence(s string) string {
	runes := []rune(s)
	for i, r := range runes {
		if i == 0 {
			runes[i] = unicode.ToUpper(r)
		} else {
			runes[i] = unicode.ToLower(r)
		}
	}
	return string(runes)
}

// round2 rounds to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Winners names the category winner in each decision dimension.
type Winners struct {
	// Cheapest has the lowest total price
	Cheapest *domain.Itinerary `json:"cheapest,omitempty"`

	// Fastest has the shortest total duration
	Fastest *domain.Itinerary `json:"fastest,omitempty"`

	// BestOverall has the highest ranking score
	BestOverall *domain.Itinerary `json:"best_overall,omitempty"`

	// MostDirect has the fewest stops
	MostDirect *domain.Itinerary `json:"most_direct,omitempty"`
}

// CategoryWinners picks the winner per category from an already-ranked batch.
// Selection is stable: on ties, the first occurrence in batch order wins.
// This is a read-only utility; it does not re-rank.
func CategoryWinners(itineraries []domain.Itinerary) Winners {
	if len(itineraries) == 0 {
		return Winners{}
	}

	cheapest, fastest, best, mostDirect := 0, 0, 0, 0
	for i, it := range itineraries {
		if it.Price.Total < itineraries[cheapest].Price.Total {
			cheapest = i
		}
		if it.TotalDurationMinutes < itineraries[fastest].TotalDurationMinutes {
			fastest = i
		}
		if it.ScoreValue() > itineraries[best].ScoreValue() {
			best = i
		}
		if it.NumStops < itineraries[mostDirect].NumStops {
			mostDirect = i
		}
	}

	return Winners{
		Cheapest:    &itineraries[cheapest],
		Fastest:     &itineraries[fastest],
		BestOverall: &itineraries[best],
		MostDirect:  &itineraries[mostDirect],
	}
}
