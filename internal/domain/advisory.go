package domain

// Advice is the price-timing recommendation for an itinerary.
type Advice string

// Possible advice outcomes.
const (
	// AdviceBuyNow means the price is expected to rise; book immediately.
	AdviceBuyNow Advice = "buy_now"

	// AdviceWait means the price is expected to drop; hold off.
	AdviceWait Advice = "wait"

	// AdviceMonitor means the direction is unclear; watch the fare.
	AdviceMonitor Advice = "monitor"
)

// PriceAdvisory is the buy-now/wait/monitor guidance attached to an
// itinerary by the price advisor.
type PriceAdvisory struct {
	// Advice is the recommendation
	Advice Advice `json:"advice"`

	// Confidence is how sure the heuristic is, in [0, 0.95]
	Confidence float64 `json:"confidence"`

	// PredictedChange is the expected signed price movement in the
	// itinerary's currency
	PredictedChange float64 `json:"predicted_change"`

	// Factors lists the reasons behind the advice, in the order the
	// rules fired
	Factors []string `json:"factors"`
}
