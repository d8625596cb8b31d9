package amadeus

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/skymind/travel-decision-engine/internal/domain"
)

// isoDurationPattern matches the ISO-8601 durations Amadeus uses (e.g. PT5H30M).
var isoDurationPattern = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?$`)

// segmentTimeLayout is the timestamp format used in offer segments.
const segmentTimeLayout = "2006-01-02T15:04:05"

// mapResponse converts an Amadeus search response to canonical itineraries.
// Offers that fail to map are skipped with a warning so one malformed offer
// does not discard the batch.
func (a *Adapter) mapResponse(resp searchResponse, intent domain.SearchIntent) []domain.Itinerary {
	itineraries := make([]domain.Itinerary, 0, len(resp.Data))
	for _, offer := range resp.Data {
		it, err := mapOffer(offer, resp.Dictionaries, intent)
		if err != nil {
			a.log.Warn().Err(err).Str("offer_id", offer.ID).Msg("skipping unmappable Amadeus offer")
			continue
		}
		itineraries = append(itineraries, it)
	}
	return itineraries
}

// mapOffer builds a single canonical itinerary from an Amadeus flight offer.
func mapOffer(offer flightOffer, dict dictionaries, intent domain.SearchIntent) (domain.Itinerary, error) {
	if len(offer.Itineraries) == 0 {
		return domain.Itinerary{}, fmt.Errorf("offer has no itineraries")
	}

	providerID := offer.ID
	id := offer.ID
	if id == "" {
		id = uuid.NewString()
	}

	var legs []domain.Leg
	var layovers []domain.Layover
	for _, direction := range offer.Itineraries {
		for i, seg := range direction.Segments {
			leg, err := mapSegment(id, seg, dict, intent.CabinClass)
			if err != nil {
				return domain.Itinerary{}, err
			}
			if i > 0 {
				prev := direction.Segments[i-1]
				lay, err := mapLayover(prev, seg, dict)
				if err != nil {
					return domain.Itinerary{}, err
				}
				layovers = append(layovers, lay)
			}
			legs = append(legs, leg)
		}
	}
	if len(legs) == 0 {
		return domain.Itinerary{}, fmt.Errorf("offer has no segments")
	}

	price, err := mapPrice(offer.Price, intent.NumTravelers)
	if err != nil {
		return domain.Itinerary{}, err
	}

	totalDuration := int(legs[len(legs)-1].ArrivalTime.Sub(legs[0].DepartureTime).Minutes())

	return domain.Itinerary{
		ID:                   "amd_" + id,
		Legs:                 legs,
		Layovers:             layovers,
		Price:                price,
		TotalDurationMinutes: totalDuration,
		NumStops:             len(legs) - 1,
		IsDirect:             len(legs) == 1,
		Provider: domain.ProviderMetadata{
			Name:        ProviderName,
			ProviderID:  providerID,
			LastUpdated: time.Now().UTC(),
			TrustScore:  TrustScore,
		},
	}, nil
}

// mapSegment converts one flight segment to a canonical leg.
func mapSegment(offerID string, seg offerSegment, dict dictionaries, cabin domain.CabinClass) (domain.Leg, error) {
	departure, err := time.Parse(segmentTimeLayout, seg.Departure.At)
	if err != nil {
		return domain.Leg{}, fmt.Errorf("parse departure time %q: %w", seg.Departure.At, err)
	}
	arrival, err := time.Parse(segmentTimeLayout, seg.Arrival.At)
	if err != nil {
		return domain.Leg{}, fmt.Errorf("parse arrival time %q: %w", seg.Arrival.At, err)
	}

	duration, err := parseISODuration(seg.Duration)
	if err != nil {
		duration = int(arrival.Sub(departure).Minutes())
	}

	airline := dict.Carriers[seg.CarrierCode]
	if airline == "" {
		airline = seg.CarrierCode
	}

	var operating string
	if seg.Operating.CarrierCode != "" && seg.Operating.CarrierCode != seg.CarrierCode {
		operating = dict.Carriers[seg.Operating.CarrierCode]
		if operating == "" {
			operating = seg.Operating.CarrierCode
		}
	}

	return domain.Leg{
		ID:               fmt.Sprintf("amd_%s-%s", offerID, seg.ID),
		Origin:           mapAirport(seg.Departure, dict),
		Destination:      mapAirport(seg.Arrival, dict),
		DepartureTime:    departure,
		ArrivalTime:      arrival,
		DurationMinutes:  duration,
		Airline:          airline,
		AirlineCode:      seg.CarrierCode,
		FlightNumber:     seg.CarrierCode + seg.Number,
		Aircraft:         seg.Aircraft.Code,
		CabinClass:       cabin,
		OperatingAirline: operating,
	}, nil
}

// mapLayover derives the connection between two consecutive segments.
func mapLayover(prev, next offerSegment, dict dictionaries) (domain.Layover, error) {
	arrival, err := time.Parse(segmentTimeLayout, prev.Arrival.At)
	if err != nil {
		return domain.Layover{}, fmt.Errorf("parse layover arrival %q: %w", prev.Arrival.At, err)
	}
	departure, err := time.Parse(segmentTimeLayout, next.Departure.At)
	if err != nil {
		return domain.Layover{}, fmt.Errorf("parse layover departure %q: %w", next.Departure.At, err)
	}

	duration := int(departure.Sub(arrival).Minutes())
	return domain.Layover{
		Airport:         mapAirport(prev.Arrival, dict),
		DurationMinutes: duration,
		Overnight:       arrival.Day() != departure.Day() && duration >= 360,
		AirportChange:   prev.Arrival.IataCode != next.Departure.IataCode,
	}, nil
}

func mapAirport(ep offerEndpoint, dict dictionaries) domain.Airport {
	ap := domain.Airport{Code: ep.IataCode}
	if loc, ok := dict.Locations[ep.IataCode]; ok {
		ap.City = loc.CityCode
		ap.Country = loc.CountryCode
	}
	return ap
}

// mapPrice parses the decimal-string amounts from an offer price block.
func mapPrice(p offerPrice, numTravelers int) (domain.PriceBreakdown, error) {
	base, err := strconv.ParseFloat(p.Base, 64)
	if err != nil {
		return domain.PriceBreakdown{}, fmt.Errorf("parse base fare %q: %w", p.Base, err)
	}
	total, err := strconv.ParseFloat(p.GrandTotal, 64)
	if err != nil {
		total, err = strconv.ParseFloat(p.Total, 64)
		if err != nil {
			return domain.PriceBreakdown{}, fmt.Errorf("parse total fare %q: %w", p.Total, err)
		}
	}

	currency := p.Currency
	if currency == "" {
		currency = "USD"
	}
	if numTravelers < 1 {
		numTravelers = 1
	}
	perTraveler := round2(total / float64(numTravelers))

	return domain.PriceBreakdown{
		BaseFare:         base,
		Taxes:            round2(total - base),
		Total:            total,
		Currency:         currency,
		PricePerTraveler: &perTraveler,
		NumTravelers:     numTravelers,
	}, nil
}

// parseISODuration converts an ISO-8601 duration like PT5H30M to minutes.
func parseISODuration(s string) (int, error) {
	m := isoDurationPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("unsupported duration %q", s)
	}
	hours, minutes := 0, 0
	if m[1] != "" {
		hours, _ = strconv.Atoi(m[1])
	}
	if m[2] != "" {
		minutes, _ = strconv.Atoi(m[2])
	}
	return hours*60 + minutes, nil
}

func round2(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}
