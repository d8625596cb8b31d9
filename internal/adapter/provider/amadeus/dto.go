package amadeus

// tokenResponse is the OAuth2 client-credentials grant response.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
	TokenType   string `json:"token_type"`
}

// searchResponse is the top-level flight-offers search response.
type searchResponse struct {
	Data         []flightOffer `json:"data"`
	Dictionaries dictionaries  `json:"dictionaries"`
}

// dictionaries resolves codes used across offers.
type dictionaries struct {
	// Carriers maps airline codes to full names
	Carriers map[string]string `json:"carriers"`

	// Locations maps airport codes to location details
	Locations map[string]location `json:"locations"`
}

// location describes an airport entry in the response dictionaries.
type location struct {
	CityCode    string `json:"cityCode"`
	CountryCode string `json:"countryCode"`
}

// flightOffer is one priced offer. Amadeus groups segments per direction
// under "itineraries"; for one-way searches there is a single direction.
type flightOffer struct {
	ID          string           `json:"id"`
	Itineraries []offerDirection `json:"itineraries"`
	Price       offerPrice       `json:"price"`
}

// offerDirection is one direction of travel with its segments.
type offerDirection struct {
	Duration string         `json:"duration"`
	Segments []offerSegment `json:"segments"`
}

// offerSegment is a single flight segment.
type offerSegment struct {
	ID        string        `json:"id"`
	Departure offerEndpoint `json:"departure"`
	Arrival   offerEndpoint `json:"arrival"`

	// CarrierCode is the IATA marketing carrier code
	CarrierCode string `json:"carrierCode"`

	// Number is the flight number without the carrier prefix
	Number string `json:"number"`

	// Duration is an ISO 8601 duration (e.g., "PT2H30M")
	Duration string `json:"duration"`

	Aircraft  offerAircraft  `json:"aircraft"`
	Operating offerOperating `json:"operating"`
}

// offerEndpoint is a departure or arrival point.
type offerEndpoint struct {
	IataCode string `json:"iataCode"`
	Terminal string `json:"terminal"`

	// At is the local date-time, e.g. "2026-06-15T08:00:00"
	At string `json:"at"`
}

type offerAircraft struct {
	Code string `json:"code"`
}

type offerOperating struct {
	CarrierCode string `json:"carrierCode"`
}

// offerPrice is the priced total for an offer. Amadeus serializes amounts
// as decimal strings.
type offerPrice struct {
	Base       string `json:"base"`
	Total      string `json:"total"`
	GrandTotal string `json:"grandTotal"`
	Currency   string `json:"currency"`
}
