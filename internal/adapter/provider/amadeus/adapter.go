// Package amadeus integrates the Amadeus Flight Offers Search API as a
// source collaborator. Failures at any stage (auth, network, parse) resolve
// to an error logged here and isolated by the orchestrator; a single
// unmappable offer is skipped without aborting the batch.
package amadeus

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/skymind/travel-decision-engine/internal/domain"
	"github.com/skymind/travel-decision-engine/internal/infrastructure/retry"
)

// ProviderName is the unique identifier for the Amadeus provider.
const ProviderName = "amadeus"

// TrustScore is the reliability score attached to Amadeus offers.
const TrustScore = 0.9

const (
	defaultBaseURL = "https://test.api.amadeus.com"
	authPath       = "/v1/security/oauth2/token"
	searchPath     = "/v2/shopping/flight-offers"

	// tokenExpiryBuffer refreshes the token slightly before Amadeus expires it.
	tokenExpiryBuffer = 60 * time.Second

	// maxOffers caps the number of offers requested per search.
	maxOffers = 20
)

// Config holds the Amadeus API credentials and endpoint.
type Config struct {
	// BaseURL overrides the API host; empty uses the test environment.
	BaseURL string

	// ClientID and ClientSecret are the OAuth2 client credentials.
	ClientID     string
	ClientSecret string

	// HTTPTimeout bounds each HTTP call.
	HTTPTimeout time.Duration
}

// Adapter implements domain.FlightProvider against the Amadeus API.
type Adapter struct {
	baseURL      string
	clientID     string
	clientSecret string
	httpClient   *http.Client
	log          zerolog.Logger

	mu          sync.Mutex
	token       string
	tokenExpiry time.Time
}

// NewAdapter creates an Amadeus adapter.
func NewAdapter(cfg Config, log zerolog.Logger) *Adapter {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timeout := cfg.HTTPTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Adapter{
		baseURL:      baseURL,
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		httpClient:   &http.Client{Timeout: timeout},
		log:          log,
	}
}

// Name returns the provider's unique identifier.
func (a *Adapter) Name() string {
	return ProviderName
}

// Search queries the flight-offers endpoint and maps the response to
// canonical itineraries. Missing credentials yield an empty result rather
// than an error, since the provider is simply not configured.
func (a *Adapter) Search(ctx context.Context, intent domain.SearchIntent) ([]domain.Itinerary, error) {
	if a.clientID == "" || a.clientSecret == "" {
		a.log.Warn().Msg("Amadeus credentials not configured, returning no results")
		return nil, nil
	}
	if len(intent.Origins) == 0 || len(intent.Destinations) == 0 {
		return nil, nil
	}

	token, err := a.accessToken(ctx)
	if err != nil {
		a.log.Error().Err(err).Msg("Amadeus authentication failed")
		return nil, domain.NewRetryableProviderError(ProviderName, err)
	}

	params := url.Values{}
	params.Set("originLocationCode", intent.Origins[0])
	params.Set("destinationLocationCode", intent.Destinations[0])
	params.Set("departureDate", intent.DepartureDate.Format("2006-01-02"))
	params.Set("adults", strconv.Itoa(intent.NumTravelers))
	params.Set("travelClass", strings.ToUpper(string(intent.CabinClass)))
	params.Set("currencyCode", "USD")
	params.Set("max", strconv.Itoa(maxOffers))
	if intent.ReturnDate != nil {
		params.Set("returnDate", intent.ReturnDate.Format("2006-01-02"))
	}
	if intent.NonstopOnly {
		params.Set("nonStop", "true")
	}

	resp, err := retry.DoWithResult(ctx, func() (searchResponse, error) {
		var r searchResponse
		err := a.getJSON(ctx, searchPath+"?"+params.Encode(), token, &r)
		return r, err
	}, retry.ProviderConfig.WithRetryIf(retry.SkipPermanent))
	if err != nil {
		a.log.Error().Err(err).Msg("Amadeus search failed")
		return nil, domain.NewRetryableProviderError(ProviderName, err)
	}

	return a.mapResponse(resp, intent), nil
}

// accessToken returns a cached OAuth2 token, refreshing it when expired.
func (a *Adapter) accessToken(ctx context.Context) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.token != "" && time.Now().Before(a.tokenExpiry) {
		return a.token, nil
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", a.clientID)
	form.Set("client_secret", a.clientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+authPath, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("build token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("token request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("token request returned %d: %s", resp.StatusCode, body)
	}

	var tr tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return "", fmt.Errorf("decode token response: %w", err)
	}

	a.token = tr.AccessToken
	a.tokenExpiry = time.Now().Add(time.Duration(tr.ExpiresIn)*time.Second - tokenExpiryBuffer)
	return a.token, nil
}

// getJSON performs an authorized GET and decodes the JSON body into out.
// Client errors (4xx) are permanent; server errors stay retryable.
func (a *Adapter) getJSON(ctx context.Context, path, token string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL+path, nil)
	if err != nil {
		return retry.NewPermanent(fmt.Errorf("build request: %w", err))
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		err := fmt.Errorf("api returned %d: %s", resp.StatusCode, body)
		if resp.StatusCode >= 400 && resp.StatusCode < 500 {
			return retry.NewPermanent(err)
		}
		return err
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return retry.NewPermanent(fmt.Errorf("decode response: %w", err))
	}
	return nil
}

// Ensure Adapter implements domain.FlightProvider at compile time.
var _ domain.FlightProvider = (*Adapter)(nil)
