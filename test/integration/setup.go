// Package integration exercises the full decision pipeline end to end:
// HTTP handlers, the orchestrator, and mock provider/cache collaborators.
package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/labstack/echo/v4"

	enginehttp "github.com/skymind/travel-decision-engine/internal/adapter/http"
	"github.com/skymind/travel-decision-engine/internal/domain"
	"github.com/skymind/travel-decision-engine/internal/infrastructure/timeutil"
	"github.com/skymind/travel-decision-engine/internal/usecase"
)

// advisorNow anchors the price advisor clock so booking-window advice is
// deterministic regardless of when the suite runs.
const advisorNow = "2026-09-01T10:00:00Z"

// TestServer wraps an Echo instance with the full route table registered.
type TestServer struct {
	Echo    *echo.Echo
	Handler *enginehttp.SearchHandler
}

// NewTestServer creates a test server around the given use case and cache.
func NewTestServer(uc usecase.SearchUseCase, cache domain.Cache) *TestServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	handler := enginehttp.NewSearchHandler(uc, cache)
	enginehttp.RegisterRoutes(e, handler)

	return &TestServer{
		Echo:    e,
		Handler: handler,
	}
}

// Request describes one test HTTP request.
type Request struct {
	Method      string
	Path        string
	Body        interface{}
	ContentType string
}

// Response captures the recorded result of a test request.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request against the server.
func (ts *TestServer) Do(req Request) Response {
	var bodyReader *bytes.Reader
	if req.Body != nil {
		bodyBytes, _ := json.Marshal(req.Body)
		bodyReader = bytes.NewReader(bodyBytes)
	} else {
		bodyReader = bytes.NewReader(nil)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bodyReader)

	if req.ContentType != "" {
		httpReq.Header.Set(echo.HeaderContentType, req.ContentType)
	} else if req.Body != nil {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// SearchRequest posts a search intent.
func (ts *TestServer) SearchRequest(body interface{}) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/search",
		Body:   body,
	})
}

// ExplainRequest posts a search intent to the explain endpoint.
func (ts *TestServer) ExplainRequest(body interface{}) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/explain",
		Body:   body,
	})
}

// HealthRequest issues a health check.
func (ts *TestServer) HealthRequest() Response {
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/health",
	})
}

// ParseSearchResult decodes the body as a ranked search result.
func (r *Response) ParseSearchResult() (*domain.SearchResult, error) {
	var result domain.SearchResult
	if err := json.Unmarshal(r.Body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ParseError decodes the body as a generic error envelope.
func (r *Response) ParseError() (map[string]interface{}, error) {
	var errResp map[string]interface{}
	if err := json.Unmarshal(r.Body, &errResp); err != nil {
		return nil, err
	}
	return errResp, nil
}

// SearchBody is a helper for building search request bodies.
type SearchBody struct {
	Origins       []string `json:"origins"`
	Destinations  []string `json:"destinations"`
	DepartureDate string   `json:"departure_date"`
	CabinClass    string   `json:"cabin_class,omitempty"`
	NonstopOnly   bool     `json:"nonstop_only,omitempty"`
	MaxPrice      *float64 `json:"max_price,omitempty"`
	Priority      string   `json:"priority,omitempty"`
}

// DefaultSearchBody returns a valid request matching the canned mock batches.
func DefaultSearchBody() SearchBody {
	return SearchBody{
		Origins:       []string{"JFK"},
		Destinations:  []string{"LAX"},
		DepartureDate: "2026-09-15",
	}
}

// NewOrchestrator builds an orchestrator with test-friendly timeouts and a
// pinned advisor clock.
func NewOrchestrator(providers []domain.FlightProvider, cache domain.Cache) *usecase.SearchOrchestrator {
	return usecase.NewSearchOrchestrator(providers, cache, &usecase.Config{
		GlobalTimeout:    2 * time.Second,
		ProviderTimeout:  500 * time.Millisecond,
		CacheTTL:         time.Minute,
		EnableAdvisories: true,
		Clock:            timeutil.NewMockClockFromString(advisorNow),
	})
}
