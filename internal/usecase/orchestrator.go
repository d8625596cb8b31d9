package usecase

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/skymind/travel-decision-engine/internal/domain"
	"github.com/skymind/travel-decision-engine/internal/infrastructure/timeutil"
)

// Default pipeline timing values.
const (
	DefaultGlobalTimeout   = 5 * time.Second
	DefaultProviderTimeout = 2 * time.Second
	DefaultCacheTTL        = 300 * time.Second
)

// SearchUseCase is the orchestration contract: run the full decision
// pipeline for an intent and report whether the result came from cache.
type SearchUseCase interface {
	// Search executes cache lookup, provider fan-out, normalization,
	// deduplication, ranking, advisory, and cache population.
	Search(ctx context.Context, intent domain.SearchIntent) (*domain.SearchResult, error)
}

// Config contains the orchestrator's tunables.
type Config struct {
	// GlobalTimeout bounds the whole provider fan-out.
	GlobalTimeout time.Duration

	// ProviderTimeout bounds each individual provider fetch.
	ProviderTimeout time.Duration

	// CacheTTL is how long ranked batches stay cached.
	CacheTTL time.Duration

	// EnableAdvisories toggles the per-candidate price advisory stage.
	EnableAdvisories bool

	// Ranker overrides the default weight/penalty tables when set.
	Ranker *RankerConfig

	// Clock overrides system time for the price advisor; nil uses real time.
	Clock timeutil.Clock
}

// DefaultConfig returns the default orchestrator configuration.
func DefaultConfig() Config {
	return Config{
		GlobalTimeout:    DefaultGlobalTimeout,
		ProviderTimeout:  DefaultProviderTimeout,
		CacheTTL:         DefaultCacheTTL,
		EnableAdvisories: true,
	}
}

// SearchOrchestrator sequences the decision pipeline with a cache-first
// strategy. The cache is an injected collaborator; a nil cache simply
// disables the cache stages, and a failing cache degrades to a miss.
type SearchOrchestrator struct {
	providers []domain.FlightProvider
	cache     domain.Cache

	normalizer   *Normalizer
	deduplicator *Deduplicator
	ranker       *Ranker
	advisor      *PriceAdvisor

	globalTimeout    time.Duration
	providerTimeout  time.Duration
	cacheTTL         time.Duration
	enableAdvisories bool
}

// NewSearchOrchestrator creates the orchestrator. If config is nil, defaults
// are used (advisories enabled, 300s cache TTL).
func NewSearchOrchestrator(providers []domain.FlightProvider, cache domain.Cache, config *Config) *SearchOrchestrator {
	cfg := DefaultConfig()
	if config != nil {
		cfg = *config
		if cfg.GlobalTimeout <= 0 {
			cfg.GlobalTimeout = DefaultGlobalTimeout
		}
		if cfg.ProviderTimeout <= 0 {
			cfg.ProviderTimeout = DefaultProviderTimeout
		}
		if cfg.CacheTTL <= 0 {
			cfg.CacheTTL = DefaultCacheTTL
		}
	}

	rankerCfg := DefaultRankerConfig()
	if cfg.Ranker != nil {
		rankerCfg = *cfg.Ranker
	}

	return &SearchOrchestrator{
		providers:        providers,
		cache:            cache,
		normalizer:       NewNormalizer(),
		deduplicator:     NewDeduplicator(),
		ranker:           NewRanker(rankerCfg),
		advisor:          NewPriceAdvisor(cfg.Clock),
		globalTimeout:    cfg.GlobalTimeout,
		providerTimeout:  cfg.ProviderTimeout,
		cacheTTL:         cfg.CacheTTL,
		enableAdvisories: cfg.EnableAdvisories,
	}
}

// Search implements SearchUseCase.
//
// Pipeline: cache lookup -> provider fan-out -> intent filters -> normalize
// -> deduplicate -> rank -> advise -> cache store. Structurally invalid
// candidates are passed through rather than dropped; IsStructurallyValid is
// available to callers that want strict rejection.
func (o *SearchOrchestrator) Search(ctx context.Context, intent domain.SearchIntent) (*domain.SearchResult, error) {
	startTime := time.Now()

	intent.SetDefaults()
	if err := intent.Validate(); err != nil {
		return nil, err
	}

	key := CacheKey(intent)
	if o.cache != nil {
		if cached, ok := o.cache.Get(ctx, key); ok {
			return domain.NewSearchResult(cached, domain.SearchMetadata{
				CacheHit:         true,
				ProvidersQueried: []string{},
				SearchTimeMs:     time.Since(startTime).Milliseconds(),
			}), nil
		}
	}

	raw, queried, failed := o.fetchAll(ctx, intent)

	candidates := make([]domain.Itinerary, 0, len(raw))
	for _, it := range raw {
		if intent.Matches(it) {
			candidates = append(candidates, o.normalizer.Normalize(it))
		}
	}

	deduplicated := o.deduplicator.Deduplicate(candidates)
	ranked := o.ranker.Rank(deduplicated, intent.Priority)

	if o.enableAdvisories {
		for i := range ranked {
			advised, err := o.advisor.Advise(ranked[i], intent)
			if err != nil {
				return nil, fmt.Errorf("price advisory: %w", err)
			}
			ranked[i] = advised
		}
	}

	if o.cache != nil {
		o.cache.Set(ctx, key, ranked, o.cacheTTL)
	}

	return domain.NewSearchResult(ranked, domain.SearchMetadata{
		CacheHit:         false,
		ProvidersQueried: queried,
		ProvidersFailed:  failed,
		SearchTimeMs:     time.Since(startTime).Milliseconds(),
	}), nil
}

// Winners returns the category winners over an already-ranked batch.
// Read-only; independent of the main pipeline sequencing.
func (o *SearchOrchestrator) Winners(itineraries []domain.Itinerary) Winners {
	return CategoryWinners(itineraries)
}

// providerResult holds the outcome of one provider fetch.
type providerResult struct {
	provider    string
	itineraries []domain.Itinerary
	err         error
}

// fetchAll queries all providers concurrently with independent failure
// isolation: a failing, slow, or panicking provider contributes zero
// candidates instead of failing the search.
func (o *SearchOrchestrator) fetchAll(ctx context.Context, intent domain.SearchIntent) (all []domain.Itinerary, queried, failed []string) {
	queried = make([]string, 0, len(o.providers))

	if len(o.providers) == 0 {
		return nil, queried, nil
	}

	ctx, cancel := context.WithTimeout(ctx, o.globalTimeout)
	defer cancel()

	results := make(chan providerResult, len(o.providers))

	var wg sync.WaitGroup
	for _, provider := range o.providers {
		wg.Add(1)
		go func(p domain.FlightProvider) {
			defer wg.Done()
			o.fetchProvider(ctx, p, intent, results)
		}(provider)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	for result := range results {
		queried = append(queried, result.provider)
		if result.err != nil {
			failed = append(failed, result.provider)
			continue
		}
		all = append(all, result.itineraries...)
	}

	// Providers still outstanding when the global timeout fired count as failed.
	if ctx.Err() != nil && len(queried) < len(o.providers) {
		reported := make(map[string]bool, len(queried))
		for _, name := range queried {
			reported[name] = true
		}
		for _, p := range o.providers {
			if !reported[p.Name()] {
				queried = append(queried, p.Name())
				failed = append(failed, p.Name())
			}
		}
	}

	return all, queried, failed
}

// fetchProvider queries a single provider with its own timeout and panic
// recovery, so one misbehaving adapter cannot take down the search.
func (o *SearchOrchestrator) fetchProvider(ctx context.Context, provider domain.FlightProvider, intent domain.SearchIntent, results chan<- providerResult) {
	ctx, cancel := context.WithTimeout(ctx, o.providerTimeout)
	defer cancel()

	name := provider.Name()

	defer func() {
		if r := recover(); r != nil {
			results <- providerResult{
				provider: name,
				err:      fmt.Errorf("provider panic: %v", r),
			}
		}
	}()

	itineraries, err := provider.Search(ctx, intent)
	results <- providerResult{
		provider:    name,
		itineraries: itineraries,
		err:         err,
	}
}

// CacheKey derives the deterministic cache key for an intent:
//
//	search:{origins}:{destinations}:{YYYY-MM-DD}:{cabin}:{max_stops|any}:{priority}[:nonstop][:maxprice{N}]
//
// Origin and destination code lists are sorted before joining so the key is
// independent of input ordering.
func CacheKey(intent domain.SearchIntent) string {
	origins := sortedCopy(intent.Origins)
	destinations := sortedCopy(intent.Destinations)

	maxStops := "any"
	if intent.MaxStops != nil {
		maxStops = strconv.Itoa(*intent.MaxStops)
	}

	parts := []string{
		"search",
		strings.Join(origins, "-"),
		strings.Join(destinations, "-"),
		timeutil.FormatDate(intent.DepartureDate),
		string(intent.CabinClass),
		maxStops,
		string(intent.Priority),
	}

	if intent.NonstopOnly {
		parts = append(parts, "nonstop")
	}
	if intent.MaxPrice != nil {
		parts = append(parts, fmt.Sprintf("maxprice%d", int(*intent.MaxPrice)))
	}

	return strings.Join(parts, ":")
}

func sortedCopy(values []string) []string {
	out := make([]string, len(values))
	copy(out, values)
	sort.Strings(out)
	return out
}

// Ensure SearchOrchestrator implements SearchUseCase at compile time.
var _ SearchUseCase = (*SearchOrchestrator)(nil)
