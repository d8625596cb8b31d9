// Package main is the entry point for the travel decision engine.
//
//	@title						Travel Decision Engine API
//	@version					1.0.0
//	@description				Flight decision service that aggregates provider offers, deduplicates them, ranks them across seven dimensions, and explains every recommendation.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/skymind/travel-decision-engine/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/api/v1
//
//	@schemes					http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/skymind/travel-decision-engine/docs"

	"github.com/skymind/travel-decision-engine/internal/adapter/cache"
	enginehttp "github.com/skymind/travel-decision-engine/internal/adapter/http"
	"github.com/skymind/travel-decision-engine/internal/adapter/http/middleware"
	"github.com/skymind/travel-decision-engine/internal/adapter/provider/amadeus"
	"github.com/skymind/travel-decision-engine/internal/adapter/provider/sampledata"
	"github.com/skymind/travel-decision-engine/internal/config"
	"github.com/skymind/travel-decision-engine/internal/domain"
	"github.com/skymind/travel-decision-engine/internal/infrastructure/logger"
	"github.com/skymind/travel-decision-engine/internal/usecase"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.MustLoad()

	log := logger.New(logger.Config{
		Level:        cfg.Logging.Level,
		Format:       cfg.Logging.Format,
		ServiceName:  "travel-decision-engine",
		EnableCaller: cfg.IsDevelopment(),
	})
	logger.SetGlobal(log)

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Msg("Configuration loaded")

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	middleware.Setup(e, log.Logger)

	resultCache := setupCache(cfg, log)
	providers := setupProviders(cfg, log)

	orchestrator := usecase.NewSearchOrchestrator(providers, resultCache, &usecase.Config{
		GlobalTimeout:    cfg.Timeouts.GlobalSearch,
		ProviderTimeout:  cfg.Timeouts.PerProvider,
		CacheTTL:         cfg.Cache.TTL,
		EnableAdvisories: cfg.Advisor.Enabled,
	})

	handler := enginehttp.NewSearchHandler(orchestrator, resultCache)
	enginehttp.RegisterRoutes(e, handler)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	gracefulShutdown(e, resultCache, log)
}

// setupCache connects the Redis result cache. Returns nil when caching is
// disabled by configuration; an unreachable Redis still yields a cache, just
// one that always misses.
func setupCache(cfg *config.Config, log *logger.Logger) domain.Cache {
	if !cfg.Cache.Enabled {
		log.Info().Msg("Result cache disabled by configuration")
		return nil
	}

	return cache.NewRedis(cache.Config{
		Addr:     cfg.Cache.Addr,
		Password: cfg.Cache.Password,
		DB:       cfg.Cache.DB,
	}, log.Logger)
}

// setupProviders selects the flight providers: Amadeus when credentials are
// configured, always backed by the file-based sample provider.
func setupProviders(cfg *config.Config, log *logger.Logger) []domain.FlightProvider {
	var providers []domain.FlightProvider

	if cfg.HasAmadeusCredentials() {
		providers = append(providers, amadeus.NewAdapter(amadeus.Config{
			BaseURL:      cfg.Amadeus.BaseURL,
			ClientID:     cfg.Amadeus.ClientID,
			ClientSecret: cfg.Amadeus.ClientSecret,
		}, log.WithProvider(amadeus.ProviderName).Logger))
		log.Info().Msg("Amadeus provider enabled")
	}

	providers = append(providers, sampledata.NewAdapter(
		cfg.Sample.Path,
		log.WithProvider(sampledata.ProviderName).Logger,
	))

	return providers
}

// gracefulShutdown stops the server and closes the cache on SIGINT/SIGTERM.
func gracefulShutdown(e *echo.Echo, resultCache domain.Cache, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	if closer, ok := resultCache.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			log.Error().Err(err).Msg("Error closing result cache")
		}
	}

	log.Info().Msg("Server stopped")
}
