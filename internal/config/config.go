// Package config loads application configuration from environment variables,
// with optional .env file support for local development.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Timeouts TimeoutConfig
	Cache    CacheConfig
	Amadeus  AmadeusConfig
	Sample   SampleDataConfig
	Advisor  AdvisorConfig
	Logging  LoggingConfig
	App      AppConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
}

// TimeoutConfig holds timeout settings for the search pipeline.
type TimeoutConfig struct {
	GlobalSearch time.Duration `env:"TIMEOUT_GLOBAL_SEARCH" envDefault:"5s"`
	PerProvider  time.Duration `env:"TIMEOUT_PER_PROVIDER" envDefault:"2s"`
}

// CacheConfig holds Redis result-cache settings. When Redis is unreachable
// the service runs cache-less rather than failing startup.
type CacheConfig struct {
	Enabled  bool          `env:"CACHE_ENABLED" envDefault:"true"`
	Addr     string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Password string        `env:"REDIS_PASSWORD" envDefault:""`
	DB       int           `env:"REDIS_DB" envDefault:"0"`
	TTL      time.Duration `env:"CACHE_TTL" envDefault:"5m"`
}

// AmadeusConfig holds the Amadeus API credentials. Empty credentials disable
// the provider; the sample-data provider is used instead.
type AmadeusConfig struct {
	BaseURL      string `env:"AMADEUS_BASE_URL" envDefault:""`
	ClientID     string `env:"AMADEUS_CLIENT_ID" envDefault:""`
	ClientSecret string `env:"AMADEUS_CLIENT_SECRET" envDefault:""`
}

// SampleDataConfig holds the fallback file-based provider settings.
type SampleDataConfig struct {
	Path string `env:"SAMPLE_DATA_PATH" envDefault:"data/sample_itineraries.json"`
}

// AdvisorConfig toggles price advisories on ranked results.
type AdvisorConfig struct {
	Enabled bool `env:"ADVISOR_ENABLED" envDefault:"true"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`
}

// Load reads configuration from environment variables.
// A .env file is loaded first when present; its absence is not an error.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics on error.
// Use this in main() where configuration is required to start.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// validate checks configuration values for correctness.
func validate(cfg *Config) error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}

	if cfg.Server.ReadTimeout <= 0 {
		return fmt.Errorf("SERVER_READ_TIMEOUT must be positive")
	}
	if cfg.Server.WriteTimeout <= 0 {
		return fmt.Errorf("SERVER_WRITE_TIMEOUT must be positive")
	}
	if cfg.Timeouts.GlobalSearch <= 0 {
		return fmt.Errorf("TIMEOUT_GLOBAL_SEARCH must be positive")
	}
	if cfg.Timeouts.PerProvider <= 0 {
		return fmt.Errorf("TIMEOUT_PER_PROVIDER must be positive")
	}

	// A provider slower than the global deadline can never contribute results.
	if cfg.Timeouts.PerProvider >= cfg.Timeouts.GlobalSearch {
		return fmt.Errorf("TIMEOUT_PER_PROVIDER (%s) should be less than TIMEOUT_GLOBAL_SEARCH (%s)",
			cfg.Timeouts.PerProvider, cfg.Timeouts.GlobalSearch)
	}

	if cfg.Cache.Enabled {
		if cfg.Cache.Addr == "" {
			return fmt.Errorf("REDIS_ADDR must be set when CACHE_ENABLED is true")
		}
		if cfg.Cache.TTL <= 0 {
			return fmt.Errorf("CACHE_TTL must be positive")
		}
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	validEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validEnvs[cfg.App.Env] {
		return fmt.Errorf("APP_ENV must be one of: development, staging, production; got %q", cfg.App.Env)
	}

	return nil
}

// HasAmadeusCredentials reports whether the Amadeus provider is configured.
func (c *Config) HasAmadeusCredentials() bool {
	return c.Amadeus.ClientID != "" && c.Amadeus.ClientSecret != ""
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
