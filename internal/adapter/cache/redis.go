// Package cache provides the Redis-backed cache collaborator for ranked
// search results. Every operation is safe to call when the backing store is
// unreachable: reads degrade to a miss and writes to a no-op, so cache
// trouble never aborts a search.
package cache

import (
	"context"
	"encoding/json"
	"math"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/skymind/travel-decision-engine/internal/domain"
)

// Config holds the Redis connection settings.
type Config struct {
	// Addr is the host:port of the Redis server.
	Addr string

	// Password is the optional server password.
	Password string

	// DB is the logical database number.
	DB int

	// DialTimeout bounds the startup connectivity check.
	DialTimeout time.Duration
}

// RedisCache implements domain.Cache on top of go-redis. The client is safe
// for concurrent use by multiple in-flight requests.
type RedisCache struct {
	client  *redis.Client
	log     zerolog.Logger
	enabled bool

	hits   atomic.Int64
	misses atomic.Int64
}

// NewRedis connects to Redis and returns the cache collaborator. If the
// server is unreachable at startup the cache comes up disabled: all reads
// miss and all writes no-op, which the pipeline treats as a permanent miss.
func NewRedis(cfg Config, log zerolog.Logger) *RedisCache {
	if cfg.Addr == "" {
		cfg.Addr = "localhost:6379"
	}
	if cfg.DialTimeout <= 0 {
		cfg.DialTimeout = 2 * time.Second
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), cfg.DialTimeout)
	defer cancel()

	c := &RedisCache{client: client, log: log}
	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn().Err(err).Str("addr", cfg.Addr).Msg("Redis unreachable, caching disabled")
		return c
	}

	c.enabled = true
	log.Info().Str("addr", cfg.Addr).Msg("Redis connected")
	return c
}

// Get returns the cached ranked batch for key. Any failure (connection,
// deserialization) degrades to a miss.
func (c *RedisCache) Get(ctx context.Context, key string) ([]domain.Itinerary, bool) {
	if !c.enabled {
		return nil, false
	}

	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn().Err(err).Str("key", key).Msg("Cache read failed, treating as miss")
		}
		c.misses.Add(1)
		return nil, false
	}

	var itineraries []domain.Itinerary
	if err := json.Unmarshal(data, &itineraries); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("Cache entry corrupt, treating as miss")
		c.misses.Add(1)
		return nil, false
	}

	c.hits.Add(1)
	return itineraries, true
}

// Set stores the ranked batch under key with the given TTL. Failures are
// logged and swallowed.
func (c *RedisCache) Set(ctx context.Context, key string, itineraries []domain.Itinerary, ttl time.Duration) {
	if !c.enabled {
		return
	}

	data, err := json.Marshal(itineraries)
	if err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("Cache serialization failed, skipping store")
		return
	}

	if err := c.client.Set(ctx, key, data, ttl).Err(); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("Cache write failed")
	}
}

// Delete removes the entry for key. Failures are logged and swallowed.
func (c *RedisCache) Delete(ctx context.Context, key string) {
	if !c.enabled {
		return
	}

	if err := c.client.Del(ctx, key).Err(); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("Cache delete failed")
	}
}

// Stats reports hit/miss counters for this process.
func (c *RedisCache) Stats() domain.CacheStats {
	hits := c.hits.Load()
	misses := c.misses.Load()

	var hitRate float64
	if total := hits + misses; total > 0 {
		hitRate = math.Round(float64(hits)/float64(total)*100*100) / 100
	}

	return domain.CacheStats{
		Enabled: c.enabled,
		Hits:    hits,
		Misses:  misses,
		HitRate: hitRate,
	}
}

// Close releases the underlying Redis connection.
func (c *RedisCache) Close() error {
	return c.client.Close()
}

// Ensure RedisCache implements domain.Cache at compile time.
var _ domain.Cache = (*RedisCache)(nil)
