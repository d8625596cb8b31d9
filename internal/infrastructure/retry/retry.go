// Package retry implements bounded retry with exponential backoff and jitter.
// Provider adapters use it around outbound API calls; errors wrapped as
// Permanent stop the loop immediately.
package retry

import (
	"context"
	"errors"
	"math/rand"
	"time"
)

// Config controls the retry loop.
type Config struct {
	// MaxAttempts is the total number of attempts, including the first.
	MaxAttempts int

	// InitialDelay is the delay before the first retry.
	InitialDelay time.Duration

	// MaxDelay caps the delay between retries.
	MaxDelay time.Duration

	// Multiplier grows the delay after each retry.
	Multiplier float64

	// JitterFactor adds up to this fraction of random jitter to each delay.
	JitterFactor float64

	// RetryIf decides whether an error is retryable. Nil retries everything.
	RetryIf func(error) bool
}

// DefaultConfig suits in-process operations such as cache writes.
var DefaultConfig = Config{
	MaxAttempts:  3,
	InitialDelay: 100 * time.Millisecond,
	MaxDelay:     2 * time.Second,
	Multiplier:   2.0,
	JitterFactor: 0.1,
}

// ProviderConfig suits calls to external flight-offer APIs, where transient
// failures are common and a little extra jitter avoids thundering herds.
var ProviderConfig = Config{
	MaxAttempts:  3,
	InitialDelay: 200 * time.Millisecond,
	MaxDelay:     5 * time.Second,
	Multiplier:   2.0,
	JitterFactor: 0.2,
}

// Do runs fn until it succeeds, the attempts are exhausted, or the context
// is cancelled. The last error is returned on failure.
func Do(ctx context.Context, fn func() error, cfg Config) error {
	_, err := DoWithResult(ctx, func() (struct{}, error) {
		return struct{}{}, fn()
	}, cfg)
	return err
}

// DoWithResult is the generic form of Do for functions that produce a value.
func DoWithResult[T any](ctx context.Context, fn func() (T, error), cfg Config) (T, error) {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 1
	}

	var result T
	var lastErr error
	delay := cfg.InitialDelay

	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		result, lastErr = fn()
		if lastErr == nil {
			return result, nil
		}

		if cfg.RetryIf != nil && !cfg.RetryIf(lastErr) {
			return result, lastErr
		}

		if attempt == cfg.MaxAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return result, ctx.Err()
		case <-time.After(sleepTime(delay, cfg.MaxDelay, cfg.JitterFactor)):
		}

		delay = time.Duration(float64(delay) * cfg.Multiplier)
	}

	return result, lastErr
}

// sleepTime applies jitter and the max-delay cap to the current backoff delay.
func sleepTime(delay, maxDelay time.Duration, jitterFactor float64) time.Duration {
	jitter := time.Duration(rand.Float64() * float64(delay) * jitterFactor)
	sleep := delay + jitter
	if sleep > maxDelay {
		sleep = maxDelay
	}
	return sleep
}

// Permanent marks an error as non-retryable.
type Permanent struct {
	Err error
}

func (p *Permanent) Error() string {
	if p.Err == nil {
		return "permanent error"
	}
	return p.Err.Error()
}

func (p *Permanent) Unwrap() error {
	return p.Err
}

// NewPermanent wraps err so that SkipPermanent stops retrying on it.
func NewPermanent(err error) error {
	if err == nil {
		return nil
	}
	return &Permanent{Err: err}
}

// IsPermanent reports whether err is (or wraps) a Permanent error.
func IsPermanent(err error) bool {
	var permanent *Permanent
	return errors.As(err, &permanent)
}

// SkipPermanent is a RetryIf predicate that retries everything except
// permanent errors.
func SkipPermanent(err error) bool {
	return !IsPermanent(err)
}

// WithRetryIf returns a copy of the config with the given predicate.
func (c Config) WithRetryIf(fn func(error) bool) Config {
	c.RetryIf = fn
	return c
}

// WithMaxAttempts returns a copy of the config with the given attempt limit.
func (c Config) WithMaxAttempts(n int) Config {
	c.MaxAttempts = n
	return c
}
