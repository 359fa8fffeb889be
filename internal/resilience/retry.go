package resilience

import (
	"context"
	"math"
	"math/rand"
	"time"

	"github.com/trafficwizard/traffic-wizard/internal/errors"
)

// RetryConfig controls how often and how quickly an operation is
// re-attempted after a retryable failure.
type RetryConfig struct {
	MaxAttempts     int              `json:"max_attempts"`
	InitialDelay    time.Duration    `json:"initial_delay"`
	MaxDelay        time.Duration    `json:"max_delay"`
	BackoffFactor   float64          `json:"backoff_factor"`
	JitterEnabled   bool             `json:"jitter_enabled"`
	RetryableErrors func(error) bool `json:"-"`
}

// DefaultRetryConfig retries three times with exponential backoff from
// 100ms, capped at ten seconds, classifying errors via the errors
// package.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts:     3,
		InitialDelay:    100 * time.Millisecond,
		MaxDelay:        10 * time.Second,
		BackoffFactor:   2.0,
		JitterEnabled:   true,
		RetryableErrors: errors.IsRetryableError,
	}
}

// RetryableFunc is one attempt of the guarded operation.
type RetryableFunc func() error

// RetryWithConfig runs fn until it succeeds, exhausts the attempt
// budget, hits a non-retryable error, or the context is done. The last
// attempt's error is returned.
func RetryWithConfig(ctx context.Context, config RetryConfig, fn RetryableFunc) error {
	var lastErr error

	for attempt := 0; attempt < config.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		lastErr = fn()
		if lastErr == nil {
			return nil
		}
		if !config.RetryableErrors(lastErr) {
			return lastErr
		}

		lastAttempt := attempt == config.MaxAttempts-1
		if lastAttempt {
			return lastErr
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(calculateDelay(config, attempt)):
		}
	}

	return lastErr
}

// Retry runs fn with the default configuration.
func Retry(ctx context.Context, fn RetryableFunc) error {
	return RetryWithConfig(ctx, DefaultRetryConfig(), fn)
}

// calculateDelay grows the wait exponentially per attempt, caps it at
// MaxDelay, and optionally adds up to 10% jitter.
func calculateDelay(config RetryConfig, attempt int) time.Duration {
	backoff := float64(config.InitialDelay) * math.Pow(config.BackoffFactor, float64(attempt))
	delay := time.Duration(backoff)
	if delay > config.MaxDelay {
		delay = config.MaxDelay
	}
	if config.JitterEnabled {
		delay += time.Duration(rand.Int63n(int64(delay / 10)))
	}
	return delay
}
