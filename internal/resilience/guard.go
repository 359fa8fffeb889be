package resilience

import "context"

// Guard combines retry and circuit breaking for calls to one external
// service. Failures inside the retry loop count once against the
// breaker per Do invocation.
type Guard struct {
	breaker *CircuitBreaker
	retry   RetryConfig
}

// NewGuard creates a guard with the given breaker and retry settings.
func NewGuard(breakerCfg CircuitBreakerConfig, retryCfg RetryConfig) *Guard {
	if retryCfg.RetryableErrors == nil {
		retryCfg.RetryableErrors = DefaultRetryConfig().RetryableErrors
	}
	return &Guard{
		breaker: NewCircuitBreaker(breakerCfg),
		retry:   retryCfg,
	}
}

// Do executes fn behind the breaker, retrying transient failures.
func (g *Guard) Do(ctx context.Context, fn func() error) error {
	return g.breaker.Call(func() error {
		return RetryWithConfig(ctx, g.retry, fn)
	})
}

// BreakerState reports the underlying circuit breaker state.
func (g *Guard) BreakerState() CircuitBreakerState {
	return g.breaker.State()
}
