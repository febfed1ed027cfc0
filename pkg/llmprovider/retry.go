package llmprovider

import (
	"context"
	"time"
)

// RetryPolicy retries an operation on errors matched by Retryable,
// sleeping according to Backoff between attempts. A single policy is
// shared by every completion call site so the behavior stays uniform.
type RetryPolicy struct {
	// Attempts is the total number of tries, including the first.
	Attempts int

	// Backoff returns the delay before retry number n (n starts at 1).
	Backoff func(n int) time.Duration

	// Retryable decides whether an error is worth another attempt.
	Retryable func(error) bool
}

// DefaultRetryPolicy matches the upstream behavior: 3 attempts,
// exponential backoff of 2s then 4s, rate-limit errors only.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		Attempts:  3,
		Backoff:   ExponentialBackoff(time.Second),
		Retryable: IsRateLimit,
	}
}

// ExponentialBackoff returns a schedule of base*2^n: with base=1s the
// delays before retries are 2s, 4s, 8s, ...
func ExponentialBackoff(base time.Duration) func(int) time.Duration {
	return func(n int) time.Duration {
		return base << uint(n)
	}
}

// Do runs fn until it succeeds, exhausts attempts, or hits a
// non-retryable error. Context cancellation aborts the backoff sleep.
func (p RetryPolicy) Do(ctx context.Context, fn func() error) error {
	attempts := p.Attempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		lastErr = fn()
		if lastErr == nil {
			return nil
		}
		if p.Retryable == nil || !p.Retryable(lastErr) {
			return lastErr
		}
		if attempt == attempts {
			break
		}

		delay := time.Duration(0)
		if p.Backoff != nil {
			delay = p.Backoff(attempt)
		}
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return lastErr
}
