package llmprovider

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRetryPolicyDo(t *testing.T) {
	immediate := func(int) time.Duration { return 0 }

	t.Run("success on first attempt", func(t *testing.T) {
		p := RetryPolicy{Attempts: 3, Backoff: immediate, Retryable: IsRateLimit}
		calls := 0
		err := p.Do(context.Background(), func() error {
			calls++
			return nil
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if calls != 1 {
			t.Errorf("expected 1 call, got %d", calls)
		}
	})

	t.Run("non-retryable error stops immediately", func(t *testing.T) {
		p := RetryPolicy{Attempts: 3, Backoff: immediate, Retryable: IsRateLimit}
		calls := 0
		wantErr := errors.New("invalid request")
		err := p.Do(context.Background(), func() error {
			calls++
			return wantErr
		})
		if !errors.Is(err, wantErr) {
			t.Errorf("expected %v, got %v", wantErr, err)
		}
		if calls != 1 {
			t.Errorf("expected 1 call, got %d", calls)
		}
	})

	t.Run("retryable error exhausts attempts", func(t *testing.T) {
		p := RetryPolicy{Attempts: 3, Backoff: immediate, Retryable: IsRateLimit}
		calls := 0
		err := p.Do(context.Background(), func() error {
			calls++
			return errors.New("429 too many requests")
		})
		if err == nil {
			t.Fatal("expected error")
		}
		if calls != 3 {
			t.Errorf("expected 3 calls, got %d", calls)
		}
	})

	t.Run("context cancellation aborts backoff", func(t *testing.T) {
		p := RetryPolicy{
			Attempts:  3,
			Backoff:   func(int) time.Duration { return time.Minute },
			Retryable: IsRateLimit,
		}
		ctx, cancel := context.WithCancel(context.Background())
		go func() {
			time.Sleep(10 * time.Millisecond)
			cancel()
		}()
		err := p.Do(ctx, func() error {
			return errors.New("quota exceeded")
		})
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	})
}

func TestExponentialBackoff(t *testing.T) {
	backoff := ExponentialBackoff(time.Second)
	cases := []struct {
		attempt int
		want    time.Duration
	}{
		{1, 2 * time.Second},
		{2, 4 * time.Second},
		{3, 8 * time.Second},
	}
	for _, tc := range cases {
		if got := backoff(tc.attempt); got != tc.want {
			t.Errorf("backoff(%d) = %v, want %v", tc.attempt, got, tc.want)
		}
	}
}

func TestIsRateLimit(t *testing.T) {
	cases := []struct {
		err  error
		want bool
	}{
		{nil, false},
		{errors.New("429 too many requests"), true},
		{errors.New("RESOURCE_EXHAUSTED"), true},
		{errors.New("Quota exceeded for model"), true},
		{errors.New("rate limit reached"), true},
		{errors.New("invalid API key"), false},
		{errors.New("connection refused"), false},
	}
	for _, tc := range cases {
		if got := IsRateLimit(tc.err); got != tc.want {
			t.Errorf("IsRateLimit(%v) = %v, want %v", tc.err, got, tc.want)
		}
	}
}
