package llmprovider

import (
	"context"
	"errors"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"deskpilot/pkg/log"
)

const logPrefix = "pkg.llmprovider"

// ManagerConfig configures the provider manager
type ManagerConfig struct {
	// FallbackEnabled moves on to the next provider when one fails.
	FallbackEnabled bool

	// MaxTotalTimeout caps the whole completion including retries
	// and fallback. Zero means no cap beyond the caller's context.
	MaxTotalTimeout time.Duration

	// RequestsPerMinute throttles outbound LLM calls across all
	// providers. Zero disables throttling.
	RequestsPerMinute int

	// Retry applies per provider. Zero value falls back to
	// DefaultRetryPolicy.
	Retry RetryPolicy
}

// Manager coordinates multiple LLM providers with retry, rate
// limiting and fallback. Providers are tried in registration order.
type Manager struct {
	providers []Provider
	config    ManagerConfig
	retry     RetryPolicy
	limiter   *rate.Limiter
	logger    log.Logger

	mu    sync.Mutex
	usage Usage
	calls int64
}

// NewManager creates a provider manager
func NewManager(cfg ManagerConfig, providers []Provider, logger log.Logger) *Manager {
	retry := cfg.Retry
	if retry.Attempts == 0 {
		retry = DefaultRetryPolicy()
	}

	var limiter *rate.Limiter
	if cfg.RequestsPerMinute > 0 {
		limiter = rate.NewLimiter(rate.Limit(float64(cfg.RequestsPerMinute)/60.0), cfg.RequestsPerMinute)
	}

	return &Manager{
		providers: providers,
		config:    cfg,
		retry:     retry,
		limiter:   limiter,
		logger:    logger,
	}
}

// Providers returns the configured providers in priority order
func (m *Manager) Providers() []Provider {
	return m.providers
}

// GenerateContent tries each provider in order until one succeeds.
// Each provider gets the retry policy; fallback only applies when
// enabled and more providers remain.
func (m *Manager) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if len(m.providers) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	if m.config.MaxTotalTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.config.MaxTotalTimeout)
		defer cancel()
	}

	var errs []error
	for i, provider := range m.providers {
		if m.limiter != nil {
			if err := m.limiter.Wait(ctx); err != nil {
				return nil, err
			}
		}

		resp, err := m.generateWithRetry(ctx, provider, req)
		if err == nil {
			if i > 0 {
				m.logger.Warnf(ctx, "%v fallback provider succeeded: %s", logPrefix, provider.Name())
			}
			m.record(resp)
			return resp, nil
		}

		m.logger.Warnf(ctx, "%v provider %s failed: %v", logPrefix, provider.Name(), err)
		errs = append(errs, err)

		if !m.config.FallbackEnabled {
			return nil, err
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
	}

	return nil, errors.Join(append([]error{ErrAllProvidersFailed}, errs...)...)
}

// Complete is a convenience for single-prompt completions.
func (m *Manager) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := m.GenerateContent(ctx, &Request{
		Messages: []Message{{Role: "user", Text: prompt}},
	})
	if err != nil {
		return "", err
	}
	if resp.Text == "" {
		return "", ErrEmptyResponse
	}
	return resp.Text, nil
}

func (m *Manager) generateWithRetry(ctx context.Context, provider Provider, req *Request) (*Response, error) {
	var resp *Response
	err := m.retry.Do(ctx, func() error {
		var callErr error
		resp, callErr = provider.GenerateContent(ctx, req)
		return callErr
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (m *Manager) record(resp *Response) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	m.usage.InputTokens += resp.Usage.InputTokens
	m.usage.OutputTokens += resp.Usage.OutputTokens
	m.usage.TotalTokens += resp.Usage.TotalTokens
}

// Stats returns the number of successful calls and accumulated usage.
func (m *Manager) Stats() (int64, Usage) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls, m.usage
}
