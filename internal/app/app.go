// Package app wires the routing pipeline from configuration. Both the
// API server and the REPL build the same graph.
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"deskpilot/config"
	"deskpilot/internal/bridge"
	"deskpilot/internal/catalog"
	"deskpilot/internal/codegen"
	"deskpilot/internal/contextstore"
	"deskpilot/internal/desktop"
	"deskpilot/internal/email"
	"deskpilot/internal/executor"
	"deskpilot/internal/function"
	"deskpilot/internal/goal"
	"deskpilot/internal/intent"
	"deskpilot/internal/strategy"
	"deskpilot/pkg/gmail"
	"deskpilot/pkg/llmprovider"
	"deskpilot/pkg/log"
)

// Build assembles the bridge and everything behind it.
func Build(ctx context.Context, cfg *config.Config, logger log.Logger) (*bridge.Bridge, error) {
	providerConfigs := make([]llmprovider.ProviderConfig, 0, len(cfg.LLM.Providers))
	for _, p := range cfg.LLM.Providers {
		providerConfigs = append(providerConfigs, llmprovider.ProviderConfig{
			Name:     p.Name,
			Enabled:  p.Enabled,
			Priority: p.Priority,
			APIKey:   p.APIKey,
			BaseURL:  p.BaseURL,
			Model:    p.Model,
		})
	}
	providers, err := llmprovider.BuildProviders(providerConfigs)
	if err != nil {
		return nil, fmt.Errorf("build providers: %w", err)
	}

	var totalTimeout time.Duration
	if cfg.LLM.MaxTotalTimeout != "" {
		totalTimeout, err = time.ParseDuration(cfg.LLM.MaxTotalTimeout)
		if err != nil {
			return nil, fmt.Errorf("parse llm.max_total_timeout: %w", err)
		}
	}

	retry := llmprovider.DefaultRetryPolicy()
	if cfg.LLM.RetryAttempts > 0 {
		retry.Attempts = cfg.LLM.RetryAttempts
	}

	manager := llmprovider.NewManager(llmprovider.ManagerConfig{
		FallbackEnabled:   cfg.LLM.FallbackEnabled,
		MaxTotalTimeout:   totalTimeout,
		RequestsPerMinute: cfg.LLM.RequestsPerMinute,
		Retry:             retry,
	}, providers, logger)

	cat, err := catalog.New()
	if err != nil {
		return nil, fmt.Errorf("load capability catalog: %w", err)
	}

	classifier, err := intent.New(cat, manager, cfg.Router.CacheSize, logger)
	if err != nil {
		return nil, fmt.Errorf("build classifier: %w", err)
	}

	store := contextstore.New(cfg.Context.StorePath, logger)
	sim := desktop.NewSimulator(logger)
	store.SetInstalledApps(ctx, sim.InstalledApps(ctx))

	var sender email.Sender
	if cfg.Email.Enabled && cfg.Email.CredentialsPath != "" {
		gmailClient, gmErr := gmail.NewClientFromCredentialsFile(ctx, cfg.Email.CredentialsPath)
		if gmErr != nil {
			logger.Warnf(ctx, "gmail not available, falling back to clipboard delivery: %v", gmErr)
		} else {
			sender = gmailClient
		}
	}

	draftsDir := ""
	if home, hErr := os.UserHomeDir(); hErr == nil {
		draftsDir = filepath.Join(home, "Documents", "deskpilot_drafts")
	}

	return bridge.New(
		classifier,
		goal.NewExtractor(manager, logger),
		strategy.New(store, logger),
		executor.New(sim, logger),
		function.New(sim, logger),
		store,
		email.New(manager, sender, sim, draftsDir, logger),
		codegen.New(manager, sim, logger),
		manager,
		cat,
		bridge.Config{
			HighConfidence: cfg.Router.HighConfidence,
			LowConfidence:  cfg.Router.LowConfidence,
		},
		logger,
	), nil
}
