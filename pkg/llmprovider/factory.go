package llmprovider

import (
	"fmt"
	"sort"

	"deskpilot/pkg/deepseek"
	"deskpilot/pkg/gemini"
)

// ProviderConfig configures a single provider entry
type ProviderConfig struct {
	Name     string
	Enabled  bool
	Priority int
	APIKey   string
	Model    string
	BaseURL  string
}

// BuildProviders constructs the enabled providers sorted by priority
// (lower value tried first).
func BuildProviders(configs []ProviderConfig) ([]Provider, error) {
	enabled := make([]ProviderConfig, 0, len(configs))
	for _, cfg := range configs {
		if cfg.Enabled {
			enabled = append(enabled, cfg)
		}
	}
	sort.SliceStable(enabled, func(i, j int) bool {
		return enabled[i].Priority < enabled[j].Priority
	})

	providers := make([]Provider, 0, len(enabled))
	for _, cfg := range enabled {
		switch cfg.Name {
		case "gemini":
			client, err := gemini.New(gemini.Config{
				APIKey: cfg.APIKey,
				Model:  cfg.Model,
			})
			if err != nil {
				return nil, fmt.Errorf("build gemini provider: %w", err)
			}
			providers = append(providers, NewGeminiAdapter(client))
		case "deepseek":
			client, err := deepseek.New(deepseek.Config{
				APIKey:  cfg.APIKey,
				Model:   cfg.Model,
				BaseURL: cfg.BaseURL,
			})
			if err != nil {
				return nil, fmt.Errorf("build deepseek provider: %w", err)
			}
			providers = append(providers, NewDeepSeekAdapter(client))
		default:
			return nil, fmt.Errorf("unknown provider: %s", cfg.Name)
		}
	}
	return providers, nil
}
