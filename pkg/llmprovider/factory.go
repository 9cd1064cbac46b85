package llmprovider

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"filmbuff-ai/config"
	"filmbuff-ai/pkg/gemini"
	"filmbuff-ai/pkg/log"
	"filmbuff-ai/pkg/openai"
)

// InitializeProviders creates Provider instances from config.LLMConfig.
// Returns providers sorted by priority (ascending) with disabled providers filtered out.
// Providers that fail to initialize are skipped instead of failing the whole service.
func InitializeProviders(ctx context.Context, l log.Logger, cfg *config.LLMConfig) ([]Provider, error) {
	if cfg == nil {
		return nil, fmt.Errorf("LLM config is nil")
	}

	var enabled []config.ProviderConfig
	for _, p := range cfg.Providers {
		if p.Enabled {
			enabled = append(enabled, p)
		}
	}
	if len(enabled) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	sort.SliceStable(enabled, func(i, j int) bool {
		return enabled[i].Priority < enabled[j].Priority
	})

	var providers []Provider
	var initErrors []string
	for _, p := range enabled {
		provider, err := createProvider(p)
		if err != nil {
			msg := fmt.Sprintf("provider %s (priority %d): %v", p.Name, p.Priority, err)
			initErrors = append(initErrors, msg)
			l.Warnf(ctx, "llmprovider.InitializeProviders: skipping %s", msg)
			continue
		}
		providers = append(providers, provider)
	}

	if len(providers) == 0 {
		return nil, fmt.Errorf("no providers successfully initialized: %s", strings.Join(initErrors, "; "))
	}
	if len(initErrors) > 0 {
		l.Warnf(ctx, "llmprovider.InitializeProviders: %d provider(s) failed, continuing with %d",
			len(initErrors), len(providers))
	}
	return providers, nil
}

// createProvider creates a concrete provider instance based on the provider config
func createProvider(cfg config.ProviderConfig) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("model is required")
	}

	httpClient, err := httpClientFor(cfg.Timeout)
	if err != nil {
		return nil, err
	}

	name := strings.ToLower(cfg.Name)
	switch name {
	case ProviderGemini:
		client, err := gemini.New(gemini.Config{
			APIKey:     cfg.APIKey,
			Model:      cfg.Model,
			APIURL:     cfg.BaseURL,
			HTTPClient: httpClient,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini client: %w", err)
		}
		return NewGeminiAdapter(client), nil

	case ProviderOpenAI, ProviderDeepSeek, ProviderQwen, ProviderAlibaba:
		baseURL := cfg.BaseURL
		if baseURL == "" {
			baseURL = defaultBaseURL(name)
		}
		client, err := openai.New(openai.Config{
			APIKey:     cfg.APIKey,
			Model:      cfg.Model,
			BaseURL:    baseURL,
			HTTPClient: httpClient,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create %s client: %w", name, err)
		}
		if name == ProviderAlibaba {
			name = ProviderQwen
		}
		return NewOpenAIAdapter(name, client), nil

	default:
		return nil, fmt.Errorf("unknown provider: %s", cfg.Name)
	}
}

func defaultBaseURL(name string) string {
	switch name {
	case ProviderDeepSeek:
		return openai.DeepSeekBaseURL
	case ProviderQwen, ProviderAlibaba:
		return openai.QwenBaseURL
	}
	return openai.DefaultBaseURL
}

// httpClientFor returns nil (client default) when timeout is unset.
func httpClientFor(timeout string) (*http.Client, error) {
	if timeout == "" {
		return nil, nil
	}
	d, err := time.ParseDuration(timeout)
	if err != nil {
		return nil, fmt.Errorf("invalid timeout %q: %w", timeout, err)
	}
	return &http.Client{Timeout: d}, nil
}

// ManagerConfig converts the LLM section of the service config into a
// Manager config. Empty durations keep the Manager defaults.
func ManagerConfig(cfg *config.LLMConfig) (*Config, error) {
	if cfg == nil {
		return nil, fmt.Errorf("LLM config is nil")
	}
	out := &Config{
		FallbackEnabled: cfg.FallbackEnabled,
		RetryAttempts:   cfg.RetryAttempts,
	}
	var err error
	if out.RetryDelay, err = parseOptionalDuration(cfg.RetryDelay); err != nil {
		return nil, fmt.Errorf("retry_delay: %w", err)
	}
	if out.MaxTotalTimeout, err = parseOptionalDuration(cfg.MaxTotalTimeout); err != nil {
		return nil, fmt.Errorf("max_total_timeout: %w", err)
	}
	return out, nil
}

func parseOptionalDuration(s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q: %w", s, err)
	}
	return d, nil
}
