package llmprovider

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"jobfinder-chatbot/config"
	"jobfinder-chatbot/pkg/gemini"
	"jobfinder-chatbot/pkg/log"
)

type constructor func(ctx context.Context, cfg config.ProviderConfig) (Provider, error)

// constructors maps a configured provider name to its builder.
var constructors = map[string]constructor{
	"gemini":    newGemini,
	"anthropic": newAnthropic,
	"claude":    newAnthropic,
	"openai":    openAICompatible("openai", ""),
	"deepseek":  openAICompatible("deepseek", DeepSeekBaseURL),
	"qwen":      openAICompatible("qwen", QwenBaseURL),
	"alibaba":   openAICompatible("qwen", QwenBaseURL),
}

// InitializeProviders builds the enabled providers of cfg in ascending priority.
// A provider that cannot be built is logged and left out; it is an error only
// when none is left.
func InitializeProviders(ctx context.Context, cfg *config.LLMConfig, l log.Logger) ([]Provider, error) {
	if cfg == nil {
		return nil, errors.New("llmprovider: nil LLM config")
	}

	enabled := make([]config.ProviderConfig, 0, len(cfg.Providers))
	for _, p := range cfg.Providers {
		if p.Enabled {
			enabled = append(enabled, p)
		}
	}
	if len(enabled) == 0 {
		return nil, ErrNoProvidersConfigured
	}
	slices.SortStableFunc(enabled, func(a, b config.ProviderConfig) int {
		return cmp.Compare(a.Priority, b.Priority)
	})

	var (
		providers []Provider
		failures  []error
	)
	for _, pc := range enabled {
		p, err := buildProvider(ctx, pc)
		if err != nil {
			err = fmt.Errorf("%s (priority %d): %w", pc.Name, pc.Priority, err)
			l.Warnf(ctx, "llmprovider.InitializeProviders: skipping %v", err)
			failures = append(failures, err)
			continue
		}
		providers = append(providers, p)
	}

	if len(providers) == 0 {
		return nil, fmt.Errorf("llmprovider: no provider could be built: %w", errors.Join(failures...))
	}
	return providers, nil
}

func buildProvider(ctx context.Context, pc config.ProviderConfig) (Provider, error) {
	build, ok := constructors[strings.ToLower(strings.TrimSpace(pc.Name))]
	if !ok {
		return nil, ErrUnknownProvider
	}
	if pc.APIKey == "" {
		return nil, errors.New("api key is required")
	}
	if pc.Model == "" {
		return nil, errors.New("model is required")
	}
	return build(ctx, pc)
}

func newGemini(ctx context.Context, pc config.ProviderConfig) (Provider, error) {
	client, err := gemini.New(ctx, gemini.Config{
		APIKey:  pc.APIKey,
		Model:   pc.Model,
		BaseURL: pc.BaseURL,
	})
	if err != nil {
		return nil, err
	}
	return NewGeminiAdapter(client), nil
}

func newAnthropic(_ context.Context, pc config.ProviderConfig) (Provider, error) {
	return NewAnthropicAdapter(pc.APIKey, pc.BaseURL, pc.Model), nil
}

// openAICompatible builds a go-openai backed provider; defaultURL applies when
// the config leaves base_url empty.
func openAICompatible(name, defaultURL string) constructor {
	return func(_ context.Context, pc config.ProviderConfig) (Provider, error) {
		baseURL := pc.BaseURL
		if baseURL == "" {
			baseURL = defaultURL
		}
		return NewOpenAIAdapter(name, pc.APIKey, baseURL, pc.Model), nil
	}
}
