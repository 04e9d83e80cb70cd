package llmprovider

import (
	"context"
	"fmt"
	"strings"
	"time"

	"jobfinder-chatbot/pkg/log"
	"jobfinder-chatbot/pkg/metrics"
)

// Manager sends a request to its providers in priority order. Each provider
// is asked at most once; the next one is only tried when FallbackEnabled.
type Manager struct {
	providers []Provider
	config    Config
	logger    log.Logger
}

// Config tunes a Manager.
type Config struct {
	FallbackEnabled bool
	// RequestTimeout bounds every single provider call; zero means no deadline.
	RequestTimeout time.Duration
	Metrics        *metrics.Metrics
}

var _ Generator = (*Manager)(nil)

// NewManager returns a Manager over providers, which must already be sorted.
// A nil config disables fallback and timeouts.
func NewManager(providers []Provider, config *Config, logger log.Logger) *Manager {
	m := &Manager{providers: providers, logger: logger}
	if config != nil {
		m.config = *config
	}
	return m
}

// GenerateContent returns the first non-empty reply. When every candidate
// fails the error wraps ErrAllProvidersFailed and the last *ProviderError.
func (m *Manager) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	candidates := m.candidates()
	if len(candidates) == 0 {
		return nil, ErrNoProvidersConfigured
	}
	if req == nil || len(req.Parts) == 0 {
		return nil, ErrInvalidRequest
	}

	var lastErr error
	for i, p := range candidates {
		if err := ctx.Err(); err != nil {
			if lastErr == nil {
				lastErr = err
			}
			break
		}

		resp, err := m.attempt(ctx, p, req)
		if err != nil {
			lastErr = &ProviderError{Provider: p.Name(), Model: p.Model(), Err: err}
			m.logger.Warn(ctx, "llm provider failed",
				"provider", p.Name(),
				"model", p.Model(),
				"remaining", len(candidates)-i-1,
				"error", err.Error(),
			)
			continue
		}

		m.logger.Info(ctx, "llm provider answered",
			"provider", resp.ProviderName,
			"model", resp.ModelName,
			"input_tokens", resp.Usage.InputTokens,
			"output_tokens", resp.Usage.OutputTokens,
		)
		return resp, nil
	}

	return nil, fmt.Errorf("%w: %w", ErrAllProvidersFailed, lastErr)
}

// candidates is the primary provider alone unless fallback is on.
func (m *Manager) candidates() []Provider {
	if !m.config.FallbackEnabled && len(m.providers) > 1 {
		return m.providers[:1]
	}
	return m.providers
}

// attempt runs one provider under the per-call deadline. Blank text counts as a failure.
func (m *Manager) attempt(ctx context.Context, p Provider, req *Request) (*Response, error) {
	if d := m.config.RequestTimeout; d > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d)
		defer cancel()
	}

	start := time.Now()
	resp, err := p.GenerateContent(ctx, req)
	if err == nil && (resp == nil || strings.TrimSpace(resp.Text) == "") {
		err = ErrEmptyResponse
	}
	m.config.Metrics.ObserveLLMCall(p.Name(), time.Since(start), err)
	if err != nil {
		return nil, err
	}

	if resp.ProviderName == "" {
		resp.ProviderName = p.Name()
	}
	if resp.ModelName == "" {
		resp.ModelName = p.Model()
	}
	if resp.Usage == nil {
		resp.Usage = &Usage{}
	}
	return resp, nil
}
