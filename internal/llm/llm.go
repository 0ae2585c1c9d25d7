package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/esolll/reviewlens/internal/core/domain"
	"github.com/esolll/reviewlens/internal/platform/config"
)

// Provider label values for metrics and logs.
const (
	providerAnthropic = "anthropic"
	providerOpenAI    = "openai"

	statusOK    = "ok"
	statusError = "error"
)

var (
	ErrEmptyResponse = errors.New("empty model response")
	ErrNoProviders   = errors.New("no model providers configured")
)

// Stats is the aggregate context handed to the model alongside the raw
// review sample.
type Stats struct {
	TotalReviews    int
	RussianReviews  int
	CriticalReviews int
}

// Client produces a structured verdict for one product's reviews.
type Client interface {
	AnalyzeReviews(ctx context.Context, productName string, reviews []domain.Review, stats Stats) (*domain.Verdict, error)
}

// chain tries each provider in order until one answers.
type chain struct {
	providers []Client
	logger    zerolog.Logger
}

// New builds the provider chain from configuration: Anthropic first when its
// key is set, OpenAI as the fallback, and the canned mock when neither is.
func New(cfg *config.Config, logger zerolog.Logger) Client {
	var providers []Client

	if cfg.AnthropicAPIKey != "" {
		providers = append(providers, newAnthropicClient(cfg, logger))
	}

	if cfg.OpenAIAPIKey != "" {
		providers = append(providers, newOpenAIClient(cfg, logger))
	}

	if len(providers) == 0 {
		logger.Warn().Msg("no model API keys configured, verdicts will use the canned fallback")

		return &mockClient{}
	}

	return &chain{providers: providers, logger: logger.With().Str("component", "llm").Logger()}
}

func (c *chain) AnalyzeReviews(ctx context.Context, productName string, reviews []domain.Review, stats Stats) (*domain.Verdict, error) {
	var lastErr error

	for _, p := range c.providers {
		verdict, err := p.AnalyzeReviews(ctx, productName, reviews, stats)
		if err == nil {
			return verdict, nil
		}

		lastErr = err

		c.logger.Warn().Err(err).Msg("model provider failed, trying next")
	}

	if lastErr == nil {
		lastErr = ErrNoProviders
	}

	return nil, fmt.Errorf("all model providers failed: %w", lastErr)
}
