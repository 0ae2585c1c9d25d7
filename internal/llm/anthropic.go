package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/esolll/reviewlens/internal/core/domain"
	"github.com/esolll/reviewlens/internal/platform/config"
	"github.com/esolll/reviewlens/internal/platform/observability"
)

const (
	anthropicMaxTokens    = 4500
	anthropicLimiterBurst = 2
)

type anthropicClient struct {
	client     anthropic.Client
	model      string
	sampleSize int
	timeout    time.Duration
	limiter    *rate.Limiter
	logger     zerolog.Logger
}

func newAnthropicClient(cfg *config.Config, logger zerolog.Logger) *anthropicClient {
	rps := cfg.RateLimitRPS
	if rps <= 0 {
		rps = 1
	}

	return &anthropicClient{
		client:     anthropic.NewClient(option.WithAPIKey(cfg.AnthropicAPIKey)),
		model:      cfg.AnthropicModel,
		sampleSize: cfg.VerdictSampleSize,
		timeout:    cfg.VerdictTimeout,
		limiter:    rate.NewLimiter(rate.Limit(rps), anthropicLimiterBurst),
		logger:     logger.With().Str("provider", providerAnthropic).Logger(),
	}
}

func (c *anthropicClient) AnalyzeReviews(ctx context.Context, productName string, reviews []domain.Review, stats Stats) (*domain.Verdict, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("anthropic rate limit: %w", err)
	}

	prompt, err := buildPrompt(productName, reviews, stats, c.sampleSize)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: anthropicMaxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		observability.VerdictRequests.WithLabelValues(providerAnthropic, statusError).Inc()

		return nil, fmt.Errorf("anthropic completion: %w", err)
	}

	verdict, err := parseVerdict(extractText(resp))
	if err != nil {
		observability.VerdictRequests.WithLabelValues(providerAnthropic, statusError).Inc()

		return nil, err
	}

	observability.VerdictRequests.WithLabelValues(providerAnthropic, statusOK).Inc()

	c.logger.Debug().Str("product", productName).Msg("verdict received")

	return verdict, nil
}

// extractText collects the text blocks of an Anthropic response.
func extractText(resp *anthropic.Message) string {
	var result strings.Builder

	for _, block := range resp.Content {
		if block.Type == "text" {
			result.WriteString(block.Text)
		}
	}

	return result.String()
}
