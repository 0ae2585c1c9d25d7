package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	openai "github.com/sashabaranov/go-openai"
	"golang.org/x/time/rate"

	"github.com/esolll/reviewlens/internal/core/domain"
	"github.com/esolll/reviewlens/internal/platform/config"
	"github.com/esolll/reviewlens/internal/platform/observability"
)

const openaiLimiterBurst = 2

type openaiClient struct {
	client     *openai.Client
	model      string
	sampleSize int
	timeout    time.Duration
	limiter    *rate.Limiter
	logger     zerolog.Logger
}

func newOpenAIClient(cfg *config.Config, logger zerolog.Logger) *openaiClient {
	rps := cfg.RateLimitRPS
	if rps <= 0 {
		rps = 1
	}

	return &openaiClient{
		client:     openai.NewClient(cfg.OpenAIAPIKey),
		model:      cfg.OpenAIModel,
		sampleSize: cfg.VerdictSampleSize,
		timeout:    cfg.VerdictTimeout,
		limiter:    rate.NewLimiter(rate.Limit(rps), openaiLimiterBurst),
		logger:     logger.With().Str("provider", providerOpenAI).Logger(),
	}
}

func (c *openaiClient) AnalyzeReviews(ctx context.Context, productName string, reviews []domain.Review, stats Stats) (*domain.Verdict, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("openai rate limit: %w", err)
	}

	prompt, err := buildPrompt(productName, reviews, stats, c.sampleSize)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		observability.VerdictRequests.WithLabelValues(providerOpenAI, statusError).Inc()

		return nil, fmt.Errorf("openai chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		observability.VerdictRequests.WithLabelValues(providerOpenAI, statusError).Inc()

		return nil, ErrEmptyResponse
	}

	verdict, err := parseVerdict(resp.Choices[0].Message.Content)
	if err != nil {
		observability.VerdictRequests.WithLabelValues(providerOpenAI, statusError).Inc()

		return nil, err
	}

	observability.VerdictRequests.WithLabelValues(providerOpenAI, statusOK).Inc()

	c.logger.Debug().Str("product", productName).Msg("verdict received")

	return verdict, nil
}
