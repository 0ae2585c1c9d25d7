package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all process configuration. Secrets are required and have no
// source defaults.
type Config struct {
	AppEnv string `env:"APP_ENV" envDefault:"local"`

	BotToken      string `env:"BOT_TOKEN,required"`
	MpstatsAPIKey string `env:"MPSTATS_API_KEY,required"`

	AnthropicAPIKey string `env:"ANTHROPIC_API_KEY"`
	AnthropicModel  string `env:"ANTHROPIC_MODEL" envDefault:"claude-3-5-sonnet-20241022"`
	OpenAIAPIKey    string `env:"OPENAI_API_KEY"`
	OpenAIModel     string `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`

	MpstatsBaseURL string `env:"MPSTATS_BASE_URL" envDefault:"https://mpstats.io"`

	MaxReviews        int `env:"MAX_REVIEWS" envDefault:"120"`
	VerdictSampleSize int `env:"VERDICT_SAMPLE_SIZE" envDefault:"25"`

	ProductTimeout time.Duration `env:"PRODUCT_TIMEOUT" envDefault:"12s"`
	ReviewsTimeout time.Duration `env:"REVIEWS_TIMEOUT" envDefault:"25s"`
	VerdictTimeout time.Duration `env:"VERDICT_TIMEOUT" envDefault:"35s"`

	RateLimitRPS  int    `env:"RATE_LIMIT_RPS" envDefault:"1"`
	UpdateTimeout int    `env:"UPDATE_TIMEOUT" envDefault:"60"`
	ReportDir     string `env:"REPORT_DIR" envDefault:"./reports"`
	HealthPort    int    `env:"HEALTH_PORT" envDefault:"8080"`
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
