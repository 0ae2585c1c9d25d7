package config

import (
	"os"
	"testing"
	"time"
)

// Test environment variable keys.
const (
	testEnvBotToken   = "BOT_TOKEN"
	testEnvMpstatsKey = "MPSTATS_API_KEY"
)

// Test values.
const (
	testBotToken   = "123456:ABC-DEF"
	testMpstatsKey = "mp-test-key"
	testErrLoad    = "Load() error = %v"
)

func setRequiredEnvVars(t *testing.T) {
	t.Helper()

	t.Setenv(testEnvBotToken, testBotToken)
	t.Setenv(testEnvMpstatsKey, testMpstatsKey)
}

func TestLoad_MissingRequired(t *testing.T) {
	os.Unsetenv(testEnvBotToken)
	os.Unsetenv(testEnvMpstatsKey)

	_, err := Load()
	if err == nil {
		t.Error("expected error for missing required env vars")
	}
}

func TestLoad_ValidConfig(t *testing.T) {
	setRequiredEnvVars(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf(testErrLoad, err)
	}

	if cfg.BotToken != testBotToken {
		t.Errorf("BotToken = %q, want %q", cfg.BotToken, testBotToken)
	}

	if cfg.MpstatsAPIKey != testMpstatsKey {
		t.Errorf("MpstatsAPIKey = %q, want %q", cfg.MpstatsAPIKey, testMpstatsKey)
	}
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnvVars(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf(testErrLoad, err)
	}

	if cfg.AppEnv != "local" {
		t.Errorf("AppEnv = %q, want %q", cfg.AppEnv, "local")
	}

	if cfg.MaxReviews != 120 {
		t.Errorf("MaxReviews = %d, want 120", cfg.MaxReviews)
	}

	if cfg.VerdictSampleSize != 25 {
		t.Errorf("VerdictSampleSize = %d, want 25", cfg.VerdictSampleSize)
	}

	if cfg.ProductTimeout != 12*time.Second {
		t.Errorf("ProductTimeout = %v, want 12s", cfg.ProductTimeout)
	}

	if cfg.VerdictTimeout != 35*time.Second {
		t.Errorf("VerdictTimeout = %v, want 35s", cfg.VerdictTimeout)
	}
}

func TestLoad_Overrides(t *testing.T) {
	setRequiredEnvVars(t)
	t.Setenv("MAX_REVIEWS", "50")
	t.Setenv("REVIEWS_TIMEOUT", "5s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf(testErrLoad, err)
	}

	if cfg.MaxReviews != 50 {
		t.Errorf("MaxReviews = %d, want 50", cfg.MaxReviews)
	}

	if cfg.ReviewsTimeout != 5*time.Second {
		t.Errorf("ReviewsTimeout = %v, want 5s", cfg.ReviewsTimeout)
	}
}
