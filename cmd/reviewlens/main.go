package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/esolll/reviewlens/internal/analysis"
	"github.com/esolll/reviewlens/internal/bot"
	"github.com/esolll/reviewlens/internal/llm"
	"github.com/esolll/reviewlens/internal/mpstats"
	"github.com/esolll/reviewlens/internal/platform/config"
	"github.com/esolll/reviewlens/internal/platform/observability"
	"github.com/esolll/reviewlens/internal/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := newLogger(cfg.AppEnv)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	health := observability.NewServer(cfg.HealthPort, &logger)

	go func() {
		if err := health.Start(ctx); err != nil {
			logger.Error().Err(err).Msg("health check server error")
		}
	}()

	renderer, err := report.NewRenderer(cfg.ReportDir, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build report renderer")
	}

	b, err := bot.New(cfg,
		mpstats.New(cfg, logger),
		analysis.NewAnalyzer(),
		llm.New(cfg, logger),
		renderer,
		logger,
	)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to start bot")
	}

	if err := b.Run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Info().Msg("bot stopped")

			return
		}

		logger.Fatal().Err(err).Msg("bot error")
	}
}

func newLogger(appEnv string) zerolog.Logger {
	if appEnv == "local" {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).With().Timestamp().Logger()
	}

	return zerolog.New(os.Stderr).With().Timestamp().Logger()
}
