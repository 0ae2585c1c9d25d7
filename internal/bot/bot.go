package bot

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/esolll/reviewlens/internal/analysis"
	"github.com/esolll/reviewlens/internal/core/domain"
	"github.com/esolll/reviewlens/internal/llm"
	"github.com/esolll/reviewlens/internal/mpstats"
	"github.com/esolll/reviewlens/internal/platform/config"
	"github.com/esolll/reviewlens/internal/platform/observability"
	"github.com/esolll/reviewlens/internal/report"
)

// Commands.
const (
	CmdStart = "start"
	CmdHelp  = "help"
	CmdInfo  = "info"
)

// Log field names.
const (
	logFieldChatID  = "chat_id"
	logFieldArticle = "article"
	logFieldRequest = "request_id"
)

// articlePattern extracts a Wildberries article number from free text.
var articlePattern = regexp.MustCompile(`\b\d{6,}\b`)

// Catalog is the product and review source.
type Catalog interface {
	Product(ctx context.Context, articleID string) (*domain.Product, error)
	Reviews(ctx context.Context, articleID string) ([]domain.Review, error)
}

// Bot wires the analysis pipeline to Telegram. Updates are handled one at a
// time: an analysis finishes before the next message is read.
type Bot struct {
	cfg      *config.Config
	api      *tgbotapi.BotAPI
	catalog  Catalog
	analyzer *analysis.Analyzer
	verdicts llm.Client
	reports  *report.Renderer
	logger   zerolog.Logger
}

func New(cfg *config.Config, catalog Catalog, analyzer *analysis.Analyzer, verdicts llm.Client, reports *report.Renderer, logger zerolog.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return nil, fmt.Errorf("creating bot API: %w", err)
	}

	return &Bot{
		cfg:      cfg,
		api:      api,
		catalog:  catalog,
		analyzer: analyzer,
		verdicts: verdicts,
		reports:  reports,
		logger:   logger.With().Str("component", "bot").Logger(),
	}, nil
}

func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = b.cfg.UpdateTimeout

	updates := b.api.GetUpdatesChan(u)

	b.logger.Info().Str("username", b.api.Self.UserName).Msg("bot started")

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()

			return fmt.Errorf("bot run context canceled: %w", ctx.Err())
		case update := <-updates:
			if update.Message == nil {
				continue
			}

			b.handleMessage(ctx, update.Message)
		}
	}
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg.IsCommand() {
		switch msg.Command() {
		case CmdStart:
			b.sendMessage(msg.Chat.ID, report.StartText())
		case CmdHelp:
			b.sendMessage(msg.Chat.ID, report.HelpText())
		case CmdInfo:
			b.sendMessage(msg.Chat.ID, report.InfoText())
		default:
			b.sendMessage(msg.Chat.ID, report.FormatHintText())
		}

		return
	}

	articleID := articlePattern.FindString(msg.Text)
	if articleID == "" {
		b.sendMessage(msg.Chat.ID, report.FormatHintText())

		return
	}

	b.handleAnalyze(ctx, msg.Chat.ID, articleID)
}

// handleAnalyze runs the full pipeline for one article. Every stage degrades
// into a chat message; no error escapes to the update loop.
func (b *Bot) handleAnalyze(ctx context.Context, chatID int64, articleID string) {
	requestID := uuid.NewString()
	logger := b.logger.With().
		Str(logFieldRequest, requestID).
		Str(logFieldArticle, articleID).
		Int64(logFieldChatID, chatID).
		Logger()

	started := time.Now()

	logger.Info().Msg("analysis requested")
	b.sendMessage(chatID, report.ProgressText(articleID))

	product, err := b.catalog.Product(ctx, articleID)
	if err != nil {
		if errors.Is(err, mpstats.ErrProductNotFound) {
			observability.AnalysesTotal.WithLabelValues(observability.OutcomeNotFound).Inc()
			b.sendMessage(chatID, report.NotFoundText(articleID))
		} else {
			logger.Error().Err(err).Msg("product fetch failed")
			observability.AnalysesTotal.WithLabelValues(observability.OutcomeError).Inc()
			b.sendMessage(chatID, report.AnalysisErrorText())
		}

		return
	}

	b.sendMessage(chatID, report.FoundText(product))

	reviews, err := b.catalog.Reviews(ctx, articleID)
	if err != nil {
		logger.Warn().Err(err).Msg("reviews fetch failed")
		observability.AnalysesTotal.WithLabelValues(observability.OutcomeNoReviews).Inc()
		b.sendMessage(chatID, report.ReviewsUnavailableText())

		return
	}

	observability.ReviewsFetched.Observe(float64(len(reviews)))
	b.sendMessage(chatID, report.ProcessingText(len(reviews)))

	result, err := b.analyzer.Analyze(product.Name, reviews)
	if err != nil {
		logger.Warn().Err(err).Msg("analysis rejected review set")
		observability.AnalysesTotal.WithLabelValues(observability.OutcomeInsufficientData).Inc()
		b.sendMessage(chatID, report.InsufficientDataText())

		return
	}

	b.attachVerdict(ctx, logger, product.Name, result)
	b.sendMessage(chatID, report.StatusText(result))

	decision := analysis.Decide(result)
	ranked := b.analyzer.Rank(product.Name, result.Reviews)

	b.sendMessage(chatID, report.SummaryText(product, result, decision))

	if result.Verdict != nil {
		b.sendMessage(chatID, report.InsightsText(result.Verdict))
		b.sendMessage(chatID, report.RecommendationsText(result.Verdict))
	}

	b.sendMessage(chatID, report.ExamplesText(ranked))

	if text := report.ProblemsText(result); text != "" {
		b.sendMessage(chatID, text)
	}

	b.deliverReport(logger, chatID, report.Data{
		ArticleID:   articleID,
		Product:     product,
		Analysis:    result,
		Decision:    decision,
		Ranked:      ranked,
		GeneratedAt: time.Now(),
	})

	observability.AnalysesTotal.WithLabelValues(observability.OutcomeOK).Inc()
	observability.AnalysisDuration.Observe(time.Since(started).Seconds())

	logger.Info().
		Str("decision", string(decision.Decision)).
		Int("risk_score", decision.Score).
		Dur("elapsed", time.Since(started)).
		Msg("analysis finished")
}

// attachVerdict asks the model chain for a verdict and falls back to the
// canned record on any failure, flagging the analysis as not AI powered.
func (b *Bot) attachVerdict(ctx context.Context, logger zerolog.Logger, productName string, result *domain.Analysis) {
	verdict, err := b.verdicts.AnalyzeReviews(ctx, productName, result.Reviews, llm.Stats{
		TotalReviews:    result.TotalReviews,
		RussianReviews:  result.RussianReviews,
		CriticalReviews: result.CriticalCount,
	})
	if err != nil {
		logger.Warn().Err(err).Msg("verdict failed, using fallback")

		result.Verdict = domain.FallbackVerdict()
		result.AIPowered = false

		return
	}

	result.Verdict = verdict
	result.AIPowered = true
}

func (b *Bot) deliverReport(logger zerolog.Logger, chatID int64, data report.Data) {
	path, err := b.reports.WriteReport(data)
	if err != nil {
		logger.Error().Err(err).Msg("report write failed")
		observability.ReportsDelivered.WithLabelValues("error").Inc()
		b.sendMessage(chatID, report.ReportErrorText())

		return
	}

	doc := tgbotapi.NewDocument(chatID, tgbotapi.FilePath(path))
	doc.Caption = report.ReportCaption(data.Product.Name)

	if _, err := b.api.Send(doc); err != nil {
		logger.Error().Err(err).Msg("report send failed")
		observability.ReportsDelivered.WithLabelValues("error").Inc()
		b.sendMessage(chatID, report.ReportErrorText())

		return
	}

	observability.ReportsDelivered.WithLabelValues("ok").Inc()
}

func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown

	if _, err := b.api.Send(msg); err != nil {
		b.logger.Error().Err(err).Int64(logFieldChatID, chatID).Msg("failed to send message")

		// Markdown in review bodies can break entity parsing; retry plain.
		plain := tgbotapi.NewMessage(chatID, text)
		if _, err := b.api.Send(plain); err != nil {
			b.logger.Error().Err(err).Int64(logFieldChatID, chatID).Msg("failed to send plain message")
		}
	}
}
