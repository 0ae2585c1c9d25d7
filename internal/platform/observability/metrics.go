package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	AnalysesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "reviewlens_analyses_total",
		Help: "The total number of product analyses by outcome",
	}, []string{"outcome"})

	VerdictRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "reviewlens_verdict_requests_total",
		Help: "The total number of language-model verdict requests",
	}, []string{"provider", "status"})

	AnalysisDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "reviewlens_analysis_duration_seconds",
		Help:    "Duration in seconds of one full product analysis",
		Buckets: []float64{1, 2, 5, 10, 20, 30, 60, 90, 120},
	})

	ReviewsFetched = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "reviewlens_reviews_fetched",
		Help:    "Number of reviews fetched per analysis",
		Buckets: []float64{0, 10, 25, 50, 75, 100, 120},
	})

	ReportsDelivered = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "reviewlens_reports_delivered_total",
		Help: "The total number of HTML reports delivered",
	}, []string{"status"})
)

// Analysis outcome label values.
const (
	OutcomeOK               = "ok"
	OutcomeNotFound         = "not_found"
	OutcomeNoReviews        = "no_reviews"
	OutcomeInsufficientData = "insufficient_data"
	OutcomeError            = "error"
)
