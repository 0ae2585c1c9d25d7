package domain

// Severity labels attached to matched problems.
const (
	SeverityHigh   = "высокая"
	SeverityMedium = "средняя"
)

// CategoryMatch aggregates keyword hits for one problem category across the
// accepted review set.
type CategoryMatch struct {
	Name       string
	Count      int
	Percentage float64
	Examples   []string
}

// MatchedProblem is one problem category matched inside a single review
// during ranking.
type MatchedProblem struct {
	Name     string
	Severity string
	Hits     int
}

// ScoredReview is a review tagged with its criticality score, matched
// problems and a short problem summary. It exists only transiently during
// ranking.
type ScoredReview struct {
	Review
	Score    int
	Problems []MatchedProblem
	Summary  string
}

// Analysis is the keyword-based view of one product's review set.
type Analysis struct {
	ProductName    string
	Category       string
	TotalReviews   int
	RussianReviews int
	CriticalCount  int
	PositiveCount  int
	NeutralCount   int
	// Problems is sorted by percentage descending and only contains
	// categories with at least one hit.
	Problems      []CategoryMatch
	Reviews       []Review
	BestPositive  []Review
	WorstNegative []Review
	Verdict       *Verdict
	AIPowered     bool
}

// Decision is the final buy recommendation.
type Decision string

const (
	DecisionBuy     Decision = "ПОКУПАТЬ"
	DecisionCaution Decision = "ОСТОРОЖНО"
	DecisionNo      Decision = "НЕТ"
)

// Emoji returns the chat marker used alongside the decision.
func (d Decision) Emoji() string {
	switch d {
	case DecisionBuy:
		return "✅"
	case DecisionNo:
		return "❌"
	default:
		return "⚠️"
	}
}

// RiskDecision is the aggregated buy/no-buy verdict for one product.
type RiskDecision struct {
	Decision    Decision
	Score       int // always clamped to [0,100]
	Reason      string
	CriticalPct float64
	PositivePct float64
	AIInfluence bool
	AIRating    string
}
