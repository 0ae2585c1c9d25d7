package analysis

import (
	"fmt"
	"strings"

	"github.com/esolll/reviewlens/internal/core/domain"
)

// Risk score thresholds. All adjustment terms commute, so the order of
// application does not matter.
const (
	riskScoreMax = 100

	decisionNoThreshold      = 65
	decisionCautionThreshold = 35

	criticalShareHigh = 35
	criticalShareMid  = 20
	criticalShareLow  = 10

	topProblemHigh = 40
	topProblemMid  = 25
	topProblemLow  = 15

	problemCountHigh = 6
	problemCountMid  = 4
	problemCountLow  = 2

	positiveShareHigh = 70
	positiveShareMid  = 50
	positiveShareLow  = 30

	defaultAIRating    = 7
	defaultFrustration = 5
)

const insufficientDataReason = "Недостаточно данных для анализа"

// Decide aggregates the keyword analysis and the optional model verdict into
// a single buy/no-buy decision with a clamped 0-100 risk score.
func Decide(a *domain.Analysis) domain.RiskDecision {
	if a == nil || a.RussianReviews == 0 {
		return domain.RiskDecision{
			Decision: domain.DecisionNo,
			Score:    riskScoreMax,
			Reason:   insufficientDataReason,
		}
	}

	total := float64(a.RussianReviews)
	criticalPct := float64(a.CriticalCount) / total * 100
	positivePct := float64(a.PositiveCount) / total * 100

	var topProblemPct float64
	if len(a.Problems) > 0 {
		topProblemPct = a.Problems[0].Percentage
	}

	score := baseRisk(criticalPct, topProblemPct, len(a.Problems), positivePct)

	aiInfluence := false
	aiRating := ""

	if a.Verdict != nil {
		aiInfluence = true
		aiRating = string(a.Verdict.Score.ProductRating)
		score += verdictRisk(a.Verdict)
	}

	score = clamp(score, 0, riskScoreMax)

	decision, reason := decide(score, criticalPct, aiInfluence)

	return domain.RiskDecision{
		Decision:    decision,
		Score:       score,
		Reason:      reason,
		CriticalPct: round1(criticalPct),
		PositivePct: round1(positivePct),
		AIInfluence: aiInfluence,
		AIRating:    aiRating,
	}
}

func baseRisk(criticalPct, topProblemPct float64, problemCount int, positivePct float64) int {
	score := 0

	switch {
	case criticalPct > criticalShareHigh:
		score += 45
	case criticalPct > criticalShareMid:
		score += 25
	case criticalPct > criticalShareLow:
		score += 10
	}

	switch {
	case topProblemPct > topProblemHigh:
		score += 30
	case topProblemPct > topProblemMid:
		score += 20
	case topProblemPct > topProblemLow:
		score += 10
	}

	switch {
	case problemCount >= problemCountHigh:
		score += 20
	case problemCount >= problemCountMid:
		score += 15
	case problemCount >= problemCountLow:
		score += 10
	}

	switch {
	case positivePct > positiveShareHigh:
		score -= 15
	case positivePct > positiveShareMid:
		score -= 10
	case positivePct > positiveShareLow:
		score -= 5
	}

	return score
}

// verdictRisk derives the model-based adjustments, decoding each loosely
// typed field with a default on parse failure.
func verdictRisk(v *domain.Verdict) int {
	score := 0

	rating := floatOrDefault(string(v.Score.ProductRating), defaultAIRating)

	switch {
	case rating <= 4:
		score += 30
	case rating <= 6:
		score += 15
	case rating >= 9:
		score -= 20
	case rating >= 8:
		score -= 10
	}

	frustration := intOrDefault(string(v.Emotional.FrustrationLevel), defaultFrustration)

	switch {
	case frustration >= 8:
		score += 25
	case frustration >= 6:
		score += 15
	case frustration <= 3:
		score -= 15
	}

	riskLevel := strings.ToLower(v.Score.RiskLevel)

	switch {
	case containsAny(riskLevel, "критич", "critical"):
		score += 25
	case containsAny(riskLevel, "высок", "high"):
		score += 15
	case containsAny(riskLevel, "низк", "low"):
		score -= 15
	}

	return score
}

func decide(score int, criticalPct float64, aiInfluence bool) (domain.Decision, string) {
	var (
		decision domain.Decision
		reason   string
		aiNote   string
	)

	switch {
	case score >= decisionNoThreshold:
		decision = domain.DecisionNo
		reason = fmt.Sprintf("ВЫСОКИЙ РИСК: %.1f%% критических отзывов", criticalPct)
		aiNote = " + AI подтверждает риски"
	case score >= decisionCautionThreshold:
		decision = domain.DecisionCaution
		reason = fmt.Sprintf("СРЕДНИЙ РИСК: %.1f%% критических отзывов", criticalPct)
		aiNote = " + AI рекомендует осторожность"
	default:
		decision = domain.DecisionBuy
		reason = fmt.Sprintf("НИЗКИЙ РИСК: %.1f%% критических отзывов", criticalPct)
		aiNote = " + AI одобряет товар"
	}

	if aiInfluence {
		reason += aiNote
	}

	return decision, reason
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}

	return false
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}

	if v > hi {
		return hi
	}

	return v
}
