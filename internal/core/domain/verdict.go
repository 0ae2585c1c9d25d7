package domain

import (
	"bytes"
	"encoding/json"
)

// LooseString decodes any JSON scalar into its string form. The model is
// asked to return numeric fields as strings but frequently answers with bare
// numbers; decoding must never fail on that.
type LooseString string

func (s *LooseString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*s = ""

		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*s = LooseString(str)

		return nil
	}

	*s = LooseString(bytes.Trim(data, `"`))

	return nil
}

// VerdictProblem is one problem the model reports having found in the
// reviews.
type VerdictProblem struct {
	Name              string      `json:"name"`
	Description       string      `json:"description"`
	Severity          string      `json:"severity"`
	BusinessImpact    string      `json:"business_impact"`
	FrequencyEstimate LooseString `json:"frequency_estimate"`
	Examples          []string    `json:"examples"`
}

// EmotionalProfile describes buyer sentiment as seen by the model.
type EmotionalProfile struct {
	OverallMood          string      `json:"overall_mood"`
	FrustrationLevel     LooseString `json:"frustration_level"`
	SatisfactionTriggers []string    `json:"satisfaction_triggers"`
	PainTriggers         []string    `json:"pain_triggers"`
	LoyaltyRisk          string      `json:"loyalty_risk"`
}

// Insights carries the model's recommendations.
type Insights struct {
	ImmediateFixes         []string `json:"immediate_fixes"`
	StrategicImprovements  []string `json:"strategic_improvements"`
	CompetitivePositioning string   `json:"competitive_positioning"`
	MarketOpportunities    []string `json:"market_opportunities"`
	CriticalRisks          []string `json:"critical_risks"`
}

// Predictions carries the model's forecast fields.
type Predictions struct {
	SalesTrend          string `json:"sales_trend"`
	QualityTrend        string `json:"quality_trend"`
	CustomerRetention   string `json:"customer_retention"`
	ReturnForecast      string `json:"return_forecast"`
	ImprovementTimeline string `json:"improvement_timeline"`
}

// VerdictScore is the model's overall rating block.
type VerdictScore struct {
	ProductRating     LooseString `json:"product_rating"`
	BuyRecommendation string      `json:"buy_recommendation"`
	Confidence        string      `json:"confidence"`
	RiskLevel         string      `json:"risk_level"`
}

// Verdict is the structured output of the language-model call. It is treated
// as opaque, loosely-typed input: consumers read fields defensively with
// default substitution, never assuming the model honored the schema.
type Verdict struct {
	Problems    []VerdictProblem `json:"problems"`
	Emotional   EmotionalProfile `json:"emotional_profile"`
	Insights    Insights         `json:"professional_insights"`
	Predictions Predictions      `json:"predictions"`
	Score       VerdictScore     `json:"score"`
}

// FallbackVerdict returns the fixed substitute record used whenever the
// model call fails or its response cannot be parsed. Its numeric fields are
// chosen so that they contribute no risk adjustment.
func FallbackVerdict() *Verdict {
	return &Verdict{
		Problems: []VerdictProblem{
			{
				Name:              "Требуется дополнительный анализ",
				Description:       "AI-анализ временно недоступен",
				Severity:          SeverityMedium,
				BusinessImpact:    "Ограниченная аналитика",
				FrequencyEstimate: "неопределено",
				Examples:          []string{"Семантический анализ будет доступен после восстановления"},
			},
		},
		Emotional: EmotionalProfile{
			OverallMood:          "нейтральный",
			FrustrationLevel:     "5",
			SatisfactionTriggers: []string{"Требуется AI анализ"},
			PainTriggers:         []string{"AI-анализ недоступен"},
			LoyaltyRisk:          "неопределен",
		},
		Insights: Insights{
			ImmediateFixes:         []string{"Повторить анализ позже"},
			StrategicImprovements:  []string{"Использовать базовую аналитику"},
			CompetitivePositioning: "Требует AI анализа",
			MarketOpportunities:    []string{"Определяются после AI анализа"},
			CriticalRisks:          []string{"Отсутствие семантической аналитики"},
		},
		Predictions: Predictions{
			SalesTrend:          "Требует AI прогнозирования",
			QualityTrend:        "Базовый анализ",
			CustomerRetention:   "Неопределен",
			ReturnForecast:      "Требует AI модели",
			ImprovementTimeline: "Повторить после восстановления",
		},
		Score: VerdictScore{
			ProductRating:     "7",
			BuyRecommendation: "осторожно",
			Confidence:        "низкий - нет AI анализа",
			RiskLevel:         "средний",
		},
	}
}
