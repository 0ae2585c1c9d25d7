package llm

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/esolll/reviewlens/internal/core/domain"
)

const (
	minSampleBodyRunes = 20
	maxSampleBodyRunes = 600
)

const verdictPromptFmt = `Ты профессиональный аналитик товаров электронной коммерции.

ТОВАР: %s

ОТЗЫВЫ ПОКУПАТЕЛЕЙ:
%s

БАЗОВАЯ СТАТИСТИКА:
- Всего отзывов: %d
- Русских отзывов: %d
- Критических: %d

ЗАДАЧИ:
1. Выполни глубокий семантический анализ отзывов
2. Выяви скрытые проблемы между строк
3. Определи эмоциональный профиль покупателей
4. Составь практические бизнес-рекомендации
5. Дай профессиональный прогноз развития

ФОРМАТ ОТВЕТА (строго JSON):
{
    "problems": [
        {
            "name": "название проблемы",
            "description": "детальное описание проблемы",
            "severity": "критическая/высокая/средняя/низкая",
            "business_impact": "влияние на бизнес",
            "frequency_estimate": "примерный процент",
            "examples": ["конкретные примеры из отзывов"]
        }
    ],
    "emotional_profile": {
        "overall_mood": "позитивный/нейтральный/негативный/смешанный",
        "frustration_level": "уровень 1-10",
        "satisfaction_triggers": ["что радует покупателей"],
        "pain_triggers": ["что расстраивает покупателей"],
        "loyalty_risk": "риск потери лояльности клиентов"
    },
    "professional_insights": {
        "immediate_fixes": ["срочные исправления"],
        "strategic_improvements": ["стратегические улучшения"],
        "competitive_positioning": "позиция относительно конкурентов",
        "market_opportunities": ["возможности на рынке"],
        "critical_risks": ["критические риски бизнеса"]
    },
    "predictions": {
        "sales_trend": "прогноз продаж",
        "quality_trend": "тренд качества",
        "customer_retention": "удержание клиентов",
        "return_forecast": "прогноз возвратов",
        "improvement_timeline": "сроки улучшений"
    },
    "score": {
        "product_rating": "оценка товара 1-10",
        "buy_recommendation": "покупать/не_покупать/осторожно",
        "confidence": "уровень уверенности анализа",
        "risk_level": "низкий/средний/высокий/критический"
    }
}

Анализируй на РУССКОМ ЯЗЫКЕ с максимальной практической пользой!`

type promptReview struct {
	Text   string `json:"text"`
	Rating int    `json:"rating"`
	Date   string `json:"date"`
}

// buildPrompt renders the verdict prompt with up to sampleSize reviews.
// Bodies shorter than twenty characters carry no signal and are skipped;
// long ones are cut to keep the request within the token budget.
func buildPrompt(productName string, reviews []domain.Review, stats Stats, sampleSize int) (string, error) {
	sample := make([]promptReview, 0, sampleSize)

	for _, rev := range reviews {
		if len(sample) >= sampleSize {
			break
		}

		text := strings.TrimSpace(rev.Body)
		if utf8.RuneCountInString(text) <= minSampleBodyRunes {
			continue
		}

		if utf8.RuneCountInString(text) > maxSampleBodyRunes {
			text = string([]rune(text)[:maxSampleBodyRunes])
		}

		sample = append(sample, promptReview{
			Text:   text,
			Rating: rev.Rating,
			Date:   rev.RawDate,
		})
	}

	encoded, err := json.MarshalIndent(sample, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode review sample: %w", err)
	}

	return fmt.Sprintf(verdictPromptFmt, productName, encoded,
		stats.TotalReviews, stats.RussianReviews, stats.CriticalReviews), nil
}
