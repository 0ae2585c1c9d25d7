package report

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/esolll/reviewlens/internal/core/domain"
)

// Rune limits for chat snippets.
const (
	chatNameRunes        = 60
	chatSummaryNameRunes = 50
	chatExampleRunes     = 200
	chatDescriptionRunes = 90
	chatTopProblems      = 3
	chatExampleCount     = 2
)

// StartText is the /start greeting.
func StartText() string {
	return `🤖 **Анализатор отзывов Wildberries**
*Система анализа товаров с искусственным интеллектом*

🚀 **ВОЗМОЖНОСТИ:**
• 🧠 **Семантический анализ** — система понимает смысл отзывов
• 💭 **Эмоциональная аналитика** — настроения покупателей
• 🔮 **AI-прогнозы** — предсказание трендов и проблем
• 📝 **10 критических отзывов** — детальный разбор проблем
• 🎯 **Рекомендации** — конкретные решения

📝 **КАК ИСПОЛЬЗОВАТЬ:**
Отправьте артикул товара с Wildberries (6+ цифр)
Пример: 348518462`
}

// HelpText is the /help answer.
func HelpText() string {
	return `📚 **КАК ИСПОЛЬЗОВАТЬ АНАЛИЗАТОР**

🚀 **БЫСТРЫЙ СТАРТ:**
1. Отправьте артикул товара Wildberries (6+ цифр)
2. Дождитесь завершения анализа (30-90 секунд)
3. Получите примеры критических отзывов в чате
4. Скачайте полный HTML-отчет

📝 **ПРИМЕРЫ АРТИКУЛОВ:**
• 348518462
• 21676342

📊 **СТРУКТУРА ОТЧЕТА:**
1. **Решение** — покупать/не покупать/осторожно
2. **10 критических отзывов** — полные тексты с разбором
3. **AI-инсайты** — семантический и эмоциональный анализ
4. **Рекомендации** — конкретные действия

💡 **ПОЛЕЗНЫЕ СОВЕТЫ:**
• Лучше анализировать товары с 50+ отзывами
• Система работает только с русскими отзывами
• Для сохранения PDF используйте печать в отчете`
}

// InfoText is the /info answer.
func InfoText() string {
	return `ℹ️ **О СИСТЕМЕ**

🤖 Система анализа товаров электронной коммерции на основе
отзывов покупателей и искусственного интеллекта.

🔧 **ТЕХНОЛОГИИ:**
• Обработка естественного языка
• Анализ настроений покупателей
• Автоматическое выявление критических отзывов
• Предиктивная аналитика

📊 **СТАТИСТИКА СИСТЕМЫ:**
• Анализирует до 120 отзывов за сеанс
• Выявляет 9+ категорий проблем товаров
• Находит до 10 самых критических отзывов
• Строит эмоциональный профиль покупателей

🎯 **ДЛЯ КОГО:**
• Продавцы на маркетплейсах
• Бренды и производители товаров
• Аналитики и маркетологи e-commerce`
}

// FormatHintText is sent when a message carries no article number.
func FormatHintText() string {
	return `❌ **Отправьте артикул Wildberries**

📋 **Формат:** 6+ цифр (например: 348518462)

🤖 **Вы получите:**
• 🧠 Семантический анализ отзывов
• 💭 Эмоциональную аналитику покупателей
• 📝 10 самых критических отзывов с разбором
• 🔮 AI-прогнозы трендов и рисков
• 📄 HTML-отчет`
}

// ProgressText opens the analysis.
func ProgressText(articleID string) string {
	return fmt.Sprintf(`🔍 Анализирую товар **%s**

• 🧠 Семантический анализ отзывов
• 💭 Эмоциональная аналитика покупателей
• 📝 Поиск критических отзывов

⏳ *Получаю данные товара...*`, articleID)
}

// NotFoundText reports a missing catalog card.
func NotFoundText(articleID string) string {
	return fmt.Sprintf(`❌ **Товар не найден**

Товар **%s** не найден в базе MPStats.

🔄 **Попробуйте другой артикул**`, articleID)
}

// ReviewsUnavailableText reports a missing or empty comments feed.
func ReviewsUnavailableText() string {
	return `⚠️ **Отзывы недоступны**

Не удалось загрузить отзывы для анализа.
Проверьте настройки тарифа в MPStats.`
}

// InsufficientDataText reports that no review qualified for analysis.
func InsufficientDataText() string {
	return `⚠️ **Недостаточно данных для анализа**

Нужно больше качественных отзывов на русском языке.`
}

// AnalysisErrorText reports an unexpected pipeline failure.
func AnalysisErrorText() string {
	return `❌ **Ошибка анализа**

Произошла ошибка при анализе товара.
Попробуйте повторить через несколько минут.`
}

// FoundText confirms the product card.
func FoundText(p *domain.Product) string {
	return fmt.Sprintf(`✅ **Товар найден!**
📦 %s
🏷️ Бренд: %s
⭐ Рейтинг: %v/5
💬 Всего отзывов: %d

🤖 **Загружаю отзывы для анализа...**`,
		truncate(p.Name, chatNameRunes), p.Brand, p.Rating, p.ReviewCount)
}

// ProcessingText announces the heavy stage.
func ProcessingText(reviewCount int) string {
	return fmt.Sprintf(`✅ **Отзывы загружены успешно**
🧠 **Семантическая обработка %d отзывов...**
💭 **Анализ эмоций и настроений покупателей...**
📝 **Поиск самых критических отзывов...**

⚡ *Это займет 30-90 секунд...*`, reviewCount)
}

// StatusText reports whether the verdict came from the model or the
// fallback.
func StatusText(a *domain.Analysis) string {
	var b strings.Builder

	b.WriteString("🤖 **АНАЛИЗ ЗАВЕРШЕН!**")

	if a.AIPowered && a.Verdict != nil {
		fmt.Fprintf(&b, "\n✅ **AI оценка товара: %s/10**", a.Verdict.Score.ProductRating)
		b.WriteString("\n🧠 **Семантический анализ выполнен**")
		b.WriteString("\n💭 **Эмоциональная аналитика готова**")
	} else {
		b.WriteString("\n⚠️ **Использован базовый алгоритм (AI временно недоступен)**")
	}

	return b.String()
}

// SummaryText is the headline result message.
func SummaryText(p *domain.Product, a *domain.Analysis, d domain.RiskDecision) string {
	var b strings.Builder

	b.WriteString("🤖 **РЕЗУЛЬТАТ АНАЛИЗА**\n\n")
	fmt.Fprintf(&b, "📦 **%s**\n", truncate(p.Name, chatSummaryNameRunes))
	fmt.Fprintf(&b, "🏷️ %s | ⭐ %v/5 | 💰 %v ₽\n\n", p.Brand, p.Rating, p.Price)
	fmt.Fprintf(&b, "%s **РЕШЕНИЕ: %s**\n\n", d.Decision.Emoji(), d.Decision)
	fmt.Fprintf(&b, "📋 %s", d.Reason)

	if d.AIInfluence {
		fmt.Fprintf(&b, "\n🤖 **AI оценка: %s/10**", orDefault(d.AIRating, "N/A"))
	}

	fmt.Fprintf(&b, "\n\n📊 Отзывов проанализировано: %d (критических: %d, позитивных: %d)",
		a.RussianReviews, a.CriticalCount, a.PositiveCount)

	return b.String()
}

// InsightsText renders the emotional profile and the model's top problems.
func InsightsText(v *domain.Verdict) string {
	var b strings.Builder

	b.WriteString("🤖 **AI ИНСАЙТЫ:**\n\n")
	b.WriteString("💭 **Эмоциональный профиль:**\n")
	fmt.Fprintf(&b, "• Общее настроение: %s\n", orDefault(v.Emotional.OverallMood, "нейтральный"))
	fmt.Fprintf(&b, "• Уровень фрустрации: %s/10\n", orDefault(string(v.Emotional.FrustrationLevel), "5"))
	fmt.Fprintf(&b, "• Риск потери лояльности: %s\n", orDefault(v.Emotional.LoyaltyRisk, "средний"))
	b.WriteString("\n🧠 **Что выявил AI:**")

	for i, problem := range v.Problems {
		if i == chatTopProblems {
			break
		}

		severity := orDefault(problem.Severity, domain.SeverityMedium)
		fmt.Fprintf(&b, "\n%d. %s **%s** (%s)", i+1, severityEmoji(severity), orDefault(problem.Name, "Проблема"), severity)
		fmt.Fprintf(&b, "\n   _%s_", truncate(orDefault(problem.Description, "Описание недоступно"), chatDescriptionRunes))
	}

	return b.String()
}

// RecommendationsText renders the model's predictions and urgent actions.
func RecommendationsText(v *domain.Verdict) string {
	var b strings.Builder

	b.WriteString("🔮 **AI ПРОГНОЗЫ И РЕКОМЕНДАЦИИ:**\n\n")
	fmt.Fprintf(&b, "📈 **Прогноз тренда:** %s\n", orDefault(v.Predictions.SalesTrend, "Анализируется"))
	fmt.Fprintf(&b, "📉 **Прогноз возвратов:** %s\n", orDefault(v.Predictions.ReturnForecast, "Анализируется"))
	fmt.Fprintf(&b, "👥 **Удержание клиентов:** %s\n", orDefault(v.Predictions.CustomerRetention, "Прогнозируется"))
	b.WriteString("\n🎯 **Срочные действия:**")

	fixes := v.Insights.ImmediateFixes
	if len(fixes) == 0 {
		fixes = []string{"AI анализ в процессе"}
	}

	for i, action := range fixes {
		if i == chatTopProblems {
			break
		}

		fmt.Fprintf(&b, "\n• %s", action)
	}

	fmt.Fprintf(&b, "\n\n💼 **Конкурентная позиция:** %s", orDefault(v.Insights.CompetitivePositioning, "Анализируется"))

	return b.String()
}

// ExamplesText shows up to two critical reviews in chat; the rest live in
// the HTML report.
func ExamplesText(ranked []domain.ScoredReview) string {
	if len(ranked) == 0 {
		return "💬 **Критические отзывы не найдены — товар показывает отличные результаты!**\n\n📄 **Детальный анализ качества в отчете**"
	}

	var b strings.Builder

	b.WriteString("💬 **ПРИМЕРЫ КРИТИЧЕСКИХ ОТЗЫВОВ:**\n")

	shown := len(ranked)
	if shown > chatExampleCount {
		shown = chatExampleCount
	}

	for i := 0; i < shown; i++ {
		rev := ranked[i]

		fmt.Fprintf(&b, "\n**ОТЗЫВ #%d** (⭐ %d/5):\n", i+1, rev.Rating)
		fmt.Fprintf(&b, "_%s_\n\n", truncate(rev.Body, chatExampleRunes))
		fmt.Fprintf(&b, "**Проблемы:** %s\n", problemNames(rev.Problems))

		if i < shown-1 {
			b.WriteString("\n---\n")
		}
	}

	rest := len(ranked) - shown
	if rest < 0 {
		rest = 0
	}

	fmt.Fprintf(&b, "\n📄 **Еще %d подробных критических отзывов в отчете**", rest)

	return b.String()
}

// ProblemsText renders the top keyword categories for comparison with the
// model's view.
func ProblemsText(a *domain.Analysis) string {
	if len(a.Problems) == 0 {
		return ""
	}

	var b strings.Builder

	b.WriteString("📊 **АНАЛИЗ ПО КАТЕГОРИЯМ:**\n")

	for i, problem := range a.Problems {
		if i == chatTopProblems {
			break
		}

		fmt.Fprintf(&b, "\n**%d. %s** — %v%%", i+1, problem.Name, problem.Percentage)
	}

	b.WriteString("\n\n📄 **Полный отчет готовится...**")

	return b.String()
}

// ReportCaption captions the delivered HTML document.
func ReportCaption(productName string) string {
	return fmt.Sprintf("🤖 Отчет по анализу отзывов | %s", truncate(productName, 30))
}

// ReportErrorText reports a failed report delivery.
func ReportErrorText() string {
	return `❌ **Ошибка создания отчета**

Анализ выполнен успешно, но при создании отчета произошла
техническая ошибка. Попробуйте запросить отчет позже.`
}

func severityEmoji(severity string) string {
	s := strings.ToLower(severity)

	switch {
	case strings.Contains(s, "критическая"), strings.Contains(s, "высокая"):
		return "🚨"
	case s == domain.SeverityMedium:
		return "⚠️"
	default:
		return "📋"
	}
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}

	return s
}

func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}

	return string([]rune(s)[:max]) + "..."
}
