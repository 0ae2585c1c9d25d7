package report

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/esolll/reviewlens/internal/core/domain"
)

func testData() Data {
	return Data{
		ArticleID: "348518462",
		Product: &domain.Product{
			ID:          "348518462",
			Name:        "Сушилка для овощей",
			Brand:       "Home",
			Rating:      4.2,
			ReviewCount: 340,
			Price:       1290,
		},
		Analysis: &domain.Analysis{
			ProductName:    "Сушилка для овощей",
			TotalReviews:   120,
			RussianReviews: 100,
			CriticalCount:  30,
			PositiveCount:  50,
			Problems: []domain.CategoryMatch{
				{Name: "Функциональность", Count: 20, Percentage: 20.0},
			},
			Verdict:   domain.FallbackVerdict(),
			AIPowered: true,
		},
		Decision: domain.RiskDecision{
			Decision:    domain.DecisionCaution,
			Score:       50,
			Reason:      "СРЕДНИЙ РИСК: 30.0% критических отзывов",
			CriticalPct: 30.0,
			AIInfluence: true,
			AIRating:    "7",
		},
		Ranked: []domain.ScoredReview{
			{
				Review:   domain.Review{Body: "Совсем не сушит, всё мокрое", Rating: 1, RawDate: "2026-03-01"},
				Score:    26,
				Problems: []domain.MatchedProblem{{Name: "Проблемы сушки", Severity: domain.SeverityHigh, Hits: 2}},
				Summary:  "Совсем не сушит, всё мокрое",
			},
			{
				Review:   domain.Review{Body: "Хлипкий пластик, шатается", Rating: 3},
				Score:    16,
				Problems: []domain.MatchedProblem{{Name: "Качество сборки", Severity: domain.SeverityMedium, Hits: 1}},
				Summary:  "Хлипкий пластик, шатается",
			},
		},
		GeneratedAt: time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC),
	}
}

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()

	r, err := NewRenderer(t.TempDir(), zerolog.Nop())
	require.NoError(t, err)

	return r
}

func TestRenderHTML(t *testing.T) {
	r := newTestRenderer(t)

	var buf bytes.Buffer
	require.NoError(t, r.RenderHTML(&buf, testData()))

	html := buf.String()

	assert.Contains(t, html, "Сушилка для овощей")
	assert.Contains(t, html, "decision-neutral")
	assert.Contains(t, html, "РЕШЕНИЕ: ОСТОРОЖНО")
	assert.Contains(t, html, "AI оценка: 7/10")
	assert.Contains(t, html, "severity-high")
	assert.Contains(t, html, "КРИТИЧНО")
	assert.Contains(t, html, "severity-medium")
	assert.Contains(t, html, "ВАЖНО")
	assert.Contains(t, html, "Проблемы сушки")
	assert.Contains(t, html, "Эмоциональный профиль")
	assert.NotContains(t, html, "временно недоступен —")
}

func TestRenderHTMLNoCriticalReviews(t *testing.T) {
	r := newTestRenderer(t)

	data := testData()
	data.Ranked = nil

	var buf bytes.Buffer
	require.NoError(t, r.RenderHTML(&buf, data))

	assert.Contains(t, buf.String(), "Отличный результат!")
	assert.Contains(t, buf.String(), "серьезных критических замечаний не обнаружено")
}

func TestRenderHTMLWithoutVerdict(t *testing.T) {
	r := newTestRenderer(t)

	data := testData()
	data.Analysis.AIPowered = false

	var buf bytes.Buffer
	require.NoError(t, r.RenderHTML(&buf, data))

	assert.Contains(t, buf.String(), "Семантический AI-анализ временно недоступен")
}

func TestRenderHTMLEscapesBodies(t *testing.T) {
	r := newTestRenderer(t)

	data := testData()
	data.Ranked[0].Review.Body = `<script>alert("x")</script> и не сушит`

	var buf bytes.Buffer
	require.NoError(t, r.RenderHTML(&buf, data))

	assert.NotContains(t, buf.String(), "<script>alert")
}

func TestWriteReport(t *testing.T) {
	dir := t.TempDir()

	r, err := NewRenderer(dir, zerolog.Nop())
	require.NoError(t, err)

	path, err := r.WriteReport(testData())
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "348518462", "report_348518462.html"), path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(content), "Сушилка для овощей"))
}

func TestRenderError(t *testing.T) {
	r := newTestRenderer(t)

	var buf bytes.Buffer
	require.NoError(t, r.RenderError(&buf, "348518462"))

	assert.Contains(t, buf.String(), "Не удалось сформировать отчет")
	assert.Contains(t, buf.String(), "348518462")
}
