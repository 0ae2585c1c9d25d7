package analysis

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/esolll/reviewlens/internal/core/domain"
)

func TestRankSkipsPositiveAndShortReviews(t *testing.T) {
	reviews := []domain.Review{
		{Body: "Сломался через неделю, не рекомендую этот товар никому", Rating: 5},
		{Body: "Сломался сразу", Rating: 1},
		{Body: "Сломался через неделю, не рекомендую этот товар никому", Rating: 1},
	}

	ranked := NewAnalyzer().Rank("Триммер для бороды", reviews)
	require.Len(t, ranked, 1)
	assert.Equal(t, 1, ranked[0].Rating)
}

func TestRankScoresScenarioReview(t *testing.T) {
	reviews := []domain.Review{
		{Body: "Размер совсем не подошёл, трещит по швам, ужас!!!", Rating: 2},
	}

	ranked := NewAnalyzer().Rank("Платье летнее", reviews)
	require.Len(t, ranked, 1)

	// One size keyword (6), one negative phrase (4), rating bonus (20).
	assert.Equal(t, 30, ranked[0].Score)
	require.Len(t, ranked[0].Problems, 1)
	assert.Equal(t, "Размеры", ranked[0].Problems[0].Name)
	assert.Equal(t, domain.SeverityMedium, ranked[0].Problems[0].Severity)
}

func TestRankHighSeverityOnRepeatedHits(t *testing.T) {
	reviews := []domain.Review{
		{Body: "Bluetooth постоянно отключается и теряет связь с телефоном", Rating: 2},
	}

	ranked := NewAnalyzer().Rank("Наушники беспроводные TWS", reviews)
	require.Len(t, ranked, 1)
	require.Len(t, ranked[0].Problems, 1)
	assert.Equal(t, "Bluetooth связь", ranked[0].Problems[0].Name)
	assert.Equal(t, domain.SeverityHigh, ranked[0].Problems[0].Severity)
	assert.Equal(t, 3, ranked[0].Problems[0].Hits)
}

func TestRankSynthesizesGeneralProblem(t *testing.T) {
	reviews := []domain.Review{
		{Body: "Отвратительно, деньги на ветер, никогда больше тут не куплю", Rating: 1},
	}

	ranked := NewAnalyzer().Rank("Сковорода антипригарная", reviews)
	require.Len(t, ranked, 1)
	require.Len(t, ranked[0].Problems, 1)
	assert.Equal(t, "Общее недовольство", ranked[0].Problems[0].Name)
}

func TestRankDropsLowScores(t *testing.T) {
	// No keyword or phrase hits, so rating 4 contributes exactly the
	// threshold and rating 5 is excluded outright.
	reviews := []domain.Review{
		{Body: "Обычная покупка, ничего особенного сказать не могу", Rating: 4},
		{Body: "Обычная покупка, ничего особенного сказать не могу вообще никак", Rating: 5},
	}

	ranked := NewAnalyzer().Rank("Сковорода антипригарная", reviews)
	require.Len(t, ranked, 1)
	assert.Equal(t, minRankScore, ranked[0].Score)
}

func TestRankOrderingAndCap(t *testing.T) {
	long := strings.Repeat("очень ", 10)

	reviews := []domain.Review{
		{Body: "Вещь не работает нормально, обидно " + long, Rating: 2},
		{Body: "Вещь не работает нормально, обидно", Rating: 2},
		{Body: "Вещь не работает нормально, обидно", Rating: 1},
		{Body: "Сломался и глючит, не работает, бракованный товар, верните деньги", Rating: 1},
	}

	ranked := NewAnalyzer().Rank("Термос стальной", reviews)
	require.Len(t, ranked, 4)

	// Highest score first, then lower rating, then longer body.
	assert.Equal(t, "Сломался и глючит, не работает, бракованный товар, верните деньги", ranked[0].Body)
	assert.Equal(t, 1, ranked[1].Rating)
	assert.Equal(t, 2, ranked[2].Rating)
	assert.Greater(t, runeLen(ranked[2].Body), runeLen(ranked[3].Body))

	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].Score, ranked[i].Score)
	}

	many := make([]domain.Review, 0, 15)
	for i := 0; i < 15; i++ {
		many = append(many, domain.Review{
			Body:   fmt.Sprintf("Сломался через %d дней, не работает совсем, ужасное качество", i+1),
			Rating: 1,
		})
	}

	assert.Len(t, NewAnalyzer().Rank("Термос стальной", many), maxRanked)
}

func TestExtractSummaryPrefersProblemSentence(t *testing.T) {
	body := "Коробка пришла мятая. Качество сборки просто ужасное, всё шатается. Буду возвращать."
	problems := []domain.MatchedProblem{{Name: "Качество сборки", Severity: domain.SeverityHigh, Hits: 2}}

	got := extractSummary(body, problems)
	assert.Equal(t, "Качество сборки просто ужасное, всё шатается", got)
}

func TestExtractSummaryFallsBackToPrefix(t *testing.T) {
	body := strings.Repeat("а", 200)

	got := extractSummary(body, nil)
	assert.Equal(t, strings.Repeat("а", summaryPrefixRunes)+"...", got)
}

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "абв", truncateRunes("абв", 5))
	assert.Equal(t, "аб...", truncateRunes("абвгд", 2))
	assert.Equal(t, "аб", truncateRunesHard("абвгд", 2))
}
