package analysis

import (
	"errors"
	"math"
	"sort"
	"strings"

	"github.com/esolll/reviewlens/internal/core/domain"
)

// ErrNoRussianReviews indicates that no review qualified for analysis.
var ErrNoRussianReviews = errors.New("no qualifying reviews to analyze")

const (
	maxExamples        = 2
	examplePrefixRunes = 200
	criticalMaxRating  = 3
	positiveMinRating  = 5
	bestPositiveCount  = 3
	worstNegativeCount = 10
)

// Analyzer runs the keyword-based review analysis.
type Analyzer struct{}

func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Analyze builds the aggregate keyword analysis for one product. Each review
// contributes to at most one category: categories are scanned in preset
// order and the first keyword hit wins.
func (a *Analyzer) Analyze(productName string, reviews []domain.Review) (*domain.Analysis, error) {
	accepted := FilterRussian(reviews)
	if len(accepted) == 0 {
		return nil, ErrNoRussianReviews
	}

	total := len(accepted)
	counts := make([]int, len(enhancedPreset))
	examples := make([][]string, len(enhancedPreset))

	var critical, positive, neutral []domain.Review

	for _, rev := range accepted {
		switch {
		case rev.Rating <= criticalMaxRating:
			critical = append(critical, rev)
		case rev.Rating >= positiveMinRating:
			positive = append(positive, rev)
		default:
			neutral = append(neutral, rev)
		}

		idx, ok := classifyIndex(enhancedPreset, rev.Body)
		if !ok {
			continue
		}

		counts[idx]++

		if len(examples[idx]) < maxExamples {
			if excerpt := strings.TrimSpace(truncateRunesHard(rev.Body, examplePrefixRunes)); excerpt != "" {
				examples[idx] = append(examples[idx], excerpt+"...")
			}
		}
	}

	problems := make([]domain.CategoryMatch, 0, len(enhancedPreset))

	for i, cat := range enhancedPreset {
		if counts[i] == 0 {
			continue
		}

		problems = append(problems, domain.CategoryMatch{
			Name:       cat.Name,
			Count:      counts[i],
			Percentage: round1(float64(counts[i]) / float64(total) * 100),
			Examples:   examples[i],
		})
	}

	sort.SliceStable(problems, func(i, j int) bool {
		return problems[i].Percentage > problems[j].Percentage
	})

	return &domain.Analysis{
		ProductName:    productName,
		Category:       CategoryFor(productName),
		TotalReviews:   len(reviews),
		RussianReviews: total,
		CriticalCount:  len(critical),
		PositiveCount:  len(positive),
		NeutralCount:   len(neutral),
		Problems:       problems,
		Reviews:        accepted,
		BestPositive:   longestFirst(positive, bestPositiveCount),
		WorstNegative:  longestFirst(critical, worstNegativeCount),
	}, nil
}

// classifyIndex is Classify with the matched preset index, used to attach
// counts and examples.
func classifyIndex(preset Preset, body string) (int, bool) {
	lower := strings.ToLower(body)

	for i, cat := range preset {
		for _, kw := range cat.Keywords {
			if strings.Contains(lower, kw) {
				return i, true
			}
		}
	}

	return 0, false
}

func longestFirst(reviews []domain.Review, n int) []domain.Review {
	sorted := make([]domain.Review, len(reviews))
	copy(sorted, reviews)

	sort.SliceStable(sorted, func(i, j int) bool {
		return runeLen(sorted[i].Body) > runeLen(sorted[j].Body)
	})

	if len(sorted) > n {
		sorted = sorted[:n]
	}

	return sorted
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
