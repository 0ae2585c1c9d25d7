package analysis

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/esolll/reviewlens/internal/core/domain"
)

// Ranking weights and thresholds. Keyword hits and low star ratings are
// intentionally weighted over raw text length so that short, clearly
// negative reviews rank above long neutral ones.
const (
	maxRanked          = 10
	minRankedBodyRunes = 30
	categoryHitWeight  = 6
	negativeHitWeight  = 4
	highSeverityHits   = 2
	bonusRatingVeryLow = 20 // rating 1-2
	bonusRatingLow     = 15 // rating 3
	bonusRatingMid     = 8  // rating 4
	lengthBonus        = 5
	lengthBonusAt      = 100
	lengthBonusMoreAt  = 200
	minRankScore       = 8
	summarySentences   = 3
	minSentenceRunes   = 15
	summaryMaxRunes    = 150
	summaryPrefixRunes = 120
)

// generalDissatisfaction is the synthetic category assigned when a review
// passes the score threshold without any category hit.
const generalDissatisfaction = "Общее недовольство"

// Rank orders reviews by criticality and returns at most ten. Unlike
// Analyze, every matching category of a review contributes to its score.
func (a *Analyzer) Rank(productName string, reviews []domain.Review) []domain.ScoredReview {
	preset := rankingPresets.Select(productName)

	var candidates []domain.ScoredReview

	for _, rev := range reviews {
		if rev.Rating >= positiveMinRating || runeLen(strings.TrimSpace(rev.Body)) < minRankedBodyRunes {
			continue
		}

		score, problems := scoreReview(preset, rev)
		if score < minRankScore {
			continue
		}

		if len(problems) == 0 {
			problems = []domain.MatchedProblem{{Name: generalDissatisfaction, Severity: domain.SeverityMedium, Hits: 1}}
		}

		candidates = append(candidates, domain.ScoredReview{
			Review:   rev,
			Score:    score,
			Problems: problems,
			Summary:  extractSummary(rev.Body, problems),
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			return candidates[i].Score > candidates[j].Score
		}

		if candidates[i].Rating != candidates[j].Rating {
			return candidates[i].Rating < candidates[j].Rating
		}

		return runeLen(candidates[i].Body) > runeLen(candidates[j].Body)
	})

	if len(candidates) > maxRanked {
		candidates = candidates[:maxRanked]
	}

	return candidates
}

func scoreReview(preset Preset, rev domain.Review) (int, []domain.MatchedProblem) {
	lower := strings.ToLower(rev.Body)

	var (
		score    int
		problems []domain.MatchedProblem
	)

	for _, cat := range preset {
		hits := 0

		for _, kw := range cat.Keywords {
			if strings.Contains(lower, kw) {
				hits++
			}
		}

		if hits == 0 {
			continue
		}

		severity := domain.SeverityMedium
		if hits >= highSeverityHits {
			severity = domain.SeverityHigh
		}

		problems = append(problems, domain.MatchedProblem{Name: cat.Name, Severity: severity, Hits: hits})
		score += hits * categoryHitWeight
	}

	negatives := 0

	for _, phrase := range negativePhrases {
		if strings.Contains(lower, phrase) {
			negatives++
		}
	}

	score += negatives * negativeHitWeight

	switch {
	case rev.Rating <= 2:
		score += bonusRatingVeryLow
	case rev.Rating == 3:
		score += bonusRatingLow
	case rev.Rating == 4:
		score += bonusRatingMid
	}

	n := runeLen(rev.Body)
	if n > lengthBonusAt {
		score += lengthBonus
	}

	if n > lengthBonusMoreAt {
		score += lengthBonus
	}

	return score, problems
}

// extractSummary returns the first of the review's first three sentences
// that mentions a word from a matched category name, falling back to a
// truncated prefix of the whole body.
func extractSummary(body string, problems []domain.MatchedProblem) string {
	sentences := strings.Split(body, ".")
	limit := summarySentences

	if len(sentences) < limit {
		limit = len(sentences)
	}

	for _, sentence := range sentences[:limit] {
		s := strings.TrimSpace(sentence)
		if runeLen(s) <= minSentenceRunes {
			continue
		}

		lower := strings.ToLower(s)

		for _, p := range problems {
			if sentenceMentions(lower, p.Name) {
				return truncateRunes(s, summaryMaxRunes)
			}
		}
	}

	return truncateRunes(body, summaryPrefixRunes)
}

func sentenceMentions(lowerSentence, categoryName string) bool {
	for _, word := range strings.Fields(strings.ToLower(categoryName)) {
		if strings.Contains(lowerSentence, word) {
			return true
		}
	}

	return false
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

// truncateRunes cuts to max runes appending an ellipsis when shortened.
func truncateRunes(s string, max int) string {
	if runeLen(s) <= max {
		return s
	}

	return string([]rune(s)[:max]) + "..."
}

// truncateRunesHard cuts to max runes without an ellipsis.
func truncateRunesHard(s string, max int) string {
	if runeLen(s) <= max {
		return s
	}

	return string([]rune(s)[:max])
}
