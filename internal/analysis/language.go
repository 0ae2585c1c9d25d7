package analysis

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/esolll/reviewlens/internal/core/domain"
)

const (
	minReviewRunes    = 15
	cyrillicShareable = 0.5
)

// IsRussian reports whether a review body qualifies for analysis: at least
// 15 characters after trimming and more than half of its letters Cyrillic.
func IsRussian(text string) bool {
	if utf8.RuneCountInString(strings.TrimSpace(text)) < minReviewRunes {
		return false
	}

	var cyrillic, letters int

	for _, r := range strings.ToLower(text) {
		if !unicode.IsLetter(r) {
			continue
		}

		letters++

		if (r >= 'а' && r <= 'я') || r == 'ё' {
			cyrillic++
		}
	}

	return letters > 0 && float64(cyrillic)/float64(letters) > cyrillicShareable
}

// FilterRussian keeps the reviews that qualify for analysis.
func FilterRussian(reviews []domain.Review) []domain.Review {
	out := make([]domain.Review, 0, len(reviews))

	for _, r := range reviews {
		if IsRussian(r.Body) {
			out = append(out, r)
		}
	}

	return out
}
