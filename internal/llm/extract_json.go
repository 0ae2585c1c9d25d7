package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/esolll/reviewlens/internal/core/domain"
)

// extractJSON tries to extract JSON from a response that might have extra
// text around it, such as a markdown fence or a preamble sentence.
func extractJSON(text string) string {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")

	if start != -1 && end != -1 && end > start {
		return text[start : end+1]
	}

	start = strings.Index(text, "[")
	end = strings.LastIndex(text, "]")

	if start != -1 && end != -1 && end > start {
		return text[start : end+1]
	}

	return text
}

// parseVerdict decodes the model answer into a verdict, tolerating prose
// around the JSON body.
func parseVerdict(text string) (*domain.Verdict, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyResponse
	}

	var verdict domain.Verdict
	if err := json.Unmarshal([]byte(extractJSON(text)), &verdict); err != nil {
		return nil, fmt.Errorf("parse verdict response: %w", err)
	}

	return &verdict, nil
}
