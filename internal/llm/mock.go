package llm

import (
	"context"

	"github.com/esolll/reviewlens/internal/core/domain"
)

// mockClient answers every request with the canned fallback verdict. It is
// used when no provider key is configured, which keeps the rest of the
// pipeline identical in local development.
type mockClient struct{}

func (m *mockClient) AnalyzeReviews(_ context.Context, _ string, _ []domain.Review, _ Stats) (*domain.Verdict, error) {
	return domain.FallbackVerdict(), nil
}
