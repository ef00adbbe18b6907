package mock

import (
	"context"

	"github.com/smartspend/backend/internal/application/adapter"
)

// InsightStub is a canned insight provider for tests.
type InsightStub struct {
	Available bool
	Message   string
	Err       error
}

// IsAvailable reports the configured availability.
func (s *InsightStub) IsAvailable() bool {
	return s.Available
}

// GenerateInsight returns the canned message or error.
func (s *InsightStub) GenerateInsight(_ context.Context, _ *adapter.InsightRequest) (string, error) {
	if s.Err != nil {
		return "", s.Err
	}
	return s.Message, nil
}

var _ adapter.InsightService = (*InsightStub)(nil)
