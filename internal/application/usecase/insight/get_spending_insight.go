// Package insight contains the AI spending-insight use case.
package insight

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/smartspend/backend/internal/application/adapter"
	"github.com/smartspend/backend/internal/application/usecase/dashboard"
)

// FallbackMessage is returned when no insight provider is configured.
const FallbackMessage = "Spending insights are not available right now. Keep tracking your expenses to see how your runway develops."

// GetSpendingInsightInput represents the input for generating an insight.
type GetSpendingInsightInput struct {
	UserID uuid.UUID
}

// GetSpendingInsightOutput represents the generated insight.
type GetSpendingInsightOutput struct {
	Insight string
	// Generated reports whether the insight came from the provider rather
	// than the static fallback.
	Generated bool
}

// GetSpendingInsightUseCase produces a short natural-language reading of the
// user's spending figures. It degrades to a static message when the provider
// is unconfigured.
type GetSpendingInsightUseCase struct {
	summary *dashboard.GetSummaryUseCase
	insight adapter.InsightService
}

// NewGetSpendingInsightUseCase creates a new GetSpendingInsightUseCase instance.
func NewGetSpendingInsightUseCase(summary *dashboard.GetSummaryUseCase, insight adapter.InsightService) *GetSpendingInsightUseCase {
	return &GetSpendingInsightUseCase{
		summary: summary,
		insight: insight,
	}
}

// Execute generates the spending insight for the given user.
func (uc *GetSpendingInsightUseCase) Execute(ctx context.Context, input GetSpendingInsightInput) (*GetSpendingInsightOutput, error) {
	if !uc.insight.IsAvailable() {
		return &GetSpendingInsightOutput{Insight: FallbackMessage}, nil
	}

	summary, err := uc.summary.Execute(ctx, dashboard.GetSummaryInput{UserID: input.UserID})
	if err != nil {
		return nil, err
	}

	text, err := uc.insight.GenerateInsight(ctx, &adapter.InsightRequest{
		CategoryTotals: summary.Summary.CategoryTotals,
		Balance:        summary.Summary.CurrentBalance,
		BurnRate:       summary.Summary.BurnRate,
		DaysLeft:       summary.Summary.DaysLeft,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate insight: %w", err)
	}

	return &GetSpendingInsightOutput{Insight: text, Generated: true}, nil
}
