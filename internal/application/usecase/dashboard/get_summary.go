// Package dashboard contains the summary composition use case.
package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/smartspend/backend/internal/application/adapter"
	"github.com/smartspend/backend/internal/application/usecase/runway"
	"github.com/smartspend/backend/internal/domain/entity"
	"github.com/smartspend/backend/internal/domain/valueobject"
)

const (
	// upcomingWindowDays bounds the upcoming-bill lookup.
	upcomingWindowDays = 7
	// upcomingLimit caps how many upcoming bills the summary carries.
	upcomingLimit = 10
)

// GetSummaryInput represents the input for composing the dashboard summary.
type GetSummaryInput struct {
	UserID uuid.UUID
}

// Summary is the composed dashboard view. It is the cache payload, so every
// field must survive a JSON round trip.
type Summary struct {
	CurrentBalance decimal.Decimal            `json:"current_balance"`
	BurnRate       decimal.Decimal            `json:"burn_rate"`
	DaysLeft       decimal.Decimal            `json:"days_left"`
	Next7Forecast  decimal.Decimal            `json:"next7_forecast"`
	UpcomingBills  []*entity.Bill             `json:"upcoming_bills"`
	CategoryTotals map[string]decimal.Decimal `json:"category_totals"`
}

// GetSummaryOutput represents the output of composing the dashboard summary.
type GetSummaryOutput struct {
	Summary *Summary
	// Cached reports whether the summary was served from the cache.
	Cached bool
}

// GetSummaryUseCase composes the dashboard summary: balance, burn rate,
// runway, near-term forecast, upcoming bills and the per-category expense
// totals. Results are cached per user; mutating use cases invalidate.
type GetSummaryUseCase struct {
	balance     *runway.BalanceUseCase
	burnRate    *runway.BurnRateUseCase
	daysLeft    *runway.DaysLeftUseCase
	forecast    *runway.ForecastUseCase
	billRepo    adapter.BillRepository
	expenseRepo adapter.ExpenseRepository
	cache       adapter.SummaryCache
	cacheTTL    time.Duration
	clock       adapter.Clock
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(
	balance *runway.BalanceUseCase,
	burnRate *runway.BurnRateUseCase,
	daysLeft *runway.DaysLeftUseCase,
	forecast *runway.ForecastUseCase,
	billRepo adapter.BillRepository,
	expenseRepo adapter.ExpenseRepository,
	cache adapter.SummaryCache,
	cacheTTL time.Duration,
	clock adapter.Clock,
) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		balance:     balance,
		burnRate:    burnRate,
		daysLeft:    daysLeft,
		forecast:    forecast,
		billRepo:    billRepo,
		expenseRepo: expenseRepo,
		cache:       cache,
		cacheTTL:    cacheTTL,
		clock:       clock,
	}
}

// Execute composes the summary for the given user, serving from the cache
// when a valid payload exists.
func (uc *GetSummaryUseCase) Execute(ctx context.Context, input GetSummaryInput) (*GetSummaryOutput, error) {
	if payload, err := uc.cache.Get(ctx, input.UserID); err != nil {
		slog.Warn("failed to read summary cache", "user_id", input.UserID, "error", err)
	} else if payload != nil {
		var cached Summary
		if err := json.Unmarshal(payload, &cached); err == nil {
			return &GetSummaryOutput{Summary: &cached, Cached: true}, nil
		}
		// A corrupt payload falls through to recomputation.
		slog.Warn("discarding unreadable summary cache payload", "user_id", input.UserID)
	}

	summary, err := uc.compose(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(summary); err == nil {
		if err := uc.cache.Set(ctx, input.UserID, payload, uc.cacheTTL); err != nil {
			slog.Warn("failed to write summary cache", "user_id", input.UserID, "error", err)
		}
	}

	return &GetSummaryOutput{Summary: summary}, nil
}

func (uc *GetSummaryUseCase) compose(ctx context.Context, userID uuid.UUID) (*Summary, error) {
	balance, err := uc.balance.Execute(ctx, runway.BalanceInput{UserID: userID})
	if err != nil {
		return nil, fmt.Errorf("failed to compute balance: %w", err)
	}

	burnRate, err := uc.burnRate.Execute(ctx, runway.BurnRateInput{UserID: userID})
	if err != nil {
		return nil, fmt.Errorf("failed to compute burn rate: %w", err)
	}

	daysLeft, err := uc.daysLeft.Execute(ctx, runway.DaysLeftInput{UserID: userID})
	if err != nil {
		return nil, fmt.Errorf("failed to project runway: %w", err)
	}

	forecast, err := uc.forecast.Execute(ctx, runway.ForecastInput{UserID: userID})
	if err != nil {
		return nil, fmt.Errorf("failed to forecast burn: %w", err)
	}

	now := uc.clock.Now().UTC()
	today := valueobject.FormatDate(now)
	cutoff := valueobject.FormatDate(now.AddDate(0, 0, upcomingWindowDays))

	upcoming, err := uc.billRepo.FindUpcoming(ctx, userID, today, cutoff, upcomingLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load upcoming bills: %w", err)
	}
	if upcoming == nil {
		upcoming = []*entity.Bill{}
	}

	totals, err := uc.categoryTotals(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &Summary{
		CurrentBalance: balance,
		BurnRate:       burnRate,
		DaysLeft:       daysLeft,
		Next7Forecast:  forecast,
		UpcomingBills:  upcoming,
		CategoryTotals: totals,
	}, nil
}

// categoryTotals sums all of the user's expenses per category. Every bucket
// is initialized so absent categories still report zero; rows carrying an
// unknown or empty stored category count as need.
func (uc *GetSummaryUseCase) categoryTotals(ctx context.Context, userID uuid.UUID) (map[string]decimal.Decimal, error) {
	expenses, err := uc.expenseRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}

	totals := make(map[string]decimal.Decimal, len(valueobject.Categories))
	for _, c := range valueobject.Categories {
		totals[string(c)] = decimal.Zero
	}

	for _, e := range expenses {
		category := e.Category
		if !category.IsValid() {
			category = valueobject.CategoryNeed
		}
		totals[string(category)] = totals[string(category)].Add(e.Amount)
	}

	return totals, nil
}
