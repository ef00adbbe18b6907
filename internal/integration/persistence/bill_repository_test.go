package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/smartspend/backend/internal/application/adapter"
	"github.com/smartspend/backend/internal/domain/entity"
	domainerror "github.com/smartspend/backend/internal/domain/error"
	"github.com/smartspend/backend/internal/domain/valueobject"
	"github.com/smartspend/backend/internal/integration/persistence/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&model.BillModel{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func seedBill(t *testing.T, repo adapter.BillRepository, userID uuid.UUID, name, status, nextDue string, amount string) *entity.Bill {
	t.Helper()

	bill := entity.NewBill(
		userID,
		name,
		decimal.RequireFromString(amount),
		valueobject.CategoryNeed,
		valueobject.CadenceMonthly,
		"2024-02-01",
		nextDue,
		"",
	)
	bill.Status = entity.BillStatus(status)
	if err := repo.Create(context.Background(), bill); err != nil {
		t.Fatalf("failed to seed bill %s: %v", name, err)
	}
	return bill
}

func TestBillRepository(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("find by id is user scoped", func(t *testing.T) {
		repo := NewBillRepository(newTestDB(t))
		bill := seedBill(t, repo, userID, "Internet", "active", "2024-03-10", "49.99")

		found, err := repo.FindByIDAndUser(ctx, bill.ID, userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found.Name != "Internet" || !found.Amount.Equal(bill.Amount) {
			t.Errorf("unexpected bill %+v", found)
		}

		if _, err := repo.FindByIDAndUser(ctx, bill.ID, uuid.New()); !errors.Is(err, domainerror.ErrBillNotFound) {
			t.Fatalf("expected ErrBillNotFound for foreign user, got %v", err)
		}
	})

	t.Run("filter by name prefix and due window", func(t *testing.T) {
		repo := NewBillRepository(newTestDB(t))
		seedBill(t, repo, userID, "Internet", "active", "2024-03-05", "49.99")
		seedBill(t, repo, userID, "Insurance", "active", "2024-03-20", "120")
		seedBill(t, repo, userID, "Rent", "active", "2024-02-28", "1200")

		bills, err := repo.FindByFilter(ctx, adapter.BillFilter{UserID: userID, Search: "in"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(bills) != 2 {
			t.Fatalf("expected 2 bills for prefix, got %d", len(bills))
		}
		if bills[0].Name != "Internet" || bills[1].Name != "Insurance" {
			t.Errorf("expected ascending due order, got %s then %s", bills[0].Name, bills[1].Name)
		}

		overdue, err := repo.FindByFilter(ctx, adapter.BillFilter{
			UserID: userID, Due: adapter.BillDueOverdue, Today: "2024-03-02",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(overdue) != 1 || overdue[0].Name != "Rent" {
			t.Fatalf("expected only Rent overdue, got %d bills", len(overdue))
		}

		next7, err := repo.FindByFilter(ctx, adapter.BillFilter{
			UserID: userID, Due: adapter.BillDueNext7, Today: "2024-03-02",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(next7) != 1 || next7[0].Name != "Internet" {
			t.Fatalf("expected only Internet in the next-7 window, got %d bills", len(next7))
		}
	})

	t.Run("summary counts open bills and keeps overdue in next7", func(t *testing.T) {
		repo := NewBillRepository(newTestDB(t))
		seedBill(t, repo, userID, "Internet", "active", "2024-03-05", "49.99")
		seedBill(t, repo, userID, "Rent", "upcoming", "2024-02-28", "1200")
		seedBill(t, repo, userID, "Gym", "paused", "2024-03-04", "30")

		summary, err := repo.GetSummary(ctx, userID, "2024-03-09")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if summary.ActiveCount != 2 {
			t.Errorf("expected 2 open bills, got %d", summary.ActiveCount)
		}
		if !summary.TotalThisMonth.Equal(decimal.RequireFromString("1249.99")) {
			t.Errorf("expected open total 1249.99, got %s", summary.TotalThisMonth)
		}
		if !summary.Next7.Equal(decimal.RequireFromString("1249.99")) {
			t.Errorf("expected next7 to include the overdue bill, got %s", summary.Next7)
		}
	})

	t.Run("advance due is conditional on the read due date", func(t *testing.T) {
		repo := NewBillRepository(newTestDB(t))
		bill := seedBill(t, repo, userID, "Internet", "active", "2024-03-01", "49.99")

		advanced, err := repo.AdvanceDue(ctx, bill.ID, userID, "2024-03-01", "2024-04-01", "2024-03-02")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !advanced {
			t.Fatal("expected first advance to win")
		}

		// Replaying with the stale due date must lose.
		advanced, err = repo.AdvanceDue(ctx, bill.ID, userID, "2024-03-01", "2024-05-01", "2024-03-02")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if advanced {
			t.Fatal("expected stale advance to lose")
		}

		stored, err := repo.FindByIDAndUser(ctx, bill.ID, userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stored.NextDue != "2024-04-01" || stored.LastPaid != "2024-03-02" {
			t.Errorf("unexpected stored dates next_due=%s last_paid=%s", stored.NextDue, stored.LastPaid)
		}
		if stored.Status != entity.BillStatusUpcoming {
			t.Errorf("expected status upcoming, got %s", stored.Status)
		}
	})

	t.Run("delete is user scoped", func(t *testing.T) {
		repo := NewBillRepository(newTestDB(t))
		bill := seedBill(t, repo, userID, "Internet", "active", "2024-03-10", "49.99")

		if err := repo.Delete(ctx, bill.ID, uuid.New()); !errors.Is(err, domainerror.ErrBillNotFound) {
			t.Fatalf("expected ErrBillNotFound for foreign user, got %v", err)
		}
		if err := repo.Delete(ctx, bill.ID, userID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := repo.FindByIDAndUser(ctx, bill.ID, userID); !errors.Is(err, domainerror.ErrBillNotFound) {
			t.Fatalf("expected bill to be gone, got %v", err)
		}
	})
}
