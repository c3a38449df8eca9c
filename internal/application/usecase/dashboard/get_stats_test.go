package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fleetops/finance-hub/internal/application/adapter"
	"github.com/fleetops/finance-hub/internal/domain/entity"
	domainerror "github.com/fleetops/finance-hub/internal/domain/error"
)

type statsTransactionRepo struct {
	completed []*entity.TransactionWithCategory
	lastStart time.Time
	lastEnd   time.Time
}

func (r *statsTransactionRepo) Create(ctx context.Context, transaction *entity.Transaction) error {
	return nil
}

func (r *statsTransactionRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	return nil, domainerror.ErrTransactionNotFound
}

func (r *statsTransactionRepo) FindByIDWithCategory(ctx context.Context, id uuid.UUID) (*entity.TransactionWithCategory, error) {
	return nil, domainerror.ErrTransactionNotFound
}

func (r *statsTransactionRepo) FindByFilter(ctx context.Context, filter adapter.TransactionFilter, pagination adapter.TransactionPagination) (*entity.TransactionListResult, error) {
	return &entity.TransactionListResult{}, nil
}

func (r *statsTransactionRepo) FindCompletedInRange(ctx context.Context, startDate, endDate time.Time, filter adapter.ReportFilter) ([]*entity.TransactionWithCategory, error) {
	r.lastStart = startDate
	r.lastEnd = endDate
	return r.completed, nil
}

func (r *statsTransactionRepo) Update(ctx context.Context, transaction *entity.Transaction) error {
	return nil
}

func (r *statsTransactionRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

type statsBudgetRepo struct {
	budgets []*entity.Budget
}

func (r *statsBudgetRepo) Create(ctx context.Context, budget *entity.Budget) error { return nil }

func (r *statsBudgetRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Budget, error) {
	return nil, domainerror.ErrBudgetNotFound
}

func (r *statsBudgetRepo) FindAll(ctx context.Context) ([]*entity.Budget, error) {
	return r.budgets, nil
}

func (r *statsBudgetRepo) FindByStatus(ctx context.Context, status entity.BudgetStatus) ([]*entity.Budget, error) {
	return nil, nil
}

func (r *statsBudgetRepo) ApplyDelta(ctx context.Context, categoryID uuid.UUID, delta decimal.Decimal, at time.Time) ([]*entity.Budget, error) {
	return nil, nil
}

func (r *statsBudgetRepo) Update(ctx context.Context, budget *entity.Budget) error { return nil }

func (r *statsBudgetRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.BudgetStatus) error {
	return nil
}

func (r *statsBudgetRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func statsTxn(txnType entity.TransactionType, amount string) *entity.TransactionWithCategory {
	return &entity.TransactionWithCategory{
		Transaction: &entity.Transaction{
			ID:     uuid.New(),
			Type:   txnType,
			Amount: decimal.RequireFromString(amount),
			Status: entity.TransactionStatusCompleted,
		},
	}
}

func statsBudget(status entity.BudgetStatus) *entity.Budget {
	budget := entity.NewBudget(
		"Fuel",
		nil,
		decimal.RequireFromString("100.00"),
		entity.BudgetPeriodMonthly,
		time.Now().UTC().AddDate(0, 0, -10),
		time.Now().UTC().AddDate(0, 0, 10),
		nil,
	)
	budget.Status = status
	return budget
}

func TestGetStatsUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("summarizes income, expenses and averages", func(t *testing.T) {
		txnRepo := &statsTransactionRepo{completed: []*entity.TransactionWithCategory{
			statsTxn(entity.TransactionTypeIncome, "1000.00"),
			statsTxn(entity.TransactionTypeExpense, "100.00"),
			statsTxn(entity.TransactionTypeExpense, "50.00"),
			statsTxn(entity.TransactionTypeTransfer, "999.00"),
		}}
		uc := NewGetStatsUseCase(txnRepo, &statsBudgetRepo{})

		stats, err := uc.Execute(ctx, GetStatsInput{PeriodDays: 7})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !stats.TotalIncome.Equal(decimal.RequireFromString("1000.00")) {
			t.Errorf("expected income 1000.00, got %s", stats.TotalIncome)
		}
		if !stats.TotalExpenses.Equal(decimal.RequireFromString("150.00")) {
			t.Errorf("expected expenses 150.00, got %s", stats.TotalExpenses)
		}
		if !stats.NetProfit.Equal(decimal.RequireFromString("850.00")) {
			t.Errorf("expected net 850.00, got %s", stats.NetProfit)
		}
		if !stats.AvgTransactionValue.Equal(decimal.RequireFromString("37.50")) {
			t.Errorf("expected average 37.50, got %s", stats.AvgTransactionValue)
		}
		if stats.TransactionsCount != 4 {
			t.Errorf("expected 4 transactions counted, got %d", stats.TransactionsCount)
		}
	})

	t.Run("average spreads expenses over every completed transaction", func(t *testing.T) {
		txnRepo := &statsTransactionRepo{completed: []*entity.TransactionWithCategory{
			statsTxn(entity.TransactionTypeIncome, "1000.00"),
			statsTxn(entity.TransactionTypeExpense, "150.00"),
		}}
		uc := NewGetStatsUseCase(txnRepo, &statsBudgetRepo{})

		stats, err := uc.Execute(ctx, GetStatsInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !stats.AvgTransactionValue.Equal(decimal.RequireFromString("75.00")) {
			t.Errorf("expected average 75.00, got %s", stats.AvgTransactionValue)
		}
	})

	t.Run("average is zero without expenses", func(t *testing.T) {
		txnRepo := &statsTransactionRepo{completed: []*entity.TransactionWithCategory{
			statsTxn(entity.TransactionTypeIncome, "500.00"),
		}}
		uc := NewGetStatsUseCase(txnRepo, &statsBudgetRepo{})

		stats, err := uc.Execute(ctx, GetStatsInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !stats.AvgTransactionValue.IsZero() {
			t.Errorf("expected zero average, got %s", stats.AvgTransactionValue)
		}
	})

	t.Run("defaults to a trailing 30 day window", func(t *testing.T) {
		txnRepo := &statsTransactionRepo{}
		uc := NewGetStatsUseCase(txnRepo, &statsBudgetRepo{})

		stats, err := uc.Execute(ctx, GetStatsInput{PeriodDays: -5})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stats.PeriodDays != 30 {
			t.Errorf("expected 30 day period, got %d", stats.PeriodDays)
		}

		window := txnRepo.lastEnd.Sub(txnRepo.lastStart)
		if window < 29*24*time.Hour || window > 31*24*time.Hour {
			t.Errorf("expected roughly 30 day window, got %s", window)
		}
	})

	t.Run("budget counts split by status", func(t *testing.T) {
		budgetRepo := &statsBudgetRepo{budgets: []*entity.Budget{
			statsBudget(entity.BudgetStatusActive),
			statsBudget(entity.BudgetStatusActive),
			statsBudget(entity.BudgetStatusExceeded),
			statsBudget(entity.BudgetStatusCompleted),
		}}
		uc := NewGetStatsUseCase(&statsTransactionRepo{}, budgetRepo)

		stats, err := uc.Execute(ctx, GetStatsInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stats.ActiveBudgets != 2 {
			t.Errorf("expected 2 active budgets, got %d", stats.ActiveBudgets)
		}
		if stats.BudgetsExceeded != 1 {
			t.Errorf("expected 1 exceeded budget, got %d", stats.BudgetsExceeded)
		}
	})
}
