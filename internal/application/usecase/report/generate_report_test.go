package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fleetops/finance-hub/internal/application/adapter"
	"github.com/fleetops/finance-hub/internal/domain/entity"
	domainerror "github.com/fleetops/finance-hub/internal/domain/error"
)

// fakeTransactionRepo serves a fixed transaction set for report tests.
type fakeTransactionRepo struct {
	completed []*entity.TransactionWithCategory
	lastStart time.Time
	lastEnd   time.Time
}

func (r *fakeTransactionRepo) Create(ctx context.Context, transaction *entity.Transaction) error {
	return nil
}

func (r *fakeTransactionRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	return nil, domainerror.ErrTransactionNotFound
}

func (r *fakeTransactionRepo) FindByIDWithCategory(ctx context.Context, id uuid.UUID) (*entity.TransactionWithCategory, error) {
	return nil, domainerror.ErrTransactionNotFound
}

func (r *fakeTransactionRepo) FindByFilter(ctx context.Context, filter adapter.TransactionFilter, pagination adapter.TransactionPagination) (*entity.TransactionListResult, error) {
	return &entity.TransactionListResult{}, nil
}

func (r *fakeTransactionRepo) FindCompletedInRange(ctx context.Context, startDate, endDate time.Time, filter adapter.ReportFilter) ([]*entity.TransactionWithCategory, error) {
	r.lastStart = startDate
	r.lastEnd = endDate
	return r.completed, nil
}

func (r *fakeTransactionRepo) Update(ctx context.Context, transaction *entity.Transaction) error {
	return nil
}

func (r *fakeTransactionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return nil
}

// fakeBudgetRepo serves a fixed budget set for report tests.
type fakeBudgetRepo struct {
	budgets []*entity.Budget
}

func (r *fakeBudgetRepo) Create(ctx context.Context, budget *entity.Budget) error { return nil }

func (r *fakeBudgetRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Budget, error) {
	return nil, domainerror.ErrBudgetNotFound
}

func (r *fakeBudgetRepo) FindAll(ctx context.Context) ([]*entity.Budget, error) {
	return r.budgets, nil
}

func (r *fakeBudgetRepo) FindByStatus(ctx context.Context, status entity.BudgetStatus) ([]*entity.Budget, error) {
	matching := make([]*entity.Budget, 0)
	for _, budget := range r.budgets {
		if budget.Status == status {
			matching = append(matching, budget)
		}
	}
	return matching, nil
}

func (r *fakeBudgetRepo) ApplyDelta(ctx context.Context, categoryID uuid.UUID, delta decimal.Decimal, at time.Time) ([]*entity.Budget, error) {
	return nil, nil
}

func (r *fakeBudgetRepo) Update(ctx context.Context, budget *entity.Budget) error { return nil }

func (r *fakeBudgetRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.BudgetStatus) error {
	return nil
}

func (r *fakeBudgetRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func TestGenerateReportUseCase_Execute(t *testing.T) {
	start := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, time.January, 31, 0, 0, 0, 0, time.UTC)

	t.Run("computes totals over completed transactions", func(t *testing.T) {
		txnRepo := &fakeTransactionRepo{completed: []*entity.TransactionWithCategory{
			makeTxn(entity.TransactionTypeIncome, "1000.005", start, nil),
			makeTxn(entity.TransactionTypeExpense, "400.00", start, nil),
			makeTxn(entity.TransactionTypeTransfer, "999.00", start, nil),
		}}
		uc := NewGenerateReportUseCase(txnRepo, &fakeBudgetRepo{})

		report, err := uc.Execute(context.Background(), GenerateReportInput{StartDate: start, EndDate: end})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !report.TotalIncome.Equal(decimal.RequireFromString("1000.01")) {
			t.Errorf("expected income rounded to 1000.01, got %s", report.TotalIncome)
		}
		if !report.TotalExpenses.Equal(decimal.RequireFromString("400.00")) {
			t.Errorf("expected expenses 400.00, got %s", report.TotalExpenses)
		}
		if !report.NetProfit.Equal(decimal.RequireFromString("600.01")) {
			t.Errorf("expected net 600.01, got %s", report.NetProfit)
		}
		if report.TransactionsCount != 3 {
			t.Errorf("expected 3 transactions counted, got %d", report.TransactionsCount)
		}
	})

	t.Run("budget utilization covers active budgets only", func(t *testing.T) {
		active := entity.NewBudget("Fuel", nil, decimal.RequireFromString("500.00"), entity.BudgetPeriodMonthly, start, end, nil)
		exceeded := entity.NewBudget("Berth", nil, decimal.RequireFromString("100.00"), entity.BudgetPeriodMonthly, start, end, nil)
		exceeded.Status = entity.BudgetStatusExceeded

		uc := NewGenerateReportUseCase(&fakeTransactionRepo{}, &fakeBudgetRepo{budgets: []*entity.Budget{active, exceeded}})

		report, err := uc.Execute(context.Background(), GenerateReportInput{StartDate: start, EndDate: end})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(report.BudgetUtilization) != 1 {
			t.Fatalf("expected 1 utilization entry, got %d", len(report.BudgetUtilization))
		}
		if report.BudgetUtilization[0].Name != "Fuel" {
			t.Errorf("expected active budget Fuel, got %s", report.BudgetUtilization[0].Name)
		}
	})

	t.Run("rejects inverted period", func(t *testing.T) {
		uc := NewGenerateReportUseCase(&fakeTransactionRepo{}, &fakeBudgetRepo{})

		_, err := uc.Execute(context.Background(), GenerateReportInput{StartDate: end, EndDate: start})

		var reportErr *domainerror.ReportError
		if !errors.As(err, &reportErr) || reportErr.Code != domainerror.ErrCodeInvalidReportRange {
			t.Fatalf("expected invalid range error, got %v", err)
		}
	})

	t.Run("rejects missing dates", func(t *testing.T) {
		uc := NewGenerateReportUseCase(&fakeTransactionRepo{}, &fakeBudgetRepo{})

		_, err := uc.Execute(context.Background(), GenerateReportInput{EndDate: end})
		var reportErr *domainerror.ReportError
		if !errors.As(err, &reportErr) || reportErr.Code != domainerror.ErrCodeMissingReportStartDate {
			t.Fatalf("expected missing start date error, got %v", err)
		}

		_, err = uc.Execute(context.Background(), GenerateReportInput{StartDate: start})
		if !errors.As(err, &reportErr) || reportErr.Code != domainerror.ErrCodeMissingReportEndDate {
			t.Fatalf("expected missing end date error, got %v", err)
		}
	})
}

func TestGenerateMonthlyReportUseCase_Execute(t *testing.T) {
	t.Run("derives first-to-last instant bounds of the month", func(t *testing.T) {
		txnRepo := &fakeTransactionRepo{}
		uc := NewGenerateMonthlyReportUseCase(NewGenerateReportUseCase(txnRepo, &fakeBudgetRepo{}))

		_, err := uc.Execute(context.Background(), GenerateMonthlyReportInput{Month: 2, Year: 2026})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		wantStart := time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)
		if !txnRepo.lastStart.Equal(wantStart) {
			t.Errorf("expected start %s, got %s", wantStart, txnRepo.lastStart)
		}
		if txnRepo.lastEnd.Month() != time.February || txnRepo.lastEnd.Day() != 28 {
			t.Errorf("expected end inside February, got %s", txnRepo.lastEnd)
		}
		if !txnRepo.lastEnd.Before(wantStart.AddDate(0, 1, 0)) {
			t.Errorf("expected end before the next month, got %s", txnRepo.lastEnd)
		}
	})

	t.Run("rejects month outside 1-12", func(t *testing.T) {
		uc := NewGenerateMonthlyReportUseCase(NewGenerateReportUseCase(&fakeTransactionRepo{}, &fakeBudgetRepo{}))

		for _, month := range []int{0, 13} {
			_, err := uc.Execute(context.Background(), GenerateMonthlyReportInput{Month: month, Year: 2026})
			var reportErr *domainerror.ReportError
			if !errors.As(err, &reportErr) || reportErr.Code != domainerror.ErrCodeInvalidReportMonth {
				t.Errorf("month %d: expected invalid month error, got %v", month, err)
			}
		}
	})
}
