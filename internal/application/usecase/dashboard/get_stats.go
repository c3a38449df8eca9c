// Package dashboard contains dashboard summary use cases.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fleetops/finance-hub/internal/application/adapter"
	"github.com/fleetops/finance-hub/internal/domain/entity"
)

// defaultPeriodDays is used when the caller does not constrain the window.
const defaultPeriodDays = 30

// GetStatsInput represents the input for dashboard stats.
type GetStatsInput struct {
	PeriodDays int
}

// GetStatsUseCase computes the headline numbers shown on the dashboard.
type GetStatsUseCase struct {
	transactionRepo adapter.TransactionRepository
	budgetRepo      adapter.BudgetRepository
}

// NewGetStatsUseCase creates a new GetStatsUseCase instance.
func NewGetStatsUseCase(
	transactionRepo adapter.TransactionRepository,
	budgetRepo adapter.BudgetRepository,
) *GetStatsUseCase {
	return &GetStatsUseCase{
		transactionRepo: transactionRepo,
		budgetRepo:      budgetRepo,
	}
}

// Execute summarizes completed transactions over the trailing period and the
// current budget counts. The average transaction value is total expenses
// spread over every completed transaction in the window, zero when the
// window is empty.
func (uc *GetStatsUseCase) Execute(ctx context.Context, input GetStatsInput) (*entity.DashboardStats, error) {
	periodDays := input.PeriodDays
	if periodDays <= 0 {
		periodDays = defaultPeriodDays
	}

	now := time.Now().UTC()
	startDate := now.AddDate(0, 0, -periodDays)

	transactions, err := uc.transactionRepo.FindCompletedInRange(ctx, startDate, now, adapter.ReportFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch transactions for dashboard: %w", err)
	}

	totalIncome := decimal.Zero
	totalExpenses := decimal.Zero
	for _, txn := range transactions {
		switch txn.Transaction.Type {
		case entity.TransactionTypeIncome:
			totalIncome = totalIncome.Add(txn.Transaction.Amount)
		case entity.TransactionTypeExpense:
			totalExpenses = totalExpenses.Add(txn.Transaction.Amount)
		}
	}
	totalIncome = totalIncome.Round(2)
	totalExpenses = totalExpenses.Round(2)

	avgTransactionValue := decimal.Zero
	if len(transactions) > 0 {
		avgTransactionValue = totalExpenses.Div(decimal.NewFromInt(int64(len(transactions)))).Round(2)
	}

	budgets, err := uc.budgetRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch budgets for dashboard: %w", err)
	}

	activeBudgets := 0
	exceededBudgets := 0
	for _, budget := range budgets {
		switch budget.Status {
		case entity.BudgetStatusActive:
			activeBudgets++
		case entity.BudgetStatusExceeded:
			exceededBudgets++
		}
	}

	return &entity.DashboardStats{
		PeriodDays:          periodDays,
		TotalIncome:         totalIncome,
		TotalExpenses:       totalExpenses,
		NetProfit:           totalIncome.Sub(totalExpenses),
		TransactionsCount:   len(transactions),
		ActiveBudgets:       activeBudgets,
		BudgetsExceeded:     exceededBudgets,
		AvgTransactionValue: avgTransactionValue,
	}, nil
}
