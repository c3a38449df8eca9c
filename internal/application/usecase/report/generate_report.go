// Package report contains report generation and export use cases.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fleetops/finance-hub/internal/application/adapter"
	"github.com/fleetops/finance-hub/internal/domain/entity"
	domainerror "github.com/fleetops/finance-hub/internal/domain/error"
)

// GenerateReportInput represents the input for report generation.
type GenerateReportInput struct {
	StartDate  time.Time
	EndDate    time.Time
	CategoryID *uuid.UUID
	Department string
}

// GenerateReportUseCase assembles period-bounded finance reports.
type GenerateReportUseCase struct {
	transactionRepo adapter.TransactionRepository
	budgetRepo      adapter.BudgetRepository
}

// NewGenerateReportUseCase creates a new GenerateReportUseCase instance.
func NewGenerateReportUseCase(
	transactionRepo adapter.TransactionRepository,
	budgetRepo adapter.BudgetRepository,
) *GenerateReportUseCase {
	return &GenerateReportUseCase{
		transactionRepo: transactionRepo,
		budgetRepo:      budgetRepo,
	}
}

// Execute builds a FinanceReport over completed transactions in the period.
// Budget utilization is derived from currently active budgets and is not
// scoped to the report period.
func (uc *GenerateReportUseCase) Execute(ctx context.Context, input GenerateReportInput) (*entity.FinanceReport, error) {
	if err := validateReportInput(input); err != nil {
		return nil, err
	}

	transactions, err := uc.transactionRepo.FindCompletedInRange(ctx, input.StartDate, input.EndDate, adapter.ReportFilter{
		CategoryID: input.CategoryID,
		Department: input.Department,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch transactions for report: %w", err)
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

	aggregates := Aggregate(transactions)

	utilization, err := uc.budgetUtilization(ctx)
	if err != nil {
		return nil, err
	}

	return &entity.FinanceReport{
		PeriodStart:       input.StartDate,
		PeriodEnd:         input.EndDate,
		TotalIncome:       totalIncome,
		TotalExpenses:     totalExpenses,
		NetProfit:         totalIncome.Sub(totalExpenses),
		TransactionsCount: len(transactions),
		ByCategory:        aggregates.ByCategory,
		ByMonth:           aggregates.ByMonth,
		TopExpenses:       aggregates.TopExpenses,
		BudgetUtilization: utilization,
		GeneratedAt:       time.Now().UTC(),
	}, nil
}

// budgetUtilization maps every active budget to its utilization entry.
func (uc *GenerateReportUseCase) budgetUtilization(ctx context.Context) ([]entity.BudgetUtilization, error) {
	budgets, err := uc.budgetRepo.FindByStatus(ctx, entity.BudgetStatusActive)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch active budgets: %w", err)
	}

	utilization := make([]entity.BudgetUtilization, 0, len(budgets))
	for _, budget := range budgets {
		utilization = append(utilization, entity.BudgetUtilization{
			BudgetID:              budget.ID,
			Name:                  budget.Name,
			Allocated:             budget.Amount,
			Spent:                 budget.Spent,
			Remaining:             budget.Remaining,
			UtilizationPercentage: budget.UtilizationPercent(),
			Status:                budget.Status,
		})
	}

	return utilization, nil
}

// validateReportInput validates the report period.
func validateReportInput(input GenerateReportInput) error {
	if input.StartDate.IsZero() {
		return domainerror.NewReportError(
			domainerror.ErrCodeMissingReportStartDate,
			"start_date is required",
			domainerror.ErrMissingReportStartDate,
		)
	}

	if input.EndDate.IsZero() {
		return domainerror.NewReportError(
			domainerror.ErrCodeMissingReportEndDate,
			"end_date is required",
			domainerror.ErrMissingReportEndDate,
		)
	}

	if input.EndDate.Before(input.StartDate) {
		return domainerror.NewReportError(
			domainerror.ErrCodeInvalidReportRange,
			"end_date must not precede start_date",
			domainerror.ErrInvalidReportRange,
		)
	}

	return nil
}
