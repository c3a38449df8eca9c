// Package budget contains budget-related use cases.
package budget

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

// CreateBudgetInput represents the input for budget creation.
type CreateBudgetInput struct {
	Name           string
	CategoryID     *uuid.UUID
	Amount         decimal.Decimal
	Period         entity.BudgetPeriod
	StartDate      time.Time
	EndDate        time.Time
	AlertThreshold *int
}

// CreateBudgetOutput represents the output of budget creation.
type CreateBudgetOutput struct {
	Budget *entity.Budget
}

// CreateBudgetUseCase handles budget creation logic.
type CreateBudgetUseCase struct {
	budgetRepo   adapter.BudgetRepository
	categoryRepo adapter.CategoryRepository
}

// NewCreateBudgetUseCase creates a new CreateBudgetUseCase instance.
func NewCreateBudgetUseCase(
	budgetRepo adapter.BudgetRepository,
	categoryRepo adapter.CategoryRepository,
) *CreateBudgetUseCase {
	return &CreateBudgetUseCase{
		budgetRepo:   budgetRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute performs the budget creation. New budgets start active with zero
// spend.
func (uc *CreateBudgetUseCase) Execute(ctx context.Context, input CreateBudgetInput) (*CreateBudgetOutput, error) {
	if input.Name == "" {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeMissingBudgetFields,
			"budget name is required",
			nil,
		)
	}

	if err := validateBudgetFields(input.Amount, input.Period, input.StartDate, input.EndDate, input.AlertThreshold); err != nil {
		return nil, err
	}

	if input.CategoryID != nil {
		if _, err := uc.categoryRepo.FindByID(ctx, *input.CategoryID); err != nil {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeMissingBudgetFields,
				"category not found",
				domainerror.ErrCategoryNotFound,
			)
		}
	}

	budget := entity.NewBudget(
		input.Name,
		input.CategoryID,
		input.Amount,
		input.Period,
		input.StartDate,
		input.EndDate,
		input.AlertThreshold,
	)

	if err := uc.budgetRepo.Create(ctx, budget); err != nil {
		return nil, fmt.Errorf("failed to create budget: %w", err)
	}

	return &CreateBudgetOutput{Budget: budget}, nil
}

// validateBudgetFields validates the shared budget constraints.
func validateBudgetFields(amount decimal.Decimal, period entity.BudgetPeriod, startDate, endDate time.Time, alertThreshold *int) error {
	if amount.IsNegative() {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeNegativeBudgetAmount,
			"budget amount must not be negative",
			domainerror.ErrNegativeBudgetAmount,
		)
	}

	if !isValidBudgetPeriod(period) {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetPeriod,
			"budget period must be 'monthly', 'quarterly', 'yearly' or 'custom'",
			domainerror.ErrInvalidBudgetPeriod,
		)
	}

	if startDate.IsZero() || endDate.IsZero() {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeMissingBudgetFields,
			"budget start and end dates are required",
			nil,
		)
	}

	if endDate.Before(startDate) {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetWindow,
			"budget end date must not precede start date",
			domainerror.ErrInvalidBudgetWindow,
		)
	}

	if alertThreshold != nil && (*alertThreshold < 0 || *alertThreshold > 100) {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidAlertThreshold,
			"alert threshold must be between 0 and 100",
			domainerror.ErrInvalidAlertThreshold,
		)
	}

	return nil
}

// isValidBudgetPeriod checks if the budget period is valid.
func isValidBudgetPeriod(p entity.BudgetPeriod) bool {
	switch p {
	case entity.BudgetPeriodMonthly, entity.BudgetPeriodQuarterly, entity.BudgetPeriodYearly, entity.BudgetPeriodCustom:
		return true
	}
	return false
}
