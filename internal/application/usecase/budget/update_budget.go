// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fleetops/finance-hub/internal/application/adapter"
	"github.com/fleetops/finance-hub/internal/domain/entity"
	domainerror "github.com/fleetops/finance-hub/internal/domain/error"
)

// UpdateBudgetInput represents the input for budget update.
type UpdateBudgetInput struct {
	BudgetID       uuid.UUID
	Name           *string
	Amount         *decimal.Decimal
	Period         *entity.BudgetPeriod
	StartDate      *time.Time
	EndDate        *time.Time
	AlertThreshold *int
	ClearThreshold bool // Set to true to remove the alert threshold
	Status         *entity.BudgetStatus
}

// UpdateBudgetOutput represents the output of budget update.
type UpdateBudgetOutput struct {
	Budget *entity.Budget
}

// UpdateBudgetUseCase handles budget update logic.
type UpdateBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
}

// NewUpdateBudgetUseCase creates a new UpdateBudgetUseCase instance.
func NewUpdateBudgetUseCase(budgetRepo adapter.BudgetRepository) *UpdateBudgetUseCase {
	return &UpdateBudgetUseCase{
		budgetRepo: budgetRepo,
	}
}

// Execute performs the budget update. Spent is never writable here; changing
// the ceiling recomputes remaining and may promote the status to exceeded,
// but never demotes an exceeded budget. Demotion goes through re-evaluation.
func (uc *UpdateBudgetUseCase) Execute(ctx context.Context, input UpdateBudgetInput) (*UpdateBudgetOutput, error) {
	budget, err := uc.budgetRepo.FindByID(ctx, input.BudgetID)
	if err != nil {
		if errors.Is(err, domainerror.ErrBudgetNotFound) {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeBudgetNotFound,
				"budget not found",
				domainerror.ErrBudgetNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find budget: %w", err)
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeMissingBudgetFields,
				"budget name is required",
				nil,
			)
		}
		budget.Name = *input.Name
	}

	if input.Amount != nil {
		budget.Amount = *input.Amount
	}
	if input.Period != nil {
		budget.Period = *input.Period
	}
	if input.StartDate != nil {
		budget.StartDate = *input.StartDate
	}
	if input.EndDate != nil {
		budget.EndDate = *input.EndDate
	}
	if input.ClearThreshold {
		budget.AlertThreshold = nil
	} else if input.AlertThreshold != nil {
		budget.AlertThreshold = input.AlertThreshold
	}

	if err := validateBudgetFields(budget.Amount, budget.Period, budget.StartDate, budget.EndDate, budget.AlertThreshold); err != nil {
		return nil, err
	}

	if input.Status != nil {
		if !isValidBudgetStatus(*input.Status) {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeMissingBudgetFields,
				"budget status must be 'active', 'completed' or 'exceeded'",
				nil,
			)
		}
		// Exceeded is sticky against plain updates.
		if budget.Status != entity.BudgetStatusExceeded || *input.Status == entity.BudgetStatusCompleted {
			budget.Status = *input.Status
		}
	}

	budget.Remaining = budget.Amount.Sub(budget.Spent)
	if budget.Status == entity.BudgetStatusActive && budget.IsExceeded() {
		budget.Status = entity.BudgetStatusExceeded
	}
	budget.UpdatedAt = time.Now().UTC()

	if err := uc.budgetRepo.Update(ctx, budget); err != nil {
		return nil, fmt.Errorf("failed to update budget: %w", err)
	}

	return &UpdateBudgetOutput{Budget: budget}, nil
}

// isValidBudgetStatus checks if the budget status is valid.
func isValidBudgetStatus(s entity.BudgetStatus) bool {
	switch s {
	case entity.BudgetStatusActive, entity.BudgetStatusCompleted, entity.BudgetStatusExceeded:
		return true
	}
	return false
}
