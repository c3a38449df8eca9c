// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fleetops/finance-hub/internal/application/adapter"
	"github.com/fleetops/finance-hub/internal/domain/entity"
	domainerror "github.com/fleetops/finance-hub/internal/domain/error"
)

// ReevaluateBudgetInput represents the input for budget re-evaluation.
type ReevaluateBudgetInput struct {
	BudgetID uuid.UUID
}

// ReevaluateBudgetOutput represents the output of budget re-evaluation.
type ReevaluateBudgetOutput struct {
	Budget *entity.Budget
}

// ReevaluateBudgetUseCase recomputes a budget's status from its current
// spend. This is the only operation that may demote an exceeded budget back
// to active, after reversals dropped spend under the ceiling.
type ReevaluateBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
}

// NewReevaluateBudgetUseCase creates a new ReevaluateBudgetUseCase instance.
func NewReevaluateBudgetUseCase(budgetRepo adapter.BudgetRepository) *ReevaluateBudgetUseCase {
	return &ReevaluateBudgetUseCase{
		budgetRepo: budgetRepo,
	}
}

// Execute recomputes the status. Completed budgets are left alone.
func (uc *ReevaluateBudgetUseCase) Execute(ctx context.Context, input ReevaluateBudgetInput) (*ReevaluateBudgetOutput, error) {
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

	if budget.Status == entity.BudgetStatusCompleted {
		return &ReevaluateBudgetOutput{Budget: budget}, nil
	}

	status := entity.BudgetStatusActive
	if budget.IsExceeded() {
		status = entity.BudgetStatusExceeded
	}

	if status != budget.Status {
		if err := uc.budgetRepo.UpdateStatus(ctx, budget.ID, status); err != nil {
			return nil, fmt.Errorf("failed to update budget status: %w", err)
		}
		budget.Status = status
		budget.UpdatedAt = time.Now().UTC()
	}

	return &ReevaluateBudgetOutput{Budget: budget}, nil
}
