// Package ledger maintains running budget balances in response to
// transaction mutations.
package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fleetops/finance-hub/internal/application/adapter"
	"github.com/fleetops/finance-hub/internal/domain/entity"
)

// BudgetLedger applies signed spend deltas to the budgets of a category.
// It carries no state of its own; every application reads and writes the
// store through a single atomic repository operation.
type BudgetLedger struct {
	budgetRepo     adapter.BudgetRepository
	alertQueue     adapter.AlertQueueRepository
	alertRecipient string
}

// NewBudgetLedger creates a new BudgetLedger instance. alertQueue may be nil
// to disable alert enqueueing (alerts are a side channel, never required for
// ledger correctness).
func NewBudgetLedger(budgetRepo adapter.BudgetRepository, alertQueue adapter.AlertQueueRepository, alertRecipient string) *BudgetLedger {
	return &BudgetLedger{
		budgetRepo:     budgetRepo,
		alertQueue:     alertQueue,
		alertRecipient: alertRecipient,
	}
}

// ApplyDelta adds signedAmount to the spent total of every non-completed
// budget for categoryID whose window contains the evaluation time, keeping
// remaining = amount - spent and promoting status to exceeded once spend
// reaches the ceiling. The exceeded status is sticky: a negative delta that
// drops spend back under the ceiling does not revert it.
//
// A nil categoryID is a no-op: uncategorized expenses accrue to no budget.
func (l *BudgetLedger) ApplyDelta(ctx context.Context, categoryID *uuid.UUID, signedAmount decimal.Decimal) error {
	if categoryID == nil || signedAmount.IsZero() {
		return nil
	}

	affected, err := l.budgetRepo.ApplyDelta(ctx, *categoryID, signedAmount, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to apply budget delta: %w", err)
	}

	for _, budget := range affected {
		l.maybeEnqueueAlert(ctx, budget, signedAmount)
	}

	return nil
}

// maybeEnqueueAlert raises an alert when the delta pushed a budget over its
// alert threshold or its ceiling. Enqueue failures are logged and swallowed;
// alerting must never fail a ledger write.
func (l *BudgetLedger) maybeEnqueueAlert(ctx context.Context, budget *entity.Budget, delta decimal.Decimal) {
	if l.alertQueue == nil || l.alertRecipient == "" || delta.IsNegative() {
		return
	}

	before := *budget
	before.Spent = budget.Spent.Sub(delta)

	var job *entity.AlertJob
	switch {
	case budget.IsExceeded() && !before.IsExceeded():
		job = entity.NewAlertJob(
			entity.AlertTypeExceeded,
			budget.ID,
			l.alertRecipient,
			fmt.Sprintf("Budget exceeded: %s", budget.Name),
			alertPayload(budget),
		)
	case budget.ThresholdReached() && !before.ThresholdReached():
		job = entity.NewAlertJob(
			entity.AlertTypeThreshold,
			budget.ID,
			l.alertRecipient,
			fmt.Sprintf("Budget threshold reached: %s", budget.Name),
			alertPayload(budget),
		)
	default:
		return
	}

	if err := l.alertQueue.Enqueue(ctx, job); err != nil {
		slog.Warn("Failed to enqueue budget alert",
			"budgetID", budget.ID,
			"alertType", job.Type,
			"error", err,
		)
	}
}

func alertPayload(budget *entity.Budget) map[string]interface{} {
	return map[string]interface{}{
		"budget_name": budget.Name,
		"allocated":   budget.Amount.String(),
		"spent":       budget.Spent.String(),
		"remaining":   budget.Remaining.String(),
		"utilization": budget.UtilizationPercent(),
		"status":      string(budget.Status),
	}
}
