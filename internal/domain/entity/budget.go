// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BudgetPeriod represents the accrual period type of a budget.
type BudgetPeriod string

const (
	BudgetPeriodMonthly   BudgetPeriod = "monthly"
	BudgetPeriodQuarterly BudgetPeriod = "quarterly"
	BudgetPeriodYearly    BudgetPeriod = "yearly"
	BudgetPeriodCustom    BudgetPeriod = "custom"
)

// BudgetStatus represents the status of a budget.
// The exceeded status is sticky: once spend reaches the ceiling the ledger
// never transitions the budget back to active on its own. Reverting requires
// the explicit re-evaluation operation.
type BudgetStatus string

const (
	BudgetStatusActive    BudgetStatus = "active"
	BudgetStatusCompleted BudgetStatus = "completed"
	BudgetStatusExceeded  BudgetStatus = "exceeded"
)

// Budget represents a spending ceiling tracked over a period.
// Invariant: Remaining always equals Amount minus Spent after any mutation.
type Budget struct {
	ID             uuid.UUID
	Name           string
	CategoryID     *uuid.UUID
	Amount         decimal.Decimal // Ceiling
	Spent          decimal.Decimal // Running total, maintained by the ledger
	Remaining      decimal.Decimal // Denormalized Amount - Spent
	Period         BudgetPeriod
	StartDate      time.Time
	EndDate        time.Time
	Status         BudgetStatus
	AlertThreshold *int // Percentage 0-100 at which an alert fires
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewBudget creates a new active Budget with zero spend.
func NewBudget(
	name string,
	categoryID *uuid.UUID,
	amount decimal.Decimal,
	period BudgetPeriod,
	startDate, endDate time.Time,
	alertThreshold *int,
) *Budget {
	now := time.Now().UTC()

	return &Budget{
		ID:             uuid.New(),
		Name:           name,
		CategoryID:     categoryID,
		Amount:         amount,
		Spent:          decimal.Zero,
		Remaining:      amount,
		Period:         period,
		StartDate:      startDate,
		EndDate:        endDate,
		Status:         BudgetStatusActive,
		AlertThreshold: alertThreshold,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// WindowContains reports whether t falls inside the budget's accrual window.
func (b *Budget) WindowContains(t time.Time) bool {
	return !t.Before(b.StartDate) && !t.After(b.EndDate)
}

// IsExceeded reports whether current spend has reached the ceiling.
func (b *Budget) IsExceeded() bool {
	return b.Spent.GreaterThanOrEqual(b.Amount)
}

// UtilizationPercent returns spend as a rounded integer percentage of the
// ceiling, or 0 when the ceiling is zero.
func (b *Budget) UtilizationPercent() int64 {
	if b.Amount.IsZero() {
		return 0
	}
	return b.Spent.Div(b.Amount).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

// ThresholdReached reports whether the alert threshold, when set, has been
// crossed by current spend.
func (b *Budget) ThresholdReached() bool {
	if b.AlertThreshold == nil || b.Amount.IsZero() {
		return false
	}
	return b.UtilizationPercent() >= int64(*b.AlertThreshold)
}
