// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fleetops/finance-hub/internal/application/adapter"
	"github.com/fleetops/finance-hub/internal/application/usecase/ledger"
	"github.com/fleetops/finance-hub/internal/domain/entity"
	domainerror "github.com/fleetops/finance-hub/internal/domain/error"
)

// UpdateTransactionInput represents the input for transaction update.
type UpdateTransactionInput struct {
	TransactionID   uuid.UUID
	Type            *entity.TransactionType
	Amount          *decimal.Decimal
	Currency        *string
	Date            *time.Time
	CategoryID      *uuid.UUID
	ClearCategory   bool // Set to true to remove category
	Description     *string
	PaymentMethod   *string
	ReferenceNumber *string
	Vendor          *string
	ProjectID       *string
	Department      *string
	Status          *entity.TransactionStatus
	Metadata        map[string]interface{}
}

// UpdateTransactionOutput represents the output of transaction update.
type UpdateTransactionOutput struct {
	Transaction *TransactionOutput
}

// UpdateTransactionUseCase handles transaction update logic.
type UpdateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	categoryRepo    adapter.CategoryRepository
	budgetLedger    *ledger.BudgetLedger
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
	budgetLedger *ledger.BudgetLedger,
) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		budgetLedger:    budgetLedger,
	}
}

// Execute performs the transaction update. When the mutation changes whether
// or how much the transaction accrues, the old contribution is reversed and
// the new one applied. Ledger failures are logged but never roll the update
// back.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	transaction, err := uc.transactionRepo.FindByID(ctx, input.TransactionID)
	if err != nil {
		if errors.Is(err, domainerror.ErrTransactionNotFound) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTransactionNotFound,
				"transaction not found",
				domainerror.ErrTransactionNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}

	// Snapshot the pre-update budget contribution.
	previous := *transaction

	if input.Type != nil {
		if !isValidTransactionType(*input.Type) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidTransactionType,
				"transaction type must be 'income', 'expense' or 'transfer'",
				domainerror.ErrInvalidTransactionType,
			)
		}
		transaction.Type = *input.Type
	}

	if input.Status != nil {
		if !isValidTransactionStatus(*input.Status) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidTransactionStatus,
				"transaction status must be 'pending', 'completed' or 'cancelled'",
				domainerror.ErrInvalidTransactionStatus,
			)
		}
		transaction.Status = *input.Status
	}

	if input.Amount != nil {
		if input.Amount.IsNegative() {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeNegativeAmount,
				"transaction amount must not be negative",
				domainerror.ErrNegativeTransactionAmount,
			)
		}
		transaction.Amount = *input.Amount
	}

	if input.Date != nil {
		if input.Date.IsZero() {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeMissingTransactionDate,
				"transaction date is required",
				domainerror.ErrMissingTransactionDate,
			)
		}
		transaction.Date = *input.Date
	}

	if input.Currency != nil {
		transaction.Currency = *input.Currency
	}

	var category *entity.Category
	if input.ClearCategory {
		transaction.CategoryID = nil
	} else if input.CategoryID != nil {
		found, err := uc.categoryRepo.FindByID(ctx, *input.CategoryID)
		if err != nil {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTxnCategoryNotFound,
				"category not found",
				domainerror.ErrCategoryNotFoundForTransaction,
			)
		}
		if !found.IsActive() {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTxnCategoryArchived,
				"category is archived",
				domainerror.ErrCategoryArchived,
			)
		}
		transaction.CategoryID = input.CategoryID
		category = found
	} else if transaction.CategoryID != nil {
		// Load the existing category for the response.
		found, err := uc.categoryRepo.FindByID(ctx, *transaction.CategoryID)
		if err != nil {
			slog.Debug("Failed to load category for response",
				"category_id", *transaction.CategoryID,
				"error", err,
			)
		} else {
			category = found
		}
	}

	if input.Description != nil {
		transaction.Description = *input.Description
	}
	if input.PaymentMethod != nil {
		transaction.PaymentMethod = *input.PaymentMethod
	}
	if input.ReferenceNumber != nil {
		transaction.ReferenceNumber = *input.ReferenceNumber
	}
	if input.Vendor != nil {
		transaction.Vendor = *input.Vendor
	}
	if input.ProjectID != nil {
		transaction.ProjectID = *input.ProjectID
	}
	if input.Department != nil {
		transaction.Department = *input.Department
	}
	if input.Metadata != nil {
		transaction.Metadata = input.Metadata
	}

	transaction.UpdatedAt = time.Now().UTC()

	if err := uc.transactionRepo.Update(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	uc.reconcileBudgets(ctx, &previous, transaction)

	return &UpdateTransactionOutput{
		Transaction: toTransactionOutput(transaction, category),
	}, nil
}

// reconcileBudgets reverses the old budget contribution and applies the new
// one when the update changed either.
func (uc *UpdateTransactionUseCase) reconcileBudgets(ctx context.Context, previous, current *entity.Transaction) {
	sameContribution := countsTowardBudgets(previous) == countsTowardBudgets(current) &&
		sameCategory(previous.CategoryID, current.CategoryID) &&
		previous.Amount.Equal(current.Amount)
	if sameContribution {
		return
	}

	if countsTowardBudgets(previous) {
		if err := uc.budgetLedger.ApplyDelta(ctx, previous.CategoryID, previous.Amount.Neg()); err != nil {
			slog.Warn("Failed to reverse budget contribution",
				"transactionID", previous.ID,
				"error", err,
			)
		}
	}

	if countsTowardBudgets(current) {
		if err := uc.budgetLedger.ApplyDelta(ctx, current.CategoryID, current.Amount); err != nil {
			slog.Warn("Failed to accrue transaction to budgets",
				"transactionID", current.ID,
				"error", err,
			)
		}
	}
}

// sameCategory compares two optional category references by value.
func sameCategory(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
