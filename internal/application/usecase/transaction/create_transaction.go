// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
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

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	Type            entity.TransactionType
	Amount          decimal.Decimal
	Currency        string
	Date            time.Time
	CategoryID      *uuid.UUID
	Description     string
	PaymentMethod   string
	ReferenceNumber string
	Vendor          string
	ProjectID       string
	Department      string
	Status          entity.TransactionStatus // Defaults to completed when empty
	CreatedBy       uuid.UUID
	Metadata        map[string]interface{}
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *TransactionOutput
}

// CreateTransactionUseCase handles transaction creation logic.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	categoryRepo    adapter.CategoryRepository
	budgetLedger    *ledger.BudgetLedger
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
	budgetLedger *ledger.BudgetLedger,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		budgetLedger:    budgetLedger,
	}
}

// Execute performs the transaction creation. A completed, categorized expense
// immediately accrues to the matching budgets; a ledger failure is logged but
// never rolls the creation back.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	if !isValidTransactionType(input.Type) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"transaction type must be 'income', 'expense' or 'transfer'",
			domainerror.ErrInvalidTransactionType,
		)
	}

	if input.Status != "" && !isValidTransactionStatus(input.Status) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionStatus,
			"transaction status must be 'pending', 'completed' or 'cancelled'",
			domainerror.ErrInvalidTransactionStatus,
		)
	}

	if input.Amount.IsNegative() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeNegativeAmount,
			"transaction amount must not be negative",
			domainerror.ErrNegativeTransactionAmount,
		)
	}

	if input.Date.IsZero() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeMissingTransactionDate,
			"transaction date is required",
			domainerror.ErrMissingTransactionDate,
		)
	}

	var category *entity.Category
	if input.CategoryID != nil {
		found, err := uc.resolveActiveCategory(ctx, *input.CategoryID)
		if err != nil {
			return nil, err
		}
		category = found
	}

	transaction := entity.NewTransaction(
		input.Type,
		input.Amount,
		input.Currency,
		input.Date,
		input.CategoryID,
		input.Description,
		input.CreatedBy,
	)
	transaction.PaymentMethod = input.PaymentMethod
	transaction.ReferenceNumber = input.ReferenceNumber
	transaction.Vendor = input.Vendor
	transaction.ProjectID = input.ProjectID
	transaction.Department = input.Department
	if input.Status != "" {
		transaction.Status = input.Status
	}
	if input.Metadata != nil {
		transaction.Metadata = input.Metadata
	}

	if err := uc.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	if countsTowardBudgets(transaction) {
		if err := uc.budgetLedger.ApplyDelta(ctx, transaction.CategoryID, transaction.Amount); err != nil {
			slog.Warn("Failed to accrue transaction to budgets",
				"transactionID", transaction.ID,
				"error", err,
			)
		}
	}

	return &CreateTransactionOutput{
		Transaction: toTransactionOutput(transaction, category),
	}, nil
}

// resolveActiveCategory loads a category and rejects missing or archived ones.
func (uc *CreateTransactionUseCase) resolveActiveCategory(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	category, err := uc.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTxnCategoryNotFound,
			"category not found",
			domainerror.ErrCategoryNotFoundForTransaction,
		)
	}
	if !category.IsActive() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTxnCategoryArchived,
			"category is archived",
			domainerror.ErrCategoryArchived,
		)
	}
	return category, nil
}

// countsTowardBudgets reports whether a transaction accrues budget spend.
func countsTowardBudgets(t *entity.Transaction) bool {
	return t.IsExpense() && t.IsCompleted() && t.CategoryID != nil
}

// isValidTransactionType checks if the transaction type is valid.
func isValidTransactionType(t entity.TransactionType) bool {
	switch t {
	case entity.TransactionTypeIncome, entity.TransactionTypeExpense, entity.TransactionTypeTransfer:
		return true
	}
	return false
}

// isValidTransactionStatus checks if the transaction status is valid.
func isValidTransactionStatus(s entity.TransactionStatus) bool {
	switch s {
	case entity.TransactionStatusPending, entity.TransactionStatusCompleted, entity.TransactionStatusCancelled:
		return true
	}
	return false
}
