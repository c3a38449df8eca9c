// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fleetops/finance-hub/internal/application/adapter"
	"github.com/fleetops/finance-hub/internal/domain/entity"
)

// ListTransactionsInput represents the input for listing transactions.
type ListTransactionsInput struct {
	StartDate  *time.Time
	EndDate    *time.Time
	CategoryID *uuid.UUID
	Type       *entity.TransactionType
	Status     *entity.TransactionStatus
	Department string
	Search     string
	Page       int
	Limit      int
}

// TransactionOutput represents a single transaction in the output.
type TransactionOutput struct {
	ID              uuid.UUID
	TransactionID   string
	Type            entity.TransactionType
	Amount          decimal.Decimal
	Currency        string
	Date            time.Time
	CategoryID      *uuid.UUID
	Category        *CategoryOutput
	Description     string
	PaymentMethod   string
	ReferenceNumber string
	Vendor          string
	ProjectID       string
	Department      string
	Status          entity.TransactionStatus
	CreatedBy       uuid.UUID
	Metadata        map[string]interface{}
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// CategoryOutput represents category information in transaction output.
type CategoryOutput struct {
	ID    uuid.UUID
	Name  string
	Color string
	Icon  string
	Type  entity.CategoryType
}

// PaginationOutput represents pagination information in the output.
type PaginationOutput struct {
	Page       int
	Limit      int
	Total      int64
	TotalPages int
}

// ListTransactionsOutput represents the output of listing transactions.
type ListTransactionsOutput struct {
	Transactions []*TransactionOutput
	Pagination   PaginationOutput
}

// ListTransactionsUseCase handles listing transactions logic.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(transactionRepo adapter.TransactionRepository) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute performs the transaction listing, newest first.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	filter := adapter.TransactionFilter{
		StartDate:  input.StartDate,
		EndDate:    input.EndDate,
		CategoryID: input.CategoryID,
		Type:       input.Type,
		Status:     input.Status,
		Department: input.Department,
		Search:     input.Search,
	}

	pagination := adapter.TransactionPagination{
		Page:  page,
		Limit: limit,
	}

	result, err := uc.transactionRepo.FindByFilter(ctx, filter, pagination)
	if err != nil {
		return nil, err
	}

	output := &ListTransactionsOutput{
		Transactions: make([]*TransactionOutput, len(result.Transactions)),
		Pagination: PaginationOutput{
			Page:       result.Page,
			Limit:      result.Limit,
			Total:      result.Total,
			TotalPages: result.TotalPages,
		},
	}

	for i, txnWithCat := range result.Transactions {
		output.Transactions[i] = toTransactionOutput(txnWithCat.Transaction, txnWithCat.Category)
	}

	return output, nil
}

// toTransactionOutput maps a transaction and its optional category to the
// shared output shape.
func toTransactionOutput(transaction *entity.Transaction, category *entity.Category) *TransactionOutput {
	output := &TransactionOutput{
		ID:              transaction.ID,
		TransactionID:   transaction.TransactionID,
		Type:            transaction.Type,
		Amount:          transaction.Amount,
		Currency:        transaction.Currency,
		Date:            transaction.Date,
		CategoryID:      transaction.CategoryID,
		Description:     transaction.Description,
		PaymentMethod:   transaction.PaymentMethod,
		ReferenceNumber: transaction.ReferenceNumber,
		Vendor:          transaction.Vendor,
		ProjectID:       transaction.ProjectID,
		Department:      transaction.Department,
		Status:          transaction.Status,
		CreatedBy:       transaction.CreatedBy,
		Metadata:        transaction.Metadata,
		CreatedAt:       transaction.CreatedAt,
		UpdatedAt:       transaction.UpdatedAt,
	}

	if category != nil {
		output.Category = &CategoryOutput{
			ID:    category.ID,
			Name:  category.Name,
			Color: category.Color,
			Icon:  category.Icon,
			Type:  category.Type,
		}
	}

	return output
}
