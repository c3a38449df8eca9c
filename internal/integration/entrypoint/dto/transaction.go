// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/fleetops/finance-hub/internal/application/usecase/transaction"
)

// CreateTransactionRequest represents the request body for transaction creation.
type CreateTransactionRequest struct {
	Type            string                 `json:"type" binding:"required,oneof=income expense transfer"`
	Amount          string                 `json:"amount" binding:"required"`
	Currency        string                 `json:"currency,omitempty" binding:"omitempty,len=3"`
	Date            time.Time              `json:"date" binding:"required"`
	CategoryID      *string                `json:"category_id,omitempty"`
	Description     string                 `json:"description,omitempty" binding:"omitempty,max=500"`
	PaymentMethod   string                 `json:"payment_method,omitempty"`
	ReferenceNumber string                 `json:"reference_number,omitempty"`
	Vendor          string                 `json:"vendor,omitempty"`
	ProjectID       string                 `json:"project_id,omitempty"`
	Department      string                 `json:"department,omitempty"`
	Status          string                 `json:"status,omitempty" binding:"omitempty,oneof=pending completed cancelled"`
	Metadata        map[string]interface{} `json:"metadata,omitempty"`
}

// UpdateTransactionRequest represents the request body for transaction update.
type UpdateTransactionRequest struct {
	Type            *string                `json:"type,omitempty" binding:"omitempty,oneof=income expense transfer"`
	Amount          *string                `json:"amount,omitempty"`
	Currency        *string                `json:"currency,omitempty" binding:"omitempty,len=3"`
	Date            *time.Time             `json:"date,omitempty"`
	CategoryID      *string                `json:"category_id,omitempty"`
	ClearCategory   bool                   `json:"clear_category,omitempty"`
	Description     *string                `json:"description,omitempty" binding:"omitempty,max=500"`
	PaymentMethod   *string                `json:"payment_method,omitempty"`
	ReferenceNumber *string                `json:"reference_number,omitempty"`
	Vendor          *string                `json:"vendor,omitempty"`
	ProjectID       *string                `json:"project_id,omitempty"`
	Department      *string                `json:"department,omitempty"`
	Status          *string                `json:"status,omitempty" binding:"omitempty,oneof=pending completed cancelled"`
	Metadata        map[string]interface{} `json:"metadata,omitempty"`
}

// TransactionCategoryResponse represents category information inside a transaction.
type TransactionCategoryResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
	Type  string `json:"type"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID              string                       `json:"id"`
	TransactionID   string                       `json:"transaction_id"`
	Type            string                       `json:"type"`
	Amount          string                       `json:"amount"`
	Currency        string                       `json:"currency"`
	Date            time.Time                    `json:"date"`
	CategoryID      *string                      `json:"category_id,omitempty"`
	Category        *TransactionCategoryResponse `json:"category,omitempty"`
	Description     string                       `json:"description"`
	PaymentMethod   string                       `json:"payment_method,omitempty"`
	ReferenceNumber string                       `json:"reference_number,omitempty"`
	Vendor          string                       `json:"vendor,omitempty"`
	ProjectID       string                       `json:"project_id,omitempty"`
	Department      string                       `json:"department,omitempty"`
	Status          string                       `json:"status"`
	CreatedBy       string                       `json:"created_by"`
	Metadata        map[string]interface{}       `json:"metadata,omitempty"`
	CreatedAt       time.Time                    `json:"created_at"`
	UpdatedAt       time.Time                    `json:"updated_at"`
}

// PaginationResponse represents pagination information in API responses.
type PaginationResponse struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Pagination   PaginationResponse    `json:"pagination"`
}

// ToTransactionResponse converts a transaction output to a TransactionResponse DTO.
func ToTransactionResponse(output *transaction.TransactionOutput) TransactionResponse {
	response := TransactionResponse{
		ID:              output.ID.String(),
		TransactionID:   output.TransactionID,
		Type:            string(output.Type),
		Amount:          output.Amount.StringFixed(2),
		Currency:        output.Currency,
		Date:            output.Date,
		Description:     output.Description,
		PaymentMethod:   output.PaymentMethod,
		ReferenceNumber: output.ReferenceNumber,
		Vendor:          output.Vendor,
		ProjectID:       output.ProjectID,
		Department:      output.Department,
		Status:          string(output.Status),
		CreatedBy:       output.CreatedBy.String(),
		Metadata:        output.Metadata,
		CreatedAt:       output.CreatedAt,
		UpdatedAt:       output.UpdatedAt,
	}

	if output.CategoryID != nil {
		id := output.CategoryID.String()
		response.CategoryID = &id
	}

	if output.Category != nil {
		response.Category = &TransactionCategoryResponse{
			ID:    output.Category.ID.String(),
			Name:  output.Category.Name,
			Color: output.Category.Color,
			Icon:  output.Category.Icon,
			Type:  string(output.Category.Type),
		}
	}

	return response
}

// ToTransactionListResponse converts a list output to a TransactionListResponse.
func ToTransactionListResponse(output *transaction.ListTransactionsOutput) TransactionListResponse {
	transactions := make([]TransactionResponse, len(output.Transactions))
	for i, txn := range output.Transactions {
		transactions[i] = ToTransactionResponse(txn)
	}
	return TransactionListResponse{
		Transactions: transactions,
		Pagination: PaginationResponse{
			Page:       output.Pagination.Page,
			Limit:      output.Pagination.Limit,
			Total:      output.Pagination.Total,
			TotalPages: output.Pagination.TotalPages,
		},
	}
}
