// Package entity defines the core business entities for the domain layer.
package entity

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction.
type TransactionType string

const (
	TransactionTypeIncome   TransactionType = "income"
	TransactionTypeExpense  TransactionType = "expense"
	TransactionTypeTransfer TransactionType = "transfer"
)

// TransactionStatus represents the lifecycle status of a transaction.
// Only completed transactions count toward budget spend and reports.
type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusCancelled TransactionStatus = "cancelled"
)

// DefaultCurrency is the currency assigned when none is provided.
const DefaultCurrency = "USD"

// Transaction represents a financial event in the Fleet Finance Hub.
type Transaction struct {
	ID              uuid.UUID
	TransactionID   string // Human-shareable reference, format txn_<epoch-ms>_<random6>
	Type            TransactionType
	Amount          decimal.Decimal // Non-negative; direction is carried by Type
	Currency        string
	Date            time.Time
	CategoryID      *uuid.UUID // Optional, can be uncategorized
	Description     string
	PaymentMethod   string
	ReferenceNumber string
	Vendor          string
	ProjectID       string
	Department      string
	Status          TransactionStatus
	CreatedBy       uuid.UUID
	Metadata        map[string]interface{}
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewTransaction creates a new Transaction entity with a generated
// transaction reference, completed status and USD currency defaults.
func NewTransaction(
	transactionType TransactionType,
	amount decimal.Decimal,
	currency string,
	date time.Time,
	categoryID *uuid.UUID,
	description string,
	createdBy uuid.UUID,
) *Transaction {
	now := time.Now().UTC()

	if currency == "" {
		currency = DefaultCurrency
	}

	return &Transaction{
		ID:            uuid.New(),
		TransactionID: newTransactionReference(now),
		Type:          transactionType,
		Amount:        amount,
		Currency:      currency,
		Date:          date,
		CategoryID:    categoryID,
		Description:   description,
		Status:        TransactionStatusCompleted,
		CreatedBy:     createdBy,
		Metadata:      map[string]interface{}{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// newTransactionReference builds the shareable txn_<epoch-ms>_<random6> id.
func newTransactionReference(now time.Time) string {
	suffix := make([]byte, 3)
	if _, err := rand.Read(suffix); err != nil {
		// Fall back to a time-derived suffix; uniqueness is still backed
		// by the store-assigned primary key.
		return fmt.Sprintf("txn_%d_%06d", now.UnixMilli(), now.Nanosecond()%1000000)
	}
	return fmt.Sprintf("txn_%d_%s", now.UnixMilli(), hex.EncodeToString(suffix))
}

// IsExpense reports whether the transaction contributes to budget spend.
func (t *Transaction) IsExpense() bool {
	return t.Type == TransactionTypeExpense
}

// IsCompleted reports whether the transaction counts toward reports and budgets.
func (t *Transaction) IsCompleted() bool {
	return t.Status == TransactionStatusCompleted
}

// TransactionWithCategory represents a transaction with its associated category.
type TransactionWithCategory struct {
	Transaction *Transaction
	Category    *Category
}

// CategoryName returns the category name or the empty string when the
// transaction is uncategorized.
func (t *TransactionWithCategory) CategoryName() string {
	if t.Category == nil {
		return ""
	}
	return t.Category.Name
}

// TransactionListResult represents the result of listing transactions.
type TransactionListResult struct {
	Transactions []*TransactionWithCategory
	Total        int64
	Page         int
	Limit        int
	TotalPages   int
}
