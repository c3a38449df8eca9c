// Package model defines database models for persistence layer.
package model

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fleetops/finance-hub/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
type TransactionModel struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	TransactionID   string          `gorm:"type:varchar(40);not null;uniqueIndex"`
	Type            string          `gorm:"type:varchar(10);not null;index"`
	Amount          decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Currency        string          `gorm:"type:varchar(3);not null"`
	Date            time.Time       `gorm:"not null;index"`
	CategoryID      *uuid.UUID      `gorm:"type:uuid;index"`
	Description     string          `gorm:"type:varchar(500)"`
	PaymentMethod   string          `gorm:"type:varchar(50)"`
	ReferenceNumber string          `gorm:"type:varchar(100)"`
	Vendor          string          `gorm:"type:varchar(255)"`
	ProjectID       string          `gorm:"type:varchar(100);index"`
	Department      string          `gorm:"type:varchar(100);index"`
	Status          string          `gorm:"type:varchar(10);not null;index"`
	CreatedBy       uuid.UUID       `gorm:"type:uuid;not null;index"`
	Metadata        string          `gorm:"type:jsonb;not null;default:'{}'"`
	CreatedAt       time.Time       `gorm:"not null"`
	UpdatedAt       time.Time       `gorm:"not null"`

	// Relationship (not loaded by default, use Preload)
	Category *CategoryModel `gorm:"foreignKey:CategoryID;references:ID"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	var metadata map[string]interface{}
	if m.Metadata != "" {
		if err := json.Unmarshal([]byte(m.Metadata), &metadata); err != nil {
			slog.Warn("Failed to unmarshal transaction metadata", "error", err, "id", m.ID)
		}
	}
	if metadata == nil {
		metadata = make(map[string]interface{})
	}

	return &entity.Transaction{
		ID:              m.ID,
		TransactionID:   m.TransactionID,
		Type:            entity.TransactionType(m.Type),
		Amount:          m.Amount,
		Currency:        m.Currency,
		Date:            m.Date,
		CategoryID:      m.CategoryID,
		Description:     m.Description,
		PaymentMethod:   m.PaymentMethod,
		ReferenceNumber: m.ReferenceNumber,
		Vendor:          m.Vendor,
		ProjectID:       m.ProjectID,
		Department:      m.Department,
		Status:          entity.TransactionStatus(m.Status),
		CreatedBy:       m.CreatedBy,
		Metadata:        metadata,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// ToEntityWithCategory converts a TransactionModel with its Category to a TransactionWithCategory entity.
func (m *TransactionModel) ToEntityWithCategory() *entity.TransactionWithCategory {
	result := &entity.TransactionWithCategory{
		Transaction: m.ToEntity(),
	}

	if m.Category != nil {
		result.Category = m.Category.ToEntity()
	}

	return result
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionModel {
	metadataJSON, err := json.Marshal(transaction.Metadata)
	if err != nil {
		slog.Error("Failed to marshal transaction metadata", "error", err, "id", transaction.ID)
		metadataJSON = []byte("{}")
	}

	return &TransactionModel{
		ID:              transaction.ID,
		TransactionID:   transaction.TransactionID,
		Type:            string(transaction.Type),
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
		Status:          string(transaction.Status),
		CreatedBy:       transaction.CreatedBy,
		Metadata:        string(metadataJSON),
		CreatedAt:       transaction.CreatedAt,
		UpdatedAt:       transaction.UpdatedAt,
	}
}
