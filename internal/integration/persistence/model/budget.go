// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fleetops/finance-hub/internal/domain/entity"
)

// BudgetModel represents the budgets table in the database.
type BudgetModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name           string          `gorm:"type:varchar(100);not null"`
	CategoryID     *uuid.UUID      `gorm:"type:uuid;index"`
	Amount         decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Spent          decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	Remaining      decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	Period         string          `gorm:"type:varchar(10);not null"`
	StartDate      time.Time       `gorm:"not null;index"`
	EndDate        time.Time       `gorm:"not null;index"`
	Status         string          `gorm:"type:varchar(10);not null;index"`
	AlertThreshold *int            `gorm:"type:integer"`
	CreatedAt      time.Time       `gorm:"not null"`
	UpdatedAt      time.Time       `gorm:"not null"`
}

// TableName returns the table name for the BudgetModel.
func (BudgetModel) TableName() string {
	return "budgets"
}

// ToEntity converts a BudgetModel to a domain Budget entity.
func (m *BudgetModel) ToEntity() *entity.Budget {
	return &entity.Budget{
		ID:             m.ID,
		Name:           m.Name,
		CategoryID:     m.CategoryID,
		Amount:         m.Amount,
		Spent:          m.Spent,
		Remaining:      m.Remaining,
		Period:         entity.BudgetPeriod(m.Period),
		StartDate:      m.StartDate,
		EndDate:        m.EndDate,
		Status:         entity.BudgetStatus(m.Status),
		AlertThreshold: m.AlertThreshold,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// BudgetFromEntity creates a BudgetModel from a domain Budget entity.
func BudgetFromEntity(budget *entity.Budget) *BudgetModel {
	return &BudgetModel{
		ID:             budget.ID,
		Name:           budget.Name,
		CategoryID:     budget.CategoryID,
		Amount:         budget.Amount,
		Spent:          budget.Spent,
		Remaining:      budget.Remaining,
		Period:         string(budget.Period),
		StartDate:      budget.StartDate,
		EndDate:        budget.EndDate,
		Status:         string(budget.Status),
		AlertThreshold: budget.AlertThreshold,
		CreatedAt:      budget.CreatedAt,
		UpdatedAt:      budget.UpdatedAt,
	}
}
