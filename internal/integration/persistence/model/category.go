// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fleetops/finance-hub/internal/domain/entity"
)

// CategoryModel represents the categories table in the database.
type CategoryModel struct {
	ID               uuid.UUID        `gorm:"type:uuid;primaryKey"`
	Name             string           `gorm:"type:varchar(100);not null"`
	Type             string           `gorm:"type:varchar(10);not null;index"`
	ParentCategoryID *uuid.UUID       `gorm:"type:uuid;index"`
	Color            string           `gorm:"type:varchar(7);not null"`
	Icon             string           `gorm:"type:varchar(50);not null"`
	BudgetLimit      *decimal.Decimal `gorm:"type:decimal(15,2)"`
	State            string           `gorm:"type:varchar(10);not null;index"`
	CreatedAt        time.Time        `gorm:"not null"`
	UpdatedAt        time.Time        `gorm:"not null"`

	// Relationship (not loaded by default, use Preload)
	ParentCategory *CategoryModel `gorm:"foreignKey:ParentCategoryID;references:ID"`
}

// TableName returns the table name for the CategoryModel.
func (CategoryModel) TableName() string {
	return "categories"
}

// ToEntity converts a CategoryModel to a domain Category entity.
func (m *CategoryModel) ToEntity() *entity.Category {
	return &entity.Category{
		ID:               m.ID,
		Name:             m.Name,
		Type:             entity.CategoryType(m.Type),
		ParentCategoryID: m.ParentCategoryID,
		Color:            m.Color,
		Icon:             m.Icon,
		BudgetLimit:      m.BudgetLimit,
		State:            entity.CategoryState(m.State),
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

// CategoryFromEntity creates a CategoryModel from a domain Category entity.
func CategoryFromEntity(category *entity.Category) *CategoryModel {
	return &CategoryModel{
		ID:               category.ID,
		Name:             category.Name,
		Type:             string(category.Type),
		ParentCategoryID: category.ParentCategoryID,
		Color:            category.Color,
		Icon:             category.Icon,
		BudgetLimit:      category.BudgetLimit,
		State:            string(category.State),
		CreatedAt:        category.CreatedAt,
		UpdatedAt:        category.UpdatedAt,
	}
}
