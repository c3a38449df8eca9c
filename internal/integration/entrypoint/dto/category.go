// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/fleetops/finance-hub/internal/domain/entity"
)

// CreateCategoryRequest represents the request body for category creation.
type CreateCategoryRequest struct {
	Name             string  `json:"name" binding:"required,min=1,max=100"`
	Type             string  `json:"type" binding:"required,oneof=expense income"`
	ParentCategoryID *string `json:"parent_category_id,omitempty"`
	Color            string  `json:"color,omitempty"`
	Icon             string  `json:"icon,omitempty"`
	BudgetLimit      *string `json:"budget_limit,omitempty"`
}

// UpdateCategoryRequest represents the request body for category update.
type UpdateCategoryRequest struct {
	Name             *string `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	Type             *string `json:"type,omitempty" binding:"omitempty,oneof=expense income"`
	ParentCategoryID *string `json:"parent_category_id,omitempty"`
	ClearParent      bool    `json:"clear_parent,omitempty"`
	Color            *string `json:"color,omitempty"`
	Icon             *string `json:"icon,omitempty"`
	BudgetLimit      *string `json:"budget_limit,omitempty"`
	ClearBudgetLimit bool    `json:"clear_budget_limit,omitempty"`
}

// CategoryResponse represents a single category in API responses.
type CategoryResponse struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Type             string    `json:"type"`
	ParentCategoryID *string   `json:"parent_category_id,omitempty"`
	Color            string    `json:"color"`
	Icon             string    `json:"icon"`
	BudgetLimit      *string   `json:"budget_limit,omitempty"`
	State            string    `json:"state"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// CategoryListResponse represents the response for listing categories.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// ToCategoryResponse converts a domain Category entity to a CategoryResponse DTO.
func ToCategoryResponse(category *entity.Category) CategoryResponse {
	response := CategoryResponse{
		ID:        category.ID.String(),
		Name:      category.Name,
		Type:      string(category.Type),
		Color:     category.Color,
		Icon:      category.Icon,
		State:     string(category.State),
		CreatedAt: category.CreatedAt,
		UpdatedAt: category.UpdatedAt,
	}

	if category.ParentCategoryID != nil {
		id := category.ParentCategoryID.String()
		response.ParentCategoryID = &id
	}
	if category.BudgetLimit != nil {
		limit := category.BudgetLimit.StringFixed(2)
		response.BudgetLimit = &limit
	}

	return response
}

// ToCategoryListResponse converts a list of categories to CategoryListResponse.
func ToCategoryListResponse(categories []*entity.Category) CategoryListResponse {
	responses := make([]CategoryResponse, len(categories))
	for i, category := range categories {
		responses[i] = ToCategoryResponse(category)
	}
	return CategoryListResponse{
		Categories: responses,
	}
}
