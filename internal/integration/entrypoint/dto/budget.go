// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/fleetops/finance-hub/internal/domain/entity"
)

// CreateBudgetRequest represents the request body for budget creation.
type CreateBudgetRequest struct {
	Name           string    `json:"name" binding:"required,min=1,max=100"`
	CategoryID     *string   `json:"category_id,omitempty"`
	Amount         string    `json:"amount" binding:"required"`
	Period         string    `json:"period" binding:"required,oneof=monthly quarterly yearly custom"`
	StartDate      time.Time `json:"start_date" binding:"required"`
	EndDate        time.Time `json:"end_date" binding:"required"`
	AlertThreshold *int      `json:"alert_threshold,omitempty"`
}

// UpdateBudgetRequest represents the request body for budget update.
type UpdateBudgetRequest struct {
	Name           *string    `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	Amount         *string    `json:"amount,omitempty"`
	Period         *string    `json:"period,omitempty" binding:"omitempty,oneof=monthly quarterly yearly custom"`
	StartDate      *time.Time `json:"start_date,omitempty"`
	EndDate        *time.Time `json:"end_date,omitempty"`
	AlertThreshold *int       `json:"alert_threshold,omitempty"`
	ClearThreshold bool       `json:"clear_threshold,omitempty"`
	Status         *string    `json:"status,omitempty" binding:"omitempty,oneof=active completed exceeded"`
}

// BudgetResponse represents a single budget in API responses.
type BudgetResponse struct {
	ID                    string    `json:"id"`
	Name                  string    `json:"name"`
	CategoryID            *string   `json:"category_id,omitempty"`
	Amount                string    `json:"amount"`
	Spent                 string    `json:"spent"`
	Remaining             string    `json:"remaining"`
	UtilizationPercentage int64     `json:"utilization_percentage"`
	Period                string    `json:"period"`
	StartDate             time.Time `json:"start_date"`
	EndDate               time.Time `json:"end_date"`
	Status                string    `json:"status"`
	AlertThreshold        *int      `json:"alert_threshold,omitempty"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

// BudgetListResponse represents the response for listing budgets.
type BudgetListResponse struct {
	Budgets []BudgetResponse `json:"budgets"`
}

// ToBudgetResponse converts a domain Budget entity to a BudgetResponse DTO.
func ToBudgetResponse(budget *entity.Budget) BudgetResponse {
	response := BudgetResponse{
		ID:                    budget.ID.String(),
		Name:                  budget.Name,
		Amount:                budget.Amount.StringFixed(2),
		Spent:                 budget.Spent.StringFixed(2),
		Remaining:             budget.Remaining.StringFixed(2),
		UtilizationPercentage: budget.UtilizationPercent(),
		Period:                string(budget.Period),
		StartDate:             budget.StartDate,
		EndDate:               budget.EndDate,
		Status:                string(budget.Status),
		AlertThreshold:        budget.AlertThreshold,
		CreatedAt:             budget.CreatedAt,
		UpdatedAt:             budget.UpdatedAt,
	}

	if budget.CategoryID != nil {
		id := budget.CategoryID.String()
		response.CategoryID = &id
	}

	return response
}

// ToBudgetListResponse converts a list of budgets to BudgetListResponse.
func ToBudgetListResponse(budgets []*entity.Budget) BudgetListResponse {
	responses := make([]BudgetResponse, len(budgets))
	for i, budget := range budgets {
		responses[i] = ToBudgetResponse(budget)
	}
	return BudgetListResponse{
		Budgets: responses,
	}
}
