// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/fleetops/finance-hub/internal/domain/entity"
)

// DashboardStatsResponse represents the dashboard summary in API responses.
type DashboardStatsResponse struct {
	PeriodDays          int    `json:"period_days"`
	TotalIncome         string `json:"total_income"`
	TotalExpenses       string `json:"total_expenses"`
	NetProfit           string `json:"net_profit"`
	TransactionsCount   int    `json:"transactions_count"`
	ActiveBudgets       int    `json:"active_budgets"`
	BudgetsExceeded     int    `json:"budgets_exceeded"`
	AvgTransactionValue string `json:"avg_transaction_value"`
}

// ToDashboardStatsResponse converts DashboardStats to its response DTO.
func ToDashboardStatsResponse(stats *entity.DashboardStats) DashboardStatsResponse {
	return DashboardStatsResponse{
		PeriodDays:          stats.PeriodDays,
		TotalIncome:         stats.TotalIncome.StringFixed(2),
		TotalExpenses:       stats.TotalExpenses.StringFixed(2),
		NetProfit:           stats.NetProfit.StringFixed(2),
		TransactionsCount:   stats.TransactionsCount,
		ActiveBudgets:       stats.ActiveBudgets,
		BudgetsExceeded:     stats.BudgetsExceeded,
		AvgTransactionValue: stats.AvgTransactionValue.StringFixed(2),
	}
}
