// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/fleetops/finance-hub/internal/domain/entity"
)

// ReportResponse represents a generated finance report in API responses.
type ReportResponse struct {
	PeriodStart       time.Time                   `json:"period_start"`
	PeriodEnd         time.Time                   `json:"period_end"`
	TotalIncome       string                      `json:"total_income"`
	TotalExpenses     string                      `json:"total_expenses"`
	NetProfit         string                      `json:"net_profit"`
	TransactionsCount int                         `json:"transactions_count"`
	ByCategory        []CategorySummaryResponse   `json:"by_category"`
	ByMonth           []MonthSummaryResponse      `json:"by_month"`
	TopExpenses       []TopExpenseResponse        `json:"top_expenses"`
	BudgetUtilization []BudgetUtilizationResponse `json:"budget_utilization"`
	GeneratedAt       time.Time                   `json:"generated_at"`
}

// CategorySummaryResponse represents one category row in a report.
type CategorySummaryResponse struct {
	CategoryID       string `json:"category_id"`
	CategoryName     string `json:"category_name"`
	TotalAmount      string `json:"total_amount"`
	TransactionCount int    `json:"transaction_count"`
	Percentage       int64  `json:"percentage"`
}

// MonthSummaryResponse represents one month row in a report.
type MonthSummaryResponse struct {
	Year     int    `json:"year"`
	Month    int    `json:"month"`
	Income   string `json:"income"`
	Expenses string `json:"expenses"`
	Net      string `json:"net"`
}

// TopExpenseResponse represents one entry in a report's top expenses list.
type TopExpenseResponse struct {
	ID          string    `json:"id"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
	Category    string    `json:"category,omitempty"`
	Vendor      string    `json:"vendor,omitempty"`
	Amount      string    `json:"amount"`
}

// BudgetUtilizationResponse represents one budget row in a report.
type BudgetUtilizationResponse struct {
	BudgetID              string `json:"budget_id"`
	Name                  string `json:"name"`
	Allocated             string `json:"allocated"`
	Spent                 string `json:"spent"`
	Remaining             string `json:"remaining"`
	UtilizationPercentage int64  `json:"utilization_percentage"`
	Status                string `json:"status"`
}

// ToReportResponse converts a domain FinanceReport to a ReportResponse DTO.
func ToReportResponse(report *entity.FinanceReport) ReportResponse {
	byCategory := make([]CategorySummaryResponse, len(report.ByCategory))
	for i, summary := range report.ByCategory {
		byCategory[i] = CategorySummaryResponse{
			CategoryID:       summary.CategoryID.String(),
			CategoryName:     summary.CategoryName,
			TotalAmount:      summary.TotalAmount.StringFixed(2),
			TransactionCount: summary.TransactionCount,
			Percentage:       summary.Percentage,
		}
	}

	byMonth := make([]MonthSummaryResponse, len(report.ByMonth))
	for i, summary := range report.ByMonth {
		byMonth[i] = MonthSummaryResponse{
			Year:     summary.Year,
			Month:    int(summary.Month),
			Income:   summary.Income.StringFixed(2),
			Expenses: summary.Expenses.StringFixed(2),
			Net:      summary.Net.StringFixed(2),
		}
	}

	topExpenses := make([]TopExpenseResponse, len(report.TopExpenses))
	for i, txn := range report.TopExpenses {
		topExpenses[i] = TopExpenseResponse{
			ID:          txn.Transaction.ID.String(),
			Date:        txn.Transaction.Date,
			Description: txn.Transaction.Description,
			Category:    txn.CategoryName(),
			Vendor:      txn.Transaction.Vendor,
			Amount:      txn.Transaction.Amount.StringFixed(2),
		}
	}

	utilization := make([]BudgetUtilizationResponse, len(report.BudgetUtilization))
	for i, row := range report.BudgetUtilization {
		utilization[i] = BudgetUtilizationResponse{
			BudgetID:              row.BudgetID.String(),
			Name:                  row.Name,
			Allocated:             row.Allocated.StringFixed(2),
			Spent:                 row.Spent.StringFixed(2),
			Remaining:             row.Remaining.StringFixed(2),
			UtilizationPercentage: row.UtilizationPercentage,
			Status:                string(row.Status),
		}
	}

	return ReportResponse{
		PeriodStart:       report.PeriodStart,
		PeriodEnd:         report.PeriodEnd,
		TotalIncome:       report.TotalIncome.StringFixed(2),
		TotalExpenses:     report.TotalExpenses.StringFixed(2),
		NetProfit:         report.NetProfit.StringFixed(2),
		TransactionsCount: report.TransactionsCount,
		ByCategory:        byCategory,
		ByMonth:           byMonth,
		TopExpenses:       topExpenses,
		BudgetUtilization: utilization,
		GeneratedAt:       report.GeneratedAt,
	}
}
