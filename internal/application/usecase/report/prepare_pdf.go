// Package report contains report generation and export use cases.
package report

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fleetops/finance-hub/internal/domain/entity"
)

// PDFPayload is the renderer-agnostic shape handed to an external PDF
// service. This is pure reshaping; no rendering happens here.
type PDFPayload struct {
	Title       string      `json:"title"`
	Period      string      `json:"period"`
	Summary     PDFSummary  `json:"summary"`
	Charts      PDFCharts   `json:"charts"`
	Tables      PDFTables   `json:"tables"`
	GeneratedAt time.Time   `json:"generated_at"`
}

// PDFSummary holds the headline figures of a report.
type PDFSummary struct {
	TotalIncome       decimal.Decimal `json:"total_income"`
	TotalExpenses     decimal.Decimal `json:"total_expenses"`
	NetProfit         decimal.Decimal `json:"net_profit"`
	TransactionsCount int             `json:"transactions_count"`
}

// PDFCharts holds the chart series of a report.
type PDFCharts struct {
	CategoryBreakdown []PDFCategorySlice `json:"category_breakdown"`
	MonthlyTrend      []PDFMonthPoint    `json:"monthly_trend"`
}

// PDFCategorySlice is one slice of the category breakdown chart.
type PDFCategorySlice struct {
	Label      string          `json:"label"`
	Amount     decimal.Decimal `json:"amount"`
	Percentage int64           `json:"percentage"`
}

// PDFMonthPoint is one point of the monthly trend chart.
type PDFMonthPoint struct {
	Label    string          `json:"label"`
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
	Net      decimal.Decimal `json:"net"`
}

// PDFTables holds the tabular sections of a report.
type PDFTables struct {
	TopExpenses       []PDFExpenseRow     `json:"top_expenses"`
	BudgetUtilization []PDFUtilizationRow `json:"budget_utilization"`
}

// PDFExpenseRow is one row of the top-expenses table.
type PDFExpenseRow struct {
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Vendor      string          `json:"vendor"`
	Amount      decimal.Decimal `json:"amount"`
}

// PDFUtilizationRow is one row of the budget utilization table.
type PDFUtilizationRow struct {
	Name                  string          `json:"name"`
	Allocated             decimal.Decimal `json:"allocated"`
	Spent                 decimal.Decimal `json:"spent"`
	Remaining             decimal.Decimal `json:"remaining"`
	UtilizationPercentage int64           `json:"utilization_percentage"`
	Status                string          `json:"status"`
}

// PrepareReportForPDF reshapes a finance report for an external PDF renderer.
func PrepareReportForPDF(report *entity.FinanceReport) *PDFPayload {
	slices := make([]PDFCategorySlice, 0, len(report.ByCategory))
	for _, summary := range report.ByCategory {
		slices = append(slices, PDFCategorySlice{
			Label:      summary.CategoryName,
			Amount:     summary.TotalAmount,
			Percentage: summary.Percentage,
		})
	}

	trend := make([]PDFMonthPoint, 0, len(report.ByMonth))
	for _, summary := range report.ByMonth {
		trend = append(trend, PDFMonthPoint{
			Label:    fmt.Sprintf("%04d-%02d", summary.Year, int(summary.Month)),
			Income:   summary.Income,
			Expenses: summary.Expenses,
			Net:      summary.Net,
		})
	}

	expenses := make([]PDFExpenseRow, 0, len(report.TopExpenses))
	for _, txn := range report.TopExpenses {
		category := txn.CategoryName()
		if category == "" {
			category = missingCategoryLabel
		}
		expenses = append(expenses, PDFExpenseRow{
			Date:        txn.Transaction.Date.Format(csvDateFormat),
			Description: txn.Transaction.Description,
			Category:    category,
			Vendor:      txn.Transaction.Vendor,
			Amount:      txn.Transaction.Amount,
		})
	}

	utilization := make([]PDFUtilizationRow, 0, len(report.BudgetUtilization))
	for _, row := range report.BudgetUtilization {
		utilization = append(utilization, PDFUtilizationRow{
			Name:                  row.Name,
			Allocated:             row.Allocated,
			Spent:                 row.Spent,
			Remaining:             row.Remaining,
			UtilizationPercentage: row.UtilizationPercentage,
			Status:                string(row.Status),
		})
	}

	return &PDFPayload{
		Title: "Financial Report",
		Period: fmt.Sprintf("%s - %s",
			report.PeriodStart.Format(csvDateFormat),
			report.PeriodEnd.Format(csvDateFormat),
		),
		Summary: PDFSummary{
			TotalIncome:       report.TotalIncome,
			TotalExpenses:     report.TotalExpenses,
			NetProfit:         report.NetProfit,
			TransactionsCount: report.TransactionsCount,
		},
		Charts: PDFCharts{
			CategoryBreakdown: slices,
			MonthlyTrend:      trend,
		},
		Tables: PDFTables{
			TopExpenses:       expenses,
			BudgetUtilization: utilization,
		},
		GeneratedAt: report.GeneratedAt,
	}
}
