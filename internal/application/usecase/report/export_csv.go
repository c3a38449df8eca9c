// Package report contains report generation and export use cases.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/fleetops/finance-hub/internal/domain/entity"
)

// transactionCSVHeader is the stable column contract of the transaction
// export. Downstream consumers parse on these exact labels; do not reorder.
const transactionCSVHeader = "Date,Type,Category,Amount,Currency,Description,Vendor,Payment Method,Status,Reference"

// missingCategoryLabel is emitted for uncategorized transactions.
const missingCategoryLabel = "N/A"

// csvDateFormat is the date layout used in exports.
const csvDateFormat = "2006-01-02"

// ExportTransactionsToCSV renders a transaction set as a CSV payload. Text
// fields are double-quoted unconditionally; dates and amounts are bare.
func ExportTransactionsToCSV(transactions []*entity.TransactionWithCategory) string {
	var b strings.Builder
	b.WriteString(transactionCSVHeader)
	b.WriteString("\n")

	for _, txn := range transactions {
		t := txn.Transaction

		categoryName := txn.CategoryName()
		if categoryName == "" {
			categoryName = missingCategoryLabel
		}

		fields := []string{
			t.Date.Format(csvDateFormat),
			quote(string(t.Type)),
			quote(categoryName),
			t.Amount.StringFixed(2),
			quote(t.Currency),
			quote(t.Description),
			quote(t.Vendor),
			quote(t.PaymentMethod),
			quote(string(t.Status)),
			quote(t.ReferenceNumber),
		}
		b.WriteString(strings.Join(fields, ","))
		b.WriteString("\n")
	}

	return b.String()
}

// ExportReportToCSV renders a finance report as sequential labeled CSV
// sections separated by blank lines. Section headers are never quoted.
func ExportReportToCSV(report *entity.FinanceReport) string {
	var b strings.Builder

	b.WriteString("Financial Report\n")
	b.WriteString(fmt.Sprintf("Period,%s - %s\n",
		report.PeriodStart.Format(csvDateFormat),
		report.PeriodEnd.Format(csvDateFormat),
	))
	b.WriteString(fmt.Sprintf("Generated,%s\n", report.GeneratedAt.Format(time.RFC3339)))
	b.WriteString("\n")

	b.WriteString("Summary\n")
	b.WriteString(fmt.Sprintf("Total Income,%s\n", report.TotalIncome.StringFixed(2)))
	b.WriteString(fmt.Sprintf("Total Expenses,%s\n", report.TotalExpenses.StringFixed(2)))
	b.WriteString(fmt.Sprintf("Net Profit,%s\n", report.NetProfit.StringFixed(2)))
	b.WriteString(fmt.Sprintf("Transactions,%d\n", report.TransactionsCount))
	b.WriteString("\n")

	b.WriteString("By Category\n")
	b.WriteString("Category,Amount,Transactions,Percentage\n")
	for _, summary := range report.ByCategory {
		b.WriteString(fmt.Sprintf("%s,%s,%d,%d%%\n",
			quote(summary.CategoryName),
			summary.TotalAmount.StringFixed(2),
			summary.TransactionCount,
			summary.Percentage,
		))
	}
	b.WriteString("\n")

	b.WriteString("By Month\n")
	b.WriteString("Month,Income,Expenses,Net\n")
	for _, summary := range report.ByMonth {
		b.WriteString(fmt.Sprintf("%04d-%02d,%s,%s,%s\n",
			summary.Year,
			int(summary.Month),
			summary.Income.StringFixed(2),
			summary.Expenses.StringFixed(2),
			summary.Net.StringFixed(2),
		))
	}
	b.WriteString("\n")

	b.WriteString("Budget Utilization\n")
	b.WriteString("Budget,Allocated,Spent,Remaining,Utilization,Status\n")
	for _, utilization := range report.BudgetUtilization {
		b.WriteString(fmt.Sprintf("%s,%s,%s,%s,%d%%,%s\n",
			quote(utilization.Name),
			utilization.Allocated.StringFixed(2),
			utilization.Spent.StringFixed(2),
			utilization.Remaining.StringFixed(2),
			utilization.UtilizationPercentage,
			utilization.Status,
		))
	}

	return b.String()
}

// quote wraps a text field in double quotes, doubling any embedded quotes.
func quote(field string) string {
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}
