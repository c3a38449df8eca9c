package report

import (
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fleetops/finance-hub/internal/domain/entity"
)

func TestExportTransactionsToCSV(t *testing.T) {
	date := time.Date(2026, time.February, 3, 0, 0, 0, 0, time.UTC)

	t.Run("header matches the column contract", func(t *testing.T) {
		csv := ExportTransactionsToCSV(nil)
		lines := strings.Split(strings.TrimRight(csv, "\n"), "\n")

		if lines[0] != "Date,Type,Category,Amount,Currency,Description,Vendor,Payment Method,Status,Reference" {
			t.Errorf("unexpected header: %s", lines[0])
		}
		if len(lines) != 1 {
			t.Errorf("expected header only for empty set, got %d lines", len(lines))
		}
	})

	t.Run("uncategorized transactions export N/A", func(t *testing.T) {
		csv := ExportTransactionsToCSV([]*entity.TransactionWithCategory{
			makeTxn(entity.TransactionTypeExpense, "42.50", date, nil),
		})

		if !strings.Contains(csv, `"N/A"`) {
			t.Errorf("expected N/A category label, got:\n%s", csv)
		}
	})

	t.Run("text fields are quoted with embedded quotes doubled", func(t *testing.T) {
		txn := makeTxn(entity.TransactionTypeExpense, "10.00", date, makeCategory("Fuel"))
		txn.Transaction.Description = `Dock fees, "priority" berth`
		txn.Transaction.Currency = "USD"

		csv := ExportTransactionsToCSV([]*entity.TransactionWithCategory{txn})

		if !strings.Contains(csv, `"Dock fees, ""priority"" berth"`) {
			t.Errorf("expected quoted description with doubled quotes, got:\n%s", csv)
		}
	})

	t.Run("a standard parser recovers the original field values", func(t *testing.T) {
		tricky := makeTxn(entity.TransactionTypeExpense, "42.50", date, makeCategory(`Dock, "Premium"`))
		tricky.Transaction.Description = `Moorage, pier 7, "west" berth`
		tricky.Transaction.Vendor = `Harbor "North" Services, LLC`
		plain := makeTxn(entity.TransactionTypeIncome, "10.00", date, nil)
		plain.Transaction.Description = "Charter deposit"

		out := ExportTransactionsToCSV([]*entity.TransactionWithCategory{tricky, plain})

		records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
		if err != nil {
			t.Fatalf("export did not parse back: %v", err)
		}
		if len(records) != 3 {
			t.Fatalf("expected header plus 2 rows, got %d records", len(records))
		}
		if got := records[1][2]; got != `Dock, "Premium"` {
			t.Errorf("category did not round-trip: %q", got)
		}
		if got := records[1][5]; got != tricky.Transaction.Description {
			t.Errorf("description did not round-trip: %q", got)
		}
		if got := records[1][6]; got != tricky.Transaction.Vendor {
			t.Errorf("vendor did not round-trip: %q", got)
		}
		if got := records[2][2]; got != "N/A" {
			t.Errorf("expected N/A fallback, got %q", got)
		}
		if got := records[2][5]; got != "Charter deposit" {
			t.Errorf("description did not round-trip: %q", got)
		}
	})

	t.Run("dates and amounts are bare", func(t *testing.T) {
		csv := ExportTransactionsToCSV([]*entity.TransactionWithCategory{
			makeTxn(entity.TransactionTypeExpense, "42.5", date, nil),
		})

		if !strings.Contains(csv, "2026-02-03,") {
			t.Errorf("expected unquoted date, got:\n%s", csv)
		}
		if !strings.Contains(csv, ",42.50,") {
			t.Errorf("expected amount with two decimals, got:\n%s", csv)
		}
	})
}

func TestExportReportToCSV(t *testing.T) {
	report := &entity.FinanceReport{
		PeriodStart:       time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
		PeriodEnd:         time.Date(2026, time.January, 31, 0, 0, 0, 0, time.UTC),
		TotalIncome:       decimal.RequireFromString("1000.00"),
		TotalExpenses:     decimal.RequireFromString("400.00"),
		NetProfit:         decimal.RequireFromString("600.00"),
		TransactionsCount: 7,
		ByCategory: []entity.CategorySummary{
			{
				CategoryID:       uuid.New(),
				CategoryName:     "Fuel",
				TotalAmount:      decimal.RequireFromString("400.00"),
				TransactionCount: 4,
				Percentage:       100,
			},
		},
		ByMonth: []entity.MonthSummary{
			{
				Year:     2026,
				Month:    time.January,
				Income:   decimal.RequireFromString("1000.00"),
				Expenses: decimal.RequireFromString("400.00"),
				Net:      decimal.RequireFromString("600.00"),
			},
		},
		BudgetUtilization: []entity.BudgetUtilization{
			{
				BudgetID:              uuid.New(),
				Name:                  "Q1 Fuel",
				Allocated:             decimal.RequireFromString("500.00"),
				Spent:                 decimal.RequireFromString("400.00"),
				Remaining:             decimal.RequireFromString("100.00"),
				UtilizationPercentage: 80,
				Status:                entity.BudgetStatusActive,
			},
		},
		GeneratedAt: time.Date(2026, time.February, 1, 12, 0, 0, 0, time.UTC),
	}

	csv := ExportReportToCSV(report)

	t.Run("sections appear in order separated by blank lines", func(t *testing.T) {
		sections := []string{"Financial Report", "Summary", "By Category", "By Month", "Budget Utilization"}
		lastIndex := -1
		for _, section := range sections {
			index := strings.Index(csv, section+"\n")
			if index < 0 {
				t.Fatalf("missing section %q", section)
			}
			if index < lastIndex {
				t.Errorf("section %q out of order", section)
			}
			lastIndex = index
		}

		if !strings.Contains(csv, "\n\n") {
			t.Error("expected blank lines between sections")
		}
	})

	t.Run("summary carries the headline figures", func(t *testing.T) {
		for _, line := range []string{
			"Period,2026-01-01 - 2026-01-31",
			"Total Income,1000.00",
			"Total Expenses,400.00",
			"Net Profit,600.00",
			"Transactions,7",
		} {
			if !strings.Contains(csv, line+"\n") {
				t.Errorf("missing line %q", line)
			}
		}
	})

	t.Run("category and utilization rows quote names and suffix percentages", func(t *testing.T) {
		if !strings.Contains(csv, `"Fuel",400.00,4,100%`) {
			t.Errorf("unexpected category row, got:\n%s", csv)
		}
		if !strings.Contains(csv, `"Q1 Fuel",500.00,400.00,100.00,80%,active`) {
			t.Errorf("unexpected utilization row, got:\n%s", csv)
		}
	})

	t.Run("month rows use zero-padded labels", func(t *testing.T) {
		if !strings.Contains(csv, "2026-01,1000.00,400.00,600.00") {
			t.Errorf("unexpected month row, got:\n%s", csv)
		}
	})
}
