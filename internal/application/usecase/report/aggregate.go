// Package report contains report generation and export use cases.
package report

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fleetops/finance-hub/internal/domain/entity"
)

// topExpensesLimit bounds the top-expenses list of a report.
const topExpensesLimit = 10

// AggregateResult holds the folded views of a transaction set.
type AggregateResult struct {
	ByCategory  []entity.CategorySummary
	ByMonth     []entity.MonthSummary
	TopExpenses []*entity.TransactionWithCategory
}

// Aggregate folds a transaction set into per-category and per-month
// summaries plus the highest-amount expenses.
//
// The by-category fold only considers transactions that carry both a
// category and a resolved category name; amounts are summed additively with
// no income/expense sign distinction. Percentages are integer shares of the
// categorized total and all zero when that total is zero.
func Aggregate(transactions []*entity.TransactionWithCategory) AggregateResult {
	return AggregateResult{
		ByCategory:  foldByCategory(transactions),
		ByMonth:     foldByMonth(transactions),
		TopExpenses: topExpenses(transactions),
	}
}

func foldByCategory(transactions []*entity.TransactionWithCategory) []entity.CategorySummary {
	type bucket struct {
		id    uuid.UUID
		name  string
		total decimal.Decimal
		count int
	}

	buckets := make(map[uuid.UUID]*bucket)
	order := make([]uuid.UUID, 0)

	for _, txn := range transactions {
		if txn.Transaction.CategoryID == nil || txn.Category == nil {
			continue
		}

		id := *txn.Transaction.CategoryID
		b, ok := buckets[id]
		if !ok {
			b = &bucket{id: id, name: txn.Category.Name, total: decimal.Zero}
			buckets[id] = b
			order = append(order, id)
		}
		b.total = b.total.Add(txn.Transaction.Amount)
		b.count++
	}

	grandTotal := decimal.Zero
	for _, id := range order {
		grandTotal = grandTotal.Add(buckets[id].total)
	}

	summaries := make([]entity.CategorySummary, 0, len(order))
	hundred := decimal.NewFromInt(100)
	for _, id := range order {
		b := buckets[id]

		var percentage int64
		if !grandTotal.IsZero() {
			percentage = b.total.Div(grandTotal).Mul(hundred).Round(0).IntPart()
		}

		summaries = append(summaries, entity.CategorySummary{
			CategoryID:       b.id,
			CategoryName:     b.name,
			TotalAmount:      b.total,
			TransactionCount: b.count,
			Percentage:       percentage,
		})
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].TotalAmount.GreaterThan(summaries[j].TotalAmount)
	})

	return summaries
}

// foldByMonth buckets transactions by calendar month of their date and keeps
// net = income - expenses consistent after every accumulation. The result is
// ordered chronologically by (year, month); transfers contribute nothing to
// either side but still materialize their month bucket.
func foldByMonth(transactions []*entity.TransactionWithCategory) []entity.MonthSummary {
	type key struct {
		year  int
		month time.Month
	}

	buckets := make(map[key]*entity.MonthSummary)

	for _, txn := range transactions {
		t := txn.Transaction
		k := key{year: t.Date.Year(), month: t.Date.Month()}

		b, ok := buckets[k]
		if !ok {
			b = &entity.MonthSummary{
				Year:     k.year,
				Month:    k.month,
				Income:   decimal.Zero,
				Expenses: decimal.Zero,
				Net:      decimal.Zero,
			}
			buckets[k] = b
		}

		switch t.Type {
		case entity.TransactionTypeIncome:
			b.Income = b.Income.Add(t.Amount)
		case entity.TransactionTypeExpense:
			b.Expenses = b.Expenses.Add(t.Amount)
		}
		b.Net = b.Income.Sub(b.Expenses)
	}

	summaries := make([]entity.MonthSummary, 0, len(buckets))
	for _, b := range buckets {
		summaries = append(summaries, *b)
	}

	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].Year != summaries[j].Year {
			return summaries[i].Year < summaries[j].Year
		}
		return summaries[i].Month < summaries[j].Month
	})

	return summaries
}

func topExpenses(transactions []*entity.TransactionWithCategory) []*entity.TransactionWithCategory {
	expenses := make([]*entity.TransactionWithCategory, 0)
	for _, txn := range transactions {
		if txn.Transaction.Type == entity.TransactionTypeExpense {
			expenses = append(expenses, txn)
		}
	}

	sort.SliceStable(expenses, func(i, j int) bool {
		return expenses[i].Transaction.Amount.GreaterThan(expenses[j].Transaction.Amount)
	})

	if len(expenses) > topExpensesLimit {
		expenses = expenses[:topExpensesLimit]
	}

	return expenses
}
