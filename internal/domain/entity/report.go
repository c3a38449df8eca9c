// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FinanceReport is a computed, non-persistent snapshot of finances over a
// [PeriodStart, PeriodEnd] window.
type FinanceReport struct {
	PeriodStart       time.Time
	PeriodEnd         time.Time
	TotalIncome       decimal.Decimal // Rounded to 2 decimals
	TotalExpenses     decimal.Decimal // Rounded to 2 decimals
	NetProfit         decimal.Decimal // TotalIncome - TotalExpenses
	TransactionsCount int
	ByCategory        []CategorySummary
	ByMonth           []MonthSummary
	TopExpenses       []*TransactionWithCategory
	BudgetUtilization []BudgetUtilization
	GeneratedAt       time.Time
}

// CategorySummary accumulates categorized transaction amounts. Income and
// expense amounts are summed additively with no sign distinction, matching
// the report contract.
type CategorySummary struct {
	CategoryID       uuid.UUID
	CategoryName     string
	TotalAmount      decimal.Decimal
	TransactionCount int
	Percentage       int64 // Integer share of the categorized total; 0 when that total is 0
}

// MonthSummary accumulates income, expenses and net for one calendar month.
type MonthSummary struct {
	Year     int
	Month    time.Month
	Income   decimal.Decimal
	Expenses decimal.Decimal
	Net      decimal.Decimal
}

// BudgetUtilization describes how far a budget's spend has progressed
// against its allocation.
type BudgetUtilization struct {
	BudgetID              uuid.UUID
	Name                  string
	Allocated             decimal.Decimal
	Spent                 decimal.Decimal
	Remaining             decimal.Decimal
	UtilizationPercentage int64
	Status                BudgetStatus
}

// DashboardStats is a rolling-window snapshot of finances.
type DashboardStats struct {
	PeriodDays          int
	TotalIncome         decimal.Decimal
	TotalExpenses       decimal.Decimal
	NetProfit           decimal.Decimal
	TransactionsCount   int
	ActiveBudgets       int
	BudgetsExceeded     int
	AvgTransactionValue decimal.Decimal
}
