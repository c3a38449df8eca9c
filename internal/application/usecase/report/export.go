// Package report contains report generation and export use cases.
package report

import (
	"context"
	"fmt"

	"github.com/fleetops/finance-hub/internal/application/adapter"
)

// ExportTransactionsUseCase renders the transactions of a period as CSV.
type ExportTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewExportTransactionsUseCase creates a new ExportTransactionsUseCase instance.
func NewExportTransactionsUseCase(transactionRepo adapter.TransactionRepository) *ExportTransactionsUseCase {
	return &ExportTransactionsUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute fetches completed transactions for the period and renders the CSV payload.
func (uc *ExportTransactionsUseCase) Execute(ctx context.Context, input GenerateReportInput) (string, error) {
	if err := validateReportInput(input); err != nil {
		return "", err
	}

	transactions, err := uc.transactionRepo.FindCompletedInRange(ctx, input.StartDate, input.EndDate, adapter.ReportFilter{
		CategoryID: input.CategoryID,
		Department: input.Department,
	})
	if err != nil {
		return "", fmt.Errorf("failed to fetch transactions for export: %w", err)
	}

	return ExportTransactionsToCSV(transactions), nil
}

// ExportReportUseCase renders a full finance report as CSV.
type ExportReportUseCase struct {
	generateReport *GenerateReportUseCase
}

// NewExportReportUseCase creates a new ExportReportUseCase instance.
func NewExportReportUseCase(generateReport *GenerateReportUseCase) *ExportReportUseCase {
	return &ExportReportUseCase{
		generateReport: generateReport,
	}
}

// Execute generates the report for the period and renders the sectioned CSV payload.
func (uc *ExportReportUseCase) Execute(ctx context.Context, input GenerateReportInput) (string, error) {
	report, err := uc.generateReport.Execute(ctx, input)
	if err != nil {
		return "", err
	}
	return ExportReportToCSV(report), nil
}
