// Package report contains report generation and export use cases.
package report

import (
	"context"
	"time"

	"github.com/fleetops/finance-hub/internal/domain/entity"
	domainerror "github.com/fleetops/finance-hub/internal/domain/error"
)

// GenerateMonthlyReportInput represents the input for monthly report generation.
type GenerateMonthlyReportInput struct {
	Month int
	Year  int
}

// GenerateMonthlyReportUseCase is a convenience over GenerateReportUseCase
// that derives the period bounds of one calendar month.
type GenerateMonthlyReportUseCase struct {
	generateReport *GenerateReportUseCase
}

// NewGenerateMonthlyReportUseCase creates a new GenerateMonthlyReportUseCase instance.
func NewGenerateMonthlyReportUseCase(generateReport *GenerateReportUseCase) *GenerateMonthlyReportUseCase {
	return &GenerateMonthlyReportUseCase{
		generateReport: generateReport,
	}
}

// Execute generates a report spanning the first day through the last instant
// of the given month.
func (uc *GenerateMonthlyReportUseCase) Execute(ctx context.Context, input GenerateMonthlyReportInput) (*entity.FinanceReport, error) {
	if input.Month < 1 || input.Month > 12 {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidReportMonth,
			"month must be between 1 and 12",
			domainerror.ErrInvalidReportMonth,
		)
	}

	startDate := time.Date(input.Year, time.Month(input.Month), 1, 0, 0, 0, 0, time.UTC)
	endDate := startDate.AddDate(0, 1, 0).Add(-time.Nanosecond)

	return uc.generateReport.Execute(ctx, GenerateReportInput{
		StartDate: startDate,
		EndDate:   endDate,
	})
}
