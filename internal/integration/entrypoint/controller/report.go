// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/fleetops/finance-hub/internal/application/usecase/report"
	domainerror "github.com/fleetops/finance-hub/internal/domain/error"
	"github.com/fleetops/finance-hub/internal/integration/entrypoint/dto"
)

// ReportController handles report endpoints.
type ReportController struct {
	generateUseCase           *report.GenerateReportUseCase
	monthlyUseCase            *report.GenerateMonthlyReportUseCase
	exportTransactionsUseCase *report.ExportTransactionsUseCase
	exportReportUseCase       *report.ExportReportUseCase
}

// NewReportController creates a new report controller instance.
func NewReportController(
	generateUseCase *report.GenerateReportUseCase,
	monthlyUseCase *report.GenerateMonthlyReportUseCase,
	exportTransactionsUseCase *report.ExportTransactionsUseCase,
	exportReportUseCase *report.ExportReportUseCase,
) *ReportController {
	return &ReportController{
		generateUseCase:           generateUseCase,
		monthlyUseCase:            monthlyUseCase,
		exportTransactionsUseCase: exportTransactionsUseCase,
		exportReportUseCase:       exportReportUseCase,
	}
}

// Generate handles GET /reports requests.
func (c *ReportController) Generate(ctx *gin.Context) {
	input, ok := c.parseReportInput(ctx)
	if !ok {
		return
	}

	financeReport, err := c.generateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToReportResponse(financeReport))
}

// GenerateMonthly handles GET /reports/monthly requests.
func (c *ReportController) GenerateMonthly(ctx *gin.Context) {
	now := time.Now().UTC()

	year := now.Year()
	if yearStr := ctx.Query("year"); yearStr != "" {
		parsed, err := strconv.Atoi(yearStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid year format",
			})
			return
		}
		year = parsed
	}

	month := int(now.Month())
	if monthStr := ctx.Query("month"); monthStr != "" {
		parsed, err := strconv.Atoi(monthStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid month format",
			})
			return
		}
		month = parsed
	}

	financeReport, err := c.monthlyUseCase.Execute(ctx.Request.Context(), report.GenerateMonthlyReportInput{
		Month: month,
		Year:  year,
	})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToReportResponse(financeReport))
}

// ExportTransactionsCSV handles GET /reports/export/transactions requests.
func (c *ReportController) ExportTransactionsCSV(ctx *gin.Context) {
	input, ok := c.parseReportInput(ctx)
	if !ok {
		return
	}

	csvData, err := c.exportTransactionsUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	filename := fmt.Sprintf("transactions_%s_%s.csv",
		input.StartDate.Format("2006-01-02"),
		input.EndDate.Format("2006-01-02"),
	)
	ctx.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	ctx.Data(http.StatusOK, "text/csv", []byte(csvData))
}

// ExportReportCSV handles GET /reports/export/summary requests.
func (c *ReportController) ExportReportCSV(ctx *gin.Context) {
	input, ok := c.parseReportInput(ctx)
	if !ok {
		return
	}

	csvData, err := c.exportReportUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	filename := fmt.Sprintf("report_%s_%s.csv",
		input.StartDate.Format("2006-01-02"),
		input.EndDate.Format("2006-01-02"),
	)
	ctx.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	ctx.Data(http.StatusOK, "text/csv", []byte(csvData))
}

// PDFPayload handles GET /reports/pdf-payload requests. It returns the
// renderer-agnostic report shape consumed by the external PDF service.
func (c *ReportController) PDFPayload(ctx *gin.Context) {
	input, ok := c.parseReportInput(ctx)
	if !ok {
		return
	}

	financeReport, err := c.generateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, report.PrepareReportForPDF(financeReport))
}

// parseReportInput parses the shared report query parameters. It writes an
// error response and returns false when a parameter is malformed.
func (c *ReportController) parseReportInput(ctx *gin.Context) (report.GenerateReportInput, bool) {
	input := report.GenerateReportInput{
		Department: ctx.Query("department"),
	}

	if startDateStr := ctx.Query("start_date"); startDateStr != "" {
		startDate, err := time.Parse("2006-01-02", startDateStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid start_date format. Use YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeMissingReportStartDate),
			})
			return input, false
		}
		input.StartDate = startDate
	}

	if endDateStr := ctx.Query("end_date"); endDateStr != "" {
		endDate, err := time.Parse("2006-01-02", endDateStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid end_date format. Use YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeMissingReportEndDate),
			})
			return input, false
		}
		input.EndDate = endDate
	}

	if categoryIDStr := ctx.Query("category_id"); categoryIDStr != "" {
		id, err := uuid.Parse(categoryIDStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid category ID format",
			})
			return input, false
		}
		input.CategoryID = &id
	}

	return input, true
}

// handleReportError handles report errors and returns appropriate HTTP responses.
func (c *ReportController) handleReportError(ctx *gin.Context, err error) {
	var reportErr *domainerror.ReportError
	if errors.As(err, &reportErr) {
		statusCode := c.getStatusCodeForReportError(reportErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: reportErr.Message,
			Code:  string(reportErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForReportError maps report error codes to HTTP status codes.
func (c *ReportController) getStatusCodeForReportError(code domainerror.ReportErrorCode) int {
	switch code {
	case domainerror.ErrCodeMissingReportStartDate,
		domainerror.ErrCodeMissingReportEndDate,
		domainerror.ErrCodeInvalidReportRange,
		domainerror.ErrCodeInvalidReportMonth:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
