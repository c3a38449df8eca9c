// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/fleetops/finance-hub/internal/application/usecase/dashboard"
	"github.com/fleetops/finance-hub/internal/integration/entrypoint/dto"
)

// DashboardController handles dashboard endpoints.
type DashboardController struct {
	getStatsUseCase *dashboard.GetStatsUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(getStatsUseCase *dashboard.GetStatsUseCase) *DashboardController {
	return &DashboardController{
		getStatsUseCase: getStatsUseCase,
	}
}

// GetStats handles GET /dashboard/stats requests.
func (c *DashboardController) GetStats(ctx *gin.Context) {
	input := dashboard.GetStatsInput{}

	if periodStr := ctx.Query("period_days"); periodStr != "" {
		period, err := strconv.Atoi(periodStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid period_days format",
			})
			return
		}
		input.PeriodDays = period
	}

	stats, err := c.getStatsUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute dashboard stats",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDashboardStatsResponse(stats))
}
