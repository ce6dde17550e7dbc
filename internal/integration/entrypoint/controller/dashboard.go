// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kas-sigmafam/backend/internal/application/usecase/dashboard"
	"github.com/kas-sigmafam/backend/internal/integration/entrypoint/dto"
)

// DashboardController handles the monthly summary endpoint.
type DashboardController struct {
	summaryUseCase *dashboard.GetMonthlySummaryUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(summaryUseCase *dashboard.GetMonthlySummaryUseCase) *DashboardController {
	return &DashboardController{
		summaryUseCase: summaryUseCase,
	}
}

// Summary handles GET /summary requests.
func (c *DashboardController) Summary(ctx *gin.Context) {
	period, ok := requirePeriodQuery(ctx)
	if !ok {
		return
	}

	output, err := c.summaryUseCase.Execute(ctx.Request.Context(), dashboard.GetMonthlySummaryInput{Period: period})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to build monthly summary",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMonthlySummaryResponse(output))
}
