// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kas-sigmafam/backend/internal/application/usecase/broadcast"
	"github.com/kas-sigmafam/backend/internal/integration/entrypoint/dto"
)

// BroadcastController handles the broadcast message endpoint.
type BroadcastController struct {
	buildUseCase *broadcast.BuildBroadcastUseCase
}

// NewBroadcastController creates a new broadcast controller instance.
func NewBroadcastController(buildUseCase *broadcast.BuildBroadcastUseCase) *BroadcastController {
	return &BroadcastController{
		buildUseCase: buildUseCase,
	}
}

// Get handles GET /broadcast requests.
func (c *BroadcastController) Get(ctx *gin.Context) {
	period, ok := requirePeriodQuery(ctx)
	if !ok {
		return
	}

	output, err := c.buildUseCase.Execute(ctx.Request.Context(), broadcast.BuildBroadcastInput{Period: period})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to build broadcast message",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBroadcastResponse(output))
}
