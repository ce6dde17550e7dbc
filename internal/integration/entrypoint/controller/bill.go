// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kas-sigmafam/backend/internal/application/usecase/bill"
	domainerror "github.com/kas-sigmafam/backend/internal/domain/error"
	"github.com/kas-sigmafam/backend/internal/domain/valueobject"
	"github.com/kas-sigmafam/backend/internal/integration/entrypoint/dto"
)

// BillController handles monthly bill endpoints.
type BillController struct {
	listUseCase     *bill.ListBillsUseCase
	generateUseCase *bill.GenerateBillsUseCase
	toggleUseCase   *bill.ToggleBillPaidUseCase
}

// NewBillController creates a new bill controller instance.
func NewBillController(
	listUseCase *bill.ListBillsUseCase,
	generateUseCase *bill.GenerateBillsUseCase,
	toggleUseCase *bill.ToggleBillPaidUseCase,
) *BillController {
	return &BillController{
		listUseCase:     listUseCase,
		generateUseCase: generateUseCase,
		toggleUseCase:   toggleUseCase,
	}
}

// List handles GET /bills requests.
func (c *BillController) List(ctx *gin.Context) {
	period, ok := requirePeriodQuery(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), bill.ListBillsInput{Period: period})
	if err != nil {
		c.handleBillError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBillListResponse(output.Bills, output.TotalDue, output.TotalPaid))
}

// Generate handles POST /bills/generate requests.
func (c *BillController) Generate(ctx *gin.Context) {
	var req dto.GenerateBillsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeInvalidBillPeriod),
		})
		return
	}

	input := bill.GenerateBillsInput{
		Period: valueobject.Period{Year: req.Year, Month: req.Month},
	}

	output, err := c.generateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBillError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGenerateBillsResponse(output.Created, output.Bills))
}

// TogglePaid handles POST /bills/:id/toggle-paid requests.
func (c *BillController) TogglePaid(ctx *gin.Context) {
	billID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid bill ID format",
		})
		return
	}

	output, err := c.toggleUseCase.Execute(ctx.Request.Context(), bill.ToggleBillPaidInput{BillID: billID})
	if err != nil {
		c.handleBillError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBillResponse(output.Bill))
}

// handleBillError handles bill errors and returns appropriate HTTP responses.
func (c *BillController) handleBillError(ctx *gin.Context, err error) {
	var billErr *domainerror.BillError
	if errors.As(err, &billErr) {
		ctx.JSON(c.getStatusCodeForBillError(billErr.Code), dto.ErrorResponse{
			Error: billErr.Message,
			Code:  string(billErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForBillError maps bill error codes to HTTP status codes.
func (c *BillController) getStatusCodeForBillError(code domainerror.BillErrorCode) int {
	switch code {
	case domainerror.ErrCodeBillNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidBillPeriod:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
