// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kas-sigmafam/backend/internal/application/usecase/resident"
	"github.com/kas-sigmafam/backend/internal/domain/entity"
	domainerror "github.com/kas-sigmafam/backend/internal/domain/error"
	"github.com/kas-sigmafam/backend/internal/integration/entrypoint/dto"
)

// ResidentController handles resident endpoints.
type ResidentController struct {
	listUseCase   *resident.ListResidentsUseCase
	createUseCase *resident.CreateResidentUseCase
	updateUseCase *resident.UpdateResidentUseCase
	deleteUseCase *resident.DeleteResidentUseCase
}

// NewResidentController creates a new resident controller instance.
func NewResidentController(
	listUseCase *resident.ListResidentsUseCase,
	createUseCase *resident.CreateResidentUseCase,
	updateUseCase *resident.UpdateResidentUseCase,
	deleteUseCase *resident.DeleteResidentUseCase,
) *ResidentController {
	return &ResidentController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /residents requests.
func (c *ResidentController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve residents",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToResidentListResponse(output.Residents))
}

// Create handles POST /residents requests.
func (c *ResidentController) Create(ctx *gin.Context) {
	var req dto.CreateResidentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeResidentNameRequired),
		})
		return
	}

	input := resident.CreateResidentInput{
		Name:                 req.Name,
		DefaultMonthlyAmount: req.DefaultMonthlyAmount,
		RoomType:             entity.RoomType(req.RoomType),
		Floor:                entity.Floor(req.Floor),
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleResidentError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToResidentResponse(output.Resident))
}

// Update handles PATCH /residents/:id requests.
func (c *ResidentController) Update(ctx *gin.Context) {
	residentID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid resident ID format",
		})
		return
	}

	var req dto.UpdateResidentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := resident.UpdateResidentInput{
		ResidentID:           residentID,
		Name:                 req.Name,
		DefaultMonthlyAmount: req.DefaultMonthlyAmount,
	}
	if req.RoomType != nil {
		roomType := entity.RoomType(*req.RoomType)
		input.RoomType = &roomType
	}
	if req.Floor != nil {
		floor := entity.Floor(*req.Floor)
		input.Floor = &floor
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleResidentError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToResidentResponse(output.Resident))
}

// Delete handles DELETE /residents/:id requests.
func (c *ResidentController) Delete(ctx *gin.Context) {
	residentID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid resident ID format",
		})
		return
	}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), resident.DeleteResidentInput{ResidentID: residentID}); err != nil {
		c.handleResidentError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleResidentError handles resident errors and returns appropriate HTTP responses.
func (c *ResidentController) handleResidentError(ctx *gin.Context, err error) {
	var resErr *domainerror.ResidentError
	if errors.As(err, &resErr) {
		ctx.JSON(c.getStatusCodeForResidentError(resErr.Code), dto.ErrorResponse{
			Error: resErr.Message,
			Code:  string(resErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForResidentError maps resident error codes to HTTP status codes.
func (c *ResidentController) getStatusCodeForResidentError(code domainerror.ResidentErrorCode) int {
	switch code {
	case domainerror.ErrCodeResidentNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeResidentNameRequired,
		domainerror.ErrCodeNegativeMonthlyAmount,
		domainerror.ErrCodeInvalidRoomType,
		domainerror.ErrCodeInvalidFloor:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
