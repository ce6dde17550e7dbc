// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kas-sigmafam/backend/internal/application/usecase/transaction"
	"github.com/kas-sigmafam/backend/internal/domain/entity"
	domainerror "github.com/kas-sigmafam/backend/internal/domain/error"
	"github.com/kas-sigmafam/backend/internal/integration/entrypoint/dto"
)

// TransactionController handles transaction endpoints.
type TransactionController struct {
	listUseCase   *transaction.ListTransactionsUseCase
	createUseCase *transaction.CreateTransactionUseCase
	updateUseCase *transaction.UpdateTransactionUseCase
	deleteUseCase *transaction.DeleteTransactionUseCase
}

// NewTransactionController creates a new transaction controller instance.
func NewTransactionController(
	listUseCase *transaction.ListTransactionsUseCase,
	createUseCase *transaction.CreateTransactionUseCase,
	updateUseCase *transaction.UpdateTransactionUseCase,
	deleteUseCase *transaction.DeleteTransactionUseCase,
) *TransactionController {
	return &TransactionController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /transactions requests. When year and month are present
// the list is filtered to that calendar month.
func (c *TransactionController) List(ctx *gin.Context) {
	var input transaction.ListTransactionsInput
	if ctx.Query("year") != "" || ctx.Query("month") != "" {
		period, ok := requirePeriodQuery(ctx)
		if !ok {
			return
		}
		input.Period = &period
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		if errors.Is(err, domainerror.ErrInvalidPeriod) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "year and month query parameters must name a calendar month",
				Code:  domainerror.ErrCodeInvalidPeriod,
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve transactions",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionListResponse(output.Transactions, output.Balance))
}

// Create handles POST /transactions requests.
func (c *TransactionController) Create(ctx *gin.Context) {
	var req dto.CreateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeInvalidTransactionType),
		})
		return
	}

	input := transaction.CreateTransactionInput{
		Type:            entity.TransactionType(req.Type),
		Amount:          req.Amount,
		Description:     req.Description,
		ReceiptURL:      req.ReceiptURL,
		TransactionDate: req.TransactionDate,
	}

	var err error
	if input.ResidentID, err = parseOptionalUUID(req.ResidentID); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid resident ID format",
		})
		return
	}
	if input.CategoryID, err = parseOptionalUUID(req.CategoryID); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid category ID format",
		})
		return
	}
	if input.AccountID, err = parseOptionalUUID(req.AccountID); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid account ID format",
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTransactionResponse(output.Transaction))
}

// Update handles PATCH /transactions/:id requests.
func (c *TransactionController) Update(ctx *gin.Context) {
	transactionID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid transaction ID format",
		})
		return
	}

	var req dto.UpdateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := transaction.UpdateTransactionInput{
		TransactionID:   transactionID,
		Amount:          req.Amount,
		Description:     req.Description,
		TransactionDate: req.TransactionDate,
	}

	if req.ResidentID != nil {
		if input.ResidentID, err = optionalUUIDUpdate(*req.ResidentID); err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid resident ID format",
			})
			return
		}
	}
	if req.CategoryID != nil {
		if input.CategoryID, err = optionalUUIDUpdate(*req.CategoryID); err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid category ID format",
			})
			return
		}
	}
	if req.AccountID != nil {
		if input.AccountID, err = optionalUUIDUpdate(*req.AccountID); err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid account ID format",
			})
			return
		}
	}
	if req.ReceiptURL != nil {
		input.ReceiptURL = optionalString(*req.ReceiptURL)
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionResponse(output.Transaction))
}

// Delete handles DELETE /transactions/:id requests.
func (c *TransactionController) Delete(ctx *gin.Context) {
	transactionID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid transaction ID format",
		})
		return
	}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), transaction.DeleteTransactionInput{TransactionID: transactionID}); err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleTransactionError handles transaction errors and returns appropriate HTTP responses.
func (c *TransactionController) handleTransactionError(ctx *gin.Context, err error) {
	var trxErr *domainerror.TransactionError
	if errors.As(err, &trxErr) {
		ctx.JSON(c.getStatusCodeForTransactionError(trxErr.Code), dto.ErrorResponse{
			Error: trxErr.Message,
			Code:  string(trxErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForTransactionError maps transaction error codes to HTTP status codes.
func (c *TransactionController) getStatusCodeForTransactionError(code domainerror.TransactionErrorCode) int {
	switch code {
	case domainerror.ErrCodeTransactionNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidTransactionType,
		domainerror.ErrCodeNonPositiveAmount,
		domainerror.ErrCodeTransactionDateRequired:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// parseOptionalUUID parses an optional UUID string, nil when absent or empty.
func parseOptionalUUID(s *string) (*uuid.UUID, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// optionalUUIDUpdate maps an ID string to an update value: empty clears the
// tag, anything else must parse as a UUID.
func optionalUUIDUpdate(s string) (**uuid.UUID, error) {
	var value *uuid.UUID
	if s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, err
		}
		value = &id
	}
	return &value, nil
}
