// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainerror "github.com/kas-sigmafam/backend/internal/domain/error"
	"github.com/kas-sigmafam/backend/internal/domain/valueobject"
	"github.com/kas-sigmafam/backend/internal/integration/entrypoint/dto"
)

// requirePeriodQuery parses the mandatory year/month query parameters. On a
// malformed pair it writes a 400 response and reports false.
func requirePeriodQuery(ctx *gin.Context) (valueobject.Period, bool) {
	period, ok := parsePeriodQuery(ctx)
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "year and month query parameters must name a calendar month",
			Code:  domainerror.ErrCodeInvalidPeriod,
		})
		return valueobject.Period{}, false
	}
	return period, true
}

// parsePeriodQuery parses year/month query parameters without responding.
func parsePeriodQuery(ctx *gin.Context) (valueobject.Period, bool) {
	year, errYear := strconv.Atoi(ctx.Query("year"))
	month, errMonth := strconv.Atoi(ctx.Query("month"))
	if errYear != nil || errMonth != nil {
		return valueobject.Period{}, false
	}

	period := valueobject.Period{Year: year, Month: month}
	if !period.Valid() {
		return valueobject.Period{}, false
	}
	return period, true
}
