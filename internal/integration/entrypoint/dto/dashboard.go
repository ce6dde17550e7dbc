// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/kas-sigmafam/backend/internal/application/usecase/dashboard"
)

// MonthlySummaryResponse represents the aggregated monthly summary.
type MonthlySummaryResponse struct {
	Balance      BalanceResponse `json:"balance"`
	TotalBalance int64           `json:"total_balance"`
	Status       string          `json:"status"`
}

// ToMonthlySummaryResponse converts a summary output to a MonthlySummaryResponse DTO.
func ToMonthlySummaryResponse(output *dashboard.GetMonthlySummaryOutput) MonthlySummaryResponse {
	return MonthlySummaryResponse{
		Balance:      ToBalanceResponse(output.Balance),
		TotalBalance: output.TotalBalance,
		Status:       output.Status,
	}
}
