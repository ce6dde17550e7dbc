// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/kas-sigmafam/backend/internal/application/usecase/broadcast"
)

// BroadcastResponse represents the rendered broadcast message and its stats.
type BroadcastResponse struct {
	Message      string `json:"message"`
	WhatsAppURL  string `json:"whatsapp_url"`
	IncomeCount  int    `json:"income_count"`
	ExpenseCount int    `json:"expense_count"`
	TotalIncome  int64  `json:"total_income"`
	TotalExpense int64  `json:"total_expense"`
	TotalBalance int64  `json:"total_balance"`
}

// ToBroadcastResponse converts a broadcast output to a BroadcastResponse DTO.
func ToBroadcastResponse(output *broadcast.BuildBroadcastOutput) BroadcastResponse {
	return BroadcastResponse{
		Message:      output.Message,
		WhatsAppURL:  output.WhatsAppURL,
		IncomeCount:  output.IncomeCount,
		ExpenseCount: output.ExpenseCount,
		TotalIncome:  output.TotalIncome,
		TotalExpense: output.TotalExpense,
		TotalBalance: output.TotalBalance,
	}
}
