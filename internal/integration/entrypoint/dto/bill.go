// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/kas-sigmafam/backend/internal/domain/entity"
)

// GenerateBillsRequest represents the request body for bill generation.
type GenerateBillsRequest struct {
	Year  int `json:"year" binding:"required,gt=0"`
	Month int `json:"month" binding:"required,min=1,max=12"`
}

// BillResponse represents a single monthly bill in API responses.
type BillResponse struct {
	ID         string            `json:"id"`
	Year       int               `json:"year"`
	Month      int               `json:"month"`
	ResidentID string            `json:"resident_id"`
	CategoryID string            `json:"category_id"`
	AmountDue  int64             `json:"amount_due"`
	AmountPaid int64             `json:"amount_paid"`
	IsPaid     bool              `json:"is_paid"`
	PaidAt     *time.Time        `json:"paid_at"`
	CreatedAt  time.Time         `json:"created_at"`
	Resident   *ResidentResponse `json:"resident,omitempty"`
	Category   *CategoryResponse `json:"category,omitempty"`
}

// BillListResponse represents the response for listing bills.
type BillListResponse struct {
	Bills     []BillResponse `json:"bills"`
	TotalDue  int64          `json:"total_due"`
	TotalPaid int64          `json:"total_paid"`
}

// GenerateBillsResponse represents the response for bill generation.
type GenerateBillsResponse struct {
	Created int            `json:"created"`
	Bills   []BillResponse `json:"bills"`
}

// ToBillResponse converts a domain MonthlyBill entity to a BillResponse DTO.
func ToBillResponse(bill *entity.MonthlyBill) BillResponse {
	return BillResponse{
		ID:         bill.ID.String(),
		Year:       bill.Year,
		Month:      bill.Month,
		ResidentID: bill.ResidentID.String(),
		CategoryID: bill.CategoryID.String(),
		AmountDue:  bill.AmountDue,
		AmountPaid: bill.AmountPaid,
		IsPaid:     bill.IsPaid,
		PaidAt:     bill.PaidAt,
		CreatedAt:  bill.CreatedAt,
	}
}

// ToBillResponseWithRelations converts a MonthlyBillWithRelations to a BillResponse DTO.
func ToBillResponseWithRelations(bill *entity.MonthlyBillWithRelations) BillResponse {
	response := ToBillResponse(&bill.MonthlyBill)
	if bill.Resident != nil {
		resident := ToResidentResponse(bill.Resident)
		response.Resident = &resident
	}
	if bill.Category != nil {
		category := ToCategoryResponse(bill.Category)
		response.Category = &category
	}
	return response
}

// ToBillListResponse converts bills and their totals to a BillListResponse.
func ToBillListResponse(bills []*entity.MonthlyBillWithRelations, totalDue, totalPaid int64) BillListResponse {
	items := toBillResponses(bills)
	return BillListResponse{
		Bills:     items,
		TotalDue:  totalDue,
		TotalPaid: totalPaid,
	}
}

// ToGenerateBillsResponse converts a generation result to a GenerateBillsResponse.
func ToGenerateBillsResponse(created int, bills []*entity.MonthlyBillWithRelations) GenerateBillsResponse {
	return GenerateBillsResponse{
		Created: created,
		Bills:   toBillResponses(bills),
	}
}

func toBillResponses(bills []*entity.MonthlyBillWithRelations) []BillResponse {
	items := make([]BillResponse, len(bills))
	for i, b := range bills {
		items[i] = ToBillResponseWithRelations(b)
	}
	return items
}
