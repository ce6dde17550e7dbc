// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/kas-sigmafam/backend/internal/domain/entity"
)

// CreateResidentRequest represents the request body for resident creation.
type CreateResidentRequest struct {
	Name                 string `json:"name" binding:"required,min=1,max=100"`
	DefaultMonthlyAmount int64  `json:"default_monthly_amount" binding:"gte=0"`
	RoomType             string `json:"room_type" binding:"required,oneof=ac non-ac"`
	Floor                string `json:"floor" binding:"required,oneof=atas bawah"`
}

// UpdateResidentRequest represents the request body for resident update.
type UpdateResidentRequest struct {
	Name                 *string `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	DefaultMonthlyAmount *int64  `json:"default_monthly_amount,omitempty" binding:"omitempty,gte=0"`
	RoomType             *string `json:"room_type,omitempty" binding:"omitempty,oneof=ac non-ac"`
	Floor                *string `json:"floor,omitempty" binding:"omitempty,oneof=atas bawah"`
}

// ResidentResponse represents a single resident in API responses.
type ResidentResponse struct {
	ID                   string    `json:"id"`
	Name                 string    `json:"name"`
	DefaultMonthlyAmount int64     `json:"default_monthly_amount"`
	RoomType             string    `json:"room_type"`
	Floor                string    `json:"floor"`
	CreatedAt            time.Time `json:"created_at"`
}

// ResidentListResponse represents the response for listing residents.
type ResidentListResponse struct {
	Residents []ResidentResponse `json:"residents"`
}

// ToResidentResponse converts a domain Resident entity to a ResidentResponse DTO.
func ToResidentResponse(resident *entity.Resident) ResidentResponse {
	return ResidentResponse{
		ID:                   resident.ID.String(),
		Name:                 resident.Name,
		DefaultMonthlyAmount: resident.DefaultMonthlyAmount,
		RoomType:             string(resident.RoomType),
		Floor:                string(resident.Floor),
		CreatedAt:            resident.CreatedAt,
	}
}

// ToResidentListResponse converts a list of residents to a ResidentListResponse.
func ToResidentListResponse(residents []*entity.Resident) ResidentListResponse {
	items := make([]ResidentResponse, len(residents))
	for i, r := range residents {
		items[i] = ToResidentResponse(r)
	}
	return ResidentListResponse{
		Residents: items,
	}
}
