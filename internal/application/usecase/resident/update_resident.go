// Package resident contains resident-related use cases.
package resident

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/kas-sigmafam/backend/internal/application/adapter"
	"github.com/kas-sigmafam/backend/internal/domain/entity"
	domainerror "github.com/kas-sigmafam/backend/internal/domain/error"
)

// UpdateResidentInput represents the input for resident update.
type UpdateResidentInput struct {
	ResidentID           uuid.UUID
	Name                 *string // Optional
	DefaultMonthlyAmount *int64  // Optional
	RoomType             *entity.RoomType
	Floor                *entity.Floor
}

// UpdateResidentOutput represents the output of resident update.
type UpdateResidentOutput struct {
	Resident *entity.Resident
}

// UpdateResidentUseCase handles resident update logic.
type UpdateResidentUseCase struct {
	residentRepo   adapter.ResidentRepository
	broadcastCache adapter.BroadcastCache
}

// NewUpdateResidentUseCase creates a new UpdateResidentUseCase instance.
func NewUpdateResidentUseCase(residentRepo adapter.ResidentRepository, broadcastCache adapter.BroadcastCache) *UpdateResidentUseCase {
	return &UpdateResidentUseCase{
		residentRepo:   residentRepo,
		broadcastCache: broadcastCache,
	}
}

// Execute performs the resident update.
func (uc *UpdateResidentUseCase) Execute(ctx context.Context, input UpdateResidentInput) (*UpdateResidentOutput, error) {
	resident, err := uc.residentRepo.FindByID(ctx, input.ResidentID)
	if err != nil {
		if errors.Is(err, domainerror.ErrResidentNotFound) {
			return nil, domainerror.NewResidentError(
				domainerror.ErrCodeResidentNotFound,
				"resident not found",
				domainerror.ErrResidentNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find resident: %w", err)
	}

	if input.Name != nil {
		if *input.Name == "" || len(*input.Name) > MaxResidentNameLength {
			return nil, domainerror.NewResidentError(
				domainerror.ErrCodeResidentNameRequired,
				fmt.Sprintf("resident name must be 1 to %d characters", MaxResidentNameLength),
				domainerror.ErrResidentNameRequired,
			)
		}
		resident.Name = *input.Name
	}

	if input.DefaultMonthlyAmount != nil {
		if *input.DefaultMonthlyAmount < 0 {
			return nil, domainerror.NewResidentError(
				domainerror.ErrCodeNegativeMonthlyAmount,
				"default monthly amount must not be negative",
				domainerror.ErrNegativeMonthlyAmount,
			)
		}
		resident.DefaultMonthlyAmount = *input.DefaultMonthlyAmount
	}

	if input.RoomType != nil {
		if !isValidRoomType(*input.RoomType) {
			return nil, domainerror.NewResidentError(
				domainerror.ErrCodeInvalidRoomType,
				"room type must be 'ac' or 'non-ac'",
				domainerror.ErrInvalidRoomType,
			)
		}
		resident.RoomType = *input.RoomType
	}

	if input.Floor != nil {
		if !isValidFloor(*input.Floor) {
			return nil, domainerror.NewResidentError(
				domainerror.ErrCodeInvalidFloor,
				"floor must be 'atas' or 'bawah'",
				domainerror.ErrInvalidFloor,
			)
		}
		resident.Floor = *input.Floor
	}

	if err := uc.residentRepo.Update(ctx, resident); err != nil {
		return nil, fmt.Errorf("failed to update resident: %w", err)
	}

	if err := uc.broadcastCache.Invalidate(ctx); err != nil {
		slog.Warn("Failed to invalidate broadcast cache", "error", err)
	}

	return &UpdateResidentOutput{
		Resident: resident,
	}, nil
}
