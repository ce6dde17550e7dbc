// Package resident contains resident-related use cases.
package resident

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/kas-sigmafam/backend/internal/application/adapter"
	"github.com/kas-sigmafam/backend/internal/domain/entity"
	domainerror "github.com/kas-sigmafam/backend/internal/domain/error"
)

// MaxResidentNameLength is the maximum allowed length for resident names.
const MaxResidentNameLength = 100

// CreateResidentInput represents the input for resident creation.
type CreateResidentInput struct {
	Name                 string
	DefaultMonthlyAmount int64
	RoomType             entity.RoomType
	Floor                entity.Floor
}

// CreateResidentOutput represents the output of resident creation.
type CreateResidentOutput struct {
	Resident *entity.Resident
}

// CreateResidentUseCase handles resident creation logic.
type CreateResidentUseCase struct {
	residentRepo   adapter.ResidentRepository
	broadcastCache adapter.BroadcastCache
}

// NewCreateResidentUseCase creates a new CreateResidentUseCase instance.
func NewCreateResidentUseCase(residentRepo adapter.ResidentRepository, broadcastCache adapter.BroadcastCache) *CreateResidentUseCase {
	return &CreateResidentUseCase{
		residentRepo:   residentRepo,
		broadcastCache: broadcastCache,
	}
}

// Execute performs the resident creation.
func (uc *CreateResidentUseCase) Execute(ctx context.Context, input CreateResidentInput) (*CreateResidentOutput, error) {
	if input.Name == "" {
		return nil, domainerror.NewResidentError(
			domainerror.ErrCodeResidentNameRequired,
			"resident name is required",
			domainerror.ErrResidentNameRequired,
		)
	}
	if len(input.Name) > MaxResidentNameLength {
		return nil, domainerror.NewResidentError(
			domainerror.ErrCodeResidentNameRequired,
			fmt.Sprintf("resident name must not exceed %d characters", MaxResidentNameLength),
			domainerror.ErrResidentNameRequired,
		)
	}
	if input.DefaultMonthlyAmount < 0 {
		return nil, domainerror.NewResidentError(
			domainerror.ErrCodeNegativeMonthlyAmount,
			"default monthly amount must not be negative",
			domainerror.ErrNegativeMonthlyAmount,
		)
	}
	if !isValidRoomType(input.RoomType) {
		return nil, domainerror.NewResidentError(
			domainerror.ErrCodeInvalidRoomType,
			"room type must be 'ac' or 'non-ac'",
			domainerror.ErrInvalidRoomType,
		)
	}
	if !isValidFloor(input.Floor) {
		return nil, domainerror.NewResidentError(
			domainerror.ErrCodeInvalidFloor,
			"floor must be 'atas' or 'bawah'",
			domainerror.ErrInvalidFloor,
		)
	}

	resident := entity.NewResident(input.Name, input.DefaultMonthlyAmount, input.RoomType, input.Floor)

	if err := uc.residentRepo.Create(ctx, resident); err != nil {
		return nil, fmt.Errorf("failed to create resident: %w", err)
	}

	// Resident names appear in the broadcast income roll-up.
	if err := uc.broadcastCache.Invalidate(ctx); err != nil {
		slog.Warn("Failed to invalidate broadcast cache", "error", err)
	}

	return &CreateResidentOutput{
		Resident: resident,
	}, nil
}

// isValidRoomType validates the room type.
func isValidRoomType(roomType entity.RoomType) bool {
	return roomType == entity.RoomTypeAC || roomType == entity.RoomTypeNonAC
}

// isValidFloor validates the floor.
func isValidFloor(floor entity.Floor) bool {
	return floor == entity.FloorAtas || floor == entity.FloorBawah
}
