// Package resident contains resident-related use cases.
package resident

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/kas-sigmafam/backend/internal/application/adapter"
	domainerror "github.com/kas-sigmafam/backend/internal/domain/error"
)

// DeleteResidentInput represents the input for resident deletion.
type DeleteResidentInput struct {
	ResidentID uuid.UUID
}

// DeleteResidentOutput represents the output of resident deletion.
type DeleteResidentOutput struct {
	Success bool
}

// DeleteResidentUseCase handles resident deletion logic.
// Transactions referencing a deleted resident keep their resident_id;
// cross-entity cleanup is out of scope.
type DeleteResidentUseCase struct {
	residentRepo   adapter.ResidentRepository
	broadcastCache adapter.BroadcastCache
}

// NewDeleteResidentUseCase creates a new DeleteResidentUseCase instance.
func NewDeleteResidentUseCase(residentRepo adapter.ResidentRepository, broadcastCache adapter.BroadcastCache) *DeleteResidentUseCase {
	return &DeleteResidentUseCase{
		residentRepo:   residentRepo,
		broadcastCache: broadcastCache,
	}
}

// Execute performs the resident deletion.
func (uc *DeleteResidentUseCase) Execute(ctx context.Context, input DeleteResidentInput) (*DeleteResidentOutput, error) {
	if _, err := uc.residentRepo.FindByID(ctx, input.ResidentID); err != nil {
		if errors.Is(err, domainerror.ErrResidentNotFound) {
			return nil, domainerror.NewResidentError(
				domainerror.ErrCodeResidentNotFound,
				"resident not found",
				domainerror.ErrResidentNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find resident: %w", err)
	}

	if err := uc.residentRepo.Delete(ctx, input.ResidentID); err != nil {
		return nil, fmt.Errorf("failed to delete resident: %w", err)
	}

	if err := uc.broadcastCache.Invalidate(ctx); err != nil {
		slog.Warn("Failed to invalidate broadcast cache", "error", err)
	}

	return &DeleteResidentOutput{
		Success: true,
	}, nil
}
