// Package resident contains resident-related use cases.
package resident

import (
	"context"

	"github.com/kas-sigmafam/backend/internal/application/adapter"
	"github.com/kas-sigmafam/backend/internal/domain/entity"
)

// ListResidentsOutput represents the output of listing residents.
type ListResidentsOutput struct {
	Residents []*entity.Resident
}

// ListResidentsUseCase handles listing residents logic.
type ListResidentsUseCase struct {
	residentRepo adapter.ResidentRepository
}

// NewListResidentsUseCase creates a new ListResidentsUseCase instance.
func NewListResidentsUseCase(residentRepo adapter.ResidentRepository) *ListResidentsUseCase {
	return &ListResidentsUseCase{
		residentRepo: residentRepo,
	}
}

// Execute retrieves all residents ordered by name.
func (uc *ListResidentsUseCase) Execute(ctx context.Context) (*ListResidentsOutput, error) {
	residents, err := uc.residentRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	return &ListResidentsOutput{
		Residents: residents,
	}, nil
}
