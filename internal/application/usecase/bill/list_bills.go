// Package bill contains monthly bill-related use cases.
package bill

import (
	"context"

	"github.com/kas-sigmafam/backend/internal/application/adapter"
	"github.com/kas-sigmafam/backend/internal/domain/entity"
	domainerror "github.com/kas-sigmafam/backend/internal/domain/error"
	"github.com/kas-sigmafam/backend/internal/domain/valueobject"
)

// ListBillsInput represents the input for listing bills.
type ListBillsInput struct {
	Period valueobject.Period
}

// ListBillsOutput represents the output of listing bills.
type ListBillsOutput struct {
	Bills     []*entity.MonthlyBillWithRelations
	TotalDue  int64
	TotalPaid int64
}

// ListBillsUseCase handles listing bills for one month.
type ListBillsUseCase struct {
	billRepo adapter.BillRepository
}

// NewListBillsUseCase creates a new ListBillsUseCase instance.
func NewListBillsUseCase(billRepo adapter.BillRepository) *ListBillsUseCase {
	return &ListBillsUseCase{
		billRepo: billRepo,
	}
}

// Execute retrieves all bills for the period with their resident/category
// relations and the month's due/paid totals.
func (uc *ListBillsUseCase) Execute(ctx context.Context, input ListBillsInput) (*ListBillsOutput, error) {
	if !input.Period.Valid() {
		return nil, domainerror.NewBillError(
			domainerror.ErrCodeInvalidBillPeriod,
			"year and month must name a calendar month",
			domainerror.ErrInvalidPeriod,
		)
	}

	bills, err := uc.billRepo.FindByPeriod(ctx, input.Period.Year, input.Period.Month)
	if err != nil {
		return nil, err
	}

	output := &ListBillsOutput{
		Bills: bills,
	}
	for _, b := range bills {
		output.TotalDue += b.AmountDue
		output.TotalPaid += b.AmountPaid
	}

	return output, nil
}
