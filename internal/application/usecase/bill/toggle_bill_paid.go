// Package bill contains monthly bill-related use cases.
package bill

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kas-sigmafam/backend/internal/application/adapter"
	"github.com/kas-sigmafam/backend/internal/domain/entity"
	domainerror "github.com/kas-sigmafam/backend/internal/domain/error"
)

// ToggleBillPaidInput represents the input for toggling a bill's paid state.
type ToggleBillPaidInput struct {
	BillID uuid.UUID
}

// ToggleBillPaidOutput represents the output of toggling a bill's paid state.
type ToggleBillPaidOutput struct {
	Bill *entity.MonthlyBill
}

// ToggleBillPaidUseCase flips a bill between its two payment states.
// Unpaid -> Paid records the full due as paid with a timestamp; Paid ->
// Unpaid resets both. No partial-payment state exists.
type ToggleBillPaidUseCase struct {
	billRepo adapter.BillRepository
}

// NewToggleBillPaidUseCase creates a new ToggleBillPaidUseCase instance.
func NewToggleBillPaidUseCase(billRepo adapter.BillRepository) *ToggleBillPaidUseCase {
	return &ToggleBillPaidUseCase{
		billRepo: billRepo,
	}
}

// Execute performs the toggle.
func (uc *ToggleBillPaidUseCase) Execute(ctx context.Context, input ToggleBillPaidInput) (*ToggleBillPaidOutput, error) {
	bill, err := uc.billRepo.FindByID(ctx, input.BillID)
	if err != nil {
		if errors.Is(err, domainerror.ErrBillNotFound) {
			return nil, domainerror.NewBillError(
				domainerror.ErrCodeBillNotFound,
				"monthly bill not found",
				domainerror.ErrBillNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find bill: %w", err)
	}

	if bill.IsPaid {
		bill.MarkUnpaid()
	} else {
		bill.MarkPaid(time.Now().UTC())
	}

	if err := uc.billRepo.Update(ctx, bill); err != nil {
		return nil, fmt.Errorf("failed to update bill: %w", err)
	}

	return &ToggleBillPaidOutput{
		Bill: bill,
	}, nil
}
