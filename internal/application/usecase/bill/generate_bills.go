// Package bill contains monthly bill-related use cases.
package bill

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kas-sigmafam/backend/internal/application/adapter"
	"github.com/kas-sigmafam/backend/internal/domain/entity"
	domainerror "github.com/kas-sigmafam/backend/internal/domain/error"
	"github.com/kas-sigmafam/backend/internal/domain/valueobject"
)

// GenerateBillsInput represents the input for bill generation.
type GenerateBillsInput struct {
	Period valueobject.Period
}

// GenerateBillsOutput represents the output of bill generation.
type GenerateBillsOutput struct {
	Created int
	Bills   []*entity.MonthlyBillWithRelations
}

// GenerateBillsUseCase ensures a bill exists for every
// (resident, expense category) pair of the target month.
//
// Generation requests are serialized per period, and the bills table carries
// a unique index on (year, month, resident_id, category_id), so two
// concurrent requests for the same month cannot produce duplicate pairs.
type GenerateBillsUseCase struct {
	billRepo     adapter.BillRepository
	residentRepo adapter.ResidentRepository
	categoryRepo adapter.CategoryRepository

	periodLocks sync.Map // Period -> *sync.Mutex
}

// NewGenerateBillsUseCase creates a new GenerateBillsUseCase instance.
func NewGenerateBillsUseCase(
	billRepo adapter.BillRepository,
	residentRepo adapter.ResidentRepository,
	categoryRepo adapter.CategoryRepository,
) *GenerateBillsUseCase {
	return &GenerateBillsUseCase{
		billRepo:     billRepo,
		residentRepo: residentRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute generates the missing bills for the period and returns the full
// bill list afterwards. When every pair already has a bill, no insert is
// issued and Created is 0.
func (uc *GenerateBillsUseCase) Execute(ctx context.Context, input GenerateBillsInput) (*GenerateBillsOutput, error) {
	if !input.Period.Valid() {
		return nil, domainerror.NewBillError(
			domainerror.ErrCodeInvalidBillPeriod,
			"year and month must name a calendar month",
			domainerror.ErrInvalidPeriod,
		)
	}

	lock := uc.lockFor(input.Period)
	lock.Lock()
	defer lock.Unlock()

	residents, err := uc.residentRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list residents: %w", err)
	}

	expenseCategories, err := uc.categoryRepo.FindByType(ctx, entity.CategoryTypeExpense)
	if err != nil {
		return nil, fmt.Errorf("failed to list expense categories: %w", err)
	}

	existing, err := uc.billRepo.FindByPeriod(ctx, input.Period.Year, input.Period.Month)
	if err != nil {
		return nil, fmt.Errorf("failed to list existing bills: %w", err)
	}

	existingPairs := make(map[pairKey]struct{}, len(existing))
	for _, b := range existing {
		existingPairs[pairKey{b.ResidentID, b.CategoryID}] = struct{}{}
	}

	var newBills []*entity.MonthlyBill
	for _, resident := range residents {
		for _, category := range expenseCategories {
			if _, ok := existingPairs[pairKey{resident.ID, category.ID}]; ok {
				continue
			}
			newBills = append(newBills, entity.NewMonthlyBill(
				input.Period.Year,
				input.Period.Month,
				resident.ID,
				category.ID,
				category.DueAmount(),
			))
		}
	}

	if len(newBills) > 0 {
		if err := uc.billRepo.CreateBatch(ctx, newBills); err != nil {
			// A concurrent generation for the same period hit the unique
			// index first; its rows are the ones we wanted.
			if !errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, fmt.Errorf("failed to insert generated bills: %w", err)
			}
			newBills = nil
		}
	}

	bills, err := uc.billRepo.FindByPeriod(ctx, input.Period.Year, input.Period.Month)
	if err != nil {
		return nil, fmt.Errorf("failed to refetch bills: %w", err)
	}

	return &GenerateBillsOutput{
		Created: len(newBills),
		Bills:   bills,
	}, nil
}

// lockFor returns the mutex serializing generation for one period.
func (uc *GenerateBillsUseCase) lockFor(period valueobject.Period) *sync.Mutex {
	actual, _ := uc.periodLocks.LoadOrStore(period, &sync.Mutex{})
	return actual.(*sync.Mutex)
}

// pairKey identifies one (resident, category) combination within a period.
type pairKey struct {
	residentID uuid.UUID
	categoryID uuid.UUID
}
