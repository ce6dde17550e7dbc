package bill

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kas-sigmafam/backend/internal/domain/entity"
	domainerror "github.com/kas-sigmafam/backend/internal/domain/error"
	"github.com/kas-sigmafam/backend/internal/domain/valueobject"
)

type fakeResidentRepo struct {
	residents []*entity.Resident
}

func (f *fakeResidentRepo) Create(ctx context.Context, resident *entity.Resident) error { return nil }
func (f *fakeResidentRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Resident, error) {
	return nil, domainerror.ErrResidentNotFound
}
func (f *fakeResidentRepo) FindAll(ctx context.Context) ([]*entity.Resident, error) {
	return f.residents, nil
}
func (f *fakeResidentRepo) Update(ctx context.Context, resident *entity.Resident) error { return nil }
func (f *fakeResidentRepo) Delete(ctx context.Context, id uuid.UUID) error              { return nil }

type fakeCategoryRepo struct {
	categories []*entity.Category
}

func (f *fakeCategoryRepo) Create(ctx context.Context, category *entity.Category) error { return nil }
func (f *fakeCategoryRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	return nil, domainerror.ErrCategoryNotFound
}
func (f *fakeCategoryRepo) FindAll(ctx context.Context) ([]*entity.Category, error) {
	return f.categories, nil
}
func (f *fakeCategoryRepo) FindByType(ctx context.Context, categoryType entity.CategoryType) ([]*entity.Category, error) {
	var out []*entity.Category
	for _, c := range f.categories {
		if c.Type == categoryType {
			out = append(out, c)
		}
	}
	return out, nil
}
func (f *fakeCategoryRepo) Update(ctx context.Context, category *entity.Category) error { return nil }
func (f *fakeCategoryRepo) Delete(ctx context.Context, id uuid.UUID) error              { return nil }

type fakeBillRepo struct {
	bills          []*entity.MonthlyBill
	createBatchErr error
}

func (f *fakeBillRepo) CreateBatch(ctx context.Context, bills []*entity.MonthlyBill) error {
	if f.createBatchErr != nil {
		return f.createBatchErr
	}
	f.bills = append(f.bills, bills...)
	return nil
}

func (f *fakeBillRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.MonthlyBill, error) {
	for _, b := range f.bills {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, domainerror.ErrBillNotFound
}

func (f *fakeBillRepo) FindByPeriod(ctx context.Context, year, month int) ([]*entity.MonthlyBillWithRelations, error) {
	var out []*entity.MonthlyBillWithRelations
	for _, b := range f.bills {
		if b.Year == year && b.Month == month {
			out = append(out, &entity.MonthlyBillWithRelations{MonthlyBill: *b})
		}
	}
	return out, nil
}

func (f *fakeBillRepo) Update(ctx context.Context, bill *entity.MonthlyBill) error {
	for i, b := range f.bills {
		if b.ID == bill.ID {
			f.bills[i] = bill
			return nil
		}
	}
	return domainerror.ErrBillNotFound
}

func TestGenerateBillsUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	period := valueobject.Period{Year: 2025, Month: 9}

	due := int64(15000)
	residents := []*entity.Resident{
		entity.NewResident("Budi", 100000, entity.RoomTypeAC, entity.FloorAtas),
		entity.NewResident("Sari", 100000, entity.RoomTypeNonAC, entity.FloorBawah),
	}
	categories := []*entity.Category{
		entity.NewCategory("Iuran Listrik", entity.CategoryTypeExpense, &due),
		entity.NewCategory("Kebersihan", entity.CategoryTypeExpense, nil),
		entity.NewCategory("Iuran Bulanan", entity.CategoryTypeIncome, nil),
	}

	t.Run("creates a bill per resident and expense category pair", func(t *testing.T) {
		billRepo := &fakeBillRepo{}
		uc := NewGenerateBillsUseCase(billRepo, &fakeResidentRepo{residents: residents}, &fakeCategoryRepo{categories: categories})

		output, err := uc.Execute(ctx, GenerateBillsInput{Period: period})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Created != 4 {
			t.Errorf("Created = %d, want 4", output.Created)
		}
		if len(output.Bills) != 4 {
			t.Fatalf("len(Bills) = %d, want 4", len(output.Bills))
		}
		for _, b := range output.Bills {
			if b.IsPaid || b.AmountPaid != 0 {
				t.Errorf("generated bill must start unpaid, got %+v", b.MonthlyBill)
			}
			if b.CategoryID == categories[0].ID && b.AmountDue != 15000 {
				t.Errorf("listrik bill AmountDue = %d, want 15000", b.AmountDue)
			}
			if b.CategoryID == categories[1].ID && b.AmountDue != 0 {
				t.Errorf("bill for category without default due AmountDue = %d, want 0", b.AmountDue)
			}
		}
	})

	t.Run("skips pairs that already have a bill", func(t *testing.T) {
		billRepo := &fakeBillRepo{
			bills: []*entity.MonthlyBill{
				entity.NewMonthlyBill(2025, 9, residents[0].ID, categories[0].ID, 15000),
			},
		}
		uc := NewGenerateBillsUseCase(billRepo, &fakeResidentRepo{residents: residents}, &fakeCategoryRepo{categories: categories})

		output, err := uc.Execute(ctx, GenerateBillsInput{Period: period})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Created != 3 {
			t.Errorf("Created = %d, want 3", output.Created)
		}
		if len(output.Bills) != 4 {
			t.Errorf("len(Bills) = %d, want 4", len(output.Bills))
		}
	})

	t.Run("second run for the same period creates nothing", func(t *testing.T) {
		billRepo := &fakeBillRepo{}
		uc := NewGenerateBillsUseCase(billRepo, &fakeResidentRepo{residents: residents}, &fakeCategoryRepo{categories: categories})

		if _, err := uc.Execute(ctx, GenerateBillsInput{Period: period}); err != nil {
			t.Fatalf("unexpected error on first run: %v", err)
		}
		output, err := uc.Execute(ctx, GenerateBillsInput{Period: period})
		if err != nil {
			t.Fatalf("unexpected error on second run: %v", err)
		}
		if output.Created != 0 {
			t.Errorf("Created = %d, want 0", output.Created)
		}
		if len(billRepo.bills) != 4 {
			t.Errorf("stored bills = %d, want 4", len(billRepo.bills))
		}
	})

	t.Run("duplicate key from a concurrent run is not an error", func(t *testing.T) {
		billRepo := &fakeBillRepo{createBatchErr: gorm.ErrDuplicatedKey}
		uc := NewGenerateBillsUseCase(billRepo, &fakeResidentRepo{residents: residents}, &fakeCategoryRepo{categories: categories})

		output, err := uc.Execute(ctx, GenerateBillsInput{Period: period})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Created != 0 {
			t.Errorf("Created = %d, want 0", output.Created)
		}
	})

	t.Run("rejects an invalid period", func(t *testing.T) {
		uc := NewGenerateBillsUseCase(&fakeBillRepo{}, &fakeResidentRepo{}, &fakeCategoryRepo{})

		_, err := uc.Execute(ctx, GenerateBillsInput{Period: valueobject.Period{Year: 2025, Month: 13}})
		if !errors.Is(err, domainerror.ErrInvalidPeriod) {
			t.Errorf("expected ErrInvalidPeriod, got %v", err)
		}

		var billErr *domainerror.BillError
		if !errors.As(err, &billErr) || billErr.Code != domainerror.ErrCodeInvalidBillPeriod {
			t.Errorf("expected bill error code %s, got %v", domainerror.ErrCodeInvalidBillPeriod, err)
		}
	})
}

func TestToggleBillPaidUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("toggles unpaid to paid and back", func(t *testing.T) {
		bill := entity.NewMonthlyBill(2025, 9, uuid.New(), uuid.New(), 15000)
		billRepo := &fakeBillRepo{bills: []*entity.MonthlyBill{bill}}
		uc := NewToggleBillPaidUseCase(billRepo)

		output, err := uc.Execute(ctx, ToggleBillPaidInput{BillID: bill.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Bill.IsPaid || output.Bill.AmountPaid != 15000 || output.Bill.PaidAt == nil {
			t.Errorf("expected paid bill, got %+v", output.Bill)
		}

		output, err = uc.Execute(ctx, ToggleBillPaidInput{BillID: bill.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Bill.IsPaid || output.Bill.AmountPaid != 0 || output.Bill.PaidAt != nil {
			t.Errorf("expected unpaid bill, got %+v", output.Bill)
		}
	})

	t.Run("unknown bill id", func(t *testing.T) {
		uc := NewToggleBillPaidUseCase(&fakeBillRepo{})

		_, err := uc.Execute(ctx, ToggleBillPaidInput{BillID: uuid.New()})
		var billErr *domainerror.BillError
		if !errors.As(err, &billErr) || billErr.Code != domainerror.ErrCodeBillNotFound {
			t.Errorf("expected bill error code %s, got %v", domainerror.ErrCodeBillNotFound, err)
		}
	})
}

func TestListBillsUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	paid := entity.NewMonthlyBill(2025, 9, uuid.New(), uuid.New(), 15000)
	paid.MarkPaid(paid.CreatedAt)
	unpaid := entity.NewMonthlyBill(2025, 9, uuid.New(), uuid.New(), 20000)
	otherMonth := entity.NewMonthlyBill(2025, 8, uuid.New(), uuid.New(), 99000)

	billRepo := &fakeBillRepo{bills: []*entity.MonthlyBill{paid, unpaid, otherMonth}}
	uc := NewListBillsUseCase(billRepo)

	output, err := uc.Execute(ctx, ListBillsInput{Period: valueobject.Period{Year: 2025, Month: 9}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(output.Bills) != 2 {
		t.Errorf("len(Bills) = %d, want 2", len(output.Bills))
	}
	if output.TotalDue != 35000 {
		t.Errorf("TotalDue = %d, want 35000", output.TotalDue)
	}
	if output.TotalPaid != 15000 {
		t.Errorf("TotalPaid = %d, want 15000", output.TotalPaid)
	}
}
