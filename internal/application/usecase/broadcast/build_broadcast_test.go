package broadcast

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/kas-sigmafam/backend/internal/domain/entity"
	domainerror "github.com/kas-sigmafam/backend/internal/domain/error"
	"github.com/kas-sigmafam/backend/internal/domain/valueobject"
)

const testAppURL = "https://kas.example.com"

type fakeTransactionRepo struct {
	transactions      []*entity.TransactionWithRelations
	findByPeriodCalls int
}

func (f *fakeTransactionRepo) Create(ctx context.Context, transaction *entity.Transaction) error {
	return nil
}
func (f *fakeTransactionRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	return nil, domainerror.ErrTransactionNotFound
}
func (f *fakeTransactionRepo) FindByIDWithRelations(ctx context.Context, id uuid.UUID) (*entity.TransactionWithRelations, error) {
	return nil, domainerror.ErrTransactionNotFound
}
func (f *fakeTransactionRepo) FindAll(ctx context.Context) ([]*entity.TransactionWithRelations, error) {
	return f.transactions, nil
}
func (f *fakeTransactionRepo) FindByPeriod(ctx context.Context, start, end time.Time) ([]*entity.TransactionWithRelations, error) {
	f.findByPeriodCalls++
	var out []*entity.TransactionWithRelations
	for _, t := range f.transactions {
		if !t.TransactionDate.Before(start) && t.TransactionDate.Before(end) {
			out = append(out, t)
		}
	}
	return out, nil
}
func (f *fakeTransactionRepo) Update(ctx context.Context, transaction *entity.Transaction) error {
	return nil
}
func (f *fakeTransactionRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

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

type fakeAccountRepo struct {
	accounts []*entity.Account
}

func (f *fakeAccountRepo) Create(ctx context.Context, account *entity.Account) error { return nil }
func (f *fakeAccountRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	return nil, domainerror.ErrAccountNotFound
}
func (f *fakeAccountRepo) FindAll(ctx context.Context) ([]*entity.Account, error) {
	return f.accounts, nil
}
func (f *fakeAccountRepo) Update(ctx context.Context, account *entity.Account) error { return nil }
func (f *fakeAccountRepo) Delete(ctx context.Context, id uuid.UUID) error            { return nil }

type memoryCache struct {
	entries map[string][]byte
	sets    int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: make(map[string][]byte)}
}

func (c *memoryCache) key(year, month int) string {
	return fmt.Sprintf("%d-%02d", year, month)
}

func (c *memoryCache) Get(ctx context.Context, year, month int) ([]byte, error) {
	return c.entries[c.key(year, month)], nil
}

func (c *memoryCache) Set(ctx context.Context, year, month int, payload []byte) error {
	c.sets++
	c.entries[c.key(year, month)] = payload
	return nil
}

func (c *memoryCache) Invalidate(ctx context.Context) error {
	c.entries = make(map[string][]byte)
	return nil
}

func income(amount int64, resident *entity.Resident, date time.Time) *entity.TransactionWithRelations {
	var residentID *uuid.UUID
	if resident != nil {
		residentID = &resident.ID
	}
	return &entity.TransactionWithRelations{
		Transaction: *entity.NewTransaction(entity.TransactionTypeIncome, amount, residentID, nil, nil, "", nil, date),
		Resident:    resident,
	}
}

func expense(amount int64, category *entity.Category, date time.Time) *entity.TransactionWithRelations {
	var categoryID *uuid.UUID
	if category != nil {
		categoryID = &category.ID
	}
	return &entity.TransactionWithRelations{
		Transaction: *entity.NewTransaction(entity.TransactionTypeExpense, amount, nil, categoryID, nil, "", nil, date),
		Category:    category,
	}
}

func TestBuildBroadcastUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	period := valueobject.Period{Year: 2025, Month: 9}
	inMonth := time.Date(2025, time.September, 5, 0, 0, 0, 0, time.UTC)

	listrikDue := int64(15000)
	listrikCategory := entity.NewCategory("Iuran Listrik", entity.CategoryTypeExpense, &listrikDue)
	kebersihanCategory := entity.NewCategory("Kebersihan", entity.CategoryTypeExpense, nil)

	budi := entity.NewResident("Budi", 100000, entity.RoomTypeAC, entity.FloorAtas)

	t.Run("renders the full recap message", func(t *testing.T) {
		transactionRepo := &fakeTransactionRepo{transactions: []*entity.TransactionWithRelations{
			income(100000, budi, inMonth),
			income(50000, nil, inMonth),
			expense(12500, kebersihanCategory, inMonth),
		}}
		categoryRepo := &fakeCategoryRepo{categories: []*entity.Category{listrikCategory, kebersihanCategory}}
		accountRepo := &fakeAccountRepo{accounts: []*entity.Account{
			{Balance: 50000},
			{Balance: -20000},
		}}

		uc := NewBuildBroadcastUseCase(transactionRepo, categoryRepo, accountRepo, newMemoryCache(), testAppURL)

		output, err := uc.Execute(ctx, BuildBroadcastInput{Period: period})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := strings.Join([]string{
			"https://kas.example.com",
			"",
			"*Iuran September 2025*",
			"",
			"*Uang Diterima:*",
			"Budi 100k + Lainnya 50k",
			"Total: Rp150.000",
			"",
			"*Uang Keluar:*",
			"12.5k (Kebersihan)",
			"Total: Rp12.500",
			"",
			"*Iuran Listrik:*",
			"1. Iuran Listrik 15k/org",
			"",
			"*Iuran Lain-lain:*",
			"1. Kebersihan -",
			"",
			"*Ringkasan September:*",
			"Pemasukan: Rp150.000",
			"Pengeluaran: Rp12.500",
			"Selisih: +Rp137.500",
			"",
			"*Saldo Kas Saat Ini: Rp30.000*",
		}, "\n")

		if output.Message != want {
			t.Errorf("message mismatch\ngot:\n%s\nwant:\n%s", output.Message, want)
		}
		if !strings.HasPrefix(output.WhatsAppURL, "https://wa.me/?text=") {
			t.Errorf("WhatsAppURL = %q, want wa.me link", output.WhatsAppURL)
		}
		if strings.Contains(output.WhatsAppURL, "\n") || strings.Contains(output.WhatsAppURL, " ") {
			t.Errorf("WhatsAppURL must be query-escaped, got %q", output.WhatsAppURL)
		}
		if output.IncomeCount != 2 || output.ExpenseCount != 1 {
			t.Errorf("counts = %d/%d, want 2/1", output.IncomeCount, output.ExpenseCount)
		}
		if output.TotalIncome != 150000 || output.TotalExpense != 12500 || output.TotalBalance != 30000 {
			t.Errorf("totals = %d/%d/%d, want 150000/12500/30000",
				output.TotalIncome, output.TotalExpense, output.TotalBalance)
		}
	})

	t.Run("omits sections for an empty month", func(t *testing.T) {
		uc := NewBuildBroadcastUseCase(
			&fakeTransactionRepo{},
			&fakeCategoryRepo{categories: []*entity.Category{kebersihanCategory}},
			&fakeAccountRepo{},
			newMemoryCache(),
			testAppURL,
		)

		output, err := uc.Execute(ctx, BuildBroadcastInput{Period: period})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if strings.Contains(output.Message, "*Uang Diterima:*") {
			t.Error("income section must be omitted when there are no incomes")
		}
		if strings.Contains(output.Message, "*Uang Keluar:*") {
			t.Error("expense section must be omitted when there are no expenses")
		}
		if strings.Contains(output.Message, "*Iuran Listrik:*") {
			t.Error("listrik menu must be omitted when no category matches")
		}
		if !strings.Contains(output.Message, "*Iuran Lain-lain:*\n1. Kebersihan -") {
			t.Errorf("expected lain-lain menu, got:\n%s", output.Message)
		}
		if !strings.Contains(output.Message, "Selisih: +Rp0") {
			t.Errorf("expected zero selisih with plus sign, got:\n%s", output.Message)
		}
	})

	t.Run("negative selisih carries no plus sign", func(t *testing.T) {
		uc := NewBuildBroadcastUseCase(
			&fakeTransactionRepo{transactions: []*entity.TransactionWithRelations{
				expense(40000, kebersihanCategory, inMonth),
			}},
			&fakeCategoryRepo{},
			&fakeAccountRepo{},
			newMemoryCache(),
			testAppURL,
		)

		output, err := uc.Execute(ctx, BuildBroadcastInput{Period: period})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(output.Message, "Selisih: -Rp40.000") {
			t.Errorf("expected negative selisih, got:\n%s", output.Message)
		}
	})

	t.Run("serves the second request from cache", func(t *testing.T) {
		transactionRepo := &fakeTransactionRepo{transactions: []*entity.TransactionWithRelations{
			income(100000, budi, inMonth),
		}}
		cache := newMemoryCache()
		uc := NewBuildBroadcastUseCase(transactionRepo, &fakeCategoryRepo{}, &fakeAccountRepo{}, cache, testAppURL)

		first, err := uc.Execute(ctx, BuildBroadcastInput{Period: period})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := uc.Execute(ctx, BuildBroadcastInput{Period: period})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if transactionRepo.findByPeriodCalls != 1 {
			t.Errorf("FindByPeriod calls = %d, want 1", transactionRepo.findByPeriodCalls)
		}
		if cache.sets != 1 {
			t.Errorf("cache Set calls = %d, want 1", cache.sets)
		}
		if first.Message != second.Message || first.TotalIncome != second.TotalIncome {
			t.Error("cached output must match the rendered output")
		}
	})

	t.Run("re-renders after invalidation", func(t *testing.T) {
		transactionRepo := &fakeTransactionRepo{}
		cache := newMemoryCache()
		uc := NewBuildBroadcastUseCase(transactionRepo, &fakeCategoryRepo{}, &fakeAccountRepo{}, cache, testAppURL)

		if _, err := uc.Execute(ctx, BuildBroadcastInput{Period: period}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := cache.Invalidate(ctx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := uc.Execute(ctx, BuildBroadcastInput{Period: period}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if transactionRepo.findByPeriodCalls != 2 {
			t.Errorf("FindByPeriod calls = %d, want 2", transactionRepo.findByPeriodCalls)
		}
	})

	t.Run("rejects an invalid period", func(t *testing.T) {
		uc := NewBuildBroadcastUseCase(&fakeTransactionRepo{}, &fakeCategoryRepo{}, &fakeAccountRepo{}, newMemoryCache(), testAppURL)

		_, err := uc.Execute(ctx, BuildBroadcastInput{Period: valueobject.Period{Year: 2025, Month: 0}})
		if !errors.Is(err, domainerror.ErrInvalidPeriod) {
			t.Errorf("expected ErrInvalidPeriod, got %v", err)
		}
	})
}
