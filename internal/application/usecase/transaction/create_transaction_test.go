package transaction

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/kas-sigmafam/backend/internal/domain/entity"
	domainerror "github.com/kas-sigmafam/backend/internal/domain/error"
)

type fakeTransactionRepo struct {
	created []*entity.Transaction
}

func (r *fakeTransactionRepo) Create(ctx context.Context, t *entity.Transaction) error {
	r.created = append(r.created, t)
	return nil
}

func (r *fakeTransactionRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	for _, t := range r.created {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, domainerror.ErrTransactionNotFound
}

func (r *fakeTransactionRepo) FindByIDWithRelations(ctx context.Context, id uuid.UUID) (*entity.TransactionWithRelations, error) {
	t, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &entity.TransactionWithRelations{Transaction: *t}, nil
}

func (r *fakeTransactionRepo) FindAll(ctx context.Context) ([]*entity.TransactionWithRelations, error) {
	return nil, nil
}

func (r *fakeTransactionRepo) FindByPeriod(ctx context.Context, start, end time.Time) ([]*entity.TransactionWithRelations, error) {
	return nil, nil
}

func (r *fakeTransactionRepo) Update(ctx context.Context, t *entity.Transaction) error { return nil }
func (r *fakeTransactionRepo) Delete(ctx context.Context, id uuid.UUID) error          { return nil }

// failingCache refuses every operation, standing in for an unreachable Redis.
type failingCache struct {
	invalidations int
}

func (c *failingCache) Get(ctx context.Context, year, month int) ([]byte, error) {
	return nil, errors.New("cache unavailable")
}

func (c *failingCache) Set(ctx context.Context, year, month int, payload []byte) error {
	return errors.New("cache unavailable")
}

func (c *failingCache) Invalidate(ctx context.Context) error {
	c.invalidations++
	return errors.New("cache unavailable")
}

func TestCreateTransactionUseCase(t *testing.T) {
	residentID := uuid.New()

	t.Run("creation succeeds when cache invalidation fails", func(t *testing.T) {
		repo := &fakeTransactionRepo{}
		cache := &failingCache{}
		uc := NewCreateTransactionUseCase(repo, cache)

		output, err := uc.Execute(context.Background(), CreateTransactionInput{
			Type:            entity.TransactionTypeIncome,
			Amount:          150000,
			ResidentID:      &residentID,
			Description:     "Iuran September",
			TransactionDate: "2025-09-01",
		})
		if err != nil {
			t.Fatalf("Execute() error = %v, want nil", err)
		}
		if output.Transaction == nil {
			t.Fatal("Execute() returned nil transaction")
		}
		if len(repo.created) != 1 {
			t.Errorf("created %d transactions, want 1", len(repo.created))
		}
		if cache.invalidations != 1 {
			t.Errorf("cache invalidated %d times, want 1", cache.invalidations)
		}
	})

	t.Run("rejects non-positive amount before touching the cache", func(t *testing.T) {
		repo := &fakeTransactionRepo{}
		cache := &failingCache{}
		uc := NewCreateTransactionUseCase(repo, cache)

		_, err := uc.Execute(context.Background(), CreateTransactionInput{
			Type:            entity.TransactionTypeIncome,
			Amount:          0,
			ResidentID:      &residentID,
			TransactionDate: "2025-09-01",
		})
		if !errors.Is(err, domainerror.ErrNonPositiveAmount) {
			t.Errorf("Execute() error = %v, want ErrNonPositiveAmount", err)
		}
		if cache.invalidations != 0 {
			t.Errorf("cache invalidated %d times, want 0", cache.invalidations)
		}
	})
}
