package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kas-sigmafam/backend/internal/application/usecase/account"
	"github.com/kas-sigmafam/backend/internal/application/usecase/bill"
	"github.com/kas-sigmafam/backend/internal/application/usecase/broadcast"
	"github.com/kas-sigmafam/backend/internal/application/usecase/category"
	"github.com/kas-sigmafam/backend/internal/application/usecase/dashboard"
	"github.com/kas-sigmafam/backend/internal/application/usecase/resident"
	"github.com/kas-sigmafam/backend/internal/application/usecase/transaction"
	"github.com/kas-sigmafam/backend/internal/domain/entity"
	domainerror "github.com/kas-sigmafam/backend/internal/domain/error"
	"github.com/kas-sigmafam/backend/internal/integration/adapters"
	"github.com/kas-sigmafam/backend/internal/integration/entrypoint/controller"
	"github.com/kas-sigmafam/backend/internal/integration/entrypoint/middleware"
)

type emptyResidentRepo struct{}

func (emptyResidentRepo) Create(ctx context.Context, r *entity.Resident) error { return nil }
func (emptyResidentRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Resident, error) {
	return nil, domainerror.ErrResidentNotFound
}
func (emptyResidentRepo) FindAll(ctx context.Context) ([]*entity.Resident, error) { return nil, nil }
func (emptyResidentRepo) Update(ctx context.Context, r *entity.Resident) error    { return nil }
func (emptyResidentRepo) Delete(ctx context.Context, id uuid.UUID) error          { return nil }

type emptyCategoryRepo struct{}

func (emptyCategoryRepo) Create(ctx context.Context, c *entity.Category) error { return nil }
func (emptyCategoryRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	return nil, domainerror.ErrCategoryNotFound
}
func (emptyCategoryRepo) FindAll(ctx context.Context) ([]*entity.Category, error) { return nil, nil }
func (emptyCategoryRepo) FindByType(ctx context.Context, t entity.CategoryType) ([]*entity.Category, error) {
	return nil, nil
}
func (emptyCategoryRepo) Update(ctx context.Context, c *entity.Category) error { return nil }
func (emptyCategoryRepo) Delete(ctx context.Context, id uuid.UUID) error       { return nil }

type emptyAccountRepo struct{}

func (emptyAccountRepo) Create(ctx context.Context, a *entity.Account) error { return nil }
func (emptyAccountRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	return nil, domainerror.ErrAccountNotFound
}
func (emptyAccountRepo) FindAll(ctx context.Context) ([]*entity.Account, error) { return nil, nil }
func (emptyAccountRepo) Update(ctx context.Context, a *entity.Account) error    { return nil }
func (emptyAccountRepo) Delete(ctx context.Context, id uuid.UUID) error         { return nil }

type emptyTransactionRepo struct{}

func (emptyTransactionRepo) Create(ctx context.Context, t *entity.Transaction) error { return nil }
func (emptyTransactionRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	return nil, domainerror.ErrTransactionNotFound
}
func (emptyTransactionRepo) FindByIDWithRelations(ctx context.Context, id uuid.UUID) (*entity.TransactionWithRelations, error) {
	return nil, domainerror.ErrTransactionNotFound
}
func (emptyTransactionRepo) FindAll(ctx context.Context) ([]*entity.TransactionWithRelations, error) {
	return nil, nil
}
func (emptyTransactionRepo) FindByPeriod(ctx context.Context, start, end time.Time) ([]*entity.TransactionWithRelations, error) {
	return nil, nil
}
func (emptyTransactionRepo) Update(ctx context.Context, t *entity.Transaction) error { return nil }
func (emptyTransactionRepo) Delete(ctx context.Context, id uuid.UUID) error          { return nil }

type emptyBillRepo struct{}

func (emptyBillRepo) CreateBatch(ctx context.Context, bills []*entity.MonthlyBill) error { return nil }
func (emptyBillRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.MonthlyBill, error) {
	return nil, domainerror.ErrBillNotFound
}
func (emptyBillRepo) FindByPeriod(ctx context.Context, year, month int) ([]*entity.MonthlyBillWithRelations, error) {
	return nil, nil
}
func (emptyBillRepo) Update(ctx context.Context, b *entity.MonthlyBill) error { return nil }

// newEngineForTest wires the router over empty repositories with the given
// rate limiter so route-level middleware can be exercised directly.
func newEngineForTest(rateLimiter *middleware.RateLimiter) *gin.Engine {
	cache := adapters.NewNoopBroadcastCache()
	residentRepo := emptyResidentRepo{}
	categoryRepo := emptyCategoryRepo{}
	accountRepo := emptyAccountRepo{}
	transactionRepo := emptyTransactionRepo{}
	billRepo := emptyBillRepo{}

	r := NewRouter(
		controller.NewHealthController(func() bool { return true }),
		controller.NewResidentController(
			resident.NewListResidentsUseCase(residentRepo),
			resident.NewCreateResidentUseCase(residentRepo, cache),
			resident.NewUpdateResidentUseCase(residentRepo, cache),
			resident.NewDeleteResidentUseCase(residentRepo, cache),
		),
		controller.NewCategoryController(
			category.NewListCategoriesUseCase(categoryRepo),
			category.NewCreateCategoryUseCase(categoryRepo, cache),
			category.NewUpdateCategoryUseCase(categoryRepo, cache),
			category.NewDeleteCategoryUseCase(categoryRepo, cache),
		),
		controller.NewAccountController(
			account.NewListAccountsUseCase(accountRepo),
			account.NewCreateAccountUseCase(accountRepo, cache),
			account.NewUpdateAccountUseCase(accountRepo, cache),
			account.NewDeleteAccountUseCase(accountRepo, cache),
		),
		controller.NewTransactionController(
			transaction.NewListTransactionsUseCase(transactionRepo),
			transaction.NewCreateTransactionUseCase(transactionRepo, cache),
			transaction.NewUpdateTransactionUseCase(transactionRepo, cache),
			transaction.NewDeleteTransactionUseCase(transactionRepo, cache),
		),
		controller.NewBillController(
			bill.NewListBillsUseCase(billRepo),
			bill.NewGenerateBillsUseCase(billRepo, residentRepo, categoryRepo),
			bill.NewToggleBillPaidUseCase(billRepo),
		),
		controller.NewBroadcastController(
			broadcast.NewBuildBroadcastUseCase(transactionRepo, categoryRepo, accountRepo, cache, "https://kas.example.com"),
		),
		controller.NewDashboardController(
			dashboard.NewGetMonthlySummaryUseCase(transactionRepo, accountRepo),
		),
		controller.NewUploadController(nil),
		rateLimiter,
		"",
	)
	return r.Setup("test")
}

func doRequest(engine *gin.Engine, method, path, body string) int {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimiterScope(t *testing.T) {
	// Rate limiting is bypassed entirely when ENV=test, so run these
	// requests as a non-test environment.
	t.Setenv("ENV", "development")
	gin.SetMode(gin.TestMode)

	t.Run("read routes are not rate limited", func(t *testing.T) {
		engine := newEngineForTest(middleware.NewRateLimiterWithConfig(1, time.Minute))

		for i := 0; i < 3; i++ {
			if code := doRequest(engine, http.MethodGet, "/api/v1/residents", ""); code != http.StatusOK {
				t.Fatalf("request %d: status = %d, want %d", i+1, code, http.StatusOK)
			}
		}
	})

	t.Run("regular writes are not rate limited", func(t *testing.T) {
		engine := newEngineForTest(middleware.NewRateLimiterWithConfig(1, time.Minute))

		for i := 0; i < 2; i++ {
			code := doRequest(engine, http.MethodPost, "/api/v1/residents", `{}`)
			if code != http.StatusBadRequest {
				t.Fatalf("request %d: status = %d, want %d", i+1, code, http.StatusBadRequest)
			}
		}
	})

	t.Run("bill generation is rate limited", func(t *testing.T) {
		engine := newEngineForTest(middleware.NewRateLimiterWithConfig(1, time.Minute))

		body := `{"year": 2025, "month": 9}`
		if code := doRequest(engine, http.MethodPost, "/api/v1/bills/generate", body); code != http.StatusOK {
			t.Fatalf("first request: status = %d, want %d", code, http.StatusOK)
		}
		if code := doRequest(engine, http.MethodPost, "/api/v1/bills/generate", body); code != http.StatusTooManyRequests {
			t.Errorf("second request: status = %d, want %d", code, http.StatusTooManyRequests)
		}
	})

	t.Run("receipt uploads are rate limited", func(t *testing.T) {
		engine := newEngineForTest(middleware.NewRateLimiterWithConfig(1, time.Minute))

		if code := doRequest(engine, http.MethodPost, "/api/v1/uploads/receipts", ""); code != http.StatusBadRequest {
			t.Fatalf("first request: status = %d, want %d", code, http.StatusBadRequest)
		}
		if code := doRequest(engine, http.MethodPost, "/api/v1/uploads/receipts", ""); code != http.StatusTooManyRequests {
			t.Errorf("second request: status = %d, want %d", code, http.StatusTooManyRequests)
		}
	})

	t.Run("nil limiter leaves all routes open", func(t *testing.T) {
		engine := newEngineForTest(nil)

		body := `{"year": 2025, "month": 9}`
		for i := 0; i < 3; i++ {
			if code := doRequest(engine, http.MethodPost, "/api/v1/bills/generate", body); code != http.StatusOK {
				t.Fatalf("request %d: status = %d, want %d", i+1, code, http.StatusOK)
			}
		}
	})
}
