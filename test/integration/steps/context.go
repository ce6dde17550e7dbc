// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/kas-sigmafam/backend/internal/application/usecase/account"
	"github.com/kas-sigmafam/backend/internal/application/usecase/bill"
	"github.com/kas-sigmafam/backend/internal/application/usecase/broadcast"
	"github.com/kas-sigmafam/backend/internal/application/usecase/category"
	"github.com/kas-sigmafam/backend/internal/application/usecase/dashboard"
	"github.com/kas-sigmafam/backend/internal/application/usecase/resident"
	"github.com/kas-sigmafam/backend/internal/application/usecase/transaction"
	"github.com/kas-sigmafam/backend/internal/infra/server/router"
	"github.com/kas-sigmafam/backend/internal/integration/adapters"
	"github.com/kas-sigmafam/backend/internal/integration/entrypoint/controller"
	"github.com/kas-sigmafam/backend/internal/integration/entrypoint/middleware"
	"github.com/kas-sigmafam/backend/internal/integration/persistence"
	"github.com/kas-sigmafam/backend/internal/integration/persistence/model"
	"github.com/kas-sigmafam/backend/test/integration/mock"
)

// testAppURL is the public app link rendered at the top of broadcast messages.
const testAppURL = "https://kas.example.com"

// TestContext holds the test state for each scenario.
type TestContext struct {
	// HTTP
	server       *httptest.Server
	engine       *gin.Engine
	response     *http.Response
	responseBody []byte

	// Request building
	requestHeaders map[string]string

	// Seeded entity ids by name, substituted into "{name}" placeholders.
	ids map[string]string

	// Backing stores
	db         *mock.Db
	redis      *redis.Client
	receiptDir string
}

// contextKey is used to store TestContext in context.Context.
type contextKey struct{}

// GetTestContext retrieves the TestContext from context.
func GetTestContext(ctx context.Context) *TestContext {
	if tc, ok := ctx.Value(contextKey{}).(*TestContext); ok {
		return tc
	}
	return nil
}

// SetTestContext stores the TestContext in context.
func SetTestContext(ctx context.Context, tc *TestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
		// Rate limiting is skipped in the test environment
		os.Setenv("ENV", "test")
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		db := mock.NewDb([]any{
			&model.ResidentModel{},
			&model.CategoryModel{},
			&model.AccountModel{},
			&model.TransactionModel{},
			&model.MonthlyBillModel{},
		})
		if err := db.ClearDB(); err != nil {
			return ctx, err
		}

		redisClient := mock.NewRedis()
		if err := mock.ClearRedis(redisClient); err != nil {
			return ctx, err
		}

		receiptDir, err := os.MkdirTemp("", "receipts-*")
		if err != nil {
			return ctx, err
		}

		tc := &TestContext{
			requestHeaders: make(map[string]string),
			ids:            make(map[string]string),
			db:             db,
			redis:          redisClient,
			receiptDir:     receiptDir,
		}

		tc.engine, err = newTestEngine(db, redisClient, receiptDir)
		if err != nil {
			return ctx, err
		}
		tc.server = httptest.NewServer(tc.engine)

		return SetTestContext(ctx, tc), nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		tc := GetTestContext(ctx)
		if tc != nil {
			if tc.server != nil {
				tc.server.Close()
			}
			if tc.receiptDir != "" {
				os.RemoveAll(tc.receiptDir)
			}
		}
		return ctx, nil
	})

	registerAPISteps(ctx)
	registerResponseSteps(ctx)
	registerSeedSteps(ctx)
}

// newTestEngine wires the full application against the test database and
// miniredis, mirroring the production composition in cmd/api.
func newTestEngine(db *mock.Db, redisClient *redis.Client, receiptDir string) (*gin.Engine, error) {
	gormDB := db.DbConn

	broadcastCache := adapters.NewRedisBroadcastCache(redisClient, time.Hour)

	receiptStorage, err := adapters.NewLocalReceiptStorage(receiptDir, "http://localhost:8080")
	if err != nil {
		return nil, fmt.Errorf("failed to initialize receipt storage: %w", err)
	}

	residentRepo := persistence.NewResidentRepository(gormDB)
	categoryRepo := persistence.NewCategoryRepository(gormDB)
	accountRepo := persistence.NewAccountRepository(gormDB)
	transactionRepo := persistence.NewTransactionRepository(gormDB)
	billRepo := persistence.NewBillRepository(gormDB)

	healthController := controller.NewHealthController(db.Ping)

	residentController := controller.NewResidentController(
		resident.NewListResidentsUseCase(residentRepo),
		resident.NewCreateResidentUseCase(residentRepo, broadcastCache),
		resident.NewUpdateResidentUseCase(residentRepo, broadcastCache),
		resident.NewDeleteResidentUseCase(residentRepo, broadcastCache),
	)

	categoryController := controller.NewCategoryController(
		category.NewListCategoriesUseCase(categoryRepo),
		category.NewCreateCategoryUseCase(categoryRepo, broadcastCache),
		category.NewUpdateCategoryUseCase(categoryRepo, broadcastCache),
		category.NewDeleteCategoryUseCase(categoryRepo, broadcastCache),
	)

	accountController := controller.NewAccountController(
		account.NewListAccountsUseCase(accountRepo),
		account.NewCreateAccountUseCase(accountRepo, broadcastCache),
		account.NewUpdateAccountUseCase(accountRepo, broadcastCache),
		account.NewDeleteAccountUseCase(accountRepo, broadcastCache),
	)

	transactionController := controller.NewTransactionController(
		transaction.NewListTransactionsUseCase(transactionRepo),
		transaction.NewCreateTransactionUseCase(transactionRepo, broadcastCache),
		transaction.NewUpdateTransactionUseCase(transactionRepo, broadcastCache),
		transaction.NewDeleteTransactionUseCase(transactionRepo, broadcastCache),
	)

	billController := controller.NewBillController(
		bill.NewListBillsUseCase(billRepo),
		bill.NewGenerateBillsUseCase(billRepo, residentRepo, categoryRepo),
		bill.NewToggleBillPaidUseCase(billRepo),
	)

	broadcastController := controller.NewBroadcastController(
		broadcast.NewBuildBroadcastUseCase(transactionRepo, categoryRepo, accountRepo, broadcastCache, testAppURL),
	)

	dashboardController := controller.NewDashboardController(
		dashboard.NewGetMonthlySummaryUseCase(transactionRepo, accountRepo),
	)

	uploadController := controller.NewUploadController(receiptStorage)

	r := router.NewRouter(
		healthController,
		residentController,
		categoryController,
		accountController,
		transactionController,
		billController,
		broadcastController,
		dashboardController,
		uploadController,
		middleware.NewRateLimiter(),
		receiptDir,
	)

	return r.Setup("test"), nil
}
