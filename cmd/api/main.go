// Package main is the entry point for the kas-sigmafam API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/kas-sigmafam/backend/config"
	"github.com/kas-sigmafam/backend/internal/application/adapter"
	"github.com/kas-sigmafam/backend/internal/application/usecase/account"
	"github.com/kas-sigmafam/backend/internal/application/usecase/bill"
	"github.com/kas-sigmafam/backend/internal/application/usecase/broadcast"
	"github.com/kas-sigmafam/backend/internal/application/usecase/category"
	"github.com/kas-sigmafam/backend/internal/application/usecase/dashboard"
	"github.com/kas-sigmafam/backend/internal/application/usecase/resident"
	"github.com/kas-sigmafam/backend/internal/application/usecase/transaction"
	"github.com/kas-sigmafam/backend/internal/infra/db"
	"github.com/kas-sigmafam/backend/internal/infra/server/router"
	"github.com/kas-sigmafam/backend/internal/integration/adapters"
	"github.com/kas-sigmafam/backend/internal/integration/entrypoint/controller"
	"github.com/kas-sigmafam/backend/internal/integration/entrypoint/middleware"
	"github.com/kas-sigmafam/backend/internal/integration/persistence"
	"github.com/kas-sigmafam/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := config.Load()

	slog.Info("Starting kas-sigmafam API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Initialize database connection
	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	if err := database.AutoMigrate(
		&model.ResidentModel{},
		&model.CategoryModel{},
		&model.AccountModel{},
		&model.TransactionModel{},
		&model.MonthlyBillModel{},
	); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database migrations completed successfully")

	// Broadcast cache: Redis when configured, otherwise render fresh per request
	broadcastCache := newBroadcastCache(cfg)

	// Receipt storage on local disk, served under /receipts
	receiptStorage, err := adapters.NewLocalReceiptStorage(cfg.Upload.ReceiptDir, cfg.App.ServerURL)
	if err != nil {
		slog.Error("Failed to initialize receipt storage", "error", err)
		os.Exit(1)
	}

	// Repositories
	residentRepo := persistence.NewResidentRepository(database.DB())
	categoryRepo := persistence.NewCategoryRepository(database.DB())
	accountRepo := persistence.NewAccountRepository(database.DB())
	transactionRepo := persistence.NewTransactionRepository(database.DB())
	billRepo := persistence.NewBillRepository(database.DB())

	// Controllers
	healthController := controller.NewHealthController(database.HealthCheck)

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
		broadcast.NewBuildBroadcastUseCase(transactionRepo, categoryRepo, accountRepo, broadcastCache, cfg.App.BaseURL),
	)

	dashboardController := controller.NewDashboardController(
		dashboard.NewGetMonthlySummaryUseCase(transactionRepo, accountRepo),
	)

	uploadController := controller.NewUploadController(receiptStorage)

	// Setup router
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
		cfg.Upload.ReceiptDir,
	)
	engine := r.Setup(cfg.Server.Environment)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}

// newBroadcastCache connects to Redis when REDIS_URL is set and reachable,
// falling back to a no-op cache otherwise.
func newBroadcastCache(cfg *config.Config) adapter.BroadcastCache {
	if cfg.Redis.URL == "" {
		slog.Info("Redis not configured, broadcast caching disabled")
		return adapters.NewNoopBroadcastCache()
	}

	opts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		slog.Warn("Invalid Redis URL, broadcast caching disabled", "error", err)
		return adapters.NewNoopBroadcastCache()
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		slog.Warn("Redis unreachable, broadcast caching disabled", "error", err)
		return adapters.NewNoopBroadcastCache()
	}

	slog.Info("Redis broadcast cache initialized", "ttl", cfg.Redis.BroadcastTTL)
	return adapters.NewRedisBroadcastCache(client, cfg.Redis.BroadcastTTL)
}
