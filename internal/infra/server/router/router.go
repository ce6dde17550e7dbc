// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/kas-sigmafam/backend/internal/integration/entrypoint/controller"
	"github.com/kas-sigmafam/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	residentController    *controller.ResidentController
	categoryController    *controller.CategoryController
	accountController     *controller.AccountController
	transactionController *controller.TransactionController
	billController        *controller.BillController
	broadcastController   *controller.BroadcastController
	dashboardController   *controller.DashboardController
	uploadController      *controller.UploadController
	rateLimiter           *middleware.RateLimiter
	receiptDir            string
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	residentController *controller.ResidentController,
	categoryController *controller.CategoryController,
	accountController *controller.AccountController,
	transactionController *controller.TransactionController,
	billController *controller.BillController,
	broadcastController *controller.BroadcastController,
	dashboardController *controller.DashboardController,
	uploadController *controller.UploadController,
	rateLimiter *middleware.RateLimiter,
	receiptDir string,
) *Router {
	return &Router{
		healthController:      healthController,
		residentController:    residentController,
		categoryController:    categoryController,
		accountController:     accountController,
		transactionController: transactionController,
		billController:        billController,
		broadcastController:   broadcastController,
		dashboardController:   dashboardController,
		uploadController:      uploadController,
		rateLimiter:           rateLimiter,
		receiptDir:            receiptDir,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupStaticRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupStaticRoutes serves stored receipt files.
func (r *Router) setupStaticRoutes() {
	if r.receiptDir != "" {
		r.engine.Static("/receipts", r.receiptDir)
	}
}

// setupAPIRoutes configures the main API routes. Rate limiting applies only
// to the expensive abuse-prone routes, bill generation and receipt uploads.
func (r *Router) setupAPIRoutes() {
	limit := func(c *gin.Context) { c.Next() }
	if r.rateLimiter != nil {
		limit = r.rateLimiter.Middleware()
	}

	v1 := r.engine.Group("/api/v1")
	{
		residents := v1.Group("/residents")
		{
			residents.GET("", r.residentController.List)
			residents.POST("", r.residentController.Create)
			residents.PATCH("/:id", r.residentController.Update)
			residents.DELETE("/:id", r.residentController.Delete)
		}

		categories := v1.Group("/categories")
		{
			categories.GET("", r.categoryController.List)
			categories.POST("", r.categoryController.Create)
			categories.PATCH("/:id", r.categoryController.Update)
			categories.DELETE("/:id", r.categoryController.Delete)
		}

		accounts := v1.Group("/accounts")
		{
			accounts.GET("", r.accountController.List)
			accounts.POST("", r.accountController.Create)
			accounts.PATCH("/:id", r.accountController.Update)
			accounts.DELETE("/:id", r.accountController.Delete)
		}

		transactions := v1.Group("/transactions")
		{
			transactions.GET("", r.transactionController.List)
			transactions.POST("", r.transactionController.Create)
			transactions.PATCH("/:id", r.transactionController.Update)
			transactions.DELETE("/:id", r.transactionController.Delete)
		}

		bills := v1.Group("/bills")
		{
			bills.GET("", r.billController.List)
			bills.POST("/generate", limit, r.billController.Generate)
			bills.POST("/:id/toggle-paid", r.billController.TogglePaid)
		}

		v1.GET("/broadcast", r.broadcastController.Get)
		v1.GET("/summary", r.dashboardController.Summary)

		if r.uploadController != nil {
			v1.POST("/uploads/receipts", limit, r.uploadController.UploadReceipt)
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
