// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/fleetops/finance-hub/internal/integration/entrypoint/controller"
	"github.com/fleetops/finance-hub/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	authController        *controller.AuthController
	categoryController    *controller.CategoryController
	transactionController *controller.TransactionController
	budgetController      *controller.BudgetController
	reportController      *controller.ReportController
	dashboardController   *controller.DashboardController
	permissionController  *controller.PermissionController
	loginRateLimiter      *middleware.RateLimiter
	authMiddleware        *middleware.AuthMiddleware
	permissionMiddleware  *middleware.PermissionMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	categoryController *controller.CategoryController,
	transactionController *controller.TransactionController,
	budgetController *controller.BudgetController,
	reportController *controller.ReportController,
	dashboardController *controller.DashboardController,
	permissionController *controller.PermissionController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
	permissionMiddleware *middleware.PermissionMiddleware,
) *Router {
	return &Router{
		healthController:      healthController,
		authController:        authController,
		categoryController:    categoryController,
		transactionController: transactionController,
		budgetController:      budgetController,
		reportController:      reportController,
		dashboardController:   dashboardController,
		permissionController:  permissionController,
		loginRateLimiter:      loginRateLimiter,
		authMiddleware:        authMiddleware,
		permissionMiddleware:  permissionMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		// Auth routes (only setup if auth controller is available)
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/register", r.authController.Register)
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
				auth.POST("/refresh", r.authController.RefreshToken)
				auth.POST("/logout", r.authController.Logout)
			}
		}

		// Category routes (require authentication; mutations require permission)
		if r.categoryController != nil && r.authMiddleware != nil && r.permissionMiddleware != nil {
			categories := v1.Group("/categories")
			categories.Use(r.authMiddleware.Authenticate())
			{
				categories.GET("", r.categoryController.List)
				categories.POST("", r.permissionMiddleware.RequirePermission("categories", "create"), r.categoryController.Create)
				categories.PATCH("/:id", r.permissionMiddleware.RequirePermission("categories", "update"), r.categoryController.Update)
				categories.DELETE("/:id", r.permissionMiddleware.RequirePermission("categories", "delete"), r.categoryController.Archive)
			}
		}

		// Transaction routes (require authentication; mutations require permission)
		if r.transactionController != nil && r.authMiddleware != nil && r.permissionMiddleware != nil {
			transactions := v1.Group("/transactions")
			transactions.Use(r.authMiddleware.Authenticate())
			{
				transactions.GET("", r.transactionController.List)
				transactions.GET("/:id", r.transactionController.Get)
				transactions.POST("", r.permissionMiddleware.RequirePermission("transactions", "create"), r.transactionController.Create)
				transactions.PATCH("/:id", r.permissionMiddleware.RequirePermission("transactions", "update"), r.transactionController.Update)
				transactions.DELETE("/:id", r.permissionMiddleware.RequirePermission("transactions", "delete"), r.transactionController.Delete)
			}
		}

		// Budget routes (require authentication; mutations require permission)
		if r.budgetController != nil && r.authMiddleware != nil && r.permissionMiddleware != nil {
			budgets := v1.Group("/budgets")
			budgets.Use(r.authMiddleware.Authenticate())
			{
				budgets.GET("", r.budgetController.List)
				budgets.GET("/:id", r.budgetController.Get)
				budgets.POST("", r.permissionMiddleware.RequirePermission("budgets", "create"), r.budgetController.Create)
				budgets.PATCH("/:id", r.permissionMiddleware.RequirePermission("budgets", "update"), r.budgetController.Update)
				budgets.DELETE("/:id", r.permissionMiddleware.RequirePermission("budgets", "delete"), r.budgetController.Delete)
				budgets.POST("/:id/reevaluate", r.permissionMiddleware.RequirePermission("budgets", "update"), r.budgetController.Reevaluate)
			}
		}

		// Report routes (require authentication)
		if r.reportController != nil && r.authMiddleware != nil {
			reports := v1.Group("/reports")
			reports.Use(r.authMiddleware.Authenticate())
			{
				reports.GET("", r.reportController.Generate)
				reports.GET("/monthly", r.reportController.GenerateMonthly)
				reports.GET("/export/transactions.csv", r.reportController.ExportTransactionsCSV)
				reports.GET("/export/report.csv", r.reportController.ExportReportCSV)
				reports.GET("/pdf-payload", r.reportController.PDFPayload)
			}
		}

		// Dashboard routes (require authentication)
		if r.dashboardController != nil && r.authMiddleware != nil {
			dashboard := v1.Group("/dashboard")
			dashboard.Use(r.authMiddleware.Authenticate())
			{
				dashboard.GET("/stats", r.dashboardController.GetStats)
			}
		}

		// Permission grant routes (require authentication and grant permission)
		if r.permissionController != nil && r.authMiddleware != nil && r.permissionMiddleware != nil {
			permissions := v1.Group("/permissions")
			permissions.Use(r.authMiddleware.Authenticate())
			{
				permissions.PUT("/:userId", r.permissionMiddleware.RequirePermission("permissions", "grant"), r.permissionController.Grant)
			}
		}
	}
}
