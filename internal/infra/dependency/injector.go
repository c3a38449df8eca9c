// Package dependency provides dependency injection for the application.
package dependency

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/fleetops/finance-hub/config"
	"github.com/fleetops/finance-hub/internal/application/adapter"
	"github.com/fleetops/finance-hub/internal/application/usecase/auth"
	"github.com/fleetops/finance-hub/internal/application/usecase/budget"
	"github.com/fleetops/finance-hub/internal/application/usecase/category"
	"github.com/fleetops/finance-hub/internal/application/usecase/dashboard"
	"github.com/fleetops/finance-hub/internal/application/usecase/ledger"
	"github.com/fleetops/finance-hub/internal/application/usecase/permission"
	"github.com/fleetops/finance-hub/internal/application/usecase/report"
	"github.com/fleetops/finance-hub/internal/application/usecase/transaction"
	"github.com/fleetops/finance-hub/internal/infra/server/router"
	"github.com/fleetops/finance-hub/internal/integration/adapters"
	"github.com/fleetops/finance-hub/internal/integration/alert"
	"github.com/fleetops/finance-hub/internal/integration/entrypoint/controller"
	"github.com/fleetops/finance-hub/internal/integration/entrypoint/middleware"
	"github.com/fleetops/finance-hub/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config      *config.Config
	DB          *gorm.DB
	Router      *router.Router
	AlertWorker *alert.Worker
}

// NewInjector creates a new dependency injector with all dependencies wired.
// The redis client may be nil, in which case permission checks skip the cache.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Injector {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)
	budgetRepo := persistence.NewBudgetRepository(db)
	permissionRepo := persistence.NewPermissionRepository(db)
	alertQueueRepo := persistence.NewAlertQueueRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo)

	var permissionCache adapter.PermissionCache
	if redisClient != nil {
		permissionCache = adapters.NewRedisPermissionCache(redisClient)
	}

	// The ledger posts budget deltas for every transaction mutation
	budgetLedger := ledger.NewBudgetLedger(budgetRepo, alertQueueRepo, cfg.Alert.Recipient)

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)

	// Create category use cases
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
	updateCategoryUseCase := category.NewUpdateCategoryUseCase(categoryRepo)
	archiveCategoryUseCase := category.NewArchiveCategoryUseCase(categoryRepo)

	// Create transaction use cases
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	getTransactionUseCase := transaction.NewGetTransactionUseCase(transactionRepo)
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, categoryRepo, budgetLedger)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo, categoryRepo, budgetLedger)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo, budgetLedger)

	// Create budget use cases
	listBudgetsUseCase := budget.NewListBudgetsUseCase(budgetRepo)
	getBudgetUseCase := budget.NewGetBudgetUseCase(budgetRepo)
	createBudgetUseCase := budget.NewCreateBudgetUseCase(budgetRepo, categoryRepo)
	updateBudgetUseCase := budget.NewUpdateBudgetUseCase(budgetRepo)
	deleteBudgetUseCase := budget.NewDeleteBudgetUseCase(budgetRepo)
	reevaluateBudgetUseCase := budget.NewReevaluateBudgetUseCase(budgetRepo)

	// Create report and dashboard use cases
	generateReportUseCase := report.NewGenerateReportUseCase(transactionRepo, budgetRepo)
	monthlyReportUseCase := report.NewGenerateMonthlyReportUseCase(generateReportUseCase)
	exportTransactionsUseCase := report.NewExportTransactionsUseCase(transactionRepo)
	exportReportUseCase := report.NewExportReportUseCase(generateReportUseCase)
	getStatsUseCase := dashboard.NewGetStatsUseCase(transactionRepo, budgetRepo)

	// Create permission use cases
	checkPermissionUseCase := permission.NewCheckPermissionUseCase(permissionRepo, permissionCache, cfg.Redis.CacheTTL)
	grantPermissionsUseCase := permission.NewGrantPermissionsUseCase(permissionRepo, permissionCache)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
	)

	categoryController := controller.NewCategoryController(
		listCategoriesUseCase,
		createCategoryUseCase,
		updateCategoryUseCase,
		archiveCategoryUseCase,
	)

	transactionController := controller.NewTransactionController(
		listTransactionsUseCase,
		getTransactionUseCase,
		createTransactionUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
	)

	budgetController := controller.NewBudgetController(
		listBudgetsUseCase,
		getBudgetUseCase,
		createBudgetUseCase,
		updateBudgetUseCase,
		deleteBudgetUseCase,
		reevaluateBudgetUseCase,
	)

	reportController := controller.NewReportController(
		generateReportUseCase,
		monthlyReportUseCase,
		exportTransactionsUseCase,
		exportReportUseCase,
	)

	dashboardController := controller.NewDashboardController(getStatsUseCase)
	permissionController := controller.NewPermissionController(grantPermissionsUseCase)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)
	permissionMiddleware := middleware.NewPermissionMiddleware(checkPermissionUseCase)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		categoryController,
		transactionController,
		budgetController,
		reportController,
		dashboardController,
		permissionController,
		loginRateLimiter,
		authMiddleware,
		permissionMiddleware,
	)

	// Create the alert worker when a sender is configured
	var alertWorker *alert.Worker
	if cfg.Alert.WorkerEnabled && cfg.Alert.ResendAPIKey != "" {
		sender := alert.NewResendClient(cfg.Alert.ResendAPIKey, cfg.Alert.FromName, cfg.Alert.FromEmail)
		alertWorker = alert.NewWorker(alertQueueRepo, sender, alert.WorkerConfig{
			PollInterval: cfg.Alert.PollInterval,
			BatchSize:    cfg.Alert.BatchSize,
		})
	}

	return &Injector{
		Config:      cfg,
		DB:          db,
		Router:      r,
		AlertWorker: alertWorker,
	}
}
