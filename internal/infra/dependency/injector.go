// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/smartspend/backend/config"
	"github.com/smartspend/backend/internal/application/adapter"
	"github.com/smartspend/backend/internal/application/usecase/auth"
	"github.com/smartspend/backend/internal/application/usecase/bill"
	"github.com/smartspend/backend/internal/application/usecase/dashboard"
	"github.com/smartspend/backend/internal/application/usecase/expense"
	"github.com/smartspend/backend/internal/application/usecase/income"
	"github.com/smartspend/backend/internal/application/usecase/insight"
	"github.com/smartspend/backend/internal/application/usecase/runway"
	"github.com/smartspend/backend/internal/application/usecase/transaction"
	"github.com/smartspend/backend/internal/infra/server/router"
	"github.com/smartspend/backend/internal/integration/adapters"
	"github.com/smartspend/backend/internal/integration/cache"
	"github.com/smartspend/backend/internal/integration/entrypoint/controller"
	"github.com/smartspend/backend/internal/integration/entrypoint/middleware"
	"github.com/smartspend/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
// The clock, email sender and insight service are injected so tests can
// substitute deterministic fakes.
func NewInjector(
	cfg *config.Config,
	db *gorm.DB,
	redisClient *redis.Client,
	clock adapter.Clock,
	emailSender adapter.EmailSender,
	insightService adapter.InsightService,
) *Injector {
	// Repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	incomeRepo := persistence.NewIncomeRepository(db)
	expenseRepo := persistence.NewExpenseRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)
	billRepo := persistence.NewBillRepository(db)

	// Adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo)
	summaryCache := cache.NewRedisSummaryCache(redisClient)

	// Auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService, emailSender, cfg.Server.BaseURL)
	verifyEmailUseCase := auth.NewVerifyEmailUseCase(userRepo, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)

	// Runway use cases
	balanceUseCase := runway.NewBalanceUseCase(incomeRepo, expenseRepo)
	burnRateUseCase := runway.NewBurnRateUseCase(expenseRepo, clock)
	daysLeftUseCase := runway.NewDaysLeftUseCase(balanceUseCase, burnRateUseCase)
	forecastUseCase := runway.NewForecastUseCase(expenseRepo, clock)

	// Record use cases
	createIncomeUseCase := income.NewCreateIncomeUseCase(incomeRepo, summaryCache)
	listIncomesUseCase := income.NewListIncomesUseCase(incomeRepo)
	createExpenseUseCase := expense.NewCreateExpenseUseCase(expenseRepo, billRepo, summaryCache, clock)
	listExpensesUseCase := expense.NewListExpensesUseCase(expenseRepo)
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, clock)
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo, expenseRepo, incomeRepo, clock)

	// Bill use cases
	listBillsUseCase := bill.NewListBillsUseCase(billRepo, clock)
	updateBillUseCase := bill.NewUpdateBillUseCase(billRepo, summaryCache)
	deleteBillUseCase := bill.NewDeleteBillUseCase(billRepo, summaryCache)
	markPaidUseCase := bill.NewMarkPaidUseCase(billRepo, expenseRepo, transactionRepo, summaryCache, clock)

	// Dashboard and insight use cases
	getSummaryUseCase := dashboard.NewGetSummaryUseCase(
		balanceUseCase,
		burnRateUseCase,
		daysLeftUseCase,
		forecastUseCase,
		billRepo,
		expenseRepo,
		summaryCache,
		cfg.Redis.SummaryTTL,
		clock,
	)
	getSpendingInsightUseCase := insight.NewGetSpendingInsightUseCase(getSummaryUseCase, insightService)

	// Controllers
	healthController := controller.NewHealthController(
		func() bool {
			sqlDB, err := db.DB()
			if err != nil {
				return false
			}
			return sqlDB.Ping() == nil
		},
		func() bool {
			return redisClient.Ping(context.Background()).Err() == nil
		},
	)

	authController := controller.NewAuthController(
		registerUseCase,
		verifyEmailUseCase,
		loginUseCase,
		refreshTokenUseCase,
	)

	incomeController := controller.NewIncomeController(createIncomeUseCase, listIncomesUseCase)
	expenseController := controller.NewExpenseController(createExpenseUseCase, listExpensesUseCase)
	transactionController := controller.NewTransactionController(createTransactionUseCase, listTransactionsUseCase)
	billController := controller.NewBillController(listBillsUseCase, updateBillUseCase, deleteBillUseCase, markPaidUseCase)
	dashboardController := controller.NewDashboardController(getSummaryUseCase)
	insightController := controller.NewInsightController(getSpendingInsightUseCase)

	// Middleware
	// Use higher rate limits for test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	r := router.NewRouter(
		healthController,
		authController,
		incomeController,
		expenseController,
		transactionController,
		billController,
		dashboardController,
		insightController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}
}
