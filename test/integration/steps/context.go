// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"

	"github.com/smartspend/backend/config"
	"github.com/smartspend/backend/internal/infra/dependency"
	"github.com/smartspend/backend/internal/integration/email"
	"github.com/smartspend/backend/internal/integration/persistence/model"
	"github.com/smartspend/backend/test/integration/mock"
)

// TestContext holds the test state for each scenario.
type TestContext struct {
	// HTTP
	server       *httptest.Server
	engine       *gin.Engine
	response     *http.Response
	responseBody []byte

	// Auth
	accessToken  string
	refreshToken string

	// Doubles
	db          *mock.Db
	clock       *mock.Time
	emailSender *email.MockEmailSender

	// Values captured from earlier responses, referenced as {name} in URLs.
	vars map[string]string
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

// suite-wide fixtures, shared across scenarios and reset between them
var (
	suiteDb          *mock.Db
	suiteClock       *mock.Time
	suiteEmailSender *email.MockEmailSender
	suiteEngine      *gin.Engine
)

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
		_ = os.Setenv("ENV", "test")

		suiteDb = mock.NewDb([]any{
			&model.UserModel{},
			&model.RefreshTokenModel{},
			&model.IncomeModel{},
			&model.ExpenseModel{},
			&model.TransactionModel{},
			&model.BillModel{},
		})
		suiteClock = mock.NewTime()
		suiteEmailSender = email.NewMockEmailSender()

		cfg := config.Load()
		cfg.Server.Environment = "test"

		injector := dependency.NewInjector(
			cfg,
			suiteDb.DbConn,
			mock.NewRedis(),
			suiteClock,
			suiteEmailSender,
			&mock.InsightStub{},
		)
		suiteEngine = injector.Router.Setup("test")
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		if err := suiteDb.Reset(); err != nil {
			return ctx, err
		}
		if err := mock.ClearRedis(mock.NewRedis()); err != nil {
			return ctx, err
		}
		suiteEmailSender.Reset()

		tc := &TestContext{
			engine:      suiteEngine,
			server:      httptest.NewServer(suiteEngine),
			db:          suiteDb,
			clock:       suiteClock,
			emailSender: suiteEmailSender,
			vars:        make(map[string]string),
		}

		return SetTestContext(ctx, tc), nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		tc := GetTestContext(ctx)
		if tc != nil && tc.server != nil {
			tc.server.Close()
		}
		return ctx, nil
	})

	registerAPISteps(ctx)
	registerAccountSteps(ctx)
	registerResponseSteps(ctx)
}
