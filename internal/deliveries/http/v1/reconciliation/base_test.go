package reconciliation

import (
	"os"
	"testing"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/habitado/go-condo-billing/internal/common/http/middleware"
	"github.com/habitado/go-condo-billing/internal/config"
	mockRepo "github.com/habitado/go-condo-billing/internal/repositories/mock"
	"github.com/habitado/go-condo-billing/internal/services/mock"

	xlog "github.com/habitado/go-condo-billing/internal/common/log"

	"go.uber.org/mock/gomock"
)

type testReconciliationHelper struct {
	router                    *echo.Echo
	mockCtrl                  *gomock.Controller
	mockReconciliationService *mock.MockReconciliationService
}

func TestMain(m *testing.M) {
	xlog.InitForTest()
	os.Exit(m.Run())
}

func reconciliationTestHelper(t *testing.T) testReconciliationHelper {
	t.Helper()

	mockCtrl := gomock.NewController(t)

	mockReconciliationService := mock.NewMockReconciliationService(mockCtrl)
	mockCacheRepo := mockRepo.NewMockCacheRepository(mockCtrl)
	mockDlqProcessorService := mock.NewMockDLQProcessorService(mockCtrl)

	app := echo.New()

	v1Group := app.Group("/api/v1")
	app.Pre(echomiddleware.RemoveTrailingSlash())
	m := middleware.NewMiddleware(config.Config{}, mockCacheRepo, mockDlqProcessorService)
	New(v1Group, mockReconciliationService, m)

	return testReconciliationHelper{
		router:                    app,
		mockCtrl:                  mockCtrl,
		mockReconciliationService: mockReconciliationService,
	}
}
