package riskscore

import (
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/habitado/go-condo-billing/internal/models"
	"github.com/habitado/go-condo-billing/internal/services/mock"

	xlog "github.com/habitado/go-condo-billing/internal/common/log"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testRiskScoreHelper struct {
	router          *echo.Echo
	mockCtrl        *gomock.Controller
	mockRiskService *mock.MockRiskService
}

func TestMain(m *testing.M) {
	xlog.InitForTest()
	os.Exit(m.Run())
}

func riskScoreTestHelper(t *testing.T) testRiskScoreHelper {
	t.Helper()

	mockCtrl := gomock.NewController(t)
	mockRiskService := mock.NewMockRiskService(mockCtrl)

	app := echo.New()

	v1Group := app.Group("/api/v1")
	app.Pre(echomiddleware.RemoveTrailingSlash())
	New(v1Group, mockRiskService)

	return testRiskScoreHelper{
		router:          app,
		mockCtrl:        mockCtrl,
		mockRiskService: mockRiskService,
	}
}

func TestHandlerGetAllRiskScores(t *testing.T) {
	testHelper := riskScoreTestHelper(t)

	computedAt, err := time.Parse(time.RFC3339, "2023-11-10T03:00:00Z")
	require.NoError(t, err)

	tests := []struct {
		name      string
		urlCalled string
		wantCode  int
		wantBody  string
		doMock    func()
	}{
		{
			name:      "happy path",
			urlCalled: "/api/v1/risk-scores?condoId=CONDO-SOLARDASACACIAS&bucket=high",
			wantCode:  nethttp.StatusOK,
			wantBody:  `"bucket":"high"`,
			doMock: func() {
				testHelper.mockRiskService.EXPECT().
					GetList(gomock.Any(), gomock.AssignableToTypeOf(models.RiskFilterOptions{})).
					Return([]models.RiskScore{
						{
							ID:                "RSK-1",
							UnitID:            "UNT-1",
							CondoID:           "CONDO-SOLARDASACACIAS",
							Score:             640,
							Bucket:            models.RiskBucketHigh,
							RecommendedAction: "formal_notice",
							WindowMonths:      12,
							ComputedAt:        &computedAt,
						},
					}, 1, nil)
			},
		},
		{
			name:      "failed - invalid bucket filter",
			urlCalled: "/api/v1/risk-scores?bucket=severe",
			wantCode:  nethttp.StatusBadRequest,
			wantBody:  `"code":"CB-422"`,
		},
		{
			name:      "failed - error service",
			urlCalled: "/api/v1/risk-scores",
			wantCode:  nethttp.StatusInternalServerError,
			wantBody:  `"message":"assert.AnError general error for testing"`,
			doMock: func() {
				testHelper.mockRiskService.EXPECT().
					GetList(gomock.Any(), gomock.AssignableToTypeOf(models.RiskFilterOptions{})).
					Return(nil, 0, assert.AnError)
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.doMock != nil {
				tt.doMock()
			}

			req := httptest.NewRequest(nethttp.MethodGet, tt.urlCalled, nil)

			rec := httptest.NewRecorder()
			testHelper.router.ServeHTTP(rec, req)

			resp := rec.Result()
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			require.Equal(t, tt.wantCode, resp.StatusCode)
			require.Contains(t, string(body), tt.wantBody)
		})
	}
}
