package collection

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
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testCollectionHelper struct {
	router                *echo.Echo
	mockCtrl              *gomock.Controller
	mockCollectionService *mock.MockCollectionService
}

func TestMain(m *testing.M) {
	xlog.InitForTest()
	os.Exit(m.Run())
}

func collectionTestHelper(t *testing.T) testCollectionHelper {
	t.Helper()

	mockCtrl := gomock.NewController(t)
	mockCollectionService := mock.NewMockCollectionService(mockCtrl)

	app := echo.New()

	v1Group := app.Group("/api/v1")
	app.Pre(echomiddleware.RemoveTrailingSlash())
	New(v1Group, mockCollectionService)

	return testCollectionHelper{
		router:                app,
		mockCtrl:              mockCtrl,
		mockCollectionService: mockCollectionService,
	}
}

func TestHandlerGetQueue(t *testing.T) {
	testHelper := collectionTestHelper(t)

	builtAt, err := time.Parse(time.RFC3339, "2023-11-10T04:00:00Z")
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
			urlCalled: "/api/v1/collections/queue?condoId=CONDO-SOLARDASACACIAS",
			wantCode:  nethttp.StatusOK,
			wantBody:  `"unitLabel":"Bloco A Apto 101"`,
			doMock: func() {
				testHelper.mockCollectionService.EXPECT().
					GetQueue(gomock.Any(), gomock.AssignableToTypeOf(models.CollectionFilterOptions{})).
					Return([]models.CollectionCase{
						{
							ID:                "COL-1",
							CondoID:           "CONDO-SOLARDASACACIAS",
							UnitID:            "UNT-1",
							UnitLabel:         "Bloco A Apto 101",
							OwnerName:         "Maria Souza",
							Priority:          models.NewDecimalFromExternal(decimal.RequireFromString("73.45")),
							Rank:              1,
							RiskScore:         640,
							RiskBucket:        models.RiskBucketHigh,
							OverdueAmount:     models.NewDecimalFromExternal(decimal.RequireFromString("1700.00")),
							OverdueCount:      2,
							DaysOverdue:       62,
							RecommendedAction: "formal_notice",
							BuiltAt:           &builtAt,
						},
					}, 1, nil)
			},
		},
		{
			name:      "failed - invalid bucket filter",
			urlCalled: "/api/v1/collections/queue?bucket=severe",
			wantCode:  nethttp.StatusBadRequest,
			wantBody:  `"code":"CB-422"`,
		},
		{
			name:      "failed - error service",
			urlCalled: "/api/v1/collections/queue",
			wantCode:  nethttp.StatusInternalServerError,
			wantBody:  `"message":"assert.AnError general error for testing"`,
			doMock: func() {
				testHelper.mockCollectionService.EXPECT().
					GetQueue(gomock.Any(), gomock.AssignableToTypeOf(models.CollectionFilterOptions{})).
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
