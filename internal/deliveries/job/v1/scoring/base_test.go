package v1scoring

import (
	"os"
	"testing"

	"github.com/habitado/go-condo-billing/internal/services/mock"

	xlog "github.com/habitado/go-condo-billing/internal/common/log"

	"go.uber.org/mock/gomock"
)

type testScoringHelper struct {
	mockCtrl              *gomock.Controller
	mockRiskService       *mock.MockRiskService
	mockCollectionService *mock.MockCollectionService
}

func scoringTestHelper(t *testing.T) testScoringHelper {
	t.Helper()

	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	mockRiskService := mock.NewMockRiskService(mockCtrl)
	mockCollectionService := mock.NewMockCollectionService(mockCtrl)

	Routes(mockRiskService, mockCollectionService)

	return testScoringHelper{
		mockCtrl:              mockCtrl,
		mockRiskService:       mockRiskService,
		mockCollectionService: mockCollectionService,
	}
}

func TestMain(m *testing.M) {
	xlog.InitForTest()
	os.Exit(m.Run())
}
