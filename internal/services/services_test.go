package services_test

import (
	"os"
	"testing"

	mockFlag "github.com/habitado/go-condo-billing/internal/common/flag/mock"
	mockIDGenerator "github.com/habitado/go-condo-billing/internal/common/idgenerator/mock"
	mockMetrics "github.com/habitado/go-condo-billing/internal/common/metrics/mock"
	mockNotification "github.com/habitado/go-condo-billing/internal/common/notification/mock"
	mockPublisher "github.com/habitado/go-condo-billing/internal/common/publisher/mock"
	"github.com/habitado/go-condo-billing/internal/config"
	"github.com/habitado/go-condo-billing/internal/repositories/mock"
	"github.com/habitado/go-condo-billing/internal/services"

	xlog "github.com/habitado/go-condo-billing/internal/common/log"

	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	xlog.InitForTest()
	os.Exit(m.Run())
}

type testServiceHelper struct {
	mockCtrl              *gomock.Controller
	config                config.Config
	mockSQLRepository     *mock.MockSQLRepository
	mockUnitRepository    *mock.MockUnitRepository
	mockInvoiceRepository *mock.MockInvoiceRepository
	mockRunRepository     *mock.MockReconciliationRunRepository
	mockMatchRepository   *mock.MockMatchResultRepository
	mockRiskRepository    *mock.MockRiskScoreRepository
	mockCaseRepository    *mock.MockCollectionCaseRepository
	mockCacheRepository   *mock.MockCacheRepository
	mockGcs               *mock.MockCloudStorageRepository
	mockFileRepo          *mock.MockFileRepository
	mockIDGenerator       *mockIDGenerator.MockGenerator
	mockReconciliationPub *mockPublisher.MockPublisher
	mockInvoiceEventPub   *mockPublisher.MockPublisher
	mockNotification      *mockNotification.MockClient
	mockFlagClient        *mockFlag.MockClient

	unitService           services.UnitService
	invoiceService        services.InvoiceService
	reconciliationService services.ReconciliationService
	retornoService        services.RetornoService
	riskService           services.RiskService
	collectionService     services.CollectionService
	storageService        services.StorageService
	dlqProcessorService   services.DLQProcessorService
}

func serviceTestHelper(t *testing.T) testServiceHelper {
	t.Helper()
	t.Parallel()

	mockCtrl := gomock.NewController(t)

	mockSQLRepository := mock.NewMockSQLRepository(mockCtrl)
	mockUnitRepository := mock.NewMockUnitRepository(mockCtrl)
	mockInvoiceRepository := mock.NewMockInvoiceRepository(mockCtrl)
	mockRunRepository := mock.NewMockReconciliationRunRepository(mockCtrl)
	mockMatchRepository := mock.NewMockMatchResultRepository(mockCtrl)
	mockRiskRepository := mock.NewMockRiskScoreRepository(mockCtrl)
	mockCaseRepository := mock.NewMockCollectionCaseRepository(mockCtrl)

	mockCacheRepository := mock.NewMockCacheRepository(mockCtrl)
	mockCloudStorageRepository := mock.NewMockCloudStorageRepository(mockCtrl)
	mockFileRepo := mock.NewMockFileRepository(mockCtrl)
	mockIDGen := mockIDGenerator.NewMockGenerator(mockCtrl)
	mockReconciliationPub := mockPublisher.NewMockPublisher(mockCtrl)
	mockInvoiceEventPub := mockPublisher.NewMockPublisher(mockCtrl)
	mockNotificationClient := mockNotification.NewMockClient(mockCtrl)
	mockFlagClient := mockFlag.NewMockClient(mockCtrl)

	mockMetricsClient := mockMetrics.NewMockMetrics(mockCtrl)
	mockMetricsClient.EXPECT().GetReconciliationPrometheus().Return(nil).AnyTimes()

	mockSQLRepository.EXPECT().GetUnitRepository().Return(mockUnitRepository).AnyTimes()
	mockSQLRepository.EXPECT().GetInvoiceRepository().Return(mockInvoiceRepository).AnyTimes()
	mockSQLRepository.EXPECT().GetReconciliationRunRepository().Return(mockRunRepository).AnyTimes()
	mockSQLRepository.EXPECT().GetMatchResultRepository().Return(mockMatchRepository).AnyTimes()
	mockSQLRepository.EXPECT().GetRiskScoreRepository().Return(mockRiskRepository).AnyTimes()
	mockSQLRepository.EXPECT().GetCollectionCaseRepository().Return(mockCaseRepository).AnyTimes()

	conf := config.Config{
		App: config.App{
			Name: "go-condo-billing",
			Env:  "test",
		},
		CloudStorageConfig: config.CloudStorageConfig{
			BaseURL:    "https://storage.googleapis.com",
			BucketName: "condo-billing-test",
		},
		Reconciliation: config.ReconciliationConfig{
			ResultURLExpiryTime: 15,
			MaxFileSizeMB:       10,
			AutoApplyThreshold:  0.93,
			MinMargin:           0.05,
			AmountTolerance:     0.01,
			AmountTolerancePct:  0.001,
			DateWindowDays:      3,
			MinDescriptionScore: 0.55,
			SuggestionLimit:     3,
			PaidAmountTolerance: 0.01,
		},
		RiskScoring: config.RiskScoringConfig{
			WindowMonths: 12,
		},
		Notification: config.NotificationConfig{
			Enabled:      true,
			SlackChannel: "#condo-billing-alerts",
		},
		Collection: config.CollectionConfig{
			DaysOverdueCap: 180,
			QueueLimit:     500,
		},
		FeatureFlagKeyLookup: config.FeatureFlagKeyLookup{
			AutoApplyMatching: "auto_apply_matching",
			RiskModelWeights:  "risk_model_weights",
		},
	}
	serv := services.New(
		conf,
		mockSQLRepository,
		mockCacheRepository,
		mockCloudStorageRepository,
		mockFileRepo,
		mockIDGen,
		mockReconciliationPub,
		mockInvoiceEventPub,
		mockNotificationClient,
		mockFlagClient,
		mockMetricsClient,
	)

	return testServiceHelper{
		mockCtrl:              mockCtrl,
		config:                conf,
		mockSQLRepository:     mockSQLRepository,
		mockUnitRepository:    mockUnitRepository,
		mockInvoiceRepository: mockInvoiceRepository,
		mockRunRepository:     mockRunRepository,
		mockMatchRepository:   mockMatchRepository,
		mockRiskRepository:    mockRiskRepository,
		mockCaseRepository:    mockCaseRepository,
		mockCacheRepository:   mockCacheRepository,
		mockGcs:               mockCloudStorageRepository,
		mockFileRepo:          mockFileRepo,
		mockIDGenerator:       mockIDGen,
		mockReconciliationPub: mockReconciliationPub,
		mockInvoiceEventPub:   mockInvoiceEventPub,
		mockNotification:      mockNotificationClient,
		mockFlagClient:        mockFlagClient,

		unitService:           serv.Unit,
		invoiceService:        serv.Invoice,
		reconciliationService: serv.Reconciliation,
		retornoService:        serv.Retorno,
		riskService:           serv.Risk,
		collectionService:     serv.Collection,
		storageService:        serv.Storage,
		dlqProcessorService:   serv.DLQProcessor,
	}
}
