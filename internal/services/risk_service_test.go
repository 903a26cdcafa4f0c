package services_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/habitado/go-condo-billing/internal/common"
	"github.com/habitado/go-condo-billing/internal/models"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestRisk_GetUnitRisk(t *testing.T) {
	th := serviceTestHelper(t)

	type args struct {
		ctx    context.Context
		unitID string
	}
	tests := []struct {
		name    string
		args    args
		doMock  func(a args)
		wantErr bool
	}{
		{
			name: "cache hit returns cached score",
			args: args{ctx: context.Background(), unitID: "UNT-1"},
			doMock: func(a args) {
				computedAt := time.Date(2026, 2, 1, 3, 0, 0, 0, time.UTC)
				cached, err := json.Marshal(models.RiskScore{UnitID: a.unitID, Score: 42, ComputedAt: &computedAt})
				assert.NoError(t, err)

				th.mockCacheRepository.EXPECT().
					Get(a.ctx, "billing:risk-score:UNT-1").
					Return(string(cached), nil)
			},
		},
		{
			name: "cache miss computes score from history",
			args: args{ctx: context.Background(), unitID: "UNT-2"},
			doMock: func(a args) {
				th.mockCacheRepository.EXPECT().
					Get(a.ctx, "billing:risk-score:UNT-2").
					Return("", common.ErrNoRows)
				th.mockUnitRepository.EXPECT().
					GetCachedUnit(a.ctx, a.unitID).
					Return(models.Unit{ID: a.unitID, CondoID: "CND-001", MonthlyFee: mustDecimal(t, "850.00")}, nil)
				th.mockFlagClient.EXPECT().
					GetVariant(th.config.FeatureFlagKeyLookup.RiskModelWeights, gomock.Any()).
					Return(nil)
				th.mockInvoiceRepository.EXPECT().
					GetHistoryByUnit(a.ctx, a.unitID, gomock.Any()).
					Return([]models.InvoiceHistoryEntry{}, nil)
				th.mockCacheRepository.EXPECT().
					Set(a.ctx, "billing:risk-score:UNT-2", gomock.Any(), th.config.RiskScoring.CacheTTL).
					Return(nil)
			},
		},
		{
			name: "unit not found",
			args: args{ctx: context.Background(), unitID: "UNT-404"},
			doMock: func(a args) {
				th.mockCacheRepository.EXPECT().
					Get(a.ctx, "billing:risk-score:UNT-404").
					Return("", common.ErrNoRows)
				th.mockUnitRepository.EXPECT().
					GetCachedUnit(a.ctx, a.unitID).
					Return(models.Unit{}, common.ErrNoRows)
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.doMock != nil {
				tt.doMock(tt.args)
			}

			score, err := th.riskService.GetUnitRisk(tt.args.ctx, tt.args.unitID)
			assert.Equal(t, tt.wantErr, err != nil, err)
			if !tt.wantErr {
				assert.Equal(t, tt.args.unitID, score.UnitID)
			}
		})
	}
}

func TestRisk_GetList(t *testing.T) {
	th := serviceTestHelper(t)

	ctx := context.Background()
	opts := models.RiskFilterOptions{CondoID: "CND-001", Limit: 10}

	t.Run("success", func(t *testing.T) {
		th.mockRiskRepository.EXPECT().
			GetList(ctx, opts).
			Return([]models.RiskScore{{ID: "RSK-1"}, {ID: "RSK-2"}}, nil)
		th.mockRiskRepository.EXPECT().
			CountAll(ctx, opts).
			Return(2, nil)

		scores, total, err := th.riskService.GetList(ctx, opts)
		assert.NoError(t, err)
		assert.Len(t, scores, 2)
		assert.Equal(t, 2, total)
	})

	t.Run("empty list skips count", func(t *testing.T) {
		th.mockRiskRepository.EXPECT().
			GetList(ctx, opts).
			Return(nil, nil)

		scores, total, err := th.riskService.GetList(ctx, opts)
		assert.NoError(t, err)
		assert.Empty(t, scores)
		assert.Zero(t, total)
	})

	t.Run("list error propagated", func(t *testing.T) {
		th.mockRiskRepository.EXPECT().
			GetList(ctx, opts).
			Return(nil, common.ErrUnableToUpdate)

		_, _, err := th.riskService.GetList(ctx, opts)
		assert.Error(t, err)
	})
}

func TestRisk_RebuildAll(t *testing.T) {
	th := serviceTestHelper(t)

	ctx := context.Background()

	t.Run("one broken unit does not stop the batch", func(t *testing.T) {
		th.mockUnitRepository.EXPECT().
			GetActiveUnitIDs(ctx, "CND-001").
			Return([]string{"UNT-1", "UNT-2"}, nil)
		th.mockFlagClient.EXPECT().
			GetVariant(th.config.FeatureFlagKeyLookup.RiskModelWeights, gomock.Any()).
			Return(nil)

		th.mockUnitRepository.EXPECT().
			GetCachedUnit(ctx, "UNT-1").
			Return(models.Unit{}, common.ErrNoRows)

		th.mockUnitRepository.EXPECT().
			GetCachedUnit(ctx, "UNT-2").
			Return(models.Unit{ID: "UNT-2", CondoID: "CND-001", MonthlyFee: mustDecimal(t, "850.00")}, nil)
		th.mockInvoiceRepository.EXPECT().
			GetHistoryByUnit(ctx, "UNT-2", gomock.Any()).
			Return([]models.InvoiceHistoryEntry{}, nil)
		th.mockIDGenerator.EXPECT().Generate(models.RiskScoreIDPrefix).Return("RSK-1")
		th.mockRiskRepository.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, score *models.RiskScore) (*models.RiskScore, error) {
				assert.Equal(t, "RSK-1", score.ID)
				assert.Equal(t, "UNT-2", score.UnitID)
				return score, nil
			})
		th.mockCacheRepository.EXPECT().
			Set(ctx, "billing:risk-score:UNT-2", gomock.Any(), th.config.RiskScoring.CacheTTL).
			Return(nil)

		rebuilt, err := th.riskService.RebuildAll(ctx, "CND-001")
		assert.NoError(t, err)
		assert.Equal(t, 1, rebuilt)
	})

	t.Run("all units broken fails the batch", func(t *testing.T) {
		th.mockUnitRepository.EXPECT().
			GetActiveUnitIDs(ctx, "").
			Return([]string{"UNT-1"}, nil)
		th.mockFlagClient.EXPECT().
			GetVariant(th.config.FeatureFlagKeyLookup.RiskModelWeights, gomock.Any()).
			Return(nil)
		th.mockUnitRepository.EXPECT().
			GetCachedUnit(ctx, "UNT-1").
			Return(models.Unit{}, common.ErrNoRows)

		_, err := th.riskService.RebuildAll(ctx, "")
		assert.Error(t, err)
	})
}
