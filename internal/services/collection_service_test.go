package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/habitado/go-condo-billing/internal/common"
	"github.com/habitado/go-condo-billing/internal/models"
	"github.com/habitado/go-condo-billing/internal/repositories"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestCollection_GetQueue(t *testing.T) {
	th := serviceTestHelper(t)

	ctx := context.Background()
	opts := models.CollectionFilterOptions{CondoID: "CND-001", Limit: 10}

	t.Run("success", func(t *testing.T) {
		th.mockCaseRepository.EXPECT().
			GetList(ctx, opts).
			Return([]models.CollectionCase{{ID: "COL-1", Rank: 1}, {ID: "COL-2", Rank: 2}}, nil)
		th.mockCaseRepository.EXPECT().
			CountAll(ctx, opts).
			Return(2, nil)

		cases, total, err := th.collectionService.GetQueue(ctx, opts)
		assert.NoError(t, err)
		assert.Len(t, cases, 2)
		assert.Equal(t, 2, total)
	})

	t.Run("empty queue skips count", func(t *testing.T) {
		th.mockCaseRepository.EXPECT().
			GetList(ctx, opts).
			Return(nil, nil)

		cases, total, err := th.collectionService.GetQueue(ctx, opts)
		assert.NoError(t, err)
		assert.Empty(t, cases)
		assert.Zero(t, total)
	})
}

func TestCollection_RebuildQueue(t *testing.T) {
	th := serviceTestHelper(t)

	type args struct {
		ctx     context.Context
		condoID string
	}
	tests := []struct {
		name       string
		args       args
		doMock     func(a args)
		wantQueued int
		wantErr    bool
	}{
		{
			name: "success rebuild with unit details",
			args: args{ctx: context.Background(), condoID: "CND-001"},
			doMock: func(a args) {
				th.mockCaseRepository.EXPECT().
					GetCandidates(a.ctx, a.condoID).
					Return([]models.CollectionCandidate{
						{
							UnitID:        "UNT-1",
							CondoID:       a.condoID,
							RiskScore:     80,
							OverdueAmount: decimal.RequireFromString("1700.00"),
							OverdueCount:  2,
							OldestDueDate: time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC),
							DaysOverdue:   90,
						},
					}, nil)
				th.mockIDGenerator.EXPECT().Generate(models.CollectionCaseIDPrefix).Return("COL-1")
				th.mockUnitRepository.EXPECT().
					GetByIDs(a.ctx, []string{"UNT-1"}).
					Return(map[string]models.Unit{
						"UNT-1": {ID: "UNT-1", Label: "Bloco A Apto 101", OwnerName: "Maria Souza"},
					}, nil)
				th.mockSQLRepository.EXPECT().
					Atomic(a.ctx, gomock.Any()).
					DoAndReturn(func(ctx context.Context, steps func(context.Context, repositories.SQLRepository) error) error {
						return steps(ctx, th.mockSQLRepository)
					})
				th.mockCaseRepository.EXPECT().
					ReplaceQueue(a.ctx, a.condoID, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, queue []models.CollectionCase) error {
						assert.Len(t, queue, 1)
						assert.Equal(t, "COL-1", queue[0].ID)
						assert.Equal(t, "Bloco A Apto 101", queue[0].UnitLabel)
						assert.Equal(t, "Maria Souza", queue[0].OwnerName)
						return nil
					})
			},
			wantQueued: 1,
		},
		{
			name: "empty snapshot still replaces the queue",
			args: args{ctx: context.Background(), condoID: "CND-002"},
			doMock: func(a args) {
				th.mockCaseRepository.EXPECT().
					GetCandidates(a.ctx, a.condoID).
					Return(nil, nil)
				th.mockUnitRepository.EXPECT().
					GetByIDs(a.ctx, gomock.Len(0)).
					Return(map[string]models.Unit{}, nil)
				th.mockSQLRepository.EXPECT().
					Atomic(a.ctx, gomock.Any()).
					DoAndReturn(func(ctx context.Context, steps func(context.Context, repositories.SQLRepository) error) error {
						return steps(ctx, th.mockSQLRepository)
					})
				th.mockCaseRepository.EXPECT().
					ReplaceQueue(a.ctx, a.condoID, gomock.Len(0)).
					Return(nil)
			},
		},
		{
			name:    "condo id required",
			args:    args{ctx: context.Background(), condoID: ""},
			wantErr: true,
		},
		{
			name: "unit lookup failure",
			args: args{ctx: context.Background(), condoID: "CND-004"},
			doMock: func(a args) {
				th.mockCaseRepository.EXPECT().
					GetCandidates(a.ctx, a.condoID).
					Return([]models.CollectionCandidate{
						{
							UnitID:        "UNT-9",
							CondoID:       a.condoID,
							OverdueAmount: decimal.RequireFromString("850.00"),
							OverdueCount:  1,
							OldestDueDate: time.Date(2025, 12, 10, 0, 0, 0, 0, time.UTC),
							DaysOverdue:   30,
						},
					}, nil)
				th.mockUnitRepository.EXPECT().
					GetByIDs(a.ctx, []string{"UNT-9"}).
					Return(nil, common.ErrUnableToUpdate)
			},
			wantErr: true,
		},
		{
			name: "candidate query failure",
			args: args{ctx: context.Background(), condoID: "CND-003"},
			doMock: func(a args) {
				th.mockCaseRepository.EXPECT().
					GetCandidates(a.ctx, a.condoID).
					Return(nil, common.ErrUnableToUpdate)
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.doMock != nil {
				tt.doMock(tt.args)
			}

			queued, err := th.collectionService.RebuildQueue(tt.args.ctx, tt.args.condoID)
			assert.Equal(t, tt.wantErr, err != nil, err)
			if !tt.wantErr {
				assert.Equal(t, tt.wantQueued, queued)
			}
		})
	}
}

func TestCollection_RebuildAllQueues(t *testing.T) {
	th := serviceTestHelper(t)

	ctx := context.Background()

	t.Run("failed condo is skipped", func(t *testing.T) {
		th.mockUnitRepository.EXPECT().
			GetActiveCondoIDs(ctx).
			Return([]string{"CND-001", "CND-002"}, nil)

		th.mockCaseRepository.EXPECT().
			GetCandidates(ctx, "CND-001").
			Return(nil, common.ErrUnableToUpdate)

		th.mockCaseRepository.EXPECT().
			GetCandidates(ctx, "CND-002").
			Return(nil, nil)
		th.mockUnitRepository.EXPECT().
			GetByIDs(ctx, gomock.Len(0)).
			Return(map[string]models.Unit{}, nil)
		th.mockSQLRepository.EXPECT().
			Atomic(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, steps func(context.Context, repositories.SQLRepository) error) error {
				return steps(ctx, th.mockSQLRepository)
			})
		th.mockCaseRepository.EXPECT().
			ReplaceQueue(ctx, "CND-002", gomock.Len(0)).
			Return(nil)

		queued, err := th.collectionService.RebuildAllQueues(ctx)
		assert.NoError(t, err)
		assert.Zero(t, queued)
	})

	t.Run("every condo failing fails the job", func(t *testing.T) {
		th.mockUnitRepository.EXPECT().
			GetActiveCondoIDs(ctx).
			Return([]string{"CND-001"}, nil)
		th.mockCaseRepository.EXPECT().
			GetCandidates(ctx, "CND-001").
			Return(nil, common.ErrUnableToUpdate)

		_, err := th.collectionService.RebuildAllQueues(ctx)
		assert.Error(t, err)
	})
}
