package services_test

import (
	"context"
	"testing"

	"github.com/habitado/go-condo-billing/internal/common"
	"github.com/habitado/go-condo-billing/internal/models"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestUnit_Create(t *testing.T) {
	th := serviceTestHelper(t)

	type args struct {
		ctx context.Context
		in  models.CreateUnitIn
	}
	tests := []struct {
		name    string
		args    args
		doMock  func(a args)
		want    *models.Unit
		wantErr bool
	}{
		{
			name: "success create unit with generated label",
			args: args{
				ctx: context.Background(),
				in: models.CreateUnitIn{
					CondoID:   "CND-001",
					Block:     "A",
					Number:    "101",
					OwnerName: "Maria Souza",
				},
			},
			doMock: func(a args) {
				th.mockIDGenerator.EXPECT().Generate(models.UnitIDPrefix).Return("UNT-1")
				th.mockUnitRepository.EXPECT().
					Create(a.ctx, gomock.Any()).
					DoAndReturn(func(_ context.Context, in *models.CreateUnitIn) (*models.Unit, error) {
						assert.Equal(t, "UNT-1", in.ID)
						assert.Equal(t, "Bloco A Apto 101", in.Label)
						return &models.Unit{ID: in.ID, CondoID: in.CondoID, Label: in.Label}, nil
					})
			},
			want: &models.Unit{ID: "UNT-1", CondoID: "CND-001", Label: "Bloco A Apto 101"},
		},
		{
			name: "failed insert returns database error",
			args: args{
				ctx: context.Background(),
				in: models.CreateUnitIn{
					CondoID:   "CND-001",
					Number:    "12",
					OwnerName: "Joao Lima",
				},
			},
			doMock: func(a args) {
				th.mockIDGenerator.EXPECT().Generate(models.UnitIDPrefix).Return("UNT-2")
				th.mockUnitRepository.EXPECT().
					Create(a.ctx, gomock.Any()).
					Return(nil, common.ErrUnableToCreate)
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.doMock != nil {
				tt.doMock(tt.args)
			}

			got, err := th.unitService.Create(tt.args.ctx, tt.args.in)
			assert.Equal(t, tt.wantErr, err != nil, err)
			if !tt.wantErr {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestUnit_GetByID(t *testing.T) {
	th := serviceTestHelper(t)

	type args struct {
		ctx context.Context
		id  string
	}
	tests := []struct {
		name    string
		args    args
		doMock  func(a args)
		want    models.Unit
		wantErr bool
	}{
		{
			name: "success get unit",
			args: args{ctx: context.Background(), id: "UNT-1"},
			doMock: func(a args) {
				th.mockUnitRepository.EXPECT().
					GetByID(a.ctx, a.id).
					Return(&models.Unit{ID: a.id, OwnerName: "Maria Souza"}, nil)
			},
			want: models.Unit{ID: "UNT-1", OwnerName: "Maria Souza"},
		},
		{
			name: "unit not found",
			args: args{ctx: context.Background(), id: "UNT-404"},
			doMock: func(a args) {
				th.mockUnitRepository.EXPECT().
					GetByID(a.ctx, a.id).
					Return(nil, common.ErrNoRows)
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.doMock != nil {
				tt.doMock(tt.args)
			}

			got, err := th.unitService.GetByID(tt.args.ctx, tt.args.id)
			assert.Equal(t, tt.wantErr, err != nil, err)
			if !tt.wantErr {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestUnit_GetList(t *testing.T) {
	th := serviceTestHelper(t)

	type args struct {
		ctx  context.Context
		opts models.UnitFilterOptions
	}
	tests := []struct {
		name      string
		args      args
		doMock    func(a args)
		wantLen   int
		wantTotal int
		wantErr   bool
	}{
		{
			name: "success list units",
			args: args{
				ctx:  context.Background(),
				opts: models.UnitFilterOptions{CondoID: "CND-001", Limit: 10},
			},
			doMock: func(a args) {
				th.mockUnitRepository.EXPECT().
					GetList(a.ctx, a.opts).
					Return([]models.Unit{{ID: "UNT-1"}, {ID: "UNT-2"}}, nil)
				th.mockUnitRepository.EXPECT().
					CountAll(a.ctx, a.opts).
					Return(2, nil)
			},
			wantLen:   2,
			wantTotal: 2,
		},
		{
			name: "empty result skips count",
			args: args{
				ctx:  context.Background(),
				opts: models.UnitFilterOptions{CondoID: "CND-404"},
			},
			doMock: func(a args) {
				th.mockUnitRepository.EXPECT().
					GetList(a.ctx, a.opts).
					Return(nil, nil)
			},
		},
		{
			name: "list error is propagated",
			args: args{
				ctx:  context.Background(),
				opts: models.UnitFilterOptions{CondoID: "CND-001"},
			},
			doMock: func(a args) {
				th.mockUnitRepository.EXPECT().
					GetList(a.ctx, a.opts).
					Return(nil, assert.AnError)
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.doMock != nil {
				tt.doMock(tt.args)
			}

			units, total, err := th.unitService.GetList(tt.args.ctx, tt.args.opts)
			assert.Equal(t, tt.wantErr, err != nil, err)
			assert.Len(t, units, tt.wantLen)
			assert.Equal(t, tt.wantTotal, total)
		})
	}
}
