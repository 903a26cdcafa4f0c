package v1scoring

import (
	"context"
	"testing"
	"time"

	"github.com/habitado/go-condo-billing/internal/common"
	"github.com/habitado/go-condo-billing/internal/common/flag"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func Test_scoringHandler_RebuildRiskScores(t *testing.T) {
	testHelper := scoringTestHelper(t)

	type args struct {
		ctx  context.Context
		date time.Time
		flag flag.Job
	}
	tests := []struct {
		name    string
		args    args
		doMock  func(args args)
		wantErr bool
	}{
		{
			name: "success RebuildRiskScores",
			args: args{
				ctx:  context.TODO(),
				date: common.Now(),
			},
			doMock: func(args args) {
				testHelper.mockRiskService.EXPECT().RebuildAll(gomock.AssignableToTypeOf(args.ctx), "").Return(10, nil)
			},
			wantErr: false,
		},
		{
			name: "error RebuildRiskScores",
			args: args{
				ctx:  context.TODO(),
				date: common.Now(),
			},
			doMock: func(args args) {
				testHelper.mockRiskService.EXPECT().RebuildAll(gomock.AssignableToTypeOf(args.ctx), "").Return(0, assert.AnError)
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.doMock != nil {
				tt.doMock(tt.args)
			}
			sh := &scoringHandler{
				riskSrv:       testHelper.mockRiskService,
				collectionSrv: testHelper.mockCollectionService,
			}
			err := sh.RebuildRiskScores(tt.args.ctx, tt.args.date, tt.args.flag)
			assert.Equal(t, tt.wantErr, err != nil)
		})
	}
}

func Test_scoringHandler_RebuildCollectionQueue(t *testing.T) {
	testHelper := scoringTestHelper(t)

	type args struct {
		ctx  context.Context
		date time.Time
		flag flag.Job
	}
	tests := []struct {
		name    string
		args    args
		doMock  func(args args)
		wantErr bool
	}{
		{
			name: "success RebuildCollectionQueue",
			args: args{
				ctx:  context.TODO(),
				date: common.Now(),
			},
			doMock: func(args args) {
				testHelper.mockCollectionService.EXPECT().RebuildAllQueues(gomock.AssignableToTypeOf(args.ctx)).Return(5, nil)
			},
			wantErr: false,
		},
		{
			name: "error RebuildCollectionQueue",
			args: args{
				ctx:  context.TODO(),
				date: common.Now(),
			},
			doMock: func(args args) {
				testHelper.mockCollectionService.EXPECT().RebuildAllQueues(gomock.AssignableToTypeOf(args.ctx)).Return(0, assert.AnError)
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.doMock != nil {
				tt.doMock(tt.args)
			}
			sh := &scoringHandler{
				riskSrv:       testHelper.mockRiskService,
				collectionSrv: testHelper.mockCollectionService,
			}
			err := sh.RebuildCollectionQueue(tt.args.ctx, tt.args.date, tt.args.flag)
			assert.Equal(t, tt.wantErr, err != nil)
		})
	}
}
