package services_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"testing"
	"time"

	"github.com/habitado/go-condo-billing/internal/common"
	"github.com/habitado/go-condo-billing/internal/models"
	"github.com/habitado/go-condo-billing/internal/repositories"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

func TestReconciliation_UploadStatement(t *testing.T) {
	th := serviceTestHelper(t)

	type args struct {
		ctx context.Context
		req *models.UploadStatementRequest
	}
	tests := []struct {
		name    string
		args    args
		doMock  func(a args)
		wantErr bool
	}{
		{
			name: "success upload ofx statement",
			args: args{
				ctx: context.Background(),
				req: &models.UploadStatementRequest{
					CondoID:       "CND-001",
					BankAccountID: "0001-123456",
					RequestedBy:   "sindico@example.com",
					StatementFile: &multipart.FileHeader{Filename: "extrato-nov.ofx", Size: 2048},
				},
			},
			doMock: func(a args) {
				th.mockRunRepository.EXPECT().
					ExistsByFileName(gomock.Any(), a.req.CondoID, a.req.StatementFile.Filename).
					Return(false, nil)
				th.mockIDGenerator.EXPECT().Generate(models.RunIDPrefix).Return("RUN-1")
				th.mockFileRepo.EXPECT().
					StreamReadMultipartFile(gomock.Any(), a.req.StatementFile).
					DoAndReturn(func(_ context.Context, _ *multipart.FileHeader) <-chan repositories.StreamReadMultipartFileResult {
						resultCh := make(chan repositories.StreamReadMultipartFileResult)
						go func() {
							defer close(resultCh)
							resultCh <- repositories.StreamReadMultipartFileResult{Data: "OFXHEADER:100"}
							resultCh <- repositories.StreamReadMultipartFileResult{Data: "<OFX>"}
						}()
						return resultCh
					})
				th.mockGcs.EXPECT().
					NewWriter(gomock.Any(), gomock.Any()).
					Return(nopWriteCloser{&bytes.Buffer{}})
				th.mockRunRepository.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, in *models.CreateReconciliationRunIn) (*models.ReconciliationRun, error) {
						assert.Equal(t, "RUN-1", in.ID)
						assert.Equal(t, models.RunKindStatement, in.Kind)
						assert.Equal(t, a.req.StatementFile.Filename, in.FileName)
						return &models.ReconciliationRun{ID: in.ID, Status: models.RunStatusPending}, nil
					})
				th.mockReconciliationPub.EXPECT().
					Publish(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "unsupported file extension",
			args: args{
				ctx: context.Background(),
				req: &models.UploadStatementRequest{
					CondoID:       "CND-001",
					StatementFile: &multipart.FileHeader{Filename: "extrato.csv", Size: 2048},
				},
			},
			wantErr: true,
		},
		{
			name: "file too large",
			args: args{
				ctx: context.Background(),
				req: &models.UploadStatementRequest{
					CondoID:       "CND-001",
					StatementFile: &multipart.FileHeader{Filename: "extrato.ofx", Size: 11 << 20},
				},
			},
			wantErr: true,
		},
		{
			name: "duplicate file name for condo",
			args: args{
				ctx: context.Background(),
				req: &models.UploadStatementRequest{
					CondoID:       "CND-001",
					StatementFile: &multipart.FileHeader{Filename: "extrato-nov.ofx", Size: 2048},
				},
			},
			doMock: func(a args) {
				th.mockRunRepository.EXPECT().
					ExistsByFileName(gomock.Any(), a.req.CondoID, a.req.StatementFile.Filename).
					Return(true, nil)
			},
			wantErr: true,
		},
		{
			name: "publish failure cleans up uploaded file",
			args: args{
				ctx: context.Background(),
				req: &models.UploadStatementRequest{
					CondoID:       "CND-001",
					StatementFile: &multipart.FileHeader{Filename: "retorno-nov.ret", Size: 2048},
				},
			},
			doMock: func(a args) {
				th.mockRunRepository.EXPECT().
					ExistsByFileName(gomock.Any(), a.req.CondoID, a.req.StatementFile.Filename).
					Return(false, nil)
				th.mockIDGenerator.EXPECT().Generate(models.RunIDPrefix).Return("RUN-2")
				th.mockFileRepo.EXPECT().
					StreamReadMultipartFile(gomock.Any(), a.req.StatementFile).
					DoAndReturn(func(_ context.Context, _ *multipart.FileHeader) <-chan repositories.StreamReadMultipartFileResult {
						resultCh := make(chan repositories.StreamReadMultipartFileResult)
						close(resultCh)
						return resultCh
					})
				th.mockGcs.EXPECT().
					NewWriter(gomock.Any(), gomock.Any()).
					Return(nopWriteCloser{&bytes.Buffer{}})
				th.mockRunRepository.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, in *models.CreateReconciliationRunIn) (*models.ReconciliationRun, error) {
						assert.Equal(t, models.RunKindRetorno, in.Kind)
						return &models.ReconciliationRun{ID: in.ID}, nil
					})
				th.mockReconciliationPub.EXPECT().
					Publish(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("broker unavailable"))
				th.mockGcs.EXPECT().
					DeleteFile(gomock.Any(), gomock.Any()).
					Return(nil)
				th.mockRunRepository.EXPECT().
					UpdateStatus(gomock.Any(), "RUN-2", models.RunStatusFailed, gomock.Any()).
					Return(nil)
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.doMock != nil {
				tt.doMock(tt.args)
			}

			resp, err := th.reconciliationService.UploadStatement(tt.args.ctx, tt.args.req)
			assert.Equal(t, tt.wantErr, err != nil, err)
			if !tt.wantErr {
				assert.Equal(t, "RUN-1", resp.ID)
			}
		})
	}
}

func TestReconciliation_GetRun(t *testing.T) {
	th := serviceTestHelper(t)

	type args struct {
		ctx context.Context
		id  string
	}
	tests := []struct {
		name    string
		args    args
		doMock  func(a args)
		wantErr bool
	}{
		{
			name: "success without report",
			args: args{ctx: context.Background(), id: "RUN-1"},
			doMock: func(a args) {
				th.mockRunRepository.EXPECT().
					GetByID(a.ctx, a.id).
					Return(&models.ReconciliationRun{ID: a.id, Status: models.RunStatusPending}, nil)
			},
		},
		{
			name: "success with signed report url",
			args: args{ctx: context.Background(), id: "RUN-2"},
			doMock: func(a args) {
				th.mockRunRepository.EXPECT().
					GetByID(a.ctx, a.id).
					Return(&models.ReconciliationRun{ID: a.id, ReportPath: "test/reconciliation/out/RUN-2.csv"}, nil)
				th.mockGcs.EXPECT().
					GetSignedURL("test/reconciliation/out/RUN-2.csv", 15*time.Minute).
					Return("https://signed.example/RUN-2.csv", nil)
			},
		},
		{
			name: "run not found",
			args: args{ctx: context.Background(), id: "RUN-404"},
			doMock: func(a args) {
				th.mockRunRepository.EXPECT().
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

			out, err := th.reconciliationService.GetRun(tt.args.ctx, tt.args.id)
			assert.Equal(t, tt.wantErr, err != nil, err)
			if !tt.wantErr {
				assert.Equal(t, tt.args.id, out.ID)
			}
		})
	}
}

func TestReconciliation_GetListRuns(t *testing.T) {
	th := serviceTestHelper(t)

	ctx := context.Background()
	opts := models.RunFilterOptions{CondoID: "CND-001", Limit: 10}

	t.Run("success", func(t *testing.T) {
		th.mockRunRepository.EXPECT().
			GetList(ctx, opts).
			Return([]models.ReconciliationRun{{ID: "RUN-1"}, {ID: "RUN-2"}}, nil)
		th.mockRunRepository.EXPECT().
			CountAll(ctx, opts).
			Return(2, nil)

		runs, total, err := th.reconciliationService.GetListRuns(ctx, opts)
		assert.NoError(t, err)
		assert.Len(t, runs, 2)
		assert.Equal(t, 2, total)
	})

	t.Run("empty list skips count", func(t *testing.T) {
		th.mockRunRepository.EXPECT().
			GetList(ctx, opts).
			Return([]models.ReconciliationRun{}, nil)

		runs, total, err := th.reconciliationService.GetListRuns(ctx, opts)
		assert.NoError(t, err)
		assert.Empty(t, runs)
		assert.Zero(t, total)
	})
}

func TestReconciliation_GetSuggestions(t *testing.T) {
	th := serviceTestHelper(t)

	type args struct {
		ctx   context.Context
		runID string
	}
	tests := []struct {
		name    string
		args    args
		doMock  func(a args)
		wantErr bool
	}{
		{
			name: "success",
			args: args{ctx: context.Background(), runID: "RUN-1"},
			doMock: func(a args) {
				th.mockRunRepository.EXPECT().
					GetByID(a.ctx, a.runID).
					Return(&models.ReconciliationRun{ID: a.runID}, nil)
				th.mockMatchRepository.EXPECT().
					GetSuggestionsByRun(a.ctx, a.runID).
					Return([]models.MatchResult{{ID: "MTC-1", Outcome: models.MatchOutcomeSuggested}}, nil)
			},
		},
		{
			name: "run not found",
			args: args{ctx: context.Background(), runID: "RUN-404"},
			doMock: func(a args) {
				th.mockRunRepository.EXPECT().
					GetByID(a.ctx, a.runID).
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

			_, err := th.reconciliationService.GetSuggestions(tt.args.ctx, tt.args.runID)
			assert.Equal(t, tt.wantErr, err != nil, err)
		})
	}
}

func TestReconciliation_DecideSuggestion(t *testing.T) {
	th := serviceTestHelper(t)

	txnAt := time.Date(2026, 2, 9, 14, 30, 0, 0, time.UTC)

	type args struct {
		ctx context.Context
		req models.DecideSuggestionRequest
	}
	tests := []struct {
		name       string
		args       args
		doMock     func(a args)
		wantErr    bool
		wantStatus string
	}{
		{
			name: "approve settles invoice in the same transaction",
			args: args{
				ctx: context.Background(),
				req: models.DecideSuggestionRequest{ID: "MTC-1", Action: models.SuggestionActionApprove, DecidedBy: "sindico@example.com"},
			},
			doMock: func(a args) {
				th.mockMatchRepository.EXPECT().
					GetByID(a.ctx, a.req.ID).
					Return(&models.MatchResult{ID: a.req.ID, Outcome: models.MatchOutcomeSuggested}, nil)
				th.mockSQLRepository.EXPECT().
					Atomic(a.ctx, gomock.Any()).
					DoAndReturn(func(ctx context.Context, steps func(context.Context, repositories.SQLRepository) error) error {
						return steps(ctx, th.mockSQLRepository)
					})
				th.mockMatchRepository.EXPECT().
					Decide(a.ctx, a.req.ID, models.MatchOutcomeApproved, a.req.DecidedBy).
					Return(&models.MatchResult{
						ID:            a.req.ID,
						InvoiceNumber: "INV-1",
						Amount:        mustDecimal(t, "850.00"),
						TransactionAt: txnAt,
					}, nil)
				th.mockInvoiceRepository.EXPECT().
					GetByNumber(a.ctx, "INV-1").
					Return(&models.Invoice{Number: "INV-1", UnitID: "UNT-1", Amount: mustDecimal(t, "850.00"), Status: models.InvoiceStatusPending}, nil)
				th.mockInvoiceRepository.EXPECT().
					MarkPaid(a.ctx, gomock.Any()).
					DoAndReturn(func(_ context.Context, in models.InvoicePaymentIn) (*models.Invoice, error) {
						assert.Equal(t, models.PaymentOriginReconciliation, in.Origin)
						assert.Equal(t, txnAt, in.PaidAt)
						assert.False(t, in.Divergent)
						return &models.Invoice{Number: "INV-1", UnitID: "UNT-1", Status: models.InvoiceStatusPaid}, nil
					})
				th.mockCacheRepository.EXPECT().Del(a.ctx, gomock.Any()).Return(nil)
				th.mockInvoiceEventPub.EXPECT().
					Publish(a.ctx, gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantStatus: string(models.MatchOutcomeApproved),
		},
		{
			name: "reject flips outcome without touching the invoice",
			args: args{
				ctx: context.Background(),
				req: models.DecideSuggestionRequest{ID: "MTC-2", Action: models.SuggestionActionReject},
			},
			doMock: func(a args) {
				th.mockMatchRepository.EXPECT().
					GetByID(a.ctx, a.req.ID).
					Return(&models.MatchResult{ID: a.req.ID, Outcome: models.MatchOutcomeSuggested}, nil)
				th.mockMatchRepository.EXPECT().
					Decide(a.ctx, a.req.ID, models.MatchOutcomeRejected, a.req.DecidedBy).
					Return(&models.MatchResult{ID: a.req.ID, Outcome: models.MatchOutcomeRejected}, nil)
			},
			wantStatus: string(models.MatchOutcomeRejected),
		},
		{
			name: "suggestion already decided",
			args: args{
				ctx: context.Background(),
				req: models.DecideSuggestionRequest{ID: "MTC-3", Action: models.SuggestionActionApprove},
			},
			doMock: func(a args) {
				th.mockMatchRepository.EXPECT().
					GetByID(a.ctx, a.req.ID).
					Return(&models.MatchResult{ID: a.req.ID, Outcome: models.MatchOutcomeApproved}, nil)
			},
			wantErr: true,
		},
		{
			name: "approve fails when invoice already paid",
			args: args{
				ctx: context.Background(),
				req: models.DecideSuggestionRequest{ID: "MTC-4", Action: models.SuggestionActionApprove},
			},
			doMock: func(a args) {
				th.mockMatchRepository.EXPECT().
					GetByID(a.ctx, a.req.ID).
					Return(&models.MatchResult{ID: a.req.ID, Outcome: models.MatchOutcomeSuggested}, nil)
				th.mockSQLRepository.EXPECT().
					Atomic(a.ctx, gomock.Any()).
					DoAndReturn(func(ctx context.Context, steps func(context.Context, repositories.SQLRepository) error) error {
						return steps(ctx, th.mockSQLRepository)
					})
				th.mockMatchRepository.EXPECT().
					Decide(a.ctx, a.req.ID, models.MatchOutcomeApproved, a.req.DecidedBy).
					Return(&models.MatchResult{ID: a.req.ID, InvoiceNumber: "INV-2", Amount: mustDecimal(t, "850.00"), TransactionAt: txnAt}, nil)
				th.mockInvoiceRepository.EXPECT().
					GetByNumber(a.ctx, "INV-2").
					Return(&models.Invoice{Number: "INV-2", Status: models.InvoiceStatusPaid}, nil)
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.doMock != nil {
				tt.doMock(tt.args)
			}

			resp, err := th.reconciliationService.DecideSuggestion(tt.args.ctx, tt.args.req)
			assert.Equal(t, tt.wantErr, err != nil, err)
			if !tt.wantErr {
				assert.Equal(t, tt.wantStatus, resp.Status)
			}
		})
	}
}
