package services

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/habitado/go-condo-billing/internal/common"
	xlog "github.com/habitado/go-condo-billing/internal/common/log"
	"github.com/habitado/go-condo-billing/internal/common/publisher"
	"github.com/habitado/go-condo-billing/internal/models"
	"github.com/habitado/go-condo-billing/internal/monitoring"
	"github.com/habitado/go-condo-billing/internal/repositories"
)

// allowedStatementExtensions are the upload formats the parsers understand:
// OFX exports, CNAB fixed-width text and CNAB400 retorno files.
var allowedStatementExtensions = map[string]struct{}{
	".ofx": {},
	".txt": {},
	".ret": {},
}

type ReconciliationService interface {
	UploadStatement(ctx context.Context, req *models.UploadStatementRequest) (resp *models.UploadStatementResponse, err error)
	GetRun(ctx context.Context, id string) (out *models.ReconciliationRunDetailOut, err error)
	GetListRuns(ctx context.Context, opts models.RunFilterOptions) (runs []models.ReconciliationRun, total int, err error)
	GetSuggestions(ctx context.Context, runID string) (suggestions []models.MatchResult, err error)
	DecideSuggestion(ctx context.Context, req models.DecideSuggestionRequest) (resp *models.DecideSuggestionResponse, err error)
	ProcessTaskQueue(ctx context.Context, payload models.ReconciliationTaskPayload) error
}

type reconciliation service

var _ ReconciliationService = (*reconciliation)(nil)

func (rc *reconciliation) UploadStatement(ctx context.Context, req *models.UploadStatementRequest) (resp *models.UploadStatementResponse, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	ext := strings.ToLower(filepath.Ext(req.StatementFile.Filename))
	if _, ok := allowedStatementExtensions[ext]; !ok {
		err = models.GetErrMap(models.ErrKeyUnsupportedFileFormat, ext)
		return
	}

	maxBytes := int64(rc.srv.conf.Reconciliation.MaxFileSizeMB) << 20
	if maxBytes > 0 && req.StatementFile.Size > maxBytes {
		err = models.GetErrMap(models.ErrKeyFileTooLarge, fmt.Sprintf("limit is %dMB", rc.srv.conf.Reconciliation.MaxFileSizeMB))
		return
	}

	kind := req.Kind
	if kind == "" {
		kind = models.RunKindStatement
		if ext == ".ret" {
			kind = models.RunKindRetorno
		}
	}

	runRepo := rc.srv.sqlRepo.GetReconciliationRunRepository()

	exists, err := runRepo.ExistsByFileName(ctx, req.CondoID, req.StatementFile.Filename)
	if err != nil {
		err = checkDatabaseError(err)
		return
	}
	if exists {
		err = models.GetErrMap(models.ErrKeyDuplicateStatementFile, req.StatementFile.Filename)
		return
	}

	id := rc.srv.idgenerator.Generate(models.RunIDPrefix)

	now := common.Now()
	gcsPayload := &models.CloudStoragePayload{
		Filename: fmt.Sprintf("%s%s", id, ext),
		Path:     fmt.Sprintf("%s/%s/%04d/%02d", rc.srv.conf.App.Env, models.ReconciliationInFolderName, now.Year(), now.Month()),
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	streamReadResult := rc.srv.fileRepo.StreamReadMultipartFile(ctx, req.StatementFile)

	writer := rc.srv.cloudStorage.NewWriter(ctx, gcsPayload)
	defer writer.Close()

	for v := range streamReadResult {
		if v.Err != nil {
			cancel()
			err = v.Err
			xlog.Errorf(ctx, "got error while streaming statement file: %v", err)
			return
		}

		if _, err = writer.Write([]byte(fmt.Sprint(v.Data, "\n"))); err != nil {
			cancel()
			xlog.Errorf(ctx, "failed to write row to writer: %v", err)
			return
		}
	}

	created, err := runRepo.Create(ctx, &models.CreateReconciliationRunIn{
		ID:            id,
		CondoID:       req.CondoID,
		BankAccountID: req.BankAccountID,
		Kind:          kind,
		Format:        models.FormatUnknown,
		FileName:      req.StatementFile.Filename,
		FilePath:      gcsPayload.GetFilePath(),
		RequestedBy:   req.RequestedBy,
		Status:        models.RunStatusPending,
	})
	if err != nil {
		xlog.Errorf(ctx, "insert run failed: %v", err)

		if subErr := rc.srv.cloudStorage.DeleteFile(ctx, gcsPayload); subErr != nil {
			xlog.Errorf(ctx, "failed to delete uploaded statement file: %v", subErr)
		}

		err = common.ErrUnableToCreate
		return
	}

	task := models.NewReconciliationTaskPayload(created.ID)
	if err = rc.srv.reconciliationPub.Publish(ctx, task, publisher.WithKey(created.ID)); err != nil {
		xlog.Errorf(ctx, "failed to publish reconciliation task: %v", err)

		if subErr := rc.srv.cloudStorage.DeleteFile(ctx, gcsPayload); subErr != nil {
			xlog.Errorf(ctx, "failed to delete uploaded statement file: %v", subErr)
		}

		if subErr := runRepo.UpdateStatus(ctx, created.ID, models.RunStatusFailed, "unable to queue processing task"); subErr != nil {
			xlog.Errorf(ctx, "failed to mark run as failed: %v", subErr)
		}

		err = common.ErrUnableToReconcile
		return
	}

	return models.NewUploadStatementResponse(created.ID), nil
}

func (rc *reconciliation) GetRun(ctx context.Context, id string) (out *models.ReconciliationRunDetailOut, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	run, err := rc.srv.sqlRepo.GetReconciliationRunRepository().GetByID(ctx, id)
	if err != nil {
		err = checkDatabaseError(err, models.ErrKeyRunNotFound)
		return
	}

	out = &models.ReconciliationRunDetailOut{ReconciliationRunOut: run.ToModelResponse()}

	if run.ReportPath != "" {
		out.ReportFileURL, err = rc.srv.Storage.SignedReportURL(ctx, run.ReportPath)
		if err != nil {
			return nil, err
		}
	}

	return out, nil
}

func (rc *reconciliation) GetListRuns(ctx context.Context, opts models.RunFilterOptions) (runs []models.ReconciliationRun, total int, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	runRepo := rc.srv.sqlRepo.GetReconciliationRunRepository()

	runs, err = runRepo.GetList(ctx, opts)
	if err != nil {
		return runs, total, err
	}

	if len(runs) == 0 {
		return runs, total, nil
	}

	total, err = runRepo.CountAll(ctx, opts)
	if err != nil {
		return
	}

	return runs, total, nil
}

func (rc *reconciliation) GetSuggestions(ctx context.Context, runID string) (suggestions []models.MatchResult, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	if _, err = rc.srv.sqlRepo.GetReconciliationRunRepository().GetByID(ctx, runID); err != nil {
		err = checkDatabaseError(err, models.ErrKeyRunNotFound)
		return
	}

	suggestions, err = rc.srv.sqlRepo.GetMatchResultRepository().GetSuggestionsByRun(ctx, runID)
	if err != nil {
		err = checkDatabaseError(err)
		return
	}

	return suggestions, nil
}

// DecideSuggestion applies a manual review decision. Approval settles the
// invoice in the same transaction that flips the suggestion row, so a crash
// between the two cannot leave a paid invoice behind an undecided suggestion.
func (rc *reconciliation) DecideSuggestion(ctx context.Context, req models.DecideSuggestionRequest) (resp *models.DecideSuggestionResponse, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	result, err := rc.srv.sqlRepo.GetMatchResultRepository().GetByID(ctx, req.ID)
	if err != nil {
		err = checkDatabaseError(err, models.ErrKeySuggestionNotFound)
		return
	}

	if result.Outcome != models.MatchOutcomeSuggested {
		err = models.GetErrMap(models.ErrKeySuggestionAlreadyDecided, string(result.Outcome))
		return
	}

	if req.Action == models.SuggestionActionReject {
		if _, err = rc.srv.sqlRepo.GetMatchResultRepository().Decide(ctx, req.ID, models.MatchOutcomeRejected, req.DecidedBy); err != nil {
			if errors.Is(err, common.ErrDataNotFound) {
				err = models.GetErrMap(models.ErrKeySuggestionAlreadyDecided)
				return
			}
			err = checkDatabaseError(err)
			return
		}

		return models.NewDecideSuggestionResponse(req.ID, models.MatchOutcomeRejected), nil
	}

	var (
		updated   *models.Invoice
		divergent bool
	)

	err = rc.srv.sqlRepo.Atomic(ctx, func(ctx context.Context, r repositories.SQLRepository) error {
		decided, txErr := r.GetMatchResultRepository().Decide(ctx, req.ID, models.MatchOutcomeApproved, req.DecidedBy)
		if txErr != nil {
			return txErr
		}

		inv, txErr := r.GetInvoiceRepository().GetByNumber(ctx, decided.InvoiceNumber)
		if txErr != nil {
			return txErr
		}

		if inv.Status == models.InvoiceStatusPaid {
			return common.ErrInvoiceAlreadyPaid
		}

		divergent = isDivergentPayment(decided.Amount.Decimal, inv.Amount.Decimal, rc.srv.conf.Reconciliation.PaidAmountTolerance)

		updated, txErr = r.GetInvoiceRepository().MarkPaid(ctx, models.InvoicePaymentIn{
			Number:    decided.InvoiceNumber,
			Amount:    decided.Amount.Decimal,
			PaidAt:    decided.TransactionAt,
			Origin:    models.PaymentOriginReconciliation,
			Divergent: divergent,
		})

		return txErr
	})
	if err != nil {
		switch {
		case errors.Is(err, common.ErrInvoiceAlreadyPaid):
			err = models.GetErrMap(models.ErrKeyInvoiceAlreadyPaid)
		case errors.Is(err, common.ErrDataNotFound):
			err = models.GetErrMap(models.ErrKeySuggestionAlreadyDecided)
		default:
			err = checkDatabaseError(err)
		}
		return
	}

	rc.srv.Invoice.settleSideEffects(ctx, *updated, models.PaymentOriginReconciliation, divergent)

	return models.NewDecideSuggestionResponse(req.ID, models.MatchOutcomeApproved), nil
}
