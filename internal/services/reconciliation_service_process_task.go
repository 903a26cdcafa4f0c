package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/habitado/go-condo-billing/internal/common"
	"github.com/habitado/go-condo-billing/internal/common/constants"
	localstorage "github.com/habitado/go-condo-billing/internal/common/local_storage"
	xlog "github.com/habitado/go-condo-billing/internal/common/log"
	"github.com/habitado/go-condo-billing/internal/models"
	"github.com/habitado/go-condo-billing/internal/monitoring"
	"github.com/habitado/go-condo-billing/internal/repositories"
	"github.com/habitado/go-condo-billing/internal/services/matching"
	"github.com/habitado/go-condo-billing/internal/services/statement"
)

// errRunAlreadyFinal short-circuits redeliveries of runs that finished on an
// earlier attempt.
var errRunAlreadyFinal = errors.New("reconciliation run already finished")

type stagedStatement localstorage.LocalStorage[models.BankTransaction]

// ProcessTaskQueue runs the async half of an upload: download the file from
// cloud storage, parse it, reconcile and write the run report. A nil return
// acks the queue message; an error hands the message back to the consumer's
// retry and dead letter path.
func (rc *reconciliation) ProcessTaskQueue(ctx context.Context, payload models.ReconciliationTaskPayload) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	run, err := rc.prepareRun(ctx, payload.ID)
	if err != nil {
		if errors.Is(err, errRunAlreadyFinal) {
			xlog.Info(ctx, constants.LogPrefixReconciliation,
				xlog.String("operation", "skip run that already finished"),
				xlog.String("run_id", payload.ID))
			return nil
		}
		return err
	}

	xlog.Info(ctx, constants.LogPrefixReconciliation,
		xlog.String("operation", "start processing uploaded file"),
		xlog.String("run_id", run.ID),
		xlog.String("file_name", run.FileName))

	raw, err := rc.downloadStatement(ctx, run)
	if err != nil {
		return rc.failRun(ctx, run, err)
	}

	parsed, err := rc.parseStatement(ctx, run, raw)
	if err != nil {
		// the upload itself is unusable, retrying cannot fix it
		return rc.finishInvalidFile(ctx, run, err)
	}

	if run.Kind == models.RunKindRetorno || parsed.Format == models.FormatCNAB400 {
		err = rc.processRetornoRun(ctx, run, parsed)
	} else {
		err = rc.processStatementRun(ctx, run, parsed)
	}
	if err != nil {
		return rc.failRun(ctx, run, err)
	}

	xlog.Info(ctx, constants.LogPrefixReconciliation,
		xlog.String("operation", "finish processing uploaded file"),
		xlog.String("run_id", run.ID))

	return nil
}

// prepareRun loads the run and flips it to processing. Runs that already
// finished return errRunAlreadyFinal, except failed ones: those come back
// through the dead letter retrier and get another attempt.
func (rc *reconciliation) prepareRun(ctx context.Context, runID string) (*models.ReconciliationRun, error) {
	run, err := rc.srv.sqlRepo.GetReconciliationRunRepository().GetByID(ctx, runID)
	if err != nil {
		return nil, err
	}

	if run.Status.IsFinal() && run.Status != models.RunStatusFailed {
		return nil, errRunAlreadyFinal
	}

	err = rc.srv.sqlRepo.GetReconciliationRunRepository().UpdateStatus(ctx, run.ID, models.RunStatusProcessing, "")
	if err != nil {
		return nil, err
	}

	return run, nil
}

func (rc *reconciliation) downloadStatement(ctx context.Context, run *models.ReconciliationRun) ([]byte, error) {
	gcsPayload := models.NewCloudStoragePayload(run.FilePath)
	reader, err := rc.srv.cloudStorage.NewReader(ctx, &gcsPayload)
	if err != nil {
		return nil, fmt.Errorf("failed to open statement file: %w", err)
	}
	defer reader.Close()

	raw, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read statement file: %w", err)
	}

	return raw, nil
}

func (rc *reconciliation) parseStatement(ctx context.Context, run *models.ReconciliationRun, raw []byte) (*models.ParsedStatement, error) {
	format := statement.Detect(raw, run.FileName)
	if format == models.FormatUnknown {
		return nil, common.ErrUnsupportedFileFormat
	}

	parsed, err := rc.srv.parsers.Parse(ctx, format, bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}

	if len(parsed.Transactions) == 0 && len(parsed.Events) == 0 {
		return nil, common.ErrStatementEmpty
	}

	for _, parseErr := range parsed.Errors {
		xlog.Warn(ctx, constants.LogPrefixReconciliation,
			xlog.String("operation", "skip malformed statement line"),
			xlog.String("run_id", run.ID),
			xlog.Int("line", parseErr.Line),
			xlog.String("reason", parseErr.Message))
	}

	return parsed, nil
}

// processStatementRun reconciles a parsed account statement: stage the
// entries, match them against the open invoices, persist what the engine
// decided and upload the run report.
func (rc *reconciliation) processStatementRun(ctx context.Context, run *models.ReconciliationRun, parsed *models.ParsedStatement) error {
	staging, err := rc.createStaging(run.ID)
	if err != nil {
		return err
	}
	defer rc.closeStaging(staging)

	transactions, err := rc.stageTransactions(staging, parsed.Transactions)
	if err != nil {
		return err
	}

	invoices, err := rc.srv.sqlRepo.GetInvoiceRepository().GetOpenInvoices(ctx, run.CondoID)
	if err != nil {
		return err
	}

	engine := matching.NewEngine(rc.engineConfig())
	result := engine.Run(ctx, transactions, invoices)

	applied, appliedAmount, err := rc.persistMatchResults(ctx, run, result.Entries)
	if err != nil {
		return err
	}

	for _, inv := range applied {
		rc.srv.Invoice.settleSideEffects(ctx, inv, models.PaymentOriginReconciliation, false)
	}

	rows := make([][]string, 0, len(result.Entries)+len(parsed.Errors))
	for _, entry := range result.Entries {
		rows = append(rows, entry.ToReportCSVRow())
	}
	for _, parseErr := range parsed.Errors {
		rows = append(rows, parseErrorReportRow(parseErr))
	}

	reportPath, err := rc.writeRunReport(ctx, run, rows)
	if err != nil {
		return err
	}

	status := models.RunStatusPartialMatched
	if result.FullyMatched() {
		status = models.RunStatusSuccess
	}

	err = rc.srv.sqlRepo.GetReconciliationRunRepository().UpdateResult(ctx, models.RunResultIn{
		ID:               run.ID,
		Status:           status,
		Format:           parsed.Format,
		ReportPath:       reportPath,
		TransactionCount: result.Counters.Total,
		MatchedCount:     result.Counters.AutoApplied,
		SuggestedCount:   result.Counters.Suggested,
		UnmatchedCount:   result.Counters.Unmatched,
		AppliedAmount:    models.NewDecimalFromExternal(appliedAmount),
	})
	if err != nil {
		return err
	}

	rc.srv.metrics.GetReconciliationPrometheus().Record(result.Entries)

	return nil
}

// processRetornoRun applies the occurrence events of a CNAB400 return file
// and uploads the per-line report.
func (rc *reconciliation) processRetornoRun(ctx context.Context, run *models.ReconciliationRun, parsed *models.ParsedStatement) error {
	results, summary, err := rc.srv.Retorno.Apply(ctx, run, parsed.Events)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(results)+len(parsed.Errors))
	for _, result := range results {
		rows = append(rows, result.ToReportCSVRow())
	}
	for _, parseErr := range parsed.Errors {
		rows = append(rows, parseErrorReportRow(parseErr))
	}

	reportPath, err := rc.writeRunReport(ctx, run, rows)
	if err != nil {
		return err
	}

	status := models.RunStatusSuccess
	if summary.ProblemCount() > 0 {
		status = models.RunStatusPartialMatched
	}

	return rc.srv.sqlRepo.GetReconciliationRunRepository().UpdateResult(ctx, models.RunResultIn{
		ID:               run.ID,
		Status:           status,
		Format:           parsed.Format,
		ReportPath:       reportPath,
		TransactionCount: summary.Total,
		MatchedCount:     summary.SettledCount(),
		UnmatchedCount:   summary.ProblemCount(),
		AppliedAmount:    models.NewDecimalFromExternal(summary.AppliedAmount),
	})
}

func (rc *reconciliation) createStaging(runID string) (stagedStatement, error) {
	staging, err := localstorage.NewBadgerStorage[models.BankTransaction](fmt.Sprintf("reconciliation-%s", runID))
	if err != nil {
		return nil, fmt.Errorf("failed to make local storage: %w", err)
	}
	return staging, nil
}

func (rc *reconciliation) closeStaging(staging stagedStatement) {
	staging.Close()
	staging.Clean()
}

// stageTransactions spools the parsed entries through the run's local badger
// bucket and reads them back. Keys are zero-padded line numbers, so the
// read-back iterates in file order.
func (rc *reconciliation) stageTransactions(staging stagedStatement, transactions []models.BankTransaction) ([]models.BankTransaction, error) {
	for _, txn := range transactions {
		if err := staging.Set(fmt.Sprintf("%09d", txn.Line), txn); err != nil {
			return nil, fmt.Errorf("failed to set value to localstorage: %w", err)
		}
	}

	staged := make([]models.BankTransaction, 0, len(transactions))
	err := staging.ForEach(func(key string, value models.BankTransaction) error {
		staged = append(staged, value)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to loop localstorage: %w", err)
	}

	return staged, nil
}

func (rc *reconciliation) engineConfig() matching.Config {
	conf := rc.srv.conf.Reconciliation

	return matching.Config{
		AutoApplyEnabled:    rc.srv.flag.IsEnabled(rc.srv.conf.FeatureFlagKeyLookup.AutoApplyMatching),
		AutoApplyThreshold:  conf.AutoApplyThreshold,
		MinMargin:           conf.MinMargin,
		AmountTolerance:     conf.AmountTolerance,
		AmountTolerancePct:  conf.AmountTolerancePct,
		DateWindowDays:      conf.DateWindowDays,
		MinDescriptionScore: conf.MinDescriptionScore,
		SuggestionLimit:     conf.SuggestionLimit,
	}
}

// persistMatchResults stores the run's rows and settles the auto-applied
// invoices in one transaction. Previous rows of the run are cleared first so
// a retried run replaces instead of duplicating. Invoices that got settled
// some other way while the engine ran are skipped, not failed.
func (rc *reconciliation) persistMatchResults(ctx context.Context, run *models.ReconciliationRun, entries []models.MatchResult) (applied []models.Invoice, appliedAmount decimal.Decimal, err error) {
	rows := make([]models.MatchResult, 0, len(entries))
	for i := range entries {
		if !entries[i].ShouldPersist() {
			continue
		}

		entries[i].ID = rc.srv.idgenerator.Generate(models.MatchResultIDPrefix)
		entries[i].RunID = run.ID
		rows = append(rows, entries[i])
	}

	err = rc.srv.sqlRepo.Atomic(ctx, func(ctx context.Context, r repositories.SQLRepository) error {
		if txErr := r.GetMatchResultRepository().DeleteByRun(ctx, run.ID); txErr != nil {
			return txErr
		}

		if txErr := r.GetMatchResultRepository().BulkCreate(ctx, rows); txErr != nil {
			return txErr
		}

		for _, row := range rows {
			if row.Outcome != models.MatchOutcomeAutoApplied {
				continue
			}

			updated, txErr := r.GetInvoiceRepository().MarkPaid(ctx, models.InvoicePaymentIn{
				Number: row.InvoiceNumber,
				Amount: row.Amount.Decimal,
				PaidAt: row.TransactionAt,
				Origin: models.PaymentOriginReconciliation,
			})
			if txErr != nil {
				if errors.Is(txErr, common.ErrDataNotFound) {
					xlog.Warn(ctx, constants.LogPrefixReconciliation,
						xlog.String("operation", "skip auto-apply, title no longer open"),
						xlog.String("run_id", run.ID),
						xlog.String("invoice_number", row.InvoiceNumber))
					continue
				}
				return txErr
			}

			applied = append(applied, *updated)
			appliedAmount = appliedAmount.Add(row.Amount.Decimal)
		}

		return nil
	})
	if err != nil {
		return nil, decimal.Decimal{}, err
	}

	return applied, appliedAmount, nil
}

// writeRunReport uploads the per-line report straight to cloud storage and
// returns its object path.
func (rc *reconciliation) writeRunReport(ctx context.Context, run *models.ReconciliationRun, rows [][]string) (reportPath string, err error) {
	now := common.Now()
	gcsReportPayload := &models.CloudStoragePayload{
		Filename: fmt.Sprintf("%s.csv", run.ID),
		Path:     fmt.Sprintf("%s/%s/%04d/%02d", rc.srv.conf.App.Env, models.ReconciliationOutFolderName, now.Year(), now.Month()),
	}

	reportFile := rc.srv.cloudStorage.NewWriter(ctx, gcsReportPayload)
	defer func() {
		if closeErr := reportFile.Close(); err == nil {
			err = closeErr
		}
	}()

	reportWriter := csv.NewWriter(reportFile)

	if err = reportWriter.Write(constants.ReportCSVHeaders); err != nil {
		return "", fmt.Errorf("failed to write header to file: %w", err)
	}

	for _, row := range rows {
		if err = reportWriter.Write(row); err != nil {
			return "", fmt.Errorf("failed to write payload to file: %w", err)
		}
	}

	reportWriter.Flush()
	if err = reportWriter.Error(); err != nil {
		return "", err
	}

	return gcsReportPayload.GetFilePath(), nil
}

// failRun records the failure on the run row and hands the original error
// back to the consumer.
func (rc *reconciliation) failRun(ctx context.Context, run *models.ReconciliationRun, cause error) error {
	err := rc.srv.sqlRepo.GetReconciliationRunRepository().UpdateStatus(ctx, run.ID, models.RunStatusFailed, cause.Error())
	if err != nil {
		xlog.Warn(ctx, constants.LogPrefixReconciliation,
			xlog.String("operation", "unable to mark run as failed"),
			xlog.String("run_id", run.ID),
			xlog.Err(err))
	}

	return cause
}

// finishInvalidFile closes the run over an unusable upload. The message is
// acked, redelivering a broken file would only fail the same way.
func (rc *reconciliation) finishInvalidFile(ctx context.Context, run *models.ReconciliationRun, cause error) error {
	xlog.Warn(ctx, constants.LogPrefixReconciliation,
		xlog.String("operation", "statement file is not processable"),
		xlog.String("run_id", run.ID),
		xlog.String("file_name", run.FileName),
		xlog.Err(cause))

	err := rc.srv.sqlRepo.GetReconciliationRunRepository().UpdateResult(ctx, models.RunResultIn{
		ID:            run.ID,
		Status:        models.RunStatusInvalidFile,
		Format:        run.Format,
		FailureReason: cause.Error(),
	})
	if err != nil {
		return err
	}

	return nil
}

func parseErrorReportRow(parseErr models.ParseError) []string {
	return []string{
		fmt.Sprint(parseErr.Line),
		"", "", "", "", "", "", "", "",
		"parse_error",
		parseErr.Message,
	}
}
