package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/habitado/go-condo-billing/internal/common"
	"github.com/habitado/go-condo-billing/internal/models"
	"github.com/habitado/go-condo-billing/internal/monitoring"
)

type ReconciliationRunRepository interface {
	Create(ctx context.Context, in *models.CreateReconciliationRunIn) (run *models.ReconciliationRun, err error)
	GetByID(ctx context.Context, id string) (*models.ReconciliationRun, error)
	UpdateStatus(ctx context.Context, id string, status models.RunStatus, failureReason string) error
	UpdateResult(ctx context.Context, in models.RunResultIn) error
	GetList(ctx context.Context, opts models.RunFilterOptions) (result []models.ReconciliationRun, err error)
	CountAll(ctx context.Context, opts models.RunFilterOptions) (total int, err error)
	ExistsByFileName(ctx context.Context, condoID, fileName string) (exists bool, err error)
}

type reconciliationRunRepository sqlRepo

var _ ReconciliationRunRepository = (*reconciliationRunRepository)(nil)

func scanReconciliationRun(row interface{ Scan(...any) error }) (*models.ReconciliationRun, error) {
	var run models.ReconciliationRun
	err := row.Scan(
		&run.ID,
		&run.CondoID,
		&run.BankAccountID,
		&run.Kind,
		&run.Format,
		&run.FileName,
		&run.FilePath,
		&run.ReportPath,
		&run.Status,
		&run.TransactionCount,
		&run.MatchedCount,
		&run.SuggestedCount,
		&run.UnmatchedCount,
		&run.AppliedAmount,
		&run.FailureReason,
		&run.RequestedBy,
		&run.CreatedAt,
		&run.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &run, nil
}

func (rr *reconciliationRunRepository) Create(ctx context.Context, in *models.CreateReconciliationRunIn) (run *models.ReconciliationRun, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := rr.r.extractTxWrite(ctx)

	args, err := common.GetFieldValues(*in)
	if err != nil {
		return
	}

	run = &models.ReconciliationRun{
		ID:            in.ID,
		CondoID:       in.CondoID,
		BankAccountID: in.BankAccountID,
		Kind:          in.Kind,
		Format:        in.Format,
		FileName:      in.FileName,
		FilePath:      in.FilePath,
		Status:        in.Status,
		RequestedBy:   in.RequestedBy,
	}

	err = db.QueryRowContext(ctx, queryRunCreate, args...).Scan(
		&run.ID,
		&run.Status,
		&run.CreatedAt,
		&run.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return run, nil
}

func (rr *reconciliationRunRepository) GetByID(ctx context.Context, id string) (result *models.ReconciliationRun, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := rr.r.extractTxWrite(ctx)

	result, err = scanReconciliationRun(db.QueryRowContext(ctx, queryRunGetByID, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, common.ErrDataNotFound
		}
		return nil, err
	}

	return result, nil
}

func (rr *reconciliationRunRepository) UpdateStatus(ctx context.Context, id string, status models.RunStatus, failureReason string) error {
	var err error
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := rr.r.extractTxWrite(ctx)

	result, err := db.ExecContext(ctx, queryRunUpdateStatus, id, status, failureReason)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return common.ErrNoRowsAffected
	}

	return nil
}

func (rr *reconciliationRunRepository) UpdateResult(ctx context.Context, in models.RunResultIn) error {
	var err error
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := rr.r.extractTxWrite(ctx)

	args := []any{
		in.ID,
		in.Status,
		in.Format,
		in.ReportPath,
		in.TransactionCount,
		in.MatchedCount,
		in.SuggestedCount,
		in.UnmatchedCount,
		in.AppliedAmount,
		in.FailureReason,
	}

	result, err := db.ExecContext(ctx, queryRunUpdateResult, args...)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return common.ErrNoRowsAffected
	}

	return nil
}

func (rr *reconciliationRunRepository) GetList(ctx context.Context, opts models.RunFilterOptions) (result []models.ReconciliationRun, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := rr.r.extractTxRead(ctx)

	query, args, err := buildListRunQuery(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return
	}

	defer rows.Close()
	for rows.Next() {
		run, scanErr := scanReconciliationRun(rows)
		if scanErr != nil {
			return result, scanErr
		}
		result = append(result, *run)
	}
	if err = rows.Err(); err != nil {
		return result, err
	}

	return result, nil
}

func (rr *reconciliationRunRepository) CountAll(ctx context.Context, opts models.RunFilterOptions) (total int, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := rr.r.extractTxRead(ctx)

	query, args, err := buildCountRunQuery(opts)
	if err != nil {
		return total, fmt.Errorf("failed to build query: %w", err)
	}

	if err = db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return
	}

	return
}

// ExistsByFileName guards against the same bank file being uploaded twice
// for a condo.
func (rr *reconciliationRunRepository) ExistsByFileName(ctx context.Context, condoID, fileName string) (exists bool, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := rr.r.extractTxWrite(ctx)

	var one int
	err = db.QueryRowContext(ctx, queryRunExistsByFileName, condoID, fileName).Scan(&one)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, err
	}

	return true, nil
}
