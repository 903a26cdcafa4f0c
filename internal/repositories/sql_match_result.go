package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/habitado/go-condo-billing/internal/common"
	"github.com/habitado/go-condo-billing/internal/models"
	"github.com/habitado/go-condo-billing/internal/monitoring"
)

type MatchResultRepository interface {
	BulkCreate(ctx context.Context, results []models.MatchResult) (err error)
	DeleteByRun(ctx context.Context, runID string) (err error)
	GetByID(ctx context.Context, id string) (*models.MatchResult, error)
	GetSuggestionsByRun(ctx context.Context, runID string) (result []models.MatchResult, err error)
	Decide(ctx context.Context, id string, outcome models.MatchOutcome, decidedBy string) (updated *models.MatchResult, err error)
}

type matchResultRepository sqlRepo

var _ MatchResultRepository = (*matchResultRepository)(nil)

func scanMatchResult(row interface{ Scan(...any) error }) (*models.MatchResult, error) {
	var mr models.MatchResult
	err := row.Scan(
		&mr.ID,
		&mr.RunID,
		&mr.Line,
		&mr.TransactionAt,
		&mr.Direction,
		&mr.Amount,
		&mr.Description,
		&mr.Reference,
		&mr.InvoiceNumber,
		&mr.Method,
		&mr.Confidence,
		&mr.Outcome,
		&mr.Alternates,
		&mr.Detail,
		&mr.DecidedBy,
		&mr.DecidedAt,
		&mr.CreatedAt,
		&mr.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &mr, nil
}

// BulkCreate inserts the persistable results of one run in a single
// statement. Callers are expected to have filtered with ShouldPersist.
func (mr *matchResultRepository) BulkCreate(ctx context.Context, results []models.MatchResult) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	if len(results) == 0 {
		return nil
	}

	db := mr.r.extractTxWrite(ctx)

	valueStrings := []string{}
	valueArgs := []interface{}{}

	for _, req := range results {
		valueStrings = append(valueStrings, "(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW(), NOW())")
		valueArgs = append(valueArgs, req.ID)
		valueArgs = append(valueArgs, req.RunID)
		valueArgs = append(valueArgs, req.Line)
		valueArgs = append(valueArgs, req.TransactionAt)
		valueArgs = append(valueArgs, req.Direction)
		valueArgs = append(valueArgs, req.Amount)
		valueArgs = append(valueArgs, req.Description)
		valueArgs = append(valueArgs, req.Reference)
		valueArgs = append(valueArgs, req.InvoiceNumber)
		valueArgs = append(valueArgs, req.Method)
		valueArgs = append(valueArgs, req.Confidence)
		valueArgs = append(valueArgs, req.Outcome)
		valueArgs = append(valueArgs, req.Alternates)
		valueArgs = append(valueArgs, req.Detail)
	}

	queryBulk := fmt.Sprintf(`INSERT INTO match_results ("id", "runId", "line", "transactionAt", "direction", "amount", "description",
		"reference", "invoiceNumber", "method", "confidence", "status", "alternates", "detail", "createdAt", "updatedAt") VALUES %s`, strings.Join(valueStrings, ","))

	sqlStr := common.ReplaceSQL(queryBulk, "?")

	if _, err = db.ExecContext(ctx, sqlStr, valueArgs...); err != nil {
		return err
	}

	return
}

// DeleteByRun clears the persisted results of a run before it is processed
// again, so a retried run replaces its rows instead of duplicating them.
func (mr *matchResultRepository) DeleteByRun(ctx context.Context, runID string) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := mr.r.extractTxWrite(ctx)

	_, err = db.ExecContext(ctx, queryMatchResultDeleteByRun, runID)
	return
}

func (mr *matchResultRepository) GetByID(ctx context.Context, id string) (result *models.MatchResult, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := mr.r.extractTxWrite(ctx)

	result, err = scanMatchResult(db.QueryRowContext(ctx, queryMatchResultGetByID, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, common.ErrDataNotFound
		}
		return nil, err
	}

	return result, nil
}

func (mr *matchResultRepository) GetSuggestionsByRun(ctx context.Context, runID string) (result []models.MatchResult, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := mr.r.extractTxRead(ctx)

	rows, err := db.QueryContext(ctx, queryMatchResultGetSuggestionsByRun, runID)
	if err != nil {
		return
	}

	defer rows.Close()
	for rows.Next() {
		res, scanErr := scanMatchResult(rows)
		if scanErr != nil {
			return result, scanErr
		}
		result = append(result, *res)
	}
	if err = rows.Err(); err != nil {
		return result, err
	}

	return result, nil
}

// Decide flips a pending suggestion to its terminal outcome. Rows that were
// already decided are left alone and the call returns common.ErrDataNotFound;
// the service reloads the row to tell decided from missing.
func (mr *matchResultRepository) Decide(ctx context.Context, id string, outcome models.MatchOutcome, decidedBy string) (updated *models.MatchResult, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := mr.r.extractTxWrite(ctx)

	updated, err = scanMatchResult(db.QueryRowContext(ctx, queryMatchResultDecide, id, outcome, decidedBy))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, common.ErrDataNotFound
		}
		return nil, err
	}

	return updated, nil
}
