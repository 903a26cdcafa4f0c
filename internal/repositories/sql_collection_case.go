package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/habitado/go-condo-billing/internal/common"
	"github.com/habitado/go-condo-billing/internal/models"
	"github.com/habitado/go-condo-billing/internal/monitoring"
)

type CollectionCaseRepository interface {
	ReplaceQueue(ctx context.Context, condoID string, cases []models.CollectionCase) (err error)
	GetList(ctx context.Context, opts models.CollectionFilterOptions) (result []models.CollectionCase, err error)
	CountAll(ctx context.Context, opts models.CollectionFilterOptions) (total int, err error)
	GetCandidates(ctx context.Context, condoID string) (result []models.CollectionCandidate, err error)
}

type collectionCaseRepository sqlRepo

var _ CollectionCaseRepository = (*collectionCaseRepository)(nil)

// ReplaceQueue swaps the ranked queue of a condo in one shot. Callers wrap it
// in Atomic so readers never observe a half-built queue.
func (ccr *collectionCaseRepository) ReplaceQueue(ctx context.Context, condoID string, cases []models.CollectionCase) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := ccr.r.extractTxWrite(ctx)

	if _, err = db.ExecContext(ctx, queryCollectionCaseDeleteByCondo, condoID); err != nil {
		return err
	}

	if len(cases) == 0 {
		return nil
	}

	valueStrings := []string{}
	valueArgs := []interface{}{}

	for _, req := range cases {
		valueStrings = append(valueStrings, "(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)")
		valueArgs = append(valueArgs, req.ID)
		valueArgs = append(valueArgs, req.UnitID)
		valueArgs = append(valueArgs, req.UnitLabel)
		valueArgs = append(valueArgs, req.OwnerName)
		valueArgs = append(valueArgs, req.CondoID)
		valueArgs = append(valueArgs, req.Priority)
		valueArgs = append(valueArgs, req.Rank)
		valueArgs = append(valueArgs, req.RiskScore)
		valueArgs = append(valueArgs, req.RiskBucket)
		valueArgs = append(valueArgs, req.OverdueAmount)
		valueArgs = append(valueArgs, req.OverdueCount)
		valueArgs = append(valueArgs, req.OldestDueDate)
		valueArgs = append(valueArgs, req.DaysOverdue)
		valueArgs = append(valueArgs, req.MatchConfidence)
		valueArgs = append(valueArgs, req.RecommendedAction)
		valueArgs = append(valueArgs, req.BuiltAt)
	}

	queryBulk := fmt.Sprintf(`INSERT INTO collection_cases ("id", "unitId", "unitLabel", "ownerName", "condoId", "priority", "rank",
		"riskScore", "riskBucket", "overdueAmount", "overdueCount", "oldestDueDate", "daysOverdue", "matchConfidence", "recommendedAction", "builtAt") VALUES %s`, strings.Join(valueStrings, ","))

	sqlStr := common.ReplaceSQL(queryBulk, "?")

	if _, err = db.ExecContext(ctx, sqlStr, valueArgs...); err != nil {
		return err
	}

	return
}

func (ccr *collectionCaseRepository) GetList(ctx context.Context, opts models.CollectionFilterOptions) (result []models.CollectionCase, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := ccr.r.extractTxRead(ctx)

	query, args, err := buildListCollectionCaseQuery(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return
	}

	defer rows.Close()
	for rows.Next() {
		var cc models.CollectionCase
		err = rows.Scan(
			&cc.ID,
			&cc.UnitID,
			&cc.UnitLabel,
			&cc.OwnerName,
			&cc.CondoID,
			&cc.Priority,
			&cc.Rank,
			&cc.RiskScore,
			&cc.RiskBucket,
			&cc.OverdueAmount,
			&cc.OverdueCount,
			&cc.OldestDueDate,
			&cc.DaysOverdue,
			&cc.MatchConfidence,
			&cc.RecommendedAction,
			&cc.BuiltAt,
		)
		if err != nil {
			return result, err
		}
		result = append(result, cc)
	}
	if err = rows.Err(); err != nil {
		return result, err
	}

	return result, nil
}

func (ccr *collectionCaseRepository) CountAll(ctx context.Context, opts models.CollectionFilterOptions) (total int, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := ccr.r.extractTxRead(ctx)

	query, args, err := buildCountCollectionCaseQuery(opts)
	if err != nil {
		return total, fmt.Errorf("failed to build query: %w", err)
	}

	if err = db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return
	}

	return
}

// GetCandidates aggregates the delinquent units of a condo: overdue exposure
// per unit joined with the latest risk score and the best still-open match
// suggestion touching the unit's invoices.
func (ccr *collectionCaseRepository) GetCandidates(ctx context.Context, condoID string) (result []models.CollectionCandidate, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := ccr.r.extractTxWrite(ctx)

	rows, err := db.QueryContext(ctx, queryCollectionCandidates, condoID)
	if err != nil {
		return
	}

	defer rows.Close()
	for rows.Next() {
		var cand models.CollectionCandidate
		err = rows.Scan(
			&cand.UnitID,
			&cand.CondoID,
			&cand.RiskScore,
			&cand.RiskBucket,
			&cand.OverdueAmount,
			&cand.OverdueCount,
			&cand.OldestDueDate,
			&cand.BestSuggestedConfidence,
		)
		if err != nil {
			return result, err
		}
		result = append(result, cand)
	}
	if err = rows.Err(); err != nil {
		return result, err
	}

	return result, nil
}
