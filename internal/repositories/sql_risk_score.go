package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/habitado/go-condo-billing/internal/common"
	"github.com/habitado/go-condo-billing/internal/models"
	"github.com/habitado/go-condo-billing/internal/monitoring"
)

type RiskScoreRepository interface {
	Create(ctx context.Context, score *models.RiskScore) (created *models.RiskScore, err error)
	GetLatestByUnit(ctx context.Context, unitID string) (*models.RiskScore, error)
	GetList(ctx context.Context, opts models.RiskFilterOptions) (result []models.RiskScore, err error)
	CountAll(ctx context.Context, opts models.RiskFilterOptions) (total int, err error)
}

type riskScoreRepository sqlRepo

var _ RiskScoreRepository = (*riskScoreRepository)(nil)

func scanRiskScore(row interface{ Scan(...any) error }) (*models.RiskScore, error) {
	var rs models.RiskScore
	err := row.Scan(
		&rs.ID,
		&rs.UnitID,
		&rs.CondoID,
		&rs.Score,
		&rs.Bucket,
		&rs.RecommendedAction,
		&rs.Factors,
		&rs.WindowMonths,
		&rs.ComputedAt,
	)
	if err != nil {
		return nil, err
	}

	return &rs, nil
}

func (rsr *riskScoreRepository) Create(ctx context.Context, score *models.RiskScore) (created *models.RiskScore, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := rsr.r.extractTxWrite(ctx)

	args := []any{
		score.ID,
		score.UnitID,
		score.CondoID,
		score.Score,
		score.Bucket,
		score.RecommendedAction,
		score.Factors,
		score.WindowMonths,
	}

	err = db.QueryRowContext(ctx, queryRiskScoreCreate, args...).Scan(
		&score.ID,
		&score.ComputedAt,
	)
	if err != nil {
		return
	}

	created = score

	return
}

// GetLatestByUnit returns the current score of a unit: the most recently
// computed row.
func (rsr *riskScoreRepository) GetLatestByUnit(ctx context.Context, unitID string) (result *models.RiskScore, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := rsr.r.extractTxWrite(ctx)

	result, err = scanRiskScore(db.QueryRowContext(ctx, queryRiskScoreGetLatestByUnit, unitID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, common.ErrDataNotFound
		}
		return nil, err
	}

	return result, nil
}

// GetList pages over the latest score per unit, not the full history.
func (rsr *riskScoreRepository) GetList(ctx context.Context, opts models.RiskFilterOptions) (result []models.RiskScore, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := rsr.r.extractTxRead(ctx)

	query, args, err := buildListRiskScoreQuery(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return
	}

	defer rows.Close()
	for rows.Next() {
		score, scanErr := scanRiskScore(rows)
		if scanErr != nil {
			return result, scanErr
		}
		result = append(result, *score)
	}
	if err = rows.Err(); err != nil {
		return result, err
	}

	return result, nil
}

func (rsr *riskScoreRepository) CountAll(ctx context.Context, opts models.RiskFilterOptions) (total int, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := rsr.r.extractTxRead(ctx)

	query, args, err := buildCountRiskScoreQuery(opts)
	if err != nil {
		return total, fmt.Errorf("failed to build query: %w", err)
	}

	if err = db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return
	}

	return
}
