package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/habitado/go-condo-billing/internal/common"
	"github.com/habitado/go-condo-billing/internal/common/cache"
	"github.com/habitado/go-condo-billing/internal/models"
	"github.com/habitado/go-condo-billing/internal/monitoring"

	"github.com/lib/pq"
)

type UnitRepository interface {
	Create(ctx context.Context, in *models.CreateUnitIn) (created *models.Unit, err error)
	GetByID(ctx context.Context, id string) (*models.Unit, error)
	GetByIDs(ctx context.Context, ids []string) (map[string]models.Unit, error)
	GetCachedUnit(ctx context.Context, id string) (models.Unit, error)
	GetList(ctx context.Context, opts models.UnitFilterOptions) (result []models.Unit, err error)
	CountAll(ctx context.Context, opts models.UnitFilterOptions) (total int, err error)
	GetActiveUnitIDs(ctx context.Context, condoID string) (ids []string, err error)
	GetActiveCondoIDs(ctx context.Context) (ids []string, err error)
}

type unitRepository sqlRepo

var _ UnitRepository = (*unitRepository)(nil)

func (ur *unitRepository) Create(ctx context.Context, in *models.CreateUnitIn) (created *models.Unit, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := ur.r.extractTxWrite(ctx)

	args, err := common.GetFieldValues(*in)
	if err != nil {
		return
	}

	var entity models.Unit
	err = db.QueryRowContext(ctx, queryUnitCreate, args...).Scan(
		&entity.ID,
		&entity.Active,
		&entity.CreatedAt,
		&entity.UpdatedAt,
	)
	if err != nil {
		return
	}

	entity.CondoID = in.CondoID
	entity.Block = in.Block
	entity.Number = in.Number
	entity.Label = in.Label
	entity.OwnerName = in.OwnerName
	entity.OwnerDocument = in.OwnerDocument
	entity.Email = in.Email
	entity.Fraction = in.Fraction
	entity.MonthlyFee = in.MonthlyFee
	created = &entity

	return
}

func (ur *unitRepository) GetByID(ctx context.Context, id string) (result *models.Unit, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := ur.r.extractTxRead(ctx)

	result = &models.Unit{}
	err = db.QueryRowContext(ctx, queryUnitGetByID, id).Scan(
		&result.ID,
		&result.CondoID,
		&result.Block,
		&result.Number,
		&result.Label,
		&result.OwnerName,
		&result.OwnerDocument,
		&result.Email,
		&result.Fraction,
		&result.MonthlyFee,
		&result.Active,
		&result.CreatedAt,
		&result.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, common.ErrDataNotFound
		}
		return nil, err
	}

	return result, nil
}

// GetByIDs resolves many units in one round trip, keyed by id. Units missing
// from the result were not found; the caller decides whether that is an error.
func (ur *unitRepository) GetByIDs(ctx context.Context, ids []string) (result map[string]models.Unit, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	result = make(map[string]models.Unit, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	db := ur.r.extractTxRead(ctx)

	rows, err := db.QueryContext(ctx, queryUnitGetByIDs, pq.Array(ids))
	if err != nil {
		return nil, err
	}

	defer rows.Close()
	for rows.Next() {
		var unit models.Unit
		err = rows.Scan(
			&unit.ID,
			&unit.CondoID,
			&unit.Block,
			&unit.Number,
			&unit.Label,
			&unit.OwnerName,
			&unit.OwnerDocument,
			&unit.Email,
			&unit.Fraction,
			&unit.MonthlyFee,
			&unit.Active,
			&unit.CreatedAt,
			&unit.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		result[unit.ID] = unit
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

// GetCachedUnit resolves a unit through the unit cache (in-process by
// default, redis when wired via WithUnitCache). Reconciliation runs hit the
// same handful of units once per matched invoice, so a short TTL removes
// almost all of those lookups.
func (ur *unitRepository) GetCachedUnit(ctx context.Context, id string) (models.Unit, error) {
	return ur.r.cacheUnit.GetOrSet(ctx, cache.GetOrSetOpts[models.Unit]{
		Key: id,
		TTL: 1 * time.Hour,
		Callback: func() (models.Unit, error) {
			res, err := ur.GetByID(ctx, id)
			if err != nil {
				if errors.Is(err, common.ErrDataNotFound) {
					return models.Unit{}, fmt.Errorf("%w: %s", common.ErrUnitNotFound, id)
				}

				return models.Unit{}, err
			}

			return *res, nil
		},
	})
}

func (ur *unitRepository) GetList(ctx context.Context, opts models.UnitFilterOptions) (result []models.Unit, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := ur.r.extractTxRead(ctx)

	query, args, err := buildListUnitQuery(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return
	}

	defer rows.Close()
	for rows.Next() {
		var unit models.Unit
		err = rows.Scan(
			&unit.ID,
			&unit.CondoID,
			&unit.Block,
			&unit.Number,
			&unit.Label,
			&unit.OwnerName,
			&unit.OwnerDocument,
			&unit.Email,
			&unit.Fraction,
			&unit.MonthlyFee,
			&unit.Active,
			&unit.CreatedAt,
			&unit.UpdatedAt,
		)
		if err != nil {
			return result, err
		}
		result = append(result, unit)
	}
	if err = rows.Err(); err != nil {
		return result, err
	}

	return result, nil
}

func (ur *unitRepository) CountAll(ctx context.Context, opts models.UnitFilterOptions) (total int, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := ur.r.extractTxRead(ctx)

	query, args, err := buildCountUnitQuery(opts)
	if err != nil {
		return total, fmt.Errorf("failed to build query: %w", err)
	}

	if err = db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return
	}

	return
}

// GetActiveUnitIDs feeds the nightly risk rebuild. Empty condoID means every
// condo the service bills.
func (ur *unitRepository) GetActiveUnitIDs(ctx context.Context, condoID string) (ids []string, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := ur.r.extractTxRead(ctx)

	query, args, err := buildActiveUnitIDsQuery(condoID)
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return
	}

	defer rows.Close()
	for rows.Next() {
		var id string
		if err = rows.Scan(&id); err != nil {
			return ids, err
		}
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		return ids, err
	}

	return ids, nil
}

// GetActiveCondoIDs lists every condo with at least one active unit, for the
// jobs that walk all tenants.
func (ur *unitRepository) GetActiveCondoIDs(ctx context.Context) (ids []string, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := ur.r.extractTxRead(ctx)

	rows, err := db.QueryContext(ctx, queryUnitGetActiveCondoIDs)
	if err != nil {
		return
	}

	defer rows.Close()
	for rows.Next() {
		var id string
		if err = rows.Scan(&id); err != nil {
			return ids, err
		}
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		return ids, err
	}

	return ids, nil
}
