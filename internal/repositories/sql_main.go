package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/habitado/go-condo-billing/internal/common/cache"
	xlog "github.com/habitado/go-condo-billing/internal/common/log"
	"github.com/habitado/go-condo-billing/internal/config"
	"github.com/habitado/go-condo-billing/internal/models"
)

type sqlRepo struct {
	r *Repository
}

type Repository struct {
	dbWrite *sql.DB
	dbRead  *sql.DB
	config  config.Config
	common  sqlRepo

	ur  *unitRepository
	ir  *invoiceRepository
	rr  *reconciliationRunRepository
	mr  *matchResultRepository
	rsr *riskScoreRepository
	ccr *collectionCaseRepository

	cacheUnit cache.Client[models.Unit]
}

type SQLRepositoryOption func(*Repository)

// WithUnitCache swaps the in-process unit cache for a shared one, so api and
// consumer replicas see the same entries.
func WithUnitCache(c cache.Client[models.Unit]) SQLRepositoryOption {
	return func(r *Repository) {
		r.cacheUnit = c
	}
}

func NewSQLRepository(
	dbWrite *sql.DB,
	dbRead *sql.DB,
	cfg config.Config,
	opts ...SQLRepositoryOption,
) *Repository {
	rtx := &Repository{
		dbWrite: dbWrite,
		dbRead:  dbRead,
		config:  cfg,
	}
	rtx.common.r = rtx
	rtx.ur = (*unitRepository)(&rtx.common)
	rtx.ir = (*invoiceRepository)(&rtx.common)
	rtx.rr = (*reconciliationRunRepository)(&rtx.common)
	rtx.mr = (*matchResultRepository)(&rtx.common)
	rtx.rsr = (*riskScoreRepository)(&rtx.common)
	rtx.ccr = (*collectionCaseRepository)(&rtx.common)

	rtx.cacheUnit = cache.NewInMemoryClient[models.Unit]()

	for _, opt := range opts {
		opt(rtx)
	}

	return rtx
}

type SQLRepository interface {
	Atomic(ctx context.Context, steps func(ctx context.Context, r SQLRepository) error) error
	GetUnitRepository() UnitRepository
	GetInvoiceRepository() InvoiceRepository
	GetReconciliationRunRepository() ReconciliationRunRepository
	GetMatchResultRepository() MatchResultRepository
	GetRiskScoreRepository() RiskScoreRepository
	GetCollectionCaseRepository() CollectionCaseRepository
}

var _ SQLRepository = (*Repository)(nil)

func (r *Repository) Atomic(ctx context.Context, steps func(ctx context.Context, r SQLRepository) error) (err error) {
	tx, err := r.dbWrite.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	xlog.Info(ctx, "[DATABASE.TRANSACTION.BEGIN]")
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			err = fmt.Errorf("panic happened because: %v", p)
			xlog.Panic(ctx, "[DATABASE.TRANSACTION.PANIC]", xlog.Err(err))
		} else if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				err = fmt.Errorf("tx err: %v, rb err: %v", err, rbErr)
			}
			xlog.Warn(ctx, "[DATABASE.TRANSACTION.ROLLBACK]", xlog.Err(err))
		} else {
			if err = tx.Commit(); err != nil {
				if errors.Is(err, sql.ErrTxDone) {
					xlog.Warn(ctx, "[DATABASE.TRANSACTION.ALREADY_COMMITTED_OR_ROLLEDBACK]", xlog.Err(err))
					err = nil
				}
			}

			xlog.Info(ctx, "[DATABASE.TRANSACTION.COMMIT]")
		}
	}()
	ctx = injectTx(ctx, tx)
	err = steps(ctx, r)
	return
}

func (r *Repository) GetUnitRepository() UnitRepository {
	return r.ur
}

func (r *Repository) GetInvoiceRepository() InvoiceRepository {
	return r.ir
}

func (r *Repository) GetReconciliationRunRepository() ReconciliationRunRepository {
	return r.rr
}

func (r *Repository) GetMatchResultRepository() MatchResultRepository {
	return r.mr
}

func (r *Repository) GetRiskScoreRepository() RiskScoreRepository {
	return r.rsr
}

func (r *Repository) GetCollectionCaseRepository() CollectionCaseRepository {
	return r.ccr
}
