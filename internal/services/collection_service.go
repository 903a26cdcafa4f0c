package services

import (
	"context"

	"github.com/habitado/go-condo-billing/internal/common"
	"github.com/habitado/go-condo-billing/internal/common/constants"
	xlog "github.com/habitado/go-condo-billing/internal/common/log"
	"github.com/habitado/go-condo-billing/internal/models"
	"github.com/habitado/go-condo-billing/internal/monitoring"
	"github.com/habitado/go-condo-billing/internal/repositories"
	collections "github.com/habitado/go-condo-billing/internal/services/collection"
)

type CollectionService interface {
	GetQueue(ctx context.Context, opts models.CollectionFilterOptions) (cases []models.CollectionCase, total int, err error)
	RebuildQueue(ctx context.Context, condoID string) (queued int, err error)
	RebuildAllQueues(ctx context.Context) (queued int, err error)
}

type collection service

var _ CollectionService = (*collection)(nil)

func (cl *collection) GetQueue(ctx context.Context, opts models.CollectionFilterOptions) (cases []models.CollectionCase, total int, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	cases, err = cl.srv.sqlRepo.GetCollectionCaseRepository().GetList(ctx, opts)
	if err != nil {
		err = checkDatabaseError(err)
		return
	}

	if len(cases) == 0 {
		return cases, 0, nil
	}

	total, err = cl.srv.sqlRepo.GetCollectionCaseRepository().CountAll(ctx, opts)
	if err != nil {
		err = checkDatabaseError(err)
		return
	}

	return cases, total, nil
}

// RebuildQueue replaces one condo's collection queue from the current
// delinquency snapshot. An empty snapshot still replaces: units that settled
// drop off the queue.
func (cl *collection) RebuildQueue(ctx context.Context, condoID string) (queued int, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	if condoID == "" {
		err = models.GetErrMap(models.ErrKeyCondoIDRequired)
		return
	}

	candidates, err := cl.srv.sqlRepo.GetCollectionCaseRepository().GetCandidates(ctx, condoID)
	if err != nil {
		err = checkDatabaseError(err)
		return
	}

	prioritizer := collections.NewPrioritizer(cl.srv.conf.Collection.DaysOverdueCap, cl.srv.conf.Collection.QueueLimit)
	queue := prioritizer.Build(candidates, common.Now())

	unitIDs := make([]string, 0, len(queue))
	for i := range queue {
		unitIDs = append(unitIDs, queue[i].UnitID)
	}

	units, err := cl.srv.sqlRepo.GetUnitRepository().GetByIDs(ctx, unitIDs)
	if err != nil {
		err = checkDatabaseError(err)
		return
	}

	for i := range queue {
		queue[i].ID = cl.srv.idgenerator.Generate(models.CollectionCaseIDPrefix)

		unit, found := units[queue[i].UnitID]
		if !found {
			xlog.Warn(ctx, constants.LogPrefixCollectionQueue,
				xlog.String("operation", "queue entry without unit details"),
				xlog.String("unit_id", queue[i].UnitID))
			continue
		}

		queue[i].UnitLabel = unit.Label
		queue[i].OwnerName = unit.OwnerName
	}

	err = cl.srv.sqlRepo.Atomic(ctx, func(ctx context.Context, r repositories.SQLRepository) error {
		return r.GetCollectionCaseRepository().ReplaceQueue(ctx, condoID, queue)
	})
	if err != nil {
		err = checkDatabaseError(err)
		return
	}

	xlog.Info(ctx, constants.LogPrefixCollectionQueue,
		xlog.String("operation", "queue rebuilt"),
		xlog.String("condo_id", condoID),
		xlog.Int("candidates", len(candidates)),
		xlog.Int("queued", len(queue)))

	return len(queue), nil
}

// RebuildAllQueues rebuilds every condo's queue, for the nightly job. A condo
// that fails is logged and skipped; the job fails only when no queue could be
// rebuilt at all.
func (cl *collection) RebuildAllQueues(ctx context.Context) (queued int, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	condoIDs, err := cl.srv.sqlRepo.GetUnitRepository().GetActiveCondoIDs(ctx)
	if err != nil {
		return 0, err
	}

	var (
		lastErr error
		rebuilt int
	)
	for _, condoID := range condoIDs {
		n, rebuildErr := cl.RebuildQueue(ctx, condoID)
		if rebuildErr != nil {
			lastErr = rebuildErr
			xlog.Warn(ctx, constants.LogPrefixCollectionQueue,
				xlog.String("operation", "skip condo in queue rebuild"),
				xlog.String("condo_id", condoID),
				xlog.Err(rebuildErr))
			continue
		}

		rebuilt++
		queued += n
	}

	if rebuilt == 0 && lastErr != nil {
		return 0, lastErr
	}

	xlog.Info(ctx, constants.LogPrefixCollectionQueue,
		xlog.String("operation", "all queues rebuilt"),
		xlog.Int("condos", rebuilt),
		xlog.Int("queued", queued))

	return queued, nil
}
