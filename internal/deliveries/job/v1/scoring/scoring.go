package v1scoring

import (
	"context"
	"time"

	"github.com/habitado/go-condo-billing/internal/common/flag"
	"github.com/habitado/go-condo-billing/internal/services"

	xlog "github.com/habitado/go-condo-billing/internal/common/log"
)

type scoringHandler struct {
	riskSrv       services.RiskService
	collectionSrv services.CollectionService
}

func Routes(rs services.RiskService, cs services.CollectionService) map[string]func(ctx context.Context, date time.Time, flag flag.Job) error {
	handler := scoringHandler{
		riskSrv:       rs,
		collectionSrv: cs,
	}
	return map[string]func(ctx context.Context, date time.Time, flag flag.Job) error{
		"RebuildRiskScores":      handler.RebuildRiskScores,
		"RebuildCollectionQueue": handler.RebuildCollectionQueue,
		// add more job here
	}
}

// RebuildRiskScores recomputes the persisted score of every active unit.
// Scheduled nightly so the collection queue rebuild sees fresh scores.
func (sh *scoringHandler) RebuildRiskScores(ctx context.Context, date time.Time, flag flag.Job) error {
	rebuilt, err := sh.riskSrv.RebuildAll(ctx, "")
	if err != nil {
		return err
	}
	xlog.Info(ctx, "RebuildRiskScores", xlog.Int("rebuilt", rebuilt))

	return nil
}

func (sh *scoringHandler) RebuildCollectionQueue(ctx context.Context, date time.Time, flag flag.Job) error {
	queued, err := sh.collectionSrv.RebuildAllQueues(ctx)
	if err != nil {
		return err
	}
	xlog.Info(ctx, "RebuildCollectionQueue", xlog.Int("queued", queued))

	return nil
}
