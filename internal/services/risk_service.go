package services

import (
	"context"
	"encoding/json"

	"github.com/habitado/go-condo-billing/internal/common"
	"github.com/habitado/go-condo-billing/internal/common/constants"
	"github.com/habitado/go-condo-billing/internal/common/flag"
	xlog "github.com/habitado/go-condo-billing/internal/common/log"
	"github.com/habitado/go-condo-billing/internal/models"
	"github.com/habitado/go-condo-billing/internal/monitoring"
	riskengine "github.com/habitado/go-condo-billing/internal/services/risk"
)

type RiskService interface {
	GetUnitRisk(ctx context.Context, unitID string) (*models.RiskScore, error)
	GetList(ctx context.Context, opts models.RiskFilterOptions) (scores []models.RiskScore, total int, err error)
	RebuildAll(ctx context.Context, condoID string) (rebuilt int, err error)
}

type risk service

var _ RiskService = (*risk)(nil)

// GetUnitRisk scores one unit on demand. Scores are cached and recomputed
// after the TTL; only the nightly rebuild persists rows.
func (rs *risk) GetUnitRisk(ctx context.Context, unitID string) (score *models.RiskScore, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	cacheKey := getCacheKeyRiskScore(unitID)
	if cached, cacheErr := rs.srv.cacheRepo.Get(ctx, cacheKey); cacheErr == nil && cached != "" {
		var cachedScore models.RiskScore
		if unmarshalErr := json.Unmarshal([]byte(cached), &cachedScore); unmarshalErr == nil {
			return &cachedScore, nil
		}

		xlog.Warn(ctx, constants.LogPrefixRiskScoring,
			xlog.String("operation", "drop unreadable cached score"),
			xlog.String("unit_id", unitID))
	}

	unit, err := rs.srv.sqlRepo.GetUnitRepository().GetCachedUnit(ctx, unitID)
	if err != nil {
		err = checkDatabaseError(err, models.ErrKeyUnitNotFound)
		return
	}

	scorer, err := rs.newScorer(ctx)
	if err != nil {
		return
	}

	computed, err := rs.scoreUnit(ctx, scorer, unit)
	if err != nil {
		err = checkDatabaseError(err)
		return
	}

	rs.cacheScore(ctx, *computed)

	return computed, nil
}

func (rs *risk) GetList(ctx context.Context, opts models.RiskFilterOptions) (scores []models.RiskScore, total int, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	scores, err = rs.srv.sqlRepo.GetRiskScoreRepository().GetList(ctx, opts)
	if err != nil {
		err = checkDatabaseError(err)
		return
	}

	if len(scores) == 0 {
		return scores, 0, nil
	}

	total, err = rs.srv.sqlRepo.GetRiskScoreRepository().CountAll(ctx, opts)
	if err != nil {
		err = checkDatabaseError(err)
		return
	}

	return scores, total, nil
}

// RebuildAll recomputes and persists the score of every active unit, all
// condos when condoID is empty. One broken unit does not stop the batch; the
// batch fails only when nothing could be scored at all.
func (rs *risk) RebuildAll(ctx context.Context, condoID string) (rebuilt int, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	unitIDs, err := rs.srv.sqlRepo.GetUnitRepository().GetActiveUnitIDs(ctx, condoID)
	if err != nil {
		return 0, err
	}

	xlog.Info(ctx, constants.LogPrefixRiskScoring,
		xlog.String("operation", "start risk score rebuild"),
		xlog.String("condo_id", condoID),
		xlog.Int("units", len(unitIDs)))

	scorer, err := rs.newScorer(ctx)
	if err != nil {
		return 0, err
	}

	var lastErr error
	for _, unitID := range unitIDs {
		if err := rs.rebuildUnit(ctx, scorer, unitID); err != nil {
			lastErr = err
			xlog.Warn(ctx, constants.LogPrefixRiskScoring,
				xlog.String("operation", "skip unit in rebuild"),
				xlog.String("unit_id", unitID),
				xlog.Err(err))
			continue
		}

		rebuilt++
	}

	if rebuilt == 0 && lastErr != nil {
		return 0, lastErr
	}

	rs.srv.metrics.GetReconciliationPrometheus().RecordRiskRebuild()

	xlog.Info(ctx, constants.LogPrefixRiskScoring,
		xlog.String("operation", "finish risk score rebuild"),
		xlog.String("condo_id", condoID),
		xlog.Int("rebuilt", rebuilt),
		xlog.Int("skipped", len(unitIDs)-rebuilt))

	return rebuilt, nil
}

func (rs *risk) rebuildUnit(ctx context.Context, scorer *riskengine.Scorer, unitID string) error {
	unit, err := rs.srv.sqlRepo.GetUnitRepository().GetCachedUnit(ctx, unitID)
	if err != nil {
		return err
	}

	score, err := rs.scoreUnit(ctx, scorer, unit)
	if err != nil {
		return err
	}

	score.ID = rs.srv.idgenerator.Generate(models.RiskScoreIDPrefix)
	created, err := rs.srv.sqlRepo.GetRiskScoreRepository().Create(ctx, score)
	if err != nil {
		return err
	}

	rs.cacheScore(ctx, *created)

	return nil
}

func (rs *risk) scoreUnit(ctx context.Context, scorer *riskengine.Scorer, unit models.Unit) (*models.RiskScore, error) {
	now := common.Now()
	since := now.AddDate(0, -scorer.WindowMonths(), 0)

	history, err := rs.srv.sqlRepo.GetInvoiceRepository().GetHistoryByUnit(ctx, unit.ID, since)
	if err != nil {
		return nil, err
	}

	score := scorer.Score(riskengine.Input{
		UnitID:     unit.ID,
		CondoID:    unit.CondoID,
		MonthlyFee: unit.MonthlyFee.Decimal,
		History:    history,
		AsOf:       now,
	})

	return &score, nil
}

func (rs *risk) newScorer(ctx context.Context) (*riskengine.Scorer, error) {
	return riskengine.NewScorer(rs.modelWeights(ctx), rs.srv.conf.RiskScoring.WindowMonths)
}

// modelWeights reads the per-environment weight override from the feature
// flag. Anything off, missing or invalid falls back to the defaults.
func (rs *risk) modelWeights(ctx context.Context) riskengine.Weights {
	key := rs.srv.conf.FeatureFlagKeyLookup.RiskModelWeights

	variant, err := flag.GetVariant[riskengine.Weights](rs.srv.flag, key)
	if err != nil {
		xlog.Warn(ctx, constants.LogPrefixRiskScoring,
			xlog.String("operation", "fall back to default model weights"),
			xlog.Err(err))
		return riskengine.DefaultWeights()
	}
	if !variant.Enabled {
		return riskengine.DefaultWeights()
	}

	if err := variant.Value.Validate(); err != nil {
		xlog.Warn(ctx, constants.LogPrefixRiskScoring,
			xlog.String("operation", "fall back to default model weights"),
			xlog.Err(err))
		return riskengine.DefaultWeights()
	}

	return variant.Value
}

func (rs *risk) cacheScore(ctx context.Context, score models.RiskScore) {
	payload, err := json.Marshal(score)
	if err != nil {
		return
	}

	err = rs.srv.cacheRepo.Set(ctx, getCacheKeyRiskScore(score.UnitID), string(payload), rs.srv.conf.RiskScoring.CacheTTL)
	if err != nil {
		xlog.Warn(ctx, constants.LogPrefixRiskScoring,
			xlog.String("operation", "unable to cache score"),
			xlog.String("unit_id", score.UnitID),
			xlog.Err(err))
	}
}
