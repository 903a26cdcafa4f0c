package services

import (
	"context"

	"github.com/habitado/go-condo-billing/internal/models"
	"github.com/habitado/go-condo-billing/internal/monitoring"
)

type UnitService interface {
	Create(ctx context.Context, in models.CreateUnitIn) (out *models.Unit, err error)
	GetByID(ctx context.Context, id string) (result models.Unit, err error)
	GetList(ctx context.Context, opts models.UnitFilterOptions) (units []models.Unit, total int, err error)
}

type unit service

var _ UnitService = (*unit)(nil)

func (us *unit) Create(ctx context.Context, in models.CreateUnitIn) (out *models.Unit, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	if in.Label == "" {
		in.Label = models.BuildUnitLabel(in.Block, in.Number)
	}

	in.ID = us.srv.idgenerator.Generate(models.UnitIDPrefix)

	out, err = us.srv.sqlRepo.GetUnitRepository().Create(ctx, &in)
	if err != nil {
		err = checkDatabaseError(err)
		return
	}

	return out, nil
}

func (us *unit) GetByID(ctx context.Context, id string) (result models.Unit, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	found, err := us.srv.sqlRepo.GetUnitRepository().GetByID(ctx, id)
	if err != nil {
		err = checkDatabaseError(err, models.ErrKeyUnitNotFound)
		return
	}

	return *found, nil
}

func (us *unit) GetList(ctx context.Context, opts models.UnitFilterOptions) (units []models.Unit, total int, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	unitRepo := us.srv.sqlRepo.GetUnitRepository()

	units, err = unitRepo.GetList(ctx, opts)
	if err != nil {
		return units, total, err
	}

	if len(units) == 0 {
		return units, total, nil
	}

	total, err = unitRepo.CountAll(ctx, opts)
	if err != nil {
		return
	}

	return units, total, nil
}
