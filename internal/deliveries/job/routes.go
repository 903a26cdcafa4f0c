package job

import (
	"context"
	"errors"
	"time"

	"github.com/habitado/go-condo-billing/internal/common"
	"github.com/habitado/go-condo-billing/internal/common/flag"
	"github.com/habitado/go-condo-billing/internal/common/log"
	"github.com/habitado/go-condo-billing/internal/common/log/ctxdata"
	"github.com/habitado/go-condo-billing/internal/config"
	v1invoice "github.com/habitado/go-condo-billing/internal/deliveries/job/v1/invoice"
	v1scoring "github.com/habitado/go-condo-billing/internal/deliveries/job/v1/scoring"
	"github.com/habitado/go-condo-billing/internal/services"

	"github.com/google/uuid"
)

type JobRoutes map[string]map[string]func(ctx context.Context, date time.Time, flag flag.Job) error

type Job struct {
	Routes JobRoutes
}

func New(cfg config.Config, srv *services.Services) *Job {
	v1group := "v1"

	v1routes := map[string]func(ctx context.Context, date time.Time, flag flag.Job) error{}
	for name, fn := range v1scoring.Routes(srv.Risk, srv.Collection) {
		v1routes[name] = fn
	}
	for name, fn := range v1invoice.Routes(srv.Invoice) {
		v1routes[name] = fn
	}

	jobRoutes := JobRoutes{
		v1group: v1routes,
		// add other version routes
	}

	return &Job{jobRoutes}
}

func (j *Job) Start(ctx context.Context, flag flag.Job) {
	if fn, ok := j.Routes[flag.Version][flag.JobName]; ok {
		var (
			runningDate time.Time
			err         error
		)
		ctx = ctxdata.Sets(ctx, ctxdata.SetCorrelationId(uuid.New().String()))

		defer func() {
			log.LogJob(ctx, flag.JobName, flag.Version, flag.Date, err)
		}()

		if flag.Date != "" {
			runningDate, err = common.ParseStringToDatetime(common.DateFormatYYYYMMDD, flag.Date)
			if err != nil {
				return
			}
		}
		if err = fn(ctx, runningDate, flag); err != nil {
			return
		}
	} else {
		log.LogJob(ctx, flag.JobName, flag.Version, flag.Date, errors.New("invalid version or job name"))
	}
}
