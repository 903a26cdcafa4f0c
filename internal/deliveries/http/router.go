package http

import (
	"context"
	"fmt"
	nethttp "net/http"
	"time"

	"github.com/habitado/go-condo-billing/internal/common/graceful"
	commonhttp "github.com/habitado/go-condo-billing/internal/common/http"
	"github.com/habitado/go-condo-billing/internal/common/http/middleware"
	xlog "github.com/habitado/go-condo-billing/internal/common/log"
	"github.com/habitado/go-condo-billing/internal/config"
	"github.com/habitado/go-condo-billing/internal/deliveries/http/health"
	"github.com/habitado/go-condo-billing/internal/repositories"
	"github.com/habitado/go-condo-billing/internal/services"

	v1collection "github.com/habitado/go-condo-billing/internal/deliveries/http/v1/collection"
	v1invoice "github.com/habitado/go-condo-billing/internal/deliveries/http/v1/invoice"
	v1reconciliation "github.com/habitado/go-condo-billing/internal/deliveries/http/v1/reconciliation"
	v1riskscore "github.com/habitado/go-condo-billing/internal/deliveries/http/v1/riskscore"
	v1unit "github.com/habitado/go-condo-billing/internal/deliveries/http/v1/unit"

	"github.com/habitado/go-condo-billing/internal/common/log/ctxdata"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo-contrib/pprof"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	echoSwagger "github.com/swaggo/echo-swagger"

	// for swagger docs
	_ "github.com/habitado/go-condo-billing/docs"
)

type svc struct {
	e               *echo.Echo
	addr            string
	gracefulTimeout time.Duration
}

var _ graceful.ProcessStartStopper = (*svc)(nil)

func (s *svc) Start() graceful.ProcessStarter {
	return func() error {
		return s.e.Start(s.addr)
	}
}

func (s *svc) Stop() graceful.ProcessStopper {
	return func(ctx context.Context) error {
		err := s.e.Shutdown(ctx)

		if err != nil {
			xlog.Errorf(ctx, "[SHUTDOWN] HTTP server error: %v", err)
		} else {
			xlog.Info(ctx, "[SHUTDOWN] HTTP server stopped successfully")
		}

		return err
	}
}

// @title GO CONDO BILLING API DOCUMENTATION
// @version 1.0
// @description This is the condominium billing and reconciliation api docs.
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:9567
// @BasePath /api
// @schemes http
func NewHTTPServer(
	ctx context.Context,
	conf config.Config,
	nr *newrelic.Application,
	cacheRepo repositories.CacheRepository,
	unitService services.UnitService,
	invoiceService services.InvoiceService,
	reconciliationService services.ReconciliationService,
	riskService services.RiskService,
	collectionService services.CollectionService,
	dlqProcessorService services.DLQProcessorService,
) *svc {
	app := echo.New()

	svc := &svc{
		e:               app,
		addr:            fmt.Sprintf(":%d", conf.App.HTTPPort),
		gracefulTimeout: conf.App.GracefulTimeout,
	}

	m := middleware.NewMiddleware(conf, cacheRepo, dlqProcessorService)
	// options middleware
	app.Pre(echomiddleware.RemoveTrailingSlash())
	app.Use(echomiddleware.Recover())
	app.Use(echomiddleware.RequestID())
	app.Use(m.Context())
	app.Use(m.Logger())

	if nr != nil {
		app.Use(nrecho.Middleware(nr))

		app.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error {
				txn := newrelic.FromContext(c.Request().Context())
				if txn != nil {
					txn.AddAttribute("x-correlation-id", ctxdata.GetCorrelationId(c.Request().Context()))
				}

				return next(c)
			}
		})
	}

	// pprof
	// Endpoint debug/pprof/
	env := config.StringToEnvironment(conf.App.Env)
	if env != config.PROD_ENV {
		pprof.Register(app)
	}

	// prometheus metrics
	app.Use(echoprometheus.NewMiddleware(conf.App.Name))
	app.GET("/metrics", echoprometheus.NewHandler())

	// swagger
	app.GET("/swagger/*", echoSwagger.WrapHandler)

	// apiGroup
	apiGroup := app.Group("/api")

	// health check
	health.New(apiGroup)

	// v1Group
	v1Group := apiGroup.Group("/v1")
	// v1Group middleware
	v1Group.Use(m.InternalAuth)
	// v1Group register api
	v1unit.New(v1Group, unitService, riskService, m)
	v1invoice.New(v1Group, invoiceService, m)
	v1reconciliation.New(v1Group, reconciliationService, m)
	v1riskscore.New(v1Group, riskService)
	v1collection.New(v1Group, collectionService)

	// prepare an endpoint for 'Not Found'.
	app.Any("*", func(c echo.Context) error {
		errorMessage := fmt.Errorf("route '%s' does not exist in this API", c.Request().URL)
		return commonhttp.RestErrorResponse(c, nethttp.StatusNotFound, errorMessage)
	})

	return svc
}
