package health

import (
	"errors"
	nethttp "net/http"
	"sync/atomic"

	"github.com/habitado/go-condo-billing/internal/common/http"

	"github.com/labstack/echo/v4"
)

var errServerShuttingDown = errors.New("server is shutting down")

type healthHandler struct{}

// New health handler will initialize the health/ resources endpoint
func New(app *echo.Group) {
	hh := healthHandler{}
	health := app.Group("/health")
	health.GET("", hh.healthCheck())
}

type (
	DoHealthCheckLivenessResponse struct {
		Kind   string `json:"kind" example:"health"`
		Status string `json:"status" example:"server is up and running"`
	}
)

// healthCheck godoc
// @Summary 	Get the status of server
// @Description	Get the status of server
// @Accept		json
// @Produce		json
// @Success 200 {object} DoHealthCheckLivenessResponse "Response indicates that the request succeeded and the resources has been fetched and transmitted in the message body"
// @Router /health [get]
func (hh healthHandler) healthCheck() echo.HandlerFunc {
	return func(c echo.Context) error {
		return http.RestSuccessResponse(c, nethttp.StatusOK, DoHealthCheckLivenessResponse{
			Kind:   "health",
			Status: "server is up and running",
		})
	}
}

// HealthCheck is the readiness probe used by the consumer and worker
// processes. Shutdown flips it so the orchestrator stops routing to the
// pod before the kafka client drains.
type HealthCheck struct {
	shuttingDown atomic.Bool
}

func NewHealthCheck() *HealthCheck {
	return &HealthCheck{}
}

func (hc *HealthCheck) Route(app *echo.Group) {
	app.GET("", func(c echo.Context) error {
		if hc.shuttingDown.Load() {
			return http.RestErrorResponse(c, nethttp.StatusServiceUnavailable, errServerShuttingDown)
		}

		return http.RestSuccessResponse(c, nethttp.StatusOK, DoHealthCheckLivenessResponse{
			Kind:   "health",
			Status: "server is up and running",
		})
	})
}

func (hc *HealthCheck) Shutdown() {
	hc.shuttingDown.Store(true)
}
