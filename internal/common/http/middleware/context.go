package middleware

import (
	"github.com/habitado/go-condo-billing/internal/common/log/ctxdata"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const headerCorrelationId = "X-Correlation-Id"

// Context seeds the request context with a correlation id so every log line
// produced while serving the request can be tied back to it. Incoming ids are
// honored, missing ones generated.
func (m *AppMiddleware) Context() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			correlationId := c.Request().Header.Get(headerCorrelationId)
			if correlationId == "" {
				correlationId = uuid.New().String()
			}

			ctx := ctxdata.Sets(c.Request().Context(),
				ctxdata.SetCorrelationId(correlationId),
				ctxdata.SetHost(c.Request().Host),
			)

			c.SetRequest(c.Request().WithContext(ctx))
			c.Response().Header().Set(headerCorrelationId, correlationId)

			return next(c)
		}
	}
}
