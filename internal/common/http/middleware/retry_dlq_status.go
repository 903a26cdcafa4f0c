package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"

	commonHTTP "github.com/habitado/go-condo-billing/internal/common/http"
	xlog "github.com/habitado/go-condo-billing/internal/common/log"

	"github.com/labstack/echo/v4"
	"golang.org/x/exp/slices"
)

// CheckRetryDLQ tracks retried dead-letter deliveries that re-enter through
// HTTP. When the retried request keeps failing it bumps the retry counter and,
// once exhausted, notifies the operations channel instead of retrying forever.
func (m *AppMiddleware) CheckRetryDLQ() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			dlqProcessId := c.Request().Header.Get("X-DLQ-Process-Id")
			if dlqProcessId == "" {
				return next(c)
			}

			ctx := c.Request().Context()

			status, err := m.dlqProcessor.GetStatusRetry(ctx, dlqProcessId)
			if err != nil {
				return commonHTTP.RestErrorResponse(c, http.StatusInternalServerError, err)
			}

			resBodyBuff := m.getResponseBodyBuffer(c)

			// process request first
			err = next(c)
			if err != nil {
				c.Error(err)
			}

			statusCode := c.Response().Status
			if statusCode >= http.StatusOK && statusCode < http.StatusMultipleChoices {
				// if process success do nothing
				return nil
			}

			status.CurrentRetry += 1

			maxRetryReached := status.CurrentRetry > status.MaxRetry
			willRetryAgain := slices.Contains([]int{408, 504, 503, 500}, statusCode)

			if maxRetryReached || !willRetryAgain {
				message := fmt.Sprintf("max retry reached or status code not retryable: %d", statusCode)

				errMsg := getErrorMessageFromResponse(resBodyBuff.Bytes())
				if errMsg != "" {
					message = errMsg
				}

				message += "\n\n Process Id: " + dlqProcessId

				err = m.dlqProcessor.SendNotificationRetryFailure(ctx, status.ProcessName, message)
				if err != nil {
					xlog.Warn(ctx, "failed to send notification retry failure", xlog.Err(err))
				}

				return nil
			}

			err = m.dlqProcessor.UpsertStatusRetry(ctx, dlqProcessId, status)
			if err != nil {
				xlog.Warn(ctx, "failed to update status retry dlq", xlog.Err(err))
			}

			return nil
		}
	}
}

type errorResponse struct {
	Message string `json:"message"`
}

func getErrorMessageFromResponse(res []byte) string {
	var errRes errorResponse
	err := json.Unmarshal(res, &errRes)
	if err != nil {
		return ""
	}

	return errRes.Message
}
