package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/newrelic/go-agent/v3/newrelic"

	xlog "github.com/habitado/go-condo-billing/internal/common/log"
	"github.com/habitado/go-condo-billing/internal/common/log/ctxdata"
	"github.com/habitado/go-condo-billing/internal/common/metrics"
	"github.com/habitado/go-condo-billing/internal/config"
	"github.com/habitado/go-condo-billing/internal/models"
	"github.com/habitado/go-condo-billing/internal/monitoring"
)

// Client talks to the internal notification gateway, which fans messages out
// to email and the operations Slack channel.
type Client interface {
	SendEmail(ctx context.Context, request RequestEmail) error
	SendOpsAlert(ctx context.Context, payload PayloadNotification) error
}

type client struct {
	cfg        config.Config
	httpClient *resty.Client
}

func New(cfg config.Config, httpMetrics *metrics.HTTPClientPrometheusMetrics) Client {
	retryWaitTime := time.Duration(cfg.Notification.RetryWaitTime) * time.Millisecond
	restyClient := resty.New().SetRetryCount(cfg.Notification.RetryCount).SetRetryWaitTime(retryWaitTime)
	restyClient.AddRetryCondition(func(resp *resty.Response, err error) bool {
		if err != nil {
			return true
		}
		_, retryable := models.RetryableHTTPCodes[resp.StatusCode()]
		return retryable
	})
	if httpMetrics != nil {
		restyClient.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
			httpMetrics.Record(resp.Time(), "notification-gateway",
				resp.Request.Method, resp.Request.RawRequest.URL.Path, resp.StatusCode())
			return nil
		})
	}
	restyClient.SetTransport(newrelic.NewRoundTripper(restyClient.GetClient().Transport))

	return &client{
		cfg:        cfg,
		httpClient: restyClient,
	}
}

func (c *client) SendEmail(ctx context.Context, request RequestEmail) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	return c.post(ctx, "/api/v1/email", request)
}

func (c *client) SendOpsAlert(ctx context.Context, payload PayloadNotification) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	return c.post(ctx, "/api/v1/notify", payload)
}

func (c *client) post(ctx context.Context, path string, body any) error {
	url := fmt.Sprintf("%s%s", c.cfg.Notification.BaseUrl, path)

	xlog.Infof(ctx, "send request to %s with body %v", url, body)
	resp, err := c.httpClient.R().SetContext(ctx).
		SetHeader("Accept", "application/json;  charset=utf-8").
		SetHeader("Cache-Control", "no-cache").
		SetHeader("X-Correlation-Id", ctxdata.GetCorrelationId(ctx)).
		SetHeader("User-Agent", c.cfg.App.Name).
		SetBody(body).
		Post(url)
	if err != nil {
		return fmt.Errorf("error send request to %s: %w", url, err)
	}

	var response *ResponseSendMessage
	if err = json.Unmarshal(resp.Body(), &response); err != nil {
		return fmt.Errorf("error unmarshal response from %s: %w", url, err)
	}

	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("error response from %s: %s", url, response.Message)
	}

	return nil
}
