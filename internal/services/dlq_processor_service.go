package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	xlog "github.com/habitado/go-condo-billing/internal/common/log"

	"github.com/habitado/go-condo-billing/internal/common/notification"
	"github.com/habitado/go-condo-billing/internal/common/publisher"
	"github.com/habitado/go-condo-billing/internal/models"
	"github.com/habitado/go-condo-billing/internal/monitoring"
)

type DLQProcessorService interface {
	SendNotificationReconciliationFailure(ctx context.Context, message models.FailedMessage) (err error)
	SendNotificationInvoiceEventFailure(ctx context.Context, message models.FailedMessage) (err error)
	SendNotificationRetryFailure(ctx context.Context, operation, message string) (err error)

	GetStatusRetry(ctx context.Context, processRetryId string) (status models.StatusRetryDLQ, err error)
	UpsertStatusRetry(ctx context.Context, processRetryId string, status models.StatusRetryDLQ) (err error)

	// RetryReconciliationTask re-queues a failed reconciliation task by
	// publishing it back to the task topic with retry bookkeeping headers.
	RetryReconciliationTask(ctx context.Context, message models.FailedMessage) (err error)
}

type dlqProcessor service

var _ DLQProcessorService = (*dlqProcessor)(nil)

func (d dlqProcessor) SendNotificationReconciliationFailure(ctx context.Context, message models.FailedMessage) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	var taskPayload models.ReconciliationTaskPayload
	err = json.Unmarshal(message.Payload, &taskPayload)
	if err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	operation := "Process Reconciliation Task"

	xlog.Error(ctx, "[DLQ-ERROR]",
		xlog.String("operation", operation),
		xlog.String("run_id", taskPayload.ID),
		xlog.String("error_message", message.Error))

	return d.sendOpsAlert(ctx, operation, fmt.Sprintf("run %s: %s", taskPayload.ID, message.Error))
}

func (d dlqProcessor) SendNotificationInvoiceEventFailure(ctx context.Context, message models.FailedMessage) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	var event models.InvoiceEvent
	err = json.Unmarshal(message.Payload, &event)
	if err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	operation := "Process Invoice Event"

	xlog.Error(ctx, "[DLQ-ERROR]",
		xlog.String("operation", operation),
		xlog.String("invoice_number", event.InvoiceNumber),
		xlog.String("event_type", event.EventType),
		xlog.String("error_message", message.Error))

	return d.sendOpsAlert(ctx, operation, fmt.Sprintf("invoice %s: %s", event.InvoiceNumber, message.Error))
}

func (d dlqProcessor) SendNotificationRetryFailure(ctx context.Context, operation, message string) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	xlog.Error(ctx, "[DLQ-ERROR]",
		xlog.String("operation", fmt.Sprintf("[DLQ Retry Failure]: %s", operation)),
		xlog.String("error_message", message))

	return d.sendOpsAlert(ctx, operation, message)
}

func (d dlqProcessor) RetryReconciliationTask(ctx context.Context, message models.FailedMessage) (err error) {
	monitor := monitoring.New(ctx)

	defer func() {
		monitor.Finish(monitoring.WithFinishCheckError(err))

		if err != nil {
			xlog.Error(ctx, "[DLQ-ERROR]",
				xlog.String("operation", "failed to retry reconciliation task"),
				xlog.String("error_message", err.Error()))
		}
	}()

	var taskPayload models.ReconciliationTaskPayload
	err = json.Unmarshal(message.Payload, &taskPayload)
	if err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	status := models.StatusRetryDLQ{
		ProcessId:   fmt.Sprintf("reconciliation:%s:%s", taskPayload.ID, time.Now()),
		ProcessName: "reconciliation task",
		MaxRetry:    5,
	}

	d.logRetry(ctx, "retryable error", taskPayload.ID, true, taskPayload, message.Error)

	err = d.UpsertStatusRetry(ctx, status.ProcessId, status)
	if err != nil {
		return fmt.Errorf("failed to insert status retry dlq: %w", err)
	}

	headers := make(map[string]string, 3)
	for k, v := range status.ToHeaders() {
		headers[k] = fmt.Sprintf("%v", v)
	}

	return d.srv.reconciliationPub.Publish(ctx, taskPayload,
		publisher.WithKey(taskPayload.ID),
		publisher.WithHeaders(headers),
	)
}

func (d dlqProcessor) logRetry(ctx context.Context, desc string, id string, isRetry bool, request, err any) {
	xlog.Info(ctx, "[PROCESS-RETRY]",
		xlog.String("request-id", id),
		xlog.String("description", desc),
		xlog.Any("request", request),
		xlog.Bool("is-retry", isRetry),
		xlog.Any("error-causer", err))
}

func (d dlqProcessor) sendOpsAlert(ctx context.Context, operation, message string) error {
	if !d.srv.conf.Notification.Enabled {
		return nil
	}

	return d.srv.notification.SendOpsAlert(ctx, notification.PayloadNotification{
		Title:        "Dead letter queue failure",
		Service:      d.srv.conf.App.Name,
		SlackChannel: d.srv.conf.Notification.SlackChannel,
		Data: notification.DataMessage{
			Operation: operation,
			Message:   message,
		},
	})
}

func (d dlqProcessor) GetStatusRetry(ctx context.Context, processRetryId string) (status models.StatusRetryDLQ, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	cacheKey := models.GetCacheKeyStatusRetryDLQ(processRetryId)

	rawData, err := d.srv.cacheRepo.Get(ctx, cacheKey)
	if err != nil {
		return status, fmt.Errorf("failed to get status retry from cache: %w", err)
	}

	err = json.Unmarshal([]byte(rawData), &status)
	if err != nil {
		return status, fmt.Errorf("failed to unmarshal status retry: %w", err)
	}

	return
}

func (d dlqProcessor) UpsertStatusRetry(ctx context.Context, processRetryId string, status models.StatusRetryDLQ) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	rawData, err := json.Marshal(status)
	if err != nil {
		return fmt.Errorf("failed to marshal status retry: %w", err)
	}

	cacheKey := models.GetCacheKeyStatusRetryDLQ(processRetryId)

	err = d.srv.cacheRepo.Set(ctx, cacheKey, rawData, 24*time.Hour)
	if err != nil {
		return fmt.Errorf("failed to set status retry to cache: %w", err)
	}

	return
}
