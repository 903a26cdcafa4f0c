package queuereconciliation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/habitado/go-condo-billing/internal/common"
	dlqpublisher "github.com/habitado/go-condo-billing/internal/common/dlq_publisher"
	kafkacommon "github.com/habitado/go-condo-billing/internal/common/kafka"
	xlog "github.com/habitado/go-condo-billing/internal/common/log"
	"github.com/habitado/go-condo-billing/internal/common/log/ctxdata"
	"github.com/habitado/go-condo-billing/internal/common/metrics"
	"github.com/habitado/go-condo-billing/internal/common/retry"
	"github.com/habitado/go-condo-billing/internal/models"
	"github.com/habitado/go-condo-billing/internal/services"

	"github.com/Shopify/sarama"
	"github.com/google/uuid"
)

type TaskQueueHandler struct {
	kafkacommon.BaseHandler
	rs      services.ReconciliationService
	ebRetry retry.Retryer
}

func NewTaskQueueHandler(
	clientId string,
	rs services.ReconciliationService,
	dlq dlqpublisher.Publisher,
	ebr retry.Retryer,
	consumerMetrics *metrics.ConsumerMetrics,
) sarama.ConsumerGroupHandler {
	return &TaskQueueHandler{
		BaseHandler: kafkacommon.BaseHandler{
			ClientID:        clientId,
			ConsumerMetrics: consumerMetrics,
			DLQ:             dlq,
			LogPrefix:       logMessage,
		},
		rs:      rs,
		ebRetry: ebr,
	}
}

// Setup is run at the beginning of a new session, before ConsumeClaim
func (tq TaskQueueHandler) Setup(_ sarama.ConsumerGroupSession) error {
	return nil
}

// Cleanup is run at the end of a session, once all ConsumeClaim goroutines have exited
func (tq TaskQueueHandler) Cleanup(_ sarama.ConsumerGroupSession) error {
	return nil
}

// ConsumeClaim must start a consumer loop of ConsumerGroupClaim's Messages().
func (tq TaskQueueHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				return nil
			}

			ctx := ctxdata.Sets(session.Context(),
				ctxdata.SetCorrelationId(uuid.New().String()),
				ctxdata.SetHost(tq.ClientID),
			)
			start := time.Now()
			logField := tq.CreateLogField(message)

			var operationErr error
			operation := func() error {
				operationErr = tq.handler(ctx, message)
				if operationErr != nil {
					xlog.Warn(ctx, logMessage, append(logField, xlog.Err(operationErr))...)

					if errors.Is(operationErr, common.ErrNoRows) ||
						errors.Is(operationErr, common.ErrDataNotFound) ||
						errors.Is(operationErr, models.GetErrMap(models.ErrKeyRunNotFound)) ||
						errors.Is(operationErr, models.GetErrMap(models.ErrKeyRunAlreadyProcessed)) {
						return tq.ebRetry.StopRetryWithErr(operationErr)
					}

					return operationErr
				}
				return nil
			}
			dlqCallback := func() error {
				tq.Nack(ctx, session, message, operationErr)
				return operationErr
			}

			if err := tq.ebRetry.Retry(ctx, operation, dlqCallback); err != nil {
				logField = append(logField, xlog.Duration("response-time", time.Since(start)), xlog.Err(err))
				xlog.Warn(ctx, logMessage, logField...)
				continue
			}

			logField = append(logField, xlog.Duration("response-time", time.Since(start)))
			xlog.Info(ctx, logMessage, logField...)
			tq.Ack(session, message)
		case <-session.Context().Done():
			return nil
		}
	}
}

func (tq TaskQueueHandler) processMessage(ctx context.Context, message *sarama.ConsumerMessage) error {
	var (
		payload    models.ReconciliationTaskPayload
		logMessage = "[PROCESS-MESSAGE]"
	)

	logField := tq.CreateLogField(message)

	if err := json.Unmarshal(message.Value, &payload); err != nil {
		logField = append(logField, xlog.Err(err))
		xlog.Warn(ctx, logMessage, logField...)
		return fmt.Errorf("error unmarshal json: %w", err)
	}

	if payload.Task != models.ReconciliationTaskName {
		logField = append(logField,
			xlog.String("task", payload.Task),
			xlog.Err(errors.New("unsupported task")))
		xlog.Warn(ctx, logMessage, logField...)
		return nil
	}

	if err := tq.rs.ProcessTaskQueue(ctx, payload); err != nil {
		logField = append(logField, xlog.Err(err))
		xlog.Warn(ctx, logMessage, logField...)
		return fmt.Errorf("error process reconciliation task: %w", err)
	}

	xlog.Info(ctx, logMessage, logField...)
	return nil
}

func (tq TaskQueueHandler) handler(ctx context.Context, message *sarama.ConsumerMessage) error {
	startTime := time.Now()
	err := tq.processMessage(ctx, message)
	tq.RecordMetrics(startTime, message, err)
	return err
}
