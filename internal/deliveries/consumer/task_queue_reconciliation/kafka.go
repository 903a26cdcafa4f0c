package queuereconciliation

import (
	"context"

	dlqpublisher "github.com/habitado/go-condo-billing/internal/common/dlq_publisher"
	"github.com/habitado/go-condo-billing/internal/common/graceful"
	kafkacommon "github.com/habitado/go-condo-billing/internal/common/kafka"
	xlog "github.com/habitado/go-condo-billing/internal/common/log"
	"github.com/habitado/go-condo-billing/internal/common/metrics"
	"github.com/habitado/go-condo-billing/internal/common/retry"
	"github.com/habitado/go-condo-billing/internal/config"
	"github.com/habitado/go-condo-billing/internal/services"
)

const logMessage = "[KAFKA-CONSUMER] [TASK-QUEUE-RECONCILIATION] "

// Consumer claims pending reconciliation runs from the task topic and drives
// them through the statement pipeline.
type Consumer struct {
	*kafkacommon.BaseConsumer
	rs  services.ReconciliationService
	dlq dlqpublisher.Publisher
}

func New(
	ctx context.Context,
	cfg config.Config,
	rs services.ReconciliationService,
	dlq dlqpublisher.Publisher,
	ebr retry.Retryer,
	metrics metrics.Metrics,
) (*Consumer, error) {
	c := &Consumer{
		rs:  rs,
		dlq: dlq,
	}

	handler := NewTaskQueueHandler("", rs, dlq, ebr, nil)

	baseConsumer, err := kafkacommon.NewBaseConsumer(kafkacommon.BaseConsumerConfig{
		Ctx:           ctx,
		Config:        cfg,
		Metrics:       metrics,
		Handler:       handler,
		LogPrefix:     logMessage,
		Topic:         cfg.MessageBroker.KafkaConsumer.TopicReconciliation,
		ConsumerGroup: cfg.MessageBroker.KafkaConsumer.ConsumerGroupReconciliation,
	})
	if err != nil {
		return nil, err
	}

	c.BaseConsumer = baseConsumer

	xlog.Info(ctx, logMessage, xlog.String("status", "success init kafka consumer"))

	return c, nil
}

func (c *Consumer) Start() graceful.ProcessStarter {
	return c.BaseConsumer.Start()
}

func (c *Consumer) Stop() graceful.ProcessStopper {
	return c.BaseConsumer.Stop()
}
