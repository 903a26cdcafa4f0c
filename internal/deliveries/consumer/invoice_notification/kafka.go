package invoicenotification

import (
	"context"

	"github.com/habitado/go-condo-billing/internal/common/graceful"
	kafkacommon "github.com/habitado/go-condo-billing/internal/common/kafka"
	xlog "github.com/habitado/go-condo-billing/internal/common/log"
	"github.com/habitado/go-condo-billing/internal/common/metrics"
	"github.com/habitado/go-condo-billing/internal/config"
	"github.com/habitado/go-condo-billing/internal/services"
)

const logMessage = "[KAFKA-CONSUMER] [INVOICE-NOTIFICATION] "

// Consumer fans invoice lifecycle events out to the notification gateway.
// Delivery is best effort: a failed send raises an ops alert instead of
// blocking the partition.
type Consumer struct {
	*kafkacommon.BaseConsumer
	is services.InvoiceService
	dp services.DLQProcessorService
}

func New(
	ctx context.Context,
	cfg config.Config,
	is services.InvoiceService,
	dp services.DLQProcessorService,
	metrics metrics.Metrics,
) (*Consumer, error) {
	c := &Consumer{
		is: is,
		dp: dp,
	}

	handler := NewInvoiceNotificationHandler("", is, dp, nil)

	baseConsumer, err := kafkacommon.NewBaseConsumer(kafkacommon.BaseConsumerConfig{
		Ctx:           ctx,
		Config:        cfg,
		Metrics:       metrics,
		Handler:       handler,
		LogPrefix:     logMessage,
		Topic:         cfg.MessageBroker.KafkaConsumer.TopicInvoiceEvents,
		ConsumerGroup: cfg.MessageBroker.KafkaConsumer.ConsumerGroupInvoiceNotification,
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
