package consumer

import (
	"context"
	"fmt"

	"github.com/habitado/go-condo-billing/cmd/setup"
	"github.com/habitado/go-condo-billing/internal/common/graceful"
	"github.com/habitado/go-condo-billing/internal/common/publisher"
	"github.com/habitado/go-condo-billing/internal/common/retry"
	"github.com/habitado/go-condo-billing/internal/config"
	"github.com/habitado/go-condo-billing/internal/repositories"
	"github.com/habitado/go-condo-billing/internal/services"

	dlqpublisher "github.com/habitado/go-condo-billing/internal/common/dlq_publisher"
	dlqretrier "github.com/habitado/go-condo-billing/internal/deliveries/consumer/dlq_retrier"
	invoicenotification "github.com/habitado/go-condo-billing/internal/deliveries/consumer/invoice_notification"
	queuereconciliation "github.com/habitado/go-condo-billing/internal/deliveries/consumer/task_queue_reconciliation"
)

func NewKafkaConsumer(
	ctx context.Context,
	consumerName string,
	conf config.Config,
	svc *services.Services,
	cacheRepo repositories.CacheRepository,
	contract *setup.Setup,
) (consumerProcess graceful.ProcessStartStopper, stoppers []graceful.ProcessStopper, err error) {
	switch consumerName {
	case "task_queue_reconciliation":
		producer, errProducer := publisher.NewKafkaSyncProducer(conf.MessageBroker.KafkaConsumer.Brokers)
		if errProducer != nil {
			err = fmt.Errorf("failed setup kafka dlq publisher : %w", errProducer)
			return
		}

		stoppers = append(stoppers, func(ctx context.Context) error { return producer.Close() })

		reconciliationDlq := dlqpublisher.New(producer, conf.MessageBroker.KafkaConsumer.TopicReconciliationDLQ, contract.Metrics)
		ebRetry := retry.NewExponentialBackOff(&conf.ExponentialBackoff)

		consumerProcess, err = queuereconciliation.New(ctx, conf, svc.Reconciliation, reconciliationDlq, ebRetry, contract.Metrics)
	case "dlq_retrier":
		consumerProcess, err = dlqretrier.New(ctx, conf, svc.DLQProcessor, contract.Metrics)
	case "invoice_notification":
		consumerProcess, err = invoicenotification.New(ctx, conf, svc.Invoice, svc.DLQProcessor, contract.Metrics)
	default:
		err = fmt.Errorf("consumer type name for %s not found", consumerName)
	}

	return
}
