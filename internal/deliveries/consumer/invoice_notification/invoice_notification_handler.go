package invoicenotification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	kafkacommon "github.com/habitado/go-condo-billing/internal/common/kafka"
	xlog "github.com/habitado/go-condo-billing/internal/common/log"
	"github.com/habitado/go-condo-billing/internal/common/log/ctxdata"
	"github.com/habitado/go-condo-billing/internal/common/metrics"
	"github.com/habitado/go-condo-billing/internal/models"
	"github.com/habitado/go-condo-billing/internal/services"

	"github.com/Shopify/sarama"
	"github.com/google/uuid"
)

type InvoiceNotificationHandler struct {
	kafkacommon.BaseHandler
	is services.InvoiceService
	dp services.DLQProcessorService
}

func NewInvoiceNotificationHandler(
	clientId string,
	is services.InvoiceService,
	dp services.DLQProcessorService,
	consumerMetrics *metrics.ConsumerMetrics,
) sarama.ConsumerGroupHandler {
	return &InvoiceNotificationHandler{
		BaseHandler: kafkacommon.BaseHandler{
			ClientID:        clientId,
			ConsumerMetrics: consumerMetrics,
			LogPrefix:       logMessage,
		},
		is: is,
		dp: dp,
	}
}

// Setup is run at the beginning of a new session, before ConsumeClaim
func (in InvoiceNotificationHandler) Setup(_ sarama.ConsumerGroupSession) error {
	return nil
}

// Cleanup is run at the end of a session, once all ConsumeClaim goroutines have exited
func (in InvoiceNotificationHandler) Cleanup(_ sarama.ConsumerGroupSession) error {
	return nil
}

// ConsumeClaim must start a consumer loop of ConsumerGroupClaim's Messages().
// Failed sends are acked after an ops alert: notifications never hold back
// newer invoice events for the same unit.
func (in InvoiceNotificationHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				return nil
			}

			ctx := ctxdata.Sets(session.Context(),
				ctxdata.SetCorrelationId(uuid.New().String()),
				ctxdata.SetHost(in.ClientID),
			)
			start := time.Now()
			logField := in.CreateLogField(message)

			err := in.handler(ctx, message)
			if err != nil {
				logField = append(logField, xlog.Duration("response-time", time.Since(start)), xlog.Err(err))
				xlog.Warn(ctx, logMessage, logField...)

				in.escalate(ctx, message, err)
				in.Ack(session, message)
				continue
			}

			logField = append(logField, xlog.Duration("response-time", time.Since(start)))
			xlog.Info(ctx, logMessage, logField...)
			in.Ack(session, message)
		case <-session.Context().Done():
			return nil
		}
	}
}

func (in InvoiceNotificationHandler) processMessage(ctx context.Context, message *sarama.ConsumerMessage) error {
	var (
		event      models.InvoiceEvent
		logMessage = "[PROCESS-MESSAGE]"
	)

	logField := in.CreateLogField(message)

	if err := json.Unmarshal(message.Value, &event); err != nil {
		logField = append(logField, xlog.Err(err))
		xlog.Warn(ctx, logMessage, logField...)
		return fmt.Errorf("error unmarshal json: %w", err)
	}

	if err := in.is.NotifyEvent(ctx, event); err != nil {
		logField = append(logField, xlog.Err(err))
		xlog.Warn(ctx, logMessage, logField...)
		return fmt.Errorf("error notify invoice event: %w", err)
	}

	xlog.Info(ctx, logMessage, logField...)
	return nil
}

func (in InvoiceNotificationHandler) escalate(ctx context.Context, message *sarama.ConsumerMessage, causeErr error) {
	alertErr := in.dp.SendNotificationInvoiceEventFailure(ctx, models.FailedMessage{
		Payload:    message.Value,
		Timestamp:  message.Timestamp,
		CauseError: causeErr,
	})
	if alertErr != nil {
		xlog.Error(ctx, logMessage, append(in.CreateLogField(message), xlog.Err(alertErr))...)
	}
}

func (in InvoiceNotificationHandler) handler(ctx context.Context, message *sarama.ConsumerMessage) error {
	startTime := time.Now()
	err := in.processMessage(ctx, message)
	in.RecordMetrics(startTime, message, err)
	return err
}
