package services

import (
	"context"
	"fmt"

	"github.com/habitado/go-condo-billing/internal/common"
	"github.com/habitado/go-condo-billing/internal/common/dateutil"
	xlog "github.com/habitado/go-condo-billing/internal/common/log"
	"github.com/habitado/go-condo-billing/internal/common/notification"
	"github.com/habitado/go-condo-billing/internal/models"
	"github.com/habitado/go-condo-billing/internal/monitoring"
)

const (
	emailSenderAddress = "noreply@habitado.com.br"
	emailSenderName    = "Habitado"
)

func (iv *invoice) NotifyEvent(ctx context.Context, event models.InvoiceEvent) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	if !iv.srv.conf.Notification.Enabled {
		xlog.Debug(ctx, "notification disabled, skipping invoice event",
			xlog.String("invoiceNumber", event.InvoiceNumber),
			xlog.String("eventType", event.EventType))
		return nil
	}

	template, subject, ok := emailForEvent(event)
	if !ok {
		xlog.Warn(ctx, "unknown invoice event type, skipping",
			xlog.String("invoiceNumber", event.InvoiceNumber),
			xlog.String("eventType", event.EventType))
		return nil
	}

	unit, err := iv.srv.sqlRepo.GetUnitRepository().GetCachedUnit(ctx, event.UnitID)
	if err != nil {
		err = checkDatabaseError(err, models.ErrKeyUnitNotFound)
		return err
	}

	if unit.Email == "" {
		xlog.Info(ctx, "unit has no email registered, skipping invoice event",
			xlog.String("unitId", unit.ID),
			xlog.String("invoiceNumber", event.InvoiceNumber))
		return nil
	}

	sub := map[string]string{
		"ownerName":      unit.OwnerName,
		"unitLabel":      unit.Label,
		"invoiceNumber":  event.InvoiceNumber,
		"referenceMonth": event.ReferenceMonth,
		"amount":         event.Amount.StringFixed(2),
		"dueDate":        dateutil.FormatNullableTime(event.DueDate, common.DateFormatDDMMYYYY),
	}
	if event.EventType == models.InvoiceEventPaid || event.EventType == models.InvoiceEventPaidDivergent {
		sub["paidAmount"] = event.PaidAmount.StringFixed(2)
		sub["paidAt"] = dateutil.FormatNullableTime(event.PaidAt, common.DateFormatDDMMYYYY)
	}

	return iv.srv.notification.SendEmail(ctx, notification.RequestEmail{
		From:     emailSenderAddress,
		FromName: emailSenderName,
		To:       unit.Email,
		ToName:   unit.OwnerName,
		Template: template,
		Subject:  subject,
		Subs:     []interface{}{sub},
	})
}

func emailForEvent(event models.InvoiceEvent) (template, subject string, ok bool) {
	switch event.EventType {
	case models.InvoiceEventPaid, models.InvoiceEventPaidDivergent:
		return notification.TemplatePaymentConfirmed,
			fmt.Sprintf("Pagamento confirmado - %s", event.ReferenceMonth),
			true
	case models.InvoiceEventOverdue:
		return notification.TemplateInvoiceOverdue,
			fmt.Sprintf("Boleto em atraso - %s", event.ReferenceMonth),
			true
	default:
		return "", "", false
	}
}
