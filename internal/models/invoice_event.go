package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice event types published to the invoice events topic.
const (
	InvoiceEventPaid          = "invoice.paid"
	InvoiceEventPaidDivergent = "invoice.paid_divergent"
	InvoiceEventOverdue       = "invoice.overdue"
)

// InvoiceEvent is the payload published whenever an invoice changes state in
// a way the notification flow cares about. The invoice number keys the
// message so per-invoice ordering holds.
type InvoiceEvent struct {
	EventType      string          `json:"eventType"`
	InvoiceNumber  string          `json:"invoiceNumber"`
	UnitID         string          `json:"unitId"`
	CondoID        string          `json:"condoId"`
	ReferenceMonth string          `json:"referenceMonth"`
	Amount         decimal.Decimal `json:"amount"`
	PaidAmount     decimal.Decimal `json:"paidAmount,omitempty"`
	PaymentOrigin  string          `json:"paymentOrigin,omitempty"`
	DueDate        *time.Time      `json:"dueDate,omitempty"`
	PaidAt         *time.Time      `json:"paidAt,omitempty"`
	OccurredAt     time.Time       `json:"occurredAt"`
}

func NewInvoicePaidEvent(inv Invoice, origin string, divergent bool) InvoiceEvent {
	eventType := InvoiceEventPaid
	if divergent {
		eventType = InvoiceEventPaidDivergent
	}

	event := InvoiceEvent{
		EventType:      eventType,
		InvoiceNumber:  inv.Number,
		UnitID:         inv.UnitID,
		CondoID:        inv.CondoID,
		ReferenceMonth: inv.ReferenceMonth,
		Amount:         inv.Amount.Decimal,
		PaymentOrigin:  origin,
		DueDate:        inv.DueDate,
		PaidAt:         inv.PaidAt,
		OccurredAt:     time.Now(),
	}

	if inv.PaidAmount.Valid {
		event.PaidAmount = inv.PaidAmount.Decimal
	}

	return event
}

func NewInvoiceOverdueEvent(inv Invoice) InvoiceEvent {
	return InvoiceEvent{
		EventType:      InvoiceEventOverdue,
		InvoiceNumber:  inv.Number,
		UnitID:         inv.UnitID,
		CondoID:        inv.CondoID,
		ReferenceMonth: inv.ReferenceMonth,
		Amount:         inv.Amount.Decimal,
		DueDate:        inv.DueDate,
		OccurredAt:     time.Now(),
	}
}
