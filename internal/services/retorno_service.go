package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/habitado/go-condo-billing/internal/common"
	"github.com/habitado/go-condo-billing/internal/models"
	"github.com/habitado/go-condo-billing/internal/monitoring"
	"github.com/habitado/go-condo-billing/internal/repositories"
)

type RetornoService interface {
	Apply(ctx context.Context, run *models.ReconciliationRun, events []models.RetornoEvent) (results []models.RetornoLineResult, summary models.RetornoSummary, err error)
}

type retorno service

var _ RetornoService = (*retorno)(nil)

// settledTitle remembers a settlement applied inside the transaction so the
// paid event and cache invalidation can run after commit.
type settledTitle struct {
	invoice   models.Invoice
	divergent bool
}

// Apply walks the occurrence events of one retorno file and applies each to
// its invoice. The whole file runs in a single transaction: a database error
// on any line rolls everything back so the redelivery starts clean. Domain
// problems (unknown titles, conflicting occurrences) are outcomes, not
// errors, and never abort the file.
func (rt *retorno) Apply(ctx context.Context, run *models.ReconciliationRun, events []models.RetornoEvent) (results []models.RetornoLineResult, summary models.RetornoSummary, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	summary = models.NewRetornoSummary()

	var settled []settledTitle

	err = rt.srv.sqlRepo.Atomic(ctx, func(ctx context.Context, r repositories.SQLRepository) error {
		for _, event := range events {
			result, title, txErr := rt.applyEvent(ctx, r, event)
			if txErr != nil {
				return fmt.Errorf("line %d: %w", event.Line, txErr)
			}

			if title != nil {
				settled = append(settled, *title)
			}

			results = append(results, result)
			summary.Add(result)
		}

		return nil
	})
	if err != nil {
		return nil, models.NewRetornoSummary(), err
	}

	for _, title := range settled {
		rt.srv.Invoice.settleSideEffects(ctx, title.invoice, models.PaymentOriginRetorno, title.divergent)
	}

	return results, summary, nil
}

func (rt *retorno) applyEvent(ctx context.Context, r repositories.SQLRepository, event models.RetornoEvent) (result models.RetornoLineResult, title *settledTitle, err error) {
	result = models.RetornoLineResult{Event: event}

	if !event.Occurrence.IsKnown() {
		result.Outcome = models.RetornoOutcomeUnknownCode
		result.Detail = fmt.Sprintf("occurrence %s is not handled", event.Occurrence)
		return result, nil, nil
	}

	inv, err := rt.lookupInvoice(ctx, r, event)
	if err != nil {
		if errors.Is(err, common.ErrDataNotFound) {
			result.Outcome = models.RetornoOutcomeUnknownTitle
			result.Detail = fmt.Sprintf("no invoice for nosso número %s", event.NossoNumero)
			return result, nil, nil
		}
		return result, nil, err
	}
	result.InvoiceNumber = inv.Number

	switch {
	case event.Occurrence == models.OccurrenceEntryConfirmed:
		if err = r.GetInvoiceRepository().SetBankRegistration(ctx, inv.Number, true, ""); err != nil {
			return result, nil, err
		}
		result.Outcome = models.RetornoOutcomeApplied
		result.Detail = "bank registration confirmed"

	case event.Occurrence == models.OccurrenceEntryRejected:
		if err = r.GetInvoiceRepository().SetBankRegistration(ctx, inv.Number, false, event.RejectReason); err != nil {
			return result, nil, err
		}
		result.Outcome = models.RetornoOutcomeApplied
		result.Detail = fmt.Sprintf("bank registration rejected: %s", event.RejectReason)

	case event.Occurrence.IsSettlement():
		return rt.applySettlement(ctx, r, event, inv)

	case event.Occurrence.IsWriteOff():
		switch inv.Status {
		case models.InvoiceStatusPaid:
			result.Outcome = models.RetornoOutcomeConflict
			result.Detail = "write-off received for a settled title"
		case models.InvoiceStatusCancelled:
			result.Outcome = models.RetornoOutcomeApplied
			result.Detail = "title already written off"
		default:
			if _, err = r.GetInvoiceRepository().Cancel(ctx, inv.Number, event.Occurrence.Title()); err != nil {
				return result, nil, err
			}
			result.Outcome = models.RetornoOutcomeApplied
			result.Detail = event.Occurrence.Title()
		}

	case event.Occurrence == models.OccurrenceDueDateChanged:
		if event.DueDate == nil {
			result.Outcome = models.RetornoOutcomeConflict
			result.Detail = "due date change without a new due date"
			return result, nil, nil
		}
		if !inv.Status.IsOpen() {
			result.Outcome = models.RetornoOutcomeConflict
			result.Detail = fmt.Sprintf("due date change for a %s title", inv.Status)
			return result, nil, nil
		}
		if err = r.GetInvoiceRepository().UpdateDueDate(ctx, inv.Number, *event.DueDate); err != nil {
			return result, nil, err
		}
		result.Outcome = models.RetornoOutcomeApplied
		result.Detail = fmt.Sprintf("due date moved to %s", event.DueDate.Format(common.DateFormatYYYYMMDD))
	}

	return result, nil, nil
}

// applySettlement pays the invoice off a liquidação occurrence. Redelivered
// settlements of an already paid title are idempotent; settlements of a
// cancelled title are someone's problem and flagged as conflicts — the
// terminal state wins over whatever the occurrence code says.
func (rt *retorno) applySettlement(ctx context.Context, r repositories.SQLRepository, event models.RetornoEvent, inv *models.Invoice) (result models.RetornoLineResult, title *settledTitle, err error) {
	result = models.RetornoLineResult{Event: event, InvoiceNumber: inv.Number}

	switch inv.Status {
	case models.InvoiceStatusPaid:
		result.Outcome = models.RetornoOutcomeIdempotent
		result.Detail = "title already settled"
		return result, nil, nil
	case models.InvoiceStatusCancelled:
		result.Outcome = models.RetornoOutcomeConflict
		result.Detail = "settlement received for a cancelled title"
		return result, nil, nil
	}

	paidAt := event.OccurrenceDate
	if event.CreditDate != nil {
		paidAt = *event.CreditDate
	}

	divergent := isDivergentPayment(event.PaidAmount, inv.Amount.Decimal, rt.srv.conf.Reconciliation.PaidAmountTolerance)

	updated, err := r.GetInvoiceRepository().MarkPaid(ctx, models.InvoicePaymentIn{
		Number:    inv.Number,
		Amount:    event.PaidAmount,
		PaidAt:    paidAt,
		Origin:    models.PaymentOriginRetorno,
		Divergent: divergent,
	})
	if err != nil {
		return result, nil, err
	}

	result.Outcome = models.RetornoOutcomeApplied
	result.Detail = event.Occurrence.Title()
	if divergent {
		result.Outcome = models.RetornoOutcomeDivergentPaid
		result.Detail = fmt.Sprintf("paid %s against %s", event.PaidAmount.StringFixed(2), inv.Amount.StringFixed(2))
	}

	return result, &settledTitle{invoice: *updated, divergent: divergent}, nil
}

// lookupInvoice resolves the event's title: nosso número first, then the seu
// número field, which carries our invoice number on registered boletos.
func (rt *retorno) lookupInvoice(ctx context.Context, r repositories.SQLRepository, event models.RetornoEvent) (*models.Invoice, error) {
	inv, err := r.GetInvoiceRepository().GetByOurNumber(ctx, event.NossoNumero)
	if err == nil {
		return inv, nil
	}
	if !errors.Is(err, common.ErrDataNotFound) {
		return nil, err
	}

	if event.SeuNumero == "" {
		return nil, common.ErrDataNotFound
	}

	return r.GetInvoiceRepository().GetByNumber(ctx, event.SeuNumero)
}
