package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/habitado/go-condo-billing/internal/common"
	"github.com/habitado/go-condo-billing/internal/common/chunkhelper"
	"github.com/habitado/go-condo-billing/internal/common/constants"
	xlog "github.com/habitado/go-condo-billing/internal/common/log"
	"github.com/habitado/go-condo-billing/internal/common/publisher"
	"github.com/habitado/go-condo-billing/internal/models"
	"github.com/habitado/go-condo-billing/internal/monitoring"
)

// overdueSweepBatchSize bounds one UPDATE of the nightly sweep so the
// invoices table is never locked for a full condo portfolio at once.
const overdueSweepBatchSize = 500

// downloadProgressChunkSize is how often the CSV export logs progress.
const downloadProgressChunkSize = 5_000

type InvoiceService interface {
	Create(ctx context.Context, in models.CreateInvoiceIn) (out *models.Invoice, err error)
	GetByNumber(ctx context.Context, number string) (result *models.Invoice, err error)
	GetList(ctx context.Context, opts models.InvoiceFilterOptions) (invoices []models.Invoice, total int, err error)
	RegisterPayment(ctx context.Context, req models.RegisterPaymentRequest) (updated *models.Invoice, err error)
	Cancel(ctx context.Context, req models.CancelInvoiceRequest) (updated *models.Invoice, err error)
	DownloadInvoiceFileCSV(ctx context.Context, req models.DownloadInvoiceRequest) (err error)
	SweepOverdue(ctx context.Context) (flipped int, err error)

	// NotifyEvent fans an invoice event out to the unit owner's email via
	// the notification gateway. Consumed from the invoice events topic.
	NotifyEvent(ctx context.Context, event models.InvoiceEvent) (err error)
}

type invoice service

var _ InvoiceService = (*invoice)(nil)

func (iv *invoice) Create(ctx context.Context, in models.CreateInvoiceIn) (out *models.Invoice, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	unit, err := iv.srv.sqlRepo.GetUnitRepository().GetCachedUnit(ctx, in.UnitID)
	if err != nil {
		err = checkDatabaseError(err, models.ErrKeyUnitNotFound)
		return
	}

	exists, err := iv.srv.sqlRepo.GetInvoiceRepository().ExistsByUnitAndMonth(ctx, in.UnitID, in.ReferenceMonth)
	if err != nil {
		err = checkDatabaseError(err)
		return
	}
	if exists {
		err = models.GetErrMap(models.ErrKeyDuplicateInvoice)
		return
	}

	number := iv.srv.idgenerator.Generate(models.InvoiceNumberPrefix)

	digits, err := generateBoletoDigits(boletoSequenceFromID(number), in.Amount.Decimal, in.DueDate)
	if err != nil {
		err = fmt.Errorf("unable to generate boleto digits: %w", err)
		return
	}

	if in.PayerName == "" {
		in.PayerName = unit.OwnerName
	}
	if in.PayerDocument == "" {
		in.PayerDocument = unit.OwnerDocument
	}

	dueDate := in.DueDate
	inv := &models.Invoice{
		Number:         number,
		UnitID:         in.UnitID,
		CondoID:        unit.CondoID,
		Amount:         in.Amount,
		DueDate:        &dueDate,
		Status:         models.InvoiceStatusPending,
		PayerName:      in.PayerName,
		PayerDocument:  in.PayerDocument,
		OurNumber:      digits.OurNumber,
		BankLine:       digits.BankLine,
		Barcode:        digits.Barcode,
		ReferenceMonth: in.ReferenceMonth,
	}

	out, err = iv.srv.sqlRepo.GetInvoiceRepository().Create(ctx, inv)
	if err != nil {
		err = checkDatabaseError(err)
		return
	}

	return out, nil
}

func (iv *invoice) GetByNumber(ctx context.Context, number string) (result *models.Invoice, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	result, err = iv.srv.sqlRepo.GetInvoiceRepository().GetByNumber(ctx, number)
	if err != nil {
		err = checkDatabaseError(err, models.ErrKeyInvoiceNotFound)
		return
	}

	return result, nil
}

func (iv *invoice) GetList(ctx context.Context, opts models.InvoiceFilterOptions) (invoices []models.Invoice, total int, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	invRepo := iv.srv.sqlRepo.GetInvoiceRepository()

	invoices, err = invRepo.GetList(ctx, opts)
	if err != nil {
		return invoices, total, err
	}

	if len(invoices) == 0 {
		return invoices, total, nil
	}

	total, err = invRepo.CountAll(ctx, opts)
	if err != nil {
		return
	}

	return invoices, total, nil
}

func (iv *invoice) RegisterPayment(ctx context.Context, req models.RegisterPaymentRequest) (updated *models.Invoice, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	paidAt := common.Now()
	if req.PaidAt != "" {
		paidAt, err = time.Parse(time.RFC3339, req.PaidAt)
		if err != nil {
			err = models.GetErrMap(models.ErrKeyInvalidFormatDate, req.PaidAt)
			return
		}
	}

	inv, err := iv.srv.sqlRepo.GetInvoiceRepository().GetByNumber(ctx, req.Number)
	if err != nil {
		err = checkDatabaseError(err, models.ErrKeyInvoiceNotFound)
		return
	}

	if inv.Status == models.InvoiceStatusPaid {
		err = models.GetErrMap(models.ErrKeyInvoiceAlreadyPaid)
		return
	}
	if !inv.Status.CanTransitionTo(models.InvoiceStatusPaid) {
		err = models.GetErrMap(models.ErrKeyInvalidStatusTransition, fmt.Sprintf("%s cannot move to %s", inv.Status, models.InvoiceStatusPaid))
		return
	}

	paidAmount := req.PaidAmount.Decimal
	if paidAmount.IsZero() {
		paidAmount = inv.Amount.Decimal
	}

	divergent := isDivergentPayment(paidAmount, inv.Amount.Decimal, iv.srv.conf.Reconciliation.PaidAmountTolerance)

	updated, err = iv.srv.sqlRepo.GetInvoiceRepository().MarkPaid(ctx, models.InvoicePaymentIn{
		Number:    req.Number,
		Amount:    paidAmount,
		PaidAt:    paidAt,
		Origin:    models.PaymentOriginManual,
		Divergent: divergent,
	})
	if err != nil {
		err = checkDatabaseError(err, models.ErrKeyInvoiceAlreadyPaid)
		return
	}

	iv.settleSideEffects(ctx, *updated, models.PaymentOriginManual, divergent)

	return updated, nil
}

func (iv *invoice) Cancel(ctx context.Context, req models.CancelInvoiceRequest) (updated *models.Invoice, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	inv, err := iv.srv.sqlRepo.GetInvoiceRepository().GetByNumber(ctx, req.Number)
	if err != nil {
		err = checkDatabaseError(err, models.ErrKeyInvoiceNotFound)
		return
	}

	if !inv.Status.CanTransitionTo(models.InvoiceStatusCancelled) {
		err = models.GetErrMap(models.ErrKeyInvalidStatusTransition, fmt.Sprintf("%s cannot move to %s", inv.Status, models.InvoiceStatusCancelled))
		return
	}

	updated, err = iv.srv.sqlRepo.GetInvoiceRepository().Cancel(ctx, req.Number, req.Reason)
	if err != nil {
		err = checkDatabaseError(err, models.ErrKeyInvoiceNotFound)
		return
	}

	iv.invalidateRiskCache(ctx, updated.UnitID)

	return updated, nil
}

func (iv *invoice) DownloadInvoiceFileCSV(ctx context.Context, req models.DownloadInvoiceRequest) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	invRepo := iv.srv.sqlRepo.GetInvoiceRepository()

	total, err := invRepo.CountAll(ctx, req.Options)
	if err != nil {
		err = checkDatabaseError(err)
		return
	}

	if total > models.DownloadInvoiceRowThreshold {
		return common.ErrRowLimitDownloadExceed
	}

	req.Options.Limit = models.DownloadInvoiceRowThreshold

	w := csv.NewWriter(req.Writer)

	if err = w.Write(constants.InvoiceCSVHeaders); err != nil {
		err = fmt.Errorf("failed to write header: %w", err)
		return
	}

	progress := chunkhelper.DownloadProgress{
		ExportID:  iv.srv.idgenerator.Generate(),
		StartTime: common.Now(),
		TotalRows: total,
	}

	written := 0
	for row := range invRepo.StreamAll(ctx, req.Options) {
		if row.Err != nil {
			err = fmt.Errorf("failed to read stream: %w", row.Err)
			return
		}

		if err = w.Write(row.Data.ToCSVRow()); err != nil {
			err = fmt.Errorf("failed to write row: %w", err)
			return
		}

		written++
		if written%downloadProgressChunkSize == 0 {
			progress.LogProgress(ctx, written/downloadProgressChunkSize, downloadProgressChunkSize)
		}
	}

	w.Flush()

	return w.Error()
}

// SweepOverdue flips pending invoices past due date to overdue in batches,
// publishing an overdue event per flipped row. Runs as the nightly job.
func (iv *invoice) SweepOverdue(ctx context.Context) (flipped int, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	now := common.Now()

	for {
		batch, batchErr := iv.srv.sqlRepo.GetInvoiceRepository().MarkOverdueBatch(ctx, now, overdueSweepBatchSize)
		if batchErr != nil {
			err = checkDatabaseError(batchErr)
			return
		}

		for _, inv := range batch {
			iv.invalidateRiskCache(ctx, inv.UnitID)

			event := models.NewInvoiceOverdueEvent(inv)
			if pubErr := iv.srv.invoiceEventPub.Publish(ctx, event, publisher.WithKey(inv.Number)); pubErr != nil {
				xlog.Warn(ctx, "failed to publish overdue event",
					xlog.String("invoiceNumber", inv.Number),
					xlog.Err(pubErr),
				)
			}
		}

		flipped += len(batch)

		if len(batch) < overdueSweepBatchSize {
			return flipped, nil
		}
	}
}

// settleSideEffects runs the out-of-transaction consequences of a settled
// invoice: risk cache invalidation and the paid event. Failures are logged,
// never bubbled, because the payment row is already committed.
func (iv *invoice) settleSideEffects(ctx context.Context, inv models.Invoice, origin string, divergent bool) {
	iv.invalidateRiskCache(ctx, inv.UnitID)

	event := models.NewInvoicePaidEvent(inv, origin, divergent)
	if err := iv.srv.invoiceEventPub.Publish(ctx, event, publisher.WithKey(inv.Number)); err != nil {
		xlog.Warn(ctx, "failed to publish paid event",
			xlog.String("invoiceNumber", inv.Number),
			xlog.String("origin", origin),
			xlog.Err(err),
		)
	}
}

func (iv *invoice) invalidateRiskCache(ctx context.Context, unitID string) {
	if err := iv.srv.cacheRepo.Del(ctx, getCacheKeyRiskScore(unitID)); err != nil {
		xlog.Warn(ctx, "failed to invalidate risk score cache",
			xlog.String("unitId", unitID),
			xlog.Err(err),
		)
	}
}
