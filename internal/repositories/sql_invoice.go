package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/habitado/go-condo-billing/internal/common"
	"github.com/habitado/go-condo-billing/internal/models"
	"github.com/habitado/go-condo-billing/internal/monitoring"
)

type InvoiceRepository interface {
	Create(ctx context.Context, inv *models.Invoice) (created *models.Invoice, err error)
	GetByNumber(ctx context.Context, number string) (*models.Invoice, error)
	GetByOurNumber(ctx context.Context, ourNumber string) (*models.Invoice, error)
	ExistsByUnitAndMonth(ctx context.Context, unitID, referenceMonth string) (exists bool, err error)
	GetOpenInvoices(ctx context.Context, condoID string) (result []models.Invoice, err error)
	GetList(ctx context.Context, opts models.InvoiceFilterOptions) (result []models.Invoice, err error)
	CountAll(ctx context.Context, opts models.InvoiceFilterOptions) (total int, err error)
	MarkPaid(ctx context.Context, in models.InvoicePaymentIn) (updated *models.Invoice, err error)
	Cancel(ctx context.Context, number, reason string) (updated *models.Invoice, err error)
	UpdateDueDate(ctx context.Context, number string, dueDate time.Time) error
	SetBankRegistration(ctx context.Context, number string, registered bool, rejectReason string) error
	MarkOverdueBatch(ctx context.Context, before time.Time, limit int) (flipped []models.Invoice, err error)
	GetHistoryByUnit(ctx context.Context, unitID string, since time.Time) (history []models.InvoiceHistoryEntry, err error)
	StreamAll(ctx context.Context, opts models.InvoiceFilterOptions) <-chan models.InvoiceStreamResult
}

type invoiceRepository sqlRepo

var _ InvoiceRepository = (*invoiceRepository)(nil)

// scanInvoice reads the full column set selected by invoiceColumns.
func scanInvoice(row interface{ Scan(...any) error }) (*models.Invoice, error) {
	var inv models.Invoice
	err := row.Scan(
		&inv.Number,
		&inv.UnitID,
		&inv.CondoID,
		&inv.Amount,
		&inv.DueDate,
		&inv.Status,
		&inv.PayerName,
		&inv.PayerDocument,
		&inv.OurNumber,
		&inv.BankLine,
		&inv.Barcode,
		&inv.ReferenceMonth,
		&inv.PaidAmount,
		&inv.PaidAt,
		&inv.PaymentOrigin,
		&inv.DivergentPayment,
		&inv.CancelReason,
		&inv.BankRegistered,
		&inv.RejectReason,
		&inv.CreatedAt,
		&inv.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &inv, nil
}

func (ir *invoiceRepository) Create(ctx context.Context, inv *models.Invoice) (created *models.Invoice, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := ir.r.extractTxWrite(ctx)

	args := []any{
		inv.Number,
		inv.UnitID,
		inv.CondoID,
		inv.Amount,
		inv.DueDate,
		inv.Status,
		inv.PayerName,
		inv.PayerDocument,
		inv.OurNumber,
		inv.BankLine,
		inv.Barcode,
		inv.ReferenceMonth,
	}

	err = db.QueryRowContext(ctx, queryInvoiceCreate, args...).Scan(
		&inv.Number,
		&inv.CreatedAt,
		&inv.UpdatedAt,
	)
	if err != nil {
		return
	}

	created = inv

	return
}

func (ir *invoiceRepository) GetByNumber(ctx context.Context, number string) (result *models.Invoice, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := ir.r.extractTxWrite(ctx)

	result, err = scanInvoice(db.QueryRowContext(ctx, queryInvoiceGetByNumber, number))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, common.ErrDataNotFound
		}
		return nil, err
	}

	return result, nil
}

func (ir *invoiceRepository) GetByOurNumber(ctx context.Context, ourNumber string) (result *models.Invoice, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := ir.r.extractTxWrite(ctx)

	result, err = scanInvoice(db.QueryRowContext(ctx, queryInvoiceGetByOurNumber, ourNumber))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, common.ErrDataNotFound
		}
		return nil, err
	}

	return result, nil
}

func (ir *invoiceRepository) ExistsByUnitAndMonth(ctx context.Context, unitID, referenceMonth string) (exists bool, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := ir.r.extractTxWrite(ctx)

	var one int
	err = db.QueryRowContext(ctx, queryInvoiceExistsByUnitAndMonth, unitID, referenceMonth).Scan(&one)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

// GetOpenInvoices loads the matching candidates of a condo: every pending or
// overdue boleto, oldest due date first.
func (ir *invoiceRepository) GetOpenInvoices(ctx context.Context, condoID string) (result []models.Invoice, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := ir.r.extractTxWrite(ctx)

	rows, err := db.QueryContext(ctx, queryInvoiceGetOpenByCondo, condoID)
	if err != nil {
		return
	}

	defer rows.Close()
	for rows.Next() {
		inv, scanErr := scanInvoice(rows)
		if scanErr != nil {
			return result, scanErr
		}
		result = append(result, *inv)
	}
	if err = rows.Err(); err != nil {
		return result, err
	}

	return result, nil
}

func (ir *invoiceRepository) GetList(ctx context.Context, opts models.InvoiceFilterOptions) (result []models.Invoice, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := ir.r.extractTxRead(ctx)

	query, args, err := buildListInvoiceQuery(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return
	}

	defer rows.Close()
	for rows.Next() {
		inv, scanErr := scanInvoice(rows)
		if scanErr != nil {
			return result, scanErr
		}
		result = append(result, *inv)
	}
	if err = rows.Err(); err != nil {
		return result, err
	}

	return result, nil
}

func (ir *invoiceRepository) CountAll(ctx context.Context, opts models.InvoiceFilterOptions) (total int, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := ir.r.extractTxRead(ctx)

	query, args, err := buildCountInvoiceQuery(opts)
	if err != nil {
		return total, fmt.Errorf("failed to build query: %w", err)
	}

	if err = db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return
	}

	return
}

// MarkPaid settles an open invoice. The status guard lives in the WHERE
// clause: a row that is already paid or cancelled is not touched and the call
// returns common.ErrDataNotFound for the service to translate.
func (ir *invoiceRepository) MarkPaid(ctx context.Context, in models.InvoicePaymentIn) (updated *models.Invoice, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := ir.r.extractTxWrite(ctx)

	args := []any{
		in.Number,
		in.Amount,
		in.PaidAt,
		in.Origin,
		in.Divergent,
	}

	updated, err = scanInvoice(db.QueryRowContext(ctx, queryInvoiceMarkPaid, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, common.ErrDataNotFound
		}
		return nil, err
	}

	return updated, nil
}

func (ir *invoiceRepository) Cancel(ctx context.Context, number, reason string) (updated *models.Invoice, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := ir.r.extractTxWrite(ctx)

	updated, err = scanInvoice(db.QueryRowContext(ctx, queryInvoiceCancel, number, reason))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, common.ErrDataNotFound
		}
		return nil, err
	}

	return updated, nil
}

func (ir *invoiceRepository) UpdateDueDate(ctx context.Context, number string, dueDate time.Time) error {
	var err error
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := ir.r.extractTxWrite(ctx)

	result, err := db.ExecContext(ctx, queryInvoiceUpdateDueDate, number, dueDate)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return common.ErrNoRowsAffected
	}

	return nil
}

func (ir *invoiceRepository) SetBankRegistration(ctx context.Context, number string, registered bool, rejectReason string) error {
	var err error
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := ir.r.extractTxWrite(ctx)

	result, err := db.ExecContext(ctx, queryInvoiceSetBankRegistration, number, registered, rejectReason)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return common.ErrNoRowsAffected
	}

	return nil
}

// MarkOverdueBatch flips at most limit pending invoices past their due date
// and returns the flipped rows so the caller can publish overdue events.
func (ir *invoiceRepository) MarkOverdueBatch(ctx context.Context, before time.Time, limit int) (flipped []models.Invoice, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := ir.r.extractTxWrite(ctx)

	rows, err := db.QueryContext(ctx, queryInvoiceMarkOverdueBatch, before, limit)
	if err != nil {
		return
	}

	defer rows.Close()
	for rows.Next() {
		inv, scanErr := scanInvoice(rows)
		if scanErr != nil {
			return flipped, scanErr
		}
		flipped = append(flipped, *inv)
	}
	if err = rows.Err(); err != nil {
		return flipped, err
	}

	return flipped, nil
}

// StreamAll feeds the CSV export one row at a time so the handler never holds
// the full result set in memory.
func (ir *invoiceRepository) StreamAll(ctx context.Context, opts models.InvoiceFilterOptions) <-chan models.InvoiceStreamResult {
	db := ir.r.extractTxRead(ctx)
	ch := make(chan models.InvoiceStreamResult)

	go func() {
		defer close(ch)

		query, args, err := buildListInvoiceQuery(opts)
		if err != nil {
			ch <- models.InvoiceStreamResult{Err: err}
			return
		}

		rows, err := db.QueryContext(ctx, query, args...)
		if err != nil {
			ch <- models.InvoiceStreamResult{Err: err}
			return
		}
		defer rows.Close()
		for rows.Next() {
			select {
			case <-ctx.Done():
				return
			default:
				inv, scanErr := scanInvoice(rows)
				if scanErr != nil {
					ch <- models.InvoiceStreamResult{Err: scanErr}
					return
				}

				ch <- models.InvoiceStreamResult{Data: *inv}
			}
		}
	}()

	return ch
}

// GetHistoryByUnit loads the scoring window of a unit: every non-cancelled
// invoice due since the window start, due date ascending.
func (ir *invoiceRepository) GetHistoryByUnit(ctx context.Context, unitID string, since time.Time) (history []models.InvoiceHistoryEntry, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := ir.r.extractTxRead(ctx)

	rows, err := db.QueryContext(ctx, queryInvoiceHistoryByUnit, unitID, since)
	if err != nil {
		return
	}

	defer rows.Close()
	for rows.Next() {
		var entry models.InvoiceHistoryEntry
		err = rows.Scan(
			&entry.Number,
			&entry.Amount,
			&entry.DueDate,
			&entry.Status,
			&entry.PaidAmount,
			&entry.PaidAt,
		)
		if err != nil {
			return history, err
		}
		history = append(history, entry)
	}
	if err = rows.Err(); err != nil {
		return history, err
	}

	return history, nil
}
