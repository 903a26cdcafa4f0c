package repositories

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/habitado/go-condo-billing/internal/models"
)

const invoiceSelectColumns = `
		  "number",
		  "unitId",
		  "condoId",
		  "amount",
		  "dueDate",
		  "status",
		  COALESCE("payerName", '') as "payerName",
		  COALESCE("payerDocument", '') as "payerDocument",
		  COALESCE("ourNumber", '') as "ourNumber",
		  COALESCE("bankLine", '') as "bankLine",
		  COALESCE("barcode", '') as "barcode",
		  "referenceMonth",
		  "paidAmount",
		  "paidAt",
		  COALESCE("paymentOrigin", '') as "paymentOrigin",
		  "divergentPayment",
		  COALESCE("cancelReason", '') as "cancelReason",
		  "bankRegistered",
		  COALESCE("rejectReason", '') as "rejectReason",
		  "createdAt",
		  "updatedAt"`

var (
	queryInvoiceCreate = `
		INSERT INTO invoices(
			"number", "unitId", "condoId", "amount", "dueDate", "status", "payerName", "payerDocument", "ourNumber", "bankLine", "barcode", "referenceMonth", "divergentPayment", "bankRegistered", "createdAt", "updatedAt"
		)
		VALUES(
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, FALSE, FALSE, NOW(), NOW()
		)
		RETURNING
			"number", "createdAt", "updatedAt";
	`

	queryInvoiceGetByNumber = `SELECT` + invoiceSelectColumns + `
		FROM "invoices"
		WHERE "number" = $1;`

	queryInvoiceGetByOurNumber = `SELECT` + invoiceSelectColumns + `
		FROM "invoices"
		WHERE "ourNumber" = $1;`

	queryInvoiceExistsByUnitAndMonth = `SELECT 1
		FROM "invoices"
		WHERE "unitId" = $1 AND "referenceMonth" = $2 AND "status" <> 'cancelled'
		LIMIT 1;`

	queryInvoiceGetOpenByCondo = `SELECT` + invoiceSelectColumns + `
		FROM "invoices"
		WHERE "condoId" = $1 AND "status" IN ('pending', 'overdue')
		ORDER BY "dueDate" ASC, "number" ASC;`

	queryInvoiceMarkPaid = `
		UPDATE invoices
		SET "status" = 'paid', "paidAmount" = $2, "paidAt" = $3, "paymentOrigin" = $4, "divergentPayment" = $5, "updatedAt" = NOW()
		WHERE "number" = $1 AND "status" IN ('pending', 'overdue')
		RETURNING` + invoiceSelectColumns + `;`

	queryInvoiceCancel = `
		UPDATE invoices
		SET "status" = 'cancelled', "cancelReason" = $2, "updatedAt" = NOW()
		WHERE "number" = $1 AND "status" IN ('pending', 'overdue')
		RETURNING` + invoiceSelectColumns + `;`

	// A postponed due date also reopens a title the sweep already flipped.
	queryInvoiceUpdateDueDate = `
		UPDATE invoices
		SET "dueDate" = $2,
			"status" = CASE WHEN "status" = 'overdue' AND $2 > NOW() THEN 'pending' ELSE "status" END,
			"updatedAt" = NOW()
		WHERE "number" = $1 AND "status" IN ('pending', 'overdue');
	`

	queryInvoiceSetBankRegistration = `
		UPDATE invoices
		SET "bankRegistered" = $2, "rejectReason" = $3, "updatedAt" = NOW()
		WHERE "number" = $1;
	`

	queryInvoiceMarkOverdueBatch = `
		UPDATE invoices
		SET "status" = 'overdue', "updatedAt" = NOW()
		WHERE "number" IN (
			SELECT "number"
			FROM "invoices"
			WHERE "status" = 'pending' AND "dueDate" < $1
			ORDER BY "dueDate" ASC
			LIMIT $2
		)
		RETURNING` + invoiceSelectColumns + `;`

	queryInvoiceHistoryByUnit = `SELECT
		  "number",
		  "amount",
		  "dueDate",
		  "status",
		  "paidAmount",
		  "paidAt"
		FROM "invoices"
		WHERE "unitId" = $1 AND "dueDate" >= $2 AND "status" <> 'cancelled'
		ORDER BY "dueDate" ASC;`
)

func buildFilteredInvoiceQuery(cols []string, opts models.InvoiceFilterOptions) sq.SelectBuilder {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	query := psql.Select(cols...).From("invoices")

	if opts.CondoID != "" {
		query = query.Where(sq.Eq{`"condoId"`: opts.CondoID})
	}

	if opts.UnitID != "" {
		query = query.Where(sq.Eq{`"unitId"`: opts.UnitID})
	}

	if opts.Status != "" {
		query = query.Where(sq.Eq{`"status"`: opts.Status})
	}

	if opts.ReferenceMonth != "" {
		query = query.Where(sq.Eq{`"referenceMonth"`: opts.ReferenceMonth})
	}

	if opts.StartDueDate != nil && opts.EndDueDate != nil {
		query = query.Where(sq.GtOrEq{`"dueDate"`: opts.StartDueDate}).
			Where(sq.LtOrEq{`"dueDate"`: opts.EndDueDate})
	}

	return query
}

func buildListInvoiceQuery(opts models.InvoiceFilterOptions) (sql string, args []interface{}, err error) {
	columns := []string{
		`"number"`,
		`"unitId"`,
		`"condoId"`,
		`"amount"`,
		`"dueDate"`,
		`"status"`,
		`COALESCE("payerName", '') as "payerName"`,
		`COALESCE("payerDocument", '') as "payerDocument"`,
		`COALESCE("ourNumber", '') as "ourNumber"`,
		`COALESCE("bankLine", '') as "bankLine"`,
		`COALESCE("barcode", '') as "barcode"`,
		`"referenceMonth"`,
		`"paidAmount"`,
		`"paidAt"`,
		`COALESCE("paymentOrigin", '') as "paymentOrigin"`,
		`"divergentPayment"`,
		`COALESCE("cancelReason", '') as "cancelReason"`,
		`"bankRegistered"`,
		`COALESCE("rejectReason", '') as "rejectReason"`,
		`"createdAt"`,
		`"updatedAt"`,
	}

	query := buildFilteredInvoiceQuery(columns, opts)

	if opts.AfterCreatedAt != nil {
		query = query.Where(sq.Lt{`"createdAt"`: opts.AfterCreatedAt})
	}

	if opts.BeforeCreatedAt != nil {
		query = query.Where(sq.Gt{`"createdAt"`: opts.BeforeCreatedAt})
	}

	if opts.AscendingOrder {
		query = query.OrderBy(`"createdAt" ASC`)
	} else {
		query = query.OrderBy(`"createdAt" DESC`)
	}

	query = query.Limit(uint64(opts.Limit))

	return query.ToSql()
}

func buildCountInvoiceQuery(opts models.InvoiceFilterOptions) (sql string, args []interface{}, err error) {
	columns := []string{
		`count(1)`,
	}

	query := buildFilteredInvoiceQuery(columns, opts)

	return query.ToSql()
}
