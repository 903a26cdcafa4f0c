package repositories

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/habitado/go-condo-billing/internal/models"
)

const runSelectColumns = `
		  "id",
		  "condoId",
		  "bankAccountId",
		  "kind",
		  "format",
		  "fileName",
		  "filePath",
		  COALESCE("reportPath", '') as "reportPath",
		  "status",
		  "transactionCount",
		  "matchedCount",
		  "suggestedCount",
		  "unmatchedCount",
		  "appliedAmount",
		  COALESCE("failureReason", '') as "failureReason",
		  COALESCE("requestedBy", '') as "requestedBy",
		  "createdAt",
		  "updatedAt"`

var (
	queryRunCreate = `
		INSERT INTO reconciliation_runs(
			"id", "condoId", "bankAccountId", "kind", "format", "fileName", "filePath", "requestedBy", "status", "transactionCount", "matchedCount", "suggestedCount", "unmatchedCount", "appliedAmount", "createdAt", "updatedAt"
		)
		VALUES(
			$1, $2, $3, $4, $5, $6, $7, $8, $9, 0, 0, 0, 0, 0, NOW(), NOW()
		)
		RETURNING
			"id", "status", "createdAt", "updatedAt";
	`

	queryRunGetByID = `SELECT` + runSelectColumns + `
		FROM "reconciliation_runs"
		WHERE "id" = $1;`

	queryRunUpdateStatus = `
		UPDATE reconciliation_runs
		SET "status" = $2, "failureReason" = NULLIF($3, ''), "updatedAt" = NOW()
		WHERE "id" = $1;
	`

	queryRunUpdateResult = `
		UPDATE reconciliation_runs
		SET "status" = $2, "format" = $3, "reportPath" = NULLIF($4, ''), "transactionCount" = $5, "matchedCount" = $6, "suggestedCount" = $7, "unmatchedCount" = $8, "appliedAmount" = $9, "failureReason" = NULLIF($10, ''), "updatedAt" = NOW()
		WHERE "id" = $1;
	`

	queryRunExistsByFileName = `SELECT 1
		FROM "reconciliation_runs"
		WHERE "condoId" = $1 AND "fileName" = $2
		LIMIT 1;`
)

func buildFilteredRunQuery(cols []string, opts models.RunFilterOptions) sq.SelectBuilder {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	query := psql.Select(cols...).From("reconciliation_runs")

	if opts.CondoID != "" {
		query = query.Where(sq.Eq{`"condoId"`: opts.CondoID})
	}

	if opts.Kind != "" {
		query = query.Where(sq.Eq{`"kind"`: opts.Kind})
	}

	if opts.Status != nil {
		query = query.Where(sq.Eq{`"status"`: *opts.Status})
	}

	if opts.StartDate != nil && opts.EndDate != nil {
		query = query.Where(sq.GtOrEq{`"createdAt"`: opts.StartDate}).
			Where(sq.LtOrEq{`"createdAt"`: opts.EndDate})
	}

	return query
}

func buildListRunQuery(opts models.RunFilterOptions) (sql string, args []interface{}, err error) {
	columns := []string{
		`"id"`,
		`"condoId"`,
		`"bankAccountId"`,
		`"kind"`,
		`"format"`,
		`"fileName"`,
		`"filePath"`,
		`COALESCE("reportPath", '') as "reportPath"`,
		`"status"`,
		`"transactionCount"`,
		`"matchedCount"`,
		`"suggestedCount"`,
		`"unmatchedCount"`,
		`"appliedAmount"`,
		`COALESCE("failureReason", '') as "failureReason"`,
		`COALESCE("requestedBy", '') as "requestedBy"`,
		`"createdAt"`,
		`"updatedAt"`,
	}

	query := buildFilteredRunQuery(columns, opts)

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

func buildCountRunQuery(opts models.RunFilterOptions) (sql string, args []interface{}, err error) {
	columns := []string{
		`count(1)`,
	}

	query := buildFilteredRunQuery(columns, opts)

	return query.ToSql()
}
