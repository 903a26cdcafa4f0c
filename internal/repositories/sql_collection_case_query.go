package repositories

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/habitado/go-condo-billing/internal/models"
)

var (
	queryCollectionCaseDeleteByCondo = `DELETE FROM collection_cases WHERE "condoId" = $1;`

	queryCollectionCandidates = `SELECT
		  o."unitId",
		  o."condoId",
		  COALESCE(r."score", 0) as "score",
		  COALESCE(r."bucket", 'low') as "bucket",
		  o."overdueAmount",
		  o."overdueCount",
		  o."oldestDueDate",
		  s."bestConfidence"
		FROM (
			SELECT "unitId", "condoId", SUM("amount") as "overdueAmount", COUNT(1) as "overdueCount", MIN("dueDate") as "oldestDueDate"
			FROM invoices
			WHERE "status" = 'overdue' AND "condoId" = $1
			GROUP BY "unitId", "condoId"
		) o
		LEFT JOIN (
			SELECT DISTINCT ON ("unitId") "unitId", "score", "bucket"
			FROM risk_scores
			ORDER BY "unitId" ASC, "computedAt" DESC
		) r ON r."unitId" = o."unitId"
		LEFT JOIN (
			SELECT i."unitId", MAX(m."confidence") as "bestConfidence"
			FROM match_results m
			JOIN invoices i ON i."number" = m."invoiceNumber"
			WHERE m."status" = 'suggested' AND i."status" = 'overdue'
			GROUP BY i."unitId"
		) s ON s."unitId" = o."unitId"
		ORDER BY o."unitId" ASC;`
)

func buildFilteredCollectionCaseQuery(cols []string, opts models.CollectionFilterOptions) sq.SelectBuilder {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	query := psql.Select(cols...).From("collection_cases")

	if opts.CondoID != "" {
		query = query.Where(sq.Eq{`"condoId"`: opts.CondoID})
	}

	if opts.Bucket != "" {
		query = query.Where(sq.Eq{`"riskBucket"`: opts.Bucket})
	}

	return query
}

func buildListCollectionCaseQuery(opts models.CollectionFilterOptions) (sql string, args []interface{}, err error) {
	columns := []string{
		`"id"`,
		`"unitId"`,
		`"unitLabel"`,
		`"ownerName"`,
		`"condoId"`,
		`"priority"`,
		`"rank"`,
		`"riskScore"`,
		`"riskBucket"`,
		`"overdueAmount"`,
		`"overdueCount"`,
		`"oldestDueDate"`,
		`"daysOverdue"`,
		`"matchConfidence"`,
		`"recommendedAction"`,
		`"builtAt"`,
	}

	query := buildFilteredCollectionCaseQuery(columns, opts)

	if opts.AfterRank != nil {
		query = query.Where(sq.Gt{`"rank"`: *opts.AfterRank})
	}

	if opts.BeforeRank != nil {
		query = query.Where(sq.Lt{`"rank"`: *opts.BeforeRank})
	}

	if opts.DescendingOrder {
		query = query.OrderBy(`"rank" DESC`)
	} else {
		query = query.OrderBy(`"rank" ASC`)
	}

	query = query.Limit(uint64(opts.Limit))

	return query.ToSql()
}

func buildCountCollectionCaseQuery(opts models.CollectionFilterOptions) (sql string, args []interface{}, err error) {
	columns := []string{
		`count(1)`,
	}

	query := buildFilteredCollectionCaseQuery(columns, opts)

	return query.ToSql()
}
