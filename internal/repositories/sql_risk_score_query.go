package repositories

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/habitado/go-condo-billing/internal/models"
)

const riskScoreSelectColumns = `
		  "id",
		  "unitId",
		  "condoId",
		  "score",
		  "bucket",
		  "recommendedAction",
		  "factors",
		  "windowMonths",
		  "computedAt"`

var (
	queryRiskScoreCreate = `
		INSERT INTO risk_scores(
			"id", "unitId", "condoId", "score", "bucket", "recommendedAction", "factors", "windowMonths", "computedAt"
		)
		VALUES(
			$1, $2, $3, $4, $5, $6, $7, $8, NOW()
		)
		RETURNING
			"id", "computedAt";
	`

	queryRiskScoreGetLatestByUnit = `SELECT` + riskScoreSelectColumns + `
		FROM "risk_scores"
		WHERE "unitId" = $1
		ORDER BY "computedAt" DESC
		LIMIT 1;`

	// latest row per unit; history rows stay out of listings
	latestRiskScorePerUnit = `(SELECT DISTINCT ON ("unitId")
		  "id", "unitId", "condoId", "score", "bucket", "recommendedAction", "factors", "windowMonths", "computedAt"
		FROM risk_scores
		ORDER BY "unitId" ASC, "computedAt" DESC) AS latest`
)

func buildFilteredRiskScoreQuery(cols []string, opts models.RiskFilterOptions) sq.SelectBuilder {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	query := psql.Select(cols...).From(latestRiskScorePerUnit)

	if opts.CondoID != "" {
		query = query.Where(sq.Eq{`"condoId"`: opts.CondoID})
	}

	if opts.Bucket != "" {
		query = query.Where(sq.Eq{`"bucket"`: opts.Bucket})
	}

	return query
}

func buildListRiskScoreQuery(opts models.RiskFilterOptions) (sql string, args []interface{}, err error) {
	columns := []string{
		`"id"`,
		`"unitId"`,
		`"condoId"`,
		`"score"`,
		`"bucket"`,
		`"recommendedAction"`,
		`"factors"`,
		`"windowMonths"`,
		`"computedAt"`,
	}

	query := buildFilteredRiskScoreQuery(columns, opts)

	if opts.AfterComputedAt != nil {
		query = query.Where(sq.Lt{`"computedAt"`: opts.AfterComputedAt})
	}

	if opts.BeforeComputedAt != nil {
		query = query.Where(sq.Gt{`"computedAt"`: opts.BeforeComputedAt})
	}

	if opts.AscendingOrder {
		query = query.OrderBy(`"computedAt" ASC`)
	} else {
		query = query.OrderBy(`"computedAt" DESC`)
	}

	query = query.Limit(uint64(opts.Limit))

	return query.ToSql()
}

func buildCountRiskScoreQuery(opts models.RiskFilterOptions) (sql string, args []interface{}, err error) {
	columns := []string{
		`count(1)`,
	}

	query := buildFilteredRiskScoreQuery(columns, opts)

	return query.ToSql()
}
