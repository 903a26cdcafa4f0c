package repositories

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/habitado/go-condo-billing/internal/models"
)

var (
	queryUnitCreate = `
		INSERT INTO units(
			"id", "condoId", "block", "number", "label", "ownerName", "ownerDocument", "email", "fraction", "monthlyFee", "active", "createdAt", "updatedAt"
		)
		VALUES(
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, TRUE, NOW(), NOW()
		)
		RETURNING
			"id", "active", "createdAt", "updatedAt";
	`

	queryUnitGetByID = `SELECT
		  "id",
		  "condoId",
		  "block",
		  "number",
		  "label",
		  "ownerName",
		  COALESCE("ownerDocument", '') as "ownerDocument",
		  COALESCE("email", '') as "email",
		  COALESCE("fraction", 0) as "fraction",
		  COALESCE("monthlyFee", 0) as "monthlyFee",
		  "active",
		  "createdAt",
		  "updatedAt"
		FROM "units"
		WHERE id = $1;`

	queryUnitGetActiveCondoIDs = `SELECT DISTINCT "condoId" FROM "units" WHERE "active" = TRUE ORDER BY "condoId" ASC;`

	queryUnitGetByIDs = `SELECT
		  "id",
		  "condoId",
		  "block",
		  "number",
		  "label",
		  "ownerName",
		  COALESCE("ownerDocument", '') as "ownerDocument",
		  COALESCE("email", '') as "email",
		  COALESCE("fraction", 0) as "fraction",
		  COALESCE("monthlyFee", 0) as "monthlyFee",
		  "active",
		  "createdAt",
		  "updatedAt"
		FROM "units"
		WHERE "id" = ANY($1);`
)

func buildFilteredUnitQuery(cols []string, opts models.UnitFilterOptions) sq.SelectBuilder {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	query := psql.Select(cols...).From("units")

	if opts.CondoID != "" {
		query = query.Where(sq.Eq{`"condoId"`: opts.CondoID})
	}

	if opts.OwnerName != "" {
		query = query.Where(sq.ILike{`"ownerName"`: "%" + opts.OwnerName + "%"})
	}

	if opts.Active != nil {
		query = query.Where(sq.Eq{`"active"`: *opts.Active})
	}

	return query
}

func buildListUnitQuery(opts models.UnitFilterOptions) (sql string, args []interface{}, err error) {
	columns := []string{
		`"id"`,
		`"condoId"`,
		`"block"`,
		`"number"`,
		`"label"`,
		`"ownerName"`,
		`COALESCE("ownerDocument", '') as "ownerDocument"`,
		`COALESCE("email", '') as "email"`,
		`COALESCE("fraction", 0) as "fraction"`,
		`COALESCE("monthlyFee", 0) as "monthlyFee"`,
		`"active"`,
		`"createdAt"`,
		`"updatedAt"`,
	}

	query := buildFilteredUnitQuery(columns, opts)

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

func buildCountUnitQuery(opts models.UnitFilterOptions) (sql string, args []interface{}, err error) {
	columns := []string{
		`count(1)`,
	}

	query := buildFilteredUnitQuery(columns, opts)

	return query.ToSql()
}

func buildActiveUnitIDsQuery(condoID string) (sql string, args []interface{}, err error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	query := psql.Select(`"id"`).From("units").Where(sq.Eq{`"active"`: true})

	if condoID != "" {
		query = query.Where(sq.Eq{`"condoId"`: condoID})
	}

	query = query.OrderBy(`"id" ASC`)

	return query.ToSql()
}
