package repositories

const matchResultSelectColumns = `
		  "id",
		  "runId",
		  "line",
		  "transactionAt",
		  "direction",
		  "amount",
		  "description",
		  COALESCE("reference", '') as "reference",
		  COALESCE("invoiceNumber", '') as "invoiceNumber",
		  COALESCE("method", '') as "method",
		  "confidence",
		  "status",
		  "alternates",
		  COALESCE("detail", '') as "detail",
		  COALESCE("decidedBy", '') as "decidedBy",
		  "decidedAt",
		  "createdAt",
		  "updatedAt"`

var (
	queryMatchResultGetByID = `SELECT` + matchResultSelectColumns + `
		FROM "match_results"
		WHERE "id" = $1;`

	queryMatchResultGetSuggestionsByRun = `SELECT` + matchResultSelectColumns + `
		FROM "match_results"
		WHERE "runId" = $1 AND "status" = 'suggested'
		ORDER BY "line" ASC;`

	queryMatchResultDecide = `
		UPDATE match_results
		SET "status" = $2, "decidedBy" = NULLIF($3, ''), "decidedAt" = NOW(), "updatedAt" = NOW()
		WHERE "id" = $1 AND "status" = 'suggested'
		RETURNING` + matchResultSelectColumns + `;`

	queryMatchResultDeleteByRun = `DELETE FROM "match_results" WHERE "runId" = $1;`
)
