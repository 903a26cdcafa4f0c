package common

import (
	"database/sql"
	"errors"
	"fmt"
)

var (
	ErrNoRowsAffected      = errors.New("no rows affected")
	ErrValidation          = errors.New("validation failed")
	ErrDataNotFound        = errors.New("data not found")
	ErrInternalServerError = errors.New("internal server error")
	ErrInvalidFormatDate   = errors.New("invalid format date")
	ErrIDEmpty             = errors.New("ID is empty")
	ErrDataExist           = errors.New("data exist")
	ErrUnableToCreate      = errors.New("unable to create data")
	ErrUnableToUpdate      = errors.New("unable to update data")
	ErrNoRows              = sql.ErrNoRows

	ErrInvalidAmount           = errors.New("amount must be greater than zero")
	ErrUnitNotFound            = errors.New("unit not found")
	ErrInvoiceNotFound         = errors.New("invoice not found")
	ErrInvoiceDuplicate        = errors.New("duplicate invoice found by reference month")
	ErrInvoiceAlreadyPaid      = errors.New("invoice already paid")
	ErrInvoiceCancelled        = errors.New("invoice cancelled")
	ErrInvalidStatus           = errors.New("invalid invoice status")
	ErrInvalidStatusTransition = errors.New("invoice status transition not allowed")

	ErrFilePathEmpty          = errors.New("file path is empty")
	ErrUnsupportedFileFormat  = errors.New("unsupported statement file format")
	ErrStatementEmpty         = errors.New("statement contains no transactions")
	ErrStatementLineMalformed = errors.New("statement line malformed")
	ErrRetornoHeaderMissing   = errors.New("retorno header record missing")
	ErrUnableToReconcile      = errors.New("unable to reconcile")
	ErrRunNotFound            = errors.New("reconciliation run not found")
	ErrRunAlreadyProcessed    = errors.New("reconciliation run already processed")

	ErrSuggestionNotFound     = errors.New("match suggestion not found")
	ErrSuggestionDecided      = errors.New("match suggestion already decided")
	ErrUnableGetParser        = errors.New("unable to get statement parser")
	ErrRiskScoreNotFound      = errors.New("risk score not found")
	ErrInvalidRiskWeights     = errors.New("risk weights must be non-negative and sum to 1.0")
	ErrRowLimitDownloadExceed = errors.New("row limit download exceed")
	ErrCSVRowIsEmpty          = errors.New("csv row is empty")

	ErrMissingIdempotencyKey = errors.New("missing idempotency key")
	ErrInvalidFingerprint    = errors.New("idempotency key reused with a different request body")
	ErrRequestBeingProcessed = errors.New("request with same idempotency key is being processed")
)

type WrapError struct {
	Causer interface{}
	Err    error
}

func (e WrapError) Error() string {
	return fmt.Sprintf("%v, root cause: %v", e.Causer, e.Err)
}
