package constants

// Log Prefixes
const (
	LogPrefixKafkaConsumer   = "[KAFKA-CONSUMER] [RECONCILIATION] "
	LogPrefixProcessMessage  = "[PROCESS-MESSAGE]"
	LogPrefixReconciliation  = "[RECONCILIATION]"
	LogPrefixRetorno         = "[RETORNO]"
	LogPrefixRiskScoring     = "[RISK-SCORING]"
	LogPrefixCollectionQueue = "[COLLECTION-QUEUE]"
	LogPrefixOverdueSweep    = "[OVERDUE-SWEEP]"
)

// Error Messages
const (
	ErrMsgUnmarshalJSON           = "error unmarshal json to raw: %w"
	ErrMsgAtLeastOneField         = "at least one field must be provided for update"
	ErrMsgInvalidStatusTransition = "status transition from %s to %s is not allowed"
)

// Date Formats
const (
	DateFormatYYYYMMDD     = "2006-01-02"
	DefaultDatePlaceholder = "-"
)

// Pagination
const (
	DefaultLimit = 10
	// OverFetchOffset is added to every list limit so the repository fetches
	// one extra row, which tells the responder whether a next page exists.
	OverFetchOffset = 1
)

// Reconciliation
const (
	ReconciliationReferencePrefix = "RUN-"
	ReconciliationKind            = "reconciliation"
)

// ReportCSVHeaders are the columns of the reconciliation report uploaded to
// cloud storage after each run.
var ReportCSVHeaders = []string{
	"line",
	"transactionDate",
	"direction",
	"amount",
	"description",
	"reference",
	"invoiceNumber",
	"method",
	"confidence",
	"outcome",
	"detail",
}

// InvoiceCSVHeaders are the columns of the invoice export download.
var InvoiceCSVHeaders = []string{
	"number",
	"unitId",
	"referenceMonth",
	"amount",
	"dueDate",
	"status",
	"payerName",
	"ourNumber",
	"paidAmount",
	"paidAt",
	"paymentOrigin",
}
