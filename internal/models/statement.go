package models

import (
	"fmt"
	"mime/multipart"
	"time"

	"github.com/shopspring/decimal"
)

// Format identifies the layout of an uploaded bank file.
type Format string

const (
	FormatOFX     Format = "ofx"
	FormatCNAB240 Format = "cnab240"
	FormatCNAB400 Format = "cnab400"
	FormatUnknown Format = "unknown"
)

func (f Format) String() string {
	return string(f)
}

// Direction tells whether a statement entry moved money into or out of the
// condo account.
type Direction string

const (
	DirectionCredit Direction = "credit"
	DirectionDebit  Direction = "debit"
)

// BankTransaction is one normalized statement entry. It lives only for the
// duration of a reconciliation run; match_results rows are its persistent
// trace.
type BankTransaction struct {
	Date           time.Time       `json:"date"`
	Direction      Direction       `json:"direction"`
	Amount         decimal.Decimal `json:"amount"`
	Description    string          `json:"description"`
	ReferenceID    string          `json:"referenceId,omitempty"`
	DocumentNumber string          `json:"documentNumber,omitempty"`
	Category       string          `json:"category,omitempty"`
	HistoryCode    string          `json:"historyCode,omitempty"`
	Line           int             `json:"line"`
}

// IsCredit reports whether the entry is matchable against invoices. Debits
// never are.
func (t BankTransaction) IsCredit() bool {
	return t.Direction == DirectionCredit
}

// StatementMeta carries the file-level identification parsed from headers.
type StatementMeta struct {
	BankCode    string     `json:"bankCode,omitempty"`
	AccountID   string     `json:"accountId,omitempty"`
	CompanyName string     `json:"companyName,omitempty"`
	Currency    string     `json:"currency,omitempty"`
	PeriodStart *time.Time `json:"periodStart,omitempty"`
	PeriodEnd   *time.Time `json:"periodEnd,omitempty"`
	GeneratedAt *time.Time `json:"generatedAt,omitempty"`
}

// ParseError is a positional problem found while reading a bank file. Parse
// errors are collected, not fatal, unless the file yields zero records.
type ParseError struct {
	Line    int    `json:"line"`
	Message string `json:"message"`
}

func (e ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Message)
}

// ParsedStatement is the uniform output of every statement parser. Statement
// files fill Transactions; CNAB400 return files fill Events as well.
type ParsedStatement struct {
	Format       Format            `json:"format"`
	Meta         StatementMeta     `json:"meta"`
	Transactions []BankTransaction `json:"transactions"`
	Events       []RetornoEvent    `json:"events,omitempty"`
	Errors       []ParseError      `json:"errors,omitempty"`
}

// ReconciliationKind distinguishes what an uploaded file represents:
// a regular account statement or a bank return (retorno) file.
const (
	RunKindStatement = "statement"
	RunKindRetorno   = "retorno"
)

type UploadStatementRequest struct {
	CondoID       string                `json:"condoId" validate:"required,noStartEndSpaces" example:"CONDO-SOLARDASACACIAS"`
	BankAccountID string                `json:"bankAccountId" validate:"required,noStartEndSpaces" example:"0001-123456"`
	Kind          string                `json:"kind" validate:"omitempty,oneof=statement retorno" example:"statement"`
	RequestedBy   string                `json:"requestedBy" validate:"omitempty,max=120" example:"sindico@example.com"`
	StatementFile *multipart.FileHeader `json:"statementFile" validate:"required" example:"ofx file"`
}

type UploadStatementResponse struct {
	Kind    string `json:"kind"`
	ID      string `json:"id"`
	Message string `json:"message"`
}

func NewUploadStatementResponse(runID string) *UploadStatementResponse {
	return &UploadStatementResponse{
		Kind:    "reconciliationRun",
		ID:      runID,
		Message: "Processing",
	}
}
