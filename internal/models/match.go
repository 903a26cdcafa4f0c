package models

import (
	"database/sql/driver"
	"encoding/base64"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/habitado/go-condo-billing/internal/common"
)

const (
	kindMatchSuggestion = "matchSuggestion"

	// MatchResultIDPrefix prefixes every persisted match result id.
	MatchResultIDPrefix = "MAT"
)

// MatchMethod names the tier that produced a match candidate.
type MatchMethod string

const (
	MatchMethodExactReference   MatchMethod = "exact_reference"
	MatchMethodValueDescription MatchMethod = "value_description"
	MatchMethodApproximateValue MatchMethod = "approximate_value"
)

// MatchOutcome is the reconciliation outcome of one statement entry, and the
// status column of persisted match_results rows. Unmatched and ignored
// entries appear only in run reports and counters.
type MatchOutcome string

const (
	MatchOutcomeAutoApplied  MatchOutcome = "auto_applied"
	MatchOutcomeSuggested    MatchOutcome = "suggested"
	MatchOutcomeApproved     MatchOutcome = "approved"
	MatchOutcomeRejected     MatchOutcome = "rejected"
	MatchOutcomeUnmatched    MatchOutcome = "unmatched"
	MatchOutcomeIgnoredDebit MatchOutcome = "ignored_debit"
)

// IsDecided reports whether a suggestion already received a terminal manual
// decision.
func (o MatchOutcome) IsDecided() bool {
	return o == MatchOutcomeApproved || o == MatchOutcomeRejected
}

// MatchAlternate is one ranked fallback candidate stored on the result row.
type MatchAlternate struct {
	InvoiceNumber string      `json:"invoiceNumber"`
	Confidence    float64     `json:"confidence"`
	Method        MatchMethod `json:"method"`
	DueDate       string      `json:"dueDate,omitempty"`
	Amount        Decimal     `json:"amount"`
}

// MatchAlternates is stored as a JSONB column on match_results.
type MatchAlternates []MatchAlternate

func (ma MatchAlternates) Value() (driver.Value, error) {
	if len(ma) == 0 {
		return nil, nil
	}

	jsonValue, err := json.Marshal(ma)
	if err != nil {
		return nil, err
	}
	return jsonValue, nil
}

func (ma *MatchAlternates) Scan(value interface{}) error {
	if value == nil {
		*ma = nil
		return nil
	}

	jsonValue, ok := value.([]byte)
	if !ok {
		return errors.New("invalid JSON data")
	}

	if err := json.Unmarshal(jsonValue, ma); err != nil {
		return err
	}
	return nil
}

// MatchResult is the outcome of reconciling one bank transaction against the
// open invoices of a run.
type MatchResult struct {
	ID            string
	RunID         string
	Line          int
	TransactionAt time.Time
	Direction     Direction
	Amount        Decimal
	Description   string
	Reference     string
	InvoiceNumber string
	Method        MatchMethod
	Confidence    float64
	Outcome       MatchOutcome
	Alternates    MatchAlternates
	Detail        string
	DecidedBy     string
	DecidedAt     *time.Time
	CreatedAt     *time.Time
	UpdatedAt     *time.Time
}

// ShouldPersist reports whether the result becomes a match_results row.
// Unmatched and ignored entries only show up in the report file.
func (mr MatchResult) ShouldPersist() bool {
	return mr.Outcome == MatchOutcomeAutoApplied || mr.Outcome == MatchOutcomeSuggested
}

func (mr MatchResult) GetCursor() string {
	offsetBytes := []byte(mr.CreatedAt.Format(time.RFC3339Nano))
	return base64.StdEncoding.EncodeToString(offsetBytes)
}

func (mr MatchResult) ToModelResponse() MatchSuggestionOut {
	out := MatchSuggestionOut{
		Kind:          kindMatchSuggestion,
		ID:            mr.ID,
		RunID:         mr.RunID,
		InvoiceNumber: mr.InvoiceNumber,
		TransactionAt: common.FormatDatetimeToString(mr.TransactionAt, common.DateFormatYYYYMMDD),
		Amount:        mr.Amount,
		Description:   mr.Description,
		Reference:     mr.Reference,
		Method:        string(mr.Method),
		Confidence:    mr.Confidence,
		Status:        string(mr.Outcome),
		Alternates:    mr.Alternates,
		DecidedBy:     mr.DecidedBy,
	}

	if mr.DecidedAt != nil {
		out.DecidedAt = common.FormatDatetimeToString(*mr.DecidedAt, common.DateFormatYYYYMMDDWithTime)
	}
	if mr.CreatedAt != nil {
		out.CreatedAt = common.FormatDatetimeToString(*mr.CreatedAt, common.DateFormatYYYYMMDDWithTime)
	}

	return out
}

// ToReportCSVRow renders the result as one line of the run report, following
// constants.ReportCSVHeaders.
func (mr MatchResult) ToReportCSVRow() []string {
	confidence := ""
	if mr.Method != "" {
		confidence = strconv.FormatFloat(mr.Confidence, 'f', 4, 64)
	}

	return []string{
		strconv.Itoa(mr.Line),
		common.FormatDatetimeToString(mr.TransactionAt, common.DateFormatYYYYMMDD),
		string(mr.Direction),
		mr.Amount.String(),
		mr.Description,
		mr.Reference,
		mr.InvoiceNumber,
		string(mr.Method),
		confidence,
		string(mr.Outcome),
		mr.Detail,
	}
}

type MatchSuggestionOut struct {
	Kind          string          `json:"kind" example:"matchSuggestion"`
	ID            string          `json:"id" example:"MAT-1698222506527QsPDvPJxRoy"`
	RunID         string          `json:"runId" example:"RUN-1698222506527QsPDvPJxRoy"`
	InvoiceNumber string          `json:"invoiceNumber" example:"INV-1698222506527QsPDvPJxRoy"`
	TransactionAt string          `json:"transactionAt" example:"2023-11-09"`
	Amount        Decimal         `json:"amount" example:"850.00"`
	Description   string          `json:"description" example:"PIX RECEBIDO MARIA SOUZA"`
	Reference     string          `json:"reference" example:"E60701190202311091234"`
	Method        string          `json:"method" example:"value_description"`
	Confidence    float64         `json:"confidence" example:"0.87"`
	Status        string          `json:"status" example:"suggested"`
	Alternates    MatchAlternates `json:"alternates,omitempty"`
	DecidedBy     string          `json:"decidedBy,omitempty" example:"sindico@example.com"`
	DecidedAt     string          `json:"decidedAt,omitempty" example:"2023-11-10 09:12:44"`
	CreatedAt     string          `json:"createdAt" example:"2023-11-09 23:41:02"`
}

// Suggestion decisions.
const (
	SuggestionActionApprove = "approve"
	SuggestionActionReject  = "reject"
)

type DecideSuggestionRequest struct {
	ID        string `json:"-" validate:"required"`
	Action    string `json:"action" validate:"required,oneof=approve reject" example:"approve"`
	DecidedBy string `json:"decidedBy" validate:"omitempty,max=120" example:"sindico@example.com"`
}

type DecideSuggestionResponse struct {
	Kind   string `json:"kind"`
	ID     string `json:"id"`
	Status string `json:"status"`
}

func NewDecideSuggestionResponse(id string, outcome MatchOutcome) *DecideSuggestionResponse {
	return &DecideSuggestionResponse{
		Kind:   kindMatchSuggestion,
		ID:     id,
		Status: string(outcome),
	}
}
