package models

import (
	"strconv"
	"time"

	"github.com/habitado/go-condo-billing/internal/common"

	"github.com/shopspring/decimal"
)

// OccurrenceCode is the two-digit movement code of a CNAB400 return detail
// record. Only the codes the collections flow acts on are named; anything
// else is reported as unhandled.
type OccurrenceCode string

const (
	OccurrenceEntryConfirmed      OccurrenceCode = "02"
	OccurrenceEntryRejected       OccurrenceCode = "03"
	OccurrenceSettled             OccurrenceCode = "06"
	OccurrenceBankWriteOff        OccurrenceCode = "09"
	OccurrenceRequestedWriteOff   OccurrenceCode = "10"
	OccurrenceDueDateChanged      OccurrenceCode = "14"
	OccurrenceSettledAfterWriteOf OccurrenceCode = "17"
)

func (c OccurrenceCode) Title() string {
	switch c {
	case OccurrenceEntryConfirmed:
		return "entrada confirmada"
	case OccurrenceEntryRejected:
		return "entrada rejeitada"
	case OccurrenceSettled:
		return "liquidação normal"
	case OccurrenceBankWriteOff:
		return "baixa pelo banco"
	case OccurrenceRequestedWriteOff:
		return "baixa conforme pedido"
	case OccurrenceDueDateChanged:
		return "vencimento alterado"
	case OccurrenceSettledAfterWriteOf:
		return "liquidação após baixa"
	default:
		return "ocorrência desconhecida"
	}
}

// IsSettlement reports whether the occurrence means the boleto was paid at
// the bank.
func (c OccurrenceCode) IsSettlement() bool {
	return c == OccurrenceSettled || c == OccurrenceSettledAfterWriteOf
}

// IsWriteOff reports whether the occurrence removes the boleto from bank
// registry without payment.
func (c OccurrenceCode) IsWriteOff() bool {
	return c == OccurrenceBankWriteOff || c == OccurrenceRequestedWriteOff
}

func (c OccurrenceCode) IsKnown() bool {
	switch c {
	case OccurrenceEntryConfirmed, OccurrenceEntryRejected, OccurrenceSettled,
		OccurrenceBankWriteOff, OccurrenceRequestedWriteOff, OccurrenceDueDateChanged,
		OccurrenceSettledAfterWriteOf:
		return true
	default:
		return false
	}
}

// RetornoEvent is one parsed CNAB400 detail record.
type RetornoEvent struct {
	NossoNumero    string          `json:"nossoNumero"`
	SeuNumero      string          `json:"seuNumero"`
	Occurrence     OccurrenceCode  `json:"occurrence"`
	OccurrenceDate time.Time       `json:"occurrenceDate"`
	DueDate        *time.Time      `json:"dueDate,omitempty"`
	TitleAmount    decimal.Decimal `json:"titleAmount"`
	BankFee        decimal.Decimal `json:"bankFee"`
	PaidAmount     decimal.Decimal `json:"paidAmount"`
	Interest       decimal.Decimal `json:"interest"`
	CreditDate     *time.Time      `json:"creditDate,omitempty"`
	RejectReason   string          `json:"rejectReason,omitempty"`
	Line           int             `json:"line"`
}

// RetornoOutcome is what happened when one event was applied to an invoice,
// reported line by line in the run report.
type RetornoOutcome string

const (
	RetornoOutcomeApplied       RetornoOutcome = "applied"
	RetornoOutcomeIdempotent    RetornoOutcome = "already_paid"
	RetornoOutcomeConflict      RetornoOutcome = "conflict"
	RetornoOutcomeUnknownCode   RetornoOutcome = "unknown_occurrence"
	RetornoOutcomeUnknownTitle  RetornoOutcome = "unknown_invoice"
	RetornoOutcomeDivergentPaid RetornoOutcome = "applied_divergent"
)

// RetornoLineResult pairs an event with its application outcome for reports
// and counters.
type RetornoLineResult struct {
	Event         RetornoEvent
	InvoiceNumber string
	Outcome       RetornoOutcome
	Detail        string
}

// ToReportCSVRow renders the result as one line of the run report, following
// constants.ReportCSVHeaders. Settlements report the paid amount, every other
// occurrence reports the title amount.
func (r RetornoLineResult) ToReportCSVRow() []string {
	amount := r.Event.TitleAmount
	if r.Event.Occurrence.IsSettlement() {
		amount = r.Event.PaidAmount
	}

	return []string{
		strconv.Itoa(r.Event.Line),
		common.FormatDatetimeToString(r.Event.OccurrenceDate, common.DateFormatYYYYMMDD),
		"",
		amount.String(),
		r.Event.Occurrence.Title(),
		r.Event.NossoNumero,
		r.InvoiceNumber,
		"",
		"",
		string(r.Outcome),
		r.Detail,
	}
}

// RetornoSummary tallies one retorno run for the run row and the report
// footer.
type RetornoSummary struct {
	Total         int
	ByOutcome     map[RetornoOutcome]int
	AppliedAmount decimal.Decimal
}

func NewRetornoSummary() RetornoSummary {
	return RetornoSummary{ByOutcome: map[RetornoOutcome]int{}}
}

func (s *RetornoSummary) Add(r RetornoLineResult) {
	s.Total++
	s.ByOutcome[r.Outcome]++

	if r.Outcome == RetornoOutcomeApplied || r.Outcome == RetornoOutcomeDivergentPaid {
		s.AppliedAmount = s.AppliedAmount.Add(r.Event.PaidAmount)
	}
}

// SettledCount counts the lines whose title ended up paid, including the
// redeliveries that found it already settled.
func (s RetornoSummary) SettledCount() int {
	return s.ByOutcome[RetornoOutcomeApplied] +
		s.ByOutcome[RetornoOutcomeDivergentPaid] +
		s.ByOutcome[RetornoOutcomeIdempotent]
}

// ProblemCount counts the lines a person still has to look at.
func (s RetornoSummary) ProblemCount() int {
	return s.ByOutcome[RetornoOutcomeConflict] +
		s.ByOutcome[RetornoOutcomeUnknownCode] +
		s.ByOutcome[RetornoOutcomeUnknownTitle]
}
