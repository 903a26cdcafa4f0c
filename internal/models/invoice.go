package models

import (
	"encoding/base64"
	"io"
	"time"

	"github.com/habitado/go-condo-billing/internal/common"
	"github.com/habitado/go-condo-billing/internal/common/constants"

	"github.com/shopspring/decimal"
)

const (
	kindInvoice = "invoice"

	// InvoiceNumberPrefix prefixes every generated invoice number.
	InvoiceNumberPrefix = "INV"
)

// InvoiceStatus is the lifecycle state of a boleto.
type InvoiceStatus string

const (
	InvoiceStatusPending   InvoiceStatus = "pending"
	InvoiceStatusPaid      InvoiceStatus = "paid"
	InvoiceStatusOverdue   InvoiceStatus = "overdue"
	InvoiceStatusCancelled InvoiceStatus = "cancelled"
)

// invoiceStatusTransitions lists the allowed moves. Paid and cancelled are
// terminal.
var invoiceStatusTransitions = map[InvoiceStatus][]InvoiceStatus{
	InvoiceStatusPending: {InvoiceStatusPaid, InvoiceStatusOverdue, InvoiceStatusCancelled},
	InvoiceStatusOverdue: {InvoiceStatusPaid, InvoiceStatusCancelled},
}

func (s InvoiceStatus) String() string {
	return string(s)
}

func (s InvoiceStatus) CanTransitionTo(next InvoiceStatus) bool {
	for _, allowed := range invoiceStatusTransitions[s] {
		if next == allowed {
			return true
		}
	}

	return false
}

// IsOpen reports whether the invoice still awaits payment.
func (s InvoiceStatus) IsOpen() bool {
	return s == InvoiceStatusPending || s == InvoiceStatusOverdue
}

func (s InvoiceStatus) IsTerminal() bool {
	return s == InvoiceStatusPaid || s == InvoiceStatusCancelled
}

func ParseInvoiceStatus(raw string) (InvoiceStatus, bool) {
	switch InvoiceStatus(raw) {
	case InvoiceStatusPending, InvoiceStatusPaid, InvoiceStatusOverdue, InvoiceStatusCancelled:
		return InvoiceStatus(raw), true
	default:
		return "", false
	}
}

// Payment origins recorded on paid invoices.
const (
	PaymentOriginManual         = "manual"
	PaymentOriginReconciliation = "reconciliation"
	PaymentOriginRetorno        = "retorno"
)

// Invoice is one condo fee boleto issued against a unit.
type Invoice struct {
	Number           string
	UnitID           string
	CondoID          string
	Amount           Decimal
	DueDate          *time.Time
	Status           InvoiceStatus
	PayerName        string
	PayerDocument    string
	OurNumber        string
	BankLine         string
	Barcode          string
	ReferenceMonth   string
	PaidAmount       decimal.NullDecimal
	PaidAt           *time.Time
	PaymentOrigin    string
	DivergentPayment bool
	CancelReason     string
	BankRegistered   bool
	RejectReason     string
	CreatedAt        *time.Time
	UpdatedAt        *time.Time
}

func (inv Invoice) GetCursor() string {
	offsetBytes := []byte(inv.CreatedAt.Format(time.RFC3339Nano))
	return base64.StdEncoding.EncodeToString(offsetBytes)
}

func (inv Invoice) ToModelResponse() InvoiceOut {
	out := InvoiceOut{
		Kind:             kindInvoice,
		Number:           inv.Number,
		UnitID:           inv.UnitID,
		CondoID:          inv.CondoID,
		Amount:           inv.Amount,
		DueDate:          common.FormatDatetimeToString(*inv.DueDate, common.DateFormatYYYYMMDD),
		Status:           inv.Status.String(),
		PayerName:        inv.PayerName,
		PayerDocument:    inv.PayerDocument,
		OurNumber:        inv.OurNumber,
		BankLine:         inv.BankLine,
		Barcode:          inv.Barcode,
		ReferenceMonth:   inv.ReferenceMonth,
		PaymentOrigin:    inv.PaymentOrigin,
		DivergentPayment: inv.DivergentPayment,
		CancelReason:     inv.CancelReason,
		BankRegistered:   inv.BankRegistered,
		RejectReason:     inv.RejectReason,
		CreatedAt:        common.FormatDatetimeToString(*inv.CreatedAt, common.DateFormatYYYYMMDDWithTime),
		UpdatedAt:        common.FormatDatetimeToString(*inv.UpdatedAt, common.DateFormatYYYYMMDDWithTime),
	}

	if inv.PaidAmount.Valid {
		paid := NewDecimalFromExternal(inv.PaidAmount.Decimal)
		out.PaidAmount = &paid
	}
	if inv.PaidAt != nil {
		out.PaidAt = common.FormatDatetimeToString(*inv.PaidAt, common.DateFormatYYYYMMDDWithTime)
	}

	return out
}

// ToCSVRow renders the invoice as one line of the download export, following
// constants.InvoiceCSVHeaders.
func (inv Invoice) ToCSVRow() []string {
	paidAmount := ""
	if inv.PaidAmount.Valid {
		paidAmount = inv.PaidAmount.Decimal.String()
	}
	paidAt := ""
	if inv.PaidAt != nil {
		paidAt = common.FormatDatetimeToString(*inv.PaidAt, common.DateFormatYYYYMMDDWithTime)
	}

	return []string{
		inv.Number,
		inv.UnitID,
		inv.ReferenceMonth,
		inv.Amount.String(),
		common.FormatDatetimeToString(*inv.DueDate, common.DateFormatYYYYMMDD),
		inv.Status.String(),
		inv.PayerName,
		inv.OurNumber,
		paidAmount,
		paidAt,
		inv.PaymentOrigin,
	}
}

type InvoiceOut struct {
	Kind             string   `json:"kind" example:"invoice"`
	Number           string   `json:"number" example:"INV-1698222506527QsPDvPJxRoy"`
	UnitID           string   `json:"unitId" example:"UNT-1698222506527QsPDvPJxRoy"`
	CondoID          string   `json:"condoId" example:"CONDO-SOLARDASACACIAS"`
	Amount           Decimal  `json:"amount" example:"850.00"`
	DueDate          string   `json:"dueDate" example:"2023-11-10"`
	Status           string   `json:"status" example:"pending"`
	PayerName        string   `json:"payerName" example:"Maria Souza"`
	PayerDocument    string   `json:"payerDocument" example:"12345678901"`
	OurNumber        string   `json:"ourNumber" example:"10900000123"`
	BankLine         string   `json:"bankLine" example:"34191.09008 00012.360822 13335.980002 1 95300000085000"`
	Barcode          string   `json:"barcode" example:"34191953000000850001090000012360821333598000"`
	ReferenceMonth   string   `json:"referenceMonth" example:"2023-11"`
	PaidAmount       *Decimal `json:"paidAmount,omitempty" example:"850.00"`
	PaidAt           string   `json:"paidAt,omitempty" example:"2023-11-09 14:02:11"`
	PaymentOrigin    string   `json:"paymentOrigin,omitempty" example:"reconciliation"`
	DivergentPayment bool     `json:"divergentPayment" example:"false"`
	CancelReason     string   `json:"cancelReason,omitempty" example:""`
	BankRegistered   bool     `json:"bankRegistered" example:"true"`
	RejectReason     string   `json:"rejectReason,omitempty" example:""`
	CreatedAt        string   `json:"createdAt" example:"2023-10-25 08:08:26"`
	UpdatedAt        string   `json:"updatedAt" example:"2023-10-25 08:08:26"`
}

type CreateInvoiceRequest struct {
	UnitID         string  `json:"unitId" validate:"required" example:"UNT-1698222506527QsPDvPJxRoy"`
	ReferenceMonth string  `json:"referenceMonth" validate:"required,referenceMonth" example:"2023-11"`
	Amount         Decimal `json:"amount" validate:"required,decimalGreaterThan=0" example:"850.00"`
	DueDate        string  `json:"dueDate" validate:"required,date" example:"2023-11-10"`
	PayerName      string  `json:"payerName" validate:"omitempty,max=120,noStartEndSpaces" example:"Maria Souza"`
	PayerDocument  string  `json:"payerDocument" validate:"omitempty,numeric,min=11,max=14" example:"12345678901"`
}

func (req CreateInvoiceRequest) ToCreateInvoiceIn() (CreateInvoiceIn, error) {
	dueDate, err := common.ParseStringToDatetime(common.DateFormatYYYYMMDD, req.DueDate)
	if err != nil {
		return CreateInvoiceIn{}, GetErrMap(ErrKeyInvalidFormatDate, "dueDate must be YYYY-MM-DD")
	}

	return CreateInvoiceIn{
		UnitID:         req.UnitID,
		ReferenceMonth: req.ReferenceMonth,
		Amount:         req.Amount,
		DueDate:        dueDate,
		PayerName:      req.PayerName,
		PayerDocument:  req.PayerDocument,
	}, nil
}

type CreateInvoiceIn struct {
	UnitID         string
	ReferenceMonth string
	Amount         Decimal
	DueDate        time.Time
	PayerName      string
	PayerDocument  string
}

// RegisterPaymentRequest records a manual payment against an invoice. Empty
// paidAmount defaults to the invoice amount; empty paidAt defaults to now.
type RegisterPaymentRequest struct {
	Number     string  `json:"-" validate:"required"`
	PaidAmount Decimal `json:"paidAmount" validate:"omitempty,decimalGreaterThan=0" example:"850.00"`
	PaidAt     string  `json:"paidAt" validate:"omitempty,iso8601datetime" example:"2023-11-09T14:02:11-03:00"`
	PaidBy     string  `json:"paidBy" validate:"omitempty,max=120" example:"sindico@example.com"`
}

type CancelInvoiceRequest struct {
	Number string `json:"-" validate:"required"`
	Reason string `json:"reason" validate:"omitempty,max=200" example:"unit vacated"`
}

// InvoicePaymentIn is the normalized payment application shared by manual
// registration, reconciliation auto-apply and retorno liquidação.
type InvoicePaymentIn struct {
	Number    string
	Amount    decimal.Decimal
	PaidAt    time.Time
	Origin    string
	Divergent bool
}

type InvoiceFilterOptions struct {
	CondoID        string
	UnitID         string
	Status         InvoiceStatus
	ReferenceMonth string
	StartDueDate   *time.Time
	EndDueDate     *time.Time

	// Pagination filter
	Limit           int
	AscendingOrder  bool
	AfterCreatedAt  *time.Time
	BeforeCreatedAt *time.Time
}

// DownloadInvoiceRowThreshold caps the CSV export so one request cannot walk
// an unbounded result set.
const DownloadInvoiceRowThreshold = 50_000

// DownloadInvoiceRequest streams a filtered CSV export into Writer.
type DownloadInvoiceRequest struct {
	Options InvoiceFilterOptions
	Writer  io.Writer
}

type InvoiceStreamResult struct {
	Data Invoice
	Err  error
}

type DoGetListInvoiceRequest struct {
	CondoID        string `query:"condoId" example:"CONDO-SOLARDASACACIAS"`
	UnitID         string `query:"unitId" example:"UNT-1698222506527QsPDvPJxRoy"`
	Status         string `query:"status" example:"pending"`
	ReferenceMonth string `query:"referenceMonth" example:"2023-11"`
	StartDueDate   string `query:"startDueDate" example:"2023-11-01"`
	EndDueDate     string `query:"endDueDate" example:"2023-11-30"`
	Limit          int    `query:"limit" example:"10"`
	NextCursor     string `query:"nextCursor" example:"abc"`
	PrevCursor     string `query:"prevCursor" example:"cba"`
}

func (req DoGetListInvoiceRequest) ToFilterOpts() (*InvoiceFilterOptions, error) {
	opts := &InvoiceFilterOptions{
		CondoID:        req.CondoID,
		UnitID:         req.UnitID,
		ReferenceMonth: req.ReferenceMonth,
		Limit:          req.Limit,
	}

	if req.Limit < 0 {
		return nil, GetErrMap(ErrKeyLimitMustBeGreaterThanZero)
	}

	if req.Status != "" {
		status, ok := ParseInvoiceStatus(req.Status)
		if !ok {
			return nil, GetErrMap(ErrKeyInvalidStatusFilter, req.Status)
		}
		opts.Status = status
	}

	if req.StartDueDate == "" || req.EndDueDate == "" {
		if req.StartDueDate != "" || req.EndDueDate != "" {
			return nil, GetErrMap(ErrKeyStartDateAndEndDateRequiredIfOneIsFilled)
		}
	} else {
		startDate, err := common.ParseStringToDatetime(common.DateFormatYYYYMMDD, req.StartDueDate)
		if err != nil {
			return nil, GetErrMap(ErrKeyInvalidFormatDate, "startDueDate must be YYYY-MM-DD")
		}
		opts.StartDueDate = &startDate

		endDate, err := common.ParseStringToDatetime(common.DateFormatYYYYMMDD, req.EndDueDate)
		if err != nil {
			return nil, GetErrMap(ErrKeyInvalidFormatDate, "endDueDate must be YYYY-MM-DD")
		}
		opts.EndDueDate = &endDate

		if startDate.After(endDate) {
			return nil, GetErrMap(ErrKeyStartDateIsAfterEndDate)
		}
	}

	if req.Limit == 0 {
		opts.Limit = constants.DefaultLimit
	}

	// use over-fetch limit for check next page exists or not
	opts.Limit += constants.OverFetchOffset

	// forward pagination
	if req.NextCursor != "" {
		afterTime, err := decodeCreatedAtCursor(req.NextCursor)
		if err != nil {
			return nil, err
		}
		opts.AfterCreatedAt = &afterTime
	}

	// backward pagination
	if req.NextCursor == "" && req.PrevCursor != "" {
		prevTime, err := decodeCreatedAtCursor(req.PrevCursor)
		if err != nil {
			return nil, err
		}
		opts.BeforeCreatedAt = &prevTime

		// reverse order
		opts.AscendingOrder = true
	}

	return opts, nil
}

// InvoiceHistoryEntry is the per-invoice slice of payment history consumed by
// the risk model. Loaded in bulk for a unit's scoring window.
type InvoiceHistoryEntry struct {
	Number     string
	Amount     decimal.Decimal
	DueDate    time.Time
	Status     InvoiceStatus
	PaidAmount decimal.NullDecimal
	PaidAt     *time.Time
}

// DaysLate returns how many days after the due date the invoice was paid, 0
// for on-time payments and unpaid invoices.
func (e InvoiceHistoryEntry) DaysLate() int {
	if e.Status != InvoiceStatusPaid || e.PaidAt == nil {
		return 0
	}

	days := int(e.PaidAt.Sub(e.DueDate).Hours() / 24)
	if days < 0 {
		return 0
	}

	return days
}

// PaidOnTime reports whether the invoice was settled at or before its due
// date.
func (e InvoiceHistoryEntry) PaidOnTime() bool {
	return e.Status == InvoiceStatusPaid && e.PaidAt != nil && !e.PaidAt.After(e.DueDate.Add(24*time.Hour-time.Second))
}
