package models

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/habitado/go-condo-billing/internal/common"
	"github.com/habitado/go-condo-billing/internal/common/constants"
	"github.com/habitado/go-condo-billing/internal/common/pagination"
)

const (
	kindUnit = "unit"

	// UnitIDPrefix prefixes every generated unit id.
	UnitIDPrefix = "UNT"
)

// Unit is a payer registry entry: one billable unit (apartment, house, store)
// inside a condominium.
type Unit struct {
	ID            string
	CondoID       string
	Block         string
	Number        string
	Label         string
	OwnerName     string
	OwnerDocument string
	Email         string
	Fraction      Decimal
	MonthlyFee    Decimal
	Active        bool
	CreatedAt     *time.Time
	UpdatedAt     *time.Time
}

func (u Unit) GetCursor() string {
	offsetBytes := []byte(u.CreatedAt.Format(time.RFC3339Nano))
	return base64.StdEncoding.EncodeToString(offsetBytes)
}

func (u Unit) ToModelResponse() UnitOut {
	return UnitOut{
		Kind:          kindUnit,
		ID:            u.ID,
		CondoID:       u.CondoID,
		Block:         u.Block,
		Number:        u.Number,
		Label:         u.Label,
		OwnerName:     u.OwnerName,
		OwnerDocument: u.OwnerDocument,
		Email:         u.Email,
		Fraction:      u.Fraction,
		MonthlyFee:    u.MonthlyFee,
		Active:        u.Active,
		CreatedAt:     common.FormatDatetimeToString(*u.CreatedAt, common.DateFormatYYYYMMDDWithTime),
		UpdatedAt:     common.FormatDatetimeToString(*u.UpdatedAt, common.DateFormatYYYYMMDDWithTime),
	}
}

type UnitOut struct {
	Kind          string  `json:"kind" example:"unit"`
	ID            string  `json:"id" example:"UNT-1698222506527QsPDvPJxRoy"`
	CondoID       string  `json:"condoId" example:"CONDO-SOLARDASACACIAS"`
	Block         string  `json:"block" example:"A"`
	Number        string  `json:"number" example:"101"`
	Label         string  `json:"label" example:"Bloco A Apto 101"`
	OwnerName     string  `json:"ownerName" example:"Maria Souza"`
	OwnerDocument string  `json:"ownerDocument" example:"12345678901"`
	Email         string  `json:"email" example:"maria@example.com"`
	Fraction      Decimal `json:"fraction" example:"0.0125"`
	MonthlyFee    Decimal `json:"monthlyFee" example:"850.00"`
	Active        bool    `json:"active" example:"true"`
	CreatedAt     string  `json:"createdAt" example:"2023-10-25 08:08:26"`
	UpdatedAt     string  `json:"updatedAt" example:"2023-10-25 08:08:26"`
}

type CreateUnitRequest struct {
	CondoID       string  `json:"condoId" validate:"required,noStartEndSpaces" example:"CONDO-SOLARDASACACIAS"`
	Block         string  `json:"block" validate:"required,max=20,noStartEndSpaces" example:"A"`
	Number        string  `json:"number" validate:"required,max=10,noStartEndSpaces" example:"101"`
	OwnerName     string  `json:"ownerName" validate:"required,max=120,noStartEndSpaces" example:"Maria Souza"`
	OwnerDocument string  `json:"ownerDocument" validate:"omitempty,numeric,min=11,max=14" example:"12345678901"`
	Email         string  `json:"email" validate:"omitempty,email" example:"maria@example.com"`
	Fraction      Decimal `json:"fraction" validate:"omitempty,decimalGreaterThan=0" example:"0.0125"`
	MonthlyFee    Decimal `json:"monthlyFee" validate:"omitempty,decimalGreaterThan=0" example:"850.00"`
}

func (req CreateUnitRequest) ToCreateUnitIn() CreateUnitIn {
	return CreateUnitIn{
		CondoID:       req.CondoID,
		Block:         req.Block,
		Number:        req.Number,
		Label:         BuildUnitLabel(req.Block, req.Number),
		OwnerName:     req.OwnerName,
		OwnerDocument: req.OwnerDocument,
		Email:         req.Email,
		Fraction:      req.Fraction,
		MonthlyFee:    req.MonthlyFee,
	}
}

// BuildUnitLabel renders the human label shown on reports and collection
// queues, e.g. "Bloco A Apto 101".
func BuildUnitLabel(block, number string) string {
	block = strings.TrimSpace(block)
	number = strings.TrimSpace(number)
	if block == "" {
		return fmt.Sprintf("Apto %s", number)
	}

	return fmt.Sprintf("Bloco %s Apto %s", block, number)
}

// CreateUnitIn field order follows the insert placeholder order.
type CreateUnitIn struct {
	ID            string
	CondoID       string
	Block         string
	Number        string
	Label         string
	OwnerName     string
	OwnerDocument string
	Email         string
	Fraction      Decimal
	MonthlyFee    Decimal
}

type UnitFilterOptions struct {
	CondoID   string
	OwnerName string
	Active    *bool

	// Pagination filter
	Limit           int
	AscendingOrder  bool
	AfterCreatedAt  *time.Time
	BeforeCreatedAt *time.Time
}

type DoGetListUnitRequest struct {
	CondoID    string `query:"condoId" example:"CONDO-SOLARDASACACIAS"`
	OwnerName  string `query:"ownerName" example:"Maria"`
	Active     string `query:"active" example:"true"`
	Limit      int    `query:"limit" example:"10"`
	NextCursor string `query:"nextCursor" example:"abc"`
	PrevCursor string `query:"prevCursor" example:"cba"`
}

func (req DoGetListUnitRequest) ToFilterOpts() (*UnitFilterOptions, error) {
	opts := &UnitFilterOptions{
		CondoID:   req.CondoID,
		OwnerName: req.OwnerName,
		Limit:     req.Limit,
	}

	if req.Limit < 0 {
		return nil, GetErrMap(ErrKeyLimitMustBeGreaterThanZero)
	}

	switch req.Active {
	case "":
	case "true":
		active := true
		opts.Active = &active
	case "false":
		active := false
		opts.Active = &active
	default:
		return nil, GetErrMap(ErrKeyInvalidActiveFilter)
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

// decodeCreatedAtCursor reverses GetCursor: base64 wrapping an RFC3339Nano
// createdAt timestamp. Shared by every cursor-paginated listing.
func decodeCreatedAtCursor(cursor string) (decodedTime time.Time, err error) {
	decoded, err := pagination.DecodeCursor(cursor)
	if err != nil {
		return decodedTime, err
	}

	decodedTime, err = time.Parse(time.RFC3339Nano, decoded.GetID())
	if err != nil {
		return decodedTime, fmt.Errorf("failed to parse offset time: %w", err)
	}

	return decodedTime, nil
}
