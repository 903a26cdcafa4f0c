package models

import (
	"database/sql/driver"
	"encoding/base64"
	"encoding/json"
	"errors"
	"time"

	"github.com/habitado/go-condo-billing/internal/common"
	"github.com/habitado/go-condo-billing/internal/common/constants"
)

const (
	kindRiskScore = "riskScore"

	// RiskScoreIDPrefix prefixes every persisted risk score id.
	RiskScoreIDPrefix = "RSK"
)

// Risk score bounds.
const (
	RiskScoreMin = 0
	RiskScoreMax = 1000
)

// RiskBucket groups scores into the bands the collections team works with.
type RiskBucket string

const (
	RiskBucketLow      RiskBucket = "low"
	RiskBucketMedium   RiskBucket = "medium"
	RiskBucketHigh     RiskBucket = "high"
	RiskBucketCritical RiskBucket = "critical"
)

// RecommendedAction is the collections posture attached to each bucket.
func (b RiskBucket) RecommendedAction() string {
	switch b {
	case RiskBucketLow:
		return "monitor"
	case RiskBucketMedium:
		return "friendly_reminder"
	case RiskBucketHigh:
		return "formal_notice"
	case RiskBucketCritical:
		return "legal_escalation"
	default:
		return ""
	}
}

func ParseRiskBucket(raw string) (RiskBucket, bool) {
	switch RiskBucket(raw) {
	case RiskBucketLow, RiskBucketMedium, RiskBucketHigh, RiskBucketCritical:
		return RiskBucket(raw), true
	default:
		return "", false
	}
}

// BucketForScore maps a 0-1000 score into its band. Thresholds are
// inclusive upper bounds.
func BucketForScore(score int) RiskBucket {
	switch {
	case score <= 250:
		return RiskBucketLow
	case score <= 500:
		return RiskBucketMedium
	case score <= 750:
		return RiskBucketHigh
	default:
		return RiskBucketCritical
	}
}

// Risk factor names reported on every score.
const (
	RiskFactorOnTimeRate           = "onTimeRate"
	RiskFactorAvgDaysLate          = "avgDaysLate"
	RiskFactorOpenOverdueCount     = "openOverdueCount"
	RiskFactorOverdueAmountRatio   = "overdueAmountRatio"
	RiskFactorConsecutiveMissed    = "consecutiveMissed"
	RiskFactorDaysSinceLastPayment = "daysSinceLastPayment"

	// RiskNoteInsufficientHistory flags units scored without any invoice
	// history.
	RiskNoteInsufficientHistory = "insufficient_history"
)

// RiskFactor is one scored feature: its observed value, the weight it
// carries in the ensemble and the points the rule assigned.
type RiskFactor struct {
	Name         string  `json:"name"`
	Value        float64 `json:"value"`
	Weight       float64 `json:"weight"`
	Points       int     `json:"points"`
	Contribution float64 `json:"contribution"`
	Note         string  `json:"note,omitempty"`
}

// RiskFactors is stored as a JSONB column on risk_scores.
type RiskFactors []RiskFactor

func (rf RiskFactors) Value() (driver.Value, error) {
	if len(rf) == 0 {
		return nil, nil
	}

	jsonValue, err := json.Marshal(rf)
	if err != nil {
		return nil, err
	}
	return jsonValue, nil
}

func (rf *RiskFactors) Scan(value interface{}) error {
	if value == nil {
		*rf = nil
		return nil
	}

	jsonValue, ok := value.([]byte)
	if !ok {
		return errors.New("invalid JSON data")
	}

	if err := json.Unmarshal(jsonValue, rf); err != nil {
		return err
	}
	return nil
}

// RiskScore is one computed delinquency score for a unit. The latest row per
// unit is the current score; older rows remain as history.
type RiskScore struct {
	ID                string
	UnitID            string
	CondoID           string
	Score             int
	Bucket            RiskBucket
	RecommendedAction string
	Factors           RiskFactors
	WindowMonths      int
	ComputedAt        *time.Time
}

func (rs RiskScore) GetCursor() string {
	offsetBytes := []byte(rs.ComputedAt.Format(time.RFC3339Nano))
	return base64.StdEncoding.EncodeToString(offsetBytes)
}

func (rs RiskScore) ToModelResponse() RiskScoreOut {
	return RiskScoreOut{
		Kind:              kindRiskScore,
		ID:                rs.ID,
		UnitID:            rs.UnitID,
		CondoID:           rs.CondoID,
		Score:             rs.Score,
		Bucket:            string(rs.Bucket),
		RecommendedAction: rs.RecommendedAction,
		Factors:           rs.Factors,
		WindowMonths:      rs.WindowMonths,
		ComputedAt:        common.FormatDatetimeToString(*rs.ComputedAt, common.DateFormatYYYYMMDDWithTime),
	}
}

type RiskScoreOut struct {
	Kind              string      `json:"kind" example:"riskScore"`
	ID                string      `json:"id" example:"RSK-1698222506527QsPDvPJxRoy"`
	UnitID            string      `json:"unitId" example:"UNT-1698222506527QsPDvPJxRoy"`
	CondoID           string      `json:"condoId" example:"CONDO-SOLARDASACACIAS"`
	Score             int         `json:"score" example:"640"`
	Bucket            string      `json:"bucket" example:"high"`
	RecommendedAction string      `json:"recommendedAction" example:"formal_notice"`
	Factors           RiskFactors `json:"factors"`
	WindowMonths      int         `json:"windowMonths" example:"12"`
	ComputedAt        string      `json:"computedAt" example:"2023-11-10 03:00:00"`
}

type RiskFilterOptions struct {
	CondoID string
	Bucket  RiskBucket

	// Pagination filter
	Limit            int
	AscendingOrder   bool
	AfterComputedAt  *time.Time
	BeforeComputedAt *time.Time
}

type DoGetListRiskScoreRequest struct {
	CondoID    string `query:"condoId" example:"CONDO-SOLARDASACACIAS"`
	Bucket     string `query:"bucket" example:"high"`
	Limit      int    `query:"limit" example:"10"`
	NextCursor string `query:"nextCursor" example:"abc"`
	PrevCursor string `query:"prevCursor" example:"cba"`
}

func (req DoGetListRiskScoreRequest) ToFilterOpts() (*RiskFilterOptions, error) {
	opts := &RiskFilterOptions{
		CondoID: req.CondoID,
		Limit:   req.Limit,
	}

	if req.Limit < 0 {
		return nil, GetErrMap(ErrKeyLimitMustBeGreaterThanZero)
	}

	if req.Bucket != "" {
		bucket, ok := ParseRiskBucket(req.Bucket)
		if !ok {
			return nil, GetErrMap(ErrKeyInvalidBucketFilter, req.Bucket)
		}
		opts.Bucket = bucket
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
		opts.AfterComputedAt = &afterTime
	}

	// backward pagination
	if req.NextCursor == "" && req.PrevCursor != "" {
		prevTime, err := decodeCreatedAtCursor(req.PrevCursor)
		if err != nil {
			return nil, err
		}
		opts.BeforeComputedAt = &prevTime

		// reverse order
		opts.AscendingOrder = true
	}

	return opts, nil
}
