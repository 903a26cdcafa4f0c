package models

import (
	"encoding/base64"
	"fmt"
	"time"

	"github.com/habitado/go-condo-billing/internal/common"
	"github.com/habitado/go-condo-billing/internal/common/constants"

	"github.com/shopspring/decimal"
)

const (
	kindCollectionCase = "collectionCase"

	// CollectionCaseIDPrefix prefixes every collection case id.
	CollectionCaseIDPrefix = "COL"
)

// CollectionCandidate aggregates everything the prioritizer needs to rank one
// delinquent unit: its current risk score, its overdue exposure and the best
// confidence among still-undecided match suggestions touching its invoices.
type CollectionCandidate struct {
	UnitID                  string
	CondoID                 string
	RiskScore               int
	RiskBucket              RiskBucket
	OverdueAmount           decimal.Decimal
	OverdueCount            int
	OldestDueDate           time.Time
	DaysOverdue             int
	BestSuggestedConfidence *float64
}

// CollectionCase is one ranked entry of the rebuilt collection work queue.
type CollectionCase struct {
	ID                string
	UnitID            string
	UnitLabel         string
	OwnerName         string
	CondoID           string
	Priority          Decimal
	Rank              int
	RiskScore         int
	RiskBucket        RiskBucket
	OverdueAmount     Decimal
	OverdueCount      int
	OldestDueDate     *time.Time
	DaysOverdue       int
	MatchConfidence   *float64
	RecommendedAction string
	BuiltAt           *time.Time
}

// GetCursor encodes the queue rank: the queue is rebuilt as a whole, so rank
// is a stable cursor within one build.
func (cc CollectionCase) GetCursor() string {
	return base64.StdEncoding.EncodeToString([]byte(fmt.Sprint(cc.Rank)))
}

func (cc CollectionCase) ToModelResponse() CollectionCaseOut {
	out := CollectionCaseOut{
		Kind:              kindCollectionCase,
		ID:                cc.ID,
		UnitID:            cc.UnitID,
		UnitLabel:         cc.UnitLabel,
		OwnerName:         cc.OwnerName,
		CondoID:           cc.CondoID,
		Priority:          cc.Priority,
		Rank:              cc.Rank,
		RiskScore:         cc.RiskScore,
		RiskBucket:        string(cc.RiskBucket),
		OverdueAmount:     cc.OverdueAmount,
		OverdueCount:      cc.OverdueCount,
		DaysOverdue:       cc.DaysOverdue,
		MatchConfidence:   cc.MatchConfidence,
		RecommendedAction: cc.RecommendedAction,
	}

	if cc.OldestDueDate != nil {
		out.OldestDueDate = common.FormatDatetimeToString(*cc.OldestDueDate, common.DateFormatYYYYMMDD)
	}
	if cc.BuiltAt != nil {
		out.BuiltAt = common.FormatDatetimeToString(*cc.BuiltAt, common.DateFormatYYYYMMDDWithTime)
	}

	return out
}

type CollectionCaseOut struct {
	Kind              string   `json:"kind" example:"collectionCase"`
	ID                string   `json:"id" example:"COL-1698222506527QsPDvPJxRoy"`
	UnitID            string   `json:"unitId" example:"UNT-1698222506527QsPDvPJxRoy"`
	UnitLabel         string   `json:"unitLabel" example:"Bloco A Apto 101"`
	OwnerName         string   `json:"ownerName" example:"Maria Souza"`
	CondoID           string   `json:"condoId" example:"CONDO-SOLARDASACACIAS"`
	Priority          Decimal  `json:"priority" example:"73.45"`
	Rank              int      `json:"rank" example:"1"`
	RiskScore         int      `json:"riskScore" example:"812"`
	RiskBucket        string   `json:"riskBucket" example:"critical"`
	OverdueAmount     Decimal  `json:"overdueAmount" example:"2550.00"`
	OverdueCount      int      `json:"overdueCount" example:"3"`
	OldestDueDate     string   `json:"oldestDueDate" example:"2023-08-10"`
	DaysOverdue       int      `json:"daysOverdue" example:"92"`
	MatchConfidence   *float64 `json:"matchConfidence,omitempty" example:"0.82"`
	RecommendedAction string   `json:"recommendedAction" example:"legal_escalation"`
	BuiltAt           string   `json:"builtAt" example:"2023-11-10 04:00:00"`
}

type CollectionFilterOptions struct {
	CondoID string
	Bucket  RiskBucket

	// Pagination filter. The queue reads rank ascending by default, so
	// backward pagination flips to descending.
	Limit           int
	DescendingOrder bool
	AfterRank       *int
	BeforeRank      *int
}

type DoGetListCollectionRequest struct {
	CondoID    string `query:"condoId" example:"CONDO-SOLARDASACACIAS"`
	Bucket     string `query:"bucket" example:"critical"`
	Limit      int    `query:"limit" example:"10"`
	NextCursor string `query:"nextCursor" example:"abc"`
	PrevCursor string `query:"prevCursor" example:"cba"`
}

func (req DoGetListCollectionRequest) ToFilterOpts() (*CollectionFilterOptions, error) {
	opts := &CollectionFilterOptions{
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

	// forward pagination: queue cursors carry the rank, not createdAt
	if req.NextCursor != "" {
		afterRank, err := decodeRankCursor(req.NextCursor)
		if err != nil {
			return nil, err
		}
		opts.AfterRank = &afterRank
	}

	// backward pagination
	if req.NextCursor == "" && req.PrevCursor != "" {
		beforeRank, err := decodeRankCursor(req.PrevCursor)
		if err != nil {
			return nil, err
		}
		opts.BeforeRank = &beforeRank

		// reverse order
		opts.DescendingOrder = true
	}

	return opts, nil
}

func decodeRankCursor(cursor string) (rank int, err error) {
	decodedBytes, err := base64.StdEncoding.DecodeString(cursor)
	if err != nil {
		return 0, fmt.Errorf("failed to parse offset string: %w", err)
	}

	if _, err := fmt.Sscanf(string(decodedBytes), "%d", &rank); err != nil {
		return 0, fmt.Errorf("failed to parse offset rank: %w", err)
	}

	return rank, nil
}
