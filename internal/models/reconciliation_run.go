package models

import (
	"encoding/base64"
	"time"

	"github.com/habitado/go-condo-billing/internal/common"
	"github.com/habitado/go-condo-billing/internal/common/constants"
)

const (
	kindReconciliationRun = "reconciliationRun"

	// RunIDPrefix prefixes every reconciliation run id.
	RunIDPrefix = "RUN"

	// ReconciliationTaskName is the task discriminator carried by queue
	// messages so a consumer can reject payloads meant for someone else.
	ReconciliationTaskName = "RECONCILE_FILE"
)

// RunStatus is the lifecycle state of a reconciliation run row.
type RunStatus int

const (
	RunStatusPending RunStatus = iota
	RunStatusProcessing
	RunStatusSuccess
	RunStatusPartialMatched
	RunStatusFailed
	RunStatusInvalidFile
)

func (s RunStatus) Title() string {
	switch s {
	case RunStatusPending:
		return "PENDING"
	case RunStatusProcessing:
		return "PROCESSING"
	case RunStatusSuccess:
		return "SUCCESS"
	case RunStatusPartialMatched:
		return "PARTIAL_MATCHED"
	case RunStatusFailed:
		return "FAILED"
	case RunStatusInvalidFile:
		return "INVALID_FILE"
	default:
		return "UNKNOWN"
	}
}

// ParseRunStatus maps the title notation used on query filters back to the
// stored enum.
func ParseRunStatus(raw string) (RunStatus, bool) {
	for _, status := range []RunStatus{
		RunStatusPending, RunStatusProcessing, RunStatusSuccess,
		RunStatusPartialMatched, RunStatusFailed, RunStatusInvalidFile,
	} {
		if status.Title() == raw {
			return status, true
		}
	}

	return 0, false
}

// IsFinal reports whether the run already reached a terminal state. Of the
// terminal states only a failed run may be picked up again, by the dead
// letter retrier; redeliveries for the others are acked and dropped.
func (s RunStatus) IsFinal() bool {
	switch s {
	case RunStatusSuccess, RunStatusPartialMatched, RunStatusFailed, RunStatusInvalidFile:
		return true
	default:
		return false
	}
}

// ReconciliationRun is one processed bank file: upload metadata, processing
// state and result counters.
type ReconciliationRun struct {
	ID               string
	CondoID          string
	BankAccountID    string
	Kind             string
	Format           Format
	FileName         string
	FilePath         string
	ReportPath       string
	Status           RunStatus
	TransactionCount int
	MatchedCount     int
	SuggestedCount   int
	UnmatchedCount   int
	AppliedAmount    Decimal
	FailureReason    string
	RequestedBy      string
	CreatedAt        *time.Time
	UpdatedAt        *time.Time
}

func (r ReconciliationRun) GetCursor() string {
	offsetBytes := []byte(r.CreatedAt.Format(time.RFC3339Nano))
	return base64.StdEncoding.EncodeToString(offsetBytes)
}

func (r ReconciliationRun) ToModelResponse() ReconciliationRunOut {
	return ReconciliationRunOut{
		Kind:             kindReconciliationRun,
		ID:               r.ID,
		CondoID:          r.CondoID,
		BankAccountID:    r.BankAccountID,
		RunKind:          r.Kind,
		Format:           r.Format.String(),
		FileName:         r.FileName,
		Status:           r.Status.Title(),
		TransactionCount: r.TransactionCount,
		MatchedCount:     r.MatchedCount,
		SuggestedCount:   r.SuggestedCount,
		UnmatchedCount:   r.UnmatchedCount,
		AppliedAmount:    r.AppliedAmount,
		FailureReason:    r.FailureReason,
		RequestedBy:      r.RequestedBy,
		CreatedAt:        common.FormatDatetimeToString(*r.CreatedAt, common.DateFormatYYYYMMDDWithTime),
		UpdatedAt:        common.FormatDatetimeToString(*r.UpdatedAt, common.DateFormatYYYYMMDDWithTime),
	}
}

type ReconciliationRunOut struct {
	Kind             string  `json:"kind" example:"reconciliationRun"`
	ID               string  `json:"id" example:"RUN-1698222506527QsPDvPJxRoy"`
	CondoID          string  `json:"condoId" example:"CONDO-SOLARDASACACIAS"`
	BankAccountID    string  `json:"bankAccountId" example:"0001-123456"`
	RunKind          string  `json:"runKind" example:"statement"`
	Format           string  `json:"format" example:"ofx"`
	FileName         string  `json:"fileName" example:"extrato-2023-11.ofx"`
	Status           string  `json:"status" example:"PARTIAL_MATCHED"`
	TransactionCount int     `json:"transactionCount" example:"120"`
	MatchedCount     int     `json:"matchedCount" example:"95"`
	SuggestedCount   int     `json:"suggestedCount" example:"12"`
	UnmatchedCount   int     `json:"unmatchedCount" example:"13"`
	AppliedAmount    Decimal `json:"appliedAmount" example:"80750.00"`
	FailureReason    string  `json:"failureReason,omitempty" example:""`
	RequestedBy      string  `json:"requestedBy,omitempty" example:"sindico@example.com"`
	CreatedAt        string  `json:"createdAt" example:"2023-11-09 23:41:02"`
	UpdatedAt        string  `json:"updatedAt" example:"2023-11-09 23:44:17"`
}

// ReconciliationRunDetailOut adds the signed report download link to the run
// representation.
type ReconciliationRunDetailOut struct {
	ReconciliationRunOut
	ReportFileURL string `json:"reportFileUrl,omitempty" example:"https://storage.googleapis.com/..."`
}

type CreateReconciliationRunIn struct {
	// field order follows the insert placeholder order
	ID            string
	CondoID       string
	BankAccountID string
	Kind          string
	Format        Format
	FileName      string
	FilePath      string
	RequestedBy   string
	Status        RunStatus
}

// RunResultIn carries the final counters written when a run finishes
// processing.
type RunResultIn struct {
	ID               string
	Status           RunStatus
	Format           Format
	ReportPath       string
	TransactionCount int
	MatchedCount     int
	SuggestedCount   int
	UnmatchedCount   int
	AppliedAmount    Decimal
	FailureReason    string
}

// ReconciliationTaskPayload is the queue message linking a pending run to its
// async processing.
type ReconciliationTaskPayload struct {
	ID   string `json:"id"`
	Task string `json:"task"`
}

func NewReconciliationTaskPayload(runID string) ReconciliationTaskPayload {
	return ReconciliationTaskPayload{
		ID:   runID,
		Task: ReconciliationTaskName,
	}
}

type RunFilterOptions struct {
	CondoID   string
	Kind      string
	Status    *RunStatus
	StartDate *time.Time
	EndDate   *time.Time

	// Pagination filter
	Limit           int
	AscendingOrder  bool
	AfterCreatedAt  *time.Time
	BeforeCreatedAt *time.Time
}

type DoGetListRunRequest struct {
	CondoID    string `query:"condoId" example:"CONDO-SOLARDASACACIAS"`
	RunKind    string `query:"runKind" example:"statement"`
	Status     string `query:"status" example:"SUCCESS"`
	StartDate  string `query:"startDate" example:"2023-11-01"`
	EndDate    string `query:"endDate" example:"2023-11-30"`
	Limit      int    `query:"limit" example:"10"`
	NextCursor string `query:"nextCursor" example:"abc"`
	PrevCursor string `query:"prevCursor" example:"cba"`
}

func (req DoGetListRunRequest) ToFilterOpts() (*RunFilterOptions, error) {
	opts := &RunFilterOptions{
		CondoID: req.CondoID,
		Limit:   req.Limit,
	}

	if req.Limit < 0 {
		return nil, GetErrMap(ErrKeyLimitMustBeGreaterThanZero)
	}

	switch req.RunKind {
	case "", RunKindStatement, RunKindRetorno:
		opts.Kind = req.RunKind
	default:
		return nil, GetErrMap(ErrKeyInvalidKindFilter, req.RunKind)
	}

	if req.Status != "" {
		status, ok := ParseRunStatus(req.Status)
		if !ok {
			return nil, GetErrMap(ErrKeyInvalidStatusFilter, req.Status)
		}
		opts.Status = &status
	}

	if req.StartDate == "" || req.EndDate == "" {
		if req.StartDate != "" || req.EndDate != "" {
			return nil, GetErrMap(ErrKeyStartDateAndEndDateRequiredIfOneIsFilled)
		}
	} else {
		startDate, err := common.ParseStringToDatetime(common.DateFormatYYYYMMDD, req.StartDate)
		if err != nil {
			return nil, GetErrMap(ErrKeyInvalidFormatDate, "startDate must be YYYY-MM-DD")
		}
		opts.StartDate = &startDate

		endDate, err := common.ParseStringToDatetime(common.DateFormatYYYYMMDD, req.EndDate)
		if err != nil {
			return nil, GetErrMap(ErrKeyInvalidFormatDate, "endDate must be YYYY-MM-DD")
		}
		opts.EndDate = &endDate

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
