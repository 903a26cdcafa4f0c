// Package collection ranks delinquent units into the work queue the
// collections team calls through. The prioritizer is pure; loading
// candidates and persisting the rebuilt queue stay with the service.
package collection

import (
	"math"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/habitado/go-condo-billing/internal/models"
)

const defaultDaysOverdueCap = 180

// priority factor weights
const (
	weightRiskScore     = 0.40
	weightOverdueAmount = 0.30
	weightDaysOverdue   = 0.20
	weightNoSuggestion  = 0.10
)

type Prioritizer struct {
	daysOverdueCap int
	queueLimit     int
}

// NewPrioritizer builds a prioritizer. queueLimit zero means unbounded.
func NewPrioritizer(daysOverdueCap, queueLimit int) *Prioritizer {
	if daysOverdueCap <= 0 {
		daysOverdueCap = defaultDaysOverdueCap
	}

	return &Prioritizer{daysOverdueCap: daysOverdueCap, queueLimit: queueLimit}
}

// Build ranks the candidates into a queue as of the given instant. Priority
// blends risk score, overdue exposure relative to the batch, how long the
// oldest debt is open, and whether a pending match suggestion may already
// settle it. Ties break by larger amount, then older due date, then unit id.
func (p *Prioritizer) Build(candidates []models.CollectionCandidate, asOf time.Time) []models.CollectionCase {
	if len(candidates) == 0 {
		return nil
	}

	maxAmount := decimal.Zero
	for i := range candidates {
		if candidates[i].OverdueAmount.GreaterThan(maxAmount) {
			maxAmount = candidates[i].OverdueAmount
		}
	}

	type scored struct {
		candidate   models.CollectionCandidate
		daysOverdue int
		priority    decimal.Decimal
	}

	entries := make([]scored, 0, len(candidates))
	for i := range candidates {
		candidate := candidates[i]
		daysOverdue := daysBetween(candidate.OldestDueDate, asOf)

		entries = append(entries, scored{
			candidate:   candidate,
			daysOverdue: daysOverdue,
			priority:    p.priority(candidate, daysOverdue, maxAmount),
		})
	}

	sort.SliceStable(entries, func(x, y int) bool {
		a, b := entries[x], entries[y]
		if !a.priority.Equal(b.priority) {
			return a.priority.GreaterThan(b.priority)
		}
		if !a.candidate.OverdueAmount.Equal(b.candidate.OverdueAmount) {
			return a.candidate.OverdueAmount.GreaterThan(b.candidate.OverdueAmount)
		}
		if !a.candidate.OldestDueDate.Equal(b.candidate.OldestDueDate) {
			return a.candidate.OldestDueDate.Before(b.candidate.OldestDueDate)
		}

		return a.candidate.UnitID < b.candidate.UnitID
	})

	if p.queueLimit > 0 && len(entries) > p.queueLimit {
		entries = entries[:p.queueLimit]
	}

	builtAt := asOf
	queue := make([]models.CollectionCase, 0, len(entries))
	for rank, entry := range entries {
		candidate := entry.candidate
		oldestDue := candidate.OldestDueDate

		queue = append(queue, models.CollectionCase{
			UnitID:            candidate.UnitID,
			CondoID:           candidate.CondoID,
			Priority:          models.NewDecimalFromExternal(entry.priority),
			Rank:              rank + 1,
			RiskScore:         candidate.RiskScore,
			RiskBucket:        candidate.RiskBucket,
			OverdueAmount:     models.NewDecimalFromExternal(candidate.OverdueAmount),
			OverdueCount:      candidate.OverdueCount,
			OldestDueDate:     &oldestDue,
			DaysOverdue:       entry.daysOverdue,
			MatchConfidence:   candidate.BestSuggestedConfidence,
			RecommendedAction: candidate.RiskBucket.RecommendedAction(),
			BuiltAt:           &builtAt,
		})
	}

	return queue
}

func (p *Prioritizer) priority(candidate models.CollectionCandidate, daysOverdue int, maxAmount decimal.Decimal) decimal.Decimal {
	scorePart := float64(candidate.RiskScore) / float64(models.RiskScoreMax)

	amountPart := 0.0
	if maxAmount.IsPositive() {
		amountPart = math.Min(candidate.OverdueAmount.Div(maxAmount).InexactFloat64(), 1)
	}

	agePart := math.Min(float64(daysOverdue)/float64(p.daysOverdueCap), 1)

	// a pending suggestion means the debt may already be settled in the
	// bank, so it softens the priority
	bestConfidence := 0.0
	if candidate.BestSuggestedConfidence != nil {
		bestConfidence = *candidate.BestSuggestedConfidence
	}

	priority := 100 * (weightRiskScore*scorePart +
		weightOverdueAmount*amountPart +
		weightDaysOverdue*agePart +
		weightNoSuggestion*(1-bestConfidence))

	return decimal.NewFromFloat(priority).Round(2)
}

func daysBetween(from, to time.Time) int {
	d := to.Sub(from)
	if d < 0 {
		return 0
	}

	return int(d / (24 * time.Hour))
}
