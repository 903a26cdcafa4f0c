package collection

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/habitado/go-condo-billing/internal/models"
)

func testCandidate(unitID string, score int, bucket models.RiskBucket, amount string, oldestDue time.Time) models.CollectionCandidate {
	amt, _ := decimal.NewFromString(amount)

	return models.CollectionCandidate{
		UnitID:        unitID,
		CondoID:       "CONDO-001",
		RiskScore:     score,
		RiskBucket:    bucket,
		OverdueAmount: amt,
		OverdueCount:  1,
		OldestDueDate: oldestDue,
	}
}

func TestPrioritizer_Build(t *testing.T) {
	t.Parallel()

	asOf := time.Date(2023, 11, 15, 0, 0, 0, 0, time.UTC)

	t.Run("priority formula", func(t *testing.T) {
		t.Parallel()

		prioritizer := NewPrioritizer(180, 0)

		critical := testCandidate("UNIT-001", 812, models.RiskBucketCritical, "2550.00", asOf.AddDate(0, 0, -92))
		mild := testCandidate("UNIT-002", 400, models.RiskBucketMedium, "850.00", asOf.AddDate(0, 0, -30))

		queue := prioritizer.Build([]models.CollectionCandidate{mild, critical}, asOf)
		require.Len(t, queue, 2)

		// 100*(0.40*812/1000 + 0.30*1 + 0.20*92/180 + 0.10*1)
		first := queue[0]
		assert.Equal(t, "UNIT-001", first.UnitID)
		assert.Equal(t, 1, first.Rank)
		assert.Equal(t, "82.7", first.Priority.String())
		assert.Equal(t, 92, first.DaysOverdue)
		assert.Equal(t, "legal_escalation", first.RecommendedAction)
		require.NotNil(t, first.BuiltAt)
		assert.Equal(t, asOf, *first.BuiltAt)

		second := queue[1]
		assert.Equal(t, "UNIT-002", second.UnitID)
		assert.Equal(t, 2, second.Rank)
		assert.Equal(t, "39.33", second.Priority.String())
	})

	t.Run("pending suggestion softens priority", func(t *testing.T) {
		t.Parallel()

		prioritizer := NewPrioritizer(180, 0)

		plain := testCandidate("UNIT-001", 812, models.RiskBucketCritical, "2550.00", asOf.AddDate(0, 0, -92))

		confidence := 0.9
		suggested := plain
		suggested.UnitID = "UNIT-002"
		suggested.BestSuggestedConfidence = &confidence

		queue := prioritizer.Build([]models.CollectionCandidate{suggested, plain}, asOf)
		require.Len(t, queue, 2)

		assert.Equal(t, "UNIT-001", queue[0].UnitID)
		assert.Equal(t, "82.7", queue[0].Priority.String())
		assert.Equal(t, "UNIT-002", queue[1].UnitID)
		assert.Equal(t, "73.7", queue[1].Priority.String())
		require.NotNil(t, queue[1].MatchConfidence)
		assert.InDelta(t, 0.9, *queue[1].MatchConfidence, 0.0001)
	})

	t.Run("ties break by larger amount", func(t *testing.T) {
		t.Parallel()

		prioritizer := NewPrioritizer(180, 0)

		// both saturate the age factor and land on the same priority
		bigger := testCandidate("UNIT-002", 250, models.RiskBucketLow, "1000.00", asOf.AddDate(0, 0, -250))
		smaller := testCandidate("UNIT-001", 625, models.RiskBucketHigh, "500.00", asOf.AddDate(0, 0, -200))

		queue := prioritizer.Build([]models.CollectionCandidate{smaller, bigger}, asOf)
		require.Len(t, queue, 2)

		assert.Equal(t, queue[0].Priority.String(), queue[1].Priority.String())
		assert.Equal(t, "UNIT-002", queue[0].UnitID)
		assert.Equal(t, "UNIT-001", queue[1].UnitID)
	})

	t.Run("equal candidates order by unit id", func(t *testing.T) {
		t.Parallel()

		prioritizer := NewPrioritizer(180, 0)

		due := asOf.AddDate(0, 0, -40)
		first := testCandidate("UNIT-001", 500, models.RiskBucketMedium, "900.00", due)
		second := testCandidate("UNIT-002", 500, models.RiskBucketMedium, "900.00", due)

		queue := prioritizer.Build([]models.CollectionCandidate{second, first}, asOf)
		require.Len(t, queue, 2)

		assert.Equal(t, "UNIT-001", queue[0].UnitID)
		assert.Equal(t, "UNIT-002", queue[1].UnitID)
	})

	t.Run("queue limit truncates after ranking", func(t *testing.T) {
		t.Parallel()

		prioritizer := NewPrioritizer(180, 2)

		candidates := []models.CollectionCandidate{
			testCandidate("UNIT-001", 200, models.RiskBucketLow, "100.00", asOf.AddDate(0, 0, -10)),
			testCandidate("UNIT-002", 900, models.RiskBucketCritical, "3000.00", asOf.AddDate(0, 0, -120)),
			testCandidate("UNIT-003", 600, models.RiskBucketHigh, "1500.00", asOf.AddDate(0, 0, -60)),
		}

		queue := prioritizer.Build(candidates, asOf)
		require.Len(t, queue, 2)
		assert.Equal(t, "UNIT-002", queue[0].UnitID)
		assert.Equal(t, "UNIT-003", queue[1].UnitID)
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()

		prioritizer := NewPrioritizer(180, 0)
		assert.Nil(t, prioritizer.Build(nil, asOf))
	})
}
