// Package risk computes the rule-weighted delinquency score of a unit from
// its invoice payment history. The scorer is pure; loading history and
// persisting scores stay with the risk service.
package risk

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/habitado/go-condo-billing/internal/common"
	"github.com/habitado/go-condo-billing/internal/models"
)

const defaultWindowMonths = 12

// weightEpsilon absorbs float noise when validating that weights sum to 1.0.
const weightEpsilon = 1e-6

// Weights is the share each feature carries in the final score. Overridable
// per environment through the risk model feature flag.
type Weights struct {
	OnTimeRate           float64 `json:"onTimeRate"`
	AvgDaysLate          float64 `json:"avgDaysLate"`
	OpenOverdueCount     float64 `json:"openOverdueCount"`
	OverdueAmountRatio   float64 `json:"overdueAmountRatio"`
	ConsecutiveMissed    float64 `json:"consecutiveMissed"`
	DaysSinceLastPayment float64 `json:"daysSinceLastPayment"`
}

func DefaultWeights() Weights {
	return Weights{
		OnTimeRate:           0.25,
		AvgDaysLate:          0.20,
		OpenOverdueCount:     0.20,
		OverdueAmountRatio:   0.15,
		ConsecutiveMissed:    0.12,
		DaysSinceLastPayment: 0.08,
	}
}

func (w Weights) Validate() error {
	values := []float64{
		w.OnTimeRate, w.AvgDaysLate, w.OpenOverdueCount,
		w.OverdueAmountRatio, w.ConsecutiveMissed, w.DaysSinceLastPayment,
	}

	sum := 0.0
	for _, v := range values {
		if v < 0 {
			return common.ErrInvalidRiskWeights
		}
		sum += v
	}

	if math.Abs(sum-1) > weightEpsilon {
		return common.ErrInvalidRiskWeights
	}

	return nil
}

// Input is everything one scoring pass needs, pre-loaded by the caller.
// History must already be restricted to the scoring window.
type Input struct {
	UnitID     string
	CondoID    string
	MonthlyFee decimal.Decimal
	History    []models.InvoiceHistoryEntry
	AsOf       time.Time
}

type Scorer struct {
	weights      Weights
	windowMonths int
}

func NewScorer(weights Weights, windowMonths int) (*Scorer, error) {
	if err := weights.Validate(); err != nil {
		return nil, err
	}
	if windowMonths <= 0 {
		windowMonths = defaultWindowMonths
	}

	return &Scorer{weights: weights, windowMonths: windowMonths}, nil
}

func (s *Scorer) WindowMonths() int {
	return s.windowMonths
}

// Score runs the rules over the unit's history and folds them into a single
// 0-1000 score with its bucket and per-factor breakdown.
func (s *Scorer) Score(in Input) models.RiskScore {
	computedAt := in.AsOf

	result := models.RiskScore{
		UnitID:       in.UnitID,
		CondoID:      in.CondoID,
		WindowMonths: s.windowMonths,
		ComputedAt:   &computedAt,
	}

	if len(in.History) == 0 {
		result.Score = models.RiskScoreMin
		result.Bucket = models.RiskBucketLow
		result.RecommendedAction = result.Bucket.RecommendedAction()
		result.Factors = models.RiskFactors{{
			Name: models.RiskNoteInsufficientHistory,
			Note: "no invoices inside the scoring window",
		}}
		return result
	}

	feats := extractFeatures(in)

	factors := models.RiskFactors{
		s.factor(models.RiskFactorOnTimeRate, s.weights.OnTimeRate,
			feats.onTimeRate, pointsOnTimeRate(feats.onTimeRate)),
		s.factor(models.RiskFactorAvgDaysLate, s.weights.AvgDaysLate,
			feats.avgDaysLate, pointsAvgDaysLate(feats.avgDaysLate)),
		s.factor(models.RiskFactorOpenOverdueCount, s.weights.OpenOverdueCount,
			float64(feats.openOverdueCount), pointsOpenOverdueCount(feats.openOverdueCount)),
		s.factor(models.RiskFactorOverdueAmountRatio, s.weights.OverdueAmountRatio,
			feats.overdueAmountRatio, pointsOverdueAmountRatio(feats.overdueAmountRatio)),
		s.factor(models.RiskFactorConsecutiveMissed, s.weights.ConsecutiveMissed,
			float64(feats.consecutiveMissed), pointsConsecutiveMissed(feats.consecutiveMissed)),
		s.factor(models.RiskFactorDaysSinceLastPayment, s.weights.DaysSinceLastPayment,
			float64(feats.daysSinceLastPayment), pointsDaysSinceLastPayment(feats.daysSinceLastPayment)),
	}

	total := 0.0
	for _, f := range factors {
		total += f.Contribution
	}

	score := int(math.Round(total))
	if score < models.RiskScoreMin {
		score = models.RiskScoreMin
	}
	if score > models.RiskScoreMax {
		score = models.RiskScoreMax
	}

	result.Score = score
	result.Bucket = models.BucketForScore(score)
	result.RecommendedAction = result.Bucket.RecommendedAction()
	result.Factors = factors

	return result
}

func (s *Scorer) factor(name string, weight, value float64, points int) models.RiskFactor {
	return models.RiskFactor{
		Name:         name,
		Value:        roundValue(value),
		Weight:       weight,
		Points:       points,
		Contribution: roundValue(weight * float64(points)),
	}
}

// pointsOnTimeRate penalizes the share of invoices not settled by their due
// date.
func pointsOnTimeRate(rate float64) int {
	return int(math.Round((1 - rate) * 1000))
}

var avgDaysLateAnchors = []anchor{{0, 0}, {5, 200}, {15, 500}, {30, 800}, {60, 1000}}

func pointsAvgDaysLate(avg float64) int {
	return piecewise(avg, avgDaysLateAnchors)
}

func pointsOpenOverdueCount(count int) int {
	switch {
	case count <= 0:
		return 0
	case count == 1:
		return 350
	case count == 2:
		return 600
	case count == 3:
		return 800
	default:
		return 1000
	}
}

// pointsOverdueAmountRatio scales the overdue total in monthly fees linearly
// up to a six-fee cap.
func pointsOverdueAmountRatio(ratio float64) int {
	if ratio <= 0 {
		return 0
	}
	if ratio >= 6 {
		return 1000
	}

	return int(math.Round(ratio / 6 * 1000))
}

func pointsConsecutiveMissed(streak int) int {
	switch {
	case streak <= 0:
		return 0
	case streak == 1:
		return 400
	case streak == 2:
		return 700
	default:
		return 1000
	}
}

var daysSinceLastPaymentAnchors = []anchor{{35, 0}, {180, 1000}}

func pointsDaysSinceLastPayment(days int) int {
	return piecewise(float64(days), daysSinceLastPaymentAnchors)
}

type anchor struct {
	x float64
	y float64
}

// piecewise interpolates linearly between anchors, clamping outside the
// range. Anchors must be sorted by x.
func piecewise(value float64, anchors []anchor) int {
	if value <= anchors[0].x {
		return int(anchors[0].y)
	}

	last := anchors[len(anchors)-1]
	if value >= last.x {
		return int(last.y)
	}

	for i := 1; i < len(anchors); i++ {
		if value > anchors[i].x {
			continue
		}

		prev := anchors[i-1]
		span := anchors[i].x - prev.x
		ratio := (value - prev.x) / span

		return int(math.Round(prev.y + ratio*(anchors[i].y-prev.y)))
	}

	return int(last.y)
}

func roundValue(v float64) float64 {
	return math.Round(v*100) / 100
}
