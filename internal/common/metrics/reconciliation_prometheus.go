package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/habitado/go-condo-billing/internal/models"
)

type ReconciliationPrometheusMetrics struct {
	matchOutcomes *prometheus.CounterVec
	matchAmounts  *prometheus.CounterVec
	riskRebuilds  prometheus.Counter
}

func newReconciliationPrometheusMetrics(reg prometheus.Registerer) *ReconciliationPrometheusMetrics {
	mtc := &ReconciliationPrometheusMetrics{
		matchOutcomes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "billing_reconciliation_outcomes_total",
				Help: "Number of reconciled statement entries by outcome",
			},
			[]string{"outcome"},
		),
		matchAmounts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "billing_reconciliation_amount_total",
				Help: "Reconciled statement entry amounts by outcome",
			},
			[]string{"outcome"},
		),
		riskRebuilds: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "billing_risk_score_rebuilds_total",
				Help: "Number of completed delinquency risk score rebuilds",
			},
		),
	}

	reg.MustRegister(mtc.matchOutcomes)
	reg.MustRegister(mtc.matchAmounts)
	reg.MustRegister(mtc.riskRebuilds)

	return mtc
}

func (m *ReconciliationPrometheusMetrics) Record(results []models.MatchResult) {
	if m == nil {
		return
	}

	for _, result := range results {
		amount, _ := result.Amount.Decimal.Float64()

		m.matchOutcomes.WithLabelValues(string(result.Outcome)).Inc()
		m.matchAmounts.WithLabelValues(string(result.Outcome)).Add(amount)
	}
}

func (m *ReconciliationPrometheusMetrics) RecordRiskRebuild() {
	if m == nil {
		return
	}

	m.riskRebuilds.Inc()
}
