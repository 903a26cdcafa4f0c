package risk

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/habitado/go-condo-billing/internal/models"
)

type features struct {
	onTimeRate           float64
	avgDaysLate          float64
	openOverdueCount     int
	overdueAmountRatio   float64
	consecutiveMissed    int
	daysSinceLastPayment int
}

func extractFeatures(in Input) features {
	var f features

	var (
		settledCount int // invoices that had their chance: paid or past due
		onTimeCount  int
		paidCount    int
		daysLateSum  int
		overdueTotal decimal.Decimal
		lastPaidAt   *time.Time
		earliestDue  *time.Time
	)

	for i := range in.History {
		entry := in.History[i]

		if earliestDue == nil || entry.DueDate.Before(*earliestDue) {
			dueDate := entry.DueDate
			earliestDue = &dueDate
		}

		switch entry.Status {
		case models.InvoiceStatusPaid:
			settledCount++
			paidCount++
			daysLateSum += entry.DaysLate()
			if entry.PaidOnTime() {
				onTimeCount++
			}
			if entry.PaidAt != nil && (lastPaidAt == nil || entry.PaidAt.After(*lastPaidAt)) {
				lastPaidAt = entry.PaidAt
			}
		case models.InvoiceStatusOverdue:
			settledCount++
			f.openOverdueCount++
			overdueTotal = overdueTotal.Add(entry.Amount)
		case models.InvoiceStatusPending:
			if entry.DueDate.Before(in.AsOf) {
				// past due but the overdue sweep has not caught it yet
				settledCount++
				f.openOverdueCount++
				overdueTotal = overdueTotal.Add(entry.Amount)
			}
		}
		// cancelled entries carry no signal
	}

	f.onTimeRate = 1
	if settledCount > 0 {
		f.onTimeRate = float64(onTimeCount) / float64(settledCount)
	}

	if paidCount > 0 {
		f.avgDaysLate = float64(daysLateSum) / float64(paidCount)
	}

	if in.MonthlyFee.IsPositive() {
		f.overdueAmountRatio = overdueTotal.Div(in.MonthlyFee).InexactFloat64()
	}

	f.consecutiveMissed = missedStreak(in.History, in.AsOf)

	switch {
	case lastPaidAt != nil:
		f.daysSinceLastPayment = daysBetween(*lastPaidAt, in.AsOf)
	case earliestDue != nil && earliestDue.Before(in.AsOf):
		// never paid anything: the debt clock runs from the first due date
		f.daysSinceLastPayment = daysBetween(*earliestDue, in.AsOf)
	}

	return f
}

// missedStreak counts consecutive due months, newest first, with at least
// one invoice still unpaid. A fully paid month breaks the streak.
func missedStreak(history []models.InvoiceHistoryEntry, asOf time.Time) int {
	missedByMonth := map[string]bool{}
	var keys []string

	for i := range history {
		entry := history[i]
		if entry.Status == models.InvoiceStatusCancelled {
			continue
		}
		if !entry.DueDate.Before(asOf) {
			continue
		}

		key := entry.DueDate.Format("2006-01")
		if _, ok := missedByMonth[key]; !ok {
			missedByMonth[key] = false
			keys = append(keys, key)
		}
		if entry.Status.IsOpen() {
			missedByMonth[key] = true
		}
	}

	sort.Sort(sort.Reverse(sort.StringSlice(keys)))

	streak := 0
	for _, key := range keys {
		if !missedByMonth[key] {
			break
		}
		streak++
	}

	return streak
}

func daysBetween(from, to time.Time) int {
	d := to.Sub(from)
	if d < 0 {
		return 0
	}

	return int(d / (24 * time.Hour))
}
