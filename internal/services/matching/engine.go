// Package matching reconciles bank statement credits against open invoices.
// The engine is pure: it scores transaction/invoice pairs in tiers, assigns
// them greedily by confidence, and reports what should be applied, suggested
// or left for manual review. Persistence and invoice mutation stay with the
// caller.
package matching

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/habitado/go-condo-billing/internal/common"
	"github.com/habitado/go-condo-billing/internal/models"
)

// Config carries the matching thresholds. Zero values are not defaulted
// here; build it from the application config.
type Config struct {
	AutoApplyEnabled    bool
	AutoApplyThreshold  float64
	MinMargin           float64
	AmountTolerance     float64
	AmountTolerancePct  float64
	DateWindowDays      int
	MinDescriptionScore float64
	SuggestionLimit     int
}

func DefaultConfig() Config {
	return Config{
		AutoApplyEnabled:    true,
		AutoApplyThreshold:  0.90,
		MinMargin:           0.05,
		AmountTolerance:     0.05,
		AmountTolerancePct:  0.01,
		DateWindowDays:      10,
		MinDescriptionScore: 0.45,
		SuggestionLimit:     3,
	}
}

// confidence bands reported in the run summary
const (
	bandHigh   = "high"
	bandMedium = "medium"
	bandLow    = "low"
)

// minWeakComposite is the floor below which an invoice is not worth listing
// as an alternate on an unmatched entry.
const minWeakComposite = 0.35

// Counters summarize one engine run for the run row and the report footer.
type Counters struct {
	Total        int
	AutoApplied  int
	Suggested    int
	Unmatched    int
	IgnoredDebit int
	ByMethod     map[models.MatchMethod]int
	ByBand       map[string]int
}

// Result is the full outcome of one engine run, one entry per transaction in
// input order.
type Result struct {
	Entries  []models.MatchResult
	Counters Counters
}

// FullyMatched reports whether every credit was applied automatically, with
// nothing left for review.
func (r *Result) FullyMatched() bool {
	return r.Counters.Suggested == 0 && r.Counters.Unmatched == 0
}

func (r *Result) add(entry models.MatchResult) {
	r.Entries = append(r.Entries, entry)

	r.Counters.Total++
	switch entry.Outcome {
	case models.MatchOutcomeAutoApplied:
		r.Counters.AutoApplied++
	case models.MatchOutcomeSuggested:
		r.Counters.Suggested++
	case models.MatchOutcomeUnmatched:
		r.Counters.Unmatched++
	case models.MatchOutcomeIgnoredDebit:
		r.Counters.IgnoredDebit++
	}

	if entry.Method != "" {
		r.Counters.ByMethod[entry.Method]++
		r.Counters.ByBand[confidenceBand(entry.Confidence)]++
	}
}

type Engine struct {
	cfg Config
}

func NewEngine(cfg Config) *Engine {
	if cfg.SuggestionLimit <= 0 {
		cfg.SuggestionLimit = DefaultConfig().SuggestionLimit
	}

	return &Engine{cfg: cfg}
}

// candidate is one scored transaction/invoice pair.
type candidate struct {
	txnIdx     int
	invoiceIdx int
	confidence float64
	method     models.MatchMethod
}

// Run matches statement transactions against open invoices. One invoice per
// transaction and one transaction per invoice; assignment is greedy by
// descending confidence with ties broken by earlier due date, then invoice
// number.
func (e *Engine) Run(ctx context.Context, txns []models.BankTransaction, invoices []models.Invoice) *Result {
	result := &Result{
		Entries: make([]models.MatchResult, 0, len(txns)),
		Counters: Counters{
			ByMethod: map[models.MatchMethod]int{},
			ByBand:   map[string]int{},
		},
	}

	open := make([]models.Invoice, 0, len(invoices))
	for _, inv := range invoices {
		if inv.Status.IsOpen() {
			open = append(open, inv)
		}
	}

	perTxn := make([][]candidate, len(txns))
	var all []candidate
	for i := range txns {
		if !txns[i].IsCredit() {
			continue
		}

		for j := range open {
			confidence, method := e.score(txns[i], open[j])
			if confidence <= 0 {
				continue
			}

			c := candidate{txnIdx: i, invoiceIdx: j, confidence: confidence, method: method}
			perTxn[i] = append(perTxn[i], c)
			all = append(all, c)
		}
		sortCandidates(perTxn[i], open)
	}
	sortCandidates(all, open)

	assigned := make(map[int]candidate, len(txns))
	taken := make(map[int]bool, len(open))
	for _, c := range all {
		if _, ok := assigned[c.txnIdx]; ok {
			continue
		}
		if taken[c.invoiceIdx] {
			continue
		}

		assigned[c.txnIdx] = c
		taken[c.invoiceIdx] = true
	}

	for i := range txns {
		chosen, ok := assigned[i]
		if ok {
			result.add(e.buildMatchedEntry(txns[i], open, perTxn[i], chosen))
			continue
		}

		result.add(e.buildUnmatchedEntry(txns[i], open, taken))
	}

	return result
}

// score returns the best single-pair confidence across the tiers.
func (e *Engine) score(txn models.BankTransaction, inv models.Invoice) (float64, models.MatchMethod) {
	if matchesReference(txn, inv) {
		return 1, models.MatchMethodExactReference
	}

	var (
		best   float64
		method models.MatchMethod
	)

	if txn.Amount.Equal(inv.Amount.Decimal) {
		if sim := Similarity(txn.Description, inv.PayerName); sim >= e.cfg.MinDescriptionScore {
			confidence := 0.75 + 0.20*sim
			if confidence > 0.95 {
				confidence = 0.95
			}
			best, method = confidence, models.MatchMethodValueDescription
		}
	}

	if confidence, ok := e.approximateConfidence(txn, inv); ok && confidence > best {
		best, method = confidence, models.MatchMethodApproximateValue
	}

	return best, method
}

// approximateConfidence scores near-miss amounts inside the date window on a
// 0.50–0.75 scale by amount and date closeness.
func (e *Engine) approximateConfidence(txn models.BankTransaction, inv models.Invoice) (float64, bool) {
	if inv.DueDate == nil {
		return 0, false
	}

	days := daysApart(txn.Date, *inv.DueDate)
	if days > e.cfg.DateWindowDays {
		return 0, false
	}

	diff := txn.Amount.Sub(inv.Amount.Decimal).Abs()
	limit := decimal.NewFromFloat(e.cfg.AmountTolerance)
	if pctLimit := inv.Amount.Decimal.Mul(decimal.NewFromFloat(e.cfg.AmountTolerancePct)).Abs(); pctLimit.GreaterThan(limit) {
		limit = pctLimit
	}
	if diff.GreaterThan(limit) {
		return 0, false
	}

	amountCloseness := 1.0
	if limit.IsPositive() {
		amountCloseness = 1 - diff.Div(limit).InexactFloat64()
		if amountCloseness < 0 {
			amountCloseness = 0
		}
	}

	dateCloseness := 1.0
	if e.cfg.DateWindowDays > 0 {
		dateCloseness = 1 - float64(days)/float64(e.cfg.DateWindowDays)
	}

	return 0.50 + 0.25*(0.5*amountCloseness+0.5*dateCloseness), true
}

func (e *Engine) buildMatchedEntry(txn models.BankTransaction, open []models.Invoice, candidates []candidate, chosen candidate) models.MatchResult {
	entry := newEntry(txn)

	invoice := open[chosen.invoiceIdx]
	entry.InvoiceNumber = invoice.Number
	entry.Method = chosen.method
	entry.Confidence = roundConfidence(chosen.confidence)
	entry.Alternates = alternatesFrom(candidates, chosen.invoiceIdx, open, e.cfg.SuggestionLimit)

	// the margin is measured against the best candidate on a different
	// invoice, so two equally plausible invoices degrade to a suggestion
	margin := 1.0
	runnerUp := ""
	for _, c := range candidates {
		if c.invoiceIdx == chosen.invoiceIdx {
			continue
		}

		margin = chosen.confidence - c.confidence
		runnerUp = open[c.invoiceIdx].Number
		break
	}

	qualifies := chosen.confidence >= e.cfg.AutoApplyThreshold && margin >= e.cfg.MinMargin
	switch {
	case qualifies && e.cfg.AutoApplyEnabled:
		entry.Outcome = models.MatchOutcomeAutoApplied
	case qualifies:
		entry.Outcome = models.MatchOutcomeSuggested
		entry.Detail = "auto-apply disabled"
	case chosen.confidence >= e.cfg.AutoApplyThreshold:
		entry.Outcome = models.MatchOutcomeSuggested
		entry.Detail = fmt.Sprintf("ambiguous with %s", runnerUp)
	default:
		entry.Outcome = models.MatchOutcomeSuggested
	}

	return entry
}

func (e *Engine) buildUnmatchedEntry(txn models.BankTransaction, open []models.Invoice, taken map[int]bool) models.MatchResult {
	entry := newEntry(txn)

	if !txn.IsCredit() {
		entry.Outcome = models.MatchOutcomeIgnoredDebit
		entry.Detail = "debit entries are not matched"
		return entry
	}

	entry.Outcome = models.MatchOutcomeUnmatched
	entry.Detail = "no candidate above the matching thresholds"
	entry.Alternates = e.weakAlternates(txn, open, taken)
	if len(entry.Alternates) > 0 {
		entry.Detail = "closest invoices attached as alternates"
	}

	return entry
}

func newEntry(txn models.BankTransaction) models.MatchResult {
	entry := models.MatchResult{
		Line:          txn.Line,
		TransactionAt: txn.Date,
		Direction:     txn.Direction,
		Amount:        models.NewDecimalFromExternal(txn.Amount),
		Description:   txn.Description,
		Reference:     txn.ReferenceID,
	}
	if entry.Reference == "" {
		entry.Reference = txn.DocumentNumber
	}

	return entry
}

// weakAlternates ranks still-unassigned invoices below every matching tier,
// so an unmatched entry at least points the reviewer somewhere.
func (e *Engine) weakAlternates(txn models.BankTransaction, open []models.Invoice, taken map[int]bool) models.MatchAlternates {
	type weak struct {
		invoiceIdx int
		composite  float64
	}

	var weaks []weak
	for j := range open {
		if taken[j] {
			continue
		}

		composite := e.compositeScore(txn, open[j])
		if composite < minWeakComposite {
			continue
		}

		weaks = append(weaks, weak{invoiceIdx: j, composite: composite})
	}

	sort.SliceStable(weaks, func(x, y int) bool {
		if weaks[x].composite != weaks[y].composite {
			return weaks[x].composite > weaks[y].composite
		}

		invX, invY := open[weaks[x].invoiceIdx], open[weaks[y].invoiceIdx]
		dx, dy := dueOrZero(invX), dueOrZero(invY)
		if !dx.Equal(dy) {
			return dx.Before(dy)
		}

		return invX.Number < invY.Number
	})

	var alternates models.MatchAlternates
	for _, w := range weaks {
		// scaled to stay below the approximate band
		confidence := 0.10 + 0.35*w.composite
		alternates = append(alternates, toAlternate(open[w.invoiceIdx], confidence, models.MatchMethodApproximateValue))
		if len(alternates) == e.cfg.SuggestionLimit {
			break
		}
	}

	return alternates
}

// compositeScore ranks below-threshold candidates: relative amount closeness
// dominates, date proximity and description help.
func (e *Engine) compositeScore(txn models.BankTransaction, inv models.Invoice) float64 {
	amountScore := 0.0
	if inv.Amount.Decimal.IsPositive() {
		rel := txn.Amount.Sub(inv.Amount.Decimal).Abs().Div(inv.Amount.Decimal).InexactFloat64()
		amountScore = 1 - math.Min(rel, 1)
	}

	dateScore := 0.0
	if inv.DueDate != nil && e.cfg.DateWindowDays > 0 {
		days := daysApart(txn.Date, *inv.DueDate)
		dateScore = 1 - math.Min(float64(days)/float64(2*e.cfg.DateWindowDays), 1)
	}

	descScore := Similarity(txn.Description, inv.PayerName)

	return 0.5*amountScore + 0.3*dateScore + 0.2*descScore
}

func alternatesFrom(candidates []candidate, chosenIdx int, open []models.Invoice, limit int) models.MatchAlternates {
	var alternates models.MatchAlternates
	for _, c := range candidates {
		if c.invoiceIdx == chosenIdx {
			continue
		}

		alternates = append(alternates, toAlternate(open[c.invoiceIdx], c.confidence, c.method))
		if len(alternates) == limit {
			break
		}
	}

	return alternates
}

func toAlternate(inv models.Invoice, confidence float64, method models.MatchMethod) models.MatchAlternate {
	alt := models.MatchAlternate{
		InvoiceNumber: inv.Number,
		Confidence:    roundConfidence(confidence),
		Method:        method,
		Amount:        inv.Amount,
	}
	if inv.DueDate != nil {
		alt.DueDate = common.FormatDatetimeToString(*inv.DueDate, common.DateFormatYYYYMMDD)
	}

	return alt
}

func sortCandidates(candidates []candidate, open []models.Invoice) {
	sort.SliceStable(candidates, func(x, y int) bool {
		a, b := candidates[x], candidates[y]
		if a.confidence != b.confidence {
			return a.confidence > b.confidence
		}

		invA, invB := open[a.invoiceIdx], open[b.invoiceIdx]
		da, db := dueOrZero(invA), dueOrZero(invB)
		if !da.Equal(db) {
			return da.Before(db)
		}
		if invA.Number != invB.Number {
			return invA.Number < invB.Number
		}

		return a.txnIdx < b.txnIdx
	})
}

func matchesReference(txn models.BankTransaction, inv models.Invoice) bool {
	for _, ref := range []string{txn.ReferenceID, txn.DocumentNumber} {
		for _, target := range []string{inv.Number, inv.OurNumber, barcodeFreeField(inv.Barcode)} {
			if refEquals(ref, target) {
				return true
			}
		}
	}

	return false
}

// refEquals compares loosely: bank files zero-pad numeric references that
// storage keeps bare.
func refEquals(a, b string) bool {
	a = strings.ToUpper(strings.TrimSpace(a))
	b = strings.ToUpper(strings.TrimSpace(b))
	if a == "" || b == "" {
		return false
	}
	if a == b {
		return true
	}

	if isDigits(a) && isDigits(b) {
		a = strings.TrimLeft(a, "0")
		b = strings.TrimLeft(b, "0")
		return a != "" && a == b
	}

	return false
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}

// barcodeFreeField is the bank-specific segment of a 44-digit boleto
// barcode, where the nosso número lives.
func barcodeFreeField(barcode string) string {
	if len(barcode) != 44 {
		return ""
	}

	return barcode[19:]
}

func confidenceBand(confidence float64) string {
	switch {
	case confidence >= 0.90:
		return bandHigh
	case confidence >= 0.75:
		return bandMedium
	default:
		return bandLow
	}
}

func daysApart(a, b time.Time) int {
	d := a.Sub(b)
	if d < 0 {
		d = -d
	}

	return int(d / (24 * time.Hour))
}

func roundConfidence(confidence float64) float64 {
	return math.Round(confidence*10000) / 10000
}

func dueOrZero(inv models.Invoice) time.Time {
	if inv.DueDate == nil {
		return time.Time{}
	}

	return *inv.DueDate
}
