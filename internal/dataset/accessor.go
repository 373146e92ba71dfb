// Package dataset provides a read-only view over the transaction collection
// and the aggregates the resolver needs for ground-truth corrections.
package dataset

import (
	"sort"
	"strconv"
	"strings"

	"github.com/mhartleigh/paydeck/internal/model"
)

// SampleLimit bounds the number of records embedded in the remote prompt.
const SampleLimit = 5

// SampleRecord is the projection of a transaction sent to the remote
// classifier. Full records are never sent.
type SampleRecord struct {
	ID        string                  `json:"id"`
	Status    model.TransactionStatus `json:"status"`
	Amount    float64                 `json:"amount"`
	Customer  string                  `json:"customer"`
	Date      string                  `json:"date"`
	Reference string                  `json:"reference"`
}

// Accessor wraps a transaction slice with read-only queries. The underlying
// slice must not be mutated while the accessor is in use.
type Accessor struct {
	txns []model.Transaction
}

// New creates an accessor over the given collection.
func New(txns []model.Transaction) *Accessor {
	return &Accessor{txns: txns}
}

// Len returns the number of transactions.
func (a *Accessor) Len() int {
	return len(a.txns)
}

// IDs returns every transaction identifier in collection order.
func (a *Accessor) IDs() []string {
	ids := make([]string, len(a.txns))
	for i, t := range a.txns {
		ids[i] = t.ID
	}
	return ids
}

// Sample returns a bounded prefix of the collection projected down to the
// fields the remote classifier is allowed to see.
func (a *Accessor) Sample(n int) []SampleRecord {
	if n > len(a.txns) {
		n = len(a.txns)
	}
	sample := make([]SampleRecord, 0, n)
	for _, t := range a.txns[:n] {
		sample = append(sample, SampleRecord{
			ID:        t.ID,
			Status:    t.Status,
			Amount:    t.Amount,
			Customer:  t.Customer,
			Date:      t.ChargedOn,
			Reference: t.Reference,
		})
	}
	return sample
}

// RevenueByCustomer sums amounts per customer over realized transactions
// (Charged or Paid into bank) and returns the ranking in descending order.
func (a *Accessor) RevenueByCustomer() []model.BarData {
	totals := make(map[string]float64)
	for _, t := range a.txns {
		if t.Status.Realized() {
			totals[t.Customer] += t.Amount
		}
	}

	ranking := make([]model.BarData, 0, len(totals))
	for customer, total := range totals {
		ranking = append(ranking, model.BarData{Label: customer, Value: total})
	}
	sort.Slice(ranking, func(i, j int) bool {
		if ranking[i].Value != ranking[j].Value {
			return ranking[i].Value > ranking[j].Value
		}
		return ranking[i].Label < ranking[j].Label
	})
	return ranking
}

// AverageTransactionValue returns the mean amount over realized transactions,
// or 0 when none qualify.
func (a *Accessor) AverageTransactionValue() float64 {
	var total float64
	var count int
	for _, t := range a.txns {
		if t.Status.Realized() {
			total += t.Amount
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return total / float64(count)
}

// MatchSubstring returns the IDs of transactions whose customer, reference or
// stringified amount contains the query, case-insensitively.
func (a *Accessor) MatchSubstring(query string) []string {
	needle := strings.ToLower(strings.TrimSpace(query))
	ids := make([]string, 0)
	for _, t := range a.txns {
		if strings.Contains(strings.ToLower(t.Customer), needle) ||
			strings.Contains(strings.ToLower(t.Reference), needle) ||
			strings.Contains(strconv.FormatFloat(t.Amount, 'f', -1, 64), needle) {
			ids = append(ids, t.ID)
		}
	}
	return ids
}

// ByReference looks a transaction up by its reference string, the join key
// used by DETAILS results.
func (a *Accessor) ByReference(ref string) (model.Transaction, bool) {
	for _, t := range a.txns {
		if t.Reference == ref {
			return t, true
		}
	}
	return model.Transaction{}, false
}

// Overdue returns transactions that have not reached a realized state, the
// set the chase-payments flow operates on.
func (a *Accessor) Overdue() []model.Transaction {
	out := make([]model.Transaction, 0)
	for _, t := range a.txns {
		if !t.Status.Realized() {
			out = append(out, t)
		}
	}
	return out
}
