package resolver

import (
	"strings"

	"github.com/mhartleigh/paydeck/internal/dataset"
	"github.com/mhartleigh/paydeck/internal/model"
)

var (
	reconciliationKeywords = []string{"reconcil", "payment track", "debt", "chasing"}
	dashboardKeywords      = []string{"dashboard", "summary", "report", "chart"}
)

// fallback produces a usable result with only local, synchronous computation.
// It never fails: worst case is a FILTER result with an empty identifier set.
func (r *Resolver) fallback(query string, data *dataset.Accessor) model.QueryResult {
	lower := strings.ToLower(query)

	if containsAny(lower, reconciliationKeywords) {
		rec := fallbackReconciliation()
		return model.QueryResult{Type: model.ResultReconciliation, Reconciliation: &rec}
	}

	// A dashboard cannot be synthesized locally with any fidelity; degrade to
	// showing everything instead.
	if containsAny(lower, dashboardKeywords) {
		return model.QueryResult{Type: model.ResultFilter, FilteredIDs: data.IDs()}
	}

	return model.QueryResult{Type: model.ResultFilter, FilteredIDs: data.MatchSubstring(query)}
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

// fallbackReconciliation returns the fixed representative reconciliation view
// served when the remote classifier is unreachable, so the reconciliation
// flow stays exercisable with no network access.
func fallbackReconciliation() model.ReconciliationData {
	return model.ReconciliationData{
		Title:  "Payment Reconciliation",
		Period: "Autumn Term 2025",
		Summary: model.ReconciliationSummary{
			TotalExpected:      48250,
			TotalReceived:      41800,
			Outstanding:        6450,
			ReconciliationRate: 86.6,
		},
		Aging: []model.AgingBucket{
			{Label: "0-30 Days", Value: 2150, Count: 3},
			{Label: "30-60 Days", Value: 1890, Count: 2},
			{Label: "60-90 Days", Value: 1250, Count: 1},
			{Label: "90+ Days", Value: 1160, Count: 2},
		},
		Discrepancies: []model.DiscrepancyItem{
			{ID: "1", Reference: "INV-2025-0892", ExpectedAmount: 1250.00, ReceivedAmount: 0, Customer: "Sarah Owen", Date: "15/12/2025", Status: model.DiscrepancyOverdue, Method: "Direct Debit"},
			{ID: "2", Reference: "INV-2025-0847", ExpectedAmount: 750.50, ReceivedAmount: 375.25, Customer: "Wendy Lill", Date: "22/12/2025", Status: model.DiscrepancyPartial, Method: "Direct Debit"},
			{ID: "3", Reference: "INV-2025-0823", ExpectedAmount: 890.00, ReceivedAmount: 0, Customer: "Anna Kitching", Date: "08/11/2025", Status: model.DiscrepancyOverdue, Method: "Direct Debit"},
			{ID: "4", Reference: "INV-2025-0815", ExpectedAmount: 450.00, ReceivedAmount: 450.00, Customer: "Oliver Payne", Date: "01/09/2025", Status: model.DiscrepancyUnmatched, Method: "Bank Transfer", Notes: "Reference mismatch"},
			{ID: "5", Reference: "INV-2025-0801", ExpectedAmount: 2100.00, ReceivedAmount: 1800.00, Customer: "James Mitchell", Date: "28/12/2025", Status: model.DiscrepancyPartial, Method: "Direct Debit"},
		},
		MethodBreakdown: defaultMethodBreakdown(),
	}
}
