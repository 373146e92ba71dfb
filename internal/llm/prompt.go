package llm

import (
	"encoding/json"
	"fmt"

	"github.com/mhartleigh/paydeck/internal/dataset"
)

// BuildPrompt constructs the classification instruction sent to the remote
// model. The sample is a bounded projection of the dataset; the full
// collection is never embedded.
func BuildPrompt(query string, sample []dataset.SampleRecord) string {
	sampleJSON, err := json.Marshal(sample)
	if err != nil {
		// SampleRecord contains only marshalable fields; this cannot fire in
		// practice, but an empty sample keeps the prompt well-formed.
		sampleJSON = []byte("[]")
	}

	return fmt.Sprintf(`You are an intelligent assistant for a financial dashboard application.

USER QUERY: %q

CURRENT DATASET (Sample):
%s

YOUR TASK:
Determine if the user wants to FILTER the list, generate a DASHBOARD, generate
a RECONCILIATION_DASHBOARD, or view DETAILS of a specific invoice.

INTENT DETECTION RULES:
1. DETAILS INTENT: The query asks to "find invoice X", "search invoice Y",
   "show transaction Z", or provides a specific invoice ID (e.g. INV-...).
   -> Return type="DETAILS" and extract the ID string into "detailsId".

2. RECONCILIATION INTENT: The query is about reconciliation, payment tracking,
   outstanding debt, or chasing payments.
   -> Return type="RECONCILIATION_DASHBOARD" and generate "reconciliationData"
      with a summary, aging buckets, discrepancy rows and a method breakdown.

3. DASHBOARD INTENT: The query contains words like "dashboard", "summarize",
   "overview", "chart", "graph", "report", "analyze", a time period summary,
   or asks for aggregate stats.
   -> Return type="DASHBOARD" and generate "dashboardData" matching the query
      context. "topCustomers" will be recalculated by the system, but provide
      a structure for it.

4. FILTER INTENT: The query asks to find items by criteria (status, amount,
   date) but NOT a single specific invoice.
   -> Return type="FILTER" and provide "filteredIds".

GENERATE JSON RESPONSE ONLY.`, query, sampleJSON)
}
