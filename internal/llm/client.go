package llm

import (
	"context"
	"fmt"

	"github.com/mhartleigh/paydeck/internal/common"
	"github.com/mhartleigh/paydeck/internal/model"
)

// Client defines the interface for intent-resolution providers.
type Client interface {
	// ResolveIntent sends the prompt and returns the provider's structured
	// intent response, or an error when the call fails or the payload cannot
	// be parsed. The response is not yet schema-validated; callers convert it
	// with IntentResponse.ToResult.
	ResolveIntent(ctx context.Context, prompt string) (*IntentResponse, error)
}

// Config holds configuration for the intent-resolution client.
type Config struct {
	Provider    string
	APIKey      string
	Model       string
	Temperature float64
	MaxTokens   int
}

// IntentResponse is the wire shape the remote classifier returns. Exactly one
// of the payload fields is expected to be set, selected by Type.
type IntentResponse struct {
	Type               string                    `json:"type"`
	FilteredIDs        []string                  `json:"filteredIds,omitempty"`
	DetailsID          string                    `json:"detailsId,omitempty"`
	DashboardData      *model.DashboardData      `json:"dashboardData,omitempty"`
	ReconciliationData *model.ReconciliationData `json:"reconciliationData,omitempty"`
}

// ToResult validates the wire response against the result schema and converts
// it into a QueryResult. Collections the model invented as absent come back
// as empty slices, never nil.
func (r *IntentResponse) ToResult() (model.QueryResult, error) {
	result := model.QueryResult{Type: model.ResultType(r.Type)}

	switch result.Type {
	case model.ResultFilter:
		result.FilteredIDs = dedupe(r.FilteredIDs)
	case model.ResultDetails:
		result.DetailsID = r.DetailsID
	case model.ResultDashboard:
		if r.DashboardData != nil {
			d := *r.DashboardData
			if d.Metrics == nil {
				d.Metrics = []model.Metric{}
			}
			if d.PaymentMethodDistribution == nil {
				d.PaymentMethodDistribution = []model.ChartSegment{}
			}
			if d.TopCustomers == nil {
				d.TopCustomers = []model.BarData{}
			}
			result.Dashboard = &d
		}
	case model.ResultReconciliation:
		if r.ReconciliationData != nil {
			rec := *r.ReconciliationData
			if rec.Discrepancies == nil {
				rec.Discrepancies = []model.DiscrepancyItem{}
			}
			result.Reconciliation = &rec
		}
	}

	if err := result.Validate(); err != nil {
		return model.QueryResult{}, fmt.Errorf("%w: %v", common.ErrSchemaViolation, err)
	}
	return result, nil
}

// dedupe removes duplicate IDs while preserving order. A nil input becomes an
// empty slice so FILTER results always carry a collection.
func dedupe(ids []string) []string {
	out := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
