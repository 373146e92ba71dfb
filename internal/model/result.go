package model

import "fmt"

// ResultType discriminates the assistant's result union.
type ResultType string

// The four result shapes the assistant can produce.
const (
	ResultFilter         ResultType = "FILTER"
	ResultDetails        ResultType = "DETAILS"
	ResultDashboard      ResultType = "DASHBOARD"
	ResultReconciliation ResultType = "RECONCILIATION_DASHBOARD"
)

// Trend is the direction indicator attached to a dashboard metric.
type Trend string

// Metric trend values.
const (
	TrendUp      Trend = "up"
	TrendDown    Trend = "down"
	TrendNeutral Trend = "neutral"
)

// Metric is one labeled KPI on a summary dashboard.
type Metric struct {
	Label  string `json:"label"`
	Value  string `json:"value"`
	Change string `json:"change,omitempty"`
	Trend  Trend  `json:"trend,omitempty"`
}

// ChartSegment is a label/value slice of a distribution chart.
type ChartSegment struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Color string  `json:"color,omitempty"`
}

// BarData is one bar of a ranking chart.
type BarData struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// DashboardData is the payload of a DASHBOARD result.
type DashboardData struct {
	Title                     string         `json:"title"`
	Metrics                   []Metric       `json:"metrics"`
	PaymentMethodDistribution []ChartSegment `json:"paymentMethodDistribution"`
	TopCustomers              []BarData      `json:"topCustomers"`
}

// ReconciliationSummary holds the headline numbers of a reconciliation run.
type ReconciliationSummary struct {
	TotalExpected      float64 `json:"totalExpected"`
	TotalReceived      float64 `json:"totalReceived"`
	Outstanding        float64 `json:"outstanding"`
	ReconciliationRate float64 `json:"reconciliationRate"`
}

// AgingBucket groups outstanding balances by time since due.
type AgingBucket struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Count int     `json:"count"`
}

// DiscrepancyStatus classifies a reconciliation mismatch.
type DiscrepancyStatus string

// Discrepancy statuses.
const (
	DiscrepancyMatched   DiscrepancyStatus = "Matched"
	DiscrepancyPartial   DiscrepancyStatus = "Partial"
	DiscrepancyUnmatched DiscrepancyStatus = "Unmatched"
	DiscrepancyOverdue   DiscrepancyStatus = "Overdue"
)

// DiscrepancyItem is one row requiring review on the reconciliation dashboard.
type DiscrepancyItem struct {
	ID             string            `json:"id"`
	Reference      string            `json:"reference"`
	ExpectedAmount float64           `json:"expectedAmount"`
	ReceivedAmount float64           `json:"receivedAmount"`
	Customer       string            `json:"customer"`
	Date           string            `json:"date"`
	Status         DiscrepancyStatus `json:"status"`
	Method         string            `json:"method"`
	Notes          string            `json:"notes,omitempty"`
}

// ReconciliationData is the payload of a RECONCILIATION_DASHBOARD result.
type ReconciliationData struct {
	Title           string                `json:"title"`
	Period          string                `json:"period"`
	Summary         ReconciliationSummary `json:"summary"`
	Aging           []AgingBucket         `json:"aging"`
	Discrepancies   []DiscrepancyItem     `json:"discrepancies"`
	MethodBreakdown []ChartSegment        `json:"methodBreakdown"`
}

// QueryResult is the tagged union handed back to the presentation layer.
// Exactly one payload is populated, selected by Type.
//
// FilteredIDs join against Transaction.ID; DetailsID is a reference-shaped
// string that the presentation layer joins against Transaction.Reference.
// The two sibling result types deliberately use different join keys.
type QueryResult struct {
	Type           ResultType          `json:"type"`
	FilteredIDs    []string            `json:"filteredIds,omitempty"`
	DetailsID      string              `json:"detailsId,omitempty"`
	Dashboard      *DashboardData      `json:"dashboardData,omitempty"`
	Reconciliation *ReconciliationData `json:"reconciliationData,omitempty"`
}

// Validate checks that the result is structurally sound: a known type tag,
// the payload that tag requires, and closed enumerations within it.
func (r QueryResult) Validate() error {
	switch r.Type {
	case ResultFilter:
		if r.FilteredIDs == nil {
			return fmt.Errorf("FILTER result missing filteredIds")
		}
		seen := make(map[string]struct{}, len(r.FilteredIDs))
		for _, id := range r.FilteredIDs {
			if _, dup := seen[id]; dup {
				return fmt.Errorf("FILTER result contains duplicate id %q", id)
			}
			seen[id] = struct{}{}
		}
	case ResultDetails:
		if r.DetailsID == "" {
			return fmt.Errorf("DETAILS result missing detailsId")
		}
	case ResultDashboard:
		if r.Dashboard == nil {
			return fmt.Errorf("DASHBOARD result missing dashboardData")
		}
		for _, m := range r.Dashboard.Metrics {
			if err := validateTrend(m.Trend); err != nil {
				return err
			}
		}
	case ResultReconciliation:
		if r.Reconciliation == nil {
			return fmt.Errorf("RECONCILIATION_DASHBOARD result missing reconciliationData")
		}
		for _, d := range r.Reconciliation.Discrepancies {
			switch d.Status {
			case DiscrepancyMatched, DiscrepancyPartial, DiscrepancyUnmatched, DiscrepancyOverdue:
			default:
				return fmt.Errorf("invalid discrepancy status: %q", d.Status)
			}
		}
	default:
		return fmt.Errorf("unknown result type: %q", r.Type)
	}
	return nil
}

func validateTrend(t Trend) error {
	switch t {
	case "", TrendUp, TrendDown, TrendNeutral:
		return nil
	default:
		return fmt.Errorf("invalid metric trend: %q", t)
	}
}
