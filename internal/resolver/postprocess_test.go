package resolver

import (
	"testing"

	"github.com/mhartleigh/paydeck/internal/dataset"
	"github.com/mhartleigh/paydeck/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCorrectDashboardOverwritesTopCustomers(t *testing.T) {
	data := dataset.New(testTransactions())
	result := model.QueryResult{
		Type: model.ResultDashboard,
		Dashboard: &model.DashboardData{
			Title: "Summary",
			TopCustomers: []model.BarData{
				{Label: "Hallucinated Ltd", Value: 12345},
			},
		},
	}

	applyGroundTruth(&result, data)

	assert.Equal(t, []model.BarData{
		{Label: "James Mitchell", Value: 200},
		{Label: "Sarah Owen", Value: 100},
	}, result.Dashboard.TopCustomers)
}

func TestCorrectDashboardKeepsTopCustomersWhenNoRealizedRevenue(t *testing.T) {
	txns := []model.Transaction{
		{ID: "t1", Customer: "Sarah Owen", Status: model.StatusRefunded, Amount: 50},
		{ID: "t2", Customer: "James Mitchell", Status: model.StatusFailed, Amount: 80},
	}
	data := dataset.New(txns)

	original := []model.BarData{{Label: "Sarah Owen", Value: 500}}
	result := model.QueryResult{
		Type:      model.ResultDashboard,
		Dashboard: &model.DashboardData{Title: "Summary", TopCustomers: original},
	}

	applyGroundTruth(&result, data)

	assert.Equal(t, original, result.Dashboard.TopCustomers)
}

func TestCorrectDashboardAppendsAverageMetric(t *testing.T) {
	data := dataset.New(testTransactions())
	result := model.QueryResult{
		Type: model.ResultDashboard,
		Dashboard: &model.DashboardData{
			Title:   "Summary",
			Metrics: []model.Metric{{Label: "Revenue", Value: "£300.00", Trend: model.TrendUp}},
		},
	}

	applyGroundTruth(&result, data)

	require.Len(t, result.Dashboard.Metrics, 2)
	avg := result.Dashboard.Metrics[1]
	assert.Equal(t, "Avg. Transaction Value", avg.Label)
	assert.Equal(t, "£150.00", avg.Value)
	assert.Equal(t, "+2.5%", avg.Change)
	assert.Equal(t, model.TrendUp, avg.Trend)
}

func TestCorrectDashboardSkipsAverageWhenMetricsFull(t *testing.T) {
	data := dataset.New(testTransactions())
	metrics := []model.Metric{
		{Label: "a"}, {Label: "b"}, {Label: "c"}, {Label: "d"},
	}
	result := model.QueryResult{
		Type:      model.ResultDashboard,
		Dashboard: &model.DashboardData{Title: "Summary", Metrics: metrics},
	}

	applyGroundTruth(&result, data)

	assert.Len(t, result.Dashboard.Metrics, 4)
}

func TestApplyGroundTruthIsIdempotent(t *testing.T) {
	data := dataset.New(testTransactions())
	result := model.QueryResult{
		Type:      model.ResultDashboard,
		Dashboard: &model.DashboardData{Title: "Summary"},
	}

	applyGroundTruth(&result, data)
	first := *result.Dashboard

	applyGroundTruth(&result, data)

	assert.Equal(t, first.Metrics, result.Dashboard.Metrics)
	assert.Equal(t, first.TopCustomers, result.Dashboard.TopCustomers)
}

func TestApplyGroundTruthIgnoresNonDashboardResults(t *testing.T) {
	data := dataset.New(testTransactions())
	result := model.QueryResult{Type: model.ResultFilter, FilteredIDs: []string{"t1"}}

	applyGroundTruth(&result, data)

	assert.Equal(t, []string{"t1"}, result.FilteredIDs)
}

func TestNormalizeReconciliationFillsDefaults(t *testing.T) {
	data := dataset.New(testTransactions())
	result := model.QueryResult{
		Type: model.ResultReconciliation,
		Reconciliation: &model.ReconciliationData{
			Title: "Reconciliation",
			Summary: model.ReconciliationSummary{
				TotalExpected: 1000,
				TotalReceived: 600,
				Outstanding:   400,
			},
		},
	}

	applyGroundTruth(&result, data)

	assert.NotNil(t, result.Reconciliation.Aging)
	require.NotEmpty(t, result.Reconciliation.MethodBreakdown)

	var total float64
	for _, seg := range result.Reconciliation.MethodBreakdown {
		total += seg.Value
	}
	assert.InDelta(t, 41800, total, 0.01)
}

func TestNormalizeReconciliationKeepsProvidedBreakdown(t *testing.T) {
	data := dataset.New(testTransactions())
	breakdown := []model.ChartSegment{{Label: "Bank Transfer", Value: 600, Color: "#3b82f6"}}
	result := model.QueryResult{
		Type: model.ResultReconciliation,
		Reconciliation: &model.ReconciliationData{
			Title:           "Reconciliation",
			MethodBreakdown: breakdown,
			Aging:           []model.AgingBucket{{Label: "0-7 days", Value: 400, Count: 1}},
		},
	}

	applyGroundTruth(&result, data)

	assert.Equal(t, breakdown, result.Reconciliation.MethodBreakdown)
}
