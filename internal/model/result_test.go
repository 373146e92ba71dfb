package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryResultValidate(t *testing.T) {
	tests := []struct {
		name    string
		result  QueryResult
		wantErr string
	}{
		{
			name:   "valid filter",
			result: QueryResult{Type: ResultFilter, FilteredIDs: []string{"1", "2"}},
		},
		{
			name:   "valid empty filter",
			result: QueryResult{Type: ResultFilter, FilteredIDs: []string{}},
		},
		{
			name:    "filter without ids",
			result:  QueryResult{Type: ResultFilter},
			wantErr: "missing filteredIds",
		},
		{
			name:    "filter with duplicate ids",
			result:  QueryResult{Type: ResultFilter, FilteredIDs: []string{"1", "1"}},
			wantErr: "duplicate id",
		},
		{
			name:   "valid details",
			result: QueryResult{Type: ResultDetails, DetailsID: "INV-2025-0892"},
		},
		{
			name:    "details without id",
			result:  QueryResult{Type: ResultDetails},
			wantErr: "missing detailsId",
		},
		{
			name: "valid dashboard",
			result: QueryResult{Type: ResultDashboard, Dashboard: &DashboardData{
				Title:   "October Summary",
				Metrics: []Metric{{Label: "Revenue", Value: "£1,200.00", Trend: TrendUp}},
			}},
		},
		{
			name:    "dashboard without payload",
			result:  QueryResult{Type: ResultDashboard},
			wantErr: "missing dashboardData",
		},
		{
			name: "dashboard with bad trend",
			result: QueryResult{Type: ResultDashboard, Dashboard: &DashboardData{
				Metrics: []Metric{{Label: "Revenue", Value: "£1", Trend: "sideways"}},
			}},
			wantErr: "invalid metric trend",
		},
		{
			name: "valid reconciliation",
			result: QueryResult{Type: ResultReconciliation, Reconciliation: &ReconciliationData{
				Title: "Termly Reconciliation",
				Discrepancies: []DiscrepancyItem{
					{ID: "1", Reference: "INV-1", Status: DiscrepancyOverdue},
				},
			}},
		},
		{
			name: "reconciliation with bad discrepancy status",
			result: QueryResult{Type: ResultReconciliation, Reconciliation: &ReconciliationData{
				Discrepancies: []DiscrepancyItem{{ID: "1", Status: "Late"}},
			}},
			wantErr: "invalid discrepancy status",
		},
		{
			name:    "unknown type",
			result:  QueryResult{Type: "EXPORT"},
			wantErr: "unknown result type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.result.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParseStatus(t *testing.T) {
	got, err := ParseStatus("Settled")
	require.NoError(t, err)
	assert.Equal(t, StatusPaidIntoBank, got)

	got, err = ParseStatus("Charged")
	require.NoError(t, err)
	assert.Equal(t, StatusCharged, got)

	_, err = ParseStatus("Pending")
	assert.Error(t, err)
}

func TestStatusRealized(t *testing.T) {
	assert.True(t, StatusCharged.Realized())
	assert.True(t, StatusPaidIntoBank.Realized())
	assert.False(t, StatusRefunded.Realized())
	assert.False(t, StatusCancelled.Realized())
	assert.False(t, StatusFailed.Realized())
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "£0.00"},
		{150, "£150.00"},
		{750.5, "£750.50"},
		{6450, "£6,450.00"},
		{48250, "£48,250.00"},
		{1234567.89, "£1,234,567.89"},
		{-42.5, "-£42.50"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatAmount(tt.in), "FormatAmount(%v)", tt.in)
	}
}
