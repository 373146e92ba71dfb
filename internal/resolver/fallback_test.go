package resolver

import (
	"log/slog"
	"testing"
	"time"

	"github.com/mhartleigh/paydeck/internal/dataset"
	"github.com/mhartleigh/paydeck/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallbackReconciliationKeywords(t *testing.T) {
	r := New(nil, Config{Timeout: time.Second}, slog.Default())
	data := dataset.New(testTransactions())

	queries := []string{
		"show me the reconciliation dashboard",
		"who is chasing payments?",
		"outstanding DEBT report",
		"payment tracking overview",
	}

	for _, query := range queries {
		t.Run(query, func(t *testing.T) {
			result := r.fallback(query, data)

			require.Equal(t, model.ResultReconciliation, result.Type)
			require.NotNil(t, result.Reconciliation)
			assert.NotEmpty(t, result.Reconciliation.Discrepancies)

			var agingTotal float64
			for _, bucket := range result.Reconciliation.Aging {
				agingTotal += bucket.Value
			}
			assert.Greater(t, agingTotal, 0.0)
			assert.InDelta(t, result.Reconciliation.Summary.Outstanding, agingTotal, 0.01)
		})
	}
}

func TestFallbackReconciliationWinsOverDashboard(t *testing.T) {
	r := New(nil, Config{Timeout: time.Second}, slog.Default())
	data := dataset.New(testTransactions())

	result := r.fallback("reconciliation summary report", data)

	assert.Equal(t, model.ResultReconciliation, result.Type)
}

func TestFallbackDashboardKeywordsFilterEverything(t *testing.T) {
	r := New(nil, Config{Timeout: time.Second}, slog.Default())
	data := dataset.New(testTransactions())

	for _, query := range []string{"dashboard please", "monthly SUMMARY", "revenue report", "show a chart"} {
		result := r.fallback(query, data)

		assert.Equal(t, model.ResultFilter, result.Type)
		assert.Equal(t, []string{"t1", "t2", "t3"}, result.FilteredIDs)
	}
}

func TestFallbackSubstringMatch(t *testing.T) {
	r := New(nil, Config{Timeout: time.Second}, slog.Default())
	data := dataset.New(testTransactions())

	tests := []struct {
		name    string
		query   string
		wantIDs []string
	}{
		{name: "customer name", query: "Owen", wantIDs: []string{"t1", "t2"}},
		{name: "reference", query: "INV-2025-0803", wantIDs: []string{"t3"}},
		{name: "amount", query: "200", wantIDs: []string{"t3"}},
		{name: "no match", query: "zzzzzz", wantIDs: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := r.fallback(tt.query, data)

			assert.Equal(t, model.ResultFilter, result.Type)
			assert.Equal(t, tt.wantIDs, result.FilteredIDs)
		})
	}
}

func TestFallbackReconciliationDataIsConsistent(t *testing.T) {
	rec := fallbackReconciliation()

	assert.Equal(t, "Payment Reconciliation", rec.Title)
	require.Len(t, rec.Discrepancies, 5)

	summary := rec.Summary
	assert.InDelta(t, summary.TotalExpected-summary.TotalReceived, summary.Outstanding, 0.01)

	var methodTotal float64
	for _, seg := range rec.MethodBreakdown {
		methodTotal += seg.Value
	}
	assert.InDelta(t, summary.TotalReceived, methodTotal, 0.01)

	for _, item := range rec.Discrepancies {
		assert.NotEmpty(t, item.Customer)
		assert.GreaterOrEqual(t, item.ExpectedAmount, item.ReceivedAmount)
	}
}
