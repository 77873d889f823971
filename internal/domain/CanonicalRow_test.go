package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	rows := []CanonicalRow{
		{SpendRaw: 60, Impressions: 600, Clicks: 30, ROAS: 2},
		{SpendRaw: 40, Impressions: 400, Clicks: 20, ROAS: 4},
	}

	summary := Summarize(rows)

	assert.Equal(t, 100.0, summary.Spend)
	assert.Equal(t, 1000.0, summary.Impressions)
	assert.Equal(t, 50.0, summary.Clicks)
	assert.Equal(t, 100.0, summary.CPM) // 100 / 1000 * 1000
	assert.Equal(t, 5.0, summary.CTR)   // 50 / 1000 * 100
	assert.Equal(t, 3.0, summary.AvgROAS)
}

func TestSummarizeEmpty(t *testing.T) {
	summary := Summarize(nil)

	assert.Equal(t, 0.0, summary.Spend)
	assert.Equal(t, 0.0, summary.CPM)
	assert.Equal(t, 0.0, summary.CTR)
	assert.Equal(t, 0.0, summary.AvgROAS)
}

func TestRunReportAppend(t *testing.T) {
	report := &RunReport{}

	report.Append(FluxReportEntry{FluxID: "f1", Status: FluxSyncSucceeded})
	report.Append(FluxReportEntry{FluxID: "f2", Status: FluxSyncSkippedNoData})
	report.Append(FluxReportEntry{FluxID: "f3", Status: FluxSyncFailed})
	report.Append(FluxReportEntry{FluxID: "f4", Status: FluxSyncSucceeded})

	assert.Equal(t, 2, report.Succeeded)
	assert.Equal(t, 1, report.Skipped)
	assert.Equal(t, 1, report.Failed)
	assert.Len(t, report.Entries, 4)
}
