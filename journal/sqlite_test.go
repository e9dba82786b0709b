package journal

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDecisions(runID string) []DecisionRecord {
	return []DecisionRecord{
		{
			RunID: runID, Strategy: "optimal", Period: "2026-10",
			Destination: "China", Counterparty: "BohaiGas",
			Volume: 3_800_000, ExpectedPL: 21_500_000, CancelPayoff: -5_700_000,
		},
		{
			RunID: runID, Strategy: "optimal", Period: "2026-11",
			Cancel: true, ExpectedPL: -5_700_000, CancelPayoff: -5_700_000,
			Violations: "OPTION_DEADLINE",
		},
	}
}

func TestSQLiteRoundTrip(t *testing.T) {
	t.Parallel()

	j, err := NewSQLite(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	defer j.Close()

	run := RunRecord{
		RunID:     "01JX5TESTRUN",
		CreatedAt: time.Date(2026, 8, 15, 9, 0, 0, 0, time.UTC),
		Mode:      "strict",
		Seed:      42,
		Paths:     5000,
	}
	require.NoError(t, j.RecordRun(run))

	want := testDecisions(run.RunID)
	for _, d := range want {
		require.NoError(t, j.RecordDecision(d))
	}

	report := ReportRecord{
		RunID: run.RunID, Strategy: "optimal", Paths: 5000,
		Mean: 15_800_000, StdDev: 9_200_000, VaR5: -1_100_000, CVaR5: -4_300_000,
		Sharpe: 1.717, ProbProfit: 0.94, Degraded: true,
	}
	require.NoError(t, j.RecordReport(report))

	got, err := j.ListDecisions(run.RunID, "optimal")
	require.NoError(t, err)
	assert.Equal(t, want, got)

	r, err := j.GetReport(run.RunID, "optimal")
	require.NoError(t, err)
	assert.Equal(t, report, r)
}

func TestSQLiteGetReportMissing(t *testing.T) {
	t.Parallel()

	j, err := NewSQLite(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	defer j.Close()

	_, err = j.GetReport("nope", "optimal")
	assert.ErrorContains(t, err, "not found")
}

func TestSQLiteIsolatesStrategies(t *testing.T) {
	t.Parallel()

	j, err := NewSQLite(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	defer j.Close()

	for _, d := range testDecisions("r1") {
		require.NoError(t, j.RecordDecision(d))
	}
	other := testDecisions("r1")[0]
	other.Strategy = "conservative"
	require.NoError(t, j.RecordDecision(other))

	got, err := j.ListDecisions("r1", "optimal")
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = j.ListDecisions("r1", "conservative")
	require.NoError(t, err)
	assert.Len(t, got, 1)

	got, err = j.ListDecisions("r2", "optimal")
	require.NoError(t, err)
	assert.Empty(t, got)
}
