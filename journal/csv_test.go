package journal

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVJournal(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	dPath := filepath.Join(dir, "decisions.csv")
	rPath := filepath.Join(dir, "reports.csv")

	j, err := NewCSV(dPath, rPath)
	require.NoError(t, err)

	require.NoError(t, j.RecordRun(RunRecord{RunID: "r1", CreatedAt: time.Now(), Mode: "strict"}))
	for _, d := range testDecisions("r1") {
		require.NoError(t, j.RecordDecision(d))
	}
	require.NoError(t, j.RecordReport(ReportRecord{
		RunID: "r1", Strategy: "optimal", Paths: 100, Mean: 1_000_000, ProbProfit: 0.9,
	}))
	require.NoError(t, j.Close())

	df, err := os.Open(dPath)
	require.NoError(t, err)
	defer df.Close()
	rows, err := csv.NewReader(df).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3) // header + two decisions
	assert.Equal(t, "run_id", rows[0][0])
	assert.Equal(t, []string{"r1", "optimal", "2026-10", "false", "China", "BohaiGas",
		"3800000", "21500000", "-5700000", ""}, rows[1])
	assert.Equal(t, "true", rows[2][3])
	assert.Equal(t, "OPTION_DEADLINE", rows[2][9])

	rf, err := os.Open(rPath)
	require.NoError(t, err)
	defer rf.Close()
	rows, err = csv.NewReader(rf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "optimal", rows[1][1])
	assert.Equal(t, "0.9", rows[1][8])
}
