package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/cargorisk/hedge"
	"github.com/rustyeddy/cargorisk/risk"
)

func TestRenderRisk(t *testing.T) {
	t.Parallel()

	reports := []risk.Report{
		{Strategy: "optimal", Paths: 5000, Mean: 15_800_000, StdDev: 9_200_000,
			VaR5: -1_100_000, CVaR5: -4_300_000, Sharpe: 1.717, ProbProfit: 0.94},
		{Strategy: "conservative", Paths: 5000, Mean: 9_100_000, StdDev: 3_400_000,
			VaR5: 3_200_000, CVaR5: 2_700_000, Sharpe: 2.676, ProbProfit: 1.0, Degraded: true},
	}

	var buf bytes.Buffer
	require.NoError(t, RenderRisk(&buf, reports))

	out := buf.String()
	assert.Contains(t, out, "optimal")
	assert.Contains(t, out, "conservative")
	assert.Contains(t, out, "$15800000")
	assert.Contains(t, out, "94.0%")
	// degraded calibration is surfaced, never silent
	assert.Contains(t, out, "degraded quality")
}

func TestRenderHedge(t *testing.T) {
	t.Parallel()

	imp := hedge.Impact{
		Strategy:     "optimal",
		Unhedged:     risk.Report{Mean: 15_800_000, StdDev: 9_200_000},
		Hedged:       risk.Report{Mean: 15_750_000, StdDev: 5_100_000},
		StdReduction: 4_100_000,
		MeanShift:    -50_000,
	}

	var buf bytes.Buffer
	require.NoError(t, RenderHedge(&buf, imp))

	out := buf.String()
	assert.Contains(t, out, "unhedged")
	assert.Contains(t, out, "hedged")
	assert.Contains(t, out, "stddev -$4100000")
}
