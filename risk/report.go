// Package risk reduces simulated strategy P&L distributions to summary
// statistics.
//
// Tail convention: the distribution is over P&L (profit positive), so the
// lower tail holds the worse outcomes. VaR is the 5th-percentile P&L value
// and CVaR the mean of outcomes at or below it; both are typically negative
// and are reported as-is, never sign-flipped between calculation and
// reporting.
package risk

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// VaRLevel is the lower-tail percentile used for VaR and CVaR.
const VaRLevel = 0.05

// Report summarizes one strategy's simulated P&L distribution.
type Report struct {
	Strategy string
	Paths    int

	Mean   float64
	StdDev float64
	Min    float64
	Max    float64

	VaR5       float64 // 5th-percentile P&L (lower tail = worse outcomes)
	CVaR5      float64 // mean P&L at or below VaR5
	Sharpe     float64 // mean / stddev; 0 when the distribution is flat
	ProbProfit float64 // fraction of paths with non-negative P&L

	// Calibration-quality metadata carried through from the simulation.
	Degraded bool
	Warnings []string
}

// Summarize reduces a P&L sample to a Report. The sample is not modified.
func Summarize(name string, pnls []float64) Report {
	n := len(pnls)
	r := Report{Strategy: name, Paths: n}
	if n == 0 {
		return r
	}

	sorted := append([]float64(nil), pnls...)
	sort.Float64s(sorted)

	r.Mean = stat.Mean(sorted, nil)
	r.StdDev = stat.StdDev(sorted, nil)
	r.Min = sorted[0]
	r.Max = sorted[n-1]

	r.VaR5 = stat.Quantile(VaRLevel, stat.Empirical, sorted, nil)

	// CVaR: average of the tail at or below the VaR threshold.
	tailSum, tailN := 0.0, 0
	for _, v := range sorted {
		if v > r.VaR5 {
			break
		}
		tailSum += v
		tailN++
	}
	if tailN > 0 {
		r.CVaR5 = tailSum / float64(tailN)
	}

	if r.StdDev > 0 {
		r.Sharpe = r.Mean / r.StdDev
	}

	profitable := 0
	for _, v := range sorted {
		if v >= 0 {
			profitable++
		}
	}
	r.ProbProfit = float64(profitable) / float64(n)

	return r
}
