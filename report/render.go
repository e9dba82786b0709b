// Package report renders decision tables and risk summaries for the
// terminal. Workbook/spreadsheet export lives with the external reporting
// collaborator, not here.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/rustyeddy/cargorisk/hedge"
	"github.com/rustyeddy/cargorisk/risk"
	"github.com/rustyeddy/cargorisk/strategy"
)

// RenderStrategy prints one strategy's per-period decision table.
func RenderStrategy(w io.Writer, s *strategy.Strategy) error {
	fmt.Fprintf(w, "\nStrategy %q  expected P&L $%.0f\n", s.Name(), s.ExpectedPL())

	table := tablewriter.NewWriter(w)
	table.Header("Period", "Decision", "Counterparty", "Volume", "Expected P&L", "Cancel Floor", "Flags")

	for _, d := range s.Decisions() {
		decision := "CANCEL"
		cp := "-"
		vol := "-"
		if !d.Cancel {
			decision = d.Destination.String()
			cp = d.Counterparty
			vol = fmt.Sprintf("%.0f", d.Volume)
		}
		table.Append(
			d.Period.Label(),
			decision,
			cp,
			vol,
			fmt.Sprintf("$%.0f", d.ExpectedPL),
			fmt.Sprintf("$%.0f", d.CancelPayoff),
			flags(d),
		)
	}
	return table.Render()
}

// RenderRisk prints risk reports side by side, one row per strategy.
func RenderRisk(w io.Writer, reports []risk.Report) error {
	fmt.Fprintf(w, "\nMonte Carlo risk summary (VaR/CVaR at %.0f%%, lower tail)\n", risk.VaRLevel*100)

	table := tablewriter.NewWriter(w)
	table.Header("Strategy", "Paths", "Mean", "StdDev", "VaR", "CVaR", "Sharpe", "P(profit)")

	degraded := false
	for _, r := range reports {
		table.Append(
			r.Strategy,
			fmt.Sprintf("%d", r.Paths),
			fmt.Sprintf("$%.0f", r.Mean),
			fmt.Sprintf("$%.0f", r.StdDev),
			fmt.Sprintf("$%.0f", r.VaR5),
			fmt.Sprintf("$%.0f", r.CVaR5),
			fmt.Sprintf("%.3f", r.Sharpe),
			fmt.Sprintf("%.1f%%", r.ProbProfit*100),
		)
		if r.Degraded {
			degraded = true
		}
	}
	if err := table.Render(); err != nil {
		return err
	}
	if degraded {
		fmt.Fprintln(w, "warning: correlation calibration was repaired; results are degraded quality")
	}
	return nil
}

// RenderHedge prints the before/after hedge comparison.
func RenderHedge(w io.Writer, imp hedge.Impact) error {
	fmt.Fprintf(w, "\nHedge overlay for %q  (deterministic hedge P&L $%.0f)\n", imp.Strategy, imp.DeterministicPL)

	table := tablewriter.NewWriter(w)
	table.Header("Ensemble", "Mean", "StdDev", "VaR", "CVaR", "Sharpe", "P(profit)")

	for _, row := range []struct {
		name string
		r    risk.Report
	}{
		{"unhedged", imp.Unhedged},
		{"hedged", imp.Hedged},
	} {
		table.Append(
			row.name,
			fmt.Sprintf("$%.0f", row.r.Mean),
			fmt.Sprintf("$%.0f", row.r.StdDev),
			fmt.Sprintf("$%.0f", row.r.VaR5),
			fmt.Sprintf("$%.0f", row.r.CVaR5),
			fmt.Sprintf("%.3f", row.r.Sharpe),
			fmt.Sprintf("%.1f%%", row.r.ProbProfit*100),
		)
	}
	if err := table.Render(); err != nil {
		return err
	}
	fmt.Fprintf(w, "risk reduction: stddev -$%.0f, mean shift $%.0f\n", imp.StdReduction, imp.MeanShift)
	return nil
}

func flags(d strategy.Decision) string {
	if len(d.Violations) == 0 {
		return ""
	}
	codes := make([]string, len(d.Violations))
	for i, v := range d.Violations {
		codes[i] = v.Code
	}
	return strings.Join(codes, ",")
}
