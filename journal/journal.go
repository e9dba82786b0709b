// Package journal persists completed run results: per-strategy decision
// tables and risk reports, keyed by run ID. The engine core never imports
// this package; the CLI records results after a run finishes.
package journal

import (
	"strings"
	"time"

	"github.com/rustyeddy/cargorisk/risk"
	"github.com/rustyeddy/cargorisk/strategy"
)

// DecisionRecord is one period of one strategy, flattened for storage.
type DecisionRecord struct {
	RunID        string
	Strategy     string
	Period       string
	Cancel       bool
	Destination  string
	Counterparty string
	Volume       float64
	ExpectedPL   float64
	CancelPayoff float64
	Violations   string // semicolon-joined codes; empty when clean
}

// ReportRecord is one strategy's risk summary.
type ReportRecord struct {
	RunID      string
	Strategy   string
	Paths      int
	Mean       float64
	StdDev     float64
	VaR5       float64
	CVaR5      float64
	Sharpe     float64
	ProbProfit float64
	Degraded   bool
}

// RunRecord identifies one engine invocation.
type RunRecord struct {
	RunID     string
	CreatedAt time.Time
	Mode      string
	Seed      int64
	Paths     int
}

// Journal is the minimal recording surface both backends implement.
type Journal interface {
	RecordRun(RunRecord) error
	RecordDecision(DecisionRecord) error
	RecordReport(ReportRecord) error
	Close() error
}

// FlattenDecisions converts a strategy into storable records.
func FlattenDecisions(runID string, s *strategy.Strategy) []DecisionRecord {
	out := make([]DecisionRecord, 0, s.Len())
	for _, d := range s.Decisions() {
		rec := DecisionRecord{
			RunID:        runID,
			Strategy:     s.Name(),
			Period:       d.Period.Label(),
			Cancel:       d.Cancel,
			Volume:       d.Volume,
			ExpectedPL:   d.ExpectedPL,
			CancelPayoff: d.CancelPayoff,
		}
		if !d.Cancel {
			rec.Destination = d.Destination.String()
			rec.Counterparty = d.Counterparty
		}
		if len(d.Violations) > 0 {
			codes := make([]string, len(d.Violations))
			for i, v := range d.Violations {
				codes[i] = v.Code
			}
			rec.Violations = strings.Join(codes, ";")
		}
		out = append(out, rec)
	}
	return out
}

// FlattenReport converts a risk report into a storable record.
func FlattenReport(runID string, r risk.Report) ReportRecord {
	return ReportRecord{
		RunID:      runID,
		Strategy:   r.Strategy,
		Paths:      r.Paths,
		Mean:       r.Mean,
		StdDev:     r.StdDev,
		VaR5:       r.VaR5,
		CVaR5:      r.CVaR5,
		Sharpe:     r.Sharpe,
		ProbProfit: r.ProbProfit,
		Degraded:   r.Degraded,
	}
}
