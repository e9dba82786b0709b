package journal

import (
	"encoding/csv"
	"os"
	"strconv"
)

type CSVJournal struct {
	decisions *csv.Writer
	reports   *csv.Writer
	df, rf    *os.File
}

func NewCSV(decisionsPath, reportsPath string) (*CSVJournal, error) {
	df, err := os.Create(decisionsPath)
	if err != nil {
		return nil, err
	}
	rf, err := os.Create(reportsPath)
	if err != nil {
		df.Close()
		return nil, err
	}

	dw := csv.NewWriter(df)
	rw := csv.NewWriter(rf)

	if err := dw.Write([]string{"run_id", "strategy", "period", "cancel", "destination", "counterparty", "volume", "expected_pl", "cancel_payoff", "violations"}); err != nil {
		return nil, err
	}
	if err := rw.Write([]string{"run_id", "strategy", "paths", "mean", "stddev", "var5", "cvar5", "sharpe", "prob_profit", "degraded"}); err != nil {
		return nil, err
	}

	dw.Flush()
	if err := dw.Error(); err != nil {
		return nil, err
	}
	rw.Flush()
	if err := rw.Error(); err != nil {
		return nil, err
	}

	return &CSVJournal{decisions: dw, reports: rw, df: df, rf: rf}, nil
}

// RecordRun is a no-op for CSV output; the run ID is already embedded in
// every row.
func (j *CSVJournal) RecordRun(RunRecord) error {
	return nil
}

func (j *CSVJournal) RecordDecision(d DecisionRecord) error {
	err := j.decisions.Write([]string{
		d.RunID,
		d.Strategy,
		d.Period,
		strconv.FormatBool(d.Cancel),
		d.Destination,
		d.Counterparty,
		f(d.Volume),
		f(d.ExpectedPL),
		f(d.CancelPayoff),
		d.Violations,
	})
	if err != nil {
		return err
	}
	j.decisions.Flush()
	return j.decisions.Error()
}

func (j *CSVJournal) RecordReport(r ReportRecord) error {
	err := j.reports.Write([]string{
		r.RunID,
		r.Strategy,
		strconv.Itoa(r.Paths),
		f(r.Mean),
		f(r.StdDev),
		f(r.VaR5),
		f(r.CVaR5),
		f(r.Sharpe),
		f(r.ProbProfit),
		strconv.FormatBool(r.Degraded),
	})
	if err != nil {
		return err
	}
	j.reports.Flush()
	return j.reports.Error()
}

func (j *CSVJournal) Close() error {
	j.decisions.Flush()
	if err := j.decisions.Error(); err != nil {
		return err
	}
	j.reports.Flush()
	if err := j.reports.Error(); err != nil {
		return err
	}
	if err := j.df.Close(); err != nil {
		return err
	}
	return j.rf.Close()
}

func f(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
