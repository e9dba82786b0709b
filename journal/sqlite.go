package journal

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

type SQLiteJournal struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLiteJournal, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(Schema); err != nil {
		return nil, err
	}
	return &SQLiteJournal{db: db}, nil
}

func (j *SQLiteJournal) RecordRun(r RunRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO runs (run_id, created_at, mode, seed, paths)
		VALUES (?, ?, ?, ?, ?)`,
		r.RunID, r.CreatedAt, r.Mode, r.Seed, r.Paths,
	)
	return err
}

func (j *SQLiteJournal) RecordDecision(d DecisionRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO decisions
		(run_id, strategy, period, cancel, destination, counterparty, volume, expected_pl, cancel_payoff, violations)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		d.RunID, d.Strategy, d.Period, d.Cancel, d.Destination,
		d.Counterparty, d.Volume, d.ExpectedPL, d.CancelPayoff, d.Violations,
	)
	return err
}

func (j *SQLiteJournal) RecordReport(r ReportRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO reports
		(run_id, strategy, paths, mean, stddev, var5, cvar5, sharpe, prob_profit, degraded)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.RunID, r.Strategy, r.Paths, r.Mean, r.StdDev,
		r.VaR5, r.CVaR5, r.Sharpe, r.ProbProfit, r.Degraded,
	)
	return err
}

// ListDecisions returns a run's decisions for one strategy in period order.
func (j *SQLiteJournal) ListDecisions(runID, strategy string) ([]DecisionRecord, error) {
	rows, err := j.db.Query(`
		SELECT run_id, strategy, period, cancel, destination, counterparty, volume, expected_pl, cancel_payoff, violations
		FROM decisions
		WHERE run_id = ? AND strategy = ?
		ORDER BY period ASC`, runID, strategy)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []DecisionRecord
	for rows.Next() {
		var d DecisionRecord
		if err := rows.Scan(&d.RunID, &d.Strategy, &d.Period, &d.Cancel, &d.Destination,
			&d.Counterparty, &d.Volume, &d.ExpectedPL, &d.CancelPayoff, &d.Violations); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// GetReport returns one strategy's risk summary for a run.
func (j *SQLiteJournal) GetReport(runID, strategy string) (ReportRecord, error) {
	var r ReportRecord
	row := j.db.QueryRow(`
		SELECT run_id, strategy, paths, mean, stddev, var5, cvar5, sharpe, prob_profit, degraded
		FROM reports
		WHERE run_id = ? AND strategy = ?`, runID, strategy)
	err := row.Scan(&r.RunID, &r.Strategy, &r.Paths, &r.Mean, &r.StdDev,
		&r.VaR5, &r.CVaR5, &r.Sharpe, &r.ProbProfit, &r.Degraded)
	if err == sql.ErrNoRows {
		return ReportRecord{}, fmt.Errorf("report for run %q strategy %q not found", runID, strategy)
	}
	if err != nil {
		return ReportRecord{}, err
	}
	return r, nil
}

func (j *SQLiteJournal) Close() error {
	return j.db.Close()
}
