package journal

const Schema = `
CREATE TABLE IF NOT EXISTS runs (
	run_id TEXT PRIMARY KEY,
	created_at DATETIME NOT NULL,
	mode TEXT NOT NULL,
	seed INTEGER NOT NULL,
	paths INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS decisions (
	run_id TEXT NOT NULL,
	strategy TEXT NOT NULL,
	period TEXT NOT NULL,
	cancel INTEGER NOT NULL,
	destination TEXT NOT NULL,
	counterparty TEXT NOT NULL,
	volume REAL NOT NULL,
	expected_pl REAL NOT NULL,
	cancel_payoff REAL NOT NULL,
	violations TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS reports (
	run_id TEXT NOT NULL,
	strategy TEXT NOT NULL,
	paths INTEGER NOT NULL,
	mean REAL NOT NULL,
	stddev REAL NOT NULL,
	var5 REAL NOT NULL,
	cvar5 REAL NOT NULL,
	sharpe REAL NOT NULL,
	prob_profit REAL NOT NULL,
	degraded INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_decisions_run ON decisions(run_id, strategy);
CREATE INDEX IF NOT EXISTS idx_reports_run ON reports(run_id);
`
