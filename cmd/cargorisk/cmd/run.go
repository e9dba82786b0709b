package cmd

import (
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/rustyeddy/cargorisk/hedge"
	"github.com/rustyeddy/cargorisk/internal/id"
	"github.com/rustyeddy/cargorisk/journal"
	"github.com/rustyeddy/cargorisk/market"
	"github.com/rustyeddy/cargorisk/report"
	"github.com/rustyeddy/cargorisk/risk"
	"github.com/rustyeddy/cargorisk/sim"
	"github.com/rustyeddy/cargorisk/strategy"
)

var (
	runJournalDB  string
	runJournalCSV string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Optimize, simulate, and report the full risk picture",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEngine(cfgPath)
		if err != nil {
			return err
		}

		strategies, err := e.buildStrategies([]strategy.Policy{
			strategy.Optimal, strategy.Conservative, strategy.HighExposure,
		})
		if err != nil {
			return err
		}
		for _, s := range strategies {
			if err := report.RenderStrategy(os.Stdout, s); err != nil {
				return err
			}
		}

		calibrated, err := sim.Simulator{Curve: e.curve, Calibration: e.cal}.Calibrate()
		if err != nil {
			return err
		}
		paths, err := calibrated.Generate(e.cfg.Simulation.Seed, e.cfg.Simulation.Paths)
		if err != nil {
			return err
		}
		log.Info().
			Int("paths", paths.Paths()).
			Int64("seed", paths.Seed).
			Bool("degraded", paths.Degraded).
			Msg("simulation complete")

		agg := &risk.Aggregator{Model: e.model}
		reports := make([]risk.Report, 0, len(strategies))
		for _, s := range strategies {
			r, err := agg.Evaluate(s, e.cargoes, paths)
			if err != nil {
				return err
			}
			reports = append(reports, r)
		}
		if err := report.RenderRisk(os.Stdout, reports); err != nil {
			return err
		}

		// Hedge overlay on the optimal strategy, purchase leg.
		overlay := hedge.Overlay{
			Factor:      market.HenryHub,
			Ratio:       e.cfg.Hedge.Ratio,
			LeadDays:    e.cfg.Hedge.LeadDays,
			ResidualVol: e.cfg.Hedge.ResidualVol,
		}
		impact, err := overlay.Apply(e.curve, e.cal, e.cfg.Simulation.Seed, e.cfg.Simulation.Paths,
			agg, strategies[0], e.cargoes)
		if err != nil {
			return err
		}
		if err := report.RenderHedge(os.Stdout, impact); err != nil {
			return err
		}

		return persist(e, strategies, reports)
	},
}

// persist writes the run to the configured journal backend, if any.
func persist(e *engine, strategies []*strategy.Strategy, reports []risk.Report) error {
	var j journal.Journal
	var err error
	switch {
	case runJournalDB != "":
		j, err = journal.NewSQLite(runJournalDB)
	case runJournalCSV != "":
		j, err = journal.NewCSV(runJournalCSV+"-decisions.csv", runJournalCSV+"-reports.csv")
	default:
		return nil
	}
	if err != nil {
		return err
	}
	defer j.Close()

	runID := id.New()
	if err := j.RecordRun(journal.RunRecord{
		RunID:     runID,
		CreatedAt: time.Now().UTC(),
		Mode:      e.cfg.Nomination.Mode,
		Seed:      e.cfg.Simulation.Seed,
		Paths:     e.cfg.Simulation.Paths,
	}); err != nil {
		return err
	}
	for _, s := range strategies {
		for _, rec := range journal.FlattenDecisions(runID, s) {
			if err := j.RecordDecision(rec); err != nil {
				return err
			}
		}
	}
	for _, r := range reports {
		if err := j.RecordReport(journal.FlattenReport(runID, r)); err != nil {
			return err
		}
	}
	log.Info().Str("run_id", runID).Msg("run journaled")
	return nil
}

func init() {
	runCmd.Flags().StringVar(&runJournalDB, "journal-db", "", "SQLite path to record the run")
	runCmd.Flags().StringVar(&runJournalCSV, "journal-csv", "", "CSV path prefix to record the run")
	rootCmd.AddCommand(runCmd)
}
