package cmd

import (
	"fmt"
	"time"

	"github.com/rustyeddy/cargorisk/cargo"
	"github.com/rustyeddy/cargorisk/config"
	"github.com/rustyeddy/cargorisk/market"
	"github.com/rustyeddy/cargorisk/pricing"
	"github.com/rustyeddy/cargorisk/strategy"
)

// engine bundles the domain objects every subcommand builds from config.
type engine struct {
	cfg      *config.Config
	book     *cargo.Book
	curve    *market.Curve
	cal      market.Calibration
	cargoes  []cargo.Cargo
	periods  []market.Period
	decision time.Time
	model    *pricing.Model
}

func loadEngine(path string) (*engine, error) {
	cfg, err := config.LoadFromFile(path)
	if err != nil {
		return nil, err
	}

	book, err := cfg.BuildBook()
	if err != nil {
		return nil, err
	}
	curve, err := cfg.BuildCurve()
	if err != nil {
		return nil, err
	}
	cal, err := cfg.BuildCalibration()
	if err != nil {
		return nil, err
	}
	periods, decision, err := cfg.BuildHorizon()
	if err != nil {
		return nil, err
	}

	return &engine{
		cfg:      cfg,
		book:     book,
		curve:    curve,
		cal:      cal,
		cargoes:  cfg.BuildCargoes(periods),
		periods:  periods,
		decision: decision,
		model:    pricing.NewModel(book),
	}, nil
}

// optimizer builds the strategy optimizer with the configured constraint
// mode, keying the high-exposure policy on the most volatile sale index.
func (e *engine) optimizer() (*strategy.Optimizer, error) {
	mode := strategy.Strict
	if e.cfg.Nomination.Mode == "advisory" {
		mode = strategy.Advisory
	}

	return &strategy.Optimizer{
		Model:              e.model,
		Book:               e.book,
		Curve:              e.curve,
		DecisionDate:       e.decision,
		NominationLeadDays: e.cfg.Nomination.LeadDays,
		OptionLeadDays:     e.cfg.Nomination.OptionLeadDays,
		Mode:               mode,
		VolatileIndex:      e.volatileIndex(),
	}, nil
}

// volatileIndex picks the sale index with the highest calibrated
// volatility among the indices any configured destination prices off.
func (e *engine) volatileIndex() market.Commodity {
	best := market.JKM
	bestVol := -1.0
	for _, d := range e.book.Destinations() {
		idx := d.Kind.SaleIndex()
		if v := e.cal.Vols[idx]; v > bestVol {
			best, bestVol = idx, v
		}
	}
	return best
}

// buildStrategies runs the optimizer for every named policy.
func (e *engine) buildStrategies(policies []strategy.Policy) ([]*strategy.Strategy, error) {
	opt, err := e.optimizer()
	if err != nil {
		return nil, err
	}
	out := make([]*strategy.Strategy, 0, len(policies))
	for _, p := range policies {
		s, err := opt.Build(p, e.cargoes)
		if err != nil {
			return nil, fmt.Errorf("build %s strategy: %w", p, err)
		}
		out = append(out, s)
	}
	return out, nil
}
