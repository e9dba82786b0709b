package risk

import (
	"fmt"
	"math"

	"github.com/rustyeddy/cargorisk/cargo"
	"github.com/rustyeddy/cargorisk/pricing"
	"github.com/rustyeddy/cargorisk/sim"
	"github.com/rustyeddy/cargorisk/strategy"
)

// InstabilityError is fatal: a strategy evaluation produced a non-finite
// P&L, which means degenerate inputs rather than a bad outcome. It carries
// enough context to trace the failure to one cargo decision.
type InstabilityError struct {
	Path         int
	Period       string
	Destination  cargo.DestinationKind
	Counterparty string
	Value        float64
}

func (e *InstabilityError) Error() string {
	return fmt.Sprintf("risk: non-finite P&L %v on path %d (period %s, %s/%s)",
		e.Value, e.Path, e.Period, e.Destination, e.Counterparty)
}

// Aggregator re-runs the pricing formulas for a frozen strategy against
// every simulated trajectory. The strategy's destination, counterparty,
// and volume choices are fixed; nothing re-optimizes inside the loop.
type Aggregator struct {
	Model *pricing.Model
}

// Evaluate builds the strategy's empirical P&L distribution over the path
// set and summarizes it. cargoes must align one-to-one with the strategy's
// periods.
func (a *Aggregator) Evaluate(s *strategy.Strategy, cargoes []cargo.Cargo, ps *sim.PathSet) (Report, error) {
	pnls, err := a.Distribution(s, cargoes, ps)
	if err != nil {
		return Report{}, err
	}
	r := Summarize(s.Name(), pnls)
	r.Degraded = ps.Degraded
	r.Warnings = append([]string(nil), ps.Warnings...)
	return r, nil
}

// Distribution returns the per-path total P&L sample in path order. It is
// sequential; callers that want data parallelism can run PathPL over
// independent path ranges and concatenate, since paths never interact.
func (a *Aggregator) Distribution(s *strategy.Strategy, cargoes []cargo.Cargo, ps *sim.PathSet) ([]float64, error) {
	if s.Len() != len(cargoes) {
		return nil, fmt.Errorf("risk: strategy covers %d periods, got %d cargoes", s.Len(), len(cargoes))
	}

	pnls := make([]float64, ps.Paths())
	for p := range pnls {
		v, err := a.PathPL(s, cargoes, ps, p)
		if err != nil {
			return nil, err
		}
		pnls[p] = v
	}
	return pnls, nil
}

// PathPL prices the whole strategy against one simulated trajectory.
func (a *Aggregator) PathPL(s *strategy.Strategy, cargoes []cargo.Cargo, ps *sim.PathSet, path int) (float64, error) {
	total := 0.0
	for i := 0; i < s.Len(); i++ {
		d := s.Decision(i)
		c := cargoes[i]

		if d.Cancel {
			total += c.CancelPayoff()
			continue
		}

		sc, err := ps.Scenario(path, c.Period.Index)
		if err != nil {
			return 0, err
		}
		b, err := a.Model.Breakdown(c, d.Destination, d.Counterparty, d.Volume, sc)
		if err != nil {
			return 0, err
		}
		if math.IsNaN(b.ExpectedPL) || math.IsInf(b.ExpectedPL, 0) {
			return 0, &InstabilityError{
				Path:         path,
				Period:       c.Period.Label(),
				Destination:  d.Destination,
				Counterparty: d.Counterparty,
				Value:        b.ExpectedPL,
			}
		}
		total += b.ExpectedPL
	}
	return total, nil
}
