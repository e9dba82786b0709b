package strategy

import (
	"time"

	"github.com/rustyeddy/cargorisk/cargo"
	"github.com/rustyeddy/cargorisk/market"
	"github.com/rustyeddy/cargorisk/pricing"
)

// plTie absorbs floating-point noise when comparing candidate P&Ls; within
// it, the credit and ordering tie-breaks decide.
const plTie = 1e-6

// Optimizer builds named strategies against the deterministic forward
// curve. All fields are set once; Build has no side effects on the
// optimizer, so one instance can build any number of strategies.
type Optimizer struct {
	Model *pricing.Model
	Book  *cargo.Book
	Curve *market.Curve

	// DecisionDate anchors nomination-deadline arithmetic.
	DecisionDate time.Time
	// NominationLeadDays is the portfolio-wide minimum commitment lead.
	NominationLeadDays int
	// OptionLeadDays is the minimum lead for exercising the cancellation
	// option. Cancellation is always available as the residual choice, so
	// a breach is flagged, never rejected.
	OptionLeadDays int
	// Mode selects strict rejection or advisory flagging of breaches.
	Mode Mode
	// VolatileIndex is the reference index the high-exposure policy keys
	// on; the caller derives it from the volatility calibration.
	VolatileIndex market.Commodity
}

// candidate is one (destination, counterparty) pair under consideration.
type candidate struct {
	dest cargo.Destination
	cp   cargo.Counterparty
}

// Build assembles the strategy for one policy over the given cargoes, one
// per delivery period in order. Cancellation competes as a first-class
// choice in every period: the result never selects a lifting whose expected
// P&L is below the take-or-pay payoff.
func (o *Optimizer) Build(policy Policy, cargoes []cargo.Cargo) (*Strategy, error) {
	decisions := make([]Decision, 0, len(cargoes))

	for _, c := range cargoes {
		sc, err := o.Curve.Scenario(c.Period.Index)
		if err != nil {
			return nil, err
		}

		cands, err := o.candidates(policy)
		if err != nil {
			return nil, err
		}

		d, err := o.selectPeriod(c, cands, sc)
		if err != nil {
			return nil, err
		}
		decisions = append(decisions, d)
	}

	return newStrategy(policy.String(), policy, decisions), nil
}

// candidates resolves the policy's (destination, counterparty) search set
// in stable order.
func (o *Optimizer) candidates(policy Policy) ([]candidate, error) {
	switch policy {
	case Conservative:
		dest, err := o.Book.LowestRiskDestination()
		if err != nil {
			return nil, err
		}
		cp, err := o.Book.BestRatedCounterparty(dest)
		if err != nil {
			return nil, err
		}
		return []candidate{{dest: dest, cp: cp}}, nil

	case HighExposure:
		var out []candidate
		for _, dest := range o.Book.DestinationsByIndex(o.VolatileIndex) {
			for _, name := range dest.Eligible {
				cp, err := o.Book.Counterparty(name)
				if err != nil {
					return nil, err
				}
				out = append(out, candidate{dest: dest, cp: cp})
			}
		}
		return out, nil

	default: // Optimal
		var out []candidate
		for _, dest := range o.Book.Destinations() {
			for _, name := range dest.Eligible {
				cp, err := o.Book.Counterparty(name)
				if err != nil {
					return nil, err
				}
				out = append(out, candidate{dest: dest, cp: cp})
			}
		}
		return out, nil
	}
}

// selectPeriod evaluates every candidate for one cargo and picks the best
// feasible lifting, falling back to cancellation when nothing beats the
// take-or-pay payoff.
//
// Tie-breaking is deterministic: higher expected P&L first, then lower
// default probability, then candidate order (which follows the stable
// destination enumeration).
func (o *Optimizer) selectPeriod(c cargo.Cargo, cands []candidate, sc market.Scenario) (Decision, error) {
	payoff := c.CancelPayoff()

	var best *Decision

	for _, cand := range cands {
		violations := checkConstraints(c.Period, cand.cp, o.DecisionDate, o.NominationLeadDays)
		if len(violations) > 0 && o.Mode == Strict {
			continue
		}

		ev, err := o.Model.Evaluate(c, cand.dest.Kind, cand.cp.Name, sc)
		if err != nil {
			return Decision{}, err
		}

		d := Decision{
			Period:       c.Period,
			Destination:  cand.dest.Kind,
			Counterparty: cand.cp.Name,
			Volume:       ev.Best.PurchaseVolume,
			ExpectedPL:   ev.Best.ExpectedPL,
			CancelPayoff: payoff,
			Breakdown:    ev.Best,
			Violations:   violations,
		}

		if best == nil || better(d, *best, o.Book) {
			tmp := d
			best = &tmp
		}
	}

	// Cancellation wins when no candidate survives or none beats the floor.
	if best == nil || best.ExpectedPL < payoff {
		d := Decision{
			Period:       c.Period,
			Cancel:       true,
			ExpectedPL:   payoff,
			CancelPayoff: payoff,
		}
		if v := checkOptionDeadline(c.Period, o.DecisionDate, o.OptionLeadDays); v != nil {
			d.Violations = append(d.Violations, *v)
		}
		return d, nil
	}

	return *best, nil
}

// better reports whether a should displace b as the running selection.
func better(a, b Decision, book *cargo.Book) bool {
	if a.ExpectedPL > b.ExpectedPL+plTie {
		return true
	}
	if a.ExpectedPL < b.ExpectedPL-plTie {
		return false
	}
	// Tied on P&L: prefer the lower default probability.
	pa := defaultProb(a, book)
	pb := defaultProb(b, book)
	if pa != pb {
		return pa < pb
	}
	// Still tied: keep the earlier candidate (stable destination order).
	return false
}

func defaultProb(d Decision, book *cargo.Book) float64 {
	cp, err := book.Counterparty(d.Counterparty)
	if err != nil {
		return 1
	}
	return cp.Rating.DefaultProbability()
}
