// Package strategy enumerates feasible lifting choices per delivery period
// and assembles them into named, immutable strategies.
package strategy

import (
	"fmt"
	"strings"

	"github.com/rustyeddy/cargorisk/cargo"
	"github.com/rustyeddy/cargorisk/market"
	"github.com/rustyeddy/cargorisk/pricing"
)

// Policy selects the candidate set the optimizer searches.
type Policy int

const (
	// Optimal searches every eligible destination/counterparty pair.
	Optimal Policy = iota
	// Conservative restricts to the lowest-risk destination and its
	// highest-rated counterparty.
	Conservative
	// HighExposure restricts to destinations priced off the most volatile
	// reference index.
	HighExposure
)

func (p Policy) String() string {
	switch p {
	case Optimal:
		return "optimal"
	case Conservative:
		return "conservative"
	case HighExposure:
		return "high-exposure"
	}
	return fmt.Sprintf("Policy(%d)", int(p))
}

// ParsePolicy maps a CLI/config name to a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "optimal":
		return Optimal, nil
	case "conservative":
		return Conservative, nil
	case "high-exposure", "highexposure":
		return HighExposure, nil
	}
	return 0, fmt.Errorf("unknown policy %q (supported: optimal, conservative, high-exposure)", s)
}

// Violation flags a nomination or booking-window breach on a decision.
type Violation struct {
	Code string
	Msg  string
}

// Decision is one period's committed choice: either a lifting with its
// evaluated breakdown, or cancellation. Violations is non-empty only in
// advisory mode.
type Decision struct {
	Period market.Period
	Cancel bool

	Destination  cargo.DestinationKind
	Counterparty string
	Volume       float64

	ExpectedPL   float64 // equals CancelPayoff when Cancel is set
	CancelPayoff float64

	Breakdown  pricing.Breakdown // zero value when Cancel is set
	Violations []Violation
}

// Strategy is an ordered set of per-period decisions plus the aggregate
// expected P&L. It is frozen after construction: accessors copy, and the
// risk aggregator shares instances read-only across the simulation loop.
type Strategy struct {
	name      string
	policy    Policy
	decisions []Decision
	totalPL   float64
}

func newStrategy(name string, policy Policy, decisions []Decision) *Strategy {
	total := 0.0
	for _, d := range decisions {
		total += d.ExpectedPL
	}
	return &Strategy{
		name:      name,
		policy:    policy,
		decisions: decisions,
		totalPL:   total,
	}
}

// Name returns the strategy's display name.
func (s *Strategy) Name() string { return s.name }

// Policy returns the policy the strategy was built under.
func (s *Strategy) Policy() Policy { return s.policy }

// ExpectedPL returns the aggregate expected P&L across all periods.
func (s *Strategy) ExpectedPL() float64 { return s.totalPL }

// Decisions returns a copy of the per-period decisions in period order.
func (s *Strategy) Decisions() []Decision {
	out := make([]Decision, len(s.decisions))
	copy(out, s.decisions)
	return out
}

// Decision returns the decision at position i in period order.
func (s *Strategy) Decision(i int) Decision { return s.decisions[i] }

// Len returns the number of delivery periods covered.
func (s *Strategy) Len() int { return len(s.decisions) }
