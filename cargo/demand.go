package cargo

import "time"

// Demand models how much open buying interest a market has in a given
// calendar month, as a fraction in [0, 1]. Seasonal overrides take
// precedence over the base fraction.
type Demand struct {
	Base     float64
	Seasonal map[time.Month]float64
}

// Fraction returns the open-demand fraction for month m.
func (d Demand) Fraction(m time.Month) float64 {
	if v, ok := d.Seasonal[m]; ok {
		return v
	}
	return d.Base
}

// PlacementProbability blends market demand with the buyer's market access:
// the rating multiplier rewards highly rated counterparties, capped at 1.
//
// This adopts the probabilistic (expected-value blending) interpretation of
// demand; see DESIGN.md for the hard-capacity alternative.
func PlacementProbability(d Demand, m time.Month, rating CreditRating) float64 {
	p := d.Fraction(m) * rating.DemandMultiplier()
	if p > 1 {
		p = 1
	}
	if p < 0 {
		p = 0
	}
	return p
}
