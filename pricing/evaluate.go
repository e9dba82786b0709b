package pricing

import (
	"sort"

	"github.com/rustyeddy/cargorisk/cargo"
	"github.com/rustyeddy/cargorisk/market"
)

// capTolerance absorbs floating-point rounding when comparing arrival
// volume against the sales cap.
const capTolerance = 1e-6

// Evaluation is the result of the embedded volume search: the best purchase
// volume within the tolerance band and its full breakdown, alongside the
// cancellation payoff the caller compares it against.
type Evaluation struct {
	Best       Breakdown
	Candidates int // volumes actually priced during the search
}

// Evaluate searches purchase volume within the cargo's tolerance band to
// maximize expected P&L for one (destination, counterparty) pair.
//
// The search is a small discrete set: the band boundaries plus the volume
// whose arrival lands exactly on the sales cap (when that volume is inside
// the band). Candidates whose arrival stays within the cap are preferred;
// over-cap liftings, with the excess priced as stranded cost, are only
// considered when no in-cap volume exists.
func (m *Model) Evaluate(c cargo.Cargo, kind cargo.DestinationKind, cpName string, sc market.Scenario) (Evaluation, error) {
	if err := c.Validate(); err != nil {
		return Evaluation{}, err
	}
	dest, err := m.book.Destination(kind)
	if err != nil {
		return Evaluation{}, err
	}

	vols := candidateVolumes(c, dest.VoyageDays)

	type scored struct {
		b     Breakdown
		inCap bool
	}
	results := make([]scored, 0, len(vols))
	anyInCap := false
	for _, v := range vols {
		b, err := m.Breakdown(c, kind, cpName, v, sc)
		if err != nil {
			return Evaluation{}, err
		}
		inCap := b.ArrivalVolume <= c.SalesCap*(1+capTolerance)
		if inCap {
			anyInCap = true
		}
		results = append(results, scored{b: b, inCap: inCap})
	}

	var best *scored
	for i := range results {
		r := &results[i]
		if anyInCap && !r.inCap {
			continue
		}
		if best == nil || r.b.ExpectedPL > best.b.ExpectedPL {
			best = r
		}
	}

	return Evaluation{Best: best.b, Candidates: len(results)}, nil
}

// candidateVolumes returns the discrete purchase volumes to price, in
// ascending order with duplicates removed: both tolerance boundaries and
// the cap-exact volume when boil-off leaves it inside the band.
func candidateVolumes(c cargo.Cargo, voyageDays int) []float64 {
	vMin := c.BaseVolume * c.TolMin
	vMax := c.BaseVolume * c.TolMax

	vols := []float64{vMin, vMax}

	// Volume whose arrival hits the sales cap exactly.
	loss := c.BoilOffPerDay * float64(voyageDays)
	if loss < 1 {
		vCap := c.SalesCap / (1 - loss)
		if vCap > vMin && vCap < vMax {
			vols = append(vols, vCap)
		}
	}

	sort.Float64s(vols)
	out := vols[:1]
	for _, v := range vols[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}
