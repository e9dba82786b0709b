package cargo

import "github.com/rustyeddy/cargorisk/market"

// Cargo is a fixed-size delivery obligation for one calendar period. It is
// instantiated per period at optimization time and never mutated; every
// volume/destination/counterparty combination produces a fresh evaluation.
type Cargo struct {
	Period market.Period

	BaseVolume float64 // contractual base, MMBtu
	TolMin     float64 // lower purchase tolerance as a fraction of base (e.g. 0.90)
	TolMax     float64 // upper purchase tolerance as a fraction of base (e.g. 1.10)
	SalesCap   float64 // independent sales-volume cap, MMBtu

	AddOnPerUnit     float64 // $/unit liquefaction/production fee on top of the purchase index
	TakeOrPayPerUnit float64 // $/unit tolling fee owed on the full base volume if the cargo is cancelled
	BoilOffPerDay    float64 // fraction of purchase volume lost per voyage day
}

// Validate rejects cargoes the pricing model cannot evaluate.
func (c Cargo) Validate() error {
	p := c.Period.Label()
	if c.BaseVolume <= 0 {
		return validationf("cargo", "", p, "base volume %v must be positive", c.BaseVolume)
	}
	if c.TolMin <= 0 || c.TolMax < c.TolMin {
		return validationf("cargo", "", p, "tolerance band [%v, %v] is malformed", c.TolMin, c.TolMax)
	}
	if c.SalesCap <= 0 {
		return validationf("cargo", "", p, "sales cap %v must be positive", c.SalesCap)
	}
	if c.BoilOffPerDay < 0 {
		return validationf("cargo", "", p, "boil-off rate %v must be non-negative", c.BoilOffPerDay)
	}
	return nil
}

// ArrivalVolume applies boil-off over the voyage: purchased volume shrinks
// linearly with days in transit.
func (c Cargo) ArrivalVolume(purchaseVolume float64, voyageDays int) float64 {
	loss := c.BoilOffPerDay * float64(voyageDays)
	if loss < 0 {
		loss = 0
	}
	if loss > 1 {
		loss = 1
	}
	return purchaseVolume * (1 - loss)
}

// CancelPayoff is the take-or-pay P&L of not lifting: always negative, owed
// on the full base volume regardless of tolerance. It is the floor every
// lifting decision is compared against.
func (c Cargo) CancelPayoff() float64 {
	return -c.TakeOrPayPerUnit * c.BaseVolume
}
