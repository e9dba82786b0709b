// Package pricing implements the per-cargo P&L model: purchase cost,
// destination sale formulas, freight and ancillary charges, boil-off,
// credit and demand adjustments, and the cancellation payoff.
//
// Both the deterministic optimizer and the per-path risk aggregator price
// through this package, so the two can never numerically diverge.
package pricing

import (
	"fmt"

	"github.com/rustyeddy/cargorisk/cargo"
	"github.com/rustyeddy/cargorisk/market"
)

// FreightDetail itemizes the voyage cost stack.
type FreightDetail struct {
	Base       float64 // charter rate x voyage days, scaled by lifted volume
	Insurance  float64
	Brokerage  float64 // fraction of Base
	Carbon     float64 // levy per voyage day
	Demurrage  float64
	LCFee      float64 // floored at the configured minimum
	Levy       float64 // destination/seasonal special levy
	Carry      float64 // working-capital cost over the voyage
	DelayCarry float64 // deferred-settlement carry
}

// Total sums the freight stack.
func (f FreightDetail) Total() float64 {
	return f.Base + f.Insurance + f.Brokerage + f.Carbon + f.Demurrage +
		f.LCFee + f.Levy + f.Carry + f.DelayCarry
}

// Breakdown is the full cost/revenue decomposition of one
// (cargo, destination, counterparty, volume, scenario) evaluation.
// It is transient: recomputed on demand, never persisted as mutable state.
type Breakdown struct {
	Period       string
	Destination  cargo.DestinationKind
	Counterparty string

	PurchaseVolume float64
	ArrivalVolume  float64
	SoldVolume     float64
	StrandedVolume float64

	UnitSalePrice float64
	UnitCost      float64 // purchase index + fixed add-on

	GrossRevenue float64
	PurchaseCost float64
	Freight      FreightDetail
	CreditLoss   float64
	StrandedCost float64

	LiftPL        float64 // P&L if the cargo places
	PlacementProb float64
	ExpectedPL    float64 // demand-blended expectation

	CancelPayoff float64 // take-or-pay floor this evaluation competes against
}

// Model prices cargoes against an immutable configuration book. It holds no
// mutable state and is safe for concurrent use.
type Model struct {
	book *cargo.Book
}

// NewModel builds a pricing model over the given book.
func NewModel(book *cargo.Book) *Model {
	return &Model{book: book}
}

// Breakdown prices one cargo lifting at an explicit purchase volume under
// one price scenario. Unknown identifiers, non-positive volumes, and missing
// reference prices fail fast; nothing defaults to zero.
func (m *Model) Breakdown(c cargo.Cargo, kind cargo.DestinationKind, cpName string, purchaseVolume float64, sc market.Scenario) (Breakdown, error) {
	if err := c.Validate(); err != nil {
		return Breakdown{}, err
	}
	if purchaseVolume <= 0 {
		return Breakdown{}, &cargo.ValidationError{
			Entity: "volume", Period: c.Period.Label(),
			Reason: fmt.Sprintf("purchase volume %v must be positive", purchaseVolume),
		}
	}
	dest, err := m.book.Destination(kind)
	if err != nil {
		return Breakdown{}, err
	}
	cp, err := m.book.Counterparty(cpName)
	if err != nil {
		return Breakdown{}, err
	}

	purchaseIdx, err := sc.Price(market.HenryHub)
	if err != nil {
		return Breakdown{}, err
	}
	freightRate, err := sc.Price(market.Freight)
	if err != nil {
		return Breakdown{}, err
	}
	saleIdx, err := saleIndexPrice(dest, sc)
	if err != nil {
		return Breakdown{}, err
	}

	terms := m.book.Terms()

	b := Breakdown{
		Period:         c.Period.Label(),
		Destination:    kind,
		Counterparty:   cp.Name,
		PurchaseVolume: purchaseVolume,
		CancelPayoff:   c.CancelPayoff(),
	}

	b.UnitCost = purchaseIdx + c.AddOnPerUnit
	b.PurchaseCost = b.UnitCost * purchaseVolume

	b.ArrivalVolume = c.ArrivalVolume(purchaseVolume, dest.VoyageDays)
	b.SoldVolume = b.ArrivalVolume
	if b.SoldVolume > c.SalesCap {
		b.SoldVolume = c.SalesCap
		b.StrandedVolume = b.ArrivalVolume - c.SalesCap
	}

	b.UnitSalePrice = saleIdx*dest.Multiplier + cp.Premium + dest.TerminalFee + dest.BerthingFee
	b.GrossRevenue = b.UnitSalePrice * b.SoldVolume

	days := float64(dest.VoyageDays)
	b.Freight.Base = freightRate * days * (purchaseVolume / c.BaseVolume)
	b.Freight.Insurance = terms.InsurancePerVoyage
	b.Freight.Brokerage = terms.BrokeragePct * b.Freight.Base
	b.Freight.Carbon = terms.CarbonPerVoyageDay * days
	b.Freight.Demurrage = terms.DemurrageExpected
	b.Freight.LCFee = terms.LCFeePct * b.GrossRevenue
	if b.Freight.LCFee < terms.LCFeeMin {
		b.Freight.LCFee = terms.LCFeeMin
	}
	if dest.LevyApplies(c.Period.Month()) {
		b.Freight.Levy = dest.LevyPerUnit * b.SoldVolume
	}
	b.Freight.Carry = b.PurchaseCost * terms.AnnualRate * days / 365
	if cp.PaymentDelayDays > 0 {
		b.Freight.DelayCarry = b.GrossRevenue * terms.AnnualRate * float64(cp.PaymentDelayDays) / 365
	}

	// Expected credit loss on the receivable.
	b.CreditLoss = b.GrossRevenue * (1 - cp.Rating.Recovery()) * cp.Rating.DefaultProbability()

	// Volume stranded above the sales cap is sunk at purchase-cost
	// equivalence; it is tracked explicitly, never silently dropped.
	b.StrandedCost = b.StrandedVolume * b.UnitCost

	b.LiftPL = b.GrossRevenue - b.PurchaseCost - b.Freight.Total() - b.CreditLoss - b.StrandedCost

	// Demand blending: with probability p the cargo places and earns the
	// lift P&L; otherwise it sits in storage at a carrying cost.
	p := cargo.PlacementProbability(m.book.Demand(kind), c.Period.Month(), cp.Rating)
	b.PlacementProb = p
	storage := -terms.StoragePerUnit * b.ArrivalVolume
	b.ExpectedPL = b.LiftPL*p + storage*(1-p)

	return b, nil
}

// saleIndexPrice resolves the destination's reference index under the
// scenario, honoring one-period-ahead settlement where the market uses it.
func saleIndexPrice(d cargo.Destination, sc market.Scenario) (float64, error) {
	idx := d.Kind.SaleIndex()
	if d.Kind.UsesNextPeriodIndex() {
		return sc.NextPrice(idx)
	}
	return sc.Price(idx)
}
