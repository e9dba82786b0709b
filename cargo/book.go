package cargo

import (
	"github.com/rustyeddy/cargorisk/market"
)

// Terms carries the portfolio-wide economic parameters shared by every
// cargo evaluation.
type Terms struct {
	AnnualRate         float64 // working-capital / payment-delay carry rate
	InsurancePerVoyage float64 // fixed $ per voyage
	BrokeragePct       float64 // fraction of base freight
	CarbonPerVoyageDay float64 // $ per voyage day
	DemurrageExpected  float64 // expected $ per voyage
	LCFeePct           float64 // letter-of-credit fee, fraction of gross revenue
	LCFeeMin           float64 // $ floor on the LC fee
	StoragePerUnit     float64 // $/unit carrying cost when a cargo is not placed
}

// Book is the immutable configuration table set injected into the pricing
// and optimization components at construction time. Nothing reads these
// tables from ambient global state.
type Book struct {
	destinations   map[DestinationKind]Destination
	counterparties map[string]Counterparty
	demand         map[DestinationKind]Demand
	terms          Terms
}

// NewBook assembles and cross-checks the configuration tables. Every
// destination's eligible counterparties must exist in the counterparty
// table.
func NewBook(dests []Destination, cps []Counterparty, demand map[DestinationKind]Demand, terms Terms) (*Book, error) {
	b := &Book{
		destinations:   make(map[DestinationKind]Destination, len(dests)),
		counterparties: make(map[string]Counterparty, len(cps)),
		demand:         make(map[DestinationKind]Demand, len(demand)),
		terms:          terms,
	}
	for _, cp := range cps {
		if cp.Name == "" {
			return nil, validationf("counterparty", "", "", "empty name")
		}
		if _, dup := b.counterparties[cp.Name]; dup {
			return nil, validationf("counterparty", cp.Name, "", "duplicate entry")
		}
		b.counterparties[cp.Name] = cp
	}
	for _, d := range dests {
		if _, dup := b.destinations[d.Kind]; dup {
			return nil, validationf("destination", d.Kind.String(), "", "duplicate entry")
		}
		if d.VoyageDays <= 0 {
			return nil, validationf("destination", d.Kind.String(), "", "voyage days %d must be positive", d.VoyageDays)
		}
		if len(d.Eligible) == 0 {
			return nil, validationf("destination", d.Kind.String(), "", "no eligible counterparties")
		}
		for _, name := range d.Eligible {
			if _, ok := b.counterparties[name]; !ok {
				return nil, validationf("destination", d.Kind.String(), "", "eligible counterparty %q not in table", name)
			}
		}
		b.destinations[d.Kind] = d
	}
	for kind, dm := range demand {
		if _, ok := b.destinations[kind]; !ok {
			return nil, validationf("destination", kind.String(), "", "demand entry for unknown destination")
		}
		b.demand[kind] = dm
	}
	return b, nil
}

// Terms returns the shared economic parameters.
func (b *Book) Terms() Terms { return b.terms }

// Destination resolves a market or fails with a ValidationError.
func (b *Book) Destination(kind DestinationKind) (Destination, error) {
	d, ok := b.destinations[kind]
	if !ok {
		return Destination{}, validationf("destination", kind.String(), "", "not configured")
	}
	return d, nil
}

// Counterparty resolves a buyer or fails with a ValidationError.
func (b *Book) Counterparty(name string) (Counterparty, error) {
	cp, ok := b.counterparties[name]
	if !ok {
		return Counterparty{}, validationf("counterparty", name, "", "not configured")
	}
	return cp, nil
}

// Demand returns the demand profile for a market. A market with no entry
// is treated as fully open.
func (b *Book) Demand(kind DestinationKind) Demand {
	if d, ok := b.demand[kind]; ok {
		return d
	}
	return Demand{Base: 1}
}

// Destinations returns the configured markets in the stable enumeration
// order, which doubles as the deterministic tie-break ordering.
func (b *Book) Destinations() []Destination {
	out := make([]Destination, 0, len(b.destinations))
	for _, k := range DestinationKinds {
		if d, ok := b.destinations[k]; ok {
			out = append(out, d)
		}
	}
	return out
}

// DestinationsByIndex returns the configured markets whose sale formula
// references cm, in stable order.
func (b *Book) DestinationsByIndex(cm market.Commodity) []Destination {
	var out []Destination
	for _, d := range b.Destinations() {
		if d.Kind.SaleIndex() == cm {
			out = append(out, d)
		}
	}
	return out
}

// LowestRiskDestination returns the configured market with the best (lowest)
// risk tier, ties broken by enumeration order.
func (b *Book) LowestRiskDestination() (Destination, error) {
	dests := b.Destinations()
	if len(dests) == 0 {
		return Destination{}, validationf("destination", "", "", "book has no destinations")
	}
	best := dests[0]
	for _, d := range dests[1:] {
		if d.RiskTier < best.RiskTier {
			best = d
		}
	}
	return best, nil
}

// BestRatedCounterparty returns the eligible buyer with the strongest
// rating, ties broken by eligibility-list order.
func (b *Book) BestRatedCounterparty(d Destination) (Counterparty, error) {
	var best Counterparty
	found := false
	for _, name := range d.Eligible {
		cp, err := b.Counterparty(name)
		if err != nil {
			return Counterparty{}, err
		}
		if !found || cp.Rating < best.Rating {
			best = cp
			found = true
		}
	}
	if !found {
		return Counterparty{}, validationf("destination", d.Kind.String(), "", "no eligible counterparties")
	}
	return best, nil
}
