package cargo

import (
	"fmt"
	"time"

	"github.com/rustyeddy/cargorisk/market"
)

// DestinationKind enumerates the closed set of delivery markets. Formula
// selection switches exhaustively on it, so adding a market is a
// compile-time-checked extension rather than a string lookup.
type DestinationKind int

const (
	Japan DestinationKind = iota
	China
	Korea
	India
	Rotterdam
)

// DestinationKinds lists every market in the stable order used for
// deterministic tie-breaking.
var DestinationKinds = []DestinationKind{Japan, China, Korea, India, Rotterdam}

func (k DestinationKind) String() string {
	switch k {
	case Japan:
		return "Japan"
	case China:
		return "China"
	case Korea:
		return "Korea"
	case India:
		return "India"
	case Rotterdam:
		return "Rotterdam"
	}
	return fmt.Sprintf("DestinationKind(%d)", int(k))
}

// ParseDestinationKind maps a config-file name to a kind.
func ParseDestinationKind(s string) (DestinationKind, error) {
	for _, k := range DestinationKinds {
		if k.String() == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown destination %q", s)
}

// SaleIndex returns the reference commodity each market prices against.
func (k DestinationKind) SaleIndex() market.Commodity {
	switch k {
	case Japan, India:
		return market.Brent
	case China, Korea:
		return market.JKM
	case Rotterdam:
		return market.TTF
	}
	panic("cargo: unhandled destination kind " + k.String())
}

// UsesNextPeriodIndex reports whether the market's sale formula references
// the next delivery month's index value instead of the current one.
// Japanese oil-linked and Chinese term contracts settle against M+1.
func (k DestinationKind) UsesNextPeriodIndex() bool {
	switch k {
	case Japan, China:
		return true
	case Korea, India, Rotterdam:
		return false
	}
	panic("cargo: unhandled destination kind " + k.String())
}

// Destination carries the per-market formula parameters and constraints.
// Instances are built once from config and shared read-only.
type Destination struct {
	Kind        DestinationKind
	Multiplier  float64 // slope applied to the sale index
	TerminalFee float64 // $/unit regas/terminal adder
	BerthingFee float64 // $/unit port adder
	VoyageDays  int
	RiskTier    int // 1 = safest; the conservative policy picks the minimum

	// Special levy applied per unit when delivery falls in one of the
	// listed calendar months (e.g. winter port congestion charges).
	LevyPerUnit float64
	LevyMonths  []time.Month

	// Eligible counterparty names for this market.
	Eligible []string
}

// LevyApplies reports whether the seasonal levy is charged for a delivery
// in month m.
func (d Destination) LevyApplies(m time.Month) bool {
	for _, lm := range d.LevyMonths {
		if lm == m {
			return true
		}
	}
	return false
}
