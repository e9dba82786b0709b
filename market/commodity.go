package market

import "fmt"

// Commodity identifies one of the reference prices the pricing formulas
// consume. The set is closed: adding a commodity means touching the
// exhaustive switches that price against it, which is deliberate.
type Commodity int

const (
	HenryHub Commodity = iota // purchase index, $/MMBtu
	Brent                     // oil-linked sale formulas, $/bbl
	JKM                       // Asian spot LNG marker, $/MMBtu
	TTF                       // European hub price, $/MMBtu
	Freight                   // spot charter rate index, $/day scaled
)

// Commodities lists every member in stable order. Index positions match the
// columns of simulated path arrays and correlation matrices.
var Commodities = []Commodity{HenryHub, Brent, JKM, TTF, Freight}

func (c Commodity) String() string {
	switch c {
	case HenryHub:
		return "HenryHub"
	case Brent:
		return "Brent"
	case JKM:
		return "JKM"
	case TTF:
		return "TTF"
	case Freight:
		return "Freight"
	}
	return fmt.Sprintf("Commodity(%d)", int(c))
}

// ParseCommodity maps a config-file name to a Commodity.
func ParseCommodity(s string) (Commodity, error) {
	for _, c := range Commodities {
		if c.String() == s {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown commodity %q", s)
}
