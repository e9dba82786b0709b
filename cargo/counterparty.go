package cargo

import "fmt"

// CreditRating is the closed set of agency-style buckets the credit model
// understands. Default probability and recovery are functions of the rating
// alone, so every formula referencing a counterparty sees the same numbers.
type CreditRating int

const (
	AAA CreditRating = iota
	AA
	A
	BBB
	BB
)

func (r CreditRating) String() string {
	switch r {
	case AAA:
		return "AAA"
	case AA:
		return "AA"
	case A:
		return "A"
	case BBB:
		return "BBB"
	case BB:
		return "BB"
	}
	return fmt.Sprintf("CreditRating(%d)", int(r))
}

// ParseCreditRating maps a config-file name to a rating.
func ParseCreditRating(s string) (CreditRating, error) {
	for _, r := range []CreditRating{AAA, AA, A, BBB, BB} {
		if r.String() == s {
			return r, nil
		}
	}
	return 0, fmt.Errorf("unknown credit rating %q", s)
}

// DefaultProbability is the per-cargo default probability for the rating.
func (r CreditRating) DefaultProbability() float64 {
	switch r {
	case AAA:
		return 0.0001
	case AA:
		return 0.0003
	case A:
		return 0.0008
	case BBB:
		return 0.0025
	case BB:
		return 0.0120
	}
	panic("cargo: unhandled credit rating " + r.String())
}

// Recovery is the loss-given-default recovery rate for the rating.
func (r CreditRating) Recovery() float64 {
	switch r {
	case AAA:
		return 0.95
	case AA:
		return 0.90
	case A:
		return 0.85
	case BBB:
		return 0.75
	case BB:
		return 0.55
	}
	panic("cargo: unhandled credit rating " + r.String())
}

// DemandMultiplier is the preferential market-access multiplier applied to
// the placement probability. Highly rated buyers clear cargoes more easily;
// the product is capped at 1 by the caller.
func (r CreditRating) DemandMultiplier() float64 {
	switch r {
	case AAA, AA:
		return 1.2
	case A:
		return 1.0
	case BBB:
		return 0.95
	case BB:
		return 0.85
	}
	panic("cargo: unhandled credit rating " + r.String())
}

// BookingWindow is an optional counterparty constraint: the lifting decision
// must be committed no earlier than MaxLeadDays and no later than MinLeadDays
// before the delivery period starts.
type BookingWindow struct {
	MinLeadDays int
	MaxLeadDays int
}

// Counterparty is a buyer profile. Premium is the $/unit adjustment the
// buyer pays over (or under, if negative) the destination formula price.
type Counterparty struct {
	Name             string
	Rating           CreditRating
	Premium          float64
	PaymentDelayDays int
	Window           *BookingWindow // nil when the buyer imposes none
}
