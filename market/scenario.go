package market

// Scenario is one realization of the reference prices for a single delivery
// period: either a row of the deterministic forward curve or one row of a
// simulated path matrix. Pricing formulas consume Scenarios only, so the
// deterministic optimizer and the per-path risk loop can never diverge.
type Scenario struct {
	Period  int
	Current map[Commodity]float64
	Next    map[Commodity]float64 // one-period-ahead values; may be empty at the horizon tail
}

// Price returns the current-period value for cm.
func (s Scenario) Price(cm Commodity) (float64, error) {
	v, ok := s.Current[cm]
	if !ok {
		return 0, &PriceError{Commodity: cm, Period: s.Period}
	}
	return v, nil
}

// NextPrice returns the one-period-ahead value for cm, used by destinations
// whose sale formula references the next delivery month's index.
func (s Scenario) NextPrice(cm Commodity) (float64, error) {
	v, ok := s.Next[cm]
	if !ok {
		return 0, &PriceError{Commodity: cm, Period: s.Period + 1}
	}
	return v, nil
}
