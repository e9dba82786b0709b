package market

import "fmt"

// PriceError reports a reference price the curve cannot supply. Formulas
// must fail fast on it rather than defaulting to zero.
type PriceError struct {
	Commodity Commodity
	Period    int
}

func (e *PriceError) Error() string {
	return fmt.Sprintf("market: no %s price for period %d", e.Commodity, e.Period)
}

// Curve holds point forecasts per commodity over an ordered set of periods.
// The curve may extend beyond the delivery horizon so that next-period
// formula lookups resolve for the final delivery month.
//
// A Curve is immutable once built; the engine shares it read-only.
type Curve struct {
	prices map[Commodity][]float64
	n      int
}

// NewCurve builds a curve from per-commodity forecast series. Every series
// must have the same length and cover all commodities in Commodities.
func NewCurve(series map[Commodity][]float64) (*Curve, error) {
	n := -1
	for _, c := range Commodities {
		s, ok := series[c]
		if !ok {
			return nil, fmt.Errorf("market: curve missing series for %s", c)
		}
		if n == -1 {
			n = len(s)
		} else if len(s) != n {
			return nil, fmt.Errorf("market: %s series has %d periods, want %d", c, len(s), n)
		}
		for i, v := range s {
			if v <= 0 {
				return nil, fmt.Errorf("market: %s forecast for period %d is %v, must be positive", c, i, v)
			}
		}
	}
	if n <= 0 {
		return nil, fmt.Errorf("market: empty curve")
	}
	cp := make(map[Commodity][]float64, len(series))
	for c, s := range series {
		cp[c] = append([]float64(nil), s...)
	}
	return &Curve{prices: cp, n: n}, nil
}

// Periods returns the number of periods the curve covers.
func (c *Curve) Periods() int { return c.n }

// Price returns the forecast for commodity at period index.
func (c *Curve) Price(cm Commodity, period int) (float64, error) {
	s, ok := c.prices[cm]
	if !ok || period < 0 || period >= len(s) {
		return 0, &PriceError{Commodity: cm, Period: period}
	}
	return s[period], nil
}

// Scenario materializes the deterministic price row for one period,
// including the one-period-ahead values needed by forward-looking formulas.
func (c *Curve) Scenario(period int) (Scenario, error) {
	sc := Scenario{Period: period, Current: map[Commodity]float64{}, Next: map[Commodity]float64{}}
	for _, cm := range Commodities {
		v, err := c.Price(cm, period)
		if err != nil {
			return Scenario{}, err
		}
		sc.Current[cm] = v
	}
	// Next-period prices are optional at the tail; formulas that need them
	// will surface a PriceError through Scenario.NextPrice.
	if period+1 < c.n {
		for _, cm := range Commodities {
			v, err := c.Price(cm, period+1)
			if err != nil {
				return Scenario{}, err
			}
			sc.Next[cm] = v
		}
	}
	return sc, nil
}
