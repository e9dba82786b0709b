package config

import (
	"fmt"
	"time"

	"github.com/rustyeddy/cargorisk/cargo"
	"github.com/rustyeddy/cargorisk/market"
)

// BuildBook converts the config tables into the immutable domain book.
func (c *Config) BuildBook() (*cargo.Book, error) {
	cps := make([]cargo.Counterparty, 0, len(c.Counterparties))
	for _, cc := range c.Counterparties {
		rating, err := cargo.ParseCreditRating(cc.Rating)
		if err != nil {
			return nil, fmt.Errorf("counterparty %s: %w", cc.Name, err)
		}
		cp := cargo.Counterparty{
			Name:             cc.Name,
			Rating:           rating,
			Premium:          cc.Premium,
			PaymentDelayDays: cc.PaymentDelayDays,
		}
		if cc.MinLeadDays > 0 || cc.MaxLeadDays > 0 {
			cp.Window = &cargo.BookingWindow{
				MinLeadDays: cc.MinLeadDays,
				MaxLeadDays: cc.MaxLeadDays,
			}
		}
		cps = append(cps, cp)
	}

	dests := make([]cargo.Destination, 0, len(c.Destinations))
	for _, dc := range c.Destinations {
		kind, err := cargo.ParseDestinationKind(dc.Name)
		if err != nil {
			return nil, err
		}
		months := make([]time.Month, 0, len(dc.LevyMonths))
		for _, m := range dc.LevyMonths {
			months = append(months, time.Month(m))
		}
		dests = append(dests, cargo.Destination{
			Kind:        kind,
			Multiplier:  dc.Multiplier,
			TerminalFee: dc.TerminalFee,
			BerthingFee: dc.BerthingFee,
			VoyageDays:  dc.VoyageDays,
			RiskTier:    dc.RiskTier,
			LevyPerUnit: dc.LevyPerUnit,
			LevyMonths:  months,
			Eligible:    append([]string(nil), dc.Eligible...),
		})
	}

	demand := make(map[cargo.DestinationKind]cargo.Demand, len(c.Demand))
	for _, dc := range c.Demand {
		kind, err := cargo.ParseDestinationKind(dc.Destination)
		if err != nil {
			return nil, err
		}
		seasonal := make(map[time.Month]float64, len(dc.Seasonal))
		for m, v := range dc.Seasonal {
			seasonal[time.Month(m)] = v
		}
		demand[kind] = cargo.Demand{Base: dc.Base, Seasonal: seasonal}
	}

	terms := cargo.Terms{
		AnnualRate:         c.Terms.AnnualRate,
		InsurancePerVoyage: c.Terms.InsurancePerVoyage,
		BrokeragePct:       c.Terms.BrokeragePct,
		CarbonPerVoyageDay: c.Terms.CarbonPerVoyageDay,
		DemurrageExpected:  c.Terms.DemurrageExpected,
		LCFeePct:           c.Terms.LCFeePct,
		LCFeeMin:           c.Terms.LCFeeMin,
		StoragePerUnit:     c.Terms.StoragePerUnit,
	}

	return cargo.NewBook(dests, cps, demand, terms)
}

// BuildCurve converts the forecast tables into a forward curve.
func (c *Config) BuildCurve() (*market.Curve, error) {
	series := make(map[market.Commodity][]float64, len(c.Forecasts))
	for name, vals := range c.Forecasts {
		cm, err := market.ParseCommodity(name)
		if err != nil {
			return nil, err
		}
		series[cm] = vals
	}
	return market.NewCurve(series)
}

// BuildCalibration converts the volatility/correlation tables.
func (c *Config) BuildCalibration() (market.Calibration, error) {
	vols := make(map[market.Commodity]float64, len(c.Volatility))
	for name, v := range c.Volatility {
		cm, err := market.ParseCommodity(name)
		if err != nil {
			return market.Calibration{}, err
		}
		vols[cm] = v
	}
	return market.Calibration{Vols: vols, Corr: c.Correlation}, nil
}

// BuildHorizon returns the delivery periods and the decision date.
func (c *Config) BuildHorizon() ([]market.Period, time.Time, error) {
	start, err := time.Parse("2006-01", c.Horizon.Start)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("horizon.start: %w", err)
	}
	decision, err := time.Parse("2006-01-02", c.Horizon.DecisionDate)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("horizon.decision_date: %w", err)
	}
	return market.Horizon(start, c.Horizon.Months), decision, nil
}

// BuildCargoes instantiates one cargo per delivery period.
func (c *Config) BuildCargoes(periods []market.Period) []cargo.Cargo {
	out := make([]cargo.Cargo, len(periods))
	for i, p := range periods {
		out[i] = cargo.Cargo{
			Period:           p,
			BaseVolume:       c.Cargo.BaseVolume,
			TolMin:           c.Cargo.TolMin,
			TolMax:           c.Cargo.TolMax,
			SalesCap:         c.Cargo.SalesCap,
			AddOnPerUnit:     c.Cargo.AddOnPerUnit,
			TakeOrPayPerUnit: c.Cargo.TakeOrPayPerUnit,
			BoilOffPerDay:    c.Cargo.BoilOffPerDay,
		}
	}
	return out
}
