package sim

import (
	"fmt"

	"github.com/rustyeddy/cargorisk/market"
)

// PathSet is the completed simulation output: nPaths independent price
// trajectories over every curve period, for all commodities. It is
// immutable after generation and safe to share across parallel evaluation.
type PathSet struct {
	nPaths  int
	periods int
	Seed    int64

	// Degraded and Warnings carry the calibration-quality metadata
	// forward so risk reports can surface it.
	Degraded bool
	Warnings []string

	prices [][][]float64 // [path][period][commodity]
}

// Paths returns the number of simulated trajectories.
func (ps *PathSet) Paths() int { return ps.nPaths }

// Periods returns the number of periods each trajectory covers.
func (ps *PathSet) Periods() int { return ps.periods }

// Price returns the simulated value of cm on one path and period.
func (ps *PathSet) Price(path, period int, cm market.Commodity) (float64, error) {
	if path < 0 || path >= ps.nPaths {
		return 0, fmt.Errorf("sim: path %d out of range [0,%d)", path, ps.nPaths)
	}
	if period < 0 || period >= ps.periods {
		return 0, &market.PriceError{Commodity: cm, Period: period}
	}
	return ps.prices[path][period][int(cm)], nil
}

// Scenario materializes the price row one path sees for one period, with
// next-period values taken from the same trajectory so forward-looking
// sale formulas stay consistent within a path.
func (ps *PathSet) Scenario(path, period int) (market.Scenario, error) {
	if path < 0 || path >= ps.nPaths {
		return market.Scenario{}, fmt.Errorf("sim: path %d out of range [0,%d)", path, ps.nPaths)
	}
	if period < 0 || period >= ps.periods {
		return market.Scenario{}, fmt.Errorf("sim: period %d out of range [0,%d)", period, ps.periods)
	}

	sc := market.Scenario{
		Period:  period,
		Current: make(map[market.Commodity]float64, len(market.Commodities)),
		Next:    make(map[market.Commodity]float64, len(market.Commodities)),
	}
	for _, cm := range market.Commodities {
		sc.Current[cm] = ps.prices[path][period][int(cm)]
	}
	if period+1 < ps.periods {
		for _, cm := range market.Commodities {
			sc.Next[cm] = ps.prices[path][period+1][int(cm)]
		}
	}
	return sc, nil
}
