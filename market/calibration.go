package market

import "fmt"

// Calibration carries the stochastic inputs the path simulator needs:
// an annualized volatility per commodity and a correlation matrix whose
// rows/columns follow the Commodities ordering.
//
// The correlation matrix is accepted as supplied by the forecasting
// collaborator; positive-semi-definiteness is validated (and repaired if
// needed) by the simulator, not here.
type Calibration struct {
	Vols map[Commodity]float64
	Corr [][]float64
}

// Validate checks shape and the structural correlation properties that are
// never repairable: symmetry and a unit diagonal.
func (c Calibration) Validate() error {
	n := len(Commodities)
	for _, cm := range Commodities {
		v, ok := c.Vols[cm]
		if !ok {
			return fmt.Errorf("market: calibration missing volatility for %s", cm)
		}
		if v < 0 {
			return fmt.Errorf("market: negative volatility %v for %s", v, cm)
		}
	}
	if len(c.Corr) != n {
		return fmt.Errorf("market: correlation matrix has %d rows, want %d", len(c.Corr), n)
	}
	for i := range c.Corr {
		if len(c.Corr[i]) != n {
			return fmt.Errorf("market: correlation row %d has %d columns, want %d", i, len(c.Corr[i]), n)
		}
	}
	const tol = 1e-9
	for i := 0; i < n; i++ {
		if d := c.Corr[i][i]; d < 1-tol || d > 1+tol {
			return fmt.Errorf("market: correlation diagonal [%d][%d] is %v, want 1", i, i, d)
		}
		for j := i + 1; j < n; j++ {
			if diff := c.Corr[i][j] - c.Corr[j][i]; diff > tol || diff < -tol {
				return fmt.Errorf("market: correlation matrix not symmetric at [%d][%d]", i, j)
			}
		}
	}
	return nil
}
