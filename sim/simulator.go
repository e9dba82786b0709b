// Package sim generates correlated stochastic price paths for the Monte
// Carlo risk analysis. Paths follow a multiplicative geometric random walk
// around the forward curve, with shocks correlated across commodities via a
// Cholesky factor of the (repaired, if necessary) correlation matrix.
package sim

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/mat"

	"github.com/rustyeddy/cargorisk/market"
)

// dt is the per-period year fraction for monthly delivery slots.
const dt = 1.0 / 12.0

// Simulator holds the raw calibration inputs. Calibrate validates them and
// produces an immutable Calibrated generator.
type Simulator struct {
	Curve       *market.Curve
	Calibration market.Calibration
}

// Calibrated is a validated, ready-to-generate simulator. Degraded is set
// when the supplied correlation matrix was not positive semi-definite and
// had to be projected to the nearest valid one.
type Calibrated struct {
	curve    *market.Curve
	vols     []float64 // indexed by market.Commodities position
	chol     *mat.Cholesky
	Degraded bool
	Warnings []string
}

// Calibrate validates volatilities and the correlation matrix, repairing a
// non-PSD matrix rather than failing: calibration data from real markets
// routinely carries small numerical inconsistencies. A repair is logged and
// recorded in the result metadata, never silently absorbed.
func (s Simulator) Calibrate() (*Calibrated, error) {
	if s.Curve == nil {
		return nil, fmt.Errorf("sim: forward curve is required")
	}
	if err := s.Calibration.Validate(); err != nil {
		return nil, err
	}

	corr, repaired, err := nearestPSD(s.Calibration.Corr)
	if err != nil {
		return nil, err
	}

	c := &Calibrated{curve: s.Curve, Degraded: repaired}
	if repaired {
		w := "correlation matrix was not positive semi-definite; projected to nearest valid matrix"
		c.Warnings = append(c.Warnings, w)
		log.Warn().Msg("sim: " + w)
	}

	n := len(market.Commodities)
	c.vols = make([]float64, n)
	for i, cm := range market.Commodities {
		c.vols[i] = s.Calibration.Vols[cm]
	}

	sym := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			sym.SetSym(i, j, corr[i][j])
		}
	}
	var chol mat.Cholesky
	if !chol.Factorize(sym) {
		return nil, fmt.Errorf("sim: Cholesky factorization failed after PSD repair")
	}
	c.chol = &chol

	return c, nil
}

// Generate draws nPaths independent price trajectories over every period
// the forward curve covers. The seed is explicit: identical seed and
// calibration reproduce bit-identical paths.
//
// Each path draws from its own deterministically derived sub-stream, so
// paths can be generated in independent chunks without changing the output.
func (c *Calibrated) Generate(seed int64, nPaths int) (*PathSet, error) {
	if nPaths <= 0 {
		return nil, fmt.Errorf("sim: path count %d must be positive", nPaths)
	}

	nCom := len(market.Commodities)
	periods := c.curve.Periods()

	var lower mat.TriDense
	c.chol.LTo(&lower)

	forwards := make([][]float64, periods)
	for t := 0; t < periods; t++ {
		row := make([]float64, nCom)
		for i, cm := range market.Commodities {
			v, err := c.curve.Price(cm, t)
			if err != nil {
				return nil, err
			}
			row[i] = v
		}
		forwards[t] = row
	}

	ps := &PathSet{
		nPaths:   nPaths,
		periods:  periods,
		Seed:     seed,
		Degraded: c.Degraded,
		Warnings: append([]string(nil), c.Warnings...),
		prices:   make([][][]float64, nPaths),
	}

	for p := 0; p < nPaths; p++ {
		ps.prices[p] = c.generatePath(pathSeed(seed, p), &lower, forwards)
	}

	return ps, nil
}

// generatePath evolves one trajectory: the price ratio between consecutive
// forward points supplies the drift, and a correlated lognormal shock with
// the calibrated volatility supplies the noise. The -sigma^2/2 term keeps
// each period's expectation on the forward.
func (c *Calibrated) generatePath(seed int64, lower *mat.TriDense, forwards [][]float64) [][]float64 {
	nCom := len(market.Commodities)
	periods := len(forwards)
	rng := rand.New(rand.NewSource(seed))

	path := make([][]float64, periods)
	raw := make([]float64, nCom)
	shock := make([]float64, nCom)

	prev := forwards[0]
	for t := 0; t < periods; t++ {
		for i := range raw {
			raw[i] = rng.NormFloat64()
		}
		// Correlate: shock = L * raw.
		for i := 0; i < nCom; i++ {
			sum := 0.0
			for j := 0; j <= i; j++ {
				sum += lower.At(i, j) * raw[j]
			}
			shock[i] = sum
		}

		row := make([]float64, nCom)
		for i := 0; i < nCom; i++ {
			drift := 1.0
			if t > 0 {
				drift = forwards[t][i] / forwards[t-1][i]
			}
			sigma := c.vols[i]
			row[i] = prev[i] * drift * math.Exp(sigma*math.Sqrt(dt)*shock[i]-0.5*sigma*sigma*dt)
		}
		path[t] = row
		prev = row
	}
	return path
}

// pathSeed derives a per-path sub-stream seed from the master seed using a
// splitmix64 step, keeping paths independent of generation order.
func pathSeed(seed int64, path int) int64 {
	z := uint64(seed) + uint64(path+1)*0x9E3779B97F4A7C15
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return int64(z ^ (z >> 31))
}
