package sim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/rustyeddy/cargorisk/market"
)

func testCurve(t *testing.T, periods int) *market.Curve {
	t.Helper()

	series := make(map[market.Commodity][]float64, len(market.Commodities))
	for ci, cm := range market.Commodities {
		s := make([]float64, periods)
		for i := range s {
			s[i] = float64(5+ci*10) * (1 + 0.02*float64(i))
		}
		series[cm] = s
	}
	c, err := market.NewCurve(series)
	require.NoError(t, err)
	return c
}

func testCalibration(vol float64) market.Calibration {
	n := len(market.Commodities)
	vols := make(map[market.Commodity]float64, n)
	for _, cm := range market.Commodities {
		vols[cm] = vol
	}
	corr := make([][]float64, n)
	for i := range corr {
		corr[i] = make([]float64, n)
		corr[i][i] = 1
	}
	return market.Calibration{Vols: vols, Corr: corr}
}

func TestCalibrateRejectsBadInput(t *testing.T) {
	t.Parallel()

	_, err := Simulator{Calibration: testCalibration(0.3)}.Calibrate()
	assert.ErrorContains(t, err, "curve")

	cal := testCalibration(0.3)
	delete(cal.Vols, market.TTF)
	_, err = Simulator{Curve: testCurve(t, 4), Calibration: cal}.Calibrate()
	assert.ErrorContains(t, err, "TTF")
}

func TestCalibrateCleanMatrix(t *testing.T) {
	t.Parallel()

	c, err := Simulator{Curve: testCurve(t, 4), Calibration: testCalibration(0.3)}.Calibrate()
	require.NoError(t, err)
	assert.False(t, c.Degraded)
	assert.Empty(t, c.Warnings)
}

func TestCalibrateRepairsNonPSD(t *testing.T) {
	t.Parallel()

	cal := testCalibration(0.3)
	cal.Corr[0][1] = 1.5
	cal.Corr[1][0] = 1.5

	c, err := Simulator{Curve: testCurve(t, 4), Calibration: cal}.Calibrate()
	require.NoError(t, err)
	assert.True(t, c.Degraded)
	require.NotEmpty(t, c.Warnings)
	assert.Contains(t, c.Warnings[0], "positive semi-definite")

	// the repaired matrix still generates
	ps, err := c.Generate(7, 16)
	require.NoError(t, err)
	assert.True(t, ps.Degraded)
	assert.Equal(t, c.Warnings, ps.Warnings)
}

func TestNearestPSD(t *testing.T) {
	t.Parallel()

	corr := [][]float64{
		{1, 1.5, 0.2},
		{1.5, 1, 0.1},
		{0.2, 0.1, 1},
	}
	fixed, repaired, err := nearestPSD(corr)
	require.NoError(t, err)
	assert.True(t, repaired)

	n := len(fixed)
	sym := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		assert.InDelta(t, 1.0, fixed[i][i], 1e-9)
		for j := i; j < n; j++ {
			assert.InDelta(t, fixed[j][i], fixed[i][j], 1e-9)
			sym.SetSym(i, j, fixed[i][j])
		}
	}

	var chol mat.Cholesky
	assert.True(t, chol.Factorize(sym))

	// an already-valid matrix passes through untouched
	id := [][]float64{{1, 0}, {0, 1}}
	fixed, repaired, err = nearestPSD(id)
	require.NoError(t, err)
	assert.False(t, repaired)
	assert.Equal(t, id, fixed)
}

func TestGenerateReproducible(t *testing.T) {
	t.Parallel()

	c, err := Simulator{Curve: testCurve(t, 5), Calibration: testCalibration(0.4)}.Calibrate()
	require.NoError(t, err)

	a, err := c.Generate(42, 32)
	require.NoError(t, err)
	b, err := c.Generate(42, 32)
	require.NoError(t, err)

	assert.Equal(t, 32, a.Paths())
	assert.Equal(t, 5, a.Periods())

	for p := 0; p < a.Paths(); p++ {
		for t2 := 0; t2 < a.Periods(); t2++ {
			for _, cm := range market.Commodities {
				va, err := a.Price(p, t2, cm)
				require.NoError(t, err)
				vb, err := b.Price(p, t2, cm)
				require.NoError(t, err)
				assert.Equal(t, va, vb)
				assert.False(t, math.IsNaN(va) || math.IsInf(va, 0))
				assert.Greater(t, va, 0.0)
			}
		}
	}

	// a different seed moves at least the first stochastic value
	d, err := c.Generate(43, 32)
	require.NoError(t, err)
	va, _ := a.Price(0, 0, market.HenryHub)
	vd, _ := d.Price(0, 0, market.HenryHub)
	assert.NotEqual(t, va, vd)
}

func TestGeneratePathsIndependentOfBatchSize(t *testing.T) {
	t.Parallel()

	c, err := Simulator{Curve: testCurve(t, 4), Calibration: testCalibration(0.4)}.Calibrate()
	require.NoError(t, err)

	big, err := c.Generate(99, 20)
	require.NoError(t, err)
	small, err := c.Generate(99, 5)
	require.NoError(t, err)

	// path p depends only on (seed, p), not on how many paths were asked for
	for p := 0; p < 5; p++ {
		for t2 := 0; t2 < 4; t2++ {
			for _, cm := range market.Commodities {
				vb, err := big.Price(p, t2, cm)
				require.NoError(t, err)
				vs, err := small.Price(p, t2, cm)
				require.NoError(t, err)
				assert.Equal(t, vb, vs)
			}
		}
	}
}

func TestZeroVolatilityTracksForwards(t *testing.T) {
	t.Parallel()

	curve := testCurve(t, 4)
	c, err := Simulator{Curve: curve, Calibration: testCalibration(0)}.Calibrate()
	require.NoError(t, err)

	ps, err := c.Generate(1, 3)
	require.NoError(t, err)

	for p := 0; p < ps.Paths(); p++ {
		for t2 := 0; t2 < ps.Periods(); t2++ {
			for _, cm := range market.Commodities {
				fwd, err := curve.Price(cm, t2)
				require.NoError(t, err)
				got, err := ps.Price(p, t2, cm)
				require.NoError(t, err)
				assert.InDelta(t, fwd, got, 1e-9)
			}
		}
	}
}

func TestPathScenario(t *testing.T) {
	t.Parallel()

	c, err := Simulator{Curve: testCurve(t, 3), Calibration: testCalibration(0.3)}.Calibrate()
	require.NoError(t, err)
	ps, err := c.Generate(11, 4)
	require.NoError(t, err)

	sc, err := ps.Scenario(2, 1)
	require.NoError(t, err)
	for _, cm := range market.Commodities {
		cur, err := ps.Price(2, 1, cm)
		require.NoError(t, err)
		nxt, err := ps.Price(2, 2, cm)
		require.NoError(t, err)

		got, err := sc.Price(cm)
		require.NoError(t, err)
		assert.Equal(t, cur, got)
		got, err = sc.NextPrice(cm)
		require.NoError(t, err)
		assert.Equal(t, nxt, got)
	}

	// the last period has no next-period prices within the trajectory
	tail, err := ps.Scenario(0, 2)
	require.NoError(t, err)
	_, err = tail.NextPrice(market.JKM)
	var pe *market.PriceError
	require.ErrorAs(t, err, &pe)

	// bounds
	_, err = ps.Scenario(99, 0)
	assert.Error(t, err)
	_, err = ps.Price(0, 99, market.Brent)
	require.ErrorAs(t, err, &pe)
}

func TestGenerateRejectsNonPositivePaths(t *testing.T) {
	t.Parallel()

	c, err := Simulator{Curve: testCurve(t, 3), Calibration: testCalibration(0.3)}.Calibrate()
	require.NoError(t, err)
	_, err = c.Generate(1, 0)
	assert.Error(t, err)
}
