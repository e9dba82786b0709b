package cargo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/cargorisk/market"
)

func testCargo() Cargo {
	return Cargo{
		Period:           market.Period{Index: 0, Start: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)},
		BaseVolume:       3_800_000,
		TolMin:           0.90,
		TolMax:           1.10,
		SalesCap:         3_900_000,
		AddOnPerUnit:     2.50,
		TakeOrPayPerUnit: 1.50,
		BoilOffPerDay:    0.0012,
	}
}

func TestCargoValidate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, testCargo().Validate())

	tests := []struct {
		name   string
		mutate func(*Cargo)
	}{
		{"zero base volume", func(c *Cargo) { c.BaseVolume = 0 }},
		{"negative base volume", func(c *Cargo) { c.BaseVolume = -1 }},
		{"inverted band", func(c *Cargo) { c.TolMin = 1.2; c.TolMax = 0.9 }},
		{"zero sales cap", func(c *Cargo) { c.SalesCap = 0 }},
		{"negative boil-off", func(c *Cargo) { c.BoilOffPerDay = -0.001 }},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := testCargo()
			tt.mutate(&c)
			err := c.Validate()
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, "2026-10", ve.Period)
		})
	}
}

func TestArrivalVolume(t *testing.T) {
	t.Parallel()

	c := testCargo()

	// arrival = purchase x (1 - rate x days)
	assert.InDelta(t, 3_800_000*(1-0.0012*16), c.ArrivalVolume(3_800_000, 16), 1e-6)

	// strictly decreasing in voyage days
	prev := c.ArrivalVolume(3_800_000, 0)
	for days := 1; days <= 30; days++ {
		cur := c.ArrivalVolume(3_800_000, days)
		assert.Less(t, cur, prev, "days=%d", days)
		prev = cur
	}

	// never negative even for absurd voyages
	c.BoilOffPerDay = 0.1
	assert.GreaterOrEqual(t, c.ArrivalVolume(3_800_000, 100), 0.0)
}

func TestCancelPayoff(t *testing.T) {
	t.Parallel()

	c := testCargo()
	assert.InDelta(t, -5_700_000, c.CancelPayoff(), 1e-9)
}

func TestCreditRatingTables(t *testing.T) {
	t.Parallel()

	ratings := []CreditRating{AAA, AA, A, BBB, BB}

	// default probability strictly increases down the scale
	for i := 1; i < len(ratings); i++ {
		assert.Greater(t, ratings[i].DefaultProbability(), ratings[i-1].DefaultProbability())
		assert.LessOrEqual(t, ratings[i].Recovery(), ratings[i-1].Recovery())
	}

	for _, r := range ratings {
		assert.Greater(t, r.DemandMultiplier(), 0.0)
	}
}

func TestPlacementProbability(t *testing.T) {
	t.Parallel()

	d := Demand{Base: 0.75, Seasonal: map[time.Month]float64{time.December: 0.95}}

	// seasonal override
	assert.InDelta(t, 0.95, d.Fraction(time.December), 1e-12)
	assert.InDelta(t, 0.75, d.Fraction(time.June), 1e-12)

	// rating multipliers
	assert.InDelta(t, 0.90, PlacementProbability(d, time.June, AA), 1e-12)   // 0.75 * 1.2
	assert.InDelta(t, 0.6375, PlacementProbability(d, time.June, BB), 1e-12) // 0.75 * 0.85

	// preferential multiplier capped at 1
	assert.InDelta(t, 1.0, PlacementProbability(Demand{Base: 0.9}, time.June, AAA), 1e-12)
}

func TestDestinationKindTables(t *testing.T) {
	t.Parallel()

	// every kind resolves an index and a lookup convention without panics
	for _, k := range DestinationKinds {
		assert.NotPanics(t, func() { _ = k.SaleIndex() })
		assert.NotPanics(t, func() { _ = k.UsesNextPeriodIndex() })
	}

	assert.Equal(t, market.Brent, Japan.SaleIndex())
	assert.Equal(t, market.JKM, China.SaleIndex())
	assert.Equal(t, market.TTF, Rotterdam.SaleIndex())

	assert.True(t, Japan.UsesNextPeriodIndex())
	assert.True(t, China.UsesNextPeriodIndex())
	assert.False(t, Korea.UsesNextPeriodIndex())
	assert.False(t, Rotterdam.UsesNextPeriodIndex())
}

func TestParseHelpers(t *testing.T) {
	t.Parallel()

	k, err := ParseDestinationKind("Korea")
	require.NoError(t, err)
	assert.Equal(t, Korea, k)
	_, err = ParseDestinationKind("Atlantis")
	assert.Error(t, err)

	r, err := ParseCreditRating("BBB")
	require.NoError(t, err)
	assert.Equal(t, BBB, r)
	_, err = ParseCreditRating("CCC")
	assert.Error(t, err)
}
