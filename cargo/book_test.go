package cargo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/cargorisk/market"
)

func testTables() ([]Destination, []Counterparty, map[DestinationKind]Demand) {
	dests := []Destination{
		{Kind: Japan, Multiplier: 0.13, VoyageDays: 16, RiskTier: 1, Eligible: []string{"TokyoUtility", "OsakaPower"}},
		{Kind: Korea, Multiplier: 1.0, VoyageDays: 15, RiskTier: 2, Eligible: []string{"HanRiverEnergy"}},
		{Kind: China, Multiplier: 1.0, VoyageDays: 14, RiskTier: 3, Eligible: []string{"BohaiGas"}},
	}
	cps := []Counterparty{
		{Name: "TokyoUtility", Rating: AA, Premium: 0.20},
		{Name: "OsakaPower", Rating: A, Premium: 0.30, PaymentDelayDays: 30},
		{Name: "HanRiverEnergy", Rating: AA, Premium: 0.15},
		{Name: "BohaiGas", Rating: BBB, Premium: 0.45},
	}
	demand := map[DestinationKind]Demand{
		Japan: {Base: 0.9},
		Korea: {Base: 0.85},
	}
	return dests, cps, demand
}

func TestNewBook(t *testing.T) {
	t.Parallel()

	dests, cps, demand := testTables()
	b, err := NewBook(dests, cps, demand, Terms{})
	require.NoError(t, err)

	d, err := b.Destination(Korea)
	require.NoError(t, err)
	assert.Equal(t, 15, d.VoyageDays)

	cp, err := b.Counterparty("BohaiGas")
	require.NoError(t, err)
	assert.Equal(t, BBB, cp.Rating)

	// unconfigured market is fully open
	assert.InDelta(t, 1.0, b.Demand(China).Fraction(1), 1e-12)
	assert.InDelta(t, 0.9, b.Demand(Japan).Fraction(1), 1e-12)
}

func TestNewBook_Invalid(t *testing.T) {
	t.Parallel()

	t.Run("dangling eligibility", func(t *testing.T) {
		t.Parallel()
		dests, cps, demand := testTables()
		dests[0].Eligible = append(dests[0].Eligible, "Ghost")
		_, err := NewBook(dests, cps, demand, Terms{})
		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Contains(t, ve.Error(), "Ghost")
	})

	t.Run("duplicate counterparty", func(t *testing.T) {
		t.Parallel()
		dests, cps, demand := testTables()
		cps = append(cps, cps[0])
		_, err := NewBook(dests, cps, demand, Terms{})
		assert.Error(t, err)
	})

	t.Run("zero voyage days", func(t *testing.T) {
		t.Parallel()
		dests, cps, demand := testTables()
		dests[1].VoyageDays = 0
		_, err := NewBook(dests, cps, demand, Terms{})
		assert.Error(t, err)
	})
}

func TestBookLookupsFailFast(t *testing.T) {
	t.Parallel()

	dests, cps, demand := testTables()
	b, err := NewBook(dests, cps, demand, Terms{})
	require.NoError(t, err)

	_, err = b.Destination(Rotterdam)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)

	_, err = b.Counterparty("Nobody")
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Error(), "Nobody")
}

func TestBookSelectionHelpers(t *testing.T) {
	t.Parallel()

	dests, cps, demand := testTables()
	b, err := NewBook(dests, cps, demand, Terms{})
	require.NoError(t, err)

	// stable enumeration order
	order := b.Destinations()
	require.Len(t, order, 3)
	assert.Equal(t, Japan, order[0].Kind)
	assert.Equal(t, China, order[1].Kind)
	assert.Equal(t, Korea, order[2].Kind)

	low, err := b.LowestRiskDestination()
	require.NoError(t, err)
	assert.Equal(t, Japan, low.Kind)

	cp, err := b.BestRatedCounterparty(low)
	require.NoError(t, err)
	assert.Equal(t, "TokyoUtility", cp.Name)

	jkm := b.DestinationsByIndex(market.JKM)
	require.Len(t, jkm, 2)
	assert.Equal(t, China, jkm[0].Kind)
	assert.Equal(t, Korea, jkm[1].Kind)
}
