package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	t.Parallel()

	cfg := Default()
	require.NoError(t, cfg.Validate())

	book, err := cfg.BuildBook()
	require.NoError(t, err)
	assert.Len(t, book.Destinations(), 5)

	curve, err := cfg.BuildCurve()
	require.NoError(t, err)
	// one settlement period past the horizon
	assert.Equal(t, cfg.Horizon.Months+1, curve.Periods())

	cal, err := cfg.BuildCalibration()
	require.NoError(t, err)
	require.NoError(t, cal.Validate())

	periods, decision, err := cfg.BuildHorizon()
	require.NoError(t, err)
	require.Len(t, periods, 6)
	assert.Equal(t, "2026-10", periods[0].Label())
	assert.Equal(t, time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC), decision)

	cargoes := cfg.BuildCargoes(periods)
	require.Len(t, cargoes, 6)
	for _, c := range cargoes {
		assert.NoError(t, c.Validate())
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg := Default()

	t.Run("yaml", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(dir, "engine.yaml")
		require.NoError(t, cfg.SaveToFile(path))
		got, err := LoadFromFile(path)
		require.NoError(t, err)
		assert.Equal(t, cfg, got)
	})

	t.Run("json", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(dir, "engine.json")
		require.NoError(t, cfg.SaveToFile(path))
		got, err := LoadFromFile(path)
		require.NoError(t, err)
		assert.Equal(t, cfg, got)
	})
}

func TestLoadFromFileMissing(t *testing.T) {
	t.Parallel()

	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorContains(t, err, "read config file")
}

func TestValidateRejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"zero base volume", func(c *Config) { c.Cargo.BaseVolume = 0 }, "base_volume"},
		{"inverted tolerance band", func(c *Config) { c.Cargo.TolMin = 1.2; c.Cargo.TolMax = 0.9 }, "tolerance"},
		{"no destinations", func(c *Config) { c.Destinations = nil }, "destination"},
		{"zero voyage days", func(c *Config) { c.Destinations[0].VoyageDays = 0 }, "voyage_days"},
		{"no eligible buyers", func(c *Config) { c.Destinations[0].Eligible = nil }, "eligible"},
		{"levy month out of range", func(c *Config) { c.Destinations[1].LevyMonths = []int{13} }, "levy month"},
		{"no counterparties", func(c *Config) { c.Counterparties = nil }, "counterparty"},
		{"missing rating", func(c *Config) { c.Counterparties[0].Rating = "" }, "rating"},
		{"inverted booking window", func(c *Config) { c.Counterparties[4].MinLeadDays = 120; c.Counterparties[4].MaxLeadDays = 30 }, "booking window"},
		{"demand fraction above one", func(c *Config) { c.Demand[0].Base = 1.2 }, "fraction"},
		{"missing horizon start", func(c *Config) { c.Horizon.Start = "" }, "horizon"},
		{"missing decision date", func(c *Config) { c.Horizon.DecisionDate = "" }, "decision_date"},
		{"bad nomination mode", func(c *Config) { c.Nomination.Mode = "loose" }, "nomination.mode"},
		{"no forecasts", func(c *Config) { c.Forecasts = nil }, "forecasts"},
		{"short forecast", func(c *Config) { c.Forecasts["JKM"] = c.Forecasts["JKM"][:3] }, "horizon + 1"},
		{"zero paths", func(c *Config) { c.Simulation.Paths = 0 }, "paths"},
		{"hedge ratio above one", func(c *Config) { c.Hedge.Ratio = 1.5 }, "hedge.ratio"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := Default()
			tt.mutate(cfg)
			assert.ErrorContains(t, cfg.Validate(), tt.wantErr)
		})
	}
}

func TestBuildBookRejectsUnknownNames(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Destinations[0].Name = "Atlantis"
	_, err := cfg.BuildBook()
	assert.Error(t, err)

	cfg = Default()
	cfg.Counterparties[0].Rating = "CCC"
	// survives the file-level pass, fails the domain constructor
	require.NoError(t, cfg.Validate())
	_, err = cfg.BuildBook()
	assert.ErrorContains(t, err, "TokyoUtility")
}

func TestBuildCurveRejectsUnknownCommodity(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Forecasts["Uranium"] = []float64{1, 1, 1, 1, 1, 1, 1}
	_, err := cfg.BuildCurve()
	assert.Error(t, err)
}
