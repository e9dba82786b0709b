// Package config loads and validates the engine's configuration surface:
// cargo terms, destination formulas, the counterparty table, demand
// profiles, forecast curves, volatility/correlation calibration, and
// simulation/hedge parameters.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the complete run configuration.
type Config struct {
	Cargo          CargoConfig          `json:"cargo" yaml:"cargo"`
	Destinations   []DestinationConfig  `json:"destinations" yaml:"destinations"`
	Counterparties []CounterpartyConfig `json:"counterparties" yaml:"counterparties"`
	Demand         []DemandConfig       `json:"demand,omitempty" yaml:"demand,omitempty"`
	Terms          TermsConfig          `json:"terms" yaml:"terms"`
	Horizon        HorizonConfig        `json:"horizon" yaml:"horizon"`
	Nomination     NominationConfig     `json:"nomination" yaml:"nomination"`
	Forecasts      map[string][]float64 `json:"forecasts" yaml:"forecasts"`
	Volatility     map[string]float64   `json:"volatility" yaml:"volatility"`
	Correlation    [][]float64          `json:"correlation" yaml:"correlation"`
	Simulation     SimulationConfig     `json:"simulation" yaml:"simulation"`
	Hedge          HedgeConfig          `json:"hedge" yaml:"hedge"`
}

// CargoConfig describes the repeating monthly cargo.
type CargoConfig struct {
	BaseVolume       float64 `json:"base_volume" yaml:"base_volume"`
	TolMin           float64 `json:"tol_min" yaml:"tol_min"`
	TolMax           float64 `json:"tol_max" yaml:"tol_max"`
	SalesCap         float64 `json:"sales_cap" yaml:"sales_cap"`
	AddOnPerUnit     float64 `json:"add_on_per_unit" yaml:"add_on_per_unit"`
	TakeOrPayPerUnit float64 `json:"take_or_pay_per_unit" yaml:"take_or_pay_per_unit"`
	BoilOffPerDay    float64 `json:"boil_off_per_day" yaml:"boil_off_per_day"`
}

// DestinationConfig is one delivery market's formula parameters.
type DestinationConfig struct {
	Name        string   `json:"name" yaml:"name"`
	Multiplier  float64  `json:"multiplier" yaml:"multiplier"`
	TerminalFee float64  `json:"terminal_fee" yaml:"terminal_fee"`
	BerthingFee float64  `json:"berthing_fee" yaml:"berthing_fee"`
	VoyageDays  int      `json:"voyage_days" yaml:"voyage_days"`
	RiskTier    int      `json:"risk_tier" yaml:"risk_tier"`
	LevyPerUnit float64  `json:"levy_per_unit,omitempty" yaml:"levy_per_unit,omitempty"`
	LevyMonths  []int    `json:"levy_months,omitempty" yaml:"levy_months,omitempty"`
	Eligible    []string `json:"eligible" yaml:"eligible"`
}

// CounterpartyConfig is one buyer profile.
type CounterpartyConfig struct {
	Name             string  `json:"name" yaml:"name"`
	Rating           string  `json:"rating" yaml:"rating"`
	Premium          float64 `json:"premium" yaml:"premium"`
	PaymentDelayDays int     `json:"payment_delay_days,omitempty" yaml:"payment_delay_days,omitempty"`
	MinLeadDays      int     `json:"min_lead_days,omitempty" yaml:"min_lead_days,omitempty"`
	MaxLeadDays      int     `json:"max_lead_days,omitempty" yaml:"max_lead_days,omitempty"`
}

// DemandConfig is one market's open-demand profile.
type DemandConfig struct {
	Destination string          `json:"destination" yaml:"destination"`
	Base        float64         `json:"base" yaml:"base"`
	Seasonal    map[int]float64 `json:"seasonal,omitempty" yaml:"seasonal,omitempty"`
}

// TermsConfig is the shared economic parameter set.
type TermsConfig struct {
	AnnualRate         float64 `json:"annual_rate" yaml:"annual_rate"`
	InsurancePerVoyage float64 `json:"insurance_per_voyage" yaml:"insurance_per_voyage"`
	BrokeragePct       float64 `json:"brokerage_pct" yaml:"brokerage_pct"`
	CarbonPerVoyageDay float64 `json:"carbon_per_voyage_day" yaml:"carbon_per_voyage_day"`
	DemurrageExpected  float64 `json:"demurrage_expected" yaml:"demurrage_expected"`
	LCFeePct           float64 `json:"lc_fee_pct" yaml:"lc_fee_pct"`
	LCFeeMin           float64 `json:"lc_fee_min" yaml:"lc_fee_min"`
	StoragePerUnit     float64 `json:"storage_per_unit" yaml:"storage_per_unit"`
}

// HorizonConfig anchors the delivery horizon and decision date.
// Dates use YYYY-MM for months and YYYY-MM-DD for the decision date.
type HorizonConfig struct {
	Start        string `json:"start" yaml:"start"`
	Months       int    `json:"months" yaml:"months"`
	DecisionDate string `json:"decision_date" yaml:"decision_date"`
}

// NominationConfig carries the lifting and option commitment leads.
type NominationConfig struct {
	LeadDays       int    `json:"lead_days" yaml:"lead_days"`
	OptionLeadDays int    `json:"option_lead_days" yaml:"option_lead_days"`
	Mode           string `json:"mode" yaml:"mode"` // "strict" or "advisory"
}

// SimulationConfig sizes the Monte Carlo run.
type SimulationConfig struct {
	Paths int   `json:"paths" yaml:"paths"`
	Seed  int64 `json:"seed" yaml:"seed"`
}

// HedgeConfig parameterizes the purchase-price hedge overlay.
type HedgeConfig struct {
	Ratio       float64 `json:"ratio" yaml:"ratio"`
	LeadDays    int     `json:"lead_days" yaml:"lead_days"`
	ResidualVol float64 `json:"residual_vol" yaml:"residual_vol"`
}

// LoadFromFile loads configuration from a file (YAML first, JSON fallback)
// and validates it.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		if jerr := json.Unmarshal(data, cfg); jerr != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// SaveToFile writes the configuration, format chosen by extension.
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// Validate checks every field the builders depend on. Structural
// cross-checks (eligibility references, matrix properties) happen again in
// the domain constructors; this pass catches config-file mistakes with
// file-oriented messages.
func (c *Config) Validate() error {
	if c.Cargo.BaseVolume <= 0 {
		return fmt.Errorf("cargo.base_volume must be positive")
	}
	if c.Cargo.TolMin <= 0 || c.Cargo.TolMax < c.Cargo.TolMin {
		return fmt.Errorf("cargo tolerance band [%v, %v] is malformed", c.Cargo.TolMin, c.Cargo.TolMax)
	}
	if c.Cargo.SalesCap <= 0 {
		return fmt.Errorf("cargo.sales_cap must be positive")
	}
	if c.Cargo.BoilOffPerDay < 0 {
		return fmt.Errorf("cargo.boil_off_per_day must be non-negative")
	}
	if len(c.Destinations) == 0 {
		return fmt.Errorf("at least one destination is required")
	}
	for _, d := range c.Destinations {
		if d.Name == "" {
			return fmt.Errorf("destination name is required")
		}
		if d.VoyageDays <= 0 {
			return fmt.Errorf("destination %s: voyage_days must be positive", d.Name)
		}
		if len(d.Eligible) == 0 {
			return fmt.Errorf("destination %s: eligible counterparties required", d.Name)
		}
		for _, m := range d.LevyMonths {
			if m < 1 || m > 12 {
				return fmt.Errorf("destination %s: levy month %d out of range", d.Name, m)
			}
		}
	}
	if len(c.Counterparties) == 0 {
		return fmt.Errorf("at least one counterparty is required")
	}
	for _, cp := range c.Counterparties {
		if cp.Name == "" {
			return fmt.Errorf("counterparty name is required")
		}
		if cp.Rating == "" {
			return fmt.Errorf("counterparty %s: rating is required", cp.Name)
		}
		if cp.PaymentDelayDays < 0 {
			return fmt.Errorf("counterparty %s: payment_delay_days must be non-negative", cp.Name)
		}
		if cp.MinLeadDays < 0 || cp.MaxLeadDays < cp.MinLeadDays {
			return fmt.Errorf("counterparty %s: booking window [%d, %d] is malformed", cp.Name, cp.MinLeadDays, cp.MaxLeadDays)
		}
	}
	for _, d := range c.Demand {
		if d.Base < 0 || d.Base > 1 {
			return fmt.Errorf("demand %s: base fraction %v must be in [0,1]", d.Destination, d.Base)
		}
		for m, v := range d.Seasonal {
			if m < 1 || m > 12 {
				return fmt.Errorf("demand %s: seasonal month %d out of range", d.Destination, m)
			}
			if v < 0 || v > 1 {
				return fmt.Errorf("demand %s: seasonal fraction %v must be in [0,1]", d.Destination, v)
			}
		}
	}
	if c.Horizon.Start == "" || c.Horizon.Months <= 0 {
		return fmt.Errorf("horizon.start and a positive horizon.months are required")
	}
	if c.Horizon.DecisionDate == "" {
		return fmt.Errorf("horizon.decision_date is required")
	}
	if c.Nomination.LeadDays < 0 || c.Nomination.OptionLeadDays < 0 {
		return fmt.Errorf("nomination lead days must be non-negative")
	}
	switch c.Nomination.Mode {
	case "strict", "advisory":
	default:
		return fmt.Errorf("nomination.mode must be 'strict' or 'advisory', got %q", c.Nomination.Mode)
	}
	if len(c.Forecasts) == 0 {
		return fmt.Errorf("forecasts are required")
	}
	for name, series := range c.Forecasts {
		// Next-period sale formulas need one period past the horizon.
		if len(series) < c.Horizon.Months+1 {
			return fmt.Errorf("forecast %s covers %d periods, need %d (horizon + 1)", name, len(series), c.Horizon.Months+1)
		}
	}
	if c.Simulation.Paths <= 0 {
		return fmt.Errorf("simulation.paths must be positive")
	}
	if c.Hedge.Ratio < 0 || c.Hedge.Ratio > 1 {
		return fmt.Errorf("hedge.ratio must be in [0,1]")
	}
	if c.Hedge.ResidualVol < 0 || c.Hedge.ResidualVol > 1 {
		return fmt.Errorf("hedge.residual_vol must be in [0,1]")
	}
	return nil
}
