package config

// Default returns a configuration with a representative five-market,
// five-buyer portfolio over a six-month horizon. It passes Validate and is
// the starting point `cargorisk config init` writes out.
func Default() *Config {
	return &Config{
		Cargo: CargoConfig{
			BaseVolume:       3_800_000,
			TolMin:           0.90,
			TolMax:           1.10,
			SalesCap:         3_900_000,
			AddOnPerUnit:     2.50,
			TakeOrPayPerUnit: 1.50,
			BoilOffPerDay:    0.0012,
		},
		Destinations: []DestinationConfig{
			{Name: "Japan", Multiplier: 0.13, TerminalFee: 0.10, BerthingFee: 0.05, VoyageDays: 16, RiskTier: 1, Eligible: []string{"TokyoUtility", "OsakaPower"}},
			{Name: "China", Multiplier: 1.00, TerminalFee: 0.12, BerthingFee: 0.06, VoyageDays: 14, RiskTier: 3, LevyPerUnit: 0.08, LevyMonths: []int{12, 1, 2}, Eligible: []string{"BohaiGas", "PanAsiaTrading"}},
			{Name: "Korea", Multiplier: 1.00, TerminalFee: 0.11, BerthingFee: 0.05, VoyageDays: 15, RiskTier: 2, Eligible: []string{"HanRiverEnergy", "PanAsiaTrading"}},
			{Name: "India", Multiplier: 0.125, TerminalFee: 0.14, BerthingFee: 0.07, VoyageDays: 12, RiskTier: 4, Eligible: []string{"WestCoastGas"}},
			{Name: "Rotterdam", Multiplier: 1.00, TerminalFee: 0.09, BerthingFee: 0.04, VoyageDays: 21, RiskTier: 2, Eligible: []string{"NorthSeaTrading"}},
		},
		Counterparties: []CounterpartyConfig{
			{Name: "TokyoUtility", Rating: "AA", Premium: 0.20},
			{Name: "OsakaPower", Rating: "A", Premium: 0.30, PaymentDelayDays: 30},
			{Name: "BohaiGas", Rating: "BBB", Premium: 0.45, PaymentDelayDays: 60},
			{Name: "HanRiverEnergy", Rating: "AA", Premium: 0.15},
			{Name: "PanAsiaTrading", Rating: "BB", Premium: 0.60, PaymentDelayDays: 45, MinLeadDays: 30, MaxLeadDays: 120},
			{Name: "WestCoastGas", Rating: "BBB", Premium: 0.40, PaymentDelayDays: 45},
			{Name: "NorthSeaTrading", Rating: "A", Premium: 0.10, PaymentDelayDays: 15},
		},
		Demand: []DemandConfig{
			{Destination: "Japan", Base: 0.90, Seasonal: map[int]float64{7: 0.95, 8: 0.95, 12: 0.98, 1: 0.98}},
			{Destination: "China", Base: 0.75, Seasonal: map[int]float64{12: 0.95, 1: 0.95, 2: 0.90}},
			{Destination: "Korea", Base: 0.85},
			{Destination: "India", Base: 0.65},
			{Destination: "Rotterdam", Base: 0.80, Seasonal: map[int]float64{11: 0.92, 12: 0.95, 1: 0.95}},
		},
		Terms: TermsConfig{
			AnnualRate:         0.06,
			InsurancePerVoyage: 120_000,
			BrokeragePct:       0.0125,
			CarbonPerVoyageDay: 8_500,
			DemurrageExpected:  95_000,
			LCFeePct:           0.0015,
			LCFeeMin:           45_000,
			StoragePerUnit:     0.35,
		},
		Horizon: HorizonConfig{
			Start:        "2026-10",
			Months:       6,
			DecisionDate: "2026-08-15",
		},
		Nomination: NominationConfig{
			LeadDays:       45,
			OptionLeadDays: 30,
			Mode:           "strict",
		},
		Forecasts: map[string][]float64{
			"HenryHub": {3.05, 3.10, 3.25, 3.40, 3.35, 3.20, 3.05},
			"Brent":    {74.0, 75.0, 76.5, 78.0, 77.0, 75.5, 74.5},
			"JKM":      {11.2, 11.8, 12.9, 13.6, 13.1, 12.2, 11.4},
			"TTF":      {10.4, 10.9, 11.8, 12.4, 12.0, 11.2, 10.6},
			"Freight":  {62_000, 68_000, 81_000, 92_000, 88_000, 74_000, 65_000},
		},
		Volatility: map[string]float64{
			"HenryHub": 0.45,
			"Brent":    0.30,
			"JKM":      0.60,
			"TTF":      0.55,
			"Freight":  0.70,
		},
		Correlation: [][]float64{
			{1.00, 0.35, 0.45, 0.40, 0.20},
			{0.35, 1.00, 0.55, 0.50, 0.15},
			{0.45, 0.55, 1.00, 0.80, 0.30},
			{0.40, 0.50, 0.80, 1.00, 0.25},
			{0.20, 0.15, 0.30, 0.25, 1.00},
		},
		Simulation: SimulationConfig{
			Paths: 5_000,
			Seed:  42,
		},
		Hedge: HedgeConfig{
			Ratio:       0.80,
			LeadDays:    60,
			ResidualVol: 0.05,
		},
	}
}
