package cmd

import (
	"github.com/spf13/cobra"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "cargorisk",
	Short: "Cargo delivery strategy optimization and Monte Carlo risk analysis",
	Long: `Cargorisk values and selects cargo-delivery decisions for a commodity
shipping portfolio under price, demand, and credit uncertainty.

It provides tools for:
  - Per-cargo P&L valuation with destination formulas and credit/demand adjustments
  - Combinatorial strategy optimization across destinations and counterparties
  - Correlated Monte Carlo price-path simulation
  - VaR/CVaR risk reporting and hedge overlay analysis`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "cargorisk.yaml", "config file path")
}
