package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/cargorisk/report"
	"github.com/rustyeddy/cargorisk/strategy"
)

var optimizePolicy string

var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Build lifting strategies against the forward curve",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEngine(cfgPath)
		if err != nil {
			return err
		}

		policies := []strategy.Policy{strategy.Optimal, strategy.Conservative, strategy.HighExposure}
		if optimizePolicy != "" {
			p, err := strategy.ParsePolicy(optimizePolicy)
			if err != nil {
				return err
			}
			policies = []strategy.Policy{p}
		}

		strategies, err := e.buildStrategies(policies)
		if err != nil {
			return err
		}
		for _, s := range strategies {
			if err := report.RenderStrategy(os.Stdout, s); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	optimizeCmd.Flags().StringVarP(&optimizePolicy, "policy", "p", "", "single policy to build (optimal, conservative, high-exposure)")
	rootCmd.AddCommand(optimizeCmd)
}
