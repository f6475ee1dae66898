package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/journal/config"
)

var rootCmd = &cobra.Command{
	Use:   "journal",
	Short: "A trade journal with import, analytics and reporting",
	Long: `Journal is a personal trade journal and analytics tool written in Go.

It provides tools for:
  - Importing broker and exchange CSV/TSV exports (plain, .xz or zipped)
  - Normalizing dirty tabular data into canonical trade records
  - Computing performance statistics, streaks, drawdown and fee estimates
  - Deep-dive breakdowns by symbol, strategy, weekday, hour, side, exchange
  - Exporting the journal back to CSV

Complete documentation is available at https://github.com/rustyeddy/journal`,
}

var cfgFile string

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (YAML or JSON; defaults apply when unset)")
}

func loadConfig() (*config.Config, error) {
	if cfgFile == "" {
		return config.Default(), nil
	}
	cfg, err := config.LoadFromFile(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
