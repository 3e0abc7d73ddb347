// Package cmd implements the growcalc CLI commands.
package cmd

import (
	"fmt"

	"github.com/nvasilyev/growcalc/internal/config"
	"github.com/nvasilyev/growcalc/internal/projection"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	d := cfg.Defaults
	fmt.Println("  [Defaults]")
	fmt.Printf("    Initial investment:   %.0f %s\n", d.InitialInvestment, d.Currency)
	fmt.Printf("    Monthly contribution: %.0f %s\n", d.MonthlyContribution, d.Currency)
	fmt.Printf("    Yearly contribution:  %.0f %s\n", d.YearlyContribution, d.Currency)
	fmt.Printf("    Interest rate:        %.1f%%\n", d.InterestRatePct)
	fmt.Printf("    Investment period:    %d years\n", d.InvestmentPeriod)
	fmt.Printf("    Compounding:          %s\n", projection.FreqLabel(d.CompoundingFreq))
	fmt.Printf("    Inflation rate:       %.1f%%\n", d.InflationRatePct)
	fmt.Printf("    Tax rate:             %.1f%%\n", d.TaxRatePct)
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	if names := config.ScenarioNames(cfg); len(names) > 0 {
		fmt.Println("  [Scenarios]")
		for _, name := range names {
			fmt.Printf("    %s\n", name)
		}
		fmt.Println()
	}

	fmt.Println("  Run `growcalc setup` to reconfigure.")
	return nil
}
