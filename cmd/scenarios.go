package cmd

import (
	"fmt"

	"github.com/nvasilyev/growcalc/internal/cli"
	"github.com/nvasilyev/growcalc/internal/config"
	"github.com/nvasilyev/growcalc/internal/projection"

	"github.com/spf13/cobra"
)

var scenariosCmd = &cobra.Command{
	Use:   "scenarios",
	Short: "List saved scenarios",
	RunE:  runScenarios,
}

func init() {
	rootCmd.AddCommand(scenariosCmd)
}

func runScenarios(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	names := config.ScenarioNames(cfg)
	if len(names) == 0 {
		fmt.Println("\n  No saved scenarios.")
		fmt.Printf("  Add [scenario.<name>] sections to %s\n", config.Path())
		return nil
	}

	rows := make([][]string, 0, len(names))
	for _, name := range names {
		ps := cfg.Scenarios[name]
		rows = append(rows, []string{
			name,
			cli.FormatMoney(ps.InitialInvestment, ps.Currency),
			cli.FormatMoney(ps.MonthlyContribution, ps.Currency),
			fmt.Sprintf("%.1f%%", ps.InterestRatePct),
			fmt.Sprintf("%dy", ps.InvestmentPeriod),
			projection.FreqLabel(ps.CompoundingFreq),
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Saved Scenarios",
		Headers: []string{"Name", "Principal", "Monthly", "Rate", "Period", "Compounding"},
		Rows:    rows,
	}))
	fmt.Printf("\n  Run with `growcalc --scenario <name>`\n")

	return nil
}
