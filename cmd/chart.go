package cmd

import (
	"fmt"

	"github.com/nvasilyev/growcalc/internal/cli"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Terminal chart of nominal vs real growth",
	RunE:  runChart,
}

func init() {
	rootCmd.AddCommand(chartCmd)
}

const chartBarWidth = 40

func runChart(cmd *cobra.Command, _ []string) error {
	params, rows, summary, err := runProjection(cmd)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("GROWTH  nominal vs real"))
	fmt.Println()

	// Both series share one scale so the inflation gap is visible.
	peak := summary.FinalAmountNominal
	if peak <= 0 {
		peak = 1
	}

	for _, r := range rows {
		nominal := cli.RenderHorizontalBar(
			fmt.Sprintf("Year %2d", r.Year),
			cli.FormatMoney(r.EndBalanceNominal, params.Currency),
			r.EndBalanceNominal, peak, cli.ColorBlue, 8, chartBarWidth)
		real := cli.RenderHorizontalBar(
			"",
			cli.FormatMoney(r.EndBalanceReal, params.Currency),
			r.EndBalanceReal, peak, cli.ColorRed, 8, chartBarWidth)
		fmt.Println(nominal)
		fmt.Println(real)
	}

	fmt.Println()
	fmt.Printf("  %s nominal   %s real (inflation-adjusted)\n",
		lipgloss.NewStyle().Foreground(cli.ColorBlue).Render("██"),
		lipgloss.NewStyle().Foreground(cli.ColorRed).Render("██"))
	fmt.Println()

	return nil
}
