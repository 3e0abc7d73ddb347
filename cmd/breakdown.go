package cmd

import (
	"fmt"

	"github.com/nvasilyev/growcalc/internal/cli"
	"github.com/nvasilyev/growcalc/internal/projection"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var breakdownCmd = &cobra.Command{
	Use:   "breakdown",
	Short: "Composition of the final amount",
	RunE:  runBreakdown,
}

func init() {
	rootCmd.AddCommand(breakdownCmd)
}

func runBreakdown(cmd *cobra.Command, _ []string) error {
	params, _, summary, err := runProjection(cmd)
	if err != nil {
		return err
	}

	comp := projection.Breakdown(params, summary)
	total := comp.Principal + comp.Contributions + comp.NetInterest

	fmt.Println()
	fmt.Println(cli.RenderTitle("FINAL AMOUNT COMPOSITION"))
	fmt.Println()

	parts := []struct {
		label string
		value float64
		color lipgloss.Color
	}{
		{"Principal", comp.Principal, cli.ColorBlue},
		{"Contributions", comp.Contributions, cli.ColorGreen},
		{"Net Interest", comp.NetInterest, cli.ColorYellow},
	}

	maxShare := 0.0
	for _, p := range parts {
		if total > 0 && p.value/total > maxShare {
			maxShare = p.value / total
		}
	}

	for _, p := range parts {
		share := 0.0
		if total > 0 {
			share = p.value / total
		}
		value := fmt.Sprintf("%s (%s)",
			cli.FormatMoney(p.value, params.Currency), cli.FormatPercent(share))
		fmt.Println(cli.RenderHorizontalBar(p.label, value, share, maxShare,
			p.color, 14, 30))
	}

	fmt.Println()
	fmt.Printf("  Total  %s\n", cli.FormatMoney(summary.FinalAmountNominal, params.Currency))
	fmt.Println()

	return nil
}
