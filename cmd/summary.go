package cmd

import (
	"fmt"

	"github.com/nvasilyev/growcalc/internal/cli"
	"github.com/nvasilyev/growcalc/internal/projection"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Projection summary with headline metrics",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, _ []string) error {
	params, rows, summary, err := runProjection(cmd)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("INVESTMENT PROJECTION  %d years", params.InvestmentPeriod)))
	fmt.Println()

	cagr := "n/a (zero principal)"
	if summary.CAGR != nil {
		cagr = cli.FormatPercent(*summary.CAGR)
	}

	table := cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Initial Investment", cli.FormatMoney(params.InitialInvestment, params.Currency)},
			{"Contributions", cli.FormatMoney(summary.TotalContributions-params.InitialInvestment, params.Currency)},
			{"Interest Rate", cli.FormatPercent(params.InterestRate) + " compounded " + projection.FreqLabel(params.CompoundingFreq)},
			{"---"},
			{"Final Amount (Nominal)", cli.FormatMoney(summary.FinalAmountNominal, params.Currency)},
			{"Final Amount (Real)", cli.FormatMoney(summary.FinalAmountReal, params.Currency)},
			{"Total Interest", cli.FormatMoney(summary.TotalInterest, params.Currency)},
			{"Total Taxes", cli.FormatMoney(summary.TotalTaxes, params.Currency)},
			{"---"},
			{"CAGR", cagr},
			{"Inflation Factor", cli.FormatFactor(rows[len(rows)-1].InflationFactor)},
		},
	}

	fmt.Print(cli.RenderTable(table))

	// Compact growth trace under the table
	fmt.Println()
	fmt.Printf("  Nominal  %s\n", cli.RenderSparkline(projection.NominalSeries(rows)))
	fmt.Printf("  Real     %s\n", cli.RenderSparkline(projection.RealSeries(rows)))

	return nil
}
