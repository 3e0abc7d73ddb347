package cmd

import (
	"fmt"

	"github.com/nvasilyev/growcalc/internal/cli"

	"github.com/spf13/cobra"
)

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Year-by-year projection table",
	RunE:  runTable,
}

func init() {
	rootCmd.AddCommand(tableCmd)
}

func runTable(cmd *cobra.Command, _ []string) error {
	params, rows, _, err := runProjection(cmd)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("YEARLY PROJECTION  %s", params.Currency)))
	fmt.Println()

	tableRows := make([][]string, 0, len(rows))
	for _, r := range rows {
		tableRows = append(tableRows, []string{
			fmt.Sprintf("%d", r.Year),
			cli.FormatAmount(r.StartBalance),
			cli.FormatAmount(r.Contributions),
			cli.FormatAmount(r.InterestEarned),
			cli.FormatAmount(r.TaxesPaid),
			cli.FormatAmount(r.EndBalanceNominal),
			cli.FormatAmount(r.EndBalanceReal),
			cli.FormatFactor(r.InflationFactor),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Year", "Start", "Contributions", "Interest", "Taxes", "End (Nominal)", "End (Real)", "Inflation"},
		Rows:    tableRows,
	}))

	return nil
}
