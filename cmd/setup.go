package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/nvasilyev/growcalc/internal/config"
	"github.com/nvasilyev/growcalc/internal/projection"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	reader := bufio.NewReader(os.Stdin)

	// Load existing config or defaults
	cfg, _ := config.Load()
	d := &cfg.Defaults

	fmt.Println()
	fmt.Println("  Welcome to growcalc!")
	fmt.Println("  Set the default projection parameters (Enter keeps the current value).")
	fmt.Println()

	d.InitialInvestment = promptFloat(reader, "Initial investment", d.InitialInvestment)
	d.MonthlyContribution = promptFloat(reader, "Monthly contribution", d.MonthlyContribution)
	d.YearlyContribution = promptFloat(reader, "Yearly contribution", d.YearlyContribution)
	d.InterestRatePct = promptFloat(reader, "Annual interest rate (%)", d.InterestRatePct)
	d.InvestmentPeriod = promptInt(reader, "Investment period (years)", d.InvestmentPeriod)

	fmt.Println("  Compounding frequency")
	fmt.Println("     (1) Monthly [default]")
	fmt.Println("     (2) Quarterly")
	fmt.Println("     (3) Annually")
	fmt.Print("     > ")
	choice, _ := reader.ReadString('\n')
	switch strings.TrimSpace(choice) {
	case "2":
		d.CompoundingFreq = projection.CompoundQuarterly
	case "3":
		d.CompoundingFreq = projection.CompoundAnnually
	default:
		d.CompoundingFreq = projection.CompoundMonthly
	}
	fmt.Println()

	d.InflationRatePct = promptFloat(reader, "Expected inflation (%)", d.InflationRatePct)
	d.TaxRatePct = promptFloat(reader, "Tax rate on interest (%)", d.TaxRatePct)

	fmt.Println("  Currency")
	fmt.Println("     (1) ₽ Rubles")
	fmt.Println("     (2) $ Dollars [default]")
	fmt.Println("     (3) € Euros")
	fmt.Println("     (4) £ Pounds")
	fmt.Print("     > ")
	currency, _ := reader.ReadString('\n')
	switch strings.TrimSpace(currency) {
	case "1":
		d.Currency = "₽"
	case "3":
		d.Currency = "€"
	case "4":
		d.Currency = "£"
	default:
		d.Currency = "$"
	}
	fmt.Println()

	// Reject impossible defaults before they reach disk
	if err := d.ToParameters().Validate(); err != nil {
		return fmt.Errorf("invalid defaults: %w", err)
	}

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("  Saved to %s\n", config.Path())
	fmt.Println("  Run `growcalc setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}

func promptFloat(reader *bufio.Reader, label string, current float64) float64 {
	fmt.Printf("  %s [%.1f]\n     > ", label, current)
	in, _ := reader.ReadString('\n')
	in = strings.TrimSpace(in)
	if in == "" {
		fmt.Println()
		return current
	}
	v, err := strconv.ParseFloat(in, 64)
	if err != nil {
		fmt.Println("     Not a number, keeping current value.")
		fmt.Println()
		return current
	}
	fmt.Println()
	return v
}

func promptInt(reader *bufio.Reader, label string, current int) int {
	fmt.Printf("  %s [%d]\n     > ", label, current)
	in, _ := reader.ReadString('\n')
	in = strings.TrimSpace(in)
	if in == "" {
		fmt.Println()
		return current
	}
	v, err := strconv.Atoi(in)
	if err != nil {
		fmt.Println("     Not a number, keeping current value.")
		fmt.Println()
		return current
	}
	fmt.Println()
	return v
}
