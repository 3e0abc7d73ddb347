package cmd

import (
	"os"

	"github.com/nvasilyev/growcalc/internal/config"
	"github.com/nvasilyev/growcalc/internal/projection"

	"github.com/spf13/cobra"
)

var (
	flagPrincipal float64
	flagMonthly   float64
	flagYearly    float64
	flagRate      float64
	flagYears     int
	flagFreq      int
	flagInflation float64
	flagTax       float64
	flagCurrency  string
	flagScenario  string
)

var rootCmd = &cobra.Command{
	Use:   "growcalc",
	Short: "Compound interest projection CLI",
	Long:  "Project investment growth with contributions, compounding, inflation, and taxes.",
	RunE:  runSummary,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.Float64VarP(&flagPrincipal, "principal", "P", -1, "Initial investment")
	pf.Float64VarP(&flagMonthly, "monthly", "m", -1, "Monthly contribution")
	pf.Float64VarP(&flagYearly, "yearly", "y", -1, "Yearly contribution")
	pf.Float64VarP(&flagRate, "rate", "r", -1, "Annual interest rate (percent)")
	pf.IntVarP(&flagYears, "years", "n", 0, "Investment period in years")
	pf.IntVarP(&flagFreq, "freq", "f", 0, "Compounding periods per year (1, 4, or 12)")
	pf.Float64VarP(&flagInflation, "inflation", "i", -1, "Expected annual inflation (percent)")
	pf.Float64VarP(&flagTax, "tax", "t", -1, "Tax rate on interest income (percent)")
	pf.StringVarP(&flagCurrency, "currency", "c", "", "Currency display label")
	pf.StringVarP(&flagScenario, "scenario", "s", "", "Load a saved scenario from config")
}

// resolveParams builds the effective parameter set: config defaults (or a
// named scenario) overridden by any explicitly set flags. Negative/zero
// sentinels mean "flag not set"; cobra's Changed check guards the fields
// where zero is a legal value.
func resolveParams(cmd *cobra.Command) (config.ParamSet, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.ParamSet{}, err
	}

	ps := cfg.Defaults
	if flagScenario != "" {
		ps, err = config.Scenario(cfg, flagScenario)
		if err != nil {
			return config.ParamSet{}, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("principal") {
		ps.InitialInvestment = flagPrincipal
	}
	if flags.Changed("monthly") {
		ps.MonthlyContribution = flagMonthly
	}
	if flags.Changed("yearly") {
		ps.YearlyContribution = flagYearly
	}
	if flags.Changed("rate") {
		ps.InterestRatePct = flagRate
	}
	if flags.Changed("years") {
		ps.InvestmentPeriod = flagYears
	}
	if flags.Changed("freq") {
		ps.CompoundingFreq = flagFreq
	}
	if flags.Changed("inflation") {
		ps.InflationRatePct = flagInflation
	}
	if flags.Changed("tax") {
		ps.TaxRatePct = flagTax
	}
	if flags.Changed("currency") {
		ps.Currency = flagCurrency
	}

	return ps, nil
}

// runProjection is the shared compute path used by all commands.
func runProjection(cmd *cobra.Command) (projection.Parameters, []projection.YearRow, projection.Summary, error) {
	ps, err := resolveParams(cmd)
	if err != nil {
		return projection.Parameters{}, nil, projection.Summary{}, err
	}

	params := ps.ToParameters()
	rows, summary, err := projection.Compute(params)
	if err != nil {
		return projection.Parameters{}, nil, projection.Summary{}, err
	}

	return params, rows, summary, nil
}
