// Package projection implements the compound-interest projection engine:
// a deterministic year-by-year simulation of an investment balance under
// periodic contributions, compounded interest, tax drag, and inflation.
package projection

import "fmt"

// Compounding frequencies supported by the engine, in periods per year.
const (
	CompoundAnnually  = 1
	CompoundQuarterly = 4
	CompoundMonthly   = 12
)

// Parameters is the immutable input to a projection run.
// Rates are fractions in [0,1]; the flag/config surface collects percent
// and converts before constructing Parameters.
type Parameters struct {
	InitialInvestment   float64
	MonthlyContribution float64
	YearlyContribution  float64
	InterestRate        float64 // annual nominal rate
	InvestmentPeriod    int     // years
	CompoundingFreq     int     // 1, 4, or 12
	InflationRate       float64
	TaxRate             float64
	Currency            string // display label only, never used in arithmetic
}

// InvalidParameterError reports the first precondition a parameter set
// violates. The engine never clamps; it refuses the whole computation.
type InvalidParameterError struct {
	Field      string
	Constraint string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s: %s", e.Field, e.Constraint)
}

// Validate checks the engine preconditions and returns an
// *InvalidParameterError for the first violation found.
func (p Parameters) Validate() error {
	if p.InitialInvestment < 0 {
		return &InvalidParameterError{"initial_investment", "must be >= 0"}
	}
	if p.MonthlyContribution < 0 {
		return &InvalidParameterError{"monthly_contribution", "must be >= 0"}
	}
	if p.YearlyContribution < 0 {
		return &InvalidParameterError{"yearly_contribution", "must be >= 0"}
	}
	if p.InterestRate < 0 || p.InterestRate > 1 {
		return &InvalidParameterError{"interest_rate", "must be a fraction in [0,1]"}
	}
	if p.InvestmentPeriod < 1 {
		return &InvalidParameterError{"investment_period", "must be >= 1 year"}
	}
	switch p.CompoundingFreq {
	case CompoundAnnually, CompoundQuarterly, CompoundMonthly:
	default:
		return &InvalidParameterError{"compounding_freq", "must be 1, 4, or 12"}
	}
	if p.InflationRate < 0 || p.InflationRate > 1 {
		return &InvalidParameterError{"inflation_rate", "must be a fraction in [0,1]"}
	}
	if p.TaxRate < 0 || p.TaxRate > 1 {
		return &InvalidParameterError{"tax_rate", "must be a fraction in [0,1]"}
	}
	return nil
}

// FreqLabel returns a human-readable name for a compounding frequency.
func FreqLabel(freq int) string {
	switch freq {
	case CompoundMonthly:
		return "monthly"
	case CompoundQuarterly:
		return "quarterly"
	case CompoundAnnually:
		return "annually"
	}
	return fmt.Sprintf("%dx/year", freq)
}
