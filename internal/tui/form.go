package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/nvasilyev/growcalc/internal/config"
	"github.com/nvasilyev/growcalc/internal/projection"

	"github.com/charmbracelet/huh"
)

// formValues backs the parameter editing form. Numeric fields are
// strings because huh inputs edit text; toParamSet parses them.
type formValues struct {
	principal string
	monthly   string
	yearly    string
	rate      string
	years     string
	freq      int
	inflation string
	tax       string
	currency  string
}

func seedFormValues(ps config.ParamSet) formValues {
	return formValues{
		principal: formatInput(ps.InitialInvestment),
		monthly:   formatInput(ps.MonthlyContribution),
		yearly:    formatInput(ps.YearlyContribution),
		rate:      formatInput(ps.InterestRatePct),
		years:     strconv.Itoa(ps.InvestmentPeriod),
		freq:      ps.CompoundingFreq,
		inflation: formatInput(ps.InflationRatePct),
		tax:       formatInput(ps.TaxRatePct),
		currency:  ps.Currency,
	}
}

func formatInput(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func newParamsForm(v *formValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Initial investment").
				Value(&v.principal).
				Validate(validateAmount),
			huh.NewInput().
				Title("Monthly contribution").
				Value(&v.monthly).
				Validate(validateAmount),
			huh.NewInput().
				Title("Yearly contribution").
				Value(&v.yearly).
				Validate(validateAmount),
			huh.NewInput().
				Title("Annual interest rate (%)").
				Value(&v.rate).
				Validate(validatePercent),
			huh.NewInput().
				Title("Investment period (years)").
				Value(&v.years).
				Validate(validateYears),
		),
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Compounding frequency").
				Options(
					huh.NewOption("Monthly", projection.CompoundMonthly),
					huh.NewOption("Quarterly", projection.CompoundQuarterly),
					huh.NewOption("Annually", projection.CompoundAnnually),
				).
				Value(&v.freq),
			huh.NewInput().
				Title("Expected inflation (%)").
				Value(&v.inflation).
				Validate(validatePercent),
			huh.NewInput().
				Title("Tax rate on interest (%)").
				Value(&v.tax).
				Validate(validatePercent),
			huh.NewSelect[string]().
				Title("Currency").
				Options(huh.NewOptions("₽", "$", "€", "£")...).
				Value(&v.currency),
		),
	)
}

// toParamSet parses the edited values back into a parameter bundle.
// Field-level validators have already rejected malformed input, so
// parse errors here mean the form was bypassed somehow.
func (v formValues) toParamSet() (config.ParamSet, error) {
	var ps config.ParamSet
	var err error

	if ps.InitialInvestment, err = parseAmount(v.principal); err != nil {
		return ps, fmt.Errorf("initial investment: %w", err)
	}
	if ps.MonthlyContribution, err = parseAmount(v.monthly); err != nil {
		return ps, fmt.Errorf("monthly contribution: %w", err)
	}
	if ps.YearlyContribution, err = parseAmount(v.yearly); err != nil {
		return ps, fmt.Errorf("yearly contribution: %w", err)
	}
	if ps.InterestRatePct, err = parseAmount(v.rate); err != nil {
		return ps, fmt.Errorf("interest rate: %w", err)
	}
	if ps.InvestmentPeriod, err = strconv.Atoi(strings.TrimSpace(v.years)); err != nil {
		return ps, fmt.Errorf("investment period: %w", err)
	}
	if ps.InflationRatePct, err = parseAmount(v.inflation); err != nil {
		return ps, fmt.Errorf("inflation rate: %w", err)
	}
	if ps.TaxRatePct, err = parseAmount(v.tax); err != nil {
		return ps, fmt.Errorf("tax rate: %w", err)
	}
	ps.CompoundingFreq = v.freq
	ps.Currency = v.currency

	return ps, nil
}

func parseAmount(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

func validateAmount(s string) error {
	v, err := parseAmount(s)
	if err != nil {
		return errors.New("enter a number")
	}
	if v < 0 {
		return errors.New("must not be negative")
	}
	return nil
}

func validatePercent(s string) error {
	v, err := parseAmount(s)
	if err != nil {
		return errors.New("enter a number")
	}
	if v < 0 || v > 100 {
		return errors.New("must be between 0 and 100")
	}
	return nil
}

func validateYears(s string) error {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return errors.New("enter a whole number")
	}
	if v < 1 {
		return errors.New("must be at least 1 year")
	}
	if v > 100 {
		return errors.New("must be at most 100 years")
	}
	return nil
}
