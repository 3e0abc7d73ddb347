package tui

import (
	"strings"
	"testing"

	"github.com/nvasilyev/growcalc/internal/config"
)

func testParamSet() config.ParamSet {
	return config.ParamSet{
		InitialInvestment:   100000,
		MonthlyContribution: 10000,
		YearlyContribution:  0,
		InterestRatePct:     10,
		InvestmentPeriod:    10,
		CompoundingFreq:     12,
		InflationRatePct:    5,
		TaxRatePct:          13,
		Currency:            "₽",
	}
}

func TestNewAppComputesProjection(t *testing.T) {
	a := NewApp(testParamSet())

	if a.computeErr != nil {
		t.Fatalf("computeErr = %v, want nil", a.computeErr)
	}
	if len(a.rows) != 10 {
		t.Fatalf("len(rows) = %d, want 10", len(a.rows))
	}
	if a.summary.FinalAmountNominal <= a.params.InitialInvestment {
		t.Fatalf("FinalAmountNominal = %v, want > principal", a.summary.FinalAmountNominal)
	}
}

func TestNewAppInvalidParams(t *testing.T) {
	ps := testParamSet()
	ps.InvestmentPeriod = 0
	a := NewApp(ps)

	if a.computeErr == nil {
		t.Fatal("computeErr = nil, want error for zero period")
	}
	if a.rows != nil {
		t.Fatalf("rows = %v, want nil on compute error", a.rows)
	}
}

func TestFormValuesRoundTrip(t *testing.T) {
	ps := testParamSet()
	v := seedFormValues(ps)

	got, err := v.toParamSet()
	if err != nil {
		t.Fatalf("toParamSet() error = %v", err)
	}
	if got != ps {
		t.Fatalf("toParamSet() = %+v, want %+v", got, ps)
	}
}

func TestFormValidators(t *testing.T) {
	if err := validateAmount("100000"); err != nil {
		t.Errorf("validateAmount(100000) = %v, want nil", err)
	}
	if err := validateAmount("-5"); err == nil {
		t.Error("validateAmount(-5) = nil, want error")
	}
	if err := validateAmount("abc"); err == nil {
		t.Error("validateAmount(abc) = nil, want error")
	}
	if err := validatePercent("101"); err == nil {
		t.Error("validatePercent(101) = nil, want error")
	}
	if err := validatePercent(" 13 "); err != nil {
		t.Errorf("validatePercent(' 13 ') = %v, want nil", err)
	}
	if err := validateYears("0"); err == nil {
		t.Error("validateYears(0) = nil, want error")
	}
	if err := validateYears("10"); err != nil {
		t.Errorf("validateYears(10) = %v, want nil", err)
	}
}

func TestPadAndTruncateHeight(t *testing.T) {
	s := "a\nb\nc"

	if got := truncateHeight(s, 2); got != "a\nb" {
		t.Errorf("truncateHeight = %q, want %q", got, "a\nb")
	}
	if got := truncateHeight(s, 5); got != s {
		t.Errorf("truncateHeight = %q, want unchanged", got)
	}

	padded := padHeight(s, 5)
	if n := len(strings.Split(padded, "\n")); n != 5 {
		t.Errorf("padHeight line count = %d, want 5", n)
	}
	if got := padHeight(s, 2); got != s {
		t.Errorf("padHeight = %q, want unchanged when already tall enough", got)
	}
}

func TestParamsSummary(t *testing.T) {
	a := NewApp(testParamSet())
	got := a.paramsSummary()

	if !strings.Contains(got, "10y") {
		t.Errorf("paramsSummary() = %q, want period in it", got)
	}
	if !strings.Contains(got, "monthly") {
		t.Errorf("paramsSummary() = %q, want frequency label in it", got)
	}
}
