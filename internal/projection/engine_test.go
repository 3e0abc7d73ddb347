package projection

import (
	"errors"
	"math"
	"testing"
)

func baseParams() Parameters {
	return Parameters{
		InitialInvestment:   100_000,
		MonthlyContribution: 10_000,
		YearlyContribution:  0,
		InterestRate:        0.10,
		InvestmentPeriod:    10,
		CompoundingFreq:     CompoundMonthly,
		InflationRate:       0.05,
		TaxRate:             0.13,
		Currency:            "USD",
	}
}

func mustCompute(t *testing.T, p Parameters) ([]YearRow, Summary) {
	t.Helper()
	rows, summary, err := Compute(p)
	if err != nil {
		t.Fatalf("Compute() error: %v", err)
	}
	return rows, summary
}

func approxEqual(a, b, relTol float64) bool {
	if a == b {
		return true
	}
	scale := math.Max(math.Abs(a), math.Abs(b))
	return math.Abs(a-b) <= relTol*scale
}

func TestComputeRowCountAndOrder(t *testing.T) {
	rows, _ := mustCompute(t, baseParams())

	if len(rows) != 10 {
		t.Fatalf("row count = %d, want 10", len(rows))
	}
	for i, r := range rows {
		if r.Year != i+1 {
			t.Fatalf("rows[%d].Year = %d, want %d", i, r.Year, i+1)
		}
	}
}

func TestComputeMonotonicNominalBalance(t *testing.T) {
	rows, _ := mustCompute(t, baseParams())

	for i := 1; i < len(rows); i++ {
		if rows[i].EndBalanceNominal < rows[i-1].EndBalanceNominal {
			t.Fatalf("year %d nominal balance %.2f < year %d balance %.2f",
				rows[i].Year, rows[i].EndBalanceNominal,
				rows[i-1].Year, rows[i-1].EndBalanceNominal)
		}
	}
}

func TestComputeContributionConservation(t *testing.T) {
	p := baseParams()
	rows, summary := mustCompute(t, p)

	sum := p.InitialInvestment
	for _, r := range rows {
		sum += r.Contributions
	}
	if !approxEqual(summary.TotalContributions, sum, 1e-9) {
		t.Fatalf("TotalContributions = %.6f, want %.6f (principal + emitted rows)",
			summary.TotalContributions, sum)
	}
}

func TestComputeZeroRatePureAccumulation(t *testing.T) {
	p := baseParams()
	p.InterestRate = 0
	p.TaxRate = 0
	rows, _ := mustCompute(t, p)

	expected := p.InitialInvestment
	for _, r := range rows {
		expected += r.Contributions
		if !approxEqual(r.EndBalanceNominal, expected, 1e-9) {
			t.Fatalf("year %d balance = %.6f, want %.6f with zero rates",
				r.Year, r.EndBalanceNominal, expected)
		}
		if r.InterestEarned != 0 || r.TaxesPaid != 0 {
			t.Fatalf("year %d earned %.6f interest / %.6f tax with zero rates",
				r.Year, r.InterestEarned, r.TaxesPaid)
		}
	}
}

func TestComputeInflationFactor(t *testing.T) {
	p := baseParams()
	rows, _ := mustCompute(t, p)

	for _, r := range rows {
		want := math.Pow(1+p.InflationRate, float64(r.Year))
		if !approxEqual(r.InflationFactor, want, 1e-9) {
			t.Fatalf("year %d inflation factor = %.12f, want %.12f",
				r.Year, r.InflationFactor, want)
		}
	}

	for i := 1; i < len(rows); i++ {
		if rows[i].InflationFactor <= rows[i-1].InflationFactor {
			t.Fatalf("inflation factor not strictly increasing at year %d", rows[i].Year)
		}
	}
}

func TestComputeRealNominalRelation(t *testing.T) {
	rows, _ := mustCompute(t, baseParams())

	for _, r := range rows {
		if !approxEqual(r.EndBalanceReal*r.InflationFactor, r.EndBalanceNominal, 1e-9) {
			t.Fatalf("year %d real*factor = %.6f, want nominal %.6f",
				r.Year, r.EndBalanceReal*r.InflationFactor, r.EndBalanceNominal)
		}
	}
}

// Golden scenario: 100k principal, 10k/month, 10% rate compounded
// monthly over 10 years, 5% inflation, 13% tax. Reference values come
// from an independent run of the same arithmetic in identical operation
// order.
func TestComputeGoldenScenario(t *testing.T) {
	rows, summary := mustCompute(t, baseParams())

	if len(rows) != 10 {
		t.Fatalf("row count = %d, want 10", len(rows))
	}

	checks := []struct {
		name string
		got  float64
		want float64
	}{
		{"FinalAmountNominal", summary.FinalAmountNominal, 2154400.9548361623},
		{"FinalAmountReal", summary.FinalAmountReal, 1322615.2996147864},
		{"TotalContributions", summary.TotalContributions, 1_300_000},
		{"TotalInterest", summary.TotalInterest, 982070.0630300719},
		{"TotalTaxes", summary.TotalTaxes, 127669.10819390934},
		{"Year1.InterestEarned", rows[0].InterestEarned, 17084.510276255067},
		{"Year1.TaxesPaid", rows[0].TaxesPaid, 2220.986335913159},
		{"Year1.EndBalanceNominal", rows[0].EndBalanceNominal, 234863.52394034193},
		{"Year10.StartBalance", rows[9].StartBalance, 1860148.3487020654},
	}
	for _, c := range checks {
		if !approxEqual(c.got, c.want, 1e-9) {
			t.Fatalf("%s = %.6f, want %.6f", c.name, c.got, c.want)
		}
	}

	if summary.CAGR == nil {
		t.Fatal("CAGR is nil for nonzero principal")
	}
	if !approxEqual(*summary.CAGR, 0.3593542623165762, 1e-9) {
		t.Fatalf("CAGR = %.12f, want 0.359354262317", *summary.CAGR)
	}
}

// First-year attribution has no prior rows to subtract, so the year's
// interest must equal the running total exactly.
func TestComputeFirstYearAttribution(t *testing.T) {
	p := baseParams()
	p.InvestmentPeriod = 1
	rows, summary := mustCompute(t, p)

	if rows[0].InterestEarned != summary.TotalInterest {
		t.Fatalf("year 1 interest %.10f != total interest %.10f",
			rows[0].InterestEarned, summary.TotalInterest)
	}
	if rows[0].TaxesPaid != summary.TotalTaxes {
		t.Fatalf("year 1 taxes %.10f != total taxes %.10f",
			rows[0].TaxesPaid, summary.TotalTaxes)
	}
}

func TestComputeSingleYearAnnualCompounding(t *testing.T) {
	p := Parameters{
		InitialInvestment: 50_000,
		InterestRate:      0.10,
		InvestmentPeriod:  1,
		CompoundingFreq:   CompoundAnnually,
	}
	rows, summary := mustCompute(t, p)

	want := 50_000 * 1.10
	if !approxEqual(rows[0].EndBalanceNominal, want, 1e-9) {
		t.Fatalf("end balance = %.6f, want %.6f", rows[0].EndBalanceNominal, want)
	}
	if summary.CAGR == nil {
		t.Fatal("CAGR is nil")
	}
	if !approxEqual(*summary.CAGR, 0.10, 1e-9) {
		t.Fatalf("CAGR = %.12f, want 0.10", *summary.CAGR)
	}
}

func TestComputeZeroPrincipalCAGRUndefined(t *testing.T) {
	p := baseParams()
	p.InitialInvestment = 0
	rows, summary := mustCompute(t, p)

	if len(rows) != p.InvestmentPeriod {
		t.Fatalf("row count = %d, want %d", len(rows), p.InvestmentPeriod)
	}
	if summary.CAGR != nil {
		t.Fatalf("CAGR = %.6f, want nil for zero principal", *summary.CAGR)
	}
}

func TestComputeRejectsInvalidParameters(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Parameters)
		field  string
	}{
		{"zero period", func(p *Parameters) { p.InvestmentPeriod = 0 }, "investment_period"},
		{"negative period", func(p *Parameters) { p.InvestmentPeriod = -3 }, "investment_period"},
		{"bad frequency", func(p *Parameters) { p.CompoundingFreq = 2 }, "compounding_freq"},
		{"negative principal", func(p *Parameters) { p.InitialInvestment = -1 }, "initial_investment"},
		{"negative monthly", func(p *Parameters) { p.MonthlyContribution = -50 }, "monthly_contribution"},
		{"negative yearly", func(p *Parameters) { p.YearlyContribution = -50 }, "yearly_contribution"},
		{"rate above one", func(p *Parameters) { p.InterestRate = 1.5 }, "interest_rate"},
		{"negative inflation", func(p *Parameters) { p.InflationRate = -0.01 }, "inflation_rate"},
		{"tax above one", func(p *Parameters) { p.TaxRate = 1.01 }, "tax_rate"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := baseParams()
			tc.mutate(&p)

			rows, _, err := Compute(p)
			if err == nil {
				t.Fatal("Compute() accepted invalid parameters")
			}
			if rows != nil {
				t.Fatalf("Compute() returned %d rows alongside an error", len(rows))
			}

			var iperr *InvalidParameterError
			if !errors.As(err, &iperr) {
				t.Fatalf("error type = %T, want *InvalidParameterError", err)
			}
			if iperr.Field != tc.field {
				t.Fatalf("error field = %q, want %q", iperr.Field, tc.field)
			}
		})
	}
}

func TestComputeDeterministic(t *testing.T) {
	p := baseParams()
	rows1, s1 := mustCompute(t, p)
	rows2, s2 := mustCompute(t, p)

	if s1.FinalAmountNominal != s2.FinalAmountNominal {
		t.Fatalf("final nominal differs across runs: %v vs %v",
			s1.FinalAmountNominal, s2.FinalAmountNominal)
	}
	for i := range rows1 {
		if rows1[i] != rows2[i] {
			t.Fatalf("row %d differs across runs: %+v vs %+v", i, rows1[i], rows2[i])
		}
	}
}
