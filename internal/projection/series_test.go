package projection

import "testing"

func TestSeriesAlignment(t *testing.T) {
	rows, _ := mustCompute(t, baseParams())

	nominal := NominalSeries(rows)
	real := RealSeries(rows)
	labels := YearLabels(rows)

	if len(nominal) != len(rows) || len(real) != len(rows) || len(labels) != len(rows) {
		t.Fatalf("series lengths %d/%d/%d, want all %d",
			len(nominal), len(real), len(labels), len(rows))
	}

	for i, r := range rows {
		if nominal[i] != r.EndBalanceNominal {
			t.Fatalf("nominal[%d] = %v, want %v", i, nominal[i], r.EndBalanceNominal)
		}
		if real[i] != r.EndBalanceReal {
			t.Fatalf("real[%d] = %v, want %v", i, real[i], r.EndBalanceReal)
		}
	}
	if labels[0] != "1" || labels[len(labels)-1] != "10" {
		t.Fatalf("labels = %v, want 1..10", labels)
	}
}

func TestBreakdownSumsToFinalGrowth(t *testing.T) {
	p := baseParams()
	_, summary := mustCompute(t, p)

	c := Breakdown(p, summary)

	if c.Principal != p.InitialInvestment {
		t.Fatalf("Principal = %v, want %v", c.Principal, p.InitialInvestment)
	}
	if !approxEqual(c.Contributions, summary.TotalContributions-p.InitialInvestment, 1e-9) {
		t.Fatalf("Contributions = %v, want %v",
			c.Contributions, summary.TotalContributions-p.InitialInvestment)
	}
	if !approxEqual(c.NetInterest, summary.TotalInterest-summary.TotalTaxes, 1e-9) {
		t.Fatalf("NetInterest = %v, want %v",
			c.NetInterest, summary.TotalInterest-summary.TotalTaxes)
	}

	// The three parts account for the final nominal amount.
	total := c.Principal + c.Contributions + c.NetInterest
	if !approxEqual(total, summary.FinalAmountNominal, 1e-9) {
		t.Fatalf("composition total = %.6f, want final nominal %.6f",
			total, summary.FinalAmountNominal)
	}
}
