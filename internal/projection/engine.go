package projection

import "math"

// YearRow holds the state of the projection after one simulated year.
type YearRow struct {
	Year              int // 1-indexed
	StartBalance      float64
	Contributions     float64 // total added during this year
	InterestEarned    float64 // gross interest credited this year
	TaxesPaid         float64
	EndBalanceNominal float64
	EndBalanceReal    float64 // nominal deflated by the inflation factor
	InflationFactor   float64 // (1 + inflation_rate)^year
}

// Summary aggregates a full projection run.
type Summary struct {
	FinalAmountNominal float64
	FinalAmountReal    float64
	TotalContributions float64 // includes the initial principal
	TotalInterest      float64
	TotalTaxes         float64

	// CAGR is nil when the initial investment is zero, since the growth
	// ratio is undefined. Callers must nil-check before formatting.
	CAGR *float64
}

// Compute runs the projection for p and returns one row per year plus a
// summary. It is a pure function: no I/O, no shared state, and the
// floating-point operation order is fixed so identical inputs always
// produce identical results.
//
// Within each year the balance advances in CompoundingFreq sub-periods.
// Each sub-period first receives an even share of the year's contribution,
// then earns interest on the running balance at rate/freq. Tax is taken
// out of each sub-period's interest before it is credited, so tax drag
// compounds rather than being settled at year end. The taxed amount is
// only subtracted from the interest increment, not withdrawn from the
// balance; this mirrors the behavior of the system this engine models.
func Compute(p Parameters) ([]YearRow, Summary, error) {
	if err := p.Validate(); err != nil {
		return nil, Summary{}, err
	}

	periodRate := p.InterestRate / float64(p.CompoundingFreq)
	balance := p.InitialInvestment
	totalContributions := p.InitialInvestment

	var totalInterest, totalTaxes float64

	rows := make([]YearRow, 0, p.InvestmentPeriod)
	for year := 1; year <= p.InvestmentPeriod; year++ {
		yearContribution := p.YearlyContribution + p.MonthlyContribution*12
		startBalance := balance

		var yearInterest, yearTaxes float64
		for period := 0; period < p.CompoundingFreq; period++ {
			contribution := yearContribution / float64(p.CompoundingFreq)
			balance += contribution
			totalContributions += contribution

			interest := balance * periodRate
			tax := interest * p.TaxRate
			balance += interest - tax
			totalInterest += interest
			totalTaxes += tax
			yearInterest += interest
			yearTaxes += tax
		}

		inflationFactor := math.Pow(1+p.InflationRate, float64(year))

		rows = append(rows, YearRow{
			Year:              year,
			StartBalance:      startBalance,
			Contributions:     yearContribution,
			InterestEarned:    yearInterest,
			TaxesPaid:         yearTaxes,
			EndBalanceNominal: balance,
			EndBalanceReal:    balance / inflationFactor,
			InflationFactor:   inflationFactor,
		})
	}

	last := rows[len(rows)-1]
	summary := Summary{
		FinalAmountNominal: last.EndBalanceNominal,
		FinalAmountReal:    last.EndBalanceReal,
		TotalContributions: totalContributions,
		TotalInterest:      totalInterest,
		TotalTaxes:         totalTaxes,
	}

	if p.InitialInvestment > 0 {
		cagr := math.Pow(balance/p.InitialInvestment, 1/float64(p.InvestmentPeriod)) - 1
		summary.CAGR = &cagr
	}

	return rows, summary, nil
}
