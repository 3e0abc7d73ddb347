package projection

import "strconv"

// NominalSeries extracts the (year -> nominal end balance) sequence for
// charting. Index i corresponds to rows[i].
func NominalSeries(rows []YearRow) []float64 {
	vals := make([]float64, len(rows))
	for i, r := range rows {
		vals[i] = r.EndBalanceNominal
	}
	return vals
}

// RealSeries extracts the (year -> real end balance) sequence, aligned
// with NominalSeries.
func RealSeries(rows []YearRow) []float64 {
	vals := make([]float64, len(rows))
	for i, r := range rows {
		vals[i] = r.EndBalanceReal
	}
	return vals
}

// YearLabels returns X-axis labels for the row sequence.
func YearLabels(rows []YearRow) []string {
	labels := make([]string, len(rows))
	for i, r := range rows {
		labels[i] = strconv.Itoa(r.Year)
	}
	return labels
}

// Composition splits the final nominal amount into its three sources:
// what was put in up front, what was contributed along the way, and what
// the money earned net of taxes.
type Composition struct {
	Principal     float64
	Contributions float64 // periodic contributions, excluding principal
	NetInterest   float64 // interest earned minus taxes paid
}

// Breakdown derives the composition of the final amount from a run.
func Breakdown(p Parameters, s Summary) Composition {
	return Composition{
		Principal:     p.InitialInvestment,
		Contributions: s.TotalContributions - p.InitialInvestment,
		NetInterest:   s.TotalInterest - s.TotalTaxes,
	}
}
