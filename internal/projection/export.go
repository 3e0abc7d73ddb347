package projection

import (
	"encoding/csv"
	"io"
	"strconv"
)

// CSVHeader is the stable column order for tabular export. Downstream
// consumers key on these names; do not reorder.
var CSVHeader = []string{
	"Year",
	"Start Balance",
	"Contributions",
	"Interest Earned",
	"Taxes Paid",
	"End Balance Nominal",
	"End Balance Real",
	"Inflation Factor",
}

// WriteCSV serializes rows as a flat delimited table, one line per year.
// Values are raw numbers; display formatting belongs to the caller.
func WriteCSV(w io.Writer, rows []YearRow) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(CSVHeader); err != nil {
		return err
	}

	for _, r := range rows {
		record := []string{
			strconv.Itoa(r.Year),
			formatFloat(r.StartBalance),
			formatFloat(r.Contributions),
			formatFloat(r.InterestEarned),
			formatFloat(r.TaxesPaid),
			formatFloat(r.EndBalanceNominal),
			formatFloat(r.EndBalanceReal),
			formatFloat(r.InflationFactor),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// formatFloat renders a value with the shortest representation that
// round-trips, so exports stay lossless.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
