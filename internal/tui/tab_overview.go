package tui

import (
	"fmt"
	"strings"

	"github.com/nvasilyev/growcalc/internal/cli"
	"github.com/nvasilyev/growcalc/internal/projection"
	"github.com/nvasilyev/growcalc/internal/tui/components"
	"github.com/nvasilyev/growcalc/internal/tui/theme"
)

func (a App) renderOverviewTab(cw int) string {
	t := theme.Active
	s := a.summary
	rows := a.rows
	var b strings.Builder

	// Row 1: Metric cards
	netInterest := s.TotalInterest - s.TotalTaxes
	contributed := s.TotalContributions - a.params.InitialInvestment
	cagrValue := "n/a"
	cagrDetail := "zero principal"
	if s.CAGR != nil {
		cagrValue = cli.FormatPercent(*s.CAGR)
		cagrDetail = "annualized"
	}

	cards := []struct{ Label, Value, Detail string }{
		{"Final Balance", cli.FormatMoney(s.FinalAmountNominal, a.params.Currency), fmt.Sprintf("real %s", cli.FormatCompact(s.FinalAmountReal))},
		{"Net Interest", cli.FormatMoney(netInterest, a.params.Currency), fmt.Sprintf("taxes %s", cli.FormatCompact(s.TotalTaxes))},
		{"Contributed", cli.FormatMoney(contributed, a.params.Currency), fmt.Sprintf("principal %s", cli.FormatCompact(a.params.InitialInvestment))},
		{"CAGR", cagrValue, cagrDetail},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	// Row 2: Nominal balance by year
	if len(rows) > 0 {
		chartInnerW := components.CardInnerWidth(cw)
		b.WriteString(components.ContentCard(
			fmt.Sprintf("Nominal Balance (%d years)", a.params.InvestmentPeriod),
			components.BarChart(projection.NominalSeries(rows), projection.YearLabels(rows), t.Blue, chartInnerW, 10),
			cw,
		))
		b.WriteString("\n")
	}

	// Row 3: Real balance chart + yearly interest chart
	halves := components.LayoutRow(cw, 2)
	chartH := 8
	if a.isCompactLayout() {
		chartH = 6
	}

	interest := make([]float64, len(rows))
	for i, r := range rows {
		interest[i] = r.InterestEarned - r.TaxesPaid
	}

	realCard := components.ContentCard(
		"Inflation-Adjusted Balance",
		components.BarChart(projection.RealSeries(rows), projection.YearLabels(rows), t.Red, components.CardInnerWidth(halves[0]), chartH),
		halves[0],
	)
	interestCard := components.ContentCard(
		"Net Interest per Year",
		components.BarChart(interest, projection.YearLabels(rows), t.Green, components.CardInnerWidth(halves[1]), chartH),
		halves[1],
	)

	if a.isCompactLayout() {
		b.WriteString(components.ContentCard(
			"Inflation-Adjusted Balance",
			components.BarChart(projection.RealSeries(rows), projection.YearLabels(rows), t.Red, components.CardInnerWidth(cw), chartH),
			cw,
		))
		b.WriteString("\n")
		b.WriteString(components.ContentCard(
			"Net Interest per Year",
			components.BarChart(interest, projection.YearLabels(rows), t.Green, components.CardInnerWidth(cw), chartH),
			cw,
		))
	} else {
		b.WriteString(components.CardRow([]string{realCard, interestCard}))
	}

	return b.String()
}
