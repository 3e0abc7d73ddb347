package tui

import (
	"fmt"
	"strings"

	"github.com/nvasilyev/growcalc/internal/cli"
	"github.com/nvasilyev/growcalc/internal/tui/components"
	"github.com/nvasilyev/growcalc/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// renderCompositionCard shows what the final nominal balance is made of.
func (a App) renderCompositionCard(cw int) string {
	t := theme.Active
	c := a.comp

	total := c.Principal + c.Contributions + c.NetInterest
	parts := []struct {
		label string
		value float64
		color lipgloss.Color
	}{
		{"Principal", c.Principal, t.Blue},
		{"Contributions", c.Contributions, t.Green},
		{"Net Interest", c.NetInterest, t.Yellow},
	}

	maxShare := 0.0
	for _, p := range parts {
		if total > 0 && p.value/total > maxShare {
			maxShare = p.value / total
		}
	}

	innerW := components.CardInnerWidth(cw)
	labelW := 14
	barMax := innerW - labelW - 22
	if barMax < 8 {
		barMax = 8
	}

	labelStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	amountStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	pctStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	var body strings.Builder
	for _, p := range parts {
		share := 0.0
		if total > 0 {
			share = p.value / total
		}
		barLen := 0
		if maxShare > 0 {
			barLen = int(share / maxShare * float64(barMax))
		}
		bar := lipgloss.NewStyle().Foreground(p.color).Background(t.Surface).Render(strings.Repeat("█", barLen))
		fmt.Fprintf(&body, "%s %s %s %s\n",
			labelStyle.Render(fmt.Sprintf("%-*s", labelW, p.label)),
			amountStyle.Render(fmt.Sprintf("%14s", cli.FormatCompact(p.value))),
			bar,
			pctStyle.Render(fmt.Sprintf("%5.1f%%", share*100)))
	}

	return components.ContentCard("Final Balance Composition", body.String(), cw)
}

// renderTotalsCard lists the projection totals as a two-column table.
func (a App) renderTotalsCard(cw int) string {
	t := theme.Active
	s := a.summary
	cur := a.params.Currency

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	taxStyle := lipgloss.NewStyle().Foreground(t.Red).Background(t.Surface)

	lines := []struct {
		label string
		value string
		style lipgloss.Style
	}{
		{"Initial investment", cli.FormatMoney(a.params.InitialInvestment, cur), valueStyle},
		{"Total contributions", cli.FormatMoney(s.TotalContributions, cur), valueStyle},
		{"Interest earned", cli.FormatMoney(s.TotalInterest, cur), valueStyle},
		{"Taxes paid", cli.FormatMoney(s.TotalTaxes, cur), taxStyle},
		{"Final balance (nominal)", cli.FormatMoney(s.FinalAmountNominal, cur), valueStyle},
		{"Final balance (real)", cli.FormatMoney(s.FinalAmountReal, cur), valueStyle},
	}

	var body strings.Builder
	for _, l := range lines {
		fmt.Fprintf(&body, "%s %s\n",
			labelStyle.Render(fmt.Sprintf("%-26s", l.label)),
			l.style.Render(fmt.Sprintf("%18s", l.value)))
	}

	return components.ContentCard("Totals", body.String(), cw)
}

func (a App) renderBreakdownTab(cw int) string {
	var b strings.Builder
	b.WriteString(a.renderCompositionCard(cw))
	b.WriteString("\n")
	if a.isCompactLayout() {
		b.WriteString(a.renderTotalsCard(cw))
		b.WriteString("\n")
		b.WriteString(a.renderTaxCard(cw))
	} else {
		halves := components.LayoutRow(cw, 2)
		totals := a.renderTotalsCard(halves[0])
		taxes := a.renderTaxCard(halves[1])
		b.WriteString(components.CardRow([]string{totals, taxes}))
	}
	return b.String()
}

// renderTaxCard charts taxes paid per year.
func (a App) renderTaxCard(cw int) string {
	t := theme.Active
	taxes := make([]float64, len(a.rows))
	labels := make([]string, len(a.rows))
	for i, r := range a.rows {
		taxes[i] = r.TaxesPaid
		labels[i] = fmt.Sprintf("%d", r.Year)
	}
	return components.ContentCard(
		"Taxes per Year",
		components.BarChart(taxes, labels, t.Red, components.CardInnerWidth(cw), 8),
		cw,
	)
}
