package tui

import (
	"fmt"
	"strings"

	"github.com/nvasilyev/growcalc/internal/cli"
	"github.com/nvasilyev/growcalc/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Column widths for the yearly table. Year is left-aligned, amounts
// right-aligned; FormatAmount output for nine-digit balances fits in 15.
const (
	tblYearW   = 4
	tblAmountW = 15
	tblFactorW = 7
)

// syncTable rebuilds the viewport content from the current rows.
// Called after recompute and on resize.
func (a *App) syncTable() {
	if len(a.rows) == 0 {
		a.table.SetContent("")
		return
	}

	t := theme.Active
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	yearStyle := lipgloss.NewStyle().Foreground(t.Cyan).Background(t.Surface)
	realStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)

	var body strings.Builder
	for _, r := range a.rows {
		body.WriteString(yearStyle.Render(fmt.Sprintf("%-*d", tblYearW, r.Year)))
		body.WriteString(rowStyle.Render(fmt.Sprintf(" %*s %*s %*s %*s %*s",
			tblAmountW, cli.FormatAmount(r.StartBalance),
			tblAmountW, cli.FormatAmount(r.Contributions),
			tblAmountW, cli.FormatAmount(r.InterestEarned),
			tblAmountW, cli.FormatAmount(r.TaxesPaid),
			tblAmountW, cli.FormatAmount(r.EndBalanceNominal))))
		body.WriteString(realStyle.Render(fmt.Sprintf(" %*s %*s",
			tblAmountW, cli.FormatAmount(r.EndBalanceReal),
			tblFactorW, cli.FormatFactor(r.InflationFactor))))
		body.WriteString("\n")
	}
	a.table.SetContent(strings.TrimRight(body.String(), "\n"))
}

func (a App) renderTableTab(cw, contentH int) string {
	t := theme.Active

	headerStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)

	header := headerStyle.Render(fmt.Sprintf("%-*s %*s %*s %*s %*s %*s %*s %*s",
		tblYearW, "Year",
		tblAmountW, "Start",
		tblAmountW, "Contrib",
		tblAmountW, "Interest",
		tblAmountW, "Taxes",
		tblAmountW, "End Nominal",
		tblAmountW, "End Real",
		tblFactorW, "Infl."))

	lineW := tblYearW + 6*(tblAmountW+1) + tblFactorW + 1
	if lineW > cw {
		lineW = cw
	}
	rule := mutedStyle.Render(strings.Repeat("─", lineW))

	hint := mutedStyle.Render(fmt.Sprintf("  %d years · j/k to scroll", len(a.rows)))

	return strings.Join([]string{header, rule, a.table.View(), rule, hint}, "\n")
}
