// Package tui provides the interactive Bubble Tea dashboard for growcalc.
package tui

import (
	"fmt"
	"strings"

	"github.com/nvasilyev/growcalc/internal/cli"
	"github.com/nvasilyev/growcalc/internal/config"
	"github.com/nvasilyev/growcalc/internal/projection"
	"github.com/nvasilyev/growcalc/internal/tui/components"
	"github.com/nvasilyev/growcalc/internal/tui/theme"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// App is the root Bubble Tea model.
type App struct {
	// Current parameters and the projection computed from them
	ps         config.ParamSet
	params     projection.Parameters
	rows       []projection.YearRow
	summary    projection.Summary
	comp       projection.Composition
	computeErr error

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool

	// Parameter editing (huh form on the Parameters tab).
	// formVals is a pointer so the form and every model copy share
	// the same backing values.
	form     *huh.Form
	formVals *formValues

	// Scrollable yearly table
	table viewport.Model
}

const (
	minTerminalWidth = 70
	compactWidth     = 110
	maxContentWidth  = 160
	minContentHeight = 5

	// tab bar + status bar + table header, rules and hint
	tableOverhead = 6
)

const (
	tabOverview = iota
	tabBreakdown
	tabTable
	tabParams
)

// NewApp creates the TUI model. The projection is cheap enough to
// compute synchronously, so there is no loading state.
func NewApp(ps config.ParamSet) App {
	a := App{ps: ps, table: viewport.New(0, 0)}
	a.recompute()
	return a
}

func (a *App) recompute() {
	a.params = a.ps.ToParameters()
	rows, summary, err := projection.Compute(a.params)
	a.computeErr = err
	if err != nil {
		a.rows = nil
		a.summary = projection.Summary{}
		a.comp = projection.Composition{}
		return
	}
	a.rows = rows
	a.summary = summary
	a.comp = projection.Breakdown(a.params, summary)
	a.syncTable()
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.table.Width = a.contentWidth()
		a.table.Height = a.height - tableOverhead
		if a.table.Height < minContentHeight {
			a.table.Height = minContentHeight
		}
		a.syncTable()
		if a.form != nil {
			a.form = a.form.WithWidth(msg.Width).WithHeight(msg.Height - 4)
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		// Global: quit
		if key == "ctrl+c" {
			return a, tea.Quit
		}

		// The form intercepts all keys while editing parameters
		if a.activeTab == tabParams && a.form != nil {
			return a.updateForm(msg)
		}

		// Help toggle
		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}

		// Dismiss help
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		if key == "q" {
			return a, tea.Quit
		}

		// Tab navigation
		switch key {
		case "left":
			return a.switchTab((a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs))
		case "right":
			return a.switchTab((a.activeTab + 1) % len(components.Tabs))
		}
		if len(key) == 1 {
			if idx := components.TabIdxByKey(rune(key[0])); idx >= 0 {
				return a.switchTab(idx)
			}
		}

		// Remaining keys scroll the yearly table
		if a.activeTab == tabTable {
			var cmd tea.Cmd
			a.table, cmd = a.table.Update(msg)
			return a, cmd
		}

		return a, nil
	}

	// Forward unhandled messages to the form (cursor blinks, etc.)
	if a.activeTab == tabParams && a.form != nil {
		return a.updateForm(msg)
	}

	return a, nil
}

// switchTab changes the active tab, building the parameter form on
// entry so it always starts from the current values.
func (a App) switchTab(idx int) (tea.Model, tea.Cmd) {
	a.activeTab = idx
	if idx == tabParams {
		v := seedFormValues(a.ps)
		a.formVals = &v
		a.form = newParamsForm(a.formVals)
		if a.width > 0 {
			a.form = a.form.WithWidth(a.width).WithHeight(a.height - 4)
		}
		return a, a.form.Init()
	}
	a.form = nil
	return a, nil
}

func (a App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form = f
	}

	if a.form.State == huh.StateCompleted {
		if ps, err := a.formVals.toParamSet(); err == nil {
			a.ps = ps
			a.recompute()
		}
		a.form = nil
		a.activeTab = tabOverview
		return a, nil
	}

	if a.form.State == huh.StateAborted {
		a.form = nil
		a.activeTab = tabOverview
		return a, nil
	}

	return a, cmd
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

func (a App) isCompactLayout() bool {
	return a.contentWidth() < compactWidth
}

// paramsSummary is the short parameter pill shown in the status bar.
func (a App) paramsSummary() string {
	return fmt.Sprintf("%s · %dy · %s · %s",
		a.params.Currency,
		a.params.InvestmentPeriod,
		projection.FreqLabel(a.params.CompoundingFreq),
		cli.FormatPercent(a.params.InterestRate),
	)
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  growcalc needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewHelp() string {
	t := theme.Active
	h := a.height
	w := a.width

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	sectionStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Cyan).
		Background(t.Surface).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Navigation"))
	b.WriteString("\n")
	navBindings := []struct{ key, desc string }{
		{"o b y p", "Jump to tab"},
		{"← →", "Previous / Next tab"},
		{"j k", "Scroll yearly table"},
		{"^d ^u", "Half-page scroll"},
	}
	for _, bind := range navBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Actions"))
	b.WriteString("\n")
	actionBindings := []struct{ key, desc string }{
		{"Enter", "Confirm form field"},
		{"Esc", "Cancel parameter edit"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	}
	for _, bind := range actionBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := components.RenderTabBar(a.activeTab)
	statusBar := components.RenderStatusBar(w, a.paramsSummary())

	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	switch {
	case a.computeErr != nil:
		content = a.renderComputeError(cw)
	case a.activeTab == tabOverview:
		content = a.renderOverviewTab(cw)
	case a.activeTab == tabBreakdown:
		content = a.renderBreakdownTab(cw)
	case a.activeTab == tabTable:
		content = a.renderTableTab(cw, contentH)
	case a.activeTab == tabParams:
		content = a.renderParamsTab(cw)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = fillLinesWithBackground(content, cw, t.Background)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) renderComputeError(cw int) string {
	t := theme.Active
	style := lipgloss.NewStyle().
		Foreground(t.Red).
		Background(t.Background).
		Padding(1, 2)
	return style.Render(fmt.Sprintf("Cannot compute projection: %v\n\nPress p to fix the parameters.", a.computeErr))
}

func (a App) renderParamsTab(cw int) string {
	if a.form != nil {
		return a.form.View()
	}
	return ""
}

// ─── Helpers ────────────────────────────────────────────────────

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	padding := strings.Repeat("\n", h-len(lines))
	return s + padding
}

// fillLinesWithBackground pads each line to width w with background color
// so gaps between cards and empty lines keep the theme background.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		placed := lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
		result.WriteString(placed)
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}
