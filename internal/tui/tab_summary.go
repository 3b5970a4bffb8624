package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/paycal/internal/cli"
	"github.com/theirongolddev/paycal/internal/pipeline"
	"github.com/theirongolddev/paycal/internal/tui/components"
	"github.com/theirongolddev/paycal/internal/tui/theme"
)

func (a App) renderSummaryTab(cw int) string {
	t := theme.Active
	s := a.summary
	cur := a.cfg.Appearance.Currency
	title := a.nav.Grid().Title

	largest := "—"
	if s.LargestDay != "" {
		largest = string(s.LargestDay)
	}
	metrics := []components.Metric{
		{Label: "Spent", Value: cli.FormatMoney(cur, s.Total), Note: title},
		{Label: "Transactions", Value: cli.FormatNumber(int64(s.Transactions))},
		{Label: "Active days", Value: fmt.Sprintf("%d / %d", s.ActiveDays, s.DaysInMonth)},
		{Label: "Per active day", Value: cli.FormatMoney(cur, s.PerActiveDay), Note: "largest " + largest},
	}

	var b strings.Builder
	if a.isCompactLayout() {
		half := (len(metrics) + 1) / 2
		b.WriteString(components.MetricCardRow(metrics[:half], cw))
		b.WriteString("\n")
		b.WriteString(components.MetricCardRow(metrics[half:], cw))
	} else {
		b.WriteString(components.MetricCardRow(metrics, cw))
	}
	b.WriteString("\n")

	muted := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)

	// Daily spend chart
	chartW := components.CardInnerWidth(cw)
	labels := make([]string, len(s.Days))
	for i, d := range s.Days {
		if d.Day == 1 || d.Day%5 == 0 {
			labels[i] = strconv.Itoa(d.Day)
		}
	}
	chart := muted.Render("No transactions this month.")
	if s.Transactions > 0 {
		chart = components.BarChart(pipeline.DailyTotals(s), labels, t.Accent, chartW, 8)
	}
	b.WriteString(components.ContentCard("Daily spend · "+title, chart, cw))
	b.WriteString("\n")

	// Methods + top days
	var methodsBody strings.Builder
	if len(s.Methods) == 0 {
		methodsBody.WriteString(muted.Render("—"))
	}
	methodW, dayW := cw, cw
	if !a.isCompactLayout() {
		methodW = cw / 2
		dayW = cw - methodW
	}
	labelW := 8
	for _, m := range s.Methods {
		labelW = max(labelW, lipgloss.Width(a.cfg.DisplayName(m.Method)))
	}
	barW := max(components.CardInnerWidth(methodW)-labelW-9, 4)
	for i, m := range s.Methods {
		if i > 0 {
			methodsBody.WriteString("\n")
		}
		methodsBody.WriteString(components.ShareBar(a.cfg.DisplayName(m.Method), m.SharePercent, a.methodColor(m.Method), labelW, barW))
	}
	methodsCard := components.ContentCard("By method", methodsBody.String(), methodW)

	text := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	var topBody strings.Builder
	top := pipeline.TopDays(s, 5)
	if len(top) == 0 {
		topBody.WriteString(muted.Render("—"))
	}
	for i, d := range top {
		if i > 0 {
			topBody.WriteString("\n")
		}
		topBody.WriteString(muted.Render(fmt.Sprintf("%s  ", d.Key)))
		topBody.WriteString(text.Render(fmt.Sprintf("%12s", cli.FormatMoney(cur, d.Total))))
		topBody.WriteString(muted.Render("  " + cli.FormatCount(d.Transactions, "transaction")))
	}
	topCard := components.ContentCard("Top days", topBody.String(), dayW)

	if a.isCompactLayout() {
		b.WriteString(methodsCard)
		b.WriteString("\n")
		b.WriteString(topCard)
	} else {
		b.WriteString(components.CardRow([]string{methodsCard, topCard}))
	}
	return b.String()
}
