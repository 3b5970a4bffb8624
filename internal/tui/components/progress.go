package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/paycal/internal/tui/theme"
)

// ShareBar renders a labelled bar for a 0-100 share, e.g. one payment
// method's part of the month total.
func ShareBar(label string, pct float64, color lipgloss.Color, labelW, barWidth int) string {
	t := theme.Active
	pct = min(max(pct, 0), 100)

	bar := progress.New(
		progress.WithSolidFill(string(color)),
		progress.WithWidth(max(barWidth, 4)),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	pctStyle := lipgloss.NewStyle().Foreground(color).Background(t.Surface).Bold(true)
	space := lipgloss.NewStyle().Background(t.Surface).Render(" ")

	return labelStyle.Render(fmt.Sprintf("%-*s", labelW, label)) +
		space +
		bar.ViewAs(pct/100) +
		space +
		pctStyle.Render(fmt.Sprintf("%5.1f%%", pct))
}
