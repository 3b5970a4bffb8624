// Package components provides reusable TUI widgets for the calendar views.
package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/paycal/internal/tui/theme"
)

// Metric is one card of a MetricCardRow.
type Metric struct {
	Label string
	Value string
	Note  string // optional third line
}

// LayoutRow distributes totalWidth into n widths that sum to exactly totalWidth.
// First items absorb the remainder from integer division.
func LayoutRow(totalWidth, n int) []int {
	if n <= 0 {
		return nil
	}
	base := totalWidth / n
	remainder := totalWidth % n
	widths := make([]int, n)
	for i := range widths {
		widths[i] = base
		if i < remainder {
			widths[i]++
		}
	}
	return widths
}

func cardStyle(outerWidth int, border lipgloss.Color) lipgloss.Style {
	t := theme.Active
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		BorderBackground(t.Background).
		Background(t.Surface).
		Width(max(outerWidth-2, 10)).
		Padding(0, 1)
}

// MetricCard renders a small card with a label, a bold value and an
// optional note. outerWidth includes the border.
func MetricCard(m Metric, outerWidth int) string {
	t := theme.Active

	label := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface).Render(m.Label)
	value := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Bold(true).Render(m.Value)
	content := label + "\n" + value
	if m.Note != "" {
		content += "\n" + lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface).Render(m.Note)
	}
	return cardStyle(outerWidth, t.Border).Render(content)
}

// MetricCardRow renders metric cards side by side, summing to totalWidth.
func MetricCardRow(metrics []Metric, totalWidth int) string {
	if len(metrics) == 0 {
		return ""
	}
	widths := LayoutRow(totalWidth, len(metrics))
	rendered := make([]string, len(metrics))
	for i, m := range metrics {
		rendered[i] = MetricCard(m, widths[i])
	}
	return CardRow(rendered)
}

// ContentCard renders a bordered content card with an optional title.
// outerWidth controls the total rendered width including border.
func ContentCard(title, body string, outerWidth int) string {
	return contentCard(title, body, outerWidth, theme.Active.Border)
}

// FocusCard is a ContentCard drawn with the accent border.
func FocusCard(title, body string, outerWidth int) string {
	return contentCard(title, body, outerWidth, theme.Active.BorderAccent)
}

func contentCard(title, body string, outerWidth int, border lipgloss.Color) string {
	t := theme.Active
	content := body
	if title != "" {
		content = lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface).Bold(true).Render(title) +
			"\n" + body
	}
	return cardStyle(outerWidth, border).Render(content)
}

// CardRow joins pre-rendered cards horizontally. Shorter cards are padded
// with the background color so the row has no unstyled gaps.
func CardRow(cards []string) string {
	if len(cards) == 0 {
		return ""
	}
	tallest := 0
	for _, c := range cards {
		tallest = max(tallest, lipgloss.Height(c))
	}
	bg := theme.Active.Background
	padded := make([]string, len(cards))
	for i, c := range cards {
		padded[i] = lipgloss.Place(lipgloss.Width(c), tallest, lipgloss.Left, lipgloss.Top, c,
			lipgloss.WithWhitespaceBackground(bg))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, padded...)
}

// CardInnerWidth returns the usable text width inside a ContentCard
// given its outer width (subtracts border + padding).
func CardInnerWidth(outerWidth int) int {
	return max(outerWidth-4, 10)
}
