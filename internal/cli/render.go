package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/paycal/internal/calendar"
	"github.com/theirongolddev/paycal/internal/tui/theme"
)

// Styles follow theme.Active so the CLI matches the configured theme.
func titleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(theme.Active.TextPrimary).Align(lipgloss.Center)
}

func headerStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(theme.Active.Accent)
}

func valueStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Active.TextPrimary)
}

func mutedStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Active.TextMuted)
}

func dimStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Active.TextDim)
}

// Table represents a bordered text table for CLI output.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
	Widths  []int // optional column widths, auto-calculated if nil
	// LeftCols is the number of leading left-aligned columns; the rest are
	// right-aligned. Zero means one.
	LeftCols int
}

// RenderTitle renders a centered title bar in a bordered box.
func RenderTitle(title string) string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Active.Border).
		Width(42).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(titleStyle().Render(title))
}

// RenderTable renders a bordered table with headers and rows. A row holding
// the single cell "---" renders as a separator.
func RenderTable(t Table) string {
	if len(t.Rows) == 0 && len(t.Headers) == 0 {
		return ""
	}

	numCols := len(t.Headers)
	if numCols == 0 && len(t.Rows) > 0 {
		numCols = len(t.Rows[0])
	}
	left := t.LeftCols
	if left <= 0 {
		left = 1
	}

	widths := make([]int, numCols)
	if t.Widths != nil {
		copy(widths, t.Widths)
	} else {
		for i, h := range t.Headers {
			widths[i] = max(widths[i], lipgloss.Width(h))
		}
		for _, row := range t.Rows {
			for i, cell := range row {
				if i < numCols {
					widths[i] = max(widths[i], lipgloss.Width(cell))
				}
			}
		}
	}

	dim := dimStyle()
	rule := func(l, mid, r string) string {
		var b strings.Builder
		b.WriteString(dim.Render(l))
		for i, w := range widths {
			b.WriteString(dim.Render(strings.Repeat("─", w+2)))
			if i < numCols-1 {
				b.WriteString(dim.Render(mid))
			}
		}
		b.WriteString(dim.Render(r))
		b.WriteString("\n")
		return b.String()
	}
	pad := func(s string, w int, alignLeft bool) string {
		gap := strings.Repeat(" ", max(0, w-lipgloss.Width(s)))
		if alignLeft {
			return " " + s + gap + " "
		}
		return " " + gap + s + " "
	}

	var b strings.Builder
	if t.Title != "" {
		b.WriteString("  ")
		b.WriteString(headerStyle().Render(t.Title))
		b.WriteString("\n")
	}

	b.WriteString(rule("╭", "┬", "╮"))

	if len(t.Headers) > 0 {
		b.WriteString(dim.Render("│"))
		for i, h := range t.Headers {
			b.WriteString(headerStyle().Render(pad(h, widths[i], true)))
			if i < numCols-1 {
				b.WriteString(dim.Render("│"))
			}
		}
		b.WriteString(dim.Render("│"))
		b.WriteString("\n")
		b.WriteString(rule("├", "┼", "┤"))
	}

	for _, row := range t.Rows {
		if len(row) == 1 && row[0] == "---" {
			b.WriteString(rule("├", "┼", "┤"))
			continue
		}

		b.WriteString(dim.Render("│"))
		for i := 0; i < numCols; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			b.WriteString(valueStyle().Render(pad(cell, widths[i], i < left)))
			if i < numCols-1 {
				b.WriteString(dim.Render("│"))
			}
		}
		b.WriteString(dim.Render("│"))
		b.WriteString("\n")
	}

	b.WriteString(rule("╰", "┴", "╯"))
	return b.String()
}

// RenderSparkline generates a unicode block sparkline from a series of values.
func RenderSparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}

	blocks := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	peak := values[0]
	for _, v := range values[1:] {
		peak = max(peak, v)
	}
	if peak == 0 {
		peak = 1
	}

	var b strings.Builder
	for _, v := range values {
		idx := int(v / peak * float64(len(blocks)-1))
		idx = min(max(idx, 0), len(blocks)-1)
		b.WriteRune(blocks[idx])
	}
	return b.String()
}

// RenderHorizontalBar renders a labelled horizontal bar chart entry.
func RenderHorizontalBar(label string, value, maxValue float64, maxWidth int, color lipgloss.Color) string {
	barLen := 0
	if maxValue > 0 {
		barLen = max(0, int(value/maxValue*float64(maxWidth)))
	}
	bar := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", barLen))
	track := dimStyle().Render(strings.Repeat("░", max(0, maxWidth-barLen)))
	return fmt.Sprintf("  %s %s%s", label, bar, track)
}

// ColorFunc maps a method name to its indicator color.
type ColorFunc func(method string) lipgloss.Color

// RenderMonth renders a month grid: a title, weekday headers and one row
// per week. Each day shows its number followed by one dot per distinct
// method. Today is bold in the accent color; the selected day is reversed.
func RenderMonth(g calendar.Grid, colorOf ColorFunc, selected int) string {
	const cellW = 7

	var b strings.Builder
	b.WriteString(RenderTitle(g.Title))
	b.WriteString("\n")

	head := headerStyle()
	for _, h := range g.Headers {
		b.WriteString(head.Render(fmt.Sprintf("%-*s", cellW, h)))
	}
	b.WriteString("\n")

	for _, row := range g.Rows() {
		for _, c := range row {
			b.WriteString(renderDayCell(c, colorOf, selected, cellW))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func renderDayCell(c calendar.Cell, colorOf ColorFunc, selected, width int) string {
	if c.Blank {
		return strings.Repeat(" ", width)
	}

	num := fmt.Sprintf("%2d", c.Day)
	style := valueStyle()
	switch {
	case c.Day == selected:
		style = style.Reverse(true)
	case c.Today:
		style = style.Bold(true).Foreground(theme.Active.Accent)
	}
	cell := style.Render(num)

	dots := 0
	for _, m := range c.Methods {
		if dots == width-4 {
			cell += mutedStyle().Render("+")
			dots++
			break
		}
		color := theme.Active.TextMuted
		if colorOf != nil {
			color = colorOf(m)
		}
		cell += lipgloss.NewStyle().Foreground(color).Render("•")
		dots++
	}
	return cell + strings.Repeat(" ", max(0, width-2-dots))
}
