package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/paycal/internal/calendar"
	"github.com/theirongolddev/paycal/internal/tui/theme"
)

// Month grid geometry: a header line, then two lines per week
// (day number, method dots).
const (
	GridHeaderLines = 1
	GridRowLines    = 2
	minCellWidth    = 5
	maxCellWidth    = 14
)

// GridCellWidth returns the column width used for a grid of totalWidth.
func GridCellWidth(totalWidth int) int {
	return min(max(totalWidth/7, minCellWidth), maxCellWidth)
}

// MonthGrid renders a calendar.Grid. cursor is the highlighted day (0 for
// none); colorOf maps a method name to its indicator color.
func MonthGrid(g calendar.Grid, cursor int, colorOf func(string) lipgloss.Color, totalWidth int) string {
	t := theme.Active
	cw := GridCellWidth(totalWidth)

	surface := lipgloss.NewStyle().Background(t.Surface)
	head := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface).Bold(true).Width(cw)

	var b strings.Builder
	for _, h := range g.Headers {
		b.WriteString(head.Render(" " + h))
	}

	for _, row := range g.Rows() {
		var top, bottom strings.Builder
		for _, c := range row {
			num, dots := dayCell(c, cursor, colorOf, cw)
			top.WriteString(num)
			bottom.WriteString(dots)
		}
		// pad a short final week
		for i := len(row); i < 7; i++ {
			top.WriteString(surface.Render(strings.Repeat(" ", cw)))
			bottom.WriteString(surface.Render(strings.Repeat(" ", cw)))
		}
		b.WriteString("\n")
		b.WriteString(top.String())
		b.WriteString("\n")
		b.WriteString(bottom.String())
	}
	return b.String()
}

func dayCell(c calendar.Cell, cursor int, colorOf func(string) lipgloss.Color, cw int) (string, string) {
	t := theme.Active
	bg := t.Surface
	if !c.Blank && c.Day == cursor {
		bg = t.SurfaceBright
	}
	fill := lipgloss.NewStyle().Background(bg)

	if c.Blank {
		blank := fill.Render(strings.Repeat(" ", cw))
		return blank, blank
	}

	numStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(bg)
	if c.Today {
		numStyle = numStyle.Foreground(t.AccentBright).Bold(true).Underline(true)
	}
	if c.Day == cursor {
		numStyle = numStyle.Bold(true)
	}
	num := fill.Render(" ") + numStyle.Render(fmt.Sprintf("%2d", c.Day))
	num += fill.Render(strings.Repeat(" ", max(0, cw-3)))

	room := cw - 2
	var dots strings.Builder
	used := 0
	for i, m := range c.Methods {
		if used+2 > room {
			dots.WriteString(lipgloss.NewStyle().Foreground(t.TextMuted).Background(bg).Render("+"))
			used++
			break
		}
		color := t.TextMuted
		if colorOf != nil {
			color = colorOf(m)
		}
		dots.WriteString(lipgloss.NewStyle().Foreground(color).Background(bg).Render("●"))
		used++
		if i < len(c.Methods)-1 {
			dots.WriteString(fill.Render(" "))
			used++
		}
	}
	line := fill.Render(" ") + dots.String() + fill.Render(strings.Repeat(" ", max(0, cw-1-used)))
	return num, line
}

// GridDayAt maps a point relative to the top-left of a rendered MonthGrid
// to a day number, or 0 when the point is on a header or blank cell.
func GridDayAt(g calendar.Grid, x, y, totalWidth int) int {
	cw := GridCellWidth(totalWidth)
	if x < 0 || y < GridHeaderLines || x >= cw*7 {
		return 0
	}
	week := (y - GridHeaderLines) / GridRowLines
	idx := week*7 + x/cw
	if idx < 0 || idx >= len(g.Cells) || g.Cells[idx].Blank {
		return 0
	}
	return g.Cells[idx].Day
}
