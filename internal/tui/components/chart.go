package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/paycal/internal/tui/theme"
)

var blocks = []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Sparkline renders a one-line unicode sparkline from values.
func Sparkline(values []float64, color lipgloss.Color) string {
	if len(values) == 0 {
		return ""
	}
	peak := maxOf(values)

	var buf strings.Builder
	for _, v := range values {
		idx := 1 + int(v/peak*float64(len(blocks)-2))
		buf.WriteRune(blocks[min(max(idx, 1), len(blocks)-1)])
	}
	return lipgloss.NewStyle().Foreground(color).Background(theme.Active.Surface).Render(buf.String())
}

// BarChart renders vertical bars, one per value, scaled to height rows with
// eighth-block precision. A y-axis shows the peak and labels are placed
// under the bars where they fit. Narrow areas fall back to a sparkline.
func BarChart(values []float64, labels []string, color lipgloss.Color, width, height int) string {
	if len(values) == 0 {
		return ""
	}
	if width < 15 || height < 3 {
		return Sparkline(values, color)
	}

	t := theme.Active
	surface := lipgloss.NewStyle().Background(t.Surface)
	axis := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	bar := lipgloss.NewStyle().Foreground(color).Background(t.Surface)

	peak := maxOf(values)
	top := niceCeil(peak)
	yLabel := formatAxis(top)
	labelW := max(len(yLabel), 3)

	n := len(values)
	chartW := width - labelW - 1
	barW := max(1, min(4, (chartW+1)/n-1))
	gap := 1
	if (barW+gap)*n-gap > chartW {
		gap = 0
		barW = max(1, chartW/n)
	}
	axisLen := min(chartW, n*(barW+gap)-gap)

	var b strings.Builder
	for row := height; row >= 1; row-- {
		switch row {
		case height:
			b.WriteString(axis.Render(fmt.Sprintf("%*s│", labelW, yLabel)))
		default:
			b.WriteString(axis.Render(fmt.Sprintf("%*s│", labelW, "")))
		}

		used := 0
		for i, v := range values {
			if used+barW > axisLen {
				break
			}
			if i > 0 && gap > 0 {
				b.WriteString(surface.Render(strings.Repeat(" ", gap)))
				used += gap
			}
			// eighths of a row filled by v at this row
			fill := int(math.Round(v/top*float64(height*8))) - (row-1)*8
			cell := blocks[min(max(fill, 0), 8)]
			b.WriteString(bar.Render(strings.Repeat(string(cell), barW)))
			used += barW
		}
		b.WriteString("\n")
	}

	b.WriteString(axis.Render(fmt.Sprintf("%*s└%s", labelW, "0", strings.Repeat("─", axisLen))))

	if len(labels) == n {
		line := []rune(strings.Repeat(" ", axisLen))
		next := 0
		for i, lbl := range labels {
			pos := i * (barW + gap)
			r := []rune(lbl)
			if lbl == "" || pos < next || pos+len(r) > axisLen {
				continue
			}
			copy(line[pos:], r)
			next = pos + len(r) + 1
		}
		b.WriteString("\n")
		b.WriteString(surface.Render(strings.Repeat(" ", labelW+1)))
		b.WriteString(axis.Render(strings.TrimRight(string(line), " ")))
	}

	return b.String()
}

func maxOf(values []float64) float64 {
	peak := 0.0
	for _, v := range values {
		peak = max(peak, v)
	}
	if peak == 0 {
		return 1
	}
	return peak
}

// niceCeil rounds v up to 1, 2 or 5 times a power of ten.
func niceCeil(v float64) float64 {
	if v <= 0 {
		return 1
	}
	base := math.Pow(10, math.Floor(math.Log10(v)))
	for _, m := range []float64{1, 2, 5, 10} {
		if v <= m*base {
			return m * base
		}
	}
	return 10 * base
}

func formatAxis(v float64) string {
	switch {
	case v >= 1e6:
		return fmt.Sprintf("%.0fM", v/1e6)
	case v >= 1e3:
		return fmt.Sprintf("%.0fk", v/1e3)
	case v >= 1:
		return fmt.Sprintf("%.0f", v)
	default:
		return fmt.Sprintf("%.2f", v)
	}
}
