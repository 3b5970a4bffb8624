package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/theirongolddev/paycal/internal/tui/theme"
)

func init() {
	// Force TrueColor output so ANSI codes are generated in tests
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func TestCardRowBackgroundFill(t *testing.T) {
	theme.SetActive("flexoki-dark")

	shortCard := ContentCard("Short", "Content", 22)
	tallCard := ContentCard("Tall", "Line 1\nLine 2\nLine 3\nLine 4\nLine 5", 22)

	shortLines := len(strings.Split(shortCard, "\n"))
	tallLines := len(strings.Split(tallCard, "\n"))
	if shortLines >= tallLines {
		t.Fatal("short card should be shorter than tall card")
	}

	lines := strings.Split(CardRow([]string{tallCard, shortCard}), "\n")
	if len(lines) != tallLines {
		t.Fatalf("joined height = %d, want %d", len(lines), tallLines)
	}
	for i := shortLines; i < len(lines); i++ {
		if !strings.Contains(lines[i], "\x1b[") {
			t.Fatalf("padding line %d has no background styling: %q", i, lines[i])
		}
	}
}

func TestCardRowWidthConsistency(t *testing.T) {
	theme.SetActive("flexoki-dark")

	joined := CardRow([]string{
		ContentCard("Tall", "A\nB\nC\nD\nE\nF", 20),
		ContentCard("Short", "A", 30),
	})
	lines := strings.Split(joined, "\n")
	want := lipgloss.Width(lines[0])
	for i, line := range lines {
		if w := lipgloss.Width(line); w != want {
			t.Fatalf("line %d width = %d, want %d", i, w, want)
		}
	}
}

func TestMetricCardRowSumsToWidth(t *testing.T) {
	row := MetricCardRow([]Metric{
		{Label: "Total", Value: "R$ 10.00"},
		{Label: "Days", Value: "3", Note: "of 31"},
		{Label: "Avg", Value: "R$ 3.33"},
	}, 61)
	for i, line := range strings.Split(row, "\n") {
		if w := lipgloss.Width(line); w != 61 {
			t.Fatalf("line %d width = %d, want 61", i, w)
		}
	}
}

func TestLayoutRow(t *testing.T) {
	got := LayoutRow(10, 3)
	if len(got) != 3 || got[0] != 4 || got[1] != 3 || got[2] != 3 {
		t.Fatalf("LayoutRow(10, 3) = %v", got)
	}
	if LayoutRow(10, 0) != nil {
		t.Fatal("zero columns should be nil")
	}
}
