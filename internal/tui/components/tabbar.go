package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/paycal/internal/tui/theme"
)

// Tab represents a single tab in the tab bar.
type Tab struct {
	Name   string
	Key    rune
	KeyPos int // position of the shortcut letter in the name (-1 if not in name)
}

// Tabs defines all available tabs.
var Tabs = []Tab{
	{Name: "Calendar", Key: 'c', KeyPos: 0},
	{Name: "Summary", Key: 's', KeyPos: 0},
	{Name: "Settings", Key: 'x', KeyPos: -1}, // x is not in "Settings"
}

// TabVisualWidth returns the rendered width of a tab, including padding.
func TabVisualWidth(tab Tab, active bool) int {
	w := lipgloss.Width(tab.Name) + 2
	if !active && tab.KeyPos < 0 {
		w += 3 // "[x]"
	}
	return w
}

// RenderTabBar renders the tab bar with the given active index, followed
// by a right-aligned title.
func RenderTabBar(activeIdx int, width int, title string) string {
	t := theme.Active

	activeStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceHover).Bold(true)
	inactiveStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	keyStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	dimKeyStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	sepStyle := lipgloss.NewStyle().Foreground(t.Border).Background(t.Surface)

	parts := make([]string, 0, len(Tabs))
	for i, tab := range Tabs {
		if i == activeIdx {
			parts = append(parts, activeStyle.Render(" "+tab.Name+" "))
			continue
		}
		var rendered string
		if tab.KeyPos >= 0 && tab.KeyPos < len(tab.Name) {
			rendered = inactiveStyle.Render(" "+tab.Name[:tab.KeyPos]) +
				keyStyle.Render(string(tab.Name[tab.KeyPos])) +
				inactiveStyle.Render(tab.Name[tab.KeyPos+1:]+" ")
		} else {
			rendered = inactiveStyle.Render(" "+tab.Name) +
				dimKeyStyle.Render("[") + keyStyle.Render(string(tab.Key)) + dimKeyStyle.Render("]") +
				inactiveStyle.Render(" ")
		}
		parts = append(parts, rendered)
	}

	bar := strings.Join(parts, sepStyle.Render("│"))
	titleStr := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true).Render(title + " ")
	gap := max(0, width-lipgloss.Width(bar)-lipgloss.Width(titleStr))
	return lipgloss.NewStyle().Width(width).MaxWidth(width).Background(t.Surface).
		Render(bar + lipgloss.NewStyle().Background(t.Surface).Render(strings.Repeat(" ", gap)) + titleStr)
}

// TabIdxByKey returns the tab index for a given key press, or -1.
func TabIdxByKey(key rune) int {
	for i, tab := range Tabs {
		if tab.Key == key {
			return i
		}
	}
	return -1
}
