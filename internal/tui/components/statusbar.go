package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/paycal/internal/tui/theme"
)

// StatusKind selects the color of the status message.
type StatusKind int

// Status kinds.
const (
	StatusInfo StatusKind = iota
	StatusOK
	StatusError
)

// RenderStatusBar renders the bottom bar: key hints on the left and the
// latest status message on the right.
func RenderStatusBar(width int, hints, message string, kind StatusKind) string {
	t := theme.Active

	bg := lipgloss.NewStyle().Background(t.Surface)
	left := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface).Render(" " + hints)

	msgColor := t.TextMuted
	switch kind {
	case StatusOK:
		msgColor = t.StatusOK
	case StatusError:
		msgColor = t.StatusError
	}
	right := ""
	if message != "" {
		right = lipgloss.NewStyle().Foreground(msgColor).Background(t.Surface).Bold(kind == StatusError).
			Render(message + " ")
	}

	padding := max(0, width-lipgloss.Width(left)-lipgloss.Width(right))
	return lipgloss.NewStyle().Width(width).MaxWidth(width).Background(t.Surface).
		Render(left + bg.Render(spaces(padding)) + right)
}

func spaces(n int) string {
	return strings.Repeat(" ", n)
}
