package theme

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Named resolves a color name from the method catalog against the theme.
// Hex values and ANSI numbers pass through unchanged.
func (t Theme) Named(name string) lipgloss.Color {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "green":
		return t.Dots.Green
	case "blue":
		return t.Dots.Blue
	case "cyan":
		return t.Dots.Cyan
	case "yellow":
		return t.Dots.Yellow
	case "orange":
		return t.Dots.Orange
	case "red":
		return t.Dots.Red
	case "magenta", "purple":
		return t.Dots.Magenta
	case "accent":
		return t.Accent
	case "":
		return ""
	}
	return lipgloss.Color(name)
}

// Palette is the rotation used for methods without a configured color.
func (t Theme) Palette() []lipgloss.Color {
	d := t.Dots
	return []lipgloss.Color{d.Green, d.Blue, d.Cyan, d.Yellow, d.Magenta, d.Orange, d.Red}
}

// MethodColor picks the color for the i-th method of a catalog: the
// configured name when set, else the palette entry.
func (t Theme) MethodColor(configured string, i int) lipgloss.Color {
	if c := t.Named(configured); c != "" {
		return c
	}
	p := t.Palette()
	if i < 0 {
		i = -i
	}
	return p[i%len(p)]
}
