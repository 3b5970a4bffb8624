// Package theme defines the color themes shared by the calendar TUI and CLI output.
package theme

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme is a set of color roles. Surfaces go from Background (behind
// cards) to SurfaceBright (cursor and selected rows); text from TextDim to
// TextPrimary.
type Theme struct {
	Name string

	Background    lipgloss.Color
	Surface       lipgloss.Color
	SurfaceHover  lipgloss.Color // active tab
	SurfaceBright lipgloss.Color

	Border       lipgloss.Color
	BorderAccent lipgloss.Color // focused card

	TextDim     lipgloss.Color
	TextMuted   lipgloss.Color
	TextPrimary lipgloss.Color

	Accent       lipgloss.Color // today
	AccentBright lipgloss.Color

	StatusOK    lipgloss.Color
	StatusError lipgloss.Color

	Dots Dots
}

// Dots are the payment method indicator hues. None of them equals the
// theme's Accent, so a dot never reads as the today marker.
type Dots struct {
	Green   lipgloss.Color
	Blue    lipgloss.Color
	Cyan    lipgloss.Color
	Yellow  lipgloss.Color
	Magenta lipgloss.Color
	Orange  lipgloss.Color
	Red     lipgloss.Color
}

// Active is the theme renderers read from.
var Active = FlexokiDark

// FlexokiDark is the default: warm ink on dark paper.
var FlexokiDark = Theme{
	Name:          "flexoki-dark",
	Background:    "#100F0F",
	Surface:       "#1C1B1A",
	SurfaceHover:  "#282726",
	SurfaceBright: "#343331",
	Border:        "#403E3C",
	BorderAccent:  "#3AA99F",
	TextDim:       "#575653",
	TextMuted:     "#878580",
	TextPrimary:   "#FFFCF0",
	Accent:        "#3AA99F",
	AccentBright:  "#5BC8BE",
	StatusOK:      "#A3B859",
	StatusError:   "#D14D41",
	Dots: Dots{
		Green:   "#879A39",
		Blue:    "#4385BE",
		Cyan:    "#87D3C3",
		Yellow:  "#D0A215",
		Magenta: "#CE5D97",
		Orange:  "#DA702C",
		Red:     "#D14D41",
	},
}

// FlexokiLight is FlexokiDark printed on paper, for light terminals.
var FlexokiLight = Theme{
	Name:          "flexoki-light",
	Background:    "#FFFCF0",
	Surface:       "#F2F0E5",
	SurfaceHover:  "#E6E4D9",
	SurfaceBright: "#DAD8CE",
	Border:        "#CECDC3",
	BorderAccent:  "#24837B",
	TextDim:       "#B7B5AC",
	TextMuted:     "#6F6E69",
	TextPrimary:   "#100F0F",
	Accent:        "#24837B",
	AccentBright:  "#1C6C66",
	StatusOK:      "#536907",
	StatusError:   "#AF3029",
	Dots: Dots{
		Green:   "#66800B",
		Blue:    "#205EA6",
		Cyan:    "#3AA99F",
		Yellow:  "#AD8301",
		Magenta: "#A02F6F",
		Orange:  "#BC5215",
		Red:     "#AF3029",
	},
}

// CatppuccinMocha is the mocha flavor; Accent is mauve so blue stays free
// for a method.
var CatppuccinMocha = Theme{
	Name:          "catppuccin-mocha",
	Background:    "#1E1E2E",
	Surface:       "#313244",
	SurfaceHover:  "#45475A",
	SurfaceBright: "#585B70",
	Border:        "#585B70",
	BorderAccent:  "#CBA6F7",
	TextDim:       "#6C7086",
	TextMuted:     "#A6ADC8",
	TextPrimary:   "#CDD6F4",
	Accent:        "#CBA6F7",
	AccentBright:  "#DDC7FA",
	StatusOK:      "#A6E3A1",
	StatusError:   "#F38BA8",
	Dots: Dots{
		Green:   "#A6E3A1",
		Blue:    "#89B4FA",
		Cyan:    "#94E2D5",
		Yellow:  "#F9E2AF",
		Magenta: "#F5C2E7",
		Orange:  "#FAB387",
		Red:     "#F38BA8",
	},
}

// Terminal sticks to the 16 ANSI colors. Yellow and cyan dots use the
// bright variants so they differ from orange and the accent.
var Terminal = Theme{
	Name:          "terminal",
	Background:    "0",
	Surface:       "0",
	SurfaceHover:  "8",
	SurfaceBright: "8",
	Border:        "8",
	BorderAccent:  "6",
	TextDim:       "8",
	TextMuted:     "7",
	TextPrimary:   "15",
	Accent:        "6",
	AccentBright:  "14",
	StatusOK:      "10",
	StatusError:   "9",
	Dots: Dots{
		Green:   "2",
		Blue:    "4",
		Cyan:    "14",
		Yellow:  "11",
		Magenta: "5",
		Orange:  "3",
		Red:     "1",
	},
}

// All lists the selectable themes in settings order.
var All = []Theme{FlexokiDark, FlexokiLight, CatppuccinMocha, Terminal}

// Names returns the names of All, in order.
func Names() []string {
	names := make([]string, len(All))
	for i, t := range All {
		names[i] = t.Name
	}
	return names
}

// ByName looks a theme up case-insensitively, defaulting to FlexokiDark.
func ByName(name string) Theme {
	name = strings.TrimSpace(name)
	for _, t := range All {
		if strings.EqualFold(t.Name, name) {
			return t
		}
	}
	return FlexokiDark
}

// SetActive switches the theme used by every renderer.
func SetActive(name string) {
	Active = ByName(name)
}
