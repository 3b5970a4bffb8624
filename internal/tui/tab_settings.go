package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/paycal/internal/calendar"
	"github.com/theirongolddev/paycal/internal/cli"
	"github.com/theirongolddev/paycal/internal/config"
	"github.com/theirongolddev/paycal/internal/tui/components"
	"github.com/theirongolddev/paycal/internal/tui/theme"
)

const (
	settingsFieldWeekStart = iota
	settingsFieldLocale
	settingsFieldTheme
	settingsFieldCurrency
	settingsFieldCount // sentinel
)

// settingsState tracks the settings tab state.
type settingsState struct {
	cursor  int
	editing bool
	input   textinput.Model
}

func (a App) updateSettingsNav(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Up):
		a.settings.cursor = max(a.settings.cursor-1, 0)
	case key.Matches(msg, a.keys.Down):
		a.settings.cursor = min(a.settings.cursor+1, settingsFieldCount-1)
	case key.Matches(msg, a.keys.Left):
		a.cycleSetting(-1)
	case key.Matches(msg, a.keys.Right), key.Matches(msg, a.keys.Open):
		if a.settings.cursor == settingsFieldCurrency {
			return a.settingsStartEdit()
		}
		a.cycleSetting(1)
	}
	return a, nil
}

// cycleSetting steps a choice field through its options and applies it.
func (a *App) cycleSetting(dir int) {
	cfg := a.cfg
	switch a.settings.cursor {
	case settingsFieldWeekStart:
		ws, _ := calendar.ParseWeekStart(cfg.General.WeekStart)
		if ws == calendar.Monday {
			ws = calendar.Sunday
		} else {
			ws = calendar.Monday
		}
		cfg.General.WeekStart = ws.String()
	case settingsFieldLocale:
		names := make([]string, len(calendar.Locales))
		for i, l := range calendar.Locales {
			names[i] = l.Name
		}
		cfg.General.Locale = step(names, calendar.LocaleByName(cfg.General.Locale).Name, dir)
	case settingsFieldTheme:
		cfg.Appearance.Theme = step(theme.Names(), theme.ByName(cfg.Appearance.Theme).Name, dir)
	default:
		return
	}
	a.applySettings(cfg)
}

// step returns the entry dir positions away from cur, wrapping around.
func step(names []string, cur string, dir int) string {
	idx := 0
	for i, n := range names {
		if n == cur {
			idx = i
			break
		}
	}
	n := len(names)
	return names[((idx+dir)%n+n)%n]
}

func (a App) settingsStartEdit() (tea.Model, tea.Cmd) {
	ti := textinput.New()
	ti.CharLimit = 4
	ti.Width = 8
	ti.Placeholder = "R$"
	ti.SetValue(a.cfg.Appearance.Currency)
	ti.Focus()

	a.settings.editing = true
	a.settings.input = ti
	return a, ti.Cursor.BlinkCmd()
}

func (a App) updateSettingsInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		a.settings.editing = false
		if v := strings.TrimSpace(a.settings.input.Value()); v != "" {
			cfg := a.cfg
			cfg.Appearance.Currency = v
			a.applySettings(cfg)
		}
		return a, nil
	case "esc":
		a.settings.editing = false
		return a, nil
	}

	var cmd tea.Cmd
	a.settings.input, cmd = a.settings.input.Update(msg)
	return a, cmd
}

func (a App) renderSettingsTab(cw int) string {
	t := theme.Active
	cfg := a.cfg

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright).Bold(true)
	selectedLabelStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.SurfaceBright).Bold(true)
	accentStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface)
	markerStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.SurfaceBright)

	type field struct {
		label string
		value string
	}

	fields := []field{
		{"Week starts on", cfg.General.WeekStart},
		{"Language", calendar.LocaleByName(cfg.General.Locale).Name},
		{"Theme", theme.Active.Name},
		{"Currency", cfg.Appearance.Currency},
	}

	var formBody strings.Builder
	for i, f := range fields {
		if a.settings.editing && i == a.settings.cursor {
			formBody.WriteString(markerStyle.Render("▸ "))
			formBody.WriteString(accentStyle.Render(fmt.Sprintf("%-16s ", f.label)))
			formBody.WriteString(a.settings.input.View())
			formBody.WriteString("\n")
			continue
		}

		if i == a.settings.cursor {
			marker := markerStyle.Render("▸ ")
			label := selectedLabelStyle.Render(fmt.Sprintf("%-16s ", f.label+":"))
			value := selectedStyle.Render(f.value)
			formBody.WriteString(marker)
			formBody.WriteString(label)
			formBody.WriteString(value)
			usedWidth := lipgloss.Width(marker) + lipgloss.Width(label) + lipgloss.Width(value)
			if padLen := components.CardInnerWidth(cw) - usedWidth; padLen > 0 {
				formBody.WriteString(lipgloss.NewStyle().Background(t.SurfaceBright).Render(strings.Repeat(" ", padLen)))
			}
		} else {
			formBody.WriteString(lipgloss.NewStyle().Background(t.Surface).Render("  "))
			formBody.WriteString(labelStyle.Render(fmt.Sprintf("%-16s ", f.label+":")))
			formBody.WriteString(valueStyle.Render(f.value))
		}
		formBody.WriteString("\n")
	}

	formBody.WriteString("\n")
	formBody.WriteString(labelStyle.Render("[j/k] navigate  [h/l] change  [Enter] edit currency  [Esc] cancel"))

	// Payment methods are edited in the config file
	var methodsBody strings.Builder
	for i, m := range cfg.Methods {
		if i > 0 {
			methodsBody.WriteString("\n")
		}
		dot := lipgloss.NewStyle().Foreground(t.MethodColor(m.Color, i)).Background(t.Surface).Render("● ")
		methodsBody.WriteString(dot)
		methodsBody.WriteString(valueStyle.Render(fmt.Sprintf("%-10s", cfg.DisplayName(m.Name))))
		methodsBody.WriteString(labelStyle.Render(m.Name))
	}

	var infoBody strings.Builder
	infoBody.WriteString(labelStyle.Render("Config file:   ") + valueStyle.Render(config.ConfigPath()) + "\n")
	infoBody.WriteString(labelStyle.Render("Data file:     ") + valueStyle.Render(config.DataPath(cfg)) + "\n")
	infoBody.WriteString(labelStyle.Render("Recorded days: ") + valueStyle.Render(cli.FormatNumber(int64(a.ledger.Len()))))

	var b strings.Builder
	b.WriteString(components.ContentCard("Settings", formBody.String(), cw))
	b.WriteString("\n")
	b.WriteString(components.ContentCard("Payment methods", methodsBody.String(), cw))
	b.WriteString("\n")
	b.WriteString(components.ContentCard("General", infoBody.String(), cw))

	return b.String()
}
