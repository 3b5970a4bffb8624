package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/theirongolddev/paycal/internal/calendar"
	"github.com/theirongolddev/paycal/internal/config"
	"github.com/theirongolddev/paycal/internal/tui/components"
	"github.com/theirongolddev/paycal/internal/tui/theme"
)

// setupValues holds the fields bound to the first-run form.
type setupValues struct {
	WeekStart string
	Locale    string
	Theme     string
	Currency  string
}

func (v setupValues) apply(cfg config.Config) config.Config {
	if v.WeekStart != "" {
		cfg.General.WeekStart = v.WeekStart
	}
	if v.Locale != "" {
		cfg.General.Locale = v.Locale
	}
	if v.Theme != "" {
		cfg.Appearance.Theme = v.Theme
	}
	if c := strings.TrimSpace(v.Currency); c != "" {
		cfg.Appearance.Currency = c
	}
	return cfg
}

func newSetupForm(cfg config.Config, vals *setupValues) *huh.Form {
	*vals = setupValues{
		WeekStart: cfg.General.WeekStart,
		Locale:    cfg.General.Locale,
		Theme:     cfg.Appearance.Theme,
		Currency:  cfg.Appearance.Currency,
	}

	locales := make([]huh.Option[string], len(calendar.Locales))
	for i, l := range calendar.Locales {
		locales[i] = huh.NewOption(l.Name, l.Name)
	}
	themes := huh.NewOptions(theme.Names()...)

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to paycal").
				Description(fmt.Sprintf("Settings are saved to %s.\nRun `paycal setup` anytime to change them.", config.ConfigPath())),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Weeks start on").
				Options(
					huh.NewOption("Monday", calendar.Monday.String()),
					huh.NewOption("Sunday", calendar.Sunday.String()),
				).
				Value(&vals.WeekStart),
			huh.NewSelect[string]().
				Title("Language").
				Options(locales...).
				Value(&vals.Locale),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themes...).
				Value(&vals.Theme),
			huh.NewInput().
				Title("Currency symbol").
				Placeholder("R$").
				CharLimit(4).
				Value(&vals.Currency),
		),
	).WithShowHelp(false)
}

// RunSetup runs the first-run form on its own and returns the updated
// config. It does not save.
func RunSetup(cfg config.Config) (config.Config, error) {
	var vals setupValues
	if err := newSetupForm(cfg, &vals).Run(); err != nil {
		return cfg, err
	}
	return vals.apply(cfg), nil
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	if a.setupForm.State == huh.StateCompleted {
		a.applySettings(a.setupVals.apply(a.cfg))
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	if a.setupForm.State == huh.StateAborted {
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	return a, cmd
}

// applySettings makes cfg live and saves the fields that changed.
func (a *App) applySettings(cfg config.Config) {
	prev := a.cfg
	a.cfg = cfg
	theme.SetActive(cfg.Appearance.Theme)

	opts, err := calendar.OptionsFor(cfg.General.WeekStart, cfg.General.Locale)
	if err != nil {
		a.log.Warn("invalid week start, using monday", "error", err)
	}
	*a.grid = opts
	a.nav.Rebuild()
	a.recompute()

	if err := config.SaveChanges(prev, cfg); err != nil {
		a.log.Error("saving config failed", "error", err)
		a.setStatus("Settings not saved: "+err.Error(), components.StatusError)
		return
	}
	a.setStatus("Settings saved", components.StatusOK)
}
