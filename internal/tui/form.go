package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/theirongolddev/paycal/internal/editor"
	"github.com/theirongolddev/paycal/internal/tui/components"
)

// addValues holds the fields bound to the transaction form.
type addValues struct {
	Description string
	Amount      string
	Method      string
	Photo       string
}

func newAddForm(methods []methodOption, vals *addValues) *huh.Form {
	opts := make([]huh.Option[string], len(methods))
	for i, m := range methods {
		opts[i] = huh.NewOption(m.label, m.name)
	}
	if vals.Method == "" && len(methods) > 0 {
		vals.Method = methods[0].name
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Description").
				Placeholder("Coffee").
				CharLimit(120).
				Value(&vals.Description).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return editor.ErrEmptyDescription
					}
					return nil
				}),
			huh.NewInput().
				Title("Amount").
				Placeholder("4.50").
				CharLimit(16).
				Value(&vals.Amount).
				Validate(func(s string) error {
					_, err := editor.ParseAmount(s)
					return err
				}),
			huh.NewSelect[string]().
				Title("Payment method").
				Options(opts...).
				Value(&vals.Method),
			huh.NewInput().
				Title("Receipt photo").
				Description("Optional path to an image").
				Value(&vals.Photo),
		),
	).WithShowHelp(false)
}

type methodOption struct {
	name  string
	label string
}

func (a App) methodOptions() []methodOption {
	out := make([]methodOption, len(a.cfg.Methods))
	for i, m := range a.cfg.Methods {
		out[i] = methodOption{name: m.Name, label: a.cfg.DisplayName(m.Name)}
	}
	return out
}

func (a App) formWidth() int {
	_, dayW, _ := a.calendarLayout(a.contentWidth())
	return components.CardInnerWidth(dayW)
}

// startAddForm opens the transaction form for the selected day.
func (a App) startAddForm() (tea.Model, tea.Cmd) {
	if _, ok := a.nav.Selected(); !ok {
		a.setStatus(editor.ErrNoSelection.Error(), components.StatusError)
		return a, nil
	}
	if len(a.cfg.Methods) == 0 {
		a.setStatus("No payment methods configured", components.StatusError)
		return a, nil
	}
	a.addForm = newAddForm(a.methodOptions(), a.addVals)
	if a.width > 0 {
		a.addForm = a.addForm.WithWidth(a.formWidth())
	}
	return a, a.addForm.Init()
}

func (a App) updateAddForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok && key.Matches(km, a.keys.Back) {
		a.addForm = nil
		a.setStatus("Cancelled", components.StatusInfo)
		return a, nil
	}

	form, cmd := a.addForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.addForm = f
	}

	switch a.addForm.State {
	case huh.StateCompleted:
		a.addForm = nil
		return a.submit()
	case huh.StateAborted:
		a.addForm = nil
		return a, nil
	}
	return a, cmd
}
