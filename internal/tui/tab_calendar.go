package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/paycal/internal/cli"
	"github.com/theirongolddev/paycal/internal/datekey"
	"github.com/theirongolddev/paycal/internal/editor"
	"github.com/theirongolddev/paycal/internal/tui/components"
	"github.com/theirongolddev/paycal/internal/tui/theme"
)

// Grid card interior offset: border + padding horizontally, border + title
// line vertically.
const (
	gridInsetX = 2
	gridInsetY = 2
)

func (a App) updateCalendar(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.detail {
		return a.updateDetail(msg)
	}

	switch {
	case key.Matches(msg, a.keys.Left):
		a.moveCursor(-1)
	case key.Matches(msg, a.keys.Right):
		a.moveCursor(1)
	case key.Matches(msg, a.keys.Up):
		a.moveCursor(-7)
	case key.Matches(msg, a.keys.Down):
		a.moveCursor(7)
	case key.Matches(msg, a.keys.Open):
		a.openDay()
	case key.Matches(msg, a.keys.Add):
		a.openDay()
		return a.startAddForm()
	default:
		return a.updateMonthKeys(msg)
	}
	return a, nil
}

func (a App) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Back):
		a.closeDay()
	case key.Matches(msg, a.keys.Up):
		a.rowCursor = max(a.rowCursor-1, 0)
	case key.Matches(msg, a.keys.Down):
		a.rowCursor = min(a.rowCursor+1, max(len(a.rows)-1, 0))
	case key.Matches(msg, a.keys.Add):
		return a.startAddForm()
	case key.Matches(msg, a.keys.Delete):
		a.deleteRow()
	}
	return a, nil
}

// moveCursor shifts the highlighted day, crossing into the adjacent month
// when it runs off either end.
func (a *App) moveCursor(delta int) {
	day := a.cursor + delta
	g := a.nav.Grid()
	switch {
	case day < 1:
		a.nav.Advance(-1)
		day += a.nav.Grid().DaysInMonth
	case day > g.DaysInMonth:
		day -= g.DaysInMonth
		a.nav.Advance(1)
	}
	a.cursor = day
	a.recompute()
}

func (a *App) openDay() {
	a.rows = a.editor.Open(a.cursorKey())
	a.detail = true
	a.rowCursor = 0
}

func (a *App) closeDay() {
	a.editor.Close()
	a.detail = false
	a.rows = nil
	a.rowCursor = 0
}

func (a *App) deleteRow() {
	k, ok := a.nav.Selected()
	if !ok || len(a.rows) == 0 {
		return
	}
	removed := a.rows[a.rowCursor]
	a.rows = a.editor.Delete(k, a.rowCursor)
	a.rowCursor = min(a.rowCursor, max(len(a.rows)-1, 0))
	a.recompute()
	a.afterMutation(fmt.Sprintf("Deleted %q", removed.Description))
}

// calendarLayout splits the content width between the grid card and the
// day card. stacked is true when they do not fit side by side.
func (a App) calendarLayout(cw int) (gridW, dayW int, stacked bool) {
	if a.isCompactLayout() {
		return cw, cw, true
	}
	gridW = cw * 3 / 5
	return gridW, cw - gridW, false
}

// dayAt maps a screen position to a day of the displayed grid, or 0.
func (a App) dayAt(x, y int) int {
	gridW, _, _ := a.calendarLayout(a.contentWidth())
	gx := x - a.contentOffsetX() - gridInsetX
	gy := y - headerLines - gridInsetY
	return components.GridDayAt(a.nav.Grid(), gx, gy, components.CardInnerWidth(gridW))
}

func (a App) renderCalendarTab(cw int) string {
	g := a.nav.Grid()
	gridW, dayW, stacked := a.calendarLayout(cw)

	gridBody := components.MonthGrid(g, a.cursor, a.methodColor, components.CardInnerWidth(gridW))
	gridBody += "\n\n" + a.renderLegend()
	gridCard := components.ContentCard(g.Title, gridBody, gridW)

	var dayCard string
	k := a.cursorKey()
	if sel, ok := a.nav.Selected(); ok {
		k = sel
	}
	switch {
	case a.addForm != nil:
		dayCard = components.FocusCard("New transaction · "+string(k), a.addForm.View(), dayW)
	case a.detail:
		dayCard = components.FocusCard(dayTitle(k), a.renderDayRows(a.rows, dayW, true), dayW)
	default:
		dayCard = components.ContentCard(dayTitle(k), a.renderDayRows(a.editor.Rows(k), dayW, false), dayW)
	}

	if stacked {
		return gridCard + "\n" + dayCard
	}
	return components.CardRow([]string{gridCard, dayCard})
}

func dayTitle(k datekey.Key) string {
	tm, err := k.Time(nil)
	if err != nil {
		return string(k)
	}
	return tm.Format("Mon 02 Jan 2006")
}

func (a App) renderLegend() string {
	t := theme.Active
	label := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	parts := make([]string, 0, len(a.cfg.Methods))
	for i, m := range a.cfg.Methods {
		dot := lipgloss.NewStyle().Foreground(theme.Active.MethodColor(m.Color, i)).Background(t.Surface).Render("●")
		parts = append(parts, dot+label.Render(" "+a.cfg.DisplayName(m.Name)))
	}
	return strings.Join(parts, label.Render("   "))
}

func (a App) renderDayRows(rows []editor.Row, outerW int, focused bool) string {
	t := theme.Active
	innerW := components.CardInnerWidth(outerW)
	cur := a.cfg.Appearance.Currency

	muted := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	text := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	selText := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright).Bold(true)
	marker := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.SurfaceBright)

	if len(rows) == 0 {
		hint := "No transactions. Press enter to open, a to add."
		if focused {
			hint = "No transactions. Press a to add."
		}
		return muted.Render(hint)
	}

	amountW := 0
	for _, r := range rows {
		amountW = max(amountW, lipgloss.Width(cli.FormatMoney(cur, r.Amount)))
	}
	const methodW = 6
	descW := max(innerW-2-amountW-methodW-4, 6)

	var b strings.Builder
	var total float64
	for i, r := range rows {
		total += r.Amount
		photo := " "
		if r.PhotoURL != "" {
			photo = "▣"
		}
		line := fmt.Sprintf("%-*s %*s %-*s %s",
			descW, cli.Truncate(r.Description, descW),
			amountW, cli.FormatMoney(cur, r.Amount),
			methodW, cli.Truncate(r.Method, methodW),
			photo)

		if focused && i == a.rowCursor {
			b.WriteString(marker.Render("▸ "))
			b.WriteString(selText.Render(line))
			if pad := innerW - 2 - lipgloss.Width(line); pad > 0 {
				b.WriteString(lipgloss.NewStyle().Background(t.SurfaceBright).Render(strings.Repeat(" ", pad)))
			}
		} else {
			b.WriteString(muted.Render("  "))
			b.WriteString(text.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(muted.Render(fmt.Sprintf("%s · total ", cli.FormatCount(len(rows), "transaction"))))
	b.WriteString(text.Bold(true).Render(cli.FormatMoney(cur, total)))
	return b.String()
}
