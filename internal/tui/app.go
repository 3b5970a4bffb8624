// Package tui provides the interactive Bubble Tea calendar for paycal.
package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/paycal/internal/calendar"
	"github.com/theirongolddev/paycal/internal/config"
	"github.com/theirongolddev/paycal/internal/datekey"
	"github.com/theirongolddev/paycal/internal/editor"
	"github.com/theirongolddev/paycal/internal/ledger"
	"github.com/theirongolddev/paycal/internal/logging"
	"github.com/theirongolddev/paycal/internal/model"
	"github.com/theirongolddev/paycal/internal/nav"
	"github.com/theirongolddev/paycal/internal/photo"
	"github.com/theirongolddev/paycal/internal/pipeline"
	"github.com/theirongolddev/paycal/internal/tui/components"
	"github.com/theirongolddev/paycal/internal/tui/theme"
)

const (
	tabCalendar = iota
	tabSummary
	tabSettings
)

const (
	minTerminalWidth = 60
	compactWidth     = 100
	maxContentWidth  = 160
	minContentHeight = 5

	headerLines  = 1
	photoTimeout = 30 * time.Second
)

// photoResolvedMsg carries a finished photo read back to Update, where the
// pending submission is recorded.
type photoResolvedMsg struct {
	pending editor.Pending
	result  photo.Result
}

// Options configures NewApp.
type Options struct {
	Config    config.Config
	Ledger    *ledger.Ledger
	Photos    photo.Resolver // nil reads from disk
	Now       func() time.Time
	NeedSetup bool
	Log       *slog.Logger
}

// App is the root Bubble Tea model.
type App struct {
	cfg    config.Config
	ledger *ledger.Ledger
	nav    *nav.Controller
	editor *editor.Editor
	log    *slog.Logger
	now    func() time.Time
	grid   *calendar.Options // read by the nav build func

	summary model.MonthSummary

	keys    KeyMap
	help    help.Model
	spinner spinner.Model

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool

	// Calendar tab
	cursor    int // highlighted day of the displayed month
	detail    bool
	rows      []editor.Row
	rowCursor int

	// Transaction form
	addForm    *huh.Form
	addVals    *addValues
	submitting bool

	settings settingsState

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals *setupValues
	needSetup bool

	status     string
	statusKind components.StatusKind
}

// NewApp creates a new TUI app model displaying the current month.
func NewApp(opts Options) App {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	logFor := func(component string) *slog.Logger {
		if opts.Log != nil {
			return opts.Log
		}
		return logging.For(component)
	}
	log := logFor(logging.ComponentTUI)
	theme.SetActive(opts.Config.Appearance.Theme)

	gridOpts, err := calendar.OptionsFor(opts.Config.General.WeekStart, opts.Config.General.Locale)
	if err != nil {
		log.Warn("invalid week start in config, using monday", "error", err)
	}
	grid := &gridOpts

	l := opts.Ledger
	build := func(year, month0 int, today time.Time) calendar.Grid {
		return calendar.Build(year, month0, today, l, *grid)
	}
	n := nav.NewToday(build, now, logFor(logging.ComponentNav))
	ed := editor.New(l, n, opts.Photos, logFor(logging.ComponentEditor))

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent).Background(theme.Active.Surface)

	a := App{
		cfg:       opts.Config,
		ledger:    l,
		nav:       n,
		editor:    ed,
		log:       log,
		now:       now,
		grid:      grid,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		spinner:   sp,
		cursor:    now().Day(),
		needSetup: opts.NeedSetup,
		addVals:   &addValues{},
		setupVals: &setupValues{},
	}
	if a.needSetup {
		a.setupForm = newSetupForm(a.cfg, a.setupVals)
	}
	a.recompute()
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.EnableMouseCellMotion}
	if a.setupForm != nil {
		cmds = append(cmds, a.setupForm.Init())
	}
	return tea.Batch(cmds...)
}

// recompute refreshes everything derived from the ledger and the displayed
// month: the summary, the cursor bounds and the open day's rows.
func (a *App) recompute() {
	g := a.nav.Grid()
	a.summary = pipeline.AggregateMonth(a.ledger, g.Year, g.Month0)

	a.cursor = min(max(a.cursor, 1), g.DaysInMonth)

	if k, ok := a.nav.Selected(); ok && a.detail {
		a.rows = a.editor.Rows(k)
		a.rowCursor = min(a.rowCursor, max(len(a.rows)-1, 0))
	}
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		if a.addForm != nil {
			a.addForm = a.addForm.WithWidth(a.formWidth())
		}
		return a, nil

	case photoResolvedMsg:
		return a.complete(msg.pending, msg.result), nil

	case spinner.TickMsg:
		if a.submitting {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil

	case tea.MouseMsg:
		return a.updateMouse(msg)

	case tea.KeyMsg:
		if key.Matches(msg, a.keys.ForceQuit) {
			return a, tea.Quit
		}

		// First-run setup wizard intercepts all keys
		if a.needSetup && a.setupForm != nil {
			return a.updateSetupForm(msg)
		}

		// Nothing else touches the ledger while a submission is pending
		if a.submitting {
			return a, nil
		}

		if a.addForm != nil {
			return a.updateAddForm(msg)
		}

		if a.activeTab == tabSettings && a.settings.editing {
			return a.updateSettingsInput(msg)
		}

		if key.Matches(msg, a.keys.Help) {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		if key.Matches(msg, a.keys.Quit) {
			if a.detail {
				a.closeDay()
				return a, nil
			}
			return a, tea.Quit
		}

		if !a.detail {
			switch {
			case key.Matches(msg, a.keys.NextTab):
				a.activeTab = (a.activeTab + 1) % len(components.Tabs)
				return a, nil
			case key.Matches(msg, a.keys.PrevTab):
				a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
				return a, nil
			}
			if r := msg.Runes; msg.Type == tea.KeyRunes && len(r) == 1 {
				if tab := components.TabIdxByKey(r[0]); tab >= 0 {
					a.activeTab = tab
					return a, nil
				}
			}
		}

		switch a.activeTab {
		case tabCalendar:
			return a.updateCalendar(msg)
		case tabSummary:
			return a.updateMonthKeys(msg)
		case tabSettings:
			return a.updateSettingsNav(msg)
		}
		return a, nil
	}

	// Forward unhandled messages to the active form (cursor blinks, etc.)
	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}
	if a.addForm != nil {
		return a.updateAddForm(msg)
	}
	if a.settings.editing {
		var cmd tea.Cmd
		a.settings.input, cmd = a.settings.input.Update(msg)
		return a, cmd
	}

	return a, nil
}

// updateMonthKeys handles month navigation shared by the calendar and
// summary tabs.
func (a App) updateMonthKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.PrevMonth):
		a.changeMonth(-1)
	case key.Matches(msg, a.keys.NextMonth):
		a.changeMonth(1)
	case key.Matches(msg, a.keys.Today):
		a.jumpToToday()
	}
	return a, nil
}

func (a *App) changeMonth(dir int) {
	a.nav.Advance(dir)
	a.recompute()
}

func (a *App) jumpToToday() {
	a.nav.JumpToToday()
	a.cursor = a.now().Day()
	a.recompute()
}

func (a *App) setStatus(msg string, kind components.StatusKind) {
	a.status = msg
	a.statusKind = kind
}

// afterMutation reports the outcome of a ledger write.
func (a *App) afterMutation(okMsg string) {
	if err := a.ledger.Err(); err != nil {
		a.setStatus("Not saved: "+err.Error(), components.StatusError)
		return
	}
	a.setStatus(okMsg, components.StatusOK)
}

// submit validates the filled form and records it, resolving the photo in
// a command when one was given.
func (a App) submit() (tea.Model, tea.Cmd) {
	amount, err := editor.ParseAmount(a.addVals.Amount)
	if err != nil {
		a.setStatus(err.Error(), components.StatusError)
		return a, nil
	}

	p, err := a.editor.Begin(context.Background(), editor.Form{
		Description: a.addVals.Description,
		Amount:      amount,
		Method:      a.addVals.Method,
		PhotoPath:   a.addVals.Photo,
	})
	if err != nil {
		a.setStatus(err.Error(), components.StatusError)
		return a, nil
	}
	*a.addVals = addValues{Method: a.addVals.Method}

	if p.Photo == nil {
		return a.complete(p, photo.Result{}), nil
	}
	a.submitting = true
	a.setStatus("Reading photo", components.StatusInfo)
	return a, tea.Batch(awaitPhotoCmd(p), a.spinner.Tick)
}

func awaitPhotoCmd(p editor.Pending) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), photoTimeout)
		defer cancel()
		return photoResolvedMsg{pending: p, result: photo.Await(ctx, p.Photo)}
	}
}

// complete records a resolved submission. The editor closes the day.
func (a App) complete(p editor.Pending, res photo.Result) App {
	k := a.editor.Complete(p, res)
	a.submitting = false
	a.detail = false
	a.rows = nil
	a.rowCursor = 0
	a.recompute()

	if p.Photo != nil && res.Err != nil {
		a.afterMutation(fmt.Sprintf("Recorded on %s without photo (%v)", k, res.Err))
		return a
	}
	a.afterMutation(fmt.Sprintf("Recorded %q on %s", p.Form.Description, k))
	return a
}

func (a App) contentWidth() int {
	return min(a.width, maxContentWidth)
}

func (a App) isCompactLayout() bool {
	return a.contentWidth() < compactWidth
}

// contentOffsetX is the left margin when content is centered in a wide terminal.
func (a App) contentOffsetX() int {
	return max(0, (a.width-a.contentWidth())/2)
}

// methodColor maps a method name to its indicator color.
func (a App) methodColor(name string) lipgloss.Color {
	for i, m := range a.cfg.Methods {
		if strings.EqualFold(m.Name, name) {
			return theme.Active.MethodColor(m.Color, i)
		}
	}
	return theme.Active.TextMuted
}

func (a App) cursorKey() datekey.Key {
	g := a.nav.Grid()
	return datekey.Encode(g.Year, g.Month0, a.cursor)
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if a.needSetup && a.setupForm != nil {
		return a.setupForm.View()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := max(a.height, 5)
	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  paycal needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)
	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Bold(true)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim)

	h := a.help
	h.ShowAll = true

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")
	b.WriteString(h.View(a.keys))
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render("Tabs: c calendar · s summary · x settings"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(b.String()),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()

	header := components.RenderTabBar(a.activeTab, w, "◈ paycal")

	hints := a.help.ShortHelpView(a.keys.ShortHelp())
	switch {
	case a.submitting:
		hints = a.spinner.View() + " saving…"
	case a.addForm != nil:
		hints = "enter next field · esc cancel"
	case a.detail:
		hints = a.help.ShortHelpView(a.keys.detailKeys())
	}
	statusBar := components.RenderStatusBar(w, hints, a.status, a.statusKind)

	contentH := max(a.height-lipgloss.Height(header)-lipgloss.Height(statusBar), minContentHeight)

	var content string
	switch a.activeTab {
	case tabCalendar:
		content = a.renderCalendarTab(cw)
	case tabSummary:
		content = a.renderSummaryTab(cw)
	case tabSettings:
		content = a.renderSettingsTab(cw)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = fillLinesWithBackground(content, cw, t.Background)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
	return lipgloss.Place(w, a.height, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// ─── Mouse Support ──────────────────────────────────────────────

func (a App) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if a.showHelp || a.submitting || a.addForm != nil || (a.needSetup && a.setupForm != nil) {
		return a, nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if a.detail {
			a.rowCursor = max(a.rowCursor-1, 0)
		} else if a.activeTab != tabSettings {
			a.changeMonth(-1)
		}
		return a, nil

	case tea.MouseButtonWheelDown:
		if a.detail {
			a.rowCursor = min(a.rowCursor+1, max(len(a.rows)-1, 0))
		} else if a.activeTab != tabSettings {
			a.changeMonth(1)
		}
		return a, nil

	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress {
			return a, nil
		}
		if msg.Y < headerLines {
			if tab := a.tabAtX(msg.X); tab >= 0 {
				a.activeTab = tab
			}
			return a, nil
		}
		if a.activeTab == tabCalendar && !a.detail {
			if day := a.dayAt(msg.X, msg.Y); day > 0 {
				if day == a.cursor {
					a.openDay()
				} else {
					a.cursor = day
				}
			}
		}
	}
	return a, nil
}

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes are derived from the same width rules used by RenderTabBar.
func (a App) tabAtX(x int) int {
	pos := 0
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)
		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW + 1 // separator
	}
	return -1
}

// ─── Helpers ────────────────────────────────────────────────────

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}

// fillLinesWithBackground pads each line to width w with background color.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
	}
	return strings.Join(lines, "\n")
}
