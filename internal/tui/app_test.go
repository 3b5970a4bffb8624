package tui

import (
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/theirongolddev/paycal/internal/config"
	"github.com/theirongolddev/paycal/internal/datekey"
	"github.com/theirongolddev/paycal/internal/ledger"
	"github.com/theirongolddev/paycal/internal/model"
	"github.com/theirongolddev/paycal/internal/photo"
	"github.com/theirongolddev/paycal/internal/store"
	"github.com/theirongolddev/paycal/internal/tui/components"
)

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

// newTestApp returns an app showing March 2025 (today is the 1st), sized
// for the side-by-side calendar layout.
func newTestApp(t *testing.T, photos photo.Resolver) (App, *ledger.Ledger) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	l := ledger.New(store.NewMemory(), quiet)
	a := NewApp(Options{
		Config: config.DefaultConfig(),
		Ledger: l,
		Photos: photos,
		Now:    func() time.Time { return time.Date(2025, time.March, 1, 9, 0, 0, 0, time.UTC) },
		Log:    quiet,
	})
	m, _ := a.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return m.(App), l
}

func press(t *testing.T, a App, keys ...string) App {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "right":
			msg = tea.KeyMsg{Type: tea.KeyRight}
		case "left":
			msg = tea.KeyMsg{Type: tea.KeyLeft}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		m, _ := a.Update(msg)
		a = m.(App)
	}
	return a
}

func TestTabAtXMatchesTabWidths(t *testing.T) {
	for active := range components.Tabs {
		a := App{activeTab: active}
		pos := 0

		for i, tab := range components.Tabs {
			w := components.TabVisualWidth(tab, i == active)
			x := pos + w/2 // midpoint inside this tab
			if got := a.tabAtX(x); got != i {
				t.Fatalf("active=%d x=%d -> tab=%d, want %d", active, x, got, i)
			}
			pos += w + 1 // separator
		}
		if got := a.tabAtX(pos + 40); got != -1 {
			t.Fatalf("active=%d: x past the tabs -> %d, want -1", active, got)
		}
	}
}

func TestInactiveSettingsTabShowsShortcut(t *testing.T) {
	settings := components.Tabs[tabSettings]
	if got, want := components.TabVisualWidth(settings, false), len("Settings")+2+3; got != want {
		t.Fatalf("inactive width = %d, want %d", got, want)
	}
	if got, want := components.TabVisualWidth(settings, true), len("Settings")+2; got != want {
		t.Fatalf("active width = %d, want %d", got, want)
	}
}

func TestMonthKeysNavigate(t *testing.T) {
	a, _ := newTestApp(t, nil)

	a = press(t, a, "]")
	if g := a.nav.Grid(); g.Year != 2025 || g.Month0 != 3 {
		t.Fatalf("after ] showing %d-%d, want 2025-3", g.Year, g.Month0)
	}
	a = press(t, a, "[", "[", "[")
	if g := a.nav.Grid(); g.Year != 2025 || g.Month0 != 0 {
		t.Fatalf("after [x3 showing %d-%d, want 2025-0", g.Year, g.Month0)
	}
	a = press(t, a, "t")
	if g := a.nav.Grid(); g.Month0 != 2 || a.cursor != 1 {
		t.Fatalf("after t showing month %d cursor %d, want 2 and 1", g.Month0, a.cursor)
	}
}

func TestCursorCrossesMonthBoundary(t *testing.T) {
	a, _ := newTestApp(t, nil)

	a = press(t, a, "left")
	if g := a.nav.Grid(); g.Month0 != 1 || a.cursor != 28 {
		t.Fatalf("left from Mar 1 -> month %d day %d, want Feb 28", g.Month0, a.cursor)
	}
	a = press(t, a, "right")
	if g := a.nav.Grid(); g.Month0 != 2 || a.cursor != 1 {
		t.Fatalf("right from Feb 28 -> month %d day %d, want Mar 1", g.Month0, a.cursor)
	}
}

func TestEnterOpensAndEscClosesDay(t *testing.T) {
	a, _ := newTestApp(t, nil)

	a = press(t, a, "right", "right", "enter")
	k, ok := a.nav.Selected()
	if !ok || k != "2025-03-03" || !a.detail {
		t.Fatalf("selected %q (%v), detail=%v; want 2025-03-03 open", k, ok, a.detail)
	}

	a = press(t, a, "esc")
	if _, ok := a.nav.Selected(); ok || a.detail {
		t.Fatal("esc should close the day")
	}
}

func TestSubmitWithoutSelectionKeepsLedger(t *testing.T) {
	a, l := newTestApp(t, nil)
	*a.addVals = addValues{Description: "Coffee", Amount: "4.50", Method: "card"}

	m, cmd := a.submit()
	a = m.(App)
	if cmd != nil {
		t.Fatal("rejected submission should not schedule work")
	}
	if l.Len() != 0 {
		t.Fatalf("ledger has %d days, want 0", l.Len())
	}
	if a.statusKind != components.StatusError {
		t.Fatalf("status = %q (%d), want an error", a.status, a.statusKind)
	}
}

func TestSubmitRecordsAndMarksGrid(t *testing.T) {
	a, l := newTestApp(t, nil)
	a = press(t, a, "enter")
	*a.addVals = addValues{Description: "Coffee", Amount: "4,50", Method: "card"}

	m, cmd := a.submit()
	a = m.(App)
	if cmd != nil {
		t.Fatal("submission without photo should complete synchronously")
	}

	day := l.Day("2025-03-01")
	if len(day) != 1 || day[0].Amount != 4.5 || day[0].Method != "card" {
		t.Fatalf("recorded %+v", day)
	}
	if c, _ := a.nav.Grid().Cell(1); len(c.Methods) != 1 {
		t.Fatalf("day 1 methods = %v, want one indicator", c.Methods)
	}
	if _, ok := a.nav.Selected(); ok || a.detail {
		t.Fatal("day should close after submit")
	}
	if a.summary.Transactions != 1 {
		t.Fatalf("summary not refreshed: %+v", a.summary)
	}
}

func TestSubmitWaitsForPhoto(t *testing.T) {
	photos := photo.FileResolver{ReadFile: func(string) ([]byte, error) { return []byte("GIF89a"), nil }}
	a, l := newTestApp(t, photos)
	a = press(t, a, "enter")
	*a.addVals = addValues{Description: "Receipt", Amount: "10", Method: "pix", Photo: "r.gif"}

	m, cmd := a.submit()
	a = m.(App)
	if !a.submitting || cmd == nil {
		t.Fatal("photo submission should be pending")
	}
	if l.Len() != 0 {
		t.Fatal("nothing should be recorded before the photo resolves")
	}

	// Keys are ignored while the photo resolves
	a = press(t, a, "]")
	if a.nav.Grid().Month0 != 2 {
		t.Fatal("navigation should be blocked while submitting")
	}

	resolved := findPhotoMsg(t, cmd)
	m, _ = a.Update(resolved)
	a = m.(App)

	day := l.Day("2025-03-01")
	if len(day) != 1 || day[0].PhotoURL != "data:image/gif;base64,R0lGODlh" {
		t.Fatalf("recorded %+v", day)
	}
	if a.submitting {
		t.Fatal("submitting should clear once recorded")
	}
}

func TestPhotoFailureStillRecords(t *testing.T) {
	photos := photo.FileResolver{ReadFile: func(string) ([]byte, error) { return nil, errors.New("gone") }}
	a, l := newTestApp(t, photos)
	a = press(t, a, "enter")
	*a.addVals = addValues{Description: "Receipt", Amount: "10", Method: "pix", Photo: "missing.jpg"}

	_, cmd := a.submit()
	m, _ := a.Update(findPhotoMsg(t, cmd))
	a = m.(App)

	day := l.Day("2025-03-01")
	if len(day) != 1 || day[0].PhotoURL != "" {
		t.Fatalf("recorded %+v", day)
	}
	if a.statusKind != components.StatusOK {
		t.Fatalf("status = %q, want ok", a.status)
	}
}

func TestDeleteKeyRemovesHighlightedRow(t *testing.T) {
	a, l := newTestApp(t, nil)
	l.Append("2025-03-01", model.Transaction{Description: "a", Amount: 1, Method: "cash"})
	l.Append("2025-03-01", model.Transaction{Description: "b", Amount: 2, Method: "card"})
	a.nav.Rebuild()

	a = press(t, a, "enter", "j", "d")
	day := l.Day("2025-03-01")
	if len(day) != 1 || day[0].Description != "a" {
		t.Fatalf("remaining %+v, want only a", day)
	}
	if len(a.rows) != 1 || a.rowCursor != 0 {
		t.Fatalf("rows=%d cursor=%d", len(a.rows), a.rowCursor)
	}
	if c, _ := a.nav.Grid().Cell(1); len(c.Methods) != 1 || c.Methods[0] != "cash" {
		t.Fatalf("day 1 methods = %v, want [cash]", c.Methods)
	}

	a = press(t, a, "d", "d")
	if l.Len() != 0 || len(a.rows) != 0 {
		t.Fatal("day should be empty")
	}
}

func TestClickSelectsThenOpensDay(t *testing.T) {
	a, _ := newTestApp(t, nil)

	// March 2025 starts on a Saturday: with Monday first, day 5 sits in
	// the second week, third column.
	gridW, _, _ := a.calendarLayout(a.contentWidth())
	cw := components.GridCellWidth(components.CardInnerWidth(gridW))
	x := a.contentOffsetX() + gridInsetX + 2*cw + 1
	y := headerLines + gridInsetY + components.GridHeaderLines + components.GridRowLines

	click := tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress}
	m, _ := a.Update(click)
	a = m.(App)
	if a.cursor != 5 || a.detail {
		t.Fatalf("first click: cursor=%d detail=%v, want 5 and closed", a.cursor, a.detail)
	}

	m, _ = a.Update(click)
	a = m.(App)
	if k, ok := a.nav.Selected(); !ok || k != datekey.Key("2025-03-05") {
		t.Fatalf("second click selected %q (%v)", k, ok)
	}
}

func TestClickTabBarSwitchesTab(t *testing.T) {
	a, _ := newTestApp(t, nil)
	x := components.TabVisualWidth(components.Tabs[0], true) + 1 + 2

	m, _ := a.Update(tea.MouseMsg{X: x, Y: 0, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	if got := m.(App).activeTab; got != tabSummary {
		t.Fatalf("activeTab = %d, want summary", got)
	}
}

func TestViewRendersEveryTab(t *testing.T) {
	a, l := newTestApp(t, nil)
	l.Append("2025-03-01", model.Transaction{Description: "Coffee", Amount: 4.5, Method: "card"})
	a.nav.Rebuild()
	a.recompute()

	for _, key := range []string{"c", "s", "x"} {
		a = press(t, a, key)
		if a.View() == "" {
			t.Fatalf("tab %q rendered nothing", key)
		}
	}
}

func TestSettingsCycleWeekStart(t *testing.T) {
	a, _ := newTestApp(t, nil)
	a = press(t, a, "x", "l")

	if a.cfg.General.WeekStart != "sunday" {
		t.Fatalf("week start = %q, want sunday", a.cfg.General.WeekStart)
	}
	if g := a.nav.Grid(); g.Leading != 6 {
		t.Fatalf("leading = %d, want 6 for a Saturday first with Sunday start", g.Leading)
	}
	if !config.Exists() {
		t.Fatal("settings change should be saved")
	}
}

// findPhotoMsg runs a submission command and returns its photo result.
func findPhotoMsg(t *testing.T, cmd tea.Cmd) photoResolvedMsg {
	t.Helper()
	if cmd == nil {
		t.Fatal("nil command")
	}
	msg := cmd()
	if pm, ok := msg.(photoResolvedMsg); ok {
		return pm
	}
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		t.Fatalf("unexpected message %T", msg)
	}
	for _, c := range batch {
		if c == nil {
			continue
		}
		if pm, ok := c().(photoResolvedMsg); ok {
			return pm
		}
	}
	t.Fatal("no photo result in batch")
	return photoResolvedMsg{}
}

func TestSettingsChangeKeepsOverridesOutOfFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(config.EnvDataFile, "")
	t.Setenv(config.EnvWeekStart, "")
	t.Setenv(config.EnvLocale, "")

	cfg := config.DefaultConfig()
	cfg.General.DataFile = "/tmp/one-off.db"
	cfg.General.WeekStart = "sunday"

	a := NewApp(Options{
		Config: cfg,
		Ledger: ledger.New(store.NewMemory(), quiet),
		Now:    func() time.Time { return time.Date(2025, time.March, 1, 9, 0, 0, 0, time.UTC) },
		Log:    quiet,
	})
	m, _ := a.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	a = press(t, m.(App), "x", "j", "j", "l")

	if a.cfg.Appearance.Theme == cfg.Appearance.Theme {
		t.Fatal("theme did not change")
	}
	saved, err := config.LoadFile()
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if saved.General.DataFile != "" {
		t.Fatalf("data_file on disk = %q, want empty", saved.General.DataFile)
	}
	if saved.General.WeekStart != "monday" {
		t.Fatalf("week_start on disk = %q, want monday", saved.General.WeekStart)
	}
	if saved.Appearance.Theme != a.cfg.Appearance.Theme {
		t.Fatalf("theme on disk = %q, want %q", saved.Appearance.Theme, a.cfg.Appearance.Theme)
	}
}
