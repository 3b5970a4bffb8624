// Package calendar builds the month grid view model: leading blanks,
// numbered days, today highlighting and per-day payment method markers.
package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/theirongolddev/paycal/internal/datekey"
)

// WeekStart selects the first column of the grid.
type WeekStart int

const (
	Monday WeekStart = iota
	Sunday
)

func (w WeekStart) String() string {
	if w == Sunday {
		return "sunday"
	}
	return "monday"
}

// ParseWeekStart accepts "monday"/"mon" or "sunday"/"sun".
func ParseWeekStart(s string) (WeekStart, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "monday", "mon":
		return Monday, nil
	case "sunday", "sun":
		return Sunday, nil
	}
	return Monday, fmt.Errorf("unknown week start %q (want monday or sunday)", s)
}

// Column maps a native weekday to its column under this week start.
func (w WeekStart) Column(wd time.Weekday) int {
	if w == Monday {
		return (int(wd) + 6) % 7
	}
	return int(wd)
}

// MethodSource reports the distinct payment methods recorded on a day.
type MethodSource interface {
	MethodsOn(k datekey.Key) []string
}

// Options controls grid layout and labels.
type Options struct {
	WeekStart WeekStart
	Locale    Locale
}

// Cell is one unit of the grid: a leading blank or a numbered day.
type Cell struct {
	Blank   bool
	Day     int
	Key     datekey.Key
	Today   bool
	Methods []string
}

// Grid is the derived view of one month.
type Grid struct {
	Year        int
	Month0      int
	Title       string
	Headers     []string // weekday abbreviations, in column order
	Cells       []Cell   // row-major, 7 columns
	Leading     int
	DaysInMonth int
}

// Build derives the grid for year/month0 from src. today is compared by
// calendar day only.
func Build(year, month0 int, today time.Time, src MethodSource, opts Options) Grid {
	year, month0 = Normalize(year, month0)
	loc := opts.Locale
	if loc.Title == nil {
		loc = english
	}

	first := time.Date(year, time.Month(month0+1), 1, 0, 0, 0, 0, time.UTC)
	leading := opts.WeekStart.Column(first.Weekday())
	days := datekey.DaysInMonth(year, month0)

	g := Grid{
		Year:        year,
		Month0:      month0,
		Title:       loc.Title(loc.Months[month0], year),
		Headers:     Headers(opts.WeekStart, loc),
		Cells:       make([]Cell, 0, leading+days),
		Leading:     leading,
		DaysInMonth: days,
	}

	for i := 0; i < leading; i++ {
		g.Cells = append(g.Cells, Cell{Blank: true})
	}

	isTodayMonth := today.Year() == year && int(today.Month())-1 == month0
	for day := 1; day <= days; day++ {
		k := datekey.Encode(year, month0, day)
		c := Cell{
			Day:   day,
			Key:   k,
			Today: isTodayMonth && today.Day() == day,
		}
		if src != nil {
			c.Methods = src.MethodsOn(k)
		}
		g.Cells = append(g.Cells, c)
	}

	return g
}

// Headers returns weekday names in the column order for start.
func Headers(start WeekStart, loc Locale) []string {
	out := make([]string, 7)
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		out[start.Column(wd)] = loc.Weekdays[wd]
	}
	return out
}

// Normalize folds an out-of-range month into the neighbouring years.
func Normalize(year, month0 int) (int, int) {
	year += month0 / 12
	month0 %= 12
	if month0 < 0 {
		month0 += 12
		year--
	}
	return year, month0
}

// Rows splits the cells into weeks of seven. The final row may be short.
func (g Grid) Rows() [][]Cell {
	var rows [][]Cell
	for i := 0; i < len(g.Cells); i += 7 {
		end := i + 7
		if end > len(g.Cells) {
			end = len(g.Cells)
		}
		rows = append(rows, g.Cells[i:end])
	}
	return rows
}

// IndexOf returns the cell index of day, or -1 if the month has no such day.
func (g Grid) IndexOf(day int) int {
	if day < 1 || day > g.DaysInMonth {
		return -1
	}
	return g.Leading + day - 1
}

// Cell returns the numbered cell for day.
func (g Grid) Cell(day int) (Cell, bool) {
	i := g.IndexOf(day)
	if i < 0 {
		return Cell{}, false
	}
	return g.Cells[i], true
}

func itoa(n int) string {
	return strconv.Itoa(n)
}

// OptionsFor resolves configured week start and locale names. An invalid
// week start yields Monday along with the parse error.
func OptionsFor(weekStart, locale string) (Options, error) {
	ws, err := ParseWeekStart(weekStart)
	return Options{WeekStart: ws, Locale: LocaleByName(locale)}, err
}
