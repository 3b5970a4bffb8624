// Package nav owns the displayed month and the selected day, and rebuilds
// the month grid after every transition.
package nav

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/theirongolddev/paycal/internal/calendar"
	"github.com/theirongolddev/paycal/internal/datekey"
)

// BuildFunc derives the grid for a month. today is the real current time.
type BuildFunc func(year, month0 int, today time.Time) calendar.Grid

// Controller holds the navigation state. It has no terminal state and is
// driven from a single control flow.
type Controller struct {
	year     int
	month0   int
	selected datekey.Key

	build BuildFunc
	now   func() time.Time
	log   *slog.Logger

	grid    calendar.Grid
	builtOK bool
}

// New returns a controller displaying year/month0 and builds its first grid.
// A nil now uses time.Now.
func New(year, month0 int, build BuildFunc, now func() time.Time, log *slog.Logger) *Controller {
	if now == nil {
		now = time.Now
	}
	if log == nil {
		log = slog.Default()
	}
	year, month0 = calendar.Normalize(year, month0)
	c := &Controller{
		year:   year,
		month0: month0,
		build:  build,
		now:    now,
		log:    log,
	}
	c.Rebuild()
	return c
}

// NewToday returns a controller displaying the current month.
func NewToday(build BuildFunc, now func() time.Time, log *slog.Logger) *Controller {
	if now == nil {
		now = time.Now
	}
	t := now()
	return New(t.Year(), int(t.Month())-1, build, now, log)
}

// Year returns the displayed year.
func (c *Controller) Year() int { return c.year }

// Month returns the displayed 0-indexed month.
func (c *Controller) Month() int { return c.month0 }

// Grid returns the last successfully built grid.
func (c *Controller) Grid() calendar.Grid { return c.grid }

// Advance moves the displayed month by dir (normally -1 or +1), rolling
// the year over as needed, and rebuilds.
func (c *Controller) Advance(dir int) {
	c.year, c.month0 = calendar.Normalize(c.year, c.month0+dir)
	c.Rebuild()
}

// JumpToToday displays the real current month and rebuilds.
func (c *Controller) JumpToToday() {
	t := c.now()
	c.year, c.month0 = t.Year(), int(t.Month())-1
	c.Rebuild()
}

// Show displays an explicit month and rebuilds.
func (c *Controller) Show(year, month0 int) {
	c.year, c.month0 = calendar.Normalize(year, month0)
	c.Rebuild()
}

// Select records k as the selected day.
func (c *Controller) Select(k datekey.Key) {
	c.selected = k
}

// Selected returns the selected day, if any.
func (c *Controller) Selected() (datekey.Key, bool) {
	return c.selected, c.selected != ""
}

// ClearSelection forgets the selected day.
func (c *Controller) ClearSelection() {
	c.selected = ""
}

// Rebuild recomputes the grid for the displayed month. A failing build is
// logged and the previous grid is kept.
func (c *Controller) Rebuild() {
	g, err := c.safeBuild()
	if err != nil {
		c.log.Error("grid build failed, keeping last grid",
			"year", c.year, "month", c.month0+1, "error", err)
		return
	}
	c.grid = g
	c.builtOK = true
}

// Built reports whether at least one grid has been built.
func (c *Controller) Built() bool { return c.builtOK }

func (c *Controller) safeBuild() (g calendar.Grid, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return c.build(c.year, c.month0, c.now()), nil
}
