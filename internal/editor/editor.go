// Package editor implements the day detail operations: listing a day's
// transactions, recording a new one against the selected day, and
// positional deletion. Every mutation rebuilds the month grid.
package editor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/theirongolddev/paycal/internal/datekey"
	"github.com/theirongolddev/paycal/internal/ledger"
	"github.com/theirongolddev/paycal/internal/model"
	"github.com/theirongolddev/paycal/internal/nav"
	"github.com/theirongolddev/paycal/internal/photo"
)

var (
	// ErrNoSelection is returned when a submission arrives with no day selected.
	ErrNoSelection = errors.New("no date selected")
	// ErrInvalidAmount is returned for negative, non-finite or unparsable amounts.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrEmptyDescription is returned for a blank description.
	ErrEmptyDescription = errors.New("description is required")
)

// Form is what the input collaborator hands to Submit.
type Form struct {
	Description string
	Amount      float64
	Method      string
	PhotoPath   string // optional file to attach
}

// Row is one line of the day list.
type Row struct {
	Index       int
	Description string
	Amount      float64
	AmountText  string // two fraction digits
	Method      string // upper-cased for display
	PhotoURL    string
}

// Pending is a submission waiting for its photo to resolve.
type Pending struct {
	Key   datekey.Key
	Form  Form
	Photo <-chan photo.Result // nil when no photo was supplied
}

// Editor wires the ledger and navigation together for the detail view.
type Editor struct {
	ledger *ledger.Ledger
	nav    *nav.Controller
	photos photo.Resolver
	log    *slog.Logger
}

// New returns an editor. A nil resolver reads photos from disk.
func New(l *ledger.Ledger, n *nav.Controller, photos photo.Resolver, log *slog.Logger) *Editor {
	if photos == nil {
		photos = photo.FileResolver{}
	}
	if log == nil {
		log = slog.Default()
	}
	return &Editor{ledger: l, nav: n, photos: photos, log: log}
}

// Open selects k and returns its transactions.
func (e *Editor) Open(k datekey.Key) []Row {
	e.nav.Select(k)
	return e.Rows(k)
}

// Close dismisses the detail view.
func (e *Editor) Close() {
	e.nav.ClearSelection()
}

// Rows lists k's transactions in store order. A failure while building the
// list is logged and yields no rows.
func (e *Editor) Rows(k datekey.Key) (rows []Row) {
	defer func() {
		if r := recover(); r != nil {
			e.log.Error("listing transactions failed", "date", k, "panic", r)
			rows = nil
		}
	}()

	day := e.ledger.Day(k)
	rows = make([]Row, len(day))
	for i, t := range day {
		rows[i] = Row{
			Index:       i,
			Description: t.Description,
			Amount:      t.Amount,
			AmountText:  FormatAmount(t.Amount),
			Method:      strings.ToUpper(t.Method),
			PhotoURL:    t.PhotoURL,
		}
	}
	return rows
}

// Begin validates a submission against the current selection and starts
// photo resolution. Nothing is recorded until Complete.
func (e *Editor) Begin(ctx context.Context, f Form) (Pending, error) {
	k, ok := e.nav.Selected()
	if !ok {
		e.log.Error("submission rejected: no date selected", "description", f.Description)
		return Pending{}, ErrNoSelection
	}

	f.Description = strings.TrimSpace(f.Description)
	f.Method = strings.TrimSpace(f.Method)
	if f.Description == "" {
		return Pending{}, ErrEmptyDescription
	}
	if err := checkAmount(f.Amount); err != nil {
		return Pending{}, err
	}
	if f.Method == "" {
		return Pending{}, errors.New("payment method is required")
	}

	p := Pending{Key: k, Form: f}
	if path := strings.TrimSpace(f.PhotoPath); path != "" {
		p.Photo = e.photos.Resolve(ctx, path)
	}
	return p, nil
}

// Complete records a pending submission once its photo has resolved,
// closes the detail view and rebuilds the grid. A failed photo is dropped
// and the transaction is still recorded.
func (e *Editor) Complete(p Pending, res photo.Result) datekey.Key {
	t := model.Transaction{
		Description: p.Form.Description,
		Amount:      p.Form.Amount,
		Method:      p.Form.Method,
	}
	if p.Photo != nil {
		if res.Err != nil {
			e.log.Warn("photo unavailable, recording without it",
				"date", p.Key, "path", p.Form.PhotoPath, "error", res.Err)
		} else {
			t.PhotoURL = res.Ref
		}
	}

	e.ledger.Append(p.Key, t)
	e.log.Info("transaction recorded", "date", p.Key, "method", t.Method, "amount", t.Amount)

	e.nav.ClearSelection()
	e.nav.Rebuild()
	return p.Key
}

// Submit records f against the selected day, waiting for any photo first.
func (e *Editor) Submit(ctx context.Context, f Form) (datekey.Key, error) {
	p, err := e.Begin(ctx, f)
	if err != nil {
		return "", err
	}
	var res photo.Result
	if p.Photo != nil {
		res = photo.Await(ctx, p.Photo)
	}
	return e.Complete(p, res), nil
}

// Delete removes the transaction at index from k, then returns the current
// list and rebuilds the grid. Stale indices are ignored.
func (e *Editor) Delete(k datekey.Key, index int) []Row {
	if !e.ledger.DeleteAt(k, index) {
		e.log.Debug("delete ignored", "date", k, "index", index)
	}
	rows := e.Rows(k)
	e.nav.Rebuild()
	return rows
}

// FormatAmount renders an amount with exactly two fraction digits.
func FormatAmount(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// ParseAmount accepts "12.34" or "12,34". Negative values are rejected.
func ParseAmount(s string) (float64, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	if s == "" || s == "." || strings.Count(s, ".") > 1 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	for _, r := range s {
		if r != '.' && (r < '0' || r > '9') {
			return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
		}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	if err := checkAmount(v); err != nil {
		return 0, err
	}
	return v, nil
}

func checkAmount(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return fmt.Errorf("%w: %v", ErrInvalidAmount, v)
	}
	return nil
}
