// Package datekey converts calendar dates to and from the canonical
// YYYY-MM-DD strings used to index the transaction store.
package datekey

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidKey is returned when a string is not a canonical date key.
var ErrInvalidKey = errors.New("invalid date key")

// Key is a calendar day in canonical YYYY-MM-DD form.
type Key string

// Encode builds the key for a day. month0 is 0-indexed (0 = January).
// Month and day are zero-padded to two digits; the year is written as-is.
func Encode(year, month0, day int) Key {
	return Key(fmt.Sprintf("%d-%02d-%02d", year, month0+1, day))
}

// FromTime returns the key for t's calendar day in t's location.
func FromTime(t time.Time) Key {
	return Encode(t.Year(), int(t.Month())-1, t.Day())
}

// String implements fmt.Stringer.
func (k Key) String() string {
	return string(k)
}

// Decode splits a canonical key into year, 0-indexed month and day.
// Only the exact form Encode produces is accepted: "2025-3-5",
// "+2025-03-05" and "02025-03-05" are rejected.
func Decode(k Key) (year, month0, day int, err error) {
	parts := strings.Split(string(k), "-")
	if len(parts) != 3 || len(parts[1]) != 2 || len(parts[2]) != 2 || parts[0] == "" {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidKey, string(k))
	}

	year, err = strconv.Atoi(parts[0])
	if err != nil || year < 1 {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidKey, string(k))
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil || month < 1 || month > 12 {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidKey, string(k))
	}
	day, err = strconv.Atoi(parts[2])
	if err != nil || day < 1 || day > DaysInMonth(year, month-1) {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidKey, string(k))
	}
	// Atoi accepts signs and extra leading zeros.
	if Encode(year, month-1, day) != k {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidKey, string(k))
	}

	return year, month - 1, day, nil
}

// Parse validates user input and returns it as a Key.
func Parse(s string) (Key, error) {
	k := Key(strings.TrimSpace(s))
	if _, _, _, err := Decode(k); err != nil {
		return "", err
	}
	return k, nil
}

// Time returns midnight of the key's day in loc, or UTC when loc is nil.
func (k Key) Time(loc *time.Location) (time.Time, error) {
	y, m, d, err := Decode(k)
	if err != nil {
		return time.Time{}, err
	}
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(y, time.Month(m+1), d, 0, 0, 0, 0, loc), nil
}

// DaysInMonth returns the last day number of the month, taken as
// day 0 of the following month.
func DaysInMonth(year, month0 int) int {
	return time.Date(year, time.Month(month0+2), 0, 0, 0, 0, 0, time.UTC).Day()
}
