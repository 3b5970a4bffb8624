package datekey

import (
	"errors"
	"testing"
	"time"
)

func TestEncodePadsMonthAndDay(t *testing.T) {
	if got := Encode(2025, 2, 9); got != "2025-03-09" {
		t.Fatalf("Encode(2025, 2, 9) = %q, want 2025-03-09", got)
	}
	if got := Encode(2024, 11, 31); got != "2024-12-31" {
		t.Fatalf("Encode(2024, 11, 31) = %q, want 2024-12-31", got)
	}
	if got := Encode(12345, 0, 1); got != "12345-01-01" {
		t.Fatalf("year should not be truncated, got %q", got)
	}
}

func TestFromTime(t *testing.T) {
	d := time.Date(2025, time.September, 10, 23, 59, 0, 0, time.Local)
	if got := FromTime(d); got != "2025-09-10" {
		t.Fatalf("FromTime = %q, want 2025-09-10", got)
	}
}

func TestDecodeRoundTrip(t *testing.T) {
	for month0 := 0; month0 < 12; month0++ {
		for _, day := range []int{1, 15, DaysInMonth(2024, month0)} {
			k := Encode(2024, month0, day)
			y, m, d, err := Decode(k)
			if err != nil {
				t.Fatalf("Decode(%q): %v", k, err)
			}
			if y != 2024 || m != month0 || d != day {
				t.Fatalf("Decode(%q) = %d,%d,%d", k, y, m, d)
			}
		}
	}
}

func TestDecodeRejectsNonCanonical(t *testing.T) {
	bad := []Key{
		"2025-3-5",
		"2025-03-5",
		"2025-13-01",
		"2025-02-29",
		"2025-00-10",
		"-03-01",
		"2025/03/01",
		"",
		"2025-+3-05",
		"2025-03-+5",
		"+2025-03-05",
		"02025-03-05",
	}
	for _, k := range bad {
		if _, _, _, err := Decode(k); !errors.Is(err, ErrInvalidKey) {
			t.Fatalf("Decode(%q) err = %v, want ErrInvalidKey", k, err)
		}
	}
}

func TestParseRejectsSignedParts(t *testing.T) {
	for _, s := range []string{"+2025-03-05", "2025-+3-05"} {
		if k, err := Parse(s); err == nil {
			t.Fatalf("Parse(%q) = %q, want error", s, k)
		}
	}
}

func TestParseTrimsInput(t *testing.T) {
	k, err := Parse("  2024-02-29 ")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if k != "2024-02-29" {
		t.Fatalf("Parse = %q", k)
	}
}

func TestDaysInMonth(t *testing.T) {
	cases := []struct {
		year, month0, want int
	}{
		{2023, 1, 28},
		{2024, 1, 29},
		{1900, 1, 28},
		{2000, 1, 29},
		{2025, 3, 30},
		{2025, 11, 31},
	}
	for _, tc := range cases {
		if got := DaysInMonth(tc.year, tc.month0); got != tc.want {
			t.Fatalf("DaysInMonth(%d, %d) = %d, want %d", tc.year, tc.month0, got, tc.want)
		}
	}
}

func TestTimeDefaultsToUTC(t *testing.T) {
	got, err := Key("2024-02-29").Time(nil)
	if err != nil {
		t.Fatalf("Time: %v", err)
	}
	if want := time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC); !got.Equal(want) || got.Location() != time.UTC {
		t.Fatalf("Time(nil) = %v, want %v", got, want)
	}
	if _, err := Key("2024-02-30").Time(time.UTC); err == nil {
		t.Fatal("expected error for an impossible date")
	}
}
