package theme

import "testing"

func TestNamedResolvesAgainstTheme(t *testing.T) {
	if got := CatppuccinMocha.Named("Green"); got != CatppuccinMocha.Dots.Green {
		t.Fatalf("Named(Green) = %q", got)
	}
	if got := FlexokiDark.Named("#123456"); got != "#123456" {
		t.Fatalf("hex passthrough = %q", got)
	}
	if got := FlexokiDark.Named(""); got != "" {
		t.Fatalf("empty = %q", got)
	}
}

func TestMethodColorFallsBackToPalette(t *testing.T) {
	p := Terminal.Palette()
	if got := Terminal.MethodColor("", len(p)+1); got != p[1] {
		t.Fatalf("palette wrap = %q, want %q", got, p[1])
	}
	if got := Terminal.MethodColor("red", 0); got != Terminal.Dots.Red {
		t.Fatalf("configured = %q", got)
	}
}

func TestByNameDefaults(t *testing.T) {
	if ByName("nope").Name != FlexokiDark.Name {
		t.Fatal("unknown theme should fall back to flexoki-dark")
	}
	SetActive("terminal")
	defer SetActive("flexoki-dark")
	if Active.Name != "terminal" {
		t.Fatalf("Active = %q", Active.Name)
	}
}

func TestNamesMatchAll(t *testing.T) {
	names := Names()
	if len(names) != len(All) {
		t.Fatalf("len(Names) = %d, want %d", len(names), len(All))
	}
	for _, n := range names {
		if ByName(n).Name != n {
			t.Fatalf("ByName(%q) did not round-trip", n)
		}
	}
	if ByName(" Flexoki-Light ").Name != FlexokiLight.Name {
		t.Fatal("lookup should ignore case and spaces")
	}
}

func TestDotsStayClearOfAccent(t *testing.T) {
	for _, th := range All {
		for i, c := range th.Palette() {
			if c == th.Accent {
				t.Fatalf("%s: palette[%d] = %q equals the accent", th.Name, i, c)
			}
		}
	}
}

func TestDotsAreDistinct(t *testing.T) {
	for _, th := range All {
		seen := map[string]int{}
		for i, c := range th.Palette() {
			if j, ok := seen[string(c)]; ok {
				t.Fatalf("%s: palette[%d] repeats palette[%d] (%q)", th.Name, i, j, c)
			}
			seen[string(c)] = i
		}
	}
}
