package config

import (
	"os"
	"path/filepath"
	"testing"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("XDG_CACHE_HOME", filepath.Join(dir, "cache"))
	t.Setenv(EnvDataFile, "")
	t.Setenv(EnvWeekStart, "")
	t.Setenv(EnvLocale, "")
	return dir
}

func TestLoadMissingReturnsDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.General.WeekStart != "monday" || cfg.Appearance.Currency != "R$" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if got := cfg.MethodNames(); len(got) != 3 || got[0] != "cash" || got[2] != "pix" {
		t.Fatalf("default methods = %v", got)
	}
	if Exists() {
		t.Fatal("Exists should be false without a file")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	isolate(t)

	cfg := DefaultConfig()
	cfg.General.WeekStart = "sunday"
	cfg.General.Locale = "pt-BR"
	cfg.Methods = []Method{{Name: "voucher", Label: "Voucher", Color: "magenta"}}
	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.General.WeekStart != "sunday" || got.General.Locale != "pt-BR" {
		t.Fatalf("general = %+v", got.General)
	}
	if names := got.MethodNames(); len(names) != 1 || names[0] != "voucher" {
		t.Fatalf("methods = %v", names)
	}
}

func TestLoadWithoutMethodsKeepsCatalog(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "paycal", "config.toml")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("[general]\nweek_start = \"sunday\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, ok := cfg.Method("CARD"); !ok {
		t.Fatal("default catalog should survive a file without [[methods]]")
	}
}

func TestLoadInvalidTOML(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "paycal", "config.toml")
	_ = os.MkdirAll(filepath.Dir(path), 0o755)
	_ = os.WriteFile(path, []byte("[general\n"), 0o600)

	cfg, err := Load()
	if err == nil {
		t.Fatal("expected parse error")
	}
	if cfg.General.WeekStart != "monday" {
		t.Fatalf("defaults should be returned on error, got %+v", cfg.General)
	}
}

func TestEnvOverrides(t *testing.T) {
	dir := isolate(t)
	t.Setenv(EnvWeekStart, "SUNDAY")

	if err := os.MkdirAll(filepath.Join(dir, "paycal"), 0o755); err != nil {
		t.Fatal(err)
	}
	env := "PAYCAL_DATA_FILE=/tmp/from-dotenv.db\n"
	if err := os.WriteFile(filepath.Join(dir, "paycal", ".env"), []byte(env), 0o600); err != nil {
		t.Fatal(err)
	}
	// godotenv does not override variables that are already set
	os.Unsetenv(EnvDataFile)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.General.WeekStart != "sunday" {
		t.Fatalf("week start = %q", cfg.General.WeekStart)
	}
	if DataPath(cfg) != "/tmp/from-dotenv.db" {
		t.Fatalf("data path = %q", DataPath(cfg))
	}
	os.Unsetenv(EnvDataFile)
}

func TestDataPathDefault(t *testing.T) {
	dir := isolate(t)
	want := filepath.Join(dir, "cache", "paycal", "paycal.db")
	if got := DataPath(DefaultConfig()); got != want {
		t.Fatalf("DataPath = %q, want %q", got, want)
	}
}

func TestDisplayName(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.DisplayName("pix"); got != "Pix" {
		t.Fatalf("DisplayName(pix) = %q", got)
	}
	if got := cfg.DisplayName("crypto"); got != "crypto" {
		t.Fatalf("DisplayName(crypto) = %q", got)
	}
}

func TestSaveChangesWritesOnlyEditedFields(t *testing.T) {
	isolate(t)
	t.Setenv(EnvDataFile, "/tmp/env.db")

	prev, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	next := prev
	next.Appearance.Currency = "€"
	if err := SaveChanges(prev, next); err != nil {
		t.Fatalf("SaveChanges: %v", err)
	}

	onDisk, err := LoadFile()
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if onDisk.General.DataFile != "" {
		t.Fatalf("data_file = %q, env override leaked into the file", onDisk.General.DataFile)
	}
	if onDisk.Appearance.Currency != "€" {
		t.Fatalf("currency = %q", onDisk.Appearance.Currency)
	}
}

func TestSaveChangesKeepsEditedOverride(t *testing.T) {
	isolate(t)
	t.Setenv(EnvLocale, "pt-BR")

	prev, _ := Load()
	next := prev
	next.General.Locale = "en"
	next.General.WeekStart = "sunday"
	if err := SaveChanges(prev, next); err != nil {
		t.Fatalf("SaveChanges: %v", err)
	}
	onDisk, _ := LoadFile()
	if onDisk.General.WeekStart != "sunday" {
		t.Fatalf("week_start = %q", onDisk.General.WeekStart)
	}
	// en is what the user picked over the override, so it is written
	if onDisk.General.Locale != "en" {
		t.Fatalf("locale = %q", onDisk.General.Locale)
	}
}
