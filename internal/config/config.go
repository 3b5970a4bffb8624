package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config holds all paycal configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Appearance AppearanceConfig `toml:"appearance"`
	Methods    []Method         `toml:"methods"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	WeekStart string `toml:"week_start"`
	DataFile  string `toml:"data_file,omitempty"`
	Locale    string `toml:"locale"`
}

// AppearanceConfig holds theme and display settings.
type AppearanceConfig struct {
	Theme    string `toml:"theme"`
	Currency string `toml:"currency"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			WeekStart: "monday",
			Locale:    "en",
		},
		Appearance: AppearanceConfig{
			Theme:    "flexoki-dark",
			Currency: "R$",
		},
		Methods: DefaultMethods(),
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "paycal")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "paycal")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// DataDir returns the XDG-compliant directory for the default database.
func DataDir() string {
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return filepath.Join(xdg, "paycal")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".cache", "paycal")
}

// DataPath returns the database path: the configured data_file or the
// default under DataDir.
func DataPath(cfg Config) string {
	if cfg.General.DataFile != "" {
		return expandHome(cfg.General.DataFile)
	}
	return filepath.Join(DataDir(), "paycal.db")
}

// Load reads the config file, returning defaults if it doesn't exist.
// Environment overrides are applied last.
func Load() (Config, error) {
	cfg, err := LoadFile()
	if err != nil {
		return cfg, err
	}
	applyEnv(&cfg)
	return cfg, nil
}

// LoadFile reads the config file without environment overrides. It is
// the base that edits are written back to.
func LoadFile() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	switch {
	case err == nil:
		// A file without [[methods]] keeps the default catalog.
		cfg.Methods = nil
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return DefaultConfig(), fmt.Errorf("parsing config: %w", err)
		}
		if len(cfg.Methods) == 0 {
			cfg.Methods = DefaultMethods()
		}
	case !os.IsNotExist(err):
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// SaveChanges writes the settings that differ between prev and next onto
// the file config and saves it. Values that only came from flags or the
// environment stay out of the file unless they were edited.
func SaveChanges(prev, next Config) error {
	base, err := LoadFile()
	if err != nil {
		return err
	}
	if next.General.WeekStart != prev.General.WeekStart {
		base.General.WeekStart = next.General.WeekStart
	}
	if next.General.Locale != prev.General.Locale {
		base.General.Locale = next.General.Locale
	}
	if next.General.DataFile != prev.General.DataFile {
		base.General.DataFile = next.General.DataFile
	}
	if next.Appearance.Theme != prev.Appearance.Theme {
		base.Appearance.Theme = next.Appearance.Theme
	}
	if next.Appearance.Currency != prev.Appearance.Currency {
		base.Appearance.Currency = next.Appearance.Currency
	}
	return Save(base)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}

// Environment variables that override the file.
const (
	EnvDataFile  = "PAYCAL_DATA_FILE"
	EnvWeekStart = "PAYCAL_WEEK_START"
	EnvLocale    = "PAYCAL_LOCALE"
)

// applyEnv loads a .env file from the config dir, without clobbering the
// process environment, and applies the overrides it exposes.
func applyEnv(cfg *Config) {
	_ = godotenv.Load(filepath.Join(ConfigDir(), ".env"))

	if v := os.Getenv(EnvDataFile); v != "" {
		cfg.General.DataFile = v
	}
	if v := os.Getenv(EnvWeekStart); v != "" {
		cfg.General.WeekStart = strings.ToLower(v)
	}
	if v := os.Getenv(EnvLocale); v != "" {
		cfg.General.Locale = v
	}
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}
