package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/paycal/internal/calendar"
	"github.com/theirongolddev/paycal/internal/config"
	"github.com/theirongolddev/paycal/internal/ledger"
	"github.com/theirongolddev/paycal/internal/store"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Week start: %s\n", cfg.General.WeekStart)
	fmt.Printf("    Locale:     %s\n", calendar.LocaleByName(cfg.General.Locale).Name)
	if flagMemory {
		fmt.Println("    Data file:  (memory only)")
	} else {
		path := config.DataPath(cfg)
		fmt.Printf("    Data file:  %s\n", path)
		at, err := lastSaved(path)
		switch {
		case err != nil:
			fmt.Printf("    Last saved: unknown (%v)\n", err)
		case at.IsZero():
			fmt.Println("    Last saved: never")
		default:
			fmt.Printf("    Last saved: %s\n", at.Local().Format("2006-01-02 15:04"))
		}
	}
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme:    %s\n", cfg.Appearance.Theme)
	fmt.Printf("    Currency: %s\n", cfg.Appearance.Currency)
	fmt.Println()

	fmt.Println("  [Methods]")
	for _, m := range cfg.Methods {
		color := m.Color
		if color == "" {
			color = "auto"
		}
		fmt.Printf("    %-8s %-10s %s\n", m.Name, cfg.DisplayName(m.Name), color)
	}
	fmt.Println()

	fmt.Printf("  Overrides: %s, %s, %s (also read from %s/.env)\n",
		config.EnvDataFile, config.EnvWeekStart, config.EnvLocale, config.ConfigDir())
	fmt.Println("  Run `paycal setup` to reconfigure.")
	return nil
}

// lastSaved returns when the transactions were last written to the
// database at path. A missing file has never been saved.
func lastSaved(path string) (time.Time, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return time.Time{}, nil
	}
	db, err := store.Open(path)
	if err != nil {
		return time.Time{}, err
	}
	defer db.Close()
	return db.UpdatedAt(ledger.BlobKey)
}
