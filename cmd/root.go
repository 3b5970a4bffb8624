// Package cmd implements the paycal CLI commands.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/paycal/internal/calendar"
	"github.com/theirongolddev/paycal/internal/config"
	"github.com/theirongolddev/paycal/internal/ledger"
	"github.com/theirongolddev/paycal/internal/logging"
	"github.com/theirongolddev/paycal/internal/store"
	"github.com/theirongolddev/paycal/internal/tui/theme"
)

var (
	flagDataFile  string
	flagWeekStart string
	flagMemory    bool
	flagLogFile   string
	flagVerbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "paycal",
	Short: "Calendar of dated payments",
	Long:  "Record payments against calendar days and browse them month by month.",
	RunE:  runTUI,

	SilenceUsage: true,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDataFile, "data-file", "", "SQLite file holding transactions (default from config)")
	rootCmd.PersistentFlags().StringVarP(&flagWeekStart, "week-start", "w", "", "First day of the week: monday or sunday")
	rootCmd.PersistentFlags().BoolVar(&flagMemory, "memory", false, "Keep transactions in memory only")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", `Log destination ("-" for stderr, default in the data dir)`)
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Debug logging")
}

// session is the state shared by every command: config, logging and the
// opened ledger.
type session struct {
	cfg     config.Config
	ledger  *ledger.Ledger
	log     *slog.Logger
	closers []io.Closer
}

// Close releases the store and the log file.
func (s *session) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		_ = s.closers[i].Close()
	}
}

// gridOptions resolves the configured week start and locale.
func (s *session) gridOptions() calendar.Options {
	opts, err := calendar.OptionsFor(s.cfg.General.WeekStart, s.cfg.General.Locale)
	if err != nil {
		s.log.Warn("invalid week start, using monday", "error", err)
	}
	return opts
}

// loadConfig reads the config file and applies persistent flag overrides.
// A broken config file is reported and defaults are used.
func loadConfig() config.Config {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "  Warning: %v (using defaults)\n", err)
	}
	if flagDataFile != "" {
		cfg.General.DataFile = flagDataFile
	}
	if flagWeekStart != "" {
		cfg.General.WeekStart = strings.ToLower(flagWeekStart)
	}
	theme.SetActive(cfg.Appearance.Theme)
	return cfg
}

// openSession is the shared startup path used by all commands.
func openSession() (*session, error) {
	s := &session{cfg: loadConfig()}

	logPath := flagLogFile
	if logPath == "" {
		logPath = logging.DefaultPath(config.DataDir())
	}
	closer, err := logging.Setup(logPath, logging.Level(flagVerbose))
	if err != nil {
		return nil, fmt.Errorf("setting up logging: %w", err)
	}
	s.closers = append(s.closers, closer)
	s.log = logging.For(logging.ComponentApp)

	var blobs store.Blob
	if flagMemory {
		blobs = store.NewMemory()
	} else {
		path := config.DataPath(s.cfg)
		db, err := store.Open(path)
		if err != nil {
			s.Close()
			return nil, fmt.Errorf("opening %s: %w", path, err)
		}
		s.closers = append(s.closers, db)
		blobs = db
		s.log.Debug("store opened", "path", path)
	}

	start := time.Now()
	s.ledger = ledger.Load(blobs, logging.For(logging.ComponentLedger))
	s.log.Debug("ledger loaded", "days", s.ledger.Len(), "elapsed", time.Since(start))
	return s, nil
}

// checkSaved turns a failed write into a command error.
func (s *session) checkSaved() error {
	if err := s.ledger.Err(); err != nil {
		return fmt.Errorf("change kept in memory but not saved: %w", err)
	}
	return nil
}

// parseMonth accepts YYYY-MM. An empty argument means now.
func parseMonth(arg string, now time.Time) (year, month0 int, err error) {
	if arg == "" {
		return now.Year(), int(now.Month()) - 1, nil
	}
	t, err := time.Parse("2006-01", arg)
	if err != nil {
		return 0, 0, errors.New("month must be YYYY-MM")
	}
	return t.Year(), int(t.Month()) - 1, nil
}
