package cmd

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/paycal/internal/config"
	"github.com/theirongolddev/paycal/internal/tui"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	// The file alone, so env overrides are not written back
	cfg, _ := config.LoadFile()

	cfg, err := tui.RunSetup(cfg)
	if errors.Is(err, huh.ErrUserAborted) {
		fmt.Println("  Setup cancelled; nothing saved.")
		return nil
	}
	if err != nil {
		return err
	}

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	fmt.Println("  Run `paycal` to open the calendar.")
	return nil
}
