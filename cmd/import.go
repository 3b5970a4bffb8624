package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import FILE",
	Short: "Add transactions from a JSON export",
	Long: "Add transactions from a file written by `paycal export` (\"-\" reads stdin).\n" +
		"They are appended after any already recorded on the same day.",
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(_ *cobra.Command, args []string) error {
	var (
		data []byte
		err  error
	)
	if args[0] == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(args[0])
	}
	if err != nil {
		return fmt.Errorf("reading import: %w", err)
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	n, err := s.ledger.Import(data)
	if err != nil {
		return fmt.Errorf("invalid import file: %w", err)
	}
	if err := s.checkSaved(); err != nil {
		return err
	}
	fmt.Printf("  Imported %d transactions\n", n)
	return nil
}
