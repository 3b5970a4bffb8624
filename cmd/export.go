package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var flagExportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write all transactions as JSON",
	Long:  "Write all transactions as the JSON document they are persisted as, keyed by date.",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&flagExportOut, "output", "o", "", "Write to a file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	data, err := s.ledger.Export()
	if err != nil {
		return fmt.Errorf("encoding transactions: %w", err)
	}

	if flagExportOut == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(flagExportOut, data, 0o600); err != nil {
		return fmt.Errorf("writing export: %w", err)
	}
	fmt.Fprintf(os.Stderr, "  Exported %d days to %s\n", s.ledger.Len(), flagExportOut)
	return nil
}
