package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/paycal/internal/datekey"
)

var rmCmd = &cobra.Command{
	Use:     "rm YYYY-MM-DD INDEX",
	Aliases: []string{"delete"},
	Short:   "Delete a transaction by its position on a day",
	Long:    "Delete a transaction by its position on a day. Positions are listed by `paycal day`.",
	Args:    cobra.ExactArgs(2),
	RunE:    runRm,
}

func init() {
	rootCmd.AddCommand(rmCmd)
}

func runRm(_ *cobra.Command, args []string) error {
	k, err := datekey.Parse(args[0])
	if err != nil {
		return err
	}
	index, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("index must be a number: %w", err)
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	ed, err := s.newEditor(k)
	if err != nil {
		return err
	}

	before := len(ed.Open(k))
	rows := ed.Delete(k, index)
	ed.Close()
	if len(rows) == before {
		return fmt.Errorf("no transaction %d on %s (%d recorded)", index, k, before)
	}
	if err := s.checkSaved(); err != nil {
		return err
	}

	fmt.Printf("  Deleted transaction %d on %s\n", index, k)
	if len(rows) > 0 {
		fmt.Println()
		fmt.Print(renderRows(s, rows))
	}
	return nil
}
