package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/paycal/internal/cli"
	"github.com/theirongolddev/paycal/internal/datekey"
	"github.com/theirongolddev/paycal/internal/editor"
	"github.com/theirongolddev/paycal/internal/logging"
)

var dayCmd = &cobra.Command{
	Use:   "day YYYY-MM-DD",
	Short: "List the transactions recorded on a day",
	Args:  cobra.ExactArgs(1),
	RunE:  runDay,
}

func init() {
	rootCmd.AddCommand(dayCmd)
}

// newEditor returns an editor over a controller showing k's month.
func (s *session) newEditor(k datekey.Key) (*editor.Editor, error) {
	year, month0, _, err := datekey.Decode(k)
	if err != nil {
		return nil, err
	}
	n := s.newNav(year, month0)
	return editor.New(s.ledger, n, nil, logging.For(logging.ComponentEditor)), nil
}

func runDay(_ *cobra.Command, args []string) error {
	k, err := datekey.Parse(args[0])
	if err != nil {
		return err
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
	rows := ed.Open(k)
	defer ed.Close()

	fmt.Println()
	fmt.Println(cli.RenderTitle(string(k)))
	fmt.Println()

	if len(rows) == 0 {
		fmt.Println("  No transactions.")
		return nil
	}
	fmt.Print(renderRows(s, rows))
	return nil
}

func renderRows(s *session, rows []editor.Row) string {
	cur := s.cfg.Appearance.Currency
	out := make([][]string, 0, len(rows)+2)
	var total float64
	for _, r := range rows {
		total += r.Amount
		photo := ""
		if r.PhotoURL != "" {
			photo = "yes"
		}
		out = append(out, []string{
			strconv.Itoa(r.Index),
			r.Description,
			s.cfg.DisplayName(r.Method),
			photo,
			cli.FormatMoney(cur, r.Amount),
		})
	}
	out = append(out, []string{"---"})
	out = append(out, []string{"", "Total", "", "", cli.FormatMoney(cur, total)})

	return cli.RenderTable(cli.Table{
		Headers:  []string{"#", "Description", "Method", "Photo", "Amount"},
		Rows:     out,
		LeftCols: 4,
	})
}
