package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/paycal/internal/cli"
	"github.com/theirongolddev/paycal/internal/pipeline"
)

var summaryCmd = &cobra.Command{
	Use:   "summary [YYYY-MM]",
	Short: "Month totals by payment method and day",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, args []string) error {
	var arg string
	if len(args) > 0 {
		arg = args[0]
	}
	year, month0, err := parseMonth(arg, time.Now())
	if err != nil {
		return err
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	sum := pipeline.AggregateMonth(s.ledger, year, month0)
	cur := s.cfg.Appearance.Currency
	title := s.newNav(year, month0).Grid().Title

	fmt.Println()
	fmt.Println(cli.RenderTitle("SUMMARY  " + title))
	fmt.Println()

	if sum.Transactions == 0 {
		fmt.Println("  No transactions this month.")
		return nil
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Spent", cli.FormatMoney(cur, sum.Total)},
			{"Transactions", cli.FormatNumber(int64(sum.Transactions))},
			{"Active days", fmt.Sprintf("%d / %d", sum.ActiveDays, sum.DaysInMonth)},
			{"Per active day", cli.FormatMoney(cur, sum.PerActiveDay)},
			{"Largest day", string(sum.LargestDay)},
		},
	}))
	fmt.Println()

	rows := make([][]string, 0, len(sum.Methods))
	for _, m := range sum.Methods {
		rows = append(rows, []string{
			s.cfg.DisplayName(m.Method),
			cli.FormatNumber(int64(m.Transactions)),
			cli.FormatMoney(cur, m.Total),
			cli.FormatPercent(m.SharePercent),
		})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "By method",
		Headers: []string{"Method", "Count", "Total", "Share"},
		Rows:    rows,
	}))
	fmt.Println()

	colors := methodColors(s.cfg)
	maxTotal := 0.0
	for _, m := range sum.Methods {
		maxTotal = max(maxTotal, m.Total)
	}
	for _, m := range sum.Methods {
		label := fmt.Sprintf("%-8s", cli.Truncate(s.cfg.DisplayName(m.Method), 8))
		fmt.Println(cli.RenderHorizontalBar(label, m.Total, maxTotal, 30, colors(m.Method)))
	}
	fmt.Println()

	fmt.Printf("  Daily  %s\n\n", cli.RenderSparkline(pipeline.DailyTotals(sum)))

	top := pipeline.TopDays(sum, 5)
	dayRows := make([][]string, 0, len(top))
	for _, d := range top {
		dayRows = append(dayRows, []string{
			string(d.Key),
			cli.FormatNumber(int64(d.Transactions)),
			cli.FormatMoney(cur, d.Total),
		})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Top days",
		Headers: []string{"Date", "Count", "Total"},
		Rows:    dayRows,
	}))

	return nil
}
