package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/paycal/internal/calendar"
	"github.com/theirongolddev/paycal/internal/cli"
	"github.com/theirongolddev/paycal/internal/config"
	"github.com/theirongolddev/paycal/internal/logging"
	"github.com/theirongolddev/paycal/internal/nav"
	"github.com/theirongolddev/paycal/internal/pipeline"
	"github.com/theirongolddev/paycal/internal/tui/theme"
)

var monthCmd = &cobra.Command{
	Use:   "month [YYYY-MM]",
	Short: "Print a month grid with payment method markers",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runMonth,
}

func init() {
	rootCmd.AddCommand(monthCmd)
}

// newNav returns a controller whose grids read from the session's ledger.
func (s *session) newNav(year, month0 int) *nav.Controller {
	opts := s.gridOptions()
	build := func(y, m int, today time.Time) calendar.Grid {
		return calendar.Build(y, m, today, s.ledger, opts)
	}
	return nav.New(year, month0, build, time.Now, logging.For(logging.ComponentNav))
}

// methodColors maps method names to their configured indicator colors.
func methodColors(cfg config.Config) cli.ColorFunc {
	return func(name string) lipgloss.Color {
		for i, m := range cfg.Methods {
			if strings.EqualFold(m.Name, name) {
				return theme.Active.MethodColor(m.Color, i)
			}
		}
		return theme.Active.TextMuted
	}
}

func runMonth(_ *cobra.Command, args []string) error {
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

	n := s.newNav(year, month0)
	if !n.Built() {
		return fmt.Errorf("could not build %04d-%02d", year, month0+1)
	}
	colors := methodColors(s.cfg)

	fmt.Println()
	fmt.Print(cli.RenderMonth(n.Grid(), colors, 0))
	fmt.Println()

	legend := make([]string, 0, len(s.cfg.Methods))
	for _, m := range s.cfg.Methods {
		dot := lipgloss.NewStyle().Foreground(colors(m.Name)).Render("•")
		legend = append(legend, dot+" "+s.cfg.DisplayName(m.Name))
	}
	fmt.Println("  " + strings.Join(legend, "   "))

	sum := pipeline.AggregateMonth(s.ledger, year, month0)
	if sum.Transactions == 0 {
		fmt.Println("\n  No transactions this month.")
		return nil
	}
	fmt.Printf("\n  %s across %s  %s\n",
		cli.FormatCount(sum.Transactions, "transaction"),
		cli.FormatCount(sum.ActiveDays, "day"),
		cli.FormatMoney(s.cfg.Appearance.Currency, sum.Total),
	)
	return nil
}
