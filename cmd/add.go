package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/paycal/internal/cli"
	"github.com/theirongolddev/paycal/internal/datekey"
	"github.com/theirongolddev/paycal/internal/editor"
)

var (
	flagAddDesc   string
	flagAddAmount string
	flagAddMethod string
	flagAddPhoto  string
)

var addCmd = &cobra.Command{
	Use:   "add YYYY-MM-DD",
	Short: "Record a transaction on a day",
	Example: `  paycal add 2025-03-05 --desc Coffee --amount 4.50 --method card
  paycal add 2025-03-05 -d Groceries -a 82,10 -m pix --photo ~/receipt.jpg`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVarP(&flagAddDesc, "desc", "d", "", "Description (required)")
	addCmd.Flags().StringVarP(&flagAddAmount, "amount", "a", "", "Amount, e.g. 12.34 or 12,34 (required)")
	addCmd.Flags().StringVarP(&flagAddMethod, "method", "m", "", "Payment method from the config catalog (required)")
	addCmd.Flags().StringVar(&flagAddPhoto, "photo", "", "Receipt image to attach")
	_ = addCmd.MarkFlagRequired("desc")
	_ = addCmd.MarkFlagRequired("amount")
	_ = addCmd.MarkFlagRequired("method")
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	k, err := datekey.Parse(args[0])
	if err != nil {
		return err
	}
	amount, err := editor.ParseAmount(flagAddAmount)
	if err != nil {
		return err
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	m, ok := s.cfg.Method(flagAddMethod)
	if !ok {
		return fmt.Errorf("unknown payment method %q (configured: %s)",
			flagAddMethod, strings.Join(s.cfg.MethodNames(), ", "))
	}

	ed, err := s.newEditor(k)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	ed.Open(k)
	if _, err := ed.Submit(ctx, editor.Form{
		Description: flagAddDesc,
		Amount:      amount,
		Method:      m.Name,
		PhotoPath:   flagAddPhoto,
	}); err != nil {
		return err
	}
	if err := s.checkSaved(); err != nil {
		return err
	}

	fmt.Printf("  Recorded %s on %s (%s)\n",
		cli.FormatMoney(s.cfg.Appearance.Currency, amount), k, s.cfg.DisplayName(m.Name))
	if flagAddPhoto != "" && !hasPhoto(ed.Rows(k)) {
		fmt.Fprintln(os.Stderr, "  Warning: photo could not be read; recorded without it")
	}
	return nil
}

func hasPhoto(rows []editor.Row) bool {
	return len(rows) > 0 && rows[len(rows)-1].PhotoURL != ""
}
