package cli

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/banco-ledger/banco/internal/ledger"
)

func init() {
	rootCmd.AddCommand(demoCmd)
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run a scripted demonstration of the ledger",
	Long: `Create two accounts, transfer between them and run an
interest-and-fee sweep, printing accounts and histories along the way.
Useful as a smoke check without a terminal session.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDemo(cmd.OutOrStdout())
	},
}

func runDemo(w io.Writer) error {
	l := ledger.New()

	checking, err := l.CreateAccount("Tony Stark", ledger.Checking, decimal.RequireFromString("1599.99"))
	if err != nil {
		return err
	}
	savings, err := l.CreateAccount("Pepper Potts", ledger.Savings, decimal.Zero)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "Accounts:")
	for _, a := range l.Accounts() {
		fmt.Fprintf(w, "  %s\n", a)
	}

	fmt.Fprintf(w, "\nTransfer 500.00 from %d to %d\n", checking.ID(), savings.ID())
	if err := l.Transfer(checking.ID(), savings.ID(), decimal.RequireFromString("500")); err != nil {
		return err
	}
	for _, a := range l.Accounts() {
		fmt.Fprintf(w, "  %s\n", a)
	}

	fmt.Fprintln(w, "\nSweep: interest 3%, monthly fee 15.00")
	res := l.ApplyInterestAndFees(decimal.RequireFromString("0.03"), decimal.RequireFromString("15"))
	fmt.Fprintf(w, "  interest=%d fees=%d skipped=%d\n",
		res.InterestApplied, res.FeesApplied, res.FeesSkipped)

	for _, a := range l.Accounts() {
		fmt.Fprintf(w, "\nHistory of %s:\n", a)
		history, err := l.HistoryOf(a.ID())
		if err != nil {
			return err
		}
		for _, rec := range history {
			fmt.Fprintf(w, "  %s\n", rec)
		}
	}
	return nil
}
