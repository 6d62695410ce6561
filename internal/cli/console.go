package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/banco-ledger/banco/internal/daemon"
	"github.com/banco-ledger/banco/internal/ledger"
	"github.com/banco-ledger/banco/internal/observability"
)

func init() {
	rootCmd.AddCommand(consoleCmd)
}

var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Run the interactive ledger console",
	Long: `Run the menu-driven console against a fresh in-memory ledger.
The ledger is seeded from [seed] in the config. When [sweep] or
[observability] are enabled, the background sweeper and the loopback
metrics listener run for the lifetime of the console.`,
	RunE: runConsole,
}

func runConsole(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	l := newLedger(cfg)

	if cfg.Observability.Enabled {
		prometheus.MustRegister(observability.NewLedgerCollector(l))
		srv := observability.NewServer(cfg.Observability.Host, cfg.Observability.Port)
		srv.Start()
		defer srv.Shutdown(context.Background())
	}
	if cfg.Sweep.Enabled {
		sw := daemon.NewSweeper(l, cfg.Sweep.IntervalDuration(), cfg.Sweep.Rate(), cfg.Sweep.Fee())
		sw.Start()
		defer sw.Stop()
	}

	c := &console{
		ledger: l,
		in:     bufio.NewScanner(cmd.InOrStdin()),
		out:    cmd.OutOrStdout(),
	}
	c.run()
	return nil
}

// console is the interactive menu loop. It only calls the ledger API
// and renders results; no business rule lives here, and no business
// failure ends the session.
type console struct {
	ledger *ledger.Ledger
	in     *bufio.Scanner
	out    io.Writer
}

func (c *console) run() {
	for {
		c.printMenu()
		line, ok := c.readLine()
		if !ok {
			return
		}
		if line == "" {
			continue
		}
		choice, err := strconv.Atoi(line)
		if err != nil {
			c.printf("Invalid option.\n")
			continue
		}
		switch choice {
		case 1:
			c.createAccount()
		case 2:
			c.showBalance()
		case 3:
			c.withdraw()
		case 4:
			c.deposit()
		case 5:
			c.listAccounts()
		case 6:
			c.transfer()
		case 7:
			c.showHistory()
		case 8:
			c.applySweep()
		case 9:
			c.printf("Bye.\n")
			return
		default:
			c.printf("Invalid option.\n")
		}
	}
}

func (c *console) printMenu() {
	c.printf("\n********************\n")
	c.printf("1 - Create account\n")
	c.printf("2 - Show balance\n")
	c.printf("3 - Withdraw\n")
	c.printf("4 - Deposit\n")
	c.printf("5 - List accounts\n")
	c.printf("6 - Transfer between accounts\n")
	c.printf("7 - Show account history\n")
	c.printf("8 - Apply interest and fees\n")
	c.printf("9 - Quit\n")
	c.printf("Select option: ")
}

// ─── Menu Flows ─────────────────────────────────────────────────────────────

func (c *console) createAccount() {
	owner, ok := c.prompt("Owner name: ")
	if !ok {
		return
	}
	kindRaw, ok := c.prompt("Type (1=Checking, 2=Savings): ")
	if !ok {
		return
	}
	kind := ledger.Checking
	if kindRaw == "2" {
		kind = ledger.Savings
	}
	initial, ok := c.promptAmount("Initial balance: ")
	if !ok {
		return
	}

	a, err := c.ledger.CreateAccount(owner, kind, initial)
	observability.ObserveOp("create", err)
	if err != nil {
		c.printf("Error: %v\n", err)
		return
	}
	c.printf("Account created: %s\n", a)
}

func (c *console) showBalance() {
	a, ok := c.promptAccount()
	if !ok {
		return
	}
	c.printf("Saldo: %s\n", a.Balance().StringFixed(2))
}

func (c *console) withdraw() {
	a, ok := c.promptAccount()
	if !ok {
		return
	}
	amount, ok := c.promptAmount("Amount to withdraw: ")
	if !ok {
		return
	}
	_, err := a.Withdraw(amount)
	observability.ObserveOp("withdraw", err)
	if err != nil {
		c.printf("Error: %v\n", err)
		return
	}
	c.printf("Withdrawal complete. New balance: %s\n", a.Balance().StringFixed(2))
}

func (c *console) deposit() {
	a, ok := c.promptAccount()
	if !ok {
		return
	}
	amount, ok := c.promptAmount("Amount to deposit: ")
	if !ok {
		return
	}
	_, err := a.Deposit(amount)
	observability.ObserveOp("deposit", err)
	if err != nil {
		c.printf("Error: %v\n", err)
		return
	}
	c.printf("Deposit complete. New balance: %s\n", a.Balance().StringFixed(2))
}

func (c *console) listAccounts() {
	accounts := c.ledger.Accounts()
	if len(accounts) == 0 {
		c.printf("No accounts.\n")
		return
	}
	for _, a := range accounts {
		c.printf("%s\n", a)
	}
}

func (c *console) transfer() {
	fromID, ok := c.promptID("Source account ID: ")
	if !ok {
		return
	}
	toID, ok := c.promptID("Destination account ID: ")
	if !ok {
		return
	}
	amount, ok := c.promptAmount("Amount to transfer: ")
	if !ok {
		return
	}

	err := c.ledger.Transfer(fromID, toID, amount)
	observability.ObserveOp("transfer", err)
	if err != nil {
		c.printf("Error: %v\n", err)
		return
	}
	c.printf("Transfer complete.\n")
}

func (c *console) showHistory() {
	id, ok := c.promptID("Account ID: ")
	if !ok {
		return
	}
	history, err := c.ledger.HistoryOf(id)
	if err != nil {
		c.printf("Error: %v\n", err)
		return
	}
	for _, rec := range history {
		c.printf("%s\n", rec)
	}
}

func (c *console) applySweep() {
	rate, ok := c.promptAmount("Savings interest rate (e.g. 0.05 = 5%): ")
	if !ok {
		return
	}
	fee, ok := c.promptAmount("Checking monthly fee: ")
	if !ok {
		return
	}

	res := c.ledger.ApplyInterestAndFees(rate, fee)
	observability.SweepRuns.Inc()
	observability.SweepFeesSkipped.Add(float64(res.FeesSkipped))
	c.printf("Sweep complete: interest=%d fees=%d skipped=%d\n",
		res.InterestApplied, res.FeesApplied, res.FeesSkipped)
}

// ─── Input Helpers ──────────────────────────────────────────────────────────

func (c *console) printf(format string, args ...interface{}) {
	fmt.Fprintf(c.out, format, args...)
}

// readLine reads one trimmed line; false means EOF.
func (c *console) readLine() (string, bool) {
	if !c.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

func (c *console) prompt(label string) (string, bool) {
	c.printf("%s", label)
	return c.readLine()
}

func (c *console) promptID(label string) (int64, bool) {
	raw, ok := c.prompt(label)
	if !ok {
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		c.printf("Invalid ID.\n")
		return 0, false
	}
	return id, true
}

func (c *console) promptAccount() (*ledger.Account, bool) {
	id, ok := c.promptID("Account ID: ")
	if !ok {
		return nil, false
	}
	a, err := c.ledger.Account(id)
	if err != nil {
		c.printf("Error: %v\n", err)
		return nil, false
	}
	return a, true
}

func (c *console) promptAmount(label string) (decimal.Decimal, bool) {
	raw, ok := c.prompt(label)
	if !ok {
		return decimal.Zero, false
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		c.printf("Invalid amount.\n")
		return decimal.Zero, false
	}
	return amount, true
}
