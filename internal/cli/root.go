// Package cli implements the banco command tree. Every command builds
// its own in-memory ledger; state lives for the life of the process and
// is lost on exit.
package cli

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/banco-ledger/banco/internal/daemon"
	"github.com/banco-ledger/banco/internal/ledger"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "banco",
	Short: "In-memory account ledger",
	Long: `banco is an in-memory account ledger: it creates checking and
savings accounts, applies deposits, withdrawals, interest and fees,
moves funds between accounts, and keeps an append-only per-account
transaction history. Nothing is persisted; state is lost on exit.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to config.toml (default ~/.banco/config.toml)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig reads the configured (or default) config file.
func loadConfig() (daemon.Config, error) {
	path := configPath
	if path == "" {
		path = daemon.DefaultPath()
	}
	return daemon.Load(path)
}

// newLedger builds the process ledger, seeding it per [seed].
func newLedger(cfg daemon.Config) *ledger.Ledger {
	l := ledger.New()
	if cfg.Seed.Enabled {
		if _, err := l.CreateAccount(cfg.Seed.Owner, cfg.Seed.AccountType(), cfg.Seed.InitialBalance()); err != nil {
			log.Printf("[cli] seed account skipped: %v", err)
		}
	}
	return l
}
