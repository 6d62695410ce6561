// Package daemon wires the long-running pieces around the ledger: the
// TOML configuration and the periodic interest-and-fee sweeper.
package daemon

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/shopspring/decimal"

	"github.com/banco-ledger/banco/internal/ledger"
)

// Config is the on-disk configuration, read from ~/.banco/config.toml.
type Config struct {
	Seed          SeedConfig          `toml:"seed"`
	Sweep         SweepConfig         `toml:"sweep"`
	Observability ObservabilityConfig `toml:"observability"`
}

// SeedConfig describes the account created at boot.
type SeedConfig struct {
	Enabled bool   `toml:"enabled"`
	Owner   string `toml:"owner"`
	Type    string `toml:"type"`
	Balance string `toml:"balance"`
}

// SweepConfig controls the periodic interest-and-fee sweep.
type SweepConfig struct {
	Enabled      bool   `toml:"enabled"`
	Interval     string `toml:"interval"`
	InterestRate string `toml:"interest_rate"`
	MonthlyFee   string `toml:"monthly_fee"`
}

// ObservabilityConfig controls the loopback health/metrics listener.
type ObservabilityConfig struct {
	Enabled bool   `toml:"enabled"`
	Host    string `toml:"host"`
	Port    int    `toml:"port"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	return Config{
		Seed: SeedConfig{
			Enabled: true,
			Owner:   "Tony Stark",
			Type:    "CHECKING",
			Balance: "1599.99",
		},
		Sweep: SweepConfig{
			Enabled:      false,
			Interval:     "720h",
			InterestRate: "0.02",
			MonthlyFee:   "5.00",
		},
		Observability: ObservabilityConfig{
			Enabled: false,
			Host:    "127.0.0.1",
			Port:    9464,
		},
	}
}

// DefaultPath returns ~/.banco/config.toml.
func DefaultPath() string {
	if env := os.Getenv("BANCO_HOME"); env != "" {
		return filepath.Join(env, "config.toml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".banco", "config.toml")
}

// Load reads path over the defaults. A missing file is not an error;
// the defaults apply unchanged.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// AccountType maps the configured type string to a ledger type.
// Anything other than SAVINGS means checking, matching the console's
// account-creation prompt.
func (c SeedConfig) AccountType() ledger.AccountType {
	if c.Type == string(ledger.Savings) {
		return ledger.Savings
	}
	return ledger.Checking
}

// InitialBalance parses the configured balance; malformed values fall
// back to zero.
func (c SeedConfig) InitialBalance() decimal.Decimal {
	return parseDecimal(c.Balance)
}

// IntervalDuration parses the sweep interval; malformed or
// non-positive values fall back to the default 720h.
func (c SweepConfig) IntervalDuration() time.Duration {
	d, err := time.ParseDuration(c.Interval)
	if err != nil || d <= 0 {
		return 720 * time.Hour
	}
	return d
}

// Rate parses the configured interest rate.
func (c SweepConfig) Rate() decimal.Decimal {
	return parseDecimal(c.InterestRate)
}

// Fee parses the configured monthly fee.
func (c SweepConfig) Fee() decimal.Decimal {
	return parseDecimal(c.MonthlyFee)
}

func parseDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
