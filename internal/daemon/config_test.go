package daemon

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/banco-ledger/banco/internal/ledger"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if !cfg.Seed.Enabled {
		t.Error("Seed.Enabled should be true by default")
	}
	if cfg.Seed.Owner != "Tony Stark" {
		t.Errorf("Seed.Owner = %q, want %q", cfg.Seed.Owner, "Tony Stark")
	}
	if cfg.Seed.Balance != "1599.99" {
		t.Errorf("Seed.Balance = %q, want %q", cfg.Seed.Balance, "1599.99")
	}
	if cfg.Sweep.Enabled {
		t.Error("Sweep.Enabled should be false by default (opt-in)")
	}
	if cfg.Sweep.InterestRate != "0.02" {
		t.Errorf("Sweep.InterestRate = %q, want %q", cfg.Sweep.InterestRate, "0.02")
	}
	if cfg.Observability.Enabled {
		t.Error("Observability.Enabled should be false by default (opt-in)")
	}
	if cfg.Observability.Host != "127.0.0.1" {
		t.Errorf("Observability.Host = %q, want %q", cfg.Observability.Host, "127.0.0.1")
	}
	if cfg.Observability.Port != 9464 {
		t.Errorf("Observability.Port = %d, want %d", cfg.Observability.Port, 9464)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load missing file error: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("missing file should yield defaults, got %+v", cfg)
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[seed]
enabled = false

[sweep]
enabled = true
interval = "1h"
interest_rate = "0.05"
monthly_fee = "12.50"

[observability]
enabled = true
port = 9999
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Seed.Enabled {
		t.Error("Seed.Enabled should be overridden to false")
	}
	// Untouched keys keep their defaults.
	if cfg.Seed.Owner != "Tony Stark" {
		t.Errorf("Seed.Owner = %q, want default", cfg.Seed.Owner)
	}
	if !cfg.Sweep.Enabled || cfg.Sweep.Interval != "1h" {
		t.Errorf("Sweep = %+v, want enabled with 1h interval", cfg.Sweep)
	}
	if cfg.Sweep.MonthlyFee != "12.50" {
		t.Errorf("Sweep.MonthlyFee = %q, want %q", cfg.Sweep.MonthlyFee, "12.50")
	}
	if !cfg.Observability.Enabled || cfg.Observability.Port != 9999 {
		t.Errorf("Observability = %+v, want enabled on 9999", cfg.Observability)
	}
}

func TestLoad_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`[seed`), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load of malformed toml should fail")
	}
}

func TestSeedConfig_AccountType(t *testing.T) {
	tests := []struct {
		input string
		want  ledger.AccountType
	}{
		{"SAVINGS", ledger.Savings},
		{"CHECKING", ledger.Checking},
		{"", ledger.Checking},
		{"bogus", ledger.Checking},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			c := SeedConfig{Type: tt.input}
			if got := c.AccountType(); got != tt.want {
				t.Errorf("AccountType(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestSweepConfig_IntervalDuration(t *testing.T) {
	tests := []struct {
		input string
		want  time.Duration
	}{
		{"1h", time.Hour},
		{"30s", 30 * time.Second},
		{"", 720 * time.Hour},        // default
		{"-5m", 720 * time.Hour},     // non-positive
		{"garbage", 720 * time.Hour}, // malformed
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			c := SweepConfig{Interval: tt.input}
			if got := c.IntervalDuration(); got != tt.want {
				t.Errorf("IntervalDuration(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestSweepConfig_DecimalHelpers(t *testing.T) {
	c := SweepConfig{InterestRate: "0.03", MonthlyFee: "15"}
	if got := c.Rate().String(); got != "0.03" {
		t.Errorf("Rate() = %s, want 0.03", got)
	}
	if got := c.Fee().StringFixed(2); got != "15.00" {
		t.Errorf("Fee() = %s, want 15.00", got)
	}

	bad := SweepConfig{InterestRate: "x", MonthlyFee: ""}
	if !bad.Rate().IsZero() || !bad.Fee().IsZero() {
		t.Error("malformed decimals should fall back to zero")
	}
}
