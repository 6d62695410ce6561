// Package observability exposes Prometheus metrics for the ledger and
// the loopback health endpoint that serves them. The ledger API itself
// is never exposed over the network; only process health and metrics
// are.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shopspring/decimal"

	"github.com/banco-ledger/banco/internal/ledger"
)

// ─── Operation Metrics ──────────────────────────────────────────────────────

// OpsTotal counts ledger operations by kind and outcome.
var OpsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "banco",
	Subsystem: "ledger",
	Name:      "operations_total",
	Help:      "Total ledger operations by kind and outcome.",
}, []string{"kind", "outcome"})

// SweepRuns counts completed interest-and-fee sweeps.
var SweepRuns = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "banco",
	Subsystem: "sweep",
	Name:      "runs_total",
	Help:      "Total interest-and-fee sweeps executed.",
})

// SweepFeesSkipped counts checking accounts skipped by a sweep because
// they could not cover the monthly fee.
var SweepFeesSkipped = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "banco",
	Subsystem: "sweep",
	Name:      "fees_skipped_total",
	Help:      "Total fee applications skipped for insufficient funds.",
})

// ObserveOp records one ledger operation outcome.
func ObserveOp(kind string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	OpsTotal.WithLabelValues(kind, outcome).Inc()
}

// ─── Ledger Collector ───────────────────────────────────────────────────────

// LedgerCollector exports live registry gauges (account counts and
// aggregate balances per type) straight from a Ledger, so the core
// package stays free of metrics imports.
type LedgerCollector struct {
	ledger   *ledger.Ledger
	accounts *prometheus.Desc
	balance  *prometheus.Desc
}

// NewLedgerCollector returns a collector reading from l.
func NewLedgerCollector(l *ledger.Ledger) *LedgerCollector {
	return &LedgerCollector{
		ledger: l,
		accounts: prometheus.NewDesc(
			"banco_ledger_accounts",
			"Number of accounts by type.",
			[]string{"type"}, nil),
		balance: prometheus.NewDesc(
			"banco_ledger_balance_total",
			"Aggregate balance by account type.",
			[]string{"type"}, nil),
	}
}

// Describe implements prometheus.Collector.
func (c *LedgerCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.accounts
	ch <- c.balance
}

// Collect implements prometheus.Collector.
func (c *LedgerCollector) Collect(ch chan<- prometheus.Metric) {
	counts := make(map[ledger.AccountType]int)
	sums := make(map[ledger.AccountType]decimal.Decimal)
	for _, a := range c.ledger.Accounts() {
		counts[a.Type()]++
		sums[a.Type()] = sums[a.Type()].Add(a.Balance())
	}
	for _, t := range []ledger.AccountType{ledger.Checking, ledger.Savings} {
		total, _ := sums[t].Float64()
		ch <- prometheus.MustNewConstMetric(c.accounts, prometheus.GaugeValue,
			float64(counts[t]), string(t))
		ch <- prometheus.MustNewConstMetric(c.balance, prometheus.GaugeValue,
			total, string(t))
	}
}
