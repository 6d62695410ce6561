package daemon

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/banco-ledger/banco/internal/ledger"
	"github.com/banco-ledger/banco/internal/observability"
)

// Sweeper applies interest and monthly fees across the whole ledger on
// a fixed interval. The underlying sweep is best-effort: accounts that
// cannot cover the fee are skipped for that pass. There is no immediate
// retry; the next tick is simply a fresh pass.
type Sweeper struct {
	ledger   *ledger.Ledger
	interval time.Duration
	rate     decimal.Decimal
	fee      decimal.Decimal

	mu   sync.Mutex
	runs int

	cancel context.CancelFunc
	done   chan struct{}
}

// NewSweeper builds a sweeper over l.
func NewSweeper(l *ledger.Ledger, interval time.Duration, rate, fee decimal.Decimal) *Sweeper {
	return &Sweeper{ledger: l, interval: interval, rate: rate, fee: fee}
}

// Start launches the sweep loop in the background.
func (s *Sweeper) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.done = make(chan struct{})
	log.Printf("[sweeper] started: interval=%s rate=%s fee=%s",
		s.interval, s.rate, s.fee.StringFixed(2))
	go s.loop(ctx)
}

// Stop halts the loop and waits for it to exit.
func (s *Sweeper) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
}

// Runs returns the number of completed sweep passes.
func (s *Sweeper) Runs() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.runs
}

// RunOnce executes a single sweep pass and records its metrics.
func (s *Sweeper) RunOnce() ledger.SweepResult {
	res := s.ledger.ApplyInterestAndFees(s.rate, s.fee)
	observability.SweepRuns.Inc()
	observability.SweepFeesSkipped.Add(float64(res.FeesSkipped))

	s.mu.Lock()
	s.runs++
	s.mu.Unlock()

	log.Printf("[sweeper] pass complete: interest=%d fees=%d skipped=%d",
		res.InterestApplied, res.FeesApplied, res.FeesSkipped)
	return res
}

func (s *Sweeper) loop(ctx context.Context) {
	defer close(s.done)
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.RunOnce()
		}
	}
}
