package daemon

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/banco-ledger/banco/internal/ledger"
)

func TestSweeper_RunOnce(t *testing.T) {
	l := ledger.New()
	savings, _ := l.CreateAccount("Ana", ledger.Savings, decimal.RequireFromString("100"))
	checking, _ := l.CreateAccount("Bea", ledger.Checking, decimal.RequireFromString("10"))

	s := NewSweeper(l, time.Hour, decimal.RequireFromString("0.03"), decimal.RequireFromString("15"))
	res := s.RunOnce()

	if res.InterestApplied != 1 || res.FeesSkipped != 1 {
		t.Errorf("SweepResult = %+v, want interest=1 skipped=1", res)
	}
	if got := savings.Balance().StringFixed(2); got != "103.00" {
		t.Errorf("savings balance = %s, want 103.00", got)
	}
	if got := checking.Balance().StringFixed(2); got != "10.00" {
		t.Errorf("checking balance = %s, want 10.00", got)
	}
	if s.Runs() != 1 {
		t.Errorf("Runs() = %d, want 1", s.Runs())
	}
}

func TestSweeper_StartStop(t *testing.T) {
	l := ledger.New()
	l.CreateAccount("Ana", ledger.Savings, decimal.RequireFromString("100"))

	s := NewSweeper(l, 10*time.Millisecond, decimal.RequireFromString("0.01"), decimal.Zero)
	s.Start()

	deadline := time.After(2 * time.Second)
	for s.Runs() == 0 {
		select {
		case <-deadline:
			t.Fatal("sweeper never ran")
		case <-time.After(5 * time.Millisecond):
		}
	}
	s.Stop()

	runs := s.Runs()
	time.Sleep(30 * time.Millisecond)
	if s.Runs() != runs {
		t.Errorf("sweeper kept running after Stop: %d -> %d", runs, s.Runs())
	}
}

func TestSweeper_StopWithoutStart(t *testing.T) {
	s := NewSweeper(ledger.New(), time.Hour, decimal.Zero, decimal.Zero)
	s.Stop() // must not panic or block
}
