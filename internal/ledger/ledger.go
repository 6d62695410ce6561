package ledger

import (
	"errors"
	"strings"

	"github.com/sasha-s/go-deadlock"
	"github.com/shopspring/decimal"
)

// Ledger is the registry that owns every account. Identifiers are never
// reused or removed; listing preserves creation order. Multi-account
// operations coordinate the per-account locks, always in ascending
// identifier order.
type Ledger struct {
	mu       deadlock.RWMutex
	seq      Sequence
	accounts map[int64]*Account
	order    []int64
}

// New returns an empty ledger with a fresh identifier sequence.
func New() *Ledger {
	return &Ledger{accounts: make(map[int64]*Account)}
}

// CreateAccount allocates an identifier, builds the account with its
// initial balance clamped to zero, and inserts it into the registry.
// The owner name must not be blank. The account is fully constructed
// before it becomes visible to readers.
func (l *Ledger) CreateAccount(owner string, kind AccountType, initial decimal.Decimal) (*Account, error) {
	if strings.TrimSpace(owner) == "" {
		return nil, ErrInvalidOwner
	}
	a := newAccount(l.seq.Next(), owner, kind, initial)
	l.mu.Lock()
	l.accounts[a.id] = a
	l.order = append(l.order, a.id)
	l.mu.Unlock()
	return a, nil
}

// Account looks up an account by identifier.
func (l *Ledger) Account(id int64) (*Account, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	a, ok := l.accounts[id]
	if !ok {
		return nil, ErrAccountNotFound
	}
	return a, nil
}

// Accounts returns every account in creation order.
func (l *Ledger) Accounts() []*Account {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]*Account, 0, len(l.order))
	for _, id := range l.order {
		out = append(out, l.accounts[id])
	}
	return out
}

// HistoryOf returns the account's transaction history.
func (l *Ledger) HistoryOf(id int64) ([]Record, error) {
	a, err := l.Account(id)
	if err != nil {
		return nil, err
	}
	return a.History(), nil
}

// Transfer atomically moves amount from one account to another,
// appending a debit record to the source and a credit record to the
// destination. The check-and-update happens under both account locks,
// acquired in ascending identifier order regardless of which side is
// the source; two opposing transfers on the same pair would otherwise
// deadlock. On any failure both balances are left unchanged.
func (l *Ledger) Transfer(fromID, toID int64, amount decimal.Decimal) error {
	amount = amount.Round(2)
	if amount.Sign() <= 0 {
		return ErrInvalidAmount
	}
	if fromID == toID {
		return ErrSameAccount
	}

	l.mu.RLock()
	from, okFrom := l.accounts[fromID]
	to, okTo := l.accounts[toID]
	l.mu.RUnlock()
	if !okFrom || !okTo {
		return ErrAccountNotFound
	}

	first, second := from, to
	if second.id < first.id {
		first, second = second, first
	}
	first.mu.Lock()
	defer first.mu.Unlock()
	second.mu.Lock()
	defer second.mu.Unlock()

	if amount.GreaterThan(from.balance) {
		return ErrInsufficientFunds
	}
	from.balance = from.balance.Sub(amount)
	to.balance = to.balance.Add(amount)
	from.record(KindTransfer, amount.Neg())
	to.record(KindTransfer, amount)
	return nil
}

// SweepResult summarizes one interest-and-fee pass.
type SweepResult struct {
	InterestApplied int
	FeesApplied     int
	FeesSkipped     int
}

// ApplyInterestAndFees walks every account in creation order, crediting
// interest to savings accounts and charging the monthly fee to checking
// accounts. The sweep is best-effort: a checking account that cannot
// cover the fee is skipped unmodified and the pass continues. Only
// ErrInsufficientFunds is suppressed.
func (l *Ledger) ApplyInterestAndFees(rate, fee decimal.Decimal) SweepResult {
	var res SweepResult
	for _, a := range l.Accounts() {
		switch a.Type() {
		case Savings:
			if _, ok := a.ApplyInterest(rate); ok {
				res.InterestApplied++
			}
		case Checking:
			_, applied, err := a.ApplyMonthlyFee(fee)
			switch {
			case applied:
				res.FeesApplied++
			case errors.Is(err, ErrInsufficientFunds):
				res.FeesSkipped++
			}
		}
	}
	return res
}
