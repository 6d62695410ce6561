// Package ledger is the account ledger engine: accounts with their
// balance invariants, the registry that owns them, and the transfer and
// sweep operations that stay correct under concurrent access. It holds
// all state in memory and performs no I/O.
//
// Money is fixed-point: every stored balance and record amount is a
// decimal rounded to 2 places.
package ledger

import (
	"fmt"

	"github.com/sasha-s/go-deadlock"
	"github.com/shopspring/decimal"
)

// AccountType distinguishes fee-charged checking accounts from
// interest-bearing savings accounts.
type AccountType string

const (
	Checking AccountType = "CHECKING"
	Savings  AccountType = "SAVINGS"
)

// Account holds one owner's balance and append-only transaction
// history. A per-account mutex serializes every balance
// read-modify-write together with its history append, so no caller can
// observe a balance without its matching record. The balance never goes
// below zero.
type Account struct {
	id    int64
	owner string
	kind  AccountType

	mu      deadlock.Mutex
	balance decimal.Decimal
	history []Record
}

// newAccount clamps the initial balance to zero and records the seed
// deposit. The seed record is written even when the clamped balance is
// zero, so every history starts with the opening balance.
func newAccount(id int64, owner string, kind AccountType, initial decimal.Decimal) *Account {
	if initial.IsNegative() {
		initial = decimal.Zero
	}
	initial = initial.Round(2)
	a := &Account{id: id, owner: owner, kind: kind, balance: initial}
	a.history = append(a.history, newRecord(KindDeposit, initial, initial))
	return a
}

// ID returns the account's immutable identifier.
func (a *Account) ID() int64 { return a.id }

// Owner returns the account holder's name.
func (a *Account) Owner() string { return a.owner }

// Type returns the account type.
func (a *Account) Type() AccountType { return a.kind }

// Deposit credits amount to the balance. The amount must be positive.
func (a *Account) Deposit(amount decimal.Decimal) (Record, error) {
	amount = amount.Round(2)
	if amount.Sign() <= 0 {
		return Record{}, ErrInvalidAmount
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.balance = a.balance.Add(amount)
	return a.record(KindDeposit, amount), nil
}

// Withdraw debits amount from the balance. The amount must be positive
// and no larger than the current balance.
func (a *Account) Withdraw(amount decimal.Decimal) (Record, error) {
	amount = amount.Round(2)
	if amount.Sign() <= 0 {
		return Record{}, ErrInvalidAmount
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if amount.GreaterThan(a.balance) {
		return Record{}, ErrInsufficientFunds
	}
	a.balance = a.balance.Sub(amount)
	return a.record(KindWithdrawal, amount.Neg()), nil
}

// ApplyInterest credits balance*rate to savings accounts. Other account
// types are left untouched and report false. Interest on a zero balance
// is a recorded zero-amount credit.
func (a *Account) ApplyInterest(rate decimal.Decimal) (Record, bool) {
	if a.kind != Savings {
		return Record{}, false
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	interest := a.balance.Mul(rate).Round(2)
	a.balance = a.balance.Add(interest)
	return a.record(KindInterest, interest), true
}

// ApplyMonthlyFee debits the maintenance fee from checking accounts.
// Other account types are left untouched and report false. A fee larger
// than the balance fails with ErrInsufficientFunds and changes nothing.
func (a *Account) ApplyMonthlyFee(amount decimal.Decimal) (Record, bool, error) {
	if a.kind != Checking {
		return Record{}, false, nil
	}
	amount = amount.Round(2)
	a.mu.Lock()
	defer a.mu.Unlock()
	if amount.GreaterThan(a.balance) {
		return Record{}, false, ErrInsufficientFunds
	}
	a.balance = a.balance.Sub(amount)
	return a.record(KindFee, amount.Neg()), true, nil
}

// Balance returns the current balance.
func (a *Account) Balance() decimal.Decimal {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.balance
}

// History returns a copy of the full transaction history in
// chronological order.
func (a *Account) History() []Record {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]Record, len(a.history))
	copy(out, a.history)
	return out
}

// record appends a history row for the current balance.
// Caller must hold a.mu.
func (a *Account) record(kind Kind, amount decimal.Decimal) Record {
	rec := newRecord(kind, amount, a.balance)
	a.history = append(a.history, rec)
	return rec
}

// String renders the account in the fixed console format:
// ID:<id> - <owner> (<TYPE>) - Saldo: <balance>.
func (a *Account) String() string {
	return fmt.Sprintf("ID:%d - %s (%s) - Saldo: %s",
		a.id, a.owner, a.kind, a.Balance().StringFixed(2))
}
