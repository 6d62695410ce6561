package ledger

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Kind classifies a history record.
type Kind string

const (
	KindDeposit    Kind = "DEPOSIT"
	KindWithdrawal Kind = "WITHDRAWAL"
	KindTransfer   Kind = "TRANSFER"
	KindInterest   Kind = "INTEREST"
	KindFee        Kind = "FEE"
)

// Record is a single immutable row in an account's history. Amounts are
// signed: inflows positive, outflows negative. Replaying the amounts of
// a history in order from zero reproduces every Balance field.
type Record struct {
	ID        uuid.UUID       `json:"id"`
	Kind      Kind            `json:"kind"`
	Amount    decimal.Decimal `json:"amount"`
	Timestamp time.Time       `json:"timestamp"`
	Balance   decimal.Decimal `json:"balance"`
}

func newRecord(kind Kind, amount, balance decimal.Decimal) Record {
	return Record{
		ID:        uuid.New(),
		Kind:      kind,
		Amount:    amount,
		Timestamp: time.Now(),
		Balance:   balance,
	}
}

// String renders the record in the fixed console format:
// [<RFC3339 timestamp>] <KIND>: <amount> -> Saldo: <balance>.
func (r Record) String() string {
	return fmt.Sprintf("[%s] %s: %s -> Saldo: %s",
		r.Timestamp.Format(time.RFC3339), r.Kind,
		r.Amount.StringFixed(2), r.Balance.StringFixed(2))
}
