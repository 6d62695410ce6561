package ledger

import "sync/atomic"

// Sequence hands out unique, monotonically increasing account
// identifiers starting at 1. Each Ledger owns its own Sequence, so a
// fresh ledger numbers accounts deterministically. Safe for concurrent
// use.
type Sequence struct {
	last atomic.Int64
}

// Next returns the next identifier.
func (s *Sequence) Next() int64 {
	return s.last.Add(1)
}
