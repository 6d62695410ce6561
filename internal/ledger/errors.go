package ledger

import "errors"

// ─── Sentinel Errors ────────────────────────────────────────────────────────
// Business failures are plain error values — callers match with errors.Is
// and decide how to present them. None of these is fatal to the process.

var (
	// ErrInvalidAmount means a mutating operation was given a
	// non-positive amount.
	ErrInvalidAmount = errors.New("amount must be greater than zero")

	// ErrInsufficientFunds means a withdrawal, fee or transfer would
	// push a balance below zero.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrAccountNotFound means the identifier is not in the registry.
	ErrAccountNotFound = errors.New("account not found")

	// ErrInvalidOwner means an account was requested with an empty
	// owner name.
	ErrInvalidOwner = errors.New("owner name must not be empty")

	// ErrSameAccount means a transfer named the same account as both
	// source and destination.
	ErrSameAccount = errors.New("source and destination are the same account")
)
