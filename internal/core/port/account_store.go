package port

import (
	"context"
	"errors"

	"github.com/gagliardetto/solana-go"

	"fundraiser/internal/core/domain"
)

// ErrAccountNotFound is returned by read paths when no slot has ever been
// written at an address.
var ErrAccountNotFound = errors.New("account not found")

// ErrAlreadyProcessed is returned when a signed message has already been
// committed.
var ErrAlreadyProcessed = errors.New("transaction already processed")

// AccountStore is the ledger's persistent slot storage. It is an outbound
// port in hexagonal architecture. Implementations serialize units of work
// that touch the same slots and apply each one atomically.
type AccountStore interface {
	// Atomic runs fn in a unit of work. Writes made through the AccountTx
	// become visible only if fn returns nil; otherwise none of them do.
	Atomic(ctx context.Context, fn func(tx AccountTx) error) error
}

// AccountTx reads and writes slots inside one unit of work.
type AccountTx interface {
	// Get returns a copy of the slot at addr, or nil when it was never
	// written.
	Get(ctx context.Context, addr solana.PublicKey) (*domain.Account, error)
	// Put stores the persistent fields of acct.
	Put(ctx context.Context, acct *domain.Account) error
	// MarkProcessed records digest as committed by this unit of work. It
	// returns ErrAlreadyProcessed when the digest is already recorded.
	MarkProcessed(ctx context.Context, digest solana.Hash) error
}
