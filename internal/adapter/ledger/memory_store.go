package ledger

import (
	"context"
	"fmt"
	"sync"

	"github.com/gagliardetto/solana-go"

	"fundraiser/internal/core/domain"
	"fundraiser/internal/core/port"
)

// MemoryStore is an in-process port.AccountStore. Units of work run one at
// a time; writes are staged and merged only when the unit succeeds.
type MemoryStore struct {
	mu        sync.Mutex
	accounts  map[solana.PublicKey]*domain.Account
	processed map[solana.Hash]struct{}
}

var _ port.AccountStore = (*MemoryStore)(nil)

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		accounts:  make(map[solana.PublicKey]*domain.Account),
		processed: make(map[solana.Hash]struct{}),
	}
}

// Atomic implements port.AccountStore.
func (s *MemoryStore) Atomic(ctx context.Context, fn func(tx port.AccountTx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &memoryTx{
		store:     s,
		staged:    make(map[solana.PublicKey]*domain.Account),
		processed: make(map[solana.Hash]struct{}),
	}
	if err := fn(tx); err != nil {
		return err
	}
	for addr, acct := range tx.staged {
		s.accounts[addr] = acct
	}
	for digest := range tx.processed {
		s.processed[digest] = struct{}{}
	}
	return nil
}

type memoryTx struct {
	store     *MemoryStore
	staged    map[solana.PublicKey]*domain.Account
	processed map[solana.Hash]struct{}
}

func (t *memoryTx) Get(_ context.Context, addr solana.PublicKey) (*domain.Account, error) {
	if a, ok := t.staged[addr]; ok {
		return a.Clone(), nil
	}
	if a, ok := t.store.accounts[addr]; ok {
		return a.Clone(), nil
	}
	return nil, nil
}

func (t *memoryTx) Put(_ context.Context, acct *domain.Account) error {
	c := acct.Clone()
	c.IsSigner, c.IsWritable = false, false
	t.staged[acct.Address] = c
	return nil
}

func (t *memoryTx) MarkProcessed(_ context.Context, digest solana.Hash) error {
	_, committed := t.store.processed[digest]
	_, staged := t.processed[digest]
	if committed || staged {
		return fmt.Errorf("%w: %s", port.ErrAlreadyProcessed, digest)
	}
	t.processed[digest] = struct{}{}
	return nil
}
