package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"fundraiser/internal/core/domain"
	"fundraiser/internal/core/port"
)

// AccountRepository implements port.AccountStore using pgxpool for
// PostgreSQL. Each unit of work is one serializable transaction; slots are
// locked with FOR UPDATE as they are read.
type AccountRepository struct {
	pool *pgxpool.Pool
}

var _ port.AccountStore = (*AccountRepository)(nil)

// NewAccountRepository returns a new repository instance.
func NewAccountRepository(pool *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{pool: pool}
}

// Atomic implements port.AccountStore.
func (r *AccountRepository) Atomic(ctx context.Context, fn func(tx port.AccountTx) error) (err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
			return
		}
		if err = tx.Commit(ctx); err != nil {
			err = fmt.Errorf("commit: %w", err)
		}
	}()
	return fn(&accountTx{tx: tx})
}

type accountTx struct {
	tx pgx.Tx
}

// Get locks and returns the slot at addr.
func (t *accountTx) Get(ctx context.Context, addr solana.PublicKey) (*domain.Account, error) {
	var (
		owner    []byte
		lamports int64
		data     []byte
	)
	err := t.tx.QueryRow(ctx, `SELECT owner, lamports, data FROM accounts WHERE address = $1 FOR UPDATE`, addr[:]).
		Scan(&owner, &lamports, &data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if len(owner) != solana.PublicKeyLength {
		return nil, fmt.Errorf("account %s: stored owner is %d bytes", addr, len(owner))
	}

	a := &domain.Account{
		Address: addr,
		// lamports is stored as the two's complement of the u64 balance.
		Lamports: uint64(lamports),
		Data:     data,
	}
	copy(a.Owner[:], owner)
	return a, nil
}

// Put upserts the persistent fields of acct.
func (t *accountTx) Put(ctx context.Context, acct *domain.Account) error {
	data := acct.Data
	if data == nil {
		data = []byte{}
	}
	_, err := t.tx.Exec(ctx, `INSERT INTO accounts (address, owner, lamports, data, updated_at)
VALUES ($1, $2, $3, $4, now())
ON CONFLICT (address) DO UPDATE
SET owner = EXCLUDED.owner, lamports = EXCLUDED.lamports, data = EXCLUDED.data, updated_at = now()`,
		acct.Address[:], acct.Owner[:], int64(acct.Lamports), data)
	return err
}

// MarkProcessed inserts the digest; a conflicting row means the message was
// already committed.
func (t *accountTx) MarkProcessed(ctx context.Context, digest solana.Hash) error {
	tag, err := t.tx.Exec(ctx, `INSERT INTO processed_transactions (digest) VALUES ($1) ON CONFLICT (digest) DO NOTHING`, digest[:])
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", port.ErrAlreadyProcessed, digest)
	}
	return nil
}
