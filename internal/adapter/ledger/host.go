// Package ledger is an in-process ledger host. It stores slots through a
// port.AccountStore, verifies signatures, runs the program against the
// presented slots and commits the result atomically. It also provides the
// builtin system, asset and asset-account-creation services programs call.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gagliardetto/solana-go"
	"github.com/google/uuid"

	"fundraiser/internal/core/domain"
	"fundraiser/internal/core/port"
)

// Runtime-level failures detected after the program returns.
var (
	ErrReadonlyModified        = errors.New("read-only account modified")
	ErrExternalAccountModified = errors.New("account owned by another program modified")
	ErrUnbalancedTransaction   = errors.New("sum of account balances changed")
	ErrProgramNotFound         = errors.New("program not deployed")
)

// Host executes transactions for a single deployed program.
type Host struct {
	store     port.AccountStore
	program   port.Program
	programID solana.PublicKey
	clock     Clock
	rent      Rent
	logger    *slog.Logger
}

var (
	_ port.Ledger = (*Host)(nil)
	_ port.Faucet = (*Host)(nil)
)

// NewHost deploys program at programID on top of store.
func NewHost(store port.AccountStore, programID solana.PublicKey, program port.Program, clock Clock, rent Rent, logger *slog.Logger) *Host {
	return &Host{
		store:     store,
		program:   program,
		programID: programID,
		clock:     clock,
		rent:      rent,
		logger:    logger,
	}
}

// ProgramID returns the deployed program's identity.
func (h *Host) ProgramID() solana.PublicKey {
	return h.programID
}

// Rent returns the host's rent parameters.
func (h *Host) Rent() Rent {
	return h.rent
}

// Execute implements port.Ledger.
func (h *Host) Execute(ctx context.Context, tx *domain.Transaction) (*port.Receipt, error) {
	if !tx.ProgramID.Equals(h.programID) {
		return nil, fmt.Errorf("%w: %s", ErrProgramNotFound, tx.ProgramID)
	}
	if err := tx.VerifySignatures(); err != nil {
		return nil, err
	}

	receipt := &port.Receipt{ID: uuid.New(), Digest: tx.Digest()}
	if len(tx.Data) > 0 {
		receipt.Opcode = domain.Opcode(tx.Data[0])
	}

	err := h.store.Atomic(ctx, func(st port.AccountTx) error {
		if err := st.MarkProcessed(ctx, receipt.Digest); err != nil {
			return err
		}
		accounts, unique, err := load(ctx, st, tx.Accounts)
		if err != nil {
			return err
		}
		pre := make(map[solana.PublicKey]*domain.Account, len(unique))
		for addr, a := range unique {
			pre[addr] = a.Clone()
		}

		inv := newInvocation(h, tx.ProgramID, h.clock.Now().Unix())
		if err = h.program.Process(ctx, inv, tx.ProgramID, accounts, tx.Data); err != nil {
			return err
		}
		if err = verifyEffects(pre, unique, tx.ProgramID, inv.touched); err != nil {
			return err
		}
		for addr, a := range unique {
			if a.StateEqual(pre[addr]) {
				continue
			}
			if err = st.Put(ctx, a); err != nil {
				return err
			}
		}
		receipt.Logs = inv.logs
		return nil
	})
	if err != nil {
		h.logger.WarnContext(ctx, "transaction failed",
			slog.String("id", receipt.ID.String()),
			slog.String("digest", receipt.Digest.String()),
			slog.String("opcode", receipt.Opcode.String()),
			slog.Any("error", err),
		)
		return nil, err
	}

	h.logger.InfoContext(ctx, "transaction committed",
		slog.String("id", receipt.ID.String()),
		slog.String("digest", receipt.Digest.String()),
		slog.String("opcode", receipt.Opcode.String()),
	)
	return receipt, nil
}

// load resolves the metas into slots. An address listed twice maps to the
// same *domain.Account with the union of its flags.
func load(ctx context.Context, st port.AccountTx, metas []domain.AccountMeta) ([]*domain.Account, map[solana.PublicKey]*domain.Account, error) {
	accounts := make([]*domain.Account, 0, len(metas))
	unique := make(map[solana.PublicKey]*domain.Account, len(metas))
	for _, m := range metas {
		a, ok := unique[m.Address]
		if !ok {
			stored, err := st.Get(ctx, m.Address)
			if err != nil {
				return nil, nil, fmt.Errorf("load %s: %w", m.Address, err)
			}
			if stored == nil {
				stored = domain.NewEmptyAccount(m.Address)
			}
			a = stored
			unique[m.Address] = a
		}
		a.IsSigner = a.IsSigner || m.IsSigner
		a.IsWritable = a.IsWritable || m.IsWritable
		accounts = append(accounts, a)
	}
	return accounts, unique, nil
}

// verifyEffects rejects state changes the ledger forbids: writes to
// read-only slots, writes to data of slots the program does not own unless
// a builtin service made them, and creation or destruction of balance.
func verifyEffects(pre, post map[solana.PublicKey]*domain.Account, programID solana.PublicKey, touched map[solana.PublicKey]bool) error {
	var before, after uint64
	for addr, a := range post {
		p := pre[addr]
		before += p.Lamports
		after += a.Lamports
		if a.StateEqual(p) {
			continue
		}
		if !a.IsWritable {
			return fmt.Errorf("%w: %s", ErrReadonlyModified, addr)
		}
		if touched[addr] {
			continue
		}
		if !p.OwnedBy(programID) || !a.Owner.Equals(p.Owner) || p.Lamports != a.Lamports {
			return fmt.Errorf("%w: %s", ErrExternalAccountModified, addr)
		}
	}
	if before != after {
		return fmt.Errorf("%w: %d before, %d after", ErrUnbalancedTransaction, before, after)
	}
	return nil
}

// Account implements port.Ledger.
func (h *Host) Account(ctx context.Context, addr solana.PublicKey) (*domain.Account, error) {
	var out *domain.Account
	err := h.store.Atomic(ctx, func(st port.AccountTx) error {
		a, err := st.Get(ctx, addr)
		if err != nil {
			return err
		}
		if a == nil {
			return port.ErrAccountNotFound
		}
		out = a
		return nil
	})
	return out, err
}

// Campaign implements port.Ledger.
func (h *Host) Campaign(ctx context.Context, addr solana.PublicKey) (*port.CampaignView, error) {
	a, err := h.Account(ctx, addr)
	if err != nil {
		return nil, err
	}
	if !a.OwnedBy(h.programID) {
		return nil, fmt.Errorf("%w: %s", domain.ErrIllegalOwner, addr)
	}
	c, err := domain.DecodeCampaign(a.Data)
	if err != nil {
		return nil, err
	}

	view := &port.CampaignView{
		Address:   addr,
		Campaign:  c,
		ExpiresAt: c.ExpiresAt(),
		Expired:   h.clock.Now().Unix() >= c.ExpiresAt(),
	}
	mint, err := h.Account(ctx, c.FundingMint)
	switch {
	case err == nil:
		if m, derr := domain.DecodeMint(mint.Data); derr == nil {
			view.Decimals = m.Decimals
		}
	case !errors.Is(err, port.ErrAccountNotFound):
		return nil, err
	}
	return view, nil
}

// Contribution implements port.Ledger.
func (h *Host) Contribution(ctx context.Context, addr solana.PublicKey) (*domain.Contribution, error) {
	a, err := h.Account(ctx, addr)
	if err != nil {
		return nil, err
	}
	if !a.OwnedBy(h.programID) {
		return nil, fmt.Errorf("%w: %s", domain.ErrIllegalOwner, addr)
	}
	c, err := domain.DecodeContribution(a.Data)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
