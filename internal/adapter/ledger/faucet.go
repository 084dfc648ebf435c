package ledger

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gagliardetto/solana-go"

	"fundraiser/internal/adapter/pda"
	"fundraiser/internal/core/domain"
	"fundraiser/internal/core/port"
)

// Airdrop implements port.Faucet.
func (h *Host) Airdrop(ctx context.Context, to solana.PublicKey, lamports uint64) error {
	err := h.store.Atomic(ctx, func(st port.AccountTx) error {
		a, err := getOrEmpty(ctx, st, to)
		if err != nil {
			return err
		}
		if a.Lamports+lamports < a.Lamports {
			return domain.ErrArithmeticOverflow
		}
		a.Lamports += lamports
		return st.Put(ctx, a)
	})
	if err != nil {
		return err
	}
	h.logger.DebugContext(ctx, "airdrop", slog.String("to", to.String()), slog.Uint64("lamports", lamports))
	return nil
}

// CreateMint implements port.Faucet.
func (h *Host) CreateMint(ctx context.Context, mint, authority solana.PublicKey, decimals uint8) error {
	return h.store.Atomic(ctx, func(st port.AccountTx) error {
		a, err := getOrEmpty(ctx, st, mint)
		if err != nil {
			return err
		}
		if !a.IsDataEmpty() {
			return fmt.Errorf("%w: mint %s", ErrAccountInUse, mint)
		}
		state := domain.Mint{
			MintAuthority: &authority,
			Decimals:      decimals,
			IsInitialized: true,
		}
		a.Data = make([]byte, domain.MintLen)
		if err = domain.EncodeMint(a.Data, &state); err != nil {
			return err
		}
		a.Owner = solana.TokenProgramID
		a.Lamports += h.rent.MinimumBalance(domain.MintLen)
		return st.Put(ctx, a)
	})
}

// MintTo implements port.Faucet.
func (h *Host) MintTo(ctx context.Context, mint, owner solana.PublicKey, amount uint64) (solana.PublicKey, error) {
	holder, err := pda.HoldingAccount(owner, mint)
	if err != nil {
		return solana.PublicKey{}, err
	}
	err = h.store.Atomic(ctx, func(st port.AccountTx) error {
		m, err := st.Get(ctx, mint)
		if err != nil {
			return err
		}
		if m == nil || !m.OwnedBy(solana.TokenProgramID) {
			return fmt.Errorf("%w: %s", domain.ErrMintNotInitialized, mint)
		}
		mintState, err := domain.DecodeMint(m.Data)
		if err != nil {
			return err
		}
		if mintState.Supply+amount < mintState.Supply {
			return domain.ErrArithmeticOverflow
		}

		a, err := getOrEmpty(ctx, st, holder)
		if err != nil {
			return err
		}
		var state domain.TokenAccount
		if a.IsDataEmpty() {
			a.Owner = solana.TokenProgramID
			a.Lamports += h.rent.MinimumBalance(domain.TokenAccountLen)
			a.Data = make([]byte, domain.TokenAccountLen)
			state = domain.TokenAccount{Mint: mint, Owner: owner, State: domain.TokenStateInitialized}
		} else if state, err = domain.DecodeTokenAccount(a.Data); err != nil {
			return err
		}
		state.Amount += amount
		mintState.Supply += amount

		if err = domain.EncodeTokenAccount(a.Data, &state); err != nil {
			return err
		}
		if err = domain.EncodeMint(m.Data, &mintState); err != nil {
			return err
		}
		if err = st.Put(ctx, a); err != nil {
			return err
		}
		return st.Put(ctx, m)
	})
	if err != nil {
		return solana.PublicKey{}, err
	}
	return holder, nil
}

func getOrEmpty(ctx context.Context, st port.AccountTx, addr solana.PublicKey) (*domain.Account, error) {
	a, err := st.Get(ctx, addr)
	if err != nil {
		return nil, err
	}
	if a == nil {
		a = domain.NewEmptyAccount(addr)
	}
	return a, nil
}
