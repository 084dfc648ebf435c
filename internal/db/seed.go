package db

import (
	"context"
	"fmt"

	"github.com/gagliardetto/solana-go"

	"fundraiser/internal/core/port"
)

// SeedParams controls the demo data Seed creates.
type SeedParams struct {
	Wallets  []solana.PublicKey
	Decimals uint8
	Lamports uint64
	Tokens   uint64
}

// Seed creates a fresh demo mint and funds every wallet with native balance
// and a holding account of the mint. It returns the mint address.
func Seed(ctx context.Context, faucet port.Faucet, p SeedParams) (solana.PublicKey, error) {
	mintKey, err := solana.NewRandomPrivateKey()
	if err != nil {
		return solana.PublicKey{}, err
	}
	authority, err := solana.NewRandomPrivateKey()
	if err != nil {
		return solana.PublicKey{}, err
	}
	mint := mintKey.PublicKey()

	if err = faucet.CreateMint(ctx, mint, authority.PublicKey(), p.Decimals); err != nil {
		return solana.PublicKey{}, fmt.Errorf("create mint: %w", err)
	}
	for _, w := range p.Wallets {
		if err = faucet.Airdrop(ctx, w, p.Lamports); err != nil {
			return solana.PublicKey{}, fmt.Errorf("airdrop %s: %w", w, err)
		}
		if _, err = faucet.MintTo(ctx, mint, w, p.Tokens); err != nil {
			return solana.PublicKey{}, fmt.Errorf("mint to %s: %w", w, err)
		}
	}
	return mint, nil
}
