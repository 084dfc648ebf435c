package db_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/require"

	"fundraiser/internal/adapter/ledger"
	"fundraiser/internal/adapter/usecase"
	"fundraiser/internal/core/domain"
	"fundraiser/internal/db"
)

func TestSeedFundsWallets(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	programID := solana.NewWallet().PublicKey()
	host := ledger.NewHost(ledger.NewMemoryStore(), programID, usecase.NewProcessor(programID, logger),
		ledger.NewManualClock(time.Unix(0, 0)), ledger.DefaultRent, logger)

	wallets := []solana.PublicKey{solana.NewWallet().PublicKey(), solana.NewWallet().PublicKey()}
	mint, err := db.Seed(ctx, host, db.SeedParams{Wallets: wallets, Decimals: 9, Lamports: 5_000, Tokens: 700})
	require.NoError(t, err)

	m, err := host.Account(ctx, mint)
	require.NoError(t, err)
	state, err := domain.DecodeMint(m.Data)
	require.NoError(t, err)
	require.Equal(t, uint8(9), state.Decimals)
	require.Equal(t, uint64(1_400), state.Supply)

	for _, w := range wallets {
		a, err := host.Account(ctx, w)
		require.NoError(t, err)
		require.Equal(t, uint64(5_000), a.Lamports)

		holder, _, err := solana.FindAssociatedTokenAddress(w, mint)
		require.NoError(t, err)
		h, err := host.Account(ctx, holder)
		require.NoError(t, err)
		ta, err := domain.DecodeTokenAccount(h.Data)
		require.NoError(t, err)
		require.Equal(t, uint64(700), ta.Amount)
		require.Equal(t, w, ta.Owner)
	}
}
