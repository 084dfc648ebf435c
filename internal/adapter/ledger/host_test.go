package ledger_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fundraiser/internal/adapter/ledger"
	"fundraiser/internal/adapter/pda"
	"fundraiser/internal/adapter/usecase"
	"fundraiser/internal/client"
	"fundraiser/internal/core/domain"
	"fundraiser/internal/core/port"
)

var (
	programID = solana.MustPublicKeyFromBase58("4ibrEMW5F6hKnkW4jVedswYv6H6VtwPN6ar6dvXDN1nT")
	startTime = time.Unix(1_700_000_000, 0)
)

const day = 24 * time.Hour

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fixture struct {
	store *ledger.MemoryStore
	host  *ledger.Host
	clock *ledger.ManualClock
	maker *solana.Wallet
	mint  solana.PublicKey
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	clock := ledger.NewManualClock(startTime)
	store := ledger.NewMemoryStore()
	host := ledger.NewHost(
		store,
		programID,
		usecase.NewProcessor(programID, discardLogger()),
		clock,
		ledger.DefaultRent,
		discardLogger(),
	)

	f := &fixture{store: store, host: host, clock: clock, maker: solana.NewWallet(), mint: solana.NewWallet().PublicKey()}
	require.NoError(t, host.Airdrop(ctx, f.maker.PublicKey(), 1_000_000_000))
	require.NoError(t, host.CreateMint(ctx, f.mint, f.maker.PublicKey(), 6))
	return f
}

// contributor funds a new wallet with lamports and amount units of the mint.
func (f *fixture) contributor(t *testing.T, amount uint64) *solana.Wallet {
	t.Helper()
	ctx := context.Background()
	w := solana.NewWallet()
	require.NoError(t, f.host.Airdrop(ctx, w.PublicKey(), 1_000_000_000))
	_, err := f.host.MintTo(ctx, f.mint, w.PublicKey(), amount)
	require.NoError(t, err)
	return w
}

func (f *fixture) initialize(t *testing.T, maker *solana.Wallet, target uint64, days uint8) client.CampaignAddresses {
	t.Helper()
	tx, addrs, err := client.Initialize(programID, maker.PublicKey(), f.mint, domain.InitializeArgs{
		MinAmountSendable: 10_000_000,
		MaxAmountSendable: 4_000_000_000,
		AmountToRaise:     target,
		DurationDays:      days,
	})
	require.NoError(t, err)
	require.NoError(t, tx.Sign(maker.PrivateKey))
	_, err = f.host.Execute(context.Background(), tx)
	require.NoError(t, err)
	return addrs
}

func (f *fixture) contribute(contributor *solana.Wallet, addrs client.CampaignAddresses, amount uint64) (*port.Receipt, solana.PublicKey, error) {
	tx, record, err := client.Contribute(programID, client.ContributeAccounts{
		Contributor: contributor.PublicKey(),
		Mint:        f.mint,
		Campaign:    addrs.Campaign,
		Vault:       addrs.Vault,
	}, domain.ContributeArgs{Amount: amount})
	if err != nil {
		return nil, solana.PublicKey{}, err
	}
	if err = tx.Sign(contributor.PrivateKey); err != nil {
		return nil, solana.PublicKey{}, err
	}
	receipt, err := f.host.Execute(context.Background(), tx)
	return receipt, record, err
}

func (f *fixture) tokenBalance(t *testing.T, addr solana.PublicKey) uint64 {
	t.Helper()
	a, err := f.host.Account(context.Background(), addr)
	require.NoError(t, err)
	ta, err := domain.DecodeTokenAccount(a.Data)
	require.NoError(t, err)
	return ta.Amount
}

func (f *fixture) holder(t *testing.T, owner solana.PublicKey) solana.PublicKey {
	t.Helper()
	addr, _, err := solana.FindAssociatedTokenAddress(owner, f.mint)
	require.NoError(t, err)
	return addr
}

func TestInitializeOpensCampaign(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	makerBefore, err := f.host.Account(ctx, f.maker.PublicKey())
	require.NoError(t, err)

	addrs := f.initialize(t, f.maker, 10_000_000_000, 3)

	view, err := f.host.Campaign(ctx, addrs.Campaign)
	require.NoError(t, err)
	assert.Equal(t, domain.Campaign{
		Maker:        f.maker.PublicKey(),
		FundingMint:  f.mint,
		Vault:        addrs.Vault,
		TargetAmount: 10_000_000_000,
		StartTime:    startTime.Unix(),
		DurationDays: 3,
		Bump:         addrs.Bump,
	}, view.Campaign)
	assert.Equal(t, uint8(6), view.Decimals)
	assert.Equal(t, startTime.Add(3*day).Unix(), view.ExpiresAt)
	assert.False(t, view.Expired)

	vault, err := f.host.Account(ctx, addrs.Vault)
	require.NoError(t, err)
	assert.Equal(t, solana.TokenProgramID, vault.Owner)
	vaultState, err := domain.DecodeTokenAccount(vault.Data)
	require.NoError(t, err)
	assert.Equal(t, addrs.Campaign, vaultState.Owner)
	assert.Equal(t, f.mint, vaultState.Mint)
	assert.Zero(t, vaultState.Amount)

	makerAfter, err := f.host.Account(ctx, f.maker.PublicKey())
	require.NoError(t, err)
	rent := f.host.Rent()
	assert.Equal(t,
		makerBefore.Lamports-rent.MinimumBalance(domain.CampaignLen)-rent.MinimumBalance(domain.TokenAccountLen),
		makerAfter.Lamports, "maker pays for both allocations")
}

func TestInitializeTwiceFails(t *testing.T) {
	f := newFixture(t)
	f.initialize(t, f.maker, 1_000, 1)

	tx, _, err := client.Initialize(programID, f.maker.PublicKey(), f.mint, domain.InitializeArgs{AmountToRaise: 5, DurationDays: 1})
	require.NoError(t, err)
	require.NoError(t, tx.Sign(f.maker.PrivateKey))
	_, err = f.host.Execute(context.Background(), tx)
	require.ErrorIs(t, err, domain.ErrAccountAlreadyInitialized)
}

func TestContributeWithinWindow(t *testing.T) {
	f := newFixture(t)
	addrs := f.initialize(t, f.maker, 10_000_000_000, 3)
	alice := f.contributor(t, 1_000_000_000)

	f.clock.Advance(day)
	receipt, record, err := f.contribute(alice, addrs, 100_000_000)
	require.NoError(t, err)
	assert.Equal(t, domain.OpContribute, receipt.Opcode)
	assert.NotEmpty(t, receipt.Logs)

	ctx := context.Background()
	c, err := f.host.Contribution(ctx, record)
	require.NoError(t, err)
	assert.Equal(t, uint64(100_000_000), c.Amount)

	assert.Equal(t, uint64(900_000_000), f.tokenBalance(t, f.holder(t, alice.PublicKey())))
	assert.Equal(t, uint64(100_000_000), f.tokenBalance(t, addrs.Vault))

	view, err := f.host.Campaign(ctx, addrs.Campaign)
	require.NoError(t, err)
	assert.Equal(t, uint64(100_000_000), view.Campaign.CurrentAmount)
}

func TestContributeAfterExpiry(t *testing.T) {
	f := newFixture(t)
	addrs := f.initialize(t, f.maker, 10_000_000_000, 3)
	alice := f.contributor(t, 1_000_000_000)

	f.clock.Advance(4 * day)
	_, record, err := f.contribute(alice, addrs, 100_000_000)
	require.ErrorIs(t, err, domain.ErrCampaignExpired)

	ctx := context.Background()
	_, err = f.host.Account(ctx, record)
	require.ErrorIs(t, err, port.ErrAccountNotFound, "no record is created")
	assert.Equal(t, uint64(1_000_000_000), f.tokenBalance(t, f.holder(t, alice.PublicKey())))
	assert.Zero(t, f.tokenBalance(t, addrs.Vault))

	view, err := f.host.Campaign(ctx, addrs.Campaign)
	require.NoError(t, err)
	assert.True(t, view.Expired)
}

func TestContributeEntireBalance(t *testing.T) {
	f := newFixture(t)
	addrs := f.initialize(t, f.maker, 10_000_000_000, 3)
	bob := f.contributor(t, 100_000_000)

	_, _, err := f.contribute(bob, addrs, 100_000_000)
	require.ErrorIs(t, err, domain.ErrInsufficientBalance)
	assert.Equal(t, uint64(100_000_000), f.tokenBalance(t, f.holder(t, bob.PublicKey())))
}

func TestContributionsAccumulate(t *testing.T) {
	f := newFixture(t)
	addrs := f.initialize(t, f.maker, 10_000_000_000, 3)
	alice := f.contributor(t, 1_000_000_000)
	bob := f.contributor(t, 1_000_000_000)

	_, record, err := f.contribute(alice, addrs, 50_000_000)
	require.NoError(t, err)
	_, again, err := f.contribute(alice, addrs, 50_000_000)
	require.NoError(t, err)
	require.Equal(t, record, again)
	_, _, err = f.contribute(bob, addrs, 25_000_000)
	require.NoError(t, err)

	ctx := context.Background()
	c, err := f.host.Contribution(ctx, record)
	require.NoError(t, err)
	assert.Equal(t, uint64(100_000_000), c.Amount)

	view, err := f.host.Campaign(ctx, addrs.Campaign)
	require.NoError(t, err)
	assert.Equal(t, uint64(125_000_000), view.Campaign.CurrentAmount)
	assert.Equal(t, uint64(125_000_000), f.tokenBalance(t, addrs.Vault))
}

func TestSignedTransactionCommitsOnce(t *testing.T) {
	f := newFixture(t)
	addrs := f.initialize(t, f.maker, 10_000_000_000, 3)
	alice := f.contributor(t, 1_000_000_000)

	tx, record, err := client.Contribute(programID, client.ContributeAccounts{
		Contributor: alice.PublicKey(),
		Mint:        f.mint,
		Campaign:    addrs.Campaign,
		Vault:       addrs.Vault,
	}, domain.ContributeArgs{Amount: 100_000_000})
	require.NoError(t, err)
	require.NoError(t, tx.Sign(alice.PrivateKey))

	ctx := context.Background()
	receipt, err := f.host.Execute(ctx, tx)
	require.NoError(t, err)
	assert.Equal(t, tx.Digest(), receipt.Digest)

	for i := 0; i < 4; i++ {
		_, err = f.host.Execute(ctx, tx)
		require.ErrorIs(t, err, port.ErrAlreadyProcessed)
	}

	c, err := f.host.Contribution(ctx, record)
	require.NoError(t, err)
	assert.Equal(t, uint64(100_000_000), c.Amount)
	assert.Equal(t, uint64(900_000_000), f.tokenBalance(t, f.holder(t, alice.PublicKey())))

	_, _, err = f.contribute(alice, addrs, 100_000_000)
	require.NoError(t, err, "same instruction under a fresh nonce is a new transaction")
	c, err = f.host.Contribution(ctx, record)
	require.NoError(t, err)
	assert.Equal(t, uint64(200_000_000), c.Amount)
}

func TestFailedTransactionMayBeResubmitted(t *testing.T) {
	f := newFixture(t)
	tx, _, err := client.Initialize(programID, f.maker.PublicKey(), solana.NewWallet().PublicKey(), domain.InitializeArgs{AmountToRaise: 1, DurationDays: 1})
	require.NoError(t, err)
	require.NoError(t, tx.Sign(f.maker.PrivateKey))

	ctx := context.Background()
	_, err = f.host.Execute(ctx, tx)
	require.ErrorIs(t, err, domain.ErrIllegalOwner, "mint does not exist yet")
	_, err = f.host.Execute(ctx, tx)
	require.ErrorIs(t, err, domain.ErrIllegalOwner, "an aborted message is not recorded")
}

func TestContributionOverflowAborts(t *testing.T) {
	f := newFixture(t)
	addrs := f.initialize(t, f.maker, 10_000_000_000, 3)
	alice := f.contributor(t, 1_000_000_000)

	record, _, err := pda.Contribution(addrs.Campaign, alice.PublicKey(), programID)
	require.NoError(t, err)

	full := domain.Contribution{Amount: math.MaxUint64}
	data := make([]byte, domain.ContributionLen)
	require.NoError(t, full.Encode(data))
	ctx := context.Background()
	require.NoError(t, f.store.Atomic(ctx, func(tx port.AccountTx) error {
		return tx.Put(ctx, &domain.Account{
			Address:  record,
			Owner:    programID,
			Lamports: f.host.Rent().MinimumBalance(domain.ContributionLen),
			Data:     data,
		})
	}))

	_, _, err = f.contribute(alice, addrs, 1)
	require.ErrorIs(t, err, domain.ErrArithmeticOverflow)

	assert.Equal(t, uint64(1_000_000_000), f.tokenBalance(t, f.holder(t, alice.PublicKey())), "transfer is rolled back")
	assert.Zero(t, f.tokenBalance(t, addrs.Vault))
	c, err := f.host.Contribution(ctx, record)
	require.NoError(t, err)
	assert.Equal(t, uint64(math.MaxUint64), c.Amount)
}

// TestConcurrentContributions ensures parallel contributions to one campaign
// are all counted.
func TestConcurrentContributions(t *testing.T) {
	f := newFixture(t)
	addrs := f.initialize(t, f.maker, 10_000_000_000, 3)

	const n = 16
	wallets := make([]*solana.Wallet, n)
	for i := range wallets {
		wallets[i] = f.contributor(t, 1_000_000_000)
	}

	var wg sync.WaitGroup
	errs := make(chan error, n)
	for _, w := range wallets {
		wg.Add(1)
		go func(w *solana.Wallet) {
			defer wg.Done()
			_, _, err := f.contribute(w, addrs, 10_000_000)
			errs <- err
		}(w)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	view, err := f.host.Campaign(context.Background(), addrs.Campaign)
	require.NoError(t, err)
	assert.Equal(t, uint64(n*10_000_000), view.Campaign.CurrentAmount)
	assert.Equal(t, uint64(n*10_000_000), f.tokenBalance(t, addrs.Vault))
}

func TestContributionRecordsPerCampaign(t *testing.T) {
	f := newFixture(t)
	other := solana.NewWallet()
	require.NoError(t, f.host.Airdrop(context.Background(), other.PublicKey(), 1_000_000_000))

	first := f.initialize(t, f.maker, 1_000_000_000, 3)
	second := f.initialize(t, other, 1_000_000_000, 3)
	require.NotEqual(t, first.Campaign, second.Campaign)

	alice := f.contributor(t, 1_000_000_000)
	_, r1, err := f.contribute(alice, first, 10_000_000)
	require.NoError(t, err)
	_, r2, err := f.contribute(alice, second, 20_000_000)
	require.NoError(t, err)
	require.NotEqual(t, r1, r2)

	c1, err := f.host.Contribution(context.Background(), r1)
	require.NoError(t, err)
	c2, err := f.host.Contribution(context.Background(), r2)
	require.NoError(t, err)
	assert.Equal(t, uint64(10_000_000), c1.Amount)
	assert.Equal(t, uint64(20_000_000), c2.Amount)
}

func TestContributeToForeignVault(t *testing.T) {
	f := newFixture(t)
	addrs := f.initialize(t, f.maker, 1_000_000_000, 3)
	alice := f.contributor(t, 1_000_000_000)

	addrs.Vault = f.holder(t, alice.PublicKey())
	_, _, err := f.contribute(alice, addrs, 1)
	require.ErrorIs(t, err, domain.ErrVaultMismatch)
}

func TestExecuteRequiresSignatures(t *testing.T) {
	f := newFixture(t)
	tx, _, err := client.Initialize(programID, f.maker.PublicKey(), f.mint, domain.InitializeArgs{AmountToRaise: 1, DurationDays: 1})
	require.NoError(t, err)

	_, err = f.host.Execute(context.Background(), tx)
	require.ErrorIs(t, err, domain.ErrSignatureVerification)

	require.NoError(t, tx.Sign(solana.NewWallet().PrivateKey))
	_, err = f.host.Execute(context.Background(), tx)
	require.ErrorIs(t, err, domain.ErrSignatureVerification, "signature from the wrong key")
}

func TestExecuteUnknownProgram(t *testing.T) {
	f := newFixture(t)
	tx := &domain.Transaction{ProgramID: solana.NewWallet().PublicKey(), Data: []byte{0}}
	_, err := f.host.Execute(context.Background(), tx)
	require.ErrorIs(t, err, ledger.ErrProgramNotFound)
}

// programFunc adapts a function to port.Program for host-level tests.
type programFunc func(ctx context.Context, rt port.Runtime, programID solana.PublicKey, accounts []*domain.Account, data []byte) error

func (f programFunc) Process(ctx context.Context, rt port.Runtime, programID solana.PublicKey, accounts []*domain.Account, data []byte) error {
	return f(ctx, rt, programID, accounts, data)
}

func newRawHost(t *testing.T, program port.Program) (*ledger.Host, *solana.Wallet) {
	t.Helper()
	host := ledger.NewHost(ledger.NewMemoryStore(), programID, program, ledger.NewManualClock(startTime), ledger.DefaultRent, discardLogger())
	payer := solana.NewWallet()
	require.NoError(t, host.Airdrop(context.Background(), payer.PublicKey(), 1_000_000_000))
	return host, payer
}

func TestExecuteRollsBackOnProgramError(t *testing.T) {
	boom := errors.New("boom")
	host, payer := newRawHost(t, programFunc(func(ctx context.Context, rt port.Runtime, id solana.PublicKey, accounts []*domain.Account, _ []byte) error {
		if err := rt.CreateAccount(ctx, port.CreateAccountParams{
			From:     accounts[0],
			To:       accounts[1],
			Lamports: rt.MinimumBalance(8),
			Space:    8,
			Owner:    id,
		}); err != nil {
			return err
		}
		return boom
	}))
	created := solana.NewWallet()

	tx := &domain.Transaction{
		ProgramID: programID,
		Accounts: []domain.AccountMeta{
			{Address: payer.PublicKey(), IsSigner: true, IsWritable: true},
			{Address: created.PublicKey(), IsSigner: true, IsWritable: true},
		},
		Data: []byte{0},
	}
	require.NoError(t, tx.Sign(payer.PrivateKey, created.PrivateKey))

	ctx := context.Background()
	_, err := host.Execute(ctx, tx)
	require.ErrorIs(t, err, boom)

	_, err = host.Account(ctx, created.PublicKey())
	require.ErrorIs(t, err, port.ErrAccountNotFound)
	a, err := host.Account(ctx, payer.PublicKey())
	require.NoError(t, err)
	assert.Equal(t, uint64(1_000_000_000), a.Lamports)
}

func TestExecuteRejectsForbiddenWrites(t *testing.T) {
	tests := []struct {
		name     string
		writable bool
		want     error
	}{
		{"read-only slot", false, ledger.ErrReadonlyModified},
		{"slot owned by another program", true, ledger.ErrExternalAccountModified},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			host, payer := newRawHost(t, programFunc(func(_ context.Context, _ port.Runtime, _ solana.PublicKey, accounts []*domain.Account, _ []byte) error {
				accounts[1].Data = []byte{1}
				return nil
			}))
			tx := &domain.Transaction{
				ProgramID: programID,
				Accounts: []domain.AccountMeta{
					{Address: payer.PublicKey(), IsSigner: true},
					{Address: solana.NewWallet().PublicKey(), IsWritable: tt.writable},
				},
				Data: []byte{0},
			}
			require.NoError(t, tx.Sign(payer.PrivateKey))
			_, err := host.Execute(context.Background(), tx)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestCreateAccountRequiresDerivedSigner(t *testing.T) {
	host, payer := newRawHost(t, programFunc(func(ctx context.Context, rt port.Runtime, id solana.PublicKey, accounts []*domain.Account, _ []byte) error {
		return rt.CreateAccount(ctx, port.CreateAccountParams{
			From:     accounts[0],
			To:       accounts[1],
			Lamports: rt.MinimumBalance(8),
			Space:    8,
			Owner:    id,
			Signer:   &domain.SignerSeeds{Seeds: [][]byte{[]byte("campaign")}, Bump: 255},
		})
	}))
	tx := &domain.Transaction{
		ProgramID: programID,
		Accounts: []domain.AccountMeta{
			{Address: payer.PublicKey(), IsSigner: true, IsWritable: true},
			{Address: solana.NewWallet().PublicKey(), IsWritable: true},
		},
		Data: []byte{0},
	}
	require.NoError(t, tx.Sign(payer.PrivateKey))
	_, err := host.Execute(context.Background(), tx)
	require.ErrorIs(t, err, domain.ErrExternalService)
	require.ErrorIs(t, err, domain.ErrMissingRequiredSignature)
}
