package port

import (
	"context"

	"github.com/gagliardetto/solana-go"
	"github.com/google/uuid"

	"fundraiser/internal/core/domain"
)

// Ledger defines the operations exposed by the ledger host. This interface
// is the primary port for inbound adapters such as HTTP.
type Ledger interface {
	// ProgramID returns the identity of the deployed program.
	ProgramID() solana.PublicKey

	// Execute verifies signatures, runs the instruction and commits its
	// effects atomically. A program failure is returned as an error wrapping
	// a *domain.ProgramError and leaves no trace in storage. A message that
	// was already committed fails with ErrAlreadyProcessed.
	Execute(ctx context.Context, tx *domain.Transaction) (*Receipt, error)

	// Account returns the stored slot at addr or ErrAccountNotFound.
	Account(ctx context.Context, addr solana.PublicKey) (*domain.Account, error)

	// Campaign decodes the campaign record stored at addr.
	Campaign(ctx context.Context, addr solana.PublicKey) (*CampaignView, error)

	// Contribution decodes the contribution record stored at addr.
	Contribution(ctx context.Context, addr solana.PublicKey) (*domain.Contribution, error)
}

// Faucet creates assets and balances out of thin air. It exists for local
// development and tests only.
type Faucet interface {
	Airdrop(ctx context.Context, to solana.PublicKey, lamports uint64) error
	CreateMint(ctx context.Context, mint, authority solana.PublicKey, decimals uint8) error
	// MintTo credits amount to owner's canonical holding account for mint,
	// creating it if needed, and returns its address.
	MintTo(ctx context.Context, mint, owner solana.PublicKey, amount uint64) (solana.PublicKey, error)
}

// Receipt describes a committed transaction.
type Receipt struct {
	ID     uuid.UUID
	Digest solana.Hash
	Opcode domain.Opcode
	Logs   []string
}

// CampaignView is a campaign record with the properties callers usually
// derive from it.
type CampaignView struct {
	Address   solana.PublicKey
	Campaign  domain.Campaign
	Decimals  uint8
	ExpiresAt int64
	Expired   bool
}
