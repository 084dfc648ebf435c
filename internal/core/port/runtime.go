package port

import (
	"context"

	"github.com/gagliardetto/solana-go"

	"fundraiser/internal/core/domain"
)

// CreateAccountParams allocates To as a new slot funded from From.
// Signer is required when To is a derived address of the invoking program.
type CreateAccountParams struct {
	From     *domain.Account
	To       *domain.Account
	Lamports uint64
	Space    uint64
	Owner    solana.PublicKey
	Signer   *domain.SignerSeeds
}

// Runtime is the set of ledger collaborators an instruction handler may
// consult or invoke. It is bound to a single invocation: the clock reading is
// taken once, and services know which program is calling them. Services
// mutate the *domain.Account values they receive.
type Runtime interface {
	// UnixTimestamp returns the invocation's clock reading in seconds.
	UnixTimestamp(ctx context.Context) (int64, error)
	// MinimumBalance returns the balance a slot of size bytes needs to
	// persist indefinitely.
	MinimumBalance(size int) uint64
	// CreateAccount allocates a new slot.
	CreateAccount(ctx context.Context, p CreateAccountParams) error
	// CreateHoldingAccount allocates and initializes the canonical asset
	// holding account of owner for mint, paid for by payer.
	CreateHoldingAccount(ctx context.Context, payer, account, owner, mint *domain.Account) error
	// Transfer moves amount of an asset between two holding accounts on the
	// authority of the source account's owner.
	Transfer(ctx context.Context, from, to, authority *domain.Account, amount uint64) error
	// Log appends a line to the invocation's program log.
	Log(msg string)
}

// Program is an on-ledger program: it validates and applies one instruction
// against the presented slots. A non-nil error means the invocation must be
// discarded in full.
type Program interface {
	Process(ctx context.Context, rt Runtime, programID solana.PublicKey, accounts []*domain.Account, data []byte) error
}
