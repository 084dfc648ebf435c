package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/gagliardetto/solana-go"

	"fundraiser/internal/adapter/pda"
	"fundraiser/internal/core/domain"
	"fundraiser/internal/core/port"
)

// Reasons a builtin service rejects a call. They are always wrapped in
// domain.ErrExternalService before reaching the program.
var (
	ErrAccountInUse      = errors.New("account already in use")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrRentNotExempt     = errors.New("balance below rent-exempt minimum")
	ErrOwnerMismatch     = errors.New("owner does not match")
	ErrMintDiffers       = errors.New("holding accounts hold different mints")
	ErrAccountFrozen     = errors.New("account is frozen")
	ErrBadHoldingAddress = errors.New("address is not the canonical holding account")
)

// invocation is the port.Runtime handed to the program for one transaction.
// It records which slots builtin services changed so the host can tell them
// apart from direct program writes.
type invocation struct {
	host      *Host
	programID solana.PublicKey
	now       int64
	logs      []string
	touched   map[solana.PublicKey]bool
}

var _ port.Runtime = (*invocation)(nil)

func newInvocation(h *Host, programID solana.PublicKey, now int64) *invocation {
	return &invocation{
		host:      h,
		programID: programID,
		now:       now,
		touched:   make(map[solana.PublicKey]bool),
	}
}

func (inv *invocation) UnixTimestamp(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return inv.now, nil
}

func (inv *invocation) MinimumBalance(size int) uint64 {
	return inv.host.rent.MinimumBalance(size)
}

func (inv *invocation) Log(msg string) {
	inv.logs = append(inv.logs, msg)
}

func serviceError(service string, err error) error {
	return fmt.Errorf("%w: %s: %w", domain.ErrExternalService, service, err)
}

// CreateAccount is the system service's allocation call.
func (inv *invocation) CreateAccount(_ context.Context, p port.CreateAccountParams) error {
	const svc = "system"
	if !p.To.IsSigner {
		if p.Signer == nil || !pda.Verify(*p.Signer, inv.programID, p.To.Address) {
			return serviceError(svc, fmt.Errorf("%w: new account %s", domain.ErrMissingRequiredSignature, p.To.Address))
		}
	}
	return inv.allocate(svc, p)
}

// allocate funds and assigns a new slot once the caller has established the
// right to create it.
func (inv *invocation) allocate(svc string, p port.CreateAccountParams) error {
	if !p.From.IsSigner {
		return serviceError(svc, fmt.Errorf("%w: payer %s", domain.ErrMissingRequiredSignature, p.From.Address))
	}
	if !p.From.IsWritable || !p.To.IsWritable {
		return serviceError(svc, domain.ErrAccountNotWritable)
	}
	if !p.From.IsDataEmpty() || !p.From.OwnedBy(solana.SystemProgramID) {
		return serviceError(svc, fmt.Errorf("payer %s must be a plain system account", p.From.Address))
	}
	if !p.To.IsDataEmpty() || p.To.Lamports != 0 || !p.To.OwnedBy(solana.SystemProgramID) {
		return serviceError(svc, fmt.Errorf("%w: %s", ErrAccountInUse, p.To.Address))
	}
	if p.Lamports < inv.MinimumBalance(int(p.Space)) {
		return serviceError(svc, fmt.Errorf("%w: %d for %d bytes", ErrRentNotExempt, p.Lamports, p.Space))
	}
	if p.From.Lamports < p.Lamports {
		return serviceError(svc, fmt.Errorf("%w: payer has %d, needs %d", ErrInsufficientFunds, p.From.Lamports, p.Lamports))
	}

	p.From.Lamports -= p.Lamports
	p.To.Lamports += p.Lamports
	p.To.Data = make([]byte, p.Space)
	p.To.Owner = p.Owner
	inv.touched[p.From.Address] = true
	inv.touched[p.To.Address] = true
	return nil
}

// CreateHoldingAccount is the asset-account-creation service.
func (inv *invocation) CreateHoldingAccount(_ context.Context, payer, account, owner, mint *domain.Account) error {
	const svc = "associated token"
	if !mint.OwnedBy(solana.TokenProgramID) {
		return serviceError(svc, fmt.Errorf("%w: mint %s", ErrOwnerMismatch, mint.Address))
	}
	m, err := domain.DecodeMint(mint.Data)
	if err != nil {
		return serviceError(svc, err)
	}
	if !m.IsInitialized {
		return serviceError(svc, domain.ErrMintNotInitialized)
	}
	expected, err := pda.HoldingAccount(owner.Address, mint.Address)
	if err != nil {
		return serviceError(svc, err)
	}
	if !expected.Equals(account.Address) {
		return serviceError(svc, fmt.Errorf("%w: got %s, want %s", ErrBadHoldingAddress, account.Address, expected))
	}

	// The canonical address is derived under this service, so it may
	// allocate it without a signature from the account itself.
	err = inv.allocate(svc, port.CreateAccountParams{
		From:     payer,
		To:       account,
		Lamports: inv.MinimumBalance(domain.TokenAccountLen),
		Space:    domain.TokenAccountLen,
		Owner:    solana.TokenProgramID,
	})
	if err != nil {
		return err
	}

	state := domain.TokenAccount{
		Mint:  mint.Address,
		Owner: owner.Address,
		State: domain.TokenStateInitialized,
	}
	if err = domain.EncodeTokenAccount(account.Data, &state); err != nil {
		return serviceError(svc, err)
	}
	return nil
}

// Transfer is the asset service's transfer call.
func (inv *invocation) Transfer(_ context.Context, from, to, authority *domain.Account, amount uint64) error {
	const svc = "token"
	if !from.OwnedBy(solana.TokenProgramID) || !to.OwnedBy(solana.TokenProgramID) {
		return serviceError(svc, fmt.Errorf("%w: holding accounts must belong to the token service", ErrOwnerMismatch))
	}
	if !from.IsWritable || !to.IsWritable {
		return serviceError(svc, domain.ErrAccountNotWritable)
	}
	src, err := domain.DecodeTokenAccount(from.Data)
	if err != nil {
		return serviceError(svc, err)
	}
	dst, err := domain.DecodeTokenAccount(to.Data)
	if err != nil {
		return serviceError(svc, err)
	}
	if !domain.TokenAccountInitialized(&src) || !domain.TokenAccountInitialized(&dst) {
		return serviceError(svc, domain.ErrUninitializedAccount)
	}
	if src.State == domain.TokenStateFrozen || dst.State == domain.TokenStateFrozen {
		return serviceError(svc, ErrAccountFrozen)
	}
	if !src.Mint.Equals(dst.Mint) {
		return serviceError(svc, ErrMintDiffers)
	}
	if !authority.Address.Equals(src.Owner) {
		return serviceError(svc, fmt.Errorf("%w: authority %s, owner %s", ErrOwnerMismatch, authority.Address, src.Owner))
	}
	if !authority.IsSigner {
		return serviceError(svc, domain.ErrMissingRequiredSignature)
	}
	if src.Amount < amount {
		return serviceError(svc, fmt.Errorf("%w: holds %d, sends %d", ErrInsufficientFunds, src.Amount, amount))
	}
	if from == to {
		return nil
	}
	if dst.Amount+amount < dst.Amount {
		return serviceError(svc, domain.ErrArithmeticOverflow)
	}

	src.Amount -= amount
	dst.Amount += amount
	if err = domain.EncodeTokenAccount(from.Data, &src); err != nil {
		return serviceError(svc, err)
	}
	if err = domain.EncodeTokenAccount(to.Data, &dst); err != nil {
		return serviceError(svc, err)
	}
	inv.touched[from.Address] = true
	inv.touched[to.Address] = true
	return nil
}
