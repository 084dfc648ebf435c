package usecase

import (
	"fmt"
	"math/bits"

	"github.com/gagliardetto/solana-go"

	"fundraiser/internal/core/domain"
)

// Each check returns nil or a wrapped *domain.ProgramError naming the slot
// that failed, so the first violation aborts the instruction.

func requireSigner(a *domain.Account, name string) error {
	if !a.IsSigner {
		return fmt.Errorf("%w: %s %s", domain.ErrMissingRequiredSignature, name, a.Address)
	}
	return nil
}

func requireWritable(a *domain.Account, name string) error {
	if !a.IsWritable {
		return fmt.Errorf("%w: %s %s", domain.ErrAccountNotWritable, name, a.Address)
	}
	return nil
}

func requireOwnedBy(a *domain.Account, program solana.PublicKey, name string) error {
	if !a.OwnedBy(program) {
		return fmt.Errorf("%w: %s is owned by %s", domain.ErrIllegalOwner, name, a.Owner)
	}
	return nil
}

func requireEmpty(a *domain.Account, name string) error {
	if !a.IsDataEmpty() {
		return fmt.Errorf("%w: %s %s", domain.ErrAccountAlreadyInitialized, name, a.Address)
	}
	return nil
}

func requireInitialized(a *domain.Account, name string) error {
	if a.IsDataEmpty() {
		return fmt.Errorf("%w: %s %s", domain.ErrUninitializedAccount, name, a.Address)
	}
	return nil
}

// requireProgram checks that a service slot carries the expected well-known
// identity.
func requireProgram(a *domain.Account, id solana.PublicKey, name string) error {
	if !a.Address.Equals(id) {
		return fmt.Errorf("%w: %s is %s, want %s", domain.ErrIncorrectProgramID, name, a.Address, id)
	}
	return nil
}

func requireAddress(got, want solana.PublicKey, sentinel *domain.ProgramError) error {
	if !got.Equals(want) {
		return fmt.Errorf("%w: got %s, want %s", sentinel, got, want)
	}
	return nil
}

// notExpired reports whether now falls before the campaign's closing time.
func notExpired(startTime int64, durationDays uint8, now int64) bool {
	return now < startTime+int64(durationDays)*domain.SecondsPerDay
}

func requireNotExpired(c *domain.Campaign, now int64) error {
	if !notExpired(c.StartTime, c.DurationDays, now) {
		return fmt.Errorf("%w: closed at %d, now %d", domain.ErrCampaignExpired, c.ExpiresAt(), now)
	}
	return nil
}

// sufficientBalance is strict: a holder may not contribute its entire
// balance.
func sufficientBalance(holderAmount, requested uint64) bool {
	return holderAmount > requested
}

func requireSufficientBalance(holderAmount, requested uint64) error {
	if !sufficientBalance(holderAmount, requested) {
		return fmt.Errorf("%w: balance %d, requested %d", domain.ErrInsufficientBalance, holderAmount, requested)
	}
	return nil
}

func checkedAdd(a, b uint64) (uint64, error) {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return 0, fmt.Errorf("%w: %d + %d", domain.ErrArithmeticOverflow, a, b)
	}
	return sum, nil
}
