package domain

import (
	"bytes"
	"fmt"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go/programs/token"
)

// Sizes of the asset service's own records. The program only reads them;
// the ledger host's asset service writes them.
const (
	// MintLen is the byte length of an asset descriptor.
	MintLen = 82
	// TokenAccountLen is the byte length of an asset holding account.
	TokenAccountLen = 165
)

// Mint describes a fungible asset type.
type Mint = token.Mint

// TokenAccount is an asset holding account.
type TokenAccount = token.Account

// TokenState is the lifecycle state of a holding account.
type TokenState = token.AccountState

const (
	TokenStateUninitialized = token.Uninitialized
	TokenStateInitialized   = token.Initialized
	TokenStateFrozen        = token.Frozen
)

// TokenAccountInitialized reports whether the holding account has been bound
// to a mint and owner.
func TokenAccountInitialized(t *TokenAccount) bool {
	return t.State != TokenStateUninitialized
}

// DecodeMint reads an asset descriptor.
func DecodeMint(data []byte) (Mint, error) {
	var m Mint
	if len(data) != MintLen {
		return m, fmt.Errorf("%w: mint is %d bytes, want %d", ErrInvalidAccountData, len(data), MintLen)
	}
	if err := m.UnmarshalWithDecoder(bin.NewBinDecoder(data)); err != nil {
		return Mint{}, fmt.Errorf("%w: mint: %w", ErrInvalidAccountData, err)
	}
	return m, nil
}

// EncodeMint writes the descriptor in place.
func EncodeMint(dst []byte, m *Mint) error {
	if len(dst) != MintLen {
		return fmt.Errorf("%w: mint buffer is %d bytes, want %d", ErrInvalidAccountData, len(dst), MintLen)
	}
	var buf bytes.Buffer
	if err := m.MarshalWithEncoder(bin.NewBinEncoder(&buf)); err != nil {
		return fmt.Errorf("%w: mint: %w", ErrInvalidAccountData, err)
	}
	return place(dst, buf.Bytes(), "mint")
}

// DecodeTokenAccount reads a holding account.
func DecodeTokenAccount(data []byte) (TokenAccount, error) {
	var t TokenAccount
	if len(data) != TokenAccountLen {
		return t, fmt.Errorf("%w: token account is %d bytes, want %d", ErrInvalidAccountData, len(data), TokenAccountLen)
	}
	if err := t.UnmarshalWithDecoder(bin.NewBinDecoder(data)); err != nil {
		return TokenAccount{}, fmt.Errorf("%w: token account: %w", ErrInvalidAccountData, err)
	}
	return t, nil
}

// EncodeTokenAccount writes the holding account in place.
func EncodeTokenAccount(dst []byte, t *TokenAccount) error {
	if len(dst) != TokenAccountLen {
		return fmt.Errorf("%w: token account buffer is %d bytes, want %d", ErrInvalidAccountData, len(dst), TokenAccountLen)
	}
	var buf bytes.Buffer
	if err := t.MarshalWithEncoder(bin.NewBinEncoder(&buf)); err != nil {
		return fmt.Errorf("%w: token account: %w", ErrInvalidAccountData, err)
	}
	return place(dst, buf.Bytes(), "token account")
}

// place copies an encoded record into its slot buffer, which must match the
// encoded length exactly.
func place(dst, encoded []byte, what string) error {
	if len(encoded) != len(dst) {
		return fmt.Errorf("%w: %s encoded to %d bytes, want %d", ErrInvalidAccountData, what, len(encoded), len(dst))
	}
	copy(dst, encoded)
	return nil
}
