package domain

import (
	"bytes"

	"github.com/gagliardetto/solana-go"
)

// Account is a storage slot as seen by a single instruction invocation.
// Address, Owner, Lamports and Data are persistent; IsSigner and IsWritable
// describe how the caller presented the slot and are never stored.
type Account struct {
	Address  solana.PublicKey
	Owner    solana.PublicKey
	Lamports uint64
	Data     []byte

	IsSigner   bool
	IsWritable bool
}

// NewEmptyAccount returns the slot the ledger reports for an address that
// holds nothing: no data, no balance, owned by the system service.
func NewEmptyAccount(addr solana.PublicKey) *Account {
	return &Account{Address: addr, Owner: solana.SystemProgramID}
}

// IsDataEmpty reports whether the slot has no allocated data.
func (a *Account) IsDataEmpty() bool {
	return len(a.Data) == 0
}

// OwnedBy reports whether program governs the slot.
func (a *Account) OwnedBy(program solana.PublicKey) bool {
	return a.Owner.Equals(program)
}

// Clone returns a deep copy of the slot.
func (a *Account) Clone() *Account {
	c := *a
	if a.Data != nil {
		c.Data = bytes.Clone(a.Data)
	}
	return &c
}

// StateEqual reports whether two slots hold the same persistent state.
func (a *Account) StateEqual(b *Account) bool {
	return a.Address.Equals(b.Address) &&
		a.Owner.Equals(b.Owner) &&
		a.Lamports == b.Lamports &&
		bytes.Equal(a.Data, b.Data)
}
