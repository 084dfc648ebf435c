package domain

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/gagliardetto/solana-go"
)

// ErrSignatureVerification is returned when a slot is presented as a signer
// without a valid signature over the transaction message.
var ErrSignatureVerification = errors.New("signature verification failed")

// AccountMeta references a slot in a transaction and declares how the
// instruction may use it.
type AccountMeta struct {
	Address    solana.PublicKey
	IsSigner   bool
	IsWritable bool
}

// Transaction is a single instruction submitted to the ledger host. Nonce
// makes otherwise identical instructions distinct; the host commits each
// signed message at most once.
type Transaction struct {
	ProgramID  solana.PublicKey
	Nonce      solana.Hash
	Accounts   []AccountMeta
	Data       []byte
	Signatures map[solana.PublicKey]solana.Signature
}

// NewNonce returns a random transaction nonce.
func NewNonce() (solana.Hash, error) {
	var h solana.Hash
	if _, err := rand.Read(h[:]); err != nil {
		return solana.Hash{}, fmt.Errorf("nonce: %w", err)
	}
	return h, nil
}

// Message returns the bytes every signer signs: program id, nonce, the
// account metas in order and the payload.
func (t *Transaction) Message() []byte {
	msg := make([]byte, 0, 2*solana.PublicKeyLength+2+len(t.Accounts)*(solana.PublicKeyLength+1)+4+len(t.Data))
	msg = append(msg, t.ProgramID[:]...)
	msg = append(msg, t.Nonce[:]...)
	msg = binary.LittleEndian.AppendUint16(msg, uint16(len(t.Accounts)))
	for _, m := range t.Accounts {
		var flags byte
		if m.IsSigner {
			flags |= 1
		}
		if m.IsWritable {
			flags |= 2
		}
		msg = append(msg, m.Address[:]...)
		msg = append(msg, flags)
	}
	msg = binary.LittleEndian.AppendUint32(msg, uint32(len(t.Data)))
	return append(msg, t.Data...)
}

// Digest identifies the signed message. Two submissions with the same digest
// are the same transaction.
func (t *Transaction) Digest() solana.Hash {
	return solana.Hash(sha256.Sum256(t.Message()))
}

// Sign adds signatures from keys. Each key should match a signer meta.
func (t *Transaction) Sign(keys ...solana.PrivateKey) error {
	msg := t.Message()
	if t.Signatures == nil {
		t.Signatures = make(map[solana.PublicKey]solana.Signature, len(keys))
	}
	for _, k := range keys {
		sig, err := k.Sign(msg)
		if err != nil {
			return fmt.Errorf("sign for %s: %w", k.PublicKey(), err)
		}
		t.Signatures[k.PublicKey()] = sig
	}
	return nil
}

// VerifySignatures checks that every signer meta carries a valid signature.
func (t *Transaction) VerifySignatures() error {
	msg := t.Message()
	for _, m := range t.Accounts {
		if !m.IsSigner {
			continue
		}
		sig, ok := t.Signatures[m.Address]
		if !ok || !sig.Verify(m.Address, msg) {
			return fmt.Errorf("%w: %s", ErrSignatureVerification, m.Address)
		}
	}
	return nil
}
