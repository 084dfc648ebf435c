package domain

import (
	"encoding/binary"
	"fmt"
)

// ContributionLen is the exact byte length of an encoded Contribution.
const ContributionLen = 8

// Contribution is the cumulative amount one contributor has sent to one
// campaign.
type Contribution struct {
	Amount uint64
}

// DecodeContribution reads a Contribution from a slot buffer of exactly
// ContributionLen bytes.
func DecodeContribution(data []byte) (Contribution, error) {
	if len(data) != ContributionLen {
		return Contribution{}, fmt.Errorf("%w: contribution is %d bytes, want %d", ErrInvalidAccountData, len(data), ContributionLen)
	}
	return Contribution{Amount: binary.LittleEndian.Uint64(data)}, nil
}

// Encode writes the record in place. dst must be exactly ContributionLen
// bytes.
func (c *Contribution) Encode(dst []byte) error {
	if len(dst) != ContributionLen {
		return fmt.Errorf("%w: contribution buffer is %d bytes, want %d", ErrInvalidAccountData, len(dst), ContributionLen)
	}
	binary.LittleEndian.PutUint64(dst, c.Amount)
	return nil
}
