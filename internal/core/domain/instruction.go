package domain

import (
	"encoding/binary"
	"fmt"
)

// Opcode is the first byte of an instruction payload.
type Opcode uint8

const (
	OpInitialize Opcode = 0
	OpContribute Opcode = 1
)

func (o Opcode) String() string {
	switch o {
	case OpInitialize:
		return "initialize"
	case OpContribute:
		return "contribute"
	default:
		return fmt.Sprintf("opcode(%d)", uint8(o))
	}
}

const (
	// InitializeArgsLen is the byte length of the Initialize payload body.
	InitializeArgsLen = 8 + 8 + 8 + 1
	// ContributeArgsLen is the byte length of the Contribute payload body.
	ContributeArgsLen = 8
)

// InitializeArgs opens a campaign. MinAmountSendable and MaxAmountSendable
// are carried on the wire but not persisted.
type InitializeArgs struct {
	MinAmountSendable uint64
	MaxAmountSendable uint64
	AmountToRaise     uint64
	DurationDays      uint8
}

// ParseInitializeArgs decodes the body that follows the opcode. Trailing
// bytes are ignored.
func ParseInitializeArgs(data []byte) (InitializeArgs, error) {
	if len(data) < InitializeArgsLen {
		return InitializeArgs{}, fmt.Errorf("%w: initialize body is %d bytes, want %d", ErrInvalidInstructionData, len(data), InitializeArgsLen)
	}
	return InitializeArgs{
		MinAmountSendable: binary.LittleEndian.Uint64(data[0:]),
		MaxAmountSendable: binary.LittleEndian.Uint64(data[8:]),
		AmountToRaise:     binary.LittleEndian.Uint64(data[16:]),
		DurationDays:      data[24],
	}, nil
}

// MarshalBinary returns the full instruction payload including the opcode.
func (a InitializeArgs) MarshalBinary() ([]byte, error) {
	b := make([]byte, 1+InitializeArgsLen)
	b[0] = byte(OpInitialize)
	binary.LittleEndian.PutUint64(b[1:], a.MinAmountSendable)
	binary.LittleEndian.PutUint64(b[9:], a.MaxAmountSendable)
	binary.LittleEndian.PutUint64(b[17:], a.AmountToRaise)
	b[25] = a.DurationDays
	return b, nil
}

// ContributeArgs moves Amount base units of the campaign's asset into its
// vault.
type ContributeArgs struct {
	Amount uint64
}

// ParseContributeArgs decodes the body that follows the opcode. Trailing
// bytes are ignored.
func ParseContributeArgs(data []byte) (ContributeArgs, error) {
	if len(data) < ContributeArgsLen {
		return ContributeArgs{}, fmt.Errorf("%w: contribute body is %d bytes, want %d", ErrInvalidInstructionData, len(data), ContributeArgsLen)
	}
	return ContributeArgs{Amount: binary.LittleEndian.Uint64(data)}, nil
}

// MarshalBinary returns the full instruction payload including the opcode.
func (a ContributeArgs) MarshalBinary() ([]byte, error) {
	b := make([]byte, 1+ContributeArgsLen)
	b[0] = byte(OpContribute)
	binary.LittleEndian.PutUint64(b[1:], a.Amount)
	return b, nil
}
