package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInitializeArgs(t *testing.T) {
	args := InitializeArgs{
		MinAmountSendable: 10_000_000,
		MaxAmountSendable: 4_000_000_000,
		AmountToRaise:     10_000_000_000,
		DurationDays:      3,
	}
	b, err := args.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, b, 26)
	require.Equal(t, byte(OpInitialize), b[0])

	got, err := ParseInitializeArgs(b[1:])
	require.NoError(t, err)
	require.Equal(t, args, got)

	got, err = ParseInitializeArgs(append(b[1:], 0xff))
	require.NoError(t, err, "trailing bytes are ignored")
	require.Equal(t, args, got)

	_, err = ParseInitializeArgs(b[1:25])
	require.ErrorIs(t, err, ErrInvalidInstructionData)
}

func TestContributeArgs(t *testing.T) {
	b, err := ContributeArgs{Amount: 7}.MarshalBinary()
	require.NoError(t, err)
	require.Equal(t, []byte{1, 7, 0, 0, 0, 0, 0, 0, 0}, b)

	got, err := ParseContributeArgs(b[1:])
	require.NoError(t, err)
	require.Equal(t, uint64(7), got.Amount)

	_, err = ParseContributeArgs(nil)
	require.ErrorIs(t, err, ErrInvalidInstructionData)
}

func TestOpcodeString(t *testing.T) {
	require.Equal(t, "initialize", OpInitialize.String())
	require.Equal(t, "contribute", OpContribute.String())
	require.Equal(t, "opcode(9)", Opcode(9).String())
}
