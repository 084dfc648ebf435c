package main

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/require"

	"fundraiser/internal/adapter/pda"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	t.Cleanup(func() { encodeHex = false })
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return strings.TrimSpace(out.String())
}

func TestEncodeContributeHex(t *testing.T) {
	got := execute(t, "encode", "contribute", "--amount", "7", "--hex")
	require.Equal(t, "010700000000000000", got)
}

func TestEncodeInitializeBase64(t *testing.T) {
	got := execute(t, "encode", "initialize", "--target", "1", "--days", "3")
	require.Equal(t, "AAAAAAAAAAAAAAAAAAAAAAABAAAAAAAAAAM=", got)
}

func TestDeriveCampaign(t *testing.T) {
	maker := solana.NewWallet().PublicKey()
	mint := solana.NewWallet().PublicKey()
	program := solana.MustPublicKeyFromBase58(programIDFlag)

	addr, signer, err := pda.Campaign(maker, program)
	require.NoError(t, err)
	vault, err := pda.HoldingAccount(addr, mint)
	require.NoError(t, err)

	got := execute(t, "derive", "campaign", "--maker", maker.String(), "--mint", mint.String())
	require.Contains(t, got, "campaign: "+addr.String())
	require.Contains(t, got, "vault: "+vault.String())
	require.Contains(t, got, fmt.Sprintf("bump: %d", signer.Bump))
}
