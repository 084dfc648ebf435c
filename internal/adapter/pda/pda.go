// Package pda derives the program's deterministic addresses. It wraps the
// ledger's derivation primitive so handlers and clients agree on seed
// layouts.
package pda

import (
	"fmt"

	"github.com/gagliardetto/solana-go"

	"fundraiser/internal/core/domain"
)

// Seed prefixes for the two record kinds.
var (
	CampaignPrefix     = []byte("campaign")
	ContributionPrefix = []byte("contribution")
)

// Derive returns the address and disambiguation byte for seeds under
// programID. The only failure is the primitive finding no off-curve address
// for any bump, which is reported as ErrInvalidSeeds.
func Derive(seeds [][]byte, programID solana.PublicKey) (solana.PublicKey, uint8, error) {
	addr, bump, err := solana.FindProgramAddress(seeds, programID)
	if err != nil {
		return solana.PublicKey{}, 0, fmt.Errorf("%w: %w", domain.ErrInvalidSeeds, err)
	}
	return addr, bump, nil
}

// Verify re-derives the address from seeds and a known bump and compares it
// with candidate. It does not search other bumps.
func Verify(signer domain.SignerSeeds, programID, candidate solana.PublicKey) bool {
	addr, err := solana.CreateProgramAddress(signer.Full(), programID)
	if err != nil {
		return false
	}
	return addr.Equals(candidate)
}

// CampaignSeeds returns the seed tuple of the campaign opened by maker.
func CampaignSeeds(maker solana.PublicKey) [][]byte {
	return [][]byte{CampaignPrefix, maker.Bytes()}
}

// ContributionSeeds returns the seed tuple of contributor's record for
// campaign: ("contribution", campaign, contributor). The campaign address is
// part of the tuple, so a contributor backing two campaigns holds two
// records. Clients must derive with all three seeds; the two-seed form
// ("contribution", contributor) is not accepted.
func ContributionSeeds(campaign, contributor solana.PublicKey) [][]byte {
	return [][]byte{ContributionPrefix, campaign.Bytes(), contributor.Bytes()}
}

// Campaign derives the campaign address of maker together with the signer
// capability for it.
func Campaign(maker, programID solana.PublicKey) (solana.PublicKey, domain.SignerSeeds, error) {
	seeds := CampaignSeeds(maker)
	addr, bump, err := Derive(seeds, programID)
	if err != nil {
		return solana.PublicKey{}, domain.SignerSeeds{}, err
	}
	return addr, domain.SignerSeeds{Seeds: seeds, Bump: bump}, nil
}

// Contribution derives the address of contributor's record for campaign
// together with the signer capability for it.
func Contribution(campaign, contributor, programID solana.PublicKey) (solana.PublicKey, domain.SignerSeeds, error) {
	seeds := ContributionSeeds(campaign, contributor)
	addr, bump, err := Derive(seeds, programID)
	if err != nil {
		return solana.PublicKey{}, domain.SignerSeeds{}, err
	}
	return addr, domain.SignerSeeds{Seeds: seeds, Bump: bump}, nil
}

// HoldingAccount returns the canonical asset holding account of owner for
// mint, the address the asset-account-creation service allocates.
func HoldingAccount(owner, mint solana.PublicKey) (solana.PublicKey, error) {
	addr, _, err := solana.FindAssociatedTokenAddress(owner, mint)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("%w: %w", domain.ErrInvalidSeeds, err)
	}
	return addr, nil
}
