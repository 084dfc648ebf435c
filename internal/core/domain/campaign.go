package domain

import (
	"encoding/binary"
	"fmt"

	"github.com/gagliardetto/solana-go"
)

// SecondsPerDay converts a campaign duration into ledger clock units.
const SecondsPerDay = 24 * 60 * 60

// Campaign record byte offsets. Multi-byte integers are little endian and
// fields are packed without padding.
const (
	campaignMakerOffset    = 0
	campaignMintOffset     = campaignMakerOffset + solana.PublicKeyLength
	campaignVaultOffset    = campaignMintOffset + solana.PublicKeyLength
	campaignTargetOffset   = campaignVaultOffset + solana.PublicKeyLength
	campaignCurrentOffset  = campaignTargetOffset + 8
	campaignStartOffset    = campaignCurrentOffset + 8
	campaignDurationOffset = campaignStartOffset + 8
	campaignBumpOffset     = campaignDurationOffset + 1

	// CampaignLen is the exact byte length of an encoded Campaign.
	CampaignLen = campaignBumpOffset + 1
)

// Campaign is the persistent state of one fundraising campaign. Only
// CurrentAmount changes after creation.
type Campaign struct {
	Maker         solana.PublicKey
	FundingMint   solana.PublicKey
	Vault         solana.PublicKey
	TargetAmount  uint64
	CurrentAmount uint64
	StartTime     int64
	DurationDays  uint8
	Bump          uint8
}

// ExpiresAt returns the first unix timestamp at which the campaign no longer
// accepts contributions.
func (c *Campaign) ExpiresAt() int64 {
	return c.StartTime + int64(c.DurationDays)*SecondsPerDay
}

// DecodeCampaign reads a Campaign from a slot buffer of exactly CampaignLen
// bytes.
func DecodeCampaign(data []byte) (Campaign, error) {
	var c Campaign
	if len(data) != CampaignLen {
		return c, fmt.Errorf("%w: campaign is %d bytes, want %d", ErrInvalidAccountData, len(data), CampaignLen)
	}
	copy(c.Maker[:], data[campaignMakerOffset:campaignMintOffset])
	copy(c.FundingMint[:], data[campaignMintOffset:campaignVaultOffset])
	copy(c.Vault[:], data[campaignVaultOffset:campaignTargetOffset])
	c.TargetAmount = binary.LittleEndian.Uint64(data[campaignTargetOffset:])
	c.CurrentAmount = binary.LittleEndian.Uint64(data[campaignCurrentOffset:])
	c.StartTime = int64(binary.LittleEndian.Uint64(data[campaignStartOffset:]))
	c.DurationDays = data[campaignDurationOffset]
	c.Bump = data[campaignBumpOffset]
	return c, nil
}

// Encode writes the record in place. dst must be exactly CampaignLen bytes.
func (c *Campaign) Encode(dst []byte) error {
	if len(dst) != CampaignLen {
		return fmt.Errorf("%w: campaign buffer is %d bytes, want %d", ErrInvalidAccountData, len(dst), CampaignLen)
	}
	copy(dst[campaignMakerOffset:], c.Maker[:])
	copy(dst[campaignMintOffset:], c.FundingMint[:])
	copy(dst[campaignVaultOffset:], c.Vault[:])
	binary.LittleEndian.PutUint64(dst[campaignTargetOffset:], c.TargetAmount)
	binary.LittleEndian.PutUint64(dst[campaignCurrentOffset:], c.CurrentAmount)
	binary.LittleEndian.PutUint64(dst[campaignStartOffset:], uint64(c.StartTime))
	dst[campaignDurationOffset] = c.DurationDays
	dst[campaignBumpOffset] = c.Bump
	return nil
}
