// Package client builds unsigned crowdfunding transactions with the slot
// lists the program expects.
package client

import (
	"github.com/gagliardetto/solana-go"

	"fundraiser/internal/adapter/pda"
	"fundraiser/internal/core/domain"
)

func services() []domain.AccountMeta {
	return []domain.AccountMeta{
		{Address: solana.SystemProgramID},
		{Address: solana.TokenProgramID},
		{Address: solana.SPLAssociatedTokenAccountProgramID},
		{Address: solana.SysVarRentPubkey},
	}
}

// CampaignAddresses are the slots Initialize allocates for a maker.
type CampaignAddresses struct {
	Campaign solana.PublicKey
	Vault    solana.PublicKey
	Bump     uint8
}

// DeriveCampaign computes the campaign and vault addresses of maker for mint.
func DeriveCampaign(programID, maker, mint solana.PublicKey) (CampaignAddresses, error) {
	campaign, signer, err := pda.Campaign(maker, programID)
	if err != nil {
		return CampaignAddresses{}, err
	}
	vault, err := pda.HoldingAccount(campaign, mint)
	if err != nil {
		return CampaignAddresses{}, err
	}
	return CampaignAddresses{Campaign: campaign, Vault: vault, Bump: signer.Bump}, nil
}

// Initialize builds a transaction opening maker's campaign for mint. Each
// call draws a fresh nonce.
func Initialize(programID, maker, mint solana.PublicKey, args domain.InitializeArgs) (*domain.Transaction, CampaignAddresses, error) {
	addrs, err := DeriveCampaign(programID, maker, mint)
	if err != nil {
		return nil, CampaignAddresses{}, err
	}
	data, err := args.MarshalBinary()
	if err != nil {
		return nil, CampaignAddresses{}, err
	}
	nonce, err := domain.NewNonce()
	if err != nil {
		return nil, CampaignAddresses{}, err
	}
	metas := []domain.AccountMeta{
		{Address: maker, IsSigner: true, IsWritable: true},
		{Address: mint},
		{Address: addrs.Campaign, IsWritable: true},
		{Address: addrs.Vault, IsWritable: true},
	}
	return &domain.Transaction{
		ProgramID: programID,
		Nonce:     nonce,
		Accounts:  append(metas, services()...),
		Data:      data,
	}, addrs, nil
}

// ContributeAccounts names the slots of a contribution.
type ContributeAccounts struct {
	Contributor solana.PublicKey
	Mint        solana.PublicKey
	Campaign    solana.PublicKey
	Vault       solana.PublicKey
}

// Contribute builds a transaction moving args.Amount from the contributor's
// canonical holding account into the campaign vault. It returns the
// contributor's record address.
func Contribute(programID solana.PublicKey, acc ContributeAccounts, args domain.ContributeArgs) (*domain.Transaction, solana.PublicKey, error) {
	record, _, err := pda.Contribution(acc.Campaign, acc.Contributor, programID)
	if err != nil {
		return nil, solana.PublicKey{}, err
	}
	holder, err := pda.HoldingAccount(acc.Contributor, acc.Mint)
	if err != nil {
		return nil, solana.PublicKey{}, err
	}
	data, err := args.MarshalBinary()
	if err != nil {
		return nil, solana.PublicKey{}, err
	}
	nonce, err := domain.NewNonce()
	if err != nil {
		return nil, solana.PublicKey{}, err
	}
	metas := []domain.AccountMeta{
		{Address: acc.Contributor, IsSigner: true, IsWritable: true},
		{Address: acc.Mint},
		{Address: acc.Campaign, IsWritable: true},
		{Address: record, IsWritable: true},
		{Address: holder, IsWritable: true},
		{Address: acc.Vault, IsWritable: true},
	}
	return &domain.Transaction{
		ProgramID: programID,
		Nonce:     nonce,
		Accounts:  append(metas, services()...),
		Data:      data,
	}, record, nil
}
