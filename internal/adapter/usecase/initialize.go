package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gagliardetto/solana-go"

	"fundraiser/internal/adapter/pda"
	"fundraiser/internal/core/domain"
	"fundraiser/internal/core/port"
)

// Slot positions for Initialize.
const (
	initMaker = iota
	initMint
	initCampaign
	initVault
	initSystemProgram
	initTokenProgram
	initATAProgram
	initRentSysvar
	initAccountsLen
)

// initialize opens a campaign for the signing maker. It allocates the
// campaign record at the maker's derived address, allocates the vault owned
// by that address, and writes the record with a zero running total.
func (p *Processor) initialize(ctx context.Context, rt port.Runtime, accounts []*domain.Account, body []byte) error {
	if len(accounts) < initAccountsLen {
		return fmt.Errorf("%w: initialize needs %d, got %d", domain.ErrNotEnoughAccountKeys, initAccountsLen, len(accounts))
	}
	var (
		maker    = accounts[initMaker]
		mint     = accounts[initMint]
		campaign = accounts[initCampaign]
		vault    = accounts[initVault]
	)

	if err := requireSigner(maker, "maker"); err != nil {
		return err
	}
	args, err := domain.ParseInitializeArgs(body)
	if err != nil {
		return err
	}
	if err = p.requireServices(accounts[initSystemProgram], accounts[initTokenProgram], accounts[initATAProgram], accounts[initRentSysvar]); err != nil {
		return err
	}

	if err = requireOwnedBy(mint, solana.TokenProgramID, "mint"); err != nil {
		return err
	}
	mintState, err := domain.DecodeMint(mint.Data)
	if err != nil {
		return err
	}
	if !mintState.IsInitialized {
		return fmt.Errorf("%w: %s", domain.ErrMintNotInitialized, mint.Address)
	}

	if err = requireEmpty(campaign, "campaign"); err != nil {
		return err
	}
	if err = requireEmpty(vault, "vault"); err != nil {
		return err
	}
	if err = requireWritable(campaign, "campaign"); err != nil {
		return err
	}
	if err = requireWritable(vault, "vault"); err != nil {
		return err
	}

	expected, signer, err := pda.Campaign(maker.Address, p.programID)
	if err != nil {
		return err
	}
	if err = requireAddress(campaign.Address, expected, domain.ErrCampaignMismatch); err != nil {
		return err
	}

	now, err := rt.UnixTimestamp(ctx)
	if err != nil {
		return fmt.Errorf("%w: clock: %w", domain.ErrExternalService, err)
	}

	err = rt.CreateAccount(ctx, port.CreateAccountParams{
		From:     maker,
		To:       campaign,
		Lamports: rt.MinimumBalance(domain.CampaignLen),
		Space:    domain.CampaignLen,
		Owner:    p.programID,
		Signer:   &signer,
	})
	if err != nil {
		return fmt.Errorf("create campaign: %w", err)
	}
	if err = rt.CreateHoldingAccount(ctx, maker, vault, campaign, mint); err != nil {
		return fmt.Errorf("create vault: %w", err)
	}

	record := domain.Campaign{
		Maker:         maker.Address,
		FundingMint:   mint.Address,
		Vault:         vault.Address,
		TargetAmount:  args.AmountToRaise,
		CurrentAmount: 0,
		StartTime:     now,
		DurationDays:  args.DurationDays,
		Bump:          signer.Bump,
	}
	if err = record.Encode(campaign.Data); err != nil {
		return err
	}

	rt.Log(fmt.Sprintf("campaign %s opened: target %d over %d days", campaign.Address, args.AmountToRaise, args.DurationDays))
	p.logger.DebugContext(ctx, "campaign initialized",
		slog.String("campaign", campaign.Address.String()),
		slog.String("maker", maker.Address.String()),
		slog.Uint64("target", args.AmountToRaise),
		slog.Uint64("min_sendable", args.MinAmountSendable),
		slog.Uint64("max_sendable", args.MaxAmountSendable),
		slog.Int("duration_days", int(args.DurationDays)),
	)
	return nil
}

// requireServices checks the service slots shared by both instructions.
func (p *Processor) requireServices(system, token, ata, rent *domain.Account) error {
	if err := requireProgram(system, solana.SystemProgramID, "system program"); err != nil {
		return err
	}
	if err := requireProgram(token, solana.TokenProgramID, "token program"); err != nil {
		return err
	}
	if err := requireProgram(ata, solana.SPLAssociatedTokenAccountProgramID, "associated token program"); err != nil {
		return err
	}
	return requireProgram(rent, solana.SysVarRentPubkey, "rent sysvar")
}
