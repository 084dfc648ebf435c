package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"fundraiser/internal/adapter/pda"
	"fundraiser/internal/core/domain"
	"fundraiser/internal/core/port"
)

// Slot positions for Contribute.
const (
	contribContributor = iota
	contribMint
	contribCampaign
	contribRecord
	contribHolder
	contribVault
	contribSystemProgram
	contribTokenProgram
	contribATAProgram
	contribRentSysvar
	contribAccountsLen
)

// contribute moves amount from the contributor's holding account into the
// campaign vault, creates the contributor's record on first use, and adds
// amount to both the record and the campaign's running total.
func (p *Processor) contribute(ctx context.Context, rt port.Runtime, accounts []*domain.Account, body []byte) error {
	if len(accounts) < contribAccountsLen {
		return fmt.Errorf("%w: contribute needs %d, got %d", domain.ErrNotEnoughAccountKeys, contribAccountsLen, len(accounts))
	}
	var (
		contributor = accounts[contribContributor]
		mint        = accounts[contribMint]
		campaign    = accounts[contribCampaign]
		record      = accounts[contribRecord]
		holder      = accounts[contribHolder]
		vault       = accounts[contribVault]
	)

	if err := requireSigner(contributor, "contributor"); err != nil {
		return err
	}
	args, err := domain.ParseContributeArgs(body)
	if err != nil {
		return err
	}
	if err = p.requireServices(accounts[contribSystemProgram], accounts[contribTokenProgram], accounts[contribATAProgram], accounts[contribRentSysvar]); err != nil {
		return err
	}

	if err = requireInitialized(campaign, "campaign"); err != nil {
		return err
	}
	if err = requireOwnedBy(campaign, p.programID, "campaign"); err != nil {
		return err
	}
	state, err := domain.DecodeCampaign(campaign.Data)
	if err != nil {
		return err
	}

	now, err := rt.UnixTimestamp(ctx)
	if err != nil {
		return fmt.Errorf("%w: clock: %w", domain.ErrExternalService, err)
	}
	if err = requireNotExpired(&state, now); err != nil {
		return err
	}

	holding, err := domain.DecodeTokenAccount(holder.Data)
	if err != nil {
		return fmt.Errorf("contributor holding account: %w", err)
	}
	if err = requireSufficientBalance(holding.Amount, args.Amount); err != nil {
		return err
	}

	if err = requireAddress(mint.Address, state.FundingMint, domain.ErrMintMismatch); err != nil {
		return err
	}
	if err = requireAddress(vault.Address, state.Vault, domain.ErrVaultMismatch); err != nil {
		return err
	}

	expected, signer, err := pda.Contribution(campaign.Address, contributor.Address, p.programID)
	if err != nil {
		return err
	}
	if err = requireAddress(record.Address, expected, domain.ErrContributionMismatch); err != nil {
		return err
	}
	if err = requireWritable(record, "contribution"); err != nil {
		return err
	}
	if err = requireWritable(campaign, "campaign"); err != nil {
		return err
	}

	if err = rt.Transfer(ctx, holder, vault, contributor, args.Amount); err != nil {
		return fmt.Errorf("transfer to vault: %w", err)
	}

	created := false
	if record.IsDataEmpty() {
		err = rt.CreateAccount(ctx, port.CreateAccountParams{
			From:     contributor,
			To:       record,
			Lamports: rt.MinimumBalance(domain.ContributionLen),
			Space:    domain.ContributionLen,
			Owner:    p.programID,
			Signer:   &signer,
		})
		if err != nil {
			return fmt.Errorf("create contribution: %w", err)
		}
		created = true
	} else if err = requireOwnedBy(record, p.programID, "contribution"); err != nil {
		return err
	}

	contribution, err := domain.DecodeContribution(record.Data)
	if err != nil {
		return err
	}
	if contribution.Amount, err = checkedAdd(contribution.Amount, args.Amount); err != nil {
		return err
	}
	if err = contribution.Encode(record.Data); err != nil {
		return err
	}

	if state.CurrentAmount, err = checkedAdd(state.CurrentAmount, args.Amount); err != nil {
		return err
	}
	if err = state.Encode(campaign.Data); err != nil {
		return err
	}

	rt.Log(fmt.Sprintf("contribution of %d to %s, total %d", args.Amount, campaign.Address, state.CurrentAmount))
	p.logger.DebugContext(ctx, "contribution accepted",
		slog.String("campaign", campaign.Address.String()),
		slog.String("contributor", contributor.Address.String()),
		slog.Uint64("amount", args.Amount),
		slog.Uint64("contributor_total", contribution.Amount),
		slog.Uint64("campaign_total", state.CurrentAmount),
		slog.Bool("record_created", created),
	)
	return nil
}
