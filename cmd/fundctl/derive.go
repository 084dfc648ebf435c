package main

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/spf13/cobra"

	"fundraiser/internal/adapter/pda"
)

var deriveCmd = &cobra.Command{
	Use:   "derive",
	Short: "Derive program addresses",
}

var deriveCampaignCmd = &cobra.Command{
	Use:   "campaign --maker ADDRESS",
	Short: "Derive the campaign address and vault of a maker",
	RunE:  runDeriveCampaign,
}

var deriveContributionCmd = &cobra.Command{
	Use:   "contribution --campaign ADDRESS --contributor ADDRESS",
	Short: "Derive a contributor's record address for a campaign",
	RunE:  runDeriveContribution,
}

func init() {
	deriveCampaignCmd.Flags().String("maker", "", "maker address (base58)")
	deriveCampaignCmd.Flags().String("mint", "", "funding mint (base58); prints the vault when set")
	_ = deriveCampaignCmd.MarkFlagRequired("maker")

	deriveContributionCmd.Flags().String("campaign", "", "campaign address (base58)")
	deriveContributionCmd.Flags().String("contributor", "", "contributor address (base58)")
	_ = deriveContributionCmd.MarkFlagRequired("campaign")
	_ = deriveContributionCmd.MarkFlagRequired("contributor")

	deriveCmd.AddCommand(deriveCampaignCmd, deriveContributionCmd)
}

// keyFlag parses a base58 flag value.
func keyFlag(cmd *cobra.Command, name string) (solana.PublicKey, error) {
	v, err := cmd.Flags().GetString(name)
	if err != nil {
		return solana.PublicKey{}, err
	}
	key, err := solana.PublicKeyFromBase58(v)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("--%s: %w", name, err)
	}
	return key, nil
}

func programID() (solana.PublicKey, error) {
	key, err := solana.PublicKeyFromBase58(programIDFlag)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("--program-id: %w", err)
	}
	return key, nil
}

func runDeriveCampaign(cmd *cobra.Command, _ []string) error {
	program, err := programID()
	if err != nil {
		return err
	}
	maker, err := keyFlag(cmd, "maker")
	if err != nil {
		return err
	}
	addr, signer, err := pda.Campaign(maker, program)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "campaign: %s\nbump: %d\n", addr, signer.Bump)

	if mintStr, _ := cmd.Flags().GetString("mint"); mintStr != "" {
		mint, err := keyFlag(cmd, "mint")
		if err != nil {
			return err
		}
		vault, err := pda.HoldingAccount(addr, mint)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "vault: %s\n", vault)
	}
	return nil
}

func runDeriveContribution(cmd *cobra.Command, _ []string) error {
	program, err := programID()
	if err != nil {
		return err
	}
	campaign, err := keyFlag(cmd, "campaign")
	if err != nil {
		return err
	}
	contributor, err := keyFlag(cmd, "contributor")
	if err != nil {
		return err
	}
	addr, signer, err := pda.Contribution(campaign, contributor, program)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "contribution: %s\nbump: %d\n", addr, signer.Bump)
	return nil
}
