package main

import (
	"encoding"
	"encoding/base64"
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"fundraiser/internal/core/domain"
)

var encodeHex bool

var encodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Encode instruction payloads (base64 by default)",
}

var encodeInitializeCmd = &cobra.Command{
	Use:   "initialize --target AMOUNT --days N",
	Short: "Encode an Initialize payload",
	RunE: func(cmd *cobra.Command, _ []string) error {
		f := cmd.Flags()
		var (
			args domain.InitializeArgs
			err  error
		)
		if args.MinAmountSendable, err = f.GetUint64("min"); err != nil {
			return err
		}
		if args.MaxAmountSendable, err = f.GetUint64("max"); err != nil {
			return err
		}
		if args.AmountToRaise, err = f.GetUint64("target"); err != nil {
			return err
		}
		if args.DurationDays, err = f.GetUint8("days"); err != nil {
			return err
		}
		return printPayload(cmd, args)
	},
}

var encodeContributeCmd = &cobra.Command{
	Use:   "contribute --amount AMOUNT",
	Short: "Encode a Contribute payload",
	RunE: func(cmd *cobra.Command, _ []string) error {
		amount, err := cmd.Flags().GetUint64("amount")
		if err != nil {
			return err
		}
		return printPayload(cmd, domain.ContributeArgs{Amount: amount})
	},
}

func init() {
	encodeCmd.PersistentFlags().BoolVar(&encodeHex, "hex", false, "print hex instead of base64")

	encodeInitializeCmd.Flags().Uint64("min", 0, "minimum amount sendable (not enforced)")
	encodeInitializeCmd.Flags().Uint64("max", 0, "maximum amount sendable (not enforced)")
	encodeInitializeCmd.Flags().Uint64("target", 0, "amount to raise in base units")
	encodeInitializeCmd.Flags().Uint8("days", 0, "campaign duration in days")
	_ = encodeInitializeCmd.MarkFlagRequired("target")
	_ = encodeInitializeCmd.MarkFlagRequired("days")

	encodeContributeCmd.Flags().Uint64("amount", 0, "amount to contribute in base units")
	_ = encodeContributeCmd.MarkFlagRequired("amount")

	encodeCmd.AddCommand(encodeInitializeCmd, encodeContributeCmd)
}

func printPayload(cmd *cobra.Command, m encoding.BinaryMarshaler) error {
	b, err := m.MarshalBinary()
	if err != nil {
		return err
	}
	if encodeHex {
		fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(b))
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), base64.StdEncoding.EncodeToString(b))
	}
	return nil
}
