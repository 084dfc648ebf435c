// Command fundctl derives the crowdfunding program's addresses and encodes
// instruction payloads for clients building transactions by hand.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var programIDFlag string

var rootCmd = &cobra.Command{
	Use:           "fundctl",
	Short:         "Crowdfunding program client utilities",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&programIDFlag, "program-id", "4ibrEMW5F6hKnkW4jVedswYv6H6VtwPN6ar6dvXDN1nT", "base58 identity of the deployed program")
	rootCmd.AddCommand(deriveCmd, encodeCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
