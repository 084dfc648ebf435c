package configs

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
)

// Storage backends for the account store.
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

// Ledger configures the ledger host and the deployed program.
type Ledger struct {
	// ProgramID is the base58 identity the crowdfunding program is
	// deployed at. Derived addresses depend on it.
	ProgramID string `env:"PROGRAM_ID" envDefault:"4ibrEMW5F6hKnkW4jVedswYv6H6VtwPN6ar6dvXDN1nT"`
	// Storage selects the account store: "memory" or "postgres".
	Storage string `env:"STORAGE" envDefault:"memory"`

	RentLamportsPerByteYear uint64  `env:"RENT_LAMPORTS_PER_BYTE_YEAR" envDefault:"3480"`
	RentExemptionThreshold  float64 `env:"RENT_EXEMPTION_THRESHOLD" envDefault:"2"`

	// DevFaucet mounts the airdrop and mint endpoints.
	DevFaucet bool `env:"DEV_FAUCET" envDefault:"false"`

	// SeedWallets, when set, receive native balance and demo tokens at
	// startup.
	SeedWallets  []string `env:"SEED_WALLETS" envSeparator:","`
	SeedLamports uint64   `env:"SEED_LAMPORTS" envDefault:"10000000000"`
	SeedTokens   uint64   `env:"SEED_TOKENS" envDefault:"1000000000"`
	SeedDecimals uint8    `env:"SEED_DECIMALS" envDefault:"6"`
}

// ProgramKey parses ProgramID.
func (c Ledger) ProgramKey() (solana.PublicKey, error) {
	key, err := solana.PublicKeyFromBase58(c.ProgramID)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("program id %q: %w", c.ProgramID, err)
	}
	return key, nil
}

// SeedKeys parses SeedWallets.
func (c Ledger) SeedKeys() ([]solana.PublicKey, error) {
	keys := make([]solana.PublicKey, 0, len(c.SeedWallets))
	for _, w := range c.SeedWallets {
		key, err := solana.PublicKeyFromBase58(w)
		if err != nil {
			return nil, fmt.Errorf("seed wallet %q: %w", w, err)
		}
		keys = append(keys, key)
	}
	return keys, nil
}
