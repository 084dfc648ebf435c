package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"fundraiser/internal/config/configs"
)

// Config aggregates all configuration sections for the service. Fields are
// populated from environment variables using the caarlos0/env library;
// nested structs are parsed with their envPrefix. Use Load to construct a
// Config.
type Config struct {
	// Env names the deployment environment (e.g. prod, dev).
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP is populated from HTTP_* variables.
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log is populated from LOG_* variables.
	Log configs.Logger `envPrefix:"LOG_"`

	// Psql is populated from PSQL_* variables.
	Psql configs.Postgres `envPrefix:"PSQL_"`

	// Ledger is populated from LEDGER_* variables.
	Ledger configs.Ledger `envPrefix:"LEDGER_"`
}

// Load reads configuration from environment variables into a Config and
// validates it.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// Validate rejects combinations env parsing cannot catch.
func (c Config) Validate() error {
	switch c.Ledger.Storage {
	case configs.StorageMemory, configs.StoragePostgres:
	default:
		return fmt.Errorf("unknown ledger storage %q", c.Ledger.Storage)
	}
	if _, err := c.Ledger.ProgramKey(); err != nil {
		return err
	}
	if _, err := c.Ledger.SeedKeys(); err != nil {
		return err
	}
	if c.Ledger.RentExemptionThreshold <= 0 {
		return fmt.Errorf("rent exemption threshold must be positive, got %v", c.Ledger.RentExemptionThreshold)
	}
	return nil
}
