package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpadapter "fundraiser/internal/adapter/http"
	"fundraiser/internal/adapter/ledger"
	"fundraiser/internal/adapter/postgres"
	"fundraiser/internal/adapter/usecase"
	"fundraiser/internal/config"
	"fundraiser/internal/config/configs"
	"fundraiser/internal/core/port"
	"fundraiser/internal/db"
)

// main loads configuration, opens the account store (in memory or
// PostgreSQL), deploys the crowdfunding program on the ledger host and
// serves the HTTP API until a termination signal arrives.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}
	logger := cfg.Log.New(os.Stdout)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var store port.AccountStore
	switch cfg.Ledger.Storage {
	case configs.StoragePostgres:
		if cfg.Psql.RunMigrations {
			if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
				logger.Error("migration error", slog.Any("error", err))
				return
			}
			logger.Info("migrations applied successfully")
		}
		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			logger.Error("database connection error", slog.Any("error", err))
			return
		}
		defer pool.Close()
		store = postgres.NewAccountRepository(pool)
	default:
		store = ledger.NewMemoryStore()
	}

	programID, err := cfg.Ledger.ProgramKey()
	if err != nil {
		logger.Error("invalid program id", slog.Any("error", err))
		return
	}
	wallets, err := cfg.Ledger.SeedKeys()
	if err != nil {
		logger.Error("invalid seed wallets", slog.Any("error", err))
		return
	}
	rent := ledger.Rent{
		LamportsPerByteYear: cfg.Ledger.RentLamportsPerByteYear,
		ExemptionThreshold:  cfg.Ledger.RentExemptionThreshold,
	}
	program := usecase.NewProcessor(programID, logger.With(slog.String("component", "program")))
	host := ledger.NewHost(store, programID, program, ledger.SystemClock{}, rent, logger.With(slog.String("component", "ledger")))

	if len(wallets) > 0 {
		mint, err := db.Seed(ctx, host, db.SeedParams{
			Wallets:  wallets,
			Decimals: cfg.Ledger.SeedDecimals,
			Lamports: cfg.Ledger.SeedLamports,
			Tokens:   cfg.Ledger.SeedTokens,
		})
		if err != nil {
			logger.Error("seed error", slog.Any("error", err))
			return
		}
		logger.Info("demo mint seeded", slog.String("mint", mint.String()), slog.Int("wallets", len(wallets)))
	}

	var faucet port.Faucet
	if cfg.Ledger.DevFaucet {
		faucet = host
	}
	handler := httpadapter.NewHandler(host, faucet, logger, cfg.HTTP.MaxBodyBytes)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	go func() {
		logger.Info("server listening",
			slog.Int("port", int(cfg.HTTP.Port)),
			slog.String("program_id", programID.String()),
			slog.String("storage", cfg.Ledger.Storage),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			cancel()
		}
	}()

	<-ctx.Done()
	exitCode = 0

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		exitCode = 1
	} else {
		logger.Info("server gracefully stopped")
	}
}
