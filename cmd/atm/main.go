package main

import (
	"fmt"
	"os"

	"atm-simulator/config"
	"atm-simulator/internal/adapter/audit"
	"atm-simulator/internal/adapter/terminal"
	"atm-simulator/internal/core/ports"
	"atm-simulator/internal/service"
	"atm-simulator/pkg/logger"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("account", cfg.Account.Number).
		Str("audit_path", cfg.Audit.Path).
		Msg("Starting ATM simulator")

	// Audit trail is best-effort: if the file cannot be opened, banking
	// continues without it.
	var sink ports.AuditSink
	fileSink, err := audit.NewFileSink(cfg.Audit.Path, log)
	if err != nil {
		log.Warn().Err(err).Str("path", cfg.Audit.Path).Msg("audit trail unavailable, continuing without it")
		sink = audit.NopSink{}
	} else {
		defer fileSink.Close()
		sink = fileSink
	}

	// A malformed seed must prevent the engine from existing at all.
	engine, err := service.NewAccountService(service.Params{
		Balance:       mustAmount(log, "account.balance", cfg.Account.Balance),
		PIN:           cfg.Account.PIN,
		AccountNumber: cfg.Account.Number,
		HolderName:    cfg.Account.Holder,
		Limits: service.Limits{
			MaxWithdrawal:     mustAmount(log, "limits.max_withdrawal", cfg.Limits.MaxWithdrawal),
			MaxDeposit:        mustAmount(log, "limits.max_deposit", cfg.Limits.MaxDeposit),
			MaxTransfer:       mustAmount(log, "limits.max_transfer", cfg.Limits.MaxTransfer),
			MaxFailedAttempts: cfg.Limits.MaxFailedAttempts,
		},
	}, sink, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize account engine")
	}

	terminal.NewSession(engine, os.Stdin, os.Stdout, log).Run()
}

func mustAmount(log zerolog.Logger, key, raw string) decimal.Decimal {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		log.Fatal().Err(err).Str("key", key).Msg("invalid amount in configuration")
	}
	return d
}
