package main

import (
	"context"
	"fmt"

	"github.com/Reznov00/wallet-keeper/internal/adapter"
	"github.com/Reznov00/wallet-keeper/internal/config"
	"github.com/Reznov00/wallet-keeper/internal/crypto"
	"github.com/Reznov00/wallet-keeper/internal/handler"
	"github.com/Reznov00/wallet-keeper/internal/logger"
	"github.com/Reznov00/wallet-keeper/internal/metrics"
	"github.com/Reznov00/wallet-keeper/internal/server"
	"github.com/Reznov00/wallet-keeper/internal/service"
	"github.com/Reznov00/wallet-keeper/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("wallet-keeper", "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("wallet-keeper", cfg.LogLevel)
	log.Info().
		Str("address", cfg.Server.HTTPAddress).
		Int64("chain_id", cfg.Chain.ID).
		Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	mailSender, err := adapter.NewSMTPMailSender(cfg.Mail, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating mail sender")
	}

	signer, err := crypto.NewTransactionSigner(cfg.Chain)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating transaction signer")
	}

	registry := metrics.NewRegistry()

	services, err := service.NewServices(service.Dependencies{
		Storages:   storages,
		MailSender: mailSender,
		Hasher:     crypto.NewPasswordHasher(cfg.App.PasswordHashCost),
		Wallets:    crypto.NewWalletProvisioner(),
		Signer:     signer,
		Metrics:    registry,
	}, *cfg, buildVersion, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, registry, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
