package main

import (
	"fmt"

	"github.com/vaultward/vaultward/internal/adapter"
	"github.com/vaultward/vaultward/internal/client"
	"github.com/vaultward/vaultward/internal/config"
	"github.com/vaultward/vaultward/internal/logger"
	"github.com/vaultward/vaultward/internal/service"
	"github.com/vaultward/vaultward/internal/store"
	"github.com/vaultward/vaultward/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("vaultward-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	localStorage, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer func() {
		if err := localStorage.Close(); err != nil {
			log.Warn().Err(err).Msg("close local storage")
		}
	}()

	services := service.NewClientServices(localStorage, serverAdapter)
	health := workers.NewHealthWorker(serverAdapter, log)

	app := client.NewApp(services, serverAdapter, health, cfg, log)

	if err = app.Run(config.CommandArgs()); err != nil {
		log.Fatal().Err(err).Msg("client run error")
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
