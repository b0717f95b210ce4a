package main

import (
	"fmt"

	"github.com/aixmultimodal/msgboard/internal/adapter"
	"github.com/aixmultimodal/msgboard/internal/client"
	"github.com/aixmultimodal/msgboard/internal/config"
	"github.com/aixmultimodal/msgboard/internal/logger"
	"github.com/aixmultimodal/msgboard/internal/service"
	"github.com/aixmultimodal/msgboard/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("msgboard-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	backend := adapter.NewHTTPBackendAdapter(adapter.HTTPClientConfig{
		BaseURL: cfg.HTTP.BaseURL,
		Timeout: cfg.HTTP.RequestTimeout,
	})

	syncClient := service.NewSyncClient(backend, log)

	ui, err := tui.New(syncClient, buildVersion, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(syncClient, ui, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
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
