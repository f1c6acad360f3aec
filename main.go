// main.go
package main

import (
	"context"
	"log"

	"go.uber.org/zap"

	"marketplace-storefront/cmd"
	"marketplace-storefront/internal/data/remote"
	"marketplace-storefront/internal/wire"
	"marketplace-storefront/pkg/httpclient"
	"marketplace-storefront/pkg/utils"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("api", config.API.BaseURL),
		zap.Bool("debug", config.App.Debug),
	)

	// HTTP client ke backend marketplace, cookie jar untuk session
	client, err := httpclient.New(config.API, logger)
	if err != nil {
		logger.Fatal("Failed to create API client", zap.Error(err))
	}

	// Initialize all remote API modules
	api := remote.NewAPI(client, logger)

	// Wire all dependencies
	app := wire.Wiring(api, config, logger)

	if err := cmd.Run(context.Background(), app, logger); err != nil {
		logger.Fatal("Application error", zap.Error(err))
	}
}
