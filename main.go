package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"jackpotiq/adapters/fetch"
	"jackpotiq/adapters/gcs"
	"jackpotiq/adapters/jsonfile"
	"jackpotiq/app"
	"jackpotiq/internal"
	"jackpotiq/internal/api"
	"jackpotiq/internal/config"
	"jackpotiq/ports"
)

func main() {
	// .env is optional; containers inject environment directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger := internal.DefaultLogger

	var objects ports.ObjectStore
	if cfg.Storage.SyncEnabled {
		store, err := gcs.NewObjectStore(context.Background(), cfg.Storage.Bucket, cfg.Storage.DataDir)
		if err != nil {
			logger.Warn("object store unavailable, running with local files only: %v", err)
		} else {
			defer store.Close()
			objects = store
		}
	}

	refresher := app.NewRefreshService(
		fetch.NewClient(cfg.Scraper),
		jsonfile.NewStore(cfg.Storage.DataDir),
		objects,
		app.NewAnalysisService(),
	)

	server := api.NewServer(refresher, cfg.Server.GinMode)
	logger.Info("listening on :%s (bucket %s, data dir %s)", cfg.Server.Port, cfg.Storage.Bucket, cfg.Storage.DataDir)
	if err := server.Run(cfg.Server.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
