package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-api-hub/internal/cache"
	"github.com/MKhiriev/go-api-hub/internal/config"
	"github.com/MKhiriev/go-api-hub/internal/events"
	"github.com/MKhiriev/go-api-hub/internal/handler"
	"github.com/MKhiriev/go-api-hub/internal/logger"
	"github.com/MKhiriev/go-api-hub/internal/server"
	"github.com/MKhiriev/go-api-hub/internal/service"
	"github.com/MKhiriev/go-api-hub/internal/store"
	"github.com/MKhiriev/go-api-hub/internal/workers"
	"github.com/MKhiriev/go-api-hub/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("go-api-hub", "info").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("go-api-hub", cfg.Log.Level)
	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	db, err := store.Connect(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	storages := store.NewStorages(db, cfg.App, log)

	publisher, err := events.NewPublisher(cfg.Events, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating events publisher")
	}
	defer publisher.Close()

	responseCache := cache.NewCache(ctx, cfg.Storage.Cache, log)
	defer responseCache.Close()

	bg := workers.NewWorkers()

	// a nil recorder makes validation stamp last-used synchronously
	var recorder service.LastUsedRecorder
	if cfg.Workers.LastUsedBuffer > 0 {
		lastUsed := workers.NewLastUsedRecorder(storages.TokenRepository, cfg.Workers.LastUsedBuffer, log)
		bg.Add(lastUsed)
		recorder = lastUsed
	}

	services := service.NewServices(storages, *cfg, publisher, recorder, buildInfo, log)

	handlers, err := handler.NewHandlers(services, responseCache, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, bg, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Error().Err(err).Msg("server stopped")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
