package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-inventory-hub/internal/adapter"
	"github.com/MKhiriev/go-inventory-hub/internal/collab"
	"github.com/MKhiriev/go-inventory-hub/internal/config"
	"github.com/MKhiriev/go-inventory-hub/internal/handler"
	"github.com/MKhiriev/go-inventory-hub/internal/logger"
	"github.com/MKhiriev/go-inventory-hub/internal/server"
	"github.com/MKhiriev/go-inventory-hub/internal/service"
	"github.com/MKhiriev/go-inventory-hub/internal/store"
	"github.com/MKhiriev/go-inventory-hub/internal/workers"
	"github.com/MKhiriev/go-inventory-hub/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("inventory-hub-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := log.WithContext(context.Background())

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	bg := workers.NewWorkers(log)

	var relay collab.Relay
	if cfg.Collab.RedisAddress != "" {
		redisClient, err := collab.NewRedisClient(ctx, cfg.Collab.RedisAddress)
		if err != nil {
			log.Fatal().Err(err).Msg("error connecting to redis")
		}
		defer redisClient.Close()
		relay = collab.NewRedisRelay(redisClient, cfg.Collab.RedisChannel, log)
	}
	hub := collab.NewHub(cfg.Collab.SendBuffer, relay, log)
	defer hub.Close()
	bg.Add("collab-relay", workers.Func(hub.Run))

	var directory adapter.IdentityDirectory
	if cfg.Identity.DirectoryURL != "" {
		directory, err = adapter.NewIdentityDirectory(cfg.Identity, log)
		if err != nil {
			log.Fatal().Err(err).Msg("error creating identity directory client")
		}
		directory = adapter.NewCachedIdentityDirectory(directory, cfg.Identity.CacheTTL, log)
	}

	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	services, err := service.NewServices(storages, hub, directory, *cfg, build, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, handler.Dependencies{
		Hub:    hub,
		Blobs:  storages.BlobStorage,
		Pinger: storages,
	}, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, bg, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Error().Err(err).Msg("run server")
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
