// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/netalert/internal/config"
	"github.com/MKhiriev/netalert/internal/handler"
	"github.com/MKhiriev/netalert/internal/logger"
	"github.com/MKhiriev/netalert/internal/metrics"
	"github.com/MKhiriev/netalert/internal/server"
	"github.com/MKhiriev/netalert/internal/service"
	"github.com/MKhiriev/netalert/internal/store"
	"github.com/MKhiriev/netalert/internal/workers"
	"github.com/MKhiriev/netalert/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("netalert-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Str("address", cfg.Server.HTTPAddress).Str("driver", cfg.Storage.DB.Driver).Msg("received configs")

	ctx := context.Background()
	recorder := metrics.NewPrometheusRecorder(nil)

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services, err := service.NewServices(ctx, storages, cfg, recorder, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, recorder, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	watcher, err := workers.NewMetadataWatcher(storages.MetadataStorage.Path(), cfg.Workers.MetadataReloadDebounce, services.MetadataService, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating metadata watcher")
	}

	srv, err := server.NewServer(handlers, workers.NewWorkers(log, watcher), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	fmt.Printf("Build version: %s\n", info.Version)
	fmt.Printf("Build date: %s\n", info.Date)
	fmt.Printf("Build commit: %s\n", info.Commit)
}
