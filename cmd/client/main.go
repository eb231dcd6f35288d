// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"

	"github.com/MKhiriev/netalert/internal/adapter"
	"github.com/MKhiriev/netalert/internal/client"
	"github.com/MKhiriev/netalert/internal/config"
	"github.com/MKhiriev/netalert/internal/logger"
	"github.com/MKhiriev/netalert/internal/service"
	"github.com/MKhiriev/netalert/internal/tui"
	"github.com/MKhiriev/netalert/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(build)

	log := logger.NewClientLogger("netalert-console")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if buildVersion == "" {
		build.Version = cfg.Version
	}

	adminAdapter, err := adapter.NewHTTPAdminAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create admin adapter")
	}

	services := service.NewClientServices(adminAdapter, log)

	ui, err := tui.New(services, build, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	var app client.Client
	app, err = client.NewApp(ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.Version)
	fmt.Printf("Build date: %s\n", info.Date)
	fmt.Printf("Build commit: %s\n", info.Commit)
}
