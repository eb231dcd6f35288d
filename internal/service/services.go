// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/netalert/internal/alert"
	"github.com/MKhiriev/netalert/internal/config"
	"github.com/MKhiriev/netalert/internal/logger"
	"github.com/MKhiriev/netalert/internal/metrics"
	"github.com/MKhiriev/netalert/internal/store"
)

type Services struct {
	ServerConfigService ServerConfigService
	MetadataService     MetadataService
	AppInfoService      AppInfoService
	AlertService        AlertService
}

func NewServices(ctx context.Context, storages *store.Storages, cfg *config.StructuredConfig, recorder metrics.Recorder, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	metadataSvc, err := NewMetadataService(ctx, storages.MetadataStorage, recorder, logger)
	if err != nil {
		return nil, err
	}

	configSvc := NewServerConfigValidationService().Wrap(
		NewServerConfigService(storages.ServerConfigRepository, recorder, logger),
	)
	mailer := alert.NewSMTPMailer(cfg.Server.RequestTimeout, logger)

	return &Services{
		ServerConfigService: configSvc,
		MetadataService:     NewMetadataValidationService().Wrap(metadataSvc),
		AppInfoService:      appInfo,
		AlertService: NewAlertValidationService().Wrap(
			NewAlertService(configSvc, mailer, recorder, logger),
		),
	}, nil
}
