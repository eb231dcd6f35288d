// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/netalert/internal/config"
	"github.com/MKhiriev/netalert/internal/logger"
	"github.com/MKhiriev/netalert/models"
)

type appInfoService struct {
	appVersion string
	startedAt  time.Time
	now        func() time.Time

	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: cfg.Version,
		startedAt:  time.Now(),
		now:        time.Now,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

func (s *appInfoService) GetAppInfo(ctx context.Context) models.AppInfo {
	return models.AppInfo{
		Version:   s.appVersion,
		StartedAt: s.startedAt.UTC(),
		Uptime:    s.now().Sub(s.startedAt).Truncate(time.Second).String(),
	}
}
