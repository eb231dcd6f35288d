// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"

	"github.com/MKhiriev/netalert/internal/logger"
	"github.com/MKhiriev/netalert/internal/metrics"
	"github.com/MKhiriev/netalert/internal/store"
	"github.com/MKhiriev/netalert/models"
)

type serverConfigService struct {
	repository store.ServerConfigRepository
	recorder   metrics.Recorder

	// mu serializes read-modify-write cycles of Patch.
	mu sync.Mutex

	logger *logger.Logger
}

func NewServerConfigService(repository store.ServerConfigRepository, recorder metrics.Recorder, logger *logger.Logger) ServerConfigService {
	if recorder == nil {
		recorder = metrics.NoopRecorder{}
	}
	return &serverConfigService{
		repository: repository,
		recorder:   recorder,
		logger:     logger,
	}
}

func (s *serverConfigService) Get(ctx context.Context) (models.ServerConfig, error) {
	return s.repository.Get(ctx)
}

func (s *serverConfigService) Patch(ctx context.Context, patch models.ServerConfigPatch) (models.ServerConfig, error) {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.repository.Get(ctx)
	if err != nil {
		log.Err(err).Str("func", "serverConfigService.Patch").Msg("failed to read current server config")
		s.recorder.IncServerConfigSave(metrics.ResultFailed)
		return models.ServerConfig{}, err
	}

	updated := patch.Apply(current)
	err = s.repository.Save(ctx, updated)
	s.recorder.IncServerConfigSave(metrics.ResultOf(err))
	if err != nil {
		log.Err(err).Str("func", "serverConfigService.Patch").Msg("failed to save server config")
		return models.ServerConfig{}, err
	}

	log.Info().Msg("server config updated")
	return updated, nil
}
