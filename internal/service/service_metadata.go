// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/netalert/internal/logger"
	"github.com/MKhiriev/netalert/internal/metadata"
	"github.com/MKhiriev/netalert/internal/metrics"
	"github.com/MKhiriev/netalert/internal/store"
	"github.com/MKhiriev/netalert/models"
)

type metadataService struct {
	storage  store.MetadataStorage
	recorder metrics.Recorder

	mu      sync.RWMutex
	current models.Metadata

	logger *logger.Logger
}

// NewMetadataService loads the document once and keeps it in memory.
func NewMetadataService(ctx context.Context, storage store.MetadataStorage, recorder metrics.Recorder, logger *logger.Logger) (MetadataService, error) {
	if recorder == nil {
		recorder = metrics.NoopRecorder{}
	}

	s := &metadataService{
		storage:  storage,
		recorder: recorder,
		logger:   logger,
	}
	if err := s.Reload(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *metadataService) Get(ctx context.Context) models.Metadata {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Clone()
}

func (s *metadataService) Reload(ctx context.Context) error {
	log := logger.FromContext(ctx)

	md, err := s.storage.Load(ctx)
	s.recorder.IncMetadataReload(metrics.ResultOf(err))
	if err != nil {
		log.Err(err).Str("func", "metadataService.Reload").Str("path", s.storage.Path()).Msg("keeping previous metadata")
		return fmt.Errorf("%w: %w", ErrMetadataUnavailable, err)
	}

	s.mu.Lock()
	s.current = md
	s.mu.Unlock()

	s.recordOptions(md)
	log.Debug().Int("groups", len(md.Groups)).Msg("metadata loaded")
	return nil
}

func (s *metadataService) UpsertOption(ctx context.Context, upsert models.OptionUpsert) (models.Metadata, error) {
	log := logger.FromContext(ctx)

	_, valueField, ok := models.GroupFields(upsert.Group)
	if !ok {
		return models.Metadata{}, fmt.Errorf("%w: %q", ErrUnknownMetadataGroup, upsert.Group)
	}
	value, err := metadata.FieldString(upsert.Record, valueField)
	if err != nil {
		return models.Metadata{}, fmt.Errorf("%w: %w", ErrInvalidOption, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.current.Clone()
	items := next.Group(upsert.Group)

	replaced := false
	for i, item := range items {
		existing, err := metadata.FieldString(item, valueField)
		if err == nil && existing == value {
			items[i] = upsert.Record
			replaced = true
			break
		}
	}
	if !replaced {
		items = append(items, upsert.Record)
	}
	next.SetGroup(upsert.Group, items)

	if err = s.storage.Save(ctx, next); err != nil {
		log.Err(err).Str("func", "metadataService.UpsertOption").Str("group", upsert.Group).Msg("failed to persist metadata")
		return models.Metadata{}, err
	}

	s.current = next
	s.recorder.SetMetadataOptions(upsert.Group, len(items))
	log.Info().Str("group", upsert.Group).Str("value", value).Bool("replaced", replaced).Msg("metadata option stored")

	return next.Clone(), nil
}

func (s *metadataService) recordOptions(md models.Metadata) {
	for _, g := range md.Groups {
		s.recorder.SetMetadataOptions(g.Name, len(g.Items))
	}
}
