// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/netalert/internal/adapter"
	"github.com/MKhiriev/netalert/internal/app"
	"github.com/MKhiriev/netalert/internal/form"
	"github.com/MKhiriev/netalert/internal/logger"
	"github.com/MKhiriev/netalert/models"
)

type clientConsoleService struct {
	adminAdapter adapter.AdminAdapter

	logger *logger.Logger
}

func NewClientConsoleService(adminAdapter adapter.AdminAdapter, logger *logger.Logger) ClientConsoleService {
	return &clientConsoleService{
		adminAdapter: adminAdapter,
		logger:       logger,
	}
}

func (s *clientConsoleService) Load(ctx context.Context, page *form.Page) error {
	md, err := s.adminAdapter.FetchMetadata(ctx)
	if err == nil {
		err = page.Populate(md)
	}
	if err != nil {
		err = mapAdapterError(err)
		s.logger.Err(err).Str("func", "clientConsoleService.Load").Msg("metadata load failed")
		page.Reset(models.Message{Level: models.MessageError, Text: failureText(app.MsgLoadFailed, err)})
		if errors.Is(err, ErrMetadataUnavailable) {
			return err
		}
		return fmt.Errorf("%w: %w", ErrMetadataUnavailable, err)
	}

	cfg, err := s.adminAdapter.FetchServerConfig(ctx)
	if err != nil {
		err = mapAdapterError(err)
		s.logger.Warn().Err(err).Str("func", "clientConsoleService.Load").Msg("settings prefill failed")
		page.SetConfig(models.ServerConfig{})
		page.SetMessage(models.MessageWarning, failureText(app.MsgConfigLoadFailed, err))
		return nil
	}

	page.SetConfig(cfg)
	page.Message = models.Message{}
	return nil
}

func (s *clientConsoleService) Save(ctx context.Context, page *form.Page) error {
	if page.Disabled {
		page.SetMessage(models.MessageError, app.MsgPageDisabled)
		return ErrPageDisabled
	}

	cfg, err := page.ServerConfig()
	if err != nil {
		page.SetMessage(models.MessageError, failureText(app.MsgSaveFailed, err))
		return fmt.Errorf("%w: %w", ErrSaveFailed, err)
	}

	stored, err := s.adminAdapter.PatchServerConfig(ctx, models.FullPatch(cfg))
	if err != nil {
		err = mapAdapterError(err)
		s.logger.Err(err).Str("func", "clientConsoleService.Save").Msg("saving settings failed")
		page.SetMessage(models.MessageError, failureText(app.MsgSaveFailed, err))
		return fmt.Errorf("%w: %w", ErrSaveFailed, err)
	}

	page.SetConfig(stored)
	page.SetMessage(models.MessageSuccess, app.MsgSaveSucceeded)
	return nil
}

func (s *clientConsoleService) UpdateAppearance(ctx context.Context, page *form.Page) error {
	err := mapAdapterError(s.adminAdapter.UpdateAppearance(ctx))
	switch {
	case err == nil:
		page.SetMessage(models.MessageSuccess, app.MsgSaveSucceeded)
	case errors.Is(err, ErrNotImplemented):
		page.SetMessage(models.MessageWarning, app.MsgAppearanceUnsupported)
	default:
		s.logger.Err(err).Str("func", "clientConsoleService.UpdateAppearance").Msg("appearance update failed")
		page.SetMessage(models.MessageError, failureText(app.MsgSaveFailed, err))
	}
	return err
}

func (s *clientConsoleService) UpsertOption(ctx context.Context, page *form.Page, upsert models.OptionUpsert) error {
	if page.Disabled {
		page.SetMessage(models.MessageError, app.MsgPageDisabled)
		return ErrPageDisabled
	}

	md, err := s.adminAdapter.UpsertMetadataOption(ctx, upsert)
	if err == nil {
		err = page.Populate(md)
	}
	if err != nil {
		err = mapAdapterError(err)
		s.logger.Err(err).Str("func", "clientConsoleService.UpsertOption").Str("group", upsert.Group).Msg("option upsert failed")
		page.SetMessage(models.MessageError, failureText(app.MsgOptionFailed, err))
		return err
	}

	page.SetMessage(models.MessageSuccess, app.MsgOptionSaved)
	return nil
}

func (s *clientConsoleService) SendTestAlert(ctx context.Context, page *form.Page) error {
	if err := s.adminAdapter.SendTestAlert(ctx); err != nil {
		err = mapAdapterError(err)
		s.logger.Err(err).Str("func", "clientConsoleService.SendTestAlert").Msg("test alert failed")
		page.SetMessage(models.MessageError, failureText(app.MsgTestAlertFailed, err))
		return err
	}

	page.SetMessage(models.MessageSuccess, app.MsgTestAlertSent)
	return nil
}

func failureText(prefix string, err error) string {
	return prefix + ": " + err.Error()
}
