// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/netalert/internal/crypto"
	"github.com/MKhiriev/netalert/models"
)

// sealedServerConfigRepository keeps SMTP_PASSWORD encrypted at rest. Callers
// always see the plain value.
type sealedServerConfigRepository struct {
	inner  ServerConfigRepository
	sealer crypto.Sealer
}

func NewSealedServerConfigRepository(inner ServerConfigRepository, sealer crypto.Sealer) ServerConfigRepository {
	return &sealedServerConfigRepository{inner: inner, sealer: sealer}
}

func (r *sealedServerConfigRepository) Get(ctx context.Context) (models.ServerConfig, error) {
	cfg, err := r.inner.Get(ctx)
	if err != nil {
		return models.ServerConfig{}, err
	}

	cfg.SMTPPassword, err = r.sealer.Open(cfg.SMTPPassword)
	if err != nil {
		return models.ServerConfig{}, err
	}
	return cfg, nil
}

func (r *sealedServerConfigRepository) Save(ctx context.Context, cfg models.ServerConfig) error {
	sealed, err := r.sealer.Seal(cfg.SMTPPassword)
	if err != nil {
		return err
	}

	cfg.SMTPPassword = sealed
	return r.inner.Save(ctx, cfg)
}
