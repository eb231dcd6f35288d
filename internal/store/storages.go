// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/netalert/internal/config"
	"github.com/MKhiriev/netalert/internal/crypto"
	"github.com/MKhiriev/netalert/internal/logger"
)

// Storages aggregates every persistence backend of the admin server.
type Storages struct {
	ServerConfigRepository ServerConfigRepository
	MetadataStorage        MetadataStorage

	db *DB
}

// NewStorages connects the configuration database, applies migrations and
// sets up the metadata file storage. A configured secret key enables
// encryption of the stored SMTP password.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("error migrating database: %w", err)
	}

	var configRepo ServerConfigRepository = NewServerConfigRepository(db)
	if cfg.SecretKey != "" {
		sealer, err := crypto.NewSealer(cfg.SecretKey)
		if err != nil {
			db.Close()
			return nil, err
		}
		configRepo = NewSealedServerConfigRepository(configRepo, sealer)
		log.Info().Msg("SMTP password is encrypted at rest")
	}

	return &Storages{
		ServerConfigRepository: configRepo,
		MetadataStorage:        NewMetadataFileStorage(cfg.Files.MetadataPath),
		db:                     db,
	}, nil
}

// Close releases the database connection.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
