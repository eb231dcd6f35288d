// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/netalert/models"
)

// ServerConfigRepository persists the server configuration record.
type ServerConfigRepository interface {
	// Get returns the stored record. Keys that were never saved are zero.
	Get(ctx context.Context) (models.ServerConfig, error)
	// Save stores every key of cfg in one transaction.
	Save(ctx context.Context, cfg models.ServerConfig) error
}

// MetadataStorage persists the metadata document.
type MetadataStorage interface {
	Load(ctx context.Context) (models.Metadata, error)
	Save(ctx context.Context, md models.Metadata) error
	// Path is the location of the document, watched for external edits.
	Path() string
}
