// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/netalert/models"
)

// ServerConfigService reads and updates the server configuration.
type ServerConfigService interface {
	Get(ctx context.Context) (models.ServerConfig, error)
	// Patch applies the non-nil fields of patch to the stored record and
	// returns the resulting record.
	Patch(ctx context.Context, patch models.ServerConfigPatch) (models.ServerConfig, error)
}

// MetadataService serves the metadata document kept in memory.
type MetadataService interface {
	// Get returns a copy of the current document.
	Get(ctx context.Context) models.Metadata
	// Reload re-reads the document from storage. On failure the previous
	// document is kept.
	Reload(ctx context.Context) error
	// UpsertOption inserts upsert.Record into its group or replaces the item
	// with the same value field, persists the document and returns it.
	UpsertOption(ctx context.Context, upsert models.OptionUpsert) (models.Metadata, error)
}

// AppInfoService reports build information.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetAppInfo(ctx context.Context) models.AppInfo
}

// AlertService mails alerts with the stored SMTP settings.
type AlertService interface {
	// SendTestAlert mails a test message to ALERT_TO.
	SendTestAlert(ctx context.Context) error
	// NotifyDevice mails an alert for event when the matching ALERT_*
	// setting enables it. A suppressed event is not an error; the result
	// carries the reason instead.
	NotifyDevice(ctx context.Context, event models.DeviceEvent) (models.AlertResult, error)
}

// ServerConfigServiceWrapper wraps an existing ServerConfigService to add
// behavior such as validation.
type ServerConfigServiceWrapper interface {
	Wrap(ServerConfigService) ServerConfigService
}

// MetadataServiceWrapper wraps an existing MetadataService to add behavior
// such as validation.
type MetadataServiceWrapper interface {
	Wrap(MetadataService) MetadataService
}

// AlertServiceWrapper wraps an existing AlertService to add behavior such as
// validation.
type AlertServiceWrapper interface {
	Wrap(AlertService) AlertService
}
