// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport used by the admin console to talk
// to the netalert server.
//
// [AdminAdapter] decouples the console service from HTTP. Error values
// defined in errors.go are mapped from HTTP status codes by mapHTTPError so
// that callers can use [errors.Is] (e.g. [ErrBadRequest] for 400,
// [ErrNotImplemented] for 501).
package adapter

import (
	"context"

	"github.com/MKhiriev/netalert/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/admin_adapter_mock.go -package=mock

// AdminAdapter defines the calls the console makes to the admin server.
type AdminAdapter interface {
	// FetchMetadata downloads and parses the metadata document. A document
	// that is not valid metadata yields an error wrapping
	// metadata.ErrMalformedMetadata.
	FetchMetadata(ctx context.Context) (models.Metadata, error)

	// FetchServerConfig returns the stored server configuration.
	FetchServerConfig(ctx context.Context) (models.ServerConfig, error)

	// PatchServerConfig sends patch to the configuration endpoint and returns
	// the record stored by the server.
	PatchServerConfig(ctx context.Context, patch models.ServerConfigPatch) (models.ServerConfig, error)

	// UpsertMetadataOption inserts or replaces an option of a metadata group
	// and returns the updated document.
	UpsertMetadataOption(ctx context.Context, upsert models.OptionUpsert) (models.Metadata, error)

	// UpdateAppearance asks the server to store appearance settings.
	UpdateAppearance(ctx context.Context) error

	// SendTestAlert asks the server to mail a test alert with the stored
	// SMTP settings.
	SendTestAlert(ctx context.Context) error
}
