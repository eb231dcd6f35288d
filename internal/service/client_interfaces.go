// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/netalert/internal/form"
	"github.com/MKhiriev/netalert/models"
)

// ClientConsoleService drives one admin console page. Every method records
// its user-visible outcome in page.Message, on success and on failure alike.
type ClientConsoleService interface {
	// Load fetches the metadata document and populates the page dropdowns and
	// checkboxes, then prefills the settings from the server.
	// When the metadata cannot be fetched or is malformed the page is cleared,
	// disabled and an error wrapping [ErrMetadataUnavailable] is returned.
	// A failed prefill leaves the page enabled with empty settings and a
	// warning message.
	Load(ctx context.Context, page *form.Page) error

	// Save sends every setting of the page to the server. Returns
	// [ErrPageDisabled] for a disabled page and an error wrapping
	// [ErrSaveFailed] when the server did not accept the settings.
	Save(ctx context.Context, page *form.Page) error

	// UpdateAppearance asks the server to store appearance settings.
	UpdateAppearance(ctx context.Context, page *form.Page) error

	// UpsertOption adds or replaces an option of a metadata group and
	// repopulates the page from the updated document.
	UpsertOption(ctx context.Context, page *form.Page, upsert models.OptionUpsert) error

	// SendTestAlert asks the server to mail a test alert with the settings it
	// has stored, not the unsaved values of the page.
	SendTestAlert(ctx context.Context, page *form.Page) error
}
