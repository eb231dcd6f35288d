// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/netalert/internal/adapter"
	"github.com/MKhiriev/netalert/internal/app"
	"github.com/MKhiriev/netalert/internal/form"
	"github.com/MKhiriev/netalert/internal/logger"
	"github.com/MKhiriev/netalert/internal/metadata"
	"github.com/MKhiriev/netalert/internal/mock"
	"github.com/MKhiriev/netalert/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestConsoleSvc(t *testing.T, ctrl *gomock.Controller) (ClientConsoleService, *mock.MockAdminAdapter) {
	t.Helper()
	mockAdapter := mock.NewMockAdminAdapter(ctrl)
	return NewClientServices(mockAdapter, logger.Nop()).ConsoleService, mockAdapter
}

func loadedPage(t *testing.T) *form.Page {
	t.Helper()
	page := form.NewPage()
	require.NoError(t, page.Populate(sampleMetadata()))
	return page
}

// ── Load ─────────────────────────────────────────────────────────────────────

func TestClientConsoleService_Load_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestConsoleSvc(t, ctrl)
	ctx := context.Background()
	page := form.NewPage()
	stored := models.ServerConfig{AlertNewDevice: true, SMTPServer: "smtp.lan"}

	mockAdapter.EXPECT().FetchMetadata(ctx).Return(sampleMetadata(), nil)
	mockAdapter.EXPECT().FetchServerConfig(ctx).Return(stored, nil)

	err := svc.Load(ctx, page)

	require.NoError(t, err)
	assert.False(t, page.Disabled)
	owner, ok := page.Dropdown(form.ControlOwner)
	require.True(t, ok)
	assert.Equal(t, []models.Option{{Label: "Alice", Value: "1"}, {Label: "Bob", Value: "2"}}, owner.Options)
	assert.Equal(t, "true", page.Values[models.KeyAlertNewDevice])
	assert.Equal(t, "smtp.lan", page.Values[models.KeySMTPServer])
	assert.Equal(t, models.MessageNone, page.Message.Level)
}

func TestClientConsoleService_Load_MetadataFailures(t *testing.T) {
	tests := []struct {
		name  string
		md    models.Metadata
		err   error
		check func(t *testing.T, err error)
	}{
		{
			name: "network",
			err:  errors.New("fetch metadata request: connection refused"),
		},
		{
			name: "non-2xx",
			err:  fmt.Errorf("%w: gone", adapter.ErrNotFound),
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrEndpointNotFound)
			},
		},
		{
			name: "malformed document",
			err:  fmt.Errorf("fetch metadata: %w", metadata.ErrMalformedMetadata),
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, metadata.ErrMalformedMetadata)
			},
		},
		{
			name: "item without value field",
			md: models.Metadata{Groups: []models.OptionGroup{
				{Name: models.GroupOwner, Items: []models.OptionRecord{{"owner": "A"}}},
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, mockAdapter := newTestConsoleSvc(t, ctrl)
			ctx := context.Background()
			page := loadedPage(t)

			mockAdapter.EXPECT().FetchMetadata(ctx).Return(tt.md, tt.err)

			err := svc.Load(ctx, page)

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMetadataUnavailable)
			if tt.check != nil {
				tt.check(t, err)
			}
			assert.True(t, page.Disabled)
			for _, d := range page.Dropdowns {
				assert.Empty(t, d.Options, d.ID)
			}
			assert.True(t, page.Message.IsError())
			assert.Contains(t, page.Message.Text, app.MsgLoadFailed)
		})
	}
}

func TestClientConsoleService_Load_PrefillFailureKeepsPageEnabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestConsoleSvc(t, ctrl)
	ctx := context.Background()
	page := form.NewPage()

	mockAdapter.EXPECT().FetchMetadata(ctx).Return(sampleMetadata(), nil)
	mockAdapter.EXPECT().FetchServerConfig(ctx).Return(models.ServerConfig{}, fmt.Errorf("%w: boom", adapter.ErrInternalServerError))

	err := svc.Load(ctx, page)

	require.NoError(t, err)
	assert.False(t, page.Disabled)
	assert.Equal(t, models.MessageWarning, page.Message.Level)
	assert.Contains(t, page.Message.Text, app.MsgConfigLoadFailed)
	assert.Empty(t, page.Values[models.KeySMTPServer])
}

// ── Save ─────────────────────────────────────────────────────────────────────

func TestClientConsoleService_Save_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestConsoleSvc(t, ctrl)
	ctx := context.Background()
	page := loadedPage(t)
	page.Values = form.Values{models.KeyAlertDownDevice: "on", models.KeySMTPPort: "587"}

	want := models.ServerConfig{AlertDownDevice: true, SMTPPort: "587"}
	mockAdapter.EXPECT().
		PatchServerConfig(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, patch models.ServerConfigPatch) (models.ServerConfig, error) {
			// every key is sent, unchecked toggles as false
			require.NotNil(t, patch.AlertNewDevice)
			assert.False(t, *patch.AlertNewDevice)
			require.NotNil(t, patch.AlertTo)
			assert.Equal(t, want, patch.Apply(models.ServerConfig{SMTPServer: "stale"}))
			return want, nil
		})

	err := svc.Save(ctx, page)

	require.NoError(t, err)
	assert.Equal(t, models.Message{Level: models.MessageSuccess, Text: app.MsgSaveSucceeded}, page.Message)
	assert.Equal(t, "true", page.Values[models.KeyAlertDownDevice])
}

func TestClientConsoleService_Save_Failures(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{name: "network", err: errors.New("patch server config request: timeout")},
		{name: "validation", err: fmt.Errorf("%w: %s", adapter.ErrBadRequest, "invalid server configuration: SMTP_PORT must be an integer"), wantErr: ErrInvalidServerConfig},
		{name: "server error", err: fmt.Errorf("%w: %s", adapter.ErrInternalServerError, "internal server error"), wantErr: adapter.ErrInternalServerError},
		{name: "unexpected status", err: fmt.Errorf("%w: http 302: Found", adapter.ErrUnexpectedStatus), wantErr: adapter.ErrUnexpectedStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, mockAdapter := newTestConsoleSvc(t, ctrl)
			ctx := context.Background()
			page := loadedPage(t)

			mockAdapter.EXPECT().PatchServerConfig(ctx, gomock.Any()).Return(models.ServerConfig{}, tt.err)

			err := svc.Save(ctx, page)

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrSaveFailed)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			assert.Equal(t, models.MessageError, page.Message.Level)
			assert.NotEqual(t, app.MsgSaveSucceeded, page.Message.Text)
			assert.Contains(t, page.Message.Text, app.MsgSaveFailed)
		})
	}
}

func TestClientConsoleService_Save_DisabledPage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestConsoleSvc(t, ctrl)

	err := svc.Save(context.Background(), form.NewPage())

	assert.ErrorIs(t, err, ErrPageDisabled)
}

func TestClientConsoleService_Save_InvalidCheckboxValue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestConsoleSvc(t, ctrl)
	page := loadedPage(t)
	page.Values = form.Values{models.KeyAlertNewDevice: "maybe"}

	err := svc.Save(context.Background(), page)

	assert.ErrorIs(t, err, ErrSaveFailed)
	assert.ErrorIs(t, err, form.ErrInvalidFieldValue)
	assert.True(t, page.Message.IsError())
}

// ── UpdateAppearance ─────────────────────────────────────────────────────────

func TestClientConsoleService_UpdateAppearance_NotImplemented(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestConsoleSvc(t, ctrl)
	ctx := context.Background()
	page := loadedPage(t)

	mockAdapter.EXPECT().UpdateAppearance(ctx).Return(fmt.Errorf("%w: not implemented", adapter.ErrNotImplemented))

	err := svc.UpdateAppearance(ctx, page)

	assert.ErrorIs(t, err, ErrNotImplemented)
	assert.Equal(t, models.Message{Level: models.MessageWarning, Text: app.MsgAppearanceUnsupported}, page.Message)
}

// ── UpsertOption ─────────────────────────────────────────────────────────────

func TestClientConsoleService_UpsertOption(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestConsoleSvc(t, ctrl)
	ctx := context.Background()
	page := loadedPage(t)

	upsert := models.OptionUpsert{Group: models.GroupOwner, Record: models.OptionRecord{"owner": "Carol", "owner_value": "3"}}
	updated := sampleMetadata()
	updated.SetGroup(models.GroupOwner, append(updated.Group(models.GroupOwner), upsert.Record))

	mockAdapter.EXPECT().UpsertMetadataOption(ctx, upsert).Return(updated, nil)

	err := svc.UpsertOption(ctx, page, upsert)

	require.NoError(t, err)
	owner, _ := page.Dropdown(form.ControlOwner)
	assert.Len(t, owner.Options, 3)
	assert.Equal(t, app.MsgOptionSaved, page.Message.Text)
}

func TestClientConsoleService_UpsertOption_Rejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestConsoleSvc(t, ctrl)
	ctx := context.Background()
	page := loadedPage(t)
	upsert := models.OptionUpsert{Group: "vendor", Record: models.OptionRecord{}}

	mockAdapter.EXPECT().UpsertMetadataOption(ctx, upsert).Return(models.Metadata{}, fmt.Errorf("%w: unknown metadata group: \"vendor\"", adapter.ErrBadRequest))

	err := svc.UpsertOption(ctx, page, upsert)

	assert.ErrorIs(t, err, ErrUnknownMetadataGroup)
	assert.True(t, page.Message.IsError())
	owner, _ := page.Dropdown(form.ControlOwner)
	assert.Len(t, owner.Options, 2)
}

// ── SendTestAlert ────────────────────────────────────────────────────────────

func TestClientConsoleService_SendTestAlert(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestConsoleSvc(t, ctrl)
	ctx := context.Background()
	page := loadedPage(t)

	mockAdapter.EXPECT().SendTestAlert(ctx).Return(nil)

	require.NoError(t, svc.SendTestAlert(ctx, page))
	assert.Equal(t, models.Message{Level: models.MessageSuccess, Text: app.MsgTestAlertSent}, page.Message)
}

func TestClientConsoleService_SendTestAlert_Failures(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantErr  error
		wantText string
	}{
		{
			name:     "not configured",
			err:      fmt.Errorf("%w: alert delivery is not configured: SMTP_SERVER is empty", adapter.ErrConflict),
			wantErr:  ErrAlertNotConfigured,
			wantText: app.MsgTestAlertFailed + ": alert delivery is not configured: SMTP_SERVER is empty",
		},
		{
			name:     "smtp rejected",
			err:      fmt.Errorf("%w: alert delivery failed: 535 authentication failed", adapter.ErrBadGateway),
			wantErr:  ErrAlertDeliveryFailed,
			wantText: app.MsgTestAlertFailed + ": alert delivery failed: 535 authentication failed",
		},
		{
			name:     "server down",
			err:      fmt.Errorf("send test alert request: %w", errors.New("connection refused")),
			wantText: app.MsgTestAlertFailed + ": send test alert request: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, mockAdapter := newTestConsoleSvc(t, ctrl)
			ctx := context.Background()
			page := loadedPage(t)

			mockAdapter.EXPECT().SendTestAlert(ctx).Return(tt.err)

			err := svc.SendTestAlert(ctx, page)

			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			assert.Equal(t, models.Message{Level: models.MessageError, Text: tt.wantText}, page.Message)
		})
	}
}

// ── mapAdapterError ──────────────────────────────────────────────────────────

func TestMapAdapterError(t *testing.T) {
	assert.NoError(t, mapAdapterError(nil))

	err := mapAdapterError(fmt.Errorf("%w: %s", adapter.ErrBadRequest, "invalid server configuration: SMTP_PORT bad"))
	assert.ErrorIs(t, err, ErrInvalidServerConfig)
	assert.Equal(t, "invalid server configuration: SMTP_PORT bad", err.Error())

	assert.ErrorIs(t, mapAdapterError(fmt.Errorf("%w: metadata unavailable", adapter.ErrInternalServerError)), ErrMetadataUnavailable)
	assert.ErrorIs(t, mapAdapterError(fmt.Errorf("%w: x", adapter.ErrNotImplemented)), ErrNotImplemented)

	err = mapAdapterError(fmt.Errorf("%w: alert delivery is not configured: ALERT_TO is empty", adapter.ErrConflict))
	assert.ErrorIs(t, err, ErrAlertNotConfigured)
	assert.Equal(t, "alert delivery is not configured: ALERT_TO is empty", err.Error())
	assert.ErrorIs(t, mapAdapterError(fmt.Errorf("%w: alert delivery failed: 554", adapter.ErrBadGateway)), ErrAlertDeliveryFailed)

	other := fmt.Errorf("%w: invalid data provided", adapter.ErrBadRequest)
	assert.Equal(t, other, mapAdapterError(other))
}
