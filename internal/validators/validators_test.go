// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/netalert/internal/metadata"
	"github.com/MKhiriev/netalert/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

// ── ServerConfigValidator ─────────────────────────────────────────────────────

func TestServerConfigValidator_Record(t *testing.T) {
	v := NewServerConfigValidator()
	ctx := context.Background()

	valid := models.ServerConfig{
		AlertDownThreshold: "0",
		AlertFrom:          "pi@home.lan",
		AlertTo:            "me@home.lan",
		SMTPPort:           "465",
		WebAdminDeviceURL:  "https://pi.lan/deviceDetails.php?mac=",
	}

	tests := []struct {
		name    string
		mutate  func(c *models.ServerConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(c *models.ServerConfig) {}},
		{name: "all empty", mutate: func(c *models.ServerConfig) { *c = models.ServerConfig{} }},
		{name: "port zero", mutate: func(c *models.ServerConfig) { c.SMTPPort = "0" }, wantErr: ErrInvalidSMTPPort},
		{name: "port too big", mutate: func(c *models.ServerConfig) { c.SMTPPort = "65536" }, wantErr: ErrInvalidSMTPPort},
		{name: "port text", mutate: func(c *models.ServerConfig) { c.SMTPPort = "smtp" }, wantErr: ErrInvalidSMTPPort},
		{name: "negative threshold", mutate: func(c *models.ServerConfig) { c.AlertDownThreshold = "-1" }, wantErr: ErrInvalidThreshold},
		{name: "from without at", mutate: func(c *models.ServerConfig) { c.AlertFrom = "pi.home.lan" }, wantErr: ErrInvalidEmail},
		{name: "to ends with at", mutate: func(c *models.ServerConfig) { c.AlertTo = "me@" }, wantErr: ErrInvalidEmail},
		{name: "relative url", mutate: func(c *models.ServerConfig) { c.WebAdminDeviceURL = "/device" }, wantErr: ErrInvalidDeviceURL},
		{name: "ftp url", mutate: func(c *models.ServerConfig) { c.WebAdminDeviceURL = "ftp://pi.lan" }, wantErr: ErrInvalidDeviceURL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)

			err := v.Validate(ctx, cfg)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestServerConfigValidator_FieldScoping(t *testing.T) {
	v := NewServerConfigValidator()
	cfg := models.ServerConfig{SMTPPort: "bad", AlertFrom: "pi@home.lan"}

	assert.NoError(t, v.Validate(context.Background(), cfg, models.KeyAlertFrom))
	assert.ErrorIs(t, v.Validate(context.Background(), cfg, models.KeySMTPPort), ErrInvalidSMTPPort)
	assert.ErrorIs(t, v.Validate(context.Background(), models.ServerConfig{AlertSubject: "x"}, "NOPE", models.KeyAlertSubject), ErrUnknownField)
	assert.NoError(t, v.Validate(context.Background(), models.ServerConfig{}, models.KeyAlertNewDevice, models.KeySMTPPassword))
}

func TestServerConfigValidator_UnknownFieldWithEmptyRecord(t *testing.T) {
	v := NewServerConfigValidator()

	err := v.Validate(context.Background(), models.ServerConfig{}, "SMTP_PROT")
	require.ErrorIs(t, err, ErrUnknownField)
	assert.Contains(t, err.Error(), "SMTP_PROT")

	err = v.Validate(context.Background(), models.ServerConfigPatch{SMTPPort: strPtr("25")}, "SMTP_PROT")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestServerConfigValidator_Addresses(t *testing.T) {
	v := NewServerConfigValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		cfg     models.ServerConfig
		wantErr bool
	}{
		{name: "display name sender", cfg: models.ServerConfig{AlertFrom: "Pi Alert <pi@home.lan>"}},
		{name: "recipient list", cfg: models.ServerConfig{AlertTo: "me@home.lan, you@home.lan"}},
		{name: "sender list", cfg: models.ServerConfig{AlertFrom: "a@home.lan, b@home.lan"}, wantErr: true},
		{name: "missing local part", cfg: models.ServerConfig{AlertTo: "@home.lan"}, wantErr: true},
		{name: "space inside", cfg: models.ServerConfig{AlertFrom: "pi @home.lan x"}, wantErr: true},
		{name: "bad list entry", cfg: models.ServerConfig{AlertTo: "me@home.lan, nobody"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.cfg)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidEmail)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestServerConfigValidator_Patch(t *testing.T) {
	v := NewServerConfigValidator()
	ctx := context.Background()

	assert.ErrorIs(t, v.Validate(ctx, models.ServerConfigPatch{}), ErrEmptyPatch)
	assert.NoError(t, v.Validate(ctx, models.ServerConfigPatch{AlertNewDevice: boolPtr(true)}))
	assert.NoError(t, v.Validate(ctx, models.ServerConfigPatch{SMTPPort: strPtr("25")}))
	assert.ErrorIs(t, v.Validate(ctx, models.ServerConfigPatch{SMTPPort: strPtr("99999")}), ErrInvalidSMTPPort)
}

func TestServerConfigValidator_UnsupportedType(t *testing.T) {
	v := NewServerConfigValidator()
	assert.ErrorIs(t, v.Validate(context.Background(), "text"), ErrUnsupportedType)

	var nilCfg *models.ServerConfig
	assert.ErrorIs(t, v.Validate(context.Background(), nilCfg), ErrUnsupportedType)
}

// ── OptionValidator ───────────────────────────────────────────────────────────

func TestOptionValidator(t *testing.T) {
	v := NewOptionValidator()
	ctx := context.Background()

	require.NoError(t, v.Validate(ctx, models.OptionUpsert{
		Group:  models.GroupOwner,
		Record: models.OptionRecord{"owner": "Alice", "owner_value": "alice"},
	}))

	err := v.Validate(ctx, models.OptionUpsert{Group: "vendor", Record: models.OptionRecord{}})
	assert.ErrorIs(t, err, ErrUnknownGroup)

	err = v.Validate(ctx, models.OptionUpsert{
		Group:  models.GroupDeviceType,
		Record: models.OptionRecord{"device_type": "Phone"},
	})
	assert.ErrorIs(t, err, ErrInvalidOptionItem)
	assert.ErrorIs(t, err, metadata.ErrMissingField)

	err = v.Validate(ctx, models.OptionUpsert{
		Group:  models.GroupLocation,
		Record: models.OptionRecord{"location": " ", "location_value": "1"},
	})
	assert.ErrorIs(t, err, ErrInvalidOptionItem)

	assert.ErrorIs(t, v.Validate(ctx, models.ServerConfig{}), ErrUnsupportedType)
}

// ── DeviceEventValidator ──────────────────────────────────────────────────────

func TestDeviceEventValidator(t *testing.T) {
	v := NewDeviceEventValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		value   any
		fields  []string
		wantErr error
	}{
		{name: "new device", value: models.DeviceEvent{Kind: models.DeviceEventNew, MAC: "d8:eb:97:22:e6:4b", IP: "192.168.1.20"}},
		{name: "down device", value: models.DeviceEvent{Kind: models.DeviceEventDown, MAC: "D8-EB-97-22-E6-4B", MissedScans: 3}},
		{name: "ipv6", value: models.DeviceEvent{Kind: models.DeviceEventNew, MAC: "d8:eb:97:22:e6:4b", IP: "fe80::1"}},
		{name: "unknown kind", value: models.DeviceEvent{Kind: "moved", MAC: "d8:eb:97:22:e6:4b"}, wantErr: ErrUnknownEventKind},
		{name: "bad mac", value: models.DeviceEvent{Kind: models.DeviceEventNew, MAC: "d8:eb"}, wantErr: ErrInvalidDeviceEvent},
		{name: "bad ip", value: models.DeviceEvent{Kind: models.DeviceEventNew, MAC: "d8:eb:97:22:e6:4b", IP: "300.1.1.1"}, wantErr: ErrInvalidDeviceEvent},
		{name: "negative missed scans", value: models.DeviceEvent{Kind: models.DeviceEventDown, MAC: "d8:eb:97:22:e6:4b", MissedScans: -1}, wantErr: ErrInvalidDeviceEvent},
		{name: "scoped", value: models.DeviceEvent{Kind: models.DeviceEventNew, MAC: "d8:eb:97:22:e6:4b"}, fields: []string{"mac"}, wantErr: ErrUnknownField},
		{name: "wrong type", value: models.ServerConfig{}, wantErr: ErrUnsupportedType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.value, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
