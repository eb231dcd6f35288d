// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/netalert/internal/alert"
	"github.com/MKhiriev/netalert/internal/app"
	"github.com/MKhiriev/netalert/internal/service"
	"github.com/MKhiriev/netalert/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{
			name:     "validation",
			err:      fmt.Errorf("%w: SMTP_PORT bad", service.ErrInvalidServerConfig),
			wantCode: http.StatusBadRequest,
			wantBody: "invalid server configuration: SMTP_PORT bad",
		},
		{name: "unknown action", err: ErrUnknownAction, wantCode: http.StatusBadRequest, wantBody: app.MsgUnknownAction},
		{name: "not implemented", err: service.ErrNotImplemented, wantCode: http.StatusNotImplemented, wantBody: app.MsgNotImplemented},
		{
			name:     "storage",
			err:      fmt.Errorf("%w: disk I/O error", store.ErrCommitingTransaction),
			wantCode: http.StatusInternalServerError,
			wantBody: app.MsgInternalServerError,
		},
		{
			name:     "metadata",
			err:      fmt.Errorf("%w: %w", service.ErrMetadataUnavailable, store.ErrMetadataFile),
			wantCode: http.StatusInternalServerError,
			wantBody: app.MsgMetadataUnavailable,
		},
		{
			name:     "smtp not configured",
			err:      fmt.Errorf("%w: SMTP_SERVER is empty", alert.ErrSMTPNotConfigured),
			wantCode: http.StatusConflict,
			wantBody: "alert delivery is not configured: SMTP_SERVER is empty",
		},
		{
			name:     "smtp rejected",
			err:      fmt.Errorf("%w: 535 authentication failed", alert.ErrSendingAlert),
			wantCode: http.StatusBadGateway,
			wantBody: "alert delivery failed: 535 authentication failed",
		},
		{
			name:     "device event",
			err:      fmt.Errorf("%w: bad mac", service.ErrInvalidDeviceEvent),
			wantCode: http.StatusBadRequest,
			wantBody: "invalid device event: bad mac",
		},
		{name: "unknown", err: errors.New("boom"), wantCode: http.StatusInternalServerError, wantBody: app.MsgInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code := statusFromError(tt.err)
			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantBody, errorBody(tt.err, code))
		})
	}
}
