// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/netalert/internal/app"
	"github.com/MKhiriev/netalert/internal/metadata"
	"github.com/MKhiriev/netalert/internal/service"
	"github.com/MKhiriev/netalert/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMetadataDocument(t *testing.T) {
	router := newTestServices().handler().Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/db/metadata.json", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	md, err := metadata.Parse(rec.Body.Bytes())
	require.NoError(t, err)
	assert.Equal(t, []string{models.GroupOwner, models.GroupDeviceType}, []string{md.Groups[0].Name, md.Groups[1].Name})
	assert.Len(t, md.Group(models.GroupDeviceType), 2)
	assert.Len(t, md.Checkboxes, 1)
}

func TestUpsertMetadataOption(t *testing.T) {
	s := newTestServices()
	var received models.OptionUpsert
	s.metadata.upsertFn = func(ctx context.Context, upsert models.OptionUpsert) (models.Metadata, error) {
		received = upsert
		md := sampleMetadata()
		md.SetGroup(upsert.Group, append(md.Group(upsert.Group), upsert.Record))
		return md, nil
	}
	router := s.handler().Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/metadata/owner", strings.NewReader(`{"owner":"B","owner_value":2}`)))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.GroupOwner, received.Group)
	value, err := metadata.FieldString(received.Record, models.OwnerValueField)
	require.NoError(t, err)
	assert.Equal(t, "2", value)

	md, err := metadata.Parse(rec.Body.Bytes())
	require.NoError(t, err)
	assert.Len(t, md.Group(models.GroupOwner), 2)
}

func TestUpsertMetadataOption_Errors(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		err      error
		wantCode int
		wantBody string
	}{
		{name: "invalid json", body: `[`, wantCode: http.StatusBadRequest, wantBody: app.MsgInvalidDataProvided},
		{name: "array body", body: `[{"owner":"B"}]`, wantCode: http.StatusBadRequest, wantBody: app.MsgInvalidDataProvided},
		{
			name:     "unknown group",
			body:     `{}`,
			err:      fmt.Errorf("%w: \"vendor\"", service.ErrUnknownMetadataGroup),
			wantCode: http.StatusBadRequest,
			wantBody: `unknown metadata group: "vendor"`,
		},
		{
			name:     "persist failure",
			body:     `{"owner":"B","owner_value":"2"}`,
			err:      fmt.Errorf("%w: read-only file system", service.ErrMetadataUnavailable),
			wantCode: http.StatusInternalServerError,
			wantBody: app.MsgMetadataUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServices()
			s.metadata.upsertFn = func(ctx context.Context, upsert models.OptionUpsert) (models.Metadata, error) {
				return models.Metadata{}, tt.err
			}
			router := s.handler().Init()

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/metadata/vendor", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Contains(t, strings.TrimSpace(rec.Body.String()), tt.wantBody)
		})
	}
}

func TestUpdateAppearance_NotImplemented(t *testing.T) {
	router := newTestServices().handler().Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/api/appearance", strings.NewReader(`{}`)))

	assert.Equal(t, http.StatusNotImplemented, rec.Code)
	assert.Equal(t, app.MsgNotImplemented, strings.TrimSpace(rec.Body.String()))
}
