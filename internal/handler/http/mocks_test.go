// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"time"

	"github.com/MKhiriev/netalert/internal/logger"
	"github.com/MKhiriev/netalert/internal/metrics"
	"github.com/MKhiriev/netalert/internal/service"
	"github.com/MKhiriev/netalert/models"
)

// ---- Mock: ServerConfigService ----

type mockServerConfigSvc struct {
	getFn   func(ctx context.Context) (models.ServerConfig, error)
	patchFn func(ctx context.Context, patch models.ServerConfigPatch) (models.ServerConfig, error)
}

func (m *mockServerConfigSvc) Get(ctx context.Context) (models.ServerConfig, error) {
	if m.getFn != nil {
		return m.getFn(ctx)
	}
	return models.ServerConfig{}, nil
}

func (m *mockServerConfigSvc) Patch(ctx context.Context, patch models.ServerConfigPatch) (models.ServerConfig, error) {
	if m.patchFn != nil {
		return m.patchFn(ctx, patch)
	}
	return patch.Apply(models.ServerConfig{}), nil
}

// ---- Mock: MetadataService ----

type mockMetadataSvc struct {
	md       models.Metadata
	upsertFn func(ctx context.Context, upsert models.OptionUpsert) (models.Metadata, error)
}

func (m *mockMetadataSvc) Get(_ context.Context) models.Metadata {
	return m.md.Clone()
}

func (m *mockMetadataSvc) Reload(_ context.Context) error {
	return nil
}

func (m *mockMetadataSvc) UpsertOption(ctx context.Context, upsert models.OptionUpsert) (models.Metadata, error) {
	if m.upsertFn != nil {
		return m.upsertFn(ctx, upsert)
	}
	return m.md, nil
}

// ---- Mock: AppInfoService ----

type mockAppInfoSvc struct {
	version string
}

func (m *mockAppInfoSvc) GetAppVersion(_ context.Context) string {
	return m.version
}

func (m *mockAppInfoSvc) GetAppInfo(_ context.Context) models.AppInfo {
	return models.AppInfo{Version: m.version, StartedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC), Uptime: "1m0s"}
}

// ---- Mock: AlertService ----

type mockAlertSvc struct {
	testFn   func(ctx context.Context) error
	notifyFn func(ctx context.Context, event models.DeviceEvent) (models.AlertResult, error)
}

func (m *mockAlertSvc) SendTestAlert(ctx context.Context) error {
	if m.testFn != nil {
		return m.testFn(ctx)
	}
	return nil
}

func (m *mockAlertSvc) NotifyDevice(ctx context.Context, event models.DeviceEvent) (models.AlertResult, error) {
	if m.notifyFn != nil {
		return m.notifyFn(ctx, event)
	}
	return models.AlertResult{Sent: true}, nil
}

// ---- Spy: metrics.Recorder ----

type observedRequest struct {
	method, route string
	status        int
}

type spyRecorder struct {
	metrics.NoopRecorder
	requests []observedRequest
}

func (s *spyRecorder) ObserveHTTPRequest(method, route string, status int, _ time.Duration) {
	s.requests = append(s.requests, observedRequest{method: method, route: route, status: status})
}

// ---- Helpers ----

func sampleMetadata() models.Metadata {
	return models.Metadata{
		Groups: []models.OptionGroup{
			{Name: models.GroupOwner, Items: []models.OptionRecord{{"owner": "A", "owner_value": "1"}}},
			{Name: models.GroupDeviceType, Items: []models.OptionRecord{
				{"device_type": "Phone", "device_type_value": "phone"},
				{"device_type": "Laptop", "device_type_value": "laptop"},
			}},
		},
		Checkboxes: []models.CheckboxSpec{{ID: "archived", Label: "Archived"}},
	}
}

type testServices struct {
	config   *mockServerConfigSvc
	metadata *mockMetadataSvc
	appInfo  *mockAppInfoSvc
	alerts   *mockAlertSvc
}

func newTestServices() testServices {
	return testServices{
		config:   &mockServerConfigSvc{},
		metadata: &mockMetadataSvc{md: sampleMetadata()},
		appInfo:  &mockAppInfoSvc{version: "test-version"},
		alerts:   &mockAlertSvc{},
	}
}

func (s testServices) handler() *Handler {
	return NewHandler(&service.Services{
		ServerConfigService: s.config,
		MetadataService:     s.metadata,
		AppInfoService:      s.appInfo,
		AlertService:        s.alerts,
	}, nil, nil, logger.Nop())
}

func strPtr(s string) *string { return &s }
