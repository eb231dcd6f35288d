// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	metadataDocumentPath = "/db/metadata.json"
	serverAdminPath      = "/server/admin.php"
	adminPagePath        = "/admin"
	adminServerConfig    = "/admin/server-config"
	adminTestAlert       = "/admin/test-alert"
	appearancePath       = "/api/appearance"
	metadataGroupPath    = "/api/metadata/{group}"
	versionPath          = "/api/version/"
	infoPath             = "/api/info/"
	testAlertPath        = "/api/alerts/test"
	deviceAlertPath      = "/api/alerts/device"
	metricsPath          = "/metrics"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, h.withMetrics, withGZip)

	// console endpoints
	router.Get(metadataDocumentPath, h.getMetadataDocument)
	router.Get(serverAdminPath, h.getServerConfig)
	router.Patch(serverAdminPath, h.patchServerConfig)

	// html admin page
	router.Get(adminPagePath, h.adminPage)
	router.Post(adminServerConfig, h.adminSaveServerConfig)
	router.Post(adminTestAlert, h.adminSendTestAlert)

	router.Group(func(r chi.Router) {
		r.Patch(appearancePath, h.updateAppearance)
		r.Post(metadataGroupPath, h.upsertMetadataOption)
		r.Get(versionPath, h.getServerVersion)
		r.Get(infoPath, h.getServerInfo)
		r.Post(testAlertPath, h.sendTestAlert)
		r.Post(deviceAlertPath, h.notifyDevice)
	})

	if h.metricsHandler != nil {
		router.Method(http.MethodGet, metricsPath, h.metricsHandler)
	}

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
