// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/netalert/internal/logger"
	"github.com/MKhiriev/netalert/internal/metrics"
	"github.com/MKhiriev/netalert/internal/service"
)

type Handler struct {
	services *service.Services

	recorder       metrics.Recorder
	metricsHandler http.Handler

	logger *logger.Logger
}

// NewHandler constructs the HTTP handler. A nil recorder disables request
// metrics; a nil metricsHandler leaves /metrics unregistered.
func NewHandler(services *service.Services, recorder metrics.Recorder, metricsHandler http.Handler, logger *logger.Logger) *Handler {
	if recorder == nil {
		recorder = metrics.NoopRecorder{}
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		recorder:       recorder,
		metricsHandler: metricsHandler,
		logger:         logger,
	}
}
