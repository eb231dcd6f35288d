// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	stdhttp "net/http"

	"github.com/MKhiriev/netalert/internal/config"
	"github.com/MKhiriev/netalert/internal/handler/http"
	"github.com/MKhiriev/netalert/internal/logger"
	"github.com/MKhiriev/netalert/internal/metrics"
	"github.com/MKhiriev/netalert/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds the transport handlers enabled by cfg. recorder may be
// nil. A recorder that can expose its own registry gets mounted on /metrics.
func NewHandlers(services *service.Services, cfg config.Server, recorder metrics.Recorder, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, recorder, metricsHandler(recorder), logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}

func metricsHandler(recorder metrics.Recorder) stdhttp.Handler {
	if exposer, ok := recorder.(interface{ Handler() stdhttp.Handler }); ok {
		return exposer.Handler()
	}
	return nil
}
