// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/netalert/internal/alert"
	"github.com/MKhiriev/netalert/internal/app"
	"github.com/MKhiriev/netalert/internal/logger"
	"github.com/MKhiriev/netalert/internal/service"
	"github.com/MKhiriev/netalert/internal/store"
)

var errorStatusMap = map[error]int{
	ErrUnknownAction: http.StatusBadRequest,
	ErrInvalidJSON:   http.StatusBadRequest,

	service.ErrInvalidServerConfig:   http.StatusBadRequest,
	service.ErrUnknownMetadataGroup:  http.StatusBadRequest,
	service.ErrInvalidOption:         http.StatusBadRequest,
	service.ErrVersionIsNotSpecified: http.StatusBadRequest,
	service.ErrNotImplemented:        http.StatusNotImplemented,
	service.ErrMetadataUnavailable:   http.StatusInternalServerError,
	service.ErrInvalidDeviceEvent:    http.StatusBadRequest,

	alert.ErrSMTPNotConfigured: http.StatusConflict,
	alert.ErrSendingAlert:      http.StatusBadGateway,

	store.ErrMetadataFile:         http.StatusInternalServerError,
	store.ErrDecodingValue:        http.StatusInternalServerError,
	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// errorBody returns the text written for err. Client errors carry the full
// error so the console can show which rule failed, and so does a failed SMTP
// exchange. Other server errors never leak internals.
func errorBody(err error, status int) string {
	switch {
	case status == http.StatusNotImplemented:
		return app.MsgNotImplemented
	case errors.Is(err, service.ErrMetadataUnavailable):
		return app.MsgMetadataUnavailable
	case errors.Is(err, alert.ErrSendingAlert):
		return err.Error()
	case status >= http.StatusInternalServerError:
		return app.MsgInternalServerError
	default:
		return err.Error()
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error, funcName string) {
	status := statusFromError(err)

	ev := logger.FromRequest(r).Warn()
	if status >= http.StatusInternalServerError && status != http.StatusNotImplemented {
		ev = logger.FromRequest(r).Error()
	}
	ev.Err(err).Str("func", funcName).Int("status", status).Msg("request failed")

	http.Error(w, errorBody(err, status), status)
}
