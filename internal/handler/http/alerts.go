// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/netalert/internal/logger"
	"github.com/MKhiriev/netalert/internal/utils"
	"github.com/MKhiriev/netalert/models"
)

// sendTestAlert mails a test message with the stored SMTP settings.
func (h *Handler) sendTestAlert(w http.ResponseWriter, r *http.Request) {
	if err := h.services.AlertService.SendTestAlert(r.Context()); err != nil {
		writeError(w, r, err, "*Handler.sendTestAlert")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// notifyDevice receives a scanner report and mails the alert it calls for.
func (h *Handler) notifyDevice(w http.ResponseWriter, r *http.Request) {
	var event models.DeviceEvent
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&event); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err), "*Handler.notifyDevice")
		return
	}

	res, err := h.services.AlertService.NotifyDevice(r.Context(), event)
	if err != nil {
		writeError(w, r, err, "*Handler.notifyDevice")
		return
	}

	if _, err = utils.WriteJSON(w, res, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.notifyDevice").Msg("error writing response")
	}
}
