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

const actionServerConfig = "serverConfig"

func (h *Handler) getServerConfig(w http.ResponseWriter, r *http.Request) {
	if action := r.URL.Query().Get("action"); action != actionServerConfig {
		writeError(w, r, fmt.Errorf("%w: %q", ErrUnknownAction, action), "*Handler.getServerConfig")
		return
	}

	cfg, err := h.services.ServerConfigService.Get(r.Context())
	if err != nil {
		writeError(w, r, err, "*Handler.getServerConfig")
		return
	}

	if _, err = utils.WriteJSON(w, cfg, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getServerConfig").Msg("error writing response")
	}
}

// patchServerConfig applies a partial configuration update. Unknown keys are
// rejected so that a typo in a setting name is not silently dropped.
func (h *Handler) patchServerConfig(w http.ResponseWriter, r *http.Request) {
	if action := r.URL.Query().Get("action"); action != actionServerConfig {
		writeError(w, r, fmt.Errorf("%w: %q", ErrUnknownAction, action), "*Handler.patchServerConfig")
		return
	}

	var patch models.ServerConfigPatch
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&patch); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err), "*Handler.patchServerConfig")
		return
	}

	stored, err := h.services.ServerConfigService.Patch(r.Context(), patch)
	if err != nil {
		writeError(w, r, err, "*Handler.patchServerConfig")
		return
	}

	if _, err = utils.WriteJSON(w, stored, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.patchServerConfig").Msg("error writing response")
	}
}
