// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/netalert/internal/logger"
	"github.com/MKhiriev/netalert/internal/metadata"
	"github.com/MKhiriev/netalert/internal/service"
	"github.com/MKhiriev/netalert/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) getMetadataDocument(w http.ResponseWriter, r *http.Request) {
	h.writeMetadata(w, r, h.services.MetadataService.Get(r.Context()), "*Handler.getMetadataDocument")
}

func (h *Handler) upsertMetadataOption(w http.ResponseWriter, r *http.Request) {
	var record models.OptionRecord
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	if err := dec.Decode(&record); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err), "*Handler.upsertMetadataOption")
		return
	}

	md, err := h.services.MetadataService.UpsertOption(r.Context(), models.OptionUpsert{
		Group:  chi.URLParam(r, "group"),
		Record: record,
	})
	if err != nil {
		writeError(w, r, err, "*Handler.upsertMetadataOption")
		return
	}

	h.writeMetadata(w, r, md, "*Handler.upsertMetadataOption")
}

func (h *Handler) updateAppearance(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, service.ErrNotImplemented, "*Handler.updateAppearance")
}

func (h *Handler) writeMetadata(w http.ResponseWriter, r *http.Request, md models.Metadata, funcName string) {
	data, err := metadata.Encode(md)
	if err != nil {
		writeError(w, r, err, funcName)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err = w.Write(data); err != nil {
		logger.FromRequest(r).Err(err).Str("func", funcName).Msg("error writing response")
	}
}
