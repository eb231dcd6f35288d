// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"html/template"
	"net/http"

	"github.com/MKhiriev/netalert/internal/app"
	"github.com/MKhiriev/netalert/internal/form"
	"github.com/MKhiriev/netalert/internal/logger"
	"github.com/MKhiriev/netalert/models"
)

//go:embed templates/admin.html
var templatesFS embed.FS

var adminTemplate = template.Must(template.ParseFS(templatesFS, "templates/admin.html"))

type fieldView struct {
	Name    string
	Label   string
	Value   string
	Bool    bool
	Checked bool
	Secret  bool
	// Stored marks a secret that has a value on the server.
	Stored bool
}

type adminView struct {
	*form.Page
	Action          string
	TestAlertAction string
	Version         string
	Fields          []fieldView
}

// adminPage renders the settings page from the same population code the
// console uses.
func (h *Handler) adminPage(w http.ResponseWriter, r *http.Request) {
	page := h.loadPage(r.Context())
	h.renderAdmin(w, r, page, http.StatusOK)
}

// adminSaveServerConfig accepts the HTML form, saves every setting and
// re-renders the page with the outcome.
func (h *Handler) adminSaveServerConfig(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	page := h.loadPage(r.Context())

	if err := r.ParseForm(); err != nil {
		log.Err(err).Str("func", "*Handler.adminSaveServerConfig").Msg("invalid form submitted")
		page.SetMessage(models.MessageError, app.MsgSaveFailed+": "+app.MsgInvalidDataProvided)
		h.renderAdmin(w, r, page, http.StatusBadRequest)
		return
	}

	values := make(form.Values, len(form.ServerConfigFields))
	for _, f := range form.ServerConfigFields {
		if _, ok := r.PostForm[f.Name]; ok {
			values[f.Name] = r.PostForm.Get(f.Name)
		}
	}
	page.Values = values

	if page.Disabled {
		page.SetMessage(models.MessageError, app.MsgPageDisabled)
		h.renderAdmin(w, r, page, http.StatusConflict)
		return
	}

	cfg, err := form.BuildServerConfig(values)
	if err == nil {
		cfg, err = h.services.ServerConfigService.Patch(r.Context(), formPatch(cfg, values))
	}
	if err != nil {
		status := statusFromError(err)
		if errors.Is(err, form.ErrInvalidFieldValue) {
			status = http.StatusBadRequest
		}
		log.Err(err).Str("func", "*Handler.adminSaveServerConfig").Int("status", status).Msg("saving settings failed")
		page.SetMessage(models.MessageError, app.MsgSaveFailed+": "+errorBody(err, status))
		h.renderAdmin(w, r, page, status)
		return
	}

	page.SetConfig(cfg)
	page.SetMessage(models.MessageSuccess, app.MsgSaveSucceeded)
	h.renderAdmin(w, r, page, http.StatusOK)
}

// adminSendTestAlert mails a test alert with the stored settings and
// re-renders the page with the outcome.
func (h *Handler) adminSendTestAlert(w http.ResponseWriter, r *http.Request) {
	page := h.loadPage(r.Context())

	if err := h.services.AlertService.SendTestAlert(r.Context()); err != nil {
		status := statusFromError(err)
		logger.FromRequest(r).Err(err).Str("func", "*Handler.adminSendTestAlert").Int("status", status).Msg("test alert failed")
		page.SetMessage(models.MessageError, app.MsgTestAlertFailed+": "+errorBody(err, status))
		h.renderAdmin(w, r, page, status)
		return
	}

	page.SetMessage(models.MessageSuccess, app.MsgTestAlertSent)
	h.renderAdmin(w, r, page, http.StatusOK)
}

// formPatch builds the update for a submitted form. Secrets are never
// rendered back into the page, so an empty secret leaves the stored one.
func formPatch(cfg models.ServerConfig, values form.Values) models.ServerConfigPatch {
	patch := models.FullPatch(cfg)
	if values[models.KeySMTPPassword] == "" {
		patch.SMTPPassword = nil
	}
	return patch
}

func (h *Handler) loadPage(ctx context.Context) *form.Page {
	log := logger.FromContext(ctx)
	page := form.NewPage()

	if err := page.Populate(h.services.MetadataService.Get(ctx)); err != nil {
		log.Err(err).Str("func", "*Handler.loadPage").Msg("metadata cannot populate the page")
		page.Reset(models.Message{Level: models.MessageError, Text: app.MsgLoadFailed + ": " + err.Error()})
		return page
	}

	cfg, err := h.services.ServerConfigService.Get(ctx)
	if err != nil {
		log.Err(err).Str("func", "*Handler.loadPage").Msg("settings prefill failed")
		page.SetMessage(models.MessageWarning, app.MsgConfigLoadFailed)
		return page
	}
	page.SetConfig(cfg)

	return page
}

func (h *Handler) renderAdmin(w http.ResponseWriter, r *http.Request, page *form.Page, status int) {
	view := adminView{
		Page:            page,
		Action:          adminServerConfig,
		TestAlertAction: adminTestAlert,
		Version:         h.services.AppInfoService.GetAppVersion(r.Context()),
		Fields:          make([]fieldView, 0, len(form.ServerConfigFields)),
	}
	for _, f := range form.ServerConfigFields {
		raw := page.Values[f.Name]
		fv := fieldView{Name: f.Name, Label: f.Label, Secret: f.Secret}
		switch {
		case f.Kind == form.KindBool:
			fv.Bool = true
			fv.Checked, _ = form.ParseBool(raw)
		case f.Secret:
			fv.Stored = raw != ""
		default:
			fv.Value = raw
		}
		view.Fields = append(view.Fields, fv)
	}

	var buf bytes.Buffer
	if err := adminTemplate.Execute(&buf, view); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.renderAdmin").Msg("error rendering admin page")
		http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}
