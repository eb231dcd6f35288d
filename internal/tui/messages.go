// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/MKhiriev/netalert/internal/form"

// Results of console service calls. Each carries the page copy the call
// worked on; it replaces the model's page when the message arrives.

type pageLoadedMsg struct {
	page *form.Page
	err  error
}

type pageSavedMsg struct {
	page *form.Page
	err  error
}

type appearanceDoneMsg struct {
	page *form.Page
	err  error
}

type testAlertDoneMsg struct {
	page *form.Page
	err  error
}

type optionSavedMsg struct {
	page *form.Page
	err  error
}
