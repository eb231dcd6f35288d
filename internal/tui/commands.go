// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	"github.com/MKhiriev/netalert/internal/utils"
	"github.com/MKhiriev/netalert/models"
	tea "github.com/charmbracelet/bubbletea"
)

var traceIDs = utils.NewUUIDGenerator()

// requestContext returns a context carrying a fresh trace ID. The ID is sent
// as X-Trace-ID, so console and server log entries of one action match.
func (m consoleModel) requestContext(action string) context.Context {
	traceID := traceIDs.Generate()
	m.logger.Info().Str("trace_id", traceID).Str("action", action).Msg("console action")
	return utils.WithTraceID(m.ctx, traceID)
}

func (m consoleModel) cmdLoad() tea.Cmd {
	ctx := m.requestContext("load")
	page := m.page.Clone()
	console := m.console

	return func() tea.Msg {
		err := console.Load(ctx, page)
		return pageLoadedMsg{page: page, err: err}
	}
}

func (m consoleModel) cmdSave() tea.Cmd {
	ctx := m.requestContext("save")
	page := m.page.Clone()
	page.Values = m.collectValues()
	console := m.console

	return func() tea.Msg {
		err := console.Save(ctx, page)
		return pageSavedMsg{page: page, err: err}
	}
}

func (m consoleModel) cmdUpdateAppearance() tea.Cmd {
	ctx := m.requestContext("appearance")
	page := m.page.Clone()
	page.Values = m.collectValues()
	console := m.console

	return func() tea.Msg {
		err := console.UpdateAppearance(ctx, page)
		return appearanceDoneMsg{page: page, err: err}
	}
}

func (m consoleModel) cmdSendTestAlert() tea.Cmd {
	ctx := m.requestContext("test_alert")
	page := m.page.Clone()
	page.Values = m.collectValues()
	console := m.console

	return func() tea.Msg {
		err := console.SendTestAlert(ctx, page)
		return testAlertDoneMsg{page: page, err: err}
	}
}

func (m consoleModel) cmdUpsertOption(upsert models.OptionUpsert) tea.Cmd {
	ctx := m.requestContext("upsert_option")
	page := m.page.Clone()
	page.Values = m.collectValues()
	console := m.console

	return func() tea.Msg {
		err := console.UpsertOption(ctx, page, upsert)
		return optionSavedMsg{page: page, err: err}
	}
}
