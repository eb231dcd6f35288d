// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the terminal admin console on Bubble Tea.
package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/netalert/internal/logger"
	"github.com/MKhiriev/netalert/internal/service"
	"github.com/MKhiriev/netalert/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	services *service.ClientServices
	build    models.AppBuildInfo
	logger   *logger.Logger
}

func New(services *service.ClientServices, build models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil || services.ConsoleService == nil {
		return nil, errNoConsoleService
	}
	return &TUI{services: services, build: build, logger: logger.Component("tui")}, nil
}

// Run shows the console until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	model := newConsoleModel(ctx, t.services.ConsoleService, t.build, t.logger)

	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil && errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
