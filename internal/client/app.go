// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/netalert/internal/logger"
)

var errNoUI = errors.New("console ui is not configured")

type App struct {
	ui     UI
	logger *logger.Logger
}

func NewApp(ui UI, logger *logger.Logger) (*App, error) {
	if ui == nil {
		return nil, errNoUI
	}
	return &App{ui: ui, logger: logger}, nil
}

// Run shows the console until the user quits or the process receives
// SIGTERM or SIGQUIT.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	a.logger.Info().Msg("console started")
	if err := a.ui.Run(ctx); err != nil {
		a.logger.Err(err).Msg("console stopped with error")
		return err
	}
	a.logger.Info().Msg("console stopped")
	return nil
}
