// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/MKhiriev/netalert/internal/alert"
	"github.com/MKhiriev/netalert/internal/logger"
	"github.com/MKhiriev/netalert/internal/metrics"
	"github.com/MKhiriev/netalert/models"
)

const testAlertBody = "This is a test alert from the netalert admin server.\n" +
	"If you can read it, the SMTP settings are correct.\n"

type alertService struct {
	configs  ServerConfigService
	mailer   alert.Mailer
	recorder metrics.Recorder

	logger *logger.Logger
}

func NewAlertService(configs ServerConfigService, mailer alert.Mailer, recorder metrics.Recorder, logger *logger.Logger) AlertService {
	if recorder == nil {
		recorder = metrics.NoopRecorder{}
	}
	return &alertService{
		configs:  configs,
		mailer:   mailer,
		recorder: recorder,
		logger:   logger,
	}
}

func (s *alertService) SendTestAlert(ctx context.Context) error {
	cfg, err := s.configs.Get(ctx)
	if err != nil {
		return err
	}

	return s.send(ctx, cfg, models.Alert{Subject: "test alert", Body: testAlertBody}, "alertService.SendTestAlert")
}

func (s *alertService) NotifyDevice(ctx context.Context, event models.DeviceEvent) (models.AlertResult, error) {
	cfg, err := s.configs.Get(ctx)
	if err != nil {
		return models.AlertResult{}, err
	}

	if hw, err := net.ParseMAC(event.MAC); err == nil {
		event.MAC = hw.String()
	}

	switch event.Kind {
	case models.DeviceEventNew:
		if !cfg.AlertNewDevice {
			return models.AlertResult{Reason: models.KeyAlertNewDevice + " is disabled"}, nil
		}
	case models.DeviceEventDown:
		if !cfg.AlertDownDevice {
			return models.AlertResult{Reason: models.KeyAlertDownDevice + " is disabled"}, nil
		}
		// An empty threshold reports every down event.
		threshold, _ := strconv.Atoi(strings.TrimSpace(cfg.AlertDownThreshold))
		if event.MissedScans < threshold {
			return models.AlertResult{
				Reason: fmt.Sprintf("%d of %d missed scans", event.MissedScans, threshold),
			}, nil
		}
	default:
		return models.AlertResult{}, fmt.Errorf("%w: %q", ErrInvalidDeviceEvent, event.Kind)
	}

	if err = s.send(ctx, cfg, deviceAlert(cfg, event), "alertService.NotifyDevice"); err != nil {
		return models.AlertResult{}, err
	}
	return models.AlertResult{Sent: true}, nil
}

func (s *alertService) send(ctx context.Context, cfg models.ServerConfig, msg models.Alert, funcName string) error {
	err := s.mailer.Send(ctx, cfg, msg)
	s.recorder.IncAlertSent(metrics.ResultOf(err))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", funcName).Str("subject", msg.Subject).Msg("alert not sent")
		return err
	}
	return nil
}

func deviceAlert(cfg models.ServerConfig, e models.DeviceEvent) models.Alert {
	name := e.Description
	if name == "" {
		name = e.Hostname
	}
	if name == "" {
		name = e.MAC
	}

	var b strings.Builder
	subj := "new device " + name
	if e.Kind == models.DeviceEventDown {
		subj = "device down " + name
	}

	fmt.Fprintf(&b, "Device: %s\n", name)
	fmt.Fprintf(&b, "MAC: %s\n", e.MAC)
	if e.IP != "" {
		fmt.Fprintf(&b, "IP: %s\n", e.IP)
	}
	if e.Hostname != "" {
		fmt.Fprintf(&b, "Hostname: %s\n", e.Hostname)
	}
	if e.Vendor != "" {
		fmt.Fprintf(&b, "Vendor: %s\n", e.Vendor)
	}
	if e.Kind == models.DeviceEventDown {
		fmt.Fprintf(&b, "Missed scans: %d\n", e.MissedScans)
	}
	if base := strings.TrimSpace(cfg.WebAdminDeviceURL); base != "" {
		fmt.Fprintf(&b, "\nDetails: %s%s\n", base, e.MAC)
	}

	return models.Alert{Subject: subj, Body: b.String()}
}
