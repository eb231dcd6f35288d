// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package alert delivers alert e-mails with the SMTP settings stored through
// the configuration endpoint.
package alert

import (
	"context"

	"github.com/MKhiriev/netalert/models"
)

// Mailer sends one alert e-mail using the SMTP_*, ALERT_FROM, ALERT_TO and
// ALERT_SUBJECT settings of cfg.
type Mailer interface {
	Send(ctx context.Context, cfg models.ServerConfig, msg models.Alert) error
}
