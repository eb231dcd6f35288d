// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package alert

import (
	"errors"

	"github.com/MKhiriev/netalert/internal/app"
)

var (
	// ErrSMTPNotConfigured is returned before any connection is made when the
	// stored settings cannot produce a deliverable e-mail.
	ErrSMTPNotConfigured = errors.New(app.MsgAlertNotConfigured)

	// ErrSendingAlert wraps the failure of the SMTP exchange.
	ErrSendingAlert = errors.New(app.MsgAlertDeliveryFailed)

	errNoAuthSupport = errors.New("smtp server does not support AUTH")
)
