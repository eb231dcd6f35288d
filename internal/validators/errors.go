// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyPatch        = errors.New("at least one setting must be provided")
	ErrInvalidSMTPPort   = errors.New("SMTP_PORT must be an integer between 1 and 65535")
	ErrInvalidThreshold  = errors.New("ALERT_DOWN_THRESHOLD must be a non-negative integer")
	ErrInvalidEmail      = errors.New("invalid e-mail address")
	ErrInvalidDeviceURL  = errors.New("WEB_ADMIN_DEVICE_URL must be an absolute http(s) URL")
	ErrUnknownGroup      = errors.New("unknown metadata group")
	ErrInvalidOptionItem = errors.New("invalid option")

	ErrUnknownEventKind   = errors.New("unknown device event")
	ErrInvalidDeviceEvent = errors.New("invalid device event")
)
