// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/netalert/internal/adapter"
	"github.com/MKhiriev/netalert/internal/app"
)

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		switch {
		case strings.HasPrefix(msg, app.MsgInvalidServerConfig):
			return fmt.Errorf("%w%s", ErrInvalidServerConfig, strings.TrimPrefix(msg, app.MsgInvalidServerConfig))
		case strings.HasPrefix(msg, app.MsgUnknownMetadataGroup):
			return fmt.Errorf("%w%s", ErrUnknownMetadataGroup, strings.TrimPrefix(msg, app.MsgUnknownMetadataGroup))
		case strings.HasPrefix(msg, app.MsgInvalidOption):
			return fmt.Errorf("%w%s", ErrInvalidOption, strings.TrimPrefix(msg, app.MsgInvalidOption))
		}

	case errors.Is(err, adapter.ErrConflict):
		if strings.HasPrefix(msg, app.MsgAlertNotConfigured) {
			return fmt.Errorf("%w%s", ErrAlertNotConfigured, strings.TrimPrefix(msg, app.MsgAlertNotConfigured))
		}

	case errors.Is(err, adapter.ErrBadGateway):
		if strings.HasPrefix(msg, app.MsgAlertDeliveryFailed) {
			return fmt.Errorf("%w%s", ErrAlertDeliveryFailed, strings.TrimPrefix(msg, app.MsgAlertDeliveryFailed))
		}

	case errors.Is(err, adapter.ErrNotImplemented):
		return ErrNotImplemented

	case errors.Is(err, adapter.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrEndpointNotFound, err)

	case errors.Is(err, adapter.ErrInternalServerError):
		if msg == app.MsgMetadataUnavailable {
			return ErrMetadataUnavailable
		}
	}

	return err
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
