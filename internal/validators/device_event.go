// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"net"
	"strings"

	"github.com/MKhiriev/netalert/models"
)

// DeviceEventValidator checks [models.DeviceEvent] reports from a scanner.
type DeviceEventValidator struct{}

// NewDeviceEventValidator constructs a [DeviceEventValidator].
func NewDeviceEventValidator() *DeviceEventValidator {
	return &DeviceEventValidator{}
}

// Validate implements [Validator]. Field scoping is not supported.
func (v *DeviceEventValidator) Validate(ctx context.Context, value any, fields ...string) error {
	event, ok := value.(models.DeviceEvent)
	if !ok {
		return fmt.Errorf("%w: %T", ErrUnsupportedType, value)
	}
	if len(fields) > 0 {
		return fmt.Errorf("%w: %s", ErrUnknownField, strings.Join(fields, ", "))
	}

	switch event.Kind {
	case models.DeviceEventNew, models.DeviceEventDown:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownEventKind, event.Kind)
	}

	if _, err := net.ParseMAC(event.MAC); err != nil {
		return fmt.Errorf("%w: mac %q", ErrInvalidDeviceEvent, event.MAC)
	}
	if event.IP != "" && net.ParseIP(event.IP) == nil {
		return fmt.Errorf("%w: ip %q", ErrInvalidDeviceEvent, event.IP)
	}
	if event.MissedScans < 0 {
		return fmt.Errorf("%w: missed_scans %d", ErrInvalidDeviceEvent, event.MissedScans)
	}

	return nil
}
