// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("version is not specified")

	ErrInvalidServerConfig  = errors.New("invalid server configuration")
	ErrUnknownMetadataGroup = errors.New("unknown metadata group")
	ErrInvalidOption        = errors.New("invalid option")
	ErrNotImplemented       = errors.New("not implemented")
	ErrInvalidDeviceEvent   = errors.New("invalid device event")

	// Console errors.
	ErrMetadataUnavailable = errors.New("metadata unavailable")
	ErrSaveFailed          = errors.New("saving settings failed")
	ErrPageDisabled        = errors.New("page is disabled")
	ErrEndpointNotFound    = errors.New("endpoint not found")
	ErrAlertNotConfigured  = errors.New("alert delivery is not configured")
	ErrAlertDeliveryFailed = errors.New("alert delivery failed")
)
