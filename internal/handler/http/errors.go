// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"

	"github.com/MKhiriev/netalert/internal/app"
)

var (
	// ErrUnknownAction is returned by the admin endpoint for any action other
	// than serverConfig.
	ErrUnknownAction = errors.New(app.MsgUnknownAction)

	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New(app.MsgInvalidDataProvided)
)
