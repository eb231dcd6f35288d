// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package form

import "errors"

var (
	// ErrUnknownControl is returned when a binding names a control the page
	// does not have.
	ErrUnknownControl = errors.New("unknown control")

	// ErrInvalidOption is returned when a metadata item lacks the label or
	// value field of the dropdown it populates.
	ErrInvalidOption = errors.New("invalid option record")

	// ErrInvalidFieldValue is returned when a form value cannot be converted
	// to the field's type.
	ErrInvalidFieldValue = errors.New("invalid form field value")
)
