// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package metadata

import "errors"

var (
	// ErrMalformedMetadata is returned when the document is not valid JSON or
	// does not have the expected shape. The wrapping error names the offending
	// group, index or field.
	ErrMalformedMetadata = errors.New("malformed metadata document")

	// ErrMissingField is returned by [FieldString] when a record has no such
	// field.
	ErrMissingField = errors.New("option field is missing")

	// ErrInvalidFieldType is returned by [FieldString] when a field is neither
	// a string nor a number.
	ErrInvalidFieldType = errors.New("option field must be a string or a number")
)
