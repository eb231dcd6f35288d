// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/netalert/internal/metadata"
	"github.com/MKhiriev/netalert/models"
)

// OptionValidator checks [models.OptionUpsert] requests: the group must be
// one of the known dropdown groups and the record must carry a non-empty
// label and value under the group's field names.
type OptionValidator struct{}

// NewOptionValidator constructs an [OptionValidator].
func NewOptionValidator() *OptionValidator {
	return &OptionValidator{}
}

// Validate implements [Validator]. Field scoping is not supported.
func (v *OptionValidator) Validate(ctx context.Context, value any, fields ...string) error {
	upsert, ok := value.(models.OptionUpsert)
	if !ok {
		return fmt.Errorf("%w: %T", ErrUnsupportedType, value)
	}
	if len(fields) > 0 {
		return fmt.Errorf("%w: %s", ErrUnknownField, strings.Join(fields, ", "))
	}

	labelField, valueField, known := models.GroupFields(upsert.Group)
	if !known {
		return fmt.Errorf("%w: %q", ErrUnknownGroup, upsert.Group)
	}

	for _, field := range []string{labelField, valueField} {
		s, err := metadata.FieldString(upsert.Record, field)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidOptionItem, err)
		}
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%w: %q is empty", ErrInvalidOptionItem, field)
		}
	}

	return nil
}
