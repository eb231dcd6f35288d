// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/netalert/internal/validators"
	"github.com/MKhiriev/netalert/models"
)

type MetadataValidationService struct {
	inner     MetadataService
	validator validators.Validator
}

func NewMetadataValidationService() MetadataServiceWrapper {
	return &MetadataValidationService{
		validator: validators.NewOptionValidator(),
	}
}

func (v *MetadataValidationService) Get(ctx context.Context) models.Metadata {
	return v.inner.Get(ctx)
}

func (v *MetadataValidationService) Reload(ctx context.Context) error {
	return v.inner.Reload(ctx)
}

func (v *MetadataValidationService) UpsertOption(ctx context.Context, upsert models.OptionUpsert) (models.Metadata, error) {
	if err := v.validator.Validate(ctx, upsert); err != nil {
		if errors.Is(err, validators.ErrUnknownGroup) {
			return models.Metadata{}, fmt.Errorf("%w: %w", ErrUnknownMetadataGroup, err)
		}
		return models.Metadata{}, fmt.Errorf("%w: %w", ErrInvalidOption, err)
	}

	return v.inner.UpsertOption(ctx, upsert)
}

func (v *MetadataValidationService) Wrap(wrapper MetadataService) MetadataService {
	v.inner = wrapper
	return v
}
