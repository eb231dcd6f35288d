// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/netalert/internal/validators"
	"github.com/MKhiriev/netalert/models"
)

type ServerConfigValidationService struct {
	inner     ServerConfigService
	validator validators.Validator
}

func NewServerConfigValidationService() ServerConfigServiceWrapper {
	return &ServerConfigValidationService{
		validator: validators.NewServerConfigValidator(),
	}
}

func (v *ServerConfigValidationService) Get(ctx context.Context) (models.ServerConfig, error) {
	return v.inner.Get(ctx)
}

func (v *ServerConfigValidationService) Patch(ctx context.Context, patch models.ServerConfigPatch) (models.ServerConfig, error) {
	if err := v.validator.Validate(ctx, patch); err != nil {
		return models.ServerConfig{}, fmt.Errorf("%w: %w", ErrInvalidServerConfig, err)
	}

	return v.inner.Patch(ctx, patch)
}

func (v *ServerConfigValidationService) Wrap(wrapper ServerConfigService) ServerConfigService {
	v.inner = wrapper
	return v
}
