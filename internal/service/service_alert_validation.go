// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/netalert/internal/validators"
	"github.com/MKhiriev/netalert/models"
)

type AlertValidationService struct {
	inner     AlertService
	validator validators.Validator
}

func NewAlertValidationService() AlertServiceWrapper {
	return &AlertValidationService{
		validator: validators.NewDeviceEventValidator(),
	}
}

func (v *AlertValidationService) SendTestAlert(ctx context.Context) error {
	return v.inner.SendTestAlert(ctx)
}

func (v *AlertValidationService) NotifyDevice(ctx context.Context, event models.DeviceEvent) (models.AlertResult, error) {
	if err := v.validator.Validate(ctx, event); err != nil {
		return models.AlertResult{}, fmt.Errorf("%w: %w", ErrInvalidDeviceEvent, err)
	}

	return v.inner.NotifyDevice(ctx, event)
}

func (v *AlertValidationService) Wrap(wrapper AlertService) AlertService {
	v.inner = wrapper
	return v
}
