// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/netalert/internal/adapter"
	"github.com/MKhiriev/netalert/internal/logger"
)

type ClientServices struct {
	ConsoleService ClientConsoleService
}

func NewClientServices(adminAdapter adapter.AdminAdapter, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		ConsoleService: NewClientConsoleService(adminAdapter, logger),
	}
}
