// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the console transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the admin server.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
	// MetadataPath is the metadata document path relative to HTTPAddress.
	MetadataPath string
	// ConfigEndpoint is the server configuration endpoint relative to
	// HTTPAddress.
	ConfigEndpoint string
}

// ClientConfig is the top-level console configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Version is the console build version shown in the header.
	Version string
	// Adapter contains the admin server address and paths.
	Adapter ClientAdapter
}

// GetClientConfig builds and validates a console-specific config view from
// the merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return NewClientConfig(cfg)
}

// NewClientConfig maps the fields relevant to the console out of cfg and
// validates them.
func NewClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		Version: cfg.App.Version,
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			MetadataPath:   cfg.Adapter.MetadataPath,
			ConfigEndpoint: cfg.Adapter.ConfigEndpoint,
		},
	}

	return clientCfg, clientCfg.validate()
}
