// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup. Fields left empty are
// not checked here: they are filled from defaults before validation when the
// config comes from [GetStructuredConfig].
func (cfg *StructuredConfig) validate() error {
	switch cfg.Storage.DB.Driver {
	case "", DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}

	if cfg.Server.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidServerConfigs)
	}

	if cfg.Adapter.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidAdapterConfigs)
	}

	if cfg.Workers.MetadataReloadDebounce < 0 {
		return fmt.Errorf("%w: negative metadata reload debounce", ErrInvalidWorkerConfigs)
	}

	return nil
}

// ValidateServer checks the settings the admin server cannot start without.
func (cfg *StructuredConfig) ValidateServer() error {
	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout == 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Storage.DB.DSN == "" || cfg.Storage.DB.Driver == "" {
		return fmt.Errorf("%w: database DSN and driver are required", ErrInvalidStorageConfigs)
	}

	if cfg.Storage.Files.MetadataPath == "" {
		return fmt.Errorf("%w: metadata path is required", ErrInvalidStorageConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Adapter.MetadataPath == "" || cfg.Adapter.ConfigEndpoint == "" {
		return fmt.Errorf("%w: metadata path and config endpoint are required", ErrInvalidAdapterConfigs)
	}

	return nil
}
