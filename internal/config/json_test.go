// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	jsonBody := `{
		"app": { "version": "2.0.0" },
		"server": {
			"http_address": "localhost:8080",
			"request_timeout": "30s"
		},
		"storage": {
			"db": { "dsn": "netalert.db", "driver": "sqlite3" },
			"files": { "metadata_path": "/var/data/metadata.json" },
			"secret_key": "s3cret"
		},
		"adapter": {
			"http_address": "http://localhost:8080",
			"request_timeout": "5s",
			"metadata_path": "db/metadata.json",
			"config_endpoint": "server/admin.php?action=serverConfig"
		},
		"workers": { "metadata_reload_debounce": "1s" }
	}`

	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "2.0.0", cfg.App.Version)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "netalert.db", cfg.Storage.DB.DSN)
	assert.Equal(t, DriverSQLite, cfg.Storage.DB.Driver)
	assert.Equal(t, "/var/data/metadata.json", cfg.Storage.Files.MetadataPath)
	assert.Equal(t, "s3cret", cfg.Storage.SecretKey)
	assert.Equal(t, "http://localhost:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "db/metadata.json", cfg.Adapter.MetadataPath)
	assert.Equal(t, "server/admin.php?action=serverConfig", cfg.Adapter.ConfigEndpoint)
	assert.Equal(t, time.Second, cfg.Workers.MetadataReloadDebounce)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	// Act
	cfg, err := parseJSON("definitely-does-not-exist.json")

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	// Arrange
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"server":{"request_timeout":"later"}}`), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
}

func TestDuration_JSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Duration
	}{
		{name: "string", input: `"1m30s"`, expected: 90 * time.Second},
		{name: "nanoseconds number", input: `1000`, expected: 1000 * time.Nanosecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			require.NoError(t, json.Unmarshal([]byte(tt.input), &d))
			assert.Equal(t, tt.expected, time.Duration(d))
		})
	}

	data, err := json.Marshal(Duration(2 * time.Second))
	require.NoError(t, err)
	assert.JSONEq(t, `"2s"`, string(data))
}
