// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/netalert/internal/config"
	"github.com/MKhiriev/netalert/internal/logger"
	"github.com/MKhiriev/netalert/internal/metadata"
	"github.com/MKhiriev/netalert/internal/utils"
	"github.com/MKhiriev/netalert/models"
)

const (
	appearancePath = "/api/appearance"
	metadataAPI    = "/api/metadata/"
	testAlertPath  = "/api/alerts/test"
)

type httpAdminAdapter struct {
	client *utils.HTTPClient

	metadataPath   string
	configEndpoint string

	logger *logger.Logger
}

// NewHTTPAdminAdapter constructs an HTTP implementation of [AdminAdapter].
// The metadata path and configuration endpoint are resolved against
// adapterCfg.HTTPAddress.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPAdminAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (AdminAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpAdminAdapter{
		client:         client,
		metadataPath:   normalizePath(adapterCfg.MetadataPath),
		configEndpoint: normalizePath(adapterCfg.ConfigEndpoint),
		logger:         logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// normalizePath makes p absolute relative to the base URL. Leading "../"
// segments are dropped: the console resolves them against the admin root.
func normalizePath(p string) string {
	p = strings.TrimSpace(p)
	for strings.HasPrefix(p, "../") {
		p = strings.TrimPrefix(p, "../")
	}
	return "/" + strings.TrimLeft(p, "/")
}

func (h *httpAdminAdapter) FetchMetadata(ctx context.Context) (models.Metadata, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		Get(h.metadataPath)
	if err != nil {
		return models.Metadata{}, fmt.Errorf("fetch metadata request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Metadata{}, err
	}

	md, err := metadata.Parse(resp.Body())
	if err != nil {
		return models.Metadata{}, fmt.Errorf("fetch metadata: %w", err)
	}

	h.logger.Debug().Str("path", h.metadataPath).Int("groups", len(md.Groups)).Msg("metadata fetched")
	return md, nil
}

func (h *httpAdminAdapter) FetchServerConfig(ctx context.Context) (models.ServerConfig, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		Get(h.configEndpoint)
	if err != nil {
		return models.ServerConfig{}, fmt.Errorf("fetch server config request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ServerConfig{}, err
	}

	var cfg models.ServerConfig
	if err = json.Unmarshal(resp.Body(), &cfg); err != nil {
		return models.ServerConfig{}, fmt.Errorf("%w: server config: %w", ErrDecodingResponse, err)
	}
	return cfg, nil
}

func (h *httpAdminAdapter) PatchServerConfig(ctx context.Context, patch models.ServerConfigPatch) (models.ServerConfig, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(patch).
		Patch(h.configEndpoint)
	if err != nil {
		return models.ServerConfig{}, fmt.Errorf("patch server config request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ServerConfig{}, err
	}

	var cfg models.ServerConfig
	if err = json.Unmarshal(resp.Body(), &cfg); err != nil {
		return models.ServerConfig{}, fmt.Errorf("%w: server config: %w", ErrDecodingResponse, err)
	}
	return cfg, nil
}

func (h *httpAdminAdapter) UpsertMetadataOption(ctx context.Context, upsert models.OptionUpsert) (models.Metadata, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(upsert.Record).
		Post(metadataAPI + url.PathEscape(upsert.Group))
	if err != nil {
		return models.Metadata{}, fmt.Errorf("upsert metadata request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Metadata{}, err
	}

	md, err := metadata.Parse(resp.Body())
	if err != nil {
		return models.Metadata{}, fmt.Errorf("upsert metadata: %w", err)
	}
	return md, nil
}

func (h *httpAdminAdapter) UpdateAppearance(ctx context.Context) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]any{}).
		Patch(appearancePath)
	if err != nil {
		return fmt.Errorf("update appearance request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpAdminAdapter) SendTestAlert(ctx context.Context) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Post(testAlertPath)
	if err != nil {
		return fmt.Errorf("send test alert request: %w", err)
	}

	return mapHTTPError(resp)
}
