// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport of the netalert admin server.
//
// It serves the metadata document, the server configuration endpoint used
// by the console, the HTML admin page, the option upsert and appearance
// endpoints, version information and Prometheus metrics. Request tracing,
// access logging, metrics and response compression are handled by
// middleware before requests reach the service layer.
package http
