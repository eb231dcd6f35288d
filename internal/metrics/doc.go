// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics defines the observability hooks of the admin server and a
// Prometheus implementation served at /metrics.
package metrics
