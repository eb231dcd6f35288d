// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the admin HTTP server together with the background
// workers, and shuts both down on SIGTERM, SIGINT or SIGQUIT.
package server
