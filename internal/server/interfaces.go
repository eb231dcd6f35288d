// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

// Server defines the lifecycle of the admin server.
type Server interface {
	// RunServer serves requests and blocks until a stop signal arrives and
	// shutdown completes.
	RunServer()

	// Shutdown gracefully stops the HTTP listener.
	Shutdown()
}
