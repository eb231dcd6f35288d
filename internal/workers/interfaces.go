// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the server's background workers.
package workers

import "context"

// Worker is a background job bound to the server lifetime. Run blocks until
// ctx is cancelled or the worker cannot continue.
type Worker interface {
	Run(ctx context.Context) error
}

// Reloader re-reads a resource after its backing file changed.
type Reloader interface {
	Reload(ctx context.Context) error
}
