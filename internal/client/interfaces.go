// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client is a runnable console process.
type Client interface {
	// Run blocks until the console exits.
	Run() error
}

// UI is the interactive front end driven by the App. Run returns when the
// user quits or ctx is cancelled.
type UI interface {
	Run(ctx context.Context) error
}
