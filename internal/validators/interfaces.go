// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds the business rules applied to server
// configuration updates and metadata option upserts before they reach
// storage.
//
// Validators are injected into the validating service wrappers, keeping the
// rules out of the transport and storage layers.
package validators

import "context"

// Validator validates an arbitrary input value.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
