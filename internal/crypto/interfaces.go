// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto encrypts secrets stored by the admin server.
package crypto

// Sealer encrypts short secrets for storage.
type Sealer interface {
	// Seal encrypts plaintext. The empty string is stored as is.
	Seal(plaintext string) (string, error)

	// Open reverses Seal. Values without the sealed prefix are returned
	// unchanged, so secrets written before a key was configured stay
	// readable.
	Open(stored string) (string, error)
}
