// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	ErrEmptySecretKey = errors.New("secret key is empty")
	ErrSealingSecret  = errors.New("cannot encrypt secret")
	ErrOpeningSecret  = errors.New("cannot decrypt secret")
)
