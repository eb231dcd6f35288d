// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metadata decodes and encodes the metadata document that describes
// the selectable options (owners, device types, locations) and extra
// checkboxes of the admin console.
//
// Decoding preserves the order of groups and items as they appear in the
// document and fails fast with [ErrMalformedMetadata] when the shape is wrong,
// so callers never populate controls from a partially valid document.
package metadata
