// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package form holds the presentation-independent state of the admin console
// page: dropdown and checkbox population from the metadata document and the
// typed table of server configuration fields used to read and prefill the
// settings form.
//
// Both the terminal console and the server-rendered HTML page are built on
// [Page], so population and payload rules are identical for the two.
package form
