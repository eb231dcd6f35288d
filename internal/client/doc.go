// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client runs the admin console process: it hands the terminal to the
// console UI and stops it on termination signals.
package client
