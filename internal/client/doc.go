// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive application runtime.
//
// It prepares the datastore for first use and runs the terminal UI for the
// lifetime of the process.
package client
