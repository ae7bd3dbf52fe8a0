// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. JSON config file named by the CONFIG environment variable
//  3. Environment variables
//
// The tool takes no command-line flags. The main entry point is
// [GetStructuredConfig].
package config
