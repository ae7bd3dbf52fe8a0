// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "os"

// Supported values for [DB.Driver].
const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "postgres"
)

// StructuredConfig is the top-level configuration container for the
// go-inventory-keeper application. It aggregates all sub-configurations and
// is populated by merging defaults, an optional JSON file and environment
// variables.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings.
	App App `envPrefix:"APP_"`

	// Storage holds the datastore settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Log holds the log sink settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// DefaultAdminUsername is the login of the administrator created when the
	// datastore has no accounts yet.
	// Env: APP_DEFAULT_ADMIN_USERNAME
	DefaultAdminUsername string `env:"DEFAULT_ADMIN_USERNAME"`

	// DefaultAdminPassword is the password of that administrator.
	// Env: APP_DEFAULT_ADMIN_PASSWORD
	DefaultAdminPassword string `env:"DEFAULT_ADMIN_PASSWORD"`
}

// Storage groups the configuration for the persistence backend.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational datastore.
type DB struct {
	// Driver selects the database/sql driver: "sqlite3" or "postgres".
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER"`

	// DSN is the SQLite file path (or ":memory:") or the PostgreSQL
	// connection string.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Log holds settings for the application log.
type Log struct {
	// File is the path of the JSON log file.
	// Env: LOG_FILE
	File string `env:"FILE"`

	// Level is a zerolog level name (debug, info, warn, error).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// defaultConfig returns the values used when no other source sets a field.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			DefaultAdminUsername: "admin",
			DefaultAdminPassword: "admin",
		},
		Storage: Storage{
			DB: DB{
				Driver: DriverSQLite,
				DSN:    "inventory.db",
			},
		},
		Log: Log{
			File:  "inventory.log",
			Level: "info",
		},
	}
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Built-in defaults
//  2. JSON file (path taken from the CONFIG environment variable)
//  3. Environment variables
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withJSON(os.Getenv("CONFIG")).
		withEnv().
		build()
}
