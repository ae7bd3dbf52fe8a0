// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"

	"github.com/MKhiriev/go-inventory-keeper/internal/logger"
)

// migrationLogger forwards goose output to the application log so nothing is
// printed on the terminal the UI is about to take over.
type migrationLogger struct {
	log *logger.Logger
}

func newMigrationLogger(log *logger.Logger) *migrationLogger {
	return &migrationLogger{log: log}
}

func (m *migrationLogger) Printf(format string, v ...any) {
	m.log.Debug().Str("component", "migrations").Msgf(strings.TrimSpace(format), v...)
}

func (m *migrationLogger) Fatalf(format string, v ...any) {
	m.log.Fatal().Str("component", "migrations").Msgf(strings.TrimSpace(format), v...)
}
