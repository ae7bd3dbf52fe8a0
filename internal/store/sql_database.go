// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-inventory-keeper/internal/logger"
	"github.com/MKhiriev/go-inventory-keeper/migrations"
)

// DB wraps the single shared *sql.DB together with the dialect-specific
// pieces the repositories need: a squirrel statement builder with the right
// placeholder format and an [ErrorClassificator] for driver errors.
type DB struct {
	*sql.DB
	dialect            string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate creates the Items and Accounts tables if they are missing.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect, newMigrationLogger(db.logger))
}

// Dialect returns the migrations dialect name of the connection.
func (db *DB) Dialect() string {
	return db.dialect
}
