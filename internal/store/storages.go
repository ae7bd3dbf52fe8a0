// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-inventory-keeper/internal/config"
	"github.com/MKhiriev/go-inventory-keeper/internal/logger"
)

// Storages groups the repositories that share one database connection.
type Storages struct {
	ItemRepository    ItemRepository
	AccountRepository AccountRepository

	db *DB
}

// NewStorages connects to the configured datastore, bootstraps the schema and
// builds the repositories on top of it.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	var (
		db  *DB
		err error
	)

	switch cfg.DB.Driver {
	case config.DriverSQLite, "":
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	case config.DriverPostgres:
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.DB.Driver)
	}
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("failed to bootstrap schema")
		db.Close()
		return nil, fmt.Errorf("failed to bootstrap schema: %w", err)
	}

	return newStorages(db, log), nil
}

func newStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		ItemRepository:    NewItemRepository(db, log),
		AccountRepository: NewAccountRepository(db, log),
		db:                db,
	}
}

// Close releases the underlying connection.
func (s *Storages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
