// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-inventory-keeper/internal/logger"
	"github.com/MKhiriev/go-inventory-keeper/models"
)

// itemRepository is the SQL implementation of [ItemRepository]. Every write
// is a single auto-committed statement.
type itemRepository struct {
	*DB
	logger *logger.Logger
}

// NewItemRepository constructs an [ItemRepository] over db.
func NewItemRepository(db *DB, logger *logger.Logger) ItemRepository {
	logger.Debug().Msg("creating item repository")
	return &itemRepository{
		DB:     db,
		logger: logger,
	}
}

// AddItem inserts item and returns the id assigned by the datastore. The ID
// field of item is ignored.
func (r *itemRepository) AddItem(ctx context.Context, item models.Item) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertItemQuery(r.builder, item)
	if err != nil {
		log.Err(err).Str("func", "itemRepository.AddItem").Msg("error building insert query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var id int64
	if err = r.DB.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		log.Err(err).
			Str("func", "itemRepository.AddItem").
			Str("name", item.Name).
			Msg("failed to insert item")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return id, nil
}

// GetItem returns the item with the given id, or nil when there is none.
func (r *itemRepository) GetItem(ctx context.Context, id int64) (*models.Item, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectItemByIDQuery(r.builder, id)
	if err != nil {
		log.Err(err).Str("func", "itemRepository.GetItem").Msg("error building select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	item, err := scanItem(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "itemRepository.GetItem").Int64("id", id).Msg("failed to get item")
		return nil, err
	}

	return item, nil
}

// GetItemByName returns the item whose name equals name ignoring case, or
// nil when there is none.
func (r *itemRepository) GetItemByName(ctx context.Context, name string) (*models.Item, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectItemByNameQuery(r.builder, name)
	if err != nil {
		log.Err(err).Str("func", "itemRepository.GetItemByName").Msg("error building select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	item, err := scanItem(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "itemRepository.GetItemByName").Str("name", name).Msg("failed to get item")
		return nil, err
	}

	return item, nil
}

// GetAllItems returns every item ordered by id. The result is never nil.
func (r *itemRepository) GetAllItems(ctx context.Context) ([]models.Item, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAllItemsQuery(r.builder)
	if err != nil {
		log.Err(err).Str("func", "itemRepository.GetAllItems").Msg("error building select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "itemRepository.GetAllItems").Msg("failed to query items")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.Item, 0)
	for rows.Next() {
		var (
			id                            int64
			name                          string
			category, quantity, defective int
		)
		if err = rows.Scan(&id, &name, &category, &quantity, &defective); err != nil {
			log.Err(err).Str("func", "itemRepository.GetAllItems").Msg("failed to scan item row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		item, itemErr := models.NewItem(id, name, models.Category(category), quantity, defective)
		if itemErr != nil {
			log.Err(itemErr).Str("func", "itemRepository.GetAllItems").Int64("id", id).Msg("stored item violates invariants")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, itemErr)
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "itemRepository.GetAllItems").Msg("rows iteration error")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return items, nil
}

// UpdateItem overwrites the stored row with item's values. It returns
// [ErrItemNotFound] when no row has item.ID.
func (r *itemRepository) UpdateItem(ctx context.Context, item models.Item) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateItemQuery(r.builder, item)
	if err != nil {
		log.Err(err).Str("func", "itemRepository.UpdateItem").Msg("error building update query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "itemRepository.UpdateItem").Int64("id", item.ID).Msg("failed to update item")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "itemRepository.UpdateItem").Msg("failed to read affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrItemNotFound
	}

	return nil
}

// DeleteItem removes the item with the given id. Deleting a missing id is
// not an error.
func (r *itemRepository) DeleteItem(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteItemQuery(r.builder, id)
	if err != nil {
		log.Err(err).Str("func", "itemRepository.DeleteItem").Msg("error building delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "itemRepository.DeleteItem").Int64("id", id).Msg("failed to delete item")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// scanItem reads one item row. sql.ErrNoRows yields (nil, nil).
func scanItem(row *sql.Row) (*models.Item, error) {
	var (
		id                            int64
		name                          string
		category, quantity, defective int
	)
	if err := row.Scan(&id, &name, &category, &quantity, &defective); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	item, err := models.NewItem(id, name, models.Category(category), quantity, defective)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return &item, nil
}
