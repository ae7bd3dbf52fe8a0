// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-inventory-keeper/internal/logger"
	"github.com/MKhiriev/go-inventory-keeper/models"
)

var itemRowColumns = []string{"id", "name", "category", "quantity", "defective_quantity"}

func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return &DB{
		DB:                 conn,
		builder:            sqliteBuilder,
		errorClassificator: NewSQLiteErrorClassifier(),
		logger:             logger.Nop(),
	}, mock
}

func newTestItemRepo(t *testing.T) (*itemRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newMockDB(t)
	return &itemRepository{DB: db, logger: logger.Nop()}, mock
}

func TestItemRepository_AddItem(t *testing.T) {
	repo, mock := newTestItemRepo(t)

	mock.ExpectQuery("INSERT INTO Items").
		WithArgs("Wrench", 2, 15, 0).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	id, err := repo.AddItem(context.Background(), models.Item{Name: "Wrench", Category: models.CategoryParts, Quantity: 15})
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestItemRepository_AddItem_DBError(t *testing.T) {
	repo, mock := newTestItemRepo(t)

	mock.ExpectQuery("INSERT INTO Items").WillReturnError(errors.New("disk full"))

	_, err := repo.AddItem(context.Background(), models.Item{Name: "Wrench", Category: models.CategoryParts})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestItemRepository_GetItem(t *testing.T) {
	repo, mock := newTestItemRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM Items WHERE id = ?").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(itemRowColumns).AddRow(1, "Wrench", 2, 10, 5))

	item, err := repo.GetItem(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, models.Item{ID: 1, Name: "Wrench", Category: models.CategoryParts, Quantity: 10, DefectiveQuantity: 5}, *item)
}

func TestItemRepository_GetItem_NotFound(t *testing.T) {
	repo, mock := newTestItemRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM Items").
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows(itemRowColumns))

	item, err := repo.GetItem(context.Background(), 42)
	require.NoError(t, err)
	assert.Nil(t, item)
}

func TestItemRepository_GetItem_NegativeCounterInRow(t *testing.T) {
	repo, mock := newTestItemRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM Items").
		WillReturnRows(sqlmock.NewRows(itemRowColumns).AddRow(1, "Wrench", 2, -1, 0))

	item, err := repo.GetItem(context.Background(), 1)
	assert.Nil(t, item)
	assert.ErrorIs(t, err, ErrScanningRow)
	assert.ErrorIs(t, err, models.ErrNegativeQuantity)
}

func TestItemRepository_GetItem_QueryError(t *testing.T) {
	repo, mock := newTestItemRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM Items").WillReturnError(sql.ErrConnDone)

	item, err := repo.GetItem(context.Background(), 1)
	assert.Nil(t, item)
	assert.ErrorIs(t, err, sql.ErrConnDone)
}

func TestItemRepository_GetItemByName(t *testing.T) {
	repo, mock := newTestItemRepo(t)

	mock.ExpectQuery(`WHERE LOWER\(name\) = LOWER\(\?\)`).
		WithArgs("WRENCH").
		WillReturnRows(sqlmock.NewRows(itemRowColumns).AddRow(3, "Wrench", 1, 4, 0))

	item, err := repo.GetItemByName(context.Background(), "WRENCH")
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, int64(3), item.ID)
	assert.Equal(t, "Wrench", item.Name)
}

func TestItemRepository_GetAllItems(t *testing.T) {
	repo, mock := newTestItemRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM Items ORDER BY id").
		WillReturnRows(sqlmock.NewRows(itemRowColumns).
			AddRow(1, "Hammer", 1, 3, 0).
			AddRow(2, "Bolt", 2, 100, 2))

	items, err := repo.GetAllItems(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Hammer", items[0].Name)
	assert.Equal(t, models.CategoryParts, items[1].Category)
	assert.Equal(t, 102, items[1].Total())
}

func TestItemRepository_GetAllItems_Empty(t *testing.T) {
	repo, mock := newTestItemRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM Items").
		WillReturnRows(sqlmock.NewRows(itemRowColumns))

	items, err := repo.GetAllItems(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestItemRepository_GetAllItems_RowError(t *testing.T) {
	repo, mock := newTestItemRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM Items").
		WillReturnRows(sqlmock.NewRows(itemRowColumns).
			AddRow(1, "Hammer", 1, 3, 0).
			RowError(0, errors.New("io")))

	_, err := repo.GetAllItems(context.Background())
	assert.ErrorIs(t, err, ErrScanningRows)
}

func TestItemRepository_UpdateItem(t *testing.T) {
	repo, mock := newTestItemRepo(t)

	mock.ExpectExec("UPDATE Items SET").
		WithArgs("Wrench", 2, 10, 5, int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateItem(context.Background(), models.Item{ID: 1, Name: "Wrench", Category: models.CategoryParts, Quantity: 10, DefectiveQuantity: 5})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestItemRepository_UpdateItem_NotFound(t *testing.T) {
	repo, mock := newTestItemRepo(t)

	mock.ExpectExec("UPDATE Items SET").WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateItem(context.Background(), models.Item{ID: 9, Name: "Ghost", Category: models.CategoryTools})
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestItemRepository_UpdateItem_DBError(t *testing.T) {
	repo, mock := newTestItemRepo(t)

	mock.ExpectExec("UPDATE Items SET").WillReturnError(errors.New("locked"))

	err := repo.UpdateItem(context.Background(), models.Item{ID: 1, Name: "Wrench", Category: models.CategoryParts})
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestItemRepository_DeleteItem(t *testing.T) {
	repo, mock := newTestItemRepo(t)

	mock.ExpectExec("DELETE FROM Items WHERE id = ?").
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.DeleteItem(context.Background(), 5))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestItemRepository_DeleteItem_DBError(t *testing.T) {
	repo, mock := newTestItemRepo(t)

	mock.ExpectExec("DELETE FROM Items").WillReturnError(errors.New("locked"))

	assert.ErrorIs(t, repo.DeleteItem(context.Background(), 5), ErrExecutingStatement)
}
