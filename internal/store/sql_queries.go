// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-inventory-keeper/models"
)

const (
	itemsTable    = "Items"
	accountsTable = "Accounts"
)

const (
	itemIDColumn                = "id"
	itemNameColumn              = "name"
	itemCategoryColumn          = "category"
	itemQuantityColumn          = "quantity"
	itemDefectiveQuantityColumn = "defective_quantity"
)

const (
	accountIDColumn           = "id"
	accountUsernameColumn     = "username"
	accountPasswordHashColumn = "password_hash"
	accountPermissionColumn   = "permission"
)

var itemColumns = []string{
	itemIDColumn,
	itemNameColumn,
	itemCategoryColumn,
	itemQuantityColumn,
	itemDefectiveQuantityColumn,
}

var accountColumns = []string{
	accountIDColumn,
	accountUsernameColumn,
	accountPasswordHashColumn,
	accountPermissionColumn,
}

// buildInsertItemQuery returns the INSERT for a new item. The generated id is
// read back through RETURNING, which both SQLite (3.35+) and PostgreSQL
// support.
func buildInsertItemQuery(b sq.StatementBuilderType, item models.Item) (string, []any, error) {
	return b.Insert(itemsTable).
		Columns(itemNameColumn, itemCategoryColumn, itemQuantityColumn, itemDefectiveQuantityColumn).
		Values(item.Name, int(item.Category), item.Quantity, item.DefectiveQuantity).
		Suffix("RETURNING " + itemIDColumn).
		ToSql()
}

func buildSelectItemByIDQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Select(itemColumns...).
		From(itemsTable).
		Where(sq.Eq{itemIDColumn: id}).
		ToSql()
}

// buildSelectItemByNameQuery matches names case-insensitively.
func buildSelectItemByNameQuery(b sq.StatementBuilderType, name string) (string, []any, error) {
	return b.Select(itemColumns...).
		From(itemsTable).
		Where(sq.Expr("LOWER("+itemNameColumn+") = LOWER(?)", name)).
		Limit(1).
		ToSql()
}

func buildSelectAllItemsQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(itemColumns...).
		From(itemsTable).
		OrderBy(itemIDColumn).
		ToSql()
}

// buildUpdateItemQuery overwrites every mutable column of the row with the
// given id.
func buildUpdateItemQuery(b sq.StatementBuilderType, item models.Item) (string, []any, error) {
	return b.Update(itemsTable).
		Set(itemNameColumn, item.Name).
		Set(itemCategoryColumn, int(item.Category)).
		Set(itemQuantityColumn, item.Quantity).
		Set(itemDefectiveQuantityColumn, item.DefectiveQuantity).
		Where(sq.Eq{itemIDColumn: item.ID}).
		ToSql()
}

func buildDeleteItemQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Delete(itemsTable).
		Where(sq.Eq{itemIDColumn: id}).
		ToSql()
}

func buildInsertAccountQuery(b sq.StatementBuilderType, username, passwordHash string, permission models.Permission) (string, []any, error) {
	return b.Insert(accountsTable).
		Columns(accountUsernameColumn, accountPasswordHashColumn, accountPermissionColumn).
		Values(username, passwordHash, int(permission)).
		ToSql()
}

// buildSelectAccountByCredentialsQuery matches username and digest exactly.
func buildSelectAccountByCredentialsQuery(b sq.StatementBuilderType, username, passwordHash string) (string, []any, error) {
	return b.Select(accountColumns...).
		From(accountsTable).
		Where(sq.Eq{
			accountUsernameColumn:     username,
			accountPasswordHashColumn: passwordHash,
		}).
		Limit(1).
		ToSql()
}

func buildDeleteAccountQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Delete(accountsTable).
		Where(sq.Eq{accountIDColumn: id}).
		ToSql()
}

func buildCountAccountsQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select("COUNT(*)").
		From(accountsTable).
		ToSql()
}
