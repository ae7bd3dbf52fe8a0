// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-inventory-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ItemRepository persists inventory items in the Items table. Lookups that
// find nothing return a nil item and a nil error.
type ItemRepository interface {
	AddItem(ctx context.Context, item models.Item) (int64, error)
	GetItem(ctx context.Context, id int64) (*models.Item, error)
	GetItemByName(ctx context.Context, name string) (*models.Item, error)
	GetAllItems(ctx context.Context) ([]models.Item, error)
	UpdateItem(ctx context.Context, item models.Item) error
	DeleteItem(ctx context.Context, id int64) error
}

// AccountRepository persists user accounts in the Accounts table.
type AccountRepository interface {
	CreateAccount(ctx context.Context, username, passwordHash string, permission models.Permission) (*models.Account, error)
	GetAccountByCredentials(ctx context.Context, username, passwordHash string) (*models.Account, error)
	DeleteAccount(ctx context.Context, id int64) error
	CountAccounts(ctx context.Context) (int, error)
}
