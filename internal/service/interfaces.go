package service

import (
	"context"

	"github.com/MKhiriev/go-inventory-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService checks credentials against stored accounts.
type AuthService interface {
	HashPassword(password string) string
	FindAccount(ctx context.Context, username, password string) (*models.Account, error)
}

// AccountService creates and removes accounts.
type AccountService interface {
	CreateAccount(ctx context.Context, username, password string, permission models.Permission) (*models.Account, error)
	DeleteAccount(ctx context.Context, account models.Account) error
	EnsureDefaultAdmin(ctx context.Context, username, password string) (bool, error)
}

// ItemService runs inventory commands. Quantity commands take the item by
// value, apply the change to that copy and persist it with a single update.
type ItemService interface {
	CreateItem(ctx context.Context, name string, category models.Category, quantity int) (models.Item, error)
	GetItem(ctx context.Context, id int64) (*models.Item, error)
	FindItemByName(ctx context.Context, name string) (*models.Item, error)
	GetAllItems(ctx context.Context) ([]models.Item, error)

	IncreaseQuantity(ctx context.Context, item models.Item, amount int) (models.Item, error)
	DecreaseQuantity(ctx context.Context, item models.Item, amount int) (models.Item, error)
	MarkDefective(ctx context.Context, item models.Item, amount int) (models.Item, error)
	RepairDefective(ctx context.Context, item models.Item, amount int) (models.Item, error)

	DeleteItem(ctx context.Context, id int64) error
}
