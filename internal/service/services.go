package service

import (
	"github.com/MKhiriev/go-inventory-keeper/internal/logger"
	"github.com/MKhiriev/go-inventory-keeper/internal/store"
	"github.com/MKhiriev/go-inventory-keeper/internal/validators"
)

type Services struct {
	AuthService    AuthService
	AccountService AccountService
	ItemService    ItemService
}

func NewServices(storages *store.Storages, logger *logger.Logger) *Services {
	validator := validators.NewInventoryValidator()
	authService := NewAuthService(storages.AccountRepository, logger)

	return &Services{
		AuthService:    authService,
		AccountService: NewAccountService(storages.AccountRepository, authService, validator, logger),
		ItemService:    NewItemService(storages.ItemRepository, validator, logger),
	}
}
