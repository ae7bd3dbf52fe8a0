package service

import (
	"context"

	"github.com/MKhiriev/go-inventory-keeper/internal/logger"
	"github.com/MKhiriev/go-inventory-keeper/internal/store"
	"github.com/MKhiriev/go-inventory-keeper/internal/utils"
	"github.com/MKhiriev/go-inventory-keeper/models"
)

type authService struct {
	accountRepository store.AccountRepository
	logger            *logger.Logger
}

func NewAuthService(accountRepository store.AccountRepository, logger *logger.Logger) AuthService {
	logger.Debug().Msg("creating auth service")
	return &authService{
		accountRepository: accountRepository,
		logger:            logger,
	}
}

// HashPassword returns the unsalted SHA-256 hex digest stored for password.
func (a *authService) HashPassword(password string) string {
	return utils.HashPassword(password)
}

// FindAccount returns the account matching username and the digest of
// password exactly, or nil when the credentials match nothing.
func (a *authService) FindAccount(ctx context.Context, username, password string) (*models.Account, error) {
	log := logger.FromContext(ctx)

	account, err := a.accountRepository.GetAccountByCredentials(ctx, username, a.HashPassword(password))
	if err != nil {
		log.Err(err).Str("func", "authService.FindAccount").Str("username", username).Msg("credential lookup failed")
		return nil, err
	}
	if account == nil {
		log.Info().Str("func", "authService.FindAccount").Str("username", username).Msg("invalid credentials")
		return nil, nil
	}

	return account, nil
}
