package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-inventory-keeper/internal/logger"
	"github.com/MKhiriev/go-inventory-keeper/internal/store"
	"github.com/MKhiriev/go-inventory-keeper/internal/validators"
	"github.com/MKhiriev/go-inventory-keeper/models"
)

type accountService struct {
	accountRepository store.AccountRepository
	authService       AuthService
	validator         validators.Validator
	logger            *logger.Logger
}

func NewAccountService(accountRepository store.AccountRepository, authService AuthService, validator validators.Validator, logger *logger.Logger) AccountService {
	logger.Debug().Msg("creating account service")
	return &accountService{
		accountRepository: accountRepository,
		authService:       authService,
		validator:         validator,
		logger:            logger,
	}
}

// CreateAccount stores a new account with the digest of password.
// A taken username yields [ErrUsernameAlreadyExists].
func (s *accountService) CreateAccount(ctx context.Context, username, password string, permission models.Permission) (*models.Account, error) {
	log := logger.FromContext(ctx)

	candidate := models.Account{Username: username, Permission: permission}
	if err := s.validator.Validate(ctx, candidate, validators.FieldUsername, validators.FieldPermission); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	candidate.PasswordHash = s.authService.HashPassword(password)
	if err := s.validator.Validate(ctx, candidate, validators.FieldPasswordHash); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	account, err := s.accountRepository.CreateAccount(ctx, username, candidate.PasswordHash, permission)
	if err != nil {
		if errors.Is(err, store.ErrUsernameAlreadyExists) {
			return nil, ErrUsernameAlreadyExists
		}
		log.Err(err).Str("func", "accountService.CreateAccount").Str("username", username).Msg("failed to create account")
		return nil, err
	}

	log.Info().
		Str("func", "accountService.CreateAccount").
		Int64("account_id", account.ID).
		Str("permission", account.Permission.String()).
		Msg("account created")

	return account, nil
}

// DeleteAccount removes account from the store.
func (s *accountService) DeleteAccount(ctx context.Context, account models.Account) error {
	log := logger.FromContext(ctx)

	if err := s.accountRepository.DeleteAccount(ctx, account.ID); err != nil {
		log.Err(err).Str("func", "accountService.DeleteAccount").Int64("account_id", account.ID).Msg("failed to delete account")
		return err
	}

	log.Info().Str("func", "accountService.DeleteAccount").Int64("account_id", account.ID).Msg("account deleted")
	return nil
}

// EnsureDefaultAdmin creates an ADMIN account from the given credentials
// when no account exists yet. It reports whether an account was created.
// An empty username disables the bootstrap.
func (s *accountService) EnsureDefaultAdmin(ctx context.Context, username, password string) (bool, error) {
	if username == "" {
		return false, nil
	}

	count, err := s.accountRepository.CountAccounts(ctx)
	if err != nil {
		s.logger.Err(err).Str("func", "accountService.EnsureDefaultAdmin").Msg("failed to count accounts")
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	if _, err = s.CreateAccount(ctx, username, password, models.PermissionAdmin); err != nil {
		return false, err
	}

	s.logger.Warn().
		Str("func", "accountService.EnsureDefaultAdmin").
		Str("username", username).
		Msg("no accounts found, default administrator created")

	return true, nil
}
