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

// accountRepository is the SQL implementation of [AccountRepository].
//
// Driver errors are mapped through the connection's [ErrorClassificator] so
// a duplicate username is reported as [ErrUsernameAlreadyExists] on both
// SQLite and PostgreSQL.
type accountRepository struct {
	*DB
	logger *logger.Logger
}

// NewAccountRepository constructs an [AccountRepository] over db.
func NewAccountRepository(db *DB, logger *logger.Logger) AccountRepository {
	logger.Debug().Msg("creating account repository")
	return &accountRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateAccount inserts a new account and returns it as stored, re-read by
// username and password hash.
//
// Error handling:
//   - unique violation on username → [ErrUsernameAlreadyExists].
//   - any other driver-level error → wrapped [ErrExecutingStatement].
func (r *accountRepository) CreateAccount(ctx context.Context, username, passwordHash string, permission models.Permission) (*models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertAccountQuery(r.builder, username, passwordHash, permission)
	if err != nil {
		log.Err(err).Str("func", "accountRepository.CreateAccount").Msg("error building insert query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "accountRepository.CreateAccount").
			Str("username", username).
			Msg("failed to insert account")

		switch r.errorClassificator.Classify(err) {
		case UniqueViolation:
			return nil, ErrUsernameAlreadyExists
		default:
			return nil, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	account, err := r.GetAccountByCredentials(ctx, username, passwordHash)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, fmt.Errorf("%w: created account %q was not found", ErrExecutingQuery, username)
	}

	return account, nil
}

// GetAccountByCredentials returns the account with exactly this username and
// password hash, or nil when there is none.
func (r *accountRepository) GetAccountByCredentials(ctx context.Context, username, passwordHash string) (*models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAccountByCredentialsQuery(r.builder, username, passwordHash)
	if err != nil {
		log.Err(err).Str("func", "accountRepository.GetAccountByCredentials").Msg("error building select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		account    models.Account
		permission int
	)
	err = r.DB.QueryRowContext(ctx, query, args...).
		Scan(&account.ID, &account.Username, &account.PasswordHash, &permission)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		log.Err(err).
			Str("func", "accountRepository.GetAccountByCredentials").
			Str("username", username).
			Msg("failed to get account")
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	account.Permission = models.Permission(permission)

	return &account, nil
}

// DeleteAccount removes the account with the given id.
func (r *accountRepository) DeleteAccount(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteAccountQuery(r.builder, id)
	if err != nil {
		log.Err(err).Str("func", "accountRepository.DeleteAccount").Msg("error building delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "accountRepository.DeleteAccount").Int64("id", id).Msg("failed to delete account")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// CountAccounts returns the number of stored accounts.
func (r *accountRepository) CountAccounts(ctx context.Context) (int, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCountAccountsQuery(r.builder)
	if err != nil {
		log.Err(err).Str("func", "accountRepository.CountAccounts").Msg("error building count query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int
	if err = r.DB.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).Str("func", "accountRepository.CountAccounts").Msg("failed to count accounts")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}
