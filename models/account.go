// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// Permission is the access level granted to an [Account].
// The numeric values are persisted in the Accounts.permission column.
type Permission int

const (
	// PermissionAdmin grants full control, including account creation.
	PermissionAdmin Permission = 1

	// PermissionWrite grants inventory editing.
	PermissionWrite Permission = 2

	// PermissionRead grants view-only access to the inventory.
	PermissionRead Permission = 3
)

// Valid reports whether p is one of the known permission levels.
func (p Permission) Valid() bool {
	return p == PermissionAdmin || p == PermissionWrite || p == PermissionRead
}

// IsAdmin reports whether p is [PermissionAdmin].
func (p Permission) IsAdmin() bool {
	return p == PermissionAdmin
}

// CanEditInventory reports whether p allows creating, changing and deleting
// items.
func (p Permission) CanEditInventory() bool {
	return p == PermissionAdmin || p == PermissionWrite
}

func (p Permission) String() string {
	switch p {
	case PermissionAdmin:
		return "ADMIN"
	case PermissionWrite:
		return "WRITE"
	case PermissionRead:
		return "READ"
	default:
		return fmt.Sprintf("Permission(%d)", int(p))
	}
}

// Account represents a user of the inventory tool.
//
// Accounts are immutable values: they are created once, read on login and
// deleted, never updated in place.
type Account struct {
	// ID is assigned by the store.
	ID int64

	// Username is unique across all accounts.
	Username string

	// PasswordHash is the hex-encoded SHA-256 digest of the password.
	PasswordHash string

	// Permission controls which menu actions are available.
	Permission Permission
}

// String omits the password hash so accounts can be logged safely.
func (a Account) String() string {
	return fmt.Sprintf("Account(id=%d, username=%q, permission=%s)", a.ID, a.Username, a.Permission)
}
