// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-inventory-keeper/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldItemID targets the store-assigned id of an existing item.
	FieldItemID = "item_id"

	// FieldName targets the item name, which must not be blank.
	FieldName = "name"

	// FieldCategory targets the item category code.
	FieldCategory = "category"

	// FieldQuantity targets the working unit counter.
	FieldQuantity = "quantity"

	// FieldDefectiveQuantity targets the defective unit counter.
	FieldDefectiveQuantity = "defective_quantity"

	// FieldUsername targets the account username.
	FieldUsername = "username"

	// FieldPermission targets the account permission level.
	FieldPermission = "permission"

	// FieldPasswordHash targets the stored password digest.
	FieldPasswordHash = "password_hash"
)

// passwordHashLength is the length of a hex-encoded SHA-256 digest.
const passwordHashLength = 64

// InventoryValidator implements [Validator] for [models.Item] and
// [models.Account], in value or pointer form.
type InventoryValidator struct{}

// NewInventoryValidator returns an [InventoryValidator] as a [Validator].
func NewInventoryValidator() Validator {
	return &InventoryValidator{}
}

// Validate dispatches on the dynamic type of obj. Without field names a
// default set is checked: every item field except the id, and every account
// field except the hash.
func (v *InventoryValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Item:
		return v.validateItem(ctx, value, fields...)
	case *models.Item:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateItem(ctx, *value, fields...)

	case models.Account:
		return v.validateAccount(ctx, value, fields...)
	case *models.Account:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateAccount(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *InventoryValidator) validateItem(_ context.Context, item models.Item, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldCategory, FieldQuantity, FieldDefectiveQuantity}
	}

	for _, f := range fields {
		switch f {
		case FieldItemID:
			if item.ID <= 0 {
				return ErrInvalidItemID
			}
		case FieldName:
			if strings.TrimSpace(item.Name) == "" {
				return ErrEmptyItemName
			}
		case FieldCategory:
			if !item.Category.Valid() {
				return ErrInvalidCategory
			}
		case FieldQuantity:
			if item.Quantity < 0 {
				return ErrNegativeQuantity
			}
		case FieldDefectiveQuantity:
			if item.DefectiveQuantity < 0 {
				return ErrNegativeDefective
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *InventoryValidator) validateAccount(_ context.Context, account models.Account, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPermission}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if strings.TrimSpace(account.Username) == "" {
				return ErrEmptyUsername
			}
		case FieldPermission:
			if !account.Permission.Valid() {
				return ErrInvalidPermission
			}
		case FieldPasswordHash:
			if len(account.PasswordHash) != passwordHashLength {
				return ErrInvalidPasswordHash
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
