package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyItemName       = errors.New("item name is required")
	ErrInvalidCategory     = errors.New("invalid item category")
	ErrNegativeQuantity    = errors.New("quantity must be non-negative")
	ErrNegativeDefective   = errors.New("defective quantity must be non-negative")
	ErrInvalidItemID       = errors.New("invalid item ID")
	ErrEmptyUsername       = errors.New("username is required")
	ErrInvalidPermission   = errors.New("invalid permission")
	ErrInvalidPasswordHash = errors.New("invalid password hash")
)
