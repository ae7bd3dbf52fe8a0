package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrItemAlreadyExists     = errors.New("item with this name already exists")
	ErrItemNotFound          = errors.New("item was not found")
	ErrUsernameAlreadyExists = errors.New("username already exists")
)
