// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "errors"

// Domain validation errors returned by [Item] constructors and quantity
// methods. Callers match them with [errors.Is].
var (
	// ErrNegativeQuantity is returned when an item is built with a negative
	// working or defective counter.
	ErrNegativeQuantity = errors.New("quantity and defective quantity must be non-negative")

	// ErrNegativeAmount is returned when a quantity operation receives a
	// negative amount.
	ErrNegativeAmount = errors.New("amount must be non-negative")

	// ErrInsufficientStock is returned when an operation would take more
	// working units than are available.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrInsufficientDefective is returned when more units are repaired than
	// are marked as defective.
	ErrInsufficientDefective = errors.New("insufficient defective stock")

	// ErrQuantityOverflow is returned when the total number of units of an
	// item would not fit in an int.
	ErrQuantityOverflow = errors.New("quantity is too large")
)
