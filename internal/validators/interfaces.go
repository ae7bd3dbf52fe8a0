// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks inventory items and accounts before the services
// hand them to the store.
//
// A [Validator] is given the value and, optionally, the names of the fields
// to check (see the Field* constants); without names a default set is
// checked. Services wrap the returned sentinel with their own
// ErrInvalidDataProvided.
package validators

import "context"

// Validator checks a [models.Item] or [models.Account], restricted to the
// named fields when any are given.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
