// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// Category classifies an [Item]. The numeric code is what gets persisted.
type Category int

const (
	CategoryTools       Category = 1
	CategoryParts       Category = 2
	CategoryConsumables Category = 3
)

// CategoryOption pairs a category code with its display label.
type CategoryOption struct {
	Code  Category
	Label string
}

// categoryOptions is the display order used by every menu.
var categoryOptions = []CategoryOption{
	{Code: CategoryTools, Label: "Tools"},
	{Code: CategoryParts, Label: "Parts"},
	{Code: CategoryConsumables, Label: "Consumables"},
}

// Categories returns the ordered list of known categories.
func Categories() []CategoryOption {
	out := make([]CategoryOption, len(categoryOptions))
	copy(out, categoryOptions)
	return out
}

// CategoryByChoice maps a 1-based menu position to a category.
func CategoryByChoice(choice int) (Category, bool) {
	if choice < 1 || choice > len(categoryOptions) {
		return 0, false
	}
	return categoryOptions[choice-1].Code, true
}

// Valid reports whether c is a known category code.
func (c Category) Valid() bool {
	for _, opt := range categoryOptions {
		if opt.Code == c {
			return true
		}
	}
	return false
}

func (c Category) String() string {
	for _, opt := range categoryOptions {
		if opt.Code == c {
			return opt.Label
		}
	}
	return fmt.Sprintf("Category(%d)", int(c))
}
