// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "math"

// Item is a stock-keeping unit in the inventory.
//
// Quantity counts working units, DefectiveQuantity counts units set aside as
// defective. Both counters are never negative and their sum fits in an int,
// so [Item.Total] never overflows. The quantity methods only
// change the in-memory value; persisting the result is the caller's job.
type Item struct {
	// ID is assigned by the store.
	ID int64

	// Name is unique among items, compared case-insensitively.
	Name string

	Category Category

	// Quantity is the number of working units.
	Quantity int

	// DefectiveQuantity is the number of units marked as defective.
	DefectiveQuantity int
}

// NewItem constructs an [Item], rejecting negative counters with
// [ErrNegativeQuantity] and a total above math.MaxInt with
// [ErrQuantityOverflow].
func NewItem(id int64, name string, category Category, quantity, defectiveQuantity int) (Item, error) {
	if quantity < 0 || defectiveQuantity < 0 {
		return Item{}, ErrNegativeQuantity
	}
	if quantity > math.MaxInt-defectiveQuantity {
		return Item{}, ErrQuantityOverflow
	}

	return Item{
		ID:                id,
		Name:              name,
		Category:          category,
		Quantity:          quantity,
		DefectiveQuantity: defectiveQuantity,
	}, nil
}

// Total returns working plus defective units.
func (i Item) Total() int {
	return i.Quantity + i.DefectiveQuantity
}

// IncreaseQuantity adds amount working units. The item is left unchanged
// when the total would overflow.
func (i *Item) IncreaseQuantity(amount int) error {
	if amount < 0 {
		return ErrNegativeAmount
	}
	if amount > math.MaxInt-i.Total() {
		return ErrQuantityOverflow
	}
	i.Quantity += amount
	return nil
}

// DecreaseQuantity removes amount working units. The item is left unchanged
// when there is not enough stock.
func (i *Item) DecreaseQuantity(amount int) error {
	if amount < 0 {
		return ErrNegativeAmount
	}
	if amount > i.Quantity {
		return ErrInsufficientStock
	}
	i.Quantity -= amount
	return nil
}

// MarkDefective moves amount units from working to defective stock.
func (i *Item) MarkDefective(amount int) error {
	if amount < 0 {
		return ErrNegativeAmount
	}
	if amount > i.Quantity {
		return ErrInsufficientStock
	}
	if amount > math.MaxInt-i.DefectiveQuantity {
		return ErrQuantityOverflow
	}
	i.Quantity -= amount
	i.DefectiveQuantity += amount
	return nil
}

// RepairDefective moves amount units from defective back to working stock.
func (i *Item) RepairDefective(amount int) error {
	if amount < 0 {
		return ErrNegativeAmount
	}
	if amount > i.DefectiveQuantity {
		return ErrInsufficientDefective
	}
	if amount > math.MaxInt-i.Quantity {
		return ErrQuantityOverflow
	}
	i.DefectiveQuantity -= amount
	i.Quantity += amount
	return nil
}
