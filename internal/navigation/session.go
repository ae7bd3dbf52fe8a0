// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package navigation

import "github.com/MKhiriev/go-inventory-keeper/models"

// Session is the navigation state of the single logged-in user.
type Session struct {
	// ID correlates the log lines of one login. Empty when logged out.
	ID string

	Account *models.Account
	Page    Page

	// SelectedItem is the item open on the EDIT_ITEM page.
	SelectedItem *models.Item

	// Items is the inventory as last fetched for a listing page.
	Items []models.Item
}

// LoggedIn reports whether an account is set.
func (s Session) LoggedIn() bool {
	return s.Account != nil
}

func (s Session) canEditInventory() bool {
	return s.Account != nil && s.Account.Permission.CanEditInventory()
}

func (s Session) isAdmin() bool {
	return s.Account != nil && s.Account.Permission.IsAdmin()
}

// clear logs the user out and returns to LOGIN.
func (s *Session) clear() {
	*s = Session{Page: PageLogin}
}
