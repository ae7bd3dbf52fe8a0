// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package navigation

import "fmt"

// Page identifies a menu screen.
type Page int

const (
	PageLogin Page = iota
	PageMain
	PageInventory
	PageAccountManagement
	PageCreateUser
	PageViewInventory
	PageEditInventory
	PageCreateItem
	PageEditItem
)

var pageNames = map[Page]string{
	PageLogin:             "LOGIN",
	PageMain:              "MAIN",
	PageInventory:         "INVENTORY",
	PageAccountManagement: "ACCOUNT_MANAGEMENT",
	PageCreateUser:        "CREATE_USER",
	PageViewInventory:     "VIEW_INVENTORY",
	PageEditInventory:     "EDIT_INVENTORY",
	PageCreateItem:        "CREATE_ITEM",
	PageEditItem:          "EDIT_ITEM",
}

func (p Page) String() string {
	if name, ok := pageNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Page(%d)", int(p))
}

// needsEditPermission reports whether p is only reachable with ADMIN or WRITE.
func (p Page) needsEditPermission() bool {
	return p == PageEditInventory || p == PageCreateItem || p == PageEditItem
}
