// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the
// navigation controller and the terminal UI.
//
// All Msg* constants are human-readable strings shown to the user as menu
// text, prompts or notices. Keeping them in one place ensures consistent
// wording across screens.
package app

// Screen text.
const (
	MsgTitle       = "=== Inventory Management System ==="
	MsgEnterChoice = "Enter your choice: "
	MsgNoItems     = "No items found in inventory."
	MsgNoSelection = "No Item Selected"

	MsgPageInventory         = "Inventory Page"
	MsgPageAccountManagement = "Account Management Page"
	MsgPageCreateUser        = "Create User Account Page"
	MsgPageViewInventory     = "View Inventory Page"
	MsgPageEditInventory     = "Edit Inventory Page"
	MsgPageCreateItem        = "Create Item Page"
	MsgPageEditItem          = "Edit Item Page"
)

// Menu options.
const (
	MsgOptionLogin            = "Login"
	MsgOptionExit             = "Exit"
	MsgOptionInventory        = "Inventory Management"
	MsgOptionManageAccount    = "Manage Account"
	MsgOptionLogout           = "Logout"
	MsgOptionViewInventory    = "View Inventory"
	MsgOptionEditInventory    = "Edit Inventory"
	MsgOptionBackToMain       = "Back to Main Menu"
	MsgOptionCreateAccount    = "Create Account"
	MsgOptionDeleteAccount    = "Delete Account"
	MsgOptionCreateNewAccount = "Create New Account"
	MsgOptionBackToAccounts   = "Back to Account Management Menu"
	MsgOptionBackToInventory  = "Back to Inventory Menu"
	MsgOptionCreateItem       = "Create Item"
	MsgOptionCreateNewItem    = "Create New Item"
	MsgOptionBackToEdit       = "Back to Edit Inventory Menu"
	MsgOptionIncreaseQuantity = "Increase Quantity"
	MsgOptionDecreaseQuantity = "Decrease Quantity"
	MsgOptionMarkDefective    = "Mark as Defective"
	MsgOptionRepairDefective  = "Repair Defective Items"
	MsgOptionDeleteItem       = "Delete Item"
)

// Prompts.
const (
	MsgPromptUsername        = "Username: "
	MsgPromptPassword        = "Password: "
	MsgPromptRetry           = "Invalid credentials. Would you like to try again? (y/n) "
	MsgPromptItemName        = "Enter item name: "
	MsgPromptCategory        = "Select category: "
	MsgPromptQuantity        = "Enter quantity: "
	MsgPromptIncrease        = "Enter quantity to increase: "
	MsgPromptDecrease        = "Enter quantity to decrease: "
	MsgPromptMarkDefective   = "Enter defective quantity to mark: "
	MsgPromptRepairDefective = "Enter defective quantity to repair: "
	MsgPromptConfirmDelete   = "Are you sure you want to delete this item? (y/n): "
	MsgPromptNewUsername     = "Enter new username: "
	MsgPromptNewPassword     = "Enter new password: "
	MsgPromptPermission      = "Enter permission (1 for ADMIN, 2 for WRITE, 3 for READ): "
)

// Notices.
const (
	MsgInvalidInput          = "Invalid input. Please enter a number."
	MsgInvalidChoice         = "Invalid choice. Please try again."
	MsgInvalidState          = "Invalid state detected."
	MsgInvalidCredentials    = "Invalid credentials."
	MsgGoodbye               = "Exiting the system. Goodbye!"
	MsgItemExists            = "Item with this name already exists."
	MsgEmptyItemName         = "Item name cannot be empty."
	MsgInvalidCategory       = "Invalid category choice."
	MsgInvalidQuantity       = "Invalid quantity."
	MsgItemCreated           = "Item created successfully."
	MsgNoItemSelected        = "No item selected."
	MsgItemNotFound          = "Item no longer exists."
	MsgQuantityIncreased     = "Quantity increased successfully."
	MsgQuantityDecreased     = "Quantity decreased successfully."
	MsgMarkedDefective       = "Items marked as defective successfully."
	MsgRepairedDefective     = "Defective items repaired successfully."
	MsgInsufficientStock     = "Not enough working stock."
	MsgInsufficientDefective = "Not enough defective stock."
	MsgItemDeleted           = "Item deleted successfully."
	MsgDeletionCancelled     = "Item deletion cancelled."
	MsgAccountCreated        = "Account created successfully."
	MsgAccountDeleted        = "Account deleted."
	MsgUsernameTaken         = "An account with this username already exists."
	MsgEmptyUsername         = "Username cannot be empty."
	MsgInvalidPermission     = "Invalid permission choice."
	MsgStoreError            = "Something went wrong. Please try again."
)
