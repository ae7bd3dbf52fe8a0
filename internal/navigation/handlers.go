// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package navigation

import (
	"context"
	"errors"
	"strings"

	"github.com/MKhiriev/go-inventory-keeper/internal/app"
	"github.com/MKhiriev/go-inventory-keeper/internal/service"
	"github.com/MKhiriev/go-inventory-keeper/internal/validators"
	"github.com/MKhiriev/go-inventory-keeper/models"
)

// loginAttempts is the number of credential prompts per Login choice: the
// first try plus one retry.
const loginAttempts = 2

func (c *Controller) navigate(ctx context.Context, choice int) {
	switch c.session.Page {
	case PageLogin:
		c.loginPage(ctx, choice)
	case PageMain:
		c.mainPage(ctx, choice)
	case PageInventory:
		c.inventoryPage(ctx, choice)
	case PageAccountManagement:
		c.accountManagementPage(ctx, choice)
	case PageCreateUser:
		c.createUserPage(ctx, choice)
	case PageViewInventory:
		c.viewInventoryPage(ctx, choice)
	case PageEditInventory:
		c.editInventoryPage(ctx, choice)
	case PageCreateItem:
		c.createItemPage(ctx, choice)
	case PageEditItem:
		c.editItemPage(ctx, choice)
	}
}

// ── LOGIN ────────────────────────────────────────────────────────────────────

func (c *Controller) loginPage(ctx context.Context, choice int) {
	switch choice {
	case 1:
		c.askCredentials(1)
	case 2:
		c.log.Info().Msg("exit requested")
		c.done = true
		c.notice = app.MsgGoodbye
	default:
		c.notice = app.MsgInvalidChoice
	}
}

func (c *Controller) askCredentials(attempt int) {
	c.startPrompt(func(ctx context.Context, values []string) {
		c.login(ctx, values[0], values[1], attempt)
	},
		field{label: app.MsgPromptUsername},
		field{label: app.MsgPromptPassword, secret: true},
	)
}

func (c *Controller) login(ctx context.Context, username, password string, attempt int) {
	account, err := c.auth.FindAccount(ctx, username, password)
	if err != nil {
		c.notice = app.MsgStoreError
		return
	}

	if account == nil {
		if attempt >= loginAttempts {
			c.notice = app.MsgInvalidCredentials
			return
		}
		c.startPrompt(func(_ context.Context, values []string) {
			if isYes(values[0]) {
				c.askCredentials(attempt + 1)
			}
		}, field{label: app.MsgPromptRetry})
		return
	}

	c.session.Account = account
	c.session.ID = c.ids.Generate()
	c.log = c.baseLogger.WithSession(c.session.ID, account.Username)
	c.log.Info().Str("permission", account.Permission.String()).Msg("logged in")

	c.goTo(ctx, PageMain)
}

// ── MAIN ─────────────────────────────────────────────────────────────────────

func (c *Controller) mainPage(ctx context.Context, choice int) {
	switch choice {
	case 1:
		c.goTo(ctx, PageInventory)
	case 2:
		c.goTo(ctx, PageAccountManagement)
	case 3:
		c.log.Info().Msg("logged out")
		c.logout()
	default:
		c.notice = app.MsgInvalidChoice
	}
}

// ── INVENTORY ────────────────────────────────────────────────────────────────

func (c *Controller) inventoryPage(ctx context.Context, choice int) {
	switch {
	case choice == 1:
		c.goTo(ctx, PageViewInventory)
	case choice == 2 && c.session.canEditInventory():
		c.goTo(ctx, PageEditInventory)
	case choice == 3:
		c.goTo(ctx, PageMain)
	default:
		c.notice = app.MsgInvalidChoice
	}
}

func (c *Controller) viewInventoryPage(ctx context.Context, choice int) {
	if choice == 1 {
		c.goTo(ctx, PageInventory)
		return
	}
	c.notice = app.MsgInvalidChoice
}

func (c *Controller) editInventoryPage(ctx context.Context, choice int) {
	switch {
	case choice == 1:
		c.goTo(ctx, PageInventory)
	case choice == 2:
		c.goTo(ctx, PageCreateItem)
	case choice >= editInventoryItemsOffset && choice-editInventoryItemsOffset < len(c.session.Items):
		c.selectItem(ctx, c.session.Items[choice-editInventoryItemsOffset].ID)
	default:
		c.notice = app.MsgInvalidChoice
	}
}

// selectItem opens EDIT_ITEM on a fresh copy of the item.
func (c *Controller) selectItem(ctx context.Context, id int64) {
	item, err := c.items.GetItem(ctx, id)
	if err != nil {
		c.notice = app.MsgStoreError
		return
	}
	if item == nil {
		c.notice = app.MsgItemNotFound
		c.refreshItems(ctx)
		return
	}

	c.session.SelectedItem = item
	c.goTo(ctx, PageEditItem)
}

// ── CREATE_ITEM ──────────────────────────────────────────────────────────────

func (c *Controller) createItemPage(ctx context.Context, choice int) {
	switch choice {
	case 1:
		c.askNewItem()
	case 2:
		c.goTo(ctx, PageEditInventory)
	default:
		c.notice = app.MsgInvalidChoice
	}
}

func (c *Controller) askNewItem() {
	c.startPrompt(c.createItem,
		field{label: app.MsgPromptItemName, check: c.checkNewItemName},
		field{label: app.MsgPromptCategory, choices: categoryChoices(), check: checkCategory},
		field{label: app.MsgPromptQuantity, check: checkAmount},
	)
}

func (c *Controller) checkNewItemName(ctx context.Context, line string) string {
	if strings.TrimSpace(line) == "" {
		return app.MsgEmptyItemName
	}

	existing, err := c.items.FindItemByName(ctx, line)
	if err != nil {
		return app.MsgStoreError
	}
	if existing != nil {
		return app.MsgItemExists
	}
	return ""
}

func checkCategory(_ context.Context, line string) string {
	n, ok := parseNumber(line)
	if !ok {
		return app.MsgInvalidCategory
	}
	if _, ok = models.CategoryByChoice(n); !ok {
		return app.MsgInvalidCategory
	}
	return ""
}

func checkAmount(_ context.Context, line string) string {
	if _, ok := parseNumber(line); !ok {
		return app.MsgInvalidQuantity
	}
	return ""
}

func (c *Controller) createItem(ctx context.Context, values []string) {
	n, _ := parseNumber(values[1])
	category, _ := models.CategoryByChoice(n)
	quantity, _ := parseNumber(values[2])

	if _, err := c.items.CreateItem(ctx, values[0], category, quantity); err != nil {
		c.notice = itemErrorNotice(err)
		return
	}

	c.notice = app.MsgItemCreated
	c.goTo(ctx, PageEditInventory)
}

// ── EDIT_ITEM ────────────────────────────────────────────────────────────────

type itemCommand func(ctx context.Context, item models.Item, amount int) (models.Item, error)

func (c *Controller) editItemPage(ctx context.Context, choice int) {
	switch choice {
	case 1:
		c.askAmount(app.MsgPromptIncrease, app.MsgQuantityIncreased, c.items.IncreaseQuantity)
	case 2:
		c.askAmount(app.MsgPromptDecrease, app.MsgQuantityDecreased, c.items.DecreaseQuantity)
	case 3:
		c.askAmount(app.MsgPromptMarkDefective, app.MsgMarkedDefective, c.items.MarkDefective)
	case 4:
		c.askAmount(app.MsgPromptRepairDefective, app.MsgRepairedDefective, c.items.RepairDefective)
	case 5:
		c.startPrompt(c.deleteSelectedItem, field{label: app.MsgPromptConfirmDelete})
	case 6:
		c.goTo(ctx, PageEditInventory)
	default:
		c.notice = app.MsgInvalidChoice
	}
}

func (c *Controller) askAmount(label, success string, cmd itemCommand) {
	c.startPrompt(func(ctx context.Context, values []string) {
		amount, _ := parseNumber(values[0])
		c.applyToSelected(ctx, amount, success, cmd)
	}, field{label: label, check: checkAmount})
}

func (c *Controller) applyToSelected(ctx context.Context, amount int, success string, cmd itemCommand) {
	if c.session.SelectedItem == nil {
		return
	}

	if _, err := cmd(ctx, *c.session.SelectedItem, amount); err != nil {
		c.notice = itemErrorNotice(err)
		if errors.Is(err, service.ErrItemNotFound) {
			c.goTo(ctx, PageEditInventory)
		}
		return
	}

	c.notice = success
	c.goTo(ctx, PageEditInventory)
}

func (c *Controller) deleteSelectedItem(ctx context.Context, values []string) {
	if c.session.SelectedItem == nil {
		return
	}
	if !isYes(values[0]) {
		c.notice = app.MsgDeletionCancelled
		return
	}

	if err := c.items.DeleteItem(ctx, c.session.SelectedItem.ID); err != nil {
		c.notice = app.MsgStoreError
		return
	}

	c.notice = app.MsgItemDeleted
	c.goTo(ctx, PageEditInventory)
}

// itemErrorNotice maps item service errors to what the user is told.
func itemErrorNotice(err error) string {
	switch {
	case errors.Is(err, models.ErrInsufficientStock):
		return app.MsgInsufficientStock
	case errors.Is(err, models.ErrInsufficientDefective):
		return app.MsgInsufficientDefective
	case errors.Is(err, models.ErrNegativeAmount),
		errors.Is(err, models.ErrNegativeQuantity),
		errors.Is(err, models.ErrQuantityOverflow),
		errors.Is(err, validators.ErrNegativeQuantity):
		return app.MsgInvalidQuantity
	case errors.Is(err, service.ErrItemAlreadyExists):
		return app.MsgItemExists
	case errors.Is(err, validators.ErrEmptyItemName):
		return app.MsgEmptyItemName
	case errors.Is(err, validators.ErrInvalidCategory):
		return app.MsgInvalidCategory
	case errors.Is(err, service.ErrItemNotFound):
		return app.MsgItemNotFound
	default:
		return app.MsgStoreError
	}
}

// ── ACCOUNT_MANAGEMENT ───────────────────────────────────────────────────────

func (c *Controller) accountManagementPage(ctx context.Context, choice int) {
	switch choice {
	case 1:
		if c.session.isAdmin() {
			c.goTo(ctx, PageCreateUser)
			return
		}
		c.deleteOwnAccount(ctx)
	case 2:
		c.goTo(ctx, PageMain)
	default:
		c.notice = app.MsgInvalidChoice
	}
}

func (c *Controller) deleteOwnAccount(ctx context.Context) {
	if err := c.accounts.DeleteAccount(ctx, *c.session.Account); err != nil {
		c.notice = app.MsgStoreError
		return
	}

	c.log.Info().Msg("own account deleted")
	c.logout()
	c.notice = app.MsgAccountDeleted
}

// ── CREATE_USER ──────────────────────────────────────────────────────────────

func (c *Controller) createUserPage(ctx context.Context, choice int) {
	switch choice {
	case 1:
		c.startPrompt(c.createAccount,
			field{label: app.MsgPromptNewUsername, check: checkUsername},
			field{label: app.MsgPromptNewPassword, secret: true},
			field{label: app.MsgPromptPermission, check: checkPermission},
		)
	case 2:
		c.goTo(ctx, PageAccountManagement)
	default:
		c.notice = app.MsgInvalidChoice
	}
}

func checkUsername(_ context.Context, line string) string {
	if strings.TrimSpace(line) == "" {
		return app.MsgEmptyUsername
	}
	return ""
}

func checkPermission(_ context.Context, line string) string {
	n, ok := parseNumber(line)
	if !ok || !models.Permission(n).Valid() {
		return app.MsgInvalidPermission
	}
	return ""
}

func (c *Controller) createAccount(ctx context.Context, values []string) {
	n, _ := parseNumber(values[2])

	_, err := c.accounts.CreateAccount(ctx, values[0], values[1], models.Permission(n))
	switch {
	case err == nil:
		c.notice = app.MsgAccountCreated
		c.goTo(ctx, PageAccountManagement)
	case errors.Is(err, service.ErrUsernameAlreadyExists):
		c.notice = app.MsgUsernameTaken
	case errors.Is(err, validators.ErrEmptyUsername):
		c.notice = app.MsgEmptyUsername
	case errors.Is(err, validators.ErrInvalidPermission):
		c.notice = app.MsgInvalidPermission
	default:
		c.notice = app.MsgStoreError
	}
}
