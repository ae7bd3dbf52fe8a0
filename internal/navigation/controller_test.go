// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package navigation

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-inventory-keeper/internal/app"
	"github.com/MKhiriev/go-inventory-keeper/internal/logger"
	"github.com/MKhiriev/go-inventory-keeper/internal/mock"
	"github.com/MKhiriev/go-inventory-keeper/internal/service"
	"github.com/MKhiriev/go-inventory-keeper/models"
)

type fixedIDs struct{ id string }

func (f fixedIDs) Generate() string { return f.id }

type testController struct {
	*Controller
	auth     *mock.MockAuthService
	accounts *mock.MockAccountService
	items    *mock.MockItemService
}

func newTestController(t *testing.T) testController {
	t.Helper()
	ctrl := gomock.NewController(t)

	auth := mock.NewMockAuthService(ctrl)
	accounts := mock.NewMockAccountService(ctrl)
	items := mock.NewMockItemService(ctrl)

	c := NewController(&service.Services{
		AuthService:    auth,
		AccountService: accounts,
		ItemService:    items,
	}, logger.Nop())
	c.ids = fixedIDs{id: "session-1"}

	return testController{Controller: c, auth: auth, accounts: accounts, items: items}
}

// loggedIn puts the controller on page with an account of the given
// permission, bypassing the login prompt.
func (tc testController) loggedIn(permission models.Permission, page Page) *models.Account {
	account := &models.Account{ID: 10, Username: "alice", PasswordHash: "digest", Permission: permission}
	tc.session = Session{ID: "session-1", Account: account, Page: page}
	return account
}

func (tc testController) submit(lines ...string) {
	for _, l := range lines {
		tc.Submit(context.Background(), l)
	}
}

var (
	hammer = models.Item{ID: 1, Name: "Hammer", Category: models.CategoryTools, Quantity: 3}
	wrench = models.Item{ID: 2, Name: "Wrench", Category: models.CategoryParts, Quantity: 10, DefectiveQuantity: 5}
)

func labels(opts []Option) []string {
	out := make([]string, len(opts))
	for i, o := range opts {
		out[i] = o.Label
	}
	return out
}

// ── LOGIN ────────────────────────────────────────────────────────────────────

func TestController_InitialScreen(t *testing.T) {
	tc := newTestController(t)

	s := tc.Screen()
	assert.Equal(t, PageLogin, s.Page)
	assert.Equal(t, app.MsgTitle, s.Title)
	assert.Equal(t, []Option{{1, app.MsgOptionLogin}, {2, app.MsgOptionExit}}, s.Options)
	assert.Empty(t, s.Prompt)
	assert.False(t, tc.Done())
	assert.False(t, tc.Session().LoggedIn())
}

func TestController_Exit(t *testing.T) {
	tc := newTestController(t)

	tc.submit("2")
	assert.True(t, tc.Done())
	assert.True(t, tc.Screen().Done)
	assert.Equal(t, app.MsgGoodbye, tc.Screen().Notice)

	// nothing is processed after exit
	tc.submit("1")
	assert.Empty(t, tc.Screen().Prompt)
}

func TestController_InvalidInput(t *testing.T) {
	tests := []struct {
		line   string
		notice string
	}{
		{line: "abc", notice: app.MsgInvalidInput},
		{line: "", notice: app.MsgInvalidInput},
		{line: "-1", notice: app.MsgInvalidInput},
		{line: "1.5", notice: app.MsgInvalidInput},
		{line: "7", notice: app.MsgInvalidChoice},
		{line: "0", notice: app.MsgInvalidChoice},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			tc := newTestController(t)

			tc.submit(tt.line)
			assert.Equal(t, PageLogin, tc.Screen().Page)
			assert.Equal(t, tt.notice, tc.Screen().Notice)
			assert.False(t, tc.Done())
		})
	}
}

func TestController_Login(t *testing.T) {
	tc := newTestController(t)
	admin := &models.Account{ID: 1, Username: "admin", Permission: models.PermissionAdmin}

	tc.submit("1")
	s := tc.Screen()
	assert.Equal(t, app.MsgPromptUsername, s.Prompt)
	assert.False(t, s.Secret)

	tc.submit("admin")
	s = tc.Screen()
	assert.Equal(t, app.MsgPromptPassword, s.Prompt)
	assert.True(t, s.Secret)

	tc.auth.EXPECT().FindAccount(gomock.Any(), "admin", "admin").Return(admin, nil)
	tc.submit("admin")

	s = tc.Screen()
	assert.Equal(t, PageMain, s.Page)
	assert.Equal(t, "Welcome, admin!", s.Heading)
	assert.Equal(t, []string{app.MsgOptionInventory, app.MsgOptionManageAccount, app.MsgOptionLogout}, labels(s.Options))
	assert.Empty(t, s.Prompt)

	session := tc.Session()
	assert.Equal(t, admin, session.Account)
	assert.Equal(t, "session-1", session.ID)
}

func TestController_Login_RetryThenSuccess(t *testing.T) {
	tc := newTestController(t)
	account := &models.Account{ID: 3, Username: "bob", Permission: models.PermissionRead}

	gomock.InOrder(
		tc.auth.EXPECT().FindAccount(gomock.Any(), "bob", "wrong").Return(nil, nil),
		tc.auth.EXPECT().FindAccount(gomock.Any(), "bob", "right").Return(account, nil),
	)

	tc.submit("1", "bob", "wrong")
	assert.Equal(t, app.MsgPromptRetry, tc.Screen().Prompt)

	tc.submit("Y")
	assert.Equal(t, app.MsgPromptUsername, tc.Screen().Prompt)

	tc.submit("bob", "right")
	assert.Equal(t, PageMain, tc.Screen().Page)
}

func TestController_Login_OnlyOneRetry(t *testing.T) {
	tc := newTestController(t)

	tc.auth.EXPECT().FindAccount(gomock.Any(), "bob", gomock.Any()).Return(nil, nil).Times(2)

	tc.submit("1", "bob", "a", "y", "bob", "b")

	s := tc.Screen()
	assert.Equal(t, PageLogin, s.Page)
	assert.Empty(t, s.Prompt, "no second retry is offered")
	assert.Equal(t, app.MsgInvalidCredentials, s.Notice)
	assert.False(t, tc.Session().LoggedIn())
}

func TestController_Login_DeclineRetry(t *testing.T) {
	tc := newTestController(t)

	tc.auth.EXPECT().FindAccount(gomock.Any(), "bob", "a").Return(nil, nil)

	tc.submit("1", "bob", "a", "n")

	s := tc.Screen()
	assert.Equal(t, PageLogin, s.Page)
	assert.Empty(t, s.Prompt)
	assert.Equal(t, []string{app.MsgOptionLogin, app.MsgOptionExit}, labels(s.Options))
}

func TestController_Login_StoreError(t *testing.T) {
	tc := newTestController(t)

	tc.auth.EXPECT().FindAccount(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("locked"))

	tc.submit("1", "bob", "a")

	assert.Equal(t, PageLogin, tc.Screen().Page)
	assert.Equal(t, app.MsgStoreError, tc.Screen().Notice)
	assert.Empty(t, tc.Screen().Prompt)
}

// ── MAIN ─────────────────────────────────────────────────────────────────────

func TestController_MainMenu(t *testing.T) {
	tests := []struct {
		choice string
		want   Page
	}{
		{choice: "1", want: PageInventory},
		{choice: "2", want: PageAccountManagement},
		{choice: "3", want: PageLogin},
	}

	for _, tt := range tests {
		t.Run(tt.choice, func(t *testing.T) {
			tc := newTestController(t)
			tc.loggedIn(models.PermissionRead, PageMain)

			tc.submit(tt.choice)
			assert.Equal(t, tt.want, tc.Screen().Page)
		})
	}
}

func TestController_Logout_ClearsSession(t *testing.T) {
	tc := newTestController(t)
	tc.loggedIn(models.PermissionAdmin, PageMain)

	tc.submit("3")

	session := tc.Session()
	assert.Equal(t, PageLogin, session.Page)
	assert.Nil(t, session.Account)
	assert.Empty(t, session.ID)
	assert.Nil(t, session.Items)
}

// ── INVENTORY ────────────────────────────────────────────────────────────────

func TestController_Inventory_ReadOnlyHidesEdit(t *testing.T) {
	tc := newTestController(t)
	tc.loggedIn(models.PermissionRead, PageInventory)

	s := tc.Screen()
	assert.Equal(t, []Option{{1, app.MsgOptionViewInventory}, {3, app.MsgOptionBackToMain}}, s.Options)

	tc.submit("2")
	assert.Equal(t, PageInventory, tc.Screen().Page)
	assert.Equal(t, app.MsgInvalidChoice, tc.Screen().Notice)
}

func TestController_Inventory_EditPermission(t *testing.T) {
	for _, perm := range []models.Permission{models.PermissionAdmin, models.PermissionWrite} {
		t.Run(perm.String(), func(t *testing.T) {
			tc := newTestController(t)
			tc.loggedIn(perm, PageInventory)

			assert.Contains(t, tc.Screen().Options, Option{2, app.MsgOptionEditInventory})

			tc.items.EXPECT().GetAllItems(gomock.Any()).Return([]models.Item{hammer}, nil)
			tc.submit("2")

			s := tc.Screen()
			assert.Equal(t, PageEditInventory, s.Page)
			assert.True(t, s.ShowItems)
			assert.Equal(t, 3, s.ItemsOffset)
			assert.Equal(t, []models.Item{hammer}, s.Items)
		})
	}
}

func TestController_ViewInventory(t *testing.T) {
	tc := newTestController(t)
	tc.loggedIn(models.PermissionRead, PageInventory)

	tc.items.EXPECT().GetAllItems(gomock.Any()).Return([]models.Item{hammer, wrench}, nil)
	tc.submit("1")

	s := tc.Screen()
	assert.Equal(t, PageViewInventory, s.Page)
	assert.Equal(t, []Option{{1, app.MsgOptionBackToInventory}}, s.Options)
	assert.Equal(t, 2, s.ItemsOffset)
	assert.Len(t, s.Items, 2)

	tc.submit("2")
	assert.Equal(t, app.MsgInvalidChoice, tc.Screen().Notice)
	assert.Equal(t, PageViewInventory, tc.Screen().Page)

	tc.submit("1")
	assert.Equal(t, PageInventory, tc.Screen().Page)
}

func TestController_ViewInventory_StoreError(t *testing.T) {
	tc := newTestController(t)
	tc.loggedIn(models.PermissionRead, PageInventory)

	tc.items.EXPECT().GetAllItems(gomock.Any()).Return(nil, errors.New("locked"))
	tc.submit("1")

	s := tc.Screen()
	assert.Equal(t, PageViewInventory, s.Page)
	assert.Equal(t, app.MsgStoreError, s.Notice)
	assert.Empty(t, s.Items)
}

// ── EDIT_INVENTORY ───────────────────────────────────────────────────────────

func (tc testController) onEditInventory(permission models.Permission, items ...models.Item) {
	tc.loggedIn(permission, PageEditInventory)
	tc.session.Items = items
}

func TestController_EditInventory_SelectItem(t *testing.T) {
	tc := newTestController(t)
	tc.onEditInventory(models.PermissionWrite, hammer, wrench)

	fresh := wrench
	fresh.Quantity = 12
	tc.items.EXPECT().GetItem(gomock.Any(), wrench.ID).Return(&fresh, nil)

	tc.submit("4")

	s := tc.Screen()
	assert.Equal(t, PageEditItem, s.Page)
	assert.Equal(t, app.MsgPageEditItem+" - Wrench", s.Heading)
	assert.Len(t, s.Options, 6)
	assert.Equal(t, &fresh, tc.Session().SelectedItem)
}

func TestController_EditInventory_ChoiceOutOfRange(t *testing.T) {
	tc := newTestController(t)
	tc.onEditInventory(models.PermissionWrite, hammer)

	tc.submit("4")

	assert.Equal(t, PageEditInventory, tc.Screen().Page)
	assert.Equal(t, app.MsgInvalidChoice, tc.Screen().Notice)
}

func TestController_EditInventory_ItemVanished(t *testing.T) {
	tc := newTestController(t)
	tc.onEditInventory(models.PermissionWrite, hammer)

	tc.items.EXPECT().GetItem(gomock.Any(), hammer.ID).Return(nil, nil)
	tc.items.EXPECT().GetAllItems(gomock.Any()).Return([]models.Item{}, nil)

	tc.submit("3")

	s := tc.Screen()
	assert.Equal(t, PageEditInventory, s.Page)
	assert.Equal(t, app.MsgItemNotFound, s.Notice)
	assert.Empty(t, s.Items)
}

func TestController_EditInventory_Navigation(t *testing.T) {
	tc := newTestController(t)
	tc.onEditInventory(models.PermissionAdmin)

	tc.submit("2")
	assert.Equal(t, PageCreateItem, tc.Screen().Page)

	tc.items.EXPECT().GetAllItems(gomock.Any()).Return([]models.Item{}, nil)
	tc.submit("2")
	assert.Equal(t, PageEditInventory, tc.Screen().Page)

	tc.submit("1")
	assert.Equal(t, PageInventory, tc.Screen().Page)
}

// ── CREATE_ITEM ──────────────────────────────────────────────────────────────

func TestController_CreateItem(t *testing.T) {
	tc := newTestController(t)
	tc.loggedIn(models.PermissionWrite, PageCreateItem)

	created := models.Item{ID: 5, Name: "Wrench", Category: models.CategoryParts, Quantity: 15}

	tc.submit("1")
	assert.Equal(t, app.MsgPromptItemName, tc.Screen().Prompt)

	tc.items.EXPECT().FindItemByName(gomock.Any(), "Wrench").Return(nil, nil)
	tc.submit("Wrench")

	s := tc.Screen()
	assert.Equal(t, app.MsgPromptCategory, s.Prompt)
	assert.Equal(t, []string{"Tools", "Parts", "Consumables"}, s.Choices)

	tc.submit("2")
	assert.Equal(t, app.MsgPromptQuantity, tc.Screen().Prompt)

	gomock.InOrder(
		tc.items.EXPECT().CreateItem(gomock.Any(), "Wrench", models.CategoryParts, 15).Return(created, nil),
		tc.items.EXPECT().GetAllItems(gomock.Any()).Return([]models.Item{created}, nil),
	)
	tc.submit("15")

	s = tc.Screen()
	assert.Equal(t, PageEditInventory, s.Page)
	assert.Equal(t, app.MsgItemCreated, s.Notice)
	assert.Equal(t, []models.Item{created}, s.Items)
	assert.Empty(t, s.Prompt)
}

func TestController_CreateItem_Aborted(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(tc testController)
		lines  []string
		notice string
	}{
		{
			name: "duplicate name",
			setup: func(tc testController) {
				tc.items.EXPECT().FindItemByName(gomock.Any(), "wrench").Return(&wrench, nil)
			},
			lines:  []string{"1", "wrench"},
			notice: app.MsgItemExists,
		},
		{
			name:   "blank name",
			setup:  func(testController) {},
			lines:  []string{"1", "   "},
			notice: app.MsgEmptyItemName,
		},
		{
			name: "unknown category",
			setup: func(tc testController) {
				tc.items.EXPECT().FindItemByName(gomock.Any(), "Saw").Return(nil, nil)
			},
			lines:  []string{"1", "Saw", "4"},
			notice: app.MsgInvalidCategory,
		},
		{
			name: "negative quantity",
			setup: func(tc testController) {
				tc.items.EXPECT().FindItemByName(gomock.Any(), "Saw").Return(nil, nil)
			},
			lines:  []string{"1", "Saw", "1", "-3"},
			notice: app.MsgInvalidQuantity,
		},
		{
			name: "lookup error",
			setup: func(tc testController) {
				tc.items.EXPECT().FindItemByName(gomock.Any(), "Saw").Return(nil, errors.New("locked"))
			},
			lines:  []string{"1", "Saw"},
			notice: app.MsgStoreError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// CreateItem is never expected
			tc := newTestController(t)
			tc.loggedIn(models.PermissionAdmin, PageCreateItem)
			tt.setup(tc)

			tc.submit(tt.lines...)

			s := tc.Screen()
			assert.Equal(t, PageCreateItem, s.Page)
			assert.Equal(t, tt.notice, s.Notice)
			assert.Empty(t, s.Prompt)
		})
	}
}

func TestController_CreateItem_RaceOnName(t *testing.T) {
	tc := newTestController(t)
	tc.loggedIn(models.PermissionAdmin, PageCreateItem)

	tc.items.EXPECT().FindItemByName(gomock.Any(), "Saw").Return(nil, nil)
	tc.items.EXPECT().CreateItem(gomock.Any(), "Saw", models.CategoryTools, 1).Return(models.Item{}, service.ErrItemAlreadyExists)

	tc.submit("1", "Saw", "1", "1")

	assert.Equal(t, PageCreateItem, tc.Screen().Page)
	assert.Equal(t, app.MsgItemExists, tc.Screen().Notice)
}

// ── EDIT_ITEM ────────────────────────────────────────────────────────────────

func (tc testController) onEditItem(item models.Item) {
	tc.loggedIn(models.PermissionWrite, PageEditItem)
	tc.session.Items = []models.Item{item}
	tc.session.SelectedItem = &item
}

func TestController_EditItem_Commands(t *testing.T) {
	tests := []struct {
		name    string
		choice  string
		prompt  string
		expect  func(m *mock.MockItemService) *gomock.Call
		success string
	}{
		{
			name:   "increase",
			choice: "1",
			prompt: app.MsgPromptIncrease,
			expect: func(m *mock.MockItemService) *gomock.Call {
				return m.EXPECT().IncreaseQuantity(gomock.Any(), wrench, 4)
			},
			success: app.MsgQuantityIncreased,
		},
		{
			name:   "decrease",
			choice: "2",
			prompt: app.MsgPromptDecrease,
			expect: func(m *mock.MockItemService) *gomock.Call {
				return m.EXPECT().DecreaseQuantity(gomock.Any(), wrench, 4)
			},
			success: app.MsgQuantityDecreased,
		},
		{
			name:   "mark defective",
			choice: "3",
			prompt: app.MsgPromptMarkDefective,
			expect: func(m *mock.MockItemService) *gomock.Call {
				return m.EXPECT().MarkDefective(gomock.Any(), wrench, 4)
			},
			success: app.MsgMarkedDefective,
		},
		{
			name:   "repair defective",
			choice: "4",
			prompt: app.MsgPromptRepairDefective,
			expect: func(m *mock.MockItemService) *gomock.Call {
				return m.EXPECT().RepairDefective(gomock.Any(), wrench, 4)
			},
			success: app.MsgRepairedDefective,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc := newTestController(t)
			tc.onEditItem(wrench)

			tc.submit(tt.choice)
			assert.Equal(t, tt.prompt, tc.Screen().Prompt)

			gomock.InOrder(
				tt.expect(tc.items).Return(wrench, nil),
				tc.items.EXPECT().GetAllItems(gomock.Any()).Return([]models.Item{wrench}, nil),
			)
			tc.submit("4")

			s := tc.Screen()
			assert.Equal(t, PageEditInventory, s.Page)
			assert.Equal(t, tt.success, s.Notice)
			assert.Nil(t, tc.Session().SelectedItem)
		})
	}
}

func TestController_EditItem_DomainErrorKeepsSelection(t *testing.T) {
	tc := newTestController(t)
	tc.onEditItem(wrench)

	tc.items.EXPECT().DecreaseQuantity(gomock.Any(), wrench, 11).Return(models.Item{}, models.ErrInsufficientStock)

	tc.submit("2", "11")

	s := tc.Screen()
	assert.Equal(t, PageEditItem, s.Page)
	assert.Equal(t, app.MsgInsufficientStock, s.Notice)
	require.NotNil(t, tc.Session().SelectedItem)
	assert.Equal(t, wrench, *tc.Session().SelectedItem)
}

func TestController_EditItem_RepairTooMany(t *testing.T) {
	tc := newTestController(t)
	tc.onEditItem(wrench)

	tc.items.EXPECT().RepairDefective(gomock.Any(), wrench, 6).Return(models.Item{}, models.ErrInsufficientDefective)

	tc.submit("4", "6")

	assert.Equal(t, PageEditItem, tc.Screen().Page)
	assert.Equal(t, app.MsgInsufficientDefective, tc.Screen().Notice)
}

func TestController_EditItem_QuantityOverflow(t *testing.T) {
	tc := newTestController(t)
	tc.onEditItem(wrench)

	tc.items.EXPECT().IncreaseQuantity(gomock.Any(), wrench, 9223372036854775807).Return(models.Item{}, models.ErrQuantityOverflow)

	tc.submit("1", "9223372036854775807")

	s := tc.Screen()
	assert.Equal(t, PageEditItem, s.Page)
	assert.Equal(t, app.MsgInvalidQuantity, s.Notice)
	assert.NotNil(t, tc.Session().SelectedItem)
}

func TestController_EditItem_InvalidAmount(t *testing.T) {
	for _, line := range []string{"-1", "abc", ""} {
		t.Run(line, func(t *testing.T) {
			tc := newTestController(t)
			tc.onEditItem(wrench)

			tc.submit("1", line)

			s := tc.Screen()
			assert.Equal(t, PageEditItem, s.Page)
			assert.Equal(t, app.MsgInvalidQuantity, s.Notice)
			assert.Empty(t, s.Prompt)
		})
	}
}

func TestController_EditItem_StoreErrorKeepsState(t *testing.T) {
	tc := newTestController(t)
	tc.onEditItem(wrench)

	tc.items.EXPECT().IncreaseQuantity(gomock.Any(), wrench, 1).Return(models.Item{}, errors.New("disk full"))

	tc.submit("1", "1")

	assert.Equal(t, PageEditItem, tc.Screen().Page)
	assert.Equal(t, app.MsgStoreError, tc.Screen().Notice)
	assert.NotNil(t, tc.Session().SelectedItem)
}

func TestController_EditItem_ItemDeletedElsewhere(t *testing.T) {
	tc := newTestController(t)
	tc.onEditItem(wrench)

	tc.items.EXPECT().IncreaseQuantity(gomock.Any(), wrench, 1).Return(models.Item{}, service.ErrItemNotFound)
	tc.items.EXPECT().GetAllItems(gomock.Any()).Return([]models.Item{}, nil)

	tc.submit("1", "1")

	assert.Equal(t, PageEditInventory, tc.Screen().Page)
	assert.Equal(t, app.MsgItemNotFound, tc.Screen().Notice)
	assert.Nil(t, tc.Session().SelectedItem)
}

func TestController_EditItem_Delete(t *testing.T) {
	tc := newTestController(t)
	tc.onEditItem(wrench)

	tc.submit("5")
	assert.Equal(t, app.MsgPromptConfirmDelete, tc.Screen().Prompt)

	gomock.InOrder(
		tc.items.EXPECT().DeleteItem(gomock.Any(), wrench.ID).Return(nil),
		tc.items.EXPECT().GetAllItems(gomock.Any()).Return([]models.Item{}, nil),
	)
	tc.submit("y")

	s := tc.Screen()
	assert.Equal(t, PageEditInventory, s.Page)
	assert.Equal(t, app.MsgItemDeleted, s.Notice)
	assert.Empty(t, s.Items)
	assert.Nil(t, tc.Session().SelectedItem)
}

func TestController_EditItem_DeleteCancelled(t *testing.T) {
	tc := newTestController(t)
	tc.onEditItem(wrench)

	tc.submit("5", "n")

	assert.Equal(t, PageEditItem, tc.Screen().Page)
	assert.Equal(t, app.MsgDeletionCancelled, tc.Screen().Notice)
	assert.NotNil(t, tc.Session().SelectedItem)
}

func TestController_EditItem_Back(t *testing.T) {
	tc := newTestController(t)
	tc.onEditItem(wrench)

	tc.items.EXPECT().GetAllItems(gomock.Any()).Return([]models.Item{wrench}, nil)
	tc.submit("6")

	assert.Equal(t, PageEditInventory, tc.Screen().Page)
	assert.Nil(t, tc.Session().SelectedItem)
}

func TestController_EditItem_NoSelection(t *testing.T) {
	tc := newTestController(t)
	tc.loggedIn(models.PermissionWrite, PageEditItem)

	s := tc.Screen()
	assert.Contains(t, s.Heading, app.MsgNoSelection)

	tc.items.EXPECT().GetAllItems(gomock.Any()).Return([]models.Item{}, nil)
	tc.submit("1")

	s = tc.Screen()
	assert.Equal(t, PageEditInventory, s.Page)
	assert.Equal(t, app.MsgNoItemSelected, s.Notice)
	assert.Empty(t, s.Prompt)
}

// ── ACCOUNT_MANAGEMENT / CREATE_USER ─────────────────────────────────────────

func TestController_AccountManagement_Admin(t *testing.T) {
	tc := newTestController(t)
	tc.loggedIn(models.PermissionAdmin, PageAccountManagement)

	assert.Equal(t, []string{app.MsgOptionCreateAccount, app.MsgOptionBackToMain}, labels(tc.Screen().Options))

	tc.submit("1")
	assert.Equal(t, PageCreateUser, tc.Screen().Page)
}

func TestController_AccountManagement_DeleteOwnAccount(t *testing.T) {
	for _, perm := range []models.Permission{models.PermissionWrite, models.PermissionRead} {
		t.Run(perm.String(), func(t *testing.T) {
			tc := newTestController(t)
			account := tc.loggedIn(perm, PageAccountManagement)

			assert.Equal(t, []string{app.MsgOptionDeleteAccount, app.MsgOptionBackToMain}, labels(tc.Screen().Options))

			tc.accounts.EXPECT().DeleteAccount(gomock.Any(), *account).Return(nil)
			tc.submit("1")

			s := tc.Screen()
			assert.Equal(t, PageLogin, s.Page)
			assert.Equal(t, app.MsgAccountDeleted, s.Notice)
			assert.False(t, tc.Session().LoggedIn())
		})
	}
}

func TestController_AccountManagement_DeleteFails(t *testing.T) {
	tc := newTestController(t)
	tc.loggedIn(models.PermissionRead, PageAccountManagement)

	tc.accounts.EXPECT().DeleteAccount(gomock.Any(), gomock.Any()).Return(errors.New("locked"))
	tc.submit("1")

	assert.Equal(t, PageAccountManagement, tc.Screen().Page)
	assert.Equal(t, app.MsgStoreError, tc.Screen().Notice)
	assert.True(t, tc.Session().LoggedIn())
}

func TestController_AccountManagement_Back(t *testing.T) {
	tc := newTestController(t)
	tc.loggedIn(models.PermissionRead, PageAccountManagement)

	tc.submit("2")
	assert.Equal(t, PageMain, tc.Screen().Page)
}

func TestController_CreateUser(t *testing.T) {
	tc := newTestController(t)
	tc.loggedIn(models.PermissionAdmin, PageCreateUser)

	tc.submit("1", "bob")
	assert.Equal(t, app.MsgPromptNewPassword, tc.Screen().Prompt)
	assert.True(t, tc.Screen().Secret)

	tc.submit("secret")
	assert.Equal(t, app.MsgPromptPermission, tc.Screen().Prompt)

	tc.accounts.EXPECT().
		CreateAccount(gomock.Any(), "bob", "secret", models.PermissionWrite).
		Return(&models.Account{ID: 2, Username: "bob", Permission: models.PermissionWrite}, nil)
	tc.submit("2")

	s := tc.Screen()
	assert.Equal(t, PageAccountManagement, s.Page)
	assert.Equal(t, app.MsgAccountCreated, s.Notice)
}

func TestController_CreateUser_Duplicate(t *testing.T) {
	tc := newTestController(t)
	tc.loggedIn(models.PermissionAdmin, PageCreateUser)

	tc.accounts.EXPECT().
		CreateAccount(gomock.Any(), "alice", "x", models.PermissionRead).
		Return(nil, service.ErrUsernameAlreadyExists)

	tc.submit("1", "alice", "x", "3")

	s := tc.Screen()
	assert.Equal(t, PageCreateUser, s.Page)
	assert.Equal(t, app.MsgUsernameTaken, s.Notice)
	assert.True(t, tc.Session().LoggedIn())
}

func TestController_CreateUser_InvalidPermission(t *testing.T) {
	for _, line := range []string{"0", "4", "admin"} {
		t.Run(line, func(t *testing.T) {
			tc := newTestController(t)
			tc.loggedIn(models.PermissionAdmin, PageCreateUser)

			tc.submit("1", "bob", "pw", line)

			assert.Equal(t, PageCreateUser, tc.Screen().Page)
			assert.Equal(t, app.MsgInvalidPermission, tc.Screen().Notice)
		})
	}
}

func TestController_CreateUser_Back(t *testing.T) {
	tc := newTestController(t)
	tc.loggedIn(models.PermissionAdmin, PageCreateUser)

	tc.submit("2")
	assert.Equal(t, PageAccountManagement, tc.Screen().Page)
}

// ── invalid state recovery ───────────────────────────────────────────────────

func TestController_InvalidStateRecovery(t *testing.T) {
	tests := []struct {
		name    string
		account *models.Account
		page    Page
	}{
		{name: "main without account", page: PageMain},
		{name: "inventory without account", page: PageInventory},
		{name: "edit item without account", page: PageEditItem},
		{name: "edit inventory as reader", account: &models.Account{Permission: models.PermissionRead}, page: PageEditInventory},
		{name: "create item as reader", account: &models.Account{Permission: models.PermissionRead}, page: PageCreateItem},
		{name: "create user as writer", account: &models.Account{Permission: models.PermissionWrite}, page: PageCreateUser},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc := newTestController(t)
			tc.session = Session{ID: "s", Account: tt.account, Page: tt.page}

			tc.submit("1")

			s := tc.Screen()
			assert.Equal(t, PageLogin, s.Page)
			assert.Equal(t, app.MsgInvalidState, s.Notice)
			assert.False(t, tc.Session().LoggedIn())
			assert.Empty(t, tc.Session().ID)
		})
	}
}

func TestController_FullSessionWalk(t *testing.T) {
	tc := newTestController(t)
	admin := &models.Account{ID: 1, Username: "admin", Permission: models.PermissionAdmin}

	tc.auth.EXPECT().FindAccount(gomock.Any(), "admin", "admin").Return(admin, nil)
	tc.items.EXPECT().GetAllItems(gomock.Any()).Return([]models.Item{}, nil).AnyTimes()

	tc.submit("1", "admin", "admin") // MAIN
	tc.submit("1")                   // INVENTORY
	tc.submit("2")                   // EDIT_INVENTORY
	tc.submit("1")                   // INVENTORY
	tc.submit("3")                   // MAIN
	tc.submit("2")                   // ACCOUNT_MANAGEMENT
	tc.submit("2")                   // MAIN
	tc.submit("3")                   // LOGIN
	assert.Equal(t, PageLogin, tc.Screen().Page)
	assert.False(t, tc.Session().LoggedIn())

	tc.submit("2")
	assert.True(t, tc.Done())
}

func TestPage_String(t *testing.T) {
	assert.Equal(t, "LOGIN", PageLogin.String())
	assert.Equal(t, "EDIT_ITEM", PageEditItem.String())
	assert.Equal(t, "Page(42)", Page(42).String())
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{in: "0", want: 0, ok: true},
		{in: " 12 ", want: 12, ok: true},
		{in: "+1", ok: false},
		{in: "-1", ok: false},
		{in: "1e3", ok: false},
		{in: "", ok: false},
		{in: "99999999999999999999999", ok: false},
	}

	for _, tt := range tests {
		got, ok := parseNumber(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		if tt.ok {
			assert.Equal(t, tt.want, got, tt.in)
		}
	}
}
