// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package navigation

import (
	"fmt"

	"github.com/MKhiriev/go-inventory-keeper/internal/app"
	"github.com/MKhiriev/go-inventory-keeper/models"
)

// Option is a numbered menu entry.
type Option struct {
	Number int
	Label  string
}

// Screen is everything a front end needs to draw the current state.
type Screen struct {
	Page    Page
	Title   string
	Heading string
	Options []Option

	// ShowItems is set on the inventory listings. Items are numbered from
	// ItemsOffset.
	ShowItems   bool
	Items       []models.Item
	ItemsOffset int

	// Prompt is the label of the field being asked for. When empty the
	// front end asks for a menu choice.
	Prompt  string
	Secret  bool
	Choices []string

	// Notice is the outcome of the last submitted line.
	Notice string

	// Done is set once the user chose Exit.
	Done bool
}

// Option numbers of item listings start after the fixed entries.
const (
	viewInventoryItemsOffset = 2
	editInventoryItemsOffset = 3
)

func (c *Controller) buildScreen() Screen {
	s := Screen{
		Page:   c.session.Page,
		Title:  app.MsgTitle,
		Notice: c.notice,
		Done:   c.done,
	}

	switch c.session.Page {
	case PageLogin:
		s.Options = options(app.MsgOptionLogin, app.MsgOptionExit)

	case PageMain:
		if c.session.Account != nil {
			s.Heading = fmt.Sprintf("Welcome, %s!", c.session.Account.Username)
		}
		s.Options = options(app.MsgOptionInventory, app.MsgOptionManageAccount, app.MsgOptionLogout)

	case PageInventory:
		s.Heading = app.MsgPageInventory
		s.Options = []Option{{Number: 1, Label: app.MsgOptionViewInventory}}
		if c.session.canEditInventory() {
			s.Options = append(s.Options, Option{Number: 2, Label: app.MsgOptionEditInventory})
		}
		s.Options = append(s.Options, Option{Number: 3, Label: app.MsgOptionBackToMain})

	case PageAccountManagement:
		s.Heading = app.MsgPageAccountManagement
		if c.session.isAdmin() {
			s.Options = options(app.MsgOptionCreateAccount, app.MsgOptionBackToMain)
		} else {
			s.Options = options(app.MsgOptionDeleteAccount, app.MsgOptionBackToMain)
		}

	case PageCreateUser:
		s.Heading = app.MsgPageCreateUser
		s.Options = options(app.MsgOptionCreateNewAccount, app.MsgOptionBackToAccounts)

	case PageViewInventory:
		s.Heading = app.MsgPageViewInventory
		s.Options = options(app.MsgOptionBackToInventory)
		s.ShowItems = true
		s.Items = c.session.Items
		s.ItemsOffset = viewInventoryItemsOffset

	case PageEditInventory:
		s.Heading = app.MsgPageEditInventory
		s.Options = options(app.MsgOptionBackToInventory, app.MsgOptionCreateItem)
		s.ShowItems = true
		s.Items = c.session.Items
		s.ItemsOffset = editInventoryItemsOffset

	case PageCreateItem:
		s.Heading = app.MsgPageCreateItem
		s.Options = options(app.MsgOptionCreateNewItem, app.MsgOptionBackToEdit)

	case PageEditItem:
		name := app.MsgNoSelection
		if c.session.SelectedItem != nil {
			name = c.session.SelectedItem.Name
		}
		s.Heading = app.MsgPageEditItem + " - " + name
		s.Options = options(
			app.MsgOptionIncreaseQuantity,
			app.MsgOptionDecreaseQuantity,
			app.MsgOptionMarkDefective,
			app.MsgOptionRepairDefective,
			app.MsgOptionDeleteItem,
			app.MsgOptionBackToEdit,
		)
	}

	if c.prompt != nil {
		f := c.prompt.current()
		s.Prompt = f.label
		s.Secret = f.secret
		s.Choices = f.choices
	}

	return s
}

// options numbers labels from 1.
func options(labels ...string) []Option {
	out := make([]Option, len(labels))
	for i, l := range labels {
		out[i] = Option{Number: i + 1, Label: l}
	}
	return out
}

func categoryChoices() []string {
	cats := models.Categories()
	out := make([]string, len(cats))
	for i, c := range cats {
		out[i] = c.Label
	}
	return out
}
