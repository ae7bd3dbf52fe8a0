// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package navigation implements the menu state machine of the inventory
// tool. It is independent of any terminal library; a front end renders
// [Screen] values and feeds user lines back through [Controller.Submit].
package navigation

import (
	"context"

	"github.com/MKhiriev/go-inventory-keeper/internal/app"
	"github.com/MKhiriev/go-inventory-keeper/internal/logger"
	"github.com/MKhiriev/go-inventory-keeper/internal/service"
	"github.com/MKhiriev/go-inventory-keeper/internal/utils"
)

// Controller is the menu state machine. It owns the [Session], turns each
// submitted line into a page transition or a service call and describes the
// result as a [Screen].
//
// Controller is not safe for concurrent use; the UI event loop drives it from
// a single goroutine.
type Controller struct {
	auth     service.AuthService
	accounts service.AccountService
	items    service.ItemService
	ids      utils.IDGenerator

	// baseLogger has no session fields; log is baseLogger or its
	// per-login child.
	baseLogger *logger.Logger
	log        *logger.Logger

	session Session
	prompt  *prompt
	notice  string
	done    bool
}

// NewController returns a controller on the LOGIN page.
func NewController(services *service.Services, log *logger.Logger) *Controller {
	return &Controller{
		auth:       services.AuthService,
		accounts:   services.AccountService,
		items:      services.ItemService,
		ids:        utils.NewUUIDGenerator(),
		baseLogger: log,
		log:        log,
		session:    Session{Page: PageLogin},
	}
}

// Screen describes the current state.
func (c *Controller) Screen() Screen {
	return c.buildScreen()
}

// Session returns a copy of the current session.
func (c *Controller) Session() Session {
	return c.session
}

// Done reports whether the user chose Exit.
func (c *Controller) Done() bool {
	return c.done
}

// Submit handles one line of user input: the next field of an active prompt,
// or a menu choice otherwise.
func (c *Controller) Submit(ctx context.Context, line string) {
	if c.done {
		return
	}
	ctx = c.log.WithContext(ctx)
	c.notice = ""

	if c.prompt != nil {
		c.feedPrompt(ctx, line)
		c.reconcile(ctx)
		return
	}

	if c.reconcile(ctx) {
		return
	}

	choice, ok := parseNumber(line)
	if !ok {
		c.notice = app.MsgInvalidInput
		return
	}

	c.navigate(ctx, choice)
	c.reconcile(ctx)
}

func (c *Controller) feedPrompt(ctx context.Context, line string) {
	p := c.prompt
	notice, complete := p.feed(ctx, line)
	if notice != "" {
		c.prompt = nil
		c.notice = notice
		return
	}
	if complete {
		c.prompt = nil
		p.submit(ctx, p.values)
	}
}

func (c *Controller) startPrompt(submit func(ctx context.Context, values []string), fields ...field) {
	c.prompt = newPrompt(submit, fields...)
}

// reconcile checks that the session satisfies the guard of its page. An
// unauthorised page resets the session to LOGIN; EDIT_ITEM without a
// selection falls back to EDIT_INVENTORY. It reports whether it changed
// anything.
func (c *Controller) reconcile(ctx context.Context) bool {
	s := c.session

	switch {
	case s.Page == PageLogin:
		if s.Account != nil {
			c.goTo(ctx, PageMain)
			return true
		}
		return false

	case s.Account == nil,
		s.Page.needsEditPermission() && !s.canEditInventory(),
		s.Page == PageCreateUser && !s.isAdmin():
		c.log.Warn().
			Str("func", "Controller.reconcile").
			Str("page", s.Page.String()).
			Bool("logged_in", s.LoggedIn()).
			Msg("invalid navigation state, resetting session")
		c.logout()
		c.notice = app.MsgInvalidState
		return true

	case s.Page == PageEditItem && s.SelectedItem == nil:
		c.prompt = nil
		c.notice = app.MsgNoItemSelected
		c.goTo(ctx, PageEditInventory)
		return true
	}

	return false
}

// goTo switches page. Entering an inventory listing refreshes the item
// cache.
func (c *Controller) goTo(ctx context.Context, page Page) {
	from := c.session.Page
	c.session.Page = page

	if page != PageEditItem {
		c.session.SelectedItem = nil
	}
	if page == PageViewInventory || page == PageEditInventory {
		c.refreshItems(ctx)
	}

	if from != page {
		c.log.Debug().Str("from", from.String()).Str("to", page.String()).Msg("page changed")
	}
}

func (c *Controller) refreshItems(ctx context.Context) {
	items, err := c.items.GetAllItems(ctx)
	if err != nil {
		c.log.Err(err).Str("func", "Controller.refreshItems").Msg("failed to load items")
		c.notice = app.MsgStoreError
		return
	}
	c.session.Items = items
}

// logout drops the session and the per-login logger.
func (c *Controller) logout() {
	c.session.clear()
	c.prompt = nil
	c.log = c.baseLogger
}
