// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-inventory-keeper/internal/config"
	"github.com/MKhiriev/go-inventory-keeper/internal/logger"
	"github.com/MKhiriev/go-inventory-keeper/internal/service"
	"github.com/MKhiriev/go-inventory-keeper/internal/tui"
)

// App ties the services to the terminal UI.
type App struct {
	services *service.Services
	ui       UI
	cfg      config.App
	logger   *logger.Logger
}

var _ Client = (*App)(nil)

// NewApp returns an App running ui on top of services.
func NewApp(services *service.Services, ui UI, cfg config.App, log *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("client: services and ui are required")
	}

	return &App{
		services: services,
		ui:       ui,
		cfg:      cfg,
		logger:   log,
	}, nil
}

// Run seeds the default administrator into an empty datastore and then
// blocks in the UI. Interrupting the UI is not an error.
func (a *App) Run() error {
	ctx := a.logger.WithContext(context.Background())

	created, err := a.services.AccountService.EnsureDefaultAdmin(ctx, a.cfg.DefaultAdminUsername, a.cfg.DefaultAdminPassword)
	if err != nil {
		return fmt.Errorf("seed default administrator: %w", err)
	}
	if created {
		a.logger.Info().Str("func", "App.Run").Msg("datastore initialised with default administrator")
	}

	a.logger.Info().Str("func", "App.Run").Msg("starting terminal ui")
	err = a.ui.Run(ctx)
	if errors.Is(err, tui.ErrUserQuit) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("run terminal ui: %w", err)
	}

	a.logger.Info().Str("func", "App.Run").Msg("exited")
	return nil
}
